package cpu65816

import "github.com/kurogane/gosnes/snes/memaddr"

// Conformance harness for TomHarte-shaped single-instruction test vectors
// (github.com/TomHarte/ProcessorTests' wdc65816 suite): each case gives a
// full register/memory snapshot before and after one instruction executes,
// plus the bus trace the real chip produced. This file implements the
// harness machinery (state apply/capture, case running); the cases
// themselves live in conformance_test.go, hand-authored in the same JSON
// shape the real corpus uses since no network access is available here to
// fetch it.

// ConformanceState mirrors one "initial"/"final" object in a TomHarte-shaped
// JSON case.
type ConformanceState struct {
	PC  uint16    `json:"pc"`
	S   uint16    `json:"s"`
	P   uint8     `json:"p"`
	A   uint16    `json:"a"`
	X   uint16    `json:"x"`
	Y   uint16    `json:"y"`
	DBR uint8     `json:"dbr"`
	PBR uint8     `json:"pbr"`
	D   uint16    `json:"d"`
	E   uint8     `json:"e"` // 1 = emulation mode, 0 = native
	RAM [][2]int  `json:"ram"`
}

// ConformanceCycle is one bus access in the trace: [address, value, "read"
// or "write"]. ConformanceCase has no field for the trace, so cycles are
// neither decoded nor checked; only the resulting state is compared.
type ConformanceCycle struct {
	Addr  int
	Value *int
	Kind  string
}

// ConformanceCase is one TomHarte-shaped test vector.
type ConformanceCase struct {
	Name    string            `json:"name"`
	Initial ConformanceState  `json:"initial"`
	Final   ConformanceState  `json:"final"`
}

// conformanceBus is a flat 16 MiB address space, matching the corpus's
// assumption that every address reads back whatever was last written (no
// MMIO side effects within a single-instruction test).
type conformanceBus struct {
	mem [1 << 24]uint8
}

func (b *conformanceBus) CycleRead(addr memaddr.Long) uint8  { return b.mem[addr.Uint24()&0xFFFFFF] }
func (b *conformanceBus) CycleWrite(addr memaddr.Long, v uint8) { b.mem[addr.Uint24()&0xFFFFFF] = v }

func (c *CPU) applyConformanceState(s ConformanceState) {
	c.Emulation = s.E != 0
	c.P.SetByte(s.P, c.Emulation)
	c.A.Set16(s.A)
	c.X.Set16(s.X)
	c.Y.Set16(s.Y)
	c.SP.Set16(s.S)
	c.D = s.D
	c.DBR = s.DBR
	c.PBR = s.PBR
	c.PC = s.PC
}

// ConformanceDiff names one register or memory byte that did not match the
// expected final state.
type ConformanceDiff struct {
	Field    string
	Got      int
	Expected int
}

// Run executes one conformance case against a fresh CPU/bus and reports
// every field that diverged from the expected final state; an empty result
// means the case passed.
func (tc *ConformanceCase) Run() []ConformanceDiff {
	bus := &conformanceBus{}
	for _, kv := range tc.Initial.RAM {
		bus.mem[kv[0]&0xFFFFFF] = uint8(kv[1])
	}
	c := &CPU{bus: bus}
	c.applyConformanceState(tc.Initial)
	c.Step()

	var diffs []ConformanceDiff
	record := func(field string, got, want int) {
		if got != want {
			diffs = append(diffs, ConformanceDiff{field, got, want})
		}
	}

	record("pc", int(c.PC), int(tc.Final.PC))
	record("s", int(c.SP.Get16()), int(tc.Final.S))
	record("p", int(c.P.Byte(c.Emulation)), int(tc.Final.P))
	record("a", int(c.A.Get16()), int(tc.Final.A))
	record("x", int(c.X.Get16()), int(tc.Final.X))
	record("y", int(c.Y.Get16()), int(tc.Final.Y))
	record("dbr", int(c.DBR), int(tc.Final.DBR))
	record("pbr", int(c.PBR), int(tc.Final.PBR))
	record("d", int(c.D), int(tc.Final.D))

	for _, kv := range tc.Final.RAM {
		addr, want := kv[0]&0xFFFFFF, kv[1]
		if got := int(bus.mem[addr]); got != want {
			diffs = append(diffs, ConformanceDiff{ramFieldName(addr), got, want})
		}
	}
	return diffs
}

func ramFieldName(addr int) string {
	const hex = "0123456789ABCDEF"
	b := make([]byte, 0, 8)
	b = append(b, 'r', 'a', 'm', '@', '0', 'x')
	for shift := 20; shift >= 0; shift -= 4 {
		b = append(b, hex[(addr>>shift)&0xF])
	}
	return string(b)
}

// cycleCostAllowList names the opcodes whose addressing-mode cycle cost
// depends on a documented special case rather than the generic formula:
// MVN/MVP (0x54/0x44). Their handlers move the whole block within one Step
// and count only the per-byte read and write; no extra internal cycle is
// charged.
var cycleCostAllowList = map[uint8]bool{
	0x54: true, // MVN
	0x44: true, // MVP
}
