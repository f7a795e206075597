package spc700

import "github.com/kurogane/gosnes/snes/memaddr"

// Conformance harness for TomHarte-shaped SPC700 single-instruction test
// vectors, mirroring cpu65816/conformance.go's shape for the other core.
// The cases themselves live in conformance_test.go, hand-authored in the
// same JSON shape the real corpus (github.com/TomHarte/ProcessorTests-style
// SPC700 suites) uses, since no network access is available here to fetch
// it.

// ConformanceState mirrors one "initial"/"final" object in a TomHarte-shaped
// SPC700 JSON case.
type ConformanceState struct {
	PC  uint16   `json:"pc"`
	A   uint8    `json:"a"`
	X   uint8    `json:"x"`
	Y   uint8    `json:"y"`
	SP  uint8    `json:"sp"`
	PSW uint8    `json:"psw"`
	RAM [][2]int `json:"ram"`
}

// ConformanceCase is one TomHarte-shaped test vector.
type ConformanceCase struct {
	Name    string           `json:"name"`
	Initial ConformanceState `json:"initial"`
	Final   ConformanceState `json:"final"`
}

// conformanceBus is a flat 64 KiB address space, matching the corpus's
// assumption that every address reads back whatever was last written.
type conformanceBus struct {
	mem [65536]uint8
}

func (b *conformanceBus) Read(addr memaddr.Addr16) uint8  { return b.mem[uint16(addr)] }
func (b *conformanceBus) Write(addr memaddr.Addr16, v uint8) { b.mem[uint16(addr)] = v }

func (c *CPU) applyConformanceState(s ConformanceState) {
	c.PC = s.PC
	c.A = s.A
	c.X = s.X
	c.Y = s.Y
	c.SP = s.SP
	c.P.SetByte(s.PSW)
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
		bus.mem[uint16(kv[0])] = uint8(kv[1])
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
	record("a", int(c.A), int(tc.Final.A))
	record("x", int(c.X), int(tc.Final.X))
	record("y", int(c.Y), int(tc.Final.Y))
	record("sp", int(c.SP), int(tc.Final.SP))
	record("psw", int(c.P.Byte()), int(tc.Final.PSW))

	for _, kv := range tc.Final.RAM {
		addr, want := kv[0]&0xFFFF, kv[1]
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
	for shift := 12; shift >= 0; shift -= 4 {
		b = append(b, hex[(addr>>shift)&0xF])
	}
	return string(b)
}
