package spc700

import "github.com/kurogane/gosnes/snes/memaddr"

// Bus is the subset of the SPC700's own 64 KiB address space the CPU needs.
// Unlike the 65816's bus, reads/writes here do not themselves advance the
// shared master clock — the owning system integrates SPC700 cycles lazily,
// in chunks, whenever the main CPU touches the cross-core APU port (spec.md
// §4.5, §5).
type Bus interface {
	Read(addr memaddr.Addr16) uint8
	Write(addr memaddr.Addr16, value uint8)
}

// CPU is the SPC700 core: PC, A/X/Y, SP and PSW. The three built-in timers
// reside in the owning audio.APU; this package only models the instruction
// sequencer and its own 64 KiB view of ARAM.
type CPU struct {
	bus Bus

	PC uint16
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	P  PSW

	Stopped bool // STOP/SLEEP: permanent stall, no resume path exists on the SNES

	cycles uint64
}

// Reset vector: fixed at 0xFFFE (no emulation-mode distinction on this core).
const vecReset = 0xFFFE

// BRK vector, pushed PC/PSW, jumps through 0xFFDE.
const vecBRK = 0xFFDE

// New returns a CPU wired to the given 64 KiB bus, uninitialized until Reset.
func New(bus Bus) *CPU {
	return &CPU{bus: bus}
}

// Reset puts the CPU into its post-reset state: SP=0xEF (BOOT ROM
// convention), PC loaded from the reset vector, direct page 0.
func (c *CPU) Reset() {
	c.SP = 0xEF
	c.P = PSW{}
	c.Stopped = false
	lo := c.bus.Read(memaddr.Addr16(vecReset))
	hi := c.bus.Read(memaddr.Addr16(vecReset + 1))
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// Step executes exactly one instruction and returns the number of SPC700
// cycles it consumed.
func (c *CPU) Step() uint64 {
	if c.Stopped {
		return 0
	}
	before := c.cycles
	opcode := c.fetch8()
	handler := opcodeTable[opcode]
	handler(c)
	return c.cycles - before
}

// HandleBRK services a software BRK: pushes PC and PSW, sets the Break
// flag, clears the Interrupt flag, and jumps through the fixed BRK vector. External IRQs do
// not exist on the SNES's APU (spec.md §4.5), so this is the only interrupt
// entry point besides TCALL.
func (c *CPU) HandleBRK() {
	c.pushWord(c.PC)
	c.pushByte(c.P.Byte())
	c.P.Break = true
	c.P.Interrupt = false
	c.PC = c.readVector(vecBRK)
}

func (c *CPU) readVector(addr uint16) uint16 {
	lo := c.bus.Read(memaddr.Addr16(addr))
	hi := c.bus.Read(memaddr.Addr16(addr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) fetch8() uint8 {
	v := c.bus.Read(memaddr.Addr16(c.PC))
	c.PC++
	c.cycles++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) read8(addr memaddr.Addr16) uint8 {
	c.cycles++
	return c.bus.Read(addr)
}

func (c *CPU) write8(addr memaddr.Addr16, v uint8) {
	c.cycles++
	c.bus.Write(addr, v)
}

func (c *CPU) internalCycle() { c.cycles++ }

// Stack lives in page 0x01, growing downward - fixed regardless of the
// direct-page P bit (which only affects zero-page operand addressing).
func (c *CPU) pushByte(v uint8) {
	c.write8(memaddr.Addr16(0x0100|uint16(c.SP)), v)
	c.SP--
}

func (c *CPU) pullByte() uint8 {
	c.SP++
	return c.read8(memaddr.Addr16(0x0100 | uint16(c.SP)))
}

func (c *CPU) pushWord(v uint16) {
	c.pushByte(uint8(v >> 8))
	c.pushByte(uint8(v))
}

func (c *CPU) pullWord() uint16 {
	lo := c.pullByte()
	hi := c.pullByte()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) directPage(offset uint8) memaddr.Addr16 {
	return memaddr.Addr16(c.P.DirectPageBase() + uint16(offset))
}
