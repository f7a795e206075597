package cpu65816

import "github.com/kurogane/gosnes/snes/memaddr"

// Bus is the subset of the system bus the CPU needs. CycleRead/CycleWrite
// are expected to advance the shared clock by one memory access (spec.md
// §4.2); the CPU issues one call per bus cycle, never batching accesses.
type Bus interface {
	CycleRead(addr memaddr.Long) uint8
	CycleWrite(addr memaddr.Long, value uint8)
}

// CPU is the 65C816 core: registers, status flags, and the emulation/native
// mode switch.
type CPU struct {
	bus Bus

	A  WideRegister
	X  WideRegister
	Y  WideRegister
	SP WideRegister
	D  uint16 // direct page register, always 16-bit
	PC uint16
	PBR uint8 // program bank register
	DBR uint8 // data bank register

	P StatusFlags

	Emulation bool

	Stopped bool // STP: halted until reset
	Waiting bool // WAI: halted until an interrupt is pending

	cycles uint64
}

// Vector addresses, bank 0x00. Emulation-mode vectors are used whenever
// Emulation is true; native-mode vectors otherwise.
const (
	vecCOPNative   = 0xFFE4
	vecBRKNative   = 0xFFE6
	vecABORTNative = 0xFFE8
	vecNMINative   = 0xFFEA
	vecIRQNative   = 0xFFEE

	vecCOPEmu   = 0xFFF4
	vecABORTEmu = 0xFFF8
	vecNMIEmu   = 0xFFFA
	vecResetEmu = 0xFFFC
	vecIRQEmu   = 0xFFFE // also BRK in emulation mode
)

// New returns a CPU wired to the given bus, uninitialized until Reset.
func New(bus Bus) *CPU {
	return &CPU{bus: bus}
}

// Reset puts the CPU into its post-reset state: emulation mode, 8-bit
// A/X/Y, stack pointer forced to page 1, PC loaded from the reset vector.
func (c *CPU) Reset() {
	c.Emulation = true
	c.P.MemoryWidth8 = true
	c.P.IndexWidth8 = true
	c.P.IRQDisable = true
	c.D = 0
	c.DBR = 0
	c.PBR = 0
	c.SP.Set16(0x01FF)
	c.X.Set8(0)
	c.Y.Set8(0)
	c.Stopped = false
	c.Waiting = false
	lo := c.bus.CycleRead(memaddr.NewLong(0, vecResetEmu))
	hi := c.bus.CycleRead(memaddr.NewLong(0, vecResetEmu+1))
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// Step executes exactly one instruction and returns the number of bus
// accesses it made (opcode and operand fetches, reads, writes); internal
// cycles and per-region access speeds are not counted. STP halts the CPU
// permanently; WAI halts it until ConsumeNMI/ConsumeIRQ report a pending
// interrupt.
func (c *CPU) Step() uint64 {
	before := c.cycles
	if c.Stopped {
		return 0
	}
	if c.Waiting {
		return 0
	}
	opcode := c.fetch8()
	handler := opcodeTable[opcode]
	handler(c)
	return c.cycles - before
}

// WakeFromWait clears WAI's halt when an interrupt becomes pending; called
// by the bus after it observes a pending NMI/IRQ.
func (c *CPU) WakeFromWait() {
	c.Waiting = false
}

// HandleNMI pushes PC/P and jumps to the NMI vector. Always taken
// regardless of the I flag.
func (c *CPU) HandleNMI() {
	c.Waiting = false
	if !c.Emulation {
		c.pushByte(c.PBR)
	}
	c.pushWord(c.PC)
	c.pushByte(c.P.Byte(c.Emulation))
	c.P.IRQDisable = true
	c.P.Decimal = false
	c.PBR = 0
	if c.Emulation {
		c.PC = c.readVector(vecNMIEmu)
	} else {
		c.PC = c.readVector(vecNMINative)
	}
}

// HandleIRQ pushes PC/P and jumps to the IRQ vector, unless the I flag is
// set.
func (c *CPU) HandleIRQ() {
	if c.P.IRQDisable {
		return
	}
	c.Waiting = false
	if !c.Emulation {
		c.pushByte(c.PBR)
	}
	c.pushWord(c.PC)
	c.pushByte(c.P.Byte(c.Emulation))
	c.P.IRQDisable = true
	c.P.Decimal = false
	c.PBR = 0
	if c.Emulation {
		c.PC = c.readVector(vecIRQEmu)
	} else {
		c.PC = c.readVector(vecIRQNative)
	}
}

func (c *CPU) readVector(addr uint16) uint16 {
	lo := c.bus.CycleRead(memaddr.NewLong(0, addr))
	hi := c.bus.CycleRead(memaddr.NewLong(0, addr+1))
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) fetch8() uint8 {
	v := c.bus.CycleRead(memaddr.NewLong(c.PBR, c.PC))
	c.PC++
	c.cycles++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) read8(addr memaddr.Long) uint8 {
	c.cycles++
	return c.bus.CycleRead(addr)
}

func (c *CPU) write8(addr memaddr.Long, v uint8) {
	c.cycles++
	c.bus.CycleWrite(addr, v)
}

func (c *CPU) pushByte(v uint8) {
	addr := memaddr.NewLong(0, c.SP.Get16())
	c.write8(addr, v)
	if c.Emulation {
		sp := c.SP.Get8() - 1
		c.SP.Set16(0x0100 | uint16(sp))
	} else {
		c.SP.Set16(c.SP.Get16() - 1)
	}
}

func (c *CPU) pullByte() uint8 {
	if c.Emulation {
		sp := c.SP.Get8() + 1
		c.SP.Set16(0x0100 | uint16(sp))
	} else {
		c.SP.Set16(c.SP.Get16() + 1)
	}
	addr := memaddr.NewLong(0, c.SP.Get16())
	return c.read8(addr)
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
