package cpu65816

import "github.com/kurogane/gosnes/snes/memaddr"

// Addressing mode resolvers. Each returns the effective address for an
// operand fetched from the instruction stream, issuing the same bus reads
// real hardware would (so cycle counts fall out of read/write call counts
// rather than being hand-tallied per opcode).

func (c *CPU) addrDirect() memaddr.Long {
	offset := c.D + uint16(c.fetch8())
	return memaddr.NewLong(0, offset)
}

func (c *CPU) addrDirectX() memaddr.Long {
	offset := c.D + uint16(c.fetch8()) + c.X.Get(!c.P.IndexWidth8)
	return memaddr.NewLong(0, offset)
}

func (c *CPU) addrDirectY() memaddr.Long {
	offset := c.D + uint16(c.fetch8()) + c.Y.Get(!c.P.IndexWidth8)
	return memaddr.NewLong(0, offset)
}

func (c *CPU) addrAbsolute() memaddr.Long {
	return memaddr.NewLong(c.DBR, c.fetch16())
}

func (c *CPU) addrAbsoluteX() memaddr.Long {
	base := memaddr.NewLong(c.DBR, c.fetch16())
	return base.Add(int32(c.X.Get(!c.P.IndexWidth8)), memaddr.NoWrap)
}

func (c *CPU) addrAbsoluteY() memaddr.Long {
	base := memaddr.NewLong(c.DBR, c.fetch16())
	return base.Add(int32(c.Y.Get(!c.P.IndexWidth8)), memaddr.NoWrap)
}

func (c *CPU) addrLong() memaddr.Long {
	lo := c.fetch16()
	bank := c.fetch8()
	return memaddr.NewLong(bank, lo)
}

func (c *CPU) addrLongX() memaddr.Long {
	base := c.addrLong()
	return base.Add(int32(c.X.Get16()), memaddr.NoWrap)
}

// addrDirectIndirectY implements (dp),Y: read a 16-bit pointer from the
// direct page, add Y after applying the data bank register.
func (c *CPU) addrDirectIndirectY() memaddr.Long {
	dpAddr := memaddr.NewLong(0, c.D+uint16(c.fetch8()))
	lo := c.read8(dpAddr)
	hi := c.read8(dpAddr.Add(1, memaddr.WrapBank))
	ptr := memaddr.NewLong(c.DBR, uint16(hi)<<8|uint16(lo))
	return ptr.Add(int32(c.Y.Get(!c.P.IndexWidth8)), memaddr.NoWrap)
}

func (c *CPU) addrDirectIndirect() memaddr.Long {
	dpAddr := memaddr.NewLong(0, c.D+uint16(c.fetch8()))
	lo := c.read8(dpAddr)
	hi := c.read8(dpAddr.Add(1, memaddr.WrapBank))
	return memaddr.NewLong(c.DBR, uint16(hi)<<8|uint16(lo))
}

// addrDirectXIndirect implements (dp,X): add X to the direct-page offset
// before reading the 16-bit pointer, unlike (dp),Y which indexes the
// pointer's target instead of the pointer itself.
func (c *CPU) addrDirectXIndirect() memaddr.Long {
	offset := c.D + uint16(c.fetch8()) + c.X.Get(!c.P.IndexWidth8)
	dpAddr := memaddr.NewLong(0, offset)
	lo := c.read8(dpAddr)
	hi := c.read8(dpAddr.Add(1, memaddr.WrapBank))
	return memaddr.NewLong(c.DBR, uint16(hi)<<8|uint16(lo))
}

// addrDirectIndirectLong implements [dp]: a 24-bit pointer stored in the
// direct page, bank included, bypassing DBR entirely.
func (c *CPU) addrDirectIndirectLong() memaddr.Long {
	dpAddr := memaddr.NewLong(0, c.D+uint16(c.fetch8()))
	lo := c.read8(dpAddr)
	hi := c.read8(dpAddr.Add(1, memaddr.WrapBank))
	bank := c.read8(dpAddr.Add(2, memaddr.WrapBank))
	return memaddr.NewLong(bank, uint16(hi)<<8|uint16(lo))
}

// addrDirectIndirectLongY implements [dp],Y: same 24-bit pointer as
// addrDirectIndirectLong, then Y added with full 24-bit carry.
func (c *CPU) addrDirectIndirectLongY() memaddr.Long {
	base := c.addrDirectIndirectLong()
	return base.Add(int32(c.Y.Get(!c.P.IndexWidth8)), memaddr.NoWrap)
}

// addrStackRelative implements (sr,S): an 8-bit signed-ish offset from the
// stack pointer, always bank 0.
func (c *CPU) addrStackRelative() memaddr.Long {
	offset := c.fetch8()
	return memaddr.NewLong(0, c.SP.Get16()+uint16(offset))
}

// addrStackRelativeIndirectY implements (sr,S),Y: read a 16-bit pointer from
// the stack-relative address, apply DBR, then add Y.
func (c *CPU) addrStackRelativeIndirectY() memaddr.Long {
	offset := c.fetch8()
	spAddr := memaddr.NewLong(0, c.SP.Get16()+uint16(offset))
	lo := c.read8(spAddr)
	hi := c.read8(spAddr.Add(1, memaddr.WrapBank))
	ptr := memaddr.NewLong(c.DBR, uint16(hi)<<8|uint16(lo))
	return ptr.Add(int32(c.Y.Get(!c.P.IndexWidth8)), memaddr.NoWrap)
}

// readOperand reads either 8 or 16 bits from addr depending on wide,
// consuming the corresponding number of bus cycles.
func (c *CPU) readOperand(addr memaddr.Long, wide bool) uint16 {
	lo := c.read8(addr)
	if !wide {
		return uint16(lo)
	}
	hi := c.read8(addr.Add(1, memaddr.NoWrap))
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) writeOperand(addr memaddr.Long, v uint16, wide bool) {
	c.write8(addr, uint8(v))
	if wide {
		c.write8(addr.Add(1, memaddr.NoWrap), uint8(v>>8))
	}
}
