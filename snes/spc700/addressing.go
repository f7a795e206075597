package spc700

import "github.com/kurogane/gosnes/snes/memaddr"

// Addressing mode resolvers, mirroring cpu65816/addressing.go's shape:
// each issues the bus reads a real SPC700 would for that operand fetch.

func (c *CPU) addrDirect() memaddr.Addr16 {
	return c.directPage(c.fetch8())
}

func (c *CPU) addrDirectX() memaddr.Addr16 {
	return c.directPage(c.fetch8() + c.X)
}

func (c *CPU) addrDirectY() memaddr.Addr16 {
	return c.directPage(c.fetch8() + c.Y)
}

func (c *CPU) addrAbsolute() memaddr.Addr16 {
	return memaddr.Addr16(c.fetch16())
}

func (c *CPU) addrAbsoluteX() memaddr.Addr16 {
	base := c.fetch16()
	return memaddr.Addr16(base + uint16(c.X))
}

func (c *CPU) addrAbsoluteY() memaddr.Addr16 {
	base := c.fetch16()
	return memaddr.Addr16(base + uint16(c.Y))
}

// addrXIndirect implements [X]: indirect through the direct-page byte X
// points at.
func (c *CPU) addrXIndirect() memaddr.Addr16 {
	return c.directPage(c.X)
}

// addrYIndirect implements [Y]: indirect through the direct-page byte Y
// points at.
func (c *CPU) addrYIndirect() memaddr.Addr16 {
	return c.directPage(c.Y)
}

// addrIndexedIndirect implements [(dp+X)]: read a 16-bit pointer from the
// direct page at dp+X.
func (c *CPU) addrIndexedIndirect() memaddr.Addr16 {
	dp := c.directPage(c.fetch8() + c.X)
	lo := c.read8(dp)
	hi := c.read8(memaddr.Addr16(uint16(dp) + 1))
	return memaddr.Addr16(uint16(hi)<<8 | uint16(lo))
}

// addrIndirectIndexed implements [(dp)]+Y: read a 16-bit pointer from the
// direct page, then add Y.
func (c *CPU) addrIndirectIndexed() memaddr.Addr16 {
	dp := c.directPage(c.fetch8())
	lo := c.read8(dp)
	hi := c.read8(memaddr.Addr16(uint16(dp) + 1))
	ptr := uint16(hi)<<8 | uint16(lo)
	return memaddr.Addr16(ptr + uint16(c.Y))
}

// addrAbsoluteIndexedIndirect implements [!abs+X], used only by JMP.
func (c *CPU) addrAbsoluteIndexedIndirect() memaddr.Addr16 {
	base := c.fetch16() + uint16(c.X)
	lo := c.read8(memaddr.Addr16(base))
	hi := c.read8(memaddr.Addr16(base + 1))
	return memaddr.Addr16(uint16(hi)<<8 | uint16(lo))
}
