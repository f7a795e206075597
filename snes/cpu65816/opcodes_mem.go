package cpu65816

import "github.com/kurogane/gosnes/snes/memaddr"

// Read-modify-write memory operand handlers (ASL/LSR/ROL/ROR/INC/DEC/TSB/TRB)
// and the remaining addressing-mode variants of LDX/LDY/STX/STY/STZ/CPX/CPY/
// BIT, plus the indirect jump forms and the stack/exchange opcodes that don't
// fit the opXXXMem(resolve) factory shape used for the accumulator family.

func opASLMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		signBit := uint16(0x8000)
		if !wide {
			signBit = 0x80
		}
		c.P.Carry = v&signBit != 0
		v <<= 1
		if !wide {
			v &= 0xFF
		}
		c.writeOperand(addr, v, wide)
		if wide {
			c.P.setNZ16(v)
		} else {
			c.P.setNZ8(uint8(v))
		}
	}
}

func opLSRMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		c.P.Carry = v&1 != 0
		v >>= 1
		c.writeOperand(addr, v, wide)
		if wide {
			c.P.setNZ16(v)
		} else {
			c.P.setNZ8(uint8(v))
		}
	}
}

func opROLMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		signBit := uint16(0x8000)
		if !wide {
			signBit = 0x80
		}
		oldCarry := c.P.Carry
		c.P.Carry = v&signBit != 0
		v <<= 1
		if oldCarry {
			v |= 1
		}
		if !wide {
			v &= 0xFF
		}
		c.writeOperand(addr, v, wide)
		if wide {
			c.P.setNZ16(v)
		} else {
			c.P.setNZ8(uint8(v))
		}
	}
}

func opRORMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		signBit := uint16(0x8000)
		if !wide {
			signBit = 0x80
		}
		oldCarry := c.P.Carry
		c.P.Carry = v&1 != 0
		v >>= 1
		if oldCarry {
			v |= signBit
		}
		c.writeOperand(addr, v, wide)
		if wide {
			c.P.setNZ16(v)
		} else {
			c.P.setNZ8(uint8(v))
		}
	}
}

func opINCMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide) + 1
		if !wide {
			v &= 0xFF
		}
		c.writeOperand(addr, v, wide)
		if wide {
			c.P.setNZ16(v)
		} else {
			c.P.setNZ8(uint8(v))
		}
	}
}

func opDECMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide) - 1
		if !wide {
			v &= 0xFF
		}
		c.writeOperand(addr, v, wide)
		if wide {
			c.P.setNZ16(v)
		} else {
			c.P.setNZ8(uint8(v))
		}
	}
}

// opTSBMem/opTRBMem implement Test-and-Set/Reset-Bits: Zero reflects A&mem
// (pre-modification), then mem is OR'd or AND-NOT'd with A.
func opTSBMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		a := c.A.Get(wide)
		c.P.Zero = a&v == 0
		c.writeOperand(addr, v|a, wide)
	}
}

func opTRBMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		a := c.A.Get(wide)
		c.P.Zero = a&v == 0
		c.writeOperand(addr, v&^a, wide)
	}
}

func opCPXMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.IndexWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		c.compare(c.X.Get(wide), v, wide)
	}
}

func opCPYMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.IndexWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		c.compare(c.Y.Get(wide), v, wide)
	}
}

// opJMPIndirect implements JMP (abs): the pointer is always read from bank
// 0, and only PC (never PBR) is updated.
func opJMPIndirect(c *CPU) {
	ptr := memaddr.NewLong(0, c.fetch16())
	lo := c.read8(ptr)
	hi := c.read8(ptr.Add(1, memaddr.WrapBank))
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// opJMPIndirectLong implements JML [abs]: a 24-bit pointer read from bank 0,
// updating both PC and PBR.
func opJMPIndirectLong(c *CPU) {
	ptr := memaddr.NewLong(0, c.fetch16())
	lo := c.read8(ptr)
	hi := c.read8(ptr.Add(1, memaddr.WrapBank))
	bank := c.read8(ptr.Add(2, memaddr.WrapBank))
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.PBR = bank
}

// opJMPAbsXIndirect implements JMP (abs,X): the pointer lives in the current
// program bank, indexed by X before the indirection (unlike (dp,X) which
// indexes before reading too, but always in bank 0).
func opJMPAbsXIndirect(c *CPU) {
	base := c.fetch16()
	ptr := memaddr.NewLong(c.PBR, base).Add(int32(c.X.Get16()), memaddr.WrapBank)
	lo := c.read8(ptr)
	hi := c.read8(ptr.Add(1, memaddr.WrapBank))
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// opJSRAbsXIndirect implements JSR (abs,X): same pointer resolution as
// opJMPAbsXIndirect, but pushes the return address first.
func opJSRAbsXIndirect(c *CPU) {
	base := c.fetch16()
	ptr := memaddr.NewLong(c.PBR, base).Add(int32(c.X.Get16()), memaddr.WrapBank)
	lo := c.read8(ptr)
	hi := c.read8(ptr.Add(1, memaddr.WrapBank))
	target := uint16(hi)<<8 | uint16(lo)
	c.pushWord(c.PC - 1)
	c.PC = target
}

// opBRL implements BRL: an always-taken 16-bit signed relative branch.
func opBRL(c *CPU) {
	offset := int16(c.fetch16())
	c.PC = uint16(int32(c.PC) + int32(offset))
}

// opWDM is the reserved one-operand-byte NOP (0x42), left for future
// co-processor signaling and never dispatched by real software.
func opWDM(c *CPU) { c.fetch8() }

// opXBA swaps the accumulator's two bytes; N/Z reflect the new low byte
// (the accumulator's old high byte).
func opXBA(c *CPU) {
	v := c.A.Get16()
	lo, hi := uint8(v), uint8(v>>8)
	c.A.Set16(uint16(lo)<<8 | uint16(hi))
	c.P.setNZ8(hi)
}

func opTXY(c *CPU) {
	wide := !c.P.IndexWidth8
	v := c.X.Get(wide)
	c.Y.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opTYX(c *CPU) {
	wide := !c.P.IndexWidth8
	v := c.Y.Get(wide)
	c.X.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

// opPEA pushes a literal 16-bit immediate operand.
func opPEA(c *CPU) {
	c.pushWord(c.fetch16())
}

// opPEI pushes the 16-bit pointer stored at a direct-page address.
func opPEI(c *CPU) {
	dpAddr := memaddr.NewLong(0, c.D+uint16(c.fetch8()))
	lo := c.read8(dpAddr)
	hi := c.read8(dpAddr.Add(1, memaddr.WrapBank))
	c.pushWord(uint16(hi)<<8 | uint16(lo))
}

// opPER pushes PC plus a signed 16-bit displacement (PC already advanced
// past this 3-byte instruction).
func opPER(c *CPU) {
	offset := int16(c.fetch16())
	c.pushWord(uint16(int32(c.PC) + int32(offset)))
}
