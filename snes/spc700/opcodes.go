package spc700

import "log/slog"

// opcodeHandler executes one instruction, including its own operand fetches
// and bus accesses.
type opcodeHandler func(c *CPU)

// opcodeTable is built once at init(), the same table-of-closures idiom
// cpu65816 uses. The SPC700 has no illegal opcodes either, so every one of
// the 256 entries below is wired to a real handler; unimplemented only
// guards against a future regression leaving a hole in the table.
var opcodeTable [256]opcodeHandler

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = unimplemented
	}

	opcodeTable[0x00] = opNOP
	opcodeTable[0x0F] = opBRK
	opcodeTable[0xEF] = opSLEEP
	opcodeTable[0xFF] = opSTOP

	opcodeTable[0x60] = opCLRC
	opcodeTable[0x80] = opSETC
	opcodeTable[0xED] = opNOTC
	opcodeTable[0xE0] = opCLRV
	opcodeTable[0x20] = opCLRP
	opcodeTable[0x40] = opSETP
	opcodeTable[0xA0] = opEI
	opcodeTable[0xC0] = opDI

	opcodeTable[0x9F] = opXCN
	opcodeTable[0xCF] = opMUL
	opcodeTable[0x9E] = opDIV
	opcodeTable[0xDF] = opDAA
	opcodeTable[0xBE] = opDAS

	// MOV A,#imm / A,(dp) / A,(dp+X) / A,abs / A,abs+X / A,abs+Y /
	// A,[dp+X] / A,[dp]+Y
	opcodeTable[0xE8] = opMOVAImm
	opcodeTable[0xE4] = opMOVAMem(memModeDirect)
	opcodeTable[0xF4] = opMOVAMem(memModeDirectX)
	opcodeTable[0xE5] = opMOVAMem(memModeAbsolute)
	opcodeTable[0xF5] = opMOVAMem(memModeAbsoluteX)
	opcodeTable[0xF6] = opMOVAMem(memModeAbsoluteY)
	opcodeTable[0xE7] = opMOVAMem(memModeIndexedIndirect)
	opcodeTable[0xF7] = opMOVAMem(memModeIndirectIndexed)
	opcodeTable[0xE6] = opMOVAMem(memModeXIndirect)

	opcodeTable[0xC4] = opMOVMemA(memModeDirect)
	opcodeTable[0xD4] = opMOVMemA(memModeDirectX)
	opcodeTable[0xC5] = opMOVMemA(memModeAbsolute)
	opcodeTable[0xD5] = opMOVMemA(memModeAbsoluteX)
	opcodeTable[0xD6] = opMOVMemA(memModeAbsoluteY)
	opcodeTable[0xC7] = opMOVMemA(memModeIndexedIndirect)
	opcodeTable[0xD7] = opMOVMemA(memModeIndirectIndexed)
	opcodeTable[0xC6] = opMOVMemA(memModeXIndirect)

	opcodeTable[0xCD] = opMOVXImm
	opcodeTable[0xF8] = opMOVXMem(memModeDirect)
	opcodeTable[0xE9] = opMOVXMem(memModeAbsolute)
	opcodeTable[0xD8] = opMOVMemX(memModeDirect)
	opcodeTable[0xC9] = opMOVMemX(memModeAbsolute)

	opcodeTable[0x8D] = opMOVYImm
	opcodeTable[0xEB] = opMOVYMem(memModeDirect)
	opcodeTable[0xFB] = opMOVYMem(memModeDirectX)
	opcodeTable[0xEC] = opMOVYMem(memModeAbsolute)
	opcodeTable[0xCB] = opMOVMemY(memModeDirect)
	opcodeTable[0xCC] = opMOVMemY(memModeAbsolute)

	opcodeTable[0x7D] = opMOVAX
	opcodeTable[0x5D] = opMOVXA
	opcodeTable[0xDD] = opMOVAY
	opcodeTable[0xFD] = opMOVYA
	opcodeTable[0xBD] = opMOVSPX
	opcodeTable[0x9D] = opMOVXSP

	opcodeTable[0x88] = opADCImm
	opcodeTable[0x84] = opADCMem(memModeDirect)
	opcodeTable[0x94] = opADCMem(memModeDirectX)
	opcodeTable[0x85] = opADCMem(memModeAbsolute)
	opcodeTable[0x95] = opADCMem(memModeAbsoluteX)
	opcodeTable[0x96] = opADCMem(memModeAbsoluteY)
	opcodeTable[0x86] = opADCMem(memModeXIndirect)
	opcodeTable[0x87] = opADCMem(memModeIndexedIndirect)
	opcodeTable[0x97] = opADCMem(memModeIndirectIndexed)
	opcodeTable[0x98] = opADCDPImm
	opcodeTable[0x89] = opADCDPDP
	opcodeTable[0x99] = opADCXY

	opcodeTable[0xA8] = opSBCImm
	opcodeTable[0xA4] = opSBCMem(memModeDirect)
	opcodeTable[0xB4] = opSBCMem(memModeDirectX)
	opcodeTable[0xA5] = opSBCMem(memModeAbsolute)
	opcodeTable[0xB5] = opSBCMem(memModeAbsoluteX)
	opcodeTable[0xB6] = opSBCMem(memModeAbsoluteY)
	opcodeTable[0xA6] = opSBCMem(memModeXIndirect)
	opcodeTable[0xA7] = opSBCMem(memModeIndexedIndirect)
	opcodeTable[0xB7] = opSBCMem(memModeIndirectIndexed)
	opcodeTable[0xB8] = opSBCDPImm
	opcodeTable[0xA9] = opSBCDPDP
	opcodeTable[0xB9] = opSBCXY

	opcodeTable[0x68] = opCMPImm
	opcodeTable[0x64] = opCMPMem(memModeDirect)
	opcodeTable[0x74] = opCMPMem(memModeDirectX)
	opcodeTable[0x65] = opCMPMem(memModeAbsolute)
	opcodeTable[0x75] = opCMPMem(memModeAbsoluteX)
	opcodeTable[0x76] = opCMPMem(memModeAbsoluteY)
	opcodeTable[0x66] = opCMPMem(memModeXIndirect)
	opcodeTable[0x67] = opCMPMem(memModeIndexedIndirect)
	opcodeTable[0x77] = opCMPMem(memModeIndirectIndexed)
	opcodeTable[0x78] = opCMPDPImm
	opcodeTable[0x69] = opCMPDPDP
	opcodeTable[0x79] = opCMPXY
	opcodeTable[0xC8] = opCMPXImm
	opcodeTable[0x3E] = opCPXMem(memModeDirect)
	opcodeTable[0x1E] = opCPXMem(memModeAbsolute)
	opcodeTable[0xAD] = opCMPYImm
	opcodeTable[0x7E] = opCPYMem(memModeDirect)
	opcodeTable[0x5E] = opCPYMem(memModeAbsolute)

	opcodeTable[0x28] = opANDImm
	opcodeTable[0x24] = opANDMem(memModeDirect)
	opcodeTable[0x34] = opANDMem(memModeDirectX)
	opcodeTable[0x25] = opANDMem(memModeAbsolute)
	opcodeTable[0x35] = opANDMem(memModeAbsoluteX)
	opcodeTable[0x36] = opANDMem(memModeAbsoluteY)
	opcodeTable[0x26] = opANDMem(memModeXIndirect)
	opcodeTable[0x27] = opANDMem(memModeIndexedIndirect)
	opcodeTable[0x37] = opANDMem(memModeIndirectIndexed)
	opcodeTable[0x38] = opBinaryDPImm(func(a, b uint8) uint8 { return a & b })
	opcodeTable[0x29] = opBinaryDPDP(func(a, b uint8) uint8 { return a & b })
	opcodeTable[0x39] = opBinaryXY(func(a, b uint8) uint8 { return a & b })

	opcodeTable[0x08] = opORImm
	opcodeTable[0x04] = opORMem(memModeDirect)
	opcodeTable[0x14] = opORMem(memModeDirectX)
	opcodeTable[0x05] = opORMem(memModeAbsolute)
	opcodeTable[0x15] = opORMem(memModeAbsoluteX)
	opcodeTable[0x16] = opORMem(memModeAbsoluteY)
	opcodeTable[0x06] = opORMem(memModeXIndirect)
	opcodeTable[0x07] = opORMem(memModeIndexedIndirect)
	opcodeTable[0x17] = opORMem(memModeIndirectIndexed)
	opcodeTable[0x18] = opBinaryDPImm(func(a, b uint8) uint8 { return a | b })
	opcodeTable[0x09] = opBinaryDPDP(func(a, b uint8) uint8 { return a | b })
	opcodeTable[0x19] = opBinaryXY(func(a, b uint8) uint8 { return a | b })

	opcodeTable[0x48] = opEORImm
	opcodeTable[0x44] = opEORMem(memModeDirect)
	opcodeTable[0x54] = opEORMem(memModeDirectX)
	opcodeTable[0x45] = opEORMem(memModeAbsolute)
	opcodeTable[0x55] = opEORMem(memModeAbsoluteX)
	opcodeTable[0x56] = opEORMem(memModeAbsoluteY)
	opcodeTable[0x46] = opEORMem(memModeXIndirect)
	opcodeTable[0x47] = opEORMem(memModeIndexedIndirect)
	opcodeTable[0x57] = opEORMem(memModeIndirectIndexed)
	opcodeTable[0x58] = opBinaryDPImm(func(a, b uint8) uint8 { return a ^ b })
	opcodeTable[0x49] = opBinaryDPDP(func(a, b uint8) uint8 { return a ^ b })
	opcodeTable[0x59] = opBinaryXY(func(a, b uint8) uint8 { return a ^ b })

	opcodeTable[0xBC] = opINCA
	opcodeTable[0x9C] = opDECA
	opcodeTable[0x3D] = opINCX
	opcodeTable[0x1D] = opDECX
	opcodeTable[0xFC] = opINCY
	opcodeTable[0xDC] = opDECY
	opcodeTable[0xAB] = opINCMem(memModeDirect)
	opcodeTable[0xBB] = opINCMem(memModeDirectX)
	opcodeTable[0xAC] = opINCMem(memModeAbsolute)
	opcodeTable[0x8B] = opDECMem(memModeDirect)
	opcodeTable[0x9B] = opDECMem(memModeDirectX)
	opcodeTable[0x8C] = opDECMem(memModeAbsolute)

	opcodeTable[0x1C] = opASLA
	opcodeTable[0x5C] = opLSRA
	opcodeTable[0x3C] = opROLA
	opcodeTable[0x7C] = opRORA
	opcodeTable[0x0B] = opASLMem(memModeDirect)
	opcodeTable[0x1B] = opASLMem(memModeDirectX)
	opcodeTable[0x0C] = opASLMem(memModeAbsolute)
	opcodeTable[0x4B] = opLSRMem(memModeDirect)
	opcodeTable[0x5B] = opLSRMem(memModeDirectX)
	opcodeTable[0x4C] = opLSRMem(memModeAbsolute)
	opcodeTable[0x2B] = opROLMem(memModeDirect)
	opcodeTable[0x3B] = opROLMem(memModeDirectX)
	opcodeTable[0x2C] = opROLMem(memModeAbsolute)
	opcodeTable[0x6B] = opRORMem(memModeDirect)
	opcodeTable[0x7B] = opRORMem(memModeDirectX)
	opcodeTable[0x6C] = opRORMem(memModeAbsolute)

	opcodeTable[0xF9] = opMOVXMem(memModeDirectY)
	opcodeTable[0xD9] = opMOVMemX(memModeDirectY)
	opcodeTable[0xDB] = opMOVMemY(memModeDirectX)

	opcodeTable[0xAF] = opMOVXIncA
	opcodeTable[0xBF] = opMOVAXInc
	opcodeTable[0x8F] = opMOVDPImm
	opcodeTable[0xFA] = opMOVDPDP

	opcodeTable[0xBA] = opMOVWYA
	opcodeTable[0xDA] = opMOVWAddr
	opcodeTable[0x3A] = opINCW
	opcodeTable[0x1A] = opDECW
	opcodeTable[0x7A] = opADDW
	opcodeTable[0x9A] = opSUBW
	opcodeTable[0x5A] = opCMPW

	opcodeTable[0x0E] = opTSET1
	opcodeTable[0x4E] = opTCLR1
	opcodeTable[0xEA] = opNOT1

	opcodeTable[0x2E] = opCBNE(memModeDirect)
	opcodeTable[0xDE] = opCBNE(memModeDirectX)
	opcodeTable[0x6E] = opDBNZDP
	opcodeTable[0xFE] = opDBNZY
	opcodeTable[0x4F] = opPCALL

	for i := uint8(0); i < 8; i++ {
		opcodeTable[i*0x20+0x02] = opSET1(i)
		opcodeTable[i*0x20+0x12] = opCLR1(i)
		opcodeTable[i*0x20+0x03] = opBBS(i)
		opcodeTable[i*0x20+0x13] = opBBC(i)
	}

	opcodeTable[0x2F] = opBranch(func(c *CPU) bool { return true })
	opcodeTable[0xF0] = opBranch(func(c *CPU) bool { return c.P.Zero })
	opcodeTable[0xD0] = opBranch(func(c *CPU) bool { return !c.P.Zero })
	opcodeTable[0xB0] = opBranch(func(c *CPU) bool { return c.P.Carry })
	opcodeTable[0x90] = opBranch(func(c *CPU) bool { return !c.P.Carry })
	opcodeTable[0x70] = opBranch(func(c *CPU) bool { return c.P.Overflow })
	opcodeTable[0x50] = opBranch(func(c *CPU) bool { return !c.P.Overflow })
	opcodeTable[0x30] = opBranch(func(c *CPU) bool { return c.P.Negative })
	opcodeTable[0x10] = opBranch(func(c *CPU) bool { return !c.P.Negative })

	opcodeTable[0x5F] = opJMPAbs
	opcodeTable[0x1F] = opJMPAbsIndexedIndirect
	opcodeTable[0x3F] = opCALL
	opcodeTable[0x6F] = opRET
	opcodeTable[0x7F] = opRETI

	for i := 0; i < 16; i++ {
		opcodeTable[0x01+uint8(i)*0x10] = opTCALL(i)
	}

	opcodeTable[0x2D] = opPUSHA
	opcodeTable[0x4D] = opPUSHX
	opcodeTable[0x6D] = opPUSHY
	opcodeTable[0x0D] = opPUSHPSW
	opcodeTable[0xAE] = opPOPA
	opcodeTable[0xCE] = opPOPX
	opcodeTable[0xEE] = opPOPY
	opcodeTable[0x8E] = opPOPPSW

	opcodeTable[0x4A] = opAND1
	opcodeTable[0x0A] = opOR1
	opcodeTable[0x6A] = opAND1Not
	opcodeTable[0x2A] = opOR1Not
	opcodeTable[0x8A] = opEOR1
	opcodeTable[0xAA] = opMOV1Read
	opcodeTable[0xCA] = opMOV1Write
}

// unimplemented is a defensive fallback only; every one of the SPC700's 256
// opcodes is wired to a real handler above, so this should never be reached.
func unimplemented(c *CPU) {
	c.internalCycle()
}

func opNOP(c *CPU) { c.internalCycle() }

func opCLRC(c *CPU)  { c.P.Carry = false; c.internalCycle() }
func opSETC(c *CPU)  { c.P.Carry = true; c.internalCycle() }
func opNOTC(c *CPU)  { c.P.Carry = !c.P.Carry; c.internalCycle() }
func opCLRV(c *CPU)  { c.P.Overflow = false; c.P.HalfCarry = false; c.internalCycle() }
func opCLRP(c *CPU)  { c.P.DirectPage = false; c.internalCycle() }
func opSETP(c *CPU)  { c.P.DirectPage = true; c.internalCycle() }
func opEI(c *CPU)    { c.P.Interrupt = true; c.internalCycle() }
func opDI(c *CPU)    { c.P.Interrupt = false; c.internalCycle() }

// opSLEEP and opSTOP both perform a permanent stall; the SNES's APU has no
// external interrupt line to resume from, so these are modeled as a one-way
// halt rather than a poll loop. Each logs a warning when it halts the core.
func opSLEEP(c *CPU) { c.Stopped = true; slog.Warn("spc700: SLEEP executed, core halted permanently") }
func opSTOP(c *CPU)  { c.Stopped = true; slog.Warn("spc700: STOP executed, core halted permanently") }

func opXCN(c *CPU) {
	c.internalCycle()
	c.internalCycle()
	c.internalCycle()
	c.internalCycle()
	c.A = c.A<<4 | c.A>>4
	c.P.setNZ(c.A)
}

// opMUL implements MUL YA: Y=high(Y*A), A=low(Y*A).
func opMUL(c *CPU) {
	for i := 0; i < 8; i++ {
		c.internalCycle()
	}
	product := uint16(c.Y) * uint16(c.A)
	c.A = uint8(product)
	c.Y = uint8(product >> 8)
	c.P.setNZ(c.Y)
}

// opDIV implements DIV YA,X using the SPC700's documented overflow-case
// formula when y >= (x<<1).
func opDIV(c *CPU) {
	for i := 0; i < 11; i++ {
		c.internalCycle()
	}
	ya := uint16(c.Y)<<8 | uint16(c.A)
	x := uint16(c.X)
	c.P.HalfCarry = (c.Y & 0xF) >= (c.X & 0xF)
	c.P.Overflow = c.Y >= c.X

	if x == 0 {
		c.A = uint8(ya / 0x100)
		c.Y = uint8(ya % 0x100)
		c.P.setNZ(c.A)
		return
	}

	var quotient, remainder uint16
	if uint16(c.Y) < x<<1 {
		quotient = ya / x
		remainder = ya % x
	} else {
		quotient = 255 - (ya-(x<<9))/(256-x)
		remainder = x + (ya-(x<<9))%(256-x)
	}
	c.A = uint8(quotient)
	c.Y = uint8(remainder)
	c.P.setNZ(c.A)
}

// opDAA/opDAS mirror cpu65816's nibble-wise correction approach, reused
// here for DAA/DAS rather than the 65816's wide-register ADC/SBC path since
// the SPC700 only ever decimal-adjusts the 8-bit accumulator after a prior
// binary ADC/SBC.
func opDAA(c *CPU) {
	c.internalCycle()
	c.internalCycle()
	a := int(c.A)
	if c.P.Carry || a > 0x99 {
		a += 0x60
		c.P.Carry = true
	}
	if c.P.HalfCarry || (a&0xF) > 0x9 {
		a += 0x06
	}
	c.A = uint8(a)
	c.P.setNZ(c.A)
}

func opDAS(c *CPU) {
	c.internalCycle()
	c.internalCycle()
	a := int(c.A)
	if !c.P.Carry || a > 0x99 {
		a -= 0x60
		c.P.Carry = false
	}
	if !c.P.HalfCarry || (a&0xF) > 0x9 {
		a -= 0x06
	}
	c.A = uint8(a)
	c.P.setNZ(c.A)
}
