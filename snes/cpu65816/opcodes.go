package cpu65816

import "github.com/kurogane/gosnes/snes/memaddr"

// opcodeHandler executes one instruction, including its own operand
// fetches and bus accesses.
type opcodeHandler func(c *CPU)

// opcodeTable is built once at init(), mirroring the teacher's
// opcodeMap/opcodeCBMap table-of-closures idiom. The 65C816 has no illegal
// opcodes - all 256 values are real instructions - so every entry below is
// wired to a real handler; unimplemented only guards against a future
// regression leaving a hole in the table.
var opcodeTable [256]opcodeHandler

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = unimplemented
	}

	opcodeTable[0x00] = opBRK
	opcodeTable[0x02] = opCOP
	opcodeTable[0x42] = opWDM
	opcodeTable[0xDB] = opSTP
	opcodeTable[0xCB] = opWAI
	opcodeTable[0xEA] = opNOP
	opcodeTable[0xEB] = opXBA

	opcodeTable[0x18] = opCLC
	opcodeTable[0x38] = opSEC
	opcodeTable[0x58] = opCLI
	opcodeTable[0x78] = opSEI
	opcodeTable[0xD8] = opCLD
	opcodeTable[0xF8] = opSED
	opcodeTable[0xB8] = opCLV
	opcodeTable[0xC2] = opREP
	opcodeTable[0xE2] = opSEP
	opcodeTable[0xFB] = opXCE

	opcodeTable[0xAA] = opTAX
	opcodeTable[0x8A] = opTXA
	opcodeTable[0xA8] = opTAY
	opcodeTable[0x98] = opTYA
	opcodeTable[0xBA] = opTSX
	opcodeTable[0x9A] = opTXS
	opcodeTable[0x5B] = opTCD
	opcodeTable[0x7B] = opTDC
	opcodeTable[0x1B] = opTCS
	opcodeTable[0x3B] = opTSC
	opcodeTable[0x9B] = opTXY
	opcodeTable[0xBB] = opTYX

	opcodeTable[0x1A] = opINCA
	opcodeTable[0x3A] = opDECA
	opcodeTable[0xE8] = opINX
	opcodeTable[0xCA] = opDEX
	opcodeTable[0xC8] = opINY
	opcodeTable[0x88] = opDEY
	opcodeTable[0xE6] = opINCMem((*CPU).addrDirect)
	opcodeTable[0xF6] = opINCMem((*CPU).addrDirectX)
	opcodeTable[0xEE] = opINCMem((*CPU).addrAbsolute)
	opcodeTable[0xFE] = opINCMem((*CPU).addrAbsoluteX)
	opcodeTable[0xC6] = opDECMem((*CPU).addrDirect)
	opcodeTable[0xD6] = opDECMem((*CPU).addrDirectX)
	opcodeTable[0xCE] = opDECMem((*CPU).addrAbsolute)
	opcodeTable[0xDE] = opDECMem((*CPU).addrAbsoluteX)

	opcodeTable[0x0A] = opASLA
	opcodeTable[0x4A] = opLSRA
	opcodeTable[0x2A] = opROLA
	opcodeTable[0x6A] = opRORA
	opcodeTable[0x06] = opASLMem((*CPU).addrDirect)
	opcodeTable[0x16] = opASLMem((*CPU).addrDirectX)
	opcodeTable[0x0E] = opASLMem((*CPU).addrAbsolute)
	opcodeTable[0x1E] = opASLMem((*CPU).addrAbsoluteX)
	opcodeTable[0x46] = opLSRMem((*CPU).addrDirect)
	opcodeTable[0x56] = opLSRMem((*CPU).addrDirectX)
	opcodeTable[0x4E] = opLSRMem((*CPU).addrAbsolute)
	opcodeTable[0x5E] = opLSRMem((*CPU).addrAbsoluteX)
	opcodeTable[0x26] = opROLMem((*CPU).addrDirect)
	opcodeTable[0x36] = opROLMem((*CPU).addrDirectX)
	opcodeTable[0x2E] = opROLMem((*CPU).addrAbsolute)
	opcodeTable[0x3E] = opROLMem((*CPU).addrAbsoluteX)
	opcodeTable[0x66] = opRORMem((*CPU).addrDirect)
	opcodeTable[0x76] = opRORMem((*CPU).addrDirectX)
	opcodeTable[0x6E] = opRORMem((*CPU).addrAbsolute)
	opcodeTable[0x7E] = opRORMem((*CPU).addrAbsoluteX)

	opcodeTable[0x04] = opTSBMem((*CPU).addrDirect)
	opcodeTable[0x0C] = opTSBMem((*CPU).addrAbsolute)
	opcodeTable[0x14] = opTRBMem((*CPU).addrDirect)
	opcodeTable[0x1C] = opTRBMem((*CPU).addrAbsolute)

	opcodeTable[0xA9] = opLDAImm
	opcodeTable[0xA5] = opLDAMem((*CPU).addrDirect)
	opcodeTable[0xB5] = opLDAMem((*CPU).addrDirectX)
	opcodeTable[0xAD] = opLDAMem((*CPU).addrAbsolute)
	opcodeTable[0xBD] = opLDAMem((*CPU).addrAbsoluteX)
	opcodeTable[0xB9] = opLDAMem((*CPU).addrAbsoluteY)
	opcodeTable[0xA1] = opLDAMem((*CPU).addrDirectXIndirect)
	opcodeTable[0xB1] = opLDAMem((*CPU).addrDirectIndirectY)
	opcodeTable[0xB2] = opLDAMem((*CPU).addrDirectIndirect)
	opcodeTable[0xA7] = opLDAMem((*CPU).addrDirectIndirectLong)
	opcodeTable[0xB7] = opLDAMem((*CPU).addrDirectIndirectLongY)
	opcodeTable[0xA3] = opLDAMem((*CPU).addrStackRelative)
	opcodeTable[0xB3] = opLDAMem((*CPU).addrStackRelativeIndirectY)
	opcodeTable[0xAF] = opLDAMem((*CPU).addrLong)
	opcodeTable[0xBF] = opLDAMem((*CPU).addrLongX)

	opcodeTable[0x85] = opSTAMem((*CPU).addrDirect)
	opcodeTable[0x95] = opSTAMem((*CPU).addrDirectX)
	opcodeTable[0x8D] = opSTAMem((*CPU).addrAbsolute)
	opcodeTable[0x9D] = opSTAMem((*CPU).addrAbsoluteX)
	opcodeTable[0x99] = opSTAMem((*CPU).addrAbsoluteY)
	opcodeTable[0x81] = opSTAMem((*CPU).addrDirectXIndirect)
	opcodeTable[0x91] = opSTAMem((*CPU).addrDirectIndirectY)
	opcodeTable[0x92] = opSTAMem((*CPU).addrDirectIndirect)
	opcodeTable[0x87] = opSTAMem((*CPU).addrDirectIndirectLong)
	opcodeTable[0x97] = opSTAMem((*CPU).addrDirectIndirectLongY)
	opcodeTable[0x83] = opSTAMem((*CPU).addrStackRelative)
	opcodeTable[0x93] = opSTAMem((*CPU).addrStackRelativeIndirectY)
	opcodeTable[0x8F] = opSTAMem((*CPU).addrLong)
	opcodeTable[0x9F] = opSTAMem((*CPU).addrLongX)
	opcodeTable[0x64] = opSTZMem((*CPU).addrDirect)
	opcodeTable[0x74] = opSTZMem((*CPU).addrDirectX)
	opcodeTable[0x9C] = opSTZMem((*CPU).addrAbsolute)
	opcodeTable[0x9E] = opSTZMem((*CPU).addrAbsoluteX)

	opcodeTable[0xA2] = opLDXImm
	opcodeTable[0xAE] = opLDXMem((*CPU).addrAbsolute)
	opcodeTable[0xA6] = opLDXMem((*CPU).addrDirect)
	opcodeTable[0xB6] = opLDXMem((*CPU).addrDirectY)
	opcodeTable[0xBE] = opLDXMem((*CPU).addrAbsoluteY)
	opcodeTable[0xA0] = opLDYImm
	opcodeTable[0xAC] = opLDYMem((*CPU).addrAbsolute)
	opcodeTable[0xA4] = opLDYMem((*CPU).addrDirect)
	opcodeTable[0xB4] = opLDYMem((*CPU).addrDirectX)
	opcodeTable[0xBC] = opLDYMem((*CPU).addrAbsoluteX)
	opcodeTable[0x8E] = opSTXMem((*CPU).addrAbsolute)
	opcodeTable[0x86] = opSTXMem((*CPU).addrDirect)
	opcodeTable[0x96] = opSTXMem((*CPU).addrDirectY)
	opcodeTable[0x8C] = opSTYMem((*CPU).addrAbsolute)
	opcodeTable[0x84] = opSTYMem((*CPU).addrDirect)
	opcodeTable[0x94] = opSTYMem((*CPU).addrDirectX)

	opcodeTable[0x69] = opADCImm
	opcodeTable[0x65] = opADCMem((*CPU).addrDirect)
	opcodeTable[0x75] = opADCMem((*CPU).addrDirectX)
	opcodeTable[0x6D] = opADCMem((*CPU).addrAbsolute)
	opcodeTable[0x7D] = opADCMem((*CPU).addrAbsoluteX)
	opcodeTable[0x79] = opADCMem((*CPU).addrAbsoluteY)
	opcodeTable[0x61] = opADCMem((*CPU).addrDirectXIndirect)
	opcodeTable[0x71] = opADCMem((*CPU).addrDirectIndirectY)
	opcodeTable[0x72] = opADCMem((*CPU).addrDirectIndirect)
	opcodeTable[0x67] = opADCMem((*CPU).addrDirectIndirectLong)
	opcodeTable[0x77] = opADCMem((*CPU).addrDirectIndirectLongY)
	opcodeTable[0x63] = opADCMem((*CPU).addrStackRelative)
	opcodeTable[0x73] = opADCMem((*CPU).addrStackRelativeIndirectY)
	opcodeTable[0x6F] = opADCMem((*CPU).addrLong)
	opcodeTable[0x7F] = opADCMem((*CPU).addrLongX)

	opcodeTable[0xE9] = opSBCImm
	opcodeTable[0xE5] = opSBCMem((*CPU).addrDirect)
	opcodeTable[0xF5] = opSBCMem((*CPU).addrDirectX)
	opcodeTable[0xED] = opSBCMem((*CPU).addrAbsolute)
	opcodeTable[0xFD] = opSBCMem((*CPU).addrAbsoluteX)
	opcodeTable[0xF9] = opSBCMem((*CPU).addrAbsoluteY)
	opcodeTable[0xE1] = opSBCMem((*CPU).addrDirectXIndirect)
	opcodeTable[0xF1] = opSBCMem((*CPU).addrDirectIndirectY)
	opcodeTable[0xF2] = opSBCMem((*CPU).addrDirectIndirect)
	opcodeTable[0xE7] = opSBCMem((*CPU).addrDirectIndirectLong)
	opcodeTable[0xF7] = opSBCMem((*CPU).addrDirectIndirectLongY)
	opcodeTable[0xE3] = opSBCMem((*CPU).addrStackRelative)
	opcodeTable[0xF3] = opSBCMem((*CPU).addrStackRelativeIndirectY)
	opcodeTable[0xEF] = opSBCMem((*CPU).addrLong)
	opcodeTable[0xFF] = opSBCMem((*CPU).addrLongX)

	opcodeTable[0x29] = opANDImm
	opcodeTable[0x25] = opANDMem((*CPU).addrDirect)
	opcodeTable[0x35] = opANDMem((*CPU).addrDirectX)
	opcodeTable[0x2D] = opANDMem((*CPU).addrAbsolute)
	opcodeTable[0x3D] = opANDMem((*CPU).addrAbsoluteX)
	opcodeTable[0x39] = opANDMem((*CPU).addrAbsoluteY)
	opcodeTable[0x21] = opANDMem((*CPU).addrDirectXIndirect)
	opcodeTable[0x31] = opANDMem((*CPU).addrDirectIndirectY)
	opcodeTable[0x32] = opANDMem((*CPU).addrDirectIndirect)
	opcodeTable[0x27] = opANDMem((*CPU).addrDirectIndirectLong)
	opcodeTable[0x37] = opANDMem((*CPU).addrDirectIndirectLongY)
	opcodeTable[0x23] = opANDMem((*CPU).addrStackRelative)
	opcodeTable[0x33] = opANDMem((*CPU).addrStackRelativeIndirectY)
	opcodeTable[0x2F] = opANDMem((*CPU).addrLong)
	opcodeTable[0x3F] = opANDMem((*CPU).addrLongX)

	opcodeTable[0x09] = opORAImm
	opcodeTable[0x05] = opORAMem((*CPU).addrDirect)
	opcodeTable[0x15] = opORAMem((*CPU).addrDirectX)
	opcodeTable[0x0D] = opORAMem((*CPU).addrAbsolute)
	opcodeTable[0x1D] = opORAMem((*CPU).addrAbsoluteX)
	opcodeTable[0x19] = opORAMem((*CPU).addrAbsoluteY)
	opcodeTable[0x01] = opORAMem((*CPU).addrDirectXIndirect)
	opcodeTable[0x11] = opORAMem((*CPU).addrDirectIndirectY)
	opcodeTable[0x12] = opORAMem((*CPU).addrDirectIndirect)
	opcodeTable[0x07] = opORAMem((*CPU).addrDirectIndirectLong)
	opcodeTable[0x17] = opORAMem((*CPU).addrDirectIndirectLongY)
	opcodeTable[0x03] = opORAMem((*CPU).addrStackRelative)
	opcodeTable[0x13] = opORAMem((*CPU).addrStackRelativeIndirectY)
	opcodeTable[0x0F] = opORAMem((*CPU).addrLong)
	opcodeTable[0x1F] = opORAMem((*CPU).addrLongX)

	opcodeTable[0x49] = opEORImm
	opcodeTable[0x45] = opEORMem((*CPU).addrDirect)
	opcodeTable[0x55] = opEORMem((*CPU).addrDirectX)
	opcodeTable[0x4D] = opEORMem((*CPU).addrAbsolute)
	opcodeTable[0x5D] = opEORMem((*CPU).addrAbsoluteX)
	opcodeTable[0x59] = opEORMem((*CPU).addrAbsoluteY)
	opcodeTable[0x41] = opEORMem((*CPU).addrDirectXIndirect)
	opcodeTable[0x51] = opEORMem((*CPU).addrDirectIndirectY)
	opcodeTable[0x52] = opEORMem((*CPU).addrDirectIndirect)
	opcodeTable[0x47] = opEORMem((*CPU).addrDirectIndirectLong)
	opcodeTable[0x57] = opEORMem((*CPU).addrDirectIndirectLongY)
	opcodeTable[0x43] = opEORMem((*CPU).addrStackRelative)
	opcodeTable[0x53] = opEORMem((*CPU).addrStackRelativeIndirectY)
	opcodeTable[0x4F] = opEORMem((*CPU).addrLong)
	opcodeTable[0x5F] = opEORMem((*CPU).addrLongX)

	opcodeTable[0xC9] = opCMPImm
	opcodeTable[0xC5] = opCMPMem((*CPU).addrDirect)
	opcodeTable[0xD5] = opCMPMem((*CPU).addrDirectX)
	opcodeTable[0xCD] = opCMPMem((*CPU).addrAbsolute)
	opcodeTable[0xDD] = opCMPMem((*CPU).addrAbsoluteX)
	opcodeTable[0xD9] = opCMPMem((*CPU).addrAbsoluteY)
	opcodeTable[0xC1] = opCMPMem((*CPU).addrDirectXIndirect)
	opcodeTable[0xD1] = opCMPMem((*CPU).addrDirectIndirectY)
	opcodeTable[0xD2] = opCMPMem((*CPU).addrDirectIndirect)
	opcodeTable[0xC7] = opCMPMem((*CPU).addrDirectIndirectLong)
	opcodeTable[0xD7] = opCMPMem((*CPU).addrDirectIndirectLongY)
	opcodeTable[0xC3] = opCMPMem((*CPU).addrStackRelative)
	opcodeTable[0xD3] = opCMPMem((*CPU).addrStackRelativeIndirectY)
	opcodeTable[0xCF] = opCMPMem((*CPU).addrLong)
	opcodeTable[0xDF] = opCMPMem((*CPU).addrLongX)

	opcodeTable[0xE0] = opCPXImm
	opcodeTable[0xE4] = opCPXMem((*CPU).addrDirect)
	opcodeTable[0xEC] = opCPXMem((*CPU).addrAbsolute)
	opcodeTable[0xC0] = opCPYImm
	opcodeTable[0xC4] = opCPYMem((*CPU).addrDirect)
	opcodeTable[0xCC] = opCPYMem((*CPU).addrAbsolute)

	opcodeTable[0x89] = opBITImm
	opcodeTable[0x24] = opBITMem((*CPU).addrDirect)
	opcodeTable[0x34] = opBITMem((*CPU).addrDirectX)
	opcodeTable[0x2C] = opBITMem((*CPU).addrAbsolute)
	opcodeTable[0x3C] = opBITMem((*CPU).addrAbsoluteX)

	opcodeTable[0x48] = opPHA
	opcodeTable[0x68] = opPLA
	opcodeTable[0xDA] = opPHX
	opcodeTable[0xFA] = opPLX
	opcodeTable[0x5A] = opPHY
	opcodeTable[0x7A] = opPLY
	opcodeTable[0x08] = opPHP
	opcodeTable[0x28] = opPLP
	opcodeTable[0x8B] = opPHB
	opcodeTable[0xAB] = opPLB
	opcodeTable[0x0B] = opPHD
	opcodeTable[0x2B] = opPLD
	opcodeTable[0x4B] = opPHK
	opcodeTable[0xF4] = opPEA
	opcodeTable[0xD4] = opPEI
	opcodeTable[0x62] = opPER

	opcodeTable[0x4C] = opJMPAbs
	opcodeTable[0x5C] = opJMPLong
	opcodeTable[0x6C] = opJMPIndirect
	opcodeTable[0xDC] = opJMPIndirectLong
	opcodeTable[0x7C] = opJMPAbsXIndirect
	opcodeTable[0x20] = opJSRAbs
	opcodeTable[0x22] = opJSLLong
	opcodeTable[0xFC] = opJSRAbsXIndirect
	opcodeTable[0x60] = opRTS
	opcodeTable[0x6B] = opRTL
	opcodeTable[0x40] = opRTI

	opcodeTable[0x90] = opBranch(func(c *CPU) bool { return !c.P.Carry })
	opcodeTable[0xB0] = opBranch(func(c *CPU) bool { return c.P.Carry })
	opcodeTable[0xF0] = opBranch(func(c *CPU) bool { return c.P.Zero })
	opcodeTable[0xD0] = opBranch(func(c *CPU) bool { return !c.P.Zero })
	opcodeTable[0x30] = opBranch(func(c *CPU) bool { return c.P.Negative })
	opcodeTable[0x10] = opBranch(func(c *CPU) bool { return !c.P.Negative })
	opcodeTable[0x50] = opBranch(func(c *CPU) bool { return !c.P.Overflow })
	opcodeTable[0x70] = opBranch(func(c *CPU) bool { return c.P.Overflow })
	opcodeTable[0x80] = opBranch(func(c *CPU) bool { return true })
	opcodeTable[0x82] = opBRL

	opcodeTable[0x54] = opMVN
	opcodeTable[0x44] = opMVP
}

// unimplemented is a defensive fallback only; every one of the 65C816's 256
// opcodes is a real instruction and every entry above is wired to one, so
// this should never actually be reached.
func unimplemented(c *CPU) {}

func opBRK(c *CPU) {
	c.fetch8() // signature byte, discarded
	if !c.Emulation {
		c.pushByte(c.PBR)
	}
	c.pushWord(c.PC)
	c.P.Break = true
	c.pushByte(c.P.Byte(c.Emulation))
	c.P.IRQDisable = true
	c.P.Decimal = false
	c.PBR = 0
	if c.Emulation {
		c.PC = c.readVector(vecIRQEmu)
	} else {
		c.PC = c.readVector(vecBRKNative)
	}
}

func opCOP(c *CPU) {
	c.fetch8()
	if !c.Emulation {
		c.pushByte(c.PBR)
	}
	c.pushWord(c.PC)
	c.pushByte(c.P.Byte(c.Emulation))
	c.P.IRQDisable = true
	c.P.Decimal = false
	c.PBR = 0
	if c.Emulation {
		c.PC = c.readVector(vecCOPEmu)
	} else {
		c.PC = c.readVector(vecCOPNative)
	}
}

func opSTP(c *CPU) { c.Stopped = true }
func opWAI(c *CPU) { c.Waiting = true }
func opNOP(c *CPU) {}

func opCLC(c *CPU) { c.P.Carry = false }
func opSEC(c *CPU) { c.P.Carry = true }
func opCLI(c *CPU) { c.P.IRQDisable = false }
func opSEI(c *CPU) { c.P.IRQDisable = true }
func opCLD(c *CPU) { c.P.Decimal = false }
func opSED(c *CPU) { c.P.Decimal = true }
func opCLV(c *CPU) { c.P.Overflow = false }

func opREP(c *CPU) {
	mask := c.fetch8()
	b := c.P.Byte(c.Emulation) &^ mask
	c.P.SetByte(b, c.Emulation)
}

func opSEP(c *CPU) {
	mask := c.fetch8()
	b := c.P.Byte(c.Emulation) | mask
	c.P.SetByte(b, c.Emulation)
}

// opXCE exchanges the Carry flag with the Emulation flag, the standard
// 65816 mode-switch idiom (SEC / XCE to enter emulation mode).
func opXCE(c *CPU) {
	old := c.Emulation
	c.Emulation = c.P.Carry
	c.P.Carry = old
	if c.Emulation {
		c.P.MemoryWidth8 = true
		c.P.IndexWidth8 = true
		// Entering emulation mode forces X/Y high bytes to zero.
		c.X.Set16(uint16(c.X.Get8()))
		c.Y.Set16(uint16(c.Y.Get8()))
		sp := c.SP.Get8()
		c.SP.Set16(0x0100 | uint16(sp))
	}
}

func opTAX(c *CPU) {
	wide := !c.P.IndexWidth8
	v := c.A.Get(wide)
	c.X.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opTAY(c *CPU) {
	wide := !c.P.IndexWidth8
	v := c.A.Get(wide)
	c.Y.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opTXA(c *CPU) {
	wide := !c.P.MemoryWidth8
	v := c.X.Get(wide)
	c.A.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opTYA(c *CPU) {
	wide := !c.P.MemoryWidth8
	v := c.Y.Get(wide)
	c.A.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opTSX(c *CPU) {
	wide := !c.P.IndexWidth8
	v := c.SP.Get(wide)
	c.X.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opTXS(c *CPU) {
	c.SP.Set16(c.X.Get16())
}

func opTCD(c *CPU) {
	c.D = c.A.Get16()
	c.P.setNZ16(c.D)
}

func opTDC(c *CPU) {
	c.A.Set16(c.D)
	c.P.setNZ16(c.D)
}

func opTCS(c *CPU) { c.SP.Set16(c.A.Get16()) }
func opTSC(c *CPU) {
	c.A.Set16(c.SP.Get16())
	c.P.setNZ16(c.A.Get16())
}

func opINCA(c *CPU) {
	wide := !c.P.MemoryWidth8
	v := c.A.Get(wide) + 1
	c.A.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opDECA(c *CPU) {
	wide := !c.P.MemoryWidth8
	v := c.A.Get(wide) - 1
	c.A.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opINX(c *CPU) {
	wide := !c.P.IndexWidth8
	v := c.X.Get(wide) + 1
	c.X.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opDEX(c *CPU) {
	wide := !c.P.IndexWidth8
	v := c.X.Get(wide) - 1
	c.X.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opINY(c *CPU) {
	wide := !c.P.IndexWidth8
	v := c.Y.Get(wide) + 1
	c.Y.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opDEY(c *CPU) {
	wide := !c.P.IndexWidth8
	v := c.Y.Get(wide) - 1
	c.Y.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opASLA(c *CPU) {
	wide := !c.P.MemoryWidth8
	v := c.A.Get(wide)
	signBit := uint16(0x8000)
	if !wide {
		signBit = 0x80
	}
	c.P.Carry = v&signBit != 0
	v <<= 1
	if !wide {
		v &= 0xFF
	}
	c.A.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opLSRA(c *CPU) {
	wide := !c.P.MemoryWidth8
	v := c.A.Get(wide)
	c.P.Carry = v&1 != 0
	v >>= 1
	c.A.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opROLA(c *CPU) {
	wide := !c.P.MemoryWidth8
	v := c.A.Get(wide)
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
	c.A.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opRORA(c *CPU) {
	wide := !c.P.MemoryWidth8
	v := c.A.Get(wide)
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
	c.A.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opLDAImm(c *CPU) {
	wide := !c.P.MemoryWidth8
	var v uint16
	if wide {
		v = c.fetch16()
	} else {
		v = uint16(c.fetch8())
	}
	c.A.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opLDAMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		c.A.Set(v, wide)
		if wide {
			c.P.setNZ16(v)
		} else {
			c.P.setNZ8(uint8(v))
		}
	}
}

func opSTAMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		c.writeOperand(addr, c.A.Get(wide), wide)
	}
}

func opSTZMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		c.writeOperand(addr, 0, wide)
	}
}

func opLDXImm(c *CPU) {
	wide := !c.P.IndexWidth8
	var v uint16
	if wide {
		v = c.fetch16()
	} else {
		v = uint16(c.fetch8())
	}
	c.X.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opLDYImm(c *CPU) {
	wide := !c.P.IndexWidth8
	var v uint16
	if wide {
		v = c.fetch16()
	} else {
		v = uint16(c.fetch8())
	}
	c.Y.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opLDXMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.IndexWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		c.X.Set(v, wide)
		if wide {
			c.P.setNZ16(v)
		} else {
			c.P.setNZ8(uint8(v))
		}
	}
}

func opLDYMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.IndexWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		c.Y.Set(v, wide)
		if wide {
			c.P.setNZ16(v)
		} else {
			c.P.setNZ8(uint8(v))
		}
	}
}

func opSTXMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.IndexWidth8
		addr := resolve(c)
		c.writeOperand(addr, c.X.Get(wide), wide)
	}
}

func opSTYMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.IndexWidth8
		addr := resolve(c)
		c.writeOperand(addr, c.Y.Get(wide), wide)
	}
}

func opADCImm(c *CPU) {
	wide := !c.P.MemoryWidth8
	var v uint16
	if wide {
		v = c.fetch16()
	} else {
		v = uint16(c.fetch8())
	}
	c.doADC(v)
}

func opADCMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		c.doADC(v)
	}
}

func opSBCImm(c *CPU) {
	wide := !c.P.MemoryWidth8
	var v uint16
	if wide {
		v = c.fetch16()
	} else {
		v = uint16(c.fetch8())
	}
	c.doSBC(v)
}

func opSBCMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		c.doSBC(v)
	}
}

func opANDImm(c *CPU) {
	wide := !c.P.MemoryWidth8
	var v uint16
	if wide {
		v = c.fetch16()
	} else {
		v = uint16(c.fetch8())
	}
	result := c.A.Get(wide) & v
	c.A.Set(result, wide)
	if wide {
		c.P.setNZ16(result)
	} else {
		c.P.setNZ8(uint8(result))
	}
}

func opANDMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		result := c.A.Get(wide) & v
		c.A.Set(result, wide)
		if wide {
			c.P.setNZ16(result)
		} else {
			c.P.setNZ8(uint8(result))
		}
	}
}

func opORAImm(c *CPU) {
	wide := !c.P.MemoryWidth8
	var v uint16
	if wide {
		v = c.fetch16()
	} else {
		v = uint16(c.fetch8())
	}
	result := c.A.Get(wide) | v
	c.A.Set(result, wide)
	if wide {
		c.P.setNZ16(result)
	} else {
		c.P.setNZ8(uint8(result))
	}
}

func opORAMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		result := c.A.Get(wide) | v
		c.A.Set(result, wide)
		if wide {
			c.P.setNZ16(result)
		} else {
			c.P.setNZ8(uint8(result))
		}
	}
}

func opEORImm(c *CPU) {
	wide := !c.P.MemoryWidth8
	var v uint16
	if wide {
		v = c.fetch16()
	} else {
		v = uint16(c.fetch8())
	}
	result := c.A.Get(wide) ^ v
	c.A.Set(result, wide)
	if wide {
		c.P.setNZ16(result)
	} else {
		c.P.setNZ8(uint8(result))
	}
}

func opEORMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		result := c.A.Get(wide) ^ v
		c.A.Set(result, wide)
		if wide {
			c.P.setNZ16(result)
		} else {
			c.P.setNZ8(uint8(result))
		}
	}
}

func (c *CPU) compare(reg, operand uint16, wide bool) {
	signBit := uint16(0x8000)
	if !wide {
		signBit = 0x80
	}
	result := reg - operand
	c.P.Carry = reg >= operand
	c.P.Zero = result == 0
	c.P.Negative = result&signBit != 0
}

func opCMPImm(c *CPU) {
	wide := !c.P.MemoryWidth8
	var v uint16
	if wide {
		v = c.fetch16()
	} else {
		v = uint16(c.fetch8())
	}
	c.compare(c.A.Get(wide), v, wide)
}

func opCMPMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		c.compare(c.A.Get(wide), v, wide)
	}
}

func opCPXImm(c *CPU) {
	wide := !c.P.IndexWidth8
	var v uint16
	if wide {
		v = c.fetch16()
	} else {
		v = uint16(c.fetch8())
	}
	c.compare(c.X.Get(wide), v, wide)
}

func opCPYImm(c *CPU) {
	wide := !c.P.IndexWidth8
	var v uint16
	if wide {
		v = c.fetch16()
	} else {
		v = uint16(c.fetch8())
	}
	c.compare(c.Y.Get(wide), v, wide)
}

func opBITImm(c *CPU) {
	wide := !c.P.MemoryWidth8
	var v uint16
	if wide {
		v = c.fetch16()
	} else {
		v = uint16(c.fetch8())
	}
	c.P.Zero = c.A.Get(wide)&v == 0
}

func opBITMem(resolve func(c *CPU) memaddr.Long) opcodeHandler {
	return func(c *CPU) {
		wide := !c.P.MemoryWidth8
		addr := resolve(c)
		v := c.readOperand(addr, wide)
		c.P.Zero = c.A.Get(wide)&v == 0
		signBit := uint16(0x8000)
		overflowBit := uint16(0x4000)
		if !wide {
			signBit = 0x80
			overflowBit = 0x40
		}
		c.P.Negative = v&signBit != 0
		c.P.Overflow = v&overflowBit != 0
	}
}

func opPHA(c *CPU) {
	wide := !c.P.MemoryWidth8
	if wide {
		c.pushWord(c.A.Get16())
	} else {
		c.pushByte(c.A.Get8())
	}
}

func opPLA(c *CPU) {
	wide := !c.P.MemoryWidth8
	var v uint16
	if wide {
		v = c.pullWord()
	} else {
		v = uint16(c.pullByte())
	}
	c.A.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opPHX(c *CPU) {
	wide := !c.P.IndexWidth8
	if wide {
		c.pushWord(c.X.Get16())
	} else {
		c.pushByte(c.X.Get8())
	}
}

func opPLX(c *CPU) {
	wide := !c.P.IndexWidth8
	var v uint16
	if wide {
		v = c.pullWord()
	} else {
		v = uint16(c.pullByte())
	}
	c.X.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opPHY(c *CPU) {
	wide := !c.P.IndexWidth8
	if wide {
		c.pushWord(c.Y.Get16())
	} else {
		c.pushByte(c.Y.Get8())
	}
}

func opPLY(c *CPU) {
	wide := !c.P.IndexWidth8
	var v uint16
	if wide {
		v = c.pullWord()
	} else {
		v = uint16(c.pullByte())
	}
	c.Y.Set(v, wide)
	if wide {
		c.P.setNZ16(v)
	} else {
		c.P.setNZ8(uint8(v))
	}
}

func opPHP(c *CPU) { c.pushByte(c.P.Byte(c.Emulation)) }
func opPLP(c *CPU) { c.P.SetByte(c.pullByte(), c.Emulation) }
func opPHB(c *CPU) { c.pushByte(c.DBR) }
func opPLB(c *CPU) {
	c.DBR = c.pullByte()
	c.P.setNZ8(c.DBR)
}
func opPHD(c *CPU) { c.pushWord(c.D) }
func opPLD(c *CPU) {
	c.D = c.pullWord()
	c.P.setNZ16(c.D)
}
func opPHK(c *CPU) { c.pushByte(c.PBR) }

func opJMPAbs(c *CPU) { c.PC = c.fetch16() }
func opJMPLong(c *CPU) {
	lo := c.fetch16()
	bank := c.fetch8()
	c.PC = lo
	c.PBR = bank
}

func opJSRAbs(c *CPU) {
	target := c.fetch16()
	c.pushWord(c.PC - 1)
	c.PC = target
}

func opJSLLong(c *CPU) {
	lo := c.fetch16()
	bank := c.fetch8()
	c.pushByte(c.PBR)
	c.pushWord(c.PC - 1)
	c.PC = lo
	c.PBR = bank
}

func opRTS(c *CPU) {
	c.PC = c.pullWord() + 1
}

func opRTL(c *CPU) {
	c.PC = c.pullWord() + 1
	c.PBR = c.pullByte()
}

func opRTI(c *CPU) {
	c.P.SetByte(c.pullByte(), c.Emulation)
	c.PC = c.pullWord()
	if !c.Emulation {
		c.PBR = c.pullByte()
	}
}

func opBranch(cond func(c *CPU) bool) opcodeHandler {
	return func(c *CPU) {
		offset := int8(c.fetch8())
		if cond(c) {
			c.PC = uint16(int32(c.PC) + int32(offset))
		}
	}
}

// opMVN/opMVP implement the block-move instructions. Per the decided
// MVN/MVP cycle allow-list (see DESIGN.md), these run the whole block in
// one Step call rather than yielding control between bytes.
func opMVN(c *CPU) {
	destBank := c.fetch8()
	srcBank := c.fetch8()
	c.DBR = destBank
	count := c.A.Get16()
	for {
		src := memaddr.NewLong(srcBank, c.X.Get16())
		dst := memaddr.NewLong(destBank, c.Y.Get16())
		v := c.read8(src)
		c.write8(dst, v)
		c.X.Set16(c.X.Get16() + 1)
		c.Y.Set16(c.Y.Get16() + 1)
		if count == 0 {
			break
		}
		count--
		c.A.Set16(count)
	}
	c.A.Set16(0xFFFF)
}

func opMVP(c *CPU) {
	destBank := c.fetch8()
	srcBank := c.fetch8()
	c.DBR = destBank
	count := c.A.Get16()
	for {
		src := memaddr.NewLong(srcBank, c.X.Get16())
		dst := memaddr.NewLong(destBank, c.Y.Get16())
		v := c.read8(src)
		c.write8(dst, v)
		c.X.Set16(c.X.Get16() - 1)
		c.Y.Set16(c.Y.Get16() - 1)
		if count == 0 {
			break
		}
		count--
		c.A.Set16(count)
	}
	c.A.Set16(0xFFFF)
}
