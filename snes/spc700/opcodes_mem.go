package spc700

import "github.com/kurogane/gosnes/snes/memaddr"

// memMode is a resolver function, generalizing each opcode's addressing
// mode the same way cpu65816's opLDAMem(resolve) helpers do.
type memMode func(c *CPU) memaddr.Addr16

func memModeDirect(c *CPU) memaddr.Addr16             { return c.addrDirect() }
func memModeDirectX(c *CPU) memaddr.Addr16            { return c.addrDirectX() }
func memModeDirectY(c *CPU) memaddr.Addr16            { return c.addrDirectY() }
func memModeAbsolute(c *CPU) memaddr.Addr16           { return c.addrAbsolute() }
func memModeAbsoluteX(c *CPU) memaddr.Addr16          { return c.addrAbsoluteX() }
func memModeAbsoluteY(c *CPU) memaddr.Addr16          { return c.addrAbsoluteY() }
func memModeIndexedIndirect(c *CPU) memaddr.Addr16    { return c.addrIndexedIndirect() }
func memModeIndirectIndexed(c *CPU) memaddr.Addr16    { return c.addrIndirectIndexed() }
func memModeXIndirect(c *CPU) memaddr.Addr16          { return c.addrXIndirect() }
func memModeYIndirect(c *CPU) memaddr.Addr16          { return c.addrYIndirect() }

func opMOVAImm(c *CPU) {
	c.A = c.fetch8()
	c.P.setNZ(c.A)
}

func opMOVAMem(mode memMode) opcodeHandler {
	return func(c *CPU) {
		addr := mode(c)
		c.A = c.read8(addr)
		c.P.setNZ(c.A)
	}
}

func opMOVMemA(mode memMode) opcodeHandler {
	return func(c *CPU) {
		addr := mode(c)
		c.write8(addr, c.A)
	}
}

func opMOVXImm(c *CPU) {
	c.X = c.fetch8()
	c.P.setNZ(c.X)
}

func opMOVXMem(mode memMode) opcodeHandler {
	return func(c *CPU) {
		c.X = c.read8(mode(c))
		c.P.setNZ(c.X)
	}
}

func opMOVMemX(mode memMode) opcodeHandler {
	return func(c *CPU) { c.write8(mode(c), c.X) }
}

func opMOVYImm(c *CPU) {
	c.Y = c.fetch8()
	c.P.setNZ(c.Y)
}

func opMOVYMem(mode memMode) opcodeHandler {
	return func(c *CPU) {
		c.Y = c.read8(mode(c))
		c.P.setNZ(c.Y)
	}
}

func opMOVMemY(mode memMode) opcodeHandler {
	return func(c *CPU) { c.write8(mode(c), c.Y) }
}

func opMOVAX(c *CPU) { c.internalCycle(); c.A = c.X; c.P.setNZ(c.A) }
func opMOVXA(c *CPU) { c.internalCycle(); c.X = c.A; c.P.setNZ(c.X) }
func opMOVAY(c *CPU) { c.internalCycle(); c.A = c.Y; c.P.setNZ(c.A) }
func opMOVYA(c *CPU) { c.internalCycle(); c.Y = c.A; c.P.setNZ(c.Y) }
func opMOVSPX(c *CPU) { c.internalCycle(); c.SP = c.X }
func opMOVXSP(c *CPU) { c.internalCycle(); c.X = c.SP; c.P.setNZ(c.X) }

// adcCompute is the shared core of ADC/SBC: given any 8-bit target (not just
// the accumulator, used by the dp,dp and dp,#imm variants), returns the sum
// with carry-in and updates C/H/V/N/Z.
func (c *CPU) adcCompute(a, operand uint8) uint8 {
	carryIn := carryBit(c.P.Carry)
	sum := int(a) + int(operand) + carryIn
	c.P.HalfCarry = (a&0xF)+(operand&0xF)+uint8(carryIn) > 0xF
	c.P.Overflow = (^(a ^ operand) & (a ^ uint8(sum)) & 0x80) != 0
	c.P.Carry = sum > 0xFF
	result := uint8(sum)
	c.P.setNZ(result)
	return result
}

func (c *CPU) doADC(operand uint8) { c.A = c.adcCompute(c.A, operand) }
func (c *CPU) doSBC(operand uint8) { c.A = c.adcCompute(c.A, ^operand) }

func (c *CPU) adcTo(target, operand uint8) uint8 { return c.adcCompute(target, operand) }
func (c *CPU) sbcTo(target, operand uint8) uint8 { return c.adcCompute(target, ^operand) }

func (c *CPU) doCMP(a, operand uint8) {
	diff := int(a) - int(operand)
	c.P.Carry = diff >= 0
	c.P.setNZ(uint8(diff))
}

func carryBit(b bool) int {
	if b {
		return 1
	}
	return 0
}

func opADCImm(c *CPU)          { c.doADC(c.fetch8()) }
func opADCMem(mode memMode) opcodeHandler {
	return func(c *CPU) { c.doADC(c.read8(mode(c))) }
}

func opSBCImm(c *CPU) { c.doSBC(c.fetch8()) }
func opSBCMem(mode memMode) opcodeHandler {
	return func(c *CPU) { c.doSBC(c.read8(mode(c))) }
}

func opCMPImm(c *CPU) { c.doCMP(c.A, c.fetch8()) }
func opCMPMem(mode memMode) opcodeHandler {
	return func(c *CPU) { c.doCMP(c.A, c.read8(mode(c))) }
}
func opCMPXImm(c *CPU) { c.doCMP(c.X, c.fetch8()) }
func opCMPYImm(c *CPU) { c.doCMP(c.Y, c.fetch8()) }

func opANDImm(c *CPU) { c.A &= c.fetch8(); c.P.setNZ(c.A) }
func opANDMem(mode memMode) opcodeHandler {
	return func(c *CPU) { c.A &= c.read8(mode(c)); c.P.setNZ(c.A) }
}
func opORImm(c *CPU) { c.A |= c.fetch8(); c.P.setNZ(c.A) }
func opORMem(mode memMode) opcodeHandler {
	return func(c *CPU) { c.A |= c.read8(mode(c)); c.P.setNZ(c.A) }
}
func opEORImm(c *CPU) { c.A ^= c.fetch8(); c.P.setNZ(c.A) }
func opEORMem(mode memMode) opcodeHandler {
	return func(c *CPU) { c.A ^= c.read8(mode(c)); c.P.setNZ(c.A) }
}

func opINCA(c *CPU) { c.internalCycle(); c.A++; c.P.setNZ(c.A) }
func opDECA(c *CPU) { c.internalCycle(); c.A--; c.P.setNZ(c.A) }
func opINCX(c *CPU) { c.internalCycle(); c.X++; c.P.setNZ(c.X) }
func opDECX(c *CPU) { c.internalCycle(); c.X--; c.P.setNZ(c.X) }
func opINCY(c *CPU) { c.internalCycle(); c.Y++; c.P.setNZ(c.Y) }
func opDECY(c *CPU) { c.internalCycle(); c.Y--; c.P.setNZ(c.Y) }

func opINCMem(mode memMode) opcodeHandler {
	return func(c *CPU) {
		addr := mode(c)
		v := c.read8(addr) + 1
		c.write8(addr, v)
		c.P.setNZ(v)
	}
}

func opDECMem(mode memMode) opcodeHandler {
	return func(c *CPU) {
		addr := mode(c)
		v := c.read8(addr) - 1
		c.write8(addr, v)
		c.P.setNZ(v)
	}
}

func opASLA(c *CPU) {
	c.internalCycle()
	c.P.Carry = c.A&0x80 != 0
	c.A <<= 1
	c.P.setNZ(c.A)
}

func opLSRA(c *CPU) {
	c.internalCycle()
	c.P.Carry = c.A&0x01 != 0
	c.A >>= 1
	c.P.setNZ(c.A)
}

func opROLA(c *CPU) {
	c.internalCycle()
	carryIn := uint8(0)
	if c.P.Carry {
		carryIn = 1
	}
	c.P.Carry = c.A&0x80 != 0
	c.A = (c.A << 1) | carryIn
	c.P.setNZ(c.A)
}

func opRORA(c *CPU) {
	c.internalCycle()
	carryIn := uint8(0)
	if c.P.Carry {
		carryIn = 0x80
	}
	c.P.Carry = c.A&0x01 != 0
	c.A = (c.A >> 1) | carryIn
	c.P.setNZ(c.A)
}

// opBranch implements the relative-branch family (BRA always-taken via the
// const-true predicate, BEQ/BNE/... otherwise): fetch the signed
// displacement unconditionally, apply it only if the predicate holds.
func opBranch(cond func(c *CPU) bool) opcodeHandler {
	return func(c *CPU) {
		disp := int8(c.fetch8())
		if cond(c) {
			c.internalCycle()
			c.internalCycle()
			c.PC = uint16(int32(c.PC) + int32(disp))
		}
	}
}

func opJMPAbs(c *CPU) { c.PC = c.fetch16() }

func opJMPAbsIndexedIndirect(c *CPU) {
	c.PC = uint16(c.addrAbsoluteIndexedIndirect())
}

func opCALL(c *CPU) {
	target := c.fetch16()
	c.internalCycle()
	c.internalCycle()
	c.internalCycle()
	c.pushWord(c.PC)
	c.PC = target
}

func opRET(c *CPU) { c.PC = c.pullWord() }

func opRETI(c *CPU) {
	c.P.SetByte(c.pullByte())
	c.PC = c.pullWord()
}

// opTCALL returns the handler for TCALL n, which vectors through a fixed
// table at 0xFFDE-0xFFFF (16 entries of 2 bytes, descending from vector
// 15 down to 0).
func opTCALL(n int) opcodeHandler {
	return func(c *CPU) {
		c.internalCycle()
		c.internalCycle()
		c.internalCycle()
		c.pushWord(c.PC)
		vecAddr := uint16(0xFFDE + (15-n)*2)
		c.PC = c.readVector(vecAddr)
	}
}

func opBRK(c *CPU) { c.HandleBRK() }

func opPUSHA(c *CPU)   { c.internalCycle(); c.pushByte(c.A) }
func opPUSHX(c *CPU)   { c.internalCycle(); c.pushByte(c.X) }
func opPUSHY(c *CPU)   { c.internalCycle(); c.pushByte(c.Y) }
func opPUSHPSW(c *CPU) { c.internalCycle(); c.pushByte(c.P.Byte()) }
func opPOPA(c *CPU)    { c.internalCycle(); c.internalCycle(); c.A = c.pullByte() }
func opPOPX(c *CPU)    { c.internalCycle(); c.internalCycle(); c.X = c.pullByte() }
func opPOPY(c *CPU)    { c.internalCycle(); c.internalCycle(); c.Y = c.pullByte() }
func opPOPPSW(c *CPU)  { c.internalCycle(); c.internalCycle(); c.P.SetByte(c.pullByte()) }

// bitAddr decodes the 13-bit address literal used by AND1/OR1/EOR1/MOV1:
// the low 13 bits select a memory address, the top 3 bits select which bit
// of that byte.
func (c *CPU) bitAddr() (memaddr.Addr16, uint8) {
	raw := c.fetch16()
	addr := memaddr.Addr16(raw & 0x1FFF)
	bitIdx := uint8(raw >> 13)
	return addr, bitIdx
}

func opAND1(c *CPU) {
	addr, bit := c.bitAddr()
	v := c.read8(addr)
	c.P.Carry = c.P.Carry && (v>>bit)&1 != 0
}

func opAND1Not(c *CPU) {
	addr, bit := c.bitAddr()
	v := c.read8(addr)
	c.P.Carry = c.P.Carry && (v>>bit)&1 == 0
}

func opOR1(c *CPU) {
	addr, bit := c.bitAddr()
	v := c.read8(addr)
	c.P.Carry = c.P.Carry || (v>>bit)&1 != 0
}

func opOR1Not(c *CPU) {
	addr, bit := c.bitAddr()
	v := c.read8(addr)
	c.P.Carry = c.P.Carry || (v>>bit)&1 == 0
}

func opEOR1(c *CPU) {
	addr, bit := c.bitAddr()
	v := c.read8(addr)
	c.P.Carry = c.P.Carry != ((v>>bit)&1 != 0)
}

// opMOV1Read implements MOV1 C,mem.bit.
func opMOV1Read(c *CPU) {
	addr, bit := c.bitAddr()
	v := c.read8(addr)
	c.P.Carry = (v>>bit)&1 != 0
}

// opMOV1Write implements MOV1 mem.bit,C.
func opMOV1Write(c *CPU) {
	addr, bit := c.bitAddr()
	v := c.read8(addr)
	if c.P.Carry {
		v |= 1 << bit
	} else {
		v &^= 1 << bit
	}
	c.write8(addr, v)
}

// opASLMem/opLSRMem/opROLMem/opRORMem are the memory-operand forms of the
// accumulator shift/rotate family, covering dp/dp+X/abs addressing.
func opASLMem(mode memMode) opcodeHandler {
	return func(c *CPU) {
		addr := mode(c)
		v := c.read8(addr)
		c.P.Carry = v&0x80 != 0
		v <<= 1
		c.write8(addr, v)
		c.P.setNZ(v)
	}
}

func opLSRMem(mode memMode) opcodeHandler {
	return func(c *CPU) {
		addr := mode(c)
		v := c.read8(addr)
		c.P.Carry = v&0x01 != 0
		v >>= 1
		c.write8(addr, v)
		c.P.setNZ(v)
	}
}

func opROLMem(mode memMode) opcodeHandler {
	return func(c *CPU) {
		addr := mode(c)
		v := c.read8(addr)
		carryIn := uint8(0)
		if c.P.Carry {
			carryIn = 1
		}
		c.P.Carry = v&0x80 != 0
		v = (v << 1) | carryIn
		c.write8(addr, v)
		c.P.setNZ(v)
	}
}

func opRORMem(mode memMode) opcodeHandler {
	return func(c *CPU) {
		addr := mode(c)
		v := c.read8(addr)
		carryIn := uint8(0)
		if c.P.Carry {
			carryIn = 0x80
		}
		c.P.Carry = v&0x01 != 0
		v = (v >> 1) | carryIn
		c.write8(addr, v)
		c.P.setNZ(v)
	}
}

// opCPXMem/opCPYMem are the memory-operand forms of CPX/CPY (immediate-only
// in the earlier table; dp and abs are real addressing modes too).
func opCPXMem(mode memMode) opcodeHandler {
	return func(c *CPU) { c.doCMP(c.X, c.read8(mode(c))) }
}

func opCPYMem(mode memMode) opcodeHandler {
	return func(c *CPU) { c.doCMP(c.Y, c.read8(mode(c))) }
}

// opTSET1/opTCLR1 implement TSET1/TCLR1 !a: test A against the absolute
// operand (Z is set when A&mem is zero, N is bit 7 of A|mem), then set or
// clear the bits A selects.
func opTSET1(c *CPU) {
	addr := c.addrAbsolute()
	v := c.read8(addr)
	c.P.Zero = c.A&v == 0
	c.P.Negative = (c.A|v)&0x80 != 0
	c.write8(addr, v|c.A)
}

func opTCLR1(c *CPU) {
	addr := c.addrAbsolute()
	v := c.read8(addr)
	c.P.Zero = c.A&v == 0
	c.P.Negative = (c.A|v)&0x80 != 0
	c.write8(addr, v&^c.A)
}

// opNOT1 implements NOT1 mem.bit: flips a single bit, no flags affected.
func opNOT1(c *CPU) {
	addr, bit := c.bitAddr()
	v := c.read8(addr)
	c.write8(addr, v^(1<<bit))
}

// opSET1/opCLR1 return the handler for SET1/CLR1 dp.bit, one of the 8
// fixed-bit-index variants encoded in the opcode's high nibble.
func opSET1(bit uint8) opcodeHandler {
	return func(c *CPU) {
		addr := c.addrDirect()
		v := c.read8(addr)
		c.write8(addr, v|1<<bit)
	}
}

func opCLR1(bit uint8) opcodeHandler {
	return func(c *CPU) {
		addr := c.addrDirect()
		v := c.read8(addr)
		c.write8(addr, v&^(1<<bit))
	}
}

// opBBS/opBBC return the handler for the dp-bit-test-and-branch family:
// branch taken if the selected bit of the dp byte is set (BBS) or clear
// (BBC).
func opBBS(bit uint8) opcodeHandler {
	return func(c *CPU) {
		addr := c.addrDirect()
		disp := int8(c.fetch8())
		v := c.read8(addr)
		if v&(1<<bit) != 0 {
			c.internalCycle()
			c.internalCycle()
			c.PC = uint16(int32(c.PC) + int32(disp))
		}
	}
}

func opBBC(bit uint8) opcodeHandler {
	return func(c *CPU) {
		addr := c.addrDirect()
		disp := int8(c.fetch8())
		v := c.read8(addr)
		if v&(1<<bit) == 0 {
			c.internalCycle()
			c.internalCycle()
			c.PC = uint16(int32(c.PC) + int32(disp))
		}
	}
}

// opCBNE returns the handler for CBNE dp/dp+X,rel: branch if A differs from
// the dp operand.
func opCBNE(mode memMode) opcodeHandler {
	return func(c *CPU) {
		addr := mode(c)
		v := c.read8(addr)
		c.internalCycle()
		disp := int8(c.fetch8())
		if c.A != v {
			c.internalCycle()
			c.internalCycle()
			c.PC = uint16(int32(c.PC) + int32(disp))
		}
	}
}

// opDBNZDP implements DBNZ dp,rel: decrement the dp byte, branch if nonzero.
func opDBNZDP(c *CPU) {
	addr := c.addrDirect()
	v := c.read8(addr) - 1
	c.write8(addr, v)
	disp := int8(c.fetch8())
	if v != 0 {
		c.internalCycle()
		c.internalCycle()
		c.PC = uint16(int32(c.PC) + int32(disp))
	}
}

// opDBNZY implements DBNZ Y,rel: decrement Y directly, no memory access.
func opDBNZY(c *CPU) {
	c.internalCycle()
	c.Y--
	disp := int8(c.fetch8())
	if c.Y != 0 {
		c.internalCycle()
		c.internalCycle()
		c.PC = uint16(int32(c.PC) + int32(disp))
	}
}

// opPCALL implements PCALL u: calls into the fixed page 0xFF00-0xFFFF.
func opPCALL(c *CPU) {
	offset := c.fetch8()
	c.internalCycle()
	c.internalCycle()
	c.pushWord(c.PC)
	c.PC = 0xFF00 | uint16(offset)
}

// ya/setYA pack/unpack the 16-bit accumulator pair used by
// MOVW/INCW/DECW/ADDW/SUBW/CMPW.
func (c *CPU) ya() uint16     { return uint16(c.Y)<<8 | uint16(c.A) }
func (c *CPU) setYA(v uint16) { c.Y, c.A = uint8(v>>8), uint8(v) }

func (c *CPU) readDPWord(offset uint8) uint16 {
	lo := c.read8(c.directPage(offset))
	hi := c.read8(c.directPage(offset + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) writeDPWord(offset uint8, v uint16) {
	c.write8(c.directPage(offset), uint8(v))
	c.write8(c.directPage(offset+1), uint8(v>>8))
}

// opMOVWYA implements MOVW YA,d: load only, Z/N reflect the 16-bit result.
func opMOVWYA(c *CPU) {
	offset := c.fetch8()
	v := c.readDPWord(offset)
	c.setYA(v)
	c.P.Zero = v == 0
	c.P.Negative = v&0x8000 != 0
}

// opMOVWAddr implements MOVW d,YA: store only, flags unaffected.
func opMOVWAddr(c *CPU) {
	offset := c.fetch8()
	c.internalCycle()
	c.writeDPWord(offset, c.ya())
}

func opINCW(c *CPU) {
	offset := c.fetch8()
	v := c.readDPWord(offset) + 1
	c.writeDPWord(offset, v)
	c.P.Zero = v == 0
	c.P.Negative = v&0x8000 != 0
}

func opDECW(c *CPU) {
	offset := c.fetch8()
	v := c.readDPWord(offset) - 1
	c.writeDPWord(offset, v)
	c.P.Zero = v == 0
	c.P.Negative = v&0x8000 != 0
}

func opADDW(c *CPU) {
	offset := c.fetch8()
	a := c.ya()
	operand := c.readDPWord(offset)
	sum := uint32(a) + uint32(operand)
	c.P.HalfCarry = (a&0xFFF)+(operand&0xFFF) > 0xFFF
	c.P.Overflow = (^(a ^ operand) & (a ^ uint16(sum)) & 0x8000) != 0
	c.P.Carry = sum > 0xFFFF
	result := uint16(sum)
	c.setYA(result)
	c.P.Zero = result == 0
	c.P.Negative = result&0x8000 != 0
}

func opSUBW(c *CPU) {
	offset := c.fetch8()
	a := c.ya()
	operand := c.readDPWord(offset)
	diff := int32(a) - int32(operand)
	c.P.HalfCarry = int32(a&0xFFF)-int32(operand&0xFFF) >= 0
	c.P.Overflow = ((a ^ operand) & (a ^ uint16(diff)) & 0x8000) != 0
	c.P.Carry = diff >= 0
	result := uint16(diff)
	c.setYA(result)
	c.P.Zero = result == 0
	c.P.Negative = result&0x8000 != 0
}

// opCMPW implements CMPW YA,d: compare only; unlike ADDW/SUBW it leaves H
// and V untouched.
func opCMPW(c *CPU) {
	offset := c.fetch8()
	a := c.ya()
	operand := c.readDPWord(offset)
	diff := int32(a) - int32(operand)
	c.P.Carry = diff >= 0
	result := uint16(diff)
	c.P.Zero = result == 0
	c.P.Negative = result&0x8000 != 0
}

// opMOVDPImm implements MOV d,#i: store only, flags unaffected. The operand
// order is immediate-then-address, matching the other d,#i instructions.
func opMOVDPImm(c *CPU) {
	imm := c.fetch8()
	addr := c.addrDirect()
	c.write8(addr, imm)
}

// opMOVXIncA implements MOV (X)+,A: write A through X, then increment X.
func opMOVXIncA(c *CPU) {
	addr := c.directPage(c.X)
	c.write8(addr, c.A)
	c.X++
	c.internalCycle()
}

// opMOVAXInc implements MOV A,(X)+: read through X into A, then increment X.
func opMOVAXInc(c *CPU) {
	addr := c.directPage(c.X)
	c.A = c.read8(addr)
	c.X++
	c.internalCycle()
	c.P.setNZ(c.A)
}

// opBinaryDPImm returns the handler for the dp,#imm arithmetic/logic family
// (OR/AND/EOR d,#i): the immediate byte precedes the dp address byte in the
// instruction stream.
func opBinaryDPImm(op func(a, b uint8) uint8) opcodeHandler {
	return func(c *CPU) {
		imm := c.fetch8()
		addr := c.addrDirect()
		v := c.read8(addr)
		result := op(v, imm)
		c.write8(addr, result)
		c.P.setNZ(result)
	}
}

func opCMPDPImm(c *CPU) {
	imm := c.fetch8()
	addr := c.addrDirect()
	c.doCMP(c.read8(addr), imm)
}

func opADCDPImm(c *CPU) {
	imm := c.fetch8()
	addr := c.addrDirect()
	v := c.read8(addr)
	c.write8(addr, c.adcTo(v, imm))
}

func opSBCDPImm(c *CPU) {
	imm := c.fetch8()
	addr := c.addrDirect()
	v := c.read8(addr)
	c.write8(addr, c.sbcTo(v, imm))
}

// opBinaryDPDP returns the handler for the dp,dp arithmetic/logic family
// (OR/AND/EOR dd,ds): the source address is fetched before the destination
// address, even though the mnemonic lists destination first.
func opBinaryDPDP(op func(a, b uint8) uint8) opcodeHandler {
	return func(c *CPU) {
		srcAddr := c.addrDirect()
		src := c.read8(srcAddr)
		dstAddr := c.addrDirect()
		dst := c.read8(dstAddr)
		result := op(dst, src)
		c.write8(dstAddr, result)
		c.P.setNZ(result)
	}
}

func opCMPDPDP(c *CPU) {
	srcAddr := c.addrDirect()
	src := c.read8(srcAddr)
	dstAddr := c.addrDirect()
	dst := c.read8(dstAddr)
	c.doCMP(dst, src)
}

func opADCDPDP(c *CPU) {
	srcAddr := c.addrDirect()
	src := c.read8(srcAddr)
	dstAddr := c.addrDirect()
	dst := c.read8(dstAddr)
	c.write8(dstAddr, c.adcTo(dst, src))
}

func opSBCDPDP(c *CPU) {
	srcAddr := c.addrDirect()
	src := c.read8(srcAddr)
	dstAddr := c.addrDirect()
	dst := c.read8(dstAddr)
	c.write8(dstAddr, c.sbcTo(dst, src))
}

// opMOVDPDP implements MOV dd,ds: source fetched first, write-only, no
// flags affected.
func opMOVDPDP(c *CPU) {
	srcAddr := c.addrDirect()
	v := c.read8(srcAddr)
	dstAddr := c.addrDirect()
	c.write8(dstAddr, v)
}

// opBinaryXY returns the handler for the (X),(Y) arithmetic/logic family:
// dest is the byte X points at, source is the byte Y points at, no operand
// bytes are fetched.
func opBinaryXY(op func(a, b uint8) uint8) opcodeHandler {
	return func(c *CPU) {
		dstAddr := c.addrXIndirect()
		srcAddr := c.addrYIndirect()
		dst := c.read8(dstAddr)
		src := c.read8(srcAddr)
		result := op(dst, src)
		c.write8(dstAddr, result)
		c.P.setNZ(result)
	}
}

func opCMPXY(c *CPU) {
	dstAddr := c.addrXIndirect()
	srcAddr := c.addrYIndirect()
	c.doCMP(c.read8(dstAddr), c.read8(srcAddr))
}

func opADCXY(c *CPU) {
	dstAddr := c.addrXIndirect()
	srcAddr := c.addrYIndirect()
	dst := c.read8(dstAddr)
	src := c.read8(srcAddr)
	c.write8(dstAddr, c.adcTo(dst, src))
}

func opSBCXY(c *CPU) {
	dstAddr := c.addrXIndirect()
	srcAddr := c.addrYIndirect()
	dst := c.read8(dstAddr)
	src := c.read8(srcAddr)
	c.write8(dstAddr, c.sbcTo(dst, src))
}
