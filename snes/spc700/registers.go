// Package spc700 implements the SPC700: the SNES's independent 8-bit audio
// CPU, its own 64 KiB address space, and the page-1 stack used by
// BRK/TCALL/interrupt dispatch. Dispatch reuses the same
// table-of-closures idiom cpu65816 uses for its own opcode table.
package spc700

// PSW is the SPC700 status register: N V P B H I Z C.
type PSW struct {
	Carry     bool
	Zero      bool
	Interrupt bool // I: not wired to any external IRQ source on the SNES
	HalfCarry bool
	Break     bool
	DirectPage bool // P: selects direct-page base 0x0000 or 0x0100
	Overflow  bool
	Negative  bool
}

// Byte packs the flags into the PSW register layout N V P B H I Z C.
func (f PSW) Byte() uint8 {
	var b uint8
	if f.Carry {
		b |= 0x01
	}
	if f.Zero {
		b |= 0x02
	}
	if f.Interrupt {
		b |= 0x04
	}
	if f.HalfCarry {
		b |= 0x08
	}
	if f.Break {
		b |= 0x10
	}
	if f.DirectPage {
		b |= 0x20
	}
	if f.Overflow {
		b |= 0x40
	}
	if f.Negative {
		b |= 0x80
	}
	return b
}

// SetByte unpacks a raw PSW byte into the flags.
func (f *PSW) SetByte(b uint8) {
	f.Carry = b&0x01 != 0
	f.Zero = b&0x02 != 0
	f.Interrupt = b&0x04 != 0
	f.HalfCarry = b&0x08 != 0
	f.Break = b&0x10 != 0
	f.DirectPage = b&0x20 != 0
	f.Overflow = b&0x40 != 0
	f.Negative = b&0x80 != 0
}

func (f *PSW) setNZ(v uint8) {
	f.Zero = v == 0
	f.Negative = v&0x80 != 0
}

// DirectPageBase returns the 16-bit base of the direct page selected by the
// PSW's P bit: page 0x0000 or page 0x0100.
func (f PSW) DirectPageBase() uint16 {
	if f.DirectPage {
		return 0x0100
	}
	return 0x0000
}
