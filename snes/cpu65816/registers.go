// Package cpu65816 implements the 65C816 CPU: its width-switchable
// accumulator/index registers, the 256-entry opcode dispatch table, and
// interrupt/reset vector handling.
package cpu65816

// WideRegister is a 16-bit storage cell accessed either as a full word or as
// just its low byte, depending on the CPU's current M/X width flags. This
// generalizes the teacher's fixed-width Register16 get/set/high/low idiom
// to a register whose effective width switches at runtime.
type WideRegister struct {
	value uint16
}

// Get16 returns the full 16-bit value.
func (r *WideRegister) Get16() uint16 { return r.value }

// Get8 returns the low byte.
func (r *WideRegister) Get8() uint8 { return uint8(r.value) }

// Set16 replaces the full value.
func (r *WideRegister) Set16(v uint16) { r.value = v }

// Set8 replaces the low byte, leaving the high byte untouched (the 65816
// keeps a register's high byte intact when operating in 8-bit mode, so a
// later mode switch back to 16-bit sees the old high byte again).
func (r *WideRegister) Set8(v uint8) {
	r.value = (r.value & 0xFF00) | uint16(v)
}

// Get reads the register at the given width: wide=true for 16-bit.
func (r *WideRegister) Get(wide bool) uint16 {
	if wide {
		return r.Get16()
	}
	return uint16(r.Get8())
}

// Set writes the register at the given width.
func (r *WideRegister) Set(v uint16, wide bool) {
	if wide {
		r.Set16(v)
	} else {
		r.Set8(uint8(v))
	}
}

// StatusFlags is the 65816 P register.
type StatusFlags struct {
	Carry        bool
	Zero         bool
	IRQDisable   bool
	Decimal      bool
	IndexWidth8  bool // X flag: true = 8-bit X/Y
	MemoryWidth8 bool // M flag: true = 8-bit A (always true in emulation mode)
	Overflow     bool
	Negative     bool

	// Break only matters in emulation mode, where it takes IndexWidth8's
	// place (bit 4) to signal BRK vs IRQ on a pushed status byte, and the
	// M position (bit 5) reads back as 1.
	Break bool
}

// Byte packs the flags into the 8-bit P register layout: N V M X D I Z C in
// native mode. In emulation mode the M position reads back as 1 and the X
// position holds the Break flag (B).
func (f StatusFlags) Byte(emulation bool) uint8 {
	var b uint8
	if f.Carry {
		b |= 0x01
	}
	if f.Zero {
		b |= 0x02
	}
	if f.IRQDisable {
		b |= 0x04
	}
	if f.Decimal {
		b |= 0x08
	}
	if emulation {
		if f.Break {
			b |= 0x10
		}
		b |= 0x20
	} else {
		if f.IndexWidth8 {
			b |= 0x10
		}
		if f.MemoryWidth8 {
			b |= 0x20
		}
	}
	if f.Overflow {
		b |= 0x40
	}
	if f.Negative {
		b |= 0x80
	}
	return b
}

// SetByte unpacks a P register byte into the flags, honoring emulation mode
// semantics for bits 4-5.
func (f *StatusFlags) SetByte(b uint8, emulation bool) {
	f.Carry = b&0x01 != 0
	f.Zero = b&0x02 != 0
	f.IRQDisable = b&0x04 != 0
	f.Decimal = b&0x08 != 0
	if emulation {
		f.Break = b&0x10 != 0
		f.IndexWidth8 = true
		f.MemoryWidth8 = true
	} else {
		f.IndexWidth8 = b&0x10 != 0
		f.MemoryWidth8 = b&0x20 != 0
	}
	f.Overflow = b&0x40 != 0
	f.Negative = b&0x80 != 0
}

func (f *StatusFlags) setNZ8(v uint8) {
	f.Zero = v == 0
	f.Negative = v&0x80 != 0
}

func (f *StatusFlags) setNZ16(v uint16) {
	f.Zero = v == 0
	f.Negative = v&0x8000 != 0
}
