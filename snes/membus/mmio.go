package membus

import (
	"fmt"

	"github.com/kurogane/gosnes/snes/addr"
	"github.com/kurogane/gosnes/snes/clock"
	"github.com/kurogane/gosnes/snes/debug"
	"github.com/kurogane/gosnes/snes/dma"
	"github.com/kurogane/gosnes/snes/memaddr"
)

// read dispatches a 24-bit address to the correct region per the LoROM
// memory map of spec.md §4.2 (HiROM only changes the ROM index arithmetic,
// handled inside Cartridge).
func (b *Bus) read(a memaddr.Long) uint8 {
	bank := a.Bank
	offset := a.Offset

	lowBank := bank&0x7F <= 0x3F

	switch {
	case lowBank && offset <= 0x1FFF:
		return b.WRAM[offset]
	case lowBank && offset <= 0x7FFF:
		return b.readMMIO(offset)
	case lowBank && offset >= 0x8000:
		v, ok := b.Cart.romRead(bank, offset)
		if !ok {
			b.Debug.Emit(debug.KindRuntimeFault, fmt.Sprintf("unmapped ROM read %02X:%04X", bank, offset))
			return 0
		}
		return v
	case bank >= 0x7E && bank <= 0x7F:
		idx := (int(bank-0x7E) << 16) | int(offset)
		return b.WRAM[idx%addr.WRAMSize]
	case bank >= 0x70 && bank <= 0x7D && offset <= 0x7FFF:
		return b.Cart.sramRead(offset)
	default:
		v, ok := b.Cart.romRead(bank, offset)
		if !ok {
			b.Debug.Emit(debug.KindRuntimeFault, fmt.Sprintf("unmapped read %02X:%04X", bank, offset))
			return 0
		}
		return v
	}
}

func (b *Bus) write(a memaddr.Long, value uint8) {
	bank := a.Bank
	offset := a.Offset

	lowBank := bank&0x7F <= 0x3F

	switch {
	case lowBank && offset <= 0x1FFF:
		b.WRAM[offset] = value
	case lowBank && offset <= 0x7FFF:
		b.writeMMIO(offset, value)
	case lowBank && offset >= 0x8000:
		b.Debug.Emit(debug.KindRuntimeFault, fmt.Sprintf("write to ROM %02X:%04X", bank, offset))
	case bank >= 0x7E && bank <= 0x7F:
		idx := (int(bank-0x7E) << 16) | int(offset)
		b.WRAM[idx%addr.WRAMSize] = value
	case bank >= 0x70 && bank <= 0x7D && offset <= 0x7FFF:
		b.Cart.sramWrite(offset, value)
	default:
		b.Debug.Emit(debug.KindRuntimeFault, fmt.Sprintf("write to unmapped %02X:%04X", bank, offset))
	}
}

// readMMIO dispatches the 0x2000-0x7FFF register window.
func (b *Bus) readMMIO(offset uint16) uint8 {
	switch {
	case offset >= 0x2100 && offset <= 0x213F:
		return b.PPU.ReadRegister(offset)
	case offset >= 0x2140 && offset <= 0x217F:
		b.catchUpSPC()
		return b.APU.ReadPort(int((offset - 0x2140) % 4))
	case offset == addr.JOYSER0:
		return b.Pad1.ReadSerialBit()
	case offset == addr.JOYSER1:
		return b.Pad2.ReadSerialBit()
	case offset == addr.RDNMI:
		return b.Clock.ReadRDNMI()
	case offset == addr.TIMEUP:
		return b.Clock.ReadTIMEUP()
	case offset == addr.HVBJOY:
		v := b.Clock.ReadHVBJOY()
		if b.DMA.Active() {
			v |= 0x01
		}
		return v
	case offset == addr.RDDIVL:
		return uint8(b.divQuotient)
	case offset == addr.RDDIVH:
		return uint8(b.divQuotient >> 8)
	case offset == addr.RDMPYL:
		return uint8(b.divRemainder)
	case offset == addr.RDMPYH:
		return uint8(b.divRemainder >> 8)
	case offset >= addr.JOY1L && offset <= addr.JOY4H:
		return 0 // auto-read shadows: Non-goal, addressable no-op
	case offset >= addr.DMAPBase && offset < addr.DMAPBase+8*addr.DmaChannelStride:
		return b.readDMARegister(offset)
	default:
		b.Debug.Emit(debug.KindRuntimeFault, fmt.Sprintf("read from invalid MMIO register %04X", offset))
		return 0
	}
}

func (b *Bus) writeMMIO(offset uint16, value uint8) {
	switch {
	case offset >= 0x2100 && offset <= 0x213F:
		b.PPU.WriteRegister(offset, value)
	case offset >= 0x2140 && offset <= 0x217F:
		b.catchUpSPC()
		b.APU.WritePort(int((offset-0x2140)%4), value)
	case offset == addr.JOYSER0:
		b.Pad1.Strobe(value&1 != 0)
		b.Pad2.Strobe(value&1 != 0)
	case offset == addr.NMITIMEN:
		b.nmiEnable = value&0x80 != 0
		b.irqEnable = (value >> 4) & 0x3
		b.autoJoyEnable = value&0x01 != 0
		switch b.irqEnable {
		case 0:
			b.Clock.Mode = clock.TimerOff
		case 1:
			b.Clock.Mode = clock.TimerTriggerH
		case 2:
			b.Clock.Mode = clock.TimerTriggerV
		case 3:
			b.Clock.Mode = clock.TimerTriggerHV
		}
	case offset == addr.WRMPYA:
		b.wrmpyA = value
	case offset == addr.WRMPYB:
		b.wrmpyB = value
		b.mulResult = uint16(b.wrmpyA) * uint16(value)
		b.divQuotient = b.mulResult
		b.divRemainder = 0
	case offset == addr.WRDIVL:
		b.wrdiv = (b.wrdiv & 0xFF00) | uint16(value)
	case offset == addr.WRDIVH:
		b.wrdiv = (b.wrdiv & 0x00FF) | uint16(value)<<8
	case offset == addr.WRDIVB:
		if value == 0 {
			b.divQuotient = 0xFFFF
			b.divRemainder = b.wrdiv
		} else {
			b.divQuotient = b.wrdiv / uint16(value)
			b.divRemainder = b.wrdiv % uint16(value)
		}
	case offset == addr.HTIMEL:
		b.Clock.HTimerTarget = (b.Clock.HTimerTarget & 0xFF00) | uint16(value)
	case offset == addr.HTIMEH:
		b.Clock.HTimerTarget = (b.Clock.HTimerTarget & 0x00FF) | uint16(value&1)<<8
	case offset == addr.VTIMEL:
		b.Clock.VTimerTarget = (b.Clock.VTimerTarget & 0xFF00) | uint16(value)
	case offset == addr.VTIMEH:
		b.Clock.VTimerTarget = (b.Clock.VTimerTarget & 0x00FF) | uint16(value&1)<<8
	case offset == addr.MDMAEN:
		b.DMA.WriteMDMAEN(value)
	case offset == addr.HDMAEN:
		// HDMA is an explicit Non-goal; writes are logged and dropped
		// per spec.md §9's open question on the DMA indirect bit.
		b.Debug.Emit(debug.KindInvariant, "HDMAEN write ignored: HDMA not implemented")
	case offset == addr.MEMSEL:
		// FastROM select: this core does not model FastROM timing.
	case offset >= addr.DMAPBase && offset < addr.DMAPBase+8*addr.DmaChannelStride:
		b.writeDMARegister(offset, value)
	default:
		b.Debug.Emit(debug.KindRuntimeFault, fmt.Sprintf("write to undefined register %04X dropped", offset))
	}
}

func (b *Bus) readDMARegister(offset uint16) uint8 {
	ch := int((offset - addr.DMAPBase) / addr.DmaChannelStride)
	reg := (offset - addr.DMAPBase) % addr.DmaChannelStride
	c := &b.DMA.Channels[ch]
	switch reg {
	case 0:
		return c.Params.Byte()
	case 1:
		return uint8(c.BBusAddress)
	case 2:
		return uint8(c.ABusAddress.Offset)
	case 3:
		return uint8(c.ABusAddress.Offset >> 8)
	case 4:
		return c.ABusAddress.Bank
	case 5:
		return uint8(c.ByteCount)
	case 6:
		return uint8(c.ByteCount >> 8)
	default:
		return 0
	}
}

func (b *Bus) writeDMARegister(offset uint16, value uint8) {
	ch := int((offset - addr.DMAPBase) / addr.DmaChannelStride)
	reg := (offset - addr.DMAPBase) % addr.DmaChannelStride
	c := &b.DMA.Channels[ch]
	switch reg {
	case 0:
		c.Params = dma.ParametersFromByte(value)
		if c.Params.Indirect {
			b.Debug.Emit(debug.KindRuntimeFault, fmt.Sprintf("DMA channel %d: HDMA-only indirect bit set, ignored", ch))
		}
	case 1:
		c.BBusAddress = 0x2100 | uint16(value)
	case 2:
		c.ABusAddress = memaddr.NewLong(c.ABusAddress.Bank, (c.ABusAddress.Offset&0xFF00)|uint16(value))
	case 3:
		c.ABusAddress = memaddr.NewLong(c.ABusAddress.Bank, (c.ABusAddress.Offset&0x00FF)|uint16(value)<<8)
	case 4:
		c.ABusAddress = memaddr.NewLong(value, c.ABusAddress.Offset)
	case 5:
		c.ByteCount = (c.ByteCount & 0xFF00) | uint16(value)
	case 6:
		c.ByteCount = (c.ByteCount & 0x00FF) | uint16(value)<<8
	default:
		// HDMA-only table-address/indirect-bank registers: accepted but
		// unused by this core.
	}
}

// Peek reads a byte without costing clock cycles or triggering side
// effects beyond what read() itself does (register FIFOs/latches still
// advance) - intended for trace/disassembly use, not bus-accurate
// emulation, per spec.md §6.2's CPU trace feature.
func (b *Bus) Peek(a memaddr.Long) uint8 {
	return b.read(a)
}

// ConsumeNMI returns and clears the clock's single-shot NMI-consumable
// flag, gated by NMITIMEN bit 7 per spec.md §4.2.
func (b *Bus) ConsumeNMI() bool {
	pending := b.Clock.ConsumeNMI()
	return pending && b.nmiEnable
}

// ConsumeIRQ returns and clears the clock's single-shot HV-timer
// IRQ-consumable flag. The CPU's own I flag gates delivery outside this
// interface, per spec.md §4.2.
func (b *Bus) ConsumeIRQ() bool {
	return b.Clock.ConsumeIRQ()
}
