// Package membus implements the SNES main-bus fabric: the LoROM/HiROM
// address decoder, the per-region access-speed table, and the MMIO
// dispatch that routes CPU accesses to the PPU, APU mailbox, DMA
// controller, and timer registers (spec.md §4.2). This is the single
// owning aggregate the design notes call for in place of cyclic
// PPU/DMA/CPU back-references: every cross-component access goes through
// Bus's method surface.
package membus

import (
	"github.com/kurogane/gosnes/snes/addr"
	"github.com/kurogane/gosnes/snes/audio"
	"github.com/kurogane/gosnes/snes/clock"
	"github.com/kurogane/gosnes/snes/debug"
	"github.com/kurogane/gosnes/snes/dma"
	"github.com/kurogane/gosnes/snes/input"
	"github.com/kurogane/gosnes/snes/memaddr"
	"github.com/kurogane/gosnes/snes/spc700"
	"github.com/kurogane/gosnes/snes/video"
)

// Bus is the root aggregate: WRAM, the cartridge, and every memory-mapped
// subsystem, reached only through this type's method surface (design note
// §9, "single owning aggregate").
type Bus struct {
	WRAM [addr.WRAMSize]byte
	Cart *Cartridge

	PPU *video.PPU
	APU *audio.APU
	DMA *dma.Controller
	SPC *spc700.CPU
	spcBus spcAdapter

	Clock *clock.Timer
	Pad1  input.Pad
	Pad2  input.Pad

	Debug *debug.Collector

	nmiEnable bool // NMITIMEN bit 7
	irqEnable uint8 // NMITIMEN bits 4-5 (H/V timer enable select)
	autoJoyEnable bool

	wrmpyA uint8
	wrmpyB uint8
	wrdiv  uint16
	mulResult uint16
	divQuotient uint16
	divRemainder uint16

	spcCatchUpDebt uint64
}

// New returns a Bus wired to the given cartridge, with all subsystems in
// their cold power-on state.
func New(cart *Cartridge) *Bus {
	b := &Bus{
		Cart:  cart,
		PPU:   video.NewPPU(),
		APU:   audio.NewAPU(),
		DMA:   dma.NewController(),
		Clock: clock.NewTimer(),
		Debug: debug.NewCollector(),
	}
	b.spcBus = spcAdapter{apu: b.APU, aram: &b.APU.ARAM}
	b.SPC = spc700.New(&b.spcBus)
	b.SPC.Reset()
	return b
}

// spcAdapter implements spc700.Bus over the APU's ARAM; kept separate from
// *audio.APU since the SPC700's own 64 KiB address space is plain linear
// RAM, with 0x00F2-0x00F7 carved out for the DSP register window
// (DSPADDR/DSPDATA) and the CPU<->APU port mailbox.
type spcAdapter struct {
	apu  *audio.APU
	aram *[65536]byte
}

func (s *spcAdapter) Read(a memaddr.Addr16) uint8 {
	switch uint16(a) {
	case 0x00F2:
		return s.apu.DSPAddr()
	case 0x00F3:
		return s.apu.ReadDSP()
	case 0x00F4, 0x00F5, 0x00F6, 0x00F7:
		return s.apu.SPCReadPort(int(uint16(a) - 0x00F4))
	}
	return s.aram[uint16(a)]
}

func (s *spcAdapter) Write(a memaddr.Addr16, v uint8) {
	switch uint16(a) {
	case 0x00F2:
		s.apu.SetDSPAddr(v)
		return
	case 0x00F3:
		s.apu.WriteDSP(v)
		return
	case 0x00F4, 0x00F5, 0x00F6, 0x00F7:
		s.apu.SPCWritePort(int(uint16(a)-0x00F4), v)
		return
	}
	s.aram[uint16(a)] = v
}

// accessSpeed returns the number of master cycles one byte access at addr
// costs, per spec.md §4.2's table (LoROM and HiROM share the same
// bank/offset speed map; only ROM-offset arithmetic differs between them).
func accessSpeed(a memaddr.Long) uint64 {
	bank := a.Bank & 0x7F // banks 0x80-0xFF mirror 0x00-0x7F's speed map
	offset := a.Offset

	if bank <= 0x3F {
		switch {
		case offset <= 0x1FFF:
			return 8
		case offset <= 0x3FFF:
			return 6
		case offset <= 0x41FF:
			return 12
		case offset <= 0x5FFF:
			return 6
		default:
			return 8
		}
	}
	return 8
}

// CycleRead implements the CPU-facing read contract: advance the clock by
// (speed-6) before the read commits (so PPU-side side effects of the read
// fire at the correct offset), then advance the remaining 6.
func (b *Bus) CycleRead(a memaddr.Long) uint8 {
	speed := accessSpeed(a)
	b.advanceClock(speed - 6)
	v := b.read(a)
	b.advanceClock(6)
	return v
}

// CycleWrite implements the CPU-facing write contract: advance the full
// access speed before the write commits.
func (b *Bus) CycleWrite(a memaddr.Long, value uint8) {
	speed := accessSpeed(a)
	b.advanceClock(speed)
	b.write(a, value)
}

// CycleInternal advances the clock by one internal-operation cycle (always
// 6), for opcodes whose addressing mode needs a pure internal delay with no
// associated bus access.
func (b *Bus) CycleInternal() {
	b.advanceClock(6)
}

// advanceClock forwards n master cycles to the PPU timer, checks for a
// scanline rollover (rasterizing the completed line), and polls the DMA
// controller, executing any pending transfer atomically in place of further
// CPU activity - matching spec.md §4.2's "after each master-clock advance,
// the bus polls the DMA controller" contract.
func (b *Bus) advanceClock(n uint64) {
	prevV := b.Clock.V
	b.Clock.Advance(n)
	b.spcCatchUpDebt += n

	if b.Clock.V != prevV && prevV < video.Height {
		b.PPU.RenderScanline(prevV)
	}

	b.DMA.UpdateState()
	if b.DMA.Active() {
		// Padded to the slow (8-cycle) memory-access speed: the common
		// case for DMA-driven transfers (WRAM/ROM sourced, PPU/APU
		// register destined), per spec.md §4.2's speed table.
		pairs, duration := b.DMA.PendingTransfers(b.Clock.MasterClock, 8)
		for _, pair := range pairs {
			v := b.read(pair.Source)
			b.write(pair.Dest, v)
		}
		if duration > 0 {
			b.Clock.Advance(duration)
			b.spcCatchUpDebt += duration
		}
	}
}

// catchUpSPC rolls the SPC700 forward by the accumulated master-cycle debt,
// converting to SPC700 cycles at the fixed ~21:1 ratio spec.md §4.5
// describes. Called whenever the main CPU touches the cross-core APU port
// (0x2140-0x2143), the only observation point where the two cores must be
// causally consistent.
func (b *Bus) catchUpSPC() {
	const masterCyclesPerSPCCycle = 21
	spcCycles := b.spcCatchUpDebt / masterCyclesPerSPCCycle
	if spcCycles == 0 {
		return
	}
	b.spcCatchUpDebt -= spcCycles * masterCyclesPerSPCCycle
	var ran uint64
	for ran < spcCycles {
		if b.SPC.Stopped {
			break
		}
		step := b.SPC.Step()
		ran += step
		b.APU.Tick(step)
	}
}
