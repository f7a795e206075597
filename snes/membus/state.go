package membus

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

type busState struct {
	WRAM []byte
	SRAM []byte

	PPU []byte
	APU []byte
	DMA []byte
	SPC []byte
	Clock []byte
	Pad1 []byte
	Pad2 []byte

	NmiEnable     bool
	IrqEnable     uint8
	AutoJoyEnable bool
	WrmpyA        uint8
	WrmpyB        uint8
	Wrdiv         uint16
	MulResult     uint16
	DivQuotient   uint16
	DivRemainder  uint16
}

// SaveState returns a gob-encoded snapshot of the whole bus: WRAM, cartridge
// SRAM, and every memory-mapped subsystem's own SaveState blob, plus the
// small set of latched register values the bus itself owns (spec.md §6.4).
// Cartridge ROM is not included - a save state is only ever reloaded against
// the same ROM image.
func (b *Bus) SaveState() []byte {
	s := busState{
		WRAM: append([]byte(nil), b.WRAM[:]...),
		SRAM: append([]byte(nil), b.Cart.SRAM...),

		PPU:   b.PPU.SaveState(),
		APU:   b.APU.SaveState(),
		DMA:   b.DMA.SaveState(),
		SPC:   b.SPC.SaveState(),
		Clock: b.Clock.SaveState(),
		Pad1:  b.Pad1.SaveState(),
		Pad2:  b.Pad2.SaveState(),

		NmiEnable: b.nmiEnable, IrqEnable: b.irqEnable, AutoJoyEnable: b.autoJoyEnable,
		WrmpyA: b.wrmpyA, WrmpyB: b.wrmpyB, Wrdiv: b.wrdiv,
		MulResult: b.mulResult, DivQuotient: b.divQuotient, DivRemainder: b.divRemainder,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		panic(fmt.Sprintf("membus: SaveState encode: %v", err))
	}
	return buf.Bytes()
}

// LoadState restores a bus from bytes produced by SaveState. The cartridge's
// ROM image and header must already match what was saved - only SRAM is
// restored from the blob.
func (b *Bus) LoadState(data []byte) error {
	var s busState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("membus: LoadState decode: %w", err)
	}
	if len(s.WRAM) != len(b.WRAM) {
		return fmt.Errorf("membus: LoadState: WRAM size mismatch (got %d, want %d)", len(s.WRAM), len(b.WRAM))
	}
	copy(b.WRAM[:], s.WRAM)
	if len(s.SRAM) == len(b.Cart.SRAM) {
		copy(b.Cart.SRAM, s.SRAM)
	}

	if err := b.PPU.LoadState(s.PPU); err != nil {
		return err
	}
	if err := b.APU.LoadState(s.APU); err != nil {
		return err
	}
	if err := b.DMA.LoadState(s.DMA); err != nil {
		return err
	}
	if err := b.SPC.LoadState(s.SPC); err != nil {
		return err
	}
	if err := b.Clock.LoadState(s.Clock); err != nil {
		return err
	}
	if err := b.Pad1.LoadState(s.Pad1); err != nil {
		return err
	}
	if err := b.Pad2.LoadState(s.Pad2); err != nil {
		return err
	}

	b.nmiEnable, b.irqEnable, b.autoJoyEnable = s.NmiEnable, s.IrqEnable, s.AutoJoyEnable
	b.wrmpyA, b.wrmpyB, b.wrdiv = s.WrmpyA, s.WrmpyB, s.Wrdiv
	b.mulResult, b.divQuotient, b.divRemainder = s.MulResult, s.DivQuotient, s.DivRemainder
	return nil
}
