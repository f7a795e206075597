package membus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	rom := make([]byte, 0x8000)
	cart, err := LoadCartridge(rom, make([]byte, 0x2000), Header{Mapping: LoROM})
	require.NoError(t, err)
	return New(cart)
}

func TestBusSaveStateRoundTrip(t *testing.T) {
	b := newTestBus(t)
	b.WRAM[5] = 0xAA
	b.Cart.SRAM[1] = 0x77
	b.PPU.WriteRegister(0x2100, 0x0F)
	b.nmiEnable = true
	b.wrdiv = 0x1234
	b.Pad1.Update(0xBEEF)
	b.advanceClock(100)

	blob := b.SaveState()

	restored := newTestBus(t)
	require.NoError(t, restored.LoadState(blob))

	require.Equal(t, b.WRAM, restored.WRAM)
	require.Equal(t, b.Cart.SRAM, restored.Cart.SRAM)
	require.Equal(t, b.nmiEnable, restored.nmiEnable)
	require.Equal(t, b.wrdiv, restored.wrdiv)
	require.Equal(t, b.Pad1.Word, restored.Pad1.Word)
	require.Equal(t, b.Clock.MasterClock, restored.Clock.MasterClock)
}
