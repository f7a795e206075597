package snes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kurogane/gosnes/snes/membus"
)

func TestEmulatorSaveStateRoundTrip(t *testing.T) {
	rom := make([]byte, 0x8000)
	e, err := NewWithFile(rom, make([]byte, 0x2000), membus.Header{Mapping: membus.LoROM})
	require.NoError(t, err)

	e.CPU.A.Set16(0x55AA)
	e.Bus.WRAM[100] = 0x42
	e.UpdateJoypads(0x1234, 0x5678)

	blob, err := e.SaveState()
	require.NoError(t, err)

	restored, err := NewWithFile(rom, make([]byte, 0x2000), membus.Header{Mapping: membus.LoROM})
	require.NoError(t, err)
	require.NoError(t, restored.LoadState(blob))

	require.Equal(t, e.CPU.A.Get16(), restored.CPU.A.Get16())
	require.Equal(t, e.Bus.WRAM, restored.Bus.WRAM)
	require.Equal(t, e.Bus.Pad1.Word, restored.Bus.Pad1.Word)
}
