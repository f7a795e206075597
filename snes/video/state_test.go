package video

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveStateRoundTrip(t *testing.T) {
	p := NewPPU()
	p.WriteRegister(0x2100, 0x0F) // INIDISP: screen on, full brightness
	p.WriteRegister(0x2105, 0x01) // BGMODE 1
	p.VRAM[10] = 0xBEEF
	p.CGRAM[1] = 0x1234
	p.BG[0].HOfs = 7

	blob := p.SaveState()

	restored := NewPPU()
	require.NoError(t, restored.LoadState(blob))
	require.Equal(t, p.VRAM, restored.VRAM)
	require.Equal(t, p.CGRAM, restored.CGRAM)
	require.Equal(t, p.ForceBlank, restored.ForceBlank)
	require.Equal(t, p.Brightness, restored.Brightness)
	require.Equal(t, p.BGMode, restored.BGMode)
	require.Equal(t, p.BG[0].HOfs, restored.BG[0].HOfs)
}
