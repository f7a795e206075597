package audio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveStateRoundTrip(t *testing.T) {
	a := NewAPU()
	a.ARAM[0x1234] = 0xAB
	a.WritePort(0, 0x55)
	a.Timers[1].Enabled = true
	a.Timers[1].DividerPeriod = 256
	a.Voices[2].KeyOn = true
	a.Voices[2].Volume = 64
	a.Voices[2].interp.Push(123)
	a.ToggleChannel(3)
	a.SoloChannel(5)

	blob := a.SaveState()

	restored := NewAPU()
	require.NoError(t, restored.LoadState(blob))
	require.Equal(t, a.ARAM, restored.ARAM)
	require.Equal(t, a.ports, restored.ports)
	require.Equal(t, a.Timers, restored.Timers)
	require.Equal(t, a.GetChannelStatus(), restored.GetChannelStatus())
	require.Equal(t, a.Voices[2].Volume, restored.Voices[2].Volume)
}
