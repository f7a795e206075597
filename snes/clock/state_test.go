package clock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveStateRoundTrip(t *testing.T) {
	tm := NewTimer()
	tm.Advance(2000)
	tm.Mode = TimerTriggerHV
	tm.HTimerTarget = 42
	tm.VTimerTarget = 100

	blob := tm.SaveState()

	restored := NewTimer()
	require.NoError(t, restored.LoadState(blob))
	require.Equal(t, tm.MasterClock, restored.MasterClock)
	require.Equal(t, tm.V, restored.V)
	require.Equal(t, tm.H, restored.H)
	require.Equal(t, tm.F, restored.F)
	require.Equal(t, tm.Mode, restored.Mode)
	require.Equal(t, tm.HTimerTarget, restored.HTimerTarget)
	require.Equal(t, tm.VTimerTarget, restored.VTimerTarget)
}
