package cpu65816

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveStateRoundTrip(t *testing.T) {
	c, bus := newTestCPU()

	c.A.Set16(0x1234)
	c.X.Set16(0x0056)
	c.PC = 0x8010
	c.P.Carry = true
	c.P.Negative = true

	blob := c.SaveState()

	restored := New(bus)
	require.NoError(t, restored.LoadState(blob))
	require.Equal(t, c.A.Get16(), restored.A.Get16())
	require.Equal(t, c.X.Get16(), restored.X.Get16())
	require.Equal(t, c.PC, restored.PC)
	require.Equal(t, c.Emulation, restored.Emulation)
	require.Equal(t, c.P.Byte(c.Emulation), restored.P.Byte(restored.Emulation))
}
