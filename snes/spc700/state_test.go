package spc700

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveStateRoundTrip(t *testing.T) {
	c, bus := newTestCPU()

	c.A = 0x42
	c.X = 0x10
	c.PC = 0x0210
	c.P.Carry = true
	c.P.Negative = true

	blob := c.SaveState()

	restored := New(bus)
	require.NoError(t, restored.LoadState(blob))
	require.Equal(t, c.A, restored.A)
	require.Equal(t, c.X, restored.X)
	require.Equal(t, c.PC, restored.PC)
	require.Equal(t, c.P.Byte(), restored.P.Byte())
}
