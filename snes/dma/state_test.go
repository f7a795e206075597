package dma

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kurogane/gosnes/snes/memaddr"
)

func TestSaveStateRoundTrip(t *testing.T) {
	c := NewController()
	c.Channels[3] = Channel{
		Params:      Parameters{Direction: DirAToB, Pattern: Pattern01},
		ABusAddress: memaddr.NewLong(0x7E, 0x1234),
		BBusAddress: 0x2118,
		ByteCount:   99,
	}
	c.WriteMDMAEN(0x08)
	c.UpdateState()
	require.True(t, c.Active())

	blob := c.SaveState()

	restored := NewController()
	require.NoError(t, restored.LoadState(blob))
	require.Equal(t, c.Channels, restored.Channels)
	require.Equal(t, c.Active(), restored.Active())
}
