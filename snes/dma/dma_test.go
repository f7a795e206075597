package dma

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kurogane/gosnes/snes/memaddr"
)

func TestOneShotStateMachine(t *testing.T) {
	c := NewController()
	require.False(t, c.Active())

	c.WriteMDMAEN(0x01)
	require.False(t, c.Active(), "pending does not become active until the next clock advance")

	c.UpdateState()
	require.True(t, c.Active(), "first advance after MDMAEN write: pending -> active")

	c.UpdateState()
	require.False(t, c.Active(), "second advance: active -> idle")
}

func TestChannelDefaultBBusAddress(t *testing.T) {
	ch := NewChannel()
	require.Equal(t, uint16(0x21FF), ch.BBusAddress)
}

func TestPendingTransfersAToBPattern01(t *testing.T) {
	c := NewController()
	c.Channels[0] = Channel{
		Params: Parameters{
			Direction: DirAToB,
			Pattern:   Pattern01,
		},
		ABusAddress: memaddr.NewLong(0x7E, 0x0000),
		BBusAddress: 0x2118,
		ByteCount:   4,
	}
	c.WriteMDMAEN(0x01)
	c.UpdateState()
	require.True(t, c.Active())

	pairs, duration := c.PendingTransfers(0, 8)
	require.Len(t, pairs, 4)
	require.Equal(t, memaddr.NewLong(0x7E, 0x0000), pairs[0].Source)
	require.Equal(t, memaddr.NewLong(0, 0x2118), pairs[0].Dest)
	require.Equal(t, memaddr.NewLong(0, 0x2119), pairs[1].Dest)
	require.Equal(t, memaddr.NewLong(0, 0x2118), pairs[2].Dest)
	require.Equal(t, memaddr.NewLong(0, 0x2119), pairs[3].Dest)
	require.Equal(t, memaddr.NewLong(0x7E, 0x0001), pairs[1].Source)

	// duration = alignment + per-channel overhead (8) + 8*length, padded
	// to a multiple of access speed.
	require.GreaterOrEqual(t, duration, uint64(8+8*4))
	require.Zero(t, duration%8)
}

func TestByteCountZeroMeans65536(t *testing.T) {
	c := NewController()
	c.Channels[0] = Channel{
		Params:      Parameters{Direction: DirAToB, Pattern: Pattern0},
		ABusAddress: memaddr.NewLong(0, 0),
		BBusAddress: 0x2118,
		ByteCount:   0,
	}
	c.WriteMDMAEN(0x01)
	c.UpdateState()

	pairs, _ := c.PendingTransfers(0, 8)
	require.Len(t, pairs, 0x10000)
}

func TestParametersRoundTripThroughByte(t *testing.T) {
	p := Parameters{Direction: DirBToA, Indirect: true, Decrement: true, Fixed: false, Pattern: Pattern0123}
	got := ParametersFromByte(p.Byte())
	require.Equal(t, p, got)
}
