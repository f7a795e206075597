// Package dma implements the SNES's 8-channel general-purpose DMA
// controller: channel parameter decode, the one-shot MDMAEN pending/active
// state machine, and the B-bus transfer-pattern stepping that produces the
// list of (source, dest) pairs the bus executes as ordinary reads/writes.
package dma

import "github.com/kurogane/gosnes/snes/memaddr"

// TransferPattern selects how the B-bus offset steps across a transfer,
// relative to the channel's programmed base B-bus address. B-bus never
// increments the channel's base register itself.
type TransferPattern int

const (
	Pattern0         TransferPattern = iota // {0}
	Pattern01                               // {0,1}
	Pattern00                               // {0,0}
	Pattern0011                             // {0,0,1,1}
	Pattern0123                             // {0,1,2,3}
	PatternUndoc0101                        // {0,1,0,1} (undocumented)
	PatternUndoc00                          // {0,0} (undocumented duplicate)
	PatternUndoc0011                        // {0,0,1,1} (undocumented duplicate)
)

func (p TransferPattern) offsets() []uint16 {
	switch p {
	case Pattern0:
		return []uint16{0}
	case Pattern01:
		return []uint16{0, 1}
	case Pattern00, PatternUndoc00:
		return []uint16{0, 0}
	case Pattern0011, PatternUndoc0011:
		return []uint16{0, 0, 1, 1}
	case Pattern0123:
		return []uint16{0, 1, 2, 3}
	case PatternUndoc0101:
		return []uint16{0, 1, 0, 1}
	default:
		return []uint16{0}
	}
}

// Direction selects which side of the transfer is the CPU-bus (A-bus) source
// and which is the PPU/APU register window (B-bus) destination.
type Direction int

const (
	DirAToB Direction = iota
	DirBToA
)

// Parameters is the unpacked DMAPn register (bit layout DIxA APPP, MSB
// first): Direction, Indirect (HDMA-only, unimplemented), unused bit,
// Decrement, Fixed, and a 3-bit TransferPattern.
type Parameters struct {
	Direction Direction
	Indirect  bool
	Decrement bool
	Fixed     bool
	Pattern   TransferPattern
}

// ParametersFromByte unpacks a raw DMAPn register value.
func ParametersFromByte(b uint8) Parameters {
	return Parameters{
		Direction: Direction((b >> 7) & 1),
		Indirect:  (b>>6)&1 != 0,
		Decrement: (b>>4)&1 != 0,
		Fixed:     (b>>3)&1 != 0,
		Pattern:   TransferPattern(b & 0x7),
	}
}

// Byte repacks Parameters into a raw DMAPn register value.
func (p Parameters) Byte() uint8 {
	var b uint8
	if p.Direction == DirBToA {
		b |= 1 << 7
	}
	if p.Indirect {
		b |= 1 << 6
	}
	if p.Decrement {
		b |= 1 << 4
	}
	if p.Fixed {
		b |= 1 << 3
	}
	b |= uint8(p.Pattern) & 0x7
	return b
}

// Channel is one of the 8 independently-programmable DMA channels.
type Channel struct {
	Params      Parameters
	ABusAddress memaddr.Long
	// BBusAddress defaults to 0x21FF (not 0x2100) on cold power-on,
	// matching the hardware's default channel register contents.
	BBusAddress uint16
	ByteCount   uint16 // 0 means 65536
}

// NewChannel returns a cold-power-on channel.
func NewChannel() Channel {
	return Channel{BBusAddress: 0x21FF}
}

// Pair is one (source,dest) transfer the bus must execute as an ordinary
// read followed by a write.
type Pair struct {
	Source memaddr.Long
	Dest   memaddr.Long
}

// Controller owns all 8 channels and the MDMAEN one-shot state machine.
type Controller struct {
	Channels [8]Channel
	pending  uint8
	active   bool
}

// NewController returns a cold-power-on controller.
func NewController() *Controller {
	c := &Controller{}
	for i := range c.Channels {
		c.Channels[i] = NewChannel()
	}
	return c
}

// WriteMDMAEN marks the channels whose bit is set as pending.
func (c *Controller) WriteMDMAEN(value uint8) {
	c.pending = value
}

// UpdateState advances the one-shot pending->active->idle state machine by
// one bus-cycle boundary. Called once per clock advance by the bus, per
// spec.md's "the bus polls the DMA controller" contract.
func (c *Controller) UpdateState() {
	if c.active {
		c.active = false
		c.pending = 0
		return
	}
	if c.pending != 0 {
		c.active = true
	}
}

// Active reports whether a transfer should be executed this clock advance.
func (c *Controller) Active() bool { return c.active }

// PendingTransfers computes the full list of transfer pairs and total
// duration (in master cycles) for the currently active channels, given the
// current master clock value and memory-access speed (for final padding).
// Returns nil if no transfer is active.
func (c *Controller) PendingTransfers(masterClock uint64, accessSpeed uint64) ([]Pair, uint64) {
	if !c.active {
		return nil, 0
	}

	duration := uint64(16-masterClock%8) % 8

	var pairs []Pair
	for ch := 0; ch < 8; ch++ {
		if c.pending&(1<<uint(ch)) == 0 {
			continue
		}
		channel := &c.Channels[ch]

		length := int(channel.ByteCount)
		if length == 0 {
			length = 0x10000
		}

		offsets := channel.Params.Pattern.offsets()
		bBusAddr := channel.BBusAddress
		aBusAddr := channel.ABusAddress

		for idx := 0; idx < length; idx++ {
			off := offsets[idx%len(offsets)]
			b := memaddr.NewLong(0, bBusAddr+off)
			a := aBusAddr

			if channel.Params.Direction == DirAToB {
				pairs = append(pairs, Pair{Source: a, Dest: b})
			} else {
				pairs = append(pairs, Pair{Source: b, Dest: a})
			}

			if !channel.Params.Fixed {
				if channel.Params.Decrement {
					aBusAddr = aBusAddr.Add(-1, memaddr.NoWrap)
				} else {
					aBusAddr = aBusAddr.Add(1, memaddr.NoWrap)
				}
			}
		}

		channel.ABusAddress = aBusAddr
		duration += 8 + 8*uint64(length)
	}

	if accessSpeed > 0 {
		if rem := duration % accessSpeed; rem != 0 {
			duration += accessSpeed - rem
		}
	}

	return pairs, duration
}
