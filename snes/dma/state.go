package dma

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

type controllerState struct {
	Channels [8]Channel // Channel's fields are already all exported
	Pending  uint8
	Active   bool
}

// SaveState returns a gob-encoded snapshot of every channel's registers plus
// the controller's pending/active one-shot state machine (spec.md §6.4).
func (c *Controller) SaveState() []byte {
	s := controllerState{Channels: c.Channels, Pending: c.pending, Active: c.active}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		panic(fmt.Sprintf("dma: SaveState encode: %v", err))
	}
	return buf.Bytes()
}

// LoadState restores a controller from bytes produced by SaveState.
func (c *Controller) LoadState(data []byte) error {
	var s controllerState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("dma: LoadState decode: %w", err)
	}
	c.Channels = s.Channels
	c.pending = s.Pending
	c.active = s.Active
	return nil
}
