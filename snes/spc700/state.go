package spc700

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

type cpuState struct {
	PC              uint16
	A, X, Y, SP     uint8
	Flags           uint8
	Stopped         bool
	Cycles          uint64
}

// SaveState returns a gob-encoded snapshot of the SPC700's register file and
// halt state. ARAM lives in the audio package's APU.SaveState instead, since
// the spc700.Bus adapter is the only thing that knows how to reach it.
func (c *CPU) SaveState() []byte {
	s := cpuState{PC: c.PC, A: c.A, X: c.X, Y: c.Y, SP: c.SP, Flags: c.P.Byte(), Stopped: c.Stopped, Cycles: c.cycles}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		panic(fmt.Sprintf("spc700: SaveState encode: %v", err))
	}
	return buf.Bytes()
}

// LoadState restores a CPU from bytes produced by SaveState.
func (c *CPU) LoadState(data []byte) error {
	var s cpuState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("spc700: LoadState decode: %w", err)
	}
	c.PC, c.A, c.X, c.Y, c.SP = s.PC, s.A, s.X, s.Y, s.SP
	c.P.SetByte(s.Flags)
	c.Stopped = s.Stopped
	c.cycles = s.Cycles
	return nil
}
