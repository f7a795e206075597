package cpu65816

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

type cpuState struct {
	A, X, Y, SP uint16
	D           uint16
	PC          uint16
	PBR, DBR    uint8
	Flags       uint8
	Emulation   bool
	Stopped     bool
	Waiting     bool
	Cycles      uint64
}

// SaveState returns a gob-encoded snapshot of the register file, mode flags,
// and halt state (spec.md §6.4). The bus is not part of the CPU's state.
func (c *CPU) SaveState() []byte {
	s := cpuState{
		A: c.A.Get16(), X: c.X.Get16(), Y: c.Y.Get16(), SP: c.SP.Get16(),
		D: c.D, PC: c.PC, PBR: c.PBR, DBR: c.DBR,
		Flags: c.P.Byte(c.Emulation), Emulation: c.Emulation,
		Stopped: c.Stopped, Waiting: c.Waiting, Cycles: c.cycles,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		panic(fmt.Sprintf("cpu65816: SaveState encode: %v", err))
	}
	return buf.Bytes()
}

// LoadState restores a CPU from bytes produced by SaveState. The bus
// reference is left untouched.
func (c *CPU) LoadState(data []byte) error {
	var s cpuState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("cpu65816: LoadState decode: %w", err)
	}
	c.Emulation = s.Emulation
	c.A.Set16(s.A)
	c.X.Set16(s.X)
	c.Y.Set16(s.Y)
	c.SP.Set16(s.SP)
	c.D = s.D
	c.PC = s.PC
	c.PBR = s.PBR
	c.DBR = s.DBR
	c.P.SetByte(s.Flags, s.Emulation)
	c.Stopped = s.Stopped
	c.Waiting = s.Waiting
	c.cycles = s.Cycles
	return nil
}
