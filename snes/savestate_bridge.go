package snes

import "github.com/kurogane/gosnes/snes/savestate"

// SaveState captures the full machine state - both CPUs, the bus, WRAM,
// SRAM, and every memory-mapped subsystem - into a versioned, portable blob
// (spec.md §6.4). The audio buffer pool and trace state are intentionally
// excluded: they are host-session bookkeeping, not machine state.
func (e *Emulator) SaveState() ([]byte, error) {
	env := savestate.Envelope{
		Version: savestate.Version,
		CPU:     e.CPU.SaveState(),
		Bus:     e.Bus.SaveState(),
	}
	return savestate.Encode(env)
}

// LoadState restores the machine from a blob produced by SaveState, against
// the cartridge already loaded into this Emulator. A version mismatch or a
// structurally invalid blob is returned as an error; nothing about the
// running machine is mutated until decode succeeds.
func (e *Emulator) LoadState(data []byte) error {
	env, err := savestate.Decode(data)
	if err != nil {
		return err
	}
	if err := e.Bus.LoadState(env.Bus); err != nil {
		return err
	}
	return e.CPU.LoadState(env.CPU)
}
