package clock

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// timerState mirrors Timer's full field set, exported so gob can see every
// field - including the ones Timer itself keeps private, since save-state
// fidelity needs the DRAM-refresh cursor and sticky NMI flag too.
type timerState struct {
	MasterClock         uint64
	V, H                int
	F                   uint64
	DramRefreshPosition int
	VBlankPrev          bool
	HVTimerPrev         bool
	TimerFlag           bool
	TimerIRQPending     bool
	NmiFlag             bool
	NMIPending          bool
	Mode                HVTimerMode
	HTimerTarget        uint16
	VTimerTarget        uint16
}

// SaveState returns a gob-encoded snapshot of the timer, opaque to callers
// outside this package (spec.md §6.4's per-subsystem save-state contract).
func (t *Timer) SaveState() []byte {
	s := timerState{
		MasterClock:         t.MasterClock,
		V:                   t.V,
		H:                   t.H,
		F:                   t.F,
		DramRefreshPosition: t.dramRefreshPosition,
		VBlankPrev:          t.VBlankDetector.previous,
		HVTimerPrev:         t.HVTimerDetector.previous,
		TimerFlag:           t.TimerFlag,
		TimerIRQPending:     t.TimerIRQPending,
		NmiFlag:             t.nmiFlag,
		NMIPending:          t.NMIPending,
		Mode:                t.Mode,
		HTimerTarget:        t.HTimerTarget,
		VTimerTarget:        t.VTimerTarget,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		panic(fmt.Sprintf("clock: SaveState encode: %v", err))
	}
	return buf.Bytes()
}

// LoadState restores a timer from bytes produced by SaveState. Latched
// edge-detector rise/fall bits are not preserved across the boundary - the
// next Advance call re-derives them from the restored signal level, which is
// the only state that matters for correctness.
func (t *Timer) LoadState(data []byte) error {
	var s timerState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("clock: LoadState decode: %w", err)
	}
	t.MasterClock = s.MasterClock
	t.V = s.V
	t.H = s.H
	t.F = s.F
	t.dramRefreshPosition = s.DramRefreshPosition
	t.VBlankDetector = EdgeDetector{previous: s.VBlankPrev}
	t.HVTimerDetector = EdgeDetector{previous: s.HVTimerPrev}
	t.TimerFlag = s.TimerFlag
	t.TimerIRQPending = s.TimerIRQPending
	t.nmiFlag = s.NmiFlag
	t.NMIPending = s.NMIPending
	t.Mode = s.Mode
	t.HTimerTarget = s.HTimerTarget
	t.VTimerTarget = s.VTimerTarget
	return nil
}
