package audio

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

type pitchState struct {
	Ring     [12]int16
	RingHead int
	Counter  uint32
}

type voiceState struct {
	Interp       pitchState
	Prev1        int16
	Prev2        int16
	Volume       int16
	Pitch        uint16
	SourceEntry  uint8
	Muted        bool
	KeyOn        bool
	BlockAddr    uint16
	LoopAddr     uint16
	BlockSamples [16]int16
	BlockPos     int
	Ended        bool
}

type timerState struct {
	DividerPeriod uint16
	Target        uint8
	Enabled       bool
	Divider       uint16
	Stage         uint8
	Output        uint8
	WasEnabled    bool
}

type apuState struct {
	ARAM     [aramSize]byte
	Timers   [3]timerState
	Voices   [8]voiceState
	Solo     int
	Ports    [4]uint8
	PortsOut [4]uint8
	DSPAddr  uint8
	Dir      uint8
	EndX     uint8
}

// SaveState returns a gob-encoded snapshot of ARAM, the 3 hardware timers,
// and the 8 voices' playback/interpolation state (spec.md §6.4).
func (a *APU) SaveState() []byte {
	s := apuState{
		ARAM: a.ARAM, Solo: a.solo, Ports: a.ports, PortsOut: a.portsOut,
		DSPAddr: a.dspAddr, Dir: a.dir, EndX: a.endX,
	}
	for i := range a.Timers {
		t := &a.Timers[i]
		s.Timers[i] = timerState{
			DividerPeriod: t.DividerPeriod,
			Target:        t.Target,
			Enabled:       t.Enabled,
			Divider:       t.divider,
			Stage:         t.stage,
			Output:        t.output,
			WasEnabled:    t.wasEnabled,
		}
	}
	for i := range a.Voices {
		v := &a.Voices[i]
		s.Voices[i] = voiceState{
			Interp:       pitchState{Ring: v.interp.ring, RingHead: v.interp.ringHead, Counter: v.interp.counter},
			Prev1:        v.prev1,
			Prev2:        v.prev2,
			Volume:       v.Volume,
			Pitch:        v.Pitch,
			SourceEntry:  v.SourceEntry,
			Muted:        v.muted,
			KeyOn:        v.KeyOn,
			BlockAddr:    v.blockAddr,
			LoopAddr:     v.loopAddr,
			BlockSamples: v.blockSamples,
			BlockPos:     v.blockPos,
			Ended:        v.ended,
		}
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		panic(fmt.Sprintf("audio: SaveState encode: %v", err))
	}
	return buf.Bytes()
}

// LoadState restores an APU from bytes produced by SaveState.
func (a *APU) LoadState(data []byte) error {
	var s apuState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("audio: LoadState decode: %w", err)
	}
	a.ARAM = s.ARAM
	a.solo = s.Solo
	a.ports = s.Ports
	a.portsOut = s.PortsOut
	a.dspAddr = s.DSPAddr
	a.dir = s.Dir
	a.endX = s.EndX
	for i := range s.Timers {
		ts := s.Timers[i]
		a.Timers[i] = Timer{
			DividerPeriod: ts.DividerPeriod,
			Target:        ts.Target,
			Enabled:       ts.Enabled,
			divider:       ts.Divider,
			stage:         ts.Stage,
			output:        ts.Output,
			wasEnabled:    ts.WasEnabled,
		}
	}
	for i := range s.Voices {
		vs := s.Voices[i]
		a.Voices[i] = Voice{
			interp:       PitchInterpolator{ring: vs.Interp.Ring, ringHead: vs.Interp.RingHead, counter: vs.Interp.Counter},
			prev1:        vs.Prev1,
			prev2:        vs.Prev2,
			Volume:       vs.Volume,
			Pitch:        vs.Pitch,
			SourceEntry:  vs.SourceEntry,
			muted:        vs.Muted,
			KeyOn:        vs.KeyOn,
			blockAddr:    vs.BlockAddr,
			loopAddr:     vs.LoopAddr,
			blockSamples: vs.BlockSamples,
			blockPos:     vs.BlockPos,
			ended:        vs.Ended,
		}
	}
	return nil
}
