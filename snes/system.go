// Package snes is the root aggregate: it owns the bus, both CPUs, and the
// audio/video swap surfaces the host shell drives (spec.md §6). This is the
// "single owning aggregate" design note §9 calls for in place of cyclic
// PPU/DMA/CPU back-references - external callers only ever see Emulator's
// method surface, grounded on the teacher's jeebie/core.go Emulator shape.
package snes

import (
	"fmt"
	"time"

	"github.com/kurogane/gosnes/snes/cpu65816"
	"github.com/kurogane/gosnes/snes/disasm"
	"github.com/kurogane/gosnes/snes/input"
	"github.com/kurogane/gosnes/snes/memaddr"
	"github.com/kurogane/gosnes/snes/membus"
	"github.com/kurogane/gosnes/snes/timing"
	"github.com/kurogane/gosnes/snes/video"
)

// Emulator is the core's entry point: construct one from a loaded
// Cartridge, then drive it with ExecuteForDuration/ExecuteForAudioSamples
// and pull frames/audio/state back out through the swap APIs.
type Emulator struct {
	Bus *membus.Bus
	CPU *cpu65816.CPU

	audioPool    audioBufferPool
	lastFrameSeq uint64
	seenFrameSeq uint64

	traceEnabled bool
	lastTrace    string
}

// New constructs an Emulator from an already-validated Cartridge (the
// core's one Result-returning setup boundary is LoadCartridge itself,
// spec.md §7).
func New(cart *membus.Cartridge) *Emulator {
	e := &Emulator{
		Bus: membus.New(cart),
	}
	e.CPU = cpu65816.New(e.Bus)
	e.CPU.Reset()
	e.audioPool.init()
	return e
}

// NewWithFile loads rom/sram bytes and a discovered header (the external
// cartridge-parsing collaborator's output, spec.md §6.1) and constructs an
// Emulator from it.
func NewWithFile(rom, sram []byte, header membus.Header) (*Emulator, error) {
	cart, err := membus.LoadCartridge(rom, sram, header)
	if err != nil {
		return nil, fmt.Errorf("snes: %w", err)
	}
	return New(cart), nil
}

// Reset re-initializes the CPU from the reset vector without discarding
// WRAM/VRAM contents (matching a real console's reset line behavior).
func (e *Emulator) Reset() {
	e.CPU.Reset()
}

// EnableTrace turns on per-instruction trace-line capture (spec.md §6.2);
// disabled by default so the hot path pays nothing for it.
func (e *Emulator) EnableTrace(enabled bool) { e.traceEnabled = enabled }

// LastTrace returns the most recently captured trace line, or "" if tracing
// is disabled.
func (e *Emulator) LastTrace() string { return e.lastTrace }

// step executes one CPU instruction, then services NMI/IRQ per spec.md
// §4.4: NMI is checked unconditionally, IRQ only when the CPU's I flag is
// clear; both are gated by the bus's one-shot consumable latches.
func (e *Emulator) step() {
	if e.traceEnabled {
		e.lastTrace = e.formatTrace()
	}
	frameBefore := e.Bus.Clock.F
	e.CPU.Step()
	if e.Bus.Clock.F != frameBefore {
		e.lastFrameSeq++
		e.produceAudioFrame()
	}
	if e.Bus.ConsumeNMI() {
		e.CPU.HandleNMI()
	} else if !e.CPU.P.IRQDisable && e.Bus.ConsumeIRQ() {
		e.CPU.HandleIRQ()
	}
}

// formatTrace renders a trace line for the instruction about to execute,
// peeking the opcode byte without consuming cycles (spec.md §6.2).
func (e *Emulator) formatTrace() string {
	c := e.CPU
	opcode := e.Bus.Peek(memaddr.NewLong(c.PBR, c.PC))
	return disasm.Format(disasm.CpuState{
		PC:     uint32(c.PBR)<<16 | uint32(c.PC),
		Opcode: disasm.Mnemonic(opcode),
		A:      c.A.Get16(),
		X:      c.X.Get16(),
		Y:      c.Y.Get16(),
		S:      c.SP.Get16(),
		D:      c.D,
		DB:     c.DBR,
		Flags:  c.P.Byte(c.Emulation),
		V:      e.Bus.Clock.V,
		H:      e.Bus.Clock.H,
		F:      e.Bus.Clock.F,
	})
}

// ExecuteForDuration runs the emulator for approximately dt of wall-clock
// emulated time, stopping as soon as that cycle budget is exhausted -
// possibly mid-frame (spec.md §5's soft-bounded cancellation contract).
func (e *Emulator) ExecuteForDuration(dt time.Duration) {
	budgetCycles := uint64(dt.Seconds() * timing.CPUFrequency)
	start := e.Bus.Clock.MasterClock
	for e.Bus.Clock.MasterClock-start < budgetCycles {
		e.step()
	}
}

// ExecuteForAudioSamples runs the emulator until it has produced at least n
// fresh audio samples since the last call, then returns. This is the
// consumer-facing pacing primitive spec.md §5 describes: "the consumer
// computes samples needed... and the core produces exactly that many on
// its next audio step."
func (e *Emulator) ExecuteForAudioSamples(n int) {
	const spcSamplesPerMasterTick = 1.0 / 672.0 // ~32kHz output / 21.477MHz master
	target := e.audioProducedEstimate() + uint64(n)
	for e.audioProducedEstimate() < target {
		e.step()
	}
	_ = spcSamplesPerMasterTick
}

func (e *Emulator) audioProducedEstimate() uint64 {
	return e.Bus.Clock.MasterClock / 672
}

// RunUntilFrame executes instructions until a new video frame (scanline
// 224, the start of VBlank) has been produced, mirroring the teacher's
// RunUntilFrame shape for headless/CLI callers that want frame-granularity
// stepping rather than a time budget.
func (e *Emulator) RunUntilFrame() {
	startFrame := e.Bus.Clock.F
	startV := e.Bus.Clock.V
	for {
		e.step()
		if e.Bus.Clock.F != startFrame || (e.Bus.Clock.V >= video.Height && startV < video.Height) {
			return
		}
		startV = e.Bus.Clock.V
	}
}

// SwapVideoFrame exchanges the emulator's completed frame into fb and
// reports whether a new frame has been produced since the last call
// (spec.md §6.6).
func (e *Emulator) SwapVideoFrame(fb *video.Framebuffer) bool {
	changed := e.seenFrameSeq != e.lastFrameSeq
	*fb = e.Bus.PPU.Framebuffer
	e.seenFrameSeq = e.lastFrameSeq
	return changed
}

// GetCurrentFrame returns a read-only view of the most recently rendered
// framebuffer, for host preview/snapshot use.
func (e *Emulator) GetCurrentFrame() *video.Framebuffer {
	return &e.Bus.PPU.Framebuffer
}

// UpdateJoypads latches both controllers' 16-bit words (spec.md §6.5).
// Only pad1 is required; pad2 may be left zero.
func (e *Emulator) UpdateJoypads(joy1, joy2 uint16) {
	e.Bus.Pad1.Update(joy1)
	e.Bus.Pad2.Update(joy2)
}

// Keeps the input package imported; nothing is re-exported, so callers
// assembling a 16-bit word use input's button masks directly.
var _ = input.ButtonA
