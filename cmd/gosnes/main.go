// Command gosnes is the host shell around the snes core: it parses the
// command line, discovers the cartridge header (the external parser
// collaborator spec.md §6.1 calls for), and drives Emulator through either
// a headless frame-budget loop or an interactive backend (terminal/SDL2).
// Grounded on cmd/jeebie/main.go's urfave/cli structure, adapted from a
// Game Boy single-mapping cartridge to the SNES's LoROM/HiROM header
// discovery and from jeebie.Emulator's API to snes.Emulator's.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/kurogane/gosnes/snes"
	"github.com/kurogane/gosnes/snes/backend"
	"github.com/kurogane/gosnes/snes/membus"
	"github.com/kurogane/gosnes/snes/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "gosnes"
	app.Description = "A cycle-accurate Super Nintendo emulator core"
	app.Usage = "gosnes [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "rom", Usage: "Path to the ROM file (.sfc/.smc)"},
		cli.StringFlag{Name: "sram", Usage: "Path to a battery-save file to load/persist"},
		cli.BoolFlag{Name: "headless", Usage: "Run without a display backend"},
		cli.IntFlag{Name: "frames", Usage: "Number of frames to run in headless mode (required for headless)"},
		cli.IntFlag{Name: "snapshot-interval", Usage: "Save a frame snapshot every N frames in headless mode (0 = disabled)"},
		cli.StringFlag{Name: "snapshot-dir", Usage: "Directory to save frame snapshots (default: temp directory)"},
		cli.StringFlag{Name: "backend", Value: "terminal", Usage: "Interactive backend: terminal or sdl2"},
		cli.StringFlag{Name: "pacer", Value: "adaptive", Usage: "Interactive frame pacing: adaptive, ticker, or none"},
		cli.StringFlag{Name: "record", Usage: "Write an input recording (JSON master_frame->joypad word) to this path on exit"},
		cli.StringFlag{Name: "replay", Usage: "Replay a prior input recording instead of reading a live backend"},
		cli.StringFlag{Name: "load-state", Usage: "Load a save state blob before running"},
		cli.StringFlag{Name: "save-state-on-exit", Usage: "Write a save state blob to this path on exit"},
		cli.BoolFlag{Name: "trace", Usage: "Log the CPU trace line of the last instruction of each frame (headless mode only)"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("gosnes exiting with error", "error", err)
		os.Exit(1)
	}
}

var acceptedExtensions = map[string]bool{".sfc": true, ".smc": true}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	ext := strings.ToLower(filepath.Ext(romPath))
	if !acceptedExtensions[ext] {
		return fmt.Errorf("gosnes: unsupported ROM extension %q (expected .sfc or .smc)", ext)
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("gosnes: reading ROM: %w", err)
	}

	var sram []byte
	sramPath := c.String("sram")
	if sramPath != "" {
		if data, err := os.ReadFile(sramPath); err == nil {
			sram = data
		}
	}

	header := discoverHeader(rom)
	emu, err := snes.NewWithFile(rom, sram, header)
	if err != nil {
		return fmt.Errorf("gosnes: %w", err)
	}
	slog.Info("cartridge loaded", "name", header.Name, "mapping", mappingName(header.Mapping), "rom_bytes", len(rom))

	if statePath := c.String("load-state"); statePath != "" {
		data, err := os.ReadFile(statePath)
		if err != nil {
			return fmt.Errorf("gosnes: reading save state: %w", err)
		}
		if err := emu.LoadState(data); err != nil {
			return fmt.Errorf("gosnes: loading save state: %w", err)
		}
		slog.Info("save state loaded", "path", statePath)
	}

	defer func() {
		if sramPath != "" && len(emu.Bus.Cart.SRAM) > 0 {
			if err := os.WriteFile(sramPath, emu.Bus.Cart.SRAM, 0644); err != nil {
				slog.Error("failed to persist SRAM", "path", sramPath, "error", err)
			}
		}
		if statePath := c.String("save-state-on-exit"); statePath != "" {
			data, err := emu.SaveState()
			if err != nil {
				slog.Error("failed to encode save state", "error", err)
				return
			}
			if err := os.WriteFile(statePath, data, 0644); err != nil {
				slog.Error("failed to write save state", "path", statePath, "error", err)
			}
		}
	}()

	replay, err := loadRecording(c.String("replay"))
	if err != nil {
		return err
	}
	rec := recorder{enabled: c.String("record") != "", path: c.String("record")}
	defer rec.flush()

	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("gosnes: headless mode requires --frames with a positive value")
		}
		return runHeadless(emu, romPath, frames, c.Int("snapshot-interval"), c.String("snapshot-dir"), c.Bool("trace"), replay, &rec)
	}

	return runInteractive(emu, c.String("backend"), c.String("pacer"), replay, &rec)
}

func mappingName(m membus.Mapping) string {
	if m == membus.HiROM {
		return "HiROM"
	}
	return "LoROM"
}

// discoverHeader performs the SFC header discovery spec.md §6.1 delegates
// to an external collaborator: scan the two candidate header offsets
// (0x7FC0 for LoROM, 0xFFC0 for HiROM) and pick whichever location carries
// the plausible checksum-complement pair (checksum ^ complement == 0xFFFF),
// falling back to LoROM when neither validates.
func discoverHeader(rom []byte) membus.Header {
	type candidate struct {
		offset  int
		mapping membus.Mapping
	}
	candidates := []candidate{{0x7FC0, membus.LoROM}, {0xFFC0, membus.HiROM}}

	best := membus.Header{Name: "UNKNOWN", Mapping: membus.LoROM, ROMSize: len(rom)}
	bestValid := false
	for _, cand := range candidates {
		if cand.offset+0x40 > len(rom) {
			continue
		}
		block := rom[cand.offset : cand.offset+0x40]
		complement := uint16(block[0x1C]) | uint16(block[0x1D])<<8
		checksum := uint16(block[0x1E]) | uint16(block[0x1F])<<8
		valid := checksum^complement == 0xFFFF
		if valid && !bestValid {
			best = membus.Header{
				Name:    strings.TrimRight(string(block[0x00:0x15]), " \x00"),
				Mapping: cand.mapping,
				FastROM: block[0x15]&0x10 != 0,
				ROMSize: 1 << block[0x17],
				SRAMSize: func() int {
					if block[0x18] == 0 {
						return 0
					}
					return 1 << (block[0x18] + 10)
				}(),
			}
			bestValid = true
		}
	}
	return best
}

func runHeadless(emu *snes.Emulator, romPath string, frames, snapshotInterval int, snapshotDir string, trace bool, replay recording, rec *recorder) error {
	if snapshotInterval > 0 && snapshotDir == "" {
		dir, err := os.MkdirTemp("", "gosnes-snapshots-*")
		if err != nil {
			return fmt.Errorf("gosnes: creating snapshot dir: %w", err)
		}
		snapshotDir = dir
	}
	if snapshotDir != "" {
		if err := os.MkdirAll(snapshotDir, 0755); err != nil {
			return fmt.Errorf("gosnes: creating snapshot dir: %w", err)
		}
	}
	romName := strings.TrimSuffix(filepath.Base(romPath), filepath.Ext(romPath))
	emu.EnableTrace(trace)

	slog.Info("running headless", "frames", frames, "snapshot_interval", snapshotInterval)
	for i := 0; i < frames; i++ {
		joy := replay.lookup(uint64(i))
		emu.UpdateJoypads(joy, 0)
		rec.record(uint64(i), joy)

		emu.RunUntilFrame()
		if trace {
			slog.Debug("trace", "line", emu.LastTrace())
		}

		if snapshotInterval > 0 && (i+1)%snapshotInterval == 0 {
			path := filepath.Join(snapshotDir, fmt.Sprintf("%s_frame_%d.txt", romName, i+1))
			if err := saveFrameSnapshot(emu, path); err != nil {
				slog.Error("failed to save snapshot", "frame", i+1, "error", err)
			}
		}
		if i%60 == 0 {
			slog.Info("frame progress", "completed", i, "total", frames)
		}
	}
	slog.Info("headless run complete", "frames", frames)
	return nil
}

// newPacer selects the host frame-pacing helper for the interactive loop,
// kept and adapted from jeebie/timing: "adaptive" drift-corrects with a
// sleep+busy-wait hybrid, "ticker" is the plainer time.Ticker-based limiter,
// and "none" lets the backend's own vsync (if any) govern pacing instead.
func newPacer(name string) (timing.Limiter, error) {
	switch name {
	case "adaptive", "":
		return timing.NewAdaptiveLimiter(), nil
	case "ticker":
		return timing.NewTickerLimiter(), nil
	case "none":
		return timing.NewNoOpLimiter(), nil
	default:
		return nil, fmt.Errorf("gosnes: unknown pacer %q", name)
	}
}

func runInteractive(emu *snes.Emulator, backendName, pacerName string, replay recording, rec *recorder) error {
	var b backend.Backend
	switch backendName {
	case "sdl2":
		b = backend.NewSDL2Backend()
	case "terminal", "":
		b = backend.NewTerminalBackend()
	default:
		return fmt.Errorf("gosnes: unknown backend %q", backendName)
	}

	if err := b.Init(backend.Config{Title: "gosnes"}); err != nil {
		return err
	}
	defer b.Cleanup()

	pacer, err := newPacer(pacerName)
	if err != nil {
		return err
	}

	var frameIdx uint64
	for {
		pacer.WaitForNextFrame()
		emu.RunUntilFrame()

		fb := emu.GetCurrentFrame()
		joy, quit, err := b.Update(fb)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		if replay != nil {
			joy = replay.lookup(frameIdx)
		}
		rec.record(frameIdx, joy)
		emu.UpdateJoypads(joy, 0)
		frameIdx++
	}
}

// saveFrameSnapshot writes a plain PPM text dump of the current frame,
// grounded on cmd/jeebie/main.go's saveFrameSnapshot (half-block rendering
// to a text file) - simplified to raw RGB triples per pixel since the SNES
// framebuffer is truecolor rather than 4-shade grayscale.
func saveFrameSnapshot(emu *snes.Emulator, path string) error {
	fb := emu.GetCurrentFrame()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "P3\n%d %d\n255\n", len(fb.Row(0)), len(fb.Pixels))
	for y := range fb.Pixels {
		for _, px := range fb.Row(y) {
			r, g, b, _ := px.RGBA()
			fmt.Fprintf(f, "%d %d %d ", r, g, b)
		}
		fmt.Fprintln(f)
	}
	return nil
}

// recording is the replay side of spec.md §6.7's input-recording protocol:
// a JSON map of master_frame -> joypad word, read once up front.
type recording map[uint64]uint16

func (r recording) lookup(frame uint64) uint16 {
	if r == nil {
		return 0
	}
	return r[frame]
}

func loadRecording(path string) (recording, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gosnes: reading replay file: %w", err)
	}
	var raw map[string]uint16
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("gosnes: parsing replay file: %w", err)
	}
	rec := make(recording, len(raw))
	for k, v := range raw {
		var frame uint64
		if _, err := fmt.Sscanf(k, "%d", &frame); err != nil {
			continue
		}
		rec[frame] = v
	}
	return rec, nil
}

// recorder is the write side: it accumulates the joypad word latched each
// frame and flushes the JSON map on exit.
type recorder struct {
	enabled bool
	path    string
	frames  map[string]uint16
}

func (r *recorder) record(frame uint64, joy uint16) {
	if !r.enabled {
		return
	}
	if r.frames == nil {
		r.frames = make(map[string]uint16)
	}
	r.frames[fmt.Sprintf("%d", frame)] = joy
}

func (r *recorder) flush() {
	if !r.enabled {
		return
	}
	data, err := json.MarshalIndent(r.frames, "", "  ")
	if err != nil {
		slog.Error("failed to encode recording", "error", err)
		return
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		slog.Error("failed to write recording", "path", r.path, "error", err)
	}
}
