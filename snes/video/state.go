package video

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/kurogane/gosnes/snes/addr"
)

type backgroundState struct {
	EnableMain      bool
	EnableSub       bool
	ColorMathEnable bool
	BitDepth        BitDepth
	PaletteBase     int
	TileSize16      bool
	TilemapBase     uint16
	TilesetBase     uint16
	TilemapWide     bool
	TilemapTall     bool
	HOfs            uint16
	VOfs            uint16
	HOfsLatch       uint8
	VOfsLatch       uint8
}

type ppuState struct {
	VRAM        [addr.VRAMSize / 2]uint16
	CGRAM       [256]uint16
	OAM         [addr.OAMSize]byte
	Framebuffer Framebuffer

	ForceBlank bool
	Brightness uint8
	OBSEL      uint8

	OamAddr      uint16
	OamLatchByte uint8
	OamLatchHalf bool

	BGMode      uint8
	BG3Priority bool
	BG          [4]backgroundState
	BG12NBA     uint8
	BG34NBA     uint8

	VmainIncHigh bool
	VmainStep    uint16
	VmAddr       uint16

	CgAddr     uint8
	CgLatchLow uint8
	CgWriteLow bool

	TM uint8
	TS uint8

	CGWSEL  uint8
	CGADSUB uint8
	FixedR  uint8
	FixedG  uint8
	FixedB  uint8

	M7a, M7b, M7c, M7d int16
	M7x, M7y           int16
	Mpy                int32

	SlhvH         uint16
	SlhvV         uint16
	OphctReadHigh bool
	OpvctReadHigh bool
}

// SaveState returns a gob-encoded snapshot of VRAM/CGRAM/OAM, the
// framebuffer, and every register-file latch (spec.md §6.4).
func (p *PPU) SaveState() []byte {
	s := ppuState{
		VRAM: p.VRAM, CGRAM: p.CGRAM, OAM: p.OAM, Framebuffer: p.Framebuffer,
		ForceBlank: p.ForceBlank, Brightness: p.Brightness, OBSEL: p.OBSEL,
		OamAddr: p.oamAddr, OamLatchByte: p.oamLatchByte, OamLatchHalf: p.oamLatchHalf,
		BGMode: p.BGMode, BG3Priority: p.BG3Priority, BG12NBA: p.BG12NBA, BG34NBA: p.BG34NBA,
		VmainIncHigh: p.vmainIncHigh, VmainStep: p.vmainStep, VmAddr: p.vmAddr,
		CgAddr: p.cgAddr, CgLatchLow: p.cgLatchLow, CgWriteLow: p.cgWriteLow,
		TM: p.TM, TS: p.TS,
		CGWSEL: p.CGWSEL, CGADSUB: p.CGADSUB, FixedR: p.fixedR, FixedG: p.fixedG, FixedB: p.fixedB,
		M7a: p.m7a, M7b: p.m7b, M7c: p.m7c, M7d: p.m7d, M7x: p.m7x, M7y: p.m7y, Mpy: p.mpy,
		SlhvH: p.slhvH, SlhvV: p.slhvV, OphctReadHigh: p.ophctReadHigh, OpvctReadHigh: p.opvctReadHigh,
	}
	for i := range p.BG {
		b := &p.BG[i]
		s.BG[i] = backgroundState{
			EnableMain: b.EnableMain, EnableSub: b.EnableSub, ColorMathEnable: b.ColorMathEnable,
			BitDepth: b.BitDepth, PaletteBase: b.PaletteBase, TileSize16: b.TileSize16,
			TilemapBase: b.TilemapBase, TilesetBase: b.TilesetBase,
			TilemapWide: b.TilemapWide, TilemapTall: b.TilemapTall,
			HOfs: b.HOfs, VOfs: b.VOfs, HOfsLatch: b.hofsLatch, VOfsLatch: b.vofsLatch,
		}
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		panic(fmt.Sprintf("video: SaveState encode: %v", err))
	}
	return buf.Bytes()
}

// LoadState restores a PPU from bytes produced by SaveState.
func (p *PPU) LoadState(data []byte) error {
	var s ppuState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("video: LoadState decode: %w", err)
	}
	p.VRAM, p.CGRAM, p.OAM, p.Framebuffer = s.VRAM, s.CGRAM, s.OAM, s.Framebuffer
	p.ForceBlank, p.Brightness, p.OBSEL = s.ForceBlank, s.Brightness, s.OBSEL
	p.oamAddr, p.oamLatchByte, p.oamLatchHalf = s.OamAddr, s.OamLatchByte, s.OamLatchHalf
	p.BGMode, p.BG3Priority, p.BG12NBA, p.BG34NBA = s.BGMode, s.BG3Priority, s.BG12NBA, s.BG34NBA
	p.vmainIncHigh, p.vmainStep, p.vmAddr = s.VmainIncHigh, s.VmainStep, s.VmAddr
	p.cgAddr, p.cgLatchLow, p.cgWriteLow = s.CgAddr, s.CgLatchLow, s.CgWriteLow
	p.TM, p.TS = s.TM, s.TS
	p.CGWSEL, p.CGADSUB, p.fixedR, p.fixedG, p.fixedB = s.CGWSEL, s.CGADSUB, s.FixedR, s.FixedG, s.FixedB
	p.m7a, p.m7b, p.m7c, p.m7d, p.m7x, p.m7y, p.mpy = s.M7a, s.M7b, s.M7c, s.M7d, s.M7x, s.M7y, s.Mpy
	p.slhvH, p.slhvV, p.ophctReadHigh, p.opvctReadHigh = s.SlhvH, s.SlhvV, s.OphctReadHigh, s.OpvctReadHigh
	for i := range s.BG {
		bs := s.BG[i]
		p.BG[i] = Background{
			EnableMain: bs.EnableMain, EnableSub: bs.EnableSub, ColorMathEnable: bs.ColorMathEnable,
			BitDepth: bs.BitDepth, PaletteBase: bs.PaletteBase, TileSize16: bs.TileSize16,
			TilemapBase: bs.TilemapBase, TilesetBase: bs.TilesetBase,
			TilemapWide: bs.TilemapWide, TilemapTall: bs.TilemapTall,
			HOfs: bs.HOfs, VOfs: bs.VOfs, hofsLatch: bs.HOfsLatch, vofsLatch: bs.VOfsLatch,
		}
	}
	return nil
}
