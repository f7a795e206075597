package video

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kurogane/gosnes/snes/addr"
)

func TestForceBlankProducesBlackScanline(t *testing.T) {
	p := NewPPU()
	p.RenderScanline(0)
	for _, px := range p.Framebuffer.Row(0) {
		require.Equal(t, Rgb15(0), px)
	}
}

func TestVRAMWriteLowHighBytesAssembleWord(t *testing.T) {
	p := NewPPU()
	p.WriteRegister(addr.VMAIN, 0x80) // increment on high-byte write, step 1
	p.WriteRegister(addr.VMADDL, 0x10)
	p.WriteRegister(addr.VMADDH, 0x00)
	p.WriteRegister(addr.VMDATAL, 0xAD)
	p.WriteRegister(addr.VMDATAH, 0xDE)
	require.Equal(t, uint16(0xDEAD), p.VRAM[0x10])
}

func TestVRAMAddressAutoIncrementsOnSelectedByte(t *testing.T) {
	p := NewPPU()
	p.WriteRegister(addr.VMAIN, 0x80) // increment on high-byte write
	p.WriteRegister(addr.VMADDL, 0x00)
	p.WriteRegister(addr.VMADDH, 0x00)
	p.WriteRegister(addr.VMDATAL, 0x01)
	require.Equal(t, uint16(0x0000), p.vmAddr, "no increment yet: low-byte write doesn't trigger")
	p.WriteRegister(addr.VMDATAH, 0x00)
	require.Equal(t, uint16(0x0001), p.vmAddr)
}

func TestCGDataWriteRequiresTwoBytesPerEntry(t *testing.T) {
	p := NewPPU()
	p.WriteRegister(addr.CGADD, 1)
	p.WriteRegister(addr.CGDATA, 0xFF) // low byte latched
	require.Equal(t, uint16(0), p.CGRAM[1], "not committed until high byte arrives")
	p.WriteRegister(addr.CGDATA, 0x7F) // high byte, triggers commit + auto-increment
	require.Equal(t, uint16(0x7FFF), p.CGRAM[1])
	require.EqualValues(t, 2, p.cgAddr)
}

func TestOAMDataWriteTwoBytesAndAutoIncrement(t *testing.T) {
	p := NewPPU()
	p.WriteRegister(addr.OAMADDL, 0)
	p.WriteRegister(addr.OAMADDH, 0)
	p.WriteRegister(addr.OAMDATA, 0x12)
	p.WriteRegister(addr.OAMDATA, 0x34)
	require.Equal(t, uint8(0x12), p.OAM[0])
	require.Equal(t, uint8(0x34), p.OAM[1])
	require.EqualValues(t, 1, p.oamAddr)
}

func TestBGMode0SinglePixelRoundTrip(t *testing.T) {
	p := NewPPU()
	p.ForceBlank = false
	p.Brightness = 15
	p.WriteRegister(addr.BGMODE, 0x00)
	p.WriteRegister(addr.BG1SC, 0x00) // tilemap at VRAM word 0, 32x32
	p.WriteRegister(addr.BG12NBA, 0x01) // BG1 tileset at word 0x1000

	// Tilemap entry at (0,0): tile index 1, palette 0.
	p.VRAM[0] = 1

	// 2bpp tile 1 lives at tileset base + 1*8 words. Row 0: bitplane0=0xFF
	// (low byte), bitplane1=0x00 (high byte) -> every pixel color index 1.
	p.VRAM[0x1000+8] = 0x00FF

	p.CGRAM[1] = 0x1234 & 0x7FFF

	p.TM = 0x01 // BG1 enabled on main screen
	p.RenderScanline(0)

	require.Equal(t, Rgb15(0x1234&0x7FFF), p.Framebuffer.Row(0)[0])
}

func TestSpriteDecodeXHighBitSignExtends(t *testing.T) {
	p := NewPPU()
	p.OAM[0] = 0x00 // X low
	p.OAM[1] = 10   // Y
	p.OAM[2] = 0
	p.OAM[3] = 0
	p.OAM[0x200] = 0x01 // X high bit set -> negative X

	s := p.decodeSprite(0)
	require.Equal(t, int16(-256), s.X)
}

func TestScanSpritesOnLineCapsAt32(t *testing.T) {
	p := NewPPU()
	for i := 0; i < 40; i++ {
		base := i * 4
		p.OAM[base] = 0
		p.OAM[base+1] = 5
	}
	hits := p.scanSpritesOnLine(5)
	require.Len(t, hits, 32)
}
