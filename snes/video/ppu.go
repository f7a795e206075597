package video

// bgModeBitDepths gives each BG layer's bit depth for BGMODE 0-7. Mode 7's
// rotate/scale layer is a Non-goal; BG1 is left at 8bpp, so in mode 7
// RenderScanline draws it as an ordinary 8bpp tiled layer with no
// rotate/scale transform applied.
var bgModeBitDepths = [8][4]BitDepth{
	{BPP2, BPP2, BPP2, BPP2},
	{BPP4, BPP4, BPP2, BPPDisabled},
	{BPP4, BPP4, BPPDisabled, BPPDisabled},
	{BPP8, BPP4, BPPDisabled, BPPDisabled},
	{BPP8, BPP2, BPPDisabled, BPPDisabled},
	{BPP4, BPP2, BPPDisabled, BPPDisabled},
	{BPP4, BPPDisabled, BPPDisabled, BPPDisabled},
	{BPP8, BPPDisabled, BPPDisabled, BPPDisabled},
}

// layerOrder orders the BG layers active in the current mode from back to
// front, alongside where each priority tier (low, high) sits relative to
// the four sprite priority tiers. This mirrors the real PPU's fixed
// per-mode priority chains without attempting mode 7's interleaving.
type renderLayer struct {
	kind     int // 0 = BG, 1 = sprite
	bgIndex  int
	spritePri int
	high     bool
}

func (p *PPU) layerOrder() []renderLayer {
	switch p.BGMode {
	case 0:
		return []renderLayer{
			{kind: 0, bgIndex: 3, high: false},
			{kind: 0, bgIndex: 2, high: false},
			{kind: 1, spritePri: 0},
			{kind: 0, bgIndex: 3, high: true},
			{kind: 0, bgIndex: 2, high: true},
			{kind: 1, spritePri: 1},
			{kind: 0, bgIndex: 1, high: false},
			{kind: 0, bgIndex: 0, high: false},
			{kind: 1, spritePri: 2},
			{kind: 0, bgIndex: 1, high: true},
			{kind: 0, bgIndex: 0, high: true},
			{kind: 1, spritePri: 3},
		}
	case 1:
		order := []renderLayer{
			{kind: 0, bgIndex: 2, high: false},
			{kind: 1, spritePri: 0},
			{kind: 0, bgIndex: 1, high: false},
			{kind: 1, spritePri: 1},
			{kind: 0, bgIndex: 0, high: false},
			{kind: 1, spritePri: 2},
			{kind: 0, bgIndex: 1, high: true},
			{kind: 1, spritePri: 3},
			{kind: 0, bgIndex: 0, high: true},
		}
		if p.BG3Priority {
			// With the "BG3 priority" bit set, BG3 high-priority tiles are
			// drawn in front of every other layer; without it they are
			// placed at the back of the order.
			order = append(order, renderLayer{kind: 0, bgIndex: 2, high: true})
		} else {
			order = append([]renderLayer{{kind: 0, bgIndex: 2, high: true}}, order...)
		}
		return order
	default:
		return []renderLayer{
			{kind: 0, bgIndex: 1, high: false},
			{kind: 1, spritePri: 0},
			{kind: 1, spritePri: 1},
			{kind: 0, bgIndex: 0, high: false},
			{kind: 1, spritePri: 2},
			{kind: 0, bgIndex: 1, high: true},
			{kind: 1, spritePri: 3},
			{kind: 0, bgIndex: 0, high: true},
		}
	}
}

// RenderScanline rasterizes one visible scanline (0-223) into the
// framebuffer, applying BG compositing, sprite priority, and color math.
// Called by the bus once per scanline as V crosses into the visible range
// (E6: VBlank scanlines are never rendered).
func (p *PPU) RenderScanline(y int) {
	if y < 0 || y >= Height {
		return
	}
	row := p.Framebuffer.Row(y)

	if p.ForceBlank {
		for x := range row {
			row[x] = 0
		}
		return
	}

	sprites := p.scanSpritesOnLine(y)
	backdrop := Rgb15(p.CGRAM[0])

	for x := 0; x < Width; x++ {
		mainColor, mainIsBackdrop := backdrop, true
		subColor, subIsBackdrop := backdrop, true
		mainColorMathEligible := true

		order := p.layerOrder()
		for li := len(order) - 1; li >= 0; li-- {
			layer := order[li]
			resolvedMain, mainOk := p.resolveLayerPixel(layer, x, y, sprites, p.TM)
			if mainOk && mainIsBackdrop {
				mainColor = resolvedMain
				mainIsBackdrop = false
				mainColorMathEligible = layer.kind == 0 || layer.spritePri < 4
			}
			resolvedSub, subOk := p.resolveLayerPixel(layer, x, y, sprites, p.TS)
			if subOk && subIsBackdrop {
				subColor = resolvedSub
				subIsBackdrop = false
			}
			if mainOk && subOk {
				break
			}
		}

		final := mainColor
		if p.colorMathEnabled() && mainColorMathEligible {
			final = p.applyColorMath(mainColor, subColor, subIsBackdrop)
		}
		row[x] = p.applyBrightness(final)
	}
}

// resolveLayerPixel returns the composited color for one render layer at
// (x, y) if it produces an opaque pixel on the given screen-enable mask
// (TM for main screen, TS for sub screen).
func (p *PPU) resolveLayerPixel(layer renderLayer, x, y int, sprites []Sprite, enableMask uint8) (Rgb15, bool) {
	if layer.kind == 1 {
		if enableMask&0x10 == 0 {
			return 0, false
		}
		for i := len(sprites) - 1; i >= 0; i-- {
			s := sprites[i]
			if s.Priority != layer.spritePri {
				continue
			}
			idx, opaque := p.spritePixel(s, x, y)
			if !opaque {
				continue
			}
			return p.spritePaletteColor(s.Palette, idx), true
		}
		return 0, false
	}

	if enableMask&(1<<uint(layer.bgIndex)) == 0 {
		return 0, false
	}
	bg := &p.BG[layer.bgIndex]
	if bg.BitDepth == BPPDisabled {
		return 0, false
	}
	lookup := p.bgPixel(bg, x, y)
	if !lookup.Opaque || lookup.Priority != layer.high {
		return 0, false
	}
	return p.bgPaletteColor(layer.bgIndex, bg.BitDepth, lookup.Palette, lookup.ColorIndex), true
}

func (p *PPU) colorMathEnabled() bool {
	return p.CGADSUB&0x20 != 0 || p.CGADSUB&0x1F != 0
}

// applyColorMath blends main and sub screen colors per CGADSUB: add or
// subtract, optionally halved, with the backdrop acting as the fixed color
// operand when the sub screen has no opaque pixel.
func (p *PPU) applyColorMath(main, sub Rgb15, subIsBackdrop bool) Rgb15 {
	subtract := p.CGADSUB&0x80 != 0
	half := p.CGADSUB&0x40 != 0

	operand := sub
	if subIsBackdrop {
		operand = Rgb15(uint16(p.fixedB)<<10 | uint16(p.fixedG)<<5 | uint16(p.fixedR))
	}

	mr, mg, mb := channelsOf(main)
	or, og, ob := channelsOf(operand)

	var r, g, b int
	if subtract {
		r, g, b = int(mr)-int(or), int(mg)-int(og), int(mb)-int(ob)
	} else {
		r, g, b = int(mr)+int(or), int(mg)+int(og), int(mb)+int(ob)
	}
	if half {
		r, g, b = r/2, g/2, b/2
	}
	return Rgb15(clamp5(r))<<0 | Rgb15(clamp5(g))<<5 | Rgb15(clamp5(b))<<10
}

func channelsOf(c Rgb15) (r, g, b uint8) {
	return uint8(c & 0x1F), uint8((c >> 5) & 0x1F), uint8((c >> 10) & 0x1F)
}

func clamp5(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > 31 {
		return 31
	}
	return uint16(v)
}

// applyBrightness scales a resolved color by INIDISP's 4-bit brightness,
// full brightness (15) meaning unscaled.
func (p *PPU) applyBrightness(c Rgb15) Rgb15 {
	if p.Brightness >= 15 {
		return c
	}
	r, g, b := channelsOf(c)
	r = uint8(int(r) * int(p.Brightness) / 15)
	g = uint8(int(g) * int(p.Brightness) / 15)
	b = uint8(int(b) * int(p.Brightness) / 15)
	return Rgb15(r) | Rgb15(g)<<5 | Rgb15(b)<<10
}
