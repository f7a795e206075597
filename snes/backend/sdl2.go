//go:build sdl2

package backend

import (
	"fmt"
	"unsafe"

	"github.com/kurogane/gosnes/snes/display"
	"github.com/kurogane/gosnes/snes/input"
	"github.com/kurogane/gosnes/snes/video"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL2Backend implements Backend with a real accelerated window, grounded
// on jeebie/backend/sdl2.go's CreateWindow/CreateRenderer/CreateTexture
// sequence and its RGBA8888 streaming texture update - generalized from the
// Game Boy's 160x144 1bpp-derived grayscale framebuffer to the SNES's
// 256x224 15-bit-BGR-per-pixel framebuffer (display.ScreenWidth/Height,
// display.DefaultPixelScale).
type SDL2Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	running  bool
	held     uint16
}

func NewSDL2Backend() *SDL2Backend { return &SDL2Backend{} }

func (s *SDL2Backend) Init(cfg Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("backend: sdl2 init: %w", err)
	}
	title := cfg.Title
	if title == "" {
		title = "gosnes"
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = display.DefaultPixelScale
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(display.ScreenWidth*scale), int32(display.ScreenHeight*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("backend: create window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("backend: create renderer: %w", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_STREAMING,
		int32(display.ScreenWidth), int32(display.ScreenHeight))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("backend: create texture: %w", err)
	}
	s.texture = texture
	s.running = true
	return nil
}

func (s *SDL2Backend) Update(fb *video.Framebuffer) (uint16, bool, error) {
	if !s.running {
		return 0, true, nil
	}
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		s.handleEvent(ev)
	}
	if !s.running {
		return s.held, true, nil
	}

	pixels, _, err := s.texture.Lock(nil)
	if err != nil {
		return s.held, false, fmt.Errorf("backend: lock texture: %w", err)
	}
	out := (*[display.ScreenWidth * display.ScreenHeight]uint32)(unsafe.Pointer(&pixels[0]))
	for y := 0; y < display.ScreenHeight; y++ {
		row := fb.Row(y)
		for x := 0; x < display.ScreenWidth; x++ {
			r, g, b, a := row[x].RGBA()
			out[y*display.ScreenWidth+x] = uint32(r)<<display.RGBARShift | uint32(g)<<display.RGBAGShift | uint32(b)<<display.RGBABShift | uint32(a)
		}
	}
	s.texture.Unlock()

	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()

	return s.held, false, nil
}

func (s *SDL2Backend) Cleanup() error {
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
	return nil
}

func (s *SDL2Backend) handleEvent(ev sdl.Event) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		s.running = false
	case *sdl.KeyboardEvent:
		btn := keyToButtonSDL(e.Keysym.Sym)
		if e.Type == sdl.KEYDOWN {
			if e.Keysym.Sym == sdl.K_ESCAPE {
				s.running = false
				return
			}
			s.held |= btn
		} else if e.Type == sdl.KEYUP {
			s.held &^= btn
		}
	}
}

func keyToButtonSDL(key sdl.Keycode) uint16 {
	switch key {
	case sdl.K_UP:
		return input.ButtonUp
	case sdl.K_DOWN:
		return input.ButtonDown
	case sdl.K_LEFT:
		return input.ButtonLeft
	case sdl.K_RIGHT:
		return input.ButtonRight
	case sdl.K_RETURN:
		return input.ButtonStart
	case sdl.K_TAB:
		return input.ButtonSelect
	case sdl.K_z:
		return input.ButtonB
	case sdl.K_x:
		return input.ButtonA
	case sdl.K_a:
		return input.ButtonY
	case sdl.K_s:
		return input.ButtonX
	case sdl.K_q:
		return input.ButtonL
	case sdl.K_w:
		return input.ButtonR
	}
	return 0
}
