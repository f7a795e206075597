package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kurogane/gosnes/snes/input"
	"github.com/kurogane/gosnes/snes/video"
)

// TerminalBackend renders the 256x224 framebuffer as half-block characters
// in true color, grounded on jeebie/backend/terminal.go's tcell usage and
// jeebie/backend/terminal/render's half-block idiom - generalized from that
// renderer's 4-shade grayscale lookup to the SNES's full 15-bit BGR palette,
// since tcell's RGBColor supports truecolor directly.
type TerminalBackend struct {
	screen  tcell.Screen
	running bool
}

// NewTerminalBackend constructs an uninitialized terminal backend.
func NewTerminalBackend() *TerminalBackend {
	return &TerminalBackend{}
}

func (t *TerminalBackend) Init(cfg Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("backend: terminal init: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("backend: terminal init: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()
	t.screen = screen
	t.running = true
	return nil
}

func (t *TerminalBackend) Cleanup() error {
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

// Update renders one frame as two vertically-paired rows per terminal cell
// (▀ with distinct foreground/background truecolor) and drains pending key
// events into a joypad word.
func (t *TerminalBackend) Update(fb *video.Framebuffer) (uint16, bool, error) {
	if !t.running {
		return 0, true, nil
	}

	var joy uint16
	for {
		if t.screen.HasPendingEvent() {
			switch ev := t.screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape {
					t.running = false
					return 0, true, nil
				}
				joy |= keyToButton(ev)
			case *tcell.EventResize:
				t.screen.Sync()
			}
			continue
		}
		break
	}

	for y := 0; y+1 < video.Height; y += 2 {
		top := fb.Row(y)
		bottom := fb.Row(y + 1)
		for x := 0; x < video.Width; x++ {
			tr, tg, tb, _ := top[x].RGBA()
			br, bg, bb, _ := bottom[x].RGBA()
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb))).
				Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
			t.screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
	t.screen.Show()
	return joy, false, nil
}

// keyToButton maps a single keypress to the standard-controller bits it
// represents. Held buttons are not tracked across frames - this is a
// preview renderer, not an input-accurate frontend (the host GUI shell
// proper is an external collaborator per spec.md §1).
func keyToButton(ev *tcell.EventKey) uint16 {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.ButtonUp
	case tcell.KeyDown:
		return input.ButtonDown
	case tcell.KeyLeft:
		return input.ButtonLeft
	case tcell.KeyRight:
		return input.ButtonRight
	case tcell.KeyEnter:
		return input.ButtonStart
	case tcell.KeyTab:
		return input.ButtonSelect
	}
	switch ev.Rune() {
	case 'z', 'Z':
		return input.ButtonB
	case 'x', 'X':
		return input.ButtonA
	case 'a', 'A':
		return input.ButtonY
	case 's', 'S':
		return input.ButtonX
	case 'q', 'Q':
		return input.ButtonL
	case 'w', 'W':
		return input.ButtonR
	}
	return 0
}
