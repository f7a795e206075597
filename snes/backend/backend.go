// Package backend defines the host-shell rendering/input surface the core
// itself does not implement (spec.md §1 lists the host GUI shell as an
// external collaborator). Grounded on the teacher's jeebie/backend.Backend
// interface shape, consolidated to the single concern an SNES host actually
// needs: render a completed frame, translate platform input to a joypad
// word, report whether the user asked to quit.
package backend

import "github.com/kurogane/gosnes/snes/video"

// Config configures a Backend at Init time.
type Config struct {
	Title string
	Scale int
}

// Backend is a complete host rendering+input surface - a terminal window
// or an SDL2 window.
type Backend interface {
	// Init prepares the backend for Update calls.
	Init(cfg Config) error

	// Update renders fb and polls for platform input, returning the
	// latched 16-bit joypad word for pad 1 (spec.md §6.5) and whether the
	// user requested to quit.
	Update(fb *video.Framebuffer) (joypad uint16, quit bool, err error)

	// Cleanup releases any platform resources acquired by Init.
	Cleanup() error
}
