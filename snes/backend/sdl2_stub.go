//go:build !sdl2

package backend

import (
	"fmt"

	"github.com/kurogane/gosnes/snes/video"
)

// SDL2Backend stub for builds without the sdl2 tag - grounded on
// jeebie/backend/sdl2_stub.go's build-tag pair (default builds skip the
// cgo SDL2 dependency unless explicitly requested).
type SDL2Backend struct{}

func NewSDL2Backend() *SDL2Backend { return &SDL2Backend{} }

func (s *SDL2Backend) Init(cfg Config) error {
	return fmt.Errorf("backend: SDL2 backend not available - compile with -tags sdl2 and install SDL2 development libraries")
}

func (s *SDL2Backend) Update(fb *video.Framebuffer) (uint16, bool, error) {
	return 0, true, fmt.Errorf("backend: SDL2 backend not available")
}

func (s *SDL2Backend) Cleanup() error { return nil }
