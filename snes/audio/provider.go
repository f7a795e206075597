// Package audio implements the SPC700's DSP side: 8-channel BRR/pitch
// voice mixing, 3 hardware timers, and the 64 KiB ARAM/CPU-port
// communication surface.
package audio

// Provider is the host-facing audio pull interface, generalized from the
// teacher's 4-channel Game Boy APU debug surface to the SNES DSP's 8
// voices.
type Provider interface {
	// GetSamples retrieves audio samples for playback.
	GetSamples(count int) []int16

	// Audio debugging controls.

	ToggleChannel(channel int)
	SoloChannel(channel int)
	GetChannelStatus() [8]bool
}

var _ Provider = (*APU)(nil)
