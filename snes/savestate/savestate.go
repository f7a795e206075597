// Package savestate implements the versioned binary envelope every full
// save state is wrapped in (spec.md §6.4), grounded on the teacher pack's
// encoding/gob Bus.SaveState/LoadState pattern (other_examples'
// FabianRolfMatthiasNoll-GameBoyEmulator internal/bus/bus.go). No
// serialization library appears anywhere in the retrieved pack, so gob -
// the standard library's own versioned-struct encoder - is the closest-fit
// tool, and like the rest of the core this package needs no third-party
// dependency.
package savestate

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Version is bumped whenever the envelope's own shape changes (not when a
// subsystem's internal blob format changes - those are opaque to this
// package and versioned by their owning package if they ever need to be).
const Version = 1

// Envelope is the outermost container: a format version tag plus the CPU
// and bus blobs each already gob-encoded by their own SaveState methods.
type Envelope struct {
	Version int
	CPU     []byte
	Bus     []byte
}

// Encode serializes an Envelope to bytes.
func Encode(e Envelope) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(e); err != nil {
		return nil, fmt.Errorf("savestate: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode deserializes bytes into an Envelope, failing fast on a version
// mismatch rather than attempting to interpret a blob in a format this
// build doesn't understand (R2: a version mismatch must be a hard error,
// never a silent partial load).
func Decode(data []byte) (Envelope, error) {
	var e Envelope
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&e); err != nil {
		return Envelope{}, fmt.Errorf("savestate: decode: %w", err)
	}
	if e.Version != Version {
		return Envelope{}, fmt.Errorf("savestate: version mismatch: file is v%d, this build reads v%d", e.Version, Version)
	}
	return e, nil
}
