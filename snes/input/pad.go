// Package input implements the SNES standard-controller word: a single
// 16-bit latch per pad (B, Y, Select, Start, Up, Down, Left, Right, A, X,
// L, R, four unused bits), generalized from the teacher's per-key
// press/release joypad idiom to a whole-word latch since the host is
// expected to assemble the word itself (spec.md §6.5). There is no joypad
// interrupt on the SNES, so only the edge-free latch half of the teacher's
// pattern survives.
package input

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Button bit positions within the 16-bit standard-controller word, MSB
// first as the hardware shifts them out: B Y Select Start Up Down Left
// Right A X L R 0 0 0 0.
const (
	ButtonB uint16 = 1 << 15
	ButtonY uint16 = 1 << 14
	ButtonSelect uint16 = 1 << 13
	ButtonStart uint16 = 1 << 12
	ButtonUp uint16 = 1 << 11
	ButtonDown uint16 = 1 << 10
	ButtonLeft uint16 = 1 << 9
	ButtonRight uint16 = 1 << 8
	ButtonA uint16 = 1 << 7
	ButtonX uint16 = 1 << 6
	ButtonL uint16 = 1 << 5
	ButtonR uint16 = 1 << 4
)

// Pad is one standard controller's latched state plus the shift register
// the JOYSER serial read (stubbed, spec.md Non-goals) would otherwise
// consume from.
type Pad struct {
	Word uint16

	shift    uint16
	strobing bool
}

// Update replaces the pad's latched word, as update_joypads(joy1, joy2)
// does at the core's external interface (spec.md §6.5).
func (p *Pad) Update(word uint16) {
	p.Word = word
}

// Strobe implements a write to 0x4016 bit 0: while set, every serial read
// returns the B button's live state; on the falling edge the shift
// register is loaded from Word for subsequent reads.
func (p *Pad) Strobe(set bool) {
	wasStrobing := p.strobing
	p.strobing = set
	if wasStrobing && !set {
		p.shift = p.Word
	}
}

// padState is the gob-encodable mirror of Pad's fields (spec.md §6.4).
type padState struct {
	Word     uint16
	Shift    uint16
	Strobing bool
}

// SaveState returns a gob-encoded snapshot of the pad's latch and shift
// register.
func (p *Pad) SaveState() []byte {
	s := padState{Word: p.Word, Shift: p.shift, Strobing: p.strobing}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		panic(fmt.Sprintf("input: SaveState encode: %v", err))
	}
	return buf.Bytes()
}

// LoadState restores a pad from bytes produced by SaveState.
func (p *Pad) LoadState(data []byte) error {
	var s padState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("input: LoadState decode: %w", err)
	}
	p.Word, p.shift, p.strobing = s.Word, s.Shift, s.Strobing
	return nil
}

// ReadSerialBit returns and shifts out the next bit of the latched word
// (JOYSER0/1 bit 0), matching the real controller's serial protocol. This
// core's Non-goals exclude serial joypad auto-read; the bit-serial read
// path exists only so guest polling code that ignores the 0x4218-0x421F
// shadow registers still observes a plausible value.
func (p *Pad) ReadSerialBit() uint8 {
	if p.strobing {
		if p.Word&ButtonB != 0 {
			return 1
		}
		return 0
	}
	bit := uint8(p.shift>>15) & 1
	p.shift <<= 1
	p.shift |= 1
	return bit
}
