// Package disasm formats and parses CPU trace lines in the fixed-width
// column format spec.md §6.2 describes as compatible with the BSNES+ and
// Mesen trace formats, generalized from the teacher's disasm package's
// fmt.Sprintf-template approach (jeebie/disasm/disasm.go).
package disasm

import (
	"fmt"
	"strconv"
	"strings"
)

// CpuState is the subset of 65816 register-file state a trace line
// round-trips (R1): PC, A/X/Y/S/D/DB, flags, and the scanline position at
// the moment the instruction executed.
type CpuState struct {
	PC      uint32 // bank<<16 | offset
	Opcode  string
	Operand string
	EffAddr uint32
	HasEff  bool
	A       uint16
	X       uint16
	Y       uint16
	S       uint16
	D       uint16
	DB      uint8
	Flags   uint8 // N V M X D I Z C, bit 7 down to bit 0
	V       int
	H       int
	F       uint64
}

const flagLetters = "NVMXDIZC"

// flagsString renders the 8-bit flags byte as its 8 letters, uppercase when
// set and lowercase when clear, matching BSNES+/Mesen trace conventions.
func flagsString(flags uint8) string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		bit := uint8(7 - i)
		letter := flagLetters[i]
		if flags&(1<<bit) != 0 {
			b.WriteByte(letter)
		} else {
			b.WriteByte(letter + ('a' - 'A'))
		}
	}
	return b.String()
}

func parseFlags(s string) uint8 {
	var flags uint8
	for i := 0; i < len(s) && i < 8; i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			flags |= 1 << uint(7-i)
		}
	}
	return flags
}

// Format renders one trace line for the given state.
func Format(s CpuState) string {
	effAddr := ""
	if s.HasEff {
		effAddr = fmt.Sprintf("[%06X]", s.EffAddr)
	}
	return fmt.Sprintf(
		"%06X %-3s %-10s %-8s A:%04X X:%04X Y:%04X S:%04X D:%04X DB:%02X %s V:%d H:%d F:%d",
		s.PC, s.Opcode, s.Operand, effAddr,
		s.A, s.X, s.Y, s.S, s.D, s.DB,
		flagsString(s.Flags), s.V, s.H, s.F,
	)
}

// Parse reparses a trace line previously emitted by Format back into a
// CpuState (R1's round-trip test).
func Parse(line string) (CpuState, error) {
	fields := strings.Fields(line)
	if len(fields) < 11 {
		return CpuState{}, fmt.Errorf("disasm: malformed trace line: %q", line)
	}

	var s CpuState
	pc, err := strconv.ParseUint(fields[0], 16, 32)
	if err != nil {
		return CpuState{}, fmt.Errorf("disasm: bad PC field: %w", err)
	}
	s.PC = uint32(pc)
	s.Opcode = fields[1]

	idx := 2
	// Operand may be empty for implied instructions; an effective address
	// is present only when the next token is bracketed.
	s.Operand = ""
	if idx < len(fields) && !strings.HasPrefix(fields[idx], "[") && !strings.HasPrefix(fields[idx], "A:") {
		s.Operand = fields[idx]
		idx++
	}
	if idx < len(fields) && strings.HasPrefix(fields[idx], "[") {
		raw := strings.Trim(fields[idx], "[]")
		eff, err := strconv.ParseUint(raw, 16, 32)
		if err != nil {
			return CpuState{}, fmt.Errorf("disasm: bad effective address: %w", err)
		}
		s.EffAddr = uint32(eff)
		s.HasEff = true
		idx++
	}

	rest := fields[idx:]
	get := func(prefix string) (string, error) {
		for _, f := range rest {
			if strings.HasPrefix(f, prefix) {
				return strings.TrimPrefix(f, prefix), nil
			}
		}
		return "", fmt.Errorf("disasm: missing field %q", prefix)
	}

	parseField := func(prefix string, bits int) (uint64, error) {
		raw, err := get(prefix)
		if err != nil {
			return 0, err
		}
		return strconv.ParseUint(raw, 16, bits)
	}

	if v, err := parseField("A:", 16); err != nil {
		return CpuState{}, err
	} else {
		s.A = uint16(v)
	}
	if v, err := parseField("X:", 16); err != nil {
		return CpuState{}, err
	} else {
		s.X = uint16(v)
	}
	if v, err := parseField("Y:", 16); err != nil {
		return CpuState{}, err
	} else {
		s.Y = uint16(v)
	}
	if v, err := parseField("S:", 16); err != nil {
		return CpuState{}, err
	} else {
		s.S = uint16(v)
	}
	if v, err := parseField("D:", 16); err != nil {
		return CpuState{}, err
	} else {
		s.D = uint16(v)
	}
	if v, err := parseField("DB:", 8); err != nil {
		return CpuState{}, err
	} else {
		s.DB = uint8(v)
	}

	flagsRaw, err := get("")
	_ = flagsRaw
	for _, f := range rest {
		if len(f) == 8 && isFlagsToken(f) {
			s.Flags = parseFlags(f)
			break
		}
	}

	for _, f := range rest {
		switch {
		case strings.HasPrefix(f, "V:"):
			fmt.Sscanf(strings.TrimPrefix(f, "V:"), "%d", &s.V)
		case strings.HasPrefix(f, "H:"):
			fmt.Sscanf(strings.TrimPrefix(f, "H:"), "%d", &s.H)
		case strings.HasPrefix(f, "F:"):
			fmt.Sscanf(strings.TrimPrefix(f, "F:"), "%d", &s.F)
		}
	}

	return s, nil
}

func isFlagsToken(f string) bool {
	for i, c := range f {
		want := flagLetters[i]
		if c != rune(want) && c != rune(want+('a'-'A')) {
			return false
		}
	}
	return true
}
