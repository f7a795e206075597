package disasm

import "testing"

func TestFormatParseRoundTrip(t *testing.T) {
	in := CpuState{
		PC:      0x8012,
		Opcode:  "LDA",
		Operand: "$1234,X",
		EffAddr: 0x7E1234,
		HasEff:  true,
		A:       0x00FF,
		X:       0x0010,
		Y:       0x0020,
		S:       0x01FC,
		D:       0x0000,
		DB:      0x00,
		Flags:   0x34,
		V:       100,
		H:       200,
		F:       7,
	}

	line := Format(in)
	out, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if out.PC != in.PC || out.A != in.A || out.X != in.X || out.Y != in.Y ||
		out.S != in.S || out.D != in.D || out.DB != in.DB || out.Flags != in.Flags ||
		out.V != in.V || out.H != in.H || out.F != in.F {
		t.Fatalf("round trip mismatch: in=%+v out=%+v line=%q", in, out, line)
	}
	if out.HasEff != in.HasEff || out.EffAddr != in.EffAddr {
		t.Fatalf("effective address mismatch: in=%+v out=%+v", in, out)
	}
}

func TestFormatParseRoundTripNoOperand(t *testing.T) {
	in := CpuState{
		PC:     0x008000,
		Opcode: "NOP",
		A:      0x0001,
		X:      0x0002,
		Y:      0x0003,
		S:      0x01FF,
		D:      0x0000,
		DB:     0x00,
		Flags:  0xFF,
		V:      0,
		H:      0,
		F:      0,
	}

	line := Format(in)
	out, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if out.HasEff {
		t.Fatalf("expected no effective address, got %+v", out)
	}
	if out.Flags != in.Flags {
		t.Fatalf("flags mismatch: got %02X want %02X", out.Flags, in.Flags)
	}
}

func TestMnemonicTableCoversKnownOpcodes(t *testing.T) {
	cases := map[uint8]string{
		0xEA: "NOP",
		0x00: "BRK",
		0x4C: "JMP",
		0x60: "RTS",
		0xA9: "LDA",
	}
	for op, want := range cases {
		if got := Mnemonic(op); got != want {
			t.Errorf("Mnemonic(%02X) = %q, want %q", op, got, want)
		}
	}
}
