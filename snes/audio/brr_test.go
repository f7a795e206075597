package audio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// impulseBlock builds a BRR block whose only nonzero nibble is the first
// (value 1, shift 6 => initial decoded sample of (1<<6)>>1 = 32), for the
// given filter. This reproduces the impulse-response test vectors from
// original_source/sres_emulator/src/apu/brr.rs's test_decode_filter0..3.
func impulseBlock(filter uint8) [9]byte {
	var b [9]byte
	b[0] = (6 << 4) | (filter << 2)
	b[1] = 0x10
	return b
}

func toInt16Slice(s [16]int16) []int16 {
	return s[:]
}

func TestDecodeBlockFilter0ImpulseResponse(t *testing.T) {
	samples, _ := DecodeBlock(impulseBlock(0), 0, 0)
	expected := []int16{32, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	require.Equal(t, expected, toInt16Slice(samples))
}

func TestDecodeBlockFilter1ImpulseResponse(t *testing.T) {
	samples, _ := DecodeBlock(impulseBlock(1), 0, 0)
	expected := []int16{32, 30, 28, 26, 24, 22, 20, 18, 16, 15, 14, 13, 12, 11, 10, 9}
	require.Equal(t, expected, toInt16Slice(samples))
}

func TestDecodeBlockFilter2ImpulseResponse(t *testing.T) {
	samples, _ := DecodeBlock(impulseBlock(2), 0, 0)
	expected := []int16{32, 61, 86, 106, 121, 131, 136, 136, 131, 122, 109, 93, 75, 55, 34, 13}
	require.Equal(t, expected, toInt16Slice(samples))
}

func TestDecodeBlockFilter3ImpulseResponse(t *testing.T) {
	samples, _ := DecodeBlock(impulseBlock(3), 0, 0)
	expected := []int16{32, 57, 76, 90, 99, 104, 106, 105, 102, 97, 91, 84, 77, 70, 63, 56}
	require.Equal(t, expected, toInt16Slice(samples))
}

func TestDecodeHeaderUnpacksShiftFilterLoopEnd(t *testing.T) {
	h := decodeHeader(0b1011_01_1_1)
	require.EqualValues(t, 0xB, h.Shift)
	require.EqualValues(t, 1, h.Filter)
	require.True(t, h.Loop)
	require.True(t, h.End)
}
