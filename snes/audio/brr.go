package audio

// BRR decoding reproduces original_source/sres_emulator/src/apu/brr.rs's
// BrrBlock::samples: a 9-byte block (1 header + 8 nibble-pair bytes)
// decodes into 16 signed 16-bit samples via one of 4 predictive filters.

// BlockHeader unpacks a BRR block's header byte.
type BlockHeader struct {
	Shift  uint8
	Filter uint8
	Loop   bool
	End    bool
}

func decodeHeader(b uint8) BlockHeader {
	return BlockHeader{
		Shift:  b >> 4,
		Filter: (b >> 2) & 0x3,
		Loop:   b&0x2 != 0,
		End:    b&0x1 != 0,
	}
}

// i4ToI16 sign-extends a 4-bit nibble to int16.
func i4ToI16(nibble uint8) int16 {
	v := int16(nibble)
	if v >= 8 {
		v -= 16
	}
	return v
}

// brrFilterCoefficients holds the 4 predictive filters as (a, b) multipliers
// of the previous two samples, accumulated in float; each sample is then
// truncated toward zero and wrapped to int16.
var brrFilterCoefficients = [4][2]float64{
	{0, 0},
	{15.0 / 16.0, 0},
	{61.0 / 32.0, -15.0 / 16.0},
	{115.0 / 64.0, -13.0 / 16.0},
}

// DecodeBlock decodes one 9-byte BRR block into 16 samples, given the prior
// block's last two decoded samples (0 at stream start).
func DecodeBlock(block [9]byte, prev1, prev2 int16) (samples [16]int16, header BlockHeader) {
	header = decodeHeader(block[0])

	p1, p2 := float64(prev1), float64(prev2)
	coeff := brrFilterCoefficients[header.Filter]

	for i := 0; i < 16; i++ {
		byteIdx := 1 + i/2
		raw := block[byteIdx]
		var nibble uint8
		if i%2 == 0 {
			nibble = raw >> 4
		} else {
			nibble = raw & 0xF
		}

		// Sign-extend, shift left by the header's shift, then arithmetic
		// shift right by 1 - int16 throughout, matching the original's
		// overflowing_shl/overflowing_shr on i16 (truncating, not
		// widening, so an out-of-range shift wraps rather than clips).
		sample := i4ToI16(nibble)
		shifted := sample << header.Shift
		linear := float64(shifted >> 1)

		predicted := linear + p1*coeff[0] + p2*coeff[1]

		out := int16(int32(predicted))
		samples[i] = out
		p2 = p1
		p1 = float64(out)
	}

	return samples, header
}

func clampI16(v float64) int32 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int32(v)
}
