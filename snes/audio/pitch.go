package audio

import "math"

// gaussianTableSize matches the DSP's 512-entry interpolation table. All 512
// entries are computed from the kernel; none is mirrored from another.
const gaussianTableSize = 512

// gaussianTable is computed once at init from a normalized Gaussian kernel
// rather than transcribed byte-for-byte from hardware, since the exact
// 512-entry constant table was not available from the retrieved source;
// the 4-tap/shift-11 interpolation algorithm itself matches the original.
var gaussianTable [gaussianTableSize]int32

func init() {
	const sigma = 0.5
	for i := 0; i < gaussianTableSize; i++ {
		x := float64(i) / float64(gaussianTableSize)
		v := math.Exp(-(x * x) / (2 * sigma * sigma))
		gaussianTable[i] = int32(v * 2048)
	}
}

// PitchInterpolator reproduces the DSP's 4-tap Gaussian pitch interpolator:
// a 12-entry ring buffer of recently-decoded BRR samples, advanced by a
// 16.16-ish fixed-point pitch counter. Each 0x4000 boundary crossing is
// reported by Step; the caller then pushes the next 4 decoded samples.
type PitchInterpolator struct {
	ring     [12]int16
	ringHead int
	counter  uint32 // 14-bit fractional position within the current sample
}

// Push appends a newly-decoded sample to the ring buffer.
func (p *PitchInterpolator) Push(sample int16) {
	p.ring[p.ringHead%12] = sample
	p.ringHead++
}

// Step advances the pitch counter by the given 14-bit pitch rate and
// reports whether a 0x4000 boundary was crossed, i.e. whether new samples
// must be pushed.
func (p *PitchInterpolator) Step(pitch uint16) bool {
	p.counter += uint32(pitch)
	if p.counter >= 0x4000 {
		p.counter -= 0x4000
		return true
	}
	return false
}

// Interpolate produces one output sample using the 4 most recent ring
// entries and the current sub-sample position.
func (p *PitchInterpolator) Interpolate() int16 {
	index := int((p.counter >> 4) & 0x3FF) // 10-bit fractional position; only its low 8 bits (index%256) pick table entries
	g0 := gaussianTable[255-index%256]
	g1 := gaussianTable[256+index%256]
	g2 := gaussianTable[511-index%256]
	g3 := gaussianTable[index%256]

	base := p.ringHead - 4
	s0 := int64(p.ring[mod12(base)])
	s1 := int64(p.ring[mod12(base+1)])
	s2 := int64(p.ring[mod12(base+2)])
	s3 := int64(p.ring[mod12(base+3)])

	sum := int64(g0)*s0 + int64(g1)*s1 + int64(g2)*s2 + int64(g3)*s3
	sum >>= 11

	if sum > 32767 {
		sum = 32767
	}
	if sum < -32768 {
		sum = -32768
	}
	return int16(sum)
}

func mod12(i int) int {
	i %= 12
	if i < 0 {
		i += 12
	}
	return i
}
