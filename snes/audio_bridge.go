package snes

// audioBufferPool is the core's side of the audio producer/consumer
// protocol (spec.md §5, design note §9): a lock-free-from-the-core's-view
// recycling pool of at most 8 int16 PCM buffers. The core (producer) fills
// buffers and hands them to SwapAudioBuffer; the host audio thread
// (consumer) drains them and returns ownership of the buffer it no longer
// needs for recycling.
type audioBufferPool struct {
	filled  [][]int16
	spares  [][]int16
}

const maxRecycledBuffers = 8

func (p *audioBufferPool) init() {
	p.spares = make([][]int16, 0, maxRecycledBuffers)
}

// push hands a freshly-filled buffer to the pool, to be claimed by the next
// SwapAudioBuffer call.
func (p *audioBufferPool) push(buf []int16) {
	p.filled = append(p.filled, buf)
}

// takeSpare returns a recycled buffer of the given length if one is
// available, else a freshly-allocated one - the pool never grows past
// maxRecycledBuffers spares.
func (p *audioBufferPool) takeSpare(length int) []int16 {
	if len(p.spares) > 0 {
		buf := p.spares[len(p.spares)-1]
		p.spares = p.spares[:len(p.spares)-1]
		if cap(buf) >= length {
			return buf[:length]
		}
	}
	return make([]int16, length)
}

func (p *audioBufferPool) recycle(buf []int16) {
	if len(p.spares) >= maxRecycledBuffers {
		return
	}
	p.spares = append(p.spares, buf)
}

// SwapAudioBuffer implements the core's half of the producer/consumer audio
// protocol: if a filled buffer is queued, it is returned and ownership of
// `out` is taken back for recycling (spec.md §5). If no buffer is queued
// yet, out is returned unchanged.
func (e *Emulator) SwapAudioBuffer(out []int16) []int16 {
	if len(e.audioPool.filled) == 0 {
		return out
	}
	next := e.audioPool.filled[0]
	e.audioPool.filled = e.audioPool.filled[1:]
	if out != nil {
		e.audioPool.recycle(out)
	}
	return next
}

// produceAudioFrame mixes one frame's worth of samples (the target buffer
// size of 1024 per spec.md §5) and queues it for SwapAudioBuffer, called
// once per completed video frame from step()'s frame-boundary detection.
func (e *Emulator) produceAudioFrame() {
	const targetBufferSize = 1024
	buf := e.audioPool.takeSpare(targetBufferSize)
	samples := e.Bus.APU.GetSamples(targetBufferSize)
	copy(buf, samples)
	e.audioPool.push(buf)
}
