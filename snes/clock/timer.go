// Package clock implements the SNES master clock and PPU timer: the single
// monotonically-advancing cycle counter that every other component derives
// its timing from, plus the (F,V,H) scanline position, VBlank edge and
// HV-timer comparator edge it produces.
package clock

// HVTimerMode selects which of the H/V comparators gates the HV-timer
// interrupt signal.
type HVTimerMode int

const (
	// TimerOff disables the HV-timer comparator entirely.
	TimerOff HVTimerMode = iota
	// TimerTriggerH raises the signal once H-dot reaches the H target.
	TimerTriggerH
	// TimerTriggerV raises the signal once V reaches the V target.
	TimerTriggerV
	// TimerTriggerHV raises the signal only when both targets are met.
	TimerTriggerHV
)

// Line lengths, in master cycles. The scanline at V=240 is 4 cycles short on
// odd frames only - the single observable short-scanline artifact.
const (
	normalLineLength = 1364
	shortLineLength  = 1360
	totalScanlines   = 262
	vblankStart      = 225
)

// Timer maintains the master clock and (F,V,H) position and produces the two
// edge-detected signals (VBlank, HV-timer) the CPU observes through MMIO.
type Timer struct {
	MasterClock uint64
	V           int
	H           int
	F           uint64

	dramRefreshPosition int

	VBlankDetector  EdgeDetector
	HVTimerDetector EdgeDetector

	// TimerFlag backs TIMEUP (0x4211) bit 7; sticky until read.
	TimerFlag bool
	// TimerIRQPending is the one-shot IRQ-consumable latch, cleared by
	// ConsumeIRQ.
	TimerIRQPending bool

	// nmiFlag backs RDNMI (0x4210) bit 7; sticky until read, subject to
	// the 2-dot hold at the V=225 rising edge.
	nmiFlag bool
	// NMIPending is the one-shot NMI-consumable latch, cleared by
	// ConsumeNMI.
	NMIPending bool

	Mode         HVTimerMode
	HTimerTarget uint16
	VTimerTarget uint16
}

// NewTimer returns a Timer in its cold power-on state: H-target and V-target
// default to 0x1FF (past the end of any real scanline/line count, so the
// comparator never spuriously fires until programmed).
func NewTimer() *Timer {
	t := &Timer{
		HTimerTarget: 0x1FF,
		VTimerTarget: 0x1FF,
	}
	t.dramRefreshPosition = 538
	return t
}

// Advance moves the clock forward by n master cycles, in chunks no larger
// than 64 cycles so that no edge (VBlank rise, HV-timer match, DRAM-refresh
// window, scanline rollover) can be skipped over. Each DRAM-refresh window
// crossed adds a further 40 cycles to both H and MasterClock, so a full
// 1364-cycle scanline is reached after 1324 cycles of Advance.
func (t *Timer) Advance(n uint64) {
	for n > 0 {
		chunk := n
		if chunk > 64 {
			chunk = 64
		}
		t.tick(chunk)
		n -= chunk
	}
}

func (t *Timer) tick(cycles uint64) {
	oldH := t.H
	t.MasterClock += cycles
	t.H += int(cycles)

	// DRAM refresh: once per scanline, when H crosses the computed
	// threshold, both H and the master clock jump forward by 40 cycles
	// without intervening bus activity. This must happen inside the same
	// advance that crosses the threshold.
	if t.dramRefreshPosition > oldH && t.dramRefreshPosition <= t.H {
		t.H += 40
		t.MasterClock += 40
	}

	// Check the HV-timer comparator early, in case the H target falls
	// near the end of this scanline before rollover.
	t.updateTimerDetector()

	lineLength := normalLineLength
	if t.V == 240 && t.F%2 == 1 {
		lineLength = shortLineLength
	}

	if t.H >= lineLength {
		t.HVTimerDetector.ResetSignal()
		t.H -= lineLength
		t.V++
		t.dramRefreshPosition = 538 - int((t.MasterClock-uint64(t.H))&7)

		if t.V >= totalScanlines {
			t.V -= totalScanlines
			t.F++
		}

		t.VBlankDetector.UpdateSignal(t.V >= vblankStart)
		if t.VBlankDetector.ConsumeRise() {
			t.nmiFlag = true
			t.NMIPending = true
		}
		if t.VBlankDetector.ConsumeFall() {
			t.nmiFlag = false
		}

		t.updateTimerDetector()
	}
}

func (t *Timer) updateTimerDetector() {
	if t.Mode == TimerOff {
		return
	}
	hHit := t.HDot() >= int(t.HTimerTarget)
	vHit := t.V >= int(t.VTimerTarget)

	var signal bool
	switch t.Mode {
	case TimerTriggerH:
		signal = hHit
	case TimerTriggerV:
		signal = vHit
	case TimerTriggerHV:
		signal = hHit && vHit
	}

	t.HVTimerDetector.UpdateSignal(signal)
	if t.HVTimerDetector.ConsumeRise() {
		t.TimerFlag = true
		t.TimerIRQPending = true
	}
}

// HDot converts the raw H master-cycle counter into the "dot" unit guest
// software compares against H-timer targets: divide by 4, except two
// specific dots (323 and 327) cost 6 master cycles instead of 4 on
// non-short scanlines.
func (t *Timer) HDot() int {
	counter := t.H
	shortScanline := t.V == 240 && t.F%2 == 1
	if !shortScanline {
		if counter > 1292 {
			counter -= 2
		}
		if t.H > 1310 {
			counter -= 2
		}
	}
	return counter / 4
}

// ReadRDNMI returns the value of the RDNMI register (0x4210) and, unless the
// read occurs within the first two dots after V=225's rising edge, clears
// the sticky VBlank flag (P4).
func (t *Timer) ReadRDNMI() uint8 {
	var v uint8
	if t.nmiFlag {
		v |= 0x80
	}
	inHoldWindow := t.V == vblankStart && t.HDot() < 2
	if !inHoldWindow {
		t.nmiFlag = false
	}
	return v
}

// ReadTIMEUP returns the value of TIMEUP (0x4211) and clears the sticky
// timer flag.
func (t *Timer) ReadTIMEUP() uint8 {
	var v uint8
	if t.TimerFlag {
		v |= 0x80
	}
	t.TimerFlag = false
	return v
}

// ReadHVBJOY returns the value of HVBJOY (0x4212): bit 7 is the live
// (non-latched) VBlank signal, bit 6 is the live HBlank signal.
func (t *Timer) ReadHVBJOY() uint8 {
	var v uint8
	if t.V >= vblankStart {
		v |= 0x80
	}
	if t.HDot() >= 274 {
		v |= 0x40
	}
	return v
}

// ConsumeNMI returns and clears the one-shot NMI-consumable latch.
func (t *Timer) ConsumeNMI() bool {
	v := t.NMIPending
	t.NMIPending = false
	return v
}

// ConsumeIRQ returns and clears the one-shot HV-timer IRQ-consumable latch.
func (t *Timer) ConsumeIRQ() bool {
	v := t.TimerIRQPending
	t.TimerIRQPending = false
	return v
}
