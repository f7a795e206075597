package clock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// dramRefreshCycles is the jump Timer.tick adds to both H and the master
// clock once per scanline, on top of the cycles passed to Advance. A line of
// L master cycles therefore takes L-dramRefreshCycles cycles of Advance.
const dramRefreshCycles = 40

func TestFrameLengthEvenFrame(t *testing.T) {
	tm := NewTimer()
	require.EqualValues(t, 0, tm.F)
	tm.Advance(262 * (normalLineLength - dramRefreshCycles)) // no short scanline on an even frame
	require.EqualValues(t, 1, tm.F, "frame counter should have rolled over once")
	require.Equal(t, 0, tm.V)
	require.Equal(t, 0, tm.H)
}

func TestFrameLengthOddFrameIsFourCyclesShorter(t *testing.T) {
	tm := NewTimer()
	tm.Advance(262 * (normalLineLength - dramRefreshCycles)) // land on F=1 (odd)
	require.EqualValues(t, 1, tm.F)
	tm.Advance(262*(normalLineLength-dramRefreshCycles) - 4)
	require.EqualValues(t, 2, tm.F, "odd frame must be 4 cycles shorter (P2)")
}

func TestShortScanlineOnlyAtV240Odd(t *testing.T) {
	tm := NewTimer()
	tm.Advance(262 * (normalLineLength - dramRefreshCycles)) // now on odd frame F=1, V=0, H=0
	require.EqualValues(t, 1, tm.F)

	// advance to the start of scanline 240
	tm.Advance(uint64(240) * (normalLineLength - dramRefreshCycles))
	require.Equal(t, 240, tm.V)

	tm.Advance(uint64(shortLineLength - dramRefreshCycles))
	require.Equal(t, 241, tm.V, "the V=240 scanline on an odd frame is 1360 cycles (E6)")
}

func TestHTimerTriggersAndRetriggersNextLine(t *testing.T) {
	tm := NewTimer()
	tm.Mode = TimerTriggerH
	tm.HTimerTarget = 64

	// dot 64 corresponds to H = 64*4 = 256 master cycles (well before any
	// of the dot-323/327 adjustments or the DRAM refresh window at ~538).
	tm.Advance(256)
	require.True(t, tm.TimerFlag, "H-timer should have fired by dot 64")
	require.True(t, tm.ConsumeIRQ())
	require.False(t, tm.ConsumeIRQ(), "IRQ latch is one-shot")

	v := tm.ReadTIMEUP()
	require.Equal(t, uint8(0x80), v)
	require.False(t, tm.TimerFlag, "reading TIMEUP clears the sticky flag")

	// advance past end of scanline and re-reach dot 64 on the next line
	tm.Advance(normalLineLength)
	require.True(t, tm.TimerFlag, "H-timer must retrigger every scanline")
}

func TestVTimerTriggersAtTargetLine(t *testing.T) {
	tm := NewTimer()
	tm.Mode = TimerTriggerV
	tm.VTimerTarget = 2

	tm.Advance(uint64(2) * normalLineLength)
	require.True(t, tm.TimerFlag)
}

func TestVBlankRiseLatchesNMI(t *testing.T) {
	tm := NewTimer()
	require.False(t, tm.ConsumeNMI())

	tm.Advance(uint64(225) * normalLineLength)
	require.True(t, tm.V >= 225)
	require.True(t, tm.ConsumeNMI(), "VBlank rise at V=225 must latch NMI")
	require.False(t, tm.ConsumeNMI(), "NMI latch is one-shot")
}

func TestRDNMIHoldWindow(t *testing.T) {
	tm := NewTimer()
	tm.Advance(uint64(225) * (normalLineLength - dramRefreshCycles))
	require.True(t, tm.ConsumeNMI())

	// immediately at the start of V=225, within the 2-dot hold: reading
	// RDNMI must not clear the sticky flag (P4).
	v := tm.ReadRDNMI()
	require.Equal(t, uint8(0x80), v)
	v2 := tm.ReadRDNMI()
	require.Equal(t, uint8(0x80), v2, "reading within the hold window must not clear the flag")

	// advance a few dots past the hold window; now a read clears it.
	tm.Advance(4 * 4)
	v3 := tm.ReadRDNMI()
	require.Equal(t, uint8(0x80), v3)
	require.False(t, tm.ReadRDNMI()&0x80 != 0, "outside the hold window, reading clears the flag")
}

func TestDotAdjustmentAtHighHCounters(t *testing.T) {
	tm := NewTimer()
	// H counter 1293 (just past the first adjustment point) on a normal
	// (non-short) scanline should read back 2 cycles lower than a naive /4.
	tm.H = 1293
	require.Equal(t, (1293-2)/4, tm.HDot())

	tm.H = 1311
	require.Equal(t, (1311-4)/4, tm.HDot())
}
