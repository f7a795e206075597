package audio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimerOutputIncrementsOnTargetAndClearsOnRead(t *testing.T) {
	tm := &Timer{DividerPeriod: 4, Target: 2}
	tm.Enabled = true
	tm.Tick(8) // 2 divider periods -> stage wraps once -> output 1
	require.EqualValues(t, 1, tm.ReadAndClear())
	require.EqualValues(t, 0, tm.ReadAndClear(), "read clears the counter")
}

func TestTimerIgnoresTicksWhileDisabled(t *testing.T) {
	tm := &Timer{DividerPeriod: 4, Target: 1}
	tm.Tick(100)
	require.EqualValues(t, 0, tm.ReadAndClear())
}

func TestMailboxRoundTrip(t *testing.T) {
	a := NewAPU()
	a.WritePort(0, 0x42)
	require.EqualValues(t, 0x42, a.SPCReadPort(0))
	a.SPCWritePort(1, 0x99)
	require.EqualValues(t, 0x99, a.ReadPort(1))
}

func TestSoloChannelIsolatesVoice(t *testing.T) {
	a := NewAPU()
	a.SoloChannel(3)
	status := a.GetChannelStatus()
	for i, audible := range status {
		require.Equal(t, i == 3, audible)
	}
	a.SoloChannel(3) // toggling the same channel again clears solo
	status = a.GetChannelStatus()
	for _, audible := range status {
		require.True(t, audible)
	}
}

func TestToggleChannelMutes(t *testing.T) {
	a := NewAPU()
	a.ToggleChannel(0)
	require.False(t, a.GetChannelStatus()[0])
	a.ToggleChannel(0)
	require.True(t, a.GetChannelStatus()[0])
}

// writeDSP is the test-side equivalent of the SPC700 programming a register:
// latch the index via 0x00F2, then write the value via 0x00F3.
func writeDSP(a *APU, reg, value uint8) {
	a.SetDSPAddr(reg)
	a.WriteDSP(value)
}

func readDSP(a *APU, reg uint8) uint8 {
	a.SetDSPAddr(reg)
	return a.ReadDSP()
}

func TestKeyOnDecodesFirstBlockAndProducesSamples(t *testing.T) {
	a := NewAPU()

	// Sample directory entry 0 at DIR page 0: start=0x0100, loop=0x0100.
	a.ARAM[0x0000] = 0x00
	a.ARAM[0x0001] = 0x01
	a.ARAM[0x0002] = 0x00
	a.ARAM[0x0003] = 0x01

	// A single looping-end BRR block: filter 0, shift 6, first nibble 1.
	a.ARAM[0x0100] = (6 << 4) | 0x3 // loop=1, end=1
	a.ARAM[0x0101] = 0x10

	writeDSP(a, regDIR, 0x00)
	writeDSP(a, 0x04, 0) // voice 0 SRCN = 0
	writeDSP(a, 0x02, 0xFF)
	writeDSP(a, 0x03, 0x3F) // pitch near max so the first Step crosses 0x4000 quickly
	writeDSP(a, 0x00, 127)  // volume

	writeDSP(a, regKON, 0x01) // key on voice 0

	require.True(t, a.Voices[0].KeyOn)
	require.EqualValues(t, 0, readDSP(a, regENDX), "ENDX clears on key-on")

	samples := a.GetSamples(64)
	allZero := true
	for _, s := range samples {
		if s != 0 {
			allZero = false
			break
		}
	}
	require.False(t, allZero, "keyed-on voice should produce nonzero samples")
	require.NotZero(t, readDSP(a, regENDX)&0x01, "looping end block sets ENDX")
}

func TestKeyOffStopsVoice(t *testing.T) {
	a := NewAPU()
	writeDSP(a, regDIR, 0x00)
	writeDSP(a, regKON, 0x01)
	require.True(t, a.Voices[0].KeyOn)
	writeDSP(a, regKOFF, 0x01)
	require.False(t, a.Voices[0].KeyOn)
}

func TestDSPAddrLatchRoundTrips(t *testing.T) {
	a := NewAPU()
	a.SetDSPAddr(0x42)
	require.EqualValues(t, 0x42, a.DSPAddr())
}
