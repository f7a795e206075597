package cpu65816

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kurogane/gosnes/snes/memaddr"
)

type fakeBus struct {
	mem [0x1000000]uint8
}

func (b *fakeBus) CycleRead(addr memaddr.Long) uint8 {
	return b.mem[addr.Uint24()&0xFFFFFF]
}

func (b *fakeBus) CycleWrite(addr memaddr.Long, value uint8) {
	b.mem[addr.Uint24()&0xFFFFFF] = value
}

func newTestCPU() (*CPU, *fakeBus) {
	bus := &fakeBus{}
	bus.mem[0xFFFC] = 0x00
	bus.mem[0xFFFD] = 0x80
	c := New(bus)
	c.Reset()
	return c, bus
}

func TestResetLoadsVectorAndEmulationMode(t *testing.T) {
	c, _ := newTestCPU()
	require.Equal(t, uint16(0x8000), c.PC)
	require.True(t, c.Emulation)
	require.True(t, c.P.MemoryWidth8)
	require.True(t, c.P.IndexWidth8)
}

func TestLDAImmediateSetsZeroAndNegative(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x8000] = 0xA9 // LDA #imm
	bus.mem[0x8001] = 0x00
	c.Step()
	require.True(t, c.P.Zero)
	require.False(t, c.P.Negative)
}

func TestADCBinaryCarryAndOverflow(t *testing.T) {
	c, bus := newTestCPU()
	c.A.Set8(0x7F)
	bus.mem[0x8000] = 0x69 // ADC #imm
	bus.mem[0x8001] = 0x01
	c.Step()
	require.Equal(t, uint8(0x80), c.A.Get8())
	require.True(t, c.P.Overflow, "0x7F+1 overflows into negative territory")
	require.False(t, c.P.Carry)
}

func TestADCDecimalModeBCD(t *testing.T) {
	c, bus := newTestCPU()
	c.P.Decimal = true
	c.A.Set8(0x58) // BCD 58
	bus.mem[0x8000] = 0x69
	bus.mem[0x8001] = 0x46 // BCD 46
	c.Step()
	require.Equal(t, uint8(0x04), c.A.Get8(), "58 + 46 = 104 in BCD, truncated to 2 digits = 04")
	require.True(t, c.P.Carry)
}

func TestXCESwapsCarryAndEmulation(t *testing.T) {
	c, bus := newTestCPU()
	c.P.Carry = false
	bus.mem[0x8000] = 0xFB // XCE
	c.Step()
	require.False(t, c.Emulation, "carry was clear, so XCE clears emulation (enters native mode)")
}

func TestMVNCopiesBlockAndUpdatesRegisters(t *testing.T) {
	c, bus := newTestCPU()
	c.A.Set16(2) // 3 bytes to move
	c.X.Set16(0x1000)
	c.Y.Set16(0x2000)
	bus.mem[0x001000] = 0xAA
	bus.mem[0x001001] = 0xBB
	bus.mem[0x001002] = 0xCC
	bus.mem[0x8000] = 0x54 // MVN
	bus.mem[0x8001] = 0x00 // dest bank
	bus.mem[0x8002] = 0x00 // src bank
	c.Step()
	require.Equal(t, uint8(0xAA), bus.mem[0x002000])
	require.Equal(t, uint8(0xBB), bus.mem[0x002001])
	require.Equal(t, uint8(0xCC), bus.mem[0x002002])
	require.Equal(t, uint16(0x1003), c.X.Get16())
	require.Equal(t, uint16(0x2003), c.Y.Get16())
	require.Equal(t, uint16(0xFFFF), c.A.Get16())
}

func TestBranchTakenAdjustsPC(t *testing.T) {
	c, bus := newTestCPU()
	c.P.Zero = true
	bus.mem[0x8000] = 0xF0 // BEQ
	bus.mem[0x8001] = 0x05
	c.Step()
	require.Equal(t, uint16(0x8007), c.PC)
}

func TestStackPushPullRoundTripInEmulationMode(t *testing.T) {
	c, _ := newTestCPU()
	c.A.Set8(0x42)
	opPHA(c)
	c.A.Set8(0x00)
	opPLA(c)
	require.Equal(t, uint8(0x42), c.A.Get8())
}
