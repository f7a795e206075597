package spc700

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kurogane/gosnes/snes/memaddr"
)

type fakeBus struct {
	mem [0x10000]uint8
}

func (b *fakeBus) Read(addr memaddr.Addr16) uint8 {
	return b.mem[uint16(addr)]
}

func (b *fakeBus) Write(addr memaddr.Addr16, value uint8) {
	b.mem[uint16(addr)] = value
}

func newTestCPU() (*CPU, *fakeBus) {
	bus := &fakeBus{}
	bus.mem[0xFFFE] = 0x00
	bus.mem[0xFFFF] = 0x02
	c := New(bus)
	c.Reset()
	return c, bus
}

func TestResetLoadsVector(t *testing.T) {
	c, _ := newTestCPU()
	require.Equal(t, uint16(0x0200), c.PC)
	require.Equal(t, uint8(0xEF), c.SP)
}

func TestMOVAImmSetsZeroFlag(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0200] = 0xE8 // MOV A,#imm
	bus.mem[0x0201] = 0x00
	c.Step()
	require.True(t, c.P.Zero)
	require.Equal(t, uint8(0), c.A)
}

func TestMULYA(t *testing.T) {
	c, bus := newTestCPU()
	c.Y = 10
	c.A = 20
	bus.mem[0x0200] = 0xCF // MUL YA
	c.Step()
	require.Equal(t, uint8(200), c.A)
	require.Equal(t, uint8(0), c.Y)
}

func TestDIVNormalCase(t *testing.T) {
	c, bus := newTestCPU()
	c.Y = 0x05
	c.A = 0x00
	c.X = 0x10
	bus.mem[0x0200] = 0x9E // DIV YA,X
	c.Step()
	ya := uint16(0x0500)
	require.Equal(t, uint8(ya/0x10), c.A)
	require.Equal(t, uint8(ya%0x10), c.Y)
}

func TestDIVOverflowCase(t *testing.T) {
	c, bus := newTestCPU()
	// y >= x<<1 triggers the overflow-corrected formula.
	c.Y = 200
	c.A = 0x34
	c.X = 50
	bus.mem[0x0200] = 0x9E
	origYA := uint16(200)<<8 | 0x34
	x := uint16(50)
	c.Step()
	want := 255 - (origYA-(x<<9))/(256-x)
	require.Equal(t, uint8(want), c.A)
}

func TestBRKPushesPCAndPSW(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0xFFDE] = 0x00
	bus.mem[0xFFDF] = 0x03
	bus.mem[0x0200] = 0x0F // BRK
	c.Step()
	require.Equal(t, uint16(0x0300), c.PC)
	require.True(t, c.P.Break)
}

func TestStackIsPageOne(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0200] = 0x2D // PUSH A
	c.A = 0x42
	c.Step()
	require.Equal(t, uint8(0x42), bus.mem[0x01EF])
	require.Equal(t, uint8(0xEE), c.SP)
}
