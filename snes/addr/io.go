// Package addr collects the SNES MMIO register offsets, grouped by
// subsystem, in the style of a Game Boy core's address table.
package addr

// PPU registers (bank 0x00-0x3F / 0x80-0xBF, offset 0x2100-0x213F).
const (
	INIDISP uint16 = 0x2100
	OBSEL   uint16 = 0x2101
	OAMADDL uint16 = 0x2102
	OAMADDH uint16 = 0x2103
	OAMDATA uint16 = 0x2104
	BGMODE  uint16 = 0x2105
	MOSAIC  uint16 = 0x2106
	BG1SC   uint16 = 0x2107
	BG2SC   uint16 = 0x2108
	BG3SC   uint16 = 0x2109
	BG4SC   uint16 = 0x210A
	BG12NBA uint16 = 0x210B
	BG34NBA uint16 = 0x210C
	BG1HOFS uint16 = 0x210D
	BG1VOFS uint16 = 0x210E
	BG2HOFS uint16 = 0x210F
	BG2VOFS uint16 = 0x2110
	BG3HOFS uint16 = 0x2111
	BG3VOFS uint16 = 0x2112
	BG4HOFS uint16 = 0x2113
	BG4VOFS uint16 = 0x2114
	VMAIN   uint16 = 0x2115
	VMADDL  uint16 = 0x2116
	VMADDH  uint16 = 0x2117
	VMDATAL uint16 = 0x2118
	VMDATAH uint16 = 0x2119
	M7SEL   uint16 = 0x211A
	M7A     uint16 = 0x211B
	M7B     uint16 = 0x211C
	M7C     uint16 = 0x211D
	M7D     uint16 = 0x211E
	M7X     uint16 = 0x211F
	M7Y     uint16 = 0x2120
	CGADD   uint16 = 0x2121
	CGDATA  uint16 = 0x2122
	W12SEL  uint16 = 0x2123
	W34SEL  uint16 = 0x2124
	WOBJSEL uint16 = 0x2125
	WH0     uint16 = 0x2126
	WH1     uint16 = 0x2127
	WH2     uint16 = 0x2128
	WH3     uint16 = 0x2129
	WBGLOG  uint16 = 0x212A
	WOBJLOG uint16 = 0x212B
	TM      uint16 = 0x212C
	TS      uint16 = 0x212D
	TMW     uint16 = 0x212E
	TSW     uint16 = 0x212F
	CGWSEL  uint16 = 0x2130
	CGADSUB uint16 = 0x2131
	COLDATA uint16 = 0x2132
	SETINI  uint16 = 0x2133
	MPYL    uint16 = 0x2134
	MPYM    uint16 = 0x2135
	MPYH    uint16 = 0x2136
	SLHV    uint16 = 0x2137
	RDOAM   uint16 = 0x2138
	RDVRAML uint16 = 0x2139
	RDVRAMH uint16 = 0x213A
	RDCGRAM uint16 = 0x213B
	OPHCT   uint16 = 0x213C
	OPVCT   uint16 = 0x213D
	STAT77  uint16 = 0x213E
	STAT78  uint16 = 0x213F
)

// APU communication port mirror (offset 0x2140-0x217F, 4 bytes repeated).
const (
	APUIO0 uint16 = 0x2140
	APUIO1 uint16 = 0x2141
	APUIO2 uint16 = 0x2142
	APUIO3 uint16 = 0x2143
)

// Serial joypad auto-read (stubbed, not implemented).
const (
	JOYSER0 uint16 = 0x4016
	JOYSER1 uint16 = 0x4017
)

// Timer / interrupt registers.
const (
	NMITIMEN uint16 = 0x4200
	WRIO     uint16 = 0x4201
	WRMPYA   uint16 = 0x4202
	WRMPYB   uint16 = 0x4203
	WRDIVL   uint16 = 0x4204
	WRDIVH   uint16 = 0x4205
	WRDIVB   uint16 = 0x4206
	HTIMEL   uint16 = 0x4207
	HTIMEH   uint16 = 0x4208
	VTIMEL   uint16 = 0x4209
	VTIMEH   uint16 = 0x420A
	MDMAEN   uint16 = 0x420B
	HDMAEN   uint16 = 0x420C
	MEMSEL   uint16 = 0x420D
	RDNMI    uint16 = 0x4210
	TIMEUP   uint16 = 0x4211
	HVBJOY   uint16 = 0x4212
	RDIO     uint16 = 0x4213
	RDDIVL   uint16 = 0x4214
	RDDIVH   uint16 = 0x4215
	RDMPYL   uint16 = 0x4216
	RDMPYH   uint16 = 0x4217
)

// Joypad auto-read shadow registers (0x4218-0x421F), latched each VBlank by
// real hardware when auto-read is enabled; not driven by this core (see
// Non-goals: serial joypad auto-read), kept only as addressable no-ops.
const (
	JOY1L uint16 = 0x4218
	JOY1H uint16 = 0x4219
	JOY2L uint16 = 0x421A
	JOY2H uint16 = 0x421B
	JOY3L uint16 = 0x421C
	JOY3H uint16 = 0x421D
	JOY4L uint16 = 0x421E
	JOY4H uint16 = 0x421F
)

// DMA channel register base; add 0x10*channel to get a channel's DMAPn.
const (
	DMAPBase  uint16 = 0x4300
	BBADBase  uint16 = 0x4301
	A1TLBase  uint16 = 0x4302
	A1THBase  uint16 = 0x4303
	A1BBase   uint16 = 0x4304
	DASLBase  uint16 = 0x4305
	DASHBase  uint16 = 0x4306
	DASBBase  uint16 = 0x4307 // HDMA indirect bank, unused by this core
	A2AALBase uint16 = 0x4308 // HDMA table address, unused by this core
	A2AAHBase uint16 = 0x4309
	NTRLBase  uint16 = 0x430A
)

// DmaChannelStride is added per channel index to the *Base constants above.
const DmaChannelStride = 0x10

// WRAM mirror / linear addressing.
const (
	WRAMSize = 128 * 1024
)

// VRAM/CGRAM/OAM sizes.
const (
	VRAMSize  = 64 * 1024
	CGRAMSize = 512
	OAMSize   = 544
)
