// Package addr names the memory-mapped hardware registers and regions of the
// DMG address space.
package addr

// memory regions
const (
	ROMBank0Start   uint16 = 0x0000
	ROMBankNStart   uint16 = 0x4000
	VRAMStart       uint16 = 0x8000
	ExtRAMStart     uint16 = 0xA000
	WRAMStart       uint16 = 0xC000
	EchoStart       uint16 = 0xE000
	EchoEnd         uint16 = 0xFDFF
	OAMStart        uint16 = 0xFE00
	OAMEnd          uint16 = 0xFE9F
	UnusableStart   uint16 = 0xFEA0
	IOStart         uint16 = 0xFF00
	HRAMStart       uint16 = 0xFF80
	BootROMSize            = 0x100
	ROMBankSize            = 0x4000
	RAMBankSize            = 0x2000
	OAMSize                = 0xA0
	CartHeaderEnd   uint16 = 0x0150
	CartEntryPoint  uint16 = 0x0100
	EchoMirrorDelta uint16 = 0x2000
)

// lcd registers
const (
	// LCD Control register.
	LCDC uint16 = 0xFF40
	// LCD Status register. Bits 0-2 are owned by the PPU.
	STAT uint16 = 0xFF41
	SCY  uint16 = 0xFF42
	SCX  uint16 = 0xFF43
	// LY is the current scanline. Any write resets it to 0.
	LY  uint16 = 0xFF44
	LYC uint16 = 0xFF45
	// DMA starts a 160 byte copy into OAM from value<<8.
	DMA  uint16 = 0xFF46
	BGP  uint16 = 0xFF47
	OBP0 uint16 = 0xFF48
	OBP1 uint16 = 0xFF49
	WY   uint16 = 0xFF4A
	WX   uint16 = 0xFF4B
	// BOOT unmaps the boot ROM overlay when 1 is written to it.
	BOOT uint16 = 0xFF50
)

// tile data and tile maps
const (
	// TileData0 is the start of unsigned tile data (tiles 0-255).
	TileData0 uint16 = 0x8000
	// TileData1 is the start of the signed tile data block (tiles -128 to -1).
	TileData1 uint16 = 0x8800
	// TileData2 is where signed tile 0 lives.
	TileData2 uint16 = 0x9000

	TileMap0 uint16 = 0x9800
	TileMap1 uint16 = 0x9C00
)

// interrupts
const (
	IF uint16 = 0xFF0F
	IE uint16 = 0xFFFF
)

// P1 selects and reads the joypad lines.
const P1 uint16 = 0xFF00

// serial
const (
	SB uint16 = 0xFF01
	// SC bit 7 starts a transfer, bit 0 selects the internal clock.
	SC uint16 = 0xFF02
)

// timers
const (
	// DIV increments every 256 cycles, writing to it resets it.
	DIV uint16 = 0xFF04
	// TIMA generates an interrupt when it overflows.
	TIMA uint16 = 0xFF05
	// TMA is reloaded into TIMA on overflow.
	TMA uint16 = 0xFF06
	// TAC enables the timer (bit 2) and selects its frequency (bits 0-1).
	TAC uint16 = 0xFF07
)

// Interrupt is one of the five interrupt sources, expressed as its bit in IE/IF.
type Interrupt uint8

const (
	// VBlankInterrupt is requested when the PPU enters V-Blank.
	VBlankInterrupt Interrupt = 1 << iota
	// LCDSTATInterrupt is requested on the STAT conditions enabled in STAT bits 3-6.
	LCDSTATInterrupt
	// TimerInterrupt is requested when TIMA overflows.
	TimerInterrupt
	// SerialInterrupt is requested when a serial transfer completes.
	SerialInterrupt
	// JoypadInterrupt is requested when a button goes from released to pressed.
	JoypadInterrupt
)

// Interrupts lists the sources in dispatch priority order.
var Interrupts = [...]Interrupt{
	VBlankInterrupt,
	LCDSTATInterrupt,
	TimerInterrupt,
	SerialInterrupt,
	JoypadInterrupt,
}

// Vector returns the address the CPU jumps to when servicing the interrupt.
func (i Interrupt) Vector() uint16 {
	switch i {
	case VBlankInterrupt:
		return 0x40
	case LCDSTATInterrupt:
		return 0x48
	case TimerInterrupt:
		return 0x50
	case SerialInterrupt:
		return 0x58
	case JoypadInterrupt:
		return 0x60
	}
	return 0
}

func (i Interrupt) String() string {
	switch i {
	case VBlankInterrupt:
		return "VBlank"
	case LCDSTATInterrupt:
		return "LCD"
	case TimerInterrupt:
		return "Timer"
	case SerialInterrupt:
		return "Serial"
	case JoypadInterrupt:
		return "Joypad"
	}
	return "Unknown"
}
