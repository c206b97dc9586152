package memory

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
	"github.com/valerio/go-dmg/dmg/serial"
)

type memRegion uint8

const (
	regionROM0 memRegion = iota
	regionROMX
	regionVRAM
	regionExtRAM
	regionWRAM
	regionEcho
	regionOAM
	regionHigh
)

// SerialPort is a device attached to SB/SC.
type SerialPort interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
	Tick(cycles int)
}

// MMU routes the 16 bit address space to the backing regions and fires the
// side effects of hardware register writes.
type MMU struct {
	cart *Cartridge
	boot []byte

	booting bool

	vram [0x2000]byte
	wram [0x2000]byte
	oam  [addr.OAMSize]byte
	io   [0x80]byte
	hram [0x7F]byte
	ie   byte

	regionMap [256]memRegion

	timer  *Timer
	joypad *Joypad
	serial SerialPort

	log *slog.Logger
}

// New creates a memory unit with cart inserted. cart may be nil, in which
// case the cartridge space reads as 0xFF.
func New(cart *Cartridge) *MMU {
	m := &MMU{cart: cart, log: slog.Default()}
	m.timer = NewTimer(func() { m.RequestInterrupt(addr.TimerInterrupt) })
	m.joypad = NewJoypad(func() { m.RequestInterrupt(addr.JoypadInterrupt) })
	m.serial = serial.NewLogSink(func() { m.RequestInterrupt(addr.SerialInterrupt) })
	initRegionMap(m)
	return m
}

func initRegionMap(m *MMU) {
	for i := 0x00; i <= 0xFF; i++ {
		switch {
		case i <= 0x3F:
			m.regionMap[i] = regionROM0
		case i <= 0x7F:
			m.regionMap[i] = regionROMX
		case i <= 0x9F:
			m.regionMap[i] = regionVRAM
		case i <= 0xBF:
			m.regionMap[i] = regionExtRAM
		case i <= 0xDF:
			m.regionMap[i] = regionWRAM
		case i <= 0xFD:
			m.regionMap[i] = regionEcho
		case i == 0xFE:
			m.regionMap[i] = regionOAM
		default:
			m.regionMap[i] = regionHigh
		}
	}
}

// SetSerial replaces the device attached to the link port.
func (m *MMU) SetSerial(s SerialPort) {
	m.serial = s
}

// Serial returns the device attached to the link port.
func (m *MMU) Serial() SerialPort {
	return m.serial
}

// Timer returns the DIV/TIMA unit mapped at 0xFF04-0xFF07.
func (m *MMU) Timer() *Timer {
	return m.timer
}

// Joypad returns the P1 input unit.
func (m *MMU) Joypad() *Joypad {
	return m.joypad
}

// Cartridge returns the inserted cartridge, or nil.
func (m *MMU) Cartridge() *Cartridge {
	return m.cart
}

// LoadBootROM maps a 256 byte boot image over 0x0000-0x00FF until 1 is
// written to 0xFF50.
func (m *MMU) LoadBootROM(data []byte) error {
	if len(data) != addr.BootROMSize {
		return fmt.Errorf("boot ROM must be %d bytes, got %d", addr.BootROMSize, len(data))
	}
	m.boot = make([]byte, addr.BootROMSize)
	copy(m.boot, data)
	m.booting = true
	return nil
}

// BootActive reports whether the boot overlay is mapped.
func (m *MMU) BootActive() bool {
	return m.booting
}

// Tick advances the devices that count cycles.
func (m *MMU) Tick(cycles int) {
	m.timer.Tick(cycles)
	m.serial.Tick(cycles)
}

// RequestInterrupt sets the interrupt's bit in IF.
func (m *MMU) RequestInterrupt(interrupt addr.Interrupt) {
	m.io[addr.IF-addr.IOStart] |= byte(interrupt)
}

func (m *MMU) Read(address uint16) byte {
	switch m.regionMap[address>>8] {
	case regionROM0:
		if m.booting && address < addr.BootROMSize {
			return m.boot[address]
		}
		if m.cart == nil {
			return 0xFF
		}
		return m.cart.ReadFixed(address)
	case regionROMX:
		if m.cart == nil {
			return 0xFF
		}
		return m.cart.ReadSwitched(address - addr.ROMBankNStart)
	case regionVRAM:
		return m.vram[address-addr.VRAMStart]
	case regionExtRAM:
		if m.cart == nil {
			return 0
		}
		return m.cart.ReadRAM(address - addr.ExtRAMStart)
	case regionWRAM:
		return m.wram[address-addr.WRAMStart]
	case regionEcho:
		return m.wram[address-addr.EchoMirrorDelta-addr.WRAMStart]
	case regionOAM:
		if address <= addr.OAMEnd {
			return m.oam[address-addr.OAMStart]
		}
		return 0xFF
	}
	return m.readHigh(address)
}

func (m *MMU) readHigh(address uint16) byte {
	switch {
	case address == addr.IE:
		return m.ie
	case address >= addr.HRAMStart:
		return m.hram[address-addr.HRAMStart]
	case address == addr.P1:
		return m.joypad.Read()
	case address == addr.SB || address == addr.SC:
		return m.serial.Read(address)
	case address >= addr.DIV && address <= addr.TAC:
		return m.timer.Read(address)
	case address == addr.IF:
		return m.io[address-addr.IOStart] | 0xE0
	case address == addr.STAT:
		return m.io[address-addr.IOStart] | 0x80
	}
	return m.io[address-addr.IOStart]
}

func (m *MMU) Write(address uint16, value byte) {
	switch m.regionMap[address>>8] {
	case regionROM0, regionROMX:
		if m.cart != nil {
			m.cart.WriteControl(address, value)
		}
	case regionVRAM:
		m.vram[address-addr.VRAMStart] = value
	case regionExtRAM:
		if m.cart != nil {
			m.cart.WriteRAM(address-addr.ExtRAMStart, value)
		}
	case regionWRAM:
		m.wram[address-addr.WRAMStart] = value
	case regionEcho:
		m.wram[address-addr.EchoMirrorDelta-addr.WRAMStart] = value
	case regionOAM:
		if address <= addr.OAMEnd {
			m.oam[address-addr.OAMStart] = value
			return
		}
		m.log.Warn("Write to unusable memory", "address", fmt.Sprintf("0x%04X", address), "value", fmt.Sprintf("0x%02X", value))
	default:
		m.writeHigh(address, value)
	}
}

func (m *MMU) writeHigh(address uint16, value byte) {
	switch {
	case address == addr.IE:
		m.ie = value
	case address >= addr.HRAMStart:
		m.hram[address-addr.HRAMStart] = value
	case address == addr.P1:
		m.joypad.Write(value)
	case address == addr.SB || address == addr.SC:
		m.serial.Write(address, value)
	case address >= addr.DIV && address <= addr.TAC:
		m.timer.Write(address, value)
	case address == addr.IF:
		m.io[address-addr.IOStart] = value & 0x1F
	case address == addr.LY:
		m.io[address-addr.IOStart] = 0
	case address == addr.STAT:
		old := m.io[address-addr.IOStart]
		m.io[address-addr.IOStart] = value&0x78 | old&0x07
	case address == addr.DMA:
		m.io[address-addr.IOStart] = value
		m.dma(value)
	case address == addr.BOOT:
		if m.booting && bit.IsSet(0, value) {
			m.booting = false
		}
		m.io[address-addr.IOStart] = value
	default:
		m.io[address-addr.IOStart] = value
	}
}

// SetIO stores an I/O register without any write side effect. The PPU uses it
// to publish LY and the STAT mode bits.
func (m *MMU) SetIO(address uint16, value byte) {
	if address < addr.IOStart || address >= addr.HRAMStart {
		panic(fmt.Sprintf("SetIO outside I/O space: 0x%04X", address))
	}
	m.io[address-addr.IOStart] = value
}

// Read16 reads a little endian word: low byte at address, high at address+1.
func (m *MMU) Read16(address uint16) uint16 {
	return bit.Combine(m.Read(address+1), m.Read(address))
}

// Write16 writes a little endian word.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, bit.Low(value))
	m.Write(address+1, bit.High(value))
}

func (m *MMU) dma(value byte) {
	source := uint16(value) << 8
	for i := uint16(0); i < addr.OAMSize; i++ {
		m.oam[i] = m.Read(source + i)
	}
}

// Press and Release forward host input to the joypad.
func (m *MMU) Press(b Button) { m.joypad.Press(b) }
func (m *MMU) Release(b Button) { m.joypad.Release(b) }
