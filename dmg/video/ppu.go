// Package video implements the picture processing unit: the scanline timing
// state machine and the background, window and sprite renderer.
package video

import (
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
)

// Mode is the PPU state, numbered as it appears in STAT bits 0-1.
type Mode uint8

const (
	HBlank        Mode = 0
	VBlank        Mode = 1
	OAMScan       Mode = 2
	PixelTransfer Mode = 3
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAMScan:
		return "OAMScan"
	case PixelTransfer:
		return "PixelTransfer"
	}
	return "Unknown"
}

const (
	oamScanCycles       = 80
	pixelTransferCycles = 172
	hblankCycles        = 204
	// ScanlineCycles is the length of every line, visible or not.
	ScanlineCycles = oamScanCycles + pixelTransferCycles + hblankCycles
	// FrameCycles is the length of a whole frame, 154 lines.
	FrameCycles = ScanlineCycles * lastLine

	visibleLines = Height
	lastLine     = 154
)

// cycles returns how long the PPU stays in m. V-Blank is counted per line.
func (m Mode) cycles() int {
	switch m {
	case OAMScan:
		return oamScanCycles
	case PixelTransfer:
		return pixelTransferCycles
	case HBlank:
		return hblankCycles
	}
	return ScanlineCycles
}

// LCDC (LCD Control) register bits
//
//	Bit 7 - LCD Display Enable (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable (0=Off, 1=On)
//	Bit 0 - BG Display (0=Off, 1=On)
const (
	lcdDisplayEnable       = 7
	windowTileMapSelect    = 6
	windowDisplayEnable    = 5
	bgWindowTileDataSelect = 4
	bgTileMapDisplaySelect = 3
	spriteSize             = 2
	spriteDisplayEnable    = 1
	bgDisplay              = 0
)

// STAT bits
const (
	statCoincidence    = 2
	statHBlankIRQ      = 3
	statVBlankIRQ      = 4
	statOAMIRQ         = 5
	statCoincidenceIRQ = 6
)

const statModeMask byte = 0x03

// Bus is the memory the PPU renders from. SetIO stores LY and STAT without
// the CPU write side effects.
type Bus interface {
	Read(address uint16) byte
	SetIO(address uint16, value byte)
}

// InterruptRequester raises interrupts, usually an *interrupt.Controller.
type InterruptRequester interface {
	Request(kind addr.Interrupt)
}

// PPU is the cycle driven scanline renderer. LY lives in the I/O registers,
// so a CPU write that resets it also restarts the PPU at line 0.
type PPU struct {
	bus Bus
	irq InterruptRequester

	framebuffer *FrameBuffer
	oam         oamScanner
	bgIndex     [Width]uint8

	mode    Mode
	counter int
	enabled bool
	// line is the last LY the PPU stored; a different LY means the CPU reset it.
	line uint8

	windowLine int
	frameReady bool
	frames     uint64
}

// New returns a PPU at the start of line 0 in OAM scan.
func New(bus Bus, irq InterruptRequester) *PPU {
	p := &PPU{
		bus:         bus,
		irq:         irq,
		framebuffer: NewFrameBuffer(),
		oam:         oamScanner{bus: bus},
		enabled:     true,
	}
	p.setMode(OAMScan)
	p.setLine(0, false)
	return p
}

// Mode returns the current STAT mode.
func (p *PPU) Mode() Mode {
	return p.mode
}

// Line returns the current scanline (LY).
func (p *PPU) Line() uint8 {
	return p.bus.Read(addr.LY)
}

// FrameBuffer returns the buffer the PPU draws into.
func (p *PPU) FrameBuffer() *FrameBuffer {
	return p.framebuffer
}

// FrameReady reports whether a frame was completed since the last call to
// ClearFrameReady.
func (p *PPU) FrameReady() bool {
	return p.frameReady
}

func (p *PPU) ClearFrameReady() {
	p.frameReady = false
}

// Enabled reports whether the LCD is on.
func (p *PPU) Enabled() bool {
	return p.enabled
}

// Frames counts the V-Blank entries since creation.
func (p *PPU) Frames() uint64 {
	return p.frames
}

// Update advances the PPU by cycles. A large count may cross several mode
// boundaries; the remainder is carried into the next call.
func (p *PPU) Update(cycles int) {
	if !bit.IsSet(lcdDisplayEnable, p.bus.Read(addr.LCDC)) {
		p.disable()
		return
	}
	if !p.enabled {
		p.enabled = true
		p.restart()
	}
	if p.Line() != p.line {
		p.restart()
	}

	p.counter += cycles
	for p.counter >= p.mode.cycles() {
		p.counter -= p.mode.cycles()
		p.advance()
	}
}

// restart begins a new frame at line 0 in OAM scan.
func (p *PPU) restart() {
	p.counter = 0
	p.windowLine = 0
	p.enterMode(OAMScan)
	p.setLine(0, true)
}

// disable parks the PPU while the LCD is off: mode V-Blank, LY 0, no
// interrupts.
func (p *PPU) disable() {
	if !p.enabled {
		return
	}
	p.enabled = false
	p.counter = 0
	p.windowLine = 0
	p.setMode(VBlank)
	p.setLine(0, false)
}

func (p *PPU) advance() {
	switch p.mode {
	case OAMScan:
		p.enterMode(PixelTransfer)
	case PixelTransfer:
		p.renderScanline(int(p.Line()))
		p.enterMode(HBlank)
	case HBlank:
		next := p.Line() + 1
		if next == visibleLines {
			p.enterMode(VBlank)
			p.irq.Request(addr.VBlankInterrupt)
			p.windowLine = 0
			p.frameReady = true
			p.frames++
		} else {
			p.enterMode(OAMScan)
		}
		p.setLine(next, true)
	case VBlank:
		next := p.Line() + 1
		if next == lastLine {
			next = 0
			p.enterMode(OAMScan)
		}
		p.setLine(next, true)
	}
}

// enterMode switches mode and raises the STAT interrupt if the new mode's
// source is enabled.
func (p *PPU) enterMode(m Mode) {
	p.setMode(m)

	stat := p.bus.Read(addr.STAT)
	switch {
	case m == HBlank && bit.IsSet(statHBlankIRQ, stat),
		m == VBlank && bit.IsSet(statVBlankIRQ, stat),
		m == OAMScan && bit.IsSet(statOAMIRQ, stat):
		p.irq.Request(addr.LCDSTATInterrupt)
	}
}

func (p *PPU) setMode(m Mode) {
	p.mode = m
	stat := p.bus.Read(addr.STAT)
	p.bus.SetIO(addr.STAT, stat&^(statModeMask|0x80)|byte(m))
}

// setLine stores LY and updates the coincidence flag. With irq set, a match
// raises STAT when its source is enabled.
func (p *PPU) setLine(ly uint8, irq bool) {
	p.line = ly
	p.bus.SetIO(addr.LY, ly)

	stat := p.bus.Read(addr.STAT) &^ 0x80
	match := ly == p.bus.Read(addr.LYC)
	p.bus.SetIO(addr.STAT, bit.SetTo(statCoincidence, stat, match))
	if irq && match && bit.IsSet(statCoincidenceIRQ, stat) {
		p.irq.Request(addr.LCDSTATInterrupt)
	}
}
