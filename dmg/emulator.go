// Package dmg wires the CPU, memory, PPU and interrupt controller together
// and drives them in lockstep.
package dmg

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/cpu"
	"github.com/valerio/go-dmg/dmg/interrupt"
	"github.com/valerio/go-dmg/dmg/memory"
	"github.com/valerio/go-dmg/dmg/timing"
	"github.com/valerio/go-dmg/dmg/video"
)

// Config selects what the emulator loads and how it runs.
type Config struct {
	ROMPath     string
	BootROMPath string
	// Trace logs every executed instruction at debug level.
	Trace bool
}

// InputEvent is a button transition sent from a viewer goroutine.
type InputEvent struct {
	Button  memory.Button
	Pressed bool
}

const inputQueueSize = 64

// DMG is the whole machine. Step, RunUntilFrame and Run must be called from a
// single goroutine; only QueueInput is safe to call from others.
type DMG struct {
	mem *memory.MMU
	ic  *interrupt.Controller
	cpu *cpu.CPU
	ppu *video.PPU

	inputs chan InputEvent

	frames       uint64
	instructions uint64
}

// New loads the cartridge at cfg.ROMPath and, if given, the boot ROM.
func New(cfg Config) (*DMG, error) {
	cart, err := memory.LoadCartridge(cfg.ROMPath)
	if err != nil {
		return nil, err
	}

	d := NewWithCartridge(cart)
	d.cpu.SetTrace(cfg.Trace)

	if cfg.BootROMPath != "" {
		if err := d.loadBootROM(cfg.BootROMPath); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// NewWithCartridge builds a machine in the post boot state. cart may be nil.
func NewWithCartridge(cart *memory.Cartridge) *DMG {
	d := &DMG{
		mem:    memory.New(cart),
		inputs: make(chan InputEvent, inputQueueSize),
	}
	d.ic = interrupt.New(d.mem)
	initializeIO(d.mem)
	d.cpu = cpu.New(d.mem, d.ic)
	d.ppu = video.New(d.mem, d.ic)
	return d
}

func (d *DMG) loadBootROM(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading boot ROM: %w", err)
	}
	if err := d.mem.LoadBootROM(data); err != nil {
		return err
	}

	// the boot ROM sets up the hardware itself
	d.mem.Write(addr.LCDC, 0x00)
	d.mem.Write(addr.BGP, 0x00)
	d.cpu.ResetForBoot()
	slog.Info("Boot ROM mapped", "path", path)
	return nil
}

// initializeIO stores the register values the boot ROM leaves behind.
func initializeIO(mem *memory.MMU) {
	mem.Write(addr.P1, 0xCF)
	mem.Write(addr.TIMA, 0x00)
	mem.Write(addr.TMA, 0x00)
	mem.Write(addr.TAC, 0x00)
	mem.Write(addr.LCDC, 0x91)
	mem.Write(addr.SCY, 0x00)
	mem.Write(addr.SCX, 0x00)
	mem.Write(addr.LYC, 0x00)
	mem.Write(addr.BGP, 0xFC)
	mem.Write(addr.OBP0, 0xFF)
	mem.Write(addr.OBP1, 0xFF)
	mem.Write(addr.WY, 0x00)
	mem.Write(addr.WX, 0x00)
	mem.Write(addr.IE, 0x00)
	mem.Write(addr.IF, 0x01)
}

// Step runs one instruction, advances the timer and the PPU by its cycles
// and then services at most one interrupt. It returns the cycles spent,
// dispatch included.
func (d *DMG) Step() (int, error) {
	cycles, err := d.cpu.Step()
	if err != nil {
		return 0, err
	}
	d.tick(cycles)

	if dispatch := d.ic.CheckAndDispatch(d.cpu); dispatch > 0 {
		d.tick(dispatch)
		cycles += dispatch
	}
	d.instructions++
	return cycles, nil
}

func (d *DMG) tick(cycles int) {
	d.mem.Tick(cycles)
	d.ppu.Update(cycles)
}

// RunUntilFrame steps until the PPU enters V-Blank. With the LCD off it
// returns after one frame worth of cycles instead.
func (d *DMG) RunUntilFrame() error {
	elapsed := 0
	for !d.ppu.FrameReady() {
		cycles, err := d.Step()
		if err != nil {
			return err
		}
		elapsed += cycles
		if elapsed >= timing.CyclesPerFrame && !d.ppu.Enabled() {
			break
		}
	}
	d.ppu.ClearFrameReady()
	d.frames++
	return nil
}

// Run emulates until shared asks to quit, publishing every frame and pacing
// with limiter. Queued input is applied between frames. Run always sets the
// quit flag on return, so viewers stop when emulation fails.
func (d *DMG) Run(shared *video.SharedFrame, limiter timing.Limiter) error {
	defer shared.Quit()
	limiter.Reset()
	for !shared.ShouldQuit() {
		d.drainInput()
		if err := d.RunUntilFrame(); err != nil {
			return err
		}
		shared.Publish(d.ppu.FrameBuffer())
		limiter.WaitForNextFrame()
	}
	slog.Info("Emulation stopped", "frames", d.frames, "instructions", d.instructions)
	return nil
}

// QueueInput hands a button transition to the emulation goroutine. It never
// blocks; events beyond the queue size are dropped.
func (d *DMG) QueueInput(b memory.Button, pressed bool) {
	select {
	case d.inputs <- InputEvent{Button: b, Pressed: pressed}:
	default:
		slog.Debug("Input queue full, dropping event", "button", b.String())
	}
}

func (d *DMG) drainInput() {
	for {
		select {
		case ev := <-d.inputs:
			if ev.Pressed {
				d.Press(ev.Button)
			} else {
				d.Release(ev.Button)
			}
		default:
			return
		}
	}
}

func (d *DMG) Press(b memory.Button) {
	d.mem.Press(b)
}

func (d *DMG) Release(b memory.Button) {
	d.mem.Release(b)
}

// Frame returns the PPU framebuffer. It is only stable between frames.
func (d *DMG) Frame() *video.FrameBuffer {
	return d.ppu.FrameBuffer()
}

func (d *DMG) Frames() uint64 {
	return d.frames
}

func (d *DMG) Instructions() uint64 {
	return d.instructions
}

func (d *DMG) MMU() *memory.MMU {
	return d.mem
}

func (d *DMG) CPU() *cpu.CPU {
	return d.cpu
}

func (d *DMG) PPU() *video.PPU {
	return d.ppu
}

// SavePath returns the battery file used for romPath: the same name with a
// .sav extension.
func SavePath(romPath string) string {
	return strings.TrimSuffix(romPath, filepath.Ext(romPath)) + ".sav"
}

// LoadRAM restores battery backed RAM from path. A missing file is not an
// error.
func (d *DMG) LoadRAM(path string) error {
	cart := d.mem.Cartridge()
	if cart == nil || !cart.HasBattery() {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading save file: %w", err)
	}
	cart.LoadRAM(data)
	slog.Info("Loaded save file", "path", path, "bytes", len(data))
	return nil
}

// SaveRAM writes battery backed RAM to path. Cartridges without a battery
// write nothing.
func (d *DMG) SaveRAM(path string) error {
	cart := d.mem.Cartridge()
	if cart == nil || !cart.HasBattery() {
		return nil
	}
	if err := os.WriteFile(path, cart.RAM(), 0o644); err != nil {
		return fmt.Errorf("writing save file: %w", err)
	}
	slog.Info("Wrote save file", "path", path)
	return nil
}
