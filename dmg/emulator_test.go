package dmg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/cpu"
	"github.com/valerio/go-dmg/dmg/memory"
	"github.com/valerio/go-dmg/dmg/serial"
	"github.com/valerio/go-dmg/dmg/timing"
	"github.com/valerio/go-dmg/dmg/video"
)

// buildROM returns a 32KB image of the given cartridge type with program at
// the entry point and handler at the timer interrupt vector.
func buildROM(cartType, ramCode byte, program []byte, handler []byte) []byte {
	rom := make([]byte, 2*addr.ROMBankSize)
	copy(rom[addr.TimerInterrupt.Vector():], handler)
	copy(rom[addr.CartEntryPoint:], program)
	copy(rom[0x134:], "DMGTEST")
	rom[0x147] = cartType
	rom[0x149] = ramCode
	return rom
}

func writeROM(t *testing.T, rom []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.gb")
	require.NoError(t, os.WriteFile(path, rom, 0o644))
	return path
}

func newTestDMG(t *testing.T, program ...byte) *DMG {
	t.Helper()
	cart, err := memory.NewCartridgeFromBytes(buildROM(0x00, 0x00, program, nil))
	require.NoError(t, err)
	return NewWithCartridge(cart)
}

func TestNewLoadsPostBootState(t *testing.T) {
	d, err := New(Config{ROMPath: writeROM(t, buildROM(0x00, 0x00, []byte{0x00}, nil))})
	require.NoError(t, err)

	assert.Equal(t, uint16(0x0100), d.CPU().PC())
	assert.Equal(t, byte(0x91), d.MMU().Read(addr.LCDC))
	assert.Equal(t, byte(0xFC), d.MMU().Read(addr.BGP))
	assert.Equal(t, byte(0xFF), d.MMU().Read(addr.OBP0))
	assert.False(t, d.MMU().BootActive())
	assert.Equal(t, "DMGTEST", d.MMU().Cartridge().Header.Title)
}

func TestNewMissingROM(t *testing.T) {
	_, err := New(Config{ROMPath: filepath.Join(t.TempDir(), "nope.gb")})

	var le *memory.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, memory.IOError, le.Kind)
}

func TestNewWithBootROM(t *testing.T) {
	boot := make([]byte, addr.BootROMSize)
	boot[0] = 0x31 // LD SP,d16
	bootPath := filepath.Join(t.TempDir(), "boot.bin")
	require.NoError(t, os.WriteFile(bootPath, boot, 0o644))

	d, err := New(Config{
		ROMPath:     writeROM(t, buildROM(0x00, 0x00, nil, nil)),
		BootROMPath: bootPath,
	})
	require.NoError(t, err)

	assert.Equal(t, uint16(0x0000), d.CPU().PC())
	assert.True(t, d.MMU().BootActive())
	assert.Equal(t, byte(0x31), d.MMU().Read(0x0000))

	d.MMU().Write(addr.BOOT, 0x01)
	assert.False(t, d.MMU().BootActive())
}

func TestNewWithBadBootROM(t *testing.T) {
	bootPath := filepath.Join(t.TempDir(), "boot.bin")
	require.NoError(t, os.WriteFile(bootPath, []byte{1, 2, 3}, 0o644))

	_, err := New(Config{
		ROMPath:     writeROM(t, buildROM(0x00, 0x00, nil, nil)),
		BootROMPath: bootPath,
	})
	assert.Error(t, err)

	_, err = New(Config{
		ROMPath:     writeROM(t, buildROM(0x00, 0x00, nil, nil)),
		BootROMPath: filepath.Join(t.TempDir(), "missing.bin"),
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStepDispatchesAfterInstruction(t *testing.T) {
	d := newTestDMG(t, 0xFB, 0x00, 0x00) // EI; NOP; NOP
	d.MMU().Write(addr.IE, byte(addr.TimerInterrupt))
	d.MMU().RequestInterrupt(addr.TimerInterrupt)

	cycles, err := d.Step()
	require.NoError(t, err)
	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(0x0101), d.CPU().PC())

	cycles, err = d.Step()
	require.NoError(t, err)
	assert.Equal(t, 4+20, cycles)
	assert.Equal(t, uint16(0x0050), d.CPU().PC())
	assert.Equal(t, uint16(0x0102), d.MMU().Read16(d.CPU().Registers().SP))
	assert.Equal(t, uint64(2), d.Instructions())
}

func TestRunUntilFrame(t *testing.T) {
	d := newTestDMG(t, 0x18, 0xFE) // JR -2

	require.NoError(t, d.RunUntilFrame())
	assert.Equal(t, uint8(144), d.PPU().Line())
	assert.Equal(t, video.VBlank, d.PPU().Mode())
	assert.Equal(t, uint64(1), d.Frames())

	require.NoError(t, d.RunUntilFrame())
	assert.Equal(t, uint8(144), d.PPU().Line())
	assert.Equal(t, uint64(2), d.Frames())
	assert.Equal(t, uint64(2), d.PPU().Frames())
}

func TestRunUntilFrameWithLCDOff(t *testing.T) {
	d := newTestDMG(t,
		0x3E, 0x00, // LD A,0
		0xE0, 0x40, // LDH (LCDC),A
		0x18, 0xFE, // JR -2
	)

	require.NoError(t, d.RunUntilFrame())
	assert.False(t, d.PPU().Enabled())
	assert.Equal(t, uint8(0), d.PPU().Line())
	assert.Equal(t, uint64(1), d.Frames())
}

func TestRunUntilFrameStopsOnUnknownOpcode(t *testing.T) {
	d := newTestDMG(t, 0x00, 0xD3)

	err := d.RunUntilFrame()

	var uerr *cpu.UnimplementedOpcodeError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, uint8(0xD3), uerr.Opcode)
	assert.Equal(t, uint16(0x0101), uerr.PC)
}

func TestTimerInterruptsReachHandler(t *testing.T) {
	program := []byte{
		0x3E, 0x05, // LD A,0x05  timer on, 16 cycles per tick
		0xE0, 0x07, // LDH (TAC),A
		0x3E, 0x04, // LD A,0x04
		0xE0, 0xFF, // LDH (IE),A
		0xFB,       // EI
		0x76,       // HALT
		0x18, 0xFD, // JR -3
	}
	handler := []byte{
		0x04, // INC B
		0xD9, // RETI
	}
	cart, err := memory.NewCartridgeFromBytes(buildROM(0x00, 0x00, program, handler))
	require.NoError(t, err)
	d := NewWithCartridge(cart)

	require.NoError(t, d.RunUntilFrame())

	// TIMA overflows every 256*16 cycles, a frame holds at least 16 of them
	assert.GreaterOrEqual(t, d.CPU().Registers().BC.Hi, uint8(15))
}

func TestSerialOutput(t *testing.T) {
	d := newTestDMG(t,
		0x3E, 'H', // LD A,'H'
		0xE0, 0x01, // LDH (SB),A
		0x3E, 0x81, // LD A,0x81
		0xE0, 0x02, // LDH (SC),A
		0x18, 0xFE, // JR -2
	)
	for i := 0; i < 5; i++ {
		_, err := d.Step()
		require.NoError(t, err)
	}

	sink, ok := d.MMU().Serial().(*serial.LogSink)
	require.True(t, ok)
	assert.Equal(t, "H", sink.Transcript())
	assert.NotZero(t, d.MMU().Read(addr.IF)&byte(addr.SerialInterrupt))
}

func TestQueuedInput(t *testing.T) {
	d := newTestDMG(t)
	d.MMU().Write(addr.P1, 0x10) // select the action buttons

	d.QueueInput(memory.ButtonA, true)
	assert.Equal(t, byte(0x0F), d.MMU().Read(addr.P1)&0x0F, "not applied before draining")

	d.drainInput()
	assert.Equal(t, byte(0x0E), d.MMU().Read(addr.P1)&0x0F)
	assert.NotZero(t, d.MMU().Read(addr.IF)&byte(addr.JoypadInterrupt))

	d.QueueInput(memory.ButtonA, false)
	d.drainInput()
	assert.Equal(t, byte(0x0F), d.MMU().Read(addr.P1)&0x0F)
}

func TestQueueInputNeverBlocks(t *testing.T) {
	d := newTestDMG(t)
	for i := 0; i < inputQueueSize*2; i++ {
		d.QueueInput(memory.ButtonStart, i%2 == 0)
	}
	assert.Len(t, d.inputs, inputQueueSize)
}

func TestRunStopsOnQuit(t *testing.T) {
	d := newTestDMG(t, 0x18, 0xFE)
	shared := video.NewSharedFrame()

	done := make(chan error, 1)
	go func() { done <- d.Run(shared, timing.New(false)) }()

	var fb video.FrameBuffer
	require.Eventually(t, func() bool { return shared.Snapshot(&fb) > 2 }, 5*time.Second, time.Millisecond)
	shared.Quit()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestRunErrorStopsViewers(t *testing.T) {
	d := newTestDMG(t, 0x00, 0xD3)
	shared := video.NewSharedFrame()

	err := d.Run(shared, timing.New(false))

	var opErr *cpu.UnimplementedOpcodeError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, uint8(0xD3), opErr.Opcode)
	assert.True(t, shared.ShouldQuit())
}

func TestBatteryRAM(t *testing.T) {
	rom := buildROM(0x03, 0x02, []byte{0x18, 0xFE}, nil) // MBC1+RAM+BATTERY, one 8KB bank
	savePath := filepath.Join(t.TempDir(), "game.sav")

	d, err := New(Config{ROMPath: writeROM(t, rom)})
	require.NoError(t, err)
	require.NoError(t, d.LoadRAM(savePath), "a missing save is not an error")

	d.MMU().Write(0x0000, 0x0A)
	d.MMU().Write(0xA123, 0x42)
	require.NoError(t, d.SaveRAM(savePath))

	info, err := os.Stat(savePath)
	require.NoError(t, err)
	assert.Equal(t, int64(addr.RAMBankSize), info.Size())

	restored, err := New(Config{ROMPath: writeROM(t, rom)})
	require.NoError(t, err)
	require.NoError(t, restored.LoadRAM(savePath))
	restored.MMU().Write(0x0000, 0x0A)
	assert.Equal(t, byte(0x42), restored.MMU().Read(0xA123))
}

func TestSaveRAMWithoutBattery(t *testing.T) {
	d := newTestDMG(t)
	savePath := filepath.Join(t.TempDir(), "game.sav")

	require.NoError(t, d.SaveRAM(savePath))
	assert.NoFileExists(t, savePath)
}

func TestSavePath(t *testing.T) {
	assert.Equal(t, "roms/tetris.sav", SavePath("roms/tetris.gb"))
	assert.Equal(t, "game.sav", SavePath("game"))
}
