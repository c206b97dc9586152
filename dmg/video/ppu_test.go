package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/memory"
)

type irqRecorder struct {
	counts map[addr.Interrupt]int
}

func (r *irqRecorder) Request(kind addr.Interrupt) {
	r.counts[kind]++
}

func newTestPPU(lcdc byte) (*PPU, *memory.MMU, *irqRecorder) {
	mmu := memory.New(nil)
	mmu.Write(addr.LCDC, lcdc)
	mmu.Write(addr.BGP, 0xE4)
	mmu.Write(addr.OBP0, 0xE4)
	irq := &irqRecorder{counts: map[addr.Interrupt]int{}}
	return New(mmu, irq), mmu, irq
}

// lineDone is the offset inside a line at which its pixels are drawn.
const lineDone = oamScanCycles + pixelTransferCycles

func TestFullFrameTiming(t *testing.T) {
	p, mmu, irq := newTestPPU(0x91)
	require.Equal(t, OAMScan, p.Mode())
	require.Equal(t, uint8(0), p.Line())

	vblankEntries := 0
	prev := p.Mode()
	for c := 0; c < FrameCycles; c += 4 {
		p.Update(4)
		if p.Mode() == VBlank && prev != VBlank {
			vblankEntries++
		}
		prev = p.Mode()
	}

	assert.Equal(t, 70224, FrameCycles)
	assert.Equal(t, 1, vblankEntries)
	assert.Equal(t, 1, irq.counts[addr.VBlankInterrupt])
	assert.Equal(t, uint8(0), p.Line())
	assert.Equal(t, OAMScan, p.Mode())
	assert.Equal(t, byte(OAMScan), mmu.Read(addr.STAT)&0x03)
	assert.True(t, p.FrameReady())
	assert.Equal(t, uint64(1), p.Frames())

	p.ClearFrameReady()
	assert.False(t, p.FrameReady())
}

func TestFrameInOneUpdate(t *testing.T) {
	p, _, irq := newTestPPU(0x91)

	p.Update(FrameCycles)

	assert.Equal(t, uint8(0), p.Line())
	assert.Equal(t, OAMScan, p.Mode())
	assert.Equal(t, 1, irq.counts[addr.VBlankInterrupt])
}

func TestModeSequence(t *testing.T) {
	p, mmu, _ := newTestPPU(0x91)

	steps := []struct {
		cycles int
		mode   Mode
		line   uint8
	}{
		{cycles: 79, mode: OAMScan, line: 0},
		{cycles: 1, mode: PixelTransfer, line: 0},
		{cycles: 172, mode: HBlank, line: 0},
		{cycles: 204, mode: OAMScan, line: 1},
		{cycles: 456 * 143, mode: VBlank, line: 144},
		{cycles: 456, mode: VBlank, line: 145},
		{cycles: 456 * 8, mode: VBlank, line: 153},
		{cycles: 456, mode: OAMScan, line: 0},
	}
	for i, s := range steps {
		p.Update(s.cycles)
		assert.Equal(t, s.mode, p.Mode(), "step %d", i)
		assert.Equal(t, s.line, p.Line(), "step %d", i)
		assert.Equal(t, byte(s.mode), mmu.Read(addr.STAT)&0x03, "step %d", i)
	}
}

func TestSTATInterrupts(t *testing.T) {
	testCases := []struct {
		desc   string
		stat   byte
		cycles int
		want   int
	}{
		{desc: "hblank source", stat: 0x08, cycles: lineDone, want: 1},
		{desc: "oam source", stat: 0x20, cycles: ScanlineCycles, want: 1},
		{desc: "vblank source", stat: 0x10, cycles: ScanlineCycles * 144, want: 1},
		{desc: "no source enabled", stat: 0x00, cycles: FrameCycles, want: 0},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			p, mmu, irq := newTestPPU(0x91)
			mmu.Write(addr.STAT, tC.stat)

			p.Update(tC.cycles)
			assert.Equal(t, tC.want, irq.counts[addr.LCDSTATInterrupt])
		})
	}
}

func TestLYCoincidence(t *testing.T) {
	p, mmu, irq := newTestPPU(0x91)
	mmu.Write(addr.LYC, 2)
	mmu.Write(addr.STAT, 0x40)

	p.Update(ScanlineCycles)
	assert.Equal(t, byte(0), mmu.Read(addr.STAT)&0x04)
	assert.Equal(t, 0, irq.counts[addr.LCDSTATInterrupt])

	p.Update(ScanlineCycles)
	assert.Equal(t, uint8(2), p.Line())
	assert.Equal(t, byte(0x04), mmu.Read(addr.STAT)&0x04)
	assert.Equal(t, 1, irq.counts[addr.LCDSTATInterrupt])

	p.Update(ScanlineCycles)
	assert.Equal(t, byte(0), mmu.Read(addr.STAT)&0x04)
	assert.Equal(t, 1, irq.counts[addr.LCDSTATInterrupt])
}

func TestSTATWritesKeepPPUBits(t *testing.T) {
	p, mmu, _ := newTestPPU(0x91)
	p.Update(lineDone)

	mmu.Write(addr.STAT, 0xFF)
	assert.Equal(t, byte(0xF8|byte(HBlank)), mmu.Read(addr.STAT)&^0x04)
}

func TestLCDOff(t *testing.T) {
	p, mmu, irq := newTestPPU(0x91)
	p.Update(ScanlineCycles*3 + 100)
	require.Equal(t, uint8(3), p.Line())

	mmu.Write(addr.LCDC, 0x11)
	p.Update(4)
	assert.Equal(t, uint8(0), p.Line())
	assert.Equal(t, VBlank, p.Mode())
	assert.Equal(t, byte(VBlank), mmu.Read(addr.STAT)&0x03)

	p.Update(FrameCycles * 2)
	assert.Equal(t, uint8(0), p.Line())
	assert.Equal(t, 0, irq.counts[addr.VBlankInterrupt])

	mmu.Write(addr.LCDC, 0x91)
	p.Update(4)
	assert.Equal(t, OAMScan, p.Mode())
	assert.Equal(t, uint8(0), p.Line())
	p.Update(ScanlineCycles)
	assert.Equal(t, uint8(1), p.Line())
	assert.Equal(t, OAMScan, p.Mode())
}

func TestWriteToLYDuringVBlankRestartsFrame(t *testing.T) {
	p, mmu, irq := newTestPPU(0x91)
	p.Update(ScanlineCycles * 150)
	require.Equal(t, VBlank, p.Mode())
	require.Equal(t, uint8(150), p.Line())
	require.Equal(t, uint64(1), p.Frames())

	mmu.Write(addr.LY, 0x99)
	p.Update(4)
	assert.Equal(t, OAMScan, p.Mode())
	assert.Equal(t, uint8(0), p.Line())
	assert.Equal(t, byte(OAMScan), mmu.Read(addr.STAT)&statModeMask)

	// the next V-Blank comes after the 144 visible lines
	p.Update(ScanlineCycles*visibleLines - 8)
	assert.Equal(t, HBlank, p.Mode())
	assert.Equal(t, uint8(visibleLines-1), p.Line())

	p.Update(4)
	assert.Equal(t, VBlank, p.Mode())
	assert.Equal(t, uint8(visibleLines), p.Line())
	assert.Equal(t, uint64(2), p.Frames())
	assert.Equal(t, 2, irq.counts[addr.VBlankInterrupt])
}

func TestWriteToLYRestartsFrame(t *testing.T) {
	p, mmu, _ := newTestPPU(0x91)
	p.Update(ScanlineCycles * 5)
	require.Equal(t, uint8(5), p.Line())

	mmu.Write(addr.LY, 0x99)
	assert.Equal(t, uint8(0), p.Line())

	p.Update(ScanlineCycles)
	assert.Equal(t, uint8(1), p.Line())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "HBlank", HBlank.String())
	assert.Equal(t, "PixelTransfer", PixelTransfer.String())
	assert.Equal(t, "Unknown", Mode(7).String())
}
