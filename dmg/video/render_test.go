package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/memory"
)

// writeTile stores rows as (low, high) byte pairs starting at address.
func writeTile(mmu *memory.MMU, address uint16, rows ...byte) {
	for i, b := range rows {
		mmu.Write(address+uint16(i), b)
	}
}

func writeSprite(mmu *memory.MMU, index int, y, x, tile, flags byte) {
	base := addr.OAMStart + uint16(index*4)
	mmu.Write(base, y)
	mmu.Write(base+1, x)
	mmu.Write(base+2, tile)
	mmu.Write(base+3, flags)
}

type pixel struct {
	x, y  int
	color GBColor
}

func TestTileAddress(t *testing.T) {
	testCases := []struct {
		desc string
		lcdc byte
		n    uint8
		want uint16
	}{
		{desc: "unsigned first", lcdc: 0x91, n: 0x00, want: 0x8000},
		{desc: "unsigned last", lcdc: 0x91, n: 0xFF, want: 0x8FF0},
		{desc: "signed zero", lcdc: 0x81, n: 0x00, want: 0x9000},
		{desc: "signed max", lcdc: 0x81, n: 0x7F, want: 0x97F0},
		{desc: "signed min", lcdc: 0x81, n: 0x80, want: 0x8800},
		{desc: "signed minus one", lcdc: 0x81, n: 0xFF, want: 0x8FF0},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.want, TileAddress(tC.lcdc, tC.n))
		})
	}
}

func TestBackgroundRendering(t *testing.T) {
	testCases := []struct {
		desc     string
		lcdc     byte
		palette  byte
		scx, scy byte
		tile     []byte
		lines    int
		expected []pixel
	}{
		{
			desc:    "solid tile",
			lcdc:    0x91,
			palette: 0xE4,
			tile:    []byte{0xFF, 0xFF},
			expected: []pixel{
				{0, 0, BlackColor},
				{7, 0, BlackColor},
				{159, 0, BlackColor},
			},
		},
		{
			desc:    "checkered rows",
			lcdc:    0x91,
			palette: 0xE4,
			tile:    []byte{0xAA, 0x00, 0x55, 0x00},
			lines:   2,
			expected: []pixel{
				{0, 0, LightGreyColor},
				{1, 0, WhiteColor},
				{0, 1, WhiteColor},
				{1, 1, LightGreyColor},
			},
		},
		{
			desc:    "palette remaps indices",
			lcdc:    0x91,
			palette: 0x1B,
			tile:    []byte{0xF0, 0x00},
			expected: []pixel{
				{0, 0, DarkGreyColor},
				{4, 0, BlackColor},
			},
		},
		{
			desc:    "horizontal scroll",
			lcdc:    0x91,
			palette: 0xE4,
			scx:     4,
			tile:    []byte{0xF0, 0x00},
			expected: []pixel{
				{0, 0, WhiteColor},
				{3, 0, WhiteColor},
				{4, 0, LightGreyColor},
				{7, 0, LightGreyColor},
			},
		},
		{
			desc:    "vertical scroll",
			lcdc:    0x91,
			palette: 0xE4,
			scy:     1,
			tile:    []byte{0xFF, 0x00, 0x00, 0xFF},
			expected: []pixel{
				{0, 0, DarkGreyColor},
			},
		},
		{
			desc:    "background disabled",
			lcdc:    0x90,
			palette: 0xE4,
			tile:    []byte{0xFF, 0xFF},
			expected: []pixel{
				{0, 0, WhiteColor},
				{80, 0, WhiteColor},
			},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			p, mmu, _ := newTestPPU(tC.lcdc)
			mmu.Write(addr.BGP, tC.palette)
			mmu.Write(addr.SCX, tC.scx)
			mmu.Write(addr.SCY, tC.scy)
			// the tile map is all zeroes, so tile 0 covers the screen
			writeTile(mmu, addr.TileData0, tC.tile...)

			lines := tC.lines
			if lines == 0 {
				lines = 1
			}
			p.Update((lines-1)*ScanlineCycles + lineDone)

			fb := p.FrameBuffer()
			for _, px := range tC.expected {
				assert.Equal(t, px.color, fb.GetPixel(px.x, px.y), "pixel (%d,%d)", px.x, px.y)
			}
		})
	}
}

func TestSignedTileData(t *testing.T) {
	p, mmu, _ := newTestPPU(0x81)
	mmu.Write(addr.TileMap0, 0x80)
	mmu.Write(addr.TileMap0+1, 0x00)
	writeTile(mmu, 0x8800, 0xFF, 0xFF)
	writeTile(mmu, 0x9000, 0xFF, 0x00)

	p.Update(lineDone)

	assert.Equal(t, BlackColor, p.FrameBuffer().GetPixel(0, 0))
	assert.Equal(t, LightGreyColor, p.FrameBuffer().GetPixel(8, 0))
}

func TestAlternateBackgroundMap(t *testing.T) {
	p, mmu, _ := newTestPPU(0x99)
	mmu.Write(addr.TileMap1, 0x01)
	writeTile(mmu, addr.TileData0+16, 0xFF, 0xFF)

	p.Update(lineDone)

	assert.Equal(t, BlackColor, p.FrameBuffer().GetPixel(0, 0))
	assert.Equal(t, WhiteColor, p.FrameBuffer().GetPixel(8, 0))
}

func TestWindowRendering(t *testing.T) {
	p, mmu, _ := newTestPPU(0xF1)
	for i := uint16(0); i < 32; i++ {
		mmu.Write(addr.TileMap1+i, 0x01)
	}
	writeTile(mmu, addr.TileData0+16, 0xFF, 0xFF, 0x00, 0x00)
	mmu.Write(addr.WY, 0)
	mmu.Write(addr.WX, 87)

	p.Update(lineDone)
	fb := p.FrameBuffer()
	assert.Equal(t, WhiteColor, fb.GetPixel(79, 0))
	assert.Equal(t, BlackColor, fb.GetPixel(80, 0))
	assert.Equal(t, BlackColor, fb.GetPixel(159, 0))

	// the window keeps its own line counter
	p.Update(ScanlineCycles)
	assert.Equal(t, WhiteColor, fb.GetPixel(80, 1))
}

func TestWindowBelowWY(t *testing.T) {
	p, mmu, _ := newTestPPU(0xF1)
	mmu.Write(addr.TileMap1, 0x01)
	writeTile(mmu, addr.TileData0+16, 0xFF, 0xFF)
	mmu.Write(addr.WY, 10)
	mmu.Write(addr.WX, 7)

	p.Update(lineDone)
	assert.Equal(t, WhiteColor, p.FrameBuffer().GetPixel(0, 0))

	p.Update(ScanlineCycles * 10)
	assert.Equal(t, BlackColor, p.FrameBuffer().GetPixel(0, 10))
}

func TestSpriteRendering(t *testing.T) {
	testCases := []struct {
		desc     string
		lcdc     byte
		bgTile   []byte
		tile     []byte
		flags    byte
		obp1     byte
		expected []pixel
	}{
		{
			desc:  "opaque sprite",
			lcdc:  0x93,
			tile:  []byte{0xFF, 0xFF},
			flags: 0x00,
			expected: []pixel{
				{0, 0, BlackColor},
				{7, 0, BlackColor},
				{8, 0, WhiteColor},
			},
		},
		{
			desc: "color zero is transparent",
			lcdc: 0x93,
			tile: []byte{0x0F, 0x00},
			expected: []pixel{
				{0, 0, WhiteColor},
				{3, 0, WhiteColor},
				{4, 0, LightGreyColor},
			},
		},
		{
			desc:  "flip x",
			lcdc:  0x93,
			tile:  []byte{0xF0, 0x00},
			flags: 0x20,
			expected: []pixel{
				{0, 0, WhiteColor},
				{4, 0, LightGreyColor},
			},
		},
		{
			desc:  "flip y",
			lcdc:  0x93,
			tile:  []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xFF, 0xFF},
			flags: 0x40,
			expected: []pixel{
				{0, 0, BlackColor},
			},
		},
		{
			desc:  "second palette",
			lcdc:  0x93,
			tile:  []byte{0xFF, 0xFF},
			flags: 0x10,
			obp1:  0x40,
			expected: []pixel{
				{0, 0, LightGreyColor},
			},
		},
		{
			desc:   "behind background",
			lcdc:   0x93,
			bgTile: []byte{0xF0, 0x00},
			tile:   []byte{0xFF, 0xFF},
			flags:  0x80,
			expected: []pixel{
				{0, 0, LightGreyColor},
				{4, 0, BlackColor},
			},
		},
		{
			desc: "sprites disabled",
			lcdc: 0x91,
			tile: []byte{0xFF, 0xFF},
			expected: []pixel{
				{0, 0, WhiteColor},
			},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			p, mmu, _ := newTestPPU(tC.lcdc)
			mmu.Write(addr.OBP1, tC.obp1)
			writeTile(mmu, addr.TileData0, tC.bgTile...)
			writeTile(mmu, addr.TileData0+16, tC.tile...)
			writeSprite(mmu, 0, 16, 8, 1, tC.flags)

			p.Update(lineDone)

			fb := p.FrameBuffer()
			for _, px := range tC.expected {
				assert.Equal(t, px.color, fb.GetPixel(px.x, px.y), "pixel (%d,%d)", px.x, px.y)
			}
		})
	}
}

func TestSpritePriority(t *testing.T) {
	t.Run("lower x wins", func(t *testing.T) {
		p, mmu, _ := newTestPPU(0x93)
		mmu.Write(addr.OBP1, 0x40)
		writeTile(mmu, addr.TileData0+16, 0xFF, 0xFF)
		writeSprite(mmu, 0, 16, 18, 1, 0x00) // x=10, black
		writeSprite(mmu, 1, 16, 14, 1, 0x10) // x=6, light grey

		p.Update(lineDone)

		fb := p.FrameBuffer()
		assert.Equal(t, LightGreyColor, fb.GetPixel(6, 0))
		assert.Equal(t, LightGreyColor, fb.GetPixel(13, 0))
		assert.Equal(t, BlackColor, fb.GetPixel(14, 0))
		assert.Equal(t, BlackColor, fb.GetPixel(17, 0))
	})

	t.Run("same x lower index wins", func(t *testing.T) {
		p, mmu, _ := newTestPPU(0x93)
		mmu.Write(addr.OBP1, 0x40)
		writeTile(mmu, addr.TileData0+16, 0xFF, 0xFF)
		writeSprite(mmu, 0, 16, 8, 1, 0x00)
		writeSprite(mmu, 1, 16, 8, 1, 0x10)

		p.Update(lineDone)
		assert.Equal(t, BlackColor, p.FrameBuffer().GetPixel(0, 0))
	})

	t.Run("transparent pixels do not hide lower priority sprites", func(t *testing.T) {
		p, mmu, _ := newTestPPU(0x93)
		writeTile(mmu, addr.TileData0+16, 0x0F, 0x00)
		writeTile(mmu, addr.TileData0+32, 0xFF, 0xFF)
		writeSprite(mmu, 0, 16, 8, 1, 0x00)
		writeSprite(mmu, 1, 16, 8, 2, 0x00)

		p.Update(lineDone)
		fb := p.FrameBuffer()
		assert.Equal(t, BlackColor, fb.GetPixel(0, 0))
		assert.Equal(t, LightGreyColor, fb.GetPixel(4, 0))
	})
}

func TestTenSpritesPerLine(t *testing.T) {
	p, mmu, _ := newTestPPU(0x93)
	writeTile(mmu, addr.TileData0+16, 0xFF, 0xFF)
	for i := 0; i < 11; i++ {
		writeSprite(mmu, i, 16, byte(8+i*8), 1, 0x00)
	}

	p.Update(lineDone)

	fb := p.FrameBuffer()
	assert.Equal(t, BlackColor, fb.GetPixel(72, 0))
	assert.Equal(t, WhiteColor, fb.GetPixel(80, 0))
}

func TestTallSprites(t *testing.T) {
	p, mmu, _ := newTestPPU(0x97)
	// tile 3 is the lower half of the 2/3 pair
	writeTile(mmu, addr.TileData0+3*16, 0xFF, 0xFF)
	writeSprite(mmu, 0, 16, 8, 3, 0x00)

	p.Update(8*ScanlineCycles + lineDone)

	fb := p.FrameBuffer()
	assert.Equal(t, WhiteColor, fb.GetPixel(0, 0))
	assert.Equal(t, BlackColor, fb.GetPixel(0, 8))
}

func TestSharedFrame(t *testing.T) {
	shared := NewSharedFrame()
	fb := NewFrameBuffer()
	fb.SetPixel(3, 4, DarkGreyColor)

	assert.True(t, shared.Publish(fb))

	var got FrameBuffer
	assert.Equal(t, uint64(1), shared.Snapshot(&got))
	assert.Equal(t, DarkGreyColor, got.GetPixel(3, 4))
	assert.Equal(t, fb.Bytes(), got.Bytes())

	// a busy viewer makes Publish drop the frame instead of waiting, and the
	// quit flag stays readable
	shared.mu.Lock()
	assert.False(t, shared.Publish(fb))
	assert.False(t, shared.ShouldQuit())
	shared.Quit()
	assert.True(t, shared.ShouldQuit())
	shared.mu.Unlock()
}

func TestTileRow(t *testing.T) {
	row := TileRow{Low: 0x3C, High: 0x7E}
	want := []uint8{0, 2, 3, 3, 3, 3, 2, 0}
	for x, w := range want {
		assert.Equal(t, w, row.GetPixel(x))
		assert.Equal(t, w, row.GetPixelFlipped(7-x))
	}
}
