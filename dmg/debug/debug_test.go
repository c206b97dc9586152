package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/memory"
	"github.com/valerio/go-dmg/dmg/video"
)

func newVRAM(t *testing.T) *memory.MMU {
	t.Helper()
	mmu := memory.New(nil)
	mmu.Write(addr.BGP, 0xE4)
	return mmu
}

func TestTileSheet(t *testing.T) {
	mmu := newVRAM(t)
	// tile 17 sits at column 1 of row 1, first row solid black
	mmu.Write(addr.TileData0+17*16, 0xFF)
	mmu.Write(addr.TileData0+17*16+1, 0xFF)
	// last tile, last row, rightmost pixel light grey
	mmu.Write(addr.TileData0+383*16+14, 0x01)

	img := TileSheet(mmu)

	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 192, img.Bounds().Dy())
	assert.Equal(t, uint8(video.BlackColor), img.GrayAt(8, 8).Y)
	assert.Equal(t, uint8(video.BlackColor), img.GrayAt(15, 8).Y)
	assert.Equal(t, uint8(video.WhiteColor), img.GrayAt(8, 9).Y)
	assert.Equal(t, uint8(video.LightGreyColor), img.GrayAt(127, 191).Y)
}

func TestBackgroundMap(t *testing.T) {
	testCases := []struct {
		desc    string
		lcdc    byte
		tileAt  uint16
		mapBase uint16
	}{
		{desc: "unsigned data, map 0", lcdc: 0x91, tileAt: 0x8010, mapBase: addr.TileMap0},
		{desc: "signed data, map 1", lcdc: 0x89, tileAt: 0x9010, mapBase: addr.TileMap1},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			mmu := newVRAM(t)
			mmu.Write(tC.tileAt, 0xFF)
			mmu.Write(tC.tileAt+1, 0xFF)
			// second row, third column uses tile 1
			mmu.Write(tC.mapBase+32+2, 0x01)

			img := BackgroundMap(mmu, tC.mapBase, tC.lcdc)

			assert.Equal(t, 256, img.Bounds().Dx())
			assert.Equal(t, uint8(video.BlackColor), img.GrayAt(16, 8).Y)
			assert.Equal(t, uint8(video.WhiteColor), img.GrayAt(0, 0).Y)
		})
	}
}

func TestFrameImage(t *testing.T) {
	fb := video.NewFrameBuffer()
	fb.SetPixel(10, 20, video.DarkGreyColor)

	img := FrameImage(fb)

	c := img.RGBAAt(10, 20)
	assert.Equal(t, uint8(video.DarkGreyColor), c.R)
	assert.Equal(t, uint8(video.DarkGreyColor), c.B)
	assert.Equal(t, uint8(0xFF), c.A)
	assert.Equal(t, uint8(video.WhiteColor), img.RGBAAt(0, 0).G)
}

func TestSaveSnapshot(t *testing.T) {
	dir := t.TempDir()
	fb := video.NewFrameBuffer()
	fb.SetPixel(0, 0, video.BlackColor)

	path, err := SaveSnapshot(fb, "frame", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, video.Width, img.Bounds().Dx())
	r, _, _, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), r)
}

func TestSavePNGMissingDir(t *testing.T) {
	err := SavePNG(FrameImage(video.NewFrameBuffer()), filepath.Join(t.TempDir(), "missing", "x.png"))
	assert.Error(t, err)
}

func TestDumpVRAM(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, DumpVRAM(newVRAM(t), 0x91, dir))
	for _, name := range []string{"tiles.png", "map0.png", "map1.png"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}
