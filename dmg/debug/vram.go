// Package debug renders VRAM and frames to images for inspection.
package debug

import (
	"image"
	"image/color"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/video"
)

const (
	TilePatternCount = 384
	TilesPerRow      = 16
	TileRows         = TilePatternCount / TilesPerRow
	tileSize         = 8
	tileBytes        = 16

	mapTiles = 32
)

// TileSheet draws all 384 tile patterns of VRAM as a 16x24 grid, using the
// current background palette.
func TileSheet(reader video.MemoryReader) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, TilesPerRow*tileSize, TileRows*tileSize))
	palette := reader.Read(addr.BGP)

	for i := 0; i < TilePatternCount; i++ {
		tile := video.FetchTile(reader, addr.TileData0+uint16(i*tileBytes))
		drawTile(img, &tile, (i%TilesPerRow)*tileSize, (i/TilesPerRow)*tileSize, palette)
	}
	return img
}

// BackgroundMap draws the full 256x256 tile map at mapBase (0x9800 or 0x9C00)
// with the tile data addressing selected by lcdc.
func BackgroundMap(reader video.MemoryReader, mapBase uint16, lcdc byte) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, mapTiles*tileSize, mapTiles*tileSize))
	palette := reader.Read(addr.BGP)

	for i := 0; i < mapTiles*mapTiles; i++ {
		n := reader.Read(mapBase + uint16(i))
		tile := video.FetchTile(reader, video.TileAddress(lcdc, n))
		drawTile(img, &tile, (i%mapTiles)*tileSize, (i/mapTiles)*tileSize, palette)
	}
	return img
}

func drawTile(img *image.Gray, tile *video.Tile, ox, oy int, palette byte) {
	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			shade := video.PaletteColor(palette, tile.GetPixel(x, y))
			img.SetGray(ox+x, oy+y, color.Gray{Y: uint8(shade)})
		}
	}
}

// FrameImage converts a framebuffer to an RGBA image.
func FrameImage(fb *video.FrameBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, video.Width, video.Height))
	src := fb.Bytes()
	for i := 0; i < video.Width*video.Height; i++ {
		copy(img.Pix[i*4:], src[i*3:i*3+3])
		img.Pix[i*4+3] = 0xFF
	}
	return img
}
