package video

import "github.com/valerio/go-dmg/dmg/bit"

// TileRow is one 8 pixel row of a tile in the 2bpp planar format: Low holds
// bit 0 of every pixel's color index and High holds bit 1. Bit 7 is the
// leftmost pixel.
//
// Example: Low 0x3C, High 0x7E gives the indices 0 2 3 3 3 3 2 0.
type TileRow struct {
	Low  byte
	High byte
}

// GetPixel returns the color index (0-3) of pixel x, 0 being the leftmost.
func (t TileRow) GetPixel(x int) uint8 {
	return t.index(uint8(7 - x))
}

// GetPixelFlipped is GetPixel with the row mirrored horizontally.
func (t TileRow) GetPixelFlipped(x int) uint8 {
	return t.index(uint8(x))
}

func (t TileRow) index(b uint8) uint8 {
	return bit.Value(b, t.High)<<1 | bit.Value(b, t.Low)
}

// Tile is a full 8x8 pattern, 16 bytes of VRAM.
type Tile struct {
	Rows [8]TileRow
}

func (t *Tile) GetPixel(x, y int) uint8 {
	if y < 0 || y >= 8 || x < 0 || x >= 8 {
		return 0
	}
	return t.Rows[y].GetPixel(x)
}

// MemoryReader is the read side of the bus.
type MemoryReader interface {
	Read(address uint16) byte
}

// FetchTileRow reads the two bytes of a tile row starting at address.
func FetchTileRow(memory MemoryReader, address uint16) TileRow {
	return TileRow{Low: memory.Read(address), High: memory.Read(address + 1)}
}

// FetchTile reads a complete tile starting at base.
func FetchTile(memory MemoryReader, base uint16) Tile {
	var tile Tile
	for row := range tile.Rows {
		tile.Rows[row] = FetchTileRow(memory, base+uint16(row*2))
	}
	return tile
}
