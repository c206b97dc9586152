package video

import (
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
)

const (
	spriteCount       = 40
	maxSpritesPerLine = 10
)

// Sprite is one OAM entry with the hardware offsets removed.
type Sprite struct {
	Y         int // screen row of the top line, raw Y - 16
	X         int // screen column of the left pixel, raw X - 8
	TileIndex uint8
	Flags     uint8
	OAMIndex  int
	Height    int

	PaletteOBP1 bool
	FlipX       bool
	FlipY       bool
	BehindBG    bool
}

func (s *Sprite) parseFlags() {
	s.PaletteOBP1 = bit.IsSet(4, s.Flags)
	s.FlipX = bit.IsSet(5, s.Flags)
	s.FlipY = bit.IsSet(6, s.Flags)
	s.BehindBG = bit.IsSet(7, s.Flags)
}

// row returns the tile row address of the sprite's pixels on screen line ly.
func (s *Sprite) row(ly int) uint16 {
	line := ly - s.Y
	if s.FlipY {
		line = s.Height - 1 - line
	}
	tile := s.TileIndex
	if s.Height == 16 {
		tile &= 0xFE
	}
	return addr.TileData0 + uint16(tile)*16 + uint16(line*2)
}

// ReadSprite decodes OAM entry index.
func ReadSprite(bus MemoryReader, index int, height int) Sprite {
	base := addr.OAMStart + uint16(index*4)
	s := Sprite{
		Y:         int(bus.Read(base)) - 16,
		X:         int(bus.Read(base+1)) - 8,
		TileIndex: bus.Read(base + 2),
		Flags:     bus.Read(base + 3),
		OAMIndex:  index,
		Height:    height,
	}
	s.parseFlags()
	return s
}

// priorityBuffer assigns each pixel of a line to at most one sprite. Among
// overlapping opaque pixels the sprite with the lower X wins, ties go to the
// lower OAM index.
type priorityBuffer struct {
	owner  [Width]int
	ownerX [Width]int
	color  [Width]uint8
	sprite [Width]*Sprite
}

func (p *priorityBuffer) clear() {
	for i := range p.owner {
		p.owner[i] = -1
		p.ownerX[i] = 0xFF
		p.sprite[i] = nil
	}
}

// claim offers pixel x with color index color to s. It reports whether s
// now owns the pixel.
func (p *priorityBuffer) claim(x int, s *Sprite, color uint8) bool {
	if x < 0 || x >= Width {
		return false
	}
	current := p.owner[x]
	if current != -1 && s.X > p.ownerX[x] {
		return false
	}
	if current != -1 && s.X == p.ownerX[x] && s.OAMIndex > current {
		return false
	}
	p.owner[x] = s.OAMIndex
	p.ownerX[x] = s.X
	p.color[x] = color
	p.sprite[x] = s
	return true
}

// oamScanner selects the sprites of a scanline.
type oamScanner struct {
	bus      MemoryReader
	priority priorityBuffer
	buffer   [maxSpritesPerLine]Sprite
}

// spritesForLine returns the first ten sprites in OAM order that cover
// line ly.
func (o *oamScanner) spritesForLine(ly int, height int) []Sprite {
	sprites := o.buffer[:0]
	for i := 0; i < spriteCount && len(sprites) < maxSpritesPerLine; i++ {
		y := int(o.bus.Read(addr.OAMStart+uint16(i*4))) - 16
		if ly < y || ly >= y+height {
			continue
		}
		sprites = append(sprites, ReadSprite(o.bus, i, height))
	}
	return sprites
}
