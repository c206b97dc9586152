package video

import (
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
)

// renderScanline draws line ly into the framebuffer: background, then the
// window over it, then sprites.
func (p *PPU) renderScanline(ly int) {
	if ly < 0 || ly >= Height {
		return
	}
	lcdc := p.bus.Read(addr.LCDC)

	if bit.IsSet(bgDisplay, lcdc) {
		p.renderBackground(ly, lcdc)
		p.renderWindow(ly, lcdc)
	} else {
		// with BG off the line is blank and sprites always win
		for x := 0; x < Width; x++ {
			p.bgIndex[x] = 0
			p.framebuffer.SetPixel(x, ly, WhiteColor)
		}
	}

	if bit.IsSet(spriteDisplayEnable, lcdc) {
		p.renderSprites(ly, lcdc)
	}
}

// TileAddress returns where tile n starts. With LCDC bit 4 clear the tile
// number is signed and relative to 0x9000.
func TileAddress(lcdc byte, n uint8) uint16 {
	if bit.IsSet(bgWindowTileDataSelect, lcdc) {
		return addr.TileData0 + uint16(n)*16
	}
	return uint16(int(addr.TileData2) + int(int8(n))*16)
}

func (p *PPU) renderBackground(ly int, lcdc byte) {
	mapBase := addr.TileMap0
	if bit.IsSet(bgTileMapDisplaySelect, lcdc) {
		mapBase = addr.TileMap1
	}
	scx := p.bus.Read(addr.SCX)
	y := uint8(ly) + p.bus.Read(addr.SCY)
	palette := p.bus.Read(addr.BGP)

	p.drawTileLine(0, scx, y, mapBase, lcdc, palette, ly)
}

func (p *PPU) renderWindow(ly int, lcdc byte) {
	if !bit.IsSet(windowDisplayEnable, lcdc) {
		return
	}
	wy := int(p.bus.Read(addr.WY))
	wx := int(p.bus.Read(addr.WX)) - 7
	if ly < wy || wx >= Width {
		return
	}

	mapBase := addr.TileMap0
	if bit.IsSet(windowTileMapSelect, lcdc) {
		mapBase = addr.TileMap1
	}
	start, offset := wx, uint8(0)
	if start < 0 {
		start, offset = 0, uint8(-wx)
	}
	p.drawTileLine(start, offset, uint8(p.windowLine), mapBase, lcdc, p.bus.Read(addr.BGP), ly)
	p.windowLine++
}

// drawTileLine fills screen pixels from startX to the end of line ly with
// the tile map at mapBase, starting at map coordinates (mapX, mapY).
func (p *PPU) drawTileLine(startX int, mapX, mapY uint8, mapBase uint16, lcdc, palette byte, ly int) {
	rowInMap := uint16(mapY/8) * 32
	var row TileRow
	lastTile := -1

	for x := startX; x < Width; x++ {
		column := int(mapX / 8)
		if column != lastTile {
			n := p.bus.Read(mapBase + rowInMap + uint16(column))
			row = FetchTileRow(p.bus, TileAddress(lcdc, n)+uint16(mapY%8)*2)
			lastTile = column
		}

		index := row.GetPixel(int(mapX % 8))
		p.bgIndex[x] = index
		p.framebuffer.SetPixel(x, ly, PaletteColor(palette, index))
		mapX++
	}
}

func (p *PPU) renderSprites(ly int, lcdc byte) {
	height := 8
	if bit.IsSet(spriteSize, lcdc) {
		height = 16
	}

	sprites := p.oam.spritesForLine(ly, height)
	buf := &p.oam.priority
	buf.clear()

	for i := range sprites {
		s := &sprites[i]
		row := FetchTileRow(p.bus, s.row(ly))
		for px := 0; px < 8; px++ {
			var color uint8
			if s.FlipX {
				color = row.GetPixelFlipped(px)
			} else {
				color = row.GetPixel(px)
			}
			if color == 0 {
				continue
			}
			buf.claim(s.X+px, s, color)
		}
	}

	obp0, obp1 := p.bus.Read(addr.OBP0), p.bus.Read(addr.OBP1)
	for x := 0; x < Width; x++ {
		s := buf.sprite[x]
		if s == nil {
			continue
		}
		if s.BehindBG && p.bgIndex[x] != 0 {
			continue
		}
		palette := obp0
		if s.PaletteOBP1 {
			palette = obp1
		}
		p.framebuffer.SetPixel(x, ly, PaletteColor(palette, buf.color[x]))
	}
}
