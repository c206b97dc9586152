package video

const (
	// Width and Height of the LCD in pixels.
	Width  = 160
	Height = 144

	bytesPerPixel = 3
)

// GBColor is one of the four grey levels of the DMG LCD.
type GBColor uint8

const (
	WhiteColor     GBColor = 0xFF
	LightGreyColor GBColor = 0xC0
	DarkGreyColor  GBColor = 0x60
	BlackColor     GBColor = 0x00
)

// shades maps a palette entry (0-3) to its grey level.
var shades = [4]GBColor{WhiteColor, LightGreyColor, DarkGreyColor, BlackColor}

// PaletteColor resolves a 2 bit color index through a palette register
// (BGP, OBP0 or OBP1). Entry i lives in bits 2i+1..2i.
func PaletteColor(palette byte, index uint8) GBColor {
	return shades[(palette>>(index*2))&0x03]
}

// FrameBuffer is the 160x144 picture as packed RGB triplets, row major.
type FrameBuffer struct {
	pix [Width * Height * bytesPerPixel]byte
}

func NewFrameBuffer() *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Fill(WhiteColor)
	return fb
}

func (fb *FrameBuffer) SetPixel(x, y int, color GBColor) {
	i := (y*Width + x) * bytesPerPixel
	fb.pix[i] = byte(color)
	fb.pix[i+1] = byte(color)
	fb.pix[i+2] = byte(color)
}

func (fb *FrameBuffer) GetPixel(x, y int) GBColor {
	return GBColor(fb.pix[(y*Width+x)*bytesPerPixel])
}

func (fb *FrameBuffer) Fill(color GBColor) {
	for i := range fb.pix {
		fb.pix[i] = byte(color)
	}
}

// Bytes exposes the RGB data. Callers must treat it as read only.
func (fb *FrameBuffer) Bytes() []byte {
	return fb.pix[:]
}
