package memory

import "github.com/valerio/go-dmg/dmg/bit"

// Button is one of the eight joypad inputs.
type Button uint8

const (
	ButtonRight Button = iota
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
)

func (b Button) String() string {
	return [...]string{"Right", "Left", "Up", "Down", "A", "B", "Select", "Start"}[b]
}

// Joypad models the P1 register. Line state uses hardware polarity: 0 means
// pressed.
type Joypad struct {
	selected byte
	buttons  byte
	dpad     byte

	// PressHandler is called when any line goes from released to pressed.
	PressHandler func()
}

func NewJoypad(irq func()) *Joypad {
	return &Joypad{
		selected:     0x30,
		buttons:      0x0F,
		dpad:         0x0F,
		PressHandler: irq,
	}
}

// Read returns P1: bits 6-7 read as 1, bits 4-5 are the selection, bits 0-3
// are the selected lines.
func (j *Joypad) Read() byte {
	result := byte(0xC0) | j.selected

	selectDpad := !bit.IsSet(4, j.selected)
	selectButtons := !bit.IsSet(5, j.selected)

	switch {
	case selectButtons && selectDpad:
		result |= j.buttons & j.dpad & 0x0F
	case selectButtons:
		result |= j.buttons & 0x0F
	case selectDpad:
		result |= j.dpad & 0x0F
	default:
		result |= 0x0F
	}
	return result
}

// Write stores the selection bits, the only writable part of P1.
func (j *Joypad) Write(value byte) {
	j.selected = value & 0x30
}

func (j *Joypad) Press(b Button) {
	wasReleased := j.released(b)
	j.set(b, false)
	if wasReleased && j.PressHandler != nil {
		j.PressHandler()
	}
}

func (j *Joypad) Release(b Button) {
	j.set(b, true)
}

func (j *Joypad) set(b Button, released bool) {
	if b < ButtonA {
		j.dpad = bit.SetTo(uint8(b), j.dpad, released)
		return
	}
	j.buttons = bit.SetTo(uint8(b-ButtonA), j.buttons, released)
}

func (j *Joypad) released(b Button) bool {
	if b < ButtonA {
		return bit.IsSet(uint8(b), j.dpad)
	}
	return bit.IsSet(uint8(b-ButtonA), j.buttons)
}
