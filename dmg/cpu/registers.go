package cpu

import "github.com/valerio/go-dmg/dmg/bit"

// Flag is one of the four flags in the high nibble of F.
type Flag uint8

const (
	zeroFlag      Flag = 0x80
	subFlag       Flag = 0x40
	halfCarryFlag Flag = 0x20
	carryFlag     Flag = 0x10
)

// Pair is a 16 bit register made of two 8 bit halves. Hi is the first named
// register of the pair: B in BC, A in AF.
type Pair struct {
	Hi, Lo uint8
}

func (p Pair) Get() uint16 {
	return bit.Combine(p.Hi, p.Lo)
}

func (p *Pair) Set(value uint16) {
	p.Hi = bit.High(value)
	p.Lo = bit.Low(value)
}

// Registers is the LR35902 register file. The low nibble of F is always 0.
type Registers struct {
	AF, BC, DE, HL Pair
	SP, PC         uint16
}

func (r *Registers) SetAF(value uint16) {
	r.AF.Set(value & 0xFFF0)
}

// Register returns a handle to an 8 bit register. F is not addressable this
// way since its low nibble must stay clear.
func (r *Registers) Register(op Operand) *uint8 {
	switch op {
	case RegA:
		return &r.AF.Hi
	case RegB:
		return &r.BC.Hi
	case RegC:
		return &r.BC.Lo
	case RegD:
		return &r.DE.Hi
	case RegE:
		return &r.DE.Lo
	case RegH:
		return &r.HL.Hi
	case RegL:
		return &r.HL.Lo
	}
	panic("not an 8 bit register: " + op.String())
}

// Get16 reads a 16 bit register.
func (r *Registers) Get16(op Operand) uint16 {
	switch op {
	case RegAF:
		return r.AF.Get()
	case RegBC:
		return r.BC.Get()
	case RegDE:
		return r.DE.Get()
	case RegHL:
		return r.HL.Get()
	case RegSP:
		return r.SP
	}
	panic("not a 16 bit register: " + op.String())
}

// Set16 writes a 16 bit register, masking F when writing AF.
func (r *Registers) Set16(op Operand, value uint16) {
	switch op {
	case RegAF:
		r.SetAF(value)
	case RegBC:
		r.BC.Set(value)
	case RegDE:
		r.DE.Set(value)
	case RegHL:
		r.HL.Set(value)
	case RegSP:
		r.SP = value
	default:
		panic("not a 16 bit register: " + op.String())
	}
}

func (r *Registers) flag(f Flag) bool {
	return r.AF.Lo&uint8(f) != 0
}

func (r *Registers) setFlag(f Flag, on bool) {
	if on {
		r.AF.Lo |= uint8(f)
	} else {
		r.AF.Lo &^= uint8(f)
	}
}

// setFlags writes all four flags at once.
func (r *Registers) setFlags(z, n, h, c bool) {
	r.setFlag(zeroFlag, z)
	r.setFlag(subFlag, n)
	r.setFlag(halfCarryFlag, h)
	r.setFlag(carryFlag, c)
}

func (r *Registers) carryBit() uint8 {
	if r.flag(carryFlag) {
		return 1
	}
	return 0
}
