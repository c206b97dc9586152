package cpu

import "github.com/valerio/go-dmg/dmg/bit"

// add computes A + v + carry.
func (c *CPU) add(v, carry uint8) {
	a := c.regs.AF.Hi
	sum := uint16(a) + uint16(v) + uint16(carry)
	result := uint8(sum)
	c.regs.setFlags(result == 0, false, (a&0x0F)+(v&0x0F)+carry > 0x0F, sum > 0xFF)
	c.regs.AF.Hi = result
}

// sub computes A - v - carry, storing the result unless compare is set.
func (c *CPU) sub(v, carry uint8, store bool) {
	a := c.regs.AF.Hi
	diff := int(a) - int(v) - int(carry)
	result := uint8(diff)
	c.regs.setFlags(result == 0, true, int(a&0x0F)-int(v&0x0F)-int(carry) < 0, diff < 0)
	if store {
		c.regs.AF.Hi = result
	}
}

func add8(c *CPU, in *instruction, n uint16) int {
	c.add(c.load8(in.src, n), 0)
	return 0
}

func adc8(c *CPU, in *instruction, n uint16) int {
	c.add(c.load8(in.src, n), c.regs.carryBit())
	return 0
}

func sub8(c *CPU, in *instruction, n uint16) int {
	c.sub(c.load8(in.src, n), 0, true)
	return 0
}

func sbc8(c *CPU, in *instruction, n uint16) int {
	c.sub(c.load8(in.src, n), c.regs.carryBit(), true)
	return 0
}

func cp8(c *CPU, in *instruction, n uint16) int {
	c.sub(c.load8(in.src, n), 0, false)
	return 0
}

func and8(c *CPU, in *instruction, n uint16) int {
	c.regs.AF.Hi &= c.load8(in.src, n)
	c.regs.setFlags(c.regs.AF.Hi == 0, false, true, false)
	return 0
}

func xor8(c *CPU, in *instruction, n uint16) int {
	c.regs.AF.Hi ^= c.load8(in.src, n)
	c.regs.setFlags(c.regs.AF.Hi == 0, false, false, false)
	return 0
}

func or8(c *CPU, in *instruction, n uint16) int {
	c.regs.AF.Hi |= c.load8(in.src, n)
	c.regs.setFlags(c.regs.AF.Hi == 0, false, false, false)
	return 0
}

// inc8 leaves C untouched.
func inc8(c *CPU, in *instruction, n uint16) int {
	v := c.load8(in.dst, n)
	result := v + 1
	c.regs.setFlag(zeroFlag, result == 0)
	c.regs.setFlag(subFlag, false)
	c.regs.setFlag(halfCarryFlag, v&0x0F == 0x0F)
	c.store8(in.dst, n, result)
	return 0
}

// dec8 leaves C untouched.
func dec8(c *CPU, in *instruction, n uint16) int {
	v := c.load8(in.dst, n)
	result := v - 1
	c.regs.setFlag(zeroFlag, result == 0)
	c.regs.setFlag(subFlag, true)
	c.regs.setFlag(halfCarryFlag, v&0x0F == 0)
	c.store8(in.dst, n, result)
	return 0
}

func inc16(c *CPU, in *instruction, n uint16) int {
	c.regs.Set16(in.dst, c.regs.Get16(in.dst)+1)
	return 0
}

func dec16(c *CPU, in *instruction, n uint16) int {
	c.regs.Set16(in.dst, c.regs.Get16(in.dst)-1)
	return 0
}

// addHL leaves Z untouched. H is the carry out of bit 11.
func addHL(c *CPU, in *instruction, n uint16) int {
	hl := c.regs.HL.Get()
	v := c.regs.Get16(in.src)
	sum := uint32(hl) + uint32(v)
	c.regs.setFlag(subFlag, false)
	c.regs.setFlag(halfCarryFlag, (hl&0x0FFF)+(v&0x0FFF) > 0x0FFF)
	c.regs.setFlag(carryFlag, sum > 0xFFFF)
	c.regs.HL.Set(uint16(sum))
	return 0
}

// The accumulator rotates always clear Z, unlike their CB counterparts.

func rlca(c *CPU, in *instruction, n uint16) int {
	a := c.regs.AF.Hi
	c.regs.AF.Hi = a<<1 | a>>7
	c.regs.setFlags(false, false, false, a&0x80 != 0)
	return 0
}

func rrca(c *CPU, in *instruction, n uint16) int {
	a := c.regs.AF.Hi
	c.regs.AF.Hi = a>>1 | a<<7
	c.regs.setFlags(false, false, false, a&0x01 != 0)
	return 0
}

func rla(c *CPU, in *instruction, n uint16) int {
	a := c.regs.AF.Hi
	c.regs.AF.Hi = a<<1 | c.regs.carryBit()
	c.regs.setFlags(false, false, false, a&0x80 != 0)
	return 0
}

func rra(c *CPU, in *instruction, n uint16) int {
	a := c.regs.AF.Hi
	c.regs.AF.Hi = a>>1 | c.regs.carryBit()<<7
	c.regs.setFlags(false, false, false, a&0x01 != 0)
	return 0
}

// daa corrects A into packed BCD after an addition or subtraction.
func daa(c *CPU, in *instruction, n uint16) int {
	a := c.regs.AF.Hi
	carry := c.regs.flag(carryFlag)
	if !c.regs.flag(subFlag) {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.regs.flag(halfCarryFlag) || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.regs.flag(halfCarryFlag) {
			a -= 0x06
		}
	}
	c.regs.AF.Hi = a
	c.regs.setFlag(zeroFlag, a == 0)
	c.regs.setFlag(halfCarryFlag, false)
	c.regs.setFlag(carryFlag, carry)
	return 0
}

func cpl(c *CPU, in *instruction, n uint16) int {
	c.regs.AF.Hi = ^c.regs.AF.Hi
	c.regs.setFlag(subFlag, true)
	c.regs.setFlag(halfCarryFlag, true)
	return 0
}

func scf(c *CPU, in *instruction, n uint16) int {
	c.regs.setFlag(subFlag, false)
	c.regs.setFlag(halfCarryFlag, false)
	c.regs.setFlag(carryFlag, true)
	return 0
}

func ccf(c *CPU, in *instruction, n uint16) int {
	c.regs.setFlag(subFlag, false)
	c.regs.setFlag(halfCarryFlag, false)
	c.regs.setFlag(carryFlag, !c.regs.flag(carryFlag))
	return 0
}

// shift applies a CB rotate or shift to op. Z follows the result, N and H
// are cleared, C is the bit shifted out.
func (c *CPU) shift(op Operand, f func(v uint8) (uint8, bool)) {
	result, carry := f(c.load8(op, 0))
	c.store8(op, 0, result)
	c.regs.setFlags(result == 0, false, false, carry)
}

func rlc(c *CPU, in *instruction, n uint16) int {
	c.shift(in.dst, func(v uint8) (uint8, bool) { return v<<1 | v>>7, v&0x80 != 0 })
	return 0
}

func rrc(c *CPU, in *instruction, n uint16) int {
	c.shift(in.dst, func(v uint8) (uint8, bool) { return v>>1 | v<<7, v&0x01 != 0 })
	return 0
}

func rl(c *CPU, in *instruction, n uint16) int {
	carry := c.regs.carryBit()
	c.shift(in.dst, func(v uint8) (uint8, bool) { return v<<1 | carry, v&0x80 != 0 })
	return 0
}

func rr(c *CPU, in *instruction, n uint16) int {
	carry := c.regs.carryBit()
	c.shift(in.dst, func(v uint8) (uint8, bool) { return v>>1 | carry<<7, v&0x01 != 0 })
	return 0
}

func sla(c *CPU, in *instruction, n uint16) int {
	c.shift(in.dst, func(v uint8) (uint8, bool) { return v << 1, v&0x80 != 0 })
	return 0
}

func sra(c *CPU, in *instruction, n uint16) int {
	c.shift(in.dst, func(v uint8) (uint8, bool) { return v>>1 | v&0x80, v&0x01 != 0 })
	return 0
}

func swap(c *CPU, in *instruction, n uint16) int {
	c.shift(in.dst, func(v uint8) (uint8, bool) { return v<<4 | v>>4, false })
	return 0
}

func srl(c *CPU, in *instruction, n uint16) int {
	c.shift(in.dst, func(v uint8) (uint8, bool) { return v >> 1, v&0x01 != 0 })
	return 0
}

//BIT b,r
func bitTest(c *CPU, in *instruction, n uint16) int {
	v := c.load8(in.dst, 0)
	c.regs.setFlag(zeroFlag, !bit.IsSet(in.lit, v))
	c.regs.setFlag(subFlag, false)
	c.regs.setFlag(halfCarryFlag, true)
	return 0
}

//RES b,r
func res(c *CPU, in *instruction, n uint16) int {
	c.store8(in.dst, 0, bit.Reset(in.lit, c.load8(in.dst, 0)))
	return 0
}

//SET b,r
func set(c *CPU, in *instruction, n uint16) int {
	c.store8(in.dst, 0, bit.Set(in.lit, c.load8(in.dst, 0)))
	return 0
}
