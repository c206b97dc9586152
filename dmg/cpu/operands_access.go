package cpu

// address resolves a memory reference operand. (HL+) and (HL-) adjust HL.
func (c *CPU) address(op Operand, n uint16) uint16 {
	switch op {
	case IndBC:
		return c.regs.BC.Get()
	case IndDE:
		return c.regs.DE.Get()
	case IndHL:
		return c.regs.HL.Get()
	case IndHLInc:
		hl := c.regs.HL.Get()
		c.regs.HL.Set(hl + 1)
		return hl
	case IndHLDec:
		hl := c.regs.HL.Get()
		c.regs.HL.Set(hl - 1)
		return hl
	case IndC:
		return 0xFF00 | uint16(c.regs.BC.Lo)
	case IndImm8:
		return 0xFF00 | n&0xFF
	case IndImm16:
		return n
	}
	panic("not a memory operand: " + op.String())
}

func (c *CPU) load8(op Operand, n uint16) uint8 {
	switch op {
	case RegA, RegB, RegC, RegD, RegE, RegH, RegL:
		return *c.regs.Register(op)
	case Imm8:
		return uint8(n)
	}
	return c.bus.Read(c.address(op, n))
}

func (c *CPU) store8(op Operand, n uint16, value uint8) {
	switch op {
	case RegA, RegB, RegC, RegD, RegE, RegH, RegL:
		*c.regs.Register(op) = value
		return
	}
	c.bus.Write(c.address(op, n), value)
}

func (c *CPU) load16(op Operand, n uint16) uint16 {
	if op == Imm16 {
		return n
	}
	return c.regs.Get16(op)
}

// condition evaluates a branch condition. None always holds.
func (c *CPU) condition(op Operand) bool {
	switch op {
	case CondNZ:
		return !c.regs.flag(zeroFlag)
	case CondZ:
		return c.regs.flag(zeroFlag)
	case CondNC:
		return !c.regs.flag(carryFlag)
	case CondC:
		return c.regs.flag(carryFlag)
	}
	return true
}
