package cpu

// extra cycles of a taken conditional branch
const (
	jrTakenCycles   = 4
	jpTakenCycles   = 4
	callTakenCycles = 12
	retTakenCycles  = 12
)

func nop(c *CPU, in *instruction, n uint16) int {
	return 0
}

func ld8(c *CPU, in *instruction, n uint16) int {
	c.store8(in.dst, n, c.load8(in.src, n))
	return 0
}

func ld16(c *CPU, in *instruction, n uint16) int {
	c.regs.Set16(in.dst, c.load16(in.src, n))
	return 0
}

//LD (a16),SP
func storeSP(c *CPU, in *instruction, n uint16) int {
	c.write16(n, c.regs.SP)
	return 0
}

//LD HL,SP+r8
func ldHLSP(c *CPU, in *instruction, n uint16) int {
	c.regs.HL.Set(c.spOffset(n))
	return 0
}

//ADD SP,r8
func addSP(c *CPU, in *instruction, n uint16) int {
	c.regs.SP = c.spOffset(n)
	return 0
}

// spOffset adds a signed byte to SP. H and C come from the unsigned add of
// the low byte, Z and N are cleared.
func (c *CPU) spOffset(n uint16) uint16 {
	sp := c.regs.SP
	e := uint16(int8(uint8(n)))
	c.regs.setFlags(false, false, (sp&0x0F)+(e&0x0F) > 0x0F, (sp&0xFF)+(e&0xFF) > 0xFF)
	return sp + e
}

func push(c *CPU, in *instruction, n uint16) int {
	c.Push(c.regs.Get16(in.src))
	return 0
}

// pop into AF goes through Set16, which clears the low nibble of F.
func pop(c *CPU, in *instruction, n uint16) int {
	c.regs.Set16(in.dst, c.pop())
	return 0
}

func jr(c *CPU, in *instruction, n uint16) int {
	if !c.condition(in.dst) {
		return 0
	}
	c.regs.PC += uint16(int8(uint8(n)))
	if in.dst == None {
		return 0
	}
	return jrTakenCycles
}

func jp(c *CPU, in *instruction, n uint16) int {
	if !c.condition(in.dst) {
		return 0
	}
	c.regs.PC = n
	if in.dst == None {
		return 0
	}
	return jpTakenCycles
}

//JP (HL)
func jpHL(c *CPU, in *instruction, n uint16) int {
	c.regs.PC = c.regs.HL.Get()
	return 0
}

func call(c *CPU, in *instruction, n uint16) int {
	if !c.condition(in.dst) {
		return 0
	}
	c.Push(c.regs.PC)
	c.regs.PC = n
	if in.dst == None {
		return 0
	}
	return callTakenCycles
}

func ret(c *CPU, in *instruction, n uint16) int {
	if !c.condition(in.dst) {
		return 0
	}
	c.regs.PC = c.pop()
	if in.dst == None {
		return 0
	}
	return retTakenCycles
}

// reti returns and enables interrupts without the EI delay.
func reti(c *CPU, in *instruction, n uint16) int {
	c.regs.PC = c.pop()
	c.ic.SetIME(true)
	c.eiDelay = 0
	return 0
}

func rst(c *CPU, in *instruction, n uint16) int {
	c.Push(c.regs.PC)
	c.regs.PC = uint16(in.lit)
	return 0
}

func halt(c *CPU, in *instruction, n uint16) int {
	c.halted = true
	return 0
}

func stop(c *CPU, in *instruction, n uint16) int {
	c.stopped = true
	return 0
}

func di(c *CPU, in *instruction, n uint16) int {
	c.ic.SetIME(false)
	c.eiDelay = 0
	return 0
}

// ei enables interrupts once the following instruction has executed.
func ei(c *CPU, in *instruction, n uint16) int {
	if !c.ic.IME() && c.eiDelay == 0 {
		c.eiDelay = 2
	}
	return 0
}
