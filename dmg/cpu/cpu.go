// Package cpu implements the Sharp LR35902 core: the register file and a
// fetch/decode/execute loop driven by the descriptor tables in table.go and
// table_cb.go.
package cpu

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
	"github.com/valerio/go-dmg/dmg/interrupt"
)

// haltedCycles is what a step costs while the CPU waits for an interrupt.
const haltedCycles = 4

// Bus is the memory seen by the CPU.
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// executor runs an instruction. n is the immediate fetched for the
// instruction, if any. The result is added to the instruction's base cycles,
// it is non zero only for taken conditional branches.
type executor func(c *CPU, in *instruction, n uint16) int

type instruction struct {
	name   string
	exec   executor
	dst    Operand
	src    Operand
	lit    uint8
	cycles int
}

// immediate returns the operand that needs bytes fetched after the opcode.
func (in *instruction) immediate() Operand {
	if in.dst.immediateSize() > 0 {
		return in.dst
	}
	return in.src
}

// CPU is the LR35902 state. It is not safe for concurrent use.
type CPU struct {
	regs Registers

	halted  bool
	stopped bool
	// eiDelay counts the instructions left until EI takes effect.
	eiDelay int

	bus Bus
	ic  *interrupt.Controller

	trace  bool
	cycles uint64
}

// New returns a CPU in the state the boot ROM leaves behind.
func New(bus Bus, ic *interrupt.Controller) *CPU {
	c := &CPU{bus: bus, ic: ic}
	c.Reset()
	return c
}

// Reset loads the post boot register values with execution at 0x0100.
func (c *CPU) Reset() {
	c.regs = Registers{}
	c.regs.SetAF(0x01B0)
	c.regs.BC.Set(0x0013)
	c.regs.DE.Set(0x00D8)
	c.regs.HL.Set(0x014D)
	c.regs.SP = 0xFFFE
	c.regs.PC = addr.CartEntryPoint
	c.clearState()
}

// ResetForBoot clears all registers with execution at 0x0000, where the boot
// ROM overlay is mapped.
func (c *CPU) ResetForBoot() {
	c.regs = Registers{}
	c.clearState()
}

func (c *CPU) clearState() {
	c.halted = false
	c.stopped = false
	c.eiDelay = 0
	c.cycles = 0
	c.ic.SetIME(false)
}

// SetTrace logs every executed instruction at debug level.
func (c *CPU) SetTrace(on bool) {
	c.trace = on
}

// Step executes one instruction and returns the cycles it took. A halted or
// stopped CPU does not fetch and costs 4 cycles.
func (c *CPU) Step() (int, error) {
	if !c.awake() {
		c.cycles += haltedCycles
		return haltedCycles, nil
	}

	pc := c.regs.PC
	opcode := c.fetch8()
	in := &baseTable[opcode]
	extended := opcode == 0xCB
	if extended {
		opcode = c.fetch8()
		in = &cbTable[opcode]
	}
	if in.exec == nil {
		c.regs.PC = pc
		return 0, &UnimplementedOpcodeError{Opcode: opcode, PC: pc, Extended: extended}
	}

	var n uint16
	switch in.immediate().immediateSize() {
	case 1:
		n = uint16(c.fetch8())
	case 2:
		n = c.fetch16()
	}

	if c.trace {
		slog.Debug("exec", "pc", fmt.Sprintf("0x%04X", pc), "op", formatInstruction(in, n, c.regs.PC), "af", fmt.Sprintf("0x%04X", c.regs.AF.Get()))
	}

	cycles := in.cycles + in.exec(c, in, n)
	c.applyEIDelay()
	c.cycles += uint64(cycles)
	return cycles, nil
}

// awake handles the halted and stopped states. HALT ends as soon as an
// enabled interrupt is pending, whether or not IME is set. STOP ends on a
// joypad request.
func (c *CPU) awake() bool {
	if c.halted {
		if c.ic.Pending() == 0 {
			return false
		}
		c.halted = false
	}
	if c.stopped {
		if c.bus.Read(addr.IF)&byte(addr.JoypadInterrupt) == 0 {
			return false
		}
		c.stopped = false
	}
	return true
}

func (c *CPU) applyEIDelay() {
	if c.eiDelay == 0 {
		return
	}
	c.eiDelay--
	if c.eiDelay == 0 {
		c.ic.SetIME(true)
	}
}

func (c *CPU) fetch8() uint8 {
	v := c.bus.Read(c.regs.PC)
	c.regs.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	low := c.fetch8()
	high := c.fetch8()
	return bit.Combine(high, low)
}

func (c *CPU) read16(address uint16) uint16 {
	return bit.Combine(c.bus.Read(address+1), c.bus.Read(address))
}

func (c *CPU) write16(address uint16, value uint16) {
	c.bus.Write(address, bit.Low(value))
	c.bus.Write(address+1, bit.High(value))
}

// Push decrements SP by two and stores value there.
func (c *CPU) Push(value uint16) {
	c.regs.SP -= 2
	c.write16(c.regs.SP, value)
}

func (c *CPU) pop() uint16 {
	v := c.read16(c.regs.SP)
	c.regs.SP += 2
	return v
}

// PC returns the program counter.
func (c *CPU) PC() uint16 {
	return c.regs.PC
}

// SetPC jumps to pc.
func (c *CPU) SetPC(pc uint16) {
	c.regs.PC = pc
}

// Wake leaves the halted state.
func (c *CPU) Wake() {
	c.halted = false
}

// Registers exposes the register file.
func (c *CPU) Registers() *Registers {
	return &c.regs
}

// Halted reports whether HALT is waiting for an interrupt.
func (c *CPU) Halted() bool {
	return c.halted
}

// Stopped reports whether STOP is waiting for a button press.
func (c *CPU) Stopped() bool {
	return c.stopped
}

// Cycles returns the cycles executed since the last reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// FlagString renders F as "ZNHC" with '-' for cleared flags.
func (c *CPU) FlagString() string {
	out := []byte("----")
	for i, f := range []Flag{zeroFlag, subFlag, halfCarryFlag, carryFlag} {
		if c.regs.flag(f) {
			out[i] = "ZNHC"[i]
		}
	}
	return string(out)
}
