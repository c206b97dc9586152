package cpu

import (
	"fmt"
	"strings"

	"github.com/valerio/go-dmg/dmg/bit"
)

// Disassemble decodes the instruction at pc without executing it. It returns
// the instruction text and its length in bytes.
func Disassemble(bus Bus, pc uint16) (string, int) {
	opcode := bus.Read(pc)
	in := &baseTable[opcode]
	length := 1
	if opcode == 0xCB {
		in = &cbTable[bus.Read(pc+1)]
		length = 2
	}
	if in.exec == nil {
		return fmt.Sprintf("DB $%02X", opcode), length
	}

	var n uint16
	size := in.immediate().immediateSize()
	switch size {
	case 1:
		n = uint16(bus.Read(pc + uint16(length)))
	case 2:
		n = bit.Combine(bus.Read(pc+uint16(length)+1), bus.Read(pc+uint16(length)))
	}
	length += size
	return formatInstruction(in, n, pc+uint16(length)), length
}

// Name returns the label of an opcode.
func Name(opcode uint8, extended bool) string {
	in := &baseTable[opcode]
	if extended {
		in = &cbTable[opcode]
	}
	if in.exec == nil {
		return "UNDEFINED"
	}
	return in.name
}

// formatInstruction substitutes the immediate into the label. next is the
// address after the instruction, the base of relative jumps.
func formatInstruction(in *instruction, n uint16, next uint16) string {
	rel := fmt.Sprintf("%+d", int8(uint8(n)))
	if strings.HasPrefix(in.name, "JR") {
		rel = fmt.Sprintf("$%04X", next+uint16(int8(uint8(n))))
	}
	return strings.NewReplacer(
		"d16", fmt.Sprintf("$%04X", n),
		"a16", fmt.Sprintf("$%04X", n),
		"d8", fmt.Sprintf("$%02X", n),
		"a8", fmt.Sprintf("$FF%02X", n),
		"+r8", rel,
		"r8", rel,
	).Replace(in.name)
}
