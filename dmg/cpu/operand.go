package cpu

// Operand describes what an instruction reads or writes: a register, a
// memory reference, an immediate fetched after the opcode, or a branch
// condition.
type Operand uint8

const (
	None Operand = iota

	RegA
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL

	RegAF
	RegBC
	RegDE
	RegHL
	RegSP

	IndBC
	IndDE
	IndHL
	IndHLInc
	IndHLDec
	// IndC addresses 0xFF00+C.
	IndC

	// Imm8 is one byte read at PC.
	Imm8
	// Imm16 is a little endian word read at PC.
	Imm16
	// IndImm8 addresses 0xFF00+n, n read at PC.
	IndImm8
	// IndImm16 addresses the word read at PC.
	IndImm16

	CondNZ
	CondZ
	CondNC
	CondC
)

var operandNames = [...]string{
	None:     "-",
	RegA:     "A",
	RegB:     "B",
	RegC:     "C",
	RegD:     "D",
	RegE:     "E",
	RegH:     "H",
	RegL:     "L",
	RegAF:    "AF",
	RegBC:    "BC",
	RegDE:    "DE",
	RegHL:    "HL",
	RegSP:    "SP",
	IndBC:    "(BC)",
	IndDE:    "(DE)",
	IndHL:    "(HL)",
	IndHLInc: "(HL+)",
	IndHLDec: "(HL-)",
	IndC:     "(C)",
	Imm8:     "d8",
	Imm16:    "d16",
	IndImm8:  "(a8)",
	IndImm16: "(a16)",
	CondNZ:   "NZ",
	CondZ:    "Z",
	CondNC:   "NC",
	CondC:    "C",
}

func (o Operand) String() string {
	if int(o) < len(operandNames) {
		return operandNames[o]
	}
	return "?"
}

// immediateSize is the number of bytes fetched after the opcode.
func (o Operand) immediateSize() int {
	switch o {
	case Imm8, IndImm8:
		return 1
	case Imm16, IndImm16:
		return 2
	}
	return 0
}

func (o Operand) isCondition() bool {
	return o >= CondNZ && o <= CondC
}
