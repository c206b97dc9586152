package cpu

import "fmt"

// UnimplementedOpcodeError is returned by Step when the fetched opcode has no
// executor. PC is the address of the opcode (of the 0xCB prefix when
// Extended).
type UnimplementedOpcodeError struct {
	Opcode   uint8
	PC       uint16
	Extended bool
}

func (e *UnimplementedOpcodeError) Error() string {
	if e.Extended {
		return fmt.Sprintf("unimplemented opcode 0xCB 0x%02X at 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("unimplemented opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}
