package cpu

// baseTable holds the unprefixed opcodes. Entries with a nil exec are
// undefined on the LR35902; 0xCB is decoded by Step before the table lookup.
var baseTable = [256]instruction{
	0x00: {"NOP", nop, None, None, 0, 4},
	0x01: {"LD BC,d16", ld16, RegBC, Imm16, 0, 12},
	0x02: {"LD (BC),A", ld8, IndBC, RegA, 0, 8},
	0x03: {"INC BC", inc16, RegBC, None, 0, 8},
	0x04: {"INC B", inc8, RegB, None, 0, 4},
	0x05: {"DEC B", dec8, RegB, None, 0, 4},
	0x06: {"LD B,d8", ld8, RegB, Imm8, 0, 8},
	0x07: {"RLCA", rlca, RegA, None, 0, 4},
	0x08: {"LD (a16),SP", storeSP, IndImm16, RegSP, 0, 20},
	0x09: {"ADD HL,BC", addHL, RegHL, RegBC, 0, 8},
	0x0A: {"LD A,(BC)", ld8, RegA, IndBC, 0, 8},
	0x0B: {"DEC BC", dec16, RegBC, None, 0, 8},
	0x0C: {"INC C", inc8, RegC, None, 0, 4},
	0x0D: {"DEC C", dec8, RegC, None, 0, 4},
	0x0E: {"LD C,d8", ld8, RegC, Imm8, 0, 8},
	0x0F: {"RRCA", rrca, RegA, None, 0, 4},
	0x10: {"STOP", stop, None, Imm8, 0, 4},
	0x11: {"LD DE,d16", ld16, RegDE, Imm16, 0, 12},
	0x12: {"LD (DE),A", ld8, IndDE, RegA, 0, 8},
	0x13: {"INC DE", inc16, RegDE, None, 0, 8},
	0x14: {"INC D", inc8, RegD, None, 0, 4},
	0x15: {"DEC D", dec8, RegD, None, 0, 4},
	0x16: {"LD D,d8", ld8, RegD, Imm8, 0, 8},
	0x17: {"RLA", rla, RegA, None, 0, 4},
	0x18: {"JR r8", jr, None, Imm8, 0, 12},
	0x19: {"ADD HL,DE", addHL, RegHL, RegDE, 0, 8},
	0x1A: {"LD A,(DE)", ld8, RegA, IndDE, 0, 8},
	0x1B: {"DEC DE", dec16, RegDE, None, 0, 8},
	0x1C: {"INC E", inc8, RegE, None, 0, 4},
	0x1D: {"DEC E", dec8, RegE, None, 0, 4},
	0x1E: {"LD E,d8", ld8, RegE, Imm8, 0, 8},
	0x1F: {"RRA", rra, RegA, None, 0, 4},
	0x20: {"JR NZ,r8", jr, CondNZ, Imm8, 0, 8},
	0x21: {"LD HL,d16", ld16, RegHL, Imm16, 0, 12},
	0x22: {"LD (HL+),A", ld8, IndHLInc, RegA, 0, 8},
	0x23: {"INC HL", inc16, RegHL, None, 0, 8},
	0x24: {"INC H", inc8, RegH, None, 0, 4},
	0x25: {"DEC H", dec8, RegH, None, 0, 4},
	0x26: {"LD H,d8", ld8, RegH, Imm8, 0, 8},
	0x27: {"DAA", daa, RegA, None, 0, 4},
	0x28: {"JR Z,r8", jr, CondZ, Imm8, 0, 8},
	0x29: {"ADD HL,HL", addHL, RegHL, RegHL, 0, 8},
	0x2A: {"LD A,(HL+)", ld8, RegA, IndHLInc, 0, 8},
	0x2B: {"DEC HL", dec16, RegHL, None, 0, 8},
	0x2C: {"INC L", inc8, RegL, None, 0, 4},
	0x2D: {"DEC L", dec8, RegL, None, 0, 4},
	0x2E: {"LD L,d8", ld8, RegL, Imm8, 0, 8},
	0x2F: {"CPL", cpl, RegA, None, 0, 4},
	0x30: {"JR NC,r8", jr, CondNC, Imm8, 0, 8},
	0x31: {"LD SP,d16", ld16, RegSP, Imm16, 0, 12},
	0x32: {"LD (HL-),A", ld8, IndHLDec, RegA, 0, 8},
	0x33: {"INC SP", inc16, RegSP, None, 0, 8},
	0x34: {"INC (HL)", inc8, IndHL, None, 0, 12},
	0x35: {"DEC (HL)", dec8, IndHL, None, 0, 12},
	0x36: {"LD (HL),d8", ld8, IndHL, Imm8, 0, 12},
	0x37: {"SCF", scf, None, None, 0, 4},
	0x38: {"JR C,r8", jr, CondC, Imm8, 0, 8},
	0x39: {"ADD HL,SP", addHL, RegHL, RegSP, 0, 8},
	0x3A: {"LD A,(HL-)", ld8, RegA, IndHLDec, 0, 8},
	0x3B: {"DEC SP", dec16, RegSP, None, 0, 8},
	0x3C: {"INC A", inc8, RegA, None, 0, 4},
	0x3D: {"DEC A", dec8, RegA, None, 0, 4},
	0x3E: {"LD A,d8", ld8, RegA, Imm8, 0, 8},
	0x3F: {"CCF", ccf, None, None, 0, 4},
	0x40: {"LD B,B", ld8, RegB, RegB, 0, 4},
	0x41: {"LD B,C", ld8, RegB, RegC, 0, 4},
	0x42: {"LD B,D", ld8, RegB, RegD, 0, 4},
	0x43: {"LD B,E", ld8, RegB, RegE, 0, 4},
	0x44: {"LD B,H", ld8, RegB, RegH, 0, 4},
	0x45: {"LD B,L", ld8, RegB, RegL, 0, 4},
	0x46: {"LD B,(HL)", ld8, RegB, IndHL, 0, 8},
	0x47: {"LD B,A", ld8, RegB, RegA, 0, 4},
	0x48: {"LD C,B", ld8, RegC, RegB, 0, 4},
	0x49: {"LD C,C", ld8, RegC, RegC, 0, 4},
	0x4A: {"LD C,D", ld8, RegC, RegD, 0, 4},
	0x4B: {"LD C,E", ld8, RegC, RegE, 0, 4},
	0x4C: {"LD C,H", ld8, RegC, RegH, 0, 4},
	0x4D: {"LD C,L", ld8, RegC, RegL, 0, 4},
	0x4E: {"LD C,(HL)", ld8, RegC, IndHL, 0, 8},
	0x4F: {"LD C,A", ld8, RegC, RegA, 0, 4},
	0x50: {"LD D,B", ld8, RegD, RegB, 0, 4},
	0x51: {"LD D,C", ld8, RegD, RegC, 0, 4},
	0x52: {"LD D,D", ld8, RegD, RegD, 0, 4},
	0x53: {"LD D,E", ld8, RegD, RegE, 0, 4},
	0x54: {"LD D,H", ld8, RegD, RegH, 0, 4},
	0x55: {"LD D,L", ld8, RegD, RegL, 0, 4},
	0x56: {"LD D,(HL)", ld8, RegD, IndHL, 0, 8},
	0x57: {"LD D,A", ld8, RegD, RegA, 0, 4},
	0x58: {"LD E,B", ld8, RegE, RegB, 0, 4},
	0x59: {"LD E,C", ld8, RegE, RegC, 0, 4},
	0x5A: {"LD E,D", ld8, RegE, RegD, 0, 4},
	0x5B: {"LD E,E", ld8, RegE, RegE, 0, 4},
	0x5C: {"LD E,H", ld8, RegE, RegH, 0, 4},
	0x5D: {"LD E,L", ld8, RegE, RegL, 0, 4},
	0x5E: {"LD E,(HL)", ld8, RegE, IndHL, 0, 8},
	0x5F: {"LD E,A", ld8, RegE, RegA, 0, 4},
	0x60: {"LD H,B", ld8, RegH, RegB, 0, 4},
	0x61: {"LD H,C", ld8, RegH, RegC, 0, 4},
	0x62: {"LD H,D", ld8, RegH, RegD, 0, 4},
	0x63: {"LD H,E", ld8, RegH, RegE, 0, 4},
	0x64: {"LD H,H", ld8, RegH, RegH, 0, 4},
	0x65: {"LD H,L", ld8, RegH, RegL, 0, 4},
	0x66: {"LD H,(HL)", ld8, RegH, IndHL, 0, 8},
	0x67: {"LD H,A", ld8, RegH, RegA, 0, 4},
	0x68: {"LD L,B", ld8, RegL, RegB, 0, 4},
	0x69: {"LD L,C", ld8, RegL, RegC, 0, 4},
	0x6A: {"LD L,D", ld8, RegL, RegD, 0, 4},
	0x6B: {"LD L,E", ld8, RegL, RegE, 0, 4},
	0x6C: {"LD L,H", ld8, RegL, RegH, 0, 4},
	0x6D: {"LD L,L", ld8, RegL, RegL, 0, 4},
	0x6E: {"LD L,(HL)", ld8, RegL, IndHL, 0, 8},
	0x6F: {"LD L,A", ld8, RegL, RegA, 0, 4},
	0x70: {"LD (HL),B", ld8, IndHL, RegB, 0, 8},
	0x71: {"LD (HL),C", ld8, IndHL, RegC, 0, 8},
	0x72: {"LD (HL),D", ld8, IndHL, RegD, 0, 8},
	0x73: {"LD (HL),E", ld8, IndHL, RegE, 0, 8},
	0x74: {"LD (HL),H", ld8, IndHL, RegH, 0, 8},
	0x75: {"LD (HL),L", ld8, IndHL, RegL, 0, 8},
	0x76: {"HALT", halt, None, None, 0, 4},
	0x77: {"LD (HL),A", ld8, IndHL, RegA, 0, 8},
	0x78: {"LD A,B", ld8, RegA, RegB, 0, 4},
	0x79: {"LD A,C", ld8, RegA, RegC, 0, 4},
	0x7A: {"LD A,D", ld8, RegA, RegD, 0, 4},
	0x7B: {"LD A,E", ld8, RegA, RegE, 0, 4},
	0x7C: {"LD A,H", ld8, RegA, RegH, 0, 4},
	0x7D: {"LD A,L", ld8, RegA, RegL, 0, 4},
	0x7E: {"LD A,(HL)", ld8, RegA, IndHL, 0, 8},
	0x7F: {"LD A,A", ld8, RegA, RegA, 0, 4},
	0x80: {"ADD A,B", add8, RegA, RegB, 0, 4},
	0x81: {"ADD A,C", add8, RegA, RegC, 0, 4},
	0x82: {"ADD A,D", add8, RegA, RegD, 0, 4},
	0x83: {"ADD A,E", add8, RegA, RegE, 0, 4},
	0x84: {"ADD A,H", add8, RegA, RegH, 0, 4},
	0x85: {"ADD A,L", add8, RegA, RegL, 0, 4},
	0x86: {"ADD A,(HL)", add8, RegA, IndHL, 0, 8},
	0x87: {"ADD A,A", add8, RegA, RegA, 0, 4},
	0x88: {"ADC A,B", adc8, RegA, RegB, 0, 4},
	0x89: {"ADC A,C", adc8, RegA, RegC, 0, 4},
	0x8A: {"ADC A,D", adc8, RegA, RegD, 0, 4},
	0x8B: {"ADC A,E", adc8, RegA, RegE, 0, 4},
	0x8C: {"ADC A,H", adc8, RegA, RegH, 0, 4},
	0x8D: {"ADC A,L", adc8, RegA, RegL, 0, 4},
	0x8E: {"ADC A,(HL)", adc8, RegA, IndHL, 0, 8},
	0x8F: {"ADC A,A", adc8, RegA, RegA, 0, 4},
	0x90: {"SUB B", sub8, RegA, RegB, 0, 4},
	0x91: {"SUB C", sub8, RegA, RegC, 0, 4},
	0x92: {"SUB D", sub8, RegA, RegD, 0, 4},
	0x93: {"SUB E", sub8, RegA, RegE, 0, 4},
	0x94: {"SUB H", sub8, RegA, RegH, 0, 4},
	0x95: {"SUB L", sub8, RegA, RegL, 0, 4},
	0x96: {"SUB (HL)", sub8, RegA, IndHL, 0, 8},
	0x97: {"SUB A", sub8, RegA, RegA, 0, 4},
	0x98: {"SBC A,B", sbc8, RegA, RegB, 0, 4},
	0x99: {"SBC A,C", sbc8, RegA, RegC, 0, 4},
	0x9A: {"SBC A,D", sbc8, RegA, RegD, 0, 4},
	0x9B: {"SBC A,E", sbc8, RegA, RegE, 0, 4},
	0x9C: {"SBC A,H", sbc8, RegA, RegH, 0, 4},
	0x9D: {"SBC A,L", sbc8, RegA, RegL, 0, 4},
	0x9E: {"SBC A,(HL)", sbc8, RegA, IndHL, 0, 8},
	0x9F: {"SBC A,A", sbc8, RegA, RegA, 0, 4},
	0xA0: {"AND B", and8, RegA, RegB, 0, 4},
	0xA1: {"AND C", and8, RegA, RegC, 0, 4},
	0xA2: {"AND D", and8, RegA, RegD, 0, 4},
	0xA3: {"AND E", and8, RegA, RegE, 0, 4},
	0xA4: {"AND H", and8, RegA, RegH, 0, 4},
	0xA5: {"AND L", and8, RegA, RegL, 0, 4},
	0xA6: {"AND (HL)", and8, RegA, IndHL, 0, 8},
	0xA7: {"AND A", and8, RegA, RegA, 0, 4},
	0xA8: {"XOR B", xor8, RegA, RegB, 0, 4},
	0xA9: {"XOR C", xor8, RegA, RegC, 0, 4},
	0xAA: {"XOR D", xor8, RegA, RegD, 0, 4},
	0xAB: {"XOR E", xor8, RegA, RegE, 0, 4},
	0xAC: {"XOR H", xor8, RegA, RegH, 0, 4},
	0xAD: {"XOR L", xor8, RegA, RegL, 0, 4},
	0xAE: {"XOR (HL)", xor8, RegA, IndHL, 0, 8},
	0xAF: {"XOR A", xor8, RegA, RegA, 0, 4},
	0xB0: {"OR B", or8, RegA, RegB, 0, 4},
	0xB1: {"OR C", or8, RegA, RegC, 0, 4},
	0xB2: {"OR D", or8, RegA, RegD, 0, 4},
	0xB3: {"OR E", or8, RegA, RegE, 0, 4},
	0xB4: {"OR H", or8, RegA, RegH, 0, 4},
	0xB5: {"OR L", or8, RegA, RegL, 0, 4},
	0xB6: {"OR (HL)", or8, RegA, IndHL, 0, 8},
	0xB7: {"OR A", or8, RegA, RegA, 0, 4},
	0xB8: {"CP B", cp8, RegA, RegB, 0, 4},
	0xB9: {"CP C", cp8, RegA, RegC, 0, 4},
	0xBA: {"CP D", cp8, RegA, RegD, 0, 4},
	0xBB: {"CP E", cp8, RegA, RegE, 0, 4},
	0xBC: {"CP H", cp8, RegA, RegH, 0, 4},
	0xBD: {"CP L", cp8, RegA, RegL, 0, 4},
	0xBE: {"CP (HL)", cp8, RegA, IndHL, 0, 8},
	0xBF: {"CP A", cp8, RegA, RegA, 0, 4},
	0xC0: {"RET NZ", ret, CondNZ, None, 0, 8},
	0xC1: {"POP BC", pop, RegBC, None, 0, 12},
	0xC2: {"JP NZ,a16", jp, CondNZ, Imm16, 0, 12},
	0xC3: {"JP a16", jp, None, Imm16, 0, 16},
	0xC4: {"CALL NZ,a16", call, CondNZ, Imm16, 0, 12},
	0xC5: {"PUSH BC", push, None, RegBC, 0, 16},
	0xC6: {"ADD A,d8", add8, RegA, Imm8, 0, 8},
	0xC7: {"RST 00H", rst, None, None, 0, 16},
	0xC8: {"RET Z", ret, CondZ, None, 0, 8},
	0xC9: {"RET", ret, None, None, 0, 16},
	0xCA: {"JP Z,a16", jp, CondZ, Imm16, 0, 12},
	0xCC: {"CALL Z,a16", call, CondZ, Imm16, 0, 12},
	0xCD: {"CALL a16", call, None, Imm16, 0, 24},
	0xCE: {"ADC A,d8", adc8, RegA, Imm8, 0, 8},
	0xCF: {"RST 08H", rst, None, None, 8, 16},
	0xD0: {"RET NC", ret, CondNC, None, 0, 8},
	0xD1: {"POP DE", pop, RegDE, None, 0, 12},
	0xD2: {"JP NC,a16", jp, CondNC, Imm16, 0, 12},
	0xD4: {"CALL NC,a16", call, CondNC, Imm16, 0, 12},
	0xD5: {"PUSH DE", push, None, RegDE, 0, 16},
	0xD6: {"SUB d8", sub8, RegA, Imm8, 0, 8},
	0xD7: {"RST 10H", rst, None, None, 16, 16},
	0xD8: {"RET C", ret, CondC, None, 0, 8},
	0xD9: {"RETI", reti, None, None, 0, 16},
	0xDA: {"JP C,a16", jp, CondC, Imm16, 0, 12},
	0xDC: {"CALL C,a16", call, CondC, Imm16, 0, 12},
	0xDE: {"SBC A,d8", sbc8, RegA, Imm8, 0, 8},
	0xDF: {"RST 18H", rst, None, None, 24, 16},
	0xE0: {"LDH (a8),A", ld8, IndImm8, RegA, 0, 12},
	0xE1: {"POP HL", pop, RegHL, None, 0, 12},
	0xE2: {"LD (C),A", ld8, IndC, RegA, 0, 8},
	0xE5: {"PUSH HL", push, None, RegHL, 0, 16},
	0xE6: {"AND d8", and8, RegA, Imm8, 0, 8},
	0xE7: {"RST 20H", rst, None, None, 32, 16},
	0xE8: {"ADD SP,r8", addSP, RegSP, Imm8, 0, 16},
	0xE9: {"JP (HL)", jpHL, None, RegHL, 0, 4},
	0xEA: {"LD (a16),A", ld8, IndImm16, RegA, 0, 16},
	0xEE: {"XOR d8", xor8, RegA, Imm8, 0, 8},
	0xEF: {"RST 28H", rst, None, None, 40, 16},
	0xF0: {"LDH A,(a8)", ld8, RegA, IndImm8, 0, 12},
	0xF1: {"POP AF", pop, RegAF, None, 0, 12},
	0xF2: {"LD A,(C)", ld8, RegA, IndC, 0, 8},
	0xF3: {"DI", di, None, None, 0, 4},
	0xF5: {"PUSH AF", push, None, RegAF, 0, 16},
	0xF6: {"OR d8", or8, RegA, Imm8, 0, 8},
	0xF7: {"RST 30H", rst, None, None, 48, 16},
	0xF8: {"LD HL,SP+r8", ldHLSP, RegHL, Imm8, 0, 12},
	0xF9: {"LD SP,HL", ld16, RegSP, RegHL, 0, 8},
	0xFA: {"LD A,(a16)", ld8, RegA, IndImm16, 0, 16},
	0xFB: {"EI", ei, None, None, 0, 4},
	0xFE: {"CP d8", cp8, RegA, Imm8, 0, 8},
	0xFF: {"RST 38H", rst, None, None, 56, 16},
}
