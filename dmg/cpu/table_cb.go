package cpu

// cbTable holds the opcodes that follow the 0xCB prefix. Cycle counts include
// the prefix fetch.
var cbTable = [256]instruction{
	0x00: {"RLC B", rlc, RegB, None, 0, 8},
	0x01: {"RLC C", rlc, RegC, None, 0, 8},
	0x02: {"RLC D", rlc, RegD, None, 0, 8},
	0x03: {"RLC E", rlc, RegE, None, 0, 8},
	0x04: {"RLC H", rlc, RegH, None, 0, 8},
	0x05: {"RLC L", rlc, RegL, None, 0, 8},
	0x06: {"RLC (HL)", rlc, IndHL, None, 0, 16},
	0x07: {"RLC A", rlc, RegA, None, 0, 8},
	0x08: {"RRC B", rrc, RegB, None, 0, 8},
	0x09: {"RRC C", rrc, RegC, None, 0, 8},
	0x0A: {"RRC D", rrc, RegD, None, 0, 8},
	0x0B: {"RRC E", rrc, RegE, None, 0, 8},
	0x0C: {"RRC H", rrc, RegH, None, 0, 8},
	0x0D: {"RRC L", rrc, RegL, None, 0, 8},
	0x0E: {"RRC (HL)", rrc, IndHL, None, 0, 16},
	0x0F: {"RRC A", rrc, RegA, None, 0, 8},
	0x10: {"RL B", rl, RegB, None, 0, 8},
	0x11: {"RL C", rl, RegC, None, 0, 8},
	0x12: {"RL D", rl, RegD, None, 0, 8},
	0x13: {"RL E", rl, RegE, None, 0, 8},
	0x14: {"RL H", rl, RegH, None, 0, 8},
	0x15: {"RL L", rl, RegL, None, 0, 8},
	0x16: {"RL (HL)", rl, IndHL, None, 0, 16},
	0x17: {"RL A", rl, RegA, None, 0, 8},
	0x18: {"RR B", rr, RegB, None, 0, 8},
	0x19: {"RR C", rr, RegC, None, 0, 8},
	0x1A: {"RR D", rr, RegD, None, 0, 8},
	0x1B: {"RR E", rr, RegE, None, 0, 8},
	0x1C: {"RR H", rr, RegH, None, 0, 8},
	0x1D: {"RR L", rr, RegL, None, 0, 8},
	0x1E: {"RR (HL)", rr, IndHL, None, 0, 16},
	0x1F: {"RR A", rr, RegA, None, 0, 8},
	0x20: {"SLA B", sla, RegB, None, 0, 8},
	0x21: {"SLA C", sla, RegC, None, 0, 8},
	0x22: {"SLA D", sla, RegD, None, 0, 8},
	0x23: {"SLA E", sla, RegE, None, 0, 8},
	0x24: {"SLA H", sla, RegH, None, 0, 8},
	0x25: {"SLA L", sla, RegL, None, 0, 8},
	0x26: {"SLA (HL)", sla, IndHL, None, 0, 16},
	0x27: {"SLA A", sla, RegA, None, 0, 8},
	0x28: {"SRA B", sra, RegB, None, 0, 8},
	0x29: {"SRA C", sra, RegC, None, 0, 8},
	0x2A: {"SRA D", sra, RegD, None, 0, 8},
	0x2B: {"SRA E", sra, RegE, None, 0, 8},
	0x2C: {"SRA H", sra, RegH, None, 0, 8},
	0x2D: {"SRA L", sra, RegL, None, 0, 8},
	0x2E: {"SRA (HL)", sra, IndHL, None, 0, 16},
	0x2F: {"SRA A", sra, RegA, None, 0, 8},
	0x30: {"SWAP B", swap, RegB, None, 0, 8},
	0x31: {"SWAP C", swap, RegC, None, 0, 8},
	0x32: {"SWAP D", swap, RegD, None, 0, 8},
	0x33: {"SWAP E", swap, RegE, None, 0, 8},
	0x34: {"SWAP H", swap, RegH, None, 0, 8},
	0x35: {"SWAP L", swap, RegL, None, 0, 8},
	0x36: {"SWAP (HL)", swap, IndHL, None, 0, 16},
	0x37: {"SWAP A", swap, RegA, None, 0, 8},
	0x38: {"SRL B", srl, RegB, None, 0, 8},
	0x39: {"SRL C", srl, RegC, None, 0, 8},
	0x3A: {"SRL D", srl, RegD, None, 0, 8},
	0x3B: {"SRL E", srl, RegE, None, 0, 8},
	0x3C: {"SRL H", srl, RegH, None, 0, 8},
	0x3D: {"SRL L", srl, RegL, None, 0, 8},
	0x3E: {"SRL (HL)", srl, IndHL, None, 0, 16},
	0x3F: {"SRL A", srl, RegA, None, 0, 8},
	0x40: {"BIT 0,B", bitTest, RegB, None, 0, 8},
	0x41: {"BIT 0,C", bitTest, RegC, None, 0, 8},
	0x42: {"BIT 0,D", bitTest, RegD, None, 0, 8},
	0x43: {"BIT 0,E", bitTest, RegE, None, 0, 8},
	0x44: {"BIT 0,H", bitTest, RegH, None, 0, 8},
	0x45: {"BIT 0,L", bitTest, RegL, None, 0, 8},
	0x46: {"BIT 0,(HL)", bitTest, IndHL, None, 0, 12},
	0x47: {"BIT 0,A", bitTest, RegA, None, 0, 8},
	0x48: {"BIT 1,B", bitTest, RegB, None, 1, 8},
	0x49: {"BIT 1,C", bitTest, RegC, None, 1, 8},
	0x4A: {"BIT 1,D", bitTest, RegD, None, 1, 8},
	0x4B: {"BIT 1,E", bitTest, RegE, None, 1, 8},
	0x4C: {"BIT 1,H", bitTest, RegH, None, 1, 8},
	0x4D: {"BIT 1,L", bitTest, RegL, None, 1, 8},
	0x4E: {"BIT 1,(HL)", bitTest, IndHL, None, 1, 12},
	0x4F: {"BIT 1,A", bitTest, RegA, None, 1, 8},
	0x50: {"BIT 2,B", bitTest, RegB, None, 2, 8},
	0x51: {"BIT 2,C", bitTest, RegC, None, 2, 8},
	0x52: {"BIT 2,D", bitTest, RegD, None, 2, 8},
	0x53: {"BIT 2,E", bitTest, RegE, None, 2, 8},
	0x54: {"BIT 2,H", bitTest, RegH, None, 2, 8},
	0x55: {"BIT 2,L", bitTest, RegL, None, 2, 8},
	0x56: {"BIT 2,(HL)", bitTest, IndHL, None, 2, 12},
	0x57: {"BIT 2,A", bitTest, RegA, None, 2, 8},
	0x58: {"BIT 3,B", bitTest, RegB, None, 3, 8},
	0x59: {"BIT 3,C", bitTest, RegC, None, 3, 8},
	0x5A: {"BIT 3,D", bitTest, RegD, None, 3, 8},
	0x5B: {"BIT 3,E", bitTest, RegE, None, 3, 8},
	0x5C: {"BIT 3,H", bitTest, RegH, None, 3, 8},
	0x5D: {"BIT 3,L", bitTest, RegL, None, 3, 8},
	0x5E: {"BIT 3,(HL)", bitTest, IndHL, None, 3, 12},
	0x5F: {"BIT 3,A", bitTest, RegA, None, 3, 8},
	0x60: {"BIT 4,B", bitTest, RegB, None, 4, 8},
	0x61: {"BIT 4,C", bitTest, RegC, None, 4, 8},
	0x62: {"BIT 4,D", bitTest, RegD, None, 4, 8},
	0x63: {"BIT 4,E", bitTest, RegE, None, 4, 8},
	0x64: {"BIT 4,H", bitTest, RegH, None, 4, 8},
	0x65: {"BIT 4,L", bitTest, RegL, None, 4, 8},
	0x66: {"BIT 4,(HL)", bitTest, IndHL, None, 4, 12},
	0x67: {"BIT 4,A", bitTest, RegA, None, 4, 8},
	0x68: {"BIT 5,B", bitTest, RegB, None, 5, 8},
	0x69: {"BIT 5,C", bitTest, RegC, None, 5, 8},
	0x6A: {"BIT 5,D", bitTest, RegD, None, 5, 8},
	0x6B: {"BIT 5,E", bitTest, RegE, None, 5, 8},
	0x6C: {"BIT 5,H", bitTest, RegH, None, 5, 8},
	0x6D: {"BIT 5,L", bitTest, RegL, None, 5, 8},
	0x6E: {"BIT 5,(HL)", bitTest, IndHL, None, 5, 12},
	0x6F: {"BIT 5,A", bitTest, RegA, None, 5, 8},
	0x70: {"BIT 6,B", bitTest, RegB, None, 6, 8},
	0x71: {"BIT 6,C", bitTest, RegC, None, 6, 8},
	0x72: {"BIT 6,D", bitTest, RegD, None, 6, 8},
	0x73: {"BIT 6,E", bitTest, RegE, None, 6, 8},
	0x74: {"BIT 6,H", bitTest, RegH, None, 6, 8},
	0x75: {"BIT 6,L", bitTest, RegL, None, 6, 8},
	0x76: {"BIT 6,(HL)", bitTest, IndHL, None, 6, 12},
	0x77: {"BIT 6,A", bitTest, RegA, None, 6, 8},
	0x78: {"BIT 7,B", bitTest, RegB, None, 7, 8},
	0x79: {"BIT 7,C", bitTest, RegC, None, 7, 8},
	0x7A: {"BIT 7,D", bitTest, RegD, None, 7, 8},
	0x7B: {"BIT 7,E", bitTest, RegE, None, 7, 8},
	0x7C: {"BIT 7,H", bitTest, RegH, None, 7, 8},
	0x7D: {"BIT 7,L", bitTest, RegL, None, 7, 8},
	0x7E: {"BIT 7,(HL)", bitTest, IndHL, None, 7, 12},
	0x7F: {"BIT 7,A", bitTest, RegA, None, 7, 8},
	0x80: {"RES 0,B", res, RegB, None, 0, 8},
	0x81: {"RES 0,C", res, RegC, None, 0, 8},
	0x82: {"RES 0,D", res, RegD, None, 0, 8},
	0x83: {"RES 0,E", res, RegE, None, 0, 8},
	0x84: {"RES 0,H", res, RegH, None, 0, 8},
	0x85: {"RES 0,L", res, RegL, None, 0, 8},
	0x86: {"RES 0,(HL)", res, IndHL, None, 0, 16},
	0x87: {"RES 0,A", res, RegA, None, 0, 8},
	0x88: {"RES 1,B", res, RegB, None, 1, 8},
	0x89: {"RES 1,C", res, RegC, None, 1, 8},
	0x8A: {"RES 1,D", res, RegD, None, 1, 8},
	0x8B: {"RES 1,E", res, RegE, None, 1, 8},
	0x8C: {"RES 1,H", res, RegH, None, 1, 8},
	0x8D: {"RES 1,L", res, RegL, None, 1, 8},
	0x8E: {"RES 1,(HL)", res, IndHL, None, 1, 16},
	0x8F: {"RES 1,A", res, RegA, None, 1, 8},
	0x90: {"RES 2,B", res, RegB, None, 2, 8},
	0x91: {"RES 2,C", res, RegC, None, 2, 8},
	0x92: {"RES 2,D", res, RegD, None, 2, 8},
	0x93: {"RES 2,E", res, RegE, None, 2, 8},
	0x94: {"RES 2,H", res, RegH, None, 2, 8},
	0x95: {"RES 2,L", res, RegL, None, 2, 8},
	0x96: {"RES 2,(HL)", res, IndHL, None, 2, 16},
	0x97: {"RES 2,A", res, RegA, None, 2, 8},
	0x98: {"RES 3,B", res, RegB, None, 3, 8},
	0x99: {"RES 3,C", res, RegC, None, 3, 8},
	0x9A: {"RES 3,D", res, RegD, None, 3, 8},
	0x9B: {"RES 3,E", res, RegE, None, 3, 8},
	0x9C: {"RES 3,H", res, RegH, None, 3, 8},
	0x9D: {"RES 3,L", res, RegL, None, 3, 8},
	0x9E: {"RES 3,(HL)", res, IndHL, None, 3, 16},
	0x9F: {"RES 3,A", res, RegA, None, 3, 8},
	0xA0: {"RES 4,B", res, RegB, None, 4, 8},
	0xA1: {"RES 4,C", res, RegC, None, 4, 8},
	0xA2: {"RES 4,D", res, RegD, None, 4, 8},
	0xA3: {"RES 4,E", res, RegE, None, 4, 8},
	0xA4: {"RES 4,H", res, RegH, None, 4, 8},
	0xA5: {"RES 4,L", res, RegL, None, 4, 8},
	0xA6: {"RES 4,(HL)", res, IndHL, None, 4, 16},
	0xA7: {"RES 4,A", res, RegA, None, 4, 8},
	0xA8: {"RES 5,B", res, RegB, None, 5, 8},
	0xA9: {"RES 5,C", res, RegC, None, 5, 8},
	0xAA: {"RES 5,D", res, RegD, None, 5, 8},
	0xAB: {"RES 5,E", res, RegE, None, 5, 8},
	0xAC: {"RES 5,H", res, RegH, None, 5, 8},
	0xAD: {"RES 5,L", res, RegL, None, 5, 8},
	0xAE: {"RES 5,(HL)", res, IndHL, None, 5, 16},
	0xAF: {"RES 5,A", res, RegA, None, 5, 8},
	0xB0: {"RES 6,B", res, RegB, None, 6, 8},
	0xB1: {"RES 6,C", res, RegC, None, 6, 8},
	0xB2: {"RES 6,D", res, RegD, None, 6, 8},
	0xB3: {"RES 6,E", res, RegE, None, 6, 8},
	0xB4: {"RES 6,H", res, RegH, None, 6, 8},
	0xB5: {"RES 6,L", res, RegL, None, 6, 8},
	0xB6: {"RES 6,(HL)", res, IndHL, None, 6, 16},
	0xB7: {"RES 6,A", res, RegA, None, 6, 8},
	0xB8: {"RES 7,B", res, RegB, None, 7, 8},
	0xB9: {"RES 7,C", res, RegC, None, 7, 8},
	0xBA: {"RES 7,D", res, RegD, None, 7, 8},
	0xBB: {"RES 7,E", res, RegE, None, 7, 8},
	0xBC: {"RES 7,H", res, RegH, None, 7, 8},
	0xBD: {"RES 7,L", res, RegL, None, 7, 8},
	0xBE: {"RES 7,(HL)", res, IndHL, None, 7, 16},
	0xBF: {"RES 7,A", res, RegA, None, 7, 8},
	0xC0: {"SET 0,B", set, RegB, None, 0, 8},
	0xC1: {"SET 0,C", set, RegC, None, 0, 8},
	0xC2: {"SET 0,D", set, RegD, None, 0, 8},
	0xC3: {"SET 0,E", set, RegE, None, 0, 8},
	0xC4: {"SET 0,H", set, RegH, None, 0, 8},
	0xC5: {"SET 0,L", set, RegL, None, 0, 8},
	0xC6: {"SET 0,(HL)", set, IndHL, None, 0, 16},
	0xC7: {"SET 0,A", set, RegA, None, 0, 8},
	0xC8: {"SET 1,B", set, RegB, None, 1, 8},
	0xC9: {"SET 1,C", set, RegC, None, 1, 8},
	0xCA: {"SET 1,D", set, RegD, None, 1, 8},
	0xCB: {"SET 1,E", set, RegE, None, 1, 8},
	0xCC: {"SET 1,H", set, RegH, None, 1, 8},
	0xCD: {"SET 1,L", set, RegL, None, 1, 8},
	0xCE: {"SET 1,(HL)", set, IndHL, None, 1, 16},
	0xCF: {"SET 1,A", set, RegA, None, 1, 8},
	0xD0: {"SET 2,B", set, RegB, None, 2, 8},
	0xD1: {"SET 2,C", set, RegC, None, 2, 8},
	0xD2: {"SET 2,D", set, RegD, None, 2, 8},
	0xD3: {"SET 2,E", set, RegE, None, 2, 8},
	0xD4: {"SET 2,H", set, RegH, None, 2, 8},
	0xD5: {"SET 2,L", set, RegL, None, 2, 8},
	0xD6: {"SET 2,(HL)", set, IndHL, None, 2, 16},
	0xD7: {"SET 2,A", set, RegA, None, 2, 8},
	0xD8: {"SET 3,B", set, RegB, None, 3, 8},
	0xD9: {"SET 3,C", set, RegC, None, 3, 8},
	0xDA: {"SET 3,D", set, RegD, None, 3, 8},
	0xDB: {"SET 3,E", set, RegE, None, 3, 8},
	0xDC: {"SET 3,H", set, RegH, None, 3, 8},
	0xDD: {"SET 3,L", set, RegL, None, 3, 8},
	0xDE: {"SET 3,(HL)", set, IndHL, None, 3, 16},
	0xDF: {"SET 3,A", set, RegA, None, 3, 8},
	0xE0: {"SET 4,B", set, RegB, None, 4, 8},
	0xE1: {"SET 4,C", set, RegC, None, 4, 8},
	0xE2: {"SET 4,D", set, RegD, None, 4, 8},
	0xE3: {"SET 4,E", set, RegE, None, 4, 8},
	0xE4: {"SET 4,H", set, RegH, None, 4, 8},
	0xE5: {"SET 4,L", set, RegL, None, 4, 8},
	0xE6: {"SET 4,(HL)", set, IndHL, None, 4, 16},
	0xE7: {"SET 4,A", set, RegA, None, 4, 8},
	0xE8: {"SET 5,B", set, RegB, None, 5, 8},
	0xE9: {"SET 5,C", set, RegC, None, 5, 8},
	0xEA: {"SET 5,D", set, RegD, None, 5, 8},
	0xEB: {"SET 5,E", set, RegE, None, 5, 8},
	0xEC: {"SET 5,H", set, RegH, None, 5, 8},
	0xED: {"SET 5,L", set, RegL, None, 5, 8},
	0xEE: {"SET 5,(HL)", set, IndHL, None, 5, 16},
	0xEF: {"SET 5,A", set, RegA, None, 5, 8},
	0xF0: {"SET 6,B", set, RegB, None, 6, 8},
	0xF1: {"SET 6,C", set, RegC, None, 6, 8},
	0xF2: {"SET 6,D", set, RegD, None, 6, 8},
	0xF3: {"SET 6,E", set, RegE, None, 6, 8},
	0xF4: {"SET 6,H", set, RegH, None, 6, 8},
	0xF5: {"SET 6,L", set, RegL, None, 6, 8},
	0xF6: {"SET 6,(HL)", set, IndHL, None, 6, 16},
	0xF7: {"SET 6,A", set, RegA, None, 6, 8},
	0xF8: {"SET 7,B", set, RegB, None, 7, 8},
	0xF9: {"SET 7,C", set, RegC, None, 7, 8},
	0xFA: {"SET 7,D", set, RegD, None, 7, 8},
	0xFB: {"SET 7,E", set, RegE, None, 7, 8},
	0xFC: {"SET 7,H", set, RegH, None, 7, 8},
	0xFD: {"SET 7,L", set, RegL, None, 7, 8},
	0xFE: {"SET 7,(HL)", set, IndHL, None, 7, 16},
	0xFF: {"SET 7,A", set, RegA, None, 7, 8},
}
