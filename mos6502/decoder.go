package mos6502

import "github.com/nes6502/core/mem"

// addrMode identifies how many operand bytes follow an opcode and how
// those bytes are assembled into an Operand.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modePreIndexedIndirect
	modePostIndexedIndirect
	modeRelative
	modeJSRTarget
)

type opcodeEntry struct {
	mnemonic Mnemonic
	mode     addrMode
}

// opcodeTable maps every one of the 256 possible opcode bytes to its
// mnemonic and addressing mode, official and unofficial alike. Entries
// left at the zero value are never reached: every byte 0x00-0xFF is
// assigned below.
var opcodeTable = [256]opcodeEntry{
	0x00: {BRK, modeImplied}, 0x01: {ORA, modePreIndexedIndirect}, 0x02: {HLT, modeImplied}, 0x03: {SLO, modePreIndexedIndirect},
	0x04: {IGN, modeZeroPage}, 0x05: {ORA, modeZeroPage}, 0x06: {ASL, modeZeroPage}, 0x07: {SLO, modeZeroPage},
	0x08: {PHP, modeImplied}, 0x09: {ORA, modeImmediate}, 0x0A: {ASL, modeAccumulator}, 0x0B: {ANC, modeImmediate},
	0x0C: {IGN, modeAbsolute}, 0x0D: {ORA, modeAbsolute}, 0x0E: {ASL, modeAbsolute}, 0x0F: {SLO, modeAbsolute},

	0x10: {BPL, modeRelative}, 0x11: {ORA, modePostIndexedIndirect}, 0x12: {HLT, modeImplied}, 0x13: {SLO, modePostIndexedIndirect},
	0x14: {IGN, modeZeroPageX}, 0x15: {ORA, modeZeroPageX}, 0x16: {ASL, modeZeroPageX}, 0x17: {SLO, modeZeroPageX},
	0x18: {CLC, modeImplied}, 0x19: {ORA, modeAbsoluteY}, 0x1A: {NOPX, modeImplied}, 0x1B: {SLO, modeAbsoluteY},
	0x1C: {IGN, modeAbsoluteX}, 0x1D: {ORA, modeAbsoluteX}, 0x1E: {ASL, modeAbsoluteX}, 0x1F: {SLO, modeAbsoluteX},

	0x20: {JSR, modeJSRTarget}, 0x21: {AND, modePreIndexedIndirect}, 0x22: {HLT, modeImplied}, 0x23: {RLA, modePreIndexedIndirect},
	0x24: {BIT, modeZeroPage}, 0x25: {AND, modeZeroPage}, 0x26: {ROL, modeZeroPage}, 0x27: {RLA, modeZeroPage},
	0x28: {PLP, modeImplied}, 0x29: {AND, modeImmediate}, 0x2A: {ROL, modeAccumulator}, 0x2B: {ANC, modeImmediate},
	0x2C: {BIT, modeAbsolute}, 0x2D: {AND, modeAbsolute}, 0x2E: {ROL, modeAbsolute}, 0x2F: {RLA, modeAbsolute},

	0x30: {BMI, modeRelative}, 0x31: {AND, modePostIndexedIndirect}, 0x32: {HLT, modeImplied}, 0x33: {RLA, modePostIndexedIndirect},
	0x34: {IGN, modeZeroPageX}, 0x35: {AND, modeZeroPageX}, 0x36: {ROL, modeZeroPageX}, 0x37: {RLA, modeZeroPageX},
	0x38: {SEC, modeImplied}, 0x39: {AND, modeAbsoluteY}, 0x3A: {NOPX, modeImplied}, 0x3B: {RLA, modeAbsoluteY},
	0x3C: {IGN, modeAbsoluteX}, 0x3D: {AND, modeAbsoluteX}, 0x3E: {ROL, modeAbsoluteX}, 0x3F: {RLA, modeAbsoluteX},

	0x40: {RTI, modeImplied}, 0x41: {EOR, modePreIndexedIndirect}, 0x42: {HLT, modeImplied}, 0x43: {SRE, modePreIndexedIndirect},
	0x44: {IGN, modeZeroPage}, 0x45: {EOR, modeZeroPage}, 0x46: {LSR, modeZeroPage}, 0x47: {SRE, modeZeroPage},
	0x48: {PHA, modeImplied}, 0x49: {EOR, modeImmediate}, 0x4A: {LSR, modeAccumulator}, 0x4B: {ALR, modeImmediate},
	0x4C: {JMP, modeAbsolute}, 0x4D: {EOR, modeAbsolute}, 0x4E: {LSR, modeAbsolute}, 0x4F: {SRE, modeAbsolute},

	0x50: {BVC, modeRelative}, 0x51: {EOR, modePostIndexedIndirect}, 0x52: {HLT, modeImplied}, 0x53: {SRE, modePostIndexedIndirect},
	0x54: {IGN, modeZeroPageX}, 0x55: {EOR, modeZeroPageX}, 0x56: {LSR, modeZeroPageX}, 0x57: {SRE, modeZeroPageX},
	0x58: {CLI, modeImplied}, 0x59: {EOR, modeAbsoluteY}, 0x5A: {NOPX, modeImplied}, 0x5B: {SRE, modeAbsoluteY},
	0x5C: {IGN, modeAbsoluteX}, 0x5D: {EOR, modeAbsoluteX}, 0x5E: {LSR, modeAbsoluteX}, 0x5F: {SRE, modeAbsoluteX},

	0x60: {RTS, modeImplied}, 0x61: {ADC, modePreIndexedIndirect}, 0x62: {HLT, modeImplied}, 0x63: {RRA, modePreIndexedIndirect},
	0x64: {IGN, modeZeroPage}, 0x65: {ADC, modeZeroPage}, 0x66: {ROR, modeZeroPage}, 0x67: {RRA, modeZeroPage},
	0x68: {PLA, modeImplied}, 0x69: {ADC, modeImmediate}, 0x6A: {ROR, modeAccumulator}, 0x6B: {ARR, modeImmediate},
	0x6C: {JMP, modeIndirect}, 0x6D: {ADC, modeAbsolute}, 0x6E: {ROR, modeAbsolute}, 0x6F: {RRA, modeAbsolute},

	0x70: {BVS, modeRelative}, 0x71: {ADC, modePostIndexedIndirect}, 0x72: {HLT, modeImplied}, 0x73: {RRA, modePostIndexedIndirect},
	0x74: {IGN, modeZeroPageX}, 0x75: {ADC, modeZeroPageX}, 0x76: {ROR, modeZeroPageX}, 0x77: {RRA, modeZeroPageX},
	0x78: {SEI, modeImplied}, 0x79: {ADC, modeAbsoluteY}, 0x7A: {NOPX, modeImplied}, 0x7B: {RRA, modeAbsoluteY},
	0x7C: {IGN, modeAbsoluteX}, 0x7D: {ADC, modeAbsoluteX}, 0x7E: {ROR, modeAbsoluteX}, 0x7F: {RRA, modeAbsoluteX},

	0x80: {SKB, modeImmediate}, 0x81: {STA, modePreIndexedIndirect}, 0x82: {SKB, modeImmediate}, 0x83: {SAX, modePreIndexedIndirect},
	0x84: {STY, modeZeroPage}, 0x85: {STA, modeZeroPage}, 0x86: {STX, modeZeroPage}, 0x87: {SAX, modeZeroPage},
	0x88: {DEY, modeImplied}, 0x89: {SKB, modeImmediate}, 0x8A: {TXA, modeImplied}, 0x8B: {XAA, modeImmediate},
	0x8C: {STY, modeAbsolute}, 0x8D: {STA, modeAbsolute}, 0x8E: {STX, modeAbsolute}, 0x8F: {SAX, modeAbsolute},

	0x90: {BCC, modeRelative}, 0x91: {STA, modePostIndexedIndirect}, 0x92: {HLT, modeImplied}, 0x93: {AHX, modePostIndexedIndirect},
	0x94: {STY, modeZeroPageX}, 0x95: {STA, modeZeroPageX}, 0x96: {STX, modeZeroPageY}, 0x97: {SAX, modeZeroPageY},
	0x98: {TYA, modeImplied}, 0x99: {STA, modeAbsoluteY}, 0x9A: {TXS, modeImplied}, 0x9B: {TAS, modeAbsoluteY},
	0x9C: {SHY, modeAbsoluteX}, 0x9D: {STA, modeAbsoluteX}, 0x9E: {SHX, modeAbsoluteY}, 0x9F: {AHX, modeAbsoluteY},

	0xA0: {LDY, modeImmediate}, 0xA1: {LDA, modePreIndexedIndirect}, 0xA2: {LDX, modeImmediate}, 0xA3: {LAX, modePreIndexedIndirect},
	0xA4: {LDY, modeZeroPage}, 0xA5: {LDA, modeZeroPage}, 0xA6: {LDX, modeZeroPage}, 0xA7: {LAX, modeZeroPage},
	0xA8: {TAY, modeImplied}, 0xA9: {LDA, modeImmediate}, 0xAA: {TAX, modeImplied}, 0xAB: {LAX, modeImmediate},
	0xAC: {LDY, modeAbsolute}, 0xAD: {LDA, modeAbsolute}, 0xAE: {LDX, modeAbsolute}, 0xAF: {LAX, modeAbsolute},

	0xB0: {BCS, modeRelative}, 0xB1: {LDA, modePostIndexedIndirect}, 0xB2: {HLT, modeImplied}, 0xB3: {LAX, modePostIndexedIndirect},
	0xB4: {LDY, modeZeroPageX}, 0xB5: {LDA, modeZeroPageX}, 0xB6: {LDX, modeZeroPageY}, 0xB7: {LAX, modeZeroPageY},
	0xB8: {CLV, modeImplied}, 0xB9: {LDA, modeAbsoluteY}, 0xBA: {TSX, modeImplied}, 0xBB: {LAS, modeAbsoluteY},
	0xBC: {LDY, modeAbsoluteX}, 0xBD: {LDA, modeAbsoluteX}, 0xBE: {LDX, modeAbsoluteY}, 0xBF: {LAX, modeAbsoluteY},

	0xC0: {CPY, modeImmediate}, 0xC1: {CMP, modePreIndexedIndirect}, 0xC2: {SKB, modeImmediate}, 0xC3: {DCP, modePreIndexedIndirect},
	0xC4: {CPY, modeZeroPage}, 0xC5: {CMP, modeZeroPage}, 0xC6: {DEC, modeZeroPage}, 0xC7: {DCP, modeZeroPage},
	0xC8: {INY, modeImplied}, 0xC9: {CMP, modeImmediate}, 0xCA: {DEX, modeImplied}, 0xCB: {AXS, modeImmediate},
	0xCC: {CPY, modeAbsolute}, 0xCD: {CMP, modeAbsolute}, 0xCE: {DEC, modeAbsolute}, 0xCF: {DCP, modeAbsolute},

	0xD0: {BNE, modeRelative}, 0xD1: {CMP, modePostIndexedIndirect}, 0xD2: {HLT, modeImplied}, 0xD3: {DCP, modePostIndexedIndirect},
	0xD4: {IGN, modeZeroPageX}, 0xD5: {CMP, modeZeroPageX}, 0xD6: {DEC, modeZeroPageX}, 0xD7: {DCP, modeZeroPageX},
	0xD8: {CLD, modeImplied}, 0xD9: {CMP, modeAbsoluteY}, 0xDA: {NOPX, modeImplied}, 0xDB: {DCP, modeAbsoluteY},
	0xDC: {IGN, modeAbsoluteX}, 0xDD: {CMP, modeAbsoluteX}, 0xDE: {DEC, modeAbsoluteX}, 0xDF: {DCP, modeAbsoluteX},

	0xE0: {CPX, modeImmediate}, 0xE1: {SBC, modePreIndexedIndirect}, 0xE2: {SKB, modeImmediate}, 0xE3: {ISB, modePreIndexedIndirect},
	0xE4: {CPX, modeZeroPage}, 0xE5: {SBC, modeZeroPage}, 0xE6: {INC, modeZeroPage}, 0xE7: {ISB, modeZeroPage},
	0xE8: {INX, modeImplied}, 0xE9: {SBC, modeImmediate}, 0xEA: {NOP, modeImplied}, 0xEB: {SBCX, modeImmediate},
	0xEC: {CPX, modeAbsolute}, 0xED: {SBC, modeAbsolute}, 0xEE: {INC, modeAbsolute}, 0xEF: {ISB, modeAbsolute},

	0xF0: {BEQ, modeRelative}, 0xF1: {SBC, modePostIndexedIndirect}, 0xF2: {HLT, modeImplied}, 0xF3: {ISB, modePostIndexedIndirect},
	0xF4: {IGN, modeZeroPageX}, 0xF5: {SBC, modeZeroPageX}, 0xF6: {INC, modeZeroPageX}, 0xF7: {ISB, modeZeroPageX},
	0xF8: {SED, modeImplied}, 0xF9: {SBC, modeAbsoluteY}, 0xFA: {NOPX, modeImplied}, 0xFB: {ISB, modeAbsoluteY},
	0xFC: {IGN, modeAbsoluteX}, 0xFD: {SBC, modeAbsoluteX}, 0xFE: {INC, modeAbsoluteX}, 0xFF: {ISB, modeAbsoluteX},
}

// Decode reads one instruction from bus starting at pc's current value,
// advances pc past the bytes consumed, and returns the decoded
// Instruction. On failure pc is left pointing just past the last
// successfully read byte (the opcode, if the failure was reading an
// operand byte).
func Decode(pc *ProgramCounter, bus mem.Memory) (Instruction, error) {
	start := pc.Get()
	opcode, err := mem.GetU8(bus, uint64(start))
	if err != nil {
		return Instruction{}, &DecodeError{Kind: IoError, Opcode: opcode, Err: err}
	}
	pc.Advance(1)

	entry := opcodeTable[opcode]
	operand, consumed, err := readOperand(entry.mode, bus, pc.Get())
	if err != nil {
		return Instruction{}, &DecodeError{Kind: IoError, Opcode: opcode, Err: err}
	}
	pc.Advance(int16(consumed))

	return Instruction{Mnemonic: entry.mnemonic, Operand: operand, Opcode: opcode}, nil
}

func readOperand(mode addrMode, bus mem.Memory, at uint16) (Operand, int16, error) {
	switch mode {
	case modeImplied:
		return Operand{}, 0, nil
	case modeAccumulator:
		return AccumulatorOperand(), 0, nil
	case modeImmediate:
		b, err := mem.GetU8(bus, uint64(at))
		return ImmediateOperand(b), 1, err
	case modeZeroPage:
		b, err := mem.GetU8(bus, uint64(at))
		return AbsoluteOperand(uint16(b)), 1, err
	case modeZeroPageX:
		b, err := mem.GetU8(bus, uint64(at))
		return ZeroPageIndexedOperand(b, RegisterX), 1, err
	case modeZeroPageY:
		b, err := mem.GetU8(bus, uint64(at))
		return ZeroPageIndexedOperand(b, RegisterY), 1, err
	case modeAbsolute:
		v, err := mem.GetU16LE(bus, uint64(at))
		return AbsoluteOperand(v), 2, err
	case modeAbsoluteX:
		v, err := mem.GetU16LE(bus, uint64(at))
		return IndexedOperand(v, RegisterX), 2, err
	case modeAbsoluteY:
		v, err := mem.GetU16LE(bus, uint64(at))
		return IndexedOperand(v, RegisterY), 2, err
	case modeIndirect:
		v, err := mem.GetU16LE(bus, uint64(at))
		return IndirectOperand(v), 2, err
	case modePreIndexedIndirect:
		b, err := mem.GetU8(bus, uint64(at))
		return PreIndexedIndirectOperand(b), 1, err
	case modePostIndexedIndirect:
		b, err := mem.GetU8(bus, uint64(at))
		return PostIndexedIndirectOperand(b), 1, err
	case modeRelative:
		b, err := mem.GetU8(bus, uint64(at))
		return OffsetOperand(int8(b)), 1, err
	case modeJSRTarget:
		v, err := mem.GetU16LE(bus, uint64(at))
		return TwoByteImmediateOperand(v), 2, err
	default:
		return Operand{}, 0, nil
	}
}
