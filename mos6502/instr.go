package mos6502

// Mnemonic identifies one of the 6502's instructions, official or
// unofficial. The same mnemonic paired with different Operand shapes
// covers every addressing-mode variant the decoder produces.
type Mnemonic int

// Official mnemonics.
const (
	ADC Mnemonic = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	// Unofficial ("illegal") mnemonics.
	AHX
	ALR
	ANC
	ARR
	AXS
	DCP
	HLT
	IGN
	ISB
	LAS
	LAX
	NOPX
	RLA
	RRA
	SAX
	SBCX
	SHX
	SHY
	SKB
	SLO
	SRE
	TAS
	XAA
)

var mnemonicNames = [...]string{
	ADC: "ADC", AND: "AND", ASL: "ASL", BCC: "BCC", BCS: "BCS", BEQ: "BEQ",
	BIT: "BIT", BMI: "BMI", BNE: "BNE", BPL: "BPL", BRK: "BRK", BVC: "BVC",
	BVS: "BVS", CLC: "CLC", CLD: "CLD", CLI: "CLI", CLV: "CLV", CMP: "CMP",
	CPX: "CPX", CPY: "CPY", DEC: "DEC", DEX: "DEX", DEY: "DEY", EOR: "EOR",
	INC: "INC", INX: "INX", INY: "INY", JMP: "JMP", JSR: "JSR", LDA: "LDA",
	LDX: "LDX", LDY: "LDY", LSR: "LSR", NOP: "NOP", ORA: "ORA", PHA: "PHA",
	PHP: "PHP", PLA: "PLA", PLP: "PLP", ROL: "ROL", ROR: "ROR", RTI: "RTI",
	RTS: "RTS", SBC: "SBC", SEC: "SEC", SED: "SED", SEI: "SEI", STA: "STA",
	STX: "STX", STY: "STY", TAX: "TAX", TAY: "TAY", TSX: "TSX", TXA: "TXA",
	TXS: "TXS", TYA: "TYA",
	AHX: "AHX", ALR: "ALR", ANC: "ANC", ARR: "ARR", AXS: "AXS", DCP: "DCP",
	HLT: "HLT", IGN: "IGN", ISB: "ISB", LAS: "LAS", LAX: "LAX", NOPX: "NOPX",
	RLA: "RLA", RRA: "RRA", SAX: "SAX", SBCX: "SBCX", SHX: "SHX", SHY: "SHY",
	SKB: "SKB", SLO: "SLO", SRE: "SRE", TAS: "TAS", XAA: "XAA",
}

func (m Mnemonic) String() string {
	if int(m) < len(mnemonicNames) && mnemonicNames[m] != "" {
		return mnemonicNames[m]
	}
	return "???"
}

// Unofficial reports whether the mnemonic is one of the documented illegal
// opcodes rather than part of the published 6502 instruction set.
func (m Mnemonic) Unofficial() bool {
	return m >= AHX
}

// Instruction pairs a Mnemonic with the Operand its addressing mode
// produced. Implied-addressing instructions (CLC, TAX, RTS, ...) carry a
// zero Operand that is never consulted.
type Instruction struct {
	Mnemonic Mnemonic
	Operand  Operand
	// Opcode is the raw byte this instruction was decoded from; the
	// dispatcher uses it to look up the base cycle count, since the same
	// mnemonic can map to several opcodes with different timings
	// depending on addressing mode.
	Opcode uint8
}

// HasOperand reports whether this instruction's operand is meaningful,
// i.e. the mnemonic is not one of the implied-addressing opcodes.
func (i Instruction) HasOperand() bool {
	switch i.Mnemonic {
	case BRK, CLC, CLD, CLI, CLV, DEX, DEY, INX, INY, NOP, PHA, PHP, PLA, PLP,
		RTI, RTS, SEC, SED, SEI, TAX, TAY, TSX, TXA, TXS, TYA, HLT, NOPX:
		return false
	default:
		return true
	}
}

// String renders the instruction in nestest "golden log" notation:
// mnemonic, a space, and the operand (if any).
func (i Instruction) String() string {
	if !i.HasOperand() {
		return i.Mnemonic.String()
	}
	return i.Mnemonic.String() + " " + i.Operand.String()
}
