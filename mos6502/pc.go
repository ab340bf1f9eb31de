package mos6502

// ProgramCounter is the CPU's 16-bit instruction pointer. Advance wraps
// modulo 2^16, matching real 6502 behavior when a program runs off the top
// or bottom of the address space (e.g. a branch at the very end of ROM).
type ProgramCounter struct {
	pc uint16
}

// ProgramCounterAt builds a ProgramCounter starting at val, useful for
// disassembly tools that want to decode starting somewhere other than the
// reset vector without constructing a whole CPU.
func ProgramCounterAt(val uint16) ProgramCounter {
	return ProgramCounter{pc: val}
}

// Get returns the current program counter value.
func (p *ProgramCounter) Get() uint16 {
	return p.pc
}

// Set overwrites the program counter, e.g. after a jump or on reset.
func (p *ProgramCounter) Set(val uint16) {
	p.pc = val
}

// Advance moves the program counter forward (or backward, for a negative
// amount) by amount bytes, wrapping modulo 2^16. Branch offsets are signed
// and applied this way.
func (p *ProgramCounter) Advance(amount int16) {
	p.pc = uint16(int32(p.pc) + int32(amount))
}
