// Package io defines the external-collaborator interfaces through which
// the NES memory map reaches a register-windowed device (the PPU, the
// APU/controller I/O block) without owning one itself. It's intended that
// a real PPU/APU implementation handle the side effects (latch behavior,
// open-bus decay) on its own clock; the memory map only forwards reads
// and writes to the index asked for.
package io

// RegisterWindow is an 8-bit device exposed to the CPU bus as a small,
// address-mirrored block of registers (the PPU's 8 registers at
// 0x2000-0x2007, the APU/IO block's 0x20 bytes at 0x4000-0x401F).
type RegisterWindow interface {
	// ReadRegister returns the current value of register idx.
	ReadRegister(idx uint16) uint8
	// WriteRegister updates register idx with val.
	WriteRegister(idx uint16, val uint8)
}
