package mos6502

import "github.com/nes6502/core/mem"

// StackBase is the fixed page the stack pointer indexes into.
const StackBase = 0x0100

// Reset, NMI, and IRQ/BRK vector addresses, consumed out of the
// cartridge-backed region of the bus.
const (
	NMIVector   uint16 = 0xFFFA
	ResetVector uint16 = 0xFFFC
	IRQVector   uint16 = 0xFFFE
)

// Variant selects a CPU flavor. New does not consult it; BCDEnabled is the
// field that actually gates decimal-mode arithmetic, and DefaultBCDEnabled
// reports a variant's hardware default for that field.
type Variant int

const (
	// VariantNMOS is a stock NMOS 6502 with BCD arithmetic available.
	VariantNMOS Variant = iota
	// VariantRicoh2A03 is the NES/Famicom's CPU: identical to VariantNMOS
	// except decimal mode is wired off at the silicon level.
	VariantRicoh2A03
	// VariantCMOS is the 65C02 family; this core does not implement its
	// extra addressing modes or opcodes, but the variant exists so host
	// code can record which chip it's emulating.
	VariantCMOS
)

// Config selects CPU construction options. BCDEnabled is independent of
// Variant: New uses it exactly as given and never derives it from Variant.
// A caller that wants the chip's default passes DefaultBCDEnabled(Variant).
type Config struct {
	Variant    Variant
	BCDEnabled bool
}

// DefaultBCDEnabled reports whether v's real hardware has decimal-mode
// arithmetic wired in. The Ricoh 2A03 is the one variant in this package
// that disables it.
func DefaultBCDEnabled(v Variant) bool {
	return v != VariantRicoh2A03
}

// CPU is a MOS 6502 processor: registers, flags, program counter, and
// clock. It holds no reference to a bus; every operation that touches
// memory takes one explicitly, so the same CPU type serves bare-bones
// tests (a Fixed memory) and the full NES memory map equally.
type CPU struct {
	Registers  Registers
	Flags      Flags
	PC         ProgramCounter
	Clock      *Clock
	BCDEnabled bool
}

// New constructs a CPU per cfg with freshly initialized registers, flags,
// and clock. PC stays at 0 until PowerOn or Reset reads the reset vector.
func New(cfg Config) *CPU {
	return &CPU{
		Registers:  NewRegisters(),
		Flags:      NewFlags(0),
		Clock:      NewClock(),
		BCDEnabled: cfg.BCDEnabled,
	}
}

// PowerOn resets every piece of CPU state to its startup value and loads
// PC from the reset vector.
func (c *CPU) PowerOn(bus mem.Memory) error {
	c.Registers = NewRegisters()
	c.Flags = NewFlags(0)
	c.Clock.Set(0)
	return c.Reset(bus)
}

// Reset loads PC from the reset vector and sets the interrupt-disable
// flag, without otherwise disturbing register state, matching the real
// 6502's RESET line behavior.
func (c *CPU) Reset(bus mem.Memory) error {
	addr, err := mem.GetU16LE(bus, uint64(ResetVector))
	if err != nil {
		return err
	}
	c.PC.Set(addr)
	c.Flags.Set(FlagIRQ)
	return nil
}

// Push writes val to the stack at StackBase+SP, then decrements SP,
// wrapping modulo 256.
func (c *CPU) Push(bus mem.Memory, val uint8) error {
	addr := uint64(StackBase) + uint64(c.Registers.SP)
	if err := mem.SetU8(bus, addr, val); err != nil {
		return err
	}
	c.Registers.SP--
	return nil
}

// Pull increments SP, wrapping modulo 256, then reads the byte at
// StackBase+SP.
func (c *CPU) Pull(bus mem.Memory) (uint8, error) {
	c.Registers.SP++
	addr := uint64(StackBase) + uint64(c.Registers.SP)
	return mem.GetU8(bus, addr)
}

// PushU16 pushes a 16-bit value high byte first, matching JSR/BRK's PC
// push order.
func (c *CPU) PushU16(bus mem.Memory, val uint16) error {
	if err := c.Push(bus, uint8(val>>8)); err != nil {
		return err
	}
	return c.Push(bus, uint8(val))
}

// PullU16 pulls a 16-bit value low byte first, matching RTS/RTI's PC pull
// order.
func (c *CPU) PullU16(bus mem.Memory) (uint16, error) {
	lo, err := c.Pull(bus)
	if err != nil {
		return 0, err
	}
	hi, err := c.Pull(bus)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// Step decodes one instruction starting at PC and dispatches it. It
// returns the decoded instruction (for logging/disassembly) alongside any
// decode or execution error.
func (c *CPU) Step(bus mem.Memory) (Instruction, error) {
	inst, err := Decode(&c.PC, bus)
	if err != nil {
		return Instruction{}, err
	}
	if err := Dispatch(inst, c, bus); err != nil {
		return inst, err
	}
	return inst, nil
}
