package mos6502

import (
	"fmt"

	"github.com/nes6502/core/mem"
)

// OperandKind tags the variant held by an Operand.
type OperandKind int

const (
	// Immediate carries its value inline with the instruction.
	Immediate OperandKind = iota
	// Accumulator operates on the A register.
	Accumulator
	// Absolute addresses memory directly; Value < 0x100 is a zero-page
	// access using the same representation.
	Absolute
	// Indexed addresses memory at Value + the named index register.
	Indexed
	// Indirect addresses memory through a 16-bit pointer at Value; only
	// used by JMP, and subject to the page-wrap bug.
	Indirect
	// PreIndexedIndirect addresses memory through a pointer read from
	// zero page at (Value + X), wrapping within page zero: (zp,X).
	PreIndexedIndirect
	// PostIndexedIndirect addresses memory at (pointer read from zero
	// page at Value) + Y: (zp),Y.
	PostIndexedIndirect
	// Offset carries a signed branch displacement relative to PC.
	Offset
	// TwoByteImmediate carries a 16-bit inline value, used only by JSR's
	// target.
	TwoByteImmediate
)

// Operand is a tagged union over every 6502 addressing-mode result. It is a
// pure value: evaluating it may tick the clock (page-crossing reads) but
// never otherwise mutates CPU state until SetByte is called.
type Operand struct {
	Kind  OperandKind
	Value uint16       // Immediate: low byte. Absolute/Indexed/Indirect: address. PreIndexedIndirect/PostIndexedIndirect: zero-page pointer address (low byte). TwoByteImmediate: the value itself.
	Index RegisterName // RegisterX or RegisterY, valid only when Kind == Indexed
	Off   int8         // valid only when Kind == Offset
	// ZeroPage marks an Indexed operand decoded from a zero-page,X/Y
	// addressing mode rather than absolute,X/Y: the index addition wraps
	// within page zero instead of carrying into the next page, and never
	// incurs the page-crossing read penalty.
	ZeroPage bool
}

// ImmediateOperand builds an Operand carrying an inline byte.
func ImmediateOperand(v uint8) Operand { return Operand{Kind: Immediate, Value: uint16(v)} }

// AccumulatorOperand builds an Operand referring to the A register.
func AccumulatorOperand() Operand { return Operand{Kind: Accumulator} }

// AbsoluteOperand builds an Operand addressing memory at addr directly.
// Zero-page operands are represented the same way, with addr < 0x100.
func AbsoluteOperand(addr uint16) Operand { return Operand{Kind: Absolute, Value: addr} }

// IndexedOperand builds an Operand addressing memory at addr + the given
// index register's current value.
func IndexedOperand(addr uint16, index RegisterName) Operand {
	return Operand{Kind: Indexed, Value: addr, Index: index}
}

// ZeroPageIndexedOperand builds a zero-page,X/Y Operand: the index
// addition wraps within page zero and never crosses a page.
func ZeroPageIndexedOperand(addr uint8, index RegisterName) Operand {
	return Operand{Kind: Indexed, Value: uint16(addr), Index: index, ZeroPage: true}
}

// IndirectOperand builds an Operand addressing memory through a pointer
// stored at addr; used only by JMP.
func IndirectOperand(addr uint16) Operand { return Operand{Kind: Indirect, Value: addr} }

// PreIndexedIndirectOperand builds a `(zp,X)` Operand.
func PreIndexedIndirectOperand(zp uint8) Operand {
	return Operand{Kind: PreIndexedIndirect, Value: uint16(zp)}
}

// PostIndexedIndirectOperand builds a `(zp),Y` Operand.
func PostIndexedIndirectOperand(zp uint8) Operand {
	return Operand{Kind: PostIndexedIndirect, Value: uint16(zp)}
}

// OffsetOperand builds a branch-displacement Operand.
func OffsetOperand(off int8) Operand { return Operand{Kind: Offset, Off: off} }

// TwoByteImmediateOperand builds an Operand carrying an inline 16-bit
// value, used only by JSR.
func TwoByteImmediateOperand(v uint16) Operand { return Operand{Kind: TwoByteImmediate, Value: v} }

// HasAddr reports whether the operand has an effective address (is an
// "lvalue"). Immediate, Accumulator, Offset, and TwoByteImmediate do not.
func (o Operand) HasAddr() bool {
	switch o.Kind {
	case Immediate, Accumulator, Offset, TwoByteImmediate:
		return false
	default:
		return true
	}
}

// GetAddr returns the operand's effective address, or a NonAddressOperand
// OperandError if it has none. Reproduces the 6502's two addressing bugs:
// the JMP-indirect page-wrap (the high byte of an Indirect pointer whose
// low byte is 0xFF is re-read from the start of the same page, not the
// next one) and zero-page wrap for the indexed-indirect modes.
func (o Operand) GetAddr(cpu *CPU, bus mem.Memory) (uint16, error) {
	switch o.Kind {
	case Absolute:
		return o.Value, nil
	case Indexed:
		if o.ZeroPage {
			return uint16(uint8(o.Value) + o.Index.Get(cpu)), nil
		}
		return o.Value + uint16(o.Index.Get(cpu)), nil
	case Indirect:
		return indirectPointer(bus, o.Value, o)
	case PreIndexedIndirect:
		zp := uint8(o.Value) + cpu.Registers.X
		return zeroPagePointer(bus, zp, o)
	case PostIndexedIndirect:
		zp := uint8(o.Value)
		ptr, err := zeroPagePointer(bus, zp, o)
		if err != nil {
			return 0, err
		}
		return ptr + uint16(cpu.Registers.Y), nil
	default:
		return 0, &OperandError{Kind: NonAddressOperand, Op: o}
	}
}

// indirectPointer reads the 16-bit pointer for an Indirect operand,
// reproducing the page-wrap bug: if addr's low byte is 0xFF, the high
// byte comes from addr & 0xFF00 rather than addr+1.
func indirectPointer(bus mem.Memory, addr uint16, op Operand) (uint16, error) {
	lo, err := mem.GetU8(bus, uint64(addr))
	if err != nil {
		return 0, memOperandError(op, err)
	}
	hiAddr := addr + 1
	if addr&0x00FF == 0x00FF {
		hiAddr = addr & 0xFF00
	}
	hi, err := mem.GetU8(bus, uint64(hiAddr))
	if err != nil {
		return 0, memOperandError(op, err)
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// zeroPagePointer reads a 16-bit pointer stored at zero-page address zp,
// wrapping within page zero (so a pointer at 0xFF reads its high byte from
// 0x00, not 0x100).
func zeroPagePointer(bus mem.Memory, zp uint8, op Operand) (uint16, error) {
	lo, err := mem.GetU8(bus, uint64(zp))
	if err != nil {
		return 0, memOperandError(op, err)
	}
	hi, err := mem.GetU8(bus, uint64(zp+1))
	if err != nil {
		return 0, memOperandError(op, err)
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// GetByte returns the operand's value. For memory operands read through
// Indexed or PostIndexedIndirect, ticks the clock one additional cycle
// when the effective address crosses a page boundary relative to its
// unindexed base.
func (o Operand) GetByte(cpu *CPU, bus mem.Memory) (uint8, error) {
	return o.getByte(cpu, bus, true)
}

// GetByteNoOops is identical to GetByte but never charges the page-cross
// penalty; used by read-modify-write instructions, which always pay the
// worst-case cycle count up front via the base cycle table.
func (o Operand) GetByteNoOops(cpu *CPU, bus mem.Memory) (uint8, error) {
	return o.getByte(cpu, bus, false)
}

func (o Operand) getByte(cpu *CPU, bus mem.Memory, chargePageCross bool) (uint8, error) {
	switch o.Kind {
	case Immediate:
		return uint8(o.Value), nil
	case Accumulator:
		return cpu.Registers.A, nil
	}

	addr, base, err := o.effectiveAndBase(cpu, bus)
	if err != nil {
		return 0, err
	}
	if chargePageCross && base&0xFF00 != addr&0xFF00 {
		cpu.Clock.Tick(1)
	}
	v, err := mem.GetU8(bus, uint64(addr))
	if err != nil {
		return 0, memOperandError(o, err)
	}
	return v, nil
}

// effectiveAndBase returns the operand's effective address together with
// the "base" page it is compared against for the page-crossing penalty:
// the unindexed address for Indexed, and the pointer read from zero page
// for PostIndexedIndirect. Zero-page,X/Y never crosses, since the index
// addition wraps within page zero.
func (o Operand) effectiveAndBase(cpu *CPU, bus mem.Memory) (addr, base uint16, err error) {
	switch o.Kind {
	case Indexed:
		if o.ZeroPage {
			addr, err = o.GetAddr(cpu, bus)
			return addr, addr, err
		}
		base = o.Value
		addr, err = o.GetAddr(cpu, bus)
		return addr, base, err
	case PostIndexedIndirect:
		ptr, perr := zeroPagePointer(bus, uint8(o.Value), o)
		if perr != nil {
			return 0, 0, perr
		}
		addr = ptr + uint16(cpu.Registers.Y)
		return addr, ptr, nil
	default:
		addr, err = o.GetAddr(cpu, bus)
		return addr, addr, err
	}
}

// SetByte writes val to the operand's location. Accumulator and the
// memory-addressing kinds (Absolute, Indexed, Indirect, PreIndexedIndirect,
// PostIndexedIndirect) are settable; Immediate, Offset and TwoByteImmediate
// fail with ReadOnlyOperand. Does not charge a page-crossing penalty: the base
// cycle table already bills stores for the worst case.
func (o Operand) SetByte(cpu *CPU, bus mem.Memory, val uint8) error {
	return o.setByte(cpu, bus, val)
}

// SetByteNoOops is identical to SetByte; stores never charge the
// page-crossing penalty regardless, so no distinct "oops" behavior
// exists, but the symmetric name is kept so RMW handlers can call
// GetByteNoOops/SetByteNoOops as a matched pair.
func (o Operand) SetByteNoOops(cpu *CPU, bus mem.Memory, val uint8) error {
	return o.setByte(cpu, bus, val)
}

func (o Operand) setByte(cpu *CPU, bus mem.Memory, val uint8) error {
	switch o.Kind {
	case Accumulator:
		cpu.Registers.A = val
		return nil
	case Absolute, Indexed, PreIndexedIndirect, PostIndexedIndirect, Indirect:
		addr, err := o.GetAddr(cpu, bus)
		if err != nil {
			return err
		}
		if err := mem.SetU8(bus, uint64(addr), val); err != nil {
			return memOperandError(o, err)
		}
		return nil
	default:
		return &OperandError{Kind: ReadOnlyOperand, Op: o}
	}
}

// String renders the operand in nestest "golden log" notation.
func (o Operand) String() string {
	switch o.Kind {
	case Immediate:
		return fmt.Sprintf("#$%02X", uint8(o.Value))
	case Accumulator:
		return "A"
	case Absolute:
		if o.Value <= 0x00FF {
			return fmt.Sprintf("$%02X", o.Value)
		}
		return fmt.Sprintf("$%04X", o.Value)
	case Indexed:
		if o.Value <= 0x00FF {
			return fmt.Sprintf("$%02X,%s", o.Value, o.Index)
		}
		return fmt.Sprintf("$%04X,%s", o.Value, o.Index)
	case Indirect:
		return fmt.Sprintf("($%04X)", o.Value)
	case PreIndexedIndirect:
		return fmt.Sprintf("($%02X,X)", uint8(o.Value))
	case PostIndexedIndirect:
		return fmt.Sprintf("($%02X),Y", uint8(o.Value))
	case Offset:
		if o.Off < 0 {
			return fmt.Sprintf("-$%02X", -int(o.Off))
		}
		return fmt.Sprintf("$%02X", o.Off)
	case TwoByteImmediate:
		return fmt.Sprintf("$%04X", o.Value)
	default:
		return "?"
	}
}
