package mos6502

import (
	"testing"

	"github.com/nes6502/core/mem"
)

func newOperandTestCPU() (*CPU, *mem.Fixed) {
	cpu := New(Config{Variant: VariantNMOS, BCDEnabled: true})
	bus := mem.NewFixed(0x10000)
	return cpu, bus
}

func TestZeroPageIndexedWrapsWithinPageZero(t *testing.T) {
	cpu, bus := newOperandTestCPU()
	cpu.Registers.X = 0x01
	_ = mem.SetU8(bus, 0x0000, 0x55)

	op := ZeroPageIndexedOperand(0xFF, RegisterX)
	addr, err := op.GetAddr(cpu, bus)
	if err != nil {
		t.Fatalf("GetAddr: %v", err)
	}
	if addr != 0x0000 {
		t.Fatalf("addr = %#x, want 0x0000 (wrapped within page zero)", addr)
	}
	v, err := op.GetByte(cpu, bus)
	if err != nil {
		t.Fatalf("GetByte: %v", err)
	}
	if v != 0x55 {
		t.Fatalf("GetByte = %#x, want 0x55", v)
	}
	if got := cpu.Clock.Get(); got != 0 {
		t.Fatalf("clock = %d, want 0 (zero-page indexing never page-crosses)", got)
	}
}

func TestAbsoluteIndexedPageCrossChargesOneCycle(t *testing.T) {
	cpu, bus := newOperandTestCPU()
	cpu.Registers.X = 0x01
	_ = mem.SetU8(bus, 0x2200, 0x99) // base 0x21FF + X(1) = 0x2200, crosses from page 0x21 to 0x22

	op := IndexedOperand(0x21FF, RegisterX)
	if _, err := op.GetByte(cpu, bus); err != nil {
		t.Fatalf("GetByte: %v", err)
	}
	if got := cpu.Clock.Get(); got != 1 {
		t.Fatalf("clock = %d, want 1 (page-crossing read)", got)
	}
}

func TestAbsoluteIndexedNoPageCrossChargesNothing(t *testing.T) {
	cpu, bus := newOperandTestCPU()
	cpu.Registers.X = 0x01
	_ = mem.SetU8(bus, 0x2101, 0x99)

	op := IndexedOperand(0x2100, RegisterX)
	if _, err := op.GetByte(cpu, bus); err != nil {
		t.Fatalf("GetByte: %v", err)
	}
	if got := cpu.Clock.Get(); got != 0 {
		t.Fatalf("clock = %d, want 0 (no page cross)", got)
	}
}

func TestGetByteNoOopsNeverChargesPageCross(t *testing.T) {
	cpu, bus := newOperandTestCPU()
	cpu.Registers.X = 0x01
	_ = mem.SetU8(bus, 0x2200, 0x99)

	op := IndexedOperand(0x21FF, RegisterX)
	if _, err := op.GetByteNoOops(cpu, bus); err != nil {
		t.Fatalf("GetByteNoOops: %v", err)
	}
	if got := cpu.Clock.Get(); got != 0 {
		t.Fatalf("clock = %d, want 0 (RMW reads never pay the oops penalty)", got)
	}
}

func TestPostIndexedIndirectPageCross(t *testing.T) {
	cpu, bus := newOperandTestCPU()
	cpu.Registers.Y = 0x01
	_ = mem.SetU8(bus, 0x0010, 0xFF) // zero-page pointer low byte
	_ = mem.SetU8(bus, 0x0011, 0x21) // pointer high byte -> base 0x21FF
	_ = mem.SetU8(bus, 0x2200, 0x77) // base + Y crosses into page 0x22

	op := PostIndexedIndirectOperand(0x10)
	v, err := op.GetByte(cpu, bus)
	if err != nil {
		t.Fatalf("GetByte: %v", err)
	}
	if v != 0x77 {
		t.Fatalf("GetByte = %#x, want 0x77", v)
	}
	if got := cpu.Clock.Get(); got != 1 {
		t.Fatalf("clock = %d, want 1 (zp),Y page-crossing read", got)
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	cpu, bus := newOperandTestCPU()
	_ = mem.SetU8(bus, 0x10FF, 0x34)
	_ = mem.SetU8(bus, 0x1000, 0x12)
	_ = mem.SetU8(bus, 0x1100, 0xAB)

	op := IndirectOperand(0x10FF)
	addr, err := op.GetAddr(cpu, bus)
	if err != nil {
		t.Fatalf("GetAddr: %v", err)
	}
	if addr != 0x1234 {
		t.Fatalf("addr = %#x, want 0x1234", addr)
	}
}

func TestSetByteRejectsReadOnlyOperands(t *testing.T) {
	cpu, bus := newOperandTestCPU()
	for _, op := range []Operand{ImmediateOperand(1), OffsetOperand(1), TwoByteImmediateOperand(1)} {
		if err := op.SetByte(cpu, bus, 0); err == nil {
			t.Errorf("SetByte(%s) succeeded, want ReadOnlyOperand error", op)
		}
	}
}

func TestOperandStringFormatsNestestStyle(t *testing.T) {
	cases := []struct {
		op   Operand
		want string
	}{
		{ImmediateOperand(0x2A), "#$2A"},
		{AccumulatorOperand(), "A"},
		{AbsoluteOperand(0x00AB), "$AB"},
		{AbsoluteOperand(0x1234), "$1234"},
		{IndexedOperand(0x1234, RegisterX), "$1234,X"},
		{IndirectOperand(0x1234), "($1234)"},
		{PreIndexedIndirectOperand(0xAB), "($AB,X)"},
		{PostIndexedIndirectOperand(0xAB), "($AB),Y"},
		{OffsetOperand(-5), "-$05"},
		{TwoByteImmediateOperand(0x8000), "$8000"},
	}
	for _, c := range cases {
		if got := c.op.String(); got != c.want {
			t.Errorf("%#v.String() = %q, want %q", c.op, got, c.want)
		}
	}
}
