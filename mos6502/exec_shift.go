package mos6502

import "github.com/nes6502/core/mem"

// rmwGet reads an operand without the page-cross penalty and returns it,
// ready for a read-modify-write handler to transform and write back with
// rmwSet. The pair is expected to be called back to back; composite
// unofficial opcodes (SLO, RLA, SRE, RRA, DCP, ISB) reuse this sequence
// via their own component operations.
func rmwGet(cpu *CPU, bus mem.Memory, op Operand) (uint8, error) {
	return op.GetByteNoOops(cpu, bus)
}

func rmwSet(cpu *CPU, bus mem.Memory, op Operand, val uint8) error {
	return op.SetByteNoOops(cpu, bus, val)
}

// aslValue computes ASL's result and carry-out without touching memory;
// shared by the ASL handler and the SLO composite.
func aslValue(old uint8) (result uint8, carryOut bool) {
	return old << 1, old&0x80 != 0
}

// lsrValue computes LSR's result and carry-out; shared by the LSR handler
// and the SRE composite.
func lsrValue(old uint8) (result uint8, carryOut bool) {
	return old >> 1, old&0x01 != 0
}

// rolValue computes ROL's result and carry-out; shared by the ROL handler
// and the RLA composite.
func rolValue(old uint8, carryIn bool) (result uint8, carryOut bool) {
	var c uint8
	if carryIn {
		c = 1
	}
	return old<<1 | c, old&0x80 != 0
}

// rorValue computes ROR's result and carry-out; shared by the ROR handler
// and the RRA composite.
func rorValue(old uint8, carryIn bool) (result uint8, carryOut bool) {
	var c uint8
	if carryIn {
		c = 1 << 7
	}
	return old>>1 | c, old&0x01 != 0
}

func execASL(cpu *CPU, bus mem.Memory, inst Instruction) error {
	old, err := rmwGet(cpu, bus, inst.Operand)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	result, carryOut := aslValue(old)
	if err := rmwSet(cpu, bus, inst.Operand, result); err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Flags.SetIf(FlagCarry, carryOut)
	cpu.Flags.SetSignAndZero(result)
	return nil
}

func execLSR(cpu *CPU, bus mem.Memory, inst Instruction) error {
	old, err := rmwGet(cpu, bus, inst.Operand)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	result, carryOut := lsrValue(old)
	if err := rmwSet(cpu, bus, inst.Operand, result); err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Flags.SetIf(FlagCarry, carryOut)
	cpu.Flags.SetSignAndZero(result)
	return nil
}

func execROL(cpu *CPU, bus mem.Memory, inst Instruction) error {
	old, err := rmwGet(cpu, bus, inst.Operand)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	result, carryOut := rolValue(old, cpu.Flags.Has(FlagCarry))
	if err := rmwSet(cpu, bus, inst.Operand, result); err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Flags.SetIf(FlagCarry, carryOut)
	cpu.Flags.SetSignAndZero(result)
	return nil
}

func execROR(cpu *CPU, bus mem.Memory, inst Instruction) error {
	old, err := rmwGet(cpu, bus, inst.Operand)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	result, carryOut := rorValue(old, cpu.Flags.Has(FlagCarry))
	if err := rmwSet(cpu, bus, inst.Operand, result); err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Flags.SetIf(FlagCarry, carryOut)
	cpu.Flags.SetSignAndZero(result)
	return nil
}
