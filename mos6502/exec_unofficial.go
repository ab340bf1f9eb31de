package mos6502

import "github.com/nes6502/core/mem"

// The composite illegal opcodes (SLO, RLA, SRE, RRA, DCP, ISB) perform two
// official operations back to back against the same memory operand. Each
// suspends the clock around its inner steps: none of rmwGet/rmwSet/compare
// ticks the clock itself, so the suspension is a correctness belt rather
// than a strict necessity here, but it documents the intent and protects
// against a future operand-evaluation change that starts ticking on
// no-oops reads.

func execSLO(cpu *CPU, bus mem.Memory, inst Instruction) error {
	guard := cpu.Clock.Suspend()
	defer guard.Release()

	old, err := rmwGet(cpu, bus, inst.Operand)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	shifted, carryOut := aslValue(old)
	if err := rmwSet(cpu, bus, inst.Operand, shifted); err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Flags.SetIf(FlagCarry, carryOut)
	cpu.Registers.A |= shifted
	cpu.Flags.SetSignAndZero(cpu.Registers.A)
	return nil
}

func execRLA(cpu *CPU, bus mem.Memory, inst Instruction) error {
	guard := cpu.Clock.Suspend()
	defer guard.Release()

	old, err := rmwGet(cpu, bus, inst.Operand)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	rotated, carryOut := rolValue(old, cpu.Flags.Has(FlagCarry))
	if err := rmwSet(cpu, bus, inst.Operand, rotated); err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Flags.SetIf(FlagCarry, carryOut)
	cpu.Registers.A &= rotated
	cpu.Flags.SetSignAndZero(cpu.Registers.A)
	return nil
}

func execSRE(cpu *CPU, bus mem.Memory, inst Instruction) error {
	guard := cpu.Clock.Suspend()
	defer guard.Release()

	old, err := rmwGet(cpu, bus, inst.Operand)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	shifted, carryOut := lsrValue(old)
	if err := rmwSet(cpu, bus, inst.Operand, shifted); err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Flags.SetIf(FlagCarry, carryOut)
	cpu.Registers.A ^= shifted
	cpu.Flags.SetSignAndZero(cpu.Registers.A)
	return nil
}

func execRRA(cpu *CPU, bus mem.Memory, inst Instruction) error {
	guard := cpu.Clock.Suspend()
	defer guard.Release()

	old, err := rmwGet(cpu, bus, inst.Operand)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	rotated, carryOut := rorValue(old, cpu.Flags.Has(FlagCarry))
	if err := rmwSet(cpu, bus, inst.Operand, rotated); err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Flags.SetIf(FlagCarry, carryOut)
	cpu.Registers.A = adc(cpu, cpu.Registers.A, rotated)
	return nil
}

func execDCP(cpu *CPU, bus mem.Memory, inst Instruction) error {
	guard := cpu.Clock.Suspend()
	defer guard.Release()

	old, err := rmwGet(cpu, bus, inst.Operand)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	decremented := decValue(old)
	if err := rmwSet(cpu, bus, inst.Operand, decremented); err != nil {
		return wrapOperandErr(inst, err)
	}
	compare(cpu, cpu.Registers.A, decremented)
	return nil
}

func execISB(cpu *CPU, bus mem.Memory, inst Instruction) error {
	guard := cpu.Clock.Suspend()
	defer guard.Release()

	old, err := rmwGet(cpu, bus, inst.Operand)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	incremented := incValue(old)
	if err := rmwSet(cpu, bus, inst.Operand, incremented); err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Registers.A = sbc(cpu, cpu.Registers.A, incremented)
	return nil
}

// execLAX loads both A and X from the operand in one step (LDA + TAX).
func execLAX(cpu *CPU, bus mem.Memory, inst Instruction) error {
	v, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Registers.A = v
	cpu.Registers.X = v
	cpu.Flags.SetSignAndZero(v)
	return nil
}

// execSAX stores A & X; no flags affected.
func execSAX(cpu *CPU, bus mem.Memory, inst Instruction) error {
	return wrapOperandErr(inst, inst.Operand.SetByte(cpu, bus, cpu.Registers.A&cpu.Registers.X))
}

// execALR is AND #imm followed by LSR A.
func execALR(cpu *CPU, bus mem.Memory, inst Instruction) error {
	m, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	anded := cpu.Registers.A & m
	result, carryOut := lsrValue(anded)
	cpu.Registers.A = result
	cpu.Flags.SetIf(FlagCarry, carryOut)
	cpu.Flags.SetSignAndZero(result)
	return nil
}

// execARR is AND #imm followed by ROR A, with hardware-specific C/V rules:
// C takes bit 6 of the result, V is bit 6 XOR bit 5.
func execARR(cpu *CPU, bus mem.Memory, inst Instruction) error {
	m, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	anded := cpu.Registers.A & m
	result, _ := rorValue(anded, cpu.Flags.Has(FlagCarry))
	cpu.Registers.A = result
	cpu.Flags.SetIf(FlagCarry, result&0x40 != 0)
	cpu.Flags.SetIf(FlagOverflow, (result>>6)&1 != (result>>5)&1)
	cpu.Flags.SetSignAndZero(result)
	return nil
}

// execANC is AND #imm with C set to the result's sign bit.
func execANC(cpu *CPU, bus mem.Memory, inst Instruction) error {
	m, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Registers.A &= m
	cpu.Flags.SetSignAndZero(cpu.Registers.A)
	cpu.Flags.SetIf(FlagCarry, cpu.Flags.Has(FlagSign))
	return nil
}

// execAXS computes X = (A & X) - imm, setting flags as CMP would (C = no
// borrow) rather than as SBC would (no V, no decimal mode).
func execAXS(cpu *CPU, bus mem.Memory, inst Instruction) error {
	m, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	anded := cpu.Registers.A & cpu.Registers.X
	result := anded - m
	cpu.Flags.SetIf(FlagCarry, anded >= m)
	cpu.Registers.X = result
	cpu.Flags.SetSignAndZero(result)
	return nil
}

// execLAS loads A, X, and SP all from (M & SP).
func execLAS(cpu *CPU, bus mem.Memory, inst Instruction) error {
	m, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	result := m & cpu.Registers.SP
	cpu.Registers.A = result
	cpu.Registers.X = result
	cpu.Registers.SP = result
	cpu.Flags.SetSignAndZero(result)
	return nil
}

// execXAA is the famously unstable "AND X then AND imm" opcode. The stable
// approximation used here treats it as A = (A | magic) & X & imm with
// magic = 0xFF, i.e. plain (X & imm), matching the commonly documented
// stable behavior on the NMOS 6502s NES games actually relied on.
func execXAA(cpu *CPU, bus mem.Memory, inst Instruction) error {
	m, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Registers.A = cpu.Registers.X & m
	cpu.Flags.SetSignAndZero(cpu.Registers.A)
	return nil
}

// execTAS stores (A & X) into SP, then stores (SP & (high_byte+1)) to
// memory. Operand must be an Indexed(Absolute,Y) operand.
func execTAS(cpu *CPU, bus mem.Memory, inst Instruction) error {
	cpu.Registers.SP = cpu.Registers.A & cpu.Registers.X
	hi := uint8(inst.Operand.Value>>8) + 1
	return wrapOperandErr(inst, inst.Operand.SetByte(cpu, bus, cpu.Registers.SP&hi))
}

// execAHX stores A & X & (high_byte+1) to memory.
func execAHX(cpu *CPU, bus mem.Memory, inst Instruction) error {
	hi := uint8(inst.Operand.Value>>8) + 1
	return wrapOperandErr(inst, inst.Operand.SetByte(cpu, bus, cpu.Registers.A&cpu.Registers.X&hi))
}

// execSHX stores X & (high_byte+1) to memory.
func execSHX(cpu *CPU, bus mem.Memory, inst Instruction) error {
	hi := uint8(inst.Operand.Value>>8) + 1
	return wrapOperandErr(inst, inst.Operand.SetByte(cpu, bus, cpu.Registers.X&hi))
}

// execSHY stores Y & (high_byte+1) to memory.
func execSHY(cpu *CPU, bus mem.Memory, inst Instruction) error {
	hi := uint8(inst.Operand.Value>>8) + 1
	return wrapOperandErr(inst, inst.Operand.SetByte(cpu, bus, cpu.Registers.Y&hi))
}
