package mos6502

import "github.com/nes6502/core/mem"

func execAND(cpu *CPU, bus mem.Memory, inst Instruction) error {
	m, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Registers.A &= m
	cpu.Flags.SetSignAndZero(cpu.Registers.A)
	return nil
}

func execORA(cpu *CPU, bus mem.Memory, inst Instruction) error {
	m, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Registers.A |= m
	cpu.Flags.SetSignAndZero(cpu.Registers.A)
	return nil
}

func execEOR(cpu *CPU, bus mem.Memory, inst Instruction) error {
	m, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Registers.A ^= m
	cpu.Flags.SetSignAndZero(cpu.Registers.A)
	return nil
}

func execBIT(cpu *CPU, bus mem.Memory, inst Instruction) error {
	m, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Flags.SetIf(FlagSign, m&0x80 != 0)
	cpu.Flags.SetIf(FlagOverflow, m&0x40 != 0)
	cpu.Flags.SetIf(FlagZero, cpu.Registers.A&m == 0)
	return nil
}
