package mos6502

import "github.com/nes6502/core/mem"

func execLoad(cpu *CPU, bus mem.Memory, inst Instruction, dest RegisterName) error {
	v, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	dest.Set(cpu, v)
	cpu.Flags.SetSignAndZero(v)
	return nil
}

func execStore(cpu *CPU, bus mem.Memory, inst Instruction, val uint8) error {
	return wrapOperandErr(inst, inst.Operand.SetByte(cpu, bus, val))
}
