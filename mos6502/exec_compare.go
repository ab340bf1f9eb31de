package mos6502

import "github.com/nes6502/core/mem"

// compare is CMP/CPX/CPY's shared "reg - M" logic, also reused by the DCP
// composite: C = reg >= M, Z = reg == M, N = bit 7 of the difference.
func compare(cpu *CPU, reg, m uint8) {
	result := reg - m
	cpu.Flags.SetIf(FlagCarry, reg >= m)
	cpu.Flags.SetSignAndZero(result)
}

func execCompare(cpu *CPU, bus mem.Memory, inst Instruction, reg uint8) error {
	m, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	compare(cpu, reg, m)
	return nil
}
