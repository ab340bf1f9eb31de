package mos6502

import "github.com/nes6502/core/mem"

// incValue and decValue are the pure ±1 wrapping transforms shared by the
// INC/DEC handlers and the ISB/DCP composites.
func incValue(old uint8) uint8 { return old + 1 }
func decValue(old uint8) uint8 { return old - 1 }

func execINC(cpu *CPU, bus mem.Memory, inst Instruction) error {
	old, err := rmwGet(cpu, bus, inst.Operand)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	result := incValue(old)
	if err := rmwSet(cpu, bus, inst.Operand, result); err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Flags.SetSignAndZero(result)
	return nil
}

func execDEC(cpu *CPU, bus mem.Memory, inst Instruction) error {
	old, err := rmwGet(cpu, bus, inst.Operand)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	result := decValue(old)
	if err := rmwSet(cpu, bus, inst.Operand, result); err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Flags.SetSignAndZero(result)
	return nil
}
