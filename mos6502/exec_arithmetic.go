package mos6502

import "github.com/nes6502/core/mem"

func execADC(cpu *CPU, bus mem.Memory, inst Instruction) error {
	m, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Registers.A = adc(cpu, cpu.Registers.A, m)
	return nil
}

// adc performs A + m + C, honoring decimal mode when the CPU has BCD
// enabled and the D flag is set, and returns the new accumulator value
// after updating C, V, N, and Z on cpu.
func adc(cpu *CPU, a, m uint8) uint8 {
	carryIn := uint16(0)
	if cpu.Flags.Has(FlagCarry) {
		carryIn = 1
	}

	binSum := uint16(a) + uint16(m) + carryIn
	result := uint8(binSum)
	overflow := (a^m)&0x80 == 0 && (a^result)&0x80 != 0

	if cpu.BCDEnabled && cpu.Flags.Has(FlagDecimal) {
		lo := int(a&0x0F) + int(m&0x0F) + int(carryIn)
		hi := int(a>>4) + int(m>>4)
		if lo > 9 {
			lo += 6
			hi++
		}
		carry := hi > 9
		if carry {
			hi += 6
		}
		result = uint8((hi<<4)&0xF0 | (lo & 0x0F))
		cpu.Flags.SetIf(FlagCarry, carry)
	} else {
		cpu.Flags.SetIf(FlagCarry, binSum > 0xFF)
	}

	cpu.Flags.SetIf(FlagOverflow, overflow)
	cpu.Flags.SetSignAndZero(result)
	return result
}

func execSBC(cpu *CPU, bus mem.Memory, inst Instruction) error {
	m, err := inst.Operand.GetByte(cpu, bus)
	if err != nil {
		return wrapOperandErr(inst, err)
	}
	cpu.Registers.A = sbc(cpu, cpu.Registers.A, m)
	return nil
}

// sbc performs A - m - (1-C), honoring decimal mode as adc does, and
// returns the new accumulator value after updating C, V, N, and Z.
func sbc(cpu *CPU, a, m uint8) uint8 {
	borrowIn := int16(1)
	if cpu.Flags.Has(FlagCarry) {
		borrowIn = 0
	}

	binDiff := int16(a) - int16(m) - borrowIn
	result := uint8(binDiff)
	overflow := (a^result)&0x80 != 0 && (a^m)&0x80 != 0
	carry := binDiff >= 0

	if cpu.BCDEnabled && cpu.Flags.Has(FlagDecimal) {
		lo := int(a&0x0F) - int(m&0x0F) - int(borrowIn)
		hi := int(a>>4) - int(m>>4)
		if lo < 0 {
			lo -= 6
			hi--
		}
		if hi < 0 {
			hi -= 6
		}
		result = uint8((hi<<4)&0xF0 | (lo & 0x0F))
	}

	cpu.Flags.SetIf(FlagCarry, carry)
	cpu.Flags.SetIf(FlagOverflow, overflow)
	cpu.Flags.SetSignAndZero(result)
	return result
}
