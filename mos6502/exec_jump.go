package mos6502

import "github.com/nes6502/core/mem"

func execJSR(cpu *CPU, bus mem.Memory, inst Instruction) error {
	target := inst.Operand.Value
	retAddr := cpu.PC.Get() - 1
	if err := cpu.PushU16(bus, retAddr); err != nil {
		return wrapMemErr(inst, err)
	}
	cpu.PC.Set(target)
	return nil
}

func execRTS(cpu *CPU, bus mem.Memory, inst Instruction) error {
	addr, err := cpu.PullU16(bus)
	if err != nil {
		return wrapMemErr(inst, err)
	}
	cpu.PC.Set(addr + 1)
	return nil
}

func execRTI(cpu *CPU, bus mem.Memory, inst Instruction) error {
	p, err := cpu.Pull(bus)
	if err != nil {
		return wrapMemErr(inst, err)
	}
	cpu.Flags.Replace(p &^ uint8(FlagBreak))

	addr, err := cpu.PullU16(bus)
	if err != nil {
		return wrapMemErr(inst, err)
	}
	cpu.PC.Set(addr)
	return nil
}

func execBRK(cpu *CPU, bus mem.Memory) error {
	cpu.PC.Advance(1)
	if err := cpu.PushU16(bus, cpu.PC.Get()); err != nil {
		return err
	}
	if err := cpu.Push(bus, cpu.Flags.Bits()|uint8(FlagBreak)); err != nil {
		return err
	}
	cpu.Flags.Set(FlagIRQ)
	addr, err := mem.GetU16LE(bus, uint64(IRQVector))
	if err != nil {
		return err
	}
	cpu.PC.Set(addr)
	return nil
}
