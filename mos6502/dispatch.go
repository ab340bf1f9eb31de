package mos6502

import "github.com/nes6502/core/mem"

// Dispatch charges the instruction's base cycles, then routes to its
// per-opcode handler. Handlers may tick the clock further (branch
// penalties, operand page-crossing) and may suspend it internally so
// composite read-modify-write and unofficial instructions don't
// double-count a sub-operation's cycles.
func Dispatch(inst Instruction, cpu *CPU, bus mem.Memory) error {
	cpu.Clock.Tick(uint64(BaseCycles(inst.Opcode)))

	switch inst.Mnemonic {
	case ADC:
		return execADC(cpu, bus, inst)
	case SBC, SBCX:
		return execSBC(cpu, bus, inst)
	case AND:
		return execAND(cpu, bus, inst)
	case ORA:
		return execORA(cpu, bus, inst)
	case EOR:
		return execEOR(cpu, bus, inst)
	case BIT:
		return execBIT(cpu, bus, inst)
	case ASL:
		return execASL(cpu, bus, inst)
	case LSR:
		return execLSR(cpu, bus, inst)
	case ROL:
		return execROL(cpu, bus, inst)
	case ROR:
		return execROR(cpu, bus, inst)
	case INC:
		return execINC(cpu, bus, inst)
	case DEC:
		return execDEC(cpu, bus, inst)
	case INX:
		cpu.Registers.X++
		cpu.Flags.SetSignAndZero(cpu.Registers.X)
		return nil
	case INY:
		cpu.Registers.Y++
		cpu.Flags.SetSignAndZero(cpu.Registers.Y)
		return nil
	case DEX:
		cpu.Registers.X--
		cpu.Flags.SetSignAndZero(cpu.Registers.X)
		return nil
	case DEY:
		cpu.Registers.Y--
		cpu.Flags.SetSignAndZero(cpu.Registers.Y)
		return nil
	case CMP:
		return execCompare(cpu, bus, inst, cpu.Registers.A)
	case CPX:
		return execCompare(cpu, bus, inst, cpu.Registers.X)
	case CPY:
		return execCompare(cpu, bus, inst, cpu.Registers.Y)
	case LDA:
		return execLoad(cpu, bus, inst, RegisterA)
	case LDX:
		return execLoad(cpu, bus, inst, RegisterX)
	case LDY:
		return execLoad(cpu, bus, inst, RegisterY)
	case STA:
		return execStore(cpu, bus, inst, cpu.Registers.A)
	case STX:
		return execStore(cpu, bus, inst, cpu.Registers.X)
	case STY:
		return execStore(cpu, bus, inst, cpu.Registers.Y)
	case TAX:
		cpu.Registers.X = cpu.Registers.A
		cpu.Flags.SetSignAndZero(cpu.Registers.X)
		return nil
	case TAY:
		cpu.Registers.Y = cpu.Registers.A
		cpu.Flags.SetSignAndZero(cpu.Registers.Y)
		return nil
	case TSX:
		cpu.Registers.X = cpu.Registers.SP
		cpu.Flags.SetSignAndZero(cpu.Registers.X)
		return nil
	case TXA:
		cpu.Registers.A = cpu.Registers.X
		cpu.Flags.SetSignAndZero(cpu.Registers.A)
		return nil
	case TXS:
		cpu.Registers.SP = cpu.Registers.X
		return nil
	case TYA:
		cpu.Registers.A = cpu.Registers.Y
		cpu.Flags.SetSignAndZero(cpu.Registers.A)
		return nil
	case NOP, NOPX:
		return nil
	case SKB, IGN:
		_, err := inst.Operand.GetByte(cpu, bus)
		return wrapOperandErr(inst, err)
	case PHA:
		return wrapMemErr(inst, cpu.Push(bus, cpu.Registers.A))
	case PHP:
		return wrapMemErr(inst, cpu.Push(bus, cpu.Flags.Bits()|uint8(FlagBreak)))
	case PLA:
		v, err := cpu.Pull(bus)
		if err != nil {
			return wrapMemErr(inst, err)
		}
		cpu.Registers.A = v
		cpu.Flags.SetSignAndZero(v)
		return nil
	case PLP:
		v, err := cpu.Pull(bus)
		if err != nil {
			return wrapMemErr(inst, err)
		}
		cpu.Flags.Replace(v &^ uint8(FlagBreak))
		return nil
	case CLC:
		cpu.Flags.Clear(FlagCarry)
		return nil
	case SEC:
		cpu.Flags.Set(FlagCarry)
		return nil
	case CLI:
		cpu.Flags.Clear(FlagIRQ)
		return nil
	case SEI:
		cpu.Flags.Set(FlagIRQ)
		return nil
	case CLV:
		cpu.Flags.Clear(FlagOverflow)
		return nil
	case CLD:
		cpu.Flags.Clear(FlagDecimal)
		return nil
	case SED:
		cpu.Flags.Set(FlagDecimal)
		return nil
	case BCC:
		return execBranch(cpu, inst, !cpu.Flags.Has(FlagCarry))
	case BCS:
		return execBranch(cpu, inst, cpu.Flags.Has(FlagCarry))
	case BEQ:
		return execBranch(cpu, inst, cpu.Flags.Has(FlagZero))
	case BNE:
		return execBranch(cpu, inst, !cpu.Flags.Has(FlagZero))
	case BMI:
		return execBranch(cpu, inst, cpu.Flags.Has(FlagSign))
	case BPL:
		return execBranch(cpu, inst, !cpu.Flags.Has(FlagSign))
	case BVC:
		return execBranch(cpu, inst, !cpu.Flags.Has(FlagOverflow))
	case BVS:
		return execBranch(cpu, inst, cpu.Flags.Has(FlagOverflow))
	case JMP:
		addr, err := inst.Operand.GetAddr(cpu, bus)
		if err != nil {
			return wrapOperandErr(inst, err)
		}
		cpu.PC.Set(addr)
		return nil
	case JSR:
		return execJSR(cpu, bus, inst)
	case RTS:
		return execRTS(cpu, bus, inst)
	case RTI:
		return execRTI(cpu, bus, inst)
	case BRK:
		return wrapMemErr(inst, execBRK(cpu, bus))
	case HLT:
		return execHalt(inst)
	case SLO:
		return execSLO(cpu, bus, inst)
	case RLA:
		return execRLA(cpu, bus, inst)
	case SRE:
		return execSRE(cpu, bus, inst)
	case RRA:
		return execRRA(cpu, bus, inst)
	case DCP:
		return execDCP(cpu, bus, inst)
	case ISB:
		return execISB(cpu, bus, inst)
	case LAX:
		return execLAX(cpu, bus, inst)
	case SAX:
		return execSAX(cpu, bus, inst)
	case ALR:
		return execALR(cpu, bus, inst)
	case ARR:
		return execARR(cpu, bus, inst)
	case ANC:
		return execANC(cpu, bus, inst)
	case AXS:
		return execAXS(cpu, bus, inst)
	case LAS:
		return execLAS(cpu, bus, inst)
	case XAA:
		return execXAA(cpu, bus, inst)
	case TAS:
		return execTAS(cpu, bus, inst)
	case AHX:
		return execAHX(cpu, bus, inst)
	case SHX:
		return execSHX(cpu, bus, inst)
	case SHY:
		return execSHY(cpu, bus, inst)
	default:
		return execIllegalOperand(inst)
	}
}

func wrapMemErr(inst Instruction, err error) error {
	if err == nil {
		return nil
	}
	if me, ok := err.(*mem.Error); ok {
		return execMemoryError(inst, me)
	}
	return err
}

func wrapOperandErr(inst Instruction, err error) error {
	if err == nil {
		return nil
	}
	if oe, ok := err.(*OperandError); ok {
		return execOperandError(inst, oe)
	}
	return err
}
