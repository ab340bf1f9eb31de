package mos6502

import (
	"fmt"

	"github.com/nes6502/core/mem"
)

// OperandErrorKind enumerates the ways evaluating an Operand can fail.
type OperandErrorKind int

const (
	// ErrorAccessingMemory wraps an underlying mem.Error.
	ErrorAccessingMemory OperandErrorKind = iota
	// ReadOnlyOperand is returned by SetByte on an operand with no
	// settable location (e.g. Immediate).
	ReadOnlyOperand
	// NonAddressOperand is returned by GetAddr on an operand with no
	// effective address (Immediate, Accumulator, Offset, TwoByteImmediate).
	NonAddressOperand
)

// OperandError reports a failure evaluating an Operand.
type OperandError struct {
	Kind OperandErrorKind
	Op   Operand
	Err  error // set when Kind == ErrorAccessingMemory
}

func (e *OperandError) Error() string {
	switch e.Kind {
	case ErrorAccessingMemory:
		return fmt.Sprintf("operand %s: %v", e.Op, e.Err)
	case ReadOnlyOperand:
		return fmt.Sprintf("operand %s has no settable location", e.Op)
	case NonAddressOperand:
		return fmt.Sprintf("operand %s has no effective address", e.Op)
	default:
		return "operand error"
	}
}

// Unwrap exposes the wrapped mem.Error, if any, to errors.Is/As.
func (e *OperandError) Unwrap() error {
	return e.Err
}

func memOperandError(op Operand, err error) *OperandError {
	return &OperandError{Kind: ErrorAccessingMemory, Op: op, Err: err}
}

// DecodeErrorKind enumerates the ways decoding an instruction can fail.
type DecodeErrorKind int

const (
	// UnknownOpcode means the opcode byte has no assigned mnemonic.
	UnknownOpcode DecodeErrorKind = iota
	// IoError means the byte stream ran out before the addressing mode's
	// operand bytes could be read.
	IoError
)

// DecodeError reports a failure decoding an instruction from the byte
// stream.
type DecodeError struct {
	Kind   DecodeErrorKind
	Opcode uint8
	Err    error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case UnknownOpcode:
		return fmt.Sprintf("unknown opcode 0x%02X", e.Opcode)
	case IoError:
		return fmt.Sprintf("error reading operand bytes for opcode 0x%02X: %v", e.Opcode, e.Err)
	default:
		return "decode error"
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ExecErrorKind enumerates the ways dispatching an instruction can fail.
type ExecErrorKind int

const (
	// ErrorRetrievingOperand wraps an OperandError.
	ErrorRetrievingOperand ExecErrorKind = iota
	// ErrorReadingMemory wraps a mem.Error encountered outside operand
	// evaluation (e.g. during a push/pull or a vector fetch).
	ErrorReadingMemory
	// IllegalOperand means the instruction was decoded with an operand
	// shape its handler does not accept (should not happen given a
	// correct decoder; guarded against defensively).
	IllegalOperand
	// HaltInstruction is returned by HLT; it signals the façade that the
	// program has halted, not that something went wrong.
	HaltInstruction
)

// ExecError reports a failure (or halt) dispatching a decoded instruction.
type ExecError struct {
	Kind ExecErrorKind
	Inst Instruction
	Err  error
}

func (e *ExecError) Error() string {
	switch e.Kind {
	case ErrorRetrievingOperand:
		return fmt.Sprintf("executing %s: %v", e.Inst, e.Err)
	case ErrorReadingMemory:
		return fmt.Sprintf("executing %s: %v", e.Inst, e.Err)
	case IllegalOperand:
		return fmt.Sprintf("executing %s: operand shape not valid for this instruction", e.Inst)
	case HaltInstruction:
		return fmt.Sprintf("halted at %s", e.Inst)
	default:
		return "exec error"
	}
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

func execOperandError(inst Instruction, err *OperandError) *ExecError {
	return &ExecError{Kind: ErrorRetrievingOperand, Inst: inst, Err: err}
}

func execMemoryError(inst Instruction, err *mem.Error) *ExecError {
	return &ExecError{Kind: ErrorReadingMemory, Inst: inst, Err: err}
}

func execIllegalOperand(inst Instruction) *ExecError {
	return &ExecError{Kind: IllegalOperand, Inst: inst}
}

func execHalt(inst Instruction) *ExecError {
	return &ExecError{Kind: HaltInstruction, Inst: inst}
}
