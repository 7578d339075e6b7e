package core

import (
	"errors"
	"fmt"

	"github.com/sarchlab/wsvm/instr"
)

// Reasons a run can fail.
var (
	ErrStackUnderflow   = errors.New("stack underflow")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrOutOfRange       = errors.New("index out of range")
	ErrUndefinedLabel   = errors.New("undefined label")
	ErrNoActiveCall     = errors.New("return with no active call")
	ErrUnsetHeapAddress = errors.New("unset heap address")
	ErrNegativeAddress  = errors.New("negative heap address")
	ErrMalformedNumber  = errors.New("malformed number")
	ErrOverflow         = errors.New("integer overflow")
	ErrEndOfInput       = errors.New("end of input")
	ErrMissingEnd       = errors.New("program ended without end_program")
	ErrStepLimit        = errors.New("step limit reached")
	ErrIO               = errors.New("console error")
)

// RuntimeError is a fatal error raised while executing an instruction.
type RuntimeError struct {
	// PC is the address of the failing instruction.
	PC int
	// Inst is the failing instruction. It is the zero value when the
	// error did not come from an instruction (ErrMissingEnd,
	// ErrStepLimit).
	Inst    instr.Inst
	fetched bool

	Err error
}

func (e *RuntimeError) Error() string {
	if !e.fetched {
		return fmt.Sprintf("pc %d: %v", e.PC, e.Err)
	}

	return fmt.Sprintf("pc %d (%s %s): %v",
		e.PC, e.Inst.Category, e.Inst.Command, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
