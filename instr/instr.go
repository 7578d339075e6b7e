// Package instr defines the instructions of the Whitespace machine.
package instr

import (
	"fmt"
	"strings"

	"github.com/sarchlab/wsvm/codec"
)

// Inst is one decoded instruction. It is created by the lexer and never
// changed afterwards.
type Inst struct {
	Category Category
	Command  Command

	// Arg is the numeric parameter of push, copy and slide.
	Arg int64

	// Label is the raw label key of mark, call, jump, jz and jn.
	Label codec.Bits
}

// New creates an instruction without a parameter.
func New(cmd Command) Inst {
	return Inst{Category: cmd.Category(), Command: cmd}
}

// WithArg creates an instruction with a numeric parameter.
func WithArg(cmd Command, arg int64) Inst {
	return Inst{Category: cmd.Category(), Command: cmd, Arg: arg}
}

// WithLabel creates an instruction with a label parameter.
func WithLabel(cmd Command, label codec.Bits) Inst {
	return Inst{Category: cmd.Category(), Command: cmd, Label: label}
}

// Param reports which kind of parameter the instruction carries.
func (i Inst) Param() ParamKind {
	return i.Command.Param()
}

func (i Inst) String() string {
	switch i.Param() {
	case ParamNumber:
		return fmt.Sprintf("%s %d", i.Command, i.Arg)
	case ParamLabel:
		return fmt.Sprintf("%s %s", i.Command, labelText(i.Label))
	default:
		return i.Command.String()
	}
}

func labelText(l codec.Bits) string {
	if l == "" {
		return `""`
	}
	return string(l)
}

// ToSTL renders whitespace as S, T and L so it can be read in messages.
func ToSTL(s string) string {
	return strings.NewReplacer(" ", "S", "\t", "T", "\n", "L").Replace(s)
}
