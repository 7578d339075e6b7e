package program

import (
	"fmt"
	"strings"

	"github.com/sarchlab/wsvm/codec"
	"github.com/sarchlab/wsvm/instr"
)

// Program is an ordered list of instructions. Indices are addresses.
type Program []instr.Inst

// Listing returns one line per instruction, prefixed with its address.
func (p Program) Listing() string {
	var sb strings.Builder
	for i, inst := range p {
		fmt.Fprintf(&sb, "%4d  %s\n", i, inst)
	}
	return sb.String()
}

// Source renders the program back into whitespace source with the default
// ISA.
func (p Program) Source() string {
	return defaultISA.Render(p)
}

// Render encodes a program as whitespace source. Numbers use the minimal
// sign-magnitude form, so Render(Lex(s)) may differ from s while lexing to
// the same program.
func (isa *ISA) Render(p Program) string {
	var sb strings.Builder
	for _, inst := range p {
		code, ok := isa.Encoding(inst.Command)
		if !ok {
			panic("no encoding for " + inst.Command.String())
		}
		sb.WriteString(code)

		switch inst.Param() {
		case instr.ParamNumber:
			sb.WriteString(codec.Encode(inst.Arg).Whitespace())
			sb.WriteByte('\n')
		case instr.ParamLabel:
			sb.WriteString(inst.Label.Whitespace())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
