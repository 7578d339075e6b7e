package program

import "github.com/sarchlab/wsvm/instr"

var defaultISA = newDefaultISA()

// DefaultISA returns the standard Whitespace instruction set.
func DefaultISA() *ISA {
	return defaultISA
}

func newDefaultISA() *ISA {
	isa := NewISA("Whitespace 0.3")

	isa.registerCategory(" ", instr.Stack)
	isa.registerCategory("\t ", instr.Arithmetic)
	isa.registerCategory("\t\t", instr.Heap)
	isa.registerCategory("\n", instr.Flow)
	isa.registerCategory("\t\n", instr.IO)

	isa.registerNewInst(" ", instr.Push)
	isa.registerNewInst("\n ", instr.Duplicate)
	isa.registerNewInst("\t ", instr.Copy)
	isa.registerNewInst("\n\t", instr.Swap)
	isa.registerNewInst("\n\n", instr.Discard)
	isa.registerNewInst("\t\n", instr.Slide)

	isa.registerNewInst("  ", instr.Add)
	isa.registerNewInst(" \t", instr.Sub)
	isa.registerNewInst(" \n", instr.Mul)
	isa.registerNewInst("\t ", instr.Div)
	isa.registerNewInst("\t\t", instr.Mod)

	isa.registerNewInst(" ", instr.Store)
	isa.registerNewInst("\t", instr.Retrieve)

	isa.registerNewInst("  ", instr.Mark)
	isa.registerNewInst(" \t", instr.Call)
	isa.registerNewInst(" \n", instr.Jump)
	isa.registerNewInst("\t ", instr.JumpZero)
	isa.registerNewInst("\t\t", instr.JumpNegative)
	isa.registerNewInst("\t\n", instr.Return)
	isa.registerNewInst("\n\n", instr.End)

	isa.registerNewInst("  ", instr.OutputChar)
	isa.registerNewInst(" \t", instr.OutputNumber)
	isa.registerNewInst("\t ", instr.InputChar)
	isa.registerNewInst("\t\t", instr.InputNumber)

	return isa
}
