package core

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sarchlab/wsvm/console"
	"github.com/sarchlab/wsvm/instr"
	"github.com/sarchlab/wsvm/program"
)

type vmState struct {
	PC        int
	Stack     []int64
	Heap      map[int64]int64
	CallStack []int

	Code   program.Program
	Labels LabelTable

	Halted bool
	Steps  int64
}

func newVMState(p program.Program) vmState {
	return vmState{
		Heap:   make(map[int64]int64),
		Code:   p,
		Labels: ResolveLabels(p),
	}
}

func (s *vmState) push(v int64) {
	s.Stack = append(s.Stack, v)
}

func (s *vmState) pop() int64 {
	v := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return v
}

func (s *vmState) top() int64 {
	return s.Stack[len(s.Stack)-1]
}

func (s *vmState) need(n int) error {
	if len(s.Stack) < n {
		return fmt.Errorf("%w: need %d, have %d", ErrStackUnderflow, n, len(s.Stack))
	}
	return nil
}

// instEmulator executes one instruction against a state. The program
// counter has already been advanced past the instruction.
type instEmulator struct {
	console console.Console
}

func (i instEmulator) RunInst(inst instr.Inst, state *vmState) error {
	switch inst.Category {
	case instr.Stack:
		return i.runStack(inst, state)
	case instr.Arithmetic:
		return i.runArithmetic(inst, state)
	case instr.Heap:
		return i.runHeap(inst, state)
	case instr.Flow:
		return i.runFlow(inst, state)
	case instr.IO:
		return i.runIO(inst, state)
	default:
		panic(fmt.Sprintf("unknown category %d at PC %d", inst.Category, state.PC-1))
	}
}

func (i instEmulator) runStack(inst instr.Inst, state *vmState) error {
	switch inst.Command {
	case instr.Push:
		state.push(inst.Arg)
	case instr.Duplicate:
		if err := state.need(1); err != nil {
			return err
		}
		state.push(state.top())
	case instr.Copy:
		return i.runCopy(inst.Arg, state)
	case instr.Swap:
		if err := state.need(2); err != nil {
			return err
		}
		n := len(state.Stack)
		state.Stack[n-1], state.Stack[n-2] = state.Stack[n-2], state.Stack[n-1]
	case instr.Discard:
		if err := state.need(1); err != nil {
			return err
		}
		state.pop()
	case instr.Slide:
		return i.runSlide(inst.Arg, state)
	default:
		panic("unknown stack command " + inst.Command.String())
	}

	return nil
}

func (i instEmulator) runCopy(n int64, state *vmState) error {
	if err := state.need(1); err != nil {
		return err
	}

	depth := int64(len(state.Stack))
	if n < 0 || n >= depth {
		return fmt.Errorf("%w: copy %d of %d", ErrOutOfRange, n, depth)
	}

	state.push(state.Stack[depth-1-n])

	return nil
}

// runSlide drops n values under the top and keeps the top.
func (i instEmulator) runSlide(n int64, state *vmState) error {
	if err := state.need(1); err != nil {
		return err
	}

	depth := int64(len(state.Stack))
	if n < 0 || n > depth-1 {
		return fmt.Errorf("%w: slide %d of %d", ErrOutOfRange, n, depth)
	}

	top := state.pop()
	state.Stack = state.Stack[:depth-1-n]
	state.push(top)

	return nil
}

func (i instEmulator) runArithmetic(inst instr.Inst, state *vmState) error {
	if err := state.need(2); err != nil {
		return err
	}

	n := len(state.Stack)
	a, b := state.Stack[n-2], state.Stack[n-1]

	var (
		res int64
		err error
	)

	switch inst.Command {
	case instr.Add:
		res, err = add(a, b)
	case instr.Sub:
		res, err = sub(a, b)
	case instr.Mul:
		res, err = mul(a, b)
	case instr.Div:
		res, err = div(a, b)
	case instr.Mod:
		res, err = mod(a, b)
	default:
		panic("unknown arithmetic command " + inst.Command.String())
	}

	if err != nil {
		return err
	}

	state.Stack = state.Stack[:n-2]
	state.push(res)

	return nil
}

func add(a, b int64) (int64, error) {
	r := a + b
	if (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return r, nil
}

func sub(a, b int64) (int64, error) {
	r := a - b
	if (a >= 0 && b < 0 && r < 0) || (a < 0 && b > 0 && r >= 0) {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return r, nil
}

func mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	r := a * b
	if r/b != a ||
		(a == -1 && b == math.MinInt64) ||
		(b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}

	return r, nil
}

// div rounds toward negative infinity.
func div(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == math.MinInt64 && b == -1 {
		return 0, fmt.Errorf("%w: %d / %d", ErrOverflow, a, b)
	}

	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q, nil
}

// mod takes the sign of the divisor, matching div.
func mod(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}

	return m, nil
}

func (i instEmulator) runHeap(inst instr.Inst, state *vmState) error {
	switch inst.Command {
	case instr.Store:
		if err := state.need(2); err != nil {
			return err
		}

		n := len(state.Stack)
		addr, value := state.Stack[n-2], state.Stack[n-1]
		if addr < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeAddress, addr)
		}

		state.Heap[addr] = value
		state.Stack = state.Stack[:n-2]
	case instr.Retrieve:
		if err := state.need(1); err != nil {
			return err
		}

		addr := state.top()
		if addr < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeAddress, addr)
		}

		value, ok := state.Heap[addr]
		if !ok {
			return fmt.Errorf("%w: %d", ErrUnsetHeapAddress, addr)
		}

		state.Stack[len(state.Stack)-1] = value
	default:
		panic("unknown heap command " + inst.Command.String())
	}

	return nil
}

func (i instEmulator) runFlow(inst instr.Inst, state *vmState) error {
	switch inst.Command {
	case instr.Mark:
	case instr.Call:
		target, err := state.Labels.Lookup(inst.Label)
		if err != nil {
			return err
		}
		state.CallStack = append(state.CallStack, state.PC)
		state.PC = target
	case instr.Jump:
		return i.jump(inst, state)
	case instr.JumpZero:
		if err := state.need(1); err != nil {
			return err
		}
		if state.pop() == 0 {
			return i.jump(inst, state)
		}
	case instr.JumpNegative:
		if err := state.need(1); err != nil {
			return err
		}
		if state.pop() < 0 {
			return i.jump(inst, state)
		}
	case instr.Return:
		n := len(state.CallStack)
		if n == 0 {
			return ErrNoActiveCall
		}
		state.PC = state.CallStack[n-1]
		state.CallStack = state.CallStack[:n-1]
	case instr.End:
		state.Halted = true
	default:
		panic("unknown flow command " + inst.Command.String())
	}

	return nil
}

func (i instEmulator) jump(inst instr.Inst, state *vmState) error {
	target, err := state.Labels.Lookup(inst.Label)
	if err != nil {
		return err
	}

	state.PC = target

	return nil
}

func (i instEmulator) runIO(inst instr.Inst, state *vmState) error {
	if err := state.need(1); err != nil {
		return err
	}

	switch inst.Command {
	case instr.OutputChar:
		v := state.top()
		if v < 0 || v > utf8.MaxRune {
			return fmt.Errorf("%w: %d is not a character", ErrOutOfRange, v)
		}
		if err := i.console.WriteChar(rune(v)); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
		state.pop()
	case instr.OutputNumber:
		if err := i.console.WriteNumber(state.top()); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
		state.pop()
	case instr.InputChar:
		return i.runInput(state, i.readChar)
	case instr.InputNumber:
		return i.runInput(state, i.readNumber)
	default:
		panic("unknown io command " + inst.Command.String())
	}

	return nil
}

// runInput reads a value and stores it at the address on top of the
// stack.
func (i instEmulator) runInput(
	state *vmState,
	read func() (int64, error),
) error {
	addr := state.top()
	if addr < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAddress, addr)
	}

	v, err := read()
	if err != nil {
		return err
	}

	state.Heap[addr] = v
	state.pop()

	return nil
}

func (i instEmulator) readChar() (int64, error) {
	r, err := i.console.ReadChar()
	if errors.Is(err, io.EOF) {
		return 0, ErrEndOfInput
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}

	return int64(r), nil
}

func (i instEmulator) readNumber() (int64, error) {
	line, err := i.console.ReadLine()
	if errors.Is(err, io.EOF) {
		return 0, ErrEndOfInput
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}

	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, line)
	}

	return n, nil
}
