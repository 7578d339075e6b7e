package core

import (
	"log/slog"

	"github.com/sarchlab/wsvm/config"
	"github.com/sarchlab/wsvm/program"
)

// VM runs one program. It owns all execution state and is not safe for
// concurrent use.
type VM struct {
	state vmState
	emu   instEmulator

	logger   *slog.Logger
	trace    config.TraceMode
	maxSteps int64

	err error
}

// Step executes one instruction. It returns halted once end_program has
// run. After an error every further call returns the same error.
func (vm *VM) Step() (halted bool, err error) {
	if vm.err != nil {
		return false, vm.err
	}
	if vm.state.Halted {
		return true, nil
	}

	pc := vm.state.PC
	if pc < 0 || pc >= len(vm.state.Code) {
		return false, vm.fail(&RuntimeError{PC: pc, Err: ErrMissingEnd})
	}

	if vm.maxSteps > 0 && vm.state.Steps >= vm.maxSteps {
		return false, vm.fail(&RuntimeError{PC: pc, Err: ErrStepLimit})
	}

	inst := vm.state.Code[pc]
	vm.state.PC++
	vm.state.Steps++

	if vm.trace == config.TraceAll {
		Trace(vm.logger, "Inst",
			"PC", pc,
			"Inst", inst.String(),
			"Depth", len(vm.state.Stack),
		)
	}

	if err := vm.emu.RunInst(inst, &vm.state); err != nil {
		return false, vm.fail(&RuntimeError{
			PC:      pc,
			Inst:    inst,
			fetched: true,
			Err:     err,
		})
	}

	if vm.state.Halted && vm.trace == config.TraceAll {
		Trace(vm.logger, "Halt", "PC", pc, "Steps", vm.state.Steps)
	}

	return vm.state.Halted, nil
}

// Run executes instructions until the program ends or fails. Console
// output is flushed on both paths.
func (vm *VM) Run() error {
	var err error
	for {
		var halted bool
		halted, err = vm.Step()
		if halted || err != nil {
			break
		}
	}

	if flushErr := vm.Flush(); err == nil && flushErr != nil {
		err = flushErr
	}

	return err
}

// Flush pushes buffered console output out.
func (vm *VM) Flush() error {
	return vm.emu.console.Flush()
}

func (vm *VM) fail(err *RuntimeError) error {
	vm.err = err
	vm.logger.Debug("RuntimeError", "PC", err.PC, "Error", err.Err)
	return err
}

// Program returns the program being run.
func (vm *VM) Program() program.Program {
	return vm.state.Code
}

// PC returns the address of the next instruction.
func (vm *VM) PC() int {
	return vm.state.PC
}

// Stack returns a copy of the data stack, bottom first.
func (vm *VM) Stack() []int64 {
	return append([]int64(nil), vm.state.Stack...)
}

// CallStack returns a copy of the pending return addresses, oldest first.
func (vm *VM) CallStack() []int {
	return append([]int(nil), vm.state.CallStack...)
}

// Heap returns a copy of the heap.
func (vm *VM) Heap() map[int64]int64 {
	heap := make(map[int64]int64, len(vm.state.Heap))
	for k, v := range vm.state.Heap {
		heap[k] = v
	}
	return heap
}

// Labels returns the resolved labels.
func (vm *VM) Labels() LabelTable {
	return vm.state.Labels
}

// Steps returns how many instructions have been executed.
func (vm *VM) Steps() int64 {
	return vm.state.Steps
}

// Halted reports whether end_program has run.
func (vm *VM) Halted() bool {
	return vm.state.Halted
}

// Err returns the error that stopped the run, if any.
func (vm *VM) Err() error {
	return vm.err
}
