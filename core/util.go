package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
)

// LevelTrace is the level of per-instruction trace records. It sits above
// Info so traces are not filtered out by a default handler.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace logs a record at LevelTrace.
func Trace(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelTrace, msg, args...)
}

// PrintState renders the machine state as tables.
func PrintState(w io.Writer, vm *VM) {
	machine := table.NewWriter()
	machine.SetTitle("Machine")
	machine.AppendHeader(table.Row{"PC", "Steps", "Halted", "Error"})
	errText := ""
	if vm.Err() != nil {
		errText = vm.Err().Error()
	}
	machine.AppendRow(table.Row{vm.PC(), vm.Steps(), vm.Halted(), errText})
	fmt.Fprintln(w, machine.Render())

	stack := table.NewWriter()
	stack.SetTitle("Data Stack")
	stack.AppendHeader(table.Row{"Depth", "Value"})
	values := vm.Stack()
	for i := len(values) - 1; i >= 0; i-- {
		stack.AppendRow(table.Row{len(values) - 1 - i, values[i]})
	}
	fmt.Fprintln(w, stack.Render())

	calls := table.NewWriter()
	calls.SetTitle("Call Stack")
	calls.AppendHeader(table.Row{"Depth", "Return To"})
	returns := vm.CallStack()
	for i := len(returns) - 1; i >= 0; i-- {
		calls.AppendRow(table.Row{len(returns) - 1 - i, returns[i]})
	}
	fmt.Fprintln(w, calls.Render())

	heap := table.NewWriter()
	heap.SetTitle("Heap")
	heap.AppendHeader(table.Row{"Address", "Value"})
	cells := vm.Heap()
	addrs := make([]int64, 0, len(cells))
	for addr := range cells {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	for _, addr := range addrs {
		heap.AppendRow(table.Row{addr, cells[addr]})
	}
	fmt.Fprintln(w, heap.Render())
}

// LogState writes the machine state as one debug record.
func LogState(logger *slog.Logger, vm *VM) {
	logger.Debug("StateCheckpoint",
		"PC", vm.PC(),
		"Steps", vm.Steps(),
		"Halted", vm.Halted(),
		"Stack", vm.Stack(),
		"CallStack", vm.CallStack(),
		"HeapCells", len(vm.state.Heap),
	)
}
