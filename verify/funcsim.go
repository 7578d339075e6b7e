package verify

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/sarchlab/wsvm/console"
	"github.com/sarchlab/wsvm/core"
	"github.com/sarchlab/wsvm/program"
)

// DryRunResult captures what a bounded run of a program produced.
type DryRunResult struct {
	Output string
	Steps  int64
	Halted bool
	Err    error
}

// DryRun executes the program with input as the whole of standard input
// and stops after maxSteps instructions. Nothing is written to the
// process's own streams.
func DryRun(p program.Program, input string, maxSteps int64) DryRunResult {
	out := new(bytes.Buffer)

	vm := core.NewBuilder().
		WithConsole(console.New(strings.NewReader(input), out)).
		WithLogger(slog.New(slog.DiscardHandler)).
		WithMaxSteps(maxSteps).
		Build(p)

	err := vm.Run()

	return DryRunResult{
		Output: out.String(),
		Steps:  vm.Steps(),
		Halted: vm.Halted(),
		Err:    err,
	}
}
