// Package api defines the driver API for running whitespace programs.
package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/wsvm/config"
	"github.com/sarchlab/wsvm/console"
	"github.com/sarchlab/wsvm/core"
	"github.com/sarchlab/wsvm/program"
	"github.com/sarchlab/wsvm/verify"
)

// Driver provides the interface to load and run programs.
type Driver interface {
	// Load reads a program file in the configured notation.
	Load(path string) (program.Program, error)

	// Lint checks a program and logs every issue found. It returns the
	// issues so that callers can report them.
	Lint(p program.Program) []verify.Issue

	// Run executes a program. With linting enabled, programs with lint
	// errors are not started.
	Run(p program.Program) (Result, error)

	// RunFile loads and runs a program file.
	RunFile(path string) (Result, error)
}

// Result describes a finished run. VM is set whenever the program
// started, including runs that failed.
type Result struct {
	VM *core.VM

	Steps   int64
	Clocked bool

	// Cycles and SimulatedSeconds are only set by clocked runs.
	Cycles           uint64
	SimulatedSeconds float64
}

type driverImpl struct {
	name    string
	engine  sim.Engine
	config  config.Config
	console console.Console
	logger  *slog.Logger
}

func (d *driverImpl) Load(path string) (program.Program, error) {
	if d.config.Notation == config.NotationSTL {
		return program.LoadFileSTL(path)
	}

	return program.LoadFile(path)
}

func (d *driverImpl) Lint(p program.Program) []verify.Issue {
	issues := verify.RunLint(p)

	for _, issue := range issues {
		level := slog.LevelWarn
		if issue.Severity == verify.SeverityError {
			level = slog.LevelError
		}

		d.logger.Log(context.Background(), level, issue.Message,
			"Type", issue.Type,
			"PC", issue.PC,
		)
	}

	return issues
}

func (d *driverImpl) RunFile(path string) (Result, error) {
	p, err := d.Load(path)
	if err != nil {
		return Result{}, err
	}

	return d.Run(p)
}

func (d *driverImpl) Run(p program.Program) (Result, error) {
	if d.config.Lint {
		issues := d.Lint(p)
		if verify.HasErrors(issues) {
			return Result{}, fmt.Errorf("%w: %d issue(s)",
				verify.ErrLintFailed, len(issues))
		}
	}

	builder := core.NewBuilder().
		WithConfig(d.config).
		WithConsole(d.console).
		WithLogger(d.logger)

	if d.config.Clocked {
		return d.runClocked(builder, p)
	}

	vm := builder.Build(p)
	err := vm.Run()
	core.LogState(d.logger, vm)

	return Result{VM: vm, Steps: vm.Steps()}, err
}

func (d *driverImpl) runClocked(
	builder core.Builder,
	p program.Program,
) (Result, error) {
	engine := d.engine
	if engine == nil {
		engine = sim.NewSerialEngine()
	}

	c := builder.WithEngine(engine).BuildCore(d.name+".Core", p)
	c.Start()

	if err := engine.Run(); err != nil {
		return Result{}, err
	}

	vm := c.VM()
	core.LogState(d.logger, vm)

	result := Result{
		VM:               vm,
		Steps:            vm.Steps(),
		Clocked:          true,
		Cycles:           c.Cycles(),
		SimulatedSeconds: c.SimulatedSeconds(),
	}

	flushErr := vm.Flush()
	if err := vm.Err(); err != nil {
		return result, err
	}

	return result, flushErr
}
