package core

import (
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/wsvm/config"
	"github.com/sarchlab/wsvm/console"
	"github.com/sarchlab/wsvm/program"
)

// Builder can create new VMs and clocked cores.
type Builder struct {
	console  console.Console
	logger   *slog.Logger
	trace    config.TraceMode
	maxSteps int64

	engine sim.Engine
	freq   sim.Freq
}

// NewBuilder creates a builder with a silent trace and a 1 GHz clock.
func NewBuilder() Builder {
	return Builder{
		trace: config.TraceNone,
		freq:  1 * sim.GHz,
	}
}

// WithConsole sets where the program reads and writes.
func (b Builder) WithConsole(c console.Console) Builder {
	b.console = c
	return b
}

// WithLogger sets the logger that receives trace records.
func (b Builder) WithLogger(logger *slog.Logger) Builder {
	b.logger = logger
	return b
}

// WithTrace sets the trace mode.
func (b Builder) WithTrace(mode config.TraceMode) Builder {
	b.trace = mode
	return b
}

// WithMaxSteps limits how many instructions a run may execute.
func (b Builder) WithMaxSteps(n int64) Builder {
	b.maxSteps = n
	return b
}

// WithEngine sets the engine that drives a clocked core.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of a clocked core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithConfig applies the run settings of a configuration.
func (b Builder) WithConfig(c config.Config) Builder {
	b.trace = c.Trace
	b.maxSteps = c.MaxSteps
	b.freq = sim.Freq(c.FreqMHz) * sim.MHz
	return b
}

// Build creates a VM for a program. Labels are resolved here, before the
// first step.
func (b Builder) Build(p program.Program) *VM {
	c := b.console
	if c == nil {
		c = console.New(os.Stdin, os.Stdout)
	}

	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &VM{
		state:    newVMState(p),
		emu:      instEmulator{console: c},
		logger:   logger,
		trace:    b.trace,
		maxSteps: b.maxSteps,
	}
}

// BuildCore creates a clocked core that runs a program one instruction
// per cycle.
func (b Builder) BuildCore(name string, p program.Program) *Core {
	if b.engine == nil {
		panic("a clocked core needs an engine")
	}

	c := &Core{
		vm:   b.Build(p),
		freq: b.freq,
	}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	return c
}
