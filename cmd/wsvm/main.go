// Command wsvm runs whitespace programs.
//
//	wsvm [flags] program.ws
//
// The program reads standard input and writes standard output. Logs and
// traces go to standard error and, when a trace file is configured, to
// that file as well.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/wsvm/api"
	"github.com/sarchlab/wsvm/config"
	"github.com/sarchlab/wsvm/console"
	"github.com/sarchlab/wsvm/core"
	"github.com/sarchlab/wsvm/verify"
)

var (
	configFile = flag.String("config", "", "YAML configuration file")
	trace      = flag.Bool("trace", false, "trace every executed instruction")
	traceFile  = flag.String("trace-file", "", "also write logs to this file")
	stl        = flag.Bool("stl", false, "the program is written in S/T/L notation")
	maxSteps   = flag.Int64("max-steps", 0, "stop after this many instructions (0: no limit)")
	clocked    = flag.Bool("clocked", false, "run on a simulation engine, one instruction per cycle")
	freq       = flag.Float64("freq", 1000, "clock frequency in MHz for -clocked")
	lint       = flag.Bool("lint", false, "check the program and refuse to run it on errors")
	dump       = flag.Bool("dump", false, "print the machine state when the run stops")
	list       = flag.Bool("list", false, "print the instruction listing and exit")
	report     = flag.Bool("verify", false, "lint and dry-run the program, print a report and exit")
	verbose    = flag.Bool("v", false, "log at debug level")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [flags] program.ws\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		atexit.Exit(2)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(2)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	atexit.Exit(run(cfg, logger, flag.Arg(0)))
}

// loadConfig reads the configuration file, if any, and applies the flags
// given on the command line on top of it.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			return cfg, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cfg.Trace = config.TraceNone
			if *trace {
				cfg.Trace = config.TraceAll
			}
		case "trace-file":
			cfg.TraceFile = *traceFile
		case "stl":
			cfg.Notation = config.NotationWhitespace
			if *stl {
				cfg.Notation = config.NotationSTL
			}
		case "max-steps":
			cfg.MaxSteps = *maxSteps
		case "clocked":
			cfg.Clocked = *clocked
		case "freq":
			cfg.FreqMHz = *freq
		case "lint":
			cfg.Lint = *lint
		case "dump":
			cfg.DumpState = *dump
		}
	})

	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) (*slog.Logger, error) {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	handlers := []slog.Handler{slog.NewTextHandler(os.Stderr, opts)}

	if cfg.TraceFile != "" {
		f, err := os.Create(cfg.TraceFile)
		if err != nil {
			return nil, fmt.Errorf("cannot create trace file: %w", err)
		}
		atexit.Register(func() { f.Close() })

		handlers = append(handlers, slog.NewTextHandler(f, opts))
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

func run(cfg config.Config, logger *slog.Logger, path string) int {
	con := console.New(os.Stdin, os.Stdout)
	atexit.Register(func() { con.Flush() })

	driver := api.MakeDriverBuilder().
		WithConfig(cfg).
		WithConsole(con).
		WithLogger(logger).
		Build("Driver")

	p, err := driver.Load(path)
	if err != nil {
		logger.Error("cannot load program", "Path", path, "Error", err)
		return 1
	}

	switch {
	case *list:
		fmt.Print(p.Listing())
		return 0
	case *report:
		r := verify.GenerateReport(p, "", defaultDryRunSteps(cfg))
		r.WriteReport(os.Stdout)
		if !r.Passed() {
			return 1
		}
		return 0
	}

	result, err := driver.Run(p)

	if cfg.DumpState && result.VM != nil {
		con.Flush()
		core.PrintState(os.Stderr, result.VM)
	}

	if result.Clocked {
		logger.Debug("Clocked run",
			"Cycles", result.Cycles,
			"SimulatedSeconds", result.SimulatedSeconds,
		)
	}

	if err != nil {
		logRunError(logger, err)
		return 1
	}

	return 0
}

func defaultDryRunSteps(cfg config.Config) int64 {
	if cfg.MaxSteps > 0 {
		return cfg.MaxSteps
	}
	return 1_000_000
}

func logRunError(logger *slog.Logger, err error) {
	var rtErr *core.RuntimeError
	if errors.As(err, &rtErr) {
		logger.Error("runtime error", "PC", rtErr.PC, "Error", err)
		return
	}

	logger.Error("run failed", "Error", err)
}
