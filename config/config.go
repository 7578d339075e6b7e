// Package config holds the settings of an interpreter run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// TraceMode selects whether executed instructions are traced.
type TraceMode string

// Trace modes.
const (
	TraceNone TraceMode = "none"
	TraceAll  TraceMode = "trace"
)

// Notation is the form the program source is written in.
type Notation string

// Notations.
const (
	NotationWhitespace Notation = "whitespace"
	NotationSTL        Notation = "stl"
)

// Config is the configuration of one run.
type Config struct {
	// Trace emits one record per executed instruction when set to
	// TraceAll.
	Trace TraceMode `yaml:"trace"`

	// TraceFile, when set, receives log records in addition to stderr.
	TraceFile string `yaml:"trace_file"`

	Notation Notation `yaml:"notation"`

	// MaxSteps stops a run after that many instructions. 0 means no
	// limit.
	MaxSteps int64 `yaml:"max_steps"`

	// Clocked runs the program on a simulation engine, one instruction
	// per cycle.
	Clocked bool    `yaml:"clocked"`
	FreqMHz float64 `yaml:"freq_mhz"`

	// Lint checks the program before running it and refuses to run
	// programs with errors.
	Lint bool `yaml:"lint"`

	// DumpState prints the machine state when the run stops.
	DumpState bool `yaml:"dump_state"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Trace:    TraceNone,
		Notation: NotationWhitespace,
		FreqMHz:  1000,
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	return Read(f)
}

// Read decodes a YAML configuration on top of the defaults. Unknown keys
// are rejected.
func Read(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	c := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	switch c.Trace {
	case TraceNone, TraceAll:
	default:
		return fmt.Errorf("config: unknown trace mode %q", c.Trace)
	}

	switch c.Notation {
	case NotationWhitespace, NotationSTL:
	default:
		return fmt.Errorf("config: unknown notation %q", c.Notation)
	}

	if c.MaxSteps < 0 {
		return fmt.Errorf("config: max_steps must not be negative")
	}

	if c.Clocked && c.FreqMHz <= 0 {
		return fmt.Errorf("config: freq_mhz must be positive")
	}

	return nil
}
