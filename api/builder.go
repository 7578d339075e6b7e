package api

import (
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/wsvm/config"
	"github.com/sarchlab/wsvm/console"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine  sim.Engine
	config  config.Config
	console console.Console
	logger  *slog.Logger
}

// MakeDriverBuilder creates a builder that runs with the default
// configuration.
func MakeDriverBuilder() DriverBuilder {
	return DriverBuilder{config: config.Default()}
}

// WithEngine sets the engine used for clocked runs. Without one, each
// clocked run creates a serial engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithConfig sets the run configuration.
func (b DriverBuilder) WithConfig(c config.Config) DriverBuilder {
	b.config = c
	return b
}

// WithConsole sets where programs read and write.
func (b DriverBuilder) WithConsole(c console.Console) DriverBuilder {
	b.console = c
	return b
}

// WithLogger sets the logger for lint findings and traces.
func (b DriverBuilder) WithLogger(logger *slog.Logger) DriverBuilder {
	b.logger = logger
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &driverImpl{
		name:    name,
		engine:  b.engine,
		config:  b.config,
		console: b.console,
		logger:  logger,
	}
}
