package core

import (
	"github.com/sarchlab/akita/v4/sim"
)

// Core drives a VM from a simulation engine. Each tick executes one
// instruction; ticking stops when the program ends or fails.
type Core struct {
	*sim.TickingComponent

	vm     *VM
	freq   sim.Freq
	cycles uint64
}

// VM returns the machine the core drives.
func (c *Core) VM() *VM {
	return c.vm
}

// Start schedules the first tick.
func (c *Core) Start() {
	c.TickNow()
}

// Tick runs the program for one cycle.
func (c *Core) Tick() (madeProgress bool) {
	if c.vm.Halted() || c.vm.Err() != nil {
		return false
	}

	halted, err := c.vm.Step()
	c.cycles++

	if err != nil {
		return false
	}

	return !halted
}

// Cycles returns the number of cycles that executed an instruction.
func (c *Core) Cycles() uint64 {
	return c.cycles
}

// SimulatedSeconds returns the time the executed cycles take at the
// core's frequency.
func (c *Core) SimulatedSeconds() float64 {
	return float64(c.cycles) / float64(c.freq)
}
