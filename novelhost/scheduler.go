package novelhost

import (
	"context"
	"time"

	"github.com/reusee/novel/novelvm"
)

// Scheduler drives an engine the way an editor frame loop does:
// one step per tick, then as many follow-up steps as CanRecurStep allows, up to StepsPerTick.
type Scheduler struct {
	Engine       *novelvm.Engine
	StepsPerTick int
	TickInterval time.Duration
}

// Tick performs one host tick and returns the number of steps executed.
func (s *Scheduler) Tick() int {
	e := s.Engine
	if !e.CanStep() {
		return 0
	}
	budget := max(s.StepsPerTick, 1)

	// faults are recorded in the engine state
	_ = e.Step()
	n := 1
	for n < budget && e.CanRecurStep() {
		_ = e.Step()
		n++
	}
	return n
}

// Run ticks until the engine stops running: halted, faulted, waiting for input, or never started.
// onTick is called after every tick.
func (s *Scheduler) Run(ctx context.Context, onTick func(steps int)) error {
	interval := s.TickInterval
	if interval <= 0 {
		interval = time.Millisecond * 16
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		n := s.Tick()
		if onTick != nil {
			onTick(n)
		}
		if !s.Engine.CanStep() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
