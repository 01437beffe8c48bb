// Package engine drives the simulation on a fixed tick. The host loop feeds
// wall-clock deltas in; the accumulator converts them into zero or more fixed
// steps, capped per frame so a stalled frame cannot trigger unbounded
// catch-up integration.
package engine

import (
	"time"
)

// TickFunc advances the simulation by one fixed step of dt seconds
type TickFunc func(dt float64)

// Loop is the fixed-step accumulator. Single-threaded: Advance must only be
// called from the host loop goroutine
type Loop struct {
	step     time.Duration
	maxSteps int

	acc     time.Duration
	ticks   uint64
	dropped uint64
}

// NewLoop creates an accumulator with the given fixed step and per-frame cap
func NewLoop(step time.Duration, maxSteps int) *Loop {
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &Loop{
		step:     step,
		maxSteps: maxSteps,
	}
}

// Advance accumulates a wall-clock delta and invokes tick for every complete
// fixed step, up to the per-frame cap. Accumulated time beyond the cap is
// discarded rather than carried, trading simulated time for responsiveness
// under frame-rate collapse. Returns the number of steps executed
func (l *Loop) Advance(wall time.Duration, tick TickFunc) int {
	if wall < 0 {
		wall = 0
	}
	l.acc += wall

	dt := l.step.Seconds()
	steps := 0
	for l.acc >= l.step && steps < l.maxSteps {
		tick(dt)
		l.acc -= l.step
		steps++
	}

	if l.acc >= l.step {
		// Cap hit: discard the backlog, keep sub-step remainder at zero so
		// the next frame starts clean
		l.dropped += uint64(l.acc / l.step)
		l.acc = 0
	}

	l.ticks += uint64(steps)
	return steps
}

// Step returns the fixed step duration
func (l *Loop) Step() time.Duration {
	return l.step
}

// Ticks returns the total executed step count
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Dropped returns the count of discarded steps from cap overruns
func (l *Loop) Dropped() uint64 {
	return l.dropped
}

// Reset clears the accumulator between races; tick and drop counters persist
// as session diagnostics
func (l *Loop) Reset() {
	l.acc = 0
}
