package engine

import (
	"fmt"
	"time"
)

// EvalTimeout is the default limit for a single script run.
const EvalTimeout = 5 * time.Second

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout bounds every run by d. Values <= 0 keep EvalTimeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// run is one script run in flight.
type run struct {
	gen  uint64
	done chan outcome
}

type outcome struct {
	scenario *Scenario
	errors   []EvalError
	err      error
}

// start claims the next generation. Any run started earlier becomes stale.
func (e *Engine) start() run {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generation++
	return run{gen: e.generation, done: make(chan outcome, 1)}
}

// latest reports whether r is still the newest run.
func (e *Engine) latest(r run) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return r.gen == e.generation
}

// await blocks until r finishes or the timeout fires. A run that finished
// after a newer one was started reports itself superseded, so callers never
// see a stale scenario. The goroutine behind a timed-out run keeps going
// and its result is dropped into the buffered channel.
func (e *Engine) await(r run) (*Scenario, []EvalError, error) {
	timer := time.NewTimer(e.timeout)
	defer timer.Stop()

	select {
	case o := <-r.done:
		if !e.latest(r) {
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return o.scenario, o.errors, o.err
	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", e.timeout)
	}
}
