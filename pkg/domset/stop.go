package domset

import "sync/atomic"

// Stopper carries a one-shot stop request to a running Solver.
// Its methods are safe for concurrent use; the zero value is ready to use.
type Stopper struct {
	stopped atomic.Bool
}

// Stop requests the solver to finish at its next round boundary.
// Repeated calls are equivalent to one.
func (s *Stopper) Stop() { s.stopped.Store(true) }

// Stopped reports whether Stop has been called.
func (s *Stopper) Stopped() bool { return s.stopped.Load() }
