package domset

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/matzehuels/domsearch/pkg/graph"
)

// Result is a verified dominating set.
type Result struct {
	// Vertices lists the selected vertices in ascending order.
	Vertices []int32
	// Size equals len(Vertices) and the best size the solver recorded.
	Size int
	// Stats describes the run that produced the set.
	Stats Stats
}

// Stats describes a solver run.
type Stats struct {
	Vertices    int           // Vertices in the graph
	Eligible    int           // Vertices left eligible by Reduce
	InitialSize int           // Size of the starting set (== Eligible)
	Rounds      int64         // Rounds completed
	Rollbacks   int64         // Rollbacks to the best state during the search
	Divisor     int           // Perturbation divisor at the end of the run
	Duration    time.Duration // Wall time spent in Run
}

// Solver runs the local search on one graph. Create it with New.
type Solver struct {
	g        *graph.Graph
	opts     Options
	stop     *Stopper
	eligible []bool
	st       *state
	rng      *rand.Rand

	undo  []int32 // +(v+1) for a selection, -(v+1) for a deselection
	queue []int32 // vertices to try removing next round

	best          int
	tillReset     int
	improvements  []int64 // rounds that recorded a best, oldest first
	divisor       int
	sinceIncrease int64
	round         int64
	rollbacks     int64
	duration      time.Duration
}

// New prepares a solver for g: it reduces the candidate set and selects
// every eligible vertex. Parallel edges in g are ignored.
func New(g *graph.Graph, opts Options) (*Solver, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g = g.Simple()
	eligible := Reduce(g)
	st := newState(g, eligible)

	s := &Solver{
		g:         g,
		opts:      opts,
		stop:      &Stopper{},
		eligible:  eligible,
		st:        st,
		rng:       rand.New(rand.NewPCG(opts.Seed, opts.Seed)),
		queue:     make([]int32, 0, st.size),
		best:      st.size,
		tillReset: opts.ResetPatience,
		divisor:   opts.InitialDivisor,
	}
	for v := int32(0); v < int32(g.N()); v++ {
		if eligible[v] {
			s.queue = append(s.queue, v)
		}
	}
	return s, nil
}

// Stopper returns the solver's stop signal. It may be triggered from any
// goroutine at any time, including before Run.
func (s *Solver) Stopper() *Stopper { return s.stop }

// Eligible reports whether Reduce kept v as a candidate.
func (s *Solver) Eligible(v int32) bool { return s.eligible[v] }

// Best returns the smallest size recorded so far. It must not be called
// concurrently with Run.
func (s *Solver) Best() int { return s.best }

// Run searches until the stopper fires, ctx is done or Options.MaxRounds
// rounds have completed, then restores the best recorded set, verifies it
// and returns it. Stopping is observed only between rounds.
//
// Run returns an INVARIANT_VIOLATION error instead of a result if the
// restored set fails verification.
func (s *Solver) Run(ctx context.Context) (*Result, error) {
	if ctx.Err() != nil {
		s.stop.Stop()
	}
	release := context.AfterFunc(ctx, s.stop.Stop)
	defer release()

	start := time.Now()
	for !s.stop.Stopped() {
		if s.opts.MaxRounds > 0 && s.round >= s.opts.MaxRounds {
			break
		}
		s.step()
		s.round++
	}
	s.rollback()
	s.duration += time.Since(start)

	return s.Extract()
}

// step runs one round.
func (s *Solver) step() {
	t := s.round
	if t%int64(s.opts.ShuffleEvery) == 0 {
		s.rng.Shuffle(len(s.queue), func(i, j int) {
			s.queue[i], s.queue[j] = s.queue[j], s.queue[i]
		})
	}

	for _, v := range s.queue {
		if s.st.removable(v) {
			s.st.deselectVertex(v)
			s.undo = append(s.undo, -(v + 1))
		}
	}
	s.queue = s.queue[:0]

	improved := s.st.size < s.best
	if s.st.size <= s.best {
		s.best = s.st.size
		s.undo = s.undo[:0]
		s.tillReset = s.opts.ResetPatience
		s.improvements = append(s.improvements, t)
	} else {
		s.tillReset--
		if s.tillReset == 0 {
			s.rollback()
			s.rollbacks++
			s.tillReset = s.opts.ResetPatience
		}
	}

	s.adapt(t)
	s.report(t, improved)
	s.perturb()
}

// adapt grows the divisor, shrinking perturbations, when improvements
// have become rare.
func (s *Solver) adapt(t int64) {
	s.sinceIncrease++
	window := int64(s.opts.Window)
	drop := 0
	for drop < len(s.improvements) && s.improvements[drop] < t-window {
		drop++
	}
	s.improvements = s.improvements[drop:]

	if s.divisor < s.opts.MaxDivisor && s.sinceIncrease > window && len(s.improvements) < s.opts.MinImprovements {
		s.divisor += s.opts.DivisorStep
		s.sinceIncrease = 0
	}
}

// perturb makes max(n/divisor, MinAdditions) attempts to select a random
// eligible vertex. Added vertices and vertices they free are queued for
// the next round.
func (s *Solver) perturb() {
	n := s.g.N()
	if n == 0 {
		return
	}
	attempts := max(n/s.divisor, s.opts.MinAdditions)
	for range attempts {
		v := int32(s.rng.IntN(n))
		if s.st.selected[v] || !s.eligible[v] {
			continue
		}
		s.queue = s.st.selectVertex(v, s.queue)
		s.queue = append(s.queue, v)
		s.undo = append(s.undo, v+1)
	}
}

// rollback replays the undo log backwards, restoring the best state.
func (s *Solver) rollback() {
	if len(s.undo) == 0 {
		return
	}
	for i := len(s.undo) - 1; i >= 0; i-- {
		if a := s.undo[i]; a > 0 {
			s.st.deselectVertex(a - 1)
		} else {
			// Loads reaching zero are irrelevant here: the queue is
			// rebuilt by the next perturbation.
			s.st.selectVertex(-a-1, nil)
		}
	}
	s.undo = s.undo[:0]
}

func (s *Solver) report(t int64, improved bool) {
	if s.opts.Progress == nil {
		return
	}
	kind := ProgressImproved
	if !improved {
		if s.opts.ProgressEvery == 0 || (t+1)%s.opts.ProgressEvery != 0 {
			return
		}
		kind = ProgressHeartbeat
	}
	s.opts.Progress(Progress{
		Kind:      kind,
		Round:     t,
		Size:      s.st.size,
		Best:      s.best,
		Divisor:   s.divisor,
		Rollbacks: s.rollbacks,
	})
}

// stats snapshots the run statistics.
func (s *Solver) stats() Stats {
	eligible := 0
	for _, ok := range s.eligible {
		if ok {
			eligible++
		}
	}
	return Stats{
		Vertices:    s.g.N(),
		Eligible:    eligible,
		InitialSize: eligible,
		Rounds:      s.round,
		Rollbacks:   s.rollbacks,
		Divisor:     s.divisor,
		Duration:    s.duration,
	}
}
