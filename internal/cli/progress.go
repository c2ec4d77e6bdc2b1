package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/domsearch/pkg/domset"
	"github.com/matzehuels/domsearch/pkg/pipeline"
)

// heartbeatEvery is the number of rounds between solver heartbeats. The
// reporter rate-limits what it logs, so this only bounds how stale a
// "Searching..." line can be.
const heartbeatEvery = 2000

// logInterval is the minimum time between heartbeat log lines.
const logInterval = 10 * time.Second

// solveReporter logs search progress: the first set found, every
// improvement and a periodic heartbeat. Workers call onProgress
// concurrently.
type solveReporter struct {
	prog    *progress
	logger  *log.Logger
	timeout time.Duration

	mu      sync.Mutex
	best    int
	rounds  map[int]int64
	start   time.Time
	lastLog time.Time
}

// newSolveReporter creates a reporter with the logger from ctx.
func newSolveReporter(ctx context.Context, timeout time.Duration) *solveReporter {
	logger := loggerFromContext(ctx)
	return &solveReporter{
		prog:    newProgress(logger),
		logger:  logger,
		timeout: timeout,
		best:    -1,
		rounds:  make(map[int]int64),
		start:   time.Now(),
	}
}

// attach routes opts' progress callbacks through the reporter, keeping any
// callback already set.
func (r *solveReporter) attach(opts *pipeline.Options) {
	next := opts.Progress
	opts.Progress = func(worker int, p domset.Progress) {
		r.onProgress(worker, p)
		if next != nil {
			next(worker, p)
		}
	}
	if opts.Solver.ProgressEvery == 0 {
		opts.Solver.ProgressEvery = heartbeatEvery
	}
}

// onProgress is called by every worker after each reported round.
func (r *solveReporter) onProgress(worker int, p domset.Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rounds[worker] = p.Round + 1
	switch {
	case r.best < 0:
		r.logger.Infof("Initial: %d vertices (worker %d)", p.Best, worker)
		r.lastLog = time.Now()
	case p.Best < r.best:
		r.logger.Infof("Improved: %d vertices (↓%d, worker %d, round %d)", p.Best, r.best-p.Best, worker, p.Round)
		r.lastLog = time.Now()
	default:
		if time.Since(r.lastLog) >= logInterval {
			elapsed := time.Since(r.start).Truncate(time.Second)
			if r.timeout > 0 {
				r.logger.Infof("Searching... %v/%v elapsed, best %d (%d rounds, divisor %d)", elapsed, r.timeout, r.best, r.totalRounds(), p.Divisor)
			} else {
				r.logger.Infof("Searching... %v elapsed, best %d (%d rounds, divisor %d)", elapsed, r.best, r.totalRounds(), p.Divisor)
			}
			r.lastLog = time.Now()
		}
	}
	if r.best < 0 || p.Best < r.best {
		r.best = p.Best
	}
}

func (r *solveReporter) totalRounds() int64 {
	var total int64
	for _, n := range r.rounds {
		total += n
	}
	return total
}

// done logs the final result.
func (r *solveReporter) done(res *pipeline.Result) {
	r.prog.done(fmt.Sprintf("Search complete: %d vertices", res.Solution.Size))
	r.logger.Infof("Best: %d vertices (%d rounds, %d rollbacks, %d/%d candidates)",
		res.Solution.Size, res.Stats.Rounds, res.Stats.Rollbacks, res.Stats.Eligible, res.Stats.Vertices)
	if res.BestKnown != nil && res.BestKnown.Size < res.Solution.Size {
		r.logger.Warnf("A smaller set of %d vertices is stored for this graph; use --best to print it", res.BestKnown.Size)
	}
}
