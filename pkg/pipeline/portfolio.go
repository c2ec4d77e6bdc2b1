package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/domsearch/pkg/domset"
	"github.com/matzehuels/domsearch/pkg/graph"
	"github.com/matzehuels/domsearch/pkg/observability"
)

// runPortfolio runs opts.Workers independent solvers on g and returns the
// smallest result, preferring the lowest worker index on ties. Every worker
// owns its state; the graph is shared read-only. Every solver is built
// before any starts, so a setup error leaves nothing running. All workers
// stop when ctx is done. An error from any worker cancels the others.
func runPortfolio(ctx context.Context, g *graph.Graph, opts Options) (*domset.Result, Stats, error) {
	solvers := make([]*domset.Solver, opts.Workers)
	for i := range solvers {
		so := opts.solverOptions(i)
		so.Progress = progressFunc(ctx, i, opts.Progress)

		s, err := domset.New(g, so)
		if err != nil {
			return nil, Stats{}, err
		}
		solvers[i] = s
	}

	results := make([]*domset.Result, opts.Workers)
	grp, gctx := errgroup.WithContext(ctx)

	start := time.Now()
	for i, s := range solvers {
		grp.Go(func() error {
			res, err := s.Run(gctx)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Workers: opts.Workers, Duration: time.Since(start)}
	var best *domset.Result
	for i, res := range results {
		stats.Rounds += res.Stats.Rounds
		stats.Rollbacks += res.Stats.Rollbacks
		stats.Eligible = res.Stats.Eligible
		if best == nil || res.Size < best.Size {
			best = res
			stats.Winner = i
		}
	}
	return best, stats, nil
}

// progressFunc forwards a worker's progress to the caller's callback and
// reports improvements to the solver hooks.
func progressFunc(ctx context.Context, worker int, fn func(int, domset.Progress)) func(domset.Progress) {
	hooks := observability.Solver()
	return func(p domset.Progress) {
		if p.Kind == domset.ProgressImproved {
			hooks.OnImprove(ctx, worker, p.Round, p.Best)
		}
		if fn != nil {
			fn(worker, p)
		}
	}
}
