package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/domsearch/pkg/cache"
	"github.com/matzehuels/domsearch/pkg/domset"
	"github.com/matzehuels/domsearch/pkg/graph"
	dsio "github.com/matzehuels/domsearch/pkg/io"
	"github.com/matzehuels/domsearch/pkg/observability"
)

// keyTypeSolution labels cache hook events.
const keyTypeSolution = "solution"

// Runner encapsulates solving with a best-known store.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// GraphHash returns the content hash of g's canonical PACE serialization.
func GraphHash(g *graph.Graph) (string, error) {
	return cache.HashWriter(func(w io.Writer) error { return dsio.WriteGraph(w, g) })
}

// Solve searches for a small dominating set of g until ctx is done,
// opts.Timeout elapses or every worker reaches its round limit.
//
// Cache failures are logged and never fail the solve. A stored solution that
// does not verify against g is discarded.
func (r *Runner) Solve(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	if err := opts.ValidateForSolve(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	hash, err := GraphHash(g)
	if err != nil {
		return nil, fmt.Errorf("hash graph: %w", err)
	}
	result := &Result{GraphHash: hash}
	key := r.Keyer.SolutionKey(hash)

	var known *dsio.Solution
	if !opts.Refresh {
		known, result.CacheInfo = r.lookup(ctx, g, key)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	hooks := observability.Solver()
	hooks.OnSolveStart(ctx, g.N(), g.M(), opts.Workers)
	r.Logger.Debug("solving", "vertices", g.N(), "edges", g.M(), "workers", opts.Workers, "seed", opts.Seed, "timeout", opts.Timeout)

	start := time.Now()
	best, stats, err := runPortfolio(ctx, g, opts)
	if err != nil {
		hooks.OnSolveComplete(ctx, 0, stats.Rounds, time.Since(start), err)
		return nil, err
	}
	stats.Vertices, stats.Edges = g.N(), g.M()
	result.Stats = stats
	hooks.OnSolveComplete(ctx, best.Size, stats.Rounds, time.Since(start), nil)

	result.Solution = &dsio.Solution{
		Size:      best.Size,
		Vertices:  best.Vertices,
		GraphHash: hash,
		Rounds:    best.Stats.Rounds,
		Seed:      opts.Seed + uint64(stats.Winner),
	}
	result.BestKnown = result.Solution

	if known != nil && known.Size <= best.Size {
		result.BestKnown = known
	} else {
		// ctx is usually done by now.
		var newer *dsio.Solution
		result.Stored, newer = r.store(context.WithoutCancel(ctx), g, key, result.Solution)
		if newer != nil {
			result.BestKnown = newer
		}
	}

	r.Logger.Info("solved",
		"size", best.Size,
		"best_known", result.BestKnown.Size,
		"rounds", stats.Rounds,
		"workers", stats.Workers,
		"duration", stats.Duration)
	return result, nil
}

// BestKnown returns the verified stored solution for g, or nil.
func (r *Runner) BestKnown(ctx context.Context, g *graph.Graph) (*dsio.Solution, error) {
	hash, err := GraphHash(g)
	if err != nil {
		return nil, fmt.Errorf("hash graph: %w", err)
	}
	known, _ := r.lookup(ctx, g, r.Keyer.SolutionKey(hash))
	return known, nil
}

// lookup fetches and verifies the stored solution under key.
func (r *Runner) lookup(ctx context.Context, g *graph.Graph, key string) (*dsio.Solution, CacheInfo) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("best-known lookup failed", "error", err)
		return nil, CacheInfo{}
	}
	if !hit {
		hooks.OnCacheMiss(ctx, keyTypeSolution)
		return nil, CacheInfo{}
	}

	sol, err := decodeVerified(g, data)
	if err != nil {
		r.Logger.Warn("discarding stored solution", "error", err)
		_ = r.Cache.Delete(ctx, key)
		hooks.OnCacheMiss(ctx, keyTypeSolution)
		return nil, CacheInfo{Rejected: true}
	}

	hooks.OnCacheHit(ctx, keyTypeSolution)
	r.Logger.Debug("best-known solution", "size", sol.Size)
	return sol, CacheInfo{Hit: true}
}

// store writes sol under key unless the entry present at write time is a
// verified set of at most the same size, which it then returns. The check
// and the write are one Cache.Update, so a better set stored by a
// concurrent solve since the lookup is never overwritten.
func (r *Runner) store(ctx context.Context, g *graph.Graph, key string, sol *dsio.Solution) (bool, *dsio.Solution) {
	data, err := json.Marshal(sol)
	if err != nil {
		r.Logger.Warn("encode solution", "error", err)
		return false, nil
	}

	var newer *dsio.Solution
	wrote, err := r.Cache.Update(ctx, key, 0, func(current []byte, found bool) ([]byte, bool) {
		newer = nil
		if found {
			if cur, err := decodeVerified(g, current); err == nil && cur.Size <= sol.Size {
				newer = cur
				return nil, false
			}
		}
		return data, true
	})
	if err != nil {
		r.Logger.Warn("best-known store failed", "error", err)
		return false, nil
	}
	if newer != nil {
		r.Logger.Debug("kept concurrently stored solution", "size", newer.Size)
	}
	if wrote {
		observability.Cache().OnCacheSet(ctx, keyTypeSolution, len(data))
	}
	return wrote, newer
}

// decodeVerified parses a stored solution and checks it against g.
func decodeVerified(g *graph.Graph, data []byte) (*dsio.Solution, error) {
	sol, err := dsio.ReadJSON(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if err := domset.Verify(g, sol.Vertices); err != nil {
		return nil, err
	}
	return sol, nil
}
