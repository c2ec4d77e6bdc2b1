// Package pipeline runs the dominating-set solver the same way for the CLI
// and the HTTP API.
//
// # Architecture
//
// A solve goes through three steps:
//
//  1. Lookup: hash the graph and fetch its best-known solution from the cache,
//     re-verifying it against the graph before trusting it
//  2. Search: run one solver, or a portfolio of solvers with consecutive
//     seeds, until the context is done, the timeout elapses or every worker
//     hits its round limit
//  3. Store: keep the winner as the new best-known solution if it is smaller
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Seed:    1,
//	    Timeout: 30 * time.Second,
//	    Workers: 4,
//	}
//	result, err := runner.Solve(ctx, g, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Solution.Size)
//
// Options can also be loaded from a TOML profile with [LoadProfile].
package pipeline

import (
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/domsearch/pkg/domset"
	"github.com/matzehuels/domsearch/pkg/errors"
	dsio "github.com/matzehuels/domsearch/pkg/io"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWorkers is the number of concurrent solvers.
	DefaultWorkers = 1

	// DefaultServeTimeout bounds a solve requested over HTTP without an
	// explicit timeout.
	DefaultServeTimeout = 10 * time.Second

	// MaxServeTimeout is the longest solve the HTTP API accepts.
	MaxServeTimeout = 5 * time.Minute
)

// MaxWorkers caps the portfolio size.
var MaxWorkers = 4 * runtime.NumCPU()

// Format constants for rendered output.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported render formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
	FormatPNG: true,
}

// =============================================================================
// Options - Solve Configuration
// =============================================================================

// Options contains all configuration for a solve.
// This struct supports JSON for API requests and TOML for profiles.
type Options struct {
	// Seed of the first worker; worker i uses Seed+i.
	Seed uint64 `json:"seed" toml:"seed"`

	// Timeout stops the search after this long. Zero means no limit beyond
	// the context.
	Timeout time.Duration `json:"timeout,omitempty" toml:"timeout"`

	// Workers is the number of independent solvers run concurrently.
	Workers int `json:"workers,omitempty" toml:"workers"`

	// Refresh ignores the stored best-known solution on lookup. A smaller
	// result still replaces it.
	Refresh bool `json:"refresh,omitempty" toml:"refresh"`

	// Solver holds the search schedule. Its Seed is overridden per worker.
	Solver domset.Options `json:"solver" toml:"solver"`

	// Runtime options (not serialized). Progress is called from the worker
	// goroutines, concurrently when Workers > 1.
	Logger   *log.Logger                         `json:"-" toml:"-"`
	Progress func(worker int, p domset.Progress) `json:"-" toml:"-"`
}

// Result contains the outputs of a solve.
type Result struct {
	// Solution is the smallest set found by this run.
	Solution *dsio.Solution

	// BestKnown is the smallest verified set known after this run: either
	// Solution or a smaller stored one.
	BestKnown *dsio.Solution

	// GraphHash is the content hash of the graph.
	GraphHash string

	// Stored reports whether Solution replaced the stored best-known set.
	Stored bool

	// Stats aggregates the workers' statistics.
	Stats Stats

	// CacheInfo tracks the best-known lookup.
	CacheInfo CacheInfo
}

// Stats contains solve statistics summed over all workers.
type Stats struct {
	Vertices  int
	Edges     int
	Eligible  int
	Workers   int
	Winner    int // Index of the worker whose set won
	Rounds    int64
	Rollbacks int64
	Duration  time.Duration
}

// CacheInfo tracks the best-known lookup.
type CacheInfo struct {
	Hit      bool // A stored solution was found and verified
	Rejected bool // A stored solution was found but failed verification
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a render format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: dot, svg, png)", format)
	}
	return nil
}

// ValidateTimeout checks a timeout requested over HTTP.
func ValidateTimeout(d time.Duration) error {
	if d < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "timeout cannot be negative")
	}
	if d > MaxServeTimeout {
		return errors.New(errors.ErrCodeInvalidInput, "timeout %s exceeds maximum %s", d, MaxServeTimeout)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetSolveDefaults sets default values for a solve.
func (o *Options) SetSolveDefaults() {
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	o.Solver.SetDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForSolve sets defaults and checks the options.
func (o *Options) ValidateForSolve() error {
	o.SetSolveDefaults()
	if o.Workers < 1 || o.Workers > MaxWorkers {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must be in [1, %d], got %d", MaxWorkers, o.Workers)
	}
	if o.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "timeout cannot be negative")
	}
	return o.Solver.Validate()
}

// solverOptions returns the solver options of worker i.
func (o *Options) solverOptions(i int) domset.Options {
	so := o.Solver
	so.Seed = o.Seed + uint64(i)
	return so
}
