// Package pkg provides the libraries behind domsearch, an anytime
// local-search solver for small dominating sets.
//
// # Overview
//
// A dominating set of a graph is a set of vertices such that every vertex is
// either in the set or adjacent to a member. domsearch keeps a valid
// dominating set at every moment, shrinks it by local search and hands back
// the smallest one it has seen when asked to stop. The pkg directory is
// organized into four areas:
//
//  1. [graph] and [io] - Graph model and PACE file formats
//  2. [domset] - Candidate reduction, domination accounting, search, verification
//  3. [pipeline] - Orchestration (parse → solve portfolio → store → render)
//  4. [cache], [observability], [errors], [buildinfo] - Infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	PACE .gr file / HTTP body
//	         ↓
//	    [io] package (parse, validate, build adjacency)
//	         ↓
//	    [pipeline] package (hash, look up best-known, run workers)
//	         ↓
//	    [domset] package (reduce → search → roll back → verify)
//	         ↓
//	    PACE .sol / JSON / DOT / SVG output
//
// # Quick Start
//
// Solve a graph until a deadline:
//
//	import (
//	    "context"
//	    "time"
//
//	    "github.com/matzehuels/domsearch/pkg/domset"
//	    dsio "github.com/matzehuels/domsearch/pkg/io"
//	)
//
//	g, _ := dsio.ReadGraphFile("instance.gr")
//	s, _ := domset.New(g, domset.Options{Seed: 1})
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//	res, _ := s.Run(ctx)
//	_ = dsio.WriteSolutionFile("instance.sol", res.Vertices)
//
// # Main Packages
//
// [domset] - The solver. A [domset.Solver] owns its state exclusively and is
// stopped through its [domset.Stopper] or the context given to Run. Every
// result has been checked with [domset.Verify] before it is returned.
//
// [graph] - Immutable adjacency-list graphs, generators for standard families
// and degree statistics.
//
// [io] - PACE "p ds" graph and solution readers and writers, plus the JSON
// solution form used by the cache and the HTTP API.
//
// [pipeline] - The entry point shared by the CLI and the HTTP server. Runs a
// portfolio of solvers with consecutive seeds, keeps the best-known solution
// per graph in a [cache.Cache] and renders solutions with Graphviz.
//
// [cache] - File, Redis and null backends for best-known solutions.
//
// [observability] - Hook interfaces for metrics and tracing, no-op by default.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/domset/...     # Solver only
//	go test -run Example ./...   # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/domsearch/pkg/graph
// [io]: https://pkg.go.dev/github.com/matzehuels/domsearch/pkg/io
// [domset]: https://pkg.go.dev/github.com/matzehuels/domsearch/pkg/domset
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/domsearch/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/domsearch/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/domsearch/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/domsearch/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/domsearch/pkg/buildinfo
package pkg
