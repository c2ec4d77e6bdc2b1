// Package graph provides the static undirected graph that the dominating-set
// solver runs on.
//
// # Model
//
// Vertices are the integers 0..n-1 and carry no payload. Every undirected
// edge u-v is stored twice, once in each endpoint's adjacency list, so
// neighbor iteration is O(degree) and degree lookup is O(1). A [Graph] never
// changes after construction; it is safe to share between goroutines and
// between independent solvers.
//
// # Building
//
// Use [New] when the whole edge list is at hand, or a [Builder] when edges
// arrive one at a time (for example from a parser):
//
//	b, err := graph.NewBuilder(4)
//	if err != nil {
//	    return err
//	}
//	for _, e := range edges {
//	    if err := b.AddEdge(e.U, e.V); err != nil {
//	        return err
//	    }
//	}
//	g := b.Build()
//
// Out-of-range endpoints and self-loops are rejected with an INVALID_GRAPH
// error from pkg/errors.
//
// # Parallel Edges
//
// Parallel edges are kept exactly as given: [Graph.M] counts them and
// [Graph.Neighbors] repeats the neighbor. Consumers that need each neighbor
// once (the solver's domination counters do) call [Graph.Simple], which
// returns the receiver itself when no parallel edges exist.
package graph
