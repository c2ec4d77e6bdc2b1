package graph

import (
	"github.com/matzehuels/domsearch/pkg/errors"
)

// Edge is an undirected edge between two 0-based vertices.
type Edge struct {
	U, V int32
}

// Graph is an immutable undirected graph over vertices 0..N()-1.
//
// The zero value is an empty graph with no vertices.
type Graph struct {
	adj   [][]int32
	edges int
	multi bool
}

// New builds a graph with n vertices from an edge list.
// It fails if n is invalid, an endpoint is out of range or an edge is a self-loop.
func New(n int, edges []Edge) (*Graph, error) {
	b, err := NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err := b.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// MustNew is like New but panics on error. It is intended for tests and
// examples with literal edge lists.
func MustNew(n int, edges []Edge) *Graph {
	g, err := New(n, edges)
	if err != nil {
		panic(err)
	}
	return g
}

// N returns the number of vertices.
func (g *Graph) N() int { return len(g.adj) }

// M returns the number of edges, counting parallel edges separately.
func (g *Graph) M() int { return g.edges }

// Degree returns the number of entries in v's adjacency list.
func (g *Graph) Degree(v int32) int { return len(g.adj[v]) }

// Neighbors returns v's adjacency list. The slice is shared with the graph
// and must not be modified.
func (g *Graph) Neighbors(v int32) []int32 { return g.adj[v] }

// HasMultiEdges reports whether any vertex pair is joined by more than one edge.
func (g *Graph) HasMultiEdges() bool { return g.multi }

// Edges returns every edge once, with U < V, in adjacency order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u := range g.adj {
		for _, v := range g.adj[u] {
			if int32(u) < v {
				out = append(out, Edge{U: int32(u), V: v})
			}
		}
	}
	return out
}

// Simple returns a graph with the same vertices and at most one edge per
// vertex pair. If g has no parallel edges, g itself is returned.
func (g *Graph) Simple() *Graph {
	if !g.multi {
		return g
	}
	n := len(g.adj)
	seen := make([]int32, n) // seen[u] == v+1 while scanning v
	adj := make([][]int32, n)
	edges := 0
	for v := range g.adj {
		list := make([]int32, 0, len(g.adj[v]))
		for _, u := range g.adj[v] {
			if seen[u] == int32(v)+1 {
				continue
			}
			seen[u] = int32(v) + 1
			list = append(list, u)
		}
		adj[v] = list
		edges += len(list)
	}
	return &Graph{adj: adj, edges: edges / 2}
}

// Builder accumulates edges for a graph with a fixed vertex count.
// A Builder is not safe for concurrent use.
type Builder struct {
	adj   [][]int32
	edges int
}

// NewBuilder creates a builder for a graph with n vertices.
func NewBuilder(n int) (*Builder, error) {
	if err := errors.ValidateVertexCount(n); err != nil {
		return nil, err
	}
	return &Builder{adj: make([][]int32, n)}, nil
}

// AddEdge records the undirected edge u-v.
func (b *Builder) AddEdge(u, v int32) error {
	if err := errors.ValidateEdge(len(b.adj), u, v); err != nil {
		return err
	}
	b.adj[u] = append(b.adj[u], v)
	b.adj[v] = append(b.adj[v], u)
	b.edges++
	return nil
}

// Build returns the finished graph. The builder must not be used afterwards.
func (b *Builder) Build() *Graph {
	g := &Graph{adj: b.adj, edges: b.edges}
	g.multi = hasParallel(g.adj)
	b.adj = nil
	return g
}

func hasParallel(adj [][]int32) bool {
	seen := make([]int32, len(adj))
	for v := range adj {
		for _, u := range adj[v] {
			if seen[u] == int32(v)+1 {
				return true
			}
			seen[u] = int32(v) + 1
		}
	}
	return false
}
