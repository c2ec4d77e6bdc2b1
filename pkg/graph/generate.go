package graph

import (
	"math/rand/v2"
)

// Path returns the path 0-1-...-(n-1).
func Path(n int) *Graph {
	edges := make([]Edge, 0, max(n-1, 0))
	for i := 1; i < n; i++ {
		edges = append(edges, Edge{U: int32(i - 1), V: int32(i)})
	}
	return MustNew(n, edges)
}

// Cycle returns the cycle 0-1-...-(n-1)-0. n must be at least 3.
func Cycle(n int) *Graph {
	if n < 3 {
		panic("graph: cycle needs at least 3 vertices")
	}
	edges := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, Edge{U: int32(i), V: int32((i + 1) % n)})
	}
	return MustNew(n, edges)
}

// Star returns a star with center 0 and leaves 1..leaves.
func Star(leaves int) *Graph {
	edges := make([]Edge, 0, leaves)
	for i := 1; i <= leaves; i++ {
		edges = append(edges, Edge{U: 0, V: int32(i)})
	}
	return MustNew(leaves+1, edges)
}

// Complete returns the complete graph on n vertices.
func Complete(n int) *Graph {
	edges := make([]Edge, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, Edge{U: int32(u), V: int32(v)})
		}
	}
	return MustNew(n, edges)
}

// Grid returns the rows x cols grid graph; vertex (r, c) has id r*cols+c.
func Grid(rows, cols int) *Graph {
	var edges []Edge
	id := func(r, c int) int32 { return int32(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, Edge{U: id(r, c), V: id(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, Edge{U: id(r, c), V: id(r+1, c)})
			}
		}
	}
	return MustNew(rows*cols, edges)
}

// Random returns a G(n, m) graph: m distinct edges drawn uniformly without
// self-loops or parallel edges. m is capped at n(n-1)/2. The same seed
// always yields the same graph.
func Random(n, m int, seed uint64) *Graph {
	limit := n * (n - 1) / 2
	m = min(m, limit)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	seen := make(map[[2]int32]struct{}, m)
	edges := make([]Edge, 0, m)
	for len(edges) < m {
		u, v := int32(rng.IntN(n)), int32(rng.IntN(n))
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int32{u, v}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		edges = append(edges, Edge{U: u, V: v})
	}
	return MustNew(n, edges)
}
