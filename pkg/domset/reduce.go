package domset

import (
	"github.com/matzehuels/domsearch/pkg/graph"
)

// Reduce returns the eligibility mask of g: eligible[v] is false when some
// neighbor i can always stand in for v, i.e. degree(v) <= degree(i) and
// N[v] is a subset of N[i]. Vertices already found ineligible are not used
// as stand-ins, so every ineligible vertex is covered by an eligible one and
// a dominating set of eligible vertices always exists.
//
// g must not contain parallel edges (see graph.Graph.Simple). The cost is
// O(sum of squared degrees) in the worst case.
func Reduce(g *graph.Graph) []bool {
	n := g.N()
	eligible := make([]bool, n)
	for v := range eligible {
		eligible[v] = true
	}

	inClosed := make([]bool, n)
	for i := int32(0); i < int32(n); i++ {
		if !eligible[i] {
			continue
		}
		neighbors := g.Neighbors(i)
		inClosed[i] = true
		for _, u := range neighbors {
			inClosed[u] = true
		}

		for _, v := range neighbors {
			if g.Degree(v) > len(neighbors) {
				continue
			}
			if covered(g, v, inClosed) {
				eligible[v] = false
			}
		}

		inClosed[i] = false
		for _, u := range neighbors {
			inClosed[u] = false
		}
	}
	return eligible
}

// covered reports whether every neighbor of v is marked. v itself is marked
// because it is a neighbor of the vertex whose neighborhood is marked.
func covered(g *graph.Graph, v int32, marked []bool) bool {
	for _, u := range g.Neighbors(v) {
		if !marked[u] {
			return false
		}
	}
	return true
}
