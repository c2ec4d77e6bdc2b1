package domset

import (
	"github.com/matzehuels/domsearch/pkg/graph"
)

// unused is the load of a vertex that is not selected.
const unused = -1

// state is a selection together with its domination counters. For every
// vertex u:
//
//	count[u] = |N[u] ∩ D|
//	sum[u]   = Σ (N[u] ∩ D), the sole dominator of u when count[u] == 1
//	load[u]  = |{w ∈ N[u] : count[w] == 1}| if u ∈ D, else unused
//
// where D is the selected set and N[u] the closed neighborhood.
// selectVertex and deselectVertex keep all three exact in O(degree).
type state struct {
	g        *graph.Graph
	selected []bool
	count    []int32
	sum      []int64
	load     []int32
	size     int
}

// newState selects every vertex marked in initial and computes the counters
// from scratch.
func newState(g *graph.Graph, initial []bool) *state {
	n := g.N()
	s := &state{
		g:        g,
		selected: make([]bool, n),
		count:    make([]int32, n),
		sum:      make([]int64, n),
		load:     make([]int32, n),
	}
	copy(s.selected, initial)

	for u := int32(0); u < int32(n); u++ {
		if s.selected[u] {
			s.size++
			s.count[u]++
			s.sum[u] += int64(u)
		}
		for _, w := range g.Neighbors(u) {
			if s.selected[w] {
				s.count[u]++
				s.sum[u] += int64(w)
			}
		}
	}

	for v := int32(0); v < int32(n); v++ {
		if !s.selected[v] {
			s.load[v] = unused
			continue
		}
		if s.count[v] == 1 {
			s.load[v]++
		}
		for _, w := range g.Neighbors(v) {
			if s.count[w] == 1 {
				s.load[v]++
			}
		}
	}
	return s
}

// removable reports whether v is selected and dominates no vertex alone.
func (s *state) removable(v int32) bool {
	return s.selected[v] && s.load[v] == 0
}

// selectVertex adds v to the set. Every vertex whose load drops to zero as a
// result is appended to freed, and the extended slice is returned.
// v must not be selected.
func (s *state) selectVertex(v int32, freed []int32) []int32 {
	s.selected[v] = true
	s.size++
	s.load[v] = 0
	freed = s.gain(v, v, freed)
	for _, u := range s.g.Neighbors(v) {
		freed = s.gain(u, v, freed)
	}
	return freed
}

// gain records that v now dominates u.
func (s *state) gain(u, v int32, freed []int32) []int32 {
	s.count[u]++
	s.sum[u] += int64(v)
	switch s.count[u] {
	case 1:
		// u was undominated; v alone dominates it now.
		s.load[v]++
	case 2:
		// u's former sole dominator now shares it with v.
		prev := int32(s.sum[u] - int64(v))
		s.load[prev]--
		if s.load[prev] == 0 {
			freed = append(freed, prev)
		}
	}
	return freed
}

// deselectVertex removes v from the set. v must be selected.
func (s *state) deselectVertex(v int32) {
	s.selected[v] = false
	s.size--
	s.load[v] = unused
	s.lose(v, v)
	for _, u := range s.g.Neighbors(v) {
		s.lose(u, v)
	}
}

// lose records that v no longer dominates u.
func (s *state) lose(u, v int32) {
	s.count[u]--
	s.sum[u] -= int64(v)
	if s.count[u] == 1 {
		s.load[s.sum[u]]++
	}
}

// firstUndominated returns the smallest vertex with no selected vertex in its
// closed neighborhood, checked directly against the selection rather than the
// counters, or -1 when the selection dominates the graph.
func (s *state) firstUndominated() int32 {
	return undominated(s.g, s.selected)
}

func undominated(g *graph.Graph, selected []bool) int32 {
	for v := int32(0); v < int32(g.N()); v++ {
		if selected[v] {
			continue
		}
		ok := false
		for _, u := range g.Neighbors(v) {
			if selected[u] {
				ok = true
				break
			}
		}
		if !ok {
			return v
		}
	}
	return -1
}
