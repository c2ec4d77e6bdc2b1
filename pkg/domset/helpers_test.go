package domset

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/domsearch/pkg/graph"
)

// expectedCounters recomputes count, sum and load of a selection from scratch.
func expectedCounters(g *graph.Graph, selected []bool) (count []int32, sum []int64, load []int32) {
	n := g.N()
	count = make([]int32, n)
	sum = make([]int64, n)
	load = make([]int32, n)
	for u := int32(0); u < int32(n); u++ {
		closed := append([]int32{u}, g.Neighbors(u)...)
		for _, w := range closed {
			if selected[w] {
				count[u]++
				sum[u] += int64(w)
			}
		}
	}
	for v := int32(0); v < int32(n); v++ {
		if !selected[v] {
			load[v] = unused
			continue
		}
		closed := append([]int32{v}, g.Neighbors(v)...)
		for _, w := range closed {
			if count[w] == 1 {
				load[v]++
			}
		}
	}
	return count, sum, load
}

// requireConsistent fails unless every counter of st matches a recomputation.
func requireConsistent(t *testing.T, st *state) {
	t.Helper()
	count, sum, load := expectedCounters(st.g, st.selected)
	require.Equal(t, count, st.count, "count")
	require.Equal(t, sum, st.sum, "sum")
	require.Equal(t, load, st.load, "load")

	size := 0
	for _, in := range st.selected {
		if in {
			size++
		}
	}
	require.Equal(t, size, st.size, "size")
}

// snapshot is a deep copy of a state's mutable fields.
type snapshot struct {
	selected []bool
	count    []int32
	sum      []int64
	load     []int32
	size     int
}

func takeSnapshot(st *state) snapshot {
	return snapshot{
		selected: slices.Clone(st.selected),
		count:    slices.Clone(st.count),
		sum:      slices.Clone(st.sum),
		load:     slices.Clone(st.load),
		size:     st.size,
	}
}

func (s snapshot) restore(g *graph.Graph) *state {
	return &state{
		g:        g,
		selected: slices.Clone(s.selected),
		count:    slices.Clone(s.count),
		sum:      slices.Clone(s.sum),
		load:     slices.Clone(s.load),
		size:     s.size,
	}
}

func requireSnapshot(t *testing.T, want snapshot, st *state) {
	t.Helper()
	got := takeSnapshot(st)
	require.Equal(t, want.selected, got.selected, "selected")
	require.Equal(t, want.count, got.count, "count")
	require.Equal(t, want.sum, got.sum, "sum")
	require.Equal(t, want.load, got.load, "load")
	require.Equal(t, want.size, got.size, "size")
}

// testGraphs is a mix of structured and random graphs.
func testGraphs() map[string]*graph.Graph {
	return map[string]*graph.Graph{
		"path":     graph.Path(12),
		"cycle":    graph.Cycle(10),
		"star":     graph.Star(6),
		"complete": graph.Complete(6),
		"grid":     graph.Grid(5, 6),
		"sparse":   graph.Random(60, 90, 1),
		"denser":   graph.Random(40, 200, 2),
		"isolated": graph.MustNew(5, []graph.Edge{{U: 0, V: 1}}),
	}
}

func eligibleVertices(eligible []bool) []int32 {
	var out []int32
	for v, ok := range eligible {
		if ok {
			out = append(out, int32(v))
		}
	}
	return out
}
