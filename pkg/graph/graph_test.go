package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/domsearch/pkg/errors"
)

func TestNew(t *testing.T) {
	g, err := New(4, []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)

	assert.Equal(t, 4, g.N())
	assert.Equal(t, 4, g.M())
	for v := int32(0); v < 4; v++ {
		assert.Equal(t, 2, g.Degree(v), "degree of %d", v)
	}
	assert.ElementsMatch(t, []int32{1, 3}, g.Neighbors(0))
	assert.ElementsMatch(t, []int32{0, 2}, g.Neighbors(1))
	assert.False(t, g.HasMultiEdges())
}

func TestNewSymmetric(t *testing.T) {
	g := Random(50, 200, 7)
	for u := int32(0); u < int32(g.N()); u++ {
		for _, v := range g.Neighbors(u) {
			assert.Contains(t, g.Neighbors(v), u, "edge %d-%d not mirrored", u, v)
		}
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges []Edge
	}{
		{"negative n", -1, nil},
		{"endpoint out of range", 3, []Edge{{0, 3}}},
		{"negative endpoint", 3, []Edge{{-1, 2}}},
		{"self-loop", 3, []Edge{{1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.n, tt.edges)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidGraph), "code = %v", errors.GetCode(err))
		})
	}
}

func TestEmptyAndIsolated(t *testing.T) {
	g, err := New(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.N())
	assert.Empty(t, g.Edges())

	g, err = New(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, g.N())
	assert.Equal(t, 0, g.Degree(0))
	assert.Empty(t, g.Neighbors(0))
}

func TestMultiEdges(t *testing.T) {
	g := MustNew(3, []Edge{{0, 1}, {1, 0}, {1, 2}})

	assert.True(t, g.HasMultiEdges())
	assert.Equal(t, 3, g.M(), "parallel edges are counted")
	assert.Equal(t, 2, g.Degree(0), "parallel edges are not deduplicated")

	s := g.Simple()
	assert.False(t, s.HasMultiEdges())
	assert.Equal(t, 2, s.M())
	assert.Equal(t, []int32{1}, s.Neighbors(0))
	assert.ElementsMatch(t, []int32{0, 2}, s.Neighbors(1))

	plain := Path(3)
	assert.Same(t, plain, plain.Simple(), "Simple on a simple graph returns the receiver")
}

func TestEdges(t *testing.T) {
	g := MustNew(4, []Edge{{2, 0}, {1, 3}})
	assert.ElementsMatch(t, []Edge{{0, 2}, {1, 3}}, g.Edges())
}

func TestBuilder(t *testing.T) {
	b, err := NewBuilder(3)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1))
	require.Error(t, b.AddEdge(0, 5))
	require.NoError(t, b.AddEdge(2, 1))

	g := b.Build()
	assert.Equal(t, 2, g.M())
	assert.Equal(t, 2, g.Degree(1))
}

func TestGenerators(t *testing.T) {
	tests := []struct {
		name      string
		g         *Graph
		wantN     int
		wantM     int
		maxDegree int
	}{
		{"path", Path(5), 5, 4, 2},
		{"path single", Path(1), 1, 0, 0},
		{"cycle", Cycle(6), 6, 6, 2},
		{"star", Star(7), 8, 7, 7},
		{"complete", Complete(5), 5, 10, 4},
		{"grid", Grid(3, 4), 12, 17, 4},
		{"random", Random(30, 60, 1), 30, 60, 29},
		{"random capped", Random(4, 100, 1), 4, 6, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantN, tt.g.N())
			assert.Equal(t, tt.wantM, tt.g.M())
			assert.LessOrEqual(t, tt.g.Stats().MaxDegree, tt.maxDegree)
			assert.False(t, tt.g.HasMultiEdges())
		})
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(40, 80, 3)
	b := Random(40, 80, 3)
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestStats(t *testing.T) {
	s := Star(4).Stats()
	assert.Equal(t, 5, s.Vertices)
	assert.Equal(t, 4, s.Edges)
	assert.Equal(t, 1, s.MinDegree)
	assert.Equal(t, 4, s.MaxDegree)
	assert.InDelta(t, 1.6, s.MeanDegree, 1e-9)
	assert.InDelta(t, 1.3416407865, s.StdDev, 1e-9)
	assert.Equal(t, 0, s.Isolated)

	s = MustNew(3, []Edge{{0, 1}}).Stats()
	assert.Equal(t, 1, s.Isolated)
	assert.Equal(t, 0, s.MinDegree)

	s = MustNew(1, nil).Stats()
	assert.Equal(t, 0.0, s.StdDev)
	assert.Equal(t, 0.0, s.MeanDegree)

	assert.Equal(t, Stats{}, MustNew(0, nil).Stats())
}
