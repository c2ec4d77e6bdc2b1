package domset

import (
	"github.com/matzehuels/domsearch/pkg/errors"
	"github.com/matzehuels/domsearch/pkg/graph"
)

// Extract verifies the solver's current set and returns it. After Run this is
// the best recorded set; calling Extract again without further search
// returns the same vertices.
//
// A set that leaves a vertex undominated, or whose size differs from the
// recorded best, is a bookkeeping defect and is reported as an
// INVARIANT_VIOLATION error rather than returned.
func (s *Solver) Extract() (*Result, error) {
	if v := s.st.firstUndominated(); v >= 0 {
		return nil, errors.Violation(v, s.st.size)
	}

	vertices := make([]int32, 0, s.st.size)
	for v, in := range s.st.selected {
		if in {
			vertices = append(vertices, int32(v))
		}
	}
	if len(vertices) != s.best {
		return nil, errors.New(errors.ErrCodeInvariant, "extracted %d vertices but recorded best is %d", len(vertices), s.best)
	}

	return &Result{
		Vertices: vertices,
		Size:     len(vertices),
		Stats:    s.stats(),
	}, nil
}

// Verify checks that vertices is a dominating set of g. It returns an
// INVALID_INPUT error for out-of-range or repeated vertices and an
// INVARIANT_VIOLATION error naming the first undominated vertex.
func Verify(g *graph.Graph, vertices []int32) error {
	selected := make([]bool, g.N())
	for _, v := range vertices {
		if v < 0 || int(v) >= g.N() {
			return errors.New(errors.ErrCodeInvalidInput, "vertex %d out of range [0, %d)", v, g.N())
		}
		if selected[v] {
			return errors.New(errors.ErrCodeInvalidInput, "vertex %d listed twice", v)
		}
		selected[v] = true
	}
	if v := undominated(g, selected); v >= 0 {
		return errors.Violation(v, len(vertices))
	}
	return nil
}
