package graph

import (
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the degree distribution of a graph.
type Stats struct {
	Vertices   int     `json:"vertices"`
	Edges      int     `json:"edges"`
	MinDegree  int     `json:"min_degree"`
	MaxDegree  int     `json:"max_degree"`
	MeanDegree float64 `json:"mean_degree"`
	StdDev     float64 `json:"stddev_degree"`
	Isolated   int     `json:"isolated"`
	MultiEdges bool    `json:"multi_edges"`
}

// Stats computes degree statistics. The standard deviation is the sample
// standard deviation and is zero for graphs with fewer than two vertices.
func (g *Graph) Stats() Stats {
	s := Stats{Vertices: g.N(), Edges: g.M(), MultiEdges: g.multi}
	if s.Vertices == 0 {
		return s
	}

	degrees := make([]float64, s.Vertices)
	s.MinDegree = len(g.adj[0])
	for v, list := range g.adj {
		d := len(list)
		degrees[v] = float64(d)
		s.MinDegree = min(s.MinDegree, d)
		s.MaxDegree = max(s.MaxDegree, d)
		if d == 0 {
			s.Isolated++
		}
	}

	if s.Vertices < 2 {
		s.MeanDegree = degrees[0]
		return s
	}
	s.MeanDegree, s.StdDev = stat.MeanStdDev(degrees, nil)
	return s
}
