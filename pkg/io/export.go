package io

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/domsearch/pkg/graph"
)

// Solution is the JSON form of a dominating set.
type Solution struct {
	ID        string  `json:"id,omitempty"`         // Run id assigned by the HTTP server
	Size      int     `json:"size"`                 // Number of vertices
	Vertices  []int32 `json:"vertices"`             // 0-based, ascending
	GraphHash string  `json:"graph_hash,omitempty"` // Hash of the graph's canonical PACE form
	Rounds    int64   `json:"rounds,omitempty"`     // Search rounds that produced the set
	Seed      uint64  `json:"seed,omitempty"`       // Seed of the winning solver
}

// NewSolution wraps vertices in a Solution, filling Size.
func NewSolution(vertices []int32) *Solution {
	if vertices == nil {
		vertices = []int32{}
	}
	return &Solution{Size: len(vertices), Vertices: vertices}
}

// WriteGraph writes g in PACE format with edges in [graph.Graph.Edges]
// order. The output is canonical for a given graph and is what the cache
// hashes.
func WriteGraph(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)

	buf = append(buf, "p ds "...)
	buf = strconv.AppendInt(buf, int64(g.N()), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(g.M()), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for _, e := range g.Edges() {
		buf = strconv.AppendInt(buf[:0], int64(e.U)+1, 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.V)+1, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteGraphFile writes g in PACE format to path.
func WriteGraphFile(path string, g *graph.Graph) error {
	return writeFile(path, func(w io.Writer) error { return WriteGraph(w, g) })
}

// WriteSolution writes vertices (0-based) in PACE solution format.
func WriteSolution(w io.Writer, vertices []int32) error {
	bw := bufio.NewWriter(w)
	buf := strconv.AppendInt(make([]byte, 0, 16), int64(len(vertices)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for _, v := range vertices {
		buf = strconv.AppendInt(buf[:0], int64(v)+1, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSolutionFile writes vertices in PACE solution format to path.
func WriteSolutionFile(path string, vertices []int32) error {
	return writeFile(path, func(w io.Writer) error { return WriteSolution(w, vertices) })
}

// WriteJSON encodes s as indented JSON.
func WriteJSON(w io.Writer, s *Solution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
