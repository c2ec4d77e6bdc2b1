package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/domsearch/pkg/errors"
	"github.com/matzehuels/domsearch/pkg/graph"
)

// MaxRenderVertices bounds the graphs Render lays out. Graphviz becomes
// unusably slow well before PACE instance sizes.
const MaxRenderVertices = 5000

// ToDOT converts g to an undirected Graphviz graph. Vertices in selected are
// filled; vertices they dominate get a colored outline. Labels are 1-based,
// matching PACE files. selected may be nil.
func ToDOT(g *graph.Graph, selected []int32) string {
	in := make([]bool, g.N())
	for _, v := range selected {
		in[v] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12, width=0.3];\n")
	buf.WriteString("\n")

	for v := int32(0); v < int32(g.N()); v++ {
		switch {
		case in[v]:
			fmt.Fprintf(&buf, "  %d [label=\"%d\", fillcolor=\"#2b6cb0\", fontcolor=white];\n", v, v+1)
		case selected != nil && dominatedBy(g, in, v):
			fmt.Fprintf(&buf, "  %d [label=\"%d\", color=\"#2b6cb0\"];\n", v, v+1)
		default:
			fmt.Fprintf(&buf, "  %d [label=\"%d\"];\n", v, v+1)
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if in[e.U] || in[e.V] {
			fmt.Fprintf(&buf, "  %d -- %d [color=\"#2b6cb0\"];\n", e.U, e.V)
		} else {
			fmt.Fprintf(&buf, "  %d -- %d;\n", e.U, e.V)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dominatedBy(g *graph.Graph, in []bool, v int32) bool {
	for _, u := range g.Neighbors(v) {
		if in[u] {
			return true
		}
	}
	return false
}

// Render draws g with the selected vertices highlighted in the given format.
func Render(ctx context.Context, g *graph.Graph, selected []int32, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if g.N() > MaxRenderVertices {
		return nil, errors.New(errors.ErrCodeUnsupported, "graph has %d vertices; rendering supports at most %d", g.N(), MaxRenderVertices)
	}
	for _, v := range selected {
		if v < 0 || int(v) >= g.N() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "vertex %d out of range [0, %d)", v, g.N())
		}
	}

	dot := ToDOT(g, selected)
	if format == FormatDOT {
		return []byte(dot), nil
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	gvFormat := graphviz.SVG
	if format == FormatPNG {
		gvFormat = graphviz.PNG
	}
	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, gvFormat, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
