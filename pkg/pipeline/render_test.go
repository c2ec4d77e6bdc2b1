package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/domsearch/pkg/errors"
	"github.com/matzehuels/domsearch/pkg/graph"
)

func TestToDOT(t *testing.T) {
	dot := ToDOT(graph.Path(3), []int32{1})

	for _, want := range []string{
		"graph G {",
		`1 [label="2", fillcolor="#2b6cb0", fontcolor=white];`,
		`0 [label="1", color="#2b6cb0"];`,
		`0 -- 1 [color="#2b6cb0"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTNoSelection(t *testing.T) {
	dot := ToDOT(graph.Path(2), nil)
	if strings.Contains(dot, "#2b6cb0") {
		t.Errorf("ToDOT(nil) should not highlight anything:\n%s", dot)
	}
	if !strings.Contains(dot, "0 -- 1;") {
		t.Errorf("ToDOT(nil) missing edge:\n%s", dot)
	}
}

func TestToDOTUndominated(t *testing.T) {
	// 2 is neither selected nor adjacent to a selected vertex.
	dot := ToDOT(graph.Path(3), []int32{0})
	if !strings.Contains(dot, `2 [label="3"];`) {
		t.Errorf("undominated vertex should be plain:\n%s", dot)
	}
}

func TestRenderDOT(t *testing.T) {
	data, err := Render(context.Background(), graph.Cycle(4), []int32{0, 2}, FormatDOT)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("graph G {")) {
		t.Errorf("Render(dot) = %s", data)
	}
}

func TestRenderSVG(t *testing.T) {
	data, err := Render(context.Background(), graph.Star(3), []int32{0}, FormatSVG)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Errorf("Render(svg) did not produce SVG")
	}
}

func TestRenderErrors(t *testing.T) {
	ctx := context.Background()

	if _, err := Render(ctx, graph.Path(3), nil, "pdf"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad format error = %v", err)
	}
	if _, err := Render(ctx, graph.Path(3), []int32{3}, FormatDOT); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("out-of-range vertex error = %v", err)
	}
	if _, err := Render(ctx, graph.MustNew(MaxRenderVertices+1, nil), nil, FormatDOT); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("oversized graph error = %v", err)
	}
}
