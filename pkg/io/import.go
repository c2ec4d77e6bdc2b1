package io

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/domsearch/pkg/errors"
	"github.com/matzehuels/domsearch/pkg/graph"
)

// maxLine bounds a single input line. Edge lines are short; the limit only
// matters for pathological comments.
const maxLine = 1 << 20

// lineReader yields non-comment, non-blank lines with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &lineReader{sc: sc}
}

// next returns the fields of the next content line, or nil at EOF.
func (lr *lineReader) next() ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.sc.Text())
		if text == "" || text[0] == 'c' {
			continue
		}
		return strings.Fields(text), nil
	}
	if err := lr.sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "line %d", lr.line+1)
	}
	return nil, nil
}

func (lr *lineReader) errorf(format string, args ...any) error {
	args = append([]any{lr.line}, args...)
	return errors.New(errors.ErrCodeInvalidFormat, "line %d: "+format, args...)
}

// ReadGraph parses a PACE "p ds" graph from r.
//
// The header must precede all edges and declare exactly as many edges as
// follow. Vertex numbers must lie in 1..n. ReadGraph does not close r.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	return ReadGraphLimit(r, 0)
}

// ReadGraphLimit is ReadGraph with a cap on the declared vertex count. The
// cap is checked before per-vertex storage is allocated, so a short input
// cannot claim billions of vertices. A header above the cap is an
// INVALID_INPUT error; maxVertices <= 0 means no cap.
func ReadGraphLimit(r io.Reader, maxVertices int) (*graph.Graph, error) {
	lr := newLineReader(r)

	fields, err := lr.next()
	if err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "missing problem line")
	}
	if len(fields) != 4 || fields[0] != "p" || fields[1] != "ds" {
		return nil, lr.errorf("expected \"p ds <n> <m>\", got %q", strings.Join(fields, " "))
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, lr.errorf("bad vertex count %q", fields[2])
	}
	m, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, lr.errorf("bad edge count %q", fields[3])
	}
	if err := errors.ValidateEdgeCount(m); err != nil {
		return nil, err
	}
	if maxVertices > 0 && n > maxVertices {
		return nil, errors.New(errors.ErrCodeInvalidInput, "graph declares %d vertices; at most %d accepted", n, maxVertices)
	}

	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for read := 0; ; read++ {
		fields, err := lr.next()
		if err != nil {
			return nil, err
		}
		if fields == nil {
			if read != m {
				return nil, errors.New(errors.ErrCodeInvalidFormat, "header declares %d edges, found %d", m, read)
			}
			break
		}
		if read == m {
			return nil, lr.errorf("more than the %d declared edges", m)
		}
		if len(fields) != 2 {
			return nil, lr.errorf("expected \"<u> <v>\", got %q", strings.Join(fields, " "))
		}
		u, err := parseVertex(fields[0])
		if err != nil {
			return nil, lr.errorf("%v", err)
		}
		v, err := parseVertex(fields[1])
		if err != nil {
			return nil, lr.errorf("%v", err)
		}
		if err := b.AddEdge(u-1, v-1); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "line %d", lr.line)
		}
	}
	return b.Build(), nil
}

// ReadGraphFile reads a PACE graph from path.
func ReadGraphFile(path string) (*graph.Graph, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := ReadGraph(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return g, nil
}

// ReadSolution parses a PACE solution for a graph with n vertices and
// returns its 0-based vertices in file order. The size line must match the
// number of vertices listed. Domination is not checked here; use
// domset.Verify.
func ReadSolution(r io.Reader, n int) ([]int32, error) {
	lr := newLineReader(r)

	fields, err := lr.next()
	if err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "missing solution size")
	}
	if len(fields) != 1 {
		return nil, lr.errorf("expected solution size, got %q", strings.Join(fields, " "))
	}
	size, err := strconv.Atoi(fields[0])
	if err != nil || size < 0 {
		return nil, lr.errorf("bad solution size %q", fields[0])
	}

	vertices := make([]int32, 0, min(size, n))
	for {
		fields, err := lr.next()
		if err != nil {
			return nil, err
		}
		if fields == nil {
			break
		}
		if len(fields) != 1 {
			return nil, lr.errorf("expected one vertex, got %q", strings.Join(fields, " "))
		}
		v, err := parseVertex(fields[0])
		if err != nil {
			return nil, lr.errorf("%v", err)
		}
		if int(v) > n {
			return nil, lr.errorf("vertex %d out of range [1, %d]", v, n)
		}
		vertices = append(vertices, v-1)
	}
	if len(vertices) != size {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "solution declares %d vertices, found %d", size, len(vertices))
	}
	return vertices, nil
}

// ReadSolutionFile reads a PACE solution for an n-vertex graph from path.
func ReadSolutionFile(path string, n int) ([]int32, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vertices, err := ReadSolution(f, n)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return vertices, nil
}

// ReadJSON decodes a Solution from r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Solution, error) {
	var s Solution
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode solution")
	}
	if s.Size != len(s.Vertices) {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "solution size %d does not match %d vertices", s.Size, len(s.Vertices))
	}
	return &s, nil
}

// parseVertex parses a 1-based vertex number.
func parseVertex(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil || v < 1 {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "bad vertex %q", s)
	}
	return int32(v), nil
}

func open(path string) (*os.File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	return f, nil
}
