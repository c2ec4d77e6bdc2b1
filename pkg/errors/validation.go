package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxVertices is the largest vertex count a graph may declare. Vertex ids are
// stored as int32 and identity sums as int64, so the bound keeps both exact.
const MaxVertices = math.MaxInt32

// ValidateVertexCount checks a declared vertex count.
func ValidateVertexCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidGraph, "vertex count cannot be negative: %d", n)
	}
	if n > MaxVertices {
		return New(ErrCodeInvalidGraph, "vertex count %d exceeds maximum %d", n, MaxVertices)
	}
	return nil
}

// ValidateEdgeCount checks a declared edge count.
func ValidateEdgeCount(m int) error {
	if m < 0 {
		return New(ErrCodeInvalidGraph, "edge count cannot be negative: %d", m)
	}
	return nil
}

// ValidateEdge checks that both endpoints of an edge lie in [0, n) and that
// the edge is not a self-loop.
func ValidateEdge(n int, u, v int32) error {
	if u < 0 || int(u) >= n {
		return New(ErrCodeInvalidGraph, "edge endpoint %d out of range [0, %d)", u, n)
	}
	if v < 0 || int(v) >= n {
		return New(ErrCodeInvalidGraph, "edge endpoint %d out of range [0, %d)", v, n)
	}
	if u == v {
		return New(ErrCodeInvalidGraph, "self-loop on vertex %d", u)
	}
	return nil
}

// ValidatePath validates a file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
