package errors

import (
	"strings"
	"testing"
)

func TestValidateVertexCount(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"large", 1 << 20, false},
		{"max", MaxVertices, false},

		{"negative", -1, true},
		{"too large", MaxVertices + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVertexCount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVertexCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidGraph) {
				t.Errorf("ValidateVertexCount(%d) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidGraph)
			}
		})
	}
}

func TestValidateEdgeCount(t *testing.T) {
	if err := ValidateEdgeCount(0); err != nil {
		t.Errorf("ValidateEdgeCount(0) error = %v", err)
	}
	if err := ValidateEdgeCount(-3); err == nil {
		t.Error("ValidateEdgeCount(-3) should fail")
	}
}

func TestValidateEdge(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		u, v    int32
		wantErr bool
	}{
		{"valid", 4, 0, 3, false},
		{"valid reversed", 4, 3, 0, false},

		{"u negative", 4, -1, 2, true},
		{"v negative", 4, 2, -1, true},
		{"u too large", 4, 4, 2, true},
		{"v too large", 4, 2, 4, true},
		{"self-loop", 4, 2, 2, true},
		{"empty graph", 0, 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEdge(tt.n, tt.u, tt.v)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEdge(%d, %d, %d) error = %v, wantErr %v", tt.n, tt.u, tt.v, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "graphs/bremen.gr", false},
		{"absolute", "/tmp/instance.gr", false},
		{"dotted", "../instances/a.gr", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
