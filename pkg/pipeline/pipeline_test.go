package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/domsearch/pkg/domset"
	"github.com/matzehuels/domsearch/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateTimeout(t *testing.T) {
	tests := []struct {
		d       time.Duration
		wantErr bool
	}{
		{0, false},
		{time.Second, false},
		{MaxServeTimeout, false},
		{MaxServeTimeout + 1, true},
		{-time.Second, true},
	}

	for _, tt := range tests {
		err := ValidateTimeout(tt.d)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTimeout(%s) error = %v, wantErr %v", tt.d, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	opts.SetSolveDefaults()

	if opts.Workers != DefaultWorkers {
		t.Errorf("Workers = %d, want %d", opts.Workers, DefaultWorkers)
	}
	if opts.Solver.ShuffleEvery != domset.DefaultShuffleEvery {
		t.Errorf("Solver.ShuffleEvery = %d, want %d", opts.Solver.ShuffleEvery, domset.DefaultShuffleEvery)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}
}

func TestOptionsValidateForSolve(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"zero", Options{}, false},
		{"workers", Options{Workers: 4}, false},
		{"negative workers", Options{Workers: -1}, true},
		{"too many workers", Options{Workers: MaxWorkers + 1}, true},
		{"negative timeout", Options{Timeout: -time.Second}, true},
		{"bad solver", Options{Solver: domset.Options{Window: -5}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForSolve()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateForSolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %s, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}

func TestSolverOptionsSeeds(t *testing.T) {
	opts := Options{Seed: 40, Solver: domset.Options{Seed: 999, Window: 7}}
	for i := range 3 {
		so := opts.solverOptions(i)
		if so.Seed != 40+uint64(i) {
			t.Errorf("worker %d seed = %d, want %d", i, so.Seed, 40+i)
		}
		if so.Window != 7 {
			t.Errorf("worker %d lost solver settings", i)
		}
	}
}

func TestDecodeProfile(t *testing.T) {
	data := []byte(`
seed = 7
timeout = "1m30s"
workers = 3

[solver]
shuffle_every = 4
max_divisor = 1500
max_rounds = 1000
`)
	opts, err := DecodeProfile(data)
	if err != nil {
		t.Fatalf("DecodeProfile() error = %v", err)
	}
	if opts.Seed != 7 || opts.Workers != 3 || opts.Timeout != 90*time.Second {
		t.Errorf("top-level fields = %+v", opts)
	}
	if opts.Solver.ShuffleEvery != 4 || opts.Solver.MaxDivisor != 1500 || opts.Solver.MaxRounds != 1000 {
		t.Errorf("solver fields = %+v", opts.Solver)
	}
	if err := opts.ValidateForSolve(); err != nil {
		t.Errorf("ValidateForSolve() error = %v", err)
	}
}

func TestDecodeProfileErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "seed = "},
		{"unknown key", "seeds = 3"},
		{"unknown solver key", "[solver]\nwindw = 3"},
		{"wrong type", `workers = "four"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeProfile([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("DecodeProfile() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fast.toml")
	if err := os.WriteFile(path, []byte("workers = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if opts.Workers != 2 {
		t.Errorf("Workers = %d, want 2", opts.Workers)
	}

	_, err = LoadProfile(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing profile error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestParseStdin(t *testing.T) {
	for _, path := range []string{"", "-"} {
		g, err := Parse(path, stringsReader("p ds 2 1\n1 2\n"))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", path, err)
		}
		if g.N() != 2 {
			t.Errorf("Parse(%q).N() = %d, want 2", path, g.N())
		}
	}
}
