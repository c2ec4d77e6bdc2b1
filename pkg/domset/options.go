package domset

import (
	"github.com/matzehuels/domsearch/pkg/errors"
)

// Defaults for the perturbation schedule. They are empirically tuned.
const (
	DefaultShuffleEvery    = 5
	DefaultResetPatience   = 3
	DefaultInitialDivisor  = 100
	DefaultDivisorStep     = 25
	DefaultMaxDivisor      = 2000
	DefaultWindow          = 100
	DefaultMinImprovements = 50
	DefaultMinAdditions    = 10
)

// Options configures a Solver. Zero-valued schedule fields are replaced by
// the defaults above; Seed 0 is a valid seed.
type Options struct {
	// Seed drives every random choice; equal seeds replay equal runs.
	Seed uint64 `toml:"seed" json:"seed"`

	// ShuffleEvery shuffles the removal queue on rounds divisible by it.
	ShuffleEvery int `toml:"shuffle_every" json:"shuffle_every,omitempty"`

	// ResetPatience is the number of consecutive rounds worse than the best
	// that are tolerated before rolling back to the best state.
	ResetPatience int `toml:"reset_patience" json:"reset_patience,omitempty"`

	// InitialDivisor, DivisorStep and MaxDivisor control the perturbation
	// batch size max(n/divisor, MinAdditions).
	InitialDivisor int `toml:"initial_divisor" json:"initial_divisor,omitempty"`
	DivisorStep    int `toml:"divisor_step" json:"divisor_step,omitempty"`
	MaxDivisor     int `toml:"max_divisor" json:"max_divisor,omitempty"`

	// Window is the number of recent rounds whose improvements are counted,
	// and the minimum spacing between divisor increases.
	Window int `toml:"window" json:"window,omitempty"`

	// MinImprovements is the improvement count inside the window below which
	// the divisor grows.
	MinImprovements int `toml:"min_improvements" json:"min_improvements,omitempty"`

	// MinAdditions is the lower bound on random additions per round.
	MinAdditions int `toml:"min_additions" json:"min_additions,omitempty"`

	// MaxRounds stops the search after that many rounds. Zero means no limit.
	MaxRounds int64 `toml:"max_rounds" json:"max_rounds,omitempty"`

	// ProgressEvery emits a heartbeat Progress every that many rounds.
	// Zero disables heartbeats; improvements are always reported.
	ProgressEvery int64 `toml:"progress_every" json:"progress_every,omitempty"`

	// Progress, when set, is called from the solver goroutine.
	Progress func(Progress) `toml:"-" json:"-"`
}

// SetDefaults fills zero-valued schedule fields.
func (o *Options) SetDefaults() {
	if o.ShuffleEvery == 0 {
		o.ShuffleEvery = DefaultShuffleEvery
	}
	if o.ResetPatience == 0 {
		o.ResetPatience = DefaultResetPatience
	}
	if o.InitialDivisor == 0 {
		o.InitialDivisor = DefaultInitialDivisor
	}
	if o.DivisorStep == 0 {
		o.DivisorStep = DefaultDivisorStep
	}
	if o.MaxDivisor == 0 {
		o.MaxDivisor = DefaultMaxDivisor
	}
	if o.Window == 0 {
		o.Window = DefaultWindow
	}
	if o.MinImprovements == 0 {
		o.MinImprovements = DefaultMinImprovements
	}
	if o.MinAdditions == 0 {
		o.MinAdditions = DefaultMinAdditions
	}
}

// Validate rejects negative or inconsistent settings. Call SetDefaults first.
func (o *Options) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"shuffle_every", o.ShuffleEvery},
		{"reset_patience", o.ResetPatience},
		{"initial_divisor", o.InitialDivisor},
		{"divisor_step", o.DivisorStep},
		{"max_divisor", o.MaxDivisor},
		{"window", o.Window},
		{"min_improvements", o.MinImprovements},
		{"min_additions", o.MinAdditions},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %d", p.name, p.v)
		}
	}
	if o.MaxDivisor < o.InitialDivisor {
		return errors.New(errors.ErrCodeInvalidConfig, "max_divisor (%d) is below initial_divisor (%d)", o.MaxDivisor, o.InitialDivisor)
	}
	if o.MaxRounds < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_rounds cannot be negative")
	}
	if o.ProgressEvery < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "progress_every cannot be negative")
	}
	return nil
}

// ProgressKind tells why a Progress was emitted.
type ProgressKind int

const (
	// ProgressImproved is emitted when a strictly smaller set is recorded.
	ProgressImproved ProgressKind = iota
	// ProgressHeartbeat is emitted every Options.ProgressEvery rounds.
	ProgressHeartbeat
)

// String returns "improved" or "heartbeat".
func (k ProgressKind) String() string {
	if k == ProgressImproved {
		return "improved"
	}
	return "heartbeat"
}

// Progress is a snapshot of the search taken at the end of a round.
type Progress struct {
	Kind      ProgressKind
	Round     int64 // Zero-based index of the round just finished
	Size      int   // Current set size after removals
	Best      int   // Best size recorded so far
	Divisor   int   // Current perturbation divisor
	Rollbacks int64 // Rollbacks performed so far
}
