// Package chain: verification data model, options and sentinel errors.
package chain

import (
	"errors"
	"runtime"

	"github.com/dancechain/poseverify/pose"
	"github.com/dancechain/poseverify/seqmatch"
)

var (
	// ErrNilSequence indicates the caller passed no submission sequence
	// where one is structurally required — a bug in the surrounding
	// system, not a failed verification.
	ErrNilSequence = errors.New("chain: submission sequence must not be nil")

	// ErrBadThreshold indicates a MoveThreshold outside [0, 1].
	ErrBadThreshold = errors.New("chain: move threshold must be in [0, 1]")

	// ErrBadScoreCap indicates a ScoreCap outside (0, 1].
	ErrBadScoreCap = errors.New("chain: score cap must be in (0, 1]")

	// ErrBadMinFrames indicates a non-positive MinFrames.
	ErrBadMinFrames = errors.New("chain: min frames must be positive")

	// ErrBadParallelism indicates a negative MaxParallel.
	ErrBadParallelism = errors.New("chain: max parallel must be non-negative")
)

// Policy defaults. Different deployments disagreed on these historically,
// which is exactly why they are Options rather than burned-in constants.
const (
	// DefaultMoveThreshold is the per-move similarity a prior move must
	// reach to count as reproduced.
	DefaultMoveThreshold = 0.6

	// DefaultScoreCap bounds the aggregate score of a successful
	// verification.
	DefaultScoreCap = 0.95

	// DefaultMinFrames is the minimum usable frame count a submission
	// must yield after normalization.
	DefaultMinFrames = 10
)

// ReferenceMove is the normalized pose sequence of a previously accepted
// chain move: immutable historical ground truth that later submissions
// must reproduce.
type ReferenceMove struct {
	// MoveNumber is the 1-based position of the move in its chain.
	MoveNumber int

	// Sequence is the move's normalized landmark sequence.
	Sequence pose.NormalizedSequence
}

// Result is one verification verdict. It is created fresh per call and
// never persisted by this package.
type Result struct {
	// OverallScore is the aggregate similarity in [0,1].
	OverallScore float64

	// MoveScores holds one best-match score per prior move, positionally
	// aligned with the moves slice passed to Verify. Nil when the chain
	// had no prior moves.
	MoveScores []float64

	// Verified reports whether every prior move was reproduced.
	Verified bool
}

// Options configures a Verifier.
//
// Fields:
//   - MoveThreshold — per-move gate; see DefaultMoveThreshold.
//   - ScoreCap      — aggregate cap; see DefaultScoreCap.
//   - MinFrames     — minimum normalized submission length.
//   - MaxParallel   — bound on concurrent per-move searches;
//     0 means GOMAXPROCS.
//   - Match         — sequence-search tuning; see seqmatch.Options.
type Options struct {
	MoveThreshold float64
	ScoreCap      float64
	MinFrames     int
	MaxParallel   int
	Match         seqmatch.Options
}

// DefaultOptions returns the canonical verification policy.
func DefaultOptions() Options {
	return Options{
		MoveThreshold: DefaultMoveThreshold,
		ScoreCap:      DefaultScoreCap,
		MinFrames:     DefaultMinFrames,
		MaxParallel:   0,
		Match:         seqmatch.DefaultOptions(),
	}
}

// validate enforces Options invariants and resolves MaxParallel.
func (o *Options) validate() error {
	if o.MoveThreshold < 0 || o.MoveThreshold > 1 {
		return ErrBadThreshold
	}
	if o.ScoreCap <= 0 || o.ScoreCap > 1 {
		return ErrBadScoreCap
	}
	if o.MinFrames <= 0 {
		return ErrBadMinFrames
	}
	if o.MaxParallel < 0 {
		return ErrBadParallelism
	}
	if o.MaxParallel == 0 {
		o.MaxParallel = runtime.GOMAXPROCS(0)
	}

	return nil
}
