package chain

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/dancechain/poseverify/pose"
	"github.com/dancechain/poseverify/seqmatch"
)

// Verifier gates chain extensions. It is stateless between calls and
// safe for concurrent use.
type Verifier struct {
	opts Options
}

// NewVerifier builds a Verifier from opts; nil selects DefaultOptions.
// Option invariants are checked here once so Verify's hot path stays
// error-free for data-driven outcomes.
func NewVerifier(opts *Options) (*Verifier, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := o.Match.Validate(); err != nil {
		return nil, err
	}

	return &Verifier{opts: o}, nil
}

// Verify checks that seq reproduces every move in moves.
//
// Contract:
//   - seq == nil ⇒ ErrNilSequence (contract violation; distinct from a
//     failed verification).
//   - len(moves) == 0 ⇒ {OverallScore: 1, Verified: true}: the first
//     move in a chain has nothing to reproduce.
//   - Any insufficient-data condition ⇒ Verified=false with score 0.0
//     and a per-move breakdown; never an error.
//
// ctx bounds the per-move fan-out; cancellation abandons the remaining
// searches and returns ctx's error. The subsystem holds no external
// resources, so abandoning mid-verification is always safe.
func (v *Verifier) Verify(ctx context.Context, moves []ReferenceMove, seq *pose.Sequence) (Result, error) {
	if seq == nil {
		return Result{}, ErrNilSequence
	}
	if len(moves) == 0 {
		return Result{OverallScore: 1, Verified: true}, nil
	}

	scores := make([]float64, len(moves))

	normalized := pose.Normalize(*seq)
	if len(normalized) < v.opts.MinFrames {
		return Result{MoveScores: scores}, nil
	}

	// Independent searches: each reads its own ReferenceMove and the
	// shared read-only normalized submission. Output order is fixed by
	// slice position, not completion order.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.opts.MaxParallel)
	for i := range moves {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := seqmatch.BestMatch(normalized, moves[i].Sequence, &v.opts.Match)
			if err != nil {
				return err
			}
			scores[i] = s

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	passed := 0
	for _, s := range scores {
		if s >= v.opts.MoveThreshold {
			passed++
		}
	}
	// All-or-nothing: every prior move must be demonstrated.
	if passed < len(moves) {
		return Result{MoveScores: scores}, nil
	}

	overall := floats.Sum(scores) / float64(len(scores))
	if overall > v.opts.ScoreCap {
		overall = v.opts.ScoreCap
	}

	return Result{OverallScore: overall, MoveScores: scores, Verified: true}, nil
}
