// Package seqmatch: options, defaults and sentinel errors.
package seqmatch

import (
	"errors"

	"github.com/dancechain/poseverify/similarity"
)

var (
	// ErrBadStrideDivisor indicates a non-positive StrideDivisor.
	ErrBadStrideDivisor = errors.New("seqmatch: stride divisor must be positive")

	// ErrBadEdgePenalty indicates an EdgePenalty outside (0, 1].
	ErrBadEdgePenalty = errors.New("seqmatch: edge penalty must be in (0, 1]")

	// ErrBadEdgeFraction indicates an EdgeFraction outside [0, 0.5).
	ErrBadEdgeFraction = errors.New("seqmatch: edge fraction must be in [0, 0.5)")

	// ErrBadFineScanLimit indicates a negative FineScanLimit.
	ErrBadFineScanLimit = errors.New("seqmatch: fine scan limit must be non-negative")
)

// Defaults — single source of truth for the canonical search tuning.
const (
	// DefaultStrideDivisor makes the coarse stride a quarter of the
	// needle length (25% overlap steps).
	DefaultStrideDivisor = 4

	// DefaultEdgePenalty down-weights boundary windows by 20%.
	DefaultEdgePenalty = 0.8

	// DefaultEdgeFraction marks the first and last 10% of the haystack
	// as boundary territory.
	DefaultEdgeFraction = 0.10

	// DefaultFineScanLimit is the haystack length up to which an
	// exhaustive unit-stride scan is also run.
	DefaultFineScanLimit = 100
)

// Options configures BestMatch.
//
// Fields:
//   - StrideDivisor — coarse stride = max(1, len(needle)/StrideDivisor).
//   - EdgePenalty   — multiplier applied to boundary windows; 1 disables.
//   - EdgeFraction  — fraction of the haystack at each end counted as
//     boundary; 0 disables the penalty entirely.
//   - FineScanLimit — max haystack length for the exhaustive fallback;
//     0 disables the fine scan.
//   - Similarity    — per-window scoring; see similarity.Options.
type Options struct {
	StrideDivisor int
	EdgePenalty   float64
	EdgeFraction  float64
	FineScanLimit int
	Similarity    similarity.Options
}

// DefaultOptions returns the canonical search configuration.
func DefaultOptions() Options {
	return Options{
		StrideDivisor: DefaultStrideDivisor,
		EdgePenalty:   DefaultEdgePenalty,
		EdgeFraction:  DefaultEdgeFraction,
		FineScanLimit: DefaultFineScanLimit,
		Similarity:    similarity.DefaultOptions(),
	}
}

// Validate enforces Options invariants, including the nested
// similarity.Options.
func (o *Options) Validate() error {
	if o.StrideDivisor <= 0 {
		return ErrBadStrideDivisor
	}
	if o.EdgePenalty <= 0 || o.EdgePenalty > 1 {
		return ErrBadEdgePenalty
	}
	if o.EdgeFraction < 0 || o.EdgeFraction >= 0.5 {
		return ErrBadEdgeFraction
	}
	if o.FineScanLimit < 0 {
		return ErrBadFineScanLimit
	}

	return o.Similarity.Validate()
}
