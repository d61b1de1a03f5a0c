// Package similarity: metric selection and options.
package similarity

import "errors"

var (
	// ErrBadMetric indicates an unknown Metric value in Options.
	ErrBadMetric = errors.New("similarity: unknown metric")

	// ErrBadTolerance indicates a non-positive Tolerance with the
	// EuclideanTolerance metric selected.
	ErrBadTolerance = errors.New("similarity: tolerance must be positive")
)

// Metric selects how one frame pair is scored.
//
//   - Cosine — (cos+1)/2 of the two feature vectors. Scale-invariant,
//     the canonical choice.
//   - EuclideanTolerance — max(0, 1 − distance/Tolerance). Sensitive to
//     absolute magnitude; retained for calibrated legacy pipelines.
type Metric int

const (
	// Cosine scores frame pairs by rescaled cosine similarity.
	Cosine Metric = iota

	// EuclideanTolerance scores frame pairs by tolerance-normalized
	// Euclidean distance.
	EuclideanTolerance
)

// DefaultTolerance is the per-frame distance at which the
// EuclideanTolerance metric bottoms out at 0.
const DefaultTolerance = 0.1

// Options configures Score.
//
// Fields:
//   - Metric    — per-frame scoring rule; see Metric.
//   - Tolerance — EuclideanTolerance cutoff; ignored under Cosine.
type Options struct {
	Metric    Metric
	Tolerance float64
}

// DefaultOptions returns the canonical configuration: cosine metric,
// DefaultTolerance carried along for callers that switch metrics.
func DefaultOptions() Options {
	return Options{Metric: Cosine, Tolerance: DefaultTolerance}
}

// Validate enforces Options invariants: a known Metric and, under
// EuclideanTolerance, a positive Tolerance.
func (o *Options) Validate() error {
	switch o.Metric {
	case Cosine:
		return nil
	case EuclideanTolerance:
		if o.Tolerance <= 0 {
			return ErrBadTolerance
		}
		return nil
	default:
		return ErrBadMetric
	}
}
