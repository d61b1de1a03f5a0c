package similarity

import (
	"gonum.org/v1/gonum/floats"

	"github.com/dancechain/poseverify/pose"
)

// Score computes the [0,1] similarity of two equal-length normalized
// sequences as the arithmetic mean of per-frame similarities under
// opts.Metric. A nil opts selects DefaultOptions.
//
// Contract:
//   - len(a) != len(b) ⇒ 0.0, nil. Length mismatch is a matching
//     failure, not a programming error.
//   - Frame pairs of differing dimensionality are skipped from the
//     mean; if no pair could be compared, the score is 0.0.
//   - The only error conditions are invalid Options: ErrBadMetric,
//     ErrBadTolerance.
//
// Complexity: O(len(a) · dim).
func Score(a, b pose.NormalizedSequence, opts *Options) (float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return 0, err
	}

	if len(a) != len(b) || len(a) == 0 {
		return 0, nil
	}

	var sum float64
	var compared int
	for i := range a {
		fa, fb := a[i], b[i]
		if len(fa) != len(fb) || len(fa) == 0 {
			continue
		}
		switch o.Metric {
		case Cosine:
			sum += cosineFrame(fa, fb)
		case EuclideanTolerance:
			sum += euclideanFrame(fa, fb, o.Tolerance)
		}
		compared++
	}

	if compared == 0 {
		return 0, nil
	}

	return sum / float64(compared), nil
}

// cosineFrame returns (cos+1)/2 for one frame pair, or 0 when either
// vector has zero magnitude (a degenerate pose matches nothing).
func cosineFrame(a, b pose.NormalizedFrame) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}

	cos := floats.Dot(a, b) / (na * nb)
	// Clamp FP drift so the rescaled value stays inside [0,1].
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return (cos + 1) / 2
}

// euclideanFrame maps the frame pair's Euclidean distance through
// max(0, 1 − d/tolerance).
func euclideanFrame(a, b pose.NormalizedFrame, tolerance float64) float64 {
	d := floats.Distance(a, b, 2)
	if s := 1 - d/tolerance; s > 0 {
		return s
	}

	return 0
}
