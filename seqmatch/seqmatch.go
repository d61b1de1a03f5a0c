package seqmatch

import (
	"github.com/dancechain/poseverify/pose"
	"github.com/dancechain/poseverify/similarity"
)

// BestMatch returns the highest [0,1] similarity of any len(needle)-sized
// window of haystack against needle, after edge penalties. A nil opts
// selects DefaultOptions.
//
// Contract:
//   - Either sequence empty, or len(haystack) < len(needle) ⇒ 0.0, nil:
//     the move cannot be contained in a shorter recording.
//   - Errors are reserved for invalid Options (programmer error) and
//     propagate from Options/similarity validation only.
//
// Algorithm Outline:
//  1. Coarse scan at stride max(1, len(needle)/StrideDivisor).
//  2. Windows starting within the first or last EdgeFraction of the
//     haystack have their similarity multiplied by EdgePenalty.
//  3. If len(haystack) ≤ FineScanLimit, additionally scan every start
//     index at unit stride and keep the best score across both scans.
func BestMatch(haystack, needle pose.NormalizedSequence, opts *Options) (float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return 0, err
	}

	n := len(needle)
	if n == 0 || len(haystack) < n {
		return 0, nil
	}

	stride := n / o.StrideDivisor
	if stride < 1 {
		stride = 1
	}

	best, err := scan(haystack, needle, stride, &o)
	if err != nil {
		return 0, err
	}

	// Short recordings are cheap to search fully and benefit from
	// exact alignment.
	if stride > 1 && len(haystack) <= o.FineScanLimit {
		fine, err := scan(haystack, needle, 1, &o)
		if err != nil {
			return 0, err
		}
		if fine > best {
			best = fine
		}
	}

	return best, nil
}

// scan slides a len(needle) window across haystack at the given stride
// and returns the best post-penalty window similarity.
func scan(haystack, needle pose.NormalizedSequence, stride int, o *Options) (float64, error) {
	n := len(needle)
	edge := int(float64(len(haystack)) * o.EdgeFraction)

	var best float64
	for start := 0; start+n <= len(haystack); start += stride {
		s, err := similarity.Score(haystack[start:start+n], needle, &o.Similarity)
		if err != nil {
			return 0, err
		}
		if start < edge || start >= len(haystack)-edge {
			s *= o.EdgePenalty
		}
		if s > best {
			best = s
		}
	}

	return best, nil
}
