// Package pose: core value types shared by the whole library.
//
// Design:
//   - Plain slices and structs, no hidden invariants beyond frame length.
//   - Sequences are passed by value; the library never mutates caller data.
//   - Dirty input degrades (frames are dropped), it does not error; the
//     sentinel error vocabulary lives in chain/, at the contract boundary.
package pose

// Landmark is one tracked anatomical point in one frame. X, Y, Z are
// unitless frame-relative coordinates; Visibility is the extractor's
// confidence in [0,1].
type Landmark struct {
	X          float64
	Y          float64
	Z          float64
	Visibility float64
}

// Frame holds all landmarks detected in a single video frame, indexed by
// LandmarkIndex. A well-formed frame has exactly LandmarkCount entries.
type Frame []Landmark

// WellFormed reports whether the frame carries the full landmark set and
// at least one non-zero sample. An all-zero frame is the extractor's
// "no pose detected" placeholder and must not be trusted as a pose.
func (f Frame) WellFormed() bool {
	if len(f) != LandmarkCount {
		return false
	}
	for i := range f {
		if f[i].X != 0 || f[i].Y != 0 || f[i].Z != 0 || f[i].Visibility != 0 {
			return true
		}
	}
	return false
}

// Sequence is one recording's worth of frames in temporal order, plus the
// extraction metadata that travels with it.
type Sequence struct {
	// Frames in capture order. May be empty: an empty sequence signals
	// missing or failed extraction, which callers interpret, not us.
	Frames []Frame

	// SampleRate is the extraction frame rate in frames per second.
	// Zero means unknown.
	SampleRate float64

	// OriginalFrameCount is the source video's frame count before the
	// extractor sampled or truncated it. Zero means unknown.
	OriginalFrameCount int
}

// Len returns the number of frames in the sequence.
func (s Sequence) Len() int { return len(s.Frames) }

// Empty reports whether the sequence carries no frames at all.
func (s Sequence) Empty() bool { return len(s.Frames) == 0 }

// NormalizedFrame is one frame's body-center-relative feature vector.
// Every NormalizedFrame produced by Normalize has length FeatureDim.
type NormalizedFrame []float64

// NormalizedSequence is the normalized form of a Sequence, in the same
// temporal order, possibly shorter where malformed frames were dropped.
type NormalizedSequence []NormalizedFrame
