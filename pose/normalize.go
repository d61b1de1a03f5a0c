package pose

// Normalize maps a raw Sequence into body-center-relative feature
// vectors, one NormalizedFrame of length FeatureDim per surviving frame.
//
// Algorithm Outline:
//  1. For each frame, require every index up to maxKeyLandmark to be
//     present and the frame to be well-formed; otherwise skip it.
//  2. Body center = arithmetic mean of the x and y coordinates of the
//     left/right shoulder and left/right hip landmarks.
//  3. Emit (x − centerX, y − centerY) for every entry of KeyLandmarks,
//     in table order. Z and visibility do not participate: the feature
//     is pose shape, not depth or confidence.
//
// An empty input, or one with no well-formed frame, yields an empty
// NormalizedSequence — never an error. Pure function, no side effects.
//
// Complexity: O(len(seq.Frames) · len(KeyLandmarks)).
func Normalize(seq Sequence) NormalizedSequence {
	if seq.Empty() {
		return nil
	}

	out := make(NormalizedSequence, 0, len(seq.Frames))
	for _, frame := range seq.Frames {
		if nf, ok := normalizeFrame(frame); ok {
			out = append(out, nf)
		}
	}

	return out
}

// normalizeFrame converts a single frame, reporting ok=false when the
// frame cannot be trusted (too short or placeholder).
func normalizeFrame(f Frame) (NormalizedFrame, bool) {
	if len(f) <= int(maxKeyLandmark) || !f.WellFormed() {
		return nil, false
	}

	ls, rs := f[LeftShoulder], f[RightShoulder]
	lh, rh := f[LeftHip], f[RightHip]
	centerX := (ls.X + rs.X + lh.X + rh.X) / 4
	centerY := (ls.Y + rs.Y + lh.Y + rh.Y) / 4

	nf := make(NormalizedFrame, 0, FeatureDim)
	for _, li := range KeyLandmarks {
		nf = append(nf, f[li].X-centerX, f[li].Y-centerY)
	}

	return nf, true
}
