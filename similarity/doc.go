// Package similarity scores how alike two equal-length normalized pose
// sequences are, on a [0,1] scale.
//
// 🚀 What is the score?
//
//	Per-frame similarity under a configurable Metric, averaged over the
//	sequence:
//	  • Cosine (canonical) — cosine of the two feature vectors rescaled
//	    from [-1,1] to [0,1] via (cos+1)/2. Scale-invariant: dancers of
//	    different sizes or camera distances compare on pose shape, not
//	    absolute magnitude.
//	  • EuclideanTolerance — mean per-frame Euclidean distance mapped
//	    through max(0, 1 − d/Tolerance). Kept as the earlier tuning
//	    variant for pipelines that calibrated against it.
//
// ✨ Degradation rules (never panic, never error on data):
//   - Length-mismatched sequences score 0.0: failing to line up is a
//     matching failure, not a programming error.
//   - A frame pair where either vector has zero magnitude contributes
//     0 under Cosine: a flat pose cannot be judged similar to anything.
//   - Frame pairs of differing dimensionality are skipped from the mean.
//   - No comparable pair at all ⇒ 0.0.
//
// ⚙️ Usage:
//
//	opts := similarity.DefaultOptions()
//	s, err := similarity.Score(a, b, &opts)
//
// Errors are reserved for invalid Options (programmer error), surfaced
// as ErrBadMetric / ErrBadTolerance.
//
// Complexity: O(frames · FeatureDim) time, O(1) extra memory.
package similarity
