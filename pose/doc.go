// Package pose defines the canonical in-memory model for extracted body
// landmarks and the body-centric normalization that every downstream
// comparison runs on.
//
// 🚀 What lives here?
//
//	• Landmark / Frame / Sequence — one tracked point, one video frame,
//	  one whole recording, exactly as the pose-extraction collaborator
//	  hands them over.
//	• LandmarkIndex — a named table of the 33 MediaPipe Pose landmarks,
//	  replacing raw "frame[69]" style index arithmetic.
//	• SequenceFromFlat — decoder for the flat per-frame float arrays
//	  (x, y, z, visibility × 33) that extraction pipelines persist.
//	• Normalize — maps each well-formed frame to a fixed-length feature
//	  vector of body-center-relative (x, y) offsets over KeyLandmarks.
//
// ✨ Guarantees:
//   - A Frame is either well-formed (exactly LandmarkCount landmarks) or
//     dropped; it is never partially trusted.
//   - Every NormalizedFrame produced by one Normalize call has length
//     FeatureDim; malformed source frames are skipped, not zero-filled,
//     so a NormalizedSequence may be shorter than its source.
//   - An empty Sequence normalizes to an empty NormalizedSequence with
//     no error: emptiness is meaningful downstream, not a failure here.
//
// ⚙️ Usage:
//
//	seq := pose.SequenceFromFlat(rawFrames, 30)
//	feats := pose.Normalize(seq)
//	// feats feeds similarity.Score / seqmatch.BestMatch / chain.Verify
//
// Complexity: Normalize is O(frames · len(KeyLandmarks)) time, one
// FeatureDim-sized allocation per surviving frame.
package pose
