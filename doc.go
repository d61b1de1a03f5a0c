// Package poseverify scores whether a recorded dance performance
// reproduces the moves of a collaborative dance chain — from raw pose
// landmarks to a single accept/reject verification verdict.
//
// 🚀 What is poseverify?
//
//	A pure, stateless scoring library that brings together:
//		• Pose model: per-frame body landmarks with a named MediaPipe index table
//		• Normalization: body-centric, scale-stable feature vectors per frame
//		• Similarity: cosine (canonical) or Euclidean-tolerance frame scoring
//		• Sequence matching: sliding-window search of a performance for a move
//		• Chain verification: all-or-nothing gating across every prior move
//
// ✨ Why choose poseverify?
//
//   - Deterministic – no global state, explicit options, same input same verdict
//   - Forgiving of dirty data – malformed frames are skipped, never trusted
//   - Never throws at the dancer – bad performances score 0.0, they don't error
//   - Concurrent where it pays – per-move matching fans out over a bounded pool
//
// Under the hood, everything is organized under four subpackages:
//
//	pose/       — Landmark, Frame, Sequence types, flat decoding & the Normalizer
//	similarity/ — frame/sequence similarity metrics on normalized features
//	seqmatch/   — coarse + fine sliding-window best-match search
//	chain/      — the Verifier: per-move thresholds, aggregate score, verdict
//
// Quick data flow:
//
//	raw landmarks → pose.Normalize → seqmatch.BestMatch (×prior moves)
//	             → chain.Verifier → Result{OverallScore, MoveScores, Verified}
//
// The cmd/poseverify harness drives the same four package APIs over landmark
// JSON dumps; nothing in the core reads files, sockets, or process state.
//
//	go get github.com/dancechain/poseverify
package poseverify
