// Package chain decides whether a submitted performance reproduces every
// prior move of a dance chain, producing the verification verdict the
// chain-progression workflow acts on.
//
// 🚀 Verification walk:
//
//	 1. No prior moves → trivially verified with score 1.0 (the first
//	    move in a chain has nothing to reproduce).
//	 2. The submission is normalized once; fewer than MinFrames usable
//	    frames → Verified=false, score 0.0.
//	 3. Each ReferenceMove is searched for in the normalized submission
//	    via seqmatch.BestMatch. Searches are independent and fan out
//	    over an errgroup bounded by MaxParallel; MoveScores stay
//	    positionally aligned with the input regardless of completion
//	    order.
//	 4. All-or-nothing gate: every prior move must clear MoveThreshold
//	    or the whole verification fails with score 0.0 — partial credit
//	    is not given.
//	 5. On success the overall score is mean(MoveScores) capped at
//	    ScoreCap, reserving headroom so a perfect historical replay
//	    never outscores the novelty of the newly added move.
//
// ✨ Failure semantics:
//
//	A bad performance never errors — it scores 0.0 with a per-move
//	breakdown, so the workflow can tell the dancer which move was not
//	reproduced. The error return is reserved for contract violations
//	from the surrounding system (nil sequence where one is structurally
//	required), which indicate a bug, not a property of the dancing.
//
// ⚙️ Usage:
//
//	v, err := chain.NewVerifier(nil) // canonical thresholds
//	res, err := v.Verify(ctx, priorMoves, submission)
//	if res.Verified { /* persist the new ReferenceMove */ }
//
// The verifier holds no state between calls and is safe for concurrent
// use; ReferenceMove data is immutable ground truth and is never written.
package chain
