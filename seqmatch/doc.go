// Package seqmatch searches a long normalized "performance" sequence for
// the sub-window that best matches a shorter "reference move" sequence.
//
// 🚀 How the search works:
//
//	• Coarse scan — slide a window of len(needle) across the haystack
//	  with stride max(1, len(needle)/StrideDivisor) instead of unit
//	  steps, trading exhaustiveness for throughput on long recordings.
//	• Edge penalty — windows starting inside the first or last
//	  EdgeFraction of the haystack are multiplied by EdgePenalty:
//	  a match hugging the clip boundary is more likely a truncated
//	  capture of the move than a full performance of it.
//	• Fine scan — haystacks of at most FineScanLimit frames are cheap
//	  enough to also search at unit stride; the best score across both
//	  scans wins, so short recordings get exact alignment.
//
// The result is the maximum (post-penalty) window similarity observed,
// or 0.0 when the needle cannot fit in the haystack at all.
//
// ✨ Deliberately NOT Dynamic Time Warping: the search tolerates timing
// offset (where in the performance the move occurs) but not timing
// stretch within the move itself. Known limitation, not a bug — a move
// performed at half speed will score poorly.
//
// ⚙️ Usage:
//
//	opts := seqmatch.DefaultOptions()
//	best, err := seqmatch.BestMatch(performance, move, &opts)
//
// Errors are reserved for invalid Options; all data conditions
// (empty inputs, needle longer than haystack) degrade to 0.0.
//
// Complexity: O((len(haystack)/stride) · len(needle) · dim) for the
// coarse scan, plus O(len(haystack) · len(needle) · dim) when the fine
// scan triggers.
package seqmatch
