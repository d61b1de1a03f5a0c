package chain_test

import (
	"context"
	"fmt"

	"github.com/dancechain/poseverify/chain"
	"github.com/dancechain/poseverify/pose"
)

// ExampleVerifier_Verify walks one chain extension: the first move is
// trivially accepted, and a submission that replays it perfectly scores
// the capped 0.95 — headroom reserved for the new move's novelty.
func ExampleVerifier_Verify() {
	v, err := chain.NewVerifier(nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	ctx := context.Background()

	// First move in the chain: nothing to reproduce.
	first := performance(12)
	res, _ := v.Verify(ctx, nil, &first)
	fmt.Printf("first: verified=%t score=%.2f\n", res.Verified, res.OverallScore)

	// The accepted move becomes immutable ground truth.
	moves := []chain.ReferenceMove{
		{MoveNumber: 1, Sequence: pose.Normalize(first)},
	}

	// A longer submission that contains the move verbatim.
	sub := performance(24)
	res, _ = v.Verify(ctx, moves, &sub)
	fmt.Printf("second: verified=%t score=%.2f\n", res.Verified, res.OverallScore)
	// Output:
	// first: verified=true score=1.00
	// second: verified=true score=0.95
}
