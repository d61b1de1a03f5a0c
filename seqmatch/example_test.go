package seqmatch_test

import (
	"fmt"

	"github.com/dancechain/poseverify/pose"
	"github.com/dancechain/poseverify/seqmatch"
)

// ExampleBestMatch searches a short ramp "performance" for its own
// middle two frames. The recording is short, so the exhaustive fine
// scan kicks in and lands on the exact alignment.
func ExampleBestMatch() {
	performance := pose.NormalizedSequence{
		{0.0, 0.0, 0.1, 0.1},
		{0.1, 0.1, 0.2, 0.2},
		{0.2, 0.2, 0.3, 0.3},
		{0.3, 0.3, 0.4, 0.4},
	}
	move := pose.NormalizedSequence{
		{0.1, 0.1, 0.2, 0.2},
		{0.2, 0.2, 0.3, 0.3},
	}

	opts := seqmatch.DefaultOptions()
	best, err := seqmatch.BestMatch(performance, move, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("best=%.2f\n", best)
	// Output:
	// best=1.00
}
