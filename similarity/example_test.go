package similarity_test

import (
	"fmt"

	"github.com/dancechain/poseverify/pose"
	"github.com/dancechain/poseverify/similarity"
)

// ExampleScore compares two two-frame sequences under the canonical
// cosine metric. The first frame pair points the same way (1.0), the
// second is orthogonal (0.5), so the sequence mean is 0.75.
func ExampleScore() {
	a := pose.NormalizedSequence{{0.2, 0.1}, {0.3, 0.0}}
	b := pose.NormalizedSequence{{0.4, 0.2}, {0.0, 0.5}}

	opts := similarity.DefaultOptions()
	s, err := similarity.Score(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("score=%.2f\n", s)
	// Output:
	// score=0.75
}
