package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dancechain/poseverify/pose"
	"github.com/dancechain/poseverify/similarity"
)

// seq builds a normalized sequence from literal frames.
func seq(frames ...[]float64) pose.NormalizedSequence {
	out := make(pose.NormalizedSequence, len(frames))
	for i, f := range frames {
		out[i] = pose.NormalizedFrame(f)
	}

	return out
}

// TestScore_SelfSimilarity verifies that a sequence compared with itself
// scores 1.0 under the cosine metric.
func TestScore_SelfSimilarity(t *testing.T) {
	a := seq(
		[]float64{0.1, -0.2, 0.3, 0.05},
		[]float64{-0.4, 0.2, 0.11, -0.07},
		[]float64{0.25, 0.25, -0.3, 0.4},
	)

	s, err := similarity.Score(a, a, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-9, "self-similarity must be 1")
}

// TestScore_LengthMismatch verifies that sequences of different lengths
// score exactly 0.0 without error.
func TestScore_LengthMismatch(t *testing.T) {
	a := seq([]float64{1, 0}, []float64{0, 1})
	b := seq([]float64{1, 0})

	s, err := similarity.Score(a, b, nil)
	require.NoError(t, err)
	assert.Zero(t, s, "length mismatch is a matching failure, not an error")
}

// TestScore_EmptySequences verifies that two empty sequences score 0.0.
func TestScore_EmptySequences(t *testing.T) {
	s, err := similarity.Score(nil, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, s)
}

// TestScore_FrameGeometry pins the per-frame cosine rescaling: identical
// direction → 1, orthogonal → 0.5, opposite → 0.
func TestScore_FrameGeometry(t *testing.T) {
	e1 := []float64{1, 0}
	e2 := []float64{0, 1}
	opp := []float64{-1, 0}

	s, err := similarity.Score(seq(e1), seq(e1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-12)

	s, err = similarity.Score(seq(e1), seq(e2), nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s, 1e-12)

	s, err = similarity.Score(seq(e1), seq(opp), nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, s, 1e-12)
}

// TestScore_ZeroMagnitude verifies that a flat (all-zero) pose
// contributes 0: it cannot be judged similar to anything.
func TestScore_ZeroMagnitude(t *testing.T) {
	s, err := similarity.Score(seq([]float64{0, 0}), seq([]float64{1, 1}), nil)
	require.NoError(t, err)
	assert.Zero(t, s)
}

// TestScore_SkipsDimensionMismatch verifies that frame pairs whose
// vectors differ in dimensionality are skipped from the mean, not
// counted as zero.
func TestScore_SkipsDimensionMismatch(t *testing.T) {
	a := seq([]float64{1, 0}, []float64{1, 0, 0})
	b := seq([]float64{1, 0}, []float64{1, 0})

	s, err := similarity.Score(a, b, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-12, "the mismatched pair must not drag down the mean")
}

// TestScore_NoComparablePairs verifies that a sequence with no
// comparable frame pair at all scores 0.0.
func TestScore_NoComparablePairs(t *testing.T) {
	a := seq([]float64{1, 0, 0})
	b := seq([]float64{1, 0})

	s, err := similarity.Score(a, b, nil)
	require.NoError(t, err)
	assert.Zero(t, s)
}

// TestScore_EuclideanTolerance pins the legacy metric's distance
// mapping: 0 distance → 1, half tolerance → 0.5, at/beyond → 0.
func TestScore_EuclideanTolerance(t *testing.T) {
	opts := similarity.Options{Metric: similarity.EuclideanTolerance, Tolerance: 0.1}

	s, err := similarity.Score(seq([]float64{0.2, 0.3}), seq([]float64{0.2, 0.3}), &opts)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-12)

	s, err = similarity.Score(seq([]float64{0, 0}), seq([]float64{0.05, 0}), &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s, 1e-12)

	s, err = similarity.Score(seq([]float64{0, 0}), seq([]float64{0.5, 0}), &opts)
	require.NoError(t, err)
	assert.Zero(t, s)
}

// TestScore_BadOptions verifies the option sentinels.
func TestScore_BadOptions(t *testing.T) {
	a := seq([]float64{1, 0})

	_, err := similarity.Score(a, a, &similarity.Options{Metric: similarity.Metric(42)})
	assert.ErrorIs(t, err, similarity.ErrBadMetric)

	_, err = similarity.Score(a, a, &similarity.Options{Metric: similarity.EuclideanTolerance})
	assert.ErrorIs(t, err, similarity.ErrBadTolerance, "euclidean metric needs a positive tolerance")
}
