package beam_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/seqrnn/beam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearch_S5 is end-to-end scenario S5 from the spec. The returned
// prefixes are already collapsed and blank-free per the Beam prefix data
// model (§3); the spec's informal "[1,0]" notation in the worked example
// denotes the underlying raw per-frame argmax path (class 1 at t=0, blank
// at t=1), whose collapse-and-strip is the same [1] this test asserts as
// the actual decoder output.
func TestSearch_S5(t *testing.T) {
	P := [][]float64{{0.1, 0.9}, {0.9, 0.1}}
	cands, err := beam.Search(P, 2, 0)
	require.NoError(t, err)
	require.NotEmpty(t, cands)
	assert.Equal(t, []int{1}, cands[0].Prefix)
}

// TestSearch_ScoresNonIncreasing verifies property 7: returned scores are
// monotonically non-increasing.
func TestSearch_ScoresNonIncreasing(t *testing.T) {
	P := [][]float64{
		{0.2, 0.3, 0.5},
		{0.1, 0.6, 0.3},
		{0.4, 0.4, 0.2},
	}
	cands, err := beam.Search(P, 3, 0)
	require.NoError(t, err)
	for i := 1; i < len(cands); i++ {
		assert.GreaterOrEqual(t, cands[i-1].Score, cands[i].Score)
	}
}

// TestSearch_GreedyIncludedWhenWidthCoversClasses verifies property 7: the
// greedy (argmax-per-step) decode survives pruning when B >= C.
func TestSearch_GreedyIncludedWhenWidthCoversClasses(t *testing.T) {
	P := [][]float64{
		{0.05, 0.9, 0.05},
		{0.05, 0.05, 0.9},
		{0.9, 0.05, 0.05},
	}
	const classes = 3
	cands, err := beam.Search(P, classes, 0)
	require.NoError(t, err)

	// greedy raw path is [1,2,0] -> collapse+strip(blank=0) -> [1,2]
	found := false
	for _, c := range cands {
		if len(c.Prefix) == 2 && c.Prefix[0] == 1 && c.Prefix[1] == 2 {
			found = true
		}
	}
	assert.True(t, found, "greedy decode must survive when B >= C")
}

// TestSearch_InvalidWidth checks the width precondition.
func TestSearch_InvalidWidth(t *testing.T) {
	_, err := beam.Search([][]float64{{1}}, 0, 0)
	assert.ErrorIs(t, err, beam.ErrInvalidWidth)
}

// TestSearch_EmptyMatrix checks the zero-time-step edge case returns the
// empty prefix.
func TestSearch_EmptyMatrix(t *testing.T) {
	cands, err := beam.Search(nil, 2, 0)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Empty(t, cands[0].Prefix)
	assert.False(t, math.IsInf(cands[0].Score, 0))
}
