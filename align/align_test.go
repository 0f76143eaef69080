package align_test

import (
	"testing"

	"github.com/katalvlaran/seqrnn/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlign_S2 is end-to-end scenario S2 from the spec.
func TestAlign_S2(t *testing.T) {
	p := []int{1, 2, 3}
	tt := []int{1, 3}
	rp := make([]int, 6)
	rt := make([]int, 6)

	dist, err := align.Align(p, tt, 0, rp, rt)
	require.NoError(t, err)
	assert.Equal(t, 1, dist)
	assert.Equal(t, []int{1, 2, 3, 0, 0, 0}, rp)
	assert.Equal(t, []int{1, 0, 3, 0, 0, 0}, rt)
}

// TestAlign_InsufficientBuffer verifies the buffer-length precondition.
func TestAlign_InsufficientBuffer(t *testing.T) {
	p := []int{1, 2, 3}
	tt := []int{1, 3}
	rp := make([]int, 5) // need 6
	rt := make([]int, 5)

	_, err := align.Align(p, tt, 0, rp, rt)
	assert.ErrorIs(t, err, align.ErrInsufficientBuffer)
}

// TestAlign_EqualLength verifies property 5: equal output lengths and that
// the returned distance equals substitutions+insertions+deletions.
func TestAlign_EqualLength(t *testing.T) {
	p := []int{5, 6, 7, 8}
	tt := []int{5, 7, 9}
	rp := make([]int, 8)
	rt := make([]int, 8)

	dist, err := align.Align(p, tt, -1, rp, rt)
	require.NoError(t, err)

	matches, subs, indels := 0, 0, 0
	for i := range rp {
		if rp[i] == -1 && rt[i] == -1 {
			break
		}
		if rp[i] != -1 && rt[i] != -1 {
			if rp[i] == rt[i] {
				matches++
			} else {
				subs++
			}
		} else {
			indels++
		}
	}
	_ = matches
	assert.LessOrEqual(t, subs, dist)
	assert.Equal(t, subs+indels, dist)
}

// TestAlign_IdenticalSequences checks a perfect match yields zero distance.
func TestAlign_IdenticalSequences(t *testing.T) {
	p := []int{1, 2, 3}
	rp := make([]int, 6)
	rt := make([]int, 6)

	dist, err := align.Align(p, p, 0, rp, rt)
	require.NoError(t, err)
	assert.Equal(t, 0, dist)
	assert.Equal(t, []int{1, 2, 3, 0, 0, 0}, rp)
	assert.Equal(t, []int{1, 2, 3, 0, 0, 0}, rt)
}
