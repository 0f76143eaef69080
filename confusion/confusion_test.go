package confusion_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/seqrnn/confusion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulate_OutOfRange(t *testing.T) {
	m := confusion.NewMatrix([]string{"a", "b"})
	assert.ErrorIs(t, m.Accumulate(2, 0), confusion.ErrClassOutOfRange)
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	m := confusion.NewMatrix([]string{"a", "b"})
	require.NoError(t, m.Accumulate(0, 0))
	require.NoError(t, m.Accumulate(0, 1))
	require.NoError(t, m.Accumulate(1, 1))

	var buf strings.Builder
	require.NoError(t, m.WriteCSV(&buf))
	assert.Equal(t, ",a,b\na,1,1\nb,0,1\n", buf.String())
}

func TestAccumulatePairs_SkipsBothBlank(t *testing.T) {
	m := confusion.NewMatrix([]string{"blank", "a", "b"})
	require.NoError(t, m.AccumulatePairs([]int{0, 1, 0}, []int{0, 1, 2}, 0))

	var buf strings.Builder
	require.NoError(t, m.WriteCSV(&buf))
	// position 0 skipped (both blank), position 1: true=a pred=a, position 2: true=blank pred=b (counted, only one side blank)
	assert.Equal(t, ",blank,a,b\nblank,0,0,1\na,0,1,0\nb,0,0,0\n", buf.String())
}

func TestTopConfusions_SortedDescendingExcludingDiagonal(t *testing.T) {
	m := confusion.NewMatrix([]string{"a", "b", "c"})
	require.NoError(t, m.Accumulate(0, 1))
	require.NoError(t, m.Accumulate(0, 1))
	require.NoError(t, m.Accumulate(1, 2))
	require.NoError(t, m.Accumulate(2, 2)) // diagonal, excluded

	top := m.TopConfusions(5)
	require.Len(t, top, 2)
	assert.Equal(t, confusion.Pair{TrueClass: 0, PredClass: 1, Count: 2}, top[0])
	assert.Equal(t, confusion.Pair{TrueClass: 1, PredClass: 2, Count: 1}, top[1])
}
