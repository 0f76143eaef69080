package onehot_test

import (
	"testing"

	"github.com/katalvlaran/seqrnn/onehot"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	row := onehot.Encode(2, 5)
	assert.Equal(t, []float64{0, 0, 1, 0, 0}, row)
	assert.Equal(t, 2, onehot.Decode(row))
}

func TestEncodeBatch(t *testing.T) {
	rows := onehot.EncodeBatch([]int{0, 1, 2}, 3)
	assert.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i, onehot.Decode(row))
	}
}
