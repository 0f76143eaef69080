package layers_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqrnn/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense_ForwardBackwardShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := layers.NewDense(4, 3, layers.Tanh, rng)

	x := [][]float64{{1, 0, -1, 0.5}, {0, 1, 1, -0.5}}
	y := d.Forward(x)
	require.Len(t, y, 2)
	require.Len(t, y[0], 3)

	dLdy := [][]float64{{0.1, -0.2, 0.3}, {0.0, 0.1, -0.1}}
	dx := d.Backward(dLdy)
	require.Len(t, dx, 2)
	require.Len(t, dx[0], 4)

	d.ApplyGradients(0.01, 0.001)
}

func TestDense_SoftmaxRowsSumToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	d := layers.NewDense(3, 4, layers.Softmax, rng)
	y := d.Forward([][]float64{{1, 2, 3}})
	var sum float64
	for _, v := range y[0] {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestLSTM_StatePersistsAcrossForwardAndResets(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	l := layers.NewLSTM(2, 5, rng)

	x1 := [][]float64{{0.1, 0.2}}
	h1 := l.Forward(x1)
	h2 := l.Forward(x1)
	assert.NotEqual(t, h1, h2, "hidden state should evolve across time steps")

	l.ResetState()
	h3 := l.Forward(x1)
	assert.Equal(t, h1, h3, "identical input from a reset state should reproduce the first output")
}

func TestLSTM_BackwardMatchesForwardCount(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	l := layers.NewLSTM(2, 3, rng)
	l.SetBatchSize(1)

	x := [][]float64{{0.5, -0.5}}
	_ = l.Forward(x)
	_ = l.Forward(x)

	dh := [][]float64{{0.1, 0.1, 0.1}}
	_ = l.Backward(dh) // pops 2nd forward
	_ = l.Backward(dh) // pops 1st forward

	assert.Panics(t, func() { l.Backward(dh) }, "popping an empty stack must panic")
}
