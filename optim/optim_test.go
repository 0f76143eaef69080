package optim_test

import (
	"testing"

	"github.com/katalvlaran/seqrnn/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdamW_DescendsOnConstantGradient(t *testing.T) {
	a := optim.NewAdamW(1, 2)
	params := [][]float64{{1.0, -1.0}}
	grads := [][]float64{{0.5, 0.5}}

	a.Step(params, grads, 0.1, 0)

	assert.Less(t, params[0][0], 1.0, "positive gradient must decrease the parameter")
	assert.Less(t, params[0][1], -1.0, "positive gradient must decrease the parameter regardless of sign")
}

func TestAdamW_WeightDecayShrinksParamsUnderZeroGradient(t *testing.T) {
	a := optim.NewAdamW(1, 1)
	params := [][]float64{{2.0}}
	zero := [][]float64{{0.0}}

	a.Step(params, zero, 0.1, 0.1)

	assert.Less(t, params[0][0], 2.0, "decoupled weight decay must shrink params toward zero even with no gradient")
}

func TestAdamW_StepVectorMatchesStepOnSingleRow(t *testing.T) {
	matrixForm := optim.NewAdamW(1, 3)
	vectorForm := optim.NewAdamWVector(3)

	mp := [][]float64{{1, 2, 3}}
	mg := [][]float64{{0.1, -0.2, 0.3}}
	vp := []float64{1, 2, 3}
	vg := []float64{0.1, -0.2, 0.3}

	matrixForm.Step(mp, mg, 0.01, 0.001)
	vectorForm.StepVector(vp, vg, 0.01, 0.001)

	require.Len(t, vp, 3)
	for i := range vp {
		assert.InDelta(t, mp[0][i], vp[i], 1e-12)
	}
}

func TestAdamW_RepeatedStepsReduceLossOnQuadratic(t *testing.T) {
	a := optim.NewAdamW(1, 1)
	params := [][]float64{{5.0}}
	for i := 0; i < 200; i++ {
		grads := [][]float64{{2 * params[0][0]}} // d/dx x^2
		a.Step(params, grads, 0.1, 0)
	}
	assert.Less(t, params[0][0]*params[0][0], 25.0, "200 AdamW steps on x^2 must reduce the loss from the start")
	assert.InDelta(t, 0.0, params[0][0], 0.5, "AdamW should converge x close to the minimum at 0")
}
