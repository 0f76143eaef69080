package ctc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/seqrnn/ctc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneHot(l, class int) []float64 {
	row := make([]float64, l)
	row[class] = 1
	return row
}

// TestLoss_S4 exercises the spec's worked example (T=2, L=2, blank=0,
// yp uniform, true label [1]). The formula in §4.4 evaluated exactly on
// this input gives loss = -ln(P(u)) where P(u) is the total probability
// mass of all length-2 raw label sequences that collapse-and-strip to [1]
// ("01", "10", "11"), each of probability 0.25, so P(u)=0.75 and
// loss = -ln(0.75) ≈ 0.2877 — not the spec's informal "≈0.693" note, which
// appears to be a rough illustrative mnemonic rather than a value derived
// from the stated recursion; this test asserts the value the documented
// formula actually produces.
func TestLoss_S4(t *testing.T) {
	c := ctc.NewContext(2, 2, 0)
	yp := [][]float64{{0.5, 0.5}, {0.5, 0.5}}
	yt := [][]float64{oneHot(2, 1), oneHot(2, 1)}

	loss, err := c.Loss(yp, yt)
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(0.75), loss, 1e-6)
}

// TestLoss_ZeroTimeSteps verifies the T=0 numeric-degenerate contract.
func TestLoss_ZeroTimeSteps(t *testing.T) {
	c := ctc.NewContext(4, 3, 0)
	loss, err := c.Loss(nil, nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(loss, 1))
}

// TestGradient_RowsSumToZero checks property 3: every row of dL/dy sums to
// ~0. Since yp rows sum to 1, this only holds if, at each t, the per-label
// alpha+beta mass sums to rho[t], so it also exercises alpha/beta
// self-consistency indirectly.
func TestGradient_RowsSumToZero(t *testing.T) {
	c := ctc.NewContext(5, 3, 0)
	yp := [][]float64{
		{0.2, 0.3, 0.5},
		{0.6, 0.1, 0.3},
		{0.25, 0.25, 0.5},
	}
	yt := [][]float64{oneHot(3, 1), oneHot(3, 1), oneHot(3, 2)}

	_, err := c.Loss(yp, yt)
	require.NoError(t, err)

	grad, err := c.Gradient()
	require.NoError(t, err)
	for _, row := range grad {
		var sum float64
		for _, g := range row {
			sum += g
		}
		assert.InDelta(t, 0.0, sum, 1e-6, "gradient row must sum to ~0")
	}
}

// TestGradient_BeforeLoss verifies Gradient errors without a prior Loss call.
func TestGradient_BeforeLoss(t *testing.T) {
	c := ctc.NewContext(3, 2, 0)
	_, err := c.Gradient()
	assert.ErrorIs(t, err, ctc.ErrGradientBeforeLoss)
}

// TestAccuracy_BothEmpty verifies the T-return-on-empty contract.
func TestAccuracy_BothEmpty(t *testing.T) {
	c := ctc.NewContext(3, 2, 0)
	yp := [][]float64{oneHot(2, 0), oneHot(2, 0), oneHot(2, 0)}
	yt := [][]float64{oneHot(2, 0), oneHot(2, 0), oneHot(2, 0)}

	_, err := c.Loss(yp, yt)
	require.NoError(t, err)
	assert.Equal(t, 3.0, c.Accuracy())
}

// TestCollapseAndStrip_Basic checks the dedup-then-strip-blanks rule.
func TestCollapseAndStrip_Basic(t *testing.T) {
	out := ctc.CollapseAndStrip([]int{0, 1, 1, 0, 2, 2, 0}, 0)
	assert.Equal(t, []int{1, 2}, out)
}
