package driver

import (
	"math"

	"github.com/katalvlaran/seqrnn/ctc"
)

// ctcLoss runs CTC over one batch slot's valid-length window, reusing the
// caller-owned ctx (sized once per training run, per §3's ownership
// invariant) rather than allocating a fresh Context per slot. A
// non-finite loss (T=0) is the sentinel the caller treats as "skip this
// slot's contribution"; in that case Gradient must not be called on ctx.
func ctcLoss(ctx *ctc.Context, yp, yt [][]float64) (loss float64, err error) {
	loss, err = ctx.Loss(yp, yt)
	return loss, err
}

// crossEntropyLoss computes mean per-frame cross-entropy between
// predicted probabilities yp and one-hot targets yt, along with the
// combined softmax+cross-entropy gradient dL/dy = yp - yt (the same
// simplification layers.Dense's Backward already assumes at its softmax
// head).
func crossEntropyLoss(yp, yt [][]float64) (float64, [][]float64) {
	T := len(yp)
	grad := make([][]float64, T)
	var sum float64
	for t := 0; t < T; t++ {
		grad[t] = make([]float64, len(yp[t]))
		for c := range yp[t] {
			if yt[t][c] > 0 {
				p := yp[t][c]
				if p <= 0 {
					p = 1e-12
				}
				sum += -yt[t][c] * math.Log(p)
			}
			grad[t][c] = yp[t][c] - yt[t][c]
		}
	}
	if T == 0 {
		return 0, grad
	}
	return sum / float64(T), grad
}

// frameArgmaxAccuracy is the fraction of frames where argmax(yp) matches
// argmax(yt), the plain classification accuracy cross-entropy training
// uses in place of CTC's edit-distance-based accuracy.
func frameArgmaxAccuracy(yp, yt [][]float64) float64 {
	if len(yp) == 0 {
		return 1
	}
	matches := 0
	for t := range yp {
		if argmaxRow(yp[t]) == argmaxRow(yt[t]) {
			matches++
		}
	}
	return float64(matches) / float64(len(yp))
}

func argmaxRow(row []float64) int {
	best := 0
	for i := 1; i < len(row); i++ {
		if row[i] > row[best] {
			best = i
		}
	}
	return best
}
