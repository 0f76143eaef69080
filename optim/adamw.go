package optim

import "math"

// AdamW tracks first and second moment estimates for one parameter tensor
// and applies the Adam update with weight decay decoupled from the
// gradient (Loshchilov & Hutter): the decay term is subtracted directly
// from the parameter, not folded into mhat before the momentum average.
//
// A single AdamW value serves one parameter slice or matrix: construct one
// per weight tensor (W, B, Wx, Wh, Bias, ...) sized to match.
type AdamW struct {
	Beta1, Beta2, Eps float64

	t int
	m, v [][]float64 // moment estimates, same shape as the owning tensor
}

// NewAdamW returns an AdamW sized for a rows×cols tensor with the usual
// defaults (beta1=0.9, beta2=0.999, eps=1e-8). Use NewAdamWVector for a
// 1-D tensor such as a bias.
func NewAdamW(rows, cols int) *AdamW {
	return &AdamW{
		Beta1: 0.9, Beta2: 0.999, Eps: 1e-8,
		m: make2D(rows, cols), v: make2D(rows, cols),
	}
}

// NewAdamWVector returns an AdamW sized for a 1-D tensor of length n,
// represented internally as a single-row matrix.
func NewAdamWVector(n int) *AdamW {
	return NewAdamW(1, n)
}

func make2D(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// Step applies one AdamW update to params in place given the matching
// grads (same shape), after which grads should be zeroed by the caller.
func (a *AdamW) Step(params, grads [][]float64, lr, wd float64) {
	a.t++
	b1t := 1 - math.Pow(a.Beta1, float64(a.t))
	b2t := 1 - math.Pow(a.Beta2, float64(a.t))
	for i := range params {
		for j := range params[i] {
			g := grads[i][j]
			a.m[i][j] = a.Beta1*a.m[i][j] + (1-a.Beta1)*g
			a.v[i][j] = a.Beta2*a.v[i][j] + (1-a.Beta2)*g*g
			mhat := a.m[i][j] / b1t
			vhat := a.v[i][j] / b2t
			params[i][j] -= lr * (mhat/(math.Sqrt(vhat)+a.Eps) + wd*params[i][j])
		}
	}
}

// StepVector is Step for a 1-D tensor represented as plain slices.
func (a *AdamW) StepVector(params, grads []float64, lr, wd float64) {
	a.t++
	b1t := 1 - math.Pow(a.Beta1, float64(a.t))
	b2t := 1 - math.Pow(a.Beta2, float64(a.t))
	for j := range params {
		g := grads[j]
		a.m[0][j] = a.Beta1*a.m[0][j] + (1-a.Beta1)*g
		a.v[0][j] = a.Beta2*a.v[0][j] + (1-a.Beta2)*g*g
		mhat := a.m[0][j] / b1t
		vhat := a.v[0][j] / b2t
		params[j] -= lr * (mhat/(math.Sqrt(vhat)+a.Eps) + wd*params[j])
	}
}
