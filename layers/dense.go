package layers

import (
	"math/rand"

	"github.com/katalvlaran/seqrnn/optim"
)

// Dense is an affine layer y = activation(W*x + b), W of shape
// [OutSize][InSize]. Softmax/tanh/sigmoid activations combine their
// Jacobian with the incoming gradient the usual simplified way: for
// Softmax, Backward treats dLdy as dL/dz directly (the standard
// softmax+cross-entropy/CTC combined gradient), since every caller in this
// module already supplies that combined gradient at the softmax head.
type Dense struct {
	InSize, OutSize int
	Activation      string

	W [][]float64 // [OutSize][InSize]
	B []float64   // [OutSize]

	gW [][]float64
	gB []float64

	wOpt *optim.AdamW
	bOpt *optim.AdamW

	batchSize int
	lastX     [][]float64 // [B][InSize]
	lastZ     [][]float64 // [B][OutSize]
	lastY     [][]float64 // [B][OutSize]
}

// NewDense builds a Dense layer with small random weights (uniform in
// [-lim, lim], Xavier-style) and zero bias.
func NewDense(inSize, outSize int, activation string, rng *rand.Rand) *Dense {
	lim := 1.0 / float64(inSize+1)
	w := make([][]float64, outSize)
	for o := range w {
		w[o] = make([]float64, inSize)
		for i := range w[o] {
			w[o][i] = (rng.Float64()*2 - 1) * lim
		}
	}
	return &Dense{
		InSize:     inSize,
		OutSize:    outSize,
		Activation: activation,
		W:          w,
		B:          make([]float64, outSize),
		gW:         make2D(outSize, inSize),
		gB:         make([]float64, outSize),
		wOpt:       optim.NewAdamW(outSize, inSize),
		bOpt:       optim.NewAdamWVector(outSize),
	}
}

// Forward computes y = activation(W*x+b) for every row (batch slot) of x.
func (d *Dense) Forward(x [][]float64) [][]float64 {
	b := len(x)
	z := make([][]float64, b)
	y := make([][]float64, b)
	for row := 0; row < b; row++ {
		zr := make([]float64, d.OutSize)
		for o := 0; o < d.OutSize; o++ {
			var acc float64
			for i := 0; i < d.InSize; i++ {
				acc += d.W[o][i] * x[row][i]
			}
			zr[o] = acc + d.B[o]
		}
		z[row] = zr
		y[row] = applyActivation(d.Activation, zr)
	}
	d.lastX, d.lastZ, d.lastY = x, z, y
	return y
}

// Backward accumulates parameter gradients from dLdy and returns dL/dx.
func (d *Dense) Backward(dLdy [][]float64) [][]float64 {
	b := len(dLdy)
	dx := make([][]float64, b)

	for row := 0; row < b; row++ {
		dz := d.activationBackward(row, dLdy[row])

		for o := 0; o < d.OutSize; o++ {
			d.gB[o] += dz[o]
			for i := 0; i < d.InSize; i++ {
				d.gW[o][i] += dz[o] * d.lastX[row][i]
			}
		}

		dxr := make([]float64, d.InSize)
		for i := 0; i < d.InSize; i++ {
			var acc float64
			for o := 0; o < d.OutSize; o++ {
				acc += d.W[o][i] * dz[o]
			}
			dxr[i] = acc
		}
		dx[row] = dxr
	}
	return dx
}

func (d *Dense) activationBackward(row int, dLdy []float64) []float64 {
	dz := make([]float64, d.OutSize)
	switch d.Activation {
	case Tanh:
		for o := range dz {
			y := d.lastY[row][o]
			dz[o] = dLdy[o] * (1 - y*y)
		}
	case Sigmoid:
		for o := range dz {
			y := d.lastY[row][o]
			dz[o] = dLdy[o] * y * (1 - y)
		}
	default: // Linear, Softmax (combined gradient already dL/dz)
		copy(dz, dLdy)
	}
	return dz
}

// ApplyGradients averages the accumulated gradients over the last forward
// batch size and hands them to this layer's AdamW optimizers, one for W
// and one for B, then zeroes the accumulators.
func (d *Dense) ApplyGradients(lr, wd float64) {
	n := float64(len(d.lastX))
	if n == 0 {
		n = 1
	}
	for o := 0; o < d.OutSize; o++ {
		d.gB[o] /= n
		for i := 0; i < d.InSize; i++ {
			d.gW[o][i] /= n
		}
	}
	d.wOpt.Step(d.W, d.gW, lr, wd)
	d.bOpt.StepVector(d.B, d.gB, lr, wd)
	for o := 0; o < d.OutSize; o++ {
		d.gB[o] = 0
		for i := 0; i < d.InSize; i++ {
			d.gW[o][i] = 0
		}
	}
}

// ResetState is a no-op: Dense carries no state across time steps.
func (d *Dense) ResetState() {}

// SetBatchSize records the configured batch size; Dense does not allocate
// per-batch-slot state, so this is informational only.
func (d *Dense) SetBatchSize(b int) { d.batchSize = b }

func make2D(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}
