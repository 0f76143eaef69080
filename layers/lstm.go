package layers

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/seqrnn/optim"
)

// lstmStep caches everything one Forward call needs to replay for the
// matching (later) Backward call. Forward pushes, Backward pops: the
// driver buffers every time step's forward outputs before running
// backward in reverse time order (§4.6), so the stack always unwinds in
// the right sequence.
type lstmStep struct {
	x, hPrev, cPrev [][]float64 // [B][·]
	i, f, o, g      [][]float64 // [B][H] gate activations
	c, tanhC        [][]float64 // [B][H]
}

// LSTM is a standard four-gate recurrent cell: input, forget, output gates
// and a candidate cell write, each an affine combination of x and the
// previous hidden state followed by a sigmoid (gates) or tanh (candidate).
// State (h, c) persists across Forward calls until ResetState, matching
// the stateful-by-default layer-chain contract of §4.6.
type LSTM struct {
	InSize, HiddenSize int

	// Stacked [i;f;o;g] blocks, each HiddenSize rows.
	Wx [][]float64 // [4*HiddenSize][InSize]
	Wh [][]float64 // [4*HiddenSize][HiddenSize]
	Bias []float64 // [4*HiddenSize]

	gWx  [][]float64
	gWh  [][]float64
	gBias []float64

	wxOpt, whOpt, biasOpt *optim.AdamW

	batchSize int
	h, c      [][]float64 // [B][HiddenSize] current state
	dhNext    [][]float64 // [B][HiddenSize] gradient carried from the future time step
	dcNext    [][]float64

	stack []lstmStep
}

// NewLSTM builds an LSTM with small random weights and a forget-gate bias
// of 1 (the common initialization that keeps early training from
// forgetting everything).
func NewLSTM(inSize, hiddenSize int, rng *rand.Rand) *LSTM {
	rows := 4 * hiddenSize
	lim := 1.0 / float64(inSize+hiddenSize+1)
	wx := make([][]float64, rows)
	wh := make([][]float64, rows)
	bias := make([]float64, rows)
	for r := 0; r < rows; r++ {
		wx[r] = make([]float64, inSize)
		for i := range wx[r] {
			wx[r][i] = (rng.Float64()*2 - 1) * lim
		}
		wh[r] = make([]float64, hiddenSize)
		for i := range wh[r] {
			wh[r][i] = (rng.Float64()*2 - 1) * lim
		}
		if r >= hiddenSize && r < 2*hiddenSize { // forget-gate block
			bias[r] = 1
		}
	}
	return &LSTM{
		InSize:     inSize,
		HiddenSize: hiddenSize,
		Wx:         wx,
		Wh:         wh,
		Bias:       bias,
		gWx:        make2D(rows, inSize),
		gWh:        make2D(rows, hiddenSize),
		gBias:      make([]float64, rows),
		wxOpt:      optim.NewAdamW(rows, inSize),
		whOpt:      optim.NewAdamW(rows, hiddenSize),
		biasOpt:    optim.NewAdamWVector(rows),
	}
}

func (l *LSTM) ensureState(b int) {
	if l.h != nil && len(l.h) == b {
		return
	}
	l.h = make2D(b, l.HiddenSize)
	l.c = make2D(b, l.HiddenSize)
	l.dhNext = make2D(b, l.HiddenSize)
	l.dcNext = make2D(b, l.HiddenSize)
}

// Forward advances the cell by one time step for every batch slot in x.
func (l *LSTM) Forward(x [][]float64) [][]float64 {
	b := len(x)
	l.ensureState(b)
	H := l.HiddenSize

	step := lstmStep{
		x: x, hPrev: copy2D(l.h), cPrev: copy2D(l.c),
		i: make2D(b, H), f: make2D(b, H), o: make2D(b, H), g: make2D(b, H),
		c: make2D(b, H), tanhC: make2D(b, H),
	}
	hNew := make2D(b, H)

	for row := 0; row < b; row++ {
		for hh := 0; hh < H; hh++ {
			zi := l.affine(row, hh, x, step.hPrev)
			zf := l.affine(row, H+hh, x, step.hPrev)
			zo := l.affine(row, 2*H+hh, x, step.hPrev)
			zg := l.affine(row, 3*H+hh, x, step.hPrev)

			ig := sigmoid(zi)
			fg := sigmoid(zf)
			og := sigmoid(zo)
			gg := math.Tanh(zg)

			cNew := fg*step.cPrev[row][hh] + ig*gg
			tc := math.Tanh(cNew)

			step.i[row][hh], step.f[row][hh], step.o[row][hh], step.g[row][hh] = ig, fg, og, gg
			step.c[row][hh] = cNew
			step.tanhC[row][hh] = tc
			hNew[row][hh] = og * tc
		}
	}

	l.stack = append(l.stack, step)
	l.h, l.c = hNew, step.c
	return copy2D(hNew)
}

func (l *LSTM) affine(row, r int, x, hPrev [][]float64) float64 {
	acc := l.Bias[r]
	for i := 0; i < l.InSize; i++ {
		acc += l.Wx[r][i] * x[row][i]
	}
	for i := 0; i < l.HiddenSize; i++ {
		acc += l.Wh[r][i] * hPrev[row][i]
	}
	return acc
}

// Backward consumes the most recent unconsumed Forward call's cache (LIFO)
// and returns dL/dx for that time step, carrying dL/dh, dL/dc into the
// earlier (in time) step via dhNext/dcNext.
func (l *LSTM) Backward(dLdh [][]float64) [][]float64 {
	n := len(l.stack)
	if n == 0 {
		panic("layers: LSTM Backward called without a matching Forward")
	}
	step := l.stack[n-1]
	l.stack = l.stack[:n-1]

	b := len(dLdh)
	H := l.HiddenSize
	dx := make2D(b, l.InSize)
	dhPrev := make2D(b, H)
	dcPrev := make2D(b, H)

	for row := 0; row < b; row++ {
		for hh := 0; hh < H; hh++ {
			dh := dLdh[row][hh] + l.dhNext[row][hh]
			dc := dh*step.o[row][hh]*(1-step.tanhC[row][hh]*step.tanhC[row][hh]) + l.dcNext[row][hh]

			do := dh * step.tanhC[row][hh]
			doRaw := do * step.o[row][hh] * (1 - step.o[row][hh])

			di := dc * step.g[row][hh]
			diRaw := di * step.i[row][hh] * (1 - step.i[row][hh])

			df := dc * step.cPrev[row][hh]
			dfRaw := df * step.f[row][hh] * (1 - step.f[row][hh])

			dg := dc * step.i[row][hh]
			dgRaw := dg * (1 - step.g[row][hh]*step.g[row][hh])

			raws := [4]float64{diRaw, dfRaw, doRaw, dgRaw}
			for gate := 0; gate < 4; gate++ {
				r := gate*H + hh
				l.gBias[r] += raws[gate]
				for i := 0; i < l.InSize; i++ {
					l.gWx[r][i] += raws[gate] * step.x[row][i]
					dx[row][i] += l.Wx[r][i] * raws[gate]
				}
				for i := 0; i < H; i++ {
					l.gWh[r][i] += raws[gate] * step.hPrev[row][i]
					dhPrev[row][i] += l.Wh[r][i] * raws[gate]
				}
			}
			dcPrev[row][hh] = dc * step.f[row][hh]
		}
	}

	l.dhNext, l.dcNext = dhPrev, dcPrev
	return dx
}

// ApplyGradients averages the accumulated gradients over the most recent
// batch size and hands them to this layer's three AdamW optimizers (Wx,
// Wh, Bias), then zeroes the accumulators.
func (l *LSTM) ApplyGradients(lr, wd float64) {
	n := float64(l.batchSize)
	if n == 0 {
		n = 1
	}
	rows := 4 * l.HiddenSize
	for r := 0; r < rows; r++ {
		l.gBias[r] /= n
		for i := 0; i < l.InSize; i++ {
			l.gWx[r][i] /= n
		}
		for i := 0; i < l.HiddenSize; i++ {
			l.gWh[r][i] /= n
		}
	}
	l.wxOpt.Step(l.Wx, l.gWx, lr, wd)
	l.whOpt.Step(l.Wh, l.gWh, lr, wd)
	l.biasOpt.StepVector(l.Bias, l.gBias, lr, wd)
	for r := 0; r < rows; r++ {
		l.gBias[r] = 0
		for i := 0; i < l.InSize; i++ {
			l.gWx[r][i] = 0
		}
		for i := 0; i < l.HiddenSize; i++ {
			l.gWh[r][i] = 0
		}
	}
}

// ResetState clears hidden/cell state and any in-flight backward carry,
// called between sequences per the stateful layer-chain contract.
func (l *LSTM) ResetState() {
	l.h, l.c, l.dhNext, l.dcNext = nil, nil, nil, nil
	l.stack = nil
}

// SetBatchSize records the batch size used to average accumulated
// gradients in ApplyGradients and resets per-sequence state.
func (l *LSTM) SetBatchSize(b int) {
	l.batchSize = b
	l.ResetState()
}

func copy2D(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
