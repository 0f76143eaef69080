package ctc

import "math"

// Context owns every dense buffer the forward/backward recursion needs,
// sized for the declared upper bounds (Tmax time steps, L classes). It is
// allocated once per training run and reused across every Loss/Gradient
// call; it is not safe for concurrent use.
type Context struct {
	tmax, l, blank int

	logYp [][]float64 // [Tmax][L] log-probabilities, set by Loss
	alpha [][]float64 // [Tmax][Smax]
	beta  [][]float64 // [Tmax][Smax]
	rho   []float64   // [Tmax] per-step marginal

	label []int // [Smax] padded true label, valid prefix length s
	u     []int // compact true label sequence, valid prefix length uLen
	yhat  []int // compact predicted label sequence, valid prefix length yhatLen

	t, s, uLen, yhatLen int // active sizes from the most recent Loss call
}

// NewContext preallocates a Context for sequences of at most tmax time
// steps over l classes (blank included), with blank the index reserved for
// the CTC blank symbol.
func NewContext(tmax, l, blank int) *Context {
	smax := 2*tmax + 1
	c := &Context{
		tmax:  tmax,
		l:     l,
		blank: blank,
		logYp: make2D(tmax, l),
		alpha: make2D(tmax, smax),
		beta:  make2D(tmax, smax),
		rho:   make([]float64, tmax),
		label: make([]int, smax),
		u:     make([]int, tmax),
		yhat:  make([]int, tmax),
	}
	return c
}

func make2D(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

var negInf = math.Inf(-1)
