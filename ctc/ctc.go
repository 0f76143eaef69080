package ctc

import (
	"math"

	"github.com/katalvlaran/seqrnn/editdist"
)

// Loss runs the forward/backward recursion over yp (per-time-step class
// probabilities, rows summing to 1) against yt (one-hot true labels, a row
// per time step, possibly padded with blanks), and returns the CTC loss.
//
// T = len(yp) = len(yt) must be <= the Tmax the Context was built with, and
// every row must have exactly L columns. T == 0 returns +Inf, matching the
// numeric-degenerate contract; Gradient must not be called afterwards.
//
// Loss retains the log-probabilities, alpha, beta, per-step marginal, and
// the decoded compact true/predicted label sequences until the next call,
// so Gradient and Accuracy can be called any number of times in between.
func (c *Context) Loss(yp, yt [][]float64) (float64, error) {
	T := len(yp)
	if T != len(yt) || T > c.tmax {
		return 0, ErrDimensionMismatch
	}
	for _, row := range yp {
		if len(row) != c.l {
			return 0, ErrDimensionMismatch
		}
	}
	c.t = T
	if T == 0 {
		return math.Inf(1), nil
	}

	// 1) Log-transform yp.
	for t := 0; t < T; t++ {
		for l := 0; l < c.l; l++ {
			c.logYp[t][l] = math.Log(yp[t][l])
		}
	}

	// 2) Decode yt argmax per row, collapse+strip -> compact true label u.
	ytArgmax := Argmax(yt[:T])
	u := CollapseAndStrip(ytArgmax, c.blank)
	copy(c.u, u)
	c.uLen = len(u)

	// Predicted compact label (for Accuracy), decoded from yp.
	ypArgmax := Argmax(c.logYp[:T])
	yhat := CollapseAndStrip(ypArgmax, c.blank)
	copy(c.yhat, yhat)
	c.yhatLen = len(yhat)

	// 3) Build padded label of length S = 2U+1.
	U := c.uLen
	S := 2*U + 1
	c.s = S
	c.label[0] = c.blank
	for i := 0; i < U; i++ {
		c.label[2*i+1] = c.u[i]
		c.label[2*i+2] = c.blank
	}

	c.forward(T, S)
	c.backward(T, S)

	// 7) rho[t] = logsumexp_s(alpha[t][s] + beta[t][s]).
	for t := 0; t < T; t++ {
		acc := negInf
		for s := 0; s < S; s++ {
			acc = logSumExp2(acc, c.alpha[t][s]+c.beta[t][s])
		}
		c.rho[t] = acc
	}

	// 8) loss = (sum_t -rho[t]) / T
	var total float64
	for t := 0; t < T; t++ {
		total += -c.rho[t]
	}
	return total / float64(T), nil
}

// band returns the feasible range [lo, hi) of padded-label positions s at
// time step t, per the invariant in §3: positions outside this band are
// unreachable and stay -Inf.
func band(t, T, S int) (lo, hi int) {
	lo = S - 2*(T-t)
	if lo < 0 {
		lo = 0
	}
	hi = 2*(t + 1)
	if hi > S {
		hi = S
	}
	return lo, hi
}

func (c *Context) forward(T, S int) {
	for s := 0; s < S; s++ {
		c.alpha[0][s] = negInf
	}
	c.alpha[0][0] = c.logYp[0][c.label[0]]
	if S > 1 {
		c.alpha[0][1] = c.logYp[0][c.label[1]]
	}

	for t := 1; t < T; t++ {
		lo, hi := band(t, T, S)
		for s := 0; s < S; s++ {
			if s < lo || s >= hi {
				c.alpha[t][s] = negInf
				continue
			}
			acc := c.alpha[t-1][s]
			if s-1 >= 0 {
				acc = logSumExp2(acc, c.alpha[t-1][s-1])
			}
			if s-2 >= 0 && c.label[s] != c.blank && c.label[s-2] != c.label[s] {
				acc = logSumExp2(acc, c.alpha[t-1][s-2])
			}
			c.alpha[t][s] = acc + c.logYp[t][c.label[s]]
		}
	}
}

func (c *Context) backward(T, S int) {
	for s := 0; s < S; s++ {
		c.beta[T-1][s] = negInf
	}
	c.beta[T-1][S-1] = 0
	if S >= 2 {
		c.beta[T-1][S-2] = 0
	}

	for t := T - 2; t >= 0; t-- {
		lo, hi := band(t, T, S)
		for s := 0; s < S; s++ {
			if s < lo || s >= hi {
				c.beta[t][s] = negInf
				continue
			}
			acc := c.beta[t+1][s] + c.logYp[t+1][c.label[s]]
			if s+1 < S {
				acc = logSumExp2(acc, c.beta[t+1][s+1]+c.logYp[t+1][c.label[s+1]])
			}
			if s+2 < S && c.label[s] != c.blank && c.label[s+2] != c.label[s] {
				acc = logSumExp2(acc, c.beta[t+1][s+2]+c.logYp[t+1][c.label[s+2]])
			}
			c.beta[t][s] = acc
		}
	}
}

// Gradient returns dL/dy[t][l] for the most recent Loss call. It must not
// be called before a successful Loss call, and the Context's buffers must
// be unchanged since then (no intervening Loss call with different input).
func (c *Context) Gradient() ([][]float64, error) {
	if c.t == 0 {
		return nil, ErrGradientBeforeLoss
	}
	T, S := c.t, c.s
	grad := make2D(T, c.l)

	// For each t, accumulate logsumexp(alpha[t][s]+beta[t][s]) grouped by
	// label[s], then compare against rho[t] in log space.
	mass := make([]float64, c.l)
	for t := 0; t < T; t++ {
		for l := range mass {
			mass[l] = negInf
		}
		for s := 0; s < S; s++ {
			lbl := c.label[s]
			mass[lbl] = logSumExp2(mass[lbl], c.alpha[t][s]+c.beta[t][s])
		}
		for l := 0; l < c.l; l++ {
			p := math.Exp(c.logYp[t][l])
			q := math.Exp(mass[l] - c.rho[t])
			grad[t][l] = p - q
		}
	}
	return grad, nil
}

// Accuracy returns T*(1 - dist(yhat, u)/max(|yhat|,|u|)) for the most
// recent Loss call's decoded predicted/true compact label sequences, using
// the Levenshtein edit distance. When both are empty, returns T.
func (c *Context) Accuracy() float64 {
	T := c.t
	yhat := c.yhat[:c.yhatLen]
	u := c.u[:c.uLen]
	if len(yhat) == 0 && len(u) == 0 {
		return float64(T)
	}
	denom := len(yhat)
	if len(u) > denom {
		denom = len(u)
	}
	d := editdist.Distance(yhat, u)
	return float64(T) * (1 - float64(d)/float64(denom))
}

func logSumExp2(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a > b {
		return a + math.Log1p(math.Exp(b-a))
	}
	return b + math.Log1p(math.Exp(a-b))
}
