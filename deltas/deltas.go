package deltas

// Delta computes, in place, the window-w temporal derivative of the fcnt
// feature columns [soff, soff+fcnt) of frames, writing the result into
// columns [doff, doff+fcnt). frames is a T-row matrix, one row per time
// step, all rows the same width.
//
// For feature column f at time t:
//
//	delta[t][f] = (sum_{k=1..w} k*(frames[t+k][f] - frames[t-k][f])) / (2*sum_{k=1..w} k^2)
//
// Frame indices outside [0,T) are clamped to the nearest valid frame.
// Calling Delta a second time with soff equal to the first call's doff
// produces the second-order (delta-delta) derivative.
func Delta(frames [][]float64, soff, doff, fcnt, w int) {
	T := len(frames)
	if T == 0 || w <= 0 {
		return
	}

	denom := 2.0 * sumSquares(w)

	for t := 0; t < T; t++ {
		for f := 0; f < fcnt; f++ {
			var num float64
			for k := 1; k <= w; k++ {
				hi := clamp(t+k, T)
				lo := clamp(t-k, T)
				num += float64(k) * (frames[hi][soff+f] - frames[lo][soff+f])
			}
			frames[t][doff+f] = num / denom
		}
	}
}

func clamp(idx, T int) int {
	if idx < 0 {
		return 0
	}
	if idx >= T {
		return T - 1
	}
	return idx
}

func sumSquares(w int) float64 {
	var s float64
	for k := 1; k <= w; k++ {
		s += float64(k * k)
	}
	return s
}

// Expand builds the two-window expanded frame matrix from raw fcnt-wide
// frames: columns [0,F) raw, [F,2F) short delta, [2F,3F) short delta-delta,
// [3F,4F) long delta, [4F,5F) long delta-delta, as described in the package
// doc. The input raw slice is not mutated; the returned matrix owns its own
// backing storage.
func Expand(raw [][]float64, fcnt, shortW, longW int) [][]float64 {
	T := len(raw)
	out := make([][]float64, T)
	width := 5 * fcnt
	for t := 0; t < T; t++ {
		row := make([]float64, width)
		copy(row[0:fcnt], raw[t])
		out[t] = row
	}

	Delta(out, 0, fcnt, fcnt, shortW)     // short delta
	Delta(out, fcnt, 2*fcnt, fcnt, shortW) // short delta-delta
	Delta(out, 0, 3*fcnt, fcnt, longW)     // long delta
	Delta(out, 3*fcnt, 4*fcnt, fcnt, longW) // long delta-delta

	return out
}

// ExpandSingleWindow builds the single-window expanded frame matrix used
// for HAR data: columns [0,F) raw, [F,2F) delta, [2F,3F) delta-delta.
func ExpandSingleWindow(raw [][]float64, fcnt, w int) [][]float64 {
	T := len(raw)
	out := make([][]float64, T)
	width := 3 * fcnt
	for t := 0; t < T; t++ {
		row := make([]float64, width)
		copy(row[0:fcnt], raw[t])
		out[t] = row
	}

	Delta(out, 0, fcnt, fcnt, w)     // delta
	Delta(out, fcnt, 2*fcnt, fcnt, w) // delta-delta

	return out
}
