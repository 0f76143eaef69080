package ctc

// CollapseAndStrip applies the CTC decoding rule to a raw per-time-step
// label sequence: collapse runs of adjacent identical labels to a single
// instance, then drop every remaining blank. It is exported because the
// training driver applies the identical rule to its own raw label
// sequences and to the beam decoder's output.
func CollapseAndStrip(labels []int, blank int) []int {
	out := make([]int, 0, len(labels))
	first := true
	var prev int
	for _, l := range labels {
		if first || l != prev {
			if l != blank {
				out = append(out, l)
			}
		}
		prev = l
		first = false
	}
	return out
}

// Argmax returns, for each row of m, the column index of its largest value.
func Argmax(m [][]float64) []int {
	out := make([]int, len(m))
	for t, row := range m {
		best := 0
		for l := 1; l < len(row); l++ {
			if row[l] > row[best] {
				best = l
			}
		}
		out[t] = best
	}
	return out
}
