package confusion

import (
	"fmt"
	"io"
	"sort"
)

// Matrix accumulates counts of (true class, predicted class) pairs over a
// fixed, named class set.
type Matrix struct {
	ClassNames []string
	counts     [][]int // [true][predicted]
}

// NewMatrix builds a zeroed confusion matrix over the given class names.
func NewMatrix(classNames []string) *Matrix {
	n := len(classNames)
	counts := make([][]int, n)
	for i := range counts {
		counts[i] = make([]int, n)
	}
	return &Matrix{ClassNames: classNames, counts: counts}
}

// Accumulate records one (true, predicted) observation.
func (m *Matrix) Accumulate(trueClass, predClass int) error {
	n := len(m.ClassNames)
	if trueClass < 0 || trueClass >= n || predClass < 0 || predClass >= n {
		return ErrClassOutOfRange
	}
	m.counts[trueClass][predClass]++
	return nil
}

// AccumulatePairs records a C2-aligned pair of label sequences, skipping
// any position where both sides are the blank class — the alignment
// post-processing contract for confusion accumulation.
func (m *Matrix) AccumulatePairs(truth, pred []int, blank int) error {
	n := len(truth)
	if len(pred) < n {
		n = len(pred)
	}
	for i := 0; i < n; i++ {
		if truth[i] == blank && pred[i] == blank {
			continue
		}
		if err := m.Accumulate(truth[i], pred[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV renders the matrix: a header row of a leading comma followed
// by class names, then one row per true class starting with its name
// followed by len(ClassNames) counts.
func (m *Matrix) WriteCSV(w io.Writer) error {
	if _, err := fmt.Fprintf(w, ",%s\n", joinComma(m.ClassNames)); err != nil {
		return err
	}
	for i, name := range m.ClassNames {
		row := make([]string, len(m.counts[i]))
		for j, c := range m.counts[i] {
			row[j] = fmt.Sprintf("%d", c)
		}
		if _, err := fmt.Fprintf(w, "%s,%s\n", name, joinComma(row)); err != nil {
			return err
		}
	}
	return nil
}

func joinComma(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ","
		}
		out += s
	}
	return out
}

// Pair is one off-diagonal (true, predicted) confusion with its count.
type Pair struct {
	TrueClass, PredClass int
	Count                int
}

// TopConfusions returns the k most-confused off-diagonal class pairs,
// sorted by descending count (ties broken by true-then-predicted class
// index for determinism).
func (m *Matrix) TopConfusions(k int) []Pair {
	var pairs []Pair
	for i := range m.counts {
		for j := range m.counts[i] {
			if i == j || m.counts[i][j] == 0 {
				continue
			}
			pairs = append(pairs, Pair{TrueClass: i, PredClass: j, Count: m.counts[i][j]})
		}
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].Count != pairs[b].Count {
			return pairs[a].Count > pairs[b].Count
		}
		if pairs[a].TrueClass != pairs[b].TrueClass {
			return pairs[a].TrueClass < pairs[b].TrueClass
		}
		return pairs[a].PredClass < pairs[b].PredClass
	})
	if k < len(pairs) {
		pairs = pairs[:k]
	}
	return pairs
}
