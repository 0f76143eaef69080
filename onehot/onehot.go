// Package onehot converts between integer class labels and one-hot encoded
// probability rows.
package onehot

// Encode returns a length-c row with a 1 at index class and 0 elsewhere.
func Encode(class, c int) []float64 {
	row := make([]float64, c)
	row[class] = 1
	return row
}

// Decode returns the index of the largest entry in row (ties broken by
// lowest index).
func Decode(row []float64) int {
	best := 0
	for i := 1; i < len(row); i++ {
		if row[i] > row[best] {
			best = i
		}
	}
	return best
}

// EncodeBatch applies Encode to every element of classes.
func EncodeBatch(classes []int, c int) [][]float64 {
	out := make([][]float64, len(classes))
	for i, cl := range classes {
		out[i] = Encode(cl, c)
	}
	return out
}
