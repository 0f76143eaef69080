package dataset

import "math/rand"

// Split partitions sequence indices [0, d.NumSequences()) into train,
// validation, and test index lists, deterministically shuffled by seed, in
// proportions valFrac/testFrac (the remainder is train). This makes the
// "implementation-defined but deterministic given a fixed seed" sequence
// ordering required by the concurrency model concrete and reusable across
// both TIMIT and HAR drivers.
func (d *Dataset) Split(seed int64, valFrac, testFrac float64) (train, val, test []int) {
	n := d.NumSequences()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rand.New(rand.NewSource(seed)).Shuffle(n, func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})

	nVal := int(float64(n) * valFrac)
	nTest := int(float64(n) * testFrac)
	if nVal+nTest > n {
		nVal, nTest = 0, 0
	}
	val = idx[:nVal]
	test = idx[nVal : nVal+nTest]
	train = idx[nVal+nTest:]
	return train, val, test
}
