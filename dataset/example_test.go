package dataset_test

import (
	"fmt"

	"github.com/katalvlaran/seqrnn/dataset"
)

func ExampleMakeBatches() {
	d := &dataset.Dataset{
		Frames:  [][]float64{{0}, {1}, {2}, {3}},
		Labels:  []int{0, 1, 0, 1},
		Lengths: []int{3, 1},
	}
	batches := dataset.MakeBatches(d, 2, 2, 0)
	fmt.Println(len(batches), len(batches[0].X), batches[0].ValidLen)
	// Output: 1 2 [3 1]
}
