package beam_test

import (
	"fmt"

	"github.com/katalvlaran/seqrnn/beam"
)

func ExampleSearch() {
	P := [][]float64{{0.1, 0.9}, {0.9, 0.1}}
	cands, _ := beam.Search(P, 2, 0)
	fmt.Println(cands[0].Prefix)
	// Output: [1]
}
