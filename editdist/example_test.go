package editdist_test

import (
	"fmt"

	"github.com/katalvlaran/seqrnn/editdist"
)

func ExampleDistance() {
	d := editdist.Distance([]int{1, 2, 3, 4}, []int{1, 3, 4})
	fmt.Println(d)
	// Output: 1
}
