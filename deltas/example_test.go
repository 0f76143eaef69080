package deltas_test

import (
	"fmt"

	"github.com/katalvlaran/seqrnn/deltas"
)

func ExampleDelta() {
	frames := [][]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	deltas.Delta(frames, 0, 1, 1, 1)
	for _, row := range frames {
		fmt.Println(row[1])
	}
	// Output:
	// 0.5
	// 1
	// 1
	// 1
	// 0.5
}
