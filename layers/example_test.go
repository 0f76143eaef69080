package layers_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/seqrnn/layers"
)

func ExampleDense_Forward() {
	rng := rand.New(rand.NewSource(0))
	d := layers.NewDense(2, 2, layers.Softmax, rng)
	y := d.Forward([][]float64{{1, 1}})
	var sum float64
	for _, v := range y[0] {
		sum += v
	}
	fmt.Printf("%.2f\n", sum)
	// Output: 1.00
}
