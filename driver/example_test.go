package driver_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/seqrnn/config"
	"github.com/katalvlaran/seqrnn/dataset"
	"github.com/katalvlaran/seqrnn/driver"
	"github.com/katalvlaran/seqrnn/layers"
)

func ExampleDriver_TrainEpoch() {
	rng := rand.New(rand.NewSource(1))
	chain := []driver.Layer{
		layers.NewLSTM(2, 4, rng),
		layers.NewDense(4, 3, layers.Softmax, rng),
	}
	drv, err := driver.New(chain, 3, 0, config.CTC, config.Stateless)
	if err != nil {
		panic(err)
	}

	d := &dataset.Dataset{
		Frames:  [][]float64{{0.1, 0.2}, {0.2, 0.1}, {0.9, 0.8}},
		Labels:  []int{0, 1, 1},
		Lengths: []int{3},
	}

	result, err := drv.TrainEpoch(d, 1, 0.05, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(result.SkippedBatches)
	// Output: 0
}
