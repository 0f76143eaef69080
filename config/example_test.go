package config_test

import (
	"fmt"

	"github.com/katalvlaran/seqrnn/config"
)

func ExampleParseLRSchedule() {
	s, err := config.ParseLRSchedule("12:0.001:0.01,6:0.0001:0.01,3:0.00001:0")
	if err != nil {
		panic(err)
	}
	fmt.Println(len(s), s.TotalEpochs())
	// Output: 3 21
}
