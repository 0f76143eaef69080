package ctc_test

import (
	"fmt"

	"github.com/katalvlaran/seqrnn/ctc"
)

func ExampleContext_Loss() {
	c := ctc.NewContext(2, 2, 0)
	yp := [][]float64{{0.5, 0.5}, {0.5, 0.5}}
	yt := [][]float64{{0, 1}, {0, 1}}

	loss, _ := c.Loss(yp, yt)
	fmt.Printf("%.4f\n", loss)
	// Output: 0.2877
}
