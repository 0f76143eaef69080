package confusion_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/seqrnn/confusion"
)

func ExampleMatrix_WriteCSV() {
	m := confusion.NewMatrix([]string{"sil", "s", "sh"})
	_ = m.Accumulate(1, 1)
	_ = m.Accumulate(1, 2)
	if err := m.WriteCSV(os.Stdout); err != nil {
		fmt.Println(err)
	}
	// Output:
	// ,sil,s,sh
	// sil,0,0,0
	// s,0,1,1
	// sh,0,0,0
}
