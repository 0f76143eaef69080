package featfile_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/seqrnn/featfile"
)

func ExampleParseRecords() {
	text := "phoneme,\nsh,1,0.0,0.1,utt1,2,2,1,1,2,2\n"
	recs, err := featfile.ParseRecords(strings.NewReader(text), 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(recs), recs[0].Phoneme, len(recs[0].Frames))
	// Output: 1 sh 2
}
