package segment_test

import (
	"fmt"

	"github.com/erraggy/ccase/boundary"
	"github.com/erraggy/ccase/segment"
)

func ExampleSplit() {
	fmt.Printf("%q\n", segment.Split("XMLHttpRequest", boundary.DefaultSet()))
	fmt.Printf("%q\n", segment.Split("10,000 Days", boundary.DefaultSet()))
	// Output:
	// ["XML" "Http" "Request"]
	// ["10,000" "Days"]
}

func ExampleSpans() {
	for _, sp := range segment.Spans("my-fooBar", boundary.DefaultSet()) {
		fmt.Printf("%s [%d:%d]\n", sp.Text, sp.Start, sp.End)
	}
	// Output:
	// my [0:2]
	// foo [3:6]
	// Bar [6:9]
}
