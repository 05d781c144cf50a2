package joiner_test

import (
	"fmt"

	"github.com/erraggy/ccase/joiner"
)

func ExampleJoin() {
	fmt.Println(joiner.Join([]string{"io", "stream"}, "_"))
	fmt.Println(joiner.Join([]string{"", "my", "var"}, "-"))
	// Output:
	// io_stream
	// -my-var
}
