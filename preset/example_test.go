package preset_test

import (
	"fmt"

	"github.com/erraggy/ccase/preset"
)

func ExampleLookup() {
	p, err := preset.Lookup("upper-snake")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Name, p.Example())

	_, err = preset.Lookup("shouty")
	fmt.Println(err != nil)
	// Output:
	// constant CONSTANT_CASE
	// true
}

func ExampleParse() {
	ps, err := preset.Parse([]byte(`
cases:
  - name: path
    delimiter: /
    boundaries: [{separator: /}]
    pattern: [lowercase]
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	p := ps[0]
	fmt.Println(p.Join(p.Split("Usr/Local/Bin")))
	// Output:
	// usr/local/bin
}
