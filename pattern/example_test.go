package pattern_test

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/erraggy/ccase/pattern"
)

func ExamplePipeline_Apply() {
	p := pattern.New(pattern.RemoveEmpty, pattern.Camel)
	fmt.Printf("%q\n", p.Apply([]string{"", "my", "HTTP", "server"}))
	// Output:
	// ["my" "Http" "Server"]
}

func ExampleWithLanguage() {
	p := pattern.New(pattern.Uppercase)
	fmt.Println(p.Apply([]string{"istanbul"}, pattern.WithLanguage(language.Turkish))[0])
	// Output:
	// İSTANBUL
}
