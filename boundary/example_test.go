package boundary_test

import (
	"fmt"

	"github.com/erraggy/ccase/boundary"
)

// ExampleListFrom infers boundaries from a sample string.
func ExampleListFrom() {
	for _, b := range boundary.ListFrom("aA1") {
		fmt.Println(b.Name(), b.Shortcode())
	}
	// Output:
	// LowerUpper aA
	// UpperDigit A1
}

// ExampleSet_Without shows a set derived from the defaults.
func ExampleSet_Without() {
	s := boundary.DefaultSet().Without(boundary.Digits()...)
	fmt.Println(s)
	// Output:
	// [Underscore Hyphen Space LowerUpper Acronym]
}
