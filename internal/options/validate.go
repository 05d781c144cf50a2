// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"
	"strings"
)

// Choice is a named option and whether the caller set it.
type Choice struct {
	Name string
	Set  bool
}

// ValidateExclusive ensures at most one of the choices is set. Returns an
// error naming the conflicting choices otherwise.
func ValidateExclusive(choices ...Choice) error {
	var set []string
	for _, c := range choices {
		if c.Set {
			set = append(set, c.Name)
		}
	}

	switch len(set) {
	case 0, 1:
		return nil
	case 2:
		return fmt.Errorf("provide either %s or %s, not both", set[0], set[1])
	default:
		return fmt.Errorf("provide at most one of %s", strings.Join(set, ", "))
	}
}
