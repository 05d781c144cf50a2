// Package naming provides shared name flattening for lookups.
package naming

import (
	"strings"
	"unicode"
)

// separators are dropped from keys.
const separators = "_-. "

// Key flattens a name for lookups: letters are lowercased and the separators
// underscore, hyphen, dot and space are removed.
// Example: "Upper_Snake" -> "uppersnake"
// Example: "pseudo-random" -> "pseudorandom"
func Key(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(separators, r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}

// Match reports whether two names flatten to the same non-empty key.
func Match(a, b string) bool {
	ka := Key(a)
	return ka != "" && ka == Key(b)
}
