package joiner

import "strings"

// Join returns words separated by delimiter. No words yield "" and a single
// word is returned unchanged.
func Join(words []string, delimiter string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}
	var b strings.Builder
	b.Grow(Len(words, delimiter))
	b.WriteString(words[0])
	for _, w := range words[1:] {
		b.WriteString(delimiter)
		b.WriteString(w)
	}
	return b.String()
}

// Len returns the byte length of Join(words, delimiter) without building it.
func Len(words []string, delimiter string) int {
	if len(words) == 0 {
		return 0
	}
	n := len(delimiter) * (len(words) - 1)
	for _, w := range words {
		n += len(w)
	}
	return n
}
