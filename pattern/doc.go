// Package pattern transforms segmented words before they are joined.
//
// A Pipeline is an ordered list of Steps applied as a fold: each step receives
// the words produced by the previous one. Steps never modify their input
// slice.
//
// # Steps
//
//	Noop          words unchanged
//	Lowercase     every word lowercase
//	Uppercase     every word uppercase
//	Capital       first grapheme of each word uppercase, the rest lowercase
//	Camel         first word lowercase, the rest Capital
//	Sentence      first word Capital, the rest lowercase
//	Toggle        first grapheme of each word lowercase, the rest uppercase
//	Alternating   cased graphemes alternate lower/upper across all words
//	Random        each grapheme upper or lower at random
//	PseudoRandom  random start per word, then strict alternation
//	RemoveEmpty   drops empty words
//
// Camel treats the word at index 0 as the first word even when it is empty,
// so "_empty__first_word" becomes "EmptyFirstWord".
//
// Casing uses golang.org/x/text/cases, so final sigma and special cases such
// as "ß" are handled. WithLanguage selects language-specific rules:
//
//	pattern.New(pattern.Uppercase).Apply([]string{"istanbul"}, pattern.WithLanguage(language.Turkish))
//	// ["İSTANBUL"]
//
// The random steps draw from the process-wide math/rand/v2 generator unless a
// Source is supplied with WithRand.
package pattern
