// Package boundary defines where a string is split into words.
//
// A Boundary is a rule over a small window of classified graphemes. When the
// window matches, the text is split at an offset inside the window and zero
// or more graphemes are consumed:
//
//   - hard boundaries (Hyphen, Underscore, Space, Separator, DelimiterRun)
//     consume the graphemes they match; those graphemes are dropped
//   - soft boundaries (LowerUpper, Acronym, the digit boundaries, ...) consume
//     nothing; the matched graphemes stay in the neighbouring words
//
// Boundaries are a closed set of built-in kinds plus a Custom kind wrapping a
// caller-supplied Condition. Custom boundaries have no stable identity: they
// are never Equal to any boundary, including themselves, so a Set never
// de-duplicates them and Without cannot remove them.
//
// # Built-in groups
//
//	Defaults()   Underscore Hyphen Space LowerUpper UpperDigit DigitUpper DigitLower LowerDigit Acronym
//	Delimiters() Hyphen Underscore Space
//	Digits()     DigitUpper UpperDigit DigitLower LowerDigit
//	All()        every built-in kind except DelimiterRun
//
// Acronym splits "HTTPRequest" into "HTTP" and "Request": it matches two
// uppercase letters followed by a lowercase letter and splits between the
// two uppercase letters.
//
// ListFrom infers boundaries from a sample such as "aA1": useful for building
// a Set without naming every rule.
package boundary
