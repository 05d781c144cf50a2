// Package grapheme scans text as user-perceived characters.
//
// Text is iterated as extended grapheme clusters (Unicode Standard Annex #29)
// rather than bytes or runes, so "e" followed by a combining acute accent is
// one grapheme and an emoji family sequence is one grapheme. Every grapheme
// is tagged with a Class that boundary rules use to detect word breaks.
//
// Classification depends only on the grapheme itself, never on its
// neighbours:
//
//   - Upper / Lower: the grapheme has case and equals its upper or lower form
//   - Digit: the grapheme is a decimal digit (optionally with combining marks)
//   - Delimiter: the grapheme is one of the scanner's delimiter characters
//   - Other: everything else (punctuation, symbols, uncased letters, whitespace
//     that is not a delimiter)
//
// Scanning never fails. Invalid UTF-8 bytes become one-byte graphemes of
// class Other. All functions are safe for concurrent use.
package grapheme
