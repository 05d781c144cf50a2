// Package segment splits strings into words using a boundary.Set.
//
// Segmentation scans graphemes left to right. At each position the set's
// boundaries are tried in priority order (wider windows first) and the first
// match wins:
//
//   - a hard match closes the current word, even when it is empty, and drops
//     the consumed graphemes
//   - a soft match closes the current word at the split offset; a soft split
//     that would produce an empty word is ignored
//
// Leading, trailing and repeated delimiters therefore produce empty words.
// Symbols that no boundary matches, such as commas or dots, stay inside the
// surrounding word.
//
//	segment.Split("__my  bad-_variable- ", boundary.DefaultSet())
//	// ["" "" "my" "" "bad" "" "variable" "" ""]
//
// Spans reports the byte range of each word so the input can be rebuilt from
// the words and the delimiters between them.
package segment
