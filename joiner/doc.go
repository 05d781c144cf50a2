// Package joiner concatenates words with a delimiter.
//
// Join places the delimiter strictly between consecutive words. Empty words
// are joined like any other word, so leading, trailing and doubled delimiters
// survive unless the words were filtered beforehand (see pattern.RemoveEmpty):
//
//	joiner.Join([]string{"my", "var"}, "_")      // "my_var"
//	joiner.Join([]string{"", "my", "var"}, "_")  // "_my_var"
//	joiner.Join(nil, "_")                        // ""
package joiner
