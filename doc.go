// Package ccase converts identifiers and phrases between case conventions
// such as snake_case, kebab-case, camelCase and Title Case.
//
// # Overview
//
// Conversion runs in two halves. Input text is scanned into grapheme
// clusters and segmented into words at word boundaries; the words are then
// transformed by a pattern pipeline and joined with a delimiter. Each half is
// a separate package:
//
//   - grapheme: Split text into classified grapheme clusters
//   - boundary: Describe where words begin and end
//   - segment: Split text into words using a boundary set
//   - pattern: Transform the letter case of words
//   - joiner: Join words with a delimiter
//   - preset: Named cases bundling boundaries, pattern and delimiter
//   - converter: Convert strings from one case to another
//
// # Quick Start
//
//	out := converter.Convert("myVarName", nil, preset.Snake) // "my_var_name"
//
//	out, err := converter.ConvertWithOptions("my-var-name",
//		converter.WithFromName("kebab"),
//		converter.WithToName("constant"),
//	)
//	// "MY_VAR_NAME"
//
// # Command Line
//
// The ccase command exposes the same conversions:
//
//	ccase convert -t snake myVarName
//	ccase list --format yaml
//	ccase mcp
//
// # Build Metadata
//
// Version, Commit, BuildTime and BuildInfo report how the binary was built.
package ccase
