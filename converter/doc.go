// Package converter converts strings between case conventions.
//
// Conversion has two halves. The input is segmented into words using the
// boundaries of the source case, then the target case's pattern is applied
// to the words and the result is joined with the target delimiter:
//
//	converter.Convert("super_mario_64", &preset.Snake, preset.Title) // "Super Mario 64"
//	converter.Convert("IOStream", nil, preset.Snake)                 // "io_stream"
//
// A nil source case segments with boundary.Defaults, which recognise most
// conventions at once.
//
// # Functional options
//
// ConvertWithOptions and New accept options that adjust either half:
//
//	out, err := converter.ConvertWithOptions("M02S05BinaryTrees.pdf",
//		converter.WithFromName("pascal"),
//		converter.RemoveBoundaries(boundary.UpperDigit),
//		converter.WithToName("snake"),
//	)
//	// "m02_s05_binary_trees.pdf"
//
// A Converter built with New is immutable and safe for concurrent use; build
// it once and call Convert for every input.
//
// # Lossy conversions
//
// Conversion is not reversible in general. Flat cases drop every boundary,
// and converting "myVar-name_var" from kebab to camel keeps "name_var" as one
// word because kebab only splits on hyphens.
//
// # Related Packages
//
//   - [github.com/erraggy/ccase/preset] - Named cases and the registry
//   - [github.com/erraggy/ccase/boundary] - Word boundaries
//   - [github.com/erraggy/ccase/pattern] - Word transformations
//   - [github.com/erraggy/ccase/segment] - Word segmentation
package converter
