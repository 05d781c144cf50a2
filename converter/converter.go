package converter

import (
	"fmt"
	"log/slog"

	"github.com/erraggy/ccase/boundary"
	"github.com/erraggy/ccase/grapheme"
	"github.com/erraggy/ccase/joiner"
	"github.com/erraggy/ccase/pattern"
	"github.com/erraggy/ccase/preset"
	"github.com/erraggy/ccase/segment"
)

// converterLogger is used for debug output while building converters.
// Tests can replace this with a discard logger.
var converterLogger = slog.Default()

// Segment splits input into words using boundaries.
func Segment(input string, boundaries boundary.Set) []string {
	return segment.Split(input, boundaries)
}

// Produce applies pipeline to words and joins the result with delimiter.
func Produce(words []string, pipeline pattern.Pipeline, delimiter string, opts ...pattern.Option) string {
	return joiner.Join(pipeline.Apply(words, opts...), delimiter)
}

// Convert segments input with the boundaries of from and produces it in the
// case to. A nil from uses boundary.Defaults.
func Convert(input string, from *preset.Preset, to preset.Preset) string {
	set := boundary.DefaultSet()
	if from != nil {
		set = from.Boundaries
	}
	return Produce(Segment(input, set), to.Pattern, to.Delimiter)
}

// ListPresets describes the registered cases, grouped by kind.
func ListPresets() []preset.Entry {
	return preset.List()
}

// Converter converts strings with a fixed configuration. It is safe for
// concurrent use.
type Converter struct {
	segmenter *segment.Segmenter
	pipeline  pattern.Pipeline
	delimiter string
	applyOpts []pattern.Option
}

// New builds a Converter from options. Without a target case the converter
// applies no pattern and joins words without a delimiter.
//
// Example:
//
//	c, err := converter.New(
//	    converter.WithToName("kebab"),
//	    converter.RemoveEmpty(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.Convert("__my  bad-_variable- ") // "my-bad-variable"
func New(opts ...Option) (*Converter, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	set, err := cfg.sourceBoundaries()
	if err != nil {
		return nil, fmt.Errorf("converter: %w", err)
	}
	pipeline, delimiter, err := cfg.target()
	if err != nil {
		return nil, fmt.Errorf("converter: %w", err)
	}

	var scanOpts []grapheme.Option
	if cfg.delimiterChars != nil {
		scanOpts = append(scanOpts, grapheme.WithDelimiters(*cfg.delimiterChars))
	}
	if cfg.normalization != nil {
		scanOpts = append(scanOpts, grapheme.WithNormalization(*cfg.normalization))
	}

	var applyOpts []pattern.Option
	if cfg.rand != nil {
		applyOpts = append(applyOpts, pattern.WithRand(cfg.rand))
	}
	if cfg.language != nil {
		applyOpts = append(applyOpts, pattern.WithLanguage(*cfg.language))
	}

	converterLogger.Debug("converter configured",
		"boundaries", set.String(),
		"pattern", pipeline.String(),
		"delimiter", delimiter,
	)

	return &Converter{
		segmenter: segment.New(set, segment.WithScanner(grapheme.NewScanner(scanOpts...))),
		pipeline:  pipeline,
		delimiter: delimiter,
		applyOpts: applyOpts,
	}, nil
}

// ConvertWithOptions converts input with a Converter built from opts.
//
// Example:
//
//	out, err := converter.ConvertWithOptions("XMLHttpRequest",
//	    converter.WithFrom(preset.Camel),
//	    converter.WithTo(preset.Snake),
//	)
//	// out == "xml_http_request"
func ConvertWithOptions(input string, opts ...Option) (string, error) {
	c, err := New(opts...)
	if err != nil {
		return "", err
	}
	return c.Convert(input), nil
}

// Convert converts input.
func (c *Converter) Convert(input string) string {
	return c.Join(c.Split(input))
}

// Split returns the words of input.
func (c *Converter) Split(input string) []string {
	return c.segmenter.Split(input)
}

// Join applies the pattern to words and joins them.
func (c *Converter) Join(words []string) string {
	return Produce(words, c.pipeline, c.delimiter, c.applyOpts...)
}

// Boundaries returns the boundaries used to split input.
func (c *Converter) Boundaries() boundary.Set { return c.segmenter.Boundaries() }

// Pattern returns the pipeline applied to words.
func (c *Converter) Pattern() pattern.Pipeline { return c.pipeline }

// Delimiter returns the delimiter placed between words.
func (c *Converter) Delimiter() string { return c.delimiter }
