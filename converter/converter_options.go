package converter

import (
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/erraggy/ccase/boundary"
	"github.com/erraggy/ccase/caseerrors"
	"github.com/erraggy/ccase/pattern"
	"github.com/erraggy/ccase/preset"
)

// Option is a function that configures a Converter
type Option func(*convertConfig) error

// caseRef names a case either directly or by registry name.
type caseRef struct {
	preset *preset.Preset
	name   string
}

func (r *caseRef) resolve(reg *preset.Registry) (*preset.Preset, error) {
	switch {
	case r == nil:
		return nil, nil
	case r.preset != nil:
		return r.preset, nil
	}
	p, err := reg.Lookup(r.name)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// convertConfig holds configuration for building a Converter
type convertConfig struct {
	registry *preset.Registry

	// Source side
	from             *caseRef
	boundaries       *boundary.Set
	addBoundaries    []boundary.Boundary
	removeBoundaries []boundary.Boundary
	delimiterChars   *string
	normalization    *norm.Form

	// Target side
	to          *caseRef
	pattern     *pattern.Pipeline
	addPattern  []pattern.Step
	removeEmpty bool
	delimiter   *string
	rand        pattern.Source
	language    *language.Tag
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{registry: preset.Default()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// sourceBoundaries resolves the boundary set used for segmentation.
func (cfg *convertConfig) sourceBoundaries() (boundary.Set, error) {
	from, err := cfg.from.resolve(cfg.registry)
	if err != nil {
		return boundary.Set{}, err
	}
	var set boundary.Set
	switch {
	case cfg.boundaries != nil:
		set = *cfg.boundaries
	case from != nil:
		set = from.Boundaries
	default:
		set = boundary.DefaultSet()
	}
	return set.With(cfg.addBoundaries...).Without(cfg.removeBoundaries...), nil
}

// target resolves the pipeline and delimiter used for output.
func (cfg *convertConfig) target() (pattern.Pipeline, string, error) {
	to, err := cfg.to.resolve(cfg.registry)
	if err != nil {
		return pattern.Pipeline{}, "", err
	}
	var (
		pipeline  pattern.Pipeline
		delimiter string
	)
	if to != nil {
		pipeline, delimiter = to.Pattern, to.Delimiter
	}
	if cfg.pattern != nil {
		pipeline = *cfg.pattern
	}
	pipeline = pipeline.With(cfg.addPattern...)
	if cfg.removeEmpty {
		pipeline = pipeline.Prepend(pattern.RemoveEmpty)
	}
	if cfg.delimiter != nil {
		delimiter = *cfg.delimiter
	}
	return pipeline, delimiter, nil
}

// WithRegistry sets the registry used to resolve case names.
// The default is preset.Default().
func WithRegistry(r *preset.Registry) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return &caseerrors.ConfigError{Option: "registry", Message: "registry must not be nil"}
		}
		cfg.registry = r
		return nil
	}
}

// WithFrom sets the source case whose boundaries split the input.
func WithFrom(p preset.Preset) Option {
	return func(cfg *convertConfig) error {
		cfg.from = &caseRef{preset: &p}
		return nil
	}
}

// WithFromName sets the source case by name or alias.
func WithFromName(name string) Option {
	return func(cfg *convertConfig) error {
		if name == "" {
			return &caseerrors.ConfigError{Option: "from", Message: "case name is empty"}
		}
		cfg.from = &caseRef{name: name}
		return nil
	}
}

// WithTo sets the target case.
func WithTo(p preset.Preset) Option {
	return func(cfg *convertConfig) error {
		cfg.to = &caseRef{preset: &p}
		return nil
	}
}

// WithToName sets the target case by name or alias.
func WithToName(name string) Option {
	return func(cfg *convertConfig) error {
		if name == "" {
			return &caseerrors.ConfigError{Option: "to", Message: "case name is empty"}
		}
		cfg.to = &caseRef{name: name}
		return nil
	}
}

// WithBoundaries replaces the source boundaries.
func WithBoundaries(set boundary.Set) Option {
	return func(cfg *convertConfig) error {
		cfg.boundaries = &set
		return nil
	}
}

// AddBoundaries adds boundaries to the source boundaries.
func AddBoundaries(bs ...boundary.Boundary) Option {
	return func(cfg *convertConfig) error {
		cfg.addBoundaries = append(cfg.addBoundaries, bs...)
		return nil
	}
}

// RemoveBoundaries removes boundaries from the source boundaries. Removals
// are applied after additions.
func RemoveBoundaries(bs ...boundary.Boundary) Option {
	return func(cfg *convertConfig) error {
		cfg.removeBoundaries = append(cfg.removeBoundaries, bs...)
		return nil
	}
}

// WithPattern replaces the target pattern.
func WithPattern(p pattern.Pipeline) Option {
	return func(cfg *convertConfig) error {
		cfg.pattern = &p
		return nil
	}
}

// AddPattern appends steps to the target pattern.
func AddPattern(steps ...pattern.Step) Option {
	return func(cfg *convertConfig) error {
		cfg.addPattern = append(cfg.addPattern, steps...)
		return nil
	}
}

// RemoveEmpty drops empty words before any other step runs.
func RemoveEmpty() Option {
	return func(cfg *convertConfig) error {
		cfg.removeEmpty = true
		return nil
	}
}

// WithDelimiter overrides the target delimiter.
func WithDelimiter(delimiter string) Option {
	return func(cfg *convertConfig) error {
		cfg.delimiter = &delimiter
		return nil
	}
}

// WithRand sets the random source of the random patterns.
func WithRand(src pattern.Source) Option {
	return func(cfg *convertConfig) error {
		if src == nil {
			return &caseerrors.ConfigError{Option: "rand", Message: "random source must not be nil"}
		}
		cfg.rand = src
		return nil
	}
}

// WithLanguage sets the language whose casing rules are applied.
func WithLanguage(tag language.Tag) Option {
	return func(cfg *convertConfig) error {
		cfg.language = &tag
		return nil
	}
}

// WithLanguageName sets the casing language from a BCP 47 tag such as "tr".
func WithLanguageName(name string) Option {
	return func(cfg *convertConfig) error {
		tag, err := language.Parse(name)
		if err != nil {
			return &caseerrors.ConfigError{Option: "language", Value: name, Message: "invalid language tag", Cause: err}
		}
		cfg.language = &tag
		return nil
	}
}

// WithDelimiterChars sets the characters classified as delimiters. Only
// DelimiterRun boundaries depend on this classification.
func WithDelimiterChars(chars string) Option {
	return func(cfg *convertConfig) error {
		cfg.delimiterChars = &chars
		return nil
	}
}

// WithNormalization normalizes input before it is segmented.
func WithNormalization(form norm.Form) Option {
	return func(cfg *convertConfig) error {
		cfg.normalization = &form
		return nil
	}
}
