package preset

import (
	"math/rand/v2"
	"slices"

	"github.com/erraggy/ccase/boundary"
	"github.com/erraggy/ccase/joiner"
	"github.com/erraggy/ccase/pattern"
	"github.com/erraggy/ccase/segment"
)

// Kind groups presets for listing.
type Kind uint8

const (
	// KindCustom is a preset assembled or loaded by the caller.
	KindCustom Kind = iota
	// KindSpaceDelimited presets join words with spaces.
	KindSpaceDelimited
	// KindUnderscoreDelimited presets join words with underscores.
	KindUnderscoreDelimited
	// KindHyphenDelimited presets join words with hyphens.
	KindHyphenDelimited
	// KindCapitalization presets mark words by capitalization alone.
	KindCapitalization
	// KindNoDelimiter presets cannot be split again.
	KindNoDelimiter
	// KindRandom presets use a random pattern.
	KindRandom
)

// Kinds returns every kind in listing order.
func Kinds() []Kind {
	return []Kind{
		KindSpaceDelimited, KindUnderscoreDelimited, KindHyphenDelimited,
		KindCapitalization, KindNoDelimiter, KindRandom, KindCustom,
	}
}

// String returns the kind name used in listings.
func (k Kind) String() string {
	switch k {
	case KindSpaceDelimited:
		return "space delimited"
	case KindUnderscoreDelimited:
		return "underscore delimited"
	case KindHyphenDelimited:
		return "hyphen delimited"
	case KindCapitalization:
		return "capitalization"
	case KindNoDelimiter:
		return "no delimiter"
	case KindRandom:
		return "random"
	default:
		return "custom"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Preset is a named case convention.
type Preset struct {
	// Name is the canonical name, e.g. "snake".
	Name string
	// Aliases are alternative lookup names.
	Aliases []string
	// Kind groups the preset in listings.
	Kind Kind
	// Boundaries split text written in this case.
	Boundaries boundary.Set
	// Pattern transforms words before joining.
	Pattern pattern.Pipeline
	// Delimiter is placed between words.
	Delimiter string
}

// Split returns the words of input read as this case.
func (p Preset) Split(input string, opts ...segment.Option) []string {
	return segment.New(p.Boundaries, opts...).Split(input)
}

// Join applies the pattern to words and joins them with the delimiter.
func (p Preset) Join(words []string, opts ...pattern.Option) string {
	return joiner.Join(p.Pattern.Apply(words, opts...), p.Delimiter)
}

// Example renders the preset's own name in its case, e.g. "snake_case" or
// "camelCase". Random presets use a fixed seed so the result is stable.
func (p Preset) Example() string {
	words := append(segment.Split(p.Name, boundary.DefaultSet()), "case")
	return p.Join(words, pattern.WithRand(rand.New(rand.NewPCG(0x63617365, 0x6363))))
}

// Equal reports whether both presets produce the same case: equal pattern,
// delimiter and boundaries. Names, aliases and kinds are ignored. Presets with
// custom boundaries or steps are never equal.
func (p Preset) Equal(o Preset) bool {
	return p.Delimiter == o.Delimiter &&
		p.Pattern.Equal(o.Pattern) &&
		p.Boundaries.Equal(o.Boundaries)
}

// String implements fmt.Stringer.
func (p Preset) String() string { return p.Name }

func (p Preset) clone() Preset {
	p.Aliases = slices.Clone(p.Aliases)
	return p
}

var camelBoundaries = boundary.NewSet(
	boundary.LowerUpper, boundary.Acronym, boundary.LowerDigit,
	boundary.UpperDigit, boundary.DigitLower, boundary.DigitUpper,
)

// Built-in presets.
var (
	Snake = Preset{
		Name: "snake", Kind: KindUnderscoreDelimited,
		Boundaries: boundary.NewSet(boundary.Underscore),
		Pattern:    pattern.New(pattern.Lowercase),
		Delimiter:  "_",
	}
	Constant = Preset{
		Name: "constant", Aliases: []string{"upper_snake", "screaming_snake", "screaming"},
		Kind:       KindUnderscoreDelimited,
		Boundaries: boundary.NewSet(boundary.Underscore),
		Pattern:    pattern.New(pattern.Uppercase),
		Delimiter:  "_",
	}
	Ada = Preset{
		Name: "ada", Kind: KindUnderscoreDelimited,
		Boundaries: boundary.NewSet(boundary.Underscore),
		Pattern:    pattern.New(pattern.Capital),
		Delimiter:  "_",
	}
	Kebab = Preset{
		Name: "kebab", Kind: KindHyphenDelimited,
		Boundaries: boundary.NewSet(boundary.Hyphen),
		Pattern:    pattern.New(pattern.Lowercase),
		Delimiter:  "-",
	}
	Cobol = Preset{
		Name: "cobol", Aliases: []string{"upper_kebab"}, Kind: KindHyphenDelimited,
		Boundaries: boundary.NewSet(boundary.Hyphen),
		Pattern:    pattern.New(pattern.Uppercase),
		Delimiter:  "-",
	}
	Train = Preset{
		Name: "train", Kind: KindHyphenDelimited,
		Boundaries: boundary.NewSet(boundary.Hyphen),
		Pattern:    pattern.New(pattern.Capital),
		Delimiter:  "-",
	}
	Flat = Preset{
		Name: "flat", Kind: KindNoDelimiter,
		Pattern: pattern.New(pattern.Lowercase),
	}
	UpperFlat = Preset{
		Name: "upper_flat", Kind: KindNoDelimiter,
		Pattern: pattern.New(pattern.Uppercase),
	}
	Pascal = Preset{
		Name: "pascal", Aliases: []string{"upper_camel"}, Kind: KindCapitalization,
		Boundaries: camelBoundaries,
		Pattern:    pattern.New(pattern.Capital),
	}
	Camel = Preset{
		Name: "camel", Kind: KindCapitalization,
		Boundaries: camelBoundaries,
		Pattern:    pattern.New(pattern.Camel),
	}
	Lower        = spaced("lower", KindSpaceDelimited, pattern.Lowercase)
	Upper        = spaced("upper", KindSpaceDelimited, pattern.Uppercase)
	Title        = spaced("title", KindSpaceDelimited, pattern.Capital)
	Sentence     = spaced("sentence", KindSpaceDelimited, pattern.Sentence)
	Toggle       = spaced("toggle", KindSpaceDelimited, pattern.Toggle)
	Alternating  = spaced("alternating", KindSpaceDelimited, pattern.Alternating, "alternate")
	Random       = spaced("random", KindRandom, pattern.Random)
	PseudoRandom = spaced("pseudo_random", KindRandom, pattern.PseudoRandom, "pseudo")
)

func spaced(name string, kind Kind, step pattern.Step, aliases ...string) Preset {
	return Preset{
		Name:       name,
		Aliases:    aliases,
		Kind:       kind,
		Boundaries: boundary.NewSet(boundary.Space),
		Pattern:    pattern.New(step),
		Delimiter:  " ",
	}
}

// Builtins returns copies of the built-in presets in listing order.
func Builtins() []Preset {
	ps := []Preset{
		Lower, Upper, Title, Sentence, Toggle, Alternating,
		Snake, Constant, Ada,
		Kebab, Cobol, Train,
		Pascal, Camel,
		Flat, UpperFlat,
		Random, PseudoRandom,
	}
	for i := range ps {
		ps[i] = ps[i].clone()
	}
	return ps
}
