package pattern

import (
	"slices"

	"github.com/erraggy/ccase/internal/naming"
)

// Kind identifies the variant of a Step.
type Kind uint8

// Step kinds.
const (
	KindNoop Kind = iota + 1
	KindLowercase
	KindUppercase
	KindCapital
	KindCamel
	KindSentence
	KindToggle
	KindAlternating
	KindRandom
	KindPseudoRandom
	KindRemoveEmpty
	KindCustom
)

// Func is a caller-supplied transformation over the whole word list. It may
// return a slice of a different length.
type Func func(words []string) []string

// Step is one transformation of a Pipeline.
type Step struct {
	kind Kind
	name string
	fn   Func
}

// Built-in steps.
var (
	Noop         = Step{kind: KindNoop, name: "noop"}
	Lowercase    = Step{kind: KindLowercase, name: "lowercase"}
	Uppercase    = Step{kind: KindUppercase, name: "uppercase"}
	Capital      = Step{kind: KindCapital, name: "capital"}
	Camel        = Step{kind: KindCamel, name: "camel"}
	Sentence     = Step{kind: KindSentence, name: "sentence"}
	Toggle       = Step{kind: KindToggle, name: "toggle"}
	Alternating  = Step{kind: KindAlternating, name: "alternating"}
	Random       = Step{kind: KindRandom, name: "random"}
	PseudoRandom = Step{kind: KindPseudoRandom, name: "pseudo_random"}
	RemoveEmpty  = Step{kind: KindRemoveEmpty, name: "remove_empty"}
)

// Custom returns a step that applies fn. A nil fn behaves like Noop.
// Custom steps are never Equal to any step.
func Custom(name string, fn Func) Step {
	if name == "" {
		name = "custom"
	}
	return Step{kind: KindCustom, name: name, fn: fn}
}

// Steps returns every built-in step.
func Steps() []Step {
	return []Step{
		Noop, Lowercase, Uppercase, Capital, Camel, Sentence,
		Toggle, Alternating, Random, PseudoRandom, RemoveEmpty,
	}
}

// Parse resolves a built-in step by name. Matching ignores case and
// separators, so "pseudo_random", "PseudoRandom" and "pseudo-random" are
// equivalent.
func Parse(name string) (Step, bool) {
	i := slices.IndexFunc(Steps(), func(s Step) bool {
		return naming.Match(name, s.name)
	})
	if i < 0 {
		return Step{}, false
	}
	return Steps()[i], true
}

// Kind returns the step variant.
func (s Step) Kind() Kind { return s.kind }

// Name returns the step name, e.g. "remove_empty".
func (s Step) Name() string { return s.name }

// String implements fmt.Stringer.
func (s Step) String() string { return s.name }

// Random reports whether the step's output depends on the random source.
func (s Step) Random() bool {
	return s.kind == KindRandom || s.kind == KindPseudoRandom
}

// Equal reports whether both steps are the same built-in.
func (s Step) Equal(o Step) bool {
	return s.kind == o.kind && s.kind != KindCustom && s.kind != 0
}
