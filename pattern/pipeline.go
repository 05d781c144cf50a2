package pattern

import (
	"math/rand/v2"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/ccase/grapheme"
)

// Source supplies random numbers to the random steps. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// Option configures a single Apply call.
type Option func(*applyConfig)

type applyConfig struct {
	rand Source
	lang language.Tag
}

// WithRand sets the random source used by Random and PseudoRandom.
func WithRand(src Source) Option {
	return func(c *applyConfig) {
		if src != nil {
			c.rand = src
		}
	}
}

// WithLanguage sets the language whose casing rules are used.
func WithLanguage(tag language.Tag) Option {
	return func(c *applyConfig) {
		c.lang = tag
	}
}

// Pipeline is an immutable, ordered list of steps. The zero value applies no
// transformation.
type Pipeline struct {
	steps []Step
}

// New returns a pipeline applying steps in order.
func New(steps ...Step) Pipeline {
	return Pipeline{steps: slices.Clone(steps)}
}

// Steps returns the steps in order.
func (p Pipeline) Steps() []Step {
	return slices.Clone(p.steps)
}

// Len returns the number of steps.
func (p Pipeline) Len() int { return len(p.steps) }

// With returns a copy of p with steps appended.
func (p Pipeline) With(steps ...Step) Pipeline {
	return Pipeline{steps: append(slices.Clone(p.steps), steps...)}
}

// Prepend returns a copy of p with steps placed before the existing ones.
func (p Pipeline) Prepend(steps ...Step) Pipeline {
	return Pipeline{steps: append(slices.Clone(steps), p.steps...)}
}

// Random reports whether any step depends on the random source.
func (p Pipeline) Random() bool {
	return slices.ContainsFunc(p.steps, Step.Random)
}

// Equal reports whether both pipelines hold equal steps in the same order.
func (p Pipeline) Equal(o Pipeline) bool {
	return slices.EqualFunc(p.steps, o.steps, Step.Equal)
}

// String implements fmt.Stringer.
func (p Pipeline) String() string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.name
	}
	return "[" + strings.Join(names, " ") + "]"
}

// Apply runs every step over words and returns the result. The input slice is
// not modified.
func (p Pipeline) Apply(words []string, opts ...Option) []string {
	cfg := applyConfig{rand: globalSource{}, lang: language.Und}
	for _, opt := range opts {
		opt(&cfg)
	}
	m := newMutator(cfg)

	out := slices.Clone(words)
	for _, s := range p.steps {
		out = m.apply(s, out)
	}
	return out
}

// mutator holds the casers for one Apply call. Casers keep internal state
// and are not shared between calls.
type mutator struct {
	lower cases.Caser
	upper cases.Caser
	title cases.Caser
	rand  Source
}

func newMutator(cfg applyConfig) *mutator {
	return &mutator{
		lower: cases.Lower(cfg.lang),
		upper: cases.Upper(cfg.lang),
		title: cases.Title(cfg.lang, cases.NoLower),
		rand:  cfg.rand,
	}
}

// apply runs one step. words is owned by the pipeline and may be reused.
func (m *mutator) apply(s Step, words []string) []string {
	switch s.kind {
	case KindLowercase:
		return mapWords(words, func(_ int, w string) string { return m.lower.String(w) })
	case KindUppercase:
		return mapWords(words, func(_ int, w string) string { return m.upper.String(w) })
	case KindCapital:
		return mapWords(words, func(_ int, w string) string { return m.capital(w) })
	case KindCamel:
		return mapWords(words, func(i int, w string) string {
			if i == 0 {
				return m.lower.String(w)
			}
			return m.capital(w)
		})
	case KindSentence:
		return mapWords(words, func(i int, w string) string {
			if i == 0 {
				return m.capital(w)
			}
			return m.lower.String(w)
		})
	case KindToggle:
		return mapWords(words, func(_ int, w string) string { return m.toggle(w) })
	case KindAlternating:
		return m.alternating(words)
	case KindRandom:
		return mapWords(words, func(_ int, w string) string { return m.random(w) })
	case KindPseudoRandom:
		return mapWords(words, func(_ int, w string) string { return m.pseudoRandom(w) })
	case KindRemoveEmpty:
		return slices.DeleteFunc(words, func(w string) bool { return w == "" })
	case KindCustom:
		if s.fn == nil {
			return words
		}
		return slices.Clone(s.fn(words))
	default:
		return words
	}
}

func (m *mutator) capital(w string) string {
	first, rest := grapheme.First(w)
	return m.title.String(first) + m.lower.String(rest)
}

func (m *mutator) toggle(w string) string {
	first, rest := grapheme.First(w)
	return m.lower.String(first) + m.upper.String(rest)
}

// alternating flips the case of each cased grapheme, carrying the phase from
// one word to the next.
func (m *mutator) alternating(words []string) []string {
	upper := false
	return mapWords(words, func(_ int, w string) string {
		var b strings.Builder
		for g := range grapheme.All(w) {
			if !g.Class.Cased() {
				b.WriteString(g.Text)
				continue
			}
			b.WriteString(m.setCase(g.Text, upper))
			upper = !upper
		}
		return b.String()
	})
}

func (m *mutator) random(w string) string {
	var b strings.Builder
	for g := range grapheme.All(w) {
		b.WriteString(m.setCase(g.Text, m.rand.IntN(2) == 1))
	}
	return b.String()
}

// pseudoRandom picks a random case for the first cased grapheme of w and
// alternates from there.
func (m *mutator) pseudoRandom(w string) string {
	if w == "" {
		return w
	}
	upper := m.rand.IntN(2) == 1
	var b strings.Builder
	for g := range grapheme.All(w) {
		if !g.Class.Cased() {
			b.WriteString(g.Text)
			continue
		}
		b.WriteString(m.setCase(g.Text, upper))
		upper = !upper
	}
	return b.String()
}

func (m *mutator) setCase(s string, upper bool) string {
	if upper {
		return m.upper.String(s)
	}
	return m.lower.String(s)
}

func mapWords(words []string, fn func(i int, w string) string) []string {
	for i, w := range words {
		words[i] = fn(i, w)
	}
	return words
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }
