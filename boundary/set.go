package boundary

import (
	"slices"
	"strings"

	"github.com/erraggy/ccase/grapheme"
)

// Set is an ordered, de-duplicated collection of boundaries. Sets are
// immutable: With and Without return new sets. The zero value is an empty set
// that splits nothing.
type Set struct {
	rules    []Boundary
	priority []Boundary
}

// NewSet returns a set holding bs in order, dropping duplicates.
func NewSet(bs ...Boundary) Set {
	return Set{}.With(bs...)
}

// With returns a copy of s with bs appended. Boundaries already present are
// skipped.
func (s Set) With(bs ...Boundary) Set {
	rules := slices.Clone(s.rules)
	for _, b := range bs {
		if b.kind == 0 || containsEqual(rules, b) {
			continue
		}
		rules = append(rules, b)
	}
	return newSet(rules)
}

// Without returns a copy of s without any boundary equal to one of bs.
// Custom boundaries are never equal, so they are never removed.
func (s Set) Without(bs ...Boundary) Set {
	rules := make([]Boundary, 0, len(s.rules))
	for _, b := range s.rules {
		if containsEqual(bs, b) {
			continue
		}
		rules = append(rules, b)
	}
	return newSet(rules)
}

// Contains reports whether s holds a boundary equal to b.
func (s Set) Contains(b Boundary) bool {
	return containsEqual(s.rules, b)
}

// Len returns the number of boundaries in s.
func (s Set) Len() int { return len(s.rules) }

// Boundaries returns the boundaries of s in declaration order.
func (s Set) Boundaries() []Boundary {
	return slices.Clone(s.rules)
}

// Prioritized returns the boundaries in matching order: wider windows first,
// declaration order among equal widths.
func (s Set) Prioritized() []Boundary {
	return slices.Clone(s.priority)
}

// Equal reports whether both sets hold equal boundaries in the same order.
func (s Set) Equal(o Set) bool {
	return slices.EqualFunc(s.rules, o.rules, Boundary.Equal)
}

// Match tries every boundary at the start of rest in priority order and
// returns the first match.
func (s Set) Match(rest []grapheme.Grapheme) (b Boundary, split, consumed int, ok bool) {
	for _, r := range s.priority {
		if split, consumed, ok = r.Match(rest); ok {
			return r, split, consumed, true
		}
	}
	return Boundary{}, 0, 0, false
}

// String implements fmt.Stringer.
func (s Set) String() string {
	names := make([]string, len(s.rules))
	for i, b := range s.rules {
		names[i] = b.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

func newSet(rules []Boundary) Set {
	priority := slices.Clone(rules)
	slices.SortStableFunc(priority, func(a, b Boundary) int {
		return b.width - a.width
	})
	return Set{rules: rules, priority: priority}
}

func containsEqual(bs []Boundary, b Boundary) bool {
	return slices.ContainsFunc(bs, b.Equal)
}
