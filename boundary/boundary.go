package boundary

import (
	"fmt"
	"strings"

	"github.com/erraggy/ccase/caseerrors"
	"github.com/erraggy/ccase/grapheme"
	"github.com/erraggy/ccase/internal/naming"
)

// Kind identifies the variant of a Boundary.
type Kind uint8

const (
	// KindHyphen splits on "-" and consumes it.
	KindHyphen Kind = iota + 1
	// KindUnderscore splits on "_" and consumes it.
	KindUnderscore
	// KindSpace splits on " " and consumes it.
	KindSpace
	// KindLowerUpper splits between a lowercase and an uppercase letter.
	KindLowerUpper
	// KindUpperLower splits between an uppercase and a lowercase letter.
	KindUpperLower
	// KindDigitUpper splits between a digit and an uppercase letter.
	KindDigitUpper
	// KindUpperDigit splits between an uppercase letter and a digit.
	KindUpperDigit
	// KindDigitLower splits between a digit and a lowercase letter.
	KindDigitLower
	// KindLowerDigit splits between a lowercase letter and a digit.
	KindLowerDigit
	// KindAcronym splits "AAa" between the two uppercase letters.
	KindAcronym
	// KindSeparator splits on a literal string and consumes it.
	KindSeparator
	// KindDelimiterRun consumes a maximal run of Delimiter-class graphemes.
	KindDelimiterRun
	// KindCustom evaluates a caller-supplied Condition.
	KindCustom
)

// Condition reports whether a window of graphemes matches a custom boundary.
// The window always holds exactly Width graphemes.
type Condition func(window []grapheme.Grapheme) bool

// Boundary is one word-splitting rule. The zero value never matches.
type Boundary struct {
	kind    Kind
	name    string
	code    string
	literal []string
	width   int
	split   int
	consume int
	cond    Condition
}

// Built-in boundaries.
var (
	Hyphen     = Boundary{kind: KindHyphen, name: "Hyphen", code: "-", width: 1, consume: 1}
	Underscore = Boundary{kind: KindUnderscore, name: "Underscore", code: "_", width: 1, consume: 1}
	Space      = Boundary{kind: KindSpace, name: "Space", code: " ", width: 1, consume: 1}
	LowerUpper = Boundary{kind: KindLowerUpper, name: "LowerUpper", code: "aA", width: 2, split: 1}
	UpperLower = Boundary{kind: KindUpperLower, name: "UpperLower", code: "Aa", width: 2, split: 1}
	DigitUpper = Boundary{kind: KindDigitUpper, name: "DigitUpper", code: "1A", width: 2, split: 1}
	UpperDigit = Boundary{kind: KindUpperDigit, name: "UpperDigit", code: "A1", width: 2, split: 1}
	DigitLower = Boundary{kind: KindDigitLower, name: "DigitLower", code: "1a", width: 2, split: 1}
	LowerDigit = Boundary{kind: KindLowerDigit, name: "LowerDigit", code: "a1", width: 2, split: 1}
	Acronym    = Boundary{kind: KindAcronym, name: "Acronym", code: "AAa", width: 3, split: 1}

	// DelimiterRun treats a run of consecutive delimiter graphemes as a single
	// hard boundary, so "a__b" splits into two words instead of three.
	DelimiterRun = Boundary{kind: KindDelimiterRun, name: "DelimiterRun", width: 1, consume: 1}
)

// Separator returns a hard boundary that splits on the literal string s and
// consumes it. An empty s yields a boundary that never matches.
func Separator(s string) Boundary {
	b := Boundary{kind: KindSeparator, name: fmt.Sprintf("Separator(%q)", s), code: s}
	for _, g := range grapheme.Scan(s) {
		b.literal = append(b.literal, g.Text)
	}
	b.width = len(b.literal)
	b.consume = b.width
	return b
}

// NewCustom returns a boundary that matches when cond accepts a window of
// width graphemes. On a match the text is split split graphemes into the
// window and consume graphemes starting there are dropped. A consume of zero
// makes a soft boundary.
func NewCustom(name string, width, split, consume int, cond Condition) (Boundary, error) {
	switch {
	case cond == nil:
		return Boundary{}, &caseerrors.ConfigError{Option: "condition", Message: "custom boundary requires a condition"}
	case width < 1:
		return Boundary{}, &caseerrors.ConfigError{Option: "width", Value: width, Message: "window must hold at least one grapheme"}
	case split < 0 || split > width:
		return Boundary{}, &caseerrors.ConfigError{Option: "split", Value: split, Message: fmt.Sprintf("split offset must be within the window of %d", width)}
	case consume < 0 || split+consume > width:
		return Boundary{}, &caseerrors.ConfigError{Option: "consume", Value: consume, Message: fmt.Sprintf("consumed graphemes must fit in the window of %d", width)}
	}
	if name == "" {
		name = "Custom"
	}
	return Boundary{kind: KindCustom, name: name, width: width, split: split, consume: consume, cond: cond}, nil
}

// Kind returns the boundary variant.
func (b Boundary) Kind() Kind { return b.kind }

// Name returns the boundary name, e.g. "LowerUpper".
func (b Boundary) Name() string { return b.name }

// String implements fmt.Stringer.
func (b Boundary) String() string { return b.name }

// Shortcode returns a short sample of what the boundary splits on, e.g. "aA"
// for LowerUpper or "::" for Separator("::"). Custom boundaries return "".
func (b Boundary) Shortcode() string { return b.code }

// Width returns the number of graphemes the boundary examines.
func (b Boundary) Width() int { return b.width }

// Hard reports whether the boundary discards the graphemes it matches.
func (b Boundary) Hard() bool { return b.consume > 0 }

// Custom reports whether the boundary wraps a caller-supplied condition.
func (b Boundary) Custom() bool { return b.kind == KindCustom }

// Equal reports whether two boundaries are structurally the same rule.
// Custom boundaries are never equal to anything.
func (b Boundary) Equal(o Boundary) bool {
	if b.kind != o.kind || b.kind == KindCustom || b.kind == 0 {
		return false
	}
	if b.kind == KindSeparator {
		return strings.Join(b.literal, "") == strings.Join(o.literal, "")
	}
	return true
}

// Match tests the boundary against the graphemes at the start of rest.
// On a match it returns the split offset (relative to rest[0]) and the number
// of graphemes consumed from there. A boundary never matches when its window
// does not fit in rest.
func (b Boundary) Match(rest []grapheme.Grapheme) (split, consumed int, ok bool) {
	if b.width < 1 || len(rest) < b.width {
		return 0, 0, false
	}
	switch b.kind {
	case KindHyphen:
		ok = rest[0].Text == "-"
	case KindUnderscore:
		ok = rest[0].Text == "_"
	case KindSpace:
		ok = rest[0].Text == " "
	case KindLowerUpper:
		ok = rest[0].Class == grapheme.Lower && rest[1].Class == grapheme.Upper
	case KindUpperLower:
		ok = rest[0].Class == grapheme.Upper && rest[1].Class == grapheme.Lower
	case KindDigitUpper:
		ok = rest[0].Class == grapheme.Digit && rest[1].Class == grapheme.Upper
	case KindUpperDigit:
		ok = rest[0].Class == grapheme.Upper && rest[1].Class == grapheme.Digit
	case KindDigitLower:
		ok = rest[0].Class == grapheme.Digit && rest[1].Class == grapheme.Lower
	case KindLowerDigit:
		ok = rest[0].Class == grapheme.Lower && rest[1].Class == grapheme.Digit
	case KindAcronym:
		ok = rest[0].Class == grapheme.Upper && rest[1].Class == grapheme.Upper && rest[2].Class == grapheme.Lower
	case KindSeparator:
		ok = true
		for i, lit := range b.literal {
			if rest[i].Text != lit {
				ok = false
				break
			}
		}
	case KindDelimiterRun:
		n := 0
		for n < len(rest) && rest[n].Class == grapheme.Delimiter {
			n++
		}
		return 0, n, n > 0
	case KindCustom:
		ok = b.cond(rest[:b.width])
	}
	if !ok {
		return 0, 0, false
	}
	return b.split, b.consume, true
}

// Defaults returns the boundaries used when no source case is given: every
// built-in except UpperLower and DelimiterRun.
func Defaults() []Boundary {
	return []Boundary{
		Underscore, Hyphen, Space, LowerUpper, UpperDigit, DigitUpper, DigitLower, LowerDigit, Acronym,
	}
}

// DefaultSet returns Defaults as a Set.
func DefaultSet() Set {
	return NewSet(Defaults()...)
}

// Delimiters returns the boundaries that split around single characters.
func Delimiters() []Boundary {
	return []Boundary{Hyphen, Underscore, Space}
}

// Digits returns the boundaries that involve digits.
func Digits() []Boundary {
	return []Boundary{DigitUpper, UpperDigit, DigitLower, LowerDigit}
}

// All returns every built-in boundary except DelimiterRun.
func All() []Boundary {
	return []Boundary{
		Hyphen, Underscore, Space, LowerUpper, UpperLower, DigitUpper, UpperDigit, DigitLower, LowerDigit, Acronym,
	}
}

// ListFrom returns the built-in boundaries (in All order) that occur in sample.
// An uppercase-lowercase pair that ends an acronym run ("AAa") is reported as
// Acronym only, not as UpperLower.
func ListFrom(sample string) []Boundary {
	gs := grapheme.Scan(sample)
	var found []Boundary
	for _, b := range All() {
		for i := range gs {
			if _, _, ok := b.Match(gs[i:]); !ok {
				continue
			}
			if b.kind == KindUpperLower && i > 0 && gs[i-1].Class == grapheme.Upper {
				continue
			}
			found = append(found, b)
			break
		}
	}
	return found
}

// Parse resolves a boundary from its shortcode ("aA", "-") or name
// ("LowerUpper", "lower_upper", "lower-upper"). Custom and Separator
// boundaries cannot be parsed.
func Parse(s string) (Boundary, bool) {
	candidates := append(All(), DelimiterRun)
	for _, b := range candidates {
		if b.code != "" && s == b.code {
			return b, true
		}
	}
	for _, b := range candidates {
		if naming.Match(s, b.name) {
			return b, true
		}
	}
	return Boundary{}, false
}
