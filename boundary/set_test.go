package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/ccase/grapheme"
)

func TestNewSet_Deduplicates(t *testing.T) {
	s := NewSet(Hyphen, Underscore, Hyphen, Separator("."), Separator("."))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"Hyphen", "Underscore", `Separator(".")`}, names(s.Boundaries()))
}

func TestSet_Zero(t *testing.T) {
	var s Set
	assert.Equal(t, 0, s.Len())
	_, _, _, ok := s.Match(grapheme.Scan("a-b"))
	assert.False(t, ok)
	assert.Equal(t, "[]", s.String())
}

func TestSet_WithWithout(t *testing.T) {
	base := NewSet(Delimiters()...)
	more := base.With(LowerUpper, Hyphen)
	less := more.Without(Hyphen, Acronym)

	assert.Equal(t, 3, base.Len(), "With must not modify the receiver")
	assert.Equal(t, []string{"Hyphen", "Underscore", "Space", "LowerUpper"}, names(more.Boundaries()))
	assert.Equal(t, []string{"Underscore", "Space", "LowerUpper"}, names(less.Boundaries()))
	assert.True(t, more.Contains(LowerUpper))
	assert.False(t, less.Contains(Hyphen))
}

func TestSet_CustomNeverDeduplicated(t *testing.T) {
	c, err := NewCustom("comma", 1, 0, 1, func(w []grapheme.Grapheme) bool { return w[0].Text == "," })
	require.NoError(t, err)

	s := NewSet(c, c)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, s.Without(c).Len())
	assert.False(t, s.Contains(c))
}

func TestSet_Prioritized(t *testing.T) {
	s := NewSet(Hyphen, LowerUpper, Acronym, DigitLower)
	assert.Equal(t, []string{"Acronym", "LowerUpper", "DigitLower", "Hyphen"}, names(s.Prioritized()))
	// Declaration order is preserved by Boundaries.
	assert.Equal(t, []string{"Hyphen", "LowerUpper", "Acronym", "DigitLower"}, names(s.Boundaries()))
}

func TestSet_Match(t *testing.T) {
	s := NewSet(UpperLower, Acronym)

	b, split, consumed, ok := s.Match(grapheme.Scan("TPa"))
	require.True(t, ok)
	assert.Equal(t, "Acronym", b.Name())
	assert.Equal(t, 1, split)
	assert.Equal(t, 0, consumed)

	b, _, _, ok = s.Match(grapheme.Scan("Pa"))
	require.True(t, ok)
	assert.Equal(t, "UpperLower", b.Name())
}

func TestSet_Equal(t *testing.T) {
	assert.True(t, DefaultSet().Equal(NewSet(Defaults()...)))
	assert.False(t, NewSet(Hyphen, Space).Equal(NewSet(Space, Hyphen)))
	assert.False(t, DefaultSet().Equal(DefaultSet().Without(Acronym)))
	assert.True(t, Set{}.Equal(NewSet()))
}

func TestSet_BoundariesIsCopy(t *testing.T) {
	s := NewSet(Hyphen, Space)
	bs := s.Boundaries()
	bs[0] = Underscore
	assert.True(t, s.Contains(Hyphen))
	assert.False(t, s.Contains(Underscore))
}

func TestSet_String(t *testing.T) {
	assert.Equal(t, "[Hyphen LowerUpper]", NewSet(Hyphen, LowerUpper).String())
}
