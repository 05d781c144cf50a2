package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		want   Step
		wantOK bool
	}{
		{"lowercase", Lowercase, true},
		{"Uppercase", Uppercase, true},
		{"pseudo_random", PseudoRandom, true},
		{"PseudoRandom", PseudoRandom, true},
		{"remove-empty", RemoveEmpty, true},
		{"noop", Noop, true},
		{"bogus", Step{}, false},
		{"", Step{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestSteps_Names(t *testing.T) {
	var names []string
	for _, s := range Steps() {
		names = append(names, s.String())
	}
	assert.Equal(t, []string{
		"noop", "lowercase", "uppercase", "capital", "camel", "sentence",
		"toggle", "alternating", "random", "pseudo_random", "remove_empty",
	}, names)
}

func TestStep_Equal(t *testing.T) {
	assert.True(t, Capital.Equal(Capital))
	assert.False(t, Capital.Equal(Camel))
	assert.False(t, Step{}.Equal(Step{}))

	c := Custom("", func(w []string) []string { return w })
	assert.False(t, c.Equal(c))
	assert.Equal(t, "custom", c.Name())
	assert.Equal(t, KindCustom, c.Kind())
}
