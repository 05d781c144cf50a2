package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"snake", "snake"},
		{"UpperSnake", "uppersnake"},
		{"upper_snake", "uppersnake"},
		{"upper-snake", "uppersnake"},
		{"upper snake", "uppersnake"},
		{"Upper.Snake", "uppersnake"},
		{"__", ""},
		{"Ünïcode", "ünïcode"},
		{"pseudo_random2", "pseudorandom2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Key(tt.input))
		})
	}
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("LowerUpper", "lower_upper"))
	assert.True(t, Match("PSEUDO-RANDOM", "pseudo_random"))
	assert.False(t, Match("snake", "kebab"))
	assert.False(t, Match("", ""))
	assert.False(t, Match("_", "-"))
}
