package preset

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/ccase/caseerrors"
)

// quietLogger discards registry warnings for the duration of a test.
func quietLogger(t *testing.T) {
	t.Helper()
	prev := presetLogger
	presetLogger = slog.New(slog.DiscardHandler)
	t.Cleanup(func() { presetLogger = prev })
}

func TestLookup(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"snake", "snake"},
		{"SNAKE", "snake"},
		{"UpperSnake", "constant"},
		{"upper-snake", "constant"},
		{"screaming", "constant"},
		{"screaming_snake", "constant"},
		{"upper_kebab", "cobol"},
		{"upper camel", "pascal"},
		{"UpperFlat", "upper_flat"},
		{"alternate", "alternating"},
		{"pseudo", "pseudo_random"},
		{"PseudoRandom", "pseudo_random"},
		{"Title", "title"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := Lookup(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.Name)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, name := range []string{"bogus", "", "__"} {
		t.Run(name, func(t *testing.T) {
			_, err := Lookup(name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, caseerrors.ErrUnknownCase))

			var unknown *caseerrors.UnknownCaseError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, name, unknown.Name)
			assert.Contains(t, unknown.Known, "snake")
		})
	}
}

func TestRegistry_LookupReturnsCopy(t *testing.T) {
	r := NewDefaultRegistry()
	p, err := r.Lookup("constant")
	require.NoError(t, err)
	p.Aliases[0] = "mutated"

	again, err := r.Lookup("upper_snake")
	require.NoError(t, err)
	assert.Equal(t, "upper_snake", again.Aliases[0])
}

func TestRegistry_Register(t *testing.T) {
	r := NewDefaultRegistry()
	dot := Snake
	dot.Name = "dot"
	dot.Aliases = []string{"dotted", "Dot"}
	dot.Delimiter = "."
	dot.Kind = KindCustom

	require.NoError(t, r.Register(dot))

	p, err := r.Lookup("dotted")
	require.NoError(t, err)
	assert.Equal(t, "dot", p.Name)
	assert.Equal(t, []string{"dotted"}, p.Aliases, "aliases equal to the name are dropped")
	assert.Contains(t, r.Names(), "dot")
}

func TestRegistry_RegisterErrors(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
		option string
	}{
		{name: "empty name", preset: Preset{}, option: "name"},
		{name: "separators only", preset: Preset{Name: "-_-"}, option: "name"},
		{name: "taken name", preset: Preset{Name: "Snake"}, option: "name"},
		{name: "alias matches name", preset: Preset{Name: "python", Aliases: []string{"snake"}}, option: "aliases"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDefaultRegistry()
			err := r.Register(tt.preset)
			require.Error(t, err)
			assert.ErrorIs(t, err, caseerrors.ErrConfig)

			var cfgErr *caseerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.option, cfgErr.Option)
		})
	}
}

func TestRegistry_RegisterIsAtomic(t *testing.T) {
	r := NewDefaultRegistry()
	before := len(r.Names())

	err := r.Register(Preset{Name: "fresh"}, Preset{Name: "kebab"})
	require.Error(t, err)
	assert.Len(t, r.Names(), before)
	_, err = r.Lookup("fresh")
	assert.ErrorIs(t, err, caseerrors.ErrUnknownCase)
}

func TestRegistry_AliasShadowing(t *testing.T) {
	quietLogger(t)
	r := NewDefaultRegistry()

	shout := Constant
	shout.Name = "shout"
	shout.Aliases = []string{"screaming"}
	require.NoError(t, r.Register(shout))

	p, err := r.Lookup("screaming")
	require.NoError(t, err)
	assert.Equal(t, "shout", p.Name)

	constant, err := r.Lookup("constant")
	require.NoError(t, err)
	assert.Equal(t, []string{"upper_snake", "screaming_snake"}, constant.Aliases)

	// A new name can take an alias over too.
	pseudo := PseudoRandom
	pseudo.Name = "pseudo"
	pseudo.Aliases = nil
	require.NoError(t, r.Register(pseudo))
	p, err = r.Lookup("pseudo")
	require.NoError(t, err)
	assert.Equal(t, "pseudo", p.Name)
}

func TestRegistry_Empty(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.Names())
	assert.Empty(t, r.List())

	_, err := r.Lookup("snake")
	var unknown *caseerrors.UnknownCaseError
	require.ErrorAs(t, err, &unknown)
	assert.Empty(t, unknown.Known)
	assert.Equal(t, `unknown case "snake"`, err.Error())
}

func TestRegistry_List(t *testing.T) {
	r := NewDefaultRegistry()
	custom := Title
	custom.Name = "headline"
	custom.Kind = KindCustom
	require.NoError(t, r.Register(custom))

	entries := r.List()
	require.Len(t, entries, 19)
	assert.Equal(t, "lower", entries[0].Name)
	assert.Equal(t, "headline", entries[len(entries)-1].Name)

	order := map[Kind]int{}
	for i, k := range Kinds() {
		order[k] = i
	}
	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, order[entries[i-1].Kind], order[entries[i].Kind], "entry %d out of kind order", i)
	}

	var snake Entry
	for _, e := range entries {
		if e.Name == "snake" {
			snake = e
		}
	}
	assert.Equal(t, Entry{
		Name:       "snake",
		Kind:       KindUnderscoreDelimited,
		Example:    "snake_case",
		Delimiter:  "_",
		Boundaries: []string{"Underscore"},
		Pattern:    []string{"lowercase"},
	}, snake)
}

func TestList_Default(t *testing.T) {
	entries := List()
	require.NotEmpty(t, entries)

	var constant Entry
	for _, e := range entries {
		if e.Name == "constant" {
			constant = e
		}
	}
	assert.Equal(t, []string{"upper_snake", "screaming_snake", "screaming"}, constant.Aliases)
	assert.Equal(t, "CONSTANT_CASE", constant.Example)
	assert.Same(t, Default(), defaultRegistry)
}
