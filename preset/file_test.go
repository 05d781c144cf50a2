package preset

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/ccase/caseerrors"
)

const dotCases = `
cases:
  - name: dot
    aliases: [dotted]
    delimiter: "."
    boundaries:
      - lower_upper
      - separator: "."
      - sample: "aA1"
    pattern: [remove_empty, lowercase]
  - name: shout
    boundaries: [" ", "-"]
    pattern: [Uppercase]
    delimiter: "!"
`

func TestParse(t *testing.T) {
	ps, err := Parse([]byte(dotCases))
	require.NoError(t, err)
	require.Len(t, ps, 2)

	dot := ps[0]
	assert.Equal(t, "dot", dot.Name)
	assert.Equal(t, []string{"dotted"}, dot.Aliases)
	assert.Equal(t, KindCustom, dot.Kind)
	assert.Equal(t, "[LowerUpper Separator(\".\") UpperDigit]", dot.Boundaries.String())
	assert.Equal(t, "[remove_empty lowercase]", dot.Pattern.String())
	assert.Equal(t, []string{"my", "Var", "name", "V", "2"}, dot.Split("myVar.nameV2"))
	assert.Equal(t, "my.var.name", dot.Join([]string{"", "my", "Var", "name"}))
	assert.Equal(t, "dot.case", dot.Example())

	shout := ps[1]
	assert.Equal(t, "[Space Hyphen]", shout.Boundaries.String())
	assert.Equal(t, "HELLO!WORLD", shout.Join(shout.Split("hello-world")))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		option string
	}{
		{name: "invalid yaml", data: "cases: ["},
		{name: "wrong shape", data: "cases: 3"},
		{name: "missing name", data: "cases: [{delimiter: x}]", option: "cases[0].name"},
		{
			name:   "unknown boundary",
			data:   "cases: [{name: a, boundaries: [bogus]}]",
			option: "cases[0].boundaries[0]",
		},
		{
			name:   "unknown step",
			data:   "cases: [{name: a}, {name: b, pattern: [lowercase, shouting]}]",
			option: "cases[1].pattern[1]",
		},
		{name: "separator and sample", data: `cases: [{name: a, boundaries: [{separator: ".", sample: "aA"}]}]`},
		{name: "empty boundary mapping", data: `cases: [{name: a, boundaries: [{other: "."}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, caseerrors.ErrParse)

			if tt.option != "" {
				var cfgErr *caseerrors.ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, tt.option, cfgErr.Option)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	ps, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dotCases), 0o600))

	ps, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, ps, 2)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, caseerrors.ErrParse)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var parseErr *caseerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Path, "missing.yaml")
}

func TestRegistry_LoadFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(dotCases), 0o600))

	r := NewDefaultRegistry()
	require.NoError(t, r.LoadFile(good))

	p, err := r.Lookup("Dotted")
	require.NoError(t, err)
	assert.Equal(t, "dot", p.Name)

	conflict := filepath.Join(dir, "conflict.yaml")
	require.NoError(t, os.WriteFile(conflict, []byte("cases: [{name: fresh}, {name: snake}]"), 0o600))
	err = r.LoadFile(conflict)
	require.Error(t, err)
	assert.ErrorIs(t, err, caseerrors.ErrConfig)
	assert.Contains(t, err.Error(), "conflict.yaml")
	_, err = r.Lookup("fresh")
	assert.ErrorIs(t, err, caseerrors.ErrUnknownCase)

	assert.Error(t, r.LoadFile(filepath.Join(dir, "missing.yaml")))
}
