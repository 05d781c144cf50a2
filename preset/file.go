package preset

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/ccase/boundary"
	"github.com/erraggy/ccase/caseerrors"
	"github.com/erraggy/ccase/pattern"
)

// presetFile is the YAML document holding custom presets.
type presetFile struct {
	Cases []caseDef `yaml:"cases"`
}

type caseDef struct {
	Name       string         `yaml:"name"`
	Aliases    []string       `yaml:"aliases"`
	Delimiter  string         `yaml:"delimiter"`
	Boundaries []boundaryDef `yaml:"boundaries"`
	Pattern    []string       `yaml:"pattern"`
}

// boundaryDef is either a scalar boundary name or short code, or a mapping
// with a separator or a sample.
type boundaryDef struct {
	Name      string
	Separator *string
	Sample    *string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *boundaryDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		b.Name = node.Value
		return nil
	}
	var m struct {
		Separator *string `yaml:"separator"`
		Sample    *string `yaml:"sample"`
	}
	if err := node.Decode(&m); err != nil {
		return err
	}
	if (m.Separator == nil) == (m.Sample == nil) {
		return fmt.Errorf("line %d: boundary must be a name or exactly one of separator or sample", node.Line)
	}
	b.Separator, b.Sample = m.Separator, m.Sample
	return nil
}

// ParseFile reads custom presets from a YAML file.
func ParseFile(path string) ([]Preset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the user on purpose
	if err != nil {
		return nil, &caseerrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}
	return parse(data, path)
}

// Parse decodes custom presets from YAML data.
func Parse(data []byte) ([]Preset, error) {
	return parse(data, "")
}

// LoadFile parses a YAML preset file and registers its presets. Nothing is
// registered when the file is invalid or a preset conflicts.
func (r *Registry) LoadFile(path string) error {
	ps, err := ParseFile(path)
	if err != nil {
		return err
	}
	if err := r.Register(ps...); err != nil {
		return fmt.Errorf("preset: %s: %w", path, err)
	}
	presetLogger.Debug("loaded presets", "path", path, "count", len(ps))
	return nil
}

func parse(data []byte, path string) ([]Preset, error) {
	var doc presetFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &caseerrors.ParseError{Path: path, Message: "invalid YAML", Cause: err}
	}

	ps := make([]Preset, 0, len(doc.Cases))
	for i, c := range doc.Cases {
		p, err := c.preset(fmt.Sprintf("cases[%d]", i))
		if err != nil {
			return nil, &caseerrors.ParseError{Path: path, Message: "invalid case", Cause: err}
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func (c caseDef) preset(at string) (Preset, error) {
	if c.Name == "" {
		return Preset{}, &caseerrors.ConfigError{Option: at + ".name", Message: "name is required"}
	}

	var bs []boundary.Boundary
	for j, def := range c.Boundaries {
		switch {
		case def.Separator != nil:
			bs = append(bs, boundary.Separator(*def.Separator))
		case def.Sample != nil:
			bs = append(bs, boundary.ListFrom(*def.Sample)...)
		default:
			b, ok := boundary.Parse(def.Name)
			if !ok {
				return Preset{}, &caseerrors.ConfigError{
					Option:  fmt.Sprintf("%s.boundaries[%d]", at, j),
					Value:   def.Name,
					Message: "unknown boundary",
				}
			}
			bs = append(bs, b)
		}
	}

	steps := make([]pattern.Step, 0, len(c.Pattern))
	for j, name := range c.Pattern {
		s, ok := pattern.Parse(name)
		if !ok {
			return Preset{}, &caseerrors.ConfigError{
				Option:  fmt.Sprintf("%s.pattern[%d]", at, j),
				Value:   name,
				Message: "unknown pattern step",
			}
		}
		steps = append(steps, s)
	}

	return Preset{
		Name:       c.Name,
		Aliases:    c.Aliases,
		Kind:       KindCustom,
		Boundaries: boundary.NewSet(bs...),
		Pattern:    pattern.New(steps...),
		Delimiter:  c.Delimiter,
	}, nil
}
