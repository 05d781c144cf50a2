package preset

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/erraggy/ccase/caseerrors"
	"github.com/erraggy/ccase/internal/naming"
)

// presetLogger is used for registration warnings.
// Tests can replace this with a discard logger to suppress expected warnings.
var presetLogger = slog.Default()

// Entry describes a registered preset for listings.
type Entry struct {
	Name       string   `json:"name" yaml:"name"`
	Aliases    []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Kind       Kind     `json:"kind" yaml:"kind"`
	Example    string   `json:"example" yaml:"example"`
	Delimiter  string   `json:"delimiter" yaml:"delimiter"`
	Boundaries []string `json:"boundaries,omitempty" yaml:"boundaries,omitempty"`
	Pattern    []string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Registry resolves case names and aliases to presets. It is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	state registryState
}

type registryState struct {
	presets []Preset
	// index maps a name key to the position of its preset.
	index map[string]int
	// names holds the keys of canonical names; aliases may be taken over,
	// names may not.
	names map[string]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{state: registryState{index: map[string]int{}, names: map[string]bool{}}}
}

// NewDefaultRegistry returns a registry holding the built-in presets.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	if err := r.Register(Builtins()...); err != nil {
		panic(fmt.Sprintf("preset: built-in presets conflict: %v", err))
	}
	return r
}

var defaultRegistry = NewDefaultRegistry()

// Default returns the process-wide registry used by Lookup and List.
func Default() *Registry {
	return defaultRegistry
}

// Lookup resolves name in the default registry.
func Lookup(name string) (Preset, error) {
	return defaultRegistry.Lookup(name)
}

// List describes the presets of the default registry.
func List() []Entry {
	return defaultRegistry.List()
}

// Register adds presets to the registry. Either all presets are added or,
// on error, none are.
func (r *Registry) Register(ps ...Preset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.state.clone()
	for _, p := range ps {
		if err := next.add(p.clone()); err != nil {
			return err
		}
	}
	r.state = next
	return nil
}

// Lookup returns the preset registered under name or one of its aliases.
// Matching ignores letter case and separators.
func (r *Registry) Lookup(name string) (Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i, ok := r.state.index[naming.Key(name)]; ok {
		return r.state.presets[i].clone(), nil
	}
	return Preset{}, &caseerrors.UnknownCaseError{Name: name, Known: r.namesLocked()}
}

// Names returns the canonical names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

// Presets returns copies of all registered presets in registration order.
func (r *Registry) Presets() []Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ps := make([]Preset, len(r.state.presets))
	for i, p := range r.state.presets {
		ps[i] = p.clone()
	}
	return ps
}

// List describes every preset, grouped by kind in Kinds order and by
// registration order within a kind.
func (r *Registry) List() []Entry {
	ps := r.Presets()
	entries := make([]Entry, 0, len(ps))
	for _, kind := range Kinds() {
		for _, p := range ps {
			if p.Kind == kind {
				entries = append(entries, Describe(p))
			}
		}
	}
	return entries
}

// Describe returns the listing entry for p.
func Describe(p Preset) Entry {
	e := Entry{
		Name:      p.Name,
		Aliases:   slices.Clone(p.Aliases),
		Kind:      p.Kind,
		Example:   p.Example(),
		Delimiter: p.Delimiter,
	}
	for _, b := range p.Boundaries.Boundaries() {
		e.Boundaries = append(e.Boundaries, b.Name())
	}
	for _, s := range p.Pattern.Steps() {
		e.Pattern = append(e.Pattern, s.Name())
	}
	return e
}

func (r *Registry) namesLocked() []string {
	names := make([]string, len(r.state.presets))
	for i, p := range r.state.presets {
		names[i] = p.Name
	}
	return names
}

func (s registryState) clone() registryState {
	return registryState{
		presets: slices.Clone(s.presets),
		index:   maps.Clone(s.index),
		names:   maps.Clone(s.names),
	}
}

func (s *registryState) add(p Preset) error {
	key := naming.Key(p.Name)
	if key == "" {
		return &caseerrors.ConfigError{Option: "name", Value: p.Name, Message: "preset name must contain a letter or digit"}
	}
	if s.names[key] {
		return &caseerrors.ConfigError{Option: "name", Value: p.Name, Message: "a case with this name is already registered"}
	}

	aliases := make([]string, 0, len(p.Aliases))
	for _, alias := range p.Aliases {
		ak := naming.Key(alias)
		switch {
		case ak == "" || ak == key:
			continue
		case s.names[ak]:
			return &caseerrors.ConfigError{Option: "aliases", Value: alias, Message: "alias matches the name of a registered case"}
		}
		aliases = append(aliases, alias)
	}
	p.Aliases = aliases

	pos := len(s.presets)
	s.presets = append(s.presets, p)
	s.names[key] = true
	s.take(key, p.Name, pos)
	for _, alias := range aliases {
		s.take(naming.Key(alias), alias, pos)
	}
	return nil
}

// take points key at the preset at pos, removing the alias from any preset
// that held it.
func (s *registryState) take(key, spelling string, pos int) {
	prev, ok := s.index[key]
	if ok && prev != pos {
		old := s.presets[prev].clone()
		old.Aliases = slices.DeleteFunc(old.Aliases, func(a string) bool {
			return naming.Key(a) == key
		})
		s.presets[prev] = old
		presetLogger.Warn("case alias shadowed", "alias", spelling, "previous", old.Name, "case", s.presets[pos].Name)
	}
	s.index[key] = pos
}
