// Package plugin holds named string transformers behind an explicit registry.
package plugin

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknown is returned when no plugin is registered under a name.
var ErrUnknown = errors.New("unknown plugin")

// Plugin transforms a string.
type Plugin interface {
	Name() string
	Execute(data string) string
}

// Constructor builds a fresh plugin instance.
type Constructor func() Plugin

// Registry maps plugin names to constructors.
type Registry struct {
	ctors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds a constructor under name. Names must be non-empty and unique.
func (r *Registry) Register(name string, c Constructor) error {
	if name == "" {
		return fmt.Errorf("plugin name must not be empty")
	}
	if c == nil {
		return fmt.Errorf("plugin %q: nil constructor", name)
	}
	if _, ok := r.ctors[name]; ok {
		return fmt.Errorf("plugin %q already registered", name)
	}
	r.ctors[name] = c
	return nil
}

// New returns a new instance of the named plugin.
func (r *Registry) New(name string) (Plugin, error) {
	c, ok := r.ctors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return c(), nil
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ctors))
	for n := range r.ctors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) IsEmpty() bool {
	return len(r.ctors) == 0
}

// Builtin returns a registry with the upper, reverse and replace_spaces
// plugins.
func Builtin() *Registry {
	r := NewRegistry()
	for _, p := range []Plugin{upper{}, reverse{}, replaceSpaces{}} {
		_ = r.Register(p.Name(), func() Plugin { return p })
	}
	return r
}

type upper struct{}

func (upper) Name() string              { return "upper" }
func (upper) Execute(data string) string { return strings.ToUpper(data) }

type reverse struct{}

func (reverse) Name() string { return "reverse" }
func (reverse) Execute(data string) string {
	r := []rune(data)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

type replaceSpaces struct{}

func (replaceSpaces) Name() string              { return "replace_spaces" }
func (replaceSpaces) Execute(data string) string { return strings.ReplaceAll(data, " ", "_") }
