package skeleton

import (
	"fmt"
	"sort"
	"strings"
)

// Entry pairs a pose display name with its program.
type Entry struct {
	Name    string
	Program Program
}

// Registry maps pose display names to drawing programs. It is immutable
// once built, so it is safe for concurrent readers without locking.
type Registry struct {
	programs map[string]Program
	names    []string
}

// NewRegistry validates entries and builds a registry. Names must be
// unique and contain a non-space character; lookups are exact matches.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{programs: make(map[string]Program, len(entries))}
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("skeleton: registry entry with blank name")
		}
		if _, dup := r.programs[e.Name]; dup {
			return nil, fmt.Errorf("skeleton: duplicate registry entry %q", e.Name)
		}
		if err := e.Program.Validate(); err != nil {
			return nil, fmt.Errorf("skeleton: entry %q: %w", e.Name, err)
		}
		r.programs[e.Name] = e.Program
		r.names = append(r.names, e.Name)
	}
	sort.Strings(r.names)
	return r, nil
}

// MustRegistry is NewRegistry for compiled-in pose data.
func MustRegistry(entries []Entry) *Registry {
	r, err := NewRegistry(entries)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the program registered under name. A nil registry has no
// entries.
func (r *Registry) Lookup(name string) (Program, bool) {
	if r == nil {
		return Program{}, false
	}
	p, ok := r.programs[name]
	return p, ok
}

// Names returns the registered names in byte order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered poses.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.programs)
}
