// Package commands provides command registration, lookup and execution for
// cmdly. Commands register themselves during init; after startup the registry
// is read-only.
package commands

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"cmdly/pkg/shelltypes"
)

// Descriptor is the registry's record for one command: its names, help
// metadata and a reference to the executable behavior. Descriptors are
// immutable after registration.
type Descriptor struct {
	Name    string
	Aliases []string
	Summary string
	Fun     bool
	Help    shelltypes.HelpInfo
	Command shelltypes.Command
}

// Registry maps every recognized name and alias (case-insensitive) to its
// command descriptor. It is populated once during startup and read-only for
// the remainder of the process lifetime.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Descriptor
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Descriptor),
	}
}

// Register adds a command and all of its declared aliases to the registry.
// It returns a DuplicateCommandError if the name or any alias is already
// claimed, leaving the registry unchanged.
func (r *Registry) Register(cmd shelltypes.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToLower(cmd.Name())
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	names := append([]string{name}, lowerAll(cmd.Aliases())...)
	for _, n := range names {
		if _, exists := r.byName[n]; exists {
			return &DuplicateCommandError{Name: n}
		}
	}

	desc := &Descriptor{
		Name:    name,
		Aliases: lowerAll(cmd.Aliases()),
		Summary: cmd.Description(),
		Fun:     cmd.Fun(),
		Help:    cmd.HelpInfo(),
		Command: cmd,
	}
	for _, n := range names {
		r.byName[n] = desc
	}
	return nil
}

// ApplyAliases binds externally configured aliases (command name to list of
// alternate names) on top of the registered commands, without modifying any
// descriptor. Aliases for unknown commands are skipped; collisions with an
// existing name fail with a DuplicateCommandError.
func (r *Registry) ApplyAliases(aliases map[string][]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for target, names := range aliases {
		desc, ok := r.byName[strings.ToLower(target)]
		if !ok {
			continue
		}
		for _, alias := range names {
			alias = strings.ToLower(alias)
			if existing, exists := r.byName[alias]; exists {
				if existing == desc {
					continue
				}
				return &DuplicateCommandError{Name: alias}
			}
			r.byName[alias] = desc
		}
	}
	return nil
}

// Resolve looks up a command by name or alias, case-insensitively.
func (r *Registry) Resolve(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.byName[strings.ToLower(name)]
	return desc, ok
}

// List returns every registered descriptor exactly once, sorted by command
// name so help listings are deterministic.
func (r *Registry) List() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[*Descriptor]bool)
	var result []*Descriptor
	for _, desc := range r.byName {
		if !seen[desc] {
			seen[desc] = true
			result = append(result, desc)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Names returns every recognized name and alias, sorted. Used for
// closest-match suggestions.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func lowerAll(names []string) []string {
	result := make([]string, len(names))
	for i, n := range names {
		result[i] = strings.ToLower(n)
	}
	return result
}

// GlobalRegistry is the process-wide command registry. Commands register
// themselves with it during initialization.
var GlobalRegistry = NewRegistry()

// GetGlobalRegistry returns the global command registry instance.
func GetGlobalRegistry() *Registry {
	return GlobalRegistry
}
