package providers

import (
	"sync"

	"github.com/crosscheck-ai/crosscheck"
)

// Factory creates a provider client. An empty model selects the provider's
// default model.
type Factory func(model string) crosscheck.LLM

// Entry describes one registered provider.
type Entry struct {
	// Name is the provider identifier used on the CLI, e.g. "openai".
	Name string

	// EnvKey is the environment variable holding the provider's API key.
	EnvKey string

	// DefaultModel is used when the user does not pick a model.
	DefaultModel string

	Factory Factory
}

// Registry maps provider names to factories. Lookup and iteration follow
// registration order so menu numbering and comparison pair order are stable.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// Register adds a provider entry. Registering a name twice replaces the
// earlier entry in place, keeping its position.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.entries {
		if existing.Name == entry.Name {
			r.entries[i] = entry
			return
		}
	}
	r.entries = append(r.entries, entry)
}

// Get returns the entry for the given provider name.
func (r *Registry) Get(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return Entry{}, false
}

// Names returns all registered provider names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.entries))
	for i, entry := range r.entries {
		names[i] = entry.Name
	}
	return names
}

// Global default registry, populated by provider init() functions.
var defaultRegistry = &Registry{}

// Register adds a provider entry to the default registry.
func Register(entry Entry) {
	defaultRegistry.Register(entry)
}

// Get returns an entry from the default registry.
func Get(name string) (Entry, bool) {
	return defaultRegistry.Get(name)
}

// Names returns the provider names in the default registry.
func Names() []string {
	return defaultRegistry.Names()
}

// DefaultRegistry returns the default global registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
