package backend

import (
	"sort"
	"sync"

	"github.com/phlak/clouddrop"
)

// Factory builds a provider client from a credential configuration.
type Factory func(cfg clouddrop.Config) (clouddrop.Provider, error)

// Registry maps provider names to factories. The zero value is not usable; call NewRegistry.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty provider registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds or replaces the factory for name
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	r.factories[name] = f
	r.mu.Unlock()
}

// Unregister removes the factory for name
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.factories, name)
	r.mu.Unlock()
}

// Registered returns the sorted names of all registered providers
func (r *Registry) Registered() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.factories))
	for k := range r.factories {
		names = append(names, k)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Init constructs a new client for the provider registered under name, passing cfg through
// unchanged. An unregistered name yields *clouddrop.UnknownProviderError.
func (r *Registry) Init(name string, cfg clouddrop.Config) (clouddrop.Provider, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &clouddrop.UnknownProviderError{Name: name}
	}
	return f(cfg)
}
