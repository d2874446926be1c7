package component

import (
	"fmt"
	"sort"
	"sync"

	"github.com/beevik/etree"
)

// Factory creates an empty component for a declaring element. Properties
// are filled in later through Component.ParseProperties; a factory only
// reads what it needs to choose the concrete type, such as a layout's
// direction attribute.
type Factory func(el *etree.Element) (Component, error)

// Registry maps tag names to component factories. It is safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds tag to f. It panics if tag is empty, f is nil, or tag is
// already registered.
func (r *Registry) Register(tag string, f Factory) {
	if tag == "" {
		panic("component: Register with empty tag")
	}
	if f == nil {
		panic("component: Register factory is nil for tag " + tag)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.factories[tag]; dup {
		panic(fmt.Sprintf("component: duplicate factory for tag %q", tag))
	}
	r.factories[tag] = f
}

// Lookup returns the factory registered for tag.
func (r *Registry) Lookup(tag string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[tag]
	return f, ok
}

// Tags returns the registered tag names in sorted order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// DefaultRegistry is the registry used when a specification is created
// without an explicit one.
var DefaultRegistry = NewRegistry()

// Register binds tag to f in DefaultRegistry.
func Register(tag string, f Factory) {
	DefaultRegistry.Register(tag, f)
}

// Simple adapts a constructor that ignores its element into a Factory.
func Simple(newFn func() Component) Factory {
	return func(*etree.Element) (Component, error) {
		return newFn(), nil
	}
}
