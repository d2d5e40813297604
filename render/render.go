// Package render serializes widget payload trees into the wire formats
// dashboard hosts accept: JSON object notation and XML markup. Renderers
// are looked up by name in a Registry, and Negotiate maps an incoming
// request to the name of the format it asks for.
package render

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Renderer serializes payload trees into one wire format.
type Renderer interface {
	// Name identifies the format, e.g. "json".
	Name() string
	// ContentType is the media type written with rendered responses.
	ContentType() string
	// Render serializes a payload tree of ordered mappings
	// (*widget.Payload), sequences and scalars. The output is
	// deterministic: equal trees render to equal bytes.
	Render(v any) ([]byte, error)
}

// Registry stores renderers by name. The zero value is not usable; create
// instances with NewRegistry or Default.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Default returns a registry with the built-in JSON and XML renderers
// registered.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(JSON)
	r.MustRegister(XML)

	return r
}

// Register adds a renderer under its Name. Duplicate names return an
// error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("renderer must not be nil")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("renderer must have a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("renderer %q is already registered", name)
	}
	r.renderers[name] = renderer

	return nil
}

// MustRegister panics on registration failure. Useful for wiring done at
// process start.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get returns the renderer registered under name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("renderer %q is not registered", name)
	}

	return renderer, nil
}

// Has reports whether a renderer is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[name]

	return ok
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.renderers))
}
