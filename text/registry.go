package text

import (
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
)

// StandardFontName is the font name text shapes carry by default.
const StandardFontName = "Standard"

// Registry maps the font names carried by text shapes to Sources.
// Lookups are case-insensitive. A fallback source, when set, resolves
// any unknown name so documents always render.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sources  map[string]*Source
	fallback *Source
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]*Source)}
}

// Register maps a font name to a source, replacing any previous mapping.
func (r *Registry) Register(name string, s *Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[strings.ToLower(name)] = s
}

// SetFallback sets the source returned for unknown names.
func (r *Registry) SetFallback(s *Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = s
}

// Resolve returns the source for the given font name, the fallback for an
// unknown name, or nil if there is no fallback either.
func (r *Registry) Resolve(name string) *Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.sources[strings.ToLower(name)]; ok {
		return s
	}
	return r.fallback
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns a shared registry with the embedded Go Regular
// font registered as "Standard" and as the fallback. It is built on first
// use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		// goregular ships with golang.org/x/image; parsing it cannot
		// fail short of a corrupted toolchain.
		if s, err := NewSource(goregular.TTF); err == nil {
			defaultRegistry.Register(StandardFontName, s)
			defaultRegistry.SetFallback(s)
		}
	})
	return defaultRegistry
}
