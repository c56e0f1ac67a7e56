// Package registry maps stable backend identifiers to their adapters and
// exposes the uniform capability contract to the benchmark driver.
package registry

import (
	"context"
	"fmt"
	"sort"

	"pdf-backend-bench/internal/domain"
)

// Registry is populated once at startup and read-only afterwards, so
// concurrent benchmark workers can dispatch through it without locking.
type Registry struct {
	backends map[string]domain.Backend
}

// Compile-time interface assertion
var _ domain.Catalog = (*Registry)(nil)

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		backends: make(map[string]domain.Backend),
	}
}

// Register adds a backend under its descriptor name. Registering a name
// twice is a configuration error and fails fast.
func (r *Registry) Register(b domain.Backend) error {
	name := b.Descriptor().Name
	if name == "" {
		return fmt.Errorf("backend descriptor has no name")
	}
	if _, exists := r.backends[name]; exists {
		return fmt.Errorf("backend %s already registered", name)
	}
	r.backends[name] = b
	return nil
}

// List returns all registered descriptors sorted by name.
func (r *Registry) List() []domain.Descriptor {
	descriptors := make([]domain.Descriptor, 0, len(r.backends))
	for _, b := range r.backends {
		descriptors = append(descriptors, b.Descriptor())
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].Name < descriptors[j].Name
	})
	return descriptors
}

// ExtractText dispatches extract_text to the named backend.
func (r *Registry) ExtractText(ctx context.Context, backend string, payload []byte) (string, error) {
	b, err := r.lookup(backend, domain.CapabilityText)
	if err != nil {
		return "", err
	}
	return b.(domain.TextExtractor).ExtractText(ctx, payload)
}

// ExtractImages dispatches extract_images to the named backend.
func (r *Registry) ExtractImages(ctx context.Context, backend string, payload []byte) ([]domain.Image, error) {
	b, err := r.lookup(backend, domain.CapabilityImages)
	if err != nil {
		return nil, err
	}
	return b.(domain.ImageExtractor).ExtractImages(ctx, payload)
}

// ApplyWatermark dispatches apply_watermark to the named backend.
func (r *Registry) ApplyWatermark(ctx context.Context, backend string, watermark, payload []byte) ([]byte, error) {
	b, err := r.lookup(backend, domain.CapabilityWatermark)
	if err != nil {
		return nil, err
	}
	return b.(domain.Watermarker).ApplyWatermark(ctx, watermark, payload)
}

// lookup resolves a backend and rejects unsupported capabilities before any
// engine code runs.
func (r *Registry) lookup(name string, c domain.Capability) (domain.Backend, error) {
	b, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBackendNotFound, name)
	}
	if !b.Descriptor().Supports(c) {
		return nil, &domain.CapabilityError{Backend: name, Capability: c}
	}
	if !implementsCapability(b, c) {
		return nil, fmt.Errorf("backend %s advertises %s but does not implement it", name, c)
	}
	return b, nil
}

func implementsCapability(b domain.Backend, c domain.Capability) bool {
	switch c {
	case domain.CapabilityText:
		_, ok := b.(domain.TextExtractor)
		return ok
	case domain.CapabilityImages:
		_, ok := b.(domain.ImageExtractor)
		return ok
	case domain.CapabilityWatermark:
		_, ok := b.(domain.Watermarker)
		return ok
	}
	return false
}
