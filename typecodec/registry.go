// SPDX-License-Identifier: MIT

package typecodec

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvtype/hierarchy"
	"github.com/katalvlaran/lvtype/typesys"
)

// Registry resolves fundamental classes by name. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]typesys.Class
}

// NewRegistry returns a Registry preloaded with the Go classes of any, bool,
// int, int64, float64 and string.
func NewRegistry() *Registry {
	r := &Registry{classes: make(map[string]typesys.Class)}
	for _, c := range []typesys.Class{
		typesys.ClassOf[any](),
		typesys.ClassOf[bool](),
		typesys.ClassOf[int](),
		typesys.ClassOf[int64](),
		typesys.ClassOf[float64](),
		typesys.ClassOf[string](),
	} {
		r.classes[c.Name()] = c
	}

	return r
}

// Register adds c under c.Name(). Registering the same class twice is a no-op.
func (r *Registry) Register(c typesys.Class) error {
	if c == nil {
		return fmt.Errorf("register: %w", typesys.ErrNilClass)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.classes[c.Name()]; ok && prev != c {
		return fmt.Errorf("%w: %q", ErrDuplicateClass, c.Name())
	}
	r.classes[c.Name()] = c

	return nil
}

// RegisterHierarchy registers every class of h, supers first.
func (r *Registry) RegisterHierarchy(h *hierarchy.Hierarchy) error {
	for _, name := range h.TopologicalOrder() {
		if err := r.Register(h.MustLookup(name)); err != nil {
			return err
		}
	}

	return nil
}

// Resolve returns the class registered under name.
func (r *Registry) Resolve(name string) (typesys.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.classes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}

	return c, nil
}
