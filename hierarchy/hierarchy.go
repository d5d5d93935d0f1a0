// SPDX-License-Identifier: MIT
//
// File: hierarchy.go
// Role: Hierarchy storage, options and class declaration.
// Concurrency:
//   - mu guards classes, names and supers.
//   - Class values are immutable handles; all queries go through the Hierarchy.

package hierarchy

import (
	"cmp"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hashicorp/go-set/v3"
)

// Option configures a Hierarchy before creation.
type Option func(h *Hierarchy)

// WithRoot declares root on creation and makes every class declared without
// supers extend it.
func WithRoot(root string) Option {
	return func(h *Hierarchy) { h.root = root }
}

// WithLogger routes declaration diagnostics to l at Debug level.
// A nil logger keeps the default, which discards.
func WithLogger(l *slog.Logger) Option {
	return func(h *Hierarchy) {
		if l != nil {
			h.logger = l
		}
	}
}

// Hierarchy is a thread-safe DAG of class names.
//
// supers[sub] holds the direct superclasses of sub; the transitive closure is
// computed on demand by depth-first search.
type Hierarchy struct {
	mu sync.RWMutex

	root   string
	logger *slog.Logger

	classes map[string]*Class
	names   *set.TreeSet[string]
	supers  map[string]map[string]struct{}
}

// New creates an empty Hierarchy (or one holding only the root, see WithRoot).
// Panics if WithRoot was given an empty name.
func New(opts ...Option) *Hierarchy {
	h := &Hierarchy{
		logger:  slog.New(slog.DiscardHandler),
		classes: make(map[string]*Class),
		names:   set.TreeSetFrom[string](nil, cmp.Compare[string]),
		supers:  make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.root != "" {
		h.insert(h.root, nil)
	}

	return h
}

// Root returns the implicit root class name, or "" if none was configured.
func (h *Hierarchy) Root() string { return h.root }

// Declare adds class name extending supers and returns its handle.
//
// Implementation:
//   - Stage 1: Validate the name (ErrEmptyName, ErrDuplicateClass) and reject
//     self-extension (ErrCycle).
//   - Stage 2: Resolve every super (ErrUnknownClass); with none given and a
//     root configured, extend the root.
//   - Stage 3: Register the class and its edges under the write lock.
//
// Behavior highlights:
//   - Supers must be declared first, so the graph stays acyclic.
//   - Duplicate supers collapse into one edge.
//
// Complexity:
//   - Time O(k log V) for k supers, Space O(k).
func (h *Hierarchy) Declare(name string, supers ...string) (*Class, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.classes[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateClass, name)
	}
	for _, s := range supers {
		if s == name {
			return nil, fmt.Errorf("%w: %q extends itself", ErrCycle, name)
		}
		if _, ok := h.classes[s]; !ok {
			return nil, fmt.Errorf("%w: %q (super of %q)", ErrUnknownClass, s, name)
		}
	}
	if len(supers) == 0 && h.root != "" {
		supers = []string{h.root}
	}
	c := h.insert(name, supers)
	h.logger.Debug("hierarchy: class declared", "class", name, "supers", supers)

	return c, nil
}

// insert registers name with its direct supers. Caller holds mu (or owns h).
func (h *Hierarchy) insert(name string, supers []string) *Class {
	c := &Class{h: h, name: name}
	h.classes[name] = c
	h.names.Insert(name)
	edges := make(map[string]struct{}, len(supers))
	for _, s := range supers {
		edges[s] = struct{}{}
	}
	h.supers[name] = edges

	return c
}

// Lookup returns the class named name.
func (h *Hierarchy) Lookup(name string) (*Class, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.classes[name]

	return c, ok
}

// MustLookup is like Lookup but panics with ErrUnknownClass if name is undeclared.
func (h *Hierarchy) MustLookup(name string) *Class {
	c, ok := h.Lookup(name)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownClass, name))
	}

	return c
}

// Names returns all class names sorted ascending.
func (h *Hierarchy) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.names.Slice()
}

// Len returns the number of declared classes.
func (h *Hierarchy) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.classes)
}

// Supers returns the direct superclasses of name, sorted ascending.
func (h *Hierarchy) Supers(name string) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	edges, ok := h.supers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}

	return sortedKeys(edges), nil
}

func sortedKeys(m map[string]struct{}) []string {
	ts := set.TreeSetFrom[string](nil, cmp.Compare[string])
	for k := range m {
		ts.Insert(k)
	}

	return ts.Slice()
}
