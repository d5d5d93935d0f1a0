// SPDX-License-Identifier: MIT
//
// File: traversal.go
// Role: Depth-first queries over the extends relation.
// Determinism:
//   - Supers are visited in ascending name order; results are reproducible.

package hierarchy

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
)

// Visitation states for TopologicalOrder.
const (
	white = iota // not yet visited
	gray         // on the current DFS path
	black        // fully explored
)

// Extends reports whether sub is super or (transitively) extends it.
// Undeclared names extend nothing.
//
// Complexity:
//   - Time O(V + E), Space O(V) for the visited set.
func (h *Hierarchy) Extends(sub, super string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.classes[sub]; !ok {
		return false
	}
	if _, ok := h.classes[super]; !ok {
		return false
	}
	if sub == super {
		return true
	}
	found := false
	h.walkSupers(sub, set.New[string](len(h.classes)), func(id string) bool {
		found = id == super

		return !found
	})

	return found
}

// Ancestors returns every proper superclass of name, sorted ascending.
func (h *Hierarchy) Ancestors(name string) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.classes[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}
	seen := make(map[string]struct{})
	h.walkSupers(name, set.New[string](len(h.classes)), func(id string) bool {
		seen[id] = struct{}{}

		return true
	})

	return sortedKeys(seen), nil
}

// walkSupers visits the proper superclasses of id depth-first, pre-order.
// visit returns false to stop the walk. Caller holds mu.
func (h *Hierarchy) walkSupers(id string, visited *set.Set[string], visit func(string) bool) bool {
	for _, s := range sortedKeys(h.supers[id]) {
		if !visited.Insert(s) {
			continue
		}
		if !visit(s) || !h.walkSupers(s, visited, visit) {
			return false
		}
	}

	return true
}

// TopologicalOrder lists every class after all of its superclasses.
//
// Implementation:
//   - Stage 1: Drive a DFS from every class in ascending name order.
//   - Stage 2: Emit a class in post-order, i.e. once its supers are emitted.
//
// Notes:
//   - Declare keeps the graph acyclic; a gray revisit would indicate a
//     corrupted hierarchy and panics with ErrCycle.
func (h *Hierarchy) TopologicalOrder() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	state := make(map[string]int, len(h.classes))
	order := make([]string, 0, len(h.classes))
	var visit func(id string)
	visit = func(id string) {
		switch state[id] {
		case black:
			return
		case gray:
			panic(fmt.Errorf("%w: through %q", ErrCycle, id))
		}
		state[id] = gray
		for _, s := range sortedKeys(h.supers[id]) {
			visit(s)
		}
		state[id] = black
		order = append(order, id)
	}
	for _, id := range h.names.Slice() {
		if state[id] == white {
			visit(id)
		}
	}

	return order
}
