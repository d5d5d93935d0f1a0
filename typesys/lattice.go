// SPDX-License-Identifier: MIT
//
// File: lattice.go
// Role: Meet (Infimum) and join (Supremum) types.
// Policy:
//   - Components are flattened, reduced and held in lexicographic order.
//     Classes sharing a name can tie in that order, so Equal and Hash treat
//     components as a set.
//   - Meets against meets, joins against joins, and any meet/join nesting
//     its dual form refuse to compare (ErrUnsupportedComparison).

package typesys

import (
	"errors"
	"fmt"
)

// Infimum is the intersection of two or more types: a value must satisfy all of them.
type Infimum struct {
	components []Type
}

// Supremum is the union of two or more types: a value must satisfy any of them.
type Supremum struct {
	components []Type
}

// ---------- Infimum ----------

// Components returns a copy of the components in canonical order.
func (m *Infimum) Components() []Type { return append([]Type(nil), m.components...) }

func (m *Infimum) String() string { return joinTypes(m.components, " & ") }

func (m *Infimum) Equal(other Type) bool {
	o, ok := other.(*Infimum)

	return ok && sameMembers(m.components, o.components)
}

func (m *Infimum) Hash() uint64 {
	return hashMembers(hashSeed(priorityInfimum), m.components)
}

// Apply requires every component to accept v.
func (m *Infimum) Apply(v any) (bool, error) {
	if err := checkMembership(m); err != nil {
		return false, err
	}
	for _, c := range m.components {
		in, err := c.Apply(v)
		if err != nil || !in {
			return false, err
		}
	}

	return true, nil
}

func (m *Infimum) Domain() Type   { return noType }
func (m *Infimum) Codomain() Type { return m }
func (m *Infimum) priority() int  { return priorityInfimum }

// compareSemi: I ≤ τ iff some component is ≤ τ; I ≥ τ iff every component is ≥ τ.
func (m *Infimum) compareSemi(other Type) (Order, error) {
	if o, ok := bound(other); ok {
		return o, nil
	}
	if _, ok := other.(*Infimum); ok {
		return Same, unsupported(m, other)
	}
	if containsVariant[*Supremum](m.components) {
		return Same, unsupported(m, other)
	}
	anyBelow, allAbove := false, true
	for _, c := range m.components {
		o, err := Compare(c, other)
		switch {
		case err == nil:
			anyBelow = anyBelow || o <= Same
			allAbove = allAbove && o >= Same
		case errors.Is(err, ErrIncomparable):
			allAbove = false
		default:
			return Same, err
		}
	}
	switch {
	case anyBelow:
		return Less, nil
	case allAbove:
		return Greater, nil
	}

	return Same, ErrIncomparable
}

func (m *Infimum) lexTie(other Type) int {
	return lexSequence(m.components, other.(*Infimum).components)
}

// ---------- Supremum ----------

// Components returns a copy of the components in canonical order.
func (s *Supremum) Components() []Type { return append([]Type(nil), s.components...) }

func (s *Supremum) String() string { return joinTypes(s.components, " | ") }

func (s *Supremum) Equal(other Type) bool {
	o, ok := other.(*Supremum)

	return ok && sameMembers(s.components, o.components)
}

func (s *Supremum) Hash() uint64 {
	return hashMembers(hashSeed(prioritySupremum), s.components)
}

// Apply requires at least one component to accept v.
func (s *Supremum) Apply(v any) (bool, error) {
	if err := checkMembership(s); err != nil {
		return false, err
	}
	for _, c := range s.components {
		in, err := c.Apply(v)
		if err != nil {
			return false, err
		}
		if in {
			return true, nil
		}
	}

	return false, nil
}

func (s *Supremum) Domain() Type   { return noType }
func (s *Supremum) Codomain() Type { return s }
func (s *Supremum) priority() int  { return prioritySupremum }

// compareSemi: S ≤ τ iff every component is ≤ τ; S ≥ τ iff some component is ≥ τ.
func (s *Supremum) compareSemi(other Type) (Order, error) {
	if o, ok := bound(other); ok {
		return o, nil
	}
	if _, ok := other.(*Supremum); ok {
		return Same, unsupported(s, other)
	}
	if containsVariant[*Infimum](s.components) {
		return Same, unsupported(s, other)
	}
	allBelow, anyAbove := true, false
	for _, c := range s.components {
		o, err := Compare(c, other)
		switch {
		case err == nil:
			allBelow = allBelow && o <= Same
			anyAbove = anyAbove || o >= Same
		case errors.Is(err, ErrIncomparable):
			allBelow = false
		default:
			return Same, err
		}
	}
	switch {
	case allBelow:
		return Less, nil
	case anyAbove:
		return Greater, nil
	}

	return Same, ErrIncomparable
}

func (s *Supremum) lexTie(other Type) int {
	return lexSequence(s.components, other.(*Supremum).components)
}

// ---------- helpers ----------

func containsVariant[V Type](ts []Type) bool {
	for _, t := range ts {
		if _, ok := t.(V); ok {
			return true
		}
	}

	return false
}

func unsupported(a, b Type) error {
	return fmt.Errorf("%w: %s against %s", ErrUnsupportedComparison, a, b)
}

// sameMembers reports whether xs and ys hold equal components, in any order.
func sameMembers(xs, ys []Type) bool {
	if len(xs) != len(ys) {
		return false
	}
	used := make([]bool, len(ys))
outer:
	for _, x := range xs {
		for j, y := range ys {
			if !used[j] && x.Equal(y) {
				used[j] = true

				continue outer
			}
		}

		return false
	}

	return true
}

// hashMembers combines component hashes commutatively.
func hashMembers(h uint64, ts []Type) uint64 {
	var sum uint64
	for _, t := range ts {
		sum += t.Hash()
	}

	return mix(mix(h, uint64(len(ts))), sum)
}
