// SPDX-License-Identifier: MIT

package typesys

import "strings"

// Product is the ordered tuple type of arity two or more.
type Product struct {
	components []Type
}

// Components returns a copy of the component types in order.
func (p *Product) Components() []Type { return append([]Type(nil), p.components...) }

// Arity returns the number of components.
func (p *Product) Arity() int { return len(p.components) }

func (p *Product) String() string { return joinTypes(p.components, ", ") }

func (p *Product) Equal(other Type) bool {
	o, ok := other.(*Product)

	return ok && equalTypes(p.components, o.components)
}

func (p *Product) Hash() uint64 {
	return hashTypes(hashSeed(priorityProduct), p.components)
}

// Apply accepts slices and arrays of exactly the same arity whose elements
// satisfy the corresponding components.
func (p *Product) Apply(v any) (bool, error) {
	if err := checkMembership(p); err != nil {
		return false, err
	}
	elems, ok := sequence(v)
	if !ok || len(elems) != len(p.components) {
		return false, nil
	}
	for i, c := range p.components {
		in, err := c.Apply(elems[i])
		if err != nil || !in {
			return false, err
		}
	}

	return true, nil
}

func (p *Product) Domain() Type   { return noType }
func (p *Product) Codomain() Type { return p }
func (p *Product) priority() int  { return priorityProduct }

func (p *Product) compareSemi(other Type) (Order, error) {
	if o, ok := bound(other); ok {
		return o, nil
	}
	o, ok := other.(*Product)
	if !ok {
		return Same, ErrIncomparable
	}

	return compareUniform(p.components, o.components)
}

// compareUniform compares two sequences component-wise. Every non-same
// component must point in one direction; a single row disagreeing with the
// direction already seen makes the sequences incomparable. This is stricter
// than a per-component covariant order.
func compareUniform(xs, ys []Type) (Order, error) {
	if len(xs) != len(ys) {
		return Same, ErrIncomparable
	}
	dir := Same
	for i := range xs {
		o, err := Compare(xs[i], ys[i])
		if err != nil {
			return Same, err
		}
		if o == Same {
			continue
		}
		if dir == Same {
			dir = o

			continue
		}
		if dir != o {
			return Same, ErrIncomparable
		}
	}

	return dir, nil
}

func (p *Product) lexTie(other Type) int {
	return lexSequence(p.components, other.(*Product).components)
}

func joinTypes(ts []Type, sep string) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range ts {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')

	return b.String()
}
