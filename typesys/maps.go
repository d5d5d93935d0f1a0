// SPDX-License-Identifier: MIT

package typesys

// Map is the function (or predicate) type domain → codomain.
//
// Canonical maps never have the void or absurd domain and never the absurd
// codomain; System.Map collapses or rejects those requests.
type Map struct {
	domain   Type
	codomain Type
}

func (m *Map) Domain() Type   { return m.domain }
func (m *Map) Codomain() Type { return m.codomain }

func (m *Map) String() string {
	return "(" + m.domain.String() + " -> " + m.codomain.String() + ")"
}

func (m *Map) Equal(other Type) bool {
	o, ok := other.(*Map)

	return ok && m.domain.Equal(o.domain) && m.codomain.Equal(o.codomain)
}

func (m *Map) Hash() uint64 {
	h := hashSeed(priorityMap)
	h = mix(h, m.domain.Hash())

	return mix(h, m.codomain.Hash())
}

// Apply accepts Typed values whose declared type is a subtype of m.
// Values without a declared type are not members.
func (m *Map) Apply(v any) (bool, error) {
	fn, ok := v.(Typed)
	if !ok {
		return false, nil
	}
	declared := fn.DeclaredType()
	if declared == nil {
		return false, nil
	}

	return SubtypeOf(declared, m)
}

func (m *Map) priority() int { return priorityMap }

func (m *Map) compareSemi(other Type) (Order, error) {
	if o, ok := bound(other); ok {
		return o, nil
	}
	o, ok := other.(*Map)
	if !ok {
		return Same, ErrIncomparable
	}

	return compareMaps(m, o)
}

// compareMaps is contravariant in the domain and covariant in the codomain.
func compareMaps(a, b *Map) (Order, error) {
	dom, err := Compare(a.domain, b.domain)
	if err != nil {
		return Same, err
	}
	cod, err := Compare(a.codomain, b.codomain)
	if err != nil {
		return Same, err
	}
	switch {
	case dom == Same && cod == Same:
		return Same, nil
	case dom >= Same && cod <= Same:
		return Less, nil
	case dom <= Same && cod >= Same:
		return Greater, nil
	}

	return Same, ErrIncomparable
}

// lexTie orders by domain first, codomain second.
func (m *Map) lexTie(other Type) int {
	o := other.(*Map)
	if c := Lexicographic(m.domain, o.domain); c != 0 {
		return c
	}

	return Lexicographic(m.codomain, o.codomain)
}
