// SPDX-License-Identifier: MIT
//
// File: extremal.go
// Role: The four canonical singletons: universal (⊤), absurd (⊥), kind (*), void.
// Policy:
//   - Each singleton is allocated once at package initialisation.
//   - Equality is identity; decoders must hand back these exact pointers.

package typesys

// Universal is the top of the lattice: every type is a subtype of it.
type Universal struct{ name string }

// Absurd is the bottom of the lattice: its extension is empty.
type Absurd struct{ name string }

// Kind is the type of types. It is only comparable to itself.
type Kind struct{ name string }

// NoType is the unit type, the identity domain of nullary maps.
type NoType struct{ name string }

var (
	universal = &Universal{name: "universal"}
	absurd    = &Absurd{name: "absurd"}
	kind      = &Kind{name: "kind"}
	noType    = &NoType{name: "void"}
)

// IsSingleton reports whether t is one of the four canonical singletons.
func IsSingleton(t Type) bool {
	switch t.(type) {
	case *Universal, *Absurd, *Kind, *NoType:
		return true
	}

	return false
}

// bound settles comparisons against ⊤ and ⊥, which every variant ranked above
// them must answer itself.
func bound(other Type) (Order, bool) {
	switch other.(type) {
	case *Universal:
		return Less, true
	case *Absurd:
		return Greater, true
	}

	return Same, false
}

// ---------- Universal ----------

func (u *Universal) String() string        { return u.name }
func (u *Universal) Equal(other Type) bool { return other == Type(u) }
func (u *Universal) Hash() uint64          { return hashSeed(priorityUniversal) }
func (u *Universal) Apply(any) (bool, error) {
	return true, nil
}
func (u *Universal) Domain() Type   { return noType }
func (u *Universal) Codomain() Type { return u }
func (u *Universal) priority() int  { return priorityUniversal }
func (u *Universal) lexTie(Type) int {
	return 0
}

// compareSemi is only reached with another universal.
func (u *Universal) compareSemi(other Type) (Order, error) {
	if _, ok := other.(*Universal); ok {
		return Same, nil
	}

	return Same, ErrIncomparable
}

// ---------- Absurd ----------

func (a *Absurd) String() string        { return a.name }
func (a *Absurd) Equal(other Type) bool { return other == Type(a) }
func (a *Absurd) Hash() uint64          { return hashSeed(priorityAbsurd) }
func (a *Absurd) Apply(any) (bool, error) {
	return false, nil
}
func (a *Absurd) Domain() Type   { return noType }
func (a *Absurd) Codomain() Type { return a }
func (a *Absurd) priority() int  { return priorityAbsurd }
func (a *Absurd) lexTie(Type) int {
	return 0
}

func (a *Absurd) compareSemi(other Type) (Order, error) {
	switch other.(type) {
	case *Absurd:
		return Same, nil
	case *Universal:
		return Less, nil
	}

	return Same, ErrIncomparable
}

// ---------- Kind ----------

func (k *Kind) String() string        { return k.name }
func (k *Kind) Equal(other Type) bool { return other == Type(k) }
func (k *Kind) Hash() uint64          { return hashSeed(priorityKind) }

// Apply accepts types and other predicate-like classifiers.
func (k *Kind) Apply(v any) (bool, error) {
	_, ok := v.(Predicate)

	return ok, nil
}
func (k *Kind) Domain() Type   { return noType }
func (k *Kind) Codomain() Type { return k }
func (k *Kind) priority() int  { return priorityKind }
func (k *Kind) lexTie(Type) int {
	return 0
}

// compareSemi: kind lives outside the ordinary lattice, so not even ⊤ and ⊥
// relate to it.
func (k *Kind) compareSemi(other Type) (Order, error) {
	if _, ok := other.(*Kind); ok {
		return Same, nil
	}

	return Same, ErrIncomparable
}

// ---------- NoType ----------

func (n *NoType) String() string        { return n.name }
func (n *NoType) Equal(other Type) bool { return other == Type(n) }
func (n *NoType) Hash() uint64          { return hashSeed(priorityNoType) }

// Apply accepts only Nothing.
func (n *NoType) Apply(v any) (bool, error) {
	_, ok := v.(Unit)

	return ok, nil
}
func (n *NoType) Domain() Type   { return n }
func (n *NoType) Codomain() Type { return n }
func (n *NoType) priority() int  { return priorityNoType }
func (n *NoType) lexTie(Type) int {
	return 0
}

func (n *NoType) compareSemi(other Type) (Order, error) {
	if _, ok := other.(*NoType); ok {
		return Same, nil
	}
	if o, ok := bound(other); ok {
		return o, nil
	}

	return Same, ErrIncomparable
}
