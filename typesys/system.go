// SPDX-License-Identifier: MIT
//
// File: system.go
// Role: The type-system handle: singletons plus canonicalizing constructors.
// Policy:
//   - Constructors are pure; the only state is configuration (logger).
//   - Every composite leaving this file satisfies the lattice invariants:
//     no 0/1-ary products, meets or joins; meets/joins flat and reduced;
//     maps never from void or absurd and never into absurd.

package typesys

import (
	"fmt"
	"log/slog"
)

// System exposes the canonical singletons and the constructors of the lattice.
// A System is safe for concurrent use.
type System struct {
	logger *slog.Logger
}

// New creates a System configured by opts.
func New(opts ...Option) *System {
	o := gatherOptions(opts)

	return &System{logger: o.logger}
}

var defaultSystem = New()

// Default returns the shared System with default options.
func Default() *System { return defaultSystem }

// Predefined fundamentals.
var (
	individual = &Fundamental{class: ClassOf[any](), name: "individual"}
	truth      = &Fundamental{class: ClassOf[bool](), name: "truth"}
)

// Universal returns ⊤.
func (s *System) Universal() Type { return universal }

// Absurd returns ⊥.
func (s *System) Absurd() Type { return absurd }

// Kind returns the type of types.
func (s *System) Kind() Type { return kind }

// NoType returns the void type.
func (s *System) NoType() Type { return noType }

// Individual returns the fundamental type of all Go values.
func (s *System) Individual() *Fundamental { return individual }

// Truth returns the fundamental type of truth values (Go bool).
func (s *System) Truth() *Fundamental { return truth }

// Fundamental wraps class. An empty name displays the class name.
// Panics on a nil class.
func (s *System) Fundamental(class Class, name string) *Fundamental {
	if class == nil {
		panic(fmt.Errorf("Fundamental: %w", ErrNilClass))
	}
	if name == "" {
		name = class.Name()
	}

	return &Fundamental{class: class, name: name}
}

// Special returns the nominal type named signifier.
func (s *System) Special(signifier string) *Special {
	return &Special{signifier: signifier}
}

// Map returns the function type domain → codomain.
//
// Behavior highlights:
//   - Map(void, τ) = τ (nullary maps are their result).
//   - Map(σ, absurd) = absurd, for every σ (absurd included).
//   - Map(absurd, τ) is otherwise rejected with ErrAbsurdDomain.
func (s *System) Map(domain, codomain Type) (Type, error) {
	mustTypes("Map", domain, codomain)
	switch {
	case codomain == Type(absurd):
		s.logger.Debug("typesys: map into absurd collapsed", "domain", domain.String())

		return absurd, nil
	case domain == Type(absurd):
		return nil, fmt.Errorf("%w: (%s -> %s)", ErrAbsurdDomain, domain, codomain)
	case domain == Type(noType):
		return codomain, nil
	}

	return &Map{domain: domain, codomain: codomain}, nil
}

// MustMap is like Map but panics on error.
func (s *System) MustMap(domain, codomain Type) Type {
	t, err := s.Map(domain, codomain)
	if err != nil {
		panic(err)
	}

	return t
}

// Product returns the tuple type of components.
//
// Behavior highlights:
//   - Strict: any absurd component makes the product absurd.
//   - No components yield void; a single component is returned as is.
func (s *System) Product(components ...Type) Type {
	mustTypes("Product", components...)
	for _, c := range components {
		if c == Type(absurd) {
			s.logger.Debug("typesys: product with absurd component collapsed", "arity", len(components))

			return absurd
		}
	}
	switch len(components) {
	case 0:
		return noType
	case 1:
		return components[0]
	}

	return &Product{components: append([]Type(nil), components...)}
}

// Inf returns the meet of components: nested meets are absorbed, and of two
// comparable components only the more specific survives.
// No components yield ⊤; a single survivor is returned as is.
func (s *System) Inf(components ...Type) Type {
	mustTypes("Inf", components...)
	cs := s.reduce(meet, components)
	switch len(cs) {
	case 0:
		return universal
	case 1:
		return cs[0]
	}

	return &Infimum{components: cs}
}

// Sup returns the join of components: nested joins are absorbed, and of two
// comparable components only the more general survives.
// No components yield ⊥; a single survivor is returned as is.
func (s *System) Sup(components ...Type) Type {
	mustTypes("Sup", components...)
	cs := s.reduce(join, components)
	switch len(cs) {
	case 0:
		return absurd
	case 1:
		return cs[0]
	}

	return &Supremum{components: cs}
}

// CollectionOf returns the container type of the given kind over element.
// Panics on an unknown kind.
func (s *System) CollectionOf(k CollectionKind, element Type) *Collection {
	mustTypes("CollectionOf", element)
	if k > ListCollection {
		panic(fmt.Sprintf("typesys: CollectionOf: unknown collection kind %d", k))
	}

	return &Collection{kind: k, element: element}
}

// Collection returns collection<element>.
func (s *System) Collection(element Type) *Collection {
	return s.CollectionOf(AnyCollection, element)
}

// Set returns set<element>.
func (s *System) Set(element Type) *Collection {
	return s.CollectionOf(SetCollection, element)
}

// List returns list<element>.
func (s *System) List(element Type) *Collection {
	return s.CollectionOf(ListCollection, element)
}

func mustTypes(op string, ts ...Type) {
	for i, t := range ts {
		if t == nil {
			panic(fmt.Errorf("%s: argument %d: %w", op, i, ErrNilType))
		}
	}
}
