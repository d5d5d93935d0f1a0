// SPDX-License-Identifier: MIT
//
// File: type.go
// Role: The sealed Type interface, comparison priorities and hashing helpers.
// Policy:
//   - Only this package implements Type (unexported methods seal the set).
//   - Priorities are pairwise distinct; lexTie relies on that.

package typesys

import "hash/fnv"

// Type is implemented by every member of the lattice.
//
// Values are immutable once built by a System constructor and may be shared
// across goroutines without locking. Two types are interchangeable iff Equal
// reports true; only the four singletons (universal, absurd, kind, void) are
// compared by identity.
type Type interface {
	// String returns a human-readable rendering of the type.
	String() string

	// Equal reports structural equality (variant and field equality).
	Equal(other Type) bool

	// Hash returns a hash consistent with Equal.
	Hash() uint64

	// Apply reports whether v belongs to the extension of the type.
	// Types without a membership check return ErrUnsupportedMembership.
	Apply(v any) (bool, error)

	// Domain returns the argument type. Types that are not maps behave as
	// nullary maps and return the void type.
	Domain() Type

	// Codomain returns the result type. Types that are not maps return themselves.
	Codomain() Type

	// priority ranks the variant; the higher side of a pair authors the comparison.
	priority() int

	// compareSemi compares the receiver with other. Callers guarantee that
	// other.priority() <= receiver.priority().
	compareSemi(other Type) (Order, error)

	// lexTie breaks lexicographic ties; other is always the same variant.
	lexTie(other Type) int
}

// Typed is implemented by first-class function or relation values that carry
// a declared type. Map membership consults it.
type Typed interface {
	DeclaredType() Type
}

// Predicate is implemented by classifiers. Every Type is a Predicate; the kind
// type accepts any Predicate as a member.
type Predicate interface {
	Apply(v any) (bool, error)
}

// Unit is the type of Nothing, the single value of the void type.
type Unit struct{}

// Nothing is the canonical "no value" marker accepted by the void type.
var Nothing = Unit{}

// Comparison priorities. The variant with the higher priority gets first
// refusal in Compare.
const (
	priorityUniversal   = 0
	priorityAbsurd      = 10
	priorityNoType      = 20
	priorityFundamental = 40
	priorityCollection  = 45
	priorityMap         = 50
	priorityProduct     = 60
	priorityInfimum     = 70
	prioritySupremum    = 80
	prioritySpecial     = 90
	priorityKind        = 100
)

// Priority exposes the comparison priority of t's variant.
func Priority(t Type) int { return t.priority() }

// ---------- hashing (FNV-1a) ----------

const (
	hashOffset uint64 = 14695981039346656037
	hashPrime  uint64 = 1099511628211
)

func hashSeed(priority int) uint64 {
	return mix(hashOffset, uint64(priority))
}

func mix(h, v uint64) uint64 {
	return (h ^ v) * hashPrime
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))

	return h.Sum64()
}

func hashTypes(h uint64, ts []Type) uint64 {
	h = mix(h, uint64(len(ts)))
	for _, t := range ts {
		h = mix(h, t.Hash())
	}

	return h
}

func equalTypes(xs, ys []Type) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !xs[i].Equal(ys[i]) {
			return false
		}
	}

	return true
}
