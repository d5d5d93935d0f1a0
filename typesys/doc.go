// SPDX-License-Identifier: MIT

// Package typesys implements a structural subtype lattice for a typed
// term/logic algebra: a closed set of type forms, a partial subtype order,
// canonicalizing constructors, a membership predicate and a total
// lexicographic order.
//
// 🚀 What is in the lattice?
//
//	universal (⊤)     supertype of everything
//	absurd (⊥)        subtype of everything, empty extension
//	kind (*)          the type of types, comparable only to itself
//	void              unit type, identity domain of nullary maps
//	Fundamental       wraps a host Class (Go types via ClassOf, nominal
//	                  classes via package hierarchy)
//	Special           opaque nominal type, equal only to itself
//	Map               σ → τ, contravariant in σ, covariant in τ
//	Product           ordered tuple (σ, τ, ...)
//	Infimum           meet σ & τ
//	Supremum          join σ | τ
//	Collection        collection<τ>, set<τ>, list<τ>
//
// ✨ Comparison protocol:
//
//	Every variant carries a fixed priority. Compare(a, b) asks the side with
//	the higher priority to place itself against the other and reverses the
//	answer when b ranked higher, so no variant needs to know every other.
//	ErrIncomparable is a normal outcome of that question; SubtypeOf folds it
//	into false.
//
// ⚙️ Usage:
//
//	ts := typesys.Default()
//	num := ts.Fundamental(typesys.ClassOf[int](), "Integer")
//	pred, _ := ts.Map(num, ts.Truth())
//	ok, err := typesys.SubtypeOf(pred, ts.Universal())
//
//	ints := ts.List(num)
//	in, _ := ints.Apply([]int{1, 2, 3}) // true
//
// Canonical forms:
//
//	Inf()        = universal       Sup()       = absurd
//	Inf(t)       = t               Sup(t)      = t
//	Inf(a, Inf(b, c)) = Inf(a, b, c)
//	Product()    = void            Product(a, absurd, b) = absurd
//	Map(void, τ) = τ               Map(σ, absurd) = absurd
//
// Concurrency:
//
//	Types are immutable; share them freely. System carries only configuration.
//
// Known restrictions:
//   - Products compare only when every differing component points the same
//     way; mixed directions are incomparable.
//   - Collections compare only within one kind; set<τ> and collection<τ> are
//     unrelated.
//   - Maps from absurd are rejected (ErrAbsurdDomain).
package typesys
