// Package lvtype is a small library of type-lattice primitives for typed
// term and logic algebras: from the lattice itself to nominal class
// hierarchies and persistence.
//
// 🚀 What is lvtype?
//
//	A pure-Go, immutable, concurrency-friendly subtype lattice:
//		• Extremal types: universal (⊤), absurd (⊥), kind, void
//		• Atoms: fundamental (host class) and special (nominal) types
//		• Composites: maps, products, meets, joins, collections
//		• Canonicalizing constructors and a membership predicate
//		• A total lexicographic order for deterministic storage
//
// Under the hood, everything is organized under three subpackages:
//
//	typesys/   - the Type variants, comparison protocol, constructors
//	hierarchy/ - thread-safe nominal class DAGs usable as fundamental classes
//	typecodec/ - YAML/JSON persistence that re-canonicalizes on decode
//
// Quick example:
//
//	ts := typesys.Default()
//	red, blue := ts.Special("red"), ts.Special("blue")
//	colour := ts.Sup(red, blue)     // ("blue" | "red")
//
//	go get github.com/katalvlaran/lvtype
package lvtype
