// SPDX-License-Identifier: MIT

// Package typecodec persists typesys types as YAML or JSON documents.
//
// Types are written as a tree of Node values tagged by variant:
//
//	variant: map
//	domain:
//	  variant: fundamental
//	  class: int
//	  name: Integer
//	codomain:
//	  variant: fundamental
//	  class: bool
//	  name: truth
//
// Decoding never allocates singletons: universal, absurd, kind and void come
// back as the canonical instances of package typesys, and composites are
// rebuilt through System constructors, so a decoded type is always in
// canonical form. Fundamental classes are resolved by name through a
// Registry; classes of a hierarchy.Hierarchy can be registered wholesale.
package typecodec
