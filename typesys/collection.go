// SPDX-License-Identifier: MIT

package typesys

import "cmp"

// CollectionKind tags the container shape of a Collection.
type CollectionKind uint8

const (
	// AnyCollection accepts any supported container.
	AnyCollection CollectionKind = iota
	// SetCollection accepts unordered containers: Go maps (keys are the
	// elements) and hashicorp/go-set collections.
	SetCollection
	// ListCollection accepts Go slices and arrays.
	ListCollection
)

// String implements fmt.Stringer.
func (k CollectionKind) String() string {
	switch k {
	case AnyCollection:
		return "collection"
	case SetCollection:
		return "set"
	case ListCollection:
		return "list"
	default:
		return "invalid"
	}
}

// Collection is a homogeneous container type parametrized by its element type.
type Collection struct {
	kind    CollectionKind
	element Type
}

// Kind returns the container tag.
func (c *Collection) Kind() CollectionKind { return c.kind }

// Element returns the element type.
func (c *Collection) Element() Type { return c.element }

func (c *Collection) String() string {
	return c.kind.String() + "<" + c.element.String() + ">"
}

func (c *Collection) Equal(other Type) bool {
	o, ok := other.(*Collection)

	return ok && c.kind == o.kind && c.element.Equal(o.element)
}

func (c *Collection) Hash() uint64 {
	h := mix(hashSeed(priorityCollection), uint64(c.kind))

	return mix(h, c.element.Hash())
}

// Apply requires v to be a container of the tagged kind whose every element
// satisfies the element type.
func (c *Collection) Apply(v any) (bool, error) {
	if err := checkMembership(c); err != nil {
		return false, err
	}
	elems, ok := containerElements(c.kind, v)
	if !ok {
		return false, nil
	}
	for _, e := range elems {
		in, err := c.element.Apply(e)
		if err != nil || !in {
			return false, err
		}
	}

	return true, nil
}

func (c *Collection) Domain() Type   { return noType }
func (c *Collection) Codomain() Type { return c }
func (c *Collection) priority() int  { return priorityCollection }

// compareSemi relates collections of the same kind through their elements.
// Cross-kind subsumption (set ≤ collection) is deliberately not defined.
func (c *Collection) compareSemi(other Type) (Order, error) {
	if o, ok := bound(other); ok {
		return o, nil
	}
	o, ok := other.(*Collection)
	if !ok || o.kind != c.kind {
		return Same, ErrIncomparable
	}

	return Compare(c.element, o.element)
}

func (c *Collection) lexTie(other Type) int {
	o := other.(*Collection)
	if k := cmp.Compare(c.kind, o.kind); k != 0 {
		return k
	}

	return Lexicographic(c.element, o.element)
}
