// SPDX-License-Identifier: MIT

package typesys

import (
	"fmt"
	"reflect"
)

// Class is the host classification wrapped by a fundamental type.
//
// Implementations must be comparable with == (pointers or small value
// structs), since fundamental types compare their classes by identity.
type Class interface {
	// Name identifies the class; it drives lexicographic ordering.
	Name() string

	// AssignableTo reports whether every instance of the receiver is usable
	// where other is expected. It must be reflexive.
	AssignableTo(other Class) bool

	// IsInstance is the host-level instance-of check.
	IsInstance(v any) bool
}

// goClass classifies Go values by their dynamic reflect.Type.
type goClass struct {
	t reflect.Type
}

// ReflectClass returns the Class of Go values assignable to t.
// Subclassing mirrors reflect.Type.AssignableTo, so an interface type is a
// superclass of every type implementing it. Panics on nil t.
func ReflectClass(t reflect.Type) Class {
	if t == nil {
		panic(fmt.Errorf("ReflectClass: %w", ErrNilClass))
	}

	return goClass{t: t}
}

// ClassOf returns the Class of Go values assignable to T.
//
//	ClassOf[int]()  // integers
//	ClassOf[any]()  // every Go value
func ClassOf[T any]() Class {
	return ReflectClass(reflect.TypeFor[T]())
}

func (c goClass) Name() string { return c.t.String() }

func (c goClass) AssignableTo(other Class) bool {
	o, ok := other.(goClass)

	return ok && c.t.AssignableTo(o.t)
}

// IsInstance treats untyped nil as a member of interface classes only.
func (c goClass) IsInstance(v any) bool {
	if v == nil {
		return c.t.Kind() == reflect.Interface
	}

	return reflect.TypeOf(v).AssignableTo(c.t)
}

// Type returns the wrapped reflect.Type.
func (c goClass) Type() reflect.Type { return c.t }
