// SPDX-License-Identifier: MIT

package typesys

import (
	"fmt"
	"strings"
)

// Fundamental wraps a host Class. Its subtype order mirrors class assignability.
type Fundamental struct {
	class Class
	name  string
}

// Class returns the wrapped host class.
func (f *Fundamental) Class() Class { return f.class }

// Name returns the display name (the class name unless one was given).
func (f *Fundamental) Name() string { return f.name }

func (f *Fundamental) String() string { return f.name }

// Equal ignores the display name: two fundamentals over one class are the same type.
func (f *Fundamental) Equal(other Type) bool {
	o, ok := other.(*Fundamental)

	return ok && o.class == f.class
}

func (f *Fundamental) Hash() uint64 {
	return mix(hashSeed(priorityFundamental), hashString(f.class.Name()))
}

// Apply is the host instance-of check.
func (f *Fundamental) Apply(v any) (bool, error) {
	return f.class.IsInstance(v), nil
}

func (f *Fundamental) Domain() Type   { return noType }
func (f *Fundamental) Codomain() Type { return f }
func (f *Fundamental) priority() int  { return priorityFundamental }

func (f *Fundamental) compareSemi(other Type) (Order, error) {
	if o, ok := bound(other); ok {
		return o, nil
	}
	o, ok := other.(*Fundamental)
	if !ok {
		return Same, ErrIncomparable
	}

	return compareClasses(f.class, o.class)
}

// compareClasses orders two classes by assignability. Only identical classes
// are Same: distinct classes assignable both ways (a named slice and its
// underlying type, say) are incomparable.
func compareClasses(a, b Class) (Order, error) {
	if a == b {
		return Same, nil
	}
	below, above := a.AssignableTo(b), b.AssignableTo(a)
	switch {
	case below && above:
		return Same, ErrIncomparable
	case below:
		return Less, nil
	case above:
		return Greater, nil
	}

	return Same, ErrIncomparable
}

func (f *Fundamental) lexTie(other Type) int {
	o := other.(*Fundamental)
	if c := strings.Compare(f.class.Name(), o.class.Name()); c != 0 {
		return c
	}
	// Same name, different implementations: hierarchy classes vs Go types.
	if c := strings.Compare(fmt.Sprintf("%T", f.class), fmt.Sprintf("%T", o.class)); c != 0 {
		return c
	}

	return strings.Compare(f.name, o.name)
}
