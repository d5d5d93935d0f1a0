// SPDX-License-Identifier: MIT

package typesys

// Order is the outcome of a successful subtype comparison.
type Order int

const (
	// Less means the left type is a proper subtype of the right one.
	Less Order = -1
	// Same means both types denote the same element of the lattice.
	Same Order = 0
	// Greater means the left type is a proper supertype of the right one.
	Greater Order = 1
)

// Reverse returns the order seen from the other operand.
func (o Order) Reverse() Order { return -o }

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case Less:
		return "less"
	case Same:
		return "same"
	case Greater:
		return "greater"
	default:
		return "invalid"
	}
}
