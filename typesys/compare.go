// SPDX-License-Identifier: MIT
//
// File: compare.go
// Role: The priority-ranked comparison protocol and the predicates built on it.
// Policy:
//   - The variant with the higher priority authors the answer; the other
//     side receives it reversed, so Compare(a, b) == Compare(b, a).Reverse()
//     whenever both are defined.
//   - ErrIncomparable is a normal outcome and is returned bare.

package typesys

import (
	"errors"
	"fmt"
)

// Compare places a and b in the subtype order.
//
// Implementation:
//   - Stage 1: structurally equal types are Same.
//   - Stage 2: the side with the higher Priority compares itself against the
//     other; if b ranks higher, its answer is reversed.
//
// Errors:
//   - ErrIncomparable when neither a ≤ b nor b ≤ a.
//   - ErrUnsupportedComparison (wrapped) for meet/join pairs the lattice refuses.
//
// Complexity:
//   - O(size(a) · size(b)) in the worst case for nested meets and joins.
func Compare(a, b Type) (Order, error) {
	if a.Equal(b) {
		return Same, nil
	}
	if a.priority() >= b.priority() {
		return a.compareSemi(b)
	}
	o, err := b.compareSemi(a)
	if err != nil {
		return Same, err
	}

	return o.Reverse(), nil
}

// SubtypeOf reports whether a ≤ b. Incomparable types yield false; only
// unsupported comparisons surface as errors.
func SubtypeOf(a, b Type) (bool, error) {
	o, err := Compare(a, b)
	if err != nil {
		if errors.Is(err, ErrIncomparable) {
			return false, nil
		}

		return false, err
	}

	return o <= Same, nil
}

// On applies the function type t to an argument type at the type level: it
// returns t's codomain when arg is a subtype of t's domain.
//
// Non-map types are nullary maps, so On(t, void) returns t.
func On(t, arg Type) (Type, error) {
	ok, err := SubtypeOf(arg, t.Domain())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s does not accept %s", ErrNotInDomain, t, arg)
	}

	return t.Codomain(), nil
}
