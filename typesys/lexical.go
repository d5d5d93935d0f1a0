// SPDX-License-Identifier: MIT

package typesys

import (
	"cmp"
	"slices"
)

// Lexicographic is a total order on types for deterministic storage, e.g.
// sorting the symbols of a signature. Priorities form coarse buckets; ties
// inside a bucket are broken structurally.
//
// The order is only semi-consistent with Equal (fundamentals over distinct
// classes sharing a name tie) and says nothing about the subtype order.
func Lexicographic(a, b Type) int {
	if c := cmp.Compare(a.priority(), b.priority()); c != 0 {
		return c
	}

	return a.lexTie(b)
}

// SortLexicographic sorts ts in place by Lexicographic. The sort is stable.
func SortLexicographic(ts []Type) {
	slices.SortStableFunc(ts, Lexicographic)
}

// lexSequence orders by length first, then element-wise.
func lexSequence(xs, ys []Type) int {
	if c := cmp.Compare(len(xs), len(ys)); c != 0 {
		return c
	}
	for i := range xs {
		if c := Lexicographic(xs[i], ys[i]); c != 0 {
			return c
		}
	}

	return 0
}
