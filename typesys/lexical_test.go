// SPDX-License-Identifier: MIT

package typesys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtype/typesys"
)

func TestLexicographic_TotalOrder(t *testing.T) {
	types := sample()
	for _, a := range types {
		assert.Zero(t, typesys.Lexicographic(a, a), "%s vs itself", a)
		for _, b := range types {
			ab, ba := typesys.Lexicographic(a, b), typesys.Lexicographic(b, a)
			assert.Equal(t, sign(ab), -sign(ba), "%s vs %s", a, b)
			if ab == 0 {
				assert.True(t, a.Equal(b), "distinct %s and %s tie", a, b)
			}
			for _, c := range types {
				if ab <= 0 && typesys.Lexicographic(b, c) <= 0 {
					assert.LessOrEqual(t, typesys.Lexicographic(a, c), 0, "%s ≤ %s ≤ %s", a, b, c)
				}
			}
		}
	}
}

func TestLexicographic_PriorityFirst(t *testing.T) {
	assert.Negative(t, typesys.Lexicographic(ts.Universal(), ts.Absurd()))
	assert.Negative(t, typesys.Lexicographic(Integer, ts.List(Integer)))
	assert.Positive(t, typesys.Lexicographic(ts.Kind(), Red))
	assert.Negative(t, typesys.Lexicographic(Blue, Red), "signifiers break ties")
	assert.Positive(t, typesys.Lexicographic(ts.List(Integer), ts.Set(Integer)), "collection kinds break ties")
	assert.Negative(t, typesys.Lexicographic(
		ts.Product(Integer, Text),
		ts.Product(Integer, Text, Integer)), "shorter products first")
}

func TestSortLexicographic(t *testing.T) {
	got := []typesys.Type{Red, ts.Kind(), Integer, ts.Universal(), Blue, ts.MustMap(Integer, Text)}
	typesys.SortLexicographic(got)

	want := []typesys.Type{ts.Universal(), Integer, ts.MustMap(Integer, Text), Blue, Red, ts.Kind()}
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "position %d: want %s, got %s", i, want[i], got[i])
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}

	return 0
}
