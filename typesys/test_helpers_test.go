// SPDX-License-Identifier: MIT
// Package typesys_test contains fixtures shared by the typesys tests.
//
// Purpose:
//   - Provide a small, fixed universe of types covering every variant.
//   - Keep Go host classes in one place so subtype relations are obvious:
//     Square ≤ Shape ≤ any, Square ≤ fmt.Stringer, int and string unrelated.

package typesys_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtype/typesys"
)

// Shape is a host interface class.
type Shape interface {
	Area() float64
}

// Square implements Shape and fmt.Stringer.
type Square struct{ Side float64 }

func (s Square) Area() float64  { return s.Side * s.Side }
func (s Square) String() string { return fmt.Sprintf("square(%g)", s.Side) }

// IntSlice is assignable to and from []int without being []int.
type IntSlice []int

// namedClass is a nominal class equal only to itself, whatever its name.
type namedClass struct{ name string }

func (c *namedClass) Name() string                          { return c.name }
func (c *namedClass) AssignableTo(other typesys.Class) bool { return other == typesys.Class(c) }
func (c *namedClass) IsInstance(any) bool                   { return false }

// typedFn is a first-class function value carrying a declared type.
type typedFn struct {
	typ typesys.Type
}

func (f typedFn) DeclaredType() typesys.Type { return f.typ }

var (
	ts = typesys.Default()

	Integer  = ts.Fundamental(typesys.ClassOf[int](), "Integer")
	Text     = ts.Fundamental(typesys.ClassOf[string](), "Text")
	Real     = ts.Fundamental(typesys.ClassOf[float64](), "Real")
	ShapeT   = ts.Fundamental(typesys.ClassOf[Shape](), "Shape")
	SquareT  = ts.Fundamental(typesys.ClassOf[Square](), "Square")
	Stringer = ts.Fundamental(typesys.ClassOf[fmt.Stringer](), "Stringer")
	Ints     = ts.Fundamental(typesys.ClassOf[[]int](), "")
	IntsT    = ts.Fundamental(typesys.ClassOf[IntSlice](), "")

	Red  = ts.Special("red")
	Blue = ts.Special("blue")
)

// sample RETURNS a mixed set of canonical types covering every variant.
func sample() []typesys.Type {
	return []typesys.Type{
		ts.Universal(),
		ts.Absurd(),
		ts.NoType(),
		ts.Kind(),
		Integer,
		Text,
		ShapeT,
		SquareT,
		ts.Individual(),
		ts.Truth(),
		Red,
		Blue,
		ts.MustMap(ShapeT, ts.Truth()),
		ts.MustMap(SquareT, ts.Truth()),
		ts.MustMap(Integer, Text),
		ts.Product(Integer, Text),
		ts.Product(SquareT, SquareT),
		ts.Product(ShapeT, ShapeT),
		ts.Product(Integer, Integer, Integer),
		ts.Inf(ShapeT, Stringer),
		ts.Sup(Integer, Text),
		ts.List(Integer),
		ts.Set(Integer),
		ts.Collection(ShapeT),
		ts.List(SquareT),
		Ints,
		IntsT,
	}
}

// newBufferLogger RETURNS a debug-level logger writing into the returned buffer.
func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return l, &buf
}

// mustCompare RETURNS Compare(a, b), failing the test on error.
func mustCompare(t *testing.T, a, b typesys.Type) typesys.Order {
	t.Helper()
	o, err := typesys.Compare(a, b)
	require.NoError(t, err, "Compare(%s, %s)", a, b)

	return o
}

// requireIncomparable asserts Compare(a, b) fails with ErrIncomparable both ways.
func requireIncomparable(t *testing.T, a, b typesys.Type) {
	t.Helper()
	_, err := typesys.Compare(a, b)
	require.ErrorIs(t, err, typesys.ErrIncomparable, "Compare(%s, %s)", a, b)
	_, err = typesys.Compare(b, a)
	require.ErrorIs(t, err, typesys.ErrIncomparable, "Compare(%s, %s)", b, a)
}

// unsupported reports whether err marks a refused comparison.
func unsupported(err error) bool {
	return errors.Is(err, typesys.ErrUnsupportedComparison)
}
