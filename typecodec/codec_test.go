// SPDX-License-Identifier: MIT

package typecodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtype/hierarchy"
	"github.com/katalvlaran/lvtype/typecodec"
	"github.com/katalvlaran/lvtype/typesys"
)

type Shape interface{ Area() float64 }

var (
	sys     = typesys.Default()
	integer = sys.Fundamental(typesys.ClassOf[int](), "Integer")
	text    = sys.Fundamental(typesys.ClassOf[string](), "")
	shape   = sys.Fundamental(typesys.ClassOf[Shape](), "Shape")
)

func newCodec(t *testing.T) *typecodec.Codec {
	t.Helper()
	c := typecodec.New()
	require.NoError(t, c.Registry().Register(typesys.ClassOf[Shape]()))

	return c
}

func roundTrip() []typesys.Type {
	return []typesys.Type{
		sys.Universal(),
		sys.Absurd(),
		sys.Kind(),
		sys.NoType(),
		integer,
		text,
		shape,
		sys.Truth(),
		sys.Individual(),
		sys.Special("red"),
		sys.MustMap(integer, sys.Truth()),
		sys.MustMap(sys.Product(integer, text), shape),
		sys.Product(integer, text, integer),
		sys.Inf(shape, integer),
		sys.Sup(integer, text, sys.Special("none")),
		sys.List(integer),
		sys.Set(sys.Sup(integer, text)),
		sys.Collection(sys.MustMap(shape, shape)),
	}
}

func TestCodec_YAMLRoundTrip(t *testing.T) {
	c := newCodec(t)
	for _, typ := range roundTrip() {
		data, err := c.EncodeYAML(typ)
		require.NoError(t, err, "encode %s", typ)

		got, err := c.DecodeYAML(data)
		require.NoError(t, err, "decode %s from:\n%s", typ, data)
		assert.True(t, typ.Equal(got), "%s came back as %s", typ, got)
		assert.Equal(t, typ.String(), got.String(), "display names survive")
	}
}

func TestCodec_JSONRoundTrip(t *testing.T) {
	c := newCodec(t)
	for _, typ := range roundTrip() {
		data, err := c.EncodeJSON(typ)
		require.NoError(t, err, "encode %s", typ)

		got, err := c.DecodeJSON(data)
		require.NoError(t, err, "decode %s from %s", typ, data)
		assert.True(t, typ.Equal(got), "%s came back as %s", typ, got)
		assert.Equal(t, typ.Hash(), got.Hash())
	}
}

func TestCodec_SingletonsStayCanonical(t *testing.T) {
	c := newCodec(t)
	for _, typ := range []typesys.Type{sys.Universal(), sys.Absurd(), sys.Kind(), sys.NoType()} {
		data, err := c.EncodeJSON(typ)
		require.NoError(t, err)
		got, err := c.DecodeJSON(data)
		require.NoError(t, err)
		assert.Same(t, typ, got, "decoding %s must not allocate a duplicate", typ)
	}

	// Also when nested.
	got, err := c.DecodeYAML([]byte(`
variant: collection
kind: list
element:
  variant: universal
`))
	require.NoError(t, err)
	assert.Same(t, sys.Universal(), got.(*typesys.Collection).Element())
}

func TestCodec_DecodeCanonicalizes(t *testing.T) {
	c := newCodec(t)

	got, err := c.DecodeYAML([]byte(`
variant: inf
components:
  - variant: fundamental
    class: int
  - variant: fundamental
    class: "interface {}"
`))
	require.NoError(t, err)
	assert.True(t, got.Equal(integer), "redundant meet component dropped, got %s", got)

	got, err = c.DecodeYAML([]byte(`
variant: map
domain:
  variant: void
codomain:
  variant: special
  signifier: ok
`))
	require.NoError(t, err)
	assert.True(t, got.Equal(sys.Special("ok")), "nullary map is its result, got %s", got)

	got, err = c.DecodeJSON([]byte(`{"variant":"product","components":[{"variant":"fundamental","class":"int"},{"variant":"absurd"}]}`))
	require.NoError(t, err)
	assert.Same(t, sys.Absurd(), got)

	_, err = c.DecodeJSON([]byte(`{"variant":"map","domain":{"variant":"absurd"},"codomain":{"variant":"universal"}}`))
	assert.ErrorIs(t, err, typesys.ErrAbsurdDomain)
}

func TestCodec_Errors(t *testing.T) {
	c := newCodec(t)

	cases := map[string]struct {
		doc  string
		want error
	}{
		"unknown variant":  {`{"variant":"tuple"}`, typecodec.ErrUnknownVariant},
		"empty variant":    {`{}`, typecodec.ErrUnknownVariant},
		"missing class":    {`{"variant":"fundamental"}`, typecodec.ErrMissingField},
		"unknown class":    {`{"variant":"fundamental","class":"main.Ghost"}`, typecodec.ErrUnknownClass},
		"missing codomain": {`{"variant":"map","domain":{"variant":"void"}}`, typecodec.ErrMissingField},
		"missing element":  {`{"variant":"collection","kind":"set"}`, typecodec.ErrMissingField},
		"unknown kind":     {`{"variant":"collection","kind":"bag","element":{"variant":"kind"}}`, typecodec.ErrUnknownKind},
		"unary product":    {`{"variant":"product","components":[{"variant":"kind"}]}`, typecodec.ErrMalformedArity},
		"empty sup":        {`{"variant":"sup"}`, typecodec.ErrMalformedArity},
		"nested bad node":  {`{"variant":"inf","components":[{"variant":"kind"},{"variant":"?"}]}`, typecodec.ErrUnknownVariant},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := c.DecodeJSON([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := c.DecodeJSON([]byte(`{"variant":`))
	assert.ErrorContains(t, err, "parse json")
	_, err = c.DecodeYAML([]byte("variant: [unclosed"))
	assert.ErrorContains(t, err, "parse yaml")

	_, err = c.Decode(nil)
	assert.ErrorIs(t, err, typecodec.ErrMissingField)
}

func TestCodec_EncodeRequiresRegisteredClass(t *testing.T) {
	c := typecodec.New()
	_, err := c.Encode(shape)
	assert.ErrorIs(t, err, typecodec.ErrUnknownClass, "Shape is not preloaded")

	_, err = c.Encode(sys.List(shape))
	assert.ErrorIs(t, err, typecodec.ErrUnknownClass, "nested failures surface")

	_, err = c.Encode(nil)
	assert.ErrorIs(t, err, typesys.ErrNilType)
}

func TestCodec_EncodeShape(t *testing.T) {
	c := newCodec(t)

	n, err := c.Encode(sys.MustMap(integer, text))
	require.NoError(t, err)
	assert.Equal(t, &typecodec.Node{
		Variant:  typecodec.VariantMap,
		Domain:   &typecodec.Node{Variant: typecodec.VariantFundamental, Class: "int", Name: "Integer"},
		Codomain: &typecodec.Node{Variant: typecodec.VariantFundamental, Class: "string"},
	}, n)

	data, err := c.EncodeJSON(sys.Set(sys.Special("red")))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"variant":"collection","kind":"set","element":{"variant":"special","signifier":"red"}}`,
		string(data))

	data, err = c.EncodeYAML(sys.NoType())
	require.NoError(t, err)
	assert.YAMLEq(t, "variant: void\n", string(data))
}

func TestRegistry(t *testing.T) {
	r := typecodec.NewRegistry()

	c, err := r.Resolve("int")
	require.NoError(t, err)
	assert.Equal(t, typesys.ClassOf[int](), c)

	_, err = r.Resolve("Dog")
	assert.ErrorIs(t, err, typecodec.ErrUnknownClass)

	require.NoError(t, r.Register(typesys.ClassOf[int]()), "re-registering the same class is a no-op")
	assert.NotPanics(t, func() {
		assert.ErrorIs(t, r.Register(nil), typesys.ErrNilClass)
	})

	h := hierarchy.New(hierarchy.WithRoot("Thing"))
	_, err = h.Declare("Dog")
	require.NoError(t, err)
	require.NoError(t, r.RegisterHierarchy(h))

	c, err = r.Resolve("Dog")
	require.NoError(t, err)
	assert.Same(t, h.MustLookup("Dog"), c)

	// A second hierarchy reusing the name collides.
	other := hierarchy.New()
	_, err = other.Declare("Dog")
	require.NoError(t, err)
	assert.ErrorIs(t, r.RegisterHierarchy(other), typecodec.ErrDuplicateClass)
}

func TestCodec_HierarchyRoundTrip(t *testing.T) {
	h := hierarchy.New(hierarchy.WithRoot("Thing"))
	_, err := h.Declare("Animal")
	require.NoError(t, err)
	_, err = h.Declare("Dog", "Animal")
	require.NoError(t, err)

	c := typecodec.New(typecodec.WithSystem(typesys.New()))
	require.NoError(t, c.Registry().RegisterHierarchy(h))

	dog := sys.Fundamental(h.MustLookup("Dog"), "")
	animal := sys.Fundamental(h.MustLookup("Animal"), "")
	pred := sys.MustMap(animal, sys.Truth())

	data, err := c.EncodeYAML(pred)
	require.NoError(t, err)
	got, err := c.DecodeYAML(data)
	require.NoError(t, err)
	require.True(t, pred.Equal(got))

	out, err := typesys.On(got, dog)
	require.NoError(t, err)
	assert.True(t, out.Equal(sys.Truth()))
}
