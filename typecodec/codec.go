// SPDX-License-Identifier: MIT

package typecodec

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtype/typesys"
)

// Option configures a Codec.
type Option func(*Codec)

// WithSystem rebuilds decoded composites through sys (and its logger).
func WithSystem(sys *typesys.System) Option {
	return func(c *Codec) {
		if sys != nil {
			c.sys = sys
		}
	}
}

// WithRegistry resolves fundamental classes through reg.
func WithRegistry(reg *Registry) Option {
	return func(c *Codec) {
		if reg != nil {
			c.reg = reg
		}
	}
}

// Codec converts between types and their Node, YAML and JSON forms.
type Codec struct {
	sys *typesys.System
	reg *Registry
}

// New returns a Codec over typesys.Default() and a fresh NewRegistry().
func New(opts ...Option) *Codec {
	c := &Codec{sys: typesys.Default(), reg: NewRegistry()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Registry returns the class registry used for fundamentals.
func (c *Codec) Registry() *Registry { return c.reg }

// Encode converts t to its Node tree. Fundamentals must have a registered
// class so the result can be decoded again.
func (c *Codec) Encode(t typesys.Type) (*Node, error) {
	switch x := t.(type) {
	case nil:
		return nil, fmt.Errorf("encode: %w", typesys.ErrNilType)
	case *typesys.Universal:
		return &Node{Variant: VariantUniversal}, nil
	case *typesys.Absurd:
		return &Node{Variant: VariantAbsurd}, nil
	case *typesys.Kind:
		return &Node{Variant: VariantKind}, nil
	case *typesys.NoType:
		return &Node{Variant: VariantVoid}, nil
	case *typesys.Fundamental:
		cls := x.Class()
		if reg, err := c.reg.Resolve(cls.Name()); err != nil || reg != cls {
			return nil, fmt.Errorf("encode %s: %w: %q", x, ErrUnknownClass, cls.Name())
		}
		n := &Node{Variant: VariantFundamental, Class: cls.Name()}
		if x.Name() != cls.Name() {
			n.Name = x.Name()
		}

		return n, nil
	case *typesys.Special:
		return &Node{Variant: VariantSpecial, Signifier: x.Signifier()}, nil
	case *typesys.Map:
		dom, err := c.Encode(x.Domain())
		if err != nil {
			return nil, err
		}
		cod, err := c.Encode(x.Codomain())
		if err != nil {
			return nil, err
		}

		return &Node{Variant: VariantMap, Domain: dom, Codomain: cod}, nil
	case *typesys.Product:
		return c.encodeComposite(VariantProduct, x.Components())
	case *typesys.Infimum:
		return c.encodeComposite(VariantInf, x.Components())
	case *typesys.Supremum:
		return c.encodeComposite(VariantSup, x.Components())
	case *typesys.Collection:
		elem, err := c.Encode(x.Element())
		if err != nil {
			return nil, err
		}

		return &Node{Variant: VariantCollection, Kind: x.Kind().String(), Element: elem}, nil
	}

	return nil, fmt.Errorf("encode %T: %w", t, ErrUnknownVariant)
}

func (c *Codec) encodeComposite(variant string, ts []typesys.Type) (*Node, error) {
	n := &Node{Variant: variant, Components: make([]*Node, len(ts))}
	for i, t := range ts {
		cn, err := c.Encode(t)
		if err != nil {
			return nil, err
		}
		n.Components[i] = cn
	}

	return n, nil
}

// Decode rebuilds the type described by n. Singletons resolve to the
// canonical instances; composites go through the System constructors.
func (c *Codec) Decode(n *Node) (typesys.Type, error) {
	if n == nil {
		return nil, fmt.Errorf("decode: %w: node", ErrMissingField)
	}
	switch n.Variant {
	case VariantUniversal:
		return c.sys.Universal(), nil
	case VariantAbsurd:
		return c.sys.Absurd(), nil
	case VariantKind:
		return c.sys.Kind(), nil
	case VariantVoid:
		return c.sys.NoType(), nil
	case VariantFundamental:
		if n.Class == "" {
			return nil, fmt.Errorf("decode fundamental: %w: class", ErrMissingField)
		}
		cls, err := c.reg.Resolve(n.Class)
		if err != nil {
			return nil, fmt.Errorf("decode fundamental: %w", err)
		}

		return c.sys.Fundamental(cls, n.Name), nil
	case VariantSpecial:
		return c.sys.Special(n.Signifier), nil
	case VariantMap:
		if n.Domain == nil || n.Codomain == nil {
			return nil, fmt.Errorf("decode map: %w: domain and codomain", ErrMissingField)
		}
		dom, err := c.Decode(n.Domain)
		if err != nil {
			return nil, err
		}
		cod, err := c.Decode(n.Codomain)
		if err != nil {
			return nil, err
		}

		return c.sys.Map(dom, cod)
	case VariantProduct:
		ts, err := c.decodeComponents(n)
		if err != nil {
			return nil, err
		}

		return c.sys.Product(ts...), nil
	case VariantInf:
		ts, err := c.decodeComponents(n)
		if err != nil {
			return nil, err
		}

		return c.sys.Inf(ts...), nil
	case VariantSup:
		ts, err := c.decodeComponents(n)
		if err != nil {
			return nil, err
		}

		return c.sys.Sup(ts...), nil
	case VariantCollection:
		if n.Element == nil {
			return nil, fmt.Errorf("decode collection: %w: element", ErrMissingField)
		}
		k, err := parseKind(n.Kind)
		if err != nil {
			return nil, err
		}
		elem, err := c.Decode(n.Element)
		if err != nil {
			return nil, err
		}

		return c.sys.CollectionOf(k, elem), nil
	}

	return nil, fmt.Errorf("decode: %w: %q", ErrUnknownVariant, n.Variant)
}

func (c *Codec) decodeComponents(n *Node) ([]typesys.Type, error) {
	if len(n.Components) < 2 {
		return nil, fmt.Errorf("decode %s: %w: got %d", n.Variant, ErrMalformedArity, len(n.Components))
	}
	ts := make([]typesys.Type, len(n.Components))
	for i, cn := range n.Components {
		t, err := c.Decode(cn)
		if err != nil {
			return nil, err
		}
		ts[i] = t
	}

	return ts, nil
}

func parseKind(s string) (typesys.CollectionKind, error) {
	for _, k := range []typesys.CollectionKind{typesys.AnyCollection, typesys.SetCollection, typesys.ListCollection} {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// EncodeYAML renders t as a YAML document.
func (c *Codec) EncodeYAML(t typesys.Type) ([]byte, error) {
	n, err := c.Encode(t)
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(n)
}

// DecodeYAML parses a YAML document produced by EncodeYAML.
func (c *Codec) DecodeYAML(data []byte) (typesys.Type, error) {
	var n Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("typecodec: parse yaml: %w", err)
	}

	return c.Decode(&n)
}

// EncodeJSON renders t as a JSON document.
func (c *Codec) EncodeJSON(t typesys.Type) ([]byte, error) {
	n, err := c.Encode(t)
	if err != nil {
		return nil, err
	}

	return json.Marshal(n)
}

// DecodeJSON parses a JSON document produced by EncodeJSON.
func (c *Codec) DecodeJSON(data []byte) (typesys.Type, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("typecodec: parse json: %w", err)
	}

	return c.Decode(&n)
}
