// SPDX-License-Identifier: MIT
//
// File: membership.go
// Role: Reflection helpers that expose Go containers to Apply.

package typesys

import (
	"fmt"
	"reflect"
)

// sequence returns the elements of a slice or array in order.
func sequence(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}

		return out, true
	}

	return nil, false
}

// members returns the elements of an unordered container: the keys of a Go
// map, or the items of a hashicorp/go-set collection (anything exposing
// Contains and a Slice() method returning a slice).
func members(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		out := make([]any, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, iter.Key().Interface())
		}

		return out, true
	}
	if !rv.MethodByName("Contains").IsValid() {
		return nil, false
	}
	slice := rv.MethodByName("Slice")
	if !slice.IsValid() {
		return nil, false
	}
	st := slice.Type()
	if st.NumIn() != 0 || st.NumOut() != 1 || st.Out(0).Kind() != reflect.Slice {
		return nil, false
	}

	return sequence(slice.Call(nil)[0].Interface())
}

func containerElements(kind CollectionKind, v any) ([]any, bool) {
	switch kind {
	case ListCollection:
		return sequence(v)
	case SetCollection:
		return members(v)
	default:
		if elems, ok := sequence(v); ok {
			return elems, true
		}

		return members(v)
	}
}

// checkMembership fails when t holds a Special anywhere Apply could reach it,
// so the outcome never depends on component order or on the value.
// Map domains and codomains are not reached: maps test a declared type.
func checkMembership(t Type) error {
	switch x := t.(type) {
	case *Special:
		return fmt.Errorf("special type %s: %w", x, ErrUnsupportedMembership)
	case *Product:
		return checkMembers(x.components)
	case *Infimum:
		return checkMembers(x.components)
	case *Supremum:
		return checkMembers(x.components)
	case *Collection:
		return checkMembership(x.element)
	}

	return nil
}

func checkMembers(ts []Type) error {
	for _, t := range ts {
		if err := checkMembership(t); err != nil {
			return err
		}
	}

	return nil
}
