// SPDX-License-Identifier: MIT
// Package typesys: sentinel error set.
// This file defines ONLY package-level sentinel errors. Callers match them via
// errors.Is; context is attached at the boundary with fmt.Errorf("...: %w", ErrX).
//
// Two channels are kept apart:
//   - ErrIncomparable is an expected outcome of Compare. SubtypeOf recovers it
//     locally as false and it is never logged.
//   - Every other sentinel reports a contract violation by the caller.

package typesys

import "errors"

var (
	// ErrIncomparable reports that the subtype order relates neither a ≤ b nor b ≤ a.
	// Returned bare (never wrapped) by Compare so hot paths can test it cheaply.
	ErrIncomparable = errors.New("typesys: incomparable types")

	// ErrUnsupportedComparison marks comparisons the lattice refuses to guess:
	// meet against meet, join against join, and meets/joins nesting the dual form.
	ErrUnsupportedComparison = errors.New("typesys: unsupported comparison")

	// ErrUnsupportedMembership is returned by Apply on types without an extension
	// check (special types).
	ErrUnsupportedMembership = errors.New("typesys: membership not supported")

	// ErrAbsurdDomain rejects maps from absurdity; their meaning is left open.
	ErrAbsurdDomain = errors.New("typesys: map from absurd domain not supported")

	// ErrNotInDomain is returned by On when the argument type is not a subtype of
	// the function's domain.
	ErrNotInDomain = errors.New("typesys: argument not in domain")

	// ErrNilType indicates a nil Type was handed to a constructor.
	ErrNilType = errors.New("typesys: nil type")

	// ErrNilClass indicates a nil Class was handed to Fundamental, ReflectClass
	// or a class registry.
	ErrNilClass = errors.New("typesys: nil class")
)
