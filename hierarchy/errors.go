// SPDX-License-Identifier: MIT
// Package hierarchy: sentinel error set.
// Every message is prefixed with "hierarchy: ..."; match with errors.Is.

package hierarchy

import "errors"

var (
	// ErrEmptyName indicates a class was declared with an empty name.
	ErrEmptyName = errors.New("hierarchy: class name is empty")

	// ErrDuplicateClass indicates the class name is already declared.
	ErrDuplicateClass = errors.New("hierarchy: class already declared")

	// ErrUnknownClass indicates an operation referenced an undeclared class.
	ErrUnknownClass = errors.New("hierarchy: unknown class")

	// ErrCycle indicates a declaration would make the hierarchy cyclic.
	ErrCycle = errors.New("hierarchy: cyclic extension")
)
