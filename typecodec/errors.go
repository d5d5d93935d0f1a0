// SPDX-License-Identifier: MIT

package typecodec

import "errors"

var (
	// ErrUnknownVariant indicates a node whose variant tag is not recognised.
	ErrUnknownVariant = errors.New("typecodec: unknown variant")

	// ErrUnknownClass indicates a fundamental whose class is not registered.
	ErrUnknownClass = errors.New("typecodec: unknown class")

	// ErrDuplicateClass indicates a different class is already registered under the name.
	ErrDuplicateClass = errors.New("typecodec: class name already registered")

	// ErrMissingField indicates a node lacks a field its variant requires.
	ErrMissingField = errors.New("typecodec: missing field")

	// ErrMalformedArity indicates a product, meet or join node with fewer than
	// two components. Encoders never produce one; constructors would collapse it.
	ErrMalformedArity = errors.New("typecodec: composite needs at least two components")

	// ErrUnknownKind indicates a collection node with an unrecognised kind tag.
	ErrUnknownKind = errors.New("typecodec: unknown collection kind")
)
