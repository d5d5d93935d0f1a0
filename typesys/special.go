// SPDX-License-Identifier: MIT

package typesys

import (
	"fmt"
	"strconv"
	"strings"
)

// Special is an opaque nominal type distinguished only by its signifier.
// It relates to itself, ⊤ and ⊥, and to nothing else.
type Special struct {
	signifier string
}

// Signifier returns the distinguishing name.
func (s *Special) Signifier() string { return s.signifier }

func (s *Special) String() string { return strconv.Quote(s.signifier) }

func (s *Special) Equal(other Type) bool {
	o, ok := other.(*Special)

	return ok && o.signifier == s.signifier
}

func (s *Special) Hash() uint64 {
	return mix(hashSeed(prioritySpecial), hashString(s.signifier))
}

// Apply always fails: special types carry no membership check.
func (s *Special) Apply(any) (bool, error) {
	return false, fmt.Errorf("special type %s: %w", s, ErrUnsupportedMembership)
}

func (s *Special) Domain() Type   { return noType }
func (s *Special) Codomain() Type { return s }
func (s *Special) priority() int  { return prioritySpecial }

func (s *Special) compareSemi(other Type) (Order, error) {
	if o, ok := bound(other); ok {
		return o, nil
	}
	if s.Equal(other) {
		return Same, nil
	}

	return Same, ErrIncomparable
}

func (s *Special) lexTie(other Type) int {
	return strings.Compare(s.signifier, other.(*Special).signifier)
}
