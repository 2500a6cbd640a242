// Released under an MIT license. See LICENSE.

// Package str provides jslite's string value type.
package str

import (
	"github.com/michaelmacinnis/adapted"

	"jslite/internal/common"
	"jslite/internal/common/interface/literal"
	"jslite/internal/common/interface/value"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str value.
func New(v string) value.I {
	s := str(v)

	return &s
}

// Equal returns true if the value v wraps the same string.
func (s *str) Equal(v value.I) bool {
	return Is(v) && s.String() == To(v).String()
}

// Literal returns the quoted representation of the str s.
func (s *str) Literal() string {
	return adapted.CanonicalString(string(*s))
}

// Name returns the type name for the str s.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Is returns true if v is a *T.
func Is(v value.I) bool {
	_, ok := v.(*T)

	return ok
}

// To returns a *T if v is a *T; Otherwise it panics.
func To(v value.I) *T {
	if t, ok := v.(*T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a value.
	_ = value.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)
}
