// Released under an MIT license. See LICENSE.

// Package undef provides jslite's undefined value type.
package undef

import (
	"jslite/internal/common"
	"jslite/internal/common/interface/literal"
	"jslite/internal/common/interface/value"
)

const name = "undefined"

// T (undef) is the type of the undefined value.
type T struct{}

type undef = T

// Undefined is the undefined value. Every fresh property holds it.
var Undefined = &undef{} //nolint:gochecknoglobals

// Equal returns true if v is also undefined.
func (u *undef) Equal(v value.I) bool {
	return Is(v)
}

// Literal returns the literal representation of the undef u.
func (u *undef) Literal() string {
	return name
}

// Name returns the type name for the undef u.
func (u *undef) Name() string {
	return name
}

// String returns the text of the undef u.
func (u *undef) String() string {
	return name
}

// Is returns true if v is a *T.
func Is(v value.I) bool {
	_, ok := v.(*T)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t undef

	// The undef type is a value.
	_ = value.I(&t)

	// The undef type has a literal representation.
	_ = literal.I(&t)

	// The undef type is a stringer.
	_ = common.Stringer(&t)
}
