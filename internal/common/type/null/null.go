// Released under an MIT license. See LICENSE.

// Package null provides jslite's null value type.
package null

import (
	"jslite/internal/common"
	"jslite/internal/common/interface/literal"
	"jslite/internal/common/interface/value"
)

const name = "null"

// T (null) is the type of the null value.
type T struct{}

type null = T

// Null is the null value.
var Null = &null{} //nolint:gochecknoglobals

// Equal returns true if v is also null.
func (n *null) Equal(v value.I) bool {
	return Is(v)
}

// Literal returns the literal representation of the null n.
func (n *null) Literal() string {
	return name
}

// Name returns the type name for the null n.
func (n *null) Name() string {
	return name
}

// String returns the text of the null n.
func (n *null) String() string {
	return name
}

// Is returns true if v is a *T.
func Is(v value.I) bool {
	_, ok := v.(*T)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t null

	// The null type is a value.
	_ = value.I(&t)

	// The null type has a literal representation.
	_ = literal.I(&t)

	// The null type is a stringer.
	_ = common.Stringer(&t)
}
