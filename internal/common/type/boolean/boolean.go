// Released under an MIT license. See LICENSE.

// Package boolean provides jslite's boolean value type.
package boolean

import (
	"jslite/internal/common"
	"jslite/internal/common/interface/literal"
	"jslite/internal/common/interface/value"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool creates a new boolean from the bool b.
func Bool(b bool) value.I {
	if b {
		return True
	}

	return False
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if v is a boolean with a matching value.
func (b *boolean) Equal(v value.I) bool {
	return Is(v) && b.Bool() == To(v).Bool()
}

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	return b.String()
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if bool(*b) {
		return "true"
	}

	return "false"
}

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
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
	var t boolean

	// The boolean type is a value.
	_ = value.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)

	// The boolean type is a stringer.
	_ = common.Stringer(&t)
}
