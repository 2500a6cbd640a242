// Released under an MIT license. See LICENSE.

// Package num provides jslite's number value type.
package num

import (
	"strconv"

	"jslite/internal/common"
	"jslite/internal/common/interface/literal"
	"jslite/internal/common/interface/value"
)

const name = "number"

// T (num) wraps Go's float64 type.
type T float64

type num = T

// New creates a new num value from a string.
func New(s string) value.I {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic("'" + s + "' is not a valid number")
	}

	return Float(v)
}

// Float wraps the float64 f as a num.
func Float(f float64) value.I {
	v := num(f)

	return &v
}

// Int creates a num from the integer i.
func Int(i int) value.I {
	return Float(float64(i))
}

// Equal returns true if v is the same number as the num n.
func (n *num) Equal(v value.I) bool {
	return Is(v) && n.Float() == To(v).Float()
}

// Float returns the value of the num n as a float64.
func (n *num) Float() float64 {
	return float64(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n, in the same general format
// the dump routine of the reference engine uses.
func (n *num) String() string {
	return strconv.FormatFloat(float64(*n), 'g', 9, 64)
}

// Is returns true if v is a *T.
func Is(v value.I) bool {
	_, ok := v.(*T)

	return ok
}

// To returns a *T if v is a *T; Otherwise it panics.
func To(v value.I) *T {
	if n, ok := v.(*T); ok {
		return n
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a value.
	_ = value.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
