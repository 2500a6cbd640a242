// Released under an MIT license. See LICENSE.

// Package literal defines the interface for jslite values that have a
// debug rendering.
package literal

import (
	"jslite/internal/common/interface/value"
)

// I (literal) is any value that can be rendered as text.
type I interface {
	Literal() string
}

// String returns the literal rendering for a value, if possible.
func String(v value.I) string {
	l, ok := v.(I)
	if !ok {
		panic(v.Name() + " does not have a literal representation")
	}

	return l.Literal()
}
