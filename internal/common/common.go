// Released under an MIT license. See LICENSE.

// Package common defines common interfaces.
package common

import (
	"fmt"

	"jslite/internal/common/interface/value"
)

type Stringer = fmt.Stringer

// String returns the string value for a value, if possible.
func String(v value.I) string {
	s, ok := v.(Stringer)
	if !ok {
		panic(v.Name() + " cannot be used in a string context")
	}

	return s.String()
}
