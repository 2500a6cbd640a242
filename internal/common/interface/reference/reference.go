// Released under an MIT license. See LICENSE.

// Package reference defines the interface for jslite's binding type.
package reference

import (
	"jslite/internal/common/interface/value"
)

// I (reference) is anything that can hold a value.
type I interface {
	Get() value.I
	Set(value.I)
}
