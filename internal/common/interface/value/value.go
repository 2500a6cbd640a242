// Released under an MIT license. See LICENSE.

// Package value defines the interface for all jslite runtime values.
package value

// I (value) is the basic unit of storage in jslite.
//
// Name returns one of the six tag names: undefined, null, boolean,
// number, string, or object.
type I interface {
	Equal(v I) bool
	Name() string
}
