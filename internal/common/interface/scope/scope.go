// Released under an MIT license. See LICENSE.

// Package scope defines the interface for jslite's lexical environments.
//
// It exists as its own package so that a function object can hold the
// environment captured at its definition site without the object and
// environment packages importing each other.
package scope

import (
	"jslite/internal/common/struct/prop"
)

// I (scope) is the interface for one frame of the environment chain.
type I interface {
	// Declare binds name in this frame, creating the binding if it
	// does not exist. It never searches enclosing frames.
	Declare(name string) *prop.T

	// Resolve searches this frame and then each enclosing frame for
	// name, returning nil if no frame binds it.
	Resolve(name string) *prop.T

	// Assign searches like Resolve but, when no frame binds name,
	// creates the binding in the outermost frame.
	Assign(name string) *prop.T

	// Outer returns the enclosing frame, or nil for the global frame.
	Outer() I
}
