// Released under an MIT license. See LICENSE.

// Package env provides jslite's lexical environment type, one frame of
// the chain used to resolve variable names.
package env

import (
	"jslite/internal/common/interface/scope"
	"jslite/internal/common/struct/prop"
	"jslite/internal/common/type/obj"
)

// T (env) wraps one object used as its variable bag plus a link to the
// enclosing frame.
type T struct {
	outer     scope.I
	variables *obj.T
}

type env = T

// New creates a new env wrapping vars. The outer frame is nil for the
// global frame.
func New(outer scope.I, vars *obj.T) *T {
	return &env{outer: outer, variables: vars}
}

// Assign searches the chain outward for name and returns the first
// binding found. When no frame binds name, the binding is created in
// the outermost frame: assigning to a name never declared anywhere
// creates a global.
func (e *env) Assign(name string) *prop.T {
	if p := e.variables.Get(name); p != nil {
		return p
	}

	if e.outer != nil {
		return e.outer.Assign(name)
	}

	return e.variables.Set(name)
}

// Declare binds name in this frame regardless of bindings in enclosing
// frames, creating the binding if it does not exist.
func (e *env) Declare(name string) *prop.T {
	return e.variables.Set(name)
}

// Outer returns the enclosing frame, or nil for the global frame.
func (e *env) Outer() scope.I {
	return e.outer
}

// Resolve searches the chain outward for name, returning nil if no
// frame binds it.
func (e *env) Resolve(name string) *prop.T {
	if p := e.variables.Get(name); p != nil {
		return p
	}

	if e.outer != nil {
		return e.outer.Resolve(name)
	}

	return nil
}

// Variables returns the variable bag for the env e.
func (e *env) Variables() *obj.T {
	return e.variables
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a scope.
	_ = scope.I(&t)
}
