// Released under an MIT license. See LICENSE.

// Package obj provides jslite's object type, the record backing every
// value of reference type.
package obj

import (
	"fmt"

	"jslite/internal/common"
	"jslite/internal/common/interface/literal"
	"jslite/internal/common/interface/scope"
	"jslite/internal/common/interface/value"
	"jslite/internal/common/struct/prop"
)

const name = "object"

// Kind distinguishes plain objects from script and host callables.
type Kind int

const (
	Plain Kind = iota
	Function
	NativeFunction
)

// Body is the compiled representation of a script function. It is
// produced by the compiler and consumed by the evaluator; this package
// only stores it.
type Body any

// Native is the signature for host-provided functions.
type Native func(args []value.I) value.I

// T (obj) owns one property tree and, depending on its kind, a
// prototype link, a primitive payload, or a callable.
type T struct {
	kind       Kind
	properties *prop.T
	prototype  *T
	primitive  float64
	scope      scope.I
	body       Body
	native     Native
}

type obj = T

// New creates a new obj of the given kind with an empty property tree.
func New(kind Kind) *T {
	return &obj{kind: kind, properties: prop.Sentinel()}
}

// NewFunction creates a function obj, retaining the environment that
// was in effect at its definition site.
func NewFunction(body Body, s scope.I) *T {
	o := New(Function)
	o.body = body
	o.scope = s

	return o
}

// NewNative creates an obj wrapping the host function fn.
func NewNative(fn Native) *T {
	o := New(NativeFunction)
	o.native = fn

	return o
}

// Body returns the compiled function for the obj o.
func (o *obj) Body() Body {
	return o.body
}

// Equal returns true if v is the same obj as o.
func (o *obj) Equal(v value.I) bool {
	return Is(v) && o == To(v)
}

// First returns the property of o with the smallest name, or nil if o
// has no properties.
func (o *obj) First() *prop.T {
	return prop.First(o.properties)
}

// Get returns the property of o named k, or nil if o has no such
// property.
func (o *obj) Get(k string) *prop.T {
	return prop.Lookup(o.properties, k)
}

// Kind returns the kind of the obj o.
func (o *obj) Kind() Kind {
	return o.kind
}

// Literal returns the opaque reference marker for the obj o.
func (o *obj) Literal() string {
	return fmt.Sprintf("<%s %p>", name, o)
}

// Name returns the type name for the obj o.
func (o *obj) Name() string {
	return name
}

// Native returns the host function for the obj o.
func (o *obj) Native() Native {
	return o.native
}

// Next returns the property of o whose name follows k, or nil if k is
// the largest name or o has no property named k.
func (o *obj) Next(k string) *prop.T {
	return prop.Next(o.properties, k)
}

// Primitive returns the scalar payload for the obj o.
func (o *obj) Primitive() float64 {
	return o.primitive
}

// Prototype returns the obj that o delegates to, or nil.
func (o *obj) Prototype() *T {
	return o.prototype
}

// Scope returns the environment captured by the function obj o.
func (o *obj) Scope() scope.I {
	return o.scope
}

// Set returns the property of o named k, creating it if necessary.
// It never fails.
func (o *obj) Set(k string) *prop.T {
	var p *prop.T

	o.properties, p = prop.Insert(o.properties, k)

	return p
}

// SetPrimitive replaces the scalar payload for the obj o.
func (o *obj) SetPrimitive(f float64) {
	o.primitive = f
}

// SetPrototype replaces the prototype link for the obj o.
func (o *obj) SetPrototype(p *T) {
	o.prototype = p
}

// String returns the text of the obj o.
func (o *obj) String() string {
	return o.Literal()
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

	panic("not an " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t obj

	// The obj type is a value.
	_ = value.I(&t)

	// The obj type has a literal representation.
	_ = literal.I(&t)

	// The obj type is a stringer.
	_ = common.Stringer(&t)
}
