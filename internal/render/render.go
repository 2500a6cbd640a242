// Released under an MIT license. See LICENSE.

// Package render provides debug renderings of values and object
// property sets. The exact text is a diagnostic aid, not a protocol.
package render

import (
	"strings"

	"jslite/internal/common/interface/literal"
	"jslite/internal/common/interface/value"
	"jslite/internal/common/type/obj"
)

// Value returns the rendering for the value v: undefined, null, true
// or false, a number in general format, a quoted string, or an opaque
// object reference marker.
func Value(v value.I) string {
	return literal.String(v)
}

// Object returns the rendering for the properties of o, one per line,
// in name order.
func Object(o *obj.T) string {
	var b strings.Builder

	b.WriteString("{\n")

	for p := o.First(); p != nil; p = o.Next(p.Name()) {
		b.WriteString("\t")
		b.WriteString(p.Name())
		b.WriteString(": ")
		b.WriteString(Value(p.Get()))
		b.WriteString(",\n")
	}

	b.WriteString("}")

	return b.String()
}
