// Released under an MIT license. See LICENSE.

package obj_test

import (
	"testing"

	"jslite/internal/common/interface/value"
	"jslite/internal/common/struct/prop"
	"jslite/internal/common/type/env"
	"jslite/internal/common/type/num"
	"jslite/internal/common/type/obj"
	"jslite/internal/common/type/str"
)

func TestEmptyObject(t *testing.T) {
	o := obj.New(obj.Plain)

	if o.First() != nil {
		t.Error("First on an empty object returned a property")
	}

	if o.Get("x") != nil {
		t.Error("Get on an empty object returned a property")
	}
}

func TestSetIsIdempotent(t *testing.T) {
	o := obj.New(obj.Plain)

	first := o.Set("x")
	first.Set(num.Int(1))

	second := o.Set("x")

	if first != second {
		t.Fatal("second Set of the same name returned a different property")
	}

	if !second.Get().Equal(num.Int(1)) {
		t.Error("second Set of the same name lost the value")
	}
}

func TestGetAgreesWithSet(t *testing.T) {
	o := obj.New(obj.Plain)

	names := []string{"b", "a", "d", "c"}
	props := map[string]*prop.T{}

	for _, name := range names {
		props[name] = o.Set(name)
	}

	for _, name := range names {
		if o.Get(name) != props[name] {
			t.Errorf("Get(%q) did not return the property Set created", name)
		}
	}
}

func TestEnumeration(t *testing.T) {
	o := obj.New(obj.Plain)

	for _, name := range []string{"b", "a", "d", "c"} {
		o.Set(name)
	}

	want := []string{"a", "b", "c", "d"}
	got := []string{}

	for p := o.First(); p != nil; p = o.Next(p.Name()) {
		got = append(got, p.Name())
	}

	if len(got) != len(want) {
		t.Fatalf("enumerated %d properties, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("property %d is %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFunctionObject(t *testing.T) {
	scope := env.New(nil, obj.New(obj.Plain))

	body := struct{ name string }{"f"}

	f := obj.NewFunction(body, scope)

	if f.Kind() != obj.Function {
		t.Error("NewFunction did not set the function kind")
	}

	if f.Body() != body {
		t.Error("NewFunction did not retain the body")
	}

	if f.Scope() != scope {
		t.Error("NewFunction did not retain the defining environment")
	}

	if f.Native() != nil {
		t.Error("function object has a native entry point")
	}
}

func TestNativeObject(t *testing.T) {
	fn := func(args []value.I) value.I {
		return num.Int(len(args))
	}

	n := obj.NewNative(fn)

	if n.Kind() != obj.NativeFunction {
		t.Error("NewNative did not set the native kind")
	}

	if n.Native() == nil {
		t.Fatal("NewNative did not retain the entry point")
	}

	got := n.Native()([]value.I{str.New("a"), str.New("b")})
	if !got.Equal(num.Int(2)) {
		t.Error("native entry point is not callable")
	}

	if n.Scope() != nil {
		t.Error("native object has a captured environment")
	}
}

func TestPrototypeAndPrimitive(t *testing.T) {
	o := obj.New(obj.Plain)

	if o.Prototype() != nil {
		t.Error("fresh object has a prototype")
	}

	proto := obj.New(obj.Plain)
	o.SetPrototype(proto)

	if o.Prototype() != proto {
		t.Error("SetPrototype did not take")
	}

	o.SetPrimitive(3.5)

	if o.Primitive() != 3.5 {
		t.Error("SetPrimitive did not take")
	}
}

func TestObjectIsAValue(t *testing.T) {
	o := obj.New(obj.Plain)
	p := obj.New(obj.Plain)

	if o.Name() != "object" {
		t.Errorf("object has type name %q", o.Name())
	}

	if !o.Equal(o) {
		t.Error("object is not equal to itself")
	}

	if o.Equal(p) {
		t.Error("distinct objects compare equal")
	}
}
