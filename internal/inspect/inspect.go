// Released under an MIT license. See LICENSE.

// Package inspect implements jslite's object-graph inspector, a small
// command interpreter over the object and environment core.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"jslite/internal/common/interface/value"
	"jslite/internal/common/type/boolean"
	"jslite/internal/common/type/env"
	"jslite/internal/common/type/null"
	"jslite/internal/common/type/num"
	"jslite/internal/common/type/obj"
	"jslite/internal/common/type/str"
	"jslite/internal/common/type/undef"
	"jslite/internal/common/validate"
	"jslite/internal/render"
	"jslite/internal/system/terminal"
)

const help = `commands:
  var NAME [VALUE]     declare NAME in the current frame
  set NAME VALUE       assign to NAME, searching enclosing frames
  print NAME           print the value bound to NAME
  object NAME          declare NAME bound to a fresh object
  put NAME KEY VALUE   set a property on the object bound to NAME
  get NAME KEY         print a property of the object bound to NAME
  keys NAME            list the property names of NAME in order
  dump NAME            print every property of the object bound to NAME
  proto NAME [TARGET]  show or set the prototype of NAME
  call NAME [ARG...]   invoke the native function bound to NAME
  push                 enter a new scope frame
  pop                  leave the current scope frame
  help                 show this text
  exit                 leave the inspector

VALUE is undefined, null, true, false, a number, a quoted string, or
the name of another binding.`

// T (inspector) is a command interpreter over one environment chain.
type T struct {
	out    io.Writer
	frames []*env.T // The global frame first, the current frame last.
}

type inspector = T

// New creates an inspector whose global frame binds a few native
// functions.
func New(out io.Writer) *T {
	global := env.New(nil, obj.New(obj.Plain))

	global.Declare("typeof").Set(obj.NewNative(typeofNative))

	return &inspector{out: out, frames: []*env.T{global}}
}

// Complete returns every command and bound name starting with prefix.
func (t *inspector) Complete(prefix string) []string {
	words := []string{
		"call", "dump", "exit", "get", "help", "keys", "object",
		"pop", "print", "proto", "push", "put", "set", "var",
	}

	for _, f := range t.frames {
		vars := f.Variables()
		for p := vars.First(); p != nil; p = vars.Next(p.Name()) {
			words = append(words, p.Name())
		}
	}

	matches := []string{}

	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			matches = append(matches, w)
		}
	}

	sort.Strings(matches)

	return matches
}

// Evaluate runs one inspector command. It returns false when the
// command asks the inspector to exit.
func (t *inspector) Evaluate(line string) bool {
	args, err := fields(line)
	if err == nil && len(args) == 0 {
		return true
	}

	s := ""

	if err == nil {
		switch args[0] {
		case "exit":
			return false
		case "help":
			s = help
		case "push":
			t.push()
		case "pop":
			err = t.pop()
		case "var":
			err = t.declare(args)
		case "set":
			err = t.assign(args)
		case "print":
			s, err = t.print(args)
		case "object":
			err = t.object(args)
		case "put":
			err = t.put(args)
		case "get":
			s, err = t.get(args)
		case "keys":
			s, err = t.keys(args)
		case "dump":
			s, err = t.dump(args)
		case "proto":
			s, err = t.proto(args)
		case "call":
			s, err = t.call(args)
		default:
			// A bare name prints its value.
			if len(args) == 1 && isName(args[0]) {
				s, err = t.print([]string{"print", args[0]})
			} else {
				err = fmt.Errorf("%s is not a command", args[0])
			}
		}
	}

	if err != nil {
		fmt.Fprintln(t.out, err.Error())
	} else if s != "" {
		fmt.Fprintln(t.out, s)
	}

	return true
}

func (t *inspector) assign(args []string) error {
	if err := validate.Fixed(args, 2, 2); err != nil {
		return err
	}

	if !isName(args[1]) {
		return fmt.Errorf("%s is not a valid name", args[1])
	}

	v, err := t.parse(args[2])
	if err != nil {
		return err
	}

	t.current().Assign(args[1]).Set(v)

	return nil
}

func (t *inspector) call(args []string) (string, error) {
	if err := validate.Fixed(args, 1, 9); err != nil {
		return "", err
	}

	o, err := t.resolveObject(args[1])
	if err != nil {
		return "", err
	}

	switch o.Kind() {
	case obj.NativeFunction:
		// Fall through to the call below.
	case obj.Function:
		return "", fmt.Errorf("%s is a script function; calling one requires an evaluator", args[1])
	default:
		return "", fmt.Errorf("%s is not callable", args[1])
	}

	actual := make([]value.I, 0, len(args)-2)

	for _, a := range args[2:] {
		v, err := t.parse(a)
		if err != nil {
			return "", err
		}

		actual = append(actual, v)
	}

	return render.Value(o.Native()(actual)), nil
}

func (t *inspector) current() *env.T {
	return t.frames[len(t.frames)-1]
}

func (t *inspector) declare(args []string) error {
	if err := validate.Fixed(args, 1, 2); err != nil {
		return err
	}

	if !isName(args[1]) {
		return fmt.Errorf("%s is not a valid name", args[1])
	}

	p := t.current().Declare(args[1])

	if len(args) == 3 {
		v, err := t.parse(args[2])
		if err != nil {
			return err
		}

		p.Set(v)
	}

	return nil
}

func (t *inspector) dump(args []string) (string, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return "", err
	}

	o, err := t.resolveObject(args[1])
	if err != nil {
		return "", err
	}

	return render.Object(o), nil
}

func (t *inspector) get(args []string) (string, error) {
	if err := validate.Fixed(args, 2, 2); err != nil {
		return "", err
	}

	o, err := t.resolveObject(args[1])
	if err != nil {
		return "", err
	}

	p := o.Get(key(args[2]))
	if p == nil {
		return "", fmt.Errorf("%s is not a property of %s", args[2], args[1])
	}

	return render.Value(p.Get()), nil
}

func (t *inspector) keys(args []string) (string, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return "", err
	}

	o, err := t.resolveObject(args[1])
	if err != nil {
		return "", err
	}

	names := []string{}

	for p := o.First(); p != nil; p = o.Next(p.Name()) {
		names = append(names, p.Name())
	}

	if len(names) == 0 {
		return "", nil
	}

	return columns(names, terminal.Columns()), nil
}

func (t *inspector) object(args []string) error {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return err
	}

	if !isName(args[1]) {
		return fmt.Errorf("%s is not a valid name", args[1])
	}

	t.current().Declare(args[1]).Set(obj.New(obj.Plain))

	return nil
}

func (t *inspector) parse(token string) (value.I, error) {
	switch token {
	case "undefined":
		return undef.Undefined, nil
	case "null":
		return null.Null, nil
	case "true":
		return boolean.True, nil
	case "false":
		return boolean.False, nil
	}

	if token[0] == '\'' || token[0] == '"' {
		return str.New(token[1 : len(token)-1]), nil
	}

	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return num.Float(f), nil
	}

	if !isName(token) {
		return nil, fmt.Errorf("%s is not a value", token)
	}

	p := t.current().Resolve(token)
	if p == nil {
		return nil, fmt.Errorf("%s is not defined", token)
	}

	return p.Get(), nil
}

func (t *inspector) pop() error {
	if len(t.frames) == 1 {
		return errors.New("cannot pop the global frame")
	}

	t.frames = t.frames[:len(t.frames)-1]

	return nil
}

func (t *inspector) print(args []string) (string, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return "", err
	}

	p := t.current().Resolve(args[1])
	if p == nil {
		return "", fmt.Errorf("%s is not defined", args[1])
	}

	return render.Value(p.Get()), nil
}

func (t *inspector) proto(args []string) (string, error) {
	if err := validate.Fixed(args, 1, 2); err != nil {
		return "", err
	}

	o, err := t.resolveObject(args[1])
	if err != nil {
		return "", err
	}

	if len(args) == 2 {
		p := o.Prototype()
		if p == nil {
			return "(no prototype)", nil
		}

		return render.Value(p), nil
	}

	target, err := t.resolveObject(args[2])
	if err != nil {
		return "", err
	}

	o.SetPrototype(target)

	return "", nil
}

func (t *inspector) push() {
	t.frames = append(t.frames, env.New(t.current(), obj.New(obj.Plain)))
}

func (t *inspector) put(args []string) error {
	if err := validate.Fixed(args, 3, 3); err != nil {
		return err
	}

	o, err := t.resolveObject(args[1])
	if err != nil {
		return err
	}

	v, err := t.parse(args[3])
	if err != nil {
		return err
	}

	o.Set(key(args[2])).Set(v)

	return nil
}

func (t *inspector) resolveObject(name string) (*obj.T, error) {
	p := t.current().Resolve(name)
	if p == nil {
		return nil, fmt.Errorf("%s is not defined", name)
	}

	v := p.Get()
	if !obj.Is(v) {
		return nil, fmt.Errorf("%s is not an object", name)
	}

	return obj.To(v), nil
}

// columns formats names, which are already sorted, into as many
// columns as fit in width characters.
func columns(names []string, width int) string {
	widest := 0

	for _, n := range names {
		if len(n) > widest {
			widest = len(n)
		}
	}

	per := width / (widest + 2)
	if per < 1 {
		per = 1
	}

	var b strings.Builder

	for i, n := range names {
		b.WriteString(n)

		if i == len(names)-1 {
			break
		}

		if (i+1)%per == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(strings.Repeat(" ", widest+2-len(n)))
		}
	}

	return b.String()
}

// fields splits line on whitespace, keeping quoted strings together.
func fields(line string) ([]string, error) {
	args := []string{}

	for i := 0; i < len(line); {
		switch c := line[i]; {
		case c == ' ' || c == '\t':
			i++
		case c == '\'' || c == '"':
			j := strings.IndexByte(line[i+1:], c)
			if j < 0 {
				return nil, errors.New("unterminated string")
			}

			args = append(args, line[i:i+j+2])
			i += j + 2
		default:
			j := strings.IndexAny(line[i:], " \t")
			if j < 0 {
				j = len(line) - i
			}

			args = append(args, line[i:i+j])
			i += j
		}
	}

	return args, nil
}

func isName(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}

	return s != ""
}

// key strips the quotes from a quoted property key.
func key(s string) string {
	if s != "" && (s[0] == '\'' || s[0] == '"') {
		return s[1 : len(s)-1]
	}

	return s
}

func typeofNative(args []value.I) value.I {
	if len(args) == 0 {
		return str.New(undef.Undefined.Name())
	}

	return str.New(args[0].Name())
}
