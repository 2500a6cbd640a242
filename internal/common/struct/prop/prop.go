// Released under an MIT license. See LICENSE.

// Package prop provides jslite's property store, an AA-tree keyed by
// property name:
//
// The level of every leaf node is one.
// The level of every left child is one less than its parent.
// The level of every right child is equal or one less than its parent.
// The level of every right grandchild is less than its grandparent.
// Every node of level greater than one has two children.
//
// A link where the child's level is equal to that of its parent is
// called a horizontal link. Individual right horizontal links are
// allowed, but consecutive ones are forbidden. Left horizontal links
// are forbidden.
//
// skew fixes left horizontal links. split fixes consecutive right
// horizontal links.
package prop

import (
	"strings"

	"jslite/internal/common/interface/reference"
	"jslite/internal/common/interface/value"
	"jslite/internal/common/type/undef"
)

// T (prop) is one named slot in an object.
type T struct {
	name  string
	value value.I
	left  *T
	right *T
	level int
	flags int
}

type prop = T

// The sentinel stands in for every absent child. Its children point at
// itself so that descent code compares identity against the sentinel
// instead of checking for nil. It is never mutated.
//
//nolint:gochecknoglobals
var sentinel = &prop{}

func init() { //nolint:gochecknoinits
	sentinel.left = sentinel
	sentinel.right = sentinel
	sentinel.value = undef.Undefined
}

// Sentinel returns the root of an empty property tree.
func Sentinel() *T {
	return sentinel
}

// Insert finds the node for name, creating it if necessary, and
// returns the new root of the subtree along with that node. A name
// that is already present is returned as is: the first node inserted
// for a name stays in the tree, so property identity is stable across
// repeated declarations.
func Insert(node *T, name string) (*T, *T) {
	if node == sentinel {
		n := newProp(name)

		return n, n
	}

	var result *T

	switch c := strings.Compare(name, node.name); {
	case c < 0:
		node.left, result = Insert(node.left, name)
	case c > 0:
		node.right, result = Insert(node.right, name)
	default:
		return node, node
	}

	node = skew(node)
	node = split(node)

	return node, result
}

// Lookup returns the node for name, or nil if name is not present.
func Lookup(node *T, name string) *T {
	for node != sentinel {
		c := strings.Compare(name, node.name)
		if c == 0 {
			return node
		} else if c < 0 {
			node = node.left
		} else {
			node = node.right
		}
	}

	return nil
}

// First returns the node with the smallest name, or nil if the tree
// is empty.
func First(node *T) *T {
	for node != sentinel {
		if node.left == sentinel {
			return node
		}

		node = node.left
	}

	return nil
}

// Next returns the in-order successor of the node for name, or nil if
// that node has the largest name or name is not present. Nodes carry
// no parent pointer so Next re-descends from the root, recording the
// path as it goes.
func Next(node *T, name string) *T {
	stack := make([]*T, 0, 16)

	for node != sentinel {
		stack = append(stack, node)

		c := strings.Compare(name, node.name)
		if c == 0 {
			break
		} else if c < 0 {
			node = node.left
		} else {
			node = node.right
		}
	}

	if node == sentinel {
		return nil
	}

	if node.right != sentinel {
		return First(node.right)
	}

	for top := len(stack) - 2; top >= 0; top-- {
		parent := stack[top]
		if node != parent.right {
			return parent
		}

		node = parent
	}

	return nil
}

// Flags returns the attribute bits for the prop p.
func (p *prop) Flags() int {
	return p.flags
}

// Get returns the value held by the prop p.
func (p *prop) Get() value.I {
	return p.value
}

// Name returns the name of the prop p.
func (p *prop) Name() string {
	return p.name
}

// Set replaces the value held by the prop p.
func (p *prop) Set(v value.I) {
	p.value = v
}

// SetFlags replaces the attribute bits for the prop p.
func (p *prop) SetFlags(flags int) {
	p.flags = flags
}

func newProp(name string) *prop {
	return &prop{
		name:  name,
		value: undef.Undefined,
		left:  sentinel,
		right: sentinel,
		level: 1,
	}
}

// skew fixes a left horizontal link by rotating the left child up and
// then re-applies itself down the new right side.
func skew(node *prop) *prop {
	if node.level != 0 {
		if node.left.level == node.level {
			save := node
			node = node.left
			save.left = node.right
			node.right = save
		}

		node.right = skew(node.right)
	}

	return node
}

// split fixes consecutive right horizontal links by rotating the right
// child up, incrementing its level, and then re-applies itself down
// the new right side.
func split(node *prop) *prop {
	if node.level != 0 && node.right.right.level == node.level {
		save := node
		node = node.right
		save.right = node.left
		node.left = save
		node.level++
		node.right = split(node.right)
	}

	return node
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t prop

	// The prop type is a reference.
	_ = reference.I(&t)
}
