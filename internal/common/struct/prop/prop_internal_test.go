// Released under an MIT license. See LICENSE.

package prop

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"jslite/internal/common/type/num"
	"jslite/internal/common/type/undef"
)

// check walks the subtree rooted at node and fails if any of the five
// level invariants does not hold.
func check(t *testing.T, node *T) {
	t.Helper()

	if node == sentinel {
		return
	}

	l, r := node.left, node.right

	if l == sentinel && r == sentinel && node.level != 1 {
		t.Fatalf("leaf %q has level %d", node.name, node.level)
	}

	if l != sentinel && l.level != node.level-1 {
		t.Fatalf("left child %q of %q has level %d, parent has %d",
			l.name, node.name, l.level, node.level)
	}

	if r != sentinel && r.level != node.level && r.level != node.level-1 {
		t.Fatalf("right child %q of %q has level %d, parent has %d",
			r.name, node.name, r.level, node.level)
	}

	if r != sentinel && r.right != sentinel && r.right.level >= node.level {
		t.Fatalf("right grandchild %q of %q has level %d, grandparent has %d",
			r.right.name, node.name, r.right.level, node.level)
	}

	if node.level > 1 && (l == sentinel || r == sentinel) {
		t.Fatalf("node %q has level %d with a missing child", node.name, node.level)
	}

	check(t, l)
	check(t, r)
}

func insertAll(t *testing.T, names []string) *T {
	t.Helper()

	root := Sentinel()

	for _, name := range names {
		var p *T

		root, p = Insert(root, name)
		if p == nil {
			t.Fatalf("Insert(%q) returned no node", name)
		}

		check(t, root)
	}

	return root
}

// enumerate collects every name in the tree by walking First and Next.
func enumerate(root *T) []string {
	names := []string{}

	for p := First(root); p != nil; p = Next(root, p.Name()) {
		names = append(names, p.Name())
	}

	return names
}

func TestEmptyTree(t *testing.T) {
	root := Sentinel()

	if First(root) != nil {
		t.Error("First on an empty tree returned a node")
	}

	if Lookup(root, "x") != nil {
		t.Error("Lookup on an empty tree returned a node")
	}

	if Next(root, "x") != nil {
		t.Error("Next on an empty tree returned a node")
	}
}

func TestInsertReturnsExisting(t *testing.T) {
	root, first := Insert(Sentinel(), "x")

	again, second := Insert(root, "x")

	if first != second {
		t.Error("second insert of the same name returned a different node")
	}

	if again != root {
		t.Error("second insert of the same name changed the root")
	}
}

func TestLookupAgreesWithInsert(t *testing.T) {
	root := Sentinel()
	inserted := map[string]*T{}

	for _, name := range []string{"b", "a", "d", "c", "e"} {
		root, inserted[name] = Insert(root, name)
	}

	for name, p := range inserted {
		if Lookup(root, name) != p {
			t.Errorf("Lookup(%q) did not return the inserted node", name)
		}
	}

	if Lookup(root, "missing") != nil {
		t.Error("Lookup of an absent name returned a node")
	}
}

func TestEnumerationOrder(t *testing.T) {
	root := insertAll(t, []string{"b", "a", "d", "c"})

	p := First(root)
	if p == nil || p.Name() != "a" {
		t.Fatal("First did not return the smallest name")
	}

	p = Next(root, "a")
	if p == nil || p.Name() != "b" {
		t.Fatal("Next(a) did not return b")
	}

	if Next(root, "d") != nil {
		t.Fatal("Next of the largest name returned a node")
	}

	if Next(root, "missing") != nil {
		t.Fatal("Next of an absent name returned a node")
	}
}

func TestInvariantsAscending(t *testing.T) {
	names := make([]string, 100)
	for i := range names {
		names[i] = fmt.Sprintf("p%02d", i)
	}

	root := insertAll(t, names)

	got := enumerate(root)
	if len(got) != len(names) {
		t.Fatalf("enumerated %d names, inserted %d", len(got), len(names))
	}
}

func TestInvariantsShuffled(t *testing.T) {
	names := make([]string, 500)
	for i := range names {
		names[i] = fmt.Sprintf("p%03d", i)
	}

	r := rand.New(rand.NewSource(1))
	r.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	root := insertAll(t, names)

	got := enumerate(root)

	sort.Strings(names)

	if len(got) != len(names) {
		t.Fatalf("enumerated %d names, inserted %d", len(got), len(names))
	}

	for i, name := range names {
		if got[i] != name {
			t.Fatalf("enumeration out of order at %d: got %q, want %q", i, got[i], name)
		}
	}
}

func TestFreshNodeIsUndefined(t *testing.T) {
	_, p := Insert(Sentinel(), "x")

	if p.Get() != undef.Undefined {
		t.Error("fresh property does not hold undefined")
	}

	if p.Flags() != 0 {
		t.Error("fresh property has attribute bits set")
	}

	v := num.Int(42)
	p.Set(v)

	if p.Get() != v {
		t.Error("Set then Get did not return the same value")
	}

	p.SetFlags(5)

	if p.Flags() != 5 {
		t.Error("SetFlags then Flags did not return the same bits")
	}
}
