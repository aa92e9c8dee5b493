/*
Package qname provides qualified names of model elements.

Named elements are stored in a tree following ownership where each
node is one level of the qualified name, e.g. root/orders/Order.
Patterns use + to match exactly one level and a trailing # to match
any number of levels, including none.
*/
package qname

import (
	"fmt"
	"strings"

	"github.com/gregoryv/umd"
)

// Separator joins levels of a qualified name.
const Separator = "/"

// Build returns a tree of all named elements in m. Unnamed elements
// and everything they own are left out. Methods of the tree are not
// safe to call from multiple go routines.
func Build(m *umd.Model) *Tree {
	t := &Tree{
		root: &Node{},
	}
	for _, e := range m.Roots() {
		t.add(t.root, e)
	}
	// t.root is just a virtual parent
	for _, top := range t.root.children {
		top.parent = nil
	}
	return t
}

type Tree struct {
	root *Node
}

func (t *Tree) add(parent *Node, e *umd.Element) {
	if e.Name == "" {
		return
	}
	n := newNode(e)
	parent.AddChild(n)
	for _, o := range e.OwnedElements() {
		t.add(n, o)
	}
}

// Find returns node matching the given qualified name. If not found,
// nil and false is returned.
func (t *Tree) Find(path string) (*Node, bool) {
	if path == "" {
		return nil, false
	}
	return t.root.Find(strings.Split(path, Separator))
}

// Match populates result with nodes matching the given pattern.
// Invalid patterns match nothing, see ParsePattern.
func (t *Tree) Match(result *[]*Node, pattern string) {
	if err := ParsePattern(pattern); err != nil {
		return
	}
	parts := strings.Split(pattern, Separator)
	for _, child := range t.root.children {
		child.match(result, parts, 0)
	}
}

// Paths returns the qualified names of all nodes, depth first.
func (t *Tree) Paths() []string {
	var all []*Node
	for _, child := range t.root.children {
		child.all(&all)
	}
	paths := make([]string, len(all))
	for i, n := range all {
		paths[i] = n.Path()
	}
	return paths
}

// Leafs returns all nodes without children.
func (t *Tree) Leafs() []*Node {
	return t.root.Leafs()
}

// MustParsePattern panics if v is not a valid pattern.
func MustParsePattern(v string) string {
	if err := ParsePattern(v); err != nil {
		panic(err.Error())
	}
	return v
}

// ParsePattern returns an error if v is empty, # is not the last
// level or a wildcard is mixed with other characters in a level.
func ParsePattern(v string) error {
	if len(v) == 0 {
		return fmt.Errorf("empty pattern")
	}
	if i := strings.Index(v, "#"); i >= 0 && i < len(v)-1 {
		// i.e. a/#/b
		return fmt.Errorf("%q # not allowed there", v)
	}
	for _, part := range strings.Split(v, Separator) {
		if len(part) > 1 && strings.ContainsAny(part, "+#") {
			return fmt.Errorf("%q wildcard must fill level %q", v, part)
		}
	}
	return nil
}
