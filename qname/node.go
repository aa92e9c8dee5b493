package qname

import "github.com/gregoryv/umd"

func newNode(e *umd.Element) *Node {
	return &Node{
		Element: e,
		name:    e.Name,
	}
}

// Node is one named element in the tree.
type Node struct {
	Element *umd.Element

	name     string
	parent   *Node
	children []*Node
}

// Name returns the element name at this level.
func (n *Node) Name() string { return n.name }

func (n *Node) match(result *[]*Node, parts []string, i int) {
	switch p := parts[i]; {
	case p == "#":
		n.all(result)
		return

	case p != "+" && p != n.name:
		return
	}
	if i == len(parts)-1 {
		*result = append(*result, n)
		return
	}
	if parts[i+1] == "#" {
		// # also matches the parent level
		*result = append(*result, n)
	}
	for _, child := range n.children {
		child.match(result, parts, i+1)
	}
}

// all appends n and every node below it, depth first.
func (n *Node) all(result *[]*Node) {
	*result = append(*result, n)
	for _, child := range n.children {
		child.all(result)
	}
}

func (n *Node) Find(parts []string) (*Node, bool) {
	if len(parts) == 0 {
		return n, true
	}
	c := n.FindChild(parts[0])
	if c == nil {
		return nil, false
	}
	return c.Find(parts[1:])
}

// FindChild returns the first child with the given name or nil.
func (n *Node) FindChild(name string) *Node {
	for _, child := range n.children {
		if child.name == name {
			return child
		}
	}
	return nil
}

func (n *Node) AddChild(c *Node) {
	c.parent = n
	n.children = append(n.children, c)
}

// Path returns the qualified name, e.g. root/orders/Order.
func (n *Node) Path() string {
	if n.parent == nil {
		return n.name
	}
	return n.parent.Path() + Separator + n.name
}

func (n *Node) Leafs() []*Node {
	var leafs []*Node
	for _, c := range n.children {
		if c.IsLeaf() {
			leafs = append(leafs, c)
			continue
		}
		leafs = append(leafs, c.Leafs()...)
	}
	return leafs
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}
