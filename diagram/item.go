package diagram

import (
	"fmt"

	"github.com/gregoryv/umd"
)

// Item is a shape or line on a diagram, i.e. the presentation of an
// element. Items are created with Diagram.Create.
type Item struct {
	ID   string
	Kind ItemKind
	X, Y float64

	// Head and Tail are set for lines only.
	Head *Handle
	Tail *Handle

	subject *umd.Element
	diagram *Diagram
	parent  *Item
	port    *Port
}

func (i *Item) String() string {
	if i.subject == nil {
		return i.Kind.String() + " item"
	}
	return fmt.Sprintf("%s item of %v", i.Kind, i.subject)
}

// Subject returns the element depicted by i, or nil.
func (i *Item) Subject() *umd.Element { return i.subject }

// SetSubject changes the depicted element and keeps the elements
// presentation lists up to date.
func (i *Item) SetSubject(e *umd.Element) {
	if i.subject == e {
		return
	}
	if i.subject != nil {
		i.subject.RemovePresentation(i)
	}
	i.subject = e
	if e != nil {
		e.AddPresentation(i)
	}
}

// Diagram returns the diagram i is on.
func (i *Item) Diagram() *Diagram { return i.diagram }

// Parent returns the visual parent or nil for top level items.
func (i *Item) Parent() *Item { return i.parent }

// SetParent nests i visually inside p, nil makes i a top level item.
// Visual nesting does not change semantic ownership.
func (i *Item) SetParent(p *Item) error {
	if p != nil {
		if p.diagram != i.diagram {
			return fmt.Errorf("SetParent %v: %w", p, ErrOtherDiagram)
		}
		if p.Kind.IsLine() {
			return fmt.Errorf("SetParent %v: %w", p, ErrLineParent)
		}
		for c := p; c != nil; c = c.parent {
			if c == i {
				return fmt.Errorf("SetParent %v: %w", p, ErrParentCycle)
			}
		}
	}
	i.parent = p
	return nil
}

// Children returns items with i as parent.
func (i *Item) Children() []*Item {
	if i.diagram == nil {
		return nil
	}
	var res []*Item
	for _, c := range i.diagram.items {
		if c.parent == i {
			res = append(res, c)
		}
	}
	return res
}

// Port returns the connectable outline of an element item. Lines
// have no port and return nil.
func (i *Item) Port() *Port { return i.port }

// Handle returns the handle at the given end of a line or nil.
func (i *Item) Handle(end End) *Handle {
	switch end {
	case Head:
		return i.Head
	case Tail:
		return i.Tail
	}
	return nil
}

// Opposite returns the handle at the other end of h.
func (i *Item) Opposite(h *Handle) *Handle {
	switch h {
	case i.Head:
		return i.Tail
	case i.Tail:
		return i.Head
	}
	return nil
}

// ----------------------------------------

// End identifies one end of a line.
type End int

const (
	Head End = iota
	Tail
)

func (e End) String() string {
	if e == Head {
		return "head"
	}
	return "tail"
}

// ParseEnd returns the end named head or tail.
func ParseEnd(v string) (End, error) {
	switch v {
	case "head":
		return Head, nil
	case "tail":
		return Tail, nil
	}
	return Head, fmt.Errorf("%q: %w", v, ErrBadEnd)
}

// Handle is a movable end of a line item.
type Handle struct {
	item *Item
	end  End
}

func (h *Handle) String() string {
	return fmt.Sprintf("%s of %v", h.end, h.item)
}

// Item returns the line h belongs to.
func (h *Handle) Item() *Item { return h.item }

// End returns which end of the line h is.
func (h *Handle) End() End { return h.end }

// Opposite returns the handle at the other end of the same line.
func (h *Handle) Opposite() *Handle { return h.item.Opposite(h) }

// Port is the connectable outline of an element item.
type Port struct {
	item *Item
}

// Item returns the item owning the port.
func (p *Port) Item() *Item { return p.item }

var (
	ErrOtherDiagram = fmt.Errorf("item on other diagram")
	ErrLineParent   = fmt.Errorf("line cannot be parent")
	ErrParentCycle  = fmt.Errorf("parent cycle")
	ErrBadEnd       = fmt.Errorf("end must be head or tail")
)
