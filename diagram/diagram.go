/*
Package diagram provides diagrams, their items and the registry of
line connections.

Items present elements of a [umd.Model]. Visual nesting through
Item.Parent is kept separate from semantic ownership, package connect
keeps the two in sync for containment lines.
*/
package diagram

import (
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/gregoryv/umd"
	"github.com/gregoryv/umd/event"
)

// New returns an empty diagram presenting the given diagram element.
// The owner of subject is the semantic nesting of the diagram. Panics
// if subject is not a diagram element.
func New(subject *umd.Element) *Diagram {
	umd.Invariant(subject != nil && subject.Kind.IsA(umd.KindDiagram),
		"diagram.New", "subject %v must be a diagram element", subject,
	)
	d := &Diagram{
		Log:     log.New(io.Discard, "diagram ", log.Flags()),
		subject: subject,
	}
	d.Connections = &Connections{diagram: d}
	return d
}

// Diagram holds items and their connections. Methods are not safe to
// call from multiple go routines.
type Diagram struct {
	// OnEvent if set is called after each change, see package
	// event.
	OnEvent func(any)

	Log *log.Logger

	// Connections registers which item each line handle is attached
	// to.
	Connections *Connections

	subject *umd.Element
	items   []*Item
}

// Target is where elements can be dropped, a diagram or an item on
// it.
type Target interface {
	Diagram() *Diagram
}

// Diagram returns d, making it a Target.
func (d *Diagram) Diagram() *Diagram { return d }

// Subject returns the diagram element.
func (d *Diagram) Subject() *umd.Element { return d.subject }

// Owner returns the semantic owner of this diagram, or nil.
func (d *Diagram) Owner() *umd.Element { return d.subject.Owner() }

func (d *Diagram) String() string { return d.subject.String() }

// Create returns a new top level item of kind k depicting subject,
// which may be nil.
func (d *Diagram) Create(k ItemKind, subject *umd.Element) *Item {
	it := &Item{
		ID:      uuid.NewString(),
		Kind:    k,
		diagram: d,
	}
	if k.IsLine() {
		it.Head = &Handle{item: it, end: Head}
		it.Tail = &Handle{item: it, end: Tail}
	} else {
		it.port = &Port{item: it}
	}
	it.SetSubject(subject)
	d.items = append(d.items, it)
	d.Log.Println("create", it)

	var sid string
	if subject != nil {
		sid = subject.ID
	}
	d.emit(event.ItemCreated{ID: it.ID, Kind: k.String(), Subject: sid})
	return it
}

// Items returns all items in creation order.
func (d *Diagram) Items() []*Item {
	res := make([]*Item, len(d.items))
	copy(res, d.items)
	return res
}

// Lookup returns the item with the given id or nil.
func (d *Diagram) Lookup(id string) *Item {
	for _, it := range d.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// PresentationOf returns the first item on d depicting e, or nil.
func (d *Diagram) PresentationOf(e *umd.Element) *Item {
	if e == nil {
		return nil
	}
	for _, p := range e.Presentation() {
		if it, ok := p.(*Item); ok && it.diagram == d {
			return it
		}
	}
	return nil
}

// Remove takes it off the diagram. Connections of its handles and
// those attached to it are dropped from the registry without any
// semantic change, children become top level items. Use
// connect.RemoveItem to also release containment ownership.
func (d *Diagram) Remove(it *Item) {
	idx := -1
	for i, v := range d.items {
		if v == it {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if it.Kind.IsLine() {
		d.Connections.Disconnect(it.Head)
		d.Connections.Disconnect(it.Tail)
	}
	for _, c := range d.Connections.To(it) {
		d.Connections.Disconnect(c.Handle)
	}
	for _, c := range it.Children() {
		c.parent = nil
	}
	d.Log.Println("remove", it)
	d.items = append(d.items[:idx], d.items[idx+1:]...)
	it.SetSubject(nil)
	d.emit(event.ItemRemoved{ID: it.ID})
}

func (d *Diagram) emit(v any) {
	if d.OnEvent != nil {
		d.OnEvent(v)
	}
}
