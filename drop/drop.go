/*
Package drop materializes existing elements onto diagrams.

Dropping a relationship also connects its line to existing
presentations of the related elements on the same diagram. Ends
without such presentation are left unconnected, dropping never fails
because of them.
*/
package drop

import (
	"fmt"
	"io"
	"log"

	"github.com/gregoryv/umd"
	"github.com/gregoryv/umd/connect"
	"github.com/gregoryv/umd/diagram"
)

// Drop creates an item for e at x, y on target using the default
// dropper.
func Drop(e *umd.Element, target diagram.Target, x, y float64) (*diagram.Item, error) {
	return Default.Drop(e, target, x, y)
}

// Default dropper uses connect.Default.
var Default = NewDropper()

// NewDropper returns a dropper using connect.Default with logging
// discarded.
func NewDropper() *Dropper {
	return &Dropper{
		Registry: connect.Default,
		Log:      log.New(io.Discard, "drop ", log.Flags()),
	}
}

// Dropper creates items for elements and wires their connections.
type Dropper struct {
	// Registry resolves connectors for relationship ends
	Registry *connect.Registry

	Log *log.Logger
}

// Drop creates a new item for e at x, y. If target is an item whose
// subject may own e, see umd.CanOwn, the new item is nested inside it,
// otherwise it's a top level item of the target diagram. Dropping the
// same element again creates another item.
func (dr *Dropper) Drop(e *umd.Element, target diagram.Target, x, y float64) (*diagram.Item, error) {
	if e == nil || target == nil {
		return nil, fmt.Errorf("Drop: %w", ErrNothing)
	}
	k, found := diagram.ItemKindOf(e.Kind)
	if !found {
		return nil, fmt.Errorf("Drop %v: %w", e, ErrNoItemKind)
	}
	d := target.Diagram()
	it := d.Create(k, e)
	it.X, it.Y = x, y

	if parent, ok := target.(*diagram.Item); ok && umd.CanOwn(parent.Subject(), e) {
		if err := it.SetParent(parent); err != nil {
			dr.Log.Print(err)
		}
	}
	if fn := handlerOf(e.Kind); fn != nil {
		fn(dr, e, it)
	}
	return it, nil
}

// connectEnds connects the handles of line to the first items on the
// same diagram depicting head and tail.
func (dr *Dropper) connectEnds(line *diagram.Item, head, tail *umd.Element) {
	d := line.Diagram()
	ends := []struct {
		h *diagram.Handle
		e *umd.Element
	}{
		{line.Head, head},
		{line.Tail, tail},
	}
	for _, end := range ends {
		target := d.PresentationOf(end.e)
		if target == nil {
			continue
		}
		if err := dr.Registry.ConnectHandle(end.h, target); err != nil {
			dr.Log.Print(err)
		}
	}
}

var (
	ErrNothing    = fmt.Errorf("nothing to drop")
	ErrNoItemKind = fmt.Errorf("no item kind")
)
