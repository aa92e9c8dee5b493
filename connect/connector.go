/*
Package connect decides and performs connections of line handles to
element items.

A Connector is resolved per connection attempt from a Registry keyed
by the pair (element item kind, line kind). The containment connector
keeps semantic ownership in sync with containment lines, relationship
connectors keep relationship ends in sync with their lines.
*/
package connect

import (
	"fmt"

	"github.com/gregoryv/umd/diagram"
)

// Connector is the policy for attaching a handle of one line to an
// element item.
type Connector interface {
	// Allow returns true if h may connect to port. It never changes
	// anything.
	Allow(h *diagram.Handle, port *diagram.Port) bool

	// Connect applies the semantic side of connecting h to port and
	// returns false if that failed.
	Connect(h *diagram.Handle, port *diagram.Port) bool

	// Disconnect reverts the semantic side of the connection of h
	// and removes it from the registry.
	Disconnect(h *diagram.Handle)
}

// Deferrer is implemented by connectors whose Connect can only act
// once both ends of the line are connected. While Deferred returns
// true a false result from Connect is not a rejection.
type Deferrer interface {
	Deferred(h *diagram.Handle) bool
}

// Factory returns a connector for attaching line to element.
type Factory func(element, line *diagram.Item) Connector

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[key]Factory),
	}
}

// Registry maps pairs of item kinds to connector factories.
type Registry struct {
	factories map[key]Factory
}

type key struct {
	element diagram.ItemKind
	line    diagram.ItemKind
}

// Register sets the factory used when a line of kind line connects to
// an item of kind element. Use diagram.AnyElement to match all
// element items.
func (r *Registry) Register(element, line diagram.ItemKind, f Factory) {
	r.factories[key{element, line}] = f
}

// Lookup returns a connector for attaching line to element. Exact
// kind pairs take precedence over diagram.AnyElement, which never
// matches line items.
func (r *Registry) Lookup(element, line *diagram.Item) (Connector, error) {
	if element == nil || line == nil {
		return nil, ErrNoConnector
	}
	kinds := []diagram.ItemKind{element.Kind}
	if !element.Kind.IsLine() {
		kinds = append(kinds, diagram.AnyElement)
	}
	for _, k := range kinds {
		if f, found := r.factories[key{k, line.Kind}]; found {
			return f(element, line), nil
		}
	}
	return nil, fmt.Errorf("%v to %v: %w", line.Kind, element.Kind, ErrNoConnector)
}

// Base provides the generic checks and bookkeeping every connector
// extends.
type Base struct {
	Element *diagram.Item
	Line    *diagram.Item
}

// Allow returns true if port belongs to the element item, the element
// is not a line and both items are on the same diagram.
func (b *Base) Allow(h *diagram.Handle, port *diagram.Port) bool {
	switch {
	case h == nil || h.Item() != b.Line:
		return false
	case port == nil || port.Item() != b.Element:
		return false
	case b.Element == b.Line || b.Element.Kind.IsLine():
		return false
	}
	return b.Element.Diagram() == b.Line.Diagram()
}

// Connect has nothing to apply and returns true.
func (b *Base) Connect(_ *diagram.Handle, _ *diagram.Port) bool { return true }

// Disconnect removes h from the registry.
func (b *Base) Disconnect(h *diagram.Handle) {
	b.Line.Diagram().Connections.Disconnect(h)
}

// Connected returns the item h is attached to or nil.
func (b *Base) Connected(h *diagram.Handle) *diagram.Item {
	if h == nil {
		return nil
	}
	return b.Line.Diagram().Connections.Connected(h)
}

var ErrNoConnector = fmt.Errorf("no connector")
