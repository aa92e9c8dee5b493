package connect

import (
	"fmt"

	"github.com/gregoryv/umd"
	"github.com/gregoryv/umd/diagram"
)

// Default is the registry used by the package level functions.
var Default = NewDefaultRegistry()

// NewDefaultRegistry returns a registry with the containment and all
// relationship connectors registered for any element item.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(diagram.AnyElement, diagram.ContainmentLine, NewContainment)
	for _, rel := range relations {
		r.Register(diagram.AnyElement, rel.line, rel.factory())
	}
	return r
}

// Handle connects h to target using the Default registry.
func Handle(h *diagram.Handle, target *diagram.Item) error {
	return Default.ConnectHandle(h, target)
}

// Release disconnects h using the Default registry.
func Release(h *diagram.Handle) {
	Default.DisconnectHandle(h)
}

// RemoveItem releases every connection of it and takes it off its
// diagram, using the Default registry.
func RemoveItem(it *diagram.Item) {
	Default.RemoveItem(it)
}

// ConnectHandle connects h to target. The semantic change is applied
// before the registry is updated. If the connector rejects the change
// the registry is left as it was and a previous connection of h is
// restored.
func (r *Registry) ConnectHandle(h *diagram.Handle, target *diagram.Item) error {
	if h == nil || target == nil {
		return fmt.Errorf("ConnectHandle: %w", ErrNoConnector)
	}
	line := h.Item()
	conns := line.Diagram().Connections
	c, err := r.Lookup(target, line)
	if err != nil {
		return err
	}
	port := target.Port()
	if port == nil || target.Diagram() != line.Diagram() {
		return fmt.Errorf("%v to %v: %w", h, target, ErrNotAllowed)
	}
	if !c.Allow(h, port) {
		return fmt.Errorf("%v to %v: %w", h, target, ErrNotAllowed)
	}
	prev := conns.Connected(h)
	if prev == target {
		return nil
	}
	if prev != nil {
		r.DisconnectHandle(h)
	}
	if !c.Connect(h, port) && !deferred(c, h) {
		if prev != nil {
			r.restore(h, prev)
		}
		return fmt.Errorf("%v to %v: %w", h, target, ErrRejected)
	}
	conns.Connect(h, target)
	return nil
}

// restore reconnects h to prev, used when a new connection is
// rejected.
func (r *Registry) restore(h *diagram.Handle, prev *diagram.Item) {
	c, err := r.Lookup(prev, h.Item())
	if err != nil {
		return
	}
	if c.Connect(h, prev.Port()) || deferred(c, h) {
		h.Item().Diagram().Connections.Connect(h, prev)
	}
}

func deferred(c Connector, h *diagram.Handle) bool {
	d, ok := c.(Deferrer)
	return ok && d.Deferred(h)
}

// DisconnectHandle releases h from the item it's connected to. The
// connector reverts the semantic side before the registry record is
// removed. Does nothing if h is unconnected.
func (r *Registry) DisconnectHandle(h *diagram.Handle) {
	if h == nil {
		return
	}
	line := h.Item()
	conns := line.Diagram().Connections
	target := conns.Connected(h)
	if target == nil {
		return
	}
	c, err := r.Lookup(target, line)
	if err != nil {
		conns.Disconnect(h)
		return
	}
	c.Disconnect(h)
}

// RemoveItem releases all connections of it, its own handles and
// those of lines attached to it, then removes it from its diagram.
func (r *Registry) RemoveItem(it *diagram.Item) {
	d := it.Diagram()
	if it.Kind.IsLine() {
		r.DisconnectHandle(it.Head)
		r.DisconnectHandle(it.Tail)
	}
	for _, c := range d.Connections.To(it) {
		r.DisconnectHandle(c.Handle)
	}
	d.Remove(it)
}

// Lifelines gives msg a new message subject from the send lifeline
// item to the received one and connects the ends. Either lifeline may
// be nil, that end is then left unconnected.
func Lifelines(msg, send, received *diagram.Item) error {
	var m *umd.Model
	var a, b *umd.Element
	if send != nil {
		a = send.Subject()
	}
	if received != nil {
		b = received.Subject()
	}
	switch {
	case a != nil:
		m = a.Model()
	case b != nil:
		m = b.Model()
	default:
		return fmt.Errorf("Lifelines: %w", ErrNoLifeline)
	}
	msg.SetSubject(umd.CreateMessage(m, a, b))
	if send != nil {
		if err := Handle(msg.Head, send); err != nil {
			return err
		}
	}
	if received != nil {
		if err := Handle(msg.Tail, received); err != nil {
			return err
		}
	}
	return nil
}

var (
	ErrNotAllowed = fmt.Errorf("connection not allowed")
	ErrRejected   = fmt.Errorf("connection rejected")
	ErrNoLifeline = fmt.Errorf("no lifeline subject")
)
