package diagram

import "github.com/gregoryv/umd/event"

// Connection records that Handle is attached to Connected.
type Connection struct {
	Handle    *Handle
	Connected *Item
}

// Connections is the registry of line handle attachments of one
// diagram. Each handle is connected to at most one item.
type Connections struct {
	diagram *Diagram
	all     []*Connection
}

// Get returns the connection of h or nil if h is unconnected.
func (c *Connections) Get(h *Handle) *Connection {
	for _, v := range c.all {
		if v.Handle == h {
			return v
		}
	}
	return nil
}

// Connected returns the item h is attached to or nil.
func (c *Connections) Connected(h *Handle) *Item {
	if v := c.Get(h); v != nil {
		return v.Connected
	}
	return nil
}

// Connect attaches h to item, replacing any previous connection of
// h. This is bookkeeping only, see package connect for gestures.
func (c *Connections) Connect(h *Handle, item *Item) {
	if h == nil || item == nil {
		return
	}
	if v := c.Get(h); v != nil {
		if v.Connected == item {
			return
		}
		c.Disconnect(h)
	}
	c.all = append(c.all, &Connection{Handle: h, Connected: item})
	c.diagram.Log.Printf("connect %v to %v", h, item)
	c.diagram.emit(event.Connected{
		Line: h.item.ID, End: h.end.String(), Item: item.ID,
	})
}

// Disconnect removes the connection of h if any.
func (c *Connections) Disconnect(h *Handle) {
	for i, v := range c.all {
		if v.Handle != h {
			continue
		}
		c.all = append(c.all[:i], c.all[i+1:]...)
		c.diagram.Log.Printf("disconnect %v from %v", h, v.Connected)
		c.diagram.emit(event.Disconnected{
			Line: h.item.ID, End: h.end.String(), Item: v.Connected.ID,
		})
		return
	}
}

// To returns all connections attached to item.
func (c *Connections) To(item *Item) []*Connection {
	var res []*Connection
	for _, v := range c.all {
		if v.Connected == item {
			res = append(res, v)
		}
	}
	return res
}

// All returns every connection in the order they were made.
func (c *Connections) All() []*Connection {
	res := make([]*Connection, len(c.all))
	copy(res, c.all)
	return res
}
