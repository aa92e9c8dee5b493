package umd

import (
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/gregoryv/umd/event"
)

// NewModel returns an empty model with logging discarded.
func NewModel() *Model {
	return &Model{
		Log:      log.New(io.Discard, "umd ", log.Flags()),
		elements: make(map[string]*Element),
	}
}

// Model is an element factory and index of all its elements. Methods
// are not safe to call from multiple go routines.
type Model struct {
	// OnEvent if set is called after each change, see package event.
	OnEvent func(any)

	Log *log.Logger

	elements map[string]*Element
	order    []*Element
}

// Create returns a new element of the given kind with a generated ID.
func (m *Model) Create(k Kind, name string) *Element {
	e := &Element{
		ID:    uuid.NewString(),
		Kind:  k,
		Name:  name,
		model: m,
	}
	m.elements[e.ID] = e
	m.order = append(m.order, e)
	m.Log.Println("create", e)
	m.emit(event.ElementCreated{ID: e.ID, Kind: k.String()})
	return e
}

// Lookup returns element with the given id or nil if not found.
func (m *Model) Lookup(id string) *Element {
	return m.elements[id]
}

// Elements returns all elements in creation order.
func (m *Model) Elements() []*Element {
	res := make([]*Element, len(m.order))
	copy(res, m.order)
	return res
}

// Select returns all elements which are of kind k, see Kind.IsA.
func (m *Model) Select(k Kind) []*Element {
	var res []*Element
	for _, e := range m.order {
		if e.Kind.IsA(k) {
			res = append(res, e)
		}
	}
	return res
}

// Roots returns all elements without an owner in creation order.
func (m *Model) Roots() []*Element {
	var res []*Element
	for _, e := range m.order {
		if e.Owner() == nil {
			res = append(res, e)
		}
	}
	return res
}

// Delete removes e from the model. Elements owned by e lose their
// owner.
func (m *Model) Delete(e *Element) {
	if e == nil || m.elements[e.ID] != e {
		return
	}
	for _, o := range e.OwnedElements() {
		_ = o.setOwner(nil)
	}
	delete(m.elements, e.ID)
	for i, v := range m.order {
		if v == e {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.Log.Println("delete", e)
	m.emit(event.ElementDeleted{ID: e.ID})
}

func (m *Model) ownerChanged(e *Element, old, id string) {
	m.Log.Printf("owner %v: %q -> %q", e, old, id)
	m.emit(event.OwnerChanged{ID: e.ID, Old: old, New: id})
}

func (m *Model) emit(v any) {
	if m.OnEvent != nil {
		m.OnEvent(v)
	}
}
