// Package event provides model and diagram change event types.
//
// Events are passed to the OnEvent callback of a [umd.Model] or a
// [diagram.Diagram] once the change has been applied. All references
// are by ID so an event never keeps an element alive.
//
// [umd.Model]: https://pkg.go.dev/github.com/gregoryv/umd#Model
// [diagram.Diagram]: https://pkg.go.dev/github.com/gregoryv/umd/diagram#Diagram
package event

// ElementCreated indicates a new element in the model.
type ElementCreated struct {
	ID   string
	Kind string
}

// ElementDeleted indicates an element was removed from the model.
type ElementDeleted struct {
	ID string
}

// OwnerChanged indicates element ID got a new owner. Empty Old or New
// means no owner.
type OwnerChanged struct {
	ID  string
	Old string
	New string
}

// ItemCreated indicates a new presentation on a diagram. Subject is
// empty for items not depicting any element.
type ItemCreated struct {
	ID      string
	Kind    string
	Subject string
}

// ItemRemoved indicates a presentation was removed from its diagram.
type ItemRemoved struct {
	ID string
}

// Connected indicates the End (head or tail) of Line is attached to
// Item.
type Connected struct {
	Line string
	End  string
	Item string
}

// Disconnected indicates the End of Line was released from Item.
type Disconnected struct {
	Line string
	End  string
	Item string
}
