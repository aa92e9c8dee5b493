package umd

import (
	"fmt"
)

// Element is a node in the ownership forest of a model. Elements are
// created by Model.Create.
type Element struct {
	ID   string
	Kind Kind
	Name string

	// Relationship references by element ID. Which ones are used
	// depends on Kind.
	Client   string // dependency
	Supplier string // dependency
	Specific string // generalization
	General  string // generalization

	// MemberEnd holds the two property ends of an association or
	// extension. For extensions the first end is typed by the
	// metaclass and the second by the stereotype.
	MemberEnd []string
	Type      string // property

	SendEvent    string // message, occurrence
	ReceiveEvent string // message, occurrence
	Covered      string // occurrence, lifeline
	Action       string // pin

	model *Model

	// weak reference, resolved through the model on each access
	owner string

	presentation []Presentation
}

// Presentation is implemented by diagram items depicting an element.
type Presentation interface {
	Subject() *Element
}

func (e *Element) String() string {
	if e.Name == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + " " + e.Name
}

// Model returns the model e belongs to.
func (e *Element) Model() *Model { return e.model }

// Ref resolves an element reference by ID within the same model.
// Returns nil for empty or dangling references.
func (e *Element) Ref(id string) *Element {
	if id == "" || e.model == nil {
		return nil
	}
	return e.model.Lookup(id)
}

// Owner returns the owning element or nil.
func (e *Element) Owner() *Element {
	return e.Ref(e.owner)
}

// OwnedElements returns all elements owned by e in creation order.
// The result is computed by scanning the model.
func (e *Element) OwnedElements() []*Element {
	if e.model == nil {
		return nil
	}
	var res []*Element
	for _, o := range e.model.order {
		if o.owner == e.ID {
			res = append(res, o)
		}
	}
	return res
}

// Owns returns true if v is directly owned by e.
func (e *Element) Owns(v *Element) bool {
	return v != nil && v.owner != "" && v.owner == e.ID && v.model == e.model
}

// Package returns the owner if it is a package. Use NestingPackage
// for packages.
func (e *Element) Package() *Element {
	return asPackage(e.Owner())
}

// SetPackage makes p the owner of e, nil removes the owner.
func (e *Element) SetPackage(p *Element) error {
	if e.Kind.IsA(KindPackage) {
		return fmt.Errorf("SetPackage: %v: %w", e, ErrIsPackage)
	}
	return e.setPackageOwner(p)
}

// NestingPackage returns the owner of a package if it is a package.
func (e *Element) NestingPackage() *Element {
	return asPackage(e.Owner())
}

// SetNestingPackage makes p the owner of package e, nil removes the
// owner.
func (e *Element) SetNestingPackage(p *Element) error {
	if !e.Kind.IsA(KindPackage) {
		return fmt.Errorf("SetNestingPackage: %v: %w", e, ErrNotPackage)
	}
	return e.setPackageOwner(p)
}

func (e *Element) setPackageOwner(p *Element) error {
	if p != nil && !p.Kind.IsA(KindPackage) {
		return fmt.Errorf("%v: %w", p, ErrNotPackage)
	}
	return e.setOwner(p)
}

// setOwner is the only place an owner reference is written.
func (e *Element) setOwner(o *Element) error {
	var id string
	if o != nil {
		if o.model != e.model {
			return fmt.Errorf("%v owner %v: %w", e, o, ErrForeign)
		}
		for _, v := range SelfAndOwners(o) {
			if v == e {
				return fmt.Errorf("%v owner %v: %w", e, o, ErrCycle)
			}
		}
		id = o.ID
	}
	if e.owner == id {
		return nil
	}
	old := e.owner
	e.owner = id
	if e.model != nil {
		e.model.ownerChanged(e, old, id)
	}
	return nil
}

// Presentation returns the items depicting e.
func (e *Element) Presentation() []Presentation {
	res := make([]Presentation, len(e.presentation))
	copy(res, e.presentation)
	return res
}

// AddPresentation registers p as depicting e. Called by diagrams when
// items are created.
func (e *Element) AddPresentation(p Presentation) {
	for _, v := range e.presentation {
		if v == p {
			return
		}
	}
	e.presentation = append(e.presentation, p)
}

// RemovePresentation unregisters p.
func (e *Element) RemovePresentation(p Presentation) {
	for i, v := range e.presentation {
		if v == p {
			e.presentation = append(e.presentation[:i], e.presentation[i+1:]...)
			return
		}
	}
}

func asPackage(e *Element) *Element {
	if e != nil && e.Kind.IsA(KindPackage) {
		return e
	}
	return nil
}

var (
	ErrCycle      = fmt.Errorf("ownership cycle")
	ErrForeign    = fmt.Errorf("element of another model")
	ErrNotPackage = fmt.Errorf("not a package")
	ErrIsPackage  = fmt.Errorf("is a package, use nesting package")
)
