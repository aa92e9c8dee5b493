package connect

import (
	"github.com/gregoryv/umd"
	"github.com/gregoryv/umd/diagram"
)

// relation describes how a relationship line maps onto its element.
type relation struct {
	line diagram.ItemKind
	kind umd.Kind

	// required kinds of the element subjects at each end
	head umd.Kind
	tail umd.Kind

	// create returns a new relationship between the head and tail
	// subjects, nil means lines of this kind are never created
	// implicitly.
	create func(head, tail *umd.Element) *umd.Element

	// set points the given end of rel at e
	set func(rel *umd.Element, end diagram.End, e *umd.Element)
}

var relations = []relation{
	{
		line: diagram.DependencyLine,
		kind: umd.KindDependency,
		head: umd.KindElement, // supplier
		tail: umd.KindElement, // client
		create: func(head, tail *umd.Element) *umd.Element {
			return umd.CreateDependency(tail, head)
		},
		set: func(rel *umd.Element, end diagram.End, e *umd.Element) {
			if end == diagram.Head {
				rel.Supplier = e.ID
			} else {
				rel.Client = e.ID
			}
		},
	},
	{
		line: diagram.GeneralizationLine,
		kind: umd.KindGeneralization,
		head: umd.KindClassifier, // general
		tail: umd.KindClassifier, // specific
		create: func(head, tail *umd.Element) *umd.Element {
			return umd.CreateGeneralization(tail, head)
		},
		set: func(rel *umd.Element, end diagram.End, e *umd.Element) {
			if end == diagram.Head {
				rel.General = e.ID
			} else {
				rel.Specific = e.ID
			}
		},
	},
	{
		line:   diagram.AssociationLine,
		kind:   umd.KindAssociation,
		head:   umd.KindClassifier,
		tail:   umd.KindClassifier,
		create: umd.CreateAssociation,
		set:    setMemberEnd,
	},
	{
		line:   diagram.ExtensionLine,
		kind:   umd.KindExtension,
		head:   umd.KindClass, // metaclass
		tail:   umd.KindStereotype,
		create: umd.CreateExtension,
		set:    setMemberEnd,
	},
	{
		line: diagram.MessageLine,
		kind: umd.KindMessage,
		head: umd.KindLifeline, // send
		tail: umd.KindLifeline, // receive
		create: func(head, tail *umd.Element) *umd.Element {
			return umd.CreateMessage(head.Model(), head, tail)
		},
		set: setCovered,
	},
}

func setMemberEnd(rel *umd.Element, end diagram.End, e *umd.Element) {
	i := int(end)
	if i >= len(rel.MemberEnd) {
		return
	}
	if p := rel.Ref(rel.MemberEnd[i]); p != nil {
		p.Type = e.ID
	}
}

// setCovered points the send (head) or receive (tail) occurrence of a
// message at lifeline e, the occurrence is created if missing.
func setCovered(msg *umd.Element, end diagram.End, e *umd.Element) {
	ref := &msg.SendEvent
	if end == diagram.Tail {
		ref = &msg.ReceiveEvent
	}
	o := msg.Ref(*ref)
	if o == nil {
		o = msg.Model().Create(umd.KindOccurrence, "")
		if end == diagram.Head {
			o.SendEvent = msg.ID
		} else {
			o.ReceiveEvent = msg.ID
		}
		*ref = o.ID
	}
	o.Covered = e.ID
}

// factory returns a Factory for connectors of this relation.
func (r relation) factory() Factory {
	return func(element, line *diagram.Item) Connector {
		return &Relationship{
			Base: Base{Element: element, Line: line},
			rel:  r,
		}
	}
}

// Relationship connects dependency, generalization, association,
// extension and message lines.
type Relationship struct {
	Base

	rel relation
}

// Allow returns true if the element subject is of the kind required
// at the end of h and the line subject, if any, is of the expected
// kind.
func (r *Relationship) Allow(h *diagram.Handle, port *diagram.Port) bool {
	if !r.Base.Allow(h, port) {
		return false
	}
	e := r.Element.Subject()
	if e == nil {
		return false
	}
	if s := r.Line.Subject(); s != nil && !s.Kind.IsA(r.rel.kind) {
		return false
	}
	if h.End() == diagram.Head {
		return e.Kind.IsA(r.rel.head)
	}
	return e.Kind.IsA(r.rel.tail)
}

// Connect points the relationship end of h at the element subject. A
// line without subject gets a new relationship once both ends are
// connected.
func (r *Relationship) Connect(h *diagram.Handle, _ *diagram.Port) bool {
	e := r.Element.Subject()
	if e == nil {
		return false
	}
	rel := r.Line.Subject()
	if rel != nil {
		r.rel.set(rel, h.End(), e)
		return true
	}
	other := r.Connected(h.Opposite())
	if other == nil || other.Subject() == nil || r.rel.create == nil {
		return true
	}
	head, tail := e, other.Subject()
	if h.End() == diagram.Tail {
		head, tail = tail, head
	}
	r.Line.SetSubject(r.rel.create(head, tail))
	return true
}
