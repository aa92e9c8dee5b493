package umd

// CreateDependency returns a new dependency where client depends on
// supplier.
func CreateDependency(client, supplier *Element) *Element {
	m := client.model
	d := m.Create(KindDependency, "")
	d.Client = client.ID
	d.Supplier = supplier.ID
	return d
}

// CreateGeneralization returns a new generalization where specific
// specializes general.
func CreateGeneralization(specific, general *Element) *Element {
	m := specific.model
	g := m.Create(KindGeneralization, "")
	g.Specific = specific.ID
	g.General = general.ID
	return g
}

// CreateAssociation returns a new association with two owned ends
// typed by a and b in that order.
func CreateAssociation(a, b *Element) *Element {
	return createAssociation(KindAssociation, a, b)
}

// CreateExtension returns a new extension of metaclass by
// stereotype. The first end is typed by the metaclass.
func CreateExtension(metaclass, stereotype *Element) *Element {
	return createAssociation(KindExtension, metaclass, stereotype)
}

func createAssociation(k Kind, a, b *Element) *Element {
	m := a.model
	assoc := m.Create(k, "")
	for _, t := range []*Element{a, b} {
		end := m.Create(KindProperty, "")
		end.Type = t.ID
		_ = end.setOwner(assoc)
		assoc.MemberEnd = append(assoc.MemberEnd, end.ID)
	}
	return assoc
}

// EndType returns the type of the i:th member end of an association
// or extension. Returns nil if there is no such end.
func EndType(assoc *Element, i int) *Element {
	if i < 0 || i >= len(assoc.MemberEnd) {
		return nil
	}
	end := assoc.Ref(assoc.MemberEnd[i])
	if end == nil {
		return nil
	}
	return end.Ref(end.Type)
}

// CreateMessage returns a new message from send to received
// lifeline. Either lifeline may be nil in which case that occurrence
// is not set.
func CreateMessage(m *Model, send, received *Element) *Element {
	msg := m.Create(KindMessage, "")
	if send != nil {
		o := m.Create(KindOccurrence, "")
		o.Covered = send.ID
		o.SendEvent = msg.ID
		msg.SendEvent = o.ID
	}
	if received != nil {
		o := m.Create(KindOccurrence, "")
		o.Covered = received.ID
		o.ReceiveEvent = msg.ID
		msg.ReceiveEvent = o.ID
	}
	return msg
}

// SendLifeline returns the lifeline covered by the send occurrence of
// msg or nil.
func SendLifeline(msg *Element) *Element {
	return covered(msg.Ref(msg.SendEvent))
}

// ReceiveLifeline returns the lifeline covered by the receive
// occurrence of msg or nil.
func ReceiveLifeline(msg *Element) *Element {
	return covered(msg.Ref(msg.ReceiveEvent))
}

func covered(o *Element) *Element {
	if o == nil {
		return nil
	}
	return o.Ref(o.Covered)
}
