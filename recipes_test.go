package umd

import "testing"

func TestCreateAssociation(t *testing.T) {
	m := NewModel()
	a := m.Create(KindClass, "a")
	b := m.Create(KindClass, "b")
	assoc := CreateAssociation(a, b)
	if EndType(assoc, 0) != a || EndType(assoc, 1) != b {
		t.Error("end types", EndType(assoc, 0), EndType(assoc, 1))
	}
	if EndType(assoc, 2) != nil {
		t.Error("third end")
	}
	if got := assoc.OwnedElements(); len(got) != 2 {
		t.Error("ends should be owned by association", got)
	}
}

func TestCreateExtension(t *testing.T) {
	m := NewModel()
	meta := m.Create(KindClass, "Class")
	st := m.Create(KindStereotype, "entity")
	ext := CreateExtension(meta, st)
	if ext.Kind != KindExtension {
		t.Error(ext.Kind)
	}
	if EndType(ext, 0) != meta || EndType(ext, 1) != st {
		t.Error("end types")
	}
}

func TestCreateDependency(t *testing.T) {
	m := NewModel()
	client := m.Create(KindClass, "client")
	supplier := m.Create(KindClass, "supplier")
	d := CreateDependency(client, supplier)
	if d.Ref(d.Client) != client || d.Ref(d.Supplier) != supplier {
		t.Error(d)
	}
}

func TestCreateGeneralization(t *testing.T) {
	m := NewModel()
	specific := m.Create(KindClass, "Car")
	general := m.Create(KindClass, "Vehicle")
	g := CreateGeneralization(specific, general)
	if g.Ref(g.Specific) != specific || g.Ref(g.General) != general {
		t.Error(g)
	}
}

func TestCreateMessage(t *testing.T) {
	m := NewModel()
	a := m.Create(KindLifeline, "a")
	b := m.Create(KindLifeline, "b")

	msg := CreateMessage(m, a, b)
	if SendLifeline(msg) != a || ReceiveLifeline(msg) != b {
		t.Error("lifelines")
	}
	msg = CreateMessage(m, a, nil)
	if SendLifeline(msg) != a || ReceiveLifeline(msg) != nil {
		t.Error("send only")
	}
	msg = CreateMessage(m, nil, b)
	if SendLifeline(msg) != nil || ReceiveLifeline(msg) != b {
		t.Error("receive only")
	}
}
