package connect

import (
	"errors"
	"testing"

	"github.com/gregoryv/umd"
	"github.com/gregoryv/umd/diagram"
	"github.com/gregoryv/umd/umdtest"
)

func TestRelationship_createDependency(t *testing.T) {
	m, d := umdtest.NewDiagram()
	client := m.Create(umd.KindClass, "client")
	supplier := m.Create(umd.KindClass, "supplier")
	line := d.Create(diagram.DependencyLine, nil)
	mustConnect(t, line.Tail, d.Create(diagram.ClassItem, client))
	if line.Subject() != nil {
		t.Fatal("created with one end connected")
	}
	mustConnect(t, line.Head, d.Create(diagram.ClassItem, supplier))

	dep := line.Subject()
	if dep == nil || dep.Kind != umd.KindDependency {
		t.Fatal("dependency not created", dep)
	}
	if dep.Ref(dep.Client) != client || dep.Ref(dep.Supplier) != supplier {
		t.Error("wrong orientation", dep.Client, dep.Supplier)
	}
}

func TestRelationship_createGeneralization(t *testing.T) {
	m, d := umdtest.NewDiagram()
	general := m.Create(umd.KindClass, "Vehicle")
	specific := m.Create(umd.KindClass, "Car")
	line := d.Create(diagram.GeneralizationLine, nil)
	mustConnect(t, line.Head, d.Create(diagram.ClassItem, general))
	mustConnect(t, line.Tail, d.Create(diagram.ClassItem, specific))

	g := line.Subject()
	if g == nil || g.Ref(g.General) != general || g.Ref(g.Specific) != specific {
		t.Error("generalization", g)
	}
}

func TestRelationship_Allow(t *testing.T) {
	m, d := umdtest.NewDiagram()
	lifeline := d.Create(diagram.LifelineItem, m.Create(umd.KindLifeline, "l"))
	cls := d.Create(diagram.ClassItem, m.Create(umd.KindClass, "c"))
	stereotype := d.Create(diagram.StereotypeItem, m.Create(umd.KindStereotype, "s"))
	empty := d.Create(diagram.ClassItem, nil)

	cases := []struct {
		line diagram.ItemKind
		end  diagram.End
		item *diagram.Item
		exp  bool
	}{
		{diagram.GeneralizationLine, diagram.Head, cls, true},
		{diagram.GeneralizationLine, diagram.Head, lifeline, false},
		{diagram.MessageLine, diagram.Tail, lifeline, true},
		{diagram.MessageLine, diagram.Tail, cls, false},
		{diagram.ExtensionLine, diagram.Head, cls, true},
		{diagram.ExtensionLine, diagram.Tail, cls, false},
		{diagram.ExtensionLine, diagram.Tail, stereotype, true},
		{diagram.DependencyLine, diagram.Head, empty, false},
	}
	for _, c := range cases {
		line := d.Create(c.line, nil)
		con, err := Default.Lookup(c.item, line)
		if err != nil {
			t.Fatal(err)
		}
		got := con.Allow(line.Handle(c.end), c.item.Port())
		if got != c.exp {
			t.Errorf("%v %v on %v got %v", c.line, c.end, c.item, got)
		}
	}
}

func TestRelationship_reconnect(t *testing.T) {
	m, d := umdtest.NewDiagram()
	a := m.Create(umd.KindClass, "a")
	b := m.Create(umd.KindClass, "b")
	c := m.Create(umd.KindClass, "c")
	assoc := umd.CreateAssociation(a, b)
	line := d.Create(diagram.AssociationLine, assoc)

	mustConnect(t, line.Tail, d.Create(diagram.ClassItem, c))
	if umd.EndType(assoc, 1) != c {
		t.Error("tail end not moved", umd.EndType(assoc, 1))
	}
	if umd.EndType(assoc, 0) != a {
		t.Error("head end changed")
	}
}

func TestRelationship_wrongSubject(t *testing.T) {
	m, d := umdtest.NewDiagram()
	cls := d.Create(diagram.ClassItem, m.Create(umd.KindClass, "c"))
	// line presenting the wrong kind of element
	line := d.Create(diagram.DependencyLine, m.Create(umd.KindGeneralization, ""))
	if err := Handle(line.Head, cls); !errors.Is(err, ErrNotAllowed) {
		t.Error(err)
	}
}

func TestLifelines(t *testing.T) {
	m, d := umdtest.NewDiagram()
	a := d.Create(diagram.LifelineItem, m.Create(umd.KindLifeline, "a"))
	b := d.Create(diagram.LifelineItem, m.Create(umd.KindLifeline, "b"))
	msg := d.Create(diagram.MessageLine, nil)

	if err := Lifelines(msg, a, b); err != nil {
		t.Fatal(err)
	}
	s := msg.Subject()
	if umd.SendLifeline(s) != a.Subject() || umd.ReceiveLifeline(s) != b.Subject() {
		t.Error("lifelines of message")
	}
	if d.Connections.Connected(msg.Head) != a || d.Connections.Connected(msg.Tail) != b {
		t.Error("ends not connected")
	}
	if err := Lifelines(d.Create(diagram.MessageLine, nil), nil, nil); !errors.Is(err, ErrNoLifeline) {
		t.Error(err)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	m, d := umdtest.NewDiagram()
	cls := d.Create(diagram.ClassItem, m.Create(umd.KindClass, "c"))
	line := d.Create(diagram.ContainmentLine, nil)

	r := NewRegistry()
	if _, err := r.Lookup(cls, line); !errors.Is(err, ErrNoConnector) {
		t.Error(err)
	}
	r.Register(diagram.AnyElement, diagram.ContainmentLine, NewContainment)
	var exact bool
	r.Register(diagram.ClassItem, diagram.ContainmentLine,
		func(element, line *diagram.Item) Connector {
			exact = true
			return &Base{Element: element, Line: line}
		},
	)
	if _, err := r.Lookup(cls, line); err != nil {
		t.Fatal(err)
	}
	if !exact {
		t.Error("exact pair should win over any element")
	}
}

func TestBase_Allow(t *testing.T) {
	m, d := umdtest.NewDiagram()
	cls := d.Create(diagram.ClassItem, m.Create(umd.KindClass, "c"))
	other := d.Create(diagram.ClassItem, m.Create(umd.KindClass, "o"))
	line := d.Create(diagram.DependencyLine, nil)
	b := &Base{Element: cls, Line: line}

	if !b.Allow(line.Head, cls.Port()) {
		t.Error("own port")
	}
	if b.Allow(line.Head, other.Port()) {
		t.Error("port of other item")
	}
	if b.Allow(d.Create(diagram.DependencyLine, nil).Head, cls.Port()) {
		t.Error("handle of other line")
	}
	_, d2 := umdtest.NewDiagram()
	far := d2.Create(diagram.ClassItem, nil)
	if (&Base{Element: far, Line: line}).Allow(line.Head, far.Port()) {
		t.Error("item on other diagram")
	}
}
