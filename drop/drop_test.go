package drop

import (
	"errors"
	"testing"

	"github.com/gregoryv/umd"
	"github.com/gregoryv/umd/connect"
	"github.com/gregoryv/umd/diagram"
	"github.com/gregoryv/umd/umdtest"
)

func TestDrop_class(t *testing.T) {
	m, d := umdtest.NewDiagram()
	cls := m.Create(umd.KindClass, "Order")

	it := mustDrop(t, cls, d)
	if len(cls.Presentation()) != 1 || cls.Presentation()[0] != it {
		t.Error("presentation", cls.Presentation())
	}
	if items := d.Items(); len(items) != 1 || items[0] != it {
		t.Error("not on diagram", items)
	}
	if it.Kind != diagram.ClassItem || it.Parent() != nil {
		t.Error(it.Kind, it.Parent())
	}
}

func TestDrop_twice(t *testing.T) {
	m, d := umdtest.NewDiagram()
	cls := m.Create(umd.KindClass, "Order")
	a := mustDrop(t, cls, d)
	b := mustDrop(t, cls, d)
	if a == b {
		t.Fatal("same item")
	}
	p := cls.Presentation()
	if len(p) != 2 || p[0] != a || p[1] != b {
		t.Error(p)
	}
}

func TestDrop_dependency(t *testing.T) {
	m, d := umdtest.NewDiagram()
	client := m.Create(umd.KindClass, "client")
	supplier := m.Create(umd.KindClass, "supplier")
	dep := umd.CreateDependency(client, supplier)

	mustDrop(t, client, d)
	mustDrop(t, supplier, d)
	it := mustDrop(t, dep, d)

	assertEnds(t, it, supplier, client)
}

func TestDrop_association(t *testing.T) {
	m, d := umdtest.NewDiagram()
	a := m.Create(umd.KindClass, "a")
	b := m.Create(umd.KindClass, "b")
	assoc := umd.CreateAssociation(a, b)

	mustDrop(t, a, d)
	mustDrop(t, b, d)
	it := mustDrop(t, assoc, d)

	assertEnds(t, it, a, b)
}

func TestDrop_generalization(t *testing.T) {
	m, d := umdtest.NewDiagram()
	a := m.Create(umd.KindClass, "a")
	b := m.Create(umd.KindClass, "b")
	g := umd.CreateGeneralization(a, b)

	mustDrop(t, a, d)
	mustDrop(t, b, d)
	it := mustDrop(t, g, d)

	assertEnds(t, it, b, a)
}

func TestDrop_extension(t *testing.T) {
	m, d := umdtest.NewDiagram()
	metaclass := m.Create(umd.KindClass, "Class")
	stereotype := m.Create(umd.KindStereotype, "entity")
	ext := umd.CreateExtension(metaclass, stereotype)

	mustDrop(t, metaclass, d)
	mustDrop(t, stereotype, d)
	it := mustDrop(t, ext, d)

	if it.Kind != diagram.ExtensionLine {
		t.Error(it.Kind)
	}
	assertEnds(t, it, metaclass, stereotype)
}

func TestDrop_message(t *testing.T) {
	m, d := umdtest.NewDiagram()
	a := m.Create(umd.KindLifeline, "a")
	b := m.Create(umd.KindLifeline, "b")
	aItem := mustDrop(t, a, d)
	bItem := mustDrop(t, b, d)
	msgItem := d.Create(diagram.MessageLine, nil)
	if err := connect.Lifelines(msgItem, aItem, bItem); err != nil {
		t.Fatal(err)
	}

	it := mustDrop(t, msgItem.Subject(), d)
	assertEnds(t, it, a, b)
}

func TestDrop_messageSendConnected(t *testing.T) {
	m, d := umdtest.NewDiagram()
	a := m.Create(umd.KindLifeline, "a")
	aItem := mustDrop(t, a, d)
	msgItem := d.Create(diagram.MessageLine, nil)
	if err := connect.Lifelines(msgItem, aItem, nil); err != nil {
		t.Fatal(err)
	}

	it := mustDrop(t, msgItem.Subject(), d)
	if d.Connections.Connected(it.Head) != aItem {
		t.Error("head not on send lifeline")
	}
	if v := d.Connections.Get(it.Tail); v != nil {
		t.Error("tail connected", v)
	}
}

func TestDrop_messageReceivedConnected(t *testing.T) {
	m, d := umdtest.NewDiagram()
	b := m.Create(umd.KindLifeline, "b")
	bItem := mustDrop(t, b, d)
	msgItem := d.Create(diagram.MessageLine, nil)
	if err := connect.Lifelines(msgItem, nil, bItem); err != nil {
		t.Fatal(err)
	}

	it := mustDrop(t, msgItem.Subject(), d)
	if v := d.Connections.Get(it.Head); v != nil {
		t.Error("head connected", v)
	}
	if d.Connections.Connected(it.Tail) != bItem {
		t.Error("tail not on received lifeline")
	}
}

func TestDrop_messageLifelineMissing(t *testing.T) {
	m, d := umdtest.NewDiagram()
	a := m.Create(umd.KindLifeline, "a")
	b := m.Create(umd.KindLifeline, "b")
	msg := umd.CreateMessage(m, a, b)
	// only b is on the diagram
	bItem := mustDrop(t, b, d)

	it := mustDrop(t, msg, d)
	if d.Connections.Get(it.Head) != nil {
		t.Error("head connected without lifeline item")
	}
	if d.Connections.Connected(it.Tail) != bItem {
		t.Error("tail not connected")
	}
}

func TestDrop_unconnectedRelationship(t *testing.T) {
	m, d := umdtest.NewDiagram()
	dep := umd.CreateDependency(
		m.Create(umd.KindClass, "client"), m.Create(umd.KindClass, "supplier"),
	)
	it := mustDrop(t, dep, d)
	if len(d.Connections.All()) != 0 {
		t.Error("connected without end items")
	}
	if it.Subject() != dep {
		t.Error(it.Subject())
	}
}

func TestDrop_pin(t *testing.T) {
	m, d := umdtest.NewDiagram()
	action := m.Create(umd.KindAction, "act")
	in := m.Create(umd.KindInputPin, "in")
	in.Action = action.ID
	out := m.Create(umd.KindOutputPin, "out")
	out.Action = action.ID

	actionItem := mustDrop(t, action, d)
	inItem := mustDrop(t, in, d)
	if inItem.Subject() != in || inItem.Parent() != actionItem {
		t.Error("input pin", inItem.Parent())
	}
	outItem := mustDrop(t, out, d)
	if outItem.Subject() != out || outItem.Parent().Subject() != action {
		t.Error("output pin", outItem.Parent())
	}
}

func TestDrop_pinWithoutAction(t *testing.T) {
	m, d := umdtest.NewDiagram()
	pin := m.Create(umd.KindInputPin, "in")
	pin.Action = m.Create(umd.KindAction, "act").ID

	if it := mustDrop(t, pin, d); it.Parent() != nil {
		t.Error(it.Parent())
	}
}

func TestDrop_onPresentation(t *testing.T) {
	m, d := umdtest.NewDiagram()
	pkgItem := d.Create(diagram.PackageItem, m.Create(umd.KindPackage, "pkg"))
	cls := m.Create(umd.KindClass, "cls")

	it := mustDrop(t, cls, pkgItem)
	if it.Parent() != pkgItem {
		t.Error("parent", it.Parent())
	}
	if it.Diagram() != d {
		t.Error("diagram")
	}
	if cls.Package() != nil {
		t.Error("drop should not change ownership")
	}
}

func TestDrop_onPresentationThatCannotOwn(t *testing.T) {
	m, d := umdtest.NewDiagram()
	pkgItem := d.Create(diagram.PackageItem, m.Create(umd.KindPackage, "pkg"))
	lifelineItem := d.Create(diagram.LifelineItem, m.Create(umd.KindLifeline, "l"))

	if it := mustDrop(t, m.Create(umd.KindAction, "act"), pkgItem); it.Parent() != nil {
		t.Error("action nested in package", it.Parent())
	}
	if it := mustDrop(t, m.Create(umd.KindClass, "cls"), lifelineItem); it.Parent() != nil {
		t.Error("class nested in lifeline", it.Parent())
	}
}

func TestDrop_noItemKind(t *testing.T) {
	m, d := umdtest.NewDiagram()
	_, err := Drop(m.Create(umd.KindProperty, "p"), d, 0, 0)
	if !errors.Is(err, ErrNoItemKind) {
		t.Error(err)
	}
	if _, err := Drop(nil, d, 0, 0); !errors.Is(err, ErrNothing) {
		t.Error(err)
	}
}

func TestDrop_position(t *testing.T) {
	m, d := umdtest.NewDiagram()
	if it, _ := Drop(m.Create(umd.KindClass, "c"), d, 10, 20); it.X != 10 || it.Y != 20 {
		t.Error(it.X, it.Y)
	}
}

// ----------------------------------------

func mustDrop(t *testing.T, e *umd.Element, target diagram.Target) *diagram.Item {
	t.Helper()
	it, err := Drop(e, target, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	return it
}

// assertEnds checks the line head and tail are connected to the first
// presentation of the given elements.
func assertEnds(t *testing.T, line *diagram.Item, head, tail *umd.Element) {
	t.Helper()
	conns := line.Diagram().Connections
	if got := conns.Connected(line.Head); got == nil || got != head.Presentation()[0] {
		t.Error("head connected to", got)
	}
	if got := conns.Connected(line.Tail); got == nil || got != tail.Presentation()[0] {
		t.Error("tail connected to", got)
	}
}
