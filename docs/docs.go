// Package docs provides design diagrams and the manual of umd.
package docs

import (
	"github.com/gregoryv/draw/design"
	"github.com/gregoryv/umd"
	"github.com/gregoryv/umd/connect"
	"github.com/gregoryv/umd/diagram"
	"github.com/gregoryv/umd/drop"
)

// NewDesignDiagram returns a class diagram of the model, diagram and
// connector types.
func NewDesignDiagram() *design.ClassDiagram {
	var (
		d           = design.NewClassDiagram()
		model       = d.Struct(umd.Model{})
		element     = d.Struct(umd.Element{})
		dia         = d.Struct(diagram.Diagram{})
		item        = d.Struct(diagram.Item{})
		connections = d.Struct(diagram.Connections{})
		connector   = d.Interface((*connect.Connector)(nil))
		registry    = d.Struct(connect.Registry{})
		containment = d.Struct(connect.Containment{})
		rel         = d.Struct(connect.Relationship{})
		dropper     = d.Struct(drop.Dropper{})
	)

	d.Place(model).At(20, 20)
	d.Place(element).Below(model)
	d.Place(dia, connections).RightOf(model).Move(80, 0)
	d.Place(item).Below(dia)

	d.Place(registry).RightOf(connections).Move(80, 0)
	d.Place(connector).Below(registry)
	d.Place(containment, rel).Below(connector)

	d.Place(dropper).Below(item)
	return d
}

// NewConnectSequence returns a sequence diagram of connecting a line
// handle to an item.
func NewConnectSequence() *design.SequenceDiagram {
	d := design.NewSequenceDiagram()
	d.ColWidth = 140
	var (
		reg   = d.AddStruct(connect.Registry{})
		con   = d.AddInterface((*connect.Connector)(nil))
		owner = d.Add("umd.ChangeOwner")
		conns = d.AddStruct(diagram.Connections{})
	)
	d.Link(reg, reg, "Lookup(item, line)")
	d.Link(reg, con, "Allow(handle, port)")
	d.Link(reg, con, "Disconnect(handle) : previous")
	d.Link(reg, con, "Connect(handle, port)")
	d.Link(con, owner, "container, contained")
	d.Link(reg, conns, "Connect(handle, item)")
	d.SetCaption("Figure 2. Semantic change before registry update")
	return d
}
