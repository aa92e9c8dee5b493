// Package umdtest provides test helpers for models and diagrams.
package umdtest

import (
	"reflect"

	"github.com/gregoryv/umd"
	"github.com/gregoryv/umd/diagram"
)

// NewDiagram returns a new model and an empty diagram not nested in
// any package.
func NewDiagram() (*umd.Model, *diagram.Diagram) {
	m := umd.NewModel()
	return m, diagram.New(m.Create(umd.KindDiagram, "main"))
}

// NewNestedDiagram returns a new model and an empty diagram owned by
// a package named root, which is also returned.
func NewNestedDiagram() (*umd.Model, *diagram.Diagram, *umd.Element) {
	m := umd.NewModel()
	root := m.Create(umd.KindPackage, "root")
	sub := m.Create(umd.KindDiagram, "main")
	if err := sub.SetPackage(root); err != nil {
		panic(err.Error())
	}
	return m, diagram.New(sub), root
}

// Recorder collects events, use Record as OnEvent callback.
type Recorder struct {
	Events []any
}

func (r *Recorder) Record(v any) {
	r.Events = append(r.Events, v)
}

// Count returns number of recorded events of the same type as v.
func (r *Recorder) Count(v any) int {
	t := reflect.TypeOf(v)
	var n int
	for _, e := range r.Events {
		if reflect.TypeOf(e) == t {
			n++
		}
	}
	return n
}
