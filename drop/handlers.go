package drop

import (
	"github.com/gregoryv/umd"
	"github.com/gregoryv/umd/diagram"
)

// handler completes the item of a dropped element.
type handler func(dr *Dropper, e *umd.Element, it *diagram.Item)

var handlers = map[umd.Kind]handler{
	umd.KindDependency: func(dr *Dropper, e *umd.Element, it *diagram.Item) {
		dr.connectEnds(it, e.Ref(e.Supplier), e.Ref(e.Client))
	},

	umd.KindGeneralization: func(dr *Dropper, e *umd.Element, it *diagram.Item) {
		dr.connectEnds(it, e.Ref(e.General), e.Ref(e.Specific))
	},

	// also extensions, head is the metaclass end
	umd.KindAssociation: func(dr *Dropper, e *umd.Element, it *diagram.Item) {
		dr.connectEnds(it, umd.EndType(e, 0), umd.EndType(e, 1))
	},

	umd.KindMessage: func(dr *Dropper, e *umd.Element, it *diagram.Item) {
		dr.connectEnds(it, umd.SendLifeline(e), umd.ReceiveLifeline(e))
	},

	umd.KindPin: func(dr *Dropper, e *umd.Element, it *diagram.Item) {
		action := it.Diagram().PresentationOf(e.Ref(e.Action))
		if action == nil {
			return
		}
		if err := it.SetParent(action); err != nil {
			dr.Log.Print(err)
		}
	},
}

// handlerOf returns the handler of the most specific kind of k or
// nil.
func handlerOf(k umd.Kind) handler {
	for _, g := range k.Generals() {
		if fn, found := handlers[g]; found {
			return fn
		}
	}
	return nil
}
