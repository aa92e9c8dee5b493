package script

import (
	"fmt"
	"io"

	"github.com/gregoryv/umd/diagram"
	"github.com/gregoryv/umd/qname"
)

// WriteTree writes the qualified name and kind of every named
// element, one per line in ownership order.
func (s *Session) WriteTree(w io.Writer) error {
	var all []*qname.Node
	qname.Build(s.Model).Match(&all, "#")
	for _, n := range all {
		if _, err := fmt.Fprintln(w, n.Path(), n.Element.Kind); err != nil {
			return err
		}
	}
	return nil
}

// WriteConnections writes the connections of each diagram using item
// labels, e.g.
//
//	overview
//	  line1 head -> orders
func (s *Session) WriteConnections(w io.Writer) error {
	for _, name := range s.dorder {
		d := s.diagrams[name]
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
		for _, c := range d.Connections.All() {
			_, err := fmt.Fprintf(w, "  %s %v -> %s\n",
				s.labelOf(c.Handle.Item()), c.Handle.End(), s.labelOf(c.Connected),
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// labelOf returns the label of it or its ID if unlabeled, e.g.
// items removed by a step.
func (s *Session) labelOf(it *diagram.Item) string {
	for _, label := range s.iorder {
		if s.items[label] == it {
			return label
		}
	}
	return it.ID
}

// Labels returns all item labels in the order they were created.
func (s *Session) Labels() []string {
	res := make([]string, len(s.iorder))
	copy(res, s.iorder)
	return res
}
