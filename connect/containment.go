package connect

import (
	"github.com/gregoryv/umd"
	"github.com/gregoryv/umd/diagram"
)

// NewContainment returns a connector for a containment line attaching
// to element. Head is the container, tail the contained element.
func NewContainment(element, line *diagram.Item) Connector {
	return &Containment{Base{Element: element, Line: line}}
}

// Containment keeps the head subject of a connected containment line
// the owner of the tail subject.
type Containment struct {
	Base
}

// Allow returns true while the other end is unconnected. Once both
// ends resolve the contained element must not be among the
// container and its owners and the pair must be in umd.Nestings.
func (c *Containment) Allow(h *diagram.Handle, port *diagram.Port) bool {
	container, contained := c.ContainerAndContained(h)
	if container == nil || contained == nil {
		return true
	}
	for _, v := range umd.SelfAndOwners(container) {
		if v == contained {
			return false
		}
	}
	return c.Base.Allow(h, port) && umd.CanOwn(container, contained)
}

// ContainerAndContained returns the subjects that would become owner
// and owned if h connects to the element of c. Both are nil if the
// opposite handle is unconnected or its item has no subject.
func (c *Containment) ContainerAndContained(h *diagram.Handle) (container, contained *umd.Element) {
	other := c.Connected(h.Opposite())
	if other == nil || other.Subject() == nil {
		return nil, nil
	}
	if h == c.Line.Head {
		return c.Element.Subject(), other.Subject()
	}
	return other.Subject(), c.Element.Subject()
}

// Deferred returns true while the pair cannot be resolved.
func (c *Containment) Deferred(h *diagram.Handle) bool {
	container, contained := c.ContainerAndContained(h)
	return container == nil || contained == nil
}

// Connect makes the container the owner of the contained element.
// Returns false if either side is unresolved or the owner change
// failed.
func (c *Containment) Connect(h *diagram.Handle, _ *diagram.Port) bool {
	container, contained := c.ContainerAndContained(h)
	if container == nil || contained == nil {
		return false
	}
	ok := umd.ChangeOwner(container, contained)
	if !ok {
		c.Line.Diagram().Log.Printf("containment: %v cannot own %v", container, contained)
	}
	return ok
}

// Disconnect removes the ownership between the two connected
// subjects, in whichever direction it exists, and puts the detached
// element in the nearest package of the diagram. Registry bookkeeping
// is done last.
func (c *Containment) Disconnect(h *diagram.Handle) {
	hct := c.Connected(h)
	oct := c.Connected(h.Opposite())
	if hct != nil && oct != nil {
		c.detach(oct, hct, h.End())
		c.detach(hct, oct, h.Opposite().End())
	}
	c.Base.Disconnect(h)
}

// detach ungroups the subject of owned from the subject of owner if
// the ownership exists. end names the end connected to owned.
func (c *Containment) detach(owner, owned *diagram.Item, end diagram.End) {
	o, e := owner.Subject(), owned.Subject()
	if o == nil || e == nil || !o.Owns(e) {
		return
	}
	where := "containment disconnect " + end.String()
	umd.Invariant(ownable(e.Kind), where,
		"subject %v is not an ownable kind", e,
	)
	umd.Invariant(owned.Diagram() != nil, where,
		"%v has no diagram", owned,
	)
	umd.Ungroup(o, e)

	pkg := umd.OwnerPackage(owned.Diagram().Owner())
	var err error
	if e.Kind.IsA(umd.KindPackage) {
		err = e.SetNestingPackage(pkg)
	} else {
		err = e.SetPackage(pkg)
	}
	if err != nil {
		// i.e. the diagram is nested inside e itself
		c.Line.Diagram().Log.Printf("containment: %v stays without package: %v", e, err)
	}
}

// ownable returns true if k may be contained by anything.
func ownable(k umd.Kind) bool {
	for _, n := range umd.Nestings {
		if k.IsA(n.Contained) {
			return true
		}
	}
	return false
}
