package umd

// Nesting is one allowed (container, contained) kind pair. Kinds
// match by IsA, so {KindPackage, KindType} also allows a profile to
// own a stereotype.
type Nesting struct {
	Container Kind
	Contained Kind
}

// Nestings lists every allowed ownership pairing. New pairings are
// added here.
var Nestings = []Nesting{
	{KindPackage, KindType},
	{KindPackage, KindPackage},
	{KindPackage, KindDiagram},
	{KindClass, KindClassifier},
}

// CanNest returns true if an element of kind container may own one of
// kind contained.
func CanNest(container, contained Kind) bool {
	for _, n := range Nestings {
		if container.IsA(n.Container) && contained.IsA(n.Contained) {
			return true
		}
	}
	return false
}

// CanOwn returns true if the kinds of container and contained are an
// allowed pairing. It does not check for cycles, see SelfAndOwners.
func CanOwn(container, contained *Element) bool {
	if container == nil || contained == nil {
		return false
	}
	return CanNest(container.Kind, contained.Kind)
}

// SelfAndOwners returns e followed by its owner, the owner's owner and
// so on.
func SelfAndOwners(e *Element) []*Element {
	var res []*Element
	seen := make(map[*Element]bool)
	for c := e; c != nil && !seen[c]; c = c.Owner() {
		seen[c] = true
		res = append(res, c)
	}
	return res
}

// ChangeOwner makes newOwner the owner of e. Returns false if the
// pairing is not allowed or would create a cycle. A nil newOwner
// removes the current owner.
func ChangeOwner(newOwner, e *Element) bool {
	if e == nil {
		return false
	}
	if newOwner == nil {
		return e.setOwner(nil) == nil
	}
	if !CanOwn(newOwner, e) {
		return false
	}
	return e.setOwner(newOwner) == nil
}

// Ungroup removes the ownership edge between formerOwner and e.
// Returns false if formerOwner does not own e.
func Ungroup(formerOwner, e *Element) bool {
	if formerOwner == nil || !formerOwner.Owns(e) {
		return false
	}
	return e.setOwner(nil) == nil
}

// OwnerPackage returns the nearest package starting with e itself and
// walking up its owners. Returns nil if there is none.
func OwnerPackage(e *Element) *Element {
	for _, v := range SelfAndOwners(e) {
		if v.Kind.IsA(KindPackage) {
			return v
		}
	}
	return nil
}
