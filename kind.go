package umd

import "strings"

// Kind tags an element with its metaclass. Kinds form a single
// inheritance chain, see IsA.
type Kind int

const (
	KindUndefined Kind = iota
	KindElement
	KindType
	KindClassifier
	KindClass
	KindStereotype
	KindInterface
	KindDataType
	KindEnumeration
	KindInteraction
	KindAssociation
	KindExtension
	KindPackage
	KindProfile
	KindDiagram
	KindDependency
	KindGeneralization
	KindProperty
	KindLifeline
	KindMessage
	KindOccurrence
	KindAction
	KindPin
	KindInputPin
	KindOutputPin
)

// general maps each kind to the kind it specializes. KindElement is
// the root.
var general = map[Kind]Kind{
	KindType:           KindElement,
	KindClassifier:     KindType,
	KindClass:          KindClassifier,
	KindStereotype:     KindClass,
	KindInterface:      KindClassifier,
	KindDataType:       KindClassifier,
	KindEnumeration:    KindDataType,
	KindInteraction:    KindClassifier,
	KindAssociation:    KindClassifier,
	KindExtension:      KindAssociation,
	KindPackage:        KindElement,
	KindProfile:        KindPackage,
	KindDiagram:        KindElement,
	KindDependency:     KindElement,
	KindGeneralization: KindElement,
	KindProperty:       KindElement,
	KindLifeline:       KindElement,
	KindMessage:        KindElement,
	KindOccurrence:     KindElement,
	KindAction:         KindElement,
	KindPin:            KindElement,
	KindInputPin:       KindPin,
	KindOutputPin:      KindPin,
}

var kindNames = map[Kind]string{
	KindUndefined:      "undefined",
	KindElement:        "element",
	KindType:           "type",
	KindClassifier:     "classifier",
	KindClass:          "class",
	KindStereotype:     "stereotype",
	KindInterface:      "interface",
	KindDataType:       "datatype",
	KindEnumeration:    "enumeration",
	KindInteraction:    "interaction",
	KindAssociation:    "association",
	KindExtension:      "extension",
	KindPackage:        "package",
	KindProfile:        "profile",
	KindDiagram:        "diagram",
	KindDependency:     "dependency",
	KindGeneralization: "generalization",
	KindProperty:       "property",
	KindLifeline:       "lifeline",
	KindMessage:        "message",
	KindOccurrence:     "occurrence",
	KindAction:         "action",
	KindPin:            "pin",
	KindInputPin:       "inputpin",
	KindOutputPin:      "outputpin",
}

func (k Kind) String() string {
	if v, found := kindNames[k]; found {
		return v
	}
	return kindNames[KindUndefined]
}

// IsA returns true if k is v or specializes v, e.g.
// KindStereotype.IsA(KindClassifier) is true.
func (k Kind) IsA(v Kind) bool {
	if k == KindUndefined || v == KindUndefined {
		return false
	}
	for c := k; ; {
		if c == v {
			return true
		}
		next, found := general[c]
		if !found {
			return false
		}
		c = next
	}
}

// Generals returns k followed by every kind it specializes, most
// specific first.
func (k Kind) Generals() []Kind {
	if k == KindUndefined {
		return nil
	}
	res := []Kind{k}
	for c, found := general[k]; found; c, found = general[c] {
		res = append(res, c)
	}
	return res
}

// ParseKind returns the kind named v, case insensitive. Returns
// KindUndefined and false if no such kind exists.
func ParseKind(v string) (Kind, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	for k, name := range kindNames {
		if k != KindUndefined && name == v {
			return k, true
		}
	}
	return KindUndefined, false
}
