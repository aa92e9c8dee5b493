package diagram

import "github.com/gregoryv/umd"

// ItemKind tags an item with its presentation type.
type ItemKind int

const (
	ItemUndefined ItemKind = iota

	// AnyElement is used when registering connectors for all
	// element items, it's never the kind of an item.
	AnyElement

	ClassItem
	InterfaceItem
	DataTypeItem
	EnumerationItem
	StereotypeItem
	InteractionItem
	PackageItem
	DiagramItem
	LifelineItem
	ActionItem
	PinItem

	// lines, keep last
	ContainmentLine
	DependencyLine
	AssociationLine
	GeneralizationLine
	ExtensionLine
	MessageLine
)

// IsLine returns true for kinds with head and tail handles.
func (k ItemKind) IsLine() bool { return k >= ContainmentLine }

func (k ItemKind) String() string {
	if v, found := itemNames[k]; found {
		return v
	}
	return itemNames[ItemUndefined]
}

var itemNames = map[ItemKind]string{
	ItemUndefined:      "undefined",
	AnyElement:         "any",
	ClassItem:          "class",
	InterfaceItem:      "interface",
	DataTypeItem:       "datatype",
	EnumerationItem:    "enumeration",
	StereotypeItem:     "stereotype",
	InteractionItem:    "interaction",
	PackageItem:        "package",
	DiagramItem:        "diagram",
	LifelineItem:       "lifeline",
	ActionItem:         "action",
	PinItem:            "pin",
	ContainmentLine:    "containment",
	DependencyLine:     "dependency",
	AssociationLine:    "association",
	GeneralizationLine: "generalization",
	ExtensionLine:      "extension",
	MessageLine:        "message",
}

// ParseItemKind returns the item kind named v.
func ParseItemKind(v string) (ItemKind, bool) {
	for k, name := range itemNames {
		if k > AnyElement && name == v {
			return k, true
		}
	}
	return ItemUndefined, false
}

// itemOf maps element kinds to the item kind presenting them.
var itemOf = map[umd.Kind]ItemKind{
	umd.KindClass:          ClassItem,
	umd.KindStereotype:     StereotypeItem,
	umd.KindInterface:      InterfaceItem,
	umd.KindDataType:       DataTypeItem,
	umd.KindEnumeration:    EnumerationItem,
	umd.KindInteraction:    InteractionItem,
	umd.KindPackage:        PackageItem,
	umd.KindDiagram:        DiagramItem,
	umd.KindLifeline:       LifelineItem,
	umd.KindAction:         ActionItem,
	umd.KindPin:            PinItem,
	umd.KindAssociation:    AssociationLine,
	umd.KindExtension:      ExtensionLine,
	umd.KindDependency:     DependencyLine,
	umd.KindGeneralization: GeneralizationLine,
	umd.KindMessage:        MessageLine,
}

// ItemKindOf returns the item kind used to present elements of kind
// k, the most specific registered kind wins. Returns false for kinds
// without presentation, e.g. properties.
func ItemKindOf(k umd.Kind) (ItemKind, bool) {
	for _, g := range k.Generals() {
		if v, found := itemOf[g]; found {
			return v, true
		}
	}
	return ItemUndefined, false
}
