package gamedata

import "fmt"

// ItemBias separates the block and item halves of the wire ID space. Wire IDs
// up to ItemBias are blocks; anything above is an item whose table index is
// the wire ID minus ItemBias.
const ItemBias = 255

// Namespace tells which table an Identifier was resolved from.
type Namespace uint8

const (
	NamespaceUnknown Namespace = iota
	NamespaceBlock
	NamespaceItem
)

func (n Namespace) String() string {
	switch n {
	case NamespaceBlock:
		return "block"
	case NamespaceItem:
		return "item"
	default:
		return "unknown"
	}
}

// Identifier is a decoded wire block/item ID. The zero value is Unknown.
type Identifier struct {
	ns    Namespace
	value int16
}

// Unknown is the identifier for IDs missing from the catalog, including the
// empty-hand marker -1.
var Unknown = Identifier{}

func BlockIdentifier(b Block) Identifier {
	return Identifier{ns: NamespaceBlock, value: int16(b)}
}

func ItemIdentifier(i Item) Identifier {
	return Identifier{ns: NamespaceItem, value: int16(i)}
}

// FromID resolves raw against the compiled-in catalog.
func FromID(raw int16) Identifier {
	return defaultCatalog.FromID(raw)
}

// ID returns the wire value for the identifier, -1 for Unknown.
func (id Identifier) ID() int16 {
	switch id.ns {
	case NamespaceBlock:
		return id.value
	case NamespaceItem:
		return id.value + ItemBias
	default:
		return -1
	}
}

func (id Identifier) Namespace() Namespace { return id.ns }

func (id Identifier) Known() bool { return id.ns != NamespaceUnknown }

func (id Identifier) Block() (Block, bool) {
	return Block(id.value), id.ns == NamespaceBlock
}

func (id Identifier) Item() (Item, bool) {
	return Item(id.value), id.ns == NamespaceItem
}

func (id Identifier) String() string {
	switch id.ns {
	case NamespaceBlock, NamespaceItem:
		return fmt.Sprintf("%s:%s(%d)", id.ns, defaultCatalog.Name(id), id.ID())
	default:
		return "unknown"
	}
}

// ItemStack is a stack of one block or item type as carried in hand or in
// inventory packets.
type ItemStack struct {
	Identifier            Identifier
	Count                 int32
	Damage                int32
	PendingAnimationTicks int32
}

func NewItemStack(id Identifier, count, damage int32) ItemStack {
	return ItemStack{Identifier: id, Count: count, Damage: damage}
}
