package packet

import (
	"fmt"
	"io"

	"github.com/G2-Games/minecraft-alpha-server/internal/gamedata"
	mcnet "github.com/G2-Games/minecraft-alpha-server/internal/server/net"
)

// BlockPlacement is sent when the client uses the item in hand on a block
// (serverbound 0x0F). The amount and damage trailer is present only when the
// hand holds something, which the decoder infers from the item ID itself.
type BlockPlacement struct {
	Item      gamedata.Identifier
	X         int32
	Y         uint8
	Z         int32
	Direction Face

	// Stack is nil for an empty hand.
	Stack *gamedata.ItemStack
}

func (BlockPlacement) Opcode() Opcode { return OpBlockPlacement }

// placementHeader is the part of the body that is always present.
type placementHeader struct {
	ID        int16 `mc:"i16"`
	X         int32 `mc:"i32"`
	Y         uint8 `mc:"u8"`
	Z         int32 `mc:"i32"`
	Direction Face  `mc:"u8"`
}

type placementTrailer struct {
	Amount uint8 `mc:"u8"`
	Damage int16 `mc:"i16"`
}

func hasTrailer(id gamedata.Identifier) bool {
	return id.ID() > 0
}

func (p *BlockPlacement) decodeBody(r io.Reader, cat *gamedata.Catalog) error {
	var h placementHeader
	if err := mcnet.Unmarshal(r, &h); err != nil {
		return err
	}
	id := cat.FromID(h.ID)

	out := BlockPlacement{Item: id, X: h.X, Y: h.Y, Z: h.Z, Direction: h.Direction}
	if hasTrailer(id) {
		var t placementTrailer
		if err := mcnet.Unmarshal(r, &t); err != nil {
			return fmt.Errorf("read held stack: %w", err)
		}
		stack := gamedata.NewItemStack(id, int32(t.Amount), int32(t.Damage))
		out.Stack = &stack
	}

	*p = out
	return nil
}

func (p BlockPlacement) encodeBody() ([]byte, error) {
	h := placementHeader{ID: p.Item.ID(), X: p.X, Y: p.Y, Z: p.Z, Direction: p.Direction}
	head, err := mcnet.Marshal(h)
	if err != nil {
		return nil, err
	}
	if !hasTrailer(p.Item) {
		return head, nil
	}

	var t placementTrailer
	if p.Stack != nil {
		t = placementTrailer{Amount: uint8(p.Stack.Count), Damage: int16(p.Stack.Damage)}
	}
	tail, err := mcnet.Marshal(t)
	if err != nil {
		return nil, err
	}
	return append(head, tail...), nil
}
