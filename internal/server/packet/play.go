package packet

import (
	"fmt"
	"io"

	"github.com/G2-Games/minecraft-alpha-server/internal/gamedata"
	mcnet "github.com/G2-Games/minecraft-alpha-server/internal/server/net"
)

// Player reports only whether the client is standing on the ground (serverbound 0x0A).
type Player struct {
	OnGround bool `mc:"bool"`
}

func (Player) Opcode() Opcode { return OpPlayer }

// PlayerPosition is sent when the client moves without turning (serverbound 0x0B).
type PlayerPosition struct {
	Position mcnet.PlayerPosition
	OnGround bool
}

func (PlayerPosition) Opcode() Opcode { return OpPlayerPosition }

func (p *PlayerPosition) decodeBody(r io.Reader, _ *gamedata.Catalog) error {
	pos, err := mcnet.ReadPosition(r)
	if err != nil {
		return fmt.Errorf("read position: %w", err)
	}
	onGround, err := mcnet.ReadBool(r)
	if err != nil {
		return fmt.Errorf("read on_ground: %w", err)
	}
	*p = PlayerPosition{Position: pos, OnGround: onGround}
	return nil
}

func (p PlayerPosition) encodeBody() ([]byte, error) {
	var buf bodyBuffer
	if err := mcnet.WritePosition(&buf.Buffer, p.Position); err != nil {
		return nil, err
	}
	buf.field("bool", p.OnGround)
	return buf.result()
}

// PlayerLook is sent when the client turns without moving (serverbound 0x0C).
type PlayerLook struct {
	Look     mcnet.PlayerLook
	OnGround bool
}

func (PlayerLook) Opcode() Opcode { return OpPlayerLook }

func (p *PlayerLook) decodeBody(r io.Reader, _ *gamedata.Catalog) error {
	look, err := mcnet.ReadLook(r)
	if err != nil {
		return fmt.Errorf("read look: %w", err)
	}
	onGround, err := mcnet.ReadBool(r)
	if err != nil {
		return fmt.Errorf("read on_ground: %w", err)
	}
	*p = PlayerLook{Look: look, OnGround: onGround}
	return nil
}

func (p PlayerLook) encodeBody() ([]byte, error) {
	var buf bodyBuffer
	if err := mcnet.WriteLook(&buf.Buffer, p.Look); err != nil {
		return nil, err
	}
	buf.field("bool", p.OnGround)
	return buf.result()
}

// PlayerPositionAndLook is the combined movement update (serverbound 0x0D).
// Field order on the wire is x, y, stance, z, yaw, pitch, on_ground.
type PlayerPositionAndLook struct {
	PositionLook mcnet.PlayerPositionLook
	OnGround     bool
}

func (PlayerPositionAndLook) Opcode() Opcode { return OpPlayerPositionAndLook }

func (p *PlayerPositionAndLook) decodeBody(r io.Reader, _ *gamedata.Catalog) error {
	pos, err := mcnet.ReadPosition(r)
	if err != nil {
		return fmt.Errorf("read position: %w", err)
	}
	look, err := mcnet.ReadLook(r)
	if err != nil {
		return fmt.Errorf("read look: %w", err)
	}
	onGround, err := mcnet.ReadBool(r)
	if err != nil {
		return fmt.Errorf("read on_ground: %w", err)
	}
	*p = PlayerPositionAndLook{
		PositionLook: mcnet.PlayerPositionLook{Position: pos, Look: look},
		OnGround:     onGround,
	}
	return nil
}

func (p PlayerPositionAndLook) encodeBody() ([]byte, error) {
	var buf bodyBuffer
	if err := mcnet.WritePosition(&buf.Buffer, p.PositionLook.Position); err != nil {
		return nil, err
	}
	if err := mcnet.WriteLook(&buf.Buffer, p.PositionLook.Look); err != nil {
		return nil, err
	}
	buf.field("bool", p.OnGround)
	return buf.result()
}

// PlayerPositionAndLookClientbound places the player (clientbound 0x0D).
// The server orders the first fields x, stance, y, z.
type PlayerPositionAndLookClientbound struct {
	PositionLook mcnet.PlayerPositionLook
	OnGround     bool
}

func (PlayerPositionAndLookClientbound) Opcode() Opcode { return OpPlayerPositionAndLook }

func (p PlayerPositionAndLookClientbound) encodeBody() ([]byte, error) {
	pos, look := p.PositionLook.Position, p.PositionLook.Look
	var buf bodyBuffer
	buf.field("f64", pos.X)
	buf.field("f64", pos.Stance)
	buf.field("f64", pos.Y)
	buf.field("f64", pos.Z)
	buf.field("f32", look.Yaw)
	buf.field("f32", look.Pitch)
	buf.field("bool", p.OnGround)
	return buf.result()
}

func (p *PlayerPositionAndLookClientbound) decodeBody(r io.Reader, _ *gamedata.Catalog) error {
	var raw struct {
		X        float64 `mc:"f64"`
		Stance   float64 `mc:"f64"`
		Y        float64 `mc:"f64"`
		Z        float64 `mc:"f64"`
		Yaw      float32 `mc:"f32"`
		Pitch    float32 `mc:"f32"`
		OnGround bool    `mc:"bool"`
	}
	if err := mcnet.Unmarshal(r, &raw); err != nil {
		return err
	}
	*p = PlayerPositionAndLookClientbound{
		PositionLook: mcnet.PlayerPositionLook{
			Position: mcnet.PlayerPosition{X: raw.X, Y: raw.Y, Stance: raw.Stance, Z: raw.Z},
			Look:     mcnet.PlayerLook{Yaw: raw.Yaw, Pitch: raw.Pitch},
		},
		OnGround: raw.OnGround,
	}
	return nil
}

// DiggingStatus is the stage of a dig reported in PlayerDigging.
type DiggingStatus uint8

const (
	DiggingStarted DiggingStatus = iota
	DiggingInProgress
	DiggingStopped
	DiggingBroken
)

func (s DiggingStatus) String() string {
	switch s {
	case DiggingStarted:
		return "started"
	case DiggingInProgress:
		return "digging"
	case DiggingStopped:
		return "stopped"
	case DiggingBroken:
		return "broken"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Face is the side of a block a dig or placement targets.
type Face uint8

const (
	FaceNegY Face = iota
	FacePosY
	FaceNegZ
	FacePosZ
	FaceNegX
	FacePosX

	// FaceNone is sent when the client is not aiming at a block.
	FaceNone Face = 0xFF
)

func (f Face) String() string {
	switch f {
	case FaceNegY:
		return "-y"
	case FacePosY:
		return "+y"
	case FaceNegZ:
		return "-z"
	case FacePosZ:
		return "+z"
	case FaceNegX:
		return "-x"
	case FacePosX:
		return "+x"
	case FaceNone:
		return "none"
	default:
		return fmt.Sprintf("face(%d)", uint8(f))
	}
}

// PlayerDigging is sent while the client breaks a block (serverbound 0x0E).
type PlayerDigging struct {
	Status DiggingStatus `mc:"u8"`
	X      int32         `mc:"i32"`
	Y      uint8         `mc:"u8"`
	Z      int32         `mc:"i32"`
	Face   Face          `mc:"u8"`
}

func (PlayerDigging) Opcode() Opcode { return OpPlayerDigging }

// HoldingChange is sent when the client switches the item in hand (serverbound 0x10).
type HoldingChange struct {
	EntityID int32 `mc:"i32"`
	ItemID   int16 `mc:"i16"`
}

func (HoldingChange) Opcode() Opcode { return OpHoldingChange }

// Item resolves ItemID against cat.
func (h HoldingChange) Item(cat *gamedata.Catalog) gamedata.Identifier {
	return cat.FromID(h.ItemID)
}

// Animation is an arm swing or similar gesture (0x12).
type Animation struct {
	EntityID  int32 `mc:"i32"`
	Animation uint8 `mc:"u8"`
}

func (Animation) Opcode() Opcode { return OpAnimation }

// SpawnPosition sets the world spawn point in block coordinates (clientbound 0x06).
type SpawnPosition struct {
	X int32 `mc:"i32"`
	Y int32 `mc:"i32"`
	Z int32 `mc:"i32"`
}

func (SpawnPosition) Opcode() Opcode { return OpSpawnPosition }
