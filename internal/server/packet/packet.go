package packet

import (
	"bytes"
	"fmt"
	"io"

	"github.com/G2-Games/minecraft-alpha-server/internal/gamedata"
	mcnet "github.com/G2-Games/minecraft-alpha-server/internal/server/net"
)

// Opcode is the one-byte tag in front of every message. Bodies carry no
// length prefix; the opcode alone determines how many bytes follow.
type Opcode uint8

const (
	OpKeepAlive             Opcode = 0x00
	OpLogin                 Opcode = 0x01
	OpHandshake             Opcode = 0x02
	OpChat                  Opcode = 0x03
	OpSpawnPosition         Opcode = 0x06
	OpPlayer                Opcode = 0x0A
	OpPlayerPosition        Opcode = 0x0B
	OpPlayerLook            Opcode = 0x0C
	OpPlayerPositionAndLook Opcode = 0x0D
	OpPlayerDigging         Opcode = 0x0E
	OpBlockPlacement        Opcode = 0x0F
	OpHoldingChange         Opcode = 0x10
	OpAnimation             Opcode = 0x12
	OpPreChunk              Opcode = 0x32
	OpMapChunk              Opcode = 0x33
	OpDisconnect            Opcode = 0xFF
)

var opcodeNames = map[Opcode]string{
	OpKeepAlive:             "keep_alive",
	OpLogin:                 "login",
	OpHandshake:             "handshake",
	OpChat:                  "chat",
	OpSpawnPosition:         "spawn_position",
	OpPlayer:                "player",
	OpPlayerPosition:        "player_position",
	OpPlayerLook:            "player_look",
	OpPlayerPositionAndLook: "player_position_and_look",
	OpPlayerDigging:         "player_digging",
	OpBlockPlacement:        "block_placement",
	OpHoldingChange:         "holding_change",
	OpAnimation:             "animation",
	OpPreChunk:              "pre_chunk",
	OpMapChunk:              "map_chunk",
	OpDisconnect:            "disconnect",
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint8(o))
}

// Packet is any message that can be framed with its opcode.
type Packet interface {
	Opcode() Opcode
}

// ErrUnknownOpcode is returned for opcodes the server cannot decode. Since
// bodies are not length-prefixed the stream cannot be resynchronised after it.
var ErrUnknownOpcode = fmt.Errorf("%w: unknown opcode", mcnet.ErrMalformed)

// Packets whose body does not fit the mc struct tags implement these.
type bodyDecoder interface {
	decodeBody(r io.Reader, cat *gamedata.Catalog) error
}

type bodyEncoder interface {
	encodeBody() ([]byte, error)
}

// Marshal returns the opcode byte followed by the encoded body.
func Marshal(p Packet) ([]byte, error) {
	var (
		body []byte
		err  error
	)
	if enc, ok := p.(bodyEncoder); ok {
		body, err = enc.encodeBody()
	} else {
		body, err = mcnet.Marshal(p)
	}
	if err != nil {
		return nil, fmt.Errorf("marshal packet %s: %w", p.Opcode(), err)
	}

	frame := make([]byte, 0, 1+len(body))
	frame = append(frame, byte(p.Opcode()))
	return append(frame, body...), nil
}

// Write frames p and hands it to w in a single call.
func Write(w io.Writer, p Packet) error {
	frame, err := Marshal(p)
	if err != nil {
		return err
	}
	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("write packet %s: %w", p.Opcode(), mcnet.IOError(err))
	}
	return nil
}

// DecodeBody reads the body of p from r, resolving item IDs against the
// compiled-in catalog. The opcode must already have been consumed.
func DecodeBody(r io.Reader, p Packet) error {
	return decodeBody(r, p, gamedata.Default())
}

func decodeBody(r io.Reader, p Packet, cat *gamedata.Catalog) error {
	var err error
	if dec, ok := p.(bodyDecoder); ok {
		err = dec.decodeBody(r, cat)
	} else {
		err = mcnet.Unmarshal(r, p)
	}
	if err != nil {
		return fmt.Errorf("decode packet %s: %w", p.Opcode(), err)
	}
	return nil
}

// serverbound lists the opcodes a client may send.
var serverbound = map[Opcode]func() Packet{
	OpKeepAlive:             func() Packet { return &KeepAlive{} },
	OpLogin:                 func() Packet { return &LoginRequest{} },
	OpHandshake:             func() Packet { return &Handshake{} },
	OpChat:                  func() Packet { return &Chat{} },
	OpPlayer:                func() Packet { return &Player{} },
	OpPlayerPosition:        func() Packet { return &PlayerPosition{} },
	OpPlayerLook:            func() Packet { return &PlayerLook{} },
	OpPlayerPositionAndLook: func() Packet { return &PlayerPositionAndLook{} },
	OpPlayerDigging:         func() Packet { return &PlayerDigging{} },
	OpBlockPlacement:        func() Packet { return &BlockPlacement{} },
	OpHoldingChange:         func() Packet { return &HoldingChange{} },
	OpAnimation:             func() Packet { return &Animation{} },
	OpDisconnect:            func() Packet { return &Disconnect{} },
}

// Decoder reads client messages off a stream.
type Decoder struct {
	catalog *gamedata.Catalog
}

// NewDecoder returns a Decoder resolving item IDs against cat, or the
// compiled-in catalog when cat is nil.
func NewDecoder(cat *gamedata.Catalog) *Decoder {
	if cat == nil {
		cat = gamedata.Default()
	}
	return &Decoder{catalog: cat}
}

// Catalog returns the catalog item IDs are resolved against.
func (d *Decoder) Catalog() *gamedata.Catalog { return d.catalog }

// Decode reads one opcode and its body. The returned packet is a pointer to
// one of the serverbound types.
func (d *Decoder) Decode(r io.Reader) (Packet, error) {
	b, err := mcnet.ReadU8(r)
	if err != nil {
		return nil, fmt.Errorf("read opcode: %w", err)
	}
	op := Opcode(b)

	newPacket, ok := serverbound[op]
	if !ok {
		return nil, fmt.Errorf("%w 0x%02X", ErrUnknownOpcode, b)
	}
	p := newPacket()
	if err := decodeBody(r, p, d.catalog); err != nil {
		return nil, err
	}
	return p, nil
}

// bodyBuffer collects an encoded body. The first write error sticks and
// later writes are skipped.
type bodyBuffer struct {
	bytes.Buffer
	err error
}

func (b *bodyBuffer) field(tag string, v any) {
	if b.err != nil {
		return
	}
	b.err = mcnet.WriteField(&b.Buffer, tag, v)
}

func (b *bodyBuffer) result() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.Bytes(), nil
}
