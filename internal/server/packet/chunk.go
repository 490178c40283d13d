package packet

import (
	"fmt"
	"io"

	"github.com/G2-Games/minecraft-alpha-server/internal/gamedata"
	mcnet "github.com/G2-Games/minecraft-alpha-server/internal/server/net"
)

// PreChunk tells the client to allocate or free a column (clientbound 0x32).
// X and Z are chunk coordinates.
type PreChunk struct {
	X    int32 `mc:"i32"`
	Z    int32 `mc:"i32"`
	Load bool  `mc:"bool"`
}

func (PreChunk) Opcode() Opcode { return OpPreChunk }

func NewPreChunkLoad(cx, cz int32) PreChunk {
	return PreChunk{X: cx, Z: cz, Load: true}
}

func NewPreChunkUnload(cx, cz int32) PreChunk {
	return PreChunk{X: cx, Z: cz, Load: false}
}

// Full column extents as sent on the wire (size minus one).
const (
	ColumnSizeX = 15
	ColumnSizeY = 127
	ColumnSizeZ = 15
)

// MapChunk carries a zlib-compressed region of blocks (clientbound 0x33).
// X, Y and Z are block coordinates of the region's origin.
type MapChunk struct {
	X     int32
	Y     int16
	Z     int32
	SizeX uint8
	SizeY uint8
	SizeZ uint8
	Data  []byte
}

func (MapChunk) Opcode() Opcode { return OpMapChunk }

// NewMapChunk wraps compressed data for the full column at chunk cx, cz.
func NewMapChunk(cx, cz int32, data []byte) MapChunk {
	return MapChunk{
		X:     cx * 16,
		Z:     cz * 16,
		SizeX: ColumnSizeX,
		SizeY: ColumnSizeY,
		SizeZ: ColumnSizeZ,
		Data:  data,
	}
}

type mapChunkHeader struct {
	X      int32 `mc:"i32"`
	Y      int16 `mc:"i16"`
	Z      int32 `mc:"i32"`
	SizeX  uint8 `mc:"u8"`
	SizeY  uint8 `mc:"u8"`
	SizeZ  uint8 `mc:"u8"`
	Length int32 `mc:"i32"`
}

// maxChunkData bounds a decoded payload. Compressed full columns are far smaller.
const maxChunkData = 1 << 20

func (m MapChunk) encodeBody() ([]byte, error) {
	if len(m.Data) > maxChunkData {
		return nil, fmt.Errorf("%w: chunk data of %d bytes", mcnet.ErrEncoding, len(m.Data))
	}
	head, err := mcnet.Marshal(mapChunkHeader{
		X: m.X, Y: m.Y, Z: m.Z,
		SizeX: m.SizeX, SizeY: m.SizeY, SizeZ: m.SizeZ,
		Length: int32(len(m.Data)),
	})
	if err != nil {
		return nil, err
	}
	return append(head, m.Data...), nil
}

func (m *MapChunk) decodeBody(r io.Reader, _ *gamedata.Catalog) error {
	var h mapChunkHeader
	if err := mcnet.Unmarshal(r, &h); err != nil {
		return err
	}
	if h.Length < 0 || h.Length > maxChunkData {
		return mcnet.Malformed("chunk data length %d", h.Length)
	}
	data := make([]byte, h.Length)
	if _, err := io.ReadFull(r, data); err != nil {
		return fmt.Errorf("read chunk data: %w", mcnet.IOError(err))
	}
	*m = MapChunk{
		X: h.X, Y: h.Y, Z: h.Z,
		SizeX: h.SizeX, SizeY: h.SizeY, SizeZ: h.SizeZ,
		Data: data,
	}
	return nil
}
