package gen

import "github.com/G2-Games/minecraft-alpha-server/internal/gamedata"

// Column extents. A chunk column is Width (x) by Height (y) by Depth (z).
const (
	Width  = 16
	Height = 128
	Depth  = 16

	Volume       = Width * Height * Depth // one byte per block
	NibbleVolume = Volume / 2             // one nibble per block
)

// ChunkPos identifies a chunk column by its X and Z chunk coordinates.
type ChunkPos struct{ X, Z int }

// BlockArray holds the four planes of one chunk column in wire order.
// Blocks is one byte per block; the other planes are nibble-packed.
type BlockArray struct {
	Blocks     []byte
	Metadata   []byte
	BlockLight []byte
	SkyLight   []byte
}

// Index returns the plane offset of local coordinates x, y, z.
// Y varies fastest, then z, then x.
func Index(x, y, z int) int {
	return y + z*Height + x*Height*Depth
}

// NewEmpty returns an all-air column under full sky light.
func NewEmpty() *BlockArray {
	return &BlockArray{
		Blocks:     make([]byte, Volume),
		Metadata:   make([]byte, NibbleVolume),
		BlockLight: make([]byte, NibbleVolume),
		SkyLight:   filled(NibbleVolume, 0xFF),
	}
}

// NewFlat returns a superflat column: bedrock at y=0, dirt from y=1 to 6,
// grass at y=7 and air above.
func NewFlat() *BlockArray {
	a := &BlockArray{
		Blocks:     make([]byte, Volume),
		Metadata:   filled(NibbleVolume, 0xFF),
		BlockLight: make([]byte, NibbleVolume),
		SkyLight:   filled(NibbleVolume, 0xFF),
	}
	for x := 0; x < Width; x++ {
		for z := 0; z < Depth; z++ {
			for y := 0; y <= FlatSurface; y++ {
				a.Blocks[Index(x, y, z)] = byte(flatLayer(y))
			}
		}
	}
	return a
}

// FlatSurface is the y of the topmost solid block in a flat column.
const FlatSurface = 7

func flatLayer(y int) gamedata.Block {
	switch {
	case y == 0:
		return gamedata.BlockBedrock
	case y < FlatSurface:
		return gamedata.BlockDirt
	case y == FlatSurface:
		return gamedata.BlockGrass
	default:
		return gamedata.BlockAir
	}
}

// BlockAt returns the block type at local coordinates, or air when out of range.
func (a *BlockArray) BlockAt(x, y, z int) gamedata.Block {
	if x < 0 || x >= Width || y < 0 || y >= Height || z < 0 || z >= Depth {
		return gamedata.BlockAir
	}
	return gamedata.Block(a.Blocks[Index(x, y, z)])
}

// SetBlock sets the block type at local coordinates. Out of range writes are ignored.
func (a *BlockArray) SetBlock(x, y, z int, b gamedata.Block) {
	if x < 0 || x >= Width || y < 0 || y >= Height || z < 0 || z >= Depth {
		return
	}
	a.Blocks[Index(x, y, z)] = byte(b)
}

func filled(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}
