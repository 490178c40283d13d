package gen

import "fmt"

// Generator produces the terrain of a chunk column.
type Generator interface {
	Generate(chunkX, chunkZ int) *BlockArray
	HeightAt(blockX, blockZ int) int
}

// Generator names accepted by New.
const (
	TypeFlat  = "flat"
	TypeEmpty = "empty"
)

// New returns the generator registered under name.
func New(name string) (Generator, error) {
	switch name {
	case TypeFlat, "":
		return FlatGenerator{}, nil
	case TypeEmpty:
		return EmptyGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown generator %q", name)
	}
}

// FlatGenerator yields the same superflat column everywhere.
type FlatGenerator struct{}

func (FlatGenerator) Generate(_, _ int) *BlockArray { return NewFlat() }

func (FlatGenerator) HeightAt(_, _ int) int { return FlatSurface }

// EmptyGenerator yields all-air columns.
type EmptyGenerator struct{}

func (EmptyGenerator) Generate(_, _ int) *BlockArray { return NewEmpty() }

// HeightAt reports -1 since there is no solid block to stand on.
func (EmptyGenerator) HeightAt(_, _ int) int { return -1 }
