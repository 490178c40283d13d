package world

import (
	"fmt"
	"io"

	"github.com/sasha-s/go-deadlock"

	"github.com/G2-Games/minecraft-alpha-server/internal/server/packet"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/world/gen"
)

// World serves compressed chunk columns for the play area around the origin.
// Terrain never changes once generated, so each column is compressed once
// and shared by every session.
type World struct {
	mu        deadlock.RWMutex
	generator gen.Generator
	columns   map[gen.ChunkPos][]byte
	radius    int
}

// NewWorld creates a World whose play area spans chunks -radius to radius-1
// on both axes.
func NewWorld(generator gen.Generator, radius int) *World {
	if radius < 0 {
		radius = 0
	}
	return &World{
		generator: generator,
		columns:   make(map[gen.ChunkPos][]byte),
		radius:    radius,
	}
}

// Radius returns the play-area radius in chunks.
func (w *World) Radius() int { return w.radius }

// Column returns the compressed planes of chunk cx, cz, generating and
// caching them on first use.
func (w *World) Column(cx, cz int) ([]byte, error) {
	pos := gen.ChunkPos{X: cx, Z: cz}

	w.mu.RLock()
	if c, ok := w.columns[pos]; ok {
		w.mu.RUnlock()
		return c, nil
	}
	w.mu.RUnlock()

	c, err := Compress(w.generator.Generate(cx, cz))
	if err != nil {
		return nil, fmt.Errorf("compress column %d,%d: %w", cx, cz, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	// Another session may have filled it while we were compressing.
	if existing, ok := w.columns[pos]; ok {
		return existing, nil
	}
	w.columns[pos] = c
	return c, nil
}

// Cached returns the number of columns compressed so far.
func (w *World) Cached() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.columns)
}

// EncodeChunk returns the MapChunk for the full column at chunk cx, cz.
func (w *World) EncodeChunk(cx, cz int) (packet.MapChunk, error) {
	data, err := w.Column(cx, cz)
	if err != nil {
		return packet.MapChunk{}, err
	}
	return packet.NewMapChunk(int32(cx), int32(cz), data), nil
}

// WriteChunkGrid streams a PreChunk load followed by a MapChunk for every
// column in the play area. It returns the number of compressed chunk bytes
// written.
func (w *World) WriteChunkGrid(writer io.Writer) (int, error) {
	total := 0
	for cx := -w.radius; cx < w.radius; cx++ {
		for cz := -w.radius; cz < w.radius; cz++ {
			chunk, err := w.EncodeChunk(cx, cz)
			if err != nil {
				return total, err
			}
			if err := packet.Write(writer, packet.NewPreChunkLoad(int32(cx), int32(cz))); err != nil {
				return total, err
			}
			if err := packet.Write(writer, chunk); err != nil {
				return total, err
			}
			total += len(chunk.Data)
		}
	}
	return total, nil
}

// SpawnHeight returns the y a player spawned at the origin stands on.
func (w *World) SpawnHeight() int {
	return w.generator.HeightAt(0, 0) + 1
}
