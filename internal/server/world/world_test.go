package world

import (
	"bytes"
	"sync"
	"testing"

	"github.com/G2-Games/minecraft-alpha-server/internal/server/packet"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/world/gen"
)

func TestCompressRoundTrip(t *testing.T) {
	for name, a := range map[string]*gen.BlockArray{"empty": gen.NewEmpty(), "flat": gen.NewFlat()} {
		t.Run(name, func(t *testing.T) {
			data, err := Compress(a)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			if len(data) >= columnBytes {
				t.Errorf("compressed %d bytes into %d", columnBytes, len(data))
			}
			// zlib header with default compression.
			if data[0] != 0x78 || data[1] != 0x9c {
				t.Errorf("zlib header = %x %x, want 78 9c", data[0], data[1])
			}

			back, err := Decompress(data)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(back.Blocks, a.Blocks) || !bytes.Equal(back.Metadata, a.Metadata) ||
				!bytes.Equal(back.BlockLight, a.BlockLight) || !bytes.Equal(back.SkyLight, a.SkyLight) {
				t.Error("Decompress did not reproduce the planes")
			}
		})
	}
}

func TestDecompressGarbage(t *testing.T) {
	if _, err := Decompress([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for non-zlib data")
	}

	short, err := Compress(&gen.BlockArray{Blocks: []byte{1, 2, 3}})
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if _, err := Decompress(short); err == nil {
		t.Fatal("expected error for truncated column")
	}
}

func TestColumnCached(t *testing.T) {
	w := NewWorld(gen.FlatGenerator{}, 2)

	a, err := w.Column(1, -1)
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	b, err := w.Column(1, -1)
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if &a[0] != &b[0] {
		t.Error("second Column call recompressed")
	}
	if w.Cached() != 1 {
		t.Errorf("Cached() = %d, want 1", w.Cached())
	}
}

func TestColumnConcurrent(t *testing.T) {
	w := NewWorld(gen.FlatGenerator{}, 1)

	var wg sync.WaitGroup
	results := make([][]byte, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := w.Column(0, 0)
			if err != nil {
				t.Errorf("Column: %v", err)
				return
			}
			results[i] = c
		}(i)
	}
	wg.Wait()

	for i, c := range results {
		if &c[0] != &results[0][0] {
			t.Errorf("goroutine %d got a different column", i)
		}
	}
}

func TestEncodeChunk(t *testing.T) {
	w := NewWorld(gen.FlatGenerator{}, 10)
	m, err := w.EncodeChunk(-3, 2)
	if err != nil {
		t.Fatalf("EncodeChunk: %v", err)
	}
	if m.X != -48 || m.Y != 0 || m.Z != 32 {
		t.Errorf("origin = %d,%d,%d", m.X, m.Y, m.Z)
	}
	if m.SizeX != 15 || m.SizeY != 127 || m.SizeZ != 15 {
		t.Errorf("extents = %d,%d,%d, want 15,127,15", m.SizeX, m.SizeY, m.SizeZ)
	}
	a, err := Decompress(m.Data)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if a.BlockAt(0, 7, 0) != 2 {
		t.Errorf("surface block = %d, want grass", a.BlockAt(0, 7, 0))
	}
}

func TestWriteChunkGrid(t *testing.T) {
	w := NewWorld(gen.EmptyGenerator{}, 1)

	var buf bytes.Buffer
	total, err := w.WriteChunkGrid(&buf)
	if err != nil {
		t.Fatalf("WriteChunkGrid: %v", err)
	}

	// Radius 1 covers chunks -1..0 on both axes.
	want := []struct{ cx, cz int32 }{{-1, -1}, {-1, 0}, {0, -1}, {0, 0}}
	r := bytes.NewReader(buf.Bytes())
	sum := 0
	for _, col := range want {
		op, _ := r.ReadByte()
		if packet.Opcode(op) != packet.OpPreChunk {
			t.Fatalf("opcode %s, want pre_chunk", packet.Opcode(op))
		}
		var pre packet.PreChunk
		if err := packet.DecodeBody(r, &pre); err != nil {
			t.Fatalf("decode pre_chunk: %v", err)
		}
		if pre != packet.NewPreChunkLoad(col.cx, col.cz) {
			t.Errorf("PreChunk = %+v, want load %d,%d", pre, col.cx, col.cz)
		}

		op, _ = r.ReadByte()
		if packet.Opcode(op) != packet.OpMapChunk {
			t.Fatalf("opcode %s, want map_chunk", packet.Opcode(op))
		}
		var m packet.MapChunk
		if err := packet.DecodeBody(r, &m); err != nil {
			t.Fatalf("decode map_chunk: %v", err)
		}
		if m.X != col.cx*16 || m.Z != col.cz*16 {
			t.Errorf("MapChunk at %d,%d, want %d,%d", m.X, m.Z, col.cx*16, col.cz*16)
		}
		sum += len(m.Data)
	}
	if r.Len() != 0 {
		t.Errorf("%d trailing bytes", r.Len())
	}
	if total != sum {
		t.Errorf("WriteChunkGrid reported %d chunk bytes, stream has %d", total, sum)
	}
}

func TestWriteChunkGridZeroRadius(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewWorld(gen.FlatGenerator{}, 0).WriteChunkGrid(&buf); err != nil {
		t.Fatalf("WriteChunkGrid: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for an empty play area", buf.Len())
	}
}

func TestSpawnHeight(t *testing.T) {
	if got := NewWorld(gen.FlatGenerator{}, 1).SpawnHeight(); got != 8 {
		t.Errorf("flat SpawnHeight() = %d, want 8", got)
	}
	if got := NewWorld(gen.EmptyGenerator{}, 1).SpawnHeight(); got != 0 {
		t.Errorf("empty SpawnHeight() = %d, want 0", got)
	}
}
