package world

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	mcnet "github.com/G2-Games/minecraft-alpha-server/internal/server/net"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/world/gen"
)

// columnBytes is the uncompressed size of one column: the block plane plus
// three nibble planes.
const columnBytes = gen.Volume + 3*gen.NibbleVolume

// Compress deflates the column planes in wire order (blocks, metadata,
// block light, sky light) as a single zlib stream at the default level.
func Compress(a *gen.BlockArray) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("%w: create zlib writer: %w", mcnet.ErrEncoding, err)
	}

	for _, plane := range [][]byte{a.Blocks, a.Metadata, a.BlockLight, a.SkyLight} {
		if _, err := zw.Write(plane); err != nil {
			zw.Close()
			return nil, fmt.Errorf("%w: compress column: %w", mcnet.ErrEncoding, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: finish column: %w", mcnet.ErrEncoding, err)
	}
	return buf.Bytes(), nil
}

// Decompress inflates data produced by Compress back into its planes.
func Decompress(data []byte) (*gen.BlockArray, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, mcnet.Malformed("open column stream: %v", err)
	}
	defer zr.Close()

	raw := make([]byte, columnBytes)
	if _, err := io.ReadFull(zr, raw); err != nil {
		return nil, mcnet.Malformed("inflate column: %v", err)
	}
	if n, _ := zr.Read(make([]byte, 1)); n != 0 {
		return nil, mcnet.Malformed("column stream longer than %d bytes", columnBytes)
	}

	return &gen.BlockArray{
		Blocks:     raw[:gen.Volume],
		Metadata:   raw[gen.Volume : gen.Volume+gen.NibbleVolume],
		BlockLight: raw[gen.Volume+gen.NibbleVolume : gen.Volume+2*gen.NibbleVolume],
		SkyLight:   raw[gen.Volume+2*gen.NibbleVolume:],
	}, nil
}
