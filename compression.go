package iochunks

import (
	"io"
	"strings"

	"github.com/CalebQ42/iochunks/internal/decompress"
	"github.com/pkg/errors"
)

// Compression is the compression used for the data inside a chunk.
type Compression uint8

// The supported compression types.
const (
	NoCompression Compression = iota
	GzipCompression
	ZlibCompression
	ZstdCompression
	XzCompression
	LzmaCompression
	Lz4Compression
	LzoCompression
)

var compressionNames = []string{"none", "gzip", "zlib", "zstd", "xz", "lzma", "lz4", "lzo"}

func (c Compression) String() string {
	if int(c) < len(compressionNames) {
		return compressionNames[c]
	}
	return "unknown"
}

// ParseCompression returns the Compression with the given name. The empty
// string means NoCompression.
func ParseCompression(name string) (Compression, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return NoCompression, nil
	}
	for i, n := range compressionNames {
		if n == name {
			return Compression(i), nil
		}
	}
	return NoCompression, errors.Wrapf(ErrValue, "unknown compression %q", name)
}

// NewDecompressedReader returns a reader of the decompressed contents of c,
// starting from c's cursor. Closing it doesn't close c or its host.
// A chunk with nothing left to read decompresses to nothing, whatever comp is.
func NewDecompressedReader(c *Chunk, comp Compression) (io.ReadCloser, error) {
	if c.Closed() {
		return nil, ErrClosed
	}
	if comp == NoCompression {
		return io.NopCloser(c), nil
	}
	d, err := decompress.For(comp.String())
	if err != nil {
		return nil, errors.Wrapf(ErrValue, "compression %s", comp)
	}
	if c.size-c.cursor <= 0 {
		return io.NopCloser(strings.NewReader("")), nil
	}
	rdr, err := d.Reader(c)
	if err != nil {
		return nil, errors.Wrapf(err, "starting %s decompression", comp)
	}
	return rdr, nil
}
