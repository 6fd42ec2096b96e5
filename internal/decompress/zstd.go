package decompress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

type Zstd struct{}

// Reader decodes synchronously so no goroutines outlive the returned reader.
func (z Zstd) Reader(src io.Reader) (io.ReadCloser, error) {
	r, err := zstd.NewReader(src, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return r.IOReadCloser(), nil
}
