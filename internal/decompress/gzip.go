package decompress

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

type GZip struct{}

func (g GZip) Reader(src io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(src)
}
