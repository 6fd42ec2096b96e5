package decompress

import (
	"io"

	"github.com/klauspost/compress/zlib"
)

type Zlib struct{}

func (z Zlib) Reader(src io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(src)
}
