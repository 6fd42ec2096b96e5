package decompress

import (
	"io"

	"github.com/ulikunitz/xz/lzma"
)

type Lzma struct{}

func (l Lzma) Reader(src io.Reader) (io.ReadCloser, error) {
	rdr, err := lzma.NewReader(src)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(rdr), nil
}
