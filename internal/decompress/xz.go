package decompress

import (
	"io"

	"github.com/therootcompany/xz"
)

type Xz struct{}

func (x Xz) Reader(src io.Reader) (io.ReadCloser, error) {
	rdr, err := xz.NewReader(src, 0)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(rdr), nil
}
