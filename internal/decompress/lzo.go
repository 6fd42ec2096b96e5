package decompress

import (
	"bytes"
	"io"

	"github.com/rasky/go-lzo"
)

// Lzo decodes raw LZO1X blocks. The format has no framing, so the whole
// input is read before decoding.
type Lzo struct{}

func (l Lzo) Reader(src io.Reader) (io.ReadCloser, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	out, err := lzo.Decompress1X(bytes.NewReader(data), len(data), 0)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(out)), nil
}
