package decompress

import "io"

// Decompressor turns a compressed stream into a decompressed one.
type Decompressor interface {
	Reader(src io.Reader) (io.ReadCloser, error)
}
