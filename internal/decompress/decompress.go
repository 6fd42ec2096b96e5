package decompress

import "errors"

var errUnknown = errors.New("unknown compression type")

// For returns the Decompressor registered under name.
func For(name string) (Decompressor, error) {
	switch name {
	case "zlib":
		return Zlib{}, nil
	case "gzip":
		return GZip{}, nil
	case "zstd":
		return Zstd{}, nil
	case "xz":
		return Xz{}, nil
	case "lzma":
		return Lzma{}, nil
	case "lz4":
		return Lz4{}, nil
	case "lzo":
		return Lzo{}, nil
	default:
		return nil, errUnknown
	}
}
