package iochunks

import "github.com/pkg/errors"

// Split cuts host into consecutive chunks of the given sizes, starting at the
// host's current position.
func Split(host Host, sizes ...int64) ([]*Chunk, error) {
	if err := checkHost(host); err != nil {
		return nil, err
	}
	start, err := host.Tell()
	if err != nil {
		return nil, errors.Wrap(err, "getting host position")
	}
	out := make([]*Chunk, 0, len(sizes))
	for i, size := range sizes {
		c, err := NewAt(host, start, size)
		if err != nil {
			return nil, errors.Wrapf(err, "chunk %d", i)
		}
		out = append(out, c)
		start = c.End()
	}
	return out, nil
}

// SplitEvery cuts total bytes of host, from its current position, into chunks
// of n bytes. The last chunk holds whatever is left and may be smaller.
func SplitEvery(host Host, total, n int64) ([]*Chunk, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrValue, "chunk size must be positive, got %d", n)
	}
	if total < 0 {
		return nil, errors.Wrapf(ErrValue, "negative total %d", total)
	}
	sizes := make([]int64, 0, (total+n-1)/n)
	for left := total; left > 0; left -= n {
		if left < n {
			sizes = append(sizes, left)
		} else {
			sizes = append(sizes, n)
		}
	}
	return Split(host, sizes...)
}
