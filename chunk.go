package iochunks

import (
	"bytes"
	"io"
	"io/fs"
	"math"

	"github.com/pkg/errors"
)

// Host is the stream a Chunk reads from. Any seekable stream can be a host;
// NewHost adapts an io.ReadSeeker.
type Host interface {
	io.Seeker
	Tell() (int64, error)
	// ReadInto does a single read into p. It returns 0, nil at the end of
	// the host's data and ErrNoData when nothing is available yet.
	ReadInto(p []byte) (int, error)
	Seekable() bool
	Closed() bool
}

// Chunk is a read-only view of the bytes [Start, End) of a Host. It doesn't
// own the host: closing a chunk leaves the host open, and closing the host
// closes every chunk made from it.
//
// Each read seeks the host to the chunk's position and seeks it back
// afterwards, so any number of chunks can share a host as long as they're
// used one at a time. A Chunk is not safe for concurrent use, and neither
// are chunks that share a host.
type Chunk struct {
	host     Host
	start    int64
	size     int64
	cursor   int64
	closed   bool
	acquired bool
}

// New creates a Chunk of size bytes starting at the host's current position.
func New(host Host, size int64) (*Chunk, error) {
	if err := checkHost(host); err != nil {
		return nil, err
	}
	start, err := host.Tell()
	if err != nil {
		return nil, errors.Wrap(err, "getting host position")
	}
	return NewAt(host, start, size)
}

// NewAt creates a Chunk of size bytes starting at start.
func NewAt(host Host, start, size int64) (*Chunk, error) {
	if err := checkHost(host); err != nil {
		return nil, err
	}
	if start < 0 {
		return nil, errors.Wrapf(ErrValue, "negative start %d", start)
	}
	if size < 0 {
		return nil, errors.Wrapf(ErrValue, "negative size %d", size)
	}
	return &Chunk{
		host:  host,
		start: start,
		size:  size,
	}, nil
}

func checkHost(host Host) error {
	if host == nil {
		return errors.Wrap(ErrType, "host is nil")
	}
	if host.Closed() {
		return errors.Wrap(ErrState, "host is closed")
	}
	if !host.Seekable() {
		return errors.Wrap(ErrState, "host is not seekable")
	}
	return nil
}

// Host returns the chunk's host.
func (c *Chunk) Host() Host {
	return c.host
}

// Start is the offset of the chunk inside its host.
func (c *Chunk) Start() int64 {
	return c.start
}

// Size is the length of the chunk.
func (c *Chunk) Size() int64 {
	return c.size
}

// End is the offset in the host right after the chunk's last byte.
func (c *Chunk) End() int64 {
	return c.start + c.size
}

// ReadInto reads into p using at most one read of the host and returns the
// number of bytes read.
//
// Reaching the end of the chunk, or the host running out of data before
// the end of the chunk, returns 0 and a nil error. The cursor is left
// alone in both cases.
func (c *Chunk) ReadInto(p []byte) (int, error) {
	if c.Closed() {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	remaining := c.size - c.cursor
	if remaining <= 0 {
		return 0, nil
	}
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}
	pos, err := c.host.Tell()
	if err != nil {
		return 0, hostErr(err, "getting host position")
	}
	if _, err = c.host.Seek(c.start+c.cursor, io.SeekStart); err != nil {
		return 0, hostErr(err, "seeking host")
	}
	n, err := c.host.ReadInto(p)
	if err != nil && errors.Is(err, fs.ErrClosed) {
		err = ErrClosed
	}
	if _, seekErr := c.host.Seek(pos, io.SeekStart); seekErr != nil && err == nil {
		err = hostErr(seekErr, "restoring host position")
	}
	if n > 0 {
		c.cursor += int64(n)
	}
	return n, err
}

// hostErr wraps an error from the host, reporting a closed host as ErrClosed.
func hostErr(err error, msg string) error {
	if errors.Is(err, fs.ErrClosed) {
		return ErrClosed
	}
	return errors.Wrap(err, msg)
}

// Read implements io.Reader. It behaves as ReadInto except that the end of
// the data is reported as io.EOF.
func (c *Chunk) Read(p []byte) (int, error) {
	n, err := c.ReadInto(p)
	if n == 0 && err == nil && len(p) > 0 {
		return 0, io.EOF
	}
	return n, err
}

// ReadN reads up to n bytes, stopping early at the end of the data.
func (c *Chunk) ReadN(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrValue, "negative read size %d", n)
	}
	out := make([]byte, n)
	read := 0
	for read < n {
		r, err := c.ReadInto(out[read:])
		read += r
		if err != nil {
			return out[:read], err
		}
		if r == 0 {
			break
		}
	}
	return out[:read], nil
}

// ReadAll reads from the cursor until the end of the data.
func (c *Chunk) ReadAll() ([]byte, error) {
	var buf bytes.Buffer
	_, err := c.WriteTo(&buf)
	return buf.Bytes(), err
}

// WriteTo implements io.WriterTo, copying the rest of the chunk to w.
func (c *Chunk) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 32*1024)
	var written int64
	for {
		n, err := c.ReadInto(buf)
		if n > 0 {
			wn, werr := w.Write(buf[:n])
			written += int64(wn)
			if werr != nil {
				return written, werr
			}
			if wn != n {
				return written, io.ErrShortWrite
			}
		}
		if err != nil {
			return written, err
		}
		if n == 0 {
			return written, nil
		}
	}
}

// Seek sets the cursor. Seeking to a negative absolute offset is an error,
// while relative seeks that would go below zero stop at zero. Seeking past
// the end is allowed; reads there return nothing. A relative seek that
// would overflow the cursor is an error.
func (c *Chunk) Seek(offset int64, whence int) (int64, error) {
	if c.Closed() {
		return 0, ErrClosed
	}
	switch whence {
	case io.SeekStart:
		if offset < 0 {
			return c.cursor, errors.Wrapf(ErrValue, "negative seek value %d", offset)
		}
		c.cursor = offset
	case io.SeekCurrent, io.SeekEnd:
		base := c.cursor
		if whence == io.SeekEnd {
			base = c.size
		}
		if offset > 0 && base > math.MaxInt64-offset {
			return c.cursor, errors.Wrapf(ErrValue, "seek value %d overflows", offset)
		}
		c.cursor = base + offset
	default:
		return c.cursor, errors.Wrapf(ErrValue, "invalid whence %d", whence)
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
	return c.cursor, nil
}

// Tell returns the cursor.
func (c *Chunk) Tell() (int64, error) {
	if c.Closed() {
		return 0, ErrClosed
	}
	return c.cursor, nil
}

// Truncate resizes the chunk. The cursor and the host are not changed.
func (c *Chunk) Truncate(size int64) (int64, error) {
	if size < 0 {
		return c.size, errors.Wrapf(ErrValue, "negative size value %d", size)
	}
	c.size = size
	return c.size, nil
}

// TruncateToCursor resizes the chunk to end at the cursor.
func (c *Chunk) TruncateToCursor() (int64, error) {
	return c.Truncate(c.cursor)
}

// Seekable is always true for an open chunk.
func (c *Chunk) Seekable() bool {
	ok, _ := c.CanSeek()
	return ok
}

// CanSeek reports whether the chunk can seek, failing with ErrClosed once
// it's closed.
func (c *Chunk) CanSeek() (bool, error) {
	if c.Closed() {
		return false, ErrClosed
	}
	return true, nil
}

// CanRead reports whether the chunk can be read, failing with ErrClosed once
// it's closed. Reads past the end return nothing instead of failing.
func (c *Chunk) CanRead() (bool, error) {
	if c.Closed() {
		return false, ErrClosed
	}
	return true, nil
}

// Close marks the chunk closed. It never closes the host.
func (c *Chunk) Close() error {
	c.closed = true
	return nil
}

// Closed reports whether the chunk or its host is closed.
func (c *Chunk) Closed() bool {
	return c.closed || c.host.Closed()
}

// Write always fails with ErrUnsupported.
func (c *Chunk) Write([]byte) (int, error) {
	return 0, errors.Wrap(ErrUnsupported, "chunks are read-only")
}

// Fd returns the host's file descriptor, if it has one.
func (c *Chunk) Fd() (uintptr, error) {
	if f, ok := c.host.(interface{ Fd() (uintptr, error) }); ok {
		return f.Fd()
	}
	if f, ok := c.host.(interface{ Fd() uintptr }); ok {
		return f.Fd(), nil
	}
	return 0, errors.Wrap(ErrUnsupported, "host has no file descriptor")
}
