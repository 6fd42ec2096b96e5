package iochunks

import (
	"io"
	"io/fs"
	"os"

	"github.com/pkg/errors"
)

// ReadSeekerHost makes an io.ReadSeeker usable as a Host.
type ReadSeekerHost struct {
	rs       io.ReadSeeker
	seekable bool
	closed   bool
}

// NewHost wraps rs. Whether rs can seek is checked once, here, by asking for
// its current position. Pipes and sockets fail that check.
func NewHost(rs io.ReadSeeker) *ReadSeekerHost {
	_, err := rs.Seek(0, io.SeekCurrent)
	return &ReadSeekerHost{
		rs:       rs,
		seekable: err == nil,
		closed:   errors.Is(err, fs.ErrClosed),
	}
}

// OpenFile opens the named file as a Host. Closing the host closes the file.
func OpenFile(name string) (*ReadSeekerHost, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return NewHost(f), nil
}

func (h *ReadSeekerHost) Seek(offset int64, whence int) (int64, error) {
	if h.closed {
		return 0, ErrClosed
	}
	n, err := h.rs.Seek(offset, whence)
	if h.checkClosed(err) {
		return 0, ErrClosed
	}
	return n, err
}

func (h *ReadSeekerHost) Tell() (int64, error) {
	return h.Seek(0, io.SeekCurrent)
}

// ReadInto does a single Read. io.EOF is not an error here: the read count
// alone tells the caller whether anything was read. A Read that returns
// nothing and no error becomes ErrNoData.
func (h *ReadSeekerHost) ReadInto(p []byte) (int, error) {
	if h.closed {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := h.rs.Read(p)
	switch {
	case err == io.EOF:
		return n, nil
	case n == 0 && err == nil:
		return 0, ErrNoData
	}
	if h.checkClosed(err) {
		return 0, ErrClosed
	}
	return n, err
}

func (h *ReadSeekerHost) Seekable() bool {
	return h.seekable
}

// Closed reports whether Close was called, or the wrapped value reported
// itself closed. Until then the wrapped value is asked for its position on
// every call, so closing it directly is seen right away.
func (h *ReadSeekerHost) Closed() bool {
	if !h.closed {
		_, err := h.rs.Seek(0, io.SeekCurrent)
		h.checkClosed(err)
	}
	return h.closed
}

// Close marks the host closed, closing the wrapped value if it's an io.Closer.
// Every chunk using this host is closed with it.
func (h *ReadSeekerHost) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	if cl, ok := h.rs.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// Fd returns the file descriptor of the wrapped value.
func (h *ReadSeekerHost) Fd() (uintptr, error) {
	if f, ok := h.rs.(interface{ Fd() uintptr }); ok {
		return f.Fd(), nil
	}
	return 0, errors.Wrap(ErrUnsupported, "host has no file descriptor")
}

// Unwrap returns the wrapped io.ReadSeeker.
func (h *ReadSeekerHost) Unwrap() io.ReadSeeker {
	return h.rs
}

// checkClosed marks the host closed if err says the wrapped value is.
func (h *ReadSeekerHost) checkClosed(err error) bool {
	if err != nil && errors.Is(err, fs.ErrClosed) {
		h.closed = true
	}
	return h.closed
}

// ConvertHost returns v as a Host. v must be a Host or an io.ReadSeeker.
func ConvertHost(v any) (Host, error) {
	switch h := v.(type) {
	case nil:
		return nil, errors.Wrap(ErrType, "host is nil")
	case Host:
		return h, nil
	case io.ReadSeeker:
		return NewHost(h), nil
	default:
		return nil, errors.Wrapf(ErrType, "host: expected Host or io.ReadSeeker, got %T", v)
	}
}

// Wrap creates a Chunk over v starting at v's current position. v is
// converted with ConvertHost.
func Wrap(v any, size int64) (*Chunk, error) {
	h, err := ConvertHost(v)
	if err != nil {
		return nil, err
	}
	return New(h, size)
}

// WrapAt is Wrap with an explicit start.
func WrapAt(v any, start, size int64) (*Chunk, error) {
	h, err := ConvertHost(v)
	if err != nil {
		return nil, err
	}
	return NewAt(h, start, size)
}
