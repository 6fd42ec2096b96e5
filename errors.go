package iochunks

import (
	"io/fs"

	"github.com/pkg/errors"
)

// Errors returned by chunks and hosts. Returned errors carry context, so
// compare with errors.Is.
var (
	// ErrType means a value doesn't have the capabilities required of it, such as a host that can't seek.
	ErrType = errors.New("wrong type")
	// ErrValue means an argument has the right type but an invalid value.
	ErrValue = errors.New("invalid value")
	// ErrState means the host was in an unusable state when the chunk was created.
	ErrState = errors.New("invalid state")
	// ErrClosed means the chunk, or its host, is closed. It matches fs.ErrClosed.
	ErrClosed = errors.Wrap(fs.ErrClosed, "chunk")
	// ErrUnsupported is returned by operations a read-only chunk can't do.
	ErrUnsupported = errors.New("unsupported operation")
	// ErrNoData is returned by hosts that have no data available right now
	// but aren't at their end. Chunks pass it through unchanged.
	ErrNoData = errors.New("no data available")
)
