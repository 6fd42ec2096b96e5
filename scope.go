package iochunks

import "github.com/pkg/errors"

// Acquire starts a scoped use of the chunk, ended by Release. A chunk can only
// be acquired once: acquiring a closed chunk fails with ErrClosed and
// acquiring one that's already acquired fails with ErrState.
func (c *Chunk) Acquire() (*Chunk, error) {
	if c.Closed() {
		return nil, ErrClosed
	}
	if c.acquired {
		return nil, errors.Wrap(ErrState, "chunk already acquired")
	}
	c.acquired = true
	return c, nil
}

// Release ends the scope started by Acquire by closing the chunk.
func (c *Chunk) Release() error {
	return c.Close()
}

// With acquires the chunk, calls fn, and releases the chunk. fn's error takes
// precedence over Release's.
func (c *Chunk) With(fn func(*Chunk) error) (err error) {
	ch, err := c.Acquire()
	if err != nil {
		return err
	}
	defer func() {
		if relErr := ch.Release(); err == nil {
			err = relErr
		}
	}()
	return fn(ch)
}
