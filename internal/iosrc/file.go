// Package iosrc is the platform file abstraction the decoder's window
// layer reads through: positional reads, at most one outstanding
// asynchronous read per handle, duplication, and close.
package iosrc

import (
	"errors"
	"time"
)

// AsyncToken identifies one outstanding asynchronous read request.
type AsyncToken uint64

// ErrQueueFull is returned by ReadAsync when a request is already
// outstanding on this handle. It is transient, not fatal: callers fall
// back to a synchronous read.
var ErrQueueFull = errors.New("iosrc: async read already outstanding")

// ErrUnknownToken is returned by Wait/Poll/Abort for a token that is not
// (or is no longer) the outstanding request on this handle.
var ErrUnknownToken = errors.New("iosrc: unknown async token")

// File is implemented by anything the decoder window layer can read
// compressed audio bytes from: a real OS file (OSFile) in production, or a
// fake in tests.
type File interface {
	// ReadAt performs a synchronous positional read, the seek+read
	// fallback when the read-ahead buffer cannot satisfy a request.
	ReadAt(buf []byte, pos int64) (int, error)

	// ReadAsync submits one asynchronous positional read with a priority
	// deadline (how soon the caller needs the data). deadline is advisory.
	// Returns ErrQueueFull if a request is already outstanding.
	ReadAsync(buf []byte, pos int64, deadline time.Duration) (AsyncToken, error)

	// Wait blocks until the given async request completes and returns its
	// result, clearing it as the outstanding request.
	Wait(token AsyncToken) (int, error)

	// Poll reports whether the given async request has completed without
	// blocking. If done, the request is cleared the same as Wait.
	Poll(token AsyncToken) (done bool, n int, err error)

	// Abort cancels the given outstanding request (if it is still the
	// current one); the underlying read may still run to completion but
	// its result is discarded.
	Abort(token AsyncToken)

	// Size returns the total byte length of the file.
	Size() int64

	// Dup returns an independent handle to the same file with its own
	// position and async-request state.
	Dup() (File, error)

	Close() error
}
