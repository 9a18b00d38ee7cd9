package iosrc

import (
	"os"
	"sync"
	"time"
)

// OSFile implements File over a real *os.File. It allows at most one
// outstanding asynchronous read at a time, matching the window layer's
// "at most one outstanding asynchronous read" rule:
// a second ReadAsync while one is in flight returns ErrQueueFull rather
// than queuing, pushing the caller onto the synchronous fallback path.
type OSFile struct {
	mu      sync.Mutex
	f       *os.File
	path    string
	size    int64
	nextTok AsyncToken
	pending *asyncRequest
}

type asyncRequest struct {
	token AsyncToken
	done  chan struct{}
	n     int
	err   error
}

// Open opens path for reading and wraps it as a File.
func Open(path string) (*OSFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &OSFile{f: f, path: path, size: info.Size()}, nil
}

func (o *OSFile) Size() int64 { return o.size }

func (o *OSFile) ReadAt(buf []byte, pos int64) (int, error) {
	return o.f.ReadAt(buf, pos)
}

// ReadAsync launches a read on its own goroutine. deadline is accepted for
// interface conformance; a single in-flight request per handle always runs
// immediately, so there is nothing to schedule it against.
func (o *OSFile) ReadAsync(buf []byte, pos int64, deadline time.Duration) (AsyncToken, error) {
	o.mu.Lock()
	if o.pending != nil {
		o.mu.Unlock()
		return 0, ErrQueueFull
	}
	o.nextTok++
	req := &asyncRequest{token: o.nextTok, done: make(chan struct{})}
	o.pending = req
	f := o.f
	o.mu.Unlock()

	go func() {
		n, err := f.ReadAt(buf, pos)
		req.n, req.err = n, err
		close(req.done)
	}()
	return req.token, nil
}

func (o *OSFile) Wait(token AsyncToken) (int, error) {
	req := o.matchPending(token)
	if req == nil {
		return 0, ErrUnknownToken
	}
	<-req.done
	o.clearIfCurrent(token)
	return req.n, req.err
}

func (o *OSFile) Poll(token AsyncToken) (bool, int, error) {
	req := o.matchPending(token)
	if req == nil {
		return true, 0, ErrUnknownToken
	}
	select {
	case <-req.done:
		o.clearIfCurrent(token)
		return true, req.n, req.err
	default:
		return false, 0, nil
	}
}

func (o *OSFile) Abort(token AsyncToken) {
	o.clearIfCurrent(token)
}

func (o *OSFile) matchPending(token AsyncToken) *asyncRequest {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pending == nil || o.pending.token != token {
		return nil
	}
	return o.pending
}

func (o *OSFile) clearIfCurrent(token AsyncToken) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pending != nil && o.pending.token == token {
		o.pending = nil
	}
}

// Dup reopens the same path as an independent handle with its own
// position and async state, the portable stand-in for an OS-level
// duplicate-handle call.
func (o *OSFile) Dup() (File, error) {
	return Open(o.path)
}

func (o *OSFile) Close() error {
	if o.f == nil {
		return nil
	}
	err := o.f.Close()
	o.f = nil
	return err
}
