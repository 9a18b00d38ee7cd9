// Package filterfx implements the per-channel sample filter framework:
// a two-flag turn-based mutual exclusion protocol between the main
// thread and the audio callback, plus a reference flange filter.
package filterfx

import (
	"runtime"
	"sync/atomic"
)

// Filter transforms PCM in place on a single channel after decoding and
// before mixing.
type Filter interface {
	// Apply transforms buf (interleaved S16LE samples) in place.
	Apply(buf []int16)
	Close()
	Stereo() bool
	Freq() int
}

// Guard is a two-flag turn-based mutual exclusion scheme. It protects
// one Channel's filter pointer between the main thread (via SetFilter /
// channel reset) and the audio callback goroutine, avoiding a kernel
// lock in the common uncontended case. sync/atomic stands in where a
// memory barrier would sit elsewhere: Go has no language-level barrier
// primitive, and atomic loads/stores are the idiomatic equivalent.
type Guard struct {
	wantMain   atomic.Bool
	wantDecode atomic.Bool
	turnIsMain atomic.Bool
}

// LockMain acquires the guard from the main thread side.
func (g *Guard) LockMain() {
	g.wantMain.Store(true)
	g.turnIsMain.Store(false)
	for g.wantDecode.Load() && !g.turnIsMain.Load() {
		runtime.Gosched()
	}
}

// UnlockMain releases a lock acquired via LockMain.
func (g *Guard) UnlockMain() {
	g.wantMain.Store(false)
}

// LockDecode acquires the guard from the audio callback side.
func (g *Guard) LockDecode() {
	g.wantDecode.Store(true)
	g.turnIsMain.Store(true)
	for g.wantMain.Load() && g.turnIsMain.Load() {
		runtime.Gosched()
	}
}

// UnlockDecode releases a lock acquired via LockDecode.
func (g *Guard) UnlockDecode() {
	g.wantDecode.Store(false)
}
