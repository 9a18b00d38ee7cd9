package filterfx

import "sync/atomic"

// Slot is the attach point a mixer channel holds for its active filter.
// Reads come from the audio callback (LockDecode/UnlockDecode); writes
// come from the main thread via Attach/Detach.
type Slot struct {
	guard  Guard
	filter Filter

	// active mirrors filter != nil for the audio callback's lock-free
	// fast path: a nil filter is skipped without entering the guard at
	// all. The transition to nil only ever happens under the guard, so a
	// stale true is re-checked safely after locking.
	active atomic.Bool
}

// Attach installs f as the slot's active filter, closing whatever was
// attached before. Safe to call concurrently with Run from the audio
// callback.
func (s *Slot) Attach(f Filter) {
	s.guard.LockMain()
	old := s.filter
	s.filter = f
	s.active.Store(f != nil)
	s.guard.UnlockMain()
	if old != nil {
		old.Close()
	}
}

// Detach removes and closes the slot's active filter, if any.
func (s *Slot) Detach() {
	s.guard.LockMain()
	old := s.filter
	s.filter = nil
	s.active.Store(false)
	s.guard.UnlockMain()
	if old != nil {
		old.Close()
	}
}

// Active reports whether a filter is currently attached.
func (s *Slot) Active() bool {
	return s.active.Load()
}

// Run applies the currently attached filter (if any) to buf from the
// audio callback side. The no-filter case returns without touching the
// guard; otherwise the guard is held for the whole call so Attach can't
// close a filter out from under an in-flight Apply.
func (s *Slot) Run(buf []int16) {
	if !s.active.Load() {
		return
	}
	s.guard.LockDecode()
	defer s.guard.UnlockDecode()
	if s.filter != nil {
		s.filter.Apply(buf)
	}
}
