// Package soundpool implements the Sound-object lifecycle:
// reference counting tied to channel use, and the deferred free that lets
// destroy() be called safely while a sound is still playing.
package soundpool

import (
	"errors"
	"sync"

	"github.com/loopwave/mixcore/internal/decoder"
	"github.com/loopwave/mixcore/internal/iosrc"
)

// ErrSoundClosed is returned by OpenInstance once a Sound has been freed.
var ErrSoundClosed = errors.New("soundpool: sound is closed")

// Sound is a playable source, created from an owned byte buffer or a
// duplicated file handle plus offset and length.
type Sound struct {
	mu sync.Mutex

	format decoder.Format
	name   string

	data []byte     // owned, for a buffer-backed sound
	file iosrc.File // present for a file-backed sound

	loopStart, loopLength int64 // -1 means "use the stream's own loop points"

	usage      int
	freeOnStop bool
	closed     bool

	paramsKnown bool
	isStereo    bool
	nativeFreq  int
}

// NewFromBuffer creates a Sound over an owned in-memory buffer.
func NewFromBuffer(data []byte, format decoder.Format, name string) *Sound {
	return &Sound{data: data, format: format, name: name, loopStart: -1, loopLength: -1}
}

// NewFromFile creates a Sound over the byte range [offset, offset+length)
// of f. The Sound takes ownership of f (it is closed when the Sound is
// freed); callers should pass a handle obtained via iosrc.File.Dup when
// the original handle is still needed elsewhere.
func NewFromFile(f iosrc.File, offset, length int64, format decoder.Format, name string) *Sound {
	return &Sound{
		file:      newOffsetFile(f, offset, length),
		format:    format,
		name:      name,
		loopStart: -1,
		loopLength: -1,
	}
}

// SetLoopPoints overrides the sound's loop region; -1/-1 reverts to using
// whatever loop points (if any) the stream itself carries.
func (s *Sound) SetLoopPoints(start, length int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loopStart, s.loopLength = start, length
}

// LoopPoints returns the sound's caller-set loop region.
func (s *Sound) LoopPoints() (start, length int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loopStart, s.loopLength
}

// Stereo and NativeFreq report the lazily populated audio parameters of
// both are zero-value until OpenInstance has succeeded once.
func (s *Sound) Stereo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isStereo
}

func (s *Sound) NativeFreq() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nativeFreq
}

// OpenInstance opens a fresh decoder over this sound's source, memory or
// file variant, honouring any caller-set loop points. Multiple instances
// may be open concurrently against the same Sound, one per channel
// playing it.
func (s *Sound) OpenInstance() (*decoder.Instance, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSoundClosed
	}
	format, name := s.format, s.name
	loopStart, loopLength := s.loopStart, s.loopLength
	file := s.file
	data := s.data
	s.mu.Unlock()

	var (
		inst *decoder.Instance
		err  error
	)
	if file != nil {
		dup, dupErr := file.Dup()
		if dupErr != nil {
			return nil, dupErr
		}
		inst, err = decoder.OpenFile(dup, dup.Size(), format, name)
	} else {
		inst, err = decoder.OpenMemory(data, format, name)
	}
	if err != nil {
		return nil, err
	}

	// A caller-set region replaces whatever the stream itself declared;
	// whether the instance actually loops is decided by the caller
	// (play's loop flag / EnableLoop), not here.
	if loopStart >= 0 && loopLength >= 0 {
		inst.SetLoopPoints(loopStart, loopLength)
	}

	s.mu.Lock()
	if !s.paramsKnown {
		s.isStereo = inst.Stereo()
		s.nativeFreq = inst.NativeFreq()
		s.paramsKnown = true
	}
	s.mu.Unlock()

	return inst, nil
}

// Acquire increments the usage counter; called once per channel that
// starts playing this sound.
func (s *Sound) Acquire() {
	s.mu.Lock()
	s.usage++
	s.mu.Unlock()
}

// Release implements mixchan.SoundOwner. It is called exactly once per
// channel teardown, decrementing the usage counter and freeing the sound
// if it has reached zero while a deferred Destroy is pending.
func (s *Sound) Release() {
	s.mu.Lock()
	if s.usage > 0 {
		s.usage--
	}
	shouldFree := s.usage == 0 && s.freeOnStop && !s.closed
	s.mu.Unlock()
	if shouldFree {
		s.free()
	}
}

// Destroy frees the sound: immediately when it is unused, or deferred
// (via Release, once usage reaches zero) otherwise.
func (s *Sound) Destroy() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.usage == 0 {
		s.mu.Unlock()
		s.free()
		return
	}
	s.freeOnStop = true
	s.mu.Unlock()
}

func (s *Sound) free() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	file := s.file
	s.file = nil
	s.data = nil
	s.mu.Unlock()
	if file != nil {
		file.Close()
	}
}
