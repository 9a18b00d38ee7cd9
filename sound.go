package mixcore

import (
	"errors"
	"fmt"

	"github.com/loopwave/mixcore/internal/decoder"
	"github.com/loopwave/mixcore/internal/iosrc"
	"github.com/loopwave/mixcore/internal/soundpool"
	"github.com/loopwave/mixcore/internal/tags"
)

// ErrUnknownFormat is returned by the Sound constructors when format
// autodetection fails. Detection happens at construction, never deferred
// to play time.
var ErrUnknownFormat = errors.New("mixcore: unrecognized audio format")

// Metadata is the ID3 tag subset the engine surfaces for a file-backed
// sound. All fields are best-effort and may be empty.
type Metadata struct {
	Title  string
	Artist string
	Album  string
}

// Sound is a playable source created from an owned byte buffer or a file.
// A Sound may play on several channels at once; Destroy while in use
// defers the actual free until the last channel stops.
type Sound struct {
	pool *soundpool.Sound
	path string // empty for buffer-backed sounds
}

// NewSound creates a Sound over data, which the Sound takes ownership of.
// FormatAutodetect resolves the format from the stream's first bytes.
func (e *Engine) NewSound(data []byte, format Format) (*Sound, error) {
	if format == FormatAutodetect {
		detected, ok := CheckFormat(data)
		if !ok {
			debugf("mixcore: NewSound: %v", ErrUnknownFormat)
			return nil, ErrUnknownFormat
		}
		format = detected
	}
	return &Sound{pool: soundpool.NewFromBuffer(data, decoder.Format(format), "")}, nil
}

// NewSoundStream creates a Sound over the byte range [offset,
// offset+length) of the file at path; length <= 0 means "to end of
// file". The stream is read incrementally during playback rather than
// loaded up front.
func (e *Engine) NewSoundStream(path string, offset, length int64, format Format) (*Sound, error) {
	if offset < 0 {
		return nil, fmt.Errorf("mixcore: NewSoundStream: negative offset %d", offset)
	}
	f, err := iosrc.Open(path)
	if err != nil {
		debugf("mixcore: NewSoundStream: %v", err)
		return nil, err
	}
	if length <= 0 {
		length = f.Size() - offset
	}
	if length <= 0 {
		f.Close()
		return nil, fmt.Errorf("mixcore: NewSoundStream: empty range at offset %d", offset)
	}

	if format == FormatAutodetect {
		head := make([]byte, 12)
		n, _ := f.ReadAt(head, offset)
		detected, ok := CheckFormat(head[:n])
		if !ok {
			f.Close()
			debugf("mixcore: NewSoundStream: %v", ErrUnknownFormat)
			return nil, ErrUnknownFormat
		}
		format = detected
	}

	return &Sound{
		pool: soundpool.NewFromFile(f, offset, length, decoder.Format(format), path),
		path: path,
	}, nil
}

// Stereo reports whether the sound decodes to two channels. The value is
// populated the first time the sound is played.
func (s *Sound) Stereo() bool { return s.pool.Stereo() }

// NativeFreq reports the sampling rate embedded in the stream, populated
// the first time the sound is played.
func (s *Sound) NativeFreq() int { return s.pool.NativeFreq() }

// SetLoop overrides the stream's own loop points with a caller-supplied
// sample region. Passing -1, -1 reverts to the stream's own points.
func (s *Sound) SetLoop(start, length int64) {
	if start < -1 || length < -1 {
		debugf("mixcore: SetLoop(%d, %d) invalid, ignored", start, length)
		return
	}
	s.pool.SetLoopPoints(start, length)
}

// Metadata reads the sound's ID3 tags. Best-effort: buffer-backed sounds
// and streams without tags return the zero Metadata.
func (s *Sound) Metadata() Metadata {
	if s.path == "" {
		return Metadata{}
	}
	m, err := tags.Read(s.path)
	if err != nil {
		return Metadata{}
	}
	return Metadata{Title: m.Title, Artist: m.Artist, Album: m.Album}
}

// Destroy frees the sound, immediately when no channel is using it, or
// as soon as the last channel stops otherwise.
func (s *Sound) Destroy() { s.pool.Destroy() }

// Release is invoked by channel teardown, once per channel that played
// this sound. It is not part of the public API surface.
func (s *Sound) Release() { s.pool.Release() }
