package decoder

import (
	"fmt"
	"io"
	"sync"

	"github.com/loopwave/mixcore/internal/iosrc"
)

// Format identifies a compressed audio format tag.
type Format int

const (
	FormatAutodetect Format = iota
	FormatWAV
	FormatMP3
	FormatVorbis
	FormatFLAC
	FormatAAC
)

func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatMP3:
		return "mp3"
	case FormatVorbis:
		return "vorbis"
	case FormatFLAC:
		return "flac"
	case FormatAAC:
		return "aac"
	default:
		return "autodetect"
	}
}

// Source is the byte-range view a back-end reads its compressed stream
// through: an io.ReadSeeker backed by the window layer, plus the
// stream's total length.
type Source interface {
	io.ReadSeeker
	Size() int64
}

// Backend is the contract a format-specific back-end implements: fill a
// caller buffer with interleaved S16LE PCM,
// and report the stream parameters discovered on open.
type Backend interface {
	// GetPCM fills buf (frames*channels int16 values) with up to frames
	// samples and returns how many frames it actually produced. Whenever
	// the back-end internally crosses its own loop boundary it adds the
	// number of samples it rewound to *loopOffset, so Instance can correct
	// samplesGotten/resampleLoopOfs.
	GetPCM(buf []int16, loopOffset *int64) (int, error)
	Close() error

	Stereo() bool
	NativeFreq() int
	Bitrate() int

	// LoopStart/LoopLength report the back-end's own detected loop points
	// or (-1, -1) if the stream carries none.
	LoopStart() int64
	LoopLength() int64

	// SetLoop programs the loop region GetPCM rewinds to internally once
	// enabled: at start+length when length > 0, or at end of stream when
	// length is 0; a caller-supplied region (via
	// Instance.SetLoopPoints) overrides the back-end-detected one.
	SetLoop(start, length int64, enabled bool)
}

// OpenFunc opens a back-end instance against src. name carries the sound's
// file extension (or empty string for memory sources), used only by
// back-ends whose container selection depends on it (AAC).
type OpenFunc func(src Source, name string) (Backend, error)

var registry = struct {
	mu    sync.RWMutex
	funcs map[Format]OpenFunc
}{funcs: map[Format]OpenFunc{}}

// Register installs (or replaces) the open function for a format tag. The
// table is mutable at runtime so tests can substitute fakes.
func Register(format Format, fn OpenFunc) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.funcs[format] = fn
}

func lookup(format Format) (OpenFunc, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	fn, ok := registry.funcs[format]
	return fn, ok
}

// Detect examines the first bytes of src to pick a format tag. It never
// reads past what is actually available, so a stream
// shorter than any magic simply fails to match instead of panicking or
// reading out of bounds.
func Detect(src Source) (Format, error) {
	head := make([]byte, 12)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FormatAutodetect, err
	}
	head = head[:n]
	if _, serr := src.Seek(0, io.SeekStart); serr != nil {
		return FormatAutodetect, serr
	}
	return DetectBytes(head)
}

// DetectBytes matches head (the first bytes of a stream, any length)
// against the known format magics: RIFF/WAVE, the MP3 sync word, OggS,
// then the supplemental container magics.
func DetectBytes(head []byte) (Format, error) {
	n := len(head)
	if n >= 12 && string(head[0:4]) == "RIFF" && string(head[8:12]) == "WAVE" {
		return FormatWAV, nil
	}
	if n >= 2 && head[0] == 0xFF && head[1]&0xE0 == 0xE0 {
		return FormatMP3, nil
	}
	if n >= 4 && string(head[0:4]) == "OggS" {
		return FormatVorbis, nil
	}
	// Supplemental formats: tried only after the primary three, never
	// ahead of them.
	if n >= 4 && string(head[0:4]) == "fLaC" {
		return FormatFLAC, nil
	}
	if n >= 8 && string(head[4:8]) == "ftyp" {
		return FormatAAC, nil
	}
	return FormatAutodetect, fmt.Errorf("decoder: unrecognized format")
}

// OpenMemory opens a back-end decoding instance over an in-memory byte
// buffer, autodetecting the format when format is FormatAutodetect.
func OpenMemory(data []byte, format Format, name string) (*Instance, error) {
	w := newMemoryWindow(data)
	return openInstance(w, format, name)
}

// OpenFile opens a back-end decoding instance over an asynchronous file
// window, autodetecting the format when format is
// FormatAutodetect. The window's read-ahead deadline starts at bitrate 0
// (no throttling) and is refined to the back-end's reported bitrate once
// open succeeds.
func OpenFile(f iosrc.File, total int64, format Format, name string) (*Instance, error) {
	w := newFileWindow(f, total, 0)
	return openInstance(w, format, name)
}

func openInstance(w *window, format Format, name string) (*Instance, error) {
	src := newSource(w)

	if format == FormatAutodetect {
		detected, err := Detect(src)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	openFn, ok := lookup(format)
	if !ok {
		return nil, fmt.Errorf("decoder: format %s not registered", format)
	}

	backend, err := openFn(src, name)
	if err != nil {
		return nil, err
	}

	if w.isFile() {
		w.bitrate = backend.Bitrate()
	}

	channels := 1
	if backend.Stereo() {
		channels = 2
	}
	inst := &Instance{
		backend:    backend,
		nativeFreq: backend.NativeFreq(),
		channels:   channels,
		bitrate:    backend.Bitrate(),
		outputFreq: backend.NativeFreq(),
		decodeFreq: backend.NativeFreq(),
		loopStart:  -1,
		loopLength: -1,
	}
	// A zero length is kept as-is: it marks a loop whose boundary is the
	// end of the stream (a LOOPSTART comment with no LOOPLENGTH).
	if ls, ll := backend.LoopStart(), backend.LoopLength(); ls >= 0 && ll >= 0 {
		inst.loopStart = ls
		inst.loopLength = ll
	}
	inst.pushLoop()
	return inst, nil
}
