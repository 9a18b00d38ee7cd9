package backend

import (
	"bytes"
	"io"
	"strconv"

	"github.com/jfreymuth/oggvorbis"

	"github.com/loopwave/mixcore/internal/decoder"
)

func init() {
	decoder.Register(decoder.FormatVorbis, openVorbis)
}

// vorbisCommentScanWindow bounds how much of the stream's head is scanned
// for LOOPSTART=/LOOPLENGTH= comments before handing the source to the
// decode library; loop comments always live in the early comment header.
const vorbisCommentScanWindow = 65536

type vorbisBackend struct {
	reader     *oggvorbis.Reader
	channels   int
	sampleRate int

	loopStart  int64
	loopLength int64

	curLoopStart   int64
	curLoopLength  int64
	curLoopEnabled bool

	samplePos int64
	frameBuf  []float32
}

func openVorbis(src decoder.Source, _ string) (decoder.Backend, error) {
	loopStart, loopLength := scanVorbisLoopComments(src)

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	reader, err := oggvorbis.NewReader(src)
	if err != nil {
		return nil, err
	}

	b := &vorbisBackend{
		reader:     reader,
		channels:   reader.Channels(),
		sampleRate: reader.SampleRate(),
		loopStart:  loopStart,
		loopLength: loopLength,
	}
	b.frameBuf = make([]float32, b.channels)
	return b, nil
}

// scanVorbisLoopComments raw-scans the stream head for case-exact
// LOOPSTART=/LOOPLENGTH= markers, rather than parsing the
// Vorbis comment list structurally — oggvorbis's Reader does not expose
// comments, and the length-prefixed comment framing is not worth
// reimplementing just to read two keys.
func scanVorbisLoopComments(src decoder.Source) (start, length int64) {
	n := vorbisCommentScanWindow
	if sz := src.Size(); sz < int64(n) {
		n = int(sz)
	}
	if n <= 0 {
		return -1, -1
	}
	buf := make([]byte, n)
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return -1, -1
	}
	if _, err := io.ReadFull(src, buf); err != nil && err != io.ErrUnexpectedEOF {
		return -1, -1
	}

	start, hasStart := scanLoopKey(buf, []byte("LOOPSTART="))
	if !hasStart {
		return -1, -1
	}
	length, hasLength := scanLoopKey(buf, []byte("LOOPLENGTH="))
	if !hasLength {
		length = 0
	}
	return start, length
}

// scanLoopKey finds key in buf and parses the decimal digits that follow
// it. An empty value (delimiter immediately after '=') parses as zero;
// anything else non-digit discards the pair.
func scanLoopKey(buf, key []byte) (int64, bool) {
	idx := bytes.Index(buf, key)
	if idx < 0 {
		return 0, false
	}
	p := idx + len(key)
	end := p
	for end < len(buf) && buf[end] >= '0' && buf[end] <= '9' {
		end++
	}
	if end == p {
		// An empty value (the comment ends right after '=') is zero; a
		// non-digit value discards the pair.
		if p < len(buf) && isVorbisValueChar(buf[p]) {
			return 0, false
		}
		return 0, true
	}
	v, err := strconv.ParseInt(string(buf[p:end]), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// isVorbisValueChar reports whether b could be part of a comment value
// (printable, non-control); control bytes after '=' mean the value was
// empty rather than malformed.
func isVorbisValueChar(b byte) bool {
	return b >= 0x20 && b < 0x7F
}

func (b *vorbisBackend) GetPCM(buf []int16, loopOffset *int64) (int, error) {
	frames := len(buf) / b.channels
	produced := 0

	for produced < frames {
		if b.curLoopEnabled && b.curLoopLength > 0 && b.samplePos >= b.curLoopStart+b.curLoopLength {
			if err := b.reader.SetPosition(b.curLoopStart); err != nil {
				return produced, err
			}
			b.samplePos = b.curLoopStart
			*loopOffset += b.curLoopLength
		}

		n, err := b.reader.Read(b.frameBuf)
		if n == 0 {
			if err != nil && err != io.EOF {
				return produced, err
			}
			if rewound, rerr := b.rewindTailLoop(loopOffset); rerr != nil {
				return produced, rerr
			} else if rewound {
				continue
			}
			break
		}
		for ch := 0; ch < b.channels; ch++ {
			s := b.frameBuf[ch]
			if s > 1 {
				s = 1
			} else if s < -1 {
				s = -1
			}
			buf[produced*b.channels+ch] = int16(s * 32767)
		}
		b.samplePos++
		produced++
	}
	return produced, nil
}

// rewindTailLoop handles a zero-length loop region at end of stream: the
// loop boundary is the stream's end, so the whole tail rewinds to the
// loop start.
func (b *vorbisBackend) rewindTailLoop(loopOffset *int64) (bool, error) {
	if !b.curLoopEnabled || b.curLoopLength != 0 {
		return false, nil
	}
	rewound := b.samplePos - b.curLoopStart
	if rewound <= 0 {
		return false, nil
	}
	if err := b.reader.SetPosition(b.curLoopStart); err != nil {
		return false, err
	}
	b.samplePos = b.curLoopStart
	*loopOffset += rewound
	return true, nil
}

func (b *vorbisBackend) Close() error      { return nil }
func (b *vorbisBackend) Stereo() bool      { return b.channels == 2 }
func (b *vorbisBackend) NativeFreq() int   { return b.sampleRate }
func (b *vorbisBackend) Bitrate() int      { return b.sampleRate * b.channels * 16 }
func (b *vorbisBackend) LoopStart() int64  { return b.loopStart }
func (b *vorbisBackend) LoopLength() int64 { return b.loopLength }

func (b *vorbisBackend) SetLoop(start, length int64, enabled bool) {
	b.curLoopStart, b.curLoopLength, b.curLoopEnabled = start, length, enabled
}
