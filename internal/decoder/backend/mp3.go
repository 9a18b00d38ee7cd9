package backend

import (
	"encoding/binary"
	"io"

	"github.com/hajimehoshi/go-mp3"

	"github.com/loopwave/mixcore/internal/decoder"
)

func init() {
	decoder.Register(decoder.FormatMP3, openMP3)
}

// mp3Backend wraps go-mp3, which always decodes to 16-bit stereo
// regardless of the source channel layout, trimming the Xing/LAME
// encoder delay and padding for gapless playback.
type mp3Backend struct {
	dec        *mp3.Decoder
	sampleRate int

	startFrame  int64
	totalFrames int64 // -1 when the stream length is unknown
	pos         int64 // frames consumed since startFrame

	rawBuf []byte

	curLoopStart   int64
	curLoopLength  int64
	curLoopEnabled bool
}

func openMP3(src decoder.Source, _ string) (decoder.Backend, error) {
	startSamples, endSamples := readMP3GaplessTrim(src)

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	dec, err := mp3.NewDecoder(src)
	if err != nil {
		return nil, err
	}

	length := dec.Length() / 4
	start, end := startSamples, endSamples
	if length >= 0 {
		if start > length {
			start = length
		}
		if end > length-start {
			end = length - start
		}
		length -= start + end
	}

	b := &mp3Backend{dec: dec, sampleRate: dec.SampleRate(), startFrame: start, totalFrames: length}
	if start > 0 {
		if _, err := dec.Seek(start*4, io.SeekStart); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *mp3Backend) readRawFrame() ([]byte, bool, error) {
	for len(b.rawBuf) < 4 {
		chunk := make([]byte, 4096)
		n, err := b.dec.Read(chunk)
		if n > 0 {
			b.rawBuf = append(b.rawBuf, chunk[:n]...)
			continue
		}
		if err != nil && err != io.EOF {
			return nil, false, err
		}
		return nil, false, nil
	}
	frame := b.rawBuf[:4]
	b.rawBuf = b.rawBuf[4:]
	return frame, true, nil
}

func (b *mp3Backend) GetPCM(buf []int16, loopOffset *int64) (int, error) {
	frames := len(buf) / 2
	produced := 0

	for produced < frames {
		if b.totalFrames >= 0 && b.pos >= b.totalFrames {
			if rewound, rerr := b.rewindTailLoop(loopOffset); rerr != nil {
				return produced, rerr
			} else if !rewound {
				break
			}
		}
		if b.curLoopEnabled && b.curLoopLength > 0 && b.pos >= b.curLoopStart+b.curLoopLength {
			if err := b.seekToFrame(b.curLoopStart); err != nil {
				return produced, err
			}
			*loopOffset += b.curLoopLength
		}

		raw, ok, err := b.readRawFrame()
		if err != nil {
			return produced, err
		}
		if !ok {
			if rewound, rerr := b.rewindTailLoop(loopOffset); rerr != nil {
				return produced, rerr
			} else if rewound {
				continue
			}
			break
		}
		buf[produced*2] = int16(binary.LittleEndian.Uint16(raw[0:2]))
		buf[produced*2+1] = int16(binary.LittleEndian.Uint16(raw[2:4]))
		b.pos++
		produced++
	}
	return produced, nil
}

func (b *mp3Backend) seekToFrame(n int64) error {
	if _, err := b.dec.Seek((b.startFrame+n)*4, io.SeekStart); err != nil {
		return err
	}
	b.rawBuf = nil
	b.pos = n
	return nil
}

// rewindTailLoop handles a zero-length loop region: the loop boundary is
// the end of the stream, so the whole tail rewinds to the loop start.
func (b *mp3Backend) rewindTailLoop(loopOffset *int64) (bool, error) {
	if !b.curLoopEnabled || b.curLoopLength != 0 {
		return false, nil
	}
	rewound := b.pos - b.curLoopStart
	if rewound <= 0 {
		return false, nil
	}
	if err := b.seekToFrame(b.curLoopStart); err != nil {
		return false, err
	}
	*loopOffset += rewound
	return true, nil
}

func (b *mp3Backend) Close() error      { return nil }
func (b *mp3Backend) Stereo() bool      { return true }
func (b *mp3Backend) NativeFreq() int   { return b.sampleRate }
func (b *mp3Backend) Bitrate() int      { return b.sampleRate * 2 * 16 }
func (b *mp3Backend) LoopStart() int64  { return -1 }
func (b *mp3Backend) LoopLength() int64 { return -1 }

func (b *mp3Backend) SetLoop(start, length int64, enabled bool) {
	b.curLoopStart, b.curLoopLength, b.curLoopEnabled = start, length, enabled
}
