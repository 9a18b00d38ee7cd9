package backend

import (
	"encoding/binary"
	"io"

	"github.com/loopwave/mixcore-aac/aacfile"

	"github.com/loopwave/mixcore/internal/decoder"
)

func init() {
	decoder.Register(decoder.FormatAAC, openAAC)
}

// aacReaderAt adapts a decoder.Source (io.ReadSeeker) to the io.ReaderAt
// aacfile.Open requires, since the window layer only ever exposes a
// seek-then-read view.
type aacReaderAt struct {
	src decoder.Source
}

func (a *aacReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if _, err := a.src.Seek(off, io.SeekStart); err != nil {
		return 0, err
	}
	return io.ReadFull(a.src, p)
}

type aacBackend struct {
	reader   *aacfile.Reader
	channels int
	rate     int

	pos    int64
	rawBuf []byte

	curLoopStart   int64
	curLoopLength  int64
	curLoopEnabled bool
}

func openAAC(src decoder.Source, name string) (decoder.Backend, error) {
	reader, err := aacfile.Open(&aacReaderAt{src: src}, src.Size(), name)
	if err != nil {
		return nil, err
	}
	info := reader.Info()
	return &aacBackend{reader: reader, channels: info.ChannelCount, rate: info.SampleRate}, nil
}

func (b *aacBackend) readRawFrame() ([]byte, bool, error) {
	frameSize := b.channels * 2
	for len(b.rawBuf) < frameSize {
		chunk := make([]byte, 4096)
		n, err := b.reader.Read(chunk)
		if n > 0 {
			b.rawBuf = append(b.rawBuf, chunk[:n]...)
			continue
		}
		if err != nil && err != io.EOF {
			return nil, false, err
		}
		return nil, false, nil
	}
	frame := b.rawBuf[:frameSize]
	b.rawBuf = b.rawBuf[frameSize:]
	return frame, true, nil
}

func (b *aacBackend) GetPCM(buf []int16, loopOffset *int64) (int, error) {
	frames := len(buf) / b.channels
	produced := 0

	for produced < frames {
		if b.curLoopEnabled && b.curLoopLength > 0 && b.pos >= b.curLoopStart+b.curLoopLength {
			target := b.curLoopStart * int64(b.channels) * 2
			if _, err := b.reader.Seek(target, io.SeekStart); err != nil {
				return produced, err
			}
			b.rawBuf = nil
			b.pos = b.curLoopStart
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
		for ch := 0; ch < b.channels; ch++ {
			buf[produced*b.channels+ch] = int16(binary.LittleEndian.Uint16(raw[ch*2:]))
		}
		b.pos++
		produced++
	}
	return produced, nil
}

// rewindTailLoop handles a zero-length loop region: the loop boundary is
// the end of the stream, so the whole tail rewinds to the loop start.
func (b *aacBackend) rewindTailLoop(loopOffset *int64) (bool, error) {
	if !b.curLoopEnabled || b.curLoopLength != 0 {
		return false, nil
	}
	rewound := b.pos - b.curLoopStart
	if rewound <= 0 {
		return false, nil
	}
	if _, err := b.reader.Seek(b.curLoopStart*int64(b.channels)*2, io.SeekStart); err != nil {
		return false, err
	}
	b.rawBuf = nil
	b.pos = b.curLoopStart
	*loopOffset += rewound
	return true, nil
}

func (b *aacBackend) Close() error      { return b.reader.Close() }
func (b *aacBackend) Stereo() bool      { return b.channels == 2 }
func (b *aacBackend) NativeFreq() int   { return b.rate }
func (b *aacBackend) Bitrate() int      { return b.rate * b.channels * 16 }
func (b *aacBackend) LoopStart() int64  { return -1 }
func (b *aacBackend) LoopLength() int64 { return -1 }

func (b *aacBackend) SetLoop(start, length int64, enabled bool) {
	b.curLoopStart, b.curLoopLength, b.curLoopEnabled = start, length, enabled
}
