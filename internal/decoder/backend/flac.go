package backend

import (
	"github.com/mewkiz/flac"

	"github.com/loopwave/mixcore/internal/decoder"
)

func init() {
	decoder.Register(decoder.FormatFLAC, openFLAC)
}

// flacBackend has no format-native loop detection (FLAC streams carry no
// loop tags this engine reads); it still honors a caller-supplied loop
// region via
// SetLoop/Instance.SetLoopPoints, since that override is not tied to any
// particular format.
type flacBackend struct {
	stream   *flac.Stream
	channels int
	bps      int
	rate     int

	samplePos int64
	frame     *flac.Frame
	frameIdx  int // next unread sample index within frame

	curLoopStart   int64
	curLoopLength  int64
	curLoopEnabled bool
}

func openFLAC(src decoder.Source, _ string) (decoder.Backend, error) {
	stream, err := flac.NewSeek(src)
	if err != nil {
		return nil, err
	}
	info := stream.Info
	return &flacBackend{
		stream:   stream,
		channels: int(info.NChannels),
		bps:      int(info.BitsPerSample),
		rate:     int(info.SampleRate),
	}, nil
}

func (b *flacBackend) nextFrameSample() (l, r int16, ok bool, err error) {
	for b.frame == nil || b.frameIdx >= int(b.frame.Subframes[0].NSamples) {
		b.frame, err = b.stream.ParseNext()
		if err != nil {
			return 0, 0, false, nil
		}
		b.frameIdx = 0
	}

	i := b.frameIdx
	shift := func(s int32) int16 {
		v := int(s)
		switch {
		case b.bps > 16:
			v >>= (b.bps - 16)
		case b.bps < 16:
			v <<= (16 - b.bps)
		}
		return clampSample(v)
	}
	l = shift(b.frame.Subframes[0].Samples[i])
	if b.channels > 1 {
		r = shift(b.frame.Subframes[1].Samples[i])
	} else {
		r = l
	}
	b.frameIdx++
	return l, r, true, nil
}

func (b *flacBackend) GetPCM(buf []int16, loopOffset *int64) (int, error) {
	produced := 0
	frames := len(buf) / b.channels

	for produced < frames {
		if b.curLoopEnabled && b.curLoopLength > 0 && b.samplePos >= b.curLoopStart+b.curLoopLength {
			if _, err := b.stream.Seek(uint64(b.curLoopStart)); err != nil {
				return produced, err
			}
			b.frame = nil
			b.samplePos = b.curLoopStart
			*loopOffset += b.curLoopLength
		}

		l, r, ok, err := b.nextFrameSample()
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
		if b.channels > 1 {
			buf[produced*2] = l
			buf[produced*2+1] = r
		} else {
			buf[produced] = l
		}
		b.samplePos++
		produced++
	}
	return produced, nil
}

// rewindTailLoop handles a zero-length loop region: the loop boundary is
// the end of the stream, so the whole tail rewinds to the loop start.
func (b *flacBackend) rewindTailLoop(loopOffset *int64) (bool, error) {
	if !b.curLoopEnabled || b.curLoopLength != 0 {
		return false, nil
	}
	rewound := b.samplePos - b.curLoopStart
	if rewound <= 0 {
		return false, nil
	}
	if _, err := b.stream.Seek(uint64(b.curLoopStart)); err != nil {
		return false, err
	}
	b.frame = nil
	b.samplePos = b.curLoopStart
	*loopOffset += rewound
	return true, nil
}

func (b *flacBackend) Close() error      { return nil }
func (b *flacBackend) Stereo() bool      { return b.channels > 1 }
func (b *flacBackend) NativeFreq() int   { return b.rate }
func (b *flacBackend) Bitrate() int      { return b.rate * b.channels * b.bps }
func (b *flacBackend) LoopStart() int64  { return -1 }
func (b *flacBackend) LoopLength() int64 { return -1 }

func (b *flacBackend) SetLoop(start, length int64, enabled bool) {
	b.curLoopStart, b.curLoopLength, b.curLoopEnabled = start, length, enabled
}
