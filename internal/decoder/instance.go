package decoder

import (
	"errors"
	"io"
	"sync"
)

// ErrClosed is returned by any Instance operation performed after Close.
var ErrClosed = errors.New("decoder: instance closed")

// Instance is a single open decode session
// producing interleaved S16LE PCM at a caller-chosen output rate, with
// independently programmable loop points and decode rate.
type Instance struct {
	mu sync.Mutex

	backend Backend
	closed  bool

	nativeFreq int
	channels   int // 1 or 2
	bitrate    int

	loopStart   int64
	loopLength  int64
	loopEnabled bool

	decodeFreq    int
	outputFreq    int
	decodeFreqSet bool
	doInterpolate bool

	resampleBuf      []int16
	resampleBufValid int
	resamplePos      int64
	posFrac          int64
	resampleEOF      bool
	hardStop         bool
	resampleLoopOfs  int64
	lastL, lastR     int16

	samplesGotten int64
}

// SetOutputFreq programs the fixed device output rate.
func (in *Instance) SetOutputFreq(freq int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.outputFreq = freq
}

// SetDecodeFreq programs the rate at which the decoded stream is consumed;
// once called, resampling stays enabled even if the rate later matches the
// output rate again. A freq of zero holds the current sample
// (the decode cursor stops advancing).
func (in *Instance) SetDecodeFreq(freq int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.decodeFreq = freq
	in.decodeFreqSet = true
}

// SetLoopPoints overrides the back-end-detected loop region.
func (in *Instance) SetLoopPoints(start, length int64) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.loopStart = start
	in.loopLength = length
	in.pushLoop()
}

func (in *Instance) EnableLoop(enabled bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.loopEnabled = enabled
	in.pushLoop()
}

// pushLoop hands the effective loop region to the back-end. Looping with
// no region at all means the whole stream: start 0 with a zero length,
// which back-ends treat as "loop boundary at end of stream".
func (in *Instance) pushLoop() {
	start, length := in.loopStart, in.loopLength
	if start < 0 {
		start, length = 0, 0
	} else if length < 0 {
		length = 0
	}
	in.backend.SetLoop(start, length, in.loopEnabled)
}

func (in *Instance) SetInterpolate(enabled bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.doInterpolate = enabled
}

func (in *Instance) LoopPoints() (start, length int64, enabled bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.loopStart, in.loopLength, in.loopEnabled
}

func (in *Instance) Stereo() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.channels == 2
}

func (in *Instance) NativeFreq() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.nativeFreq
}

// Position reports playback position in seconds, in the native-rate
// domain, so a programmed decode-rate change does not stretch the
// reported value.
func (in *Instance) Position() float64 {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.nativeFreq <= 0 {
		return 0
	}
	return float64(in.samplesGotten) / float64(in.nativeFreq)
}

func (in *Instance) needResample() bool {
	return in.decodeFreqSet || in.outputFreq != in.decodeFreq
}

// GetPCM fills buf with up to frames interleaved samples (channels per
// frame) and returns how many frames it actually produced. A short return
// signals end of stream, a mid-stream decode error, or both.
func (in *Instance) GetPCM(buf []int16, frames int) (int, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.closed {
		return 0, ErrClosed
	}
	if max := len(buf) / in.channels; frames > max {
		frames = max
	}
	if frames <= 0 {
		return 0, nil
	}

	if !in.needResample() {
		var loopOffset int64
		n, err := in.backend.GetPCM(buf[:frames*in.channels], &loopOffset)
		in.samplesGotten += int64(n) - loopOffset
		if err != nil && err != io.EOF {
			return n, err
		}
		return n, nil
	}

	produced := 0
	for produced < frames {
		l, r, ok := in.resampleStep()
		if !ok {
			break
		}
		idx := produced * in.channels
		buf[idx] = l
		if in.channels == 2 {
			buf[idx+1] = r
		}
		produced++
	}
	return produced, nil
}

func (in *Instance) Close() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.closed {
		return nil
	}
	in.closed = true
	return in.backend.Close()
}
