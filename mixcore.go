// Package mixcore is a portable software audio playback engine: a fixed
// set of independently addressable channels, compressed-stream decoding to
// 16-bit PCM, per-channel volume/pan/fade/filter processing, and a single
// interleaved stereo output stream mixed at the device rate.
//
// The main thread owns every public entry point; the platform sink pulls
// mixed PCM from its own audio callback goroutine. Failure reporting is by
// sentinel: Play and ReserveChannel return 0, mutators silently ignore
// invalid parameters (visible through SetDebugLog in development builds).
package mixcore

import (
	"errors"
	"sync"

	"github.com/loopwave/mixcore/internal/decoder"

	// Register the format back-ends with the decoder's dispatch table;
	// without this import the registry is empty and nothing can play.
	_ "github.com/loopwave/mixcore/internal/decoder/backend"
	"github.com/loopwave/mixcore/internal/mixchan"
	"github.com/loopwave/mixcore/internal/sink"
)

// Format identifies a compressed audio format tag.
type Format int

const (
	FormatAutodetect Format = Format(decoder.FormatAutodetect)
	FormatWAV        Format = Format(decoder.FormatWAV)
	FormatMP3        Format = Format(decoder.FormatMP3)
	FormatVorbis     Format = Format(decoder.FormatVorbis)
	FormatFLAC       Format = Format(decoder.FormatFLAC)
	FormatAAC        Format = Format(decoder.FormatAAC)
)

func (f Format) String() string { return decoder.Format(f).String() }

// Defaults applied by OpenDevice when the corresponding option is zero.
const (
	DefaultChannels   = 16
	DefaultSampleRate = 48000
)

var (
	// ErrDeviceOpen is returned by OpenDevice when a device is already
	// open; the channel count is fixed for the lifetime of the device.
	ErrDeviceOpen = errors.New("mixcore: device already open")
)

// OpenOptions configures OpenDevice. The zero value opens the default
// output device with DefaultChannels voices at DefaultSampleRate.
type OpenOptions struct {
	// DeviceName selects an output device where the platform sink
	// supports naming one. The oto-backed sink always uses the system
	// default and ignores this field.
	DeviceName string

	NumChannels int
	SampleRate  int

	// LatencyHint requests an output latency in seconds; advisory.
	LatencyHint float64

	// Interpolate enables linear interpolation in the resampler for
	// sounds started after the device opens (see SetInterpolate).
	Interpolate bool

	// OutputTap, when non-nil, observes every mixed output buffer from
	// the audio callback goroutine. It must not block; the demo uses it
	// to feed a VU meter.
	OutputTap func([]int16)
}

// Engine is one playback engine instance. Methods on an unopened Engine
// return zero values rather than failing hard, so startup races
// against device initialisation degrade to silence instead of crashes.
type Engine struct {
	mu          sync.Mutex
	mixer       *mixchan.Mixer
	snk         sink.Sink
	rate        int
	interpolate bool
	latency     float64
	opened      bool
}

// New creates an Engine with no device open. Call OpenDevice before
// playing anything.
func New() *Engine { return &Engine{} }

// OpenDevice opens the platform audio device and allocates the channel
// set. The device's sampling rate and channel count are fixed until
// Cleanup.
func (e *Engine) OpenDevice(opts OpenOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.opened {
		return ErrDeviceOpen
	}

	numChannels := opts.NumChannels
	if numChannels <= 0 {
		numChannels = DefaultChannels
	}
	rate := opts.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}

	m := mixchan.NewMixer(numChannels)
	s, err := sink.NewOtoSink(m, rate, opts.OutputTap)
	if err != nil {
		return err
	}

	e.mixer = m
	e.snk = s
	e.rate = s.PlaybackRate()
	e.interpolate = opts.Interpolate
	e.opened = true
	if opts.LatencyHint > 0 {
		e.latency = s.SetLatency(opts.LatencyHint)
	}
	return nil
}

// Cleanup resets every in-use channel and closes the device. Calling it
// again (or before OpenDevice) is a no-op.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	if !e.opened {
		e.mu.Unlock()
		return
	}
	m, s := e.mixer, e.snk
	e.mixer, e.snk = nil, nil
	e.opened = false
	e.mu.Unlock()

	for i := 1; i <= m.NumChannels(); i++ {
		ch := m.Channel(i)
		if ch.InUse() {
			m.Reset(ch)
		}
	}
	if s != nil {
		s.Close()
	}
}

// ready returns the mixer when a device is open, or nil (the NotReady
// path: callers return their zero value).
func (e *Engine) ready() *mixchan.Mixer {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.opened {
		return nil
	}
	return e.mixer
}

func (e *Engine) sampleRate() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rate
}

// Update reaps channels that have naturally reached end of stream. Call
// it periodically from the main thread.
func (e *Engine) Update() {
	if m := e.ready(); m != nil {
		m.Update()
	}
}

// SetGlobalVolume sets the mixer-wide volume multiplier. Values outside
// [0, 15] are ignored.
func (e *Engine) SetGlobalVolume(v float64) {
	m := e.ready()
	if m == nil {
		return
	}
	if v < 0 || v > mixchan.MaxBaseVolume {
		debugf("mixcore: SetGlobalVolume(%v) out of range, ignored", v)
		return
	}
	m.SetBaseVolume(v)
}

// SetInterpolate turns resampler interpolation on or off, for currently
// playing channels and for sounds started afterwards.
func (e *Engine) SetInterpolate(on bool) {
	m := e.ready()
	if m == nil {
		return
	}
	e.mu.Lock()
	e.interpolate = on
	e.mu.Unlock()
	for i := 1; i <= m.NumChannels(); i++ {
		ch := m.Channel(i)
		if !ch.InUse() {
			continue
		}
		if dec := ch.Decoder(); dec != nil {
			dec.SetInterpolate(on)
		}
	}
}

// SetLatency requests an output latency in seconds and returns the value
// actually in effect; advisory.
func (e *Engine) SetLatency(seconds float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.opened || e.snk == nil || seconds < 0 {
		return e.latency
	}
	e.latency = e.snk.SetLatency(seconds)
	return e.latency
}

// GetLatency returns the most recently reported output latency in
// seconds.
func (e *Engine) GetLatency() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.latency
}

// CheckFormat sniffs data's first bytes against the known format magics.
// ok is false when no supported format matches.
func CheckFormat(data []byte) (f Format, ok bool) {
	df, err := decoder.DetectBytes(data)
	if err != nil {
		return FormatAutodetect, false
	}
	return Format(df), true
}
