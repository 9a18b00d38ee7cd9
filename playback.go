package mixcore

import (
	"math"

	"github.com/loopwave/mixcore/internal/decoder"
	"github.com/loopwave/mixcore/internal/filterfx"
	"github.com/loopwave/mixcore/internal/mixchan"
)

// Filter transforms PCM in place on a single channel, between decode and
// mix. Implementations must tolerate Apply being called from the audio
// callback goroutine.
type Filter = filterfx.Filter

// Decoder is a raw decode session for PlayDecoder, for callers that need
// playback without a Sound record (one-shot streams, generated audio
// piped through a registered back-end).
type Decoder struct {
	inst *decoder.Instance
}

// OpenDecoder opens a standalone decode session over data. The returned
// Decoder is single-use: PlayDecoder transfers ownership to the channel,
// which closes it on teardown.
func (e *Engine) OpenDecoder(data []byte, format Format) (*Decoder, error) {
	if format == FormatAutodetect {
		detected, ok := CheckFormat(data)
		if !ok {
			return nil, ErrUnknownFormat
		}
		format = detected
	}
	inst, err := decoder.OpenMemory(data, decoder.Format(format), "")
	if err != nil {
		debugf("mixcore: OpenDecoder: %v", err)
		return nil, err
	}
	return &Decoder{inst: inst}, nil
}

// Close releases a Decoder that was never handed to PlayDecoder.
func (d *Decoder) Close() error {
	if d.inst == nil {
		return nil
	}
	inst := d.inst
	d.inst = nil
	return inst.Close()
}

// ReserveChannel takes the first free channel out of the dynamic pool and
// returns its index, or 0 when every channel is reserved or in use.
func (e *Engine) ReserveChannel() int {
	m := e.ready()
	if m == nil {
		return 0
	}
	idx := m.ReserveChannel()
	if idx == 0 {
		debugf("mixcore: ReserveChannel: no channel available")
	}
	return idx
}

// FreeChannel returns a reserved channel to the dynamic pool. A sound
// still playing on it keeps playing.
func (e *Engine) FreeChannel(ch int) {
	if m := e.ready(); m != nil {
		m.UnreserveChannel(ch)
	}
}

// Play starts s on a channel and returns the channel index, or 0 on
// failure. channel 0 allocates dynamically; a positive channel must have
// been reserved first (anything already playing on it is cut). volume is
// linear gain (>= 0), pan runs -1 (left) to 1 (right).
func (e *Engine) Play(s *Sound, channel int, volume, pan float64, loop bool) int {
	m := e.ready()
	if m == nil || s == nil {
		return 0
	}
	if volume < 0 || pan < -1 || pan > 1 || channel < 0 {
		debugf("mixcore: Play: invalid volume %v / pan %v / channel %d", volume, pan, channel)
		return 0
	}

	inst, err := s.pool.OpenInstance()
	if err != nil {
		debugf("mixcore: Play: decoder failed: %v", err)
		return 0
	}
	ch, err := m.Acquire(channel)
	if err != nil {
		inst.Close()
		debugf("mixcore: Play: %v", err)
		return 0
	}

	inst.SetOutputFreq(e.sampleRate())
	inst.SetInterpolate(e.interpolateEnabled())
	if loop {
		inst.EnableLoop(true)
	}

	s.pool.Acquire()
	m.Configure(ch, inst, s, volume, pan)
	return ch.Index
}

// PlayDecoder starts a raw decode session on a channel, with the same
// channel-selection rules as Play. The channel owns the decoder from this
// point; it is closed when playback ends or is cut.
func (e *Engine) PlayDecoder(d *Decoder, channel int, volume, pan float64) int {
	m := e.ready()
	if m == nil || d == nil || d.inst == nil {
		return 0
	}
	if volume < 0 || pan < -1 || pan > 1 || channel < 0 {
		debugf("mixcore: PlayDecoder: invalid volume %v / pan %v / channel %d", volume, pan, channel)
		return 0
	}

	ch, err := m.Acquire(channel)
	if err != nil {
		debugf("mixcore: PlayDecoder: %v", err)
		return 0
	}

	inst := d.inst
	d.inst = nil
	inst.SetOutputFreq(e.sampleRate())
	inst.SetInterpolate(e.interpolateEnabled())
	m.Configure(ch, inst, nil, volume, pan)
	return ch.Index
}

func (e *Engine) interpolateEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.interpolate
}

// channelInUse resolves ch to an in-use channel, logging and returning
// nil for the sentinel paths.
func (e *Engine) channelInUse(m *mixchan.Mixer, ch int) *mixchan.Channel {
	c := m.Channel(ch)
	if c == nil || !c.InUse() {
		debugf("mixcore: channel %d not in use", ch)
		return nil
	}
	return c
}

// Pause stops pulling samples from ch until Resume. Independent of the
// global pause layer: a channel paused individually stays silent through
// a PauseAll/ResumeAll cycle.
func (e *Engine) Pause(ch int) {
	m := e.ready()
	if m == nil {
		return
	}
	if c := e.channelInUse(m, ch); c != nil {
		m.Pause(c)
	}
}

// Resume restarts a channel paused by Pause. During a global pause it
// only records intent; the channel starts on the next ResumeAll.
func (e *Engine) Resume(ch int) {
	m := e.ready()
	if m == nil {
		return
	}
	if c := e.channelInUse(m, ch); c != nil {
		m.Resume(c)
	}
}

// PauseAll silences every in-use channel. Idempotent; does not stack.
func (e *Engine) PauseAll() {
	if m := e.ready(); m != nil {
		m.PauseAll()
	}
}

// ResumeAll restarts every channel silenced by PauseAll, except those
// also paused individually.
func (e *Engine) ResumeAll() {
	if m := e.ready(); m != nil {
		m.ResumeAll()
	}
}

// Cut stops ch immediately and tears it down. Samples already committed
// to the device may still play out.
func (e *Engine) Cut(ch int) {
	m := e.ready()
	if m == nil {
		return
	}
	if c := e.channelInUse(m, ch); c != nil {
		m.Reset(c)
	}
}

// Fade ramps ch's volume to silence over seconds and cuts it on arrival.
// seconds == 0 cuts immediately.
func (e *Engine) Fade(ch int, seconds float64) {
	if seconds < 0 {
		debugf("mixcore: Fade: negative duration %v, ignored", seconds)
		return
	}
	if seconds == 0 {
		e.Cut(ch)
		return
	}
	m := e.ready()
	if m == nil {
		return
	}
	if c := e.channelInUse(m, ch); c != nil {
		m.Fade(c, 0, seconds, e.sampleRate())
	}
}

// AdjustVolume ramps ch's volume to volume over seconds (immediately when
// seconds == 0). Unlike Fade, reaching zero does not stop the channel,
// and calling it during an active fade overrides the fade.
func (e *Engine) AdjustVolume(ch int, volume, seconds float64) {
	if volume < 0 || seconds < 0 {
		debugf("mixcore: AdjustVolume: invalid volume %v / duration %v", volume, seconds)
		return
	}
	m := e.ready()
	if m == nil {
		return
	}
	if c := e.channelInUse(m, ch); c != nil {
		m.AdjustVolume(c, volume, seconds, e.sampleRate())
	}
}

// SetPan repositions ch in the stereo field, -1 (left) to 1 (right).
func (e *Engine) SetPan(ch int, pan float64) {
	if pan < -1 || pan > 1 {
		debugf("mixcore: SetPan: pan %v out of range, ignored", pan)
		return
	}
	m := e.ready()
	if m == nil {
		return
	}
	if c := e.channelInUse(m, ch); c != nil {
		m.SetPan(c, pan)
	}
}

// SetPlaybackRate scales ch's decode rate by factor relative to the
// stream's native rate. factor 0 holds the current sample; the reported
// playback position stays in the native-rate domain regardless.
func (e *Engine) SetPlaybackRate(ch int, factor float64) {
	if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		debugf("mixcore: SetPlaybackRate: invalid factor %v, ignored", factor)
		return
	}
	m := e.ready()
	if m == nil {
		return
	}
	c := e.channelInUse(m, ch)
	if c == nil {
		return
	}
	dec := c.Decoder()
	if dec == nil {
		return
	}
	dec.SetDecodeFreq(int(math.Round(factor * float64(dec.NativeFreq()))))
}

// EnableLoop turns looping on or off mid-playback, using the loop points
// active on the channel's decoder.
func (e *Engine) EnableLoop(ch int, on bool) {
	m := e.ready()
	if m == nil {
		return
	}
	c := e.channelInUse(m, ch)
	if c == nil {
		return
	}
	if dec := c.Decoder(); dec != nil {
		dec.EnableLoop(on)
	}
}

// SetFilter installs f as ch's active filter, closing whatever was
// attached before. When ch is invalid or idle, ownership of f still
// transfers to the engine and f is closed immediately.
func (e *Engine) SetFilter(ch int, f Filter) {
	m := e.ready()
	var c *mixchan.Channel
	if m != nil {
		c = m.Channel(ch)
	}
	if c == nil || !c.InUse() {
		debugf("mixcore: SetFilter: channel %d not in use", ch)
		if f != nil {
			f.Close()
		}
		return
	}
	if f == nil {
		c.ClearFilter()
		return
	}
	c.SetFilter(f)
}

// SetFlange attaches the built-in flange filter to ch (or detaches it
// when enable is false). period is the modulation period in seconds,
// depth the maximum delay in seconds.
func (e *Engine) SetFlange(ch int, enable bool, period, depth float64) {
	m := e.ready()
	if m == nil {
		return
	}
	c := e.channelInUse(m, ch)
	if c == nil {
		return
	}
	if !enable {
		c.ClearFilter()
		return
	}
	dec := c.Decoder()
	if dec == nil {
		return
	}
	f, err := filterfx.NewFlange(dec.Stereo(), e.sampleRate(), period, depth)
	if err != nil {
		debugf("mixcore: SetFlange: %v", err)
		return
	}
	c.SetFilter(f)
}

// IsPlaying reports whether ch currently holds a sound, paused or not.
// It goes false once the channel ends naturally and Update reaps it.
func (e *Engine) IsPlaying(ch int) bool {
	m := e.ready()
	if m == nil {
		return false
	}
	c := m.Channel(ch)
	return c != nil && c.InUse()
}

// PlaybackPos reports ch's playback position in seconds, in the stream's
// native-rate domain.
func (e *Engine) PlaybackPos(ch int) float64 {
	m := e.ready()
	if m == nil {
		return 0
	}
	c := m.Channel(ch)
	if c == nil || !c.InUse() {
		return 0
	}
	dec := c.Decoder()
	if dec == nil {
		return 0
	}
	return dec.Position()
}

// ActiveChannels returns the indices of every in-use channel, for
// status displays and tests. Read-only.
func (e *Engine) ActiveChannels() []int {
	m := e.ready()
	if m == nil {
		return nil
	}
	var out []int
	for i := 1; i <= m.NumChannels(); i++ {
		if m.Channel(i).InUse() {
			out = append(out, i)
		}
	}
	return out
}

// ChannelSound returns the Sound playing on ch, or nil when the channel
// is idle or was started from a raw decoder.
func (e *Engine) ChannelSound(ch int) *Sound {
	m := e.ready()
	if m == nil {
		return nil
	}
	c := m.Channel(ch)
	if c == nil || !c.InUse() {
		return nil
	}
	s, _ := c.Sound().(*Sound)
	return s
}
