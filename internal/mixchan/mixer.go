package mixchan

import (
	"errors"
	"sync"

	"github.com/loopwave/mixcore/internal/decoder"
)

var (
	// ErrNoChannelAvailable is returned by Acquire when every channel is
	// reserved or in use.
	ErrNoChannelAvailable = errors.New("mixchan: no channel available")
	// ErrInvalidChannel is returned for an out-of-range channel index.
	ErrInvalidChannel = errors.New("mixchan: invalid channel index")
	// ErrChannelNotReserved is returned when play() names a channel that
	// was never reserved.
	ErrChannelNotReserved = errors.New("mixchan: channel not reserved")
)

// Mixer is the per-sample accumulator and channel controller. It owns a
// fixed set of Channel slots numbered 1..N.
type Mixer struct {
	allocMu sync.Mutex
	mixMu   sync.Mutex

	channels []*Channel

	baseVolume int32 // Q0.24, clamped [0, MaxBaseVolume<<VolumeBits]

	globalPauseMu sync.Mutex
	globalPause   bool // main-only

	accum []int64 // MixAccumBuflen*2 scratch, reused across calls
}

// NewMixer allocates a Mixer with numChannels voice slots.
func NewMixer(numChannels int) *Mixer {
	m := &Mixer{
		channels:   make([]*Channel, numChannels),
		baseVolume: volumeUnit(),
		accum:      make([]int64, MixAccumBuflen*2),
	}
	for i := range m.channels {
		m.channels[i] = &Channel{Index: i + 1}
	}
	return m
}

// NumChannels returns the number of voice slots.
func (m *Mixer) NumChannels() int { return len(m.channels) }

// Channel returns the 1-based channel by index, or nil if out of range.
func (m *Mixer) Channel(idx int) *Channel {
	if idx < 1 || idx > len(m.channels) {
		return nil
	}
	return m.channels[idx-1]
}

// SetBaseVolume sets the mixer-wide base volume multiplier, clamped to
// [0, MaxBaseVolume].
func (m *Mixer) SetBaseVolume(v float64) {
	q := floatToVolumeQ(v, MaxBaseVolume)
	m.mixMu.Lock()
	m.baseVolume = q
	m.mixMu.Unlock()
}

// ReserveChannel scans 1..N under the allocate-lock for the first
// channel that is neither reserved nor in use.
func (m *Mixer) ReserveChannel() int {
	m.allocMu.Lock()
	defer m.allocMu.Unlock()
	for _, ch := range m.channels {
		if !ch.reserved && !ch.inUse {
			ch.reserved = true
			return ch.Index
		}
	}
	return 0
}

// UnreserveChannel releases a reservation made by ReserveChannel.
func (m *Mixer) UnreserveChannel(idx int) {
	m.allocMu.Lock()
	defer m.allocMu.Unlock()
	ch := m.channelLocked(idx)
	if ch != nil {
		ch.reserved = false
	}
}

func (m *Mixer) channelLocked(idx int) *Channel {
	if idx < 1 || idx > len(m.channels) {
		return nil
	}
	return m.channels[idx-1]
}

// Acquire implements play()'s channel-allocation rule:
// requested == 0 dynamically allocates the first free channel;
// requested > 0 requires that channel to be reserved, resetting it
// first if it is already in use.
func (m *Mixer) Acquire(requested int) (*Channel, error) {
	m.allocMu.Lock()
	var ch *Channel
	if requested == 0 {
		for _, c := range m.channels {
			if !c.reserved && !c.inUse {
				ch = c
				break
			}
		}
		if ch == nil {
			m.allocMu.Unlock()
			return nil, ErrNoChannelAvailable
		}
	} else {
		ch = m.channelLocked(requested)
		if ch == nil {
			m.allocMu.Unlock()
			return nil, ErrInvalidChannel
		}
		if !ch.reserved {
			m.allocMu.Unlock()
			return nil, ErrChannelNotReserved
		}
	}
	wasInUse := ch.inUse
	m.allocMu.Unlock()

	if wasInUse {
		m.Reset(ch)
	}

	m.allocMu.Lock()
	ch.inUse = true
	m.allocMu.Unlock()
	return ch, nil
}

// Reset is the single point of channel teardown, invoked by cut,
// zero-length fade, the update reaper, play() reusing an in-use reserved
// channel, and cleanup.
func (m *Mixer) Reset(ch *Channel) {
	m.mixMu.Lock()
	ch.mixer.Playing = false
	ch.mixer.decode = nil
	ch.mixer.scratch = nil
	ch.mixer.FadeRate = 0
	ch.mixer.FadeCutOnSilent = false
	m.mixMu.Unlock()

	// Playback is now guaranteed stopped, so detaching the filter needs
	// no further coordination beyond the guard it already carries.
	ch.filterSlot.Detach()

	ch.chMu.Lock()
	dec := ch.decoder
	ch.decoder = nil
	owner := ch.sound
	ch.sound = nil
	ch.paused = false
	ch.channelPause = false
	ch.chMu.Unlock()

	if dec != nil {
		dec.Close()
	}
	if owner != nil {
		owner.Release()
	}

	m.allocMu.Lock()
	ch.inUse = false
	m.allocMu.Unlock()
}

// Configure installs dec as ch's PCM source and starts playback under
// the mixer lock. volume is linear gain, pan is -1 (left) to 1 (right).
func (m *Mixer) Configure(ch *Channel, dec *decoder.Instance, owner SoundOwner, volume, pan float64) {
	ch.chMu.Lock()
	ch.decoder = dec
	ch.sound = owner
	ch.paused = false
	ch.channelPause = false
	ch.chMu.Unlock()

	stereo := dec.Stereo()
	decode := func(buf []int16) (int, error) {
		stride := 1
		if stereo {
			stride = 2
		}
		n, err := dec.GetPCM(buf, len(buf)/stride)
		if n > 0 {
			ch.filterSlot.Run(buf[:n*stride])
		}
		return n, err
	}
	left, right := panMultipliers(pan)

	m.mixMu.Lock()
	ch.mixer.Stereo = stereo
	ch.mixer.Volume = floatToVolumeQ(volume, MaxChannelVolume)
	ch.mixer.LeftMult = left
	ch.mixer.RightMult = right
	ch.mixer.PanPos = panLinear(pan)
	ch.mixer.FadeRate = 0
	ch.mixer.FadeTarget = 0
	ch.mixer.FadeCutOnSilent = false
	ch.mixer.decode = decode
	ch.mixer.Playing = true
	m.mixMu.Unlock()
}

// Pause silences one channel until Resume.
func (m *Mixer) Pause(ch *Channel) {
	m.mixMu.Lock()
	ch.mixer.Playing = false
	m.mixMu.Unlock()

	ch.chMu.Lock()
	ch.channelPause = true
	ch.paused = true
	ch.chMu.Unlock()
}

// Resume restarts a channel paused by Pause, unless a global pause is
// still in effect (then only the intent is recorded).
func (m *Mixer) Resume(ch *Channel) {
	ch.chMu.Lock()
	ch.channelPause = false
	wasPaused := ch.paused
	m.globalPauseMu.Lock()
	gp := m.globalPause
	m.globalPauseMu.Unlock()
	start := wasPaused && !gp
	if start {
		ch.paused = false
	}
	ch.chMu.Unlock()

	if start {
		m.mixMu.Lock()
		ch.mixer.Playing = true
		m.mixMu.Unlock()
	}
}

func (m *Mixer) inUseSnapshot() []*Channel {
	m.allocMu.Lock()
	defer m.allocMu.Unlock()
	out := make([]*Channel, 0, len(m.channels))
	for _, ch := range m.channels {
		if ch.inUse {
			out = append(out, ch)
		}
	}
	return out
}

// PauseAll silences every in-use channel; idempotent.
func (m *Mixer) PauseAll() {
	m.globalPauseMu.Lock()
	m.globalPause = true
	m.globalPauseMu.Unlock()

	snapshot := m.inUseSnapshot()

	m.mixMu.Lock()
	for _, ch := range snapshot {
		ch.mixer.Playing = false
	}
	m.mixMu.Unlock()

	for _, ch := range snapshot {
		ch.chMu.Lock()
		ch.paused = true
		ch.chMu.Unlock()
	}
}

// ResumeAll restarts every channel silenced by PauseAll, except those
// also paused individually; idempotent. channelPause is read outside the
// mixer lock; the worst case is a channel starting one sample early or
// late, which is accepted.
func (m *Mixer) ResumeAll() {
	m.globalPauseMu.Lock()
	m.globalPause = false
	m.globalPauseMu.Unlock()

	snapshot := m.inUseSnapshot()

	for _, ch := range snapshot {
		ch.chMu.Lock()
		start := ch.paused && !ch.channelPause
		if start {
			ch.paused = false
		}
		ch.chMu.Unlock()

		if start {
			m.mixMu.Lock()
			ch.mixer.Playing = true
			m.mixMu.Unlock()
		}
	}
}

// Update is the end-of-stream reaper: runs on the main thread, resetting
// any in-use, non-paused channel the mixer reports as no longer playing.
func (m *Mixer) Update() {
	for _, ch := range m.inUseSnapshot() {
		if ch.Paused() {
			continue
		}
		m.mixMu.Lock()
		playing := ch.mixer.Playing
		m.mixMu.Unlock()
		if !playing {
			m.Reset(ch)
		}
	}
}

// SetPan updates a channel's pan multipliers.
func (m *Mixer) SetPan(ch *Channel, pan float64) {
	left, right := panMultipliers(pan)
	m.mixMu.Lock()
	ch.mixer.LeftMult = left
	ch.mixer.RightMult = right
	ch.mixer.PanPos = panLinear(pan)
	m.mixMu.Unlock()
}

// Playing reports whether the mixer is currently pulling samples from ch.
func (m *Mixer) Playing(ch *Channel) bool {
	m.mixMu.Lock()
	defer m.mixMu.Unlock()
	return ch.mixer.Playing
}

// AdjustVolume ramps a channel's volume: an immediate change when
// seconds == 0, otherwise a fade that does not stop playback when it
// reaches zero.
func (m *Mixer) AdjustVolume(ch *Channel, volume float64, seconds float64, sampleRate int) {
	m.startFade(ch, floatToVolumeQ(volume, MaxChannelVolume), seconds, sampleRate, false)
}

// Fade is a volume ramp that, when its target is silence, also stops
// playback on arrival.
func (m *Mixer) Fade(ch *Channel, volume float64, seconds float64, sampleRate int) {
	m.startFade(ch, floatToVolumeQ(volume, MaxChannelVolume), seconds, sampleRate, volume == 0)
}

func (m *Mixer) startFade(ch *Channel, targetQ int32, seconds float64, sampleRate int, cutAtZero bool) {
	m.mixMu.Lock()
	defer m.mixMu.Unlock()
	if seconds <= 0 {
		ch.mixer.Volume = targetQ
		ch.mixer.FadeRate = 0
		ch.mixer.FadeCutOnSilent = cutAtZero && targetQ == 0
		return
	}
	samples := int64(seconds * float64(sampleRate))
	if samples < 1 {
		samples = 1
	}
	delta := int64(targetQ) - int64(ch.mixer.Volume)
	rate := delta / samples
	if rate == 0 {
		if delta > 0 {
			rate = 1
		} else if delta < 0 {
			rate = -1
		}
	}
	ch.mixer.FadeRate = int32(rate)
	ch.mixer.FadeTarget = targetQ
	ch.mixer.FadeCutOnSilent = cutAtZero
}

// GetPCM pulls and mixes up to frames stereo frames into out (interleaved
// S16LE, len(out) >= frames*2), chunked at MixAccumBuflen.
func (m *Mixer) GetPCM(out []int16, frames int) int {
	produced := 0
	for produced < frames {
		chunk := frames - produced
		if chunk > MixAccumBuflen {
			chunk = MixAccumBuflen
		}
		m.mixChunk(out[produced*2:produced*2+chunk*2], chunk)
		produced += chunk
	}
	return produced
}

type channelSnapshot struct {
	buf       []int16
	stereo    bool
	volume    int32
	leftMult  int32
	rightMult int32
	panPos    int32
}

func (m *Mixer) mixChunk(dst []int16, frames int) {
	var snaps []channelSnapshot

	m.mixMu.Lock()
	base := m.baseVolume
	for _, ch := range m.channels {
		if !ch.mixer.Playing {
			continue
		}
		if ch.mixer.FadeRate != 0 {
			ch.mixer.Volume, ch.mixer.FadeRate = advanceFade(ch.mixer.Volume, ch.mixer.FadeRate, ch.mixer.FadeTarget, frames)
		}
		if ch.mixer.Volume == 0 && ch.mixer.FadeCutOnSilent {
			ch.mixer.Playing = false
			continue
		}

		stride := 1
		if ch.mixer.Stereo {
			stride = 2
		}
		need := frames * stride
		if cap(ch.mixer.scratch) < need {
			ch.mixer.scratch = make([]int16, need)
		}
		buf := ch.mixer.scratch[:need]
		n, err := ch.mixer.decode(buf)
		if err != nil || n == 0 {
			ch.mixer.Playing = false
			continue
		}
		if n < frames {
			for i := n * stride; i < need; i++ {
				buf[i] = 0
			}
		}

		snaps = append(snaps, channelSnapshot{
			buf:       buf,
			stereo:    ch.mixer.Stereo,
			volume:    effectiveVolume(base, ch.mixer.Volume),
			leftMult:  ch.mixer.LeftMult,
			rightMult: ch.mixer.RightMult,
			panPos:    ch.mixer.PanPos,
		})
	}
	m.mixMu.Unlock()

	acc := m.accum[: frames*2 : frames*2]
	for i := range acc {
		acc[i] = 0
	}

	for _, s := range snaps {
		if s.stereo {
			mixStereo(acc, s.buf, s.leftMult, s.rightMult, s.volume, frames)
		} else {
			mixMono(acc, s.buf, s.panPos, s.volume, frames)
		}
	}

	for i := 0; i < frames*2; i++ {
		dst[i] = clampSample(acc[i])
	}
}

func mixStereo(acc []int64, pcm []int16, leftMult, rightMult, volume int32, frames int) {
	const shift = VolumeBits + PanBits
	round := int64(1) << (shift - 1)
	for i := 0; i < frames; i++ {
		acc[i*2] += (int64(pcm[i*2])*int64(leftMult)*int64(volume) + round) >> shift
		acc[i*2+1] += (int64(pcm[i*2+1])*int64(rightMult)*int64(volume) + round) >> shift
	}
}

// mixMono splits a mono source by the linear pan position rather than the
// stereo multiplier pair: left gets (256 - pos), right gets pos, and the
// one-bit-smaller shift makes the centre position (128) unity gain.
func mixMono(acc []int64, pcm []int16, panPos, volume int32, frames int) {
	const shift = VolumeBits + PanBits - 1
	round := int64(1) << (shift - 1)
	leftMult := int64(panMultCenter - panPos)
	rightMult := int64(panPos)
	for i := 0; i < frames; i++ {
		s := int64(pcm[i])
		acc[i*2] += (s*leftMult*int64(volume) + round) >> shift
		acc[i*2+1] += (s*rightMult*int64(volume) + round) >> shift
	}
}
