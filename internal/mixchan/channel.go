package mixchan

import (
	"sync"

	"github.com/loopwave/mixcore/internal/decoder"
	"github.com/loopwave/mixcore/internal/filterfx"
)

// SoundOwner is implemented by whatever pooled Sound record a channel is
// bound to. Release is invoked exactly once, from channel reset, and
// mirrors the sound lifecycle's usage-counter decrement plus deferred
// free.
type SoundOwner interface {
	Release()
}

// MixerChannel is the mixer-side playback state, read and
// written by both threads under Mixer.mixMu.
type MixerChannel struct {
	Playing bool
	Stereo  bool

	Volume          int32 // Q0.24, this channel's own volume before base scaling
	LeftMult        int32 // Q8, from the current pan (stereo sources)
	RightMult       int32 // Q8, from the current pan (stereo sources)
	PanPos          int32 // 0..256 linear pan position (mono sources)
	FadeRate        int32 // Q0.24 per sample; 0 when no fade is active
	FadeTarget      int32 // Q0.24
	FadeCutOnSilent bool  // stop playback once Volume reaches 0 via fade

	decode  func(buf []int16) (int, error)
	scratch []int16
}

// Channel is one voice slot. Index is 1-based; callers use 0
// to mean "no channel" throughout the public API.
type Channel struct {
	Index int

	// Guarded by Mixer.allocMu, the allocate-lock.
	reserved bool
	inUse    bool

	// Guarded by chMu: main-thread-owned bookkeeping outside the mix path.
	chMu         sync.Mutex
	paused       bool
	channelPause bool
	decoder      *decoder.Instance
	sound        SoundOwner

	filterSlot filterfx.Slot

	// Guarded by Mixer.mixMu.
	mixer MixerChannel
}

// Paused reports the derived paused flag: true while either the
// per-channel or the global pause is in effect.
func (ch *Channel) Paused() bool {
	ch.chMu.Lock()
	defer ch.chMu.Unlock()
	return ch.paused
}

// InUse reports whether the channel currently owns a playing or
// paused-but-not-yet-reaped sound.
func (ch *Channel) InUse() bool {
	return ch.inUse
}

// Reserved reports whether the channel is held reserved for exclusive use.
func (ch *Channel) Reserved() bool {
	return ch.reserved
}

// Sound returns the owner the channel was started with, or nil when it
// was started from a raw decoder handle.
func (ch *Channel) Sound() SoundOwner {
	ch.chMu.Lock()
	defer ch.chMu.Unlock()
	return ch.sound
}

// Decoder returns the channel's current decoder instance, or nil.
func (ch *Channel) Decoder() *decoder.Instance {
	ch.chMu.Lock()
	defer ch.chMu.Unlock()
	return ch.decoder
}

// SetFilter installs f as the channel's active filter, closing whatever
// was attached before.
func (ch *Channel) SetFilter(f filterfx.Filter) {
	ch.filterSlot.Attach(f)
}

// ClearFilter detaches and closes the channel's active filter, if any.
func (ch *Channel) ClearFilter() {
	ch.filterSlot.Detach()
}
