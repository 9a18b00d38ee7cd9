package sink

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"strings"

	"github.com/ebitengine/oto/v3"

	"github.com/loopwave/mixcore/internal/mixchan"
)

// mixerReader adapts mixchan.Mixer.GetPCM to the io.Reader oto pulls from
// on its own audio callback goroutine — the same pull-the-reader-on-demand
// shape an oto player expects.
type mixerReader struct {
	mixer *mixchan.Mixer
	tap   func([]int16) // optional observer of the mixed output
	frame []int16       // reused across Read calls to avoid per-callback allocation
}

func (r *mixerReader) Read(p []byte) (int, error) {
	frames := len(p) / 4 // stereo S16LE: 4 bytes/frame
	if frames == 0 {
		return 0, nil
	}
	if cap(r.frame) < frames*2 {
		r.frame = make([]int16, frames*2)
	}
	buf := r.frame[:frames*2]

	n := r.mixer.GetPCM(buf, frames)
	if r.tap != nil && n > 0 {
		r.tap(buf[:n*2])
	}
	for i := 0; i < n*2; i++ {
		binary.LittleEndian.PutUint16(p[i*2:], uint16(buf[i]))
	}
	return n * 4, nil
}

// OtoSink implements Sink over github.com/ebitengine/oto/v3, the
// engine's device output library.
type OtoSink struct {
	ctx    *oto.Context
	player *oto.Player
	rate   int

	disconnectCheckEnabled bool
}

// NewOtoSink opens the default output device at sampleRate (stereo,
// 16-bit) and starts pulling PCM from mixer immediately. tap, when
// non-nil, observes every mixed buffer from the audio callback
// goroutine; it must not block.
func NewOtoSink(mixer *mixchan.Mixer, sampleRate int, tap func([]int16)) (*OtoSink, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, friendlyAudioInitError(err)
	}
	<-ready
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, friendlyAudioInitError(ctxErr)
	}

	player := ctx.NewPlayer(&mixerReader{mixer: mixer, tap: tap})
	player.Play()

	return &OtoSink{ctx: ctx, player: player, rate: sampleRate}, nil
}

func (s *OtoSink) PlaybackRate() int { return s.rate }

// SetLatency is advisory: oto exposes no runtime-settable buffer size on
// an existing context, so this reports the buffer currently queued
// rather than actually changing it.
func (s *OtoSink) SetLatency(seconds float64) float64 {
	return float64(s.player.BufferedSize()) / float64(s.rate*4)
}

// EnableHeadphoneDisconnectCheck is a no-op: oto has no portable signal
// for device removal, so a real implementation would need a
// platform-specific sink behind the same interface.
func (s *OtoSink) EnableHeadphoneDisconnectCheck(enabled bool) {
	s.disconnectCheckEnabled = enabled
}

func (s *OtoSink) CheckHeadphoneDisconnect() bool { return false }

func (s *OtoSink) AckHeadphoneDisconnect() {}

func (s *OtoSink) Close() error {
	s.player.Pause()
	return s.player.Close()
}

func friendlyAudioInitError(err error) error {
	if err == nil {
		return nil
	}
	if runtime.GOOS != "linux" {
		return err
	}

	msg := strings.ToLower(err.Error())
	isNoDevice := strings.Contains(msg, "alsa error at snd_pcm_open") ||
		strings.Contains(msg, "unknown pcm default") ||
		strings.Contains(msg, "cannot find card '0'")
	if !isNoDevice {
		return err
	}

	return fmt.Errorf("no Linux audio output device found (ALSA default device unavailable). This is common on headless VMs/containers; configure ALSA/PipeWire/PulseAudio or use a machine with audio")
}
