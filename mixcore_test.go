package mixcore

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/loopwave/mixcore/internal/mixchan"
)

// stubSink stands in for the platform device so tests can drive the
// mixer directly at a chosen rate.
type stubSink struct {
	rate    int
	latency float64
	closed  bool
}

func (s *stubSink) PlaybackRate() int                   { return s.rate }
func (s *stubSink) SetLatency(seconds float64) float64  { s.latency = seconds; return seconds }
func (s *stubSink) EnableHeadphoneDisconnectCheck(bool) {}
func (s *stubSink) CheckHeadphoneDisconnect() bool      { return false }
func (s *stubSink) AckHeadphoneDisconnect()             {}
func (s *stubSink) Close() error                        { s.closed = true; return nil }

func newTestEngine(rate, numChannels int) (*Engine, *stubSink) {
	snk := &stubSink{rate: rate}
	e := New()
	e.mixer = mixchan.NewMixer(numChannels)
	e.snk = snk
	e.rate = rate
	e.opened = true
	return e, snk
}

// pullFrames drives the mixer the way the platform sink would, returning
// n interleaved stereo frames.
func pullFrames(e *Engine, n int) []int16 {
	buf := make([]int16, n*2)
	e.mixer.GetPCM(buf, n)
	return buf
}

// pullFrame pulls a single stereo frame, advancing any active fade by
// exactly one sample.
func pullFrame(e *Engine) (l, r int16) {
	f := pullFrames(e, 1)
	return f[0], f[1]
}

func writeChunk(w *bytes.Buffer, id string, body []byte) {
	w.WriteString(id)
	binary.Write(w, binary.LittleEndian, uint32(len(body)))
	w.Write(body)
	if len(body)%2 == 1 {
		w.WriteByte(0)
	}
}

// buildWAV assembles a 16-bit PCM RIFF/WAVE stream. loop, when non-nil,
// adds a smpl chunk whose first record spans [loop[0], loop[1]]
// (inclusive end, per the chunk's own convention).
func buildWAV(freq, channels int, samples []int16, loop *[2]uint32) []byte {
	fmtBody := make([]byte, 16)
	binary.LittleEndian.PutUint16(fmtBody[0:2], 1) // PCM
	binary.LittleEndian.PutUint16(fmtBody[2:4], uint16(channels))
	binary.LittleEndian.PutUint32(fmtBody[4:8], uint32(freq))
	binary.LittleEndian.PutUint32(fmtBody[8:12], uint32(freq*channels*2))
	binary.LittleEndian.PutUint16(fmtBody[12:14], uint16(channels*2))
	binary.LittleEndian.PutUint16(fmtBody[14:16], 16)

	dataBody := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(dataBody[i*2:], uint16(s))
	}

	var chunks bytes.Buffer
	writeChunk(&chunks, "fmt ", fmtBody)
	if loop != nil {
		smpl := make([]byte, 36+24)
		binary.LittleEndian.PutUint32(smpl[28:32], 1) // one loop record
		rec := smpl[36:]
		binary.LittleEndian.PutUint32(rec[8:12], loop[0])
		binary.LittleEndian.PutUint32(rec[12:16], loop[1])
		writeChunk(&chunks, "smpl", smpl)
	}
	writeChunk(&chunks, "data", dataBody)

	var out bytes.Buffer
	out.WriteString("RIFF")
	binary.Write(&out, binary.LittleEndian, uint32(4+chunks.Len()))
	out.WriteString("WAVE")
	out.Write(chunks.Bytes())
	return out.Bytes()
}

// squareWave produces n samples of the period-4 square used throughout
// the playback tests: +10000, +10000, -10000, -10000, repeating.
func squareWave(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		if i%4 < 2 {
			out[i] = 10000
		} else {
			out[i] = -10000
		}
	}
	return out
}

func mustPlay(t *testing.T, e *Engine, s *Sound, channel int, volume, pan float64, loop bool) int {
	t.Helper()
	ch := e.Play(s, channel, volume, pan, loop)
	if ch == 0 {
		t.Fatal("Play returned 0")
	}
	return ch
}

func newSquareSound(t *testing.T, e *Engine, n int) *Sound {
	t.Helper()
	s, err := e.NewSound(buildWAV(4000, 1, squareWave(n), nil), FormatAutodetect)
	if err != nil {
		t.Fatalf("NewSound: %v", err)
	}
	return s
}

func TestCheckFormatMagics(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want Format
		ok   bool
	}{
		{"wav", buildWAV(8000, 1, []int16{0}, nil), FormatWAV, true},
		{"mp3 sync", []byte{0xFF, 0xFB, 0x90, 0x00}, FormatMP3, true},
		{"ogg", []byte("OggS\x00rest-of-page"), FormatVorbis, true},
		{"flac", []byte("fLaC\x00\x00\x00\x22"), FormatFLAC, true},
		{"m4a", []byte{0, 0, 0, 32, 'f', 't', 'y', 'p'}, FormatAAC, true},
		{"garbage", []byte("not audio at all"), FormatAutodetect, false},
		{"empty", nil, FormatAutodetect, false},
		{"too short for any magic", []byte{'R'}, FormatAutodetect, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := CheckFormat(c.data)
			if got != c.want || ok != c.ok {
				t.Fatalf("CheckFormat = (%v, %v), want (%v, %v)", got, ok, c.want, c.ok)
			}
		})
	}
}

func TestNewSoundRejectsUnknownFormat(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	if _, err := e.NewSound([]byte("garbage"), FormatAutodetect); err == nil {
		t.Fatal("expected error for unrecognized data")
	}
}

func TestNotReadyBeforeOpenDevice(t *testing.T) {
	e := New()
	if ch := e.ReserveChannel(); ch != 0 {
		t.Fatalf("ReserveChannel = %d before open, want 0", ch)
	}
	if e.IsPlaying(1) {
		t.Fatal("IsPlaying should be false before open")
	}
	if pos := e.PlaybackPos(1); pos != 0 {
		t.Fatalf("PlaybackPos = %v before open, want 0", pos)
	}
	// None of these may panic with no device.
	e.Update()
	e.PauseAll()
	e.ResumeAll()
	e.Cut(1)
	e.Cleanup()
}

func TestPlayValidatesParameters(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 8)

	var logged []string
	SetDebugLog(func(format string, args ...any) { logged = append(logged, format) })
	defer SetDebugLog(nil)

	if ch := e.Play(s, 0, -0.5, 0, false); ch != 0 {
		t.Fatalf("negative volume: Play = %d, want 0", ch)
	}
	if ch := e.Play(s, 0, 1, 1.5, false); ch != 0 {
		t.Fatalf("out-of-range pan: Play = %d, want 0", ch)
	}
	if ch := e.Play(nil, 0, 1, 0, false); ch != 0 {
		t.Fatalf("nil sound: Play = %d, want 0", ch)
	}
	if len(logged) == 0 {
		t.Fatal("invalid arguments should reach the debug log")
	}
}

func TestPlayOnUnreservedChannelFails(t *testing.T) {
	e, _ := newTestEngine(4000, 4)
	s := newSquareSound(t, e, 8)
	if ch := e.Play(s, 2, 1, 0, false); ch != 0 {
		t.Fatalf("Play on unreserved channel = %d, want 0", ch)
	}
}

func TestReservedChannelExcludedFromDynamicPool(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 8)

	r := e.ReserveChannel()
	if r != 1 {
		t.Fatalf("ReserveChannel = %d, want 1", r)
	}
	if ch := mustPlay(t, e, s, 0, 1, 0, false); ch != 2 {
		t.Fatalf("dynamic Play = %d, want 2 (1 is reserved)", ch)
	}
	if ch := e.Play(s, 0, 1, 0, false); ch != 0 {
		t.Fatalf("second dynamic Play = %d, want 0 (pool exhausted)", ch)
	}
	if ch := mustPlay(t, e, s, r, 1, 0, false); ch != r {
		t.Fatalf("Play on reserved channel = %d, want %d", ch, r)
	}
}

func TestPlayOnBusyReservedChannelCutsPrevious(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)

	r := e.ReserveChannel()
	mustPlay(t, e, s, r, 1, 0, false)
	pullFrames(e, 4)
	mustPlay(t, e, s, r, 1, 0, false)

	if pos := e.PlaybackPos(r); pos != 0 {
		t.Fatalf("PlaybackPos = %v after restart, want 0", pos)
	}
}

func TestDestroyWhileInUseDefersFree(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 8)

	ch := mustPlay(t, e, s, 0, 1, 0, false)
	s.Destroy()

	// Still audible: the free is deferred until the channel stops.
	if l, _ := pullFrame(e); l == 0 {
		t.Fatal("sound should stay audible after a deferred Destroy")
	}

	pullFrames(e, 16) // drain past end of stream
	pullFrame(e)      // EOF is observed on the first empty decode
	e.Update()
	if e.IsPlaying(ch) {
		t.Fatal("channel should be reaped at end of stream")
	}
	if _, err := s.pool.OpenInstance(); err == nil {
		t.Fatal("sound should be freed once its last channel stopped")
	}
}

func TestCutReleasesSoundImmediately(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)

	ch := mustPlay(t, e, s, 0, 1, 0, false)
	e.Cut(ch)

	if e.IsPlaying(ch) {
		t.Fatal("channel should be idle after Cut")
	}
	s.Destroy()
	if _, err := s.pool.OpenInstance(); err == nil {
		t.Fatal("Destroy with no users should free immediately")
	}
	if l, r := pullFrame(e); l != 0 || r != 0 {
		t.Fatalf("output after Cut = (%d, %d), want silence", l, r)
	}
}

func TestPauseAllResumeAllRestoresAudibleSet(t *testing.T) {
	e, _ := newTestEngine(4000, 4)
	s := newSquareSound(t, e, 40)

	ch1 := mustPlay(t, e, s, 0, 1, 0, true)
	ch2 := mustPlay(t, e, s, 0, 1, 0, true)

	e.Pause(ch1)
	e.PauseAll()
	e.ResumeAll()

	c1 := e.mixer.Channel(ch1)
	c2 := e.mixer.Channel(ch2)
	if e.mixer.Playing(c1) {
		t.Fatal("individually paused channel must stay silent through a global pause cycle")
	}
	if !e.mixer.Playing(c2) {
		t.Fatal("globally paused channel must resume on ResumeAll")
	}

	// The individual pause is still honoured independently.
	e.Resume(ch1)
	if !e.mixer.Playing(c1) {
		t.Fatal("Resume should restart the individually paused channel")
	}
}

func TestResumeDuringGlobalPauseRecordsIntentOnly(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)

	ch := mustPlay(t, e, s, 0, 1, 0, true)
	e.Pause(ch)
	e.PauseAll()
	e.Resume(ch)

	c := e.mixer.Channel(ch)
	if e.mixer.Playing(c) {
		t.Fatal("Resume during a global pause must not start the mixer")
	}
	e.ResumeAll()
	if !e.mixer.Playing(c) {
		t.Fatal("ResumeAll should honour the recorded Resume intent")
	}
}

func TestSetGlobalVolumeScalesOutputAndIgnoresOutOfRange(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)
	mustPlay(t, e, s, 0, 1, 0, true)

	e.SetGlobalVolume(2)
	if l, _ := pullFrame(e); l != 20000 {
		t.Fatalf("sample at global volume 2 = %d, want 20000", l)
	}

	e.SetGlobalVolume(16) // out of range: ignored
	e.SetGlobalVolume(-1) // out of range: ignored
	if l, _ := pullFrame(e); l != 20000 {
		t.Fatalf("sample after ignored volume calls = %d, want 20000", l)
	}

	e.SetGlobalVolume(0)
	if l, _ := pullFrame(e); l != 0 {
		t.Fatalf("sample at global volume 0 = %d, want 0", l)
	}
}

func TestChannelVolumeHeadroomAbove15(t *testing.T) {
	// Per-channel volume runs up to 127x; only the mixer-wide base
	// multiplier is capped at 15.
	e, _ := newTestEngine(4000, 2)
	flat := make([]int16, 8)
	for i := range flat {
		flat[i] = 500
	}
	s, err := e.NewSound(buildWAV(4000, 1, flat, nil), FormatAutodetect)
	if err != nil {
		t.Fatalf("NewSound: %v", err)
	}
	ch := mustPlay(t, e, s, 0, 50, 0, false)

	if l, _ := pullFrame(e); l != 25000 {
		t.Fatalf("sample at channel volume 50 = %d, want 25000", l)
	}

	// 127 is the ceiling: anything above clamps to it.
	e.AdjustVolume(ch, 500, 0)
	if l, _ := pullFrame(e); l != 32767 {
		t.Fatalf("saturated sample = %d, want 32767 (500 * 127 clamps)", l)
	}
}

func TestAdjustVolumeOverridesActiveFade(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)
	ch := mustPlay(t, e, s, 0, 1, 0, true)

	pullFrame(e)
	e.Fade(ch, 8.0/4000)
	pullFrame(e) // fade has begun
	e.AdjustVolume(ch, 1, 0)

	l, _ := pullFrame(e)
	if l != 10000 && l != -10000 {
		t.Fatalf("sample after AdjustVolume override = %d, want full scale", l)
	}
	if !e.IsPlaying(ch) {
		t.Fatal("AdjustVolume must not cut the channel")
	}
}

func TestAdjustVolumeToZeroKeepsChannelAlive(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)
	ch := mustPlay(t, e, s, 0, 1, 0, true)

	e.AdjustVolume(ch, 0, 0)
	if l, r := pullFrame(e); l != 0 || r != 0 {
		t.Fatalf("muted channel output = (%d, %d), want silence", l, r)
	}
	e.Update()
	if !e.IsPlaying(ch) {
		t.Fatal("a muted channel keeps playing; only Fade cuts at zero")
	}
}

type closeCountFilter struct {
	closes int
}

func (f *closeCountFilter) Apply(buf []int16) {}
func (f *closeCountFilter) Close()            { f.closes++ }
func (f *closeCountFilter) Stereo() bool      { return false }
func (f *closeCountFilter) Freq() int         { return 4000 }

func TestSetFilterOnIdleChannelClosesFilter(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	f := &closeCountFilter{}
	e.SetFilter(1, f)
	if f.closes != 1 {
		t.Fatalf("filter closes = %d, want 1 (ownership transferred)", f.closes)
	}
}

func TestSetFilterReplacementClosesPreviousExactlyOnce(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)
	ch := mustPlay(t, e, s, 0, 1, 0, true)

	first := &closeCountFilter{}
	second := &closeCountFilter{}
	e.SetFilter(ch, first)
	e.SetFilter(ch, second)
	if first.closes != 1 {
		t.Fatalf("first filter closes = %d, want 1", first.closes)
	}

	e.Cut(ch)
	if second.closes != 1 {
		t.Fatalf("second filter closes = %d after Cut, want 1", second.closes)
	}
	if first.closes != 1 {
		t.Fatalf("first filter closes = %d after Cut, want still 1", first.closes)
	}
}

func TestPlayDecoderRunsWithoutSound(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	d, err := e.OpenDecoder(buildWAV(4000, 1, squareWave(8), nil), FormatAutodetect)
	if err != nil {
		t.Fatalf("OpenDecoder: %v", err)
	}
	ch := e.PlayDecoder(d, 0, 1, 0)
	if ch == 0 {
		t.Fatal("PlayDecoder returned 0")
	}
	if got := e.ChannelSound(ch); got != nil {
		t.Fatalf("ChannelSound = %v for a raw decoder, want nil", got)
	}
	if l, _ := pullFrame(e); l != 10000 {
		t.Fatalf("first sample = %d, want 10000", l)
	}
	if d.inst != nil {
		t.Fatal("PlayDecoder should take ownership of the instance")
	}
}

func TestChannelSoundRoundTrip(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)
	ch := mustPlay(t, e, s, 0, 1, 0, true)

	if got := e.ChannelSound(ch); got != s {
		t.Fatalf("ChannelSound = %p, want %p", got, s)
	}
	if got := e.ActiveChannels(); len(got) != 1 || got[0] != ch {
		t.Fatalf("ActiveChannels = %v, want [%d]", got, ch)
	}
}

func TestSetPlaybackRateChangesDecodeFreq(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)
	ch := mustPlay(t, e, s, 0, 1, 0, true)

	// Half rate: each native sample is emitted twice at the device rate.
	e.SetPlaybackRate(ch, 0.5)
	f := pullFrames(e, 4)
	if f[0] != 10000 || f[2] != 10000 || f[4] != 10000 || f[6] != 10000 {
		t.Fatalf("half-rate output = %v, want the first square half-period held", f)
	}

	// Position accounting stays in the native domain: 4 output samples at
	// half rate consumed 2 native samples.
	wantPos := 2.0 / 4000
	if pos := e.PlaybackPos(ch); pos < wantPos-1.0/4000 || pos > wantPos+1.0/4000 {
		t.Fatalf("PlaybackPos = %v, want %v within one sample", pos, wantPos)
	}
}

func TestCleanupResetsChannelsAndClosesSink(t *testing.T) {
	e, snk := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)
	mustPlay(t, e, s, 0, 1, 0, true)
	s.Destroy() // deferred: in use

	e.Cleanup()
	if !snk.closed {
		t.Fatal("Cleanup should close the sink")
	}
	if _, err := s.pool.OpenInstance(); err == nil {
		t.Fatal("Cleanup should have released the sound's last user")
	}

	e.Cleanup() // second call is a no-op
	if ch := e.ReserveChannel(); ch != 0 {
		t.Fatalf("ReserveChannel = %d after Cleanup, want 0", ch)
	}
}

func TestSetLatencyBeforeOpenReturnsZero(t *testing.T) {
	e := New()
	if got := e.SetLatency(0.05); got != 0 {
		t.Fatalf("SetLatency before open = %v, want 0", got)
	}
	e2, _ := newTestEngine(4000, 1)
	if got := e2.SetLatency(0.05); got != 0.05 {
		t.Fatalf("SetLatency = %v, want 0.05", got)
	}
	if got := e2.GetLatency(); got != 0.05 {
		t.Fatalf("GetLatency = %v, want 0.05", got)
	}
}
