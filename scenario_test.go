package mixcore

// End-to-end playback scenarios on a 4 kHz device, driven the way the
// platform sink drives the mixer: a mono square wave alternating two
// samples of +10000 with two of -10000.

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScenarioPlayOnceThenSilence(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)
	ch := mustPlay(t, e, s, 0, 1, 0, false)

	f := pullFrames(e, 40)
	for i := 0; i < 40; i++ {
		want := int16(10000)
		if i%4 >= 2 {
			want = -10000
		}
		if f[i*2] != want || f[i*2+1] != want {
			t.Fatalf("frame %d = (%d, %d), want (%d, %d)", i, f[i*2], f[i*2+1], want, want)
		}
	}

	tail := pullFrames(e, 8)
	for i, v := range tail {
		if v != 0 {
			t.Fatalf("tail[%d] = %d, want silence after end of stream", i, v)
		}
	}

	e.Update()
	if e.IsPlaying(ch) {
		t.Fatal("IsPlaying should be false after the final Update")
	}
}

func TestScenarioLoopRegion(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)
	s.SetLoop(1, 2)
	ch := mustPlay(t, e, s, 0, 1, 0, true)

	want := []int16{10000, 10000, -10000, 10000, -10000, 10000, -10000}
	f := pullFrames(e, len(want))
	for i, w := range want {
		if f[i*2] != w {
			t.Fatalf("frame %d = %d, want %d", i, f[i*2], w)
		}
	}

	// Loop rewinds are deducted from the position counter: seven output
	// samples with two rewinds of two leave the stream three samples in.
	wantPos := 3.0 / 4000
	if pos := e.PlaybackPos(ch); pos < wantPos-1.0/4000 || pos > wantPos+1.0/4000 {
		t.Fatalf("PlaybackPos = %v, want %v within one sample", pos, wantPos)
	}
}

func TestScenarioZeroLengthLoopRestartsAtEndOfStream(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 4)
	s.SetLoop(0, 0)
	mustPlay(t, e, s, 0, 1, 0, true)

	// The four-sample stream repeats seamlessly: the loop boundary sits
	// at end of stream.
	f := pullFrames(e, 10)
	for i := 0; i < 10; i++ {
		want := int16(10000)
		if i%4 >= 2 {
			want = -10000
		}
		if f[i*2] != want {
			t.Fatalf("frame %d = %d, want %d", i, f[i*2], want)
		}
	}
}

func TestScenarioPauseResumeTwoChannels(t *testing.T) {
	e, _ := newTestEngine(4000, 4)
	s := newSquareSound(t, e, 40)
	ch1 := mustPlay(t, e, s, 0, 1, 0, true)
	mustPlay(t, e, s, 0, 1, 0, true)

	// Both channels aligned: samples sum to +20000.
	for i := 0; i < 2; i++ {
		if l, r := pullFrame(e); l != 20000 || r != 20000 {
			t.Fatalf("frame %d = (%d, %d), want (20000, 20000)", i, l, r)
		}
	}

	e.Pause(ch1)
	// Only channel 2 contributes its samples 3 and 4.
	for i := 0; i < 2; i++ {
		if l, _ := pullFrame(e); l != -10000 {
			t.Fatalf("paused frame %d = %d, want -10000", i, l)
		}
	}

	e.Resume(ch1)
	// Channel 1 lags channel 2 by half a period now, so the square waves
	// cancel exactly.
	for i := 0; i < 2; i++ {
		if l, _ := pullFrame(e); l != 0 {
			t.Fatalf("resumed frame %d = %d, want 0 (antiphase)", i, l)
		}
	}
}

func TestScenarioFadeRampsLinearlyThenCuts(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)
	ch := mustPlay(t, e, s, 0, 1, 0, false)

	pullFrames(e, 2) // two full-scale samples play out
	e.Fade(ch, 4.0/4000)

	want := []int16{-7500, -5000, 2500, 0}
	for i, w := range want {
		if l, _ := pullFrame(e); l != w {
			t.Fatalf("faded frame %d = %d, want %d", i, l, w)
		}
	}

	e.Update()
	if e.IsPlaying(ch) {
		t.Fatal("fade to zero should cut the channel")
	}
}

func TestScenarioZeroLengthFadeCutsImmediately(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)
	ch := mustPlay(t, e, s, 0, 1, 0, false)

	e.Fade(ch, 0)
	if e.IsPlaying(ch) {
		t.Fatal("Fade(ch, 0) should reset the channel immediately")
	}
}

func TestScenarioMonoPanSplitsLinearly(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	flat := make([]int16, 8)
	for i := range flat {
		flat[i] = 10000
	}
	s, err := e.NewSound(buildWAV(4000, 1, flat, nil), FormatAutodetect)
	if err != nil {
		t.Fatalf("NewSound: %v", err)
	}
	ch := mustPlay(t, e, s, 0, 1, 0, false)
	e.SetPan(ch, -0.5)

	for i := 0; i < 4; i++ {
		l, r := pullFrame(e)
		if l != 15000 || r != 5000 {
			t.Fatalf("frame %d = (%d, %d), want (15000, 5000)", i, l, r)
		}
	}
}

func TestScenarioFlangeEngages(t *testing.T) {
	e, _ := newTestEngine(4000, 2)
	s := newSquareSound(t, e, 40)
	ch := mustPlay(t, e, s, 0, 1, 0, false)
	e.SetFlange(ch, true, 0.1, 1.5/4000)

	// The modulated delay is still tiny on the first two samples, so
	// they pass through exactly; the first polarity flip reads the
	// previous (positive) sample through the delay tap and lands at
	// -9916; by the next sample the tap has caught up.
	want := []int16{10000, 10000, -9916, -10000}
	for i, w := range want {
		l, r := pullFrame(e)
		if l != w || r != w {
			t.Fatalf("flanged frame %d = (%d, %d), want (%d, %d)", i, l, r, w, w)
		}
	}

	e.SetFlange(ch, false, 0, 0)
	if e.mixer.Channel(ch) == nil {
		t.Fatal("channel vanished")
	}
}

func TestScenarioResampleHalfRateDoublesSamples(t *testing.T) {
	// An 8 kHz device playing a 4 kHz stream exercises the resampler:
	// every native sample appears twice, and the reported position stays
	// in the native domain.
	e, _ := newTestEngine(8000, 2)
	s := newSquareSound(t, e, 8)
	ch := mustPlay(t, e, s, 0, 1, 0, false)

	f := pullFrames(e, 8)
	want := []int16{10000, 10000, 10000, 10000, -10000, -10000, -10000, -10000}
	for i, w := range want {
		if f[i*2] != w {
			t.Fatalf("frame %d = %d, want %d", i, f[i*2], w)
		}
	}
	wantPos := 4.0 / 4000
	if pos := e.PlaybackPos(ch); pos < wantPos-1.0/4000 || pos > wantPos+1.0/4000 {
		t.Fatalf("PlaybackPos = %v, want %v within one sample", pos, wantPos)
	}
}

func TestScenarioStreamFromFile(t *testing.T) {
	// The same square wave through the file-backed window layer: async
	// prefetch, sync fallback, and the offset-range plumbing all sit on
	// this path.
	dir := t.TempDir()
	path := filepath.Join(dir, "square.wav")
	if err := os.WriteFile(path, buildWAV(4000, 1, squareWave(40), nil), 0o644); err != nil {
		t.Fatal(err)
	}

	e, _ := newTestEngine(4000, 2)
	s, err := e.NewSoundStream(path, 0, 0, FormatAutodetect)
	if err != nil {
		t.Fatalf("NewSoundStream: %v", err)
	}
	defer s.Destroy()
	ch := mustPlay(t, e, s, 0, 1, 0, false)

	f := pullFrames(e, 40)
	for i := 0; i < 40; i++ {
		want := int16(10000)
		if i%4 >= 2 {
			want = -10000
		}
		if f[i*2] != want {
			t.Fatalf("frame %d = %d, want %d", i, f[i*2], want)
		}
	}
	pullFrame(e)
	e.Update()
	if e.IsPlaying(ch) {
		t.Fatal("file-backed stream should reap at end of stream")
	}
}

func TestScenarioWAVSmplLoopDiscovered(t *testing.T) {
	// A smpl chunk with loop_end inclusive: samples 1..2 loop, giving the
	// same sequence as the caller-set region in TestScenarioLoopRegion.
	loop := &[2]uint32{1, 2}
	e, _ := newTestEngine(4000, 2)
	s, err := e.NewSound(buildWAV(4000, 1, squareWave(40), loop), FormatAutodetect)
	if err != nil {
		t.Fatalf("NewSound: %v", err)
	}
	mustPlay(t, e, s, 0, 1, 0, true)

	want := []int16{10000, 10000, -10000, 10000, -10000}
	f := pullFrames(e, len(want))
	for i, w := range want {
		if f[i*2] != w {
			t.Fatalf("frame %d = %d, want %d", i, f[i*2], w)
		}
	}
}
