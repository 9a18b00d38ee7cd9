package mixchan

import (
	"encoding/binary"
	"testing"

	"github.com/loopwave/mixcore/internal/decoder"
	_ "github.com/loopwave/mixcore/internal/decoder/backend"
)

type releaseCounter struct{ n int }

func (r *releaseCounter) Release() { r.n++ }

func u16le(v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return b[:]
}

func u32le(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func chunk(id string, content []byte) []byte {
	out := append([]byte(id), u32le(uint32(len(content)))...)
	out = append(out, content...)
	if len(content)%2 == 1 {
		out = append(out, 0)
	}
	return out
}

// stereoWAV builds a tiny uncompressed 16-bit stereo WAV from interleaved
// samples, for exercising the mixer against real decoder.Instance values.
func stereoWAV(sampleRate int, samples []int16) []byte {
	var fmtBody []byte
	fmtBody = append(fmtBody, u16le(1)...) // PCM
	fmtBody = append(fmtBody, u16le(2)...) // stereo
	fmtBody = append(fmtBody, u32le(uint32(sampleRate))...)
	fmtBody = append(fmtBody, u32le(uint32(sampleRate*4))...)
	fmtBody = append(fmtBody, u16le(4)...)
	fmtBody = append(fmtBody, u16le(16)...)

	dataBody := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(dataBody[i*2:], uint16(s))
	}

	body := append(chunk("fmt ", fmtBody), chunk("data", dataBody)...)
	out := append([]byte("RIFF"), u32le(uint32(4+len(body)))...)
	out = append(out, []byte("WAVE")...)
	return append(out, body...)
}

func openStereoWAV(t *testing.T, sampleRate int, samples []int16) *decoder.Instance {
	t.Helper()
	inst, err := decoder.OpenMemory(stereoWAV(sampleRate, samples), decoder.FormatWAV, "mix.wav")
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	return inst
}

func TestAcquireDynamicAllocation(t *testing.T) {
	m := NewMixer(2)
	ch1, err := m.Acquire(0)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	ch2, err := m.Acquire(0)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if ch1 == ch2 {
		t.Fatal("expected two distinct channels")
	}
	if _, err := m.Acquire(0); err != ErrNoChannelAvailable {
		t.Fatalf("err = %v, want ErrNoChannelAvailable", err)
	}
}

func TestAcquireRequiresReservation(t *testing.T) {
	m := NewMixer(2)
	if _, err := m.Acquire(1); err != ErrChannelNotReserved {
		t.Fatalf("err = %v, want ErrChannelNotReserved", err)
	}
	if got := m.ReserveChannel(); got != 1 {
		t.Fatalf("ReserveChannel = %d, want 1", got)
	}
	ch, err := m.Acquire(1)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if ch.Index != 1 {
		t.Fatalf("ch.Index = %d, want 1", ch.Index)
	}
}

func TestAcquireResetsInUseReservedChannel(t *testing.T) {
	m := NewMixer(1)
	m.ReserveChannel()
	ch, err := m.Acquire(1)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	owner := &releaseCounter{}
	dec := openStereoWAV(t, 8000, []int16{1, 2, 3, 4})
	m.Configure(ch, dec, owner, 1.0, 0)

	// Re-acquiring the same reserved channel while in use must reset it,
	// releasing the old sound exactly once.
	ch2, err := m.Acquire(1)
	if err != nil {
		t.Fatalf("Acquire (reuse): %v", err)
	}
	if ch2 != ch {
		t.Fatalf("expected same channel object back")
	}
	if owner.n != 1 {
		t.Fatalf("owner.Release called %d times, want 1", owner.n)
	}
}

func TestPauseResumeSingleChannel(t *testing.T) {
	m := NewMixer(1)
	ch, _ := m.Acquire(0)
	dec := openStereoWAV(t, 8000, []int16{1, 2, 3, 4})
	m.Configure(ch, dec, nil, 1.0, 0)

	m.Pause(ch)
	if !ch.Paused() {
		t.Fatal("expected channel paused")
	}
	out := make([]int16, 4)
	m.GetPCM(out, 2)
	for _, v := range out {
		if v != 0 {
			t.Fatalf("expected silence while paused, got %v", out)
		}
	}

	m.Resume(ch)
	if ch.Paused() {
		t.Fatal("expected channel resumed")
	}
}

func TestPauseAllResumeAllHonoursChannelPause(t *testing.T) {
	m := NewMixer(2)
	chA, _ := m.Acquire(0)
	chB, _ := m.Acquire(0)
	m.Configure(chA, openStereoWAV(t, 8000, []int16{1, 2}), nil, 1.0, 0)
	m.Configure(chB, openStereoWAV(t, 8000, []int16{1, 2}), nil, 1.0, 0)

	m.Pause(chA) // A is individually paused before the global pause
	m.PauseAll()
	if !chA.Paused() || !chB.Paused() {
		t.Fatal("expected both channels paused")
	}

	m.ResumeAll()
	if chA.Paused() == false {
		t.Fatal("expected A to remain paused: its own per-channel pause was never cleared")
	}
	if chB.Paused() {
		t.Fatal("expected B to resume: only the global pause held it")
	}
}

func TestAdjustVolumeDoesNotCutPlaybackAtZero(t *testing.T) {
	m := NewMixer(1)
	ch, _ := m.Acquire(0)
	m.Configure(ch, openStereoWAV(t, 8000, []int16{1, 2, 3, 4, 5, 6}), nil, 1.0, 0)

	m.AdjustVolume(ch, 0, 0, 8000)
	m.mixMu.Lock()
	playing := ch.mixer.Playing
	cut := ch.mixer.FadeCutOnSilent
	m.mixMu.Unlock()
	if !playing {
		t.Fatal("adjust_volume to zero must not stop playback")
	}
	if cut {
		t.Fatal("adjust_volume must never set FadeCutOnSilent")
	}
}

func TestFadeToZeroCutsPlaybackOnArrival(t *testing.T) {
	m := NewMixer(1)
	ch, _ := m.Acquire(0)
	m.Configure(ch, openStereoWAV(t, 8000, []int16{1, 2, 3, 4, 5, 6}), nil, 1.0, 0)

	m.Fade(ch, 0, 0, 8000) // seconds == 0: set immediately
	out := make([]int16, 2)
	m.GetPCM(out, 1)
	m.mixMu.Lock()
	playing := ch.mixer.Playing
	m.mixMu.Unlock()
	if playing {
		t.Fatal("fade to zero must stop playback once silent")
	}
}

func TestGetPCMFullVolumeCenteredPanIsExactPassthrough(t *testing.T) {
	m := NewMixer(1)
	ch, _ := m.Acquire(0)
	samples := []int16{100, -200, 300, -400, 32000, -32000}
	m.Configure(ch, openStereoWAV(t, 8000, samples), nil, 1.0, 0)

	out := make([]int16, len(samples))
	n := m.GetPCM(out, len(samples)/2)
	if n != len(samples)/2 {
		t.Fatalf("n = %d, want %d", n, len(samples)/2)
	}
	for i, want := range samples {
		if out[i] != want {
			t.Fatalf("out[%d] = %d, want %d (exact full-volume centered passthrough)", i, out[i], want)
		}
	}
}

func TestGetPCMTwoChannelsSumsWithoutClippingInRange(t *testing.T) {
	m := NewMixer(2)
	chA, _ := m.Acquire(0)
	chB, _ := m.Acquire(0)
	m.Configure(chA, openStereoWAV(t, 8000, []int16{10000, 10000}), nil, 1.0, 0)
	m.Configure(chB, openStereoWAV(t, 8000, []int16{10000, 10000}), nil, 1.0, 0)

	out := make([]int16, 2)
	m.GetPCM(out, 1)
	if out[0] != 20000 || out[1] != 20000 {
		t.Fatalf("out = %v, want [20000 20000]", out)
	}
}

func TestResetReleasesSoundAndClearsInUse(t *testing.T) {
	m := NewMixer(1)
	ch, _ := m.Acquire(0)
	owner := &releaseCounter{}
	m.Configure(ch, openStereoWAV(t, 8000, []int16{1, 2}), owner, 1.0, 0)

	m.Reset(ch)
	if owner.n != 1 {
		t.Fatalf("owner.Release called %d times, want 1", owner.n)
	}
	if ch.InUse() {
		t.Fatal("expected channel not in use after reset")
	}
	if ch.Decoder() != nil {
		t.Fatal("expected decoder cleared after reset")
	}
}

func TestUpdateReapsFinishedChannel(t *testing.T) {
	m := NewMixer(1)
	ch, _ := m.Acquire(0)
	m.Configure(ch, openStereoWAV(t, 8000, []int16{1, 2}), nil, 1.0, 0)

	out := make([]int16, 4)
	m.GetPCM(out, 2) // drains the one available frame, zero-padding the rest
	m.GetPCM(out, 2) // the empty decode is end of stream and clears Playing

	m.Update()
	if ch.InUse() {
		t.Fatal("expected finished channel reaped by Update")
	}
}
