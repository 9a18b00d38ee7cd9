package decoder

import "testing"

// fakeBackend produces a fixed ramp of mono samples, optionally looping a
// sub-range of it, for exercising Instance without any real codec.
type fakeBackend struct {
	samples    []int16
	pos        int
	stereo     bool
	nativeFreq int
	bitrate    int
	loopStart  int64
	loopLength int64
}

func (b *fakeBackend) GetPCM(buf []int16, loopOffset *int64) (int, error) {
	n := 0
	for n < len(buf) {
		if b.pos >= len(b.samples) {
			break
		}
		buf[n] = b.samples[b.pos]
		b.pos++
		n++
	}
	return n, nil
}
func (b *fakeBackend) Close() error      { return nil }
func (b *fakeBackend) Stereo() bool      { return b.stereo }
func (b *fakeBackend) NativeFreq() int   { return b.nativeFreq }
func (b *fakeBackend) Bitrate() int      { return b.bitrate }
func (b *fakeBackend) LoopStart() int64  { return b.loopStart }
func (b *fakeBackend) LoopLength() int64 { return b.loopLength }
func (b *fakeBackend) SetLoop(start, length int64, enabled bool) {
	b.loopStart, b.loopLength = start, length
}

func newFakeInstance(samples []int16, freq int) *Instance {
	b := &fakeBackend{samples: samples, nativeFreq: freq, loopStart: -1, loopLength: -1}
	return &Instance{
		backend:    b,
		nativeFreq: freq,
		channels:   1,
		outputFreq: freq,
		decodeFreq: freq,
		loopStart:  -1,
		loopLength: -1,
	}
}

func TestDetectRIFFWave(t *testing.T) {
	data := append([]byte("RIFF"), append([]byte{0, 0, 0, 0}, []byte("WAVEfmt ")...)...)
	src := newSource(newMemoryWindow(data))
	f, err := Detect(src)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if f != FormatWAV {
		t.Fatalf("Detect = %v, want FormatWAV", f)
	}
}

func TestDetectMP3Sync(t *testing.T) {
	data := []byte{0xFF, 0xFB, 0x90, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	src := newSource(newMemoryWindow(data))
	f, err := Detect(src)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if f != FormatMP3 {
		t.Fatalf("Detect = %v, want FormatMP3", f)
	}
}

func TestDetectUnrecognized(t *testing.T) {
	src := newSource(newMemoryWindow([]byte("junkjunkjunk")))
	if _, err := Detect(src); err == nil {
		t.Fatal("Detect of junk data: want error, got nil")
	}
}

// TestResamplePassthroughEquivalence checks that a matching decode and
// output rate reproduces the back-end's own samples exactly even with the
// resample path forced on.
func TestResamplePassthroughEquivalence(t *testing.T) {
	samples := []int16{10, 20, 30, 40, 50, 60, 70, 80}
	inst := newFakeInstance(samples, 8000)
	inst.SetDecodeFreq(8000) // force resample path on, matching rate

	out := make([]int16, len(samples))
	n, err := inst.GetPCM(out, len(samples))
	if err != nil {
		t.Fatalf("GetPCM: %v", err)
	}
	if n != len(samples) {
		t.Fatalf("GetPCM n = %d, want %d", n, len(samples))
	}
	for i, want := range samples {
		if out[i] != want {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], want)
		}
	}
}

func TestGetPCMDirectPassthroughByDefault(t *testing.T) {
	samples := []int16{1, 2, 3, 4}
	inst := newFakeInstance(samples, 44100)

	out := make([]int16, 4)
	n, err := inst.GetPCM(out, 4)
	if err != nil {
		t.Fatalf("GetPCM: %v", err)
	}
	if n != 4 {
		t.Fatalf("n = %d, want 4", n)
	}
	if inst.needResample() {
		t.Fatal("needResample true with matching default rates")
	}
}

func TestPositionTracksSamplesGotten(t *testing.T) {
	samples := make([]int16, 100)
	inst := newFakeInstance(samples, 100)

	out := make([]int16, 50)
	if _, err := inst.GetPCM(out, 50); err != nil {
		t.Fatalf("GetPCM: %v", err)
	}
	if got, want := inst.Position(), 0.5; got != want {
		t.Fatalf("Position() = %v, want %v", got, want)
	}
}

func TestGetPCMReturnsShortOnEOF(t *testing.T) {
	samples := []int16{1, 2, 3}
	inst := newFakeInstance(samples, 8000)

	out := make([]int16, 10)
	n, err := inst.GetPCM(out, 10)
	if err != nil {
		t.Fatalf("GetPCM: %v", err)
	}
	if n != 3 {
		t.Fatalf("n = %d, want 3", n)
	}
}
