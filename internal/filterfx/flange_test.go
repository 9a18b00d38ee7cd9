package filterfx

import "testing"

func TestNewFlangeRejectsInvalidParams(t *testing.T) {
	cases := []struct {
		name                 string
		freq                 int
		period, depth        float64
	}{
		{"zero freq", 0, 0.1, 0.001},
		{"zero period", 44100, 0, 0.001},
		{"negative period", 44100, -1, 0.001},
		{"negative depth", 44100, 0.1, -0.001},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewFlange(true, c.freq, c.period, c.depth); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestNewFlangeAcceptsTypicalParams(t *testing.T) {
	f, err := NewFlange(true, 44100, 0.2, 0.003)
	if err != nil {
		t.Fatalf("NewFlange: %v", err)
	}
	if f.Freq() != 44100 || !f.Stereo() {
		t.Fatalf("unexpected filter params: freq=%d stereo=%v", f.Freq(), f.Stereo())
	}
}

func TestFlangeApplyStaysInRange(t *testing.T) {
	f, err := NewFlange(false, 8000, 0.05, 0.002)
	if err != nil {
		t.Fatalf("NewFlange: %v", err)
	}
	buf := make([]int16, 4000)
	for i := range buf {
		if i%2 == 0 {
			buf[i] = 30000
		} else {
			buf[i] = -30000
		}
	}
	f.Apply(buf)
	for i, v := range buf {
		if v > 32767 || v < -32768 {
			t.Fatalf("buf[%d] = %d out of int16 range", i, v)
		}
	}
}

func TestFlangeKnownOutputOnSquareWave(t *testing.T) {
	// Mono square at 4 kHz, two samples up, two down. The delay tap is
	// effectively zero for the first two samples (exact passthrough);
	// at the first polarity flip it still sees the previous positive
	// sample and pulls the output up to -9916; one sample later the tap
	// has caught up.
	f, err := NewFlange(false, 4000, 0.1, 1.5/4000)
	if err != nil {
		t.Fatalf("NewFlange: %v", err)
	}

	buf := []int16{10000, 10000, -10000, -10000}
	f.Apply(buf)

	want := []int16{10000, 10000, -9916, -10000}
	for i, w := range want {
		if buf[i] != w {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], w)
		}
	}
}

func TestFlangeApplySilenceStaysSilent(t *testing.T) {
	f, err := NewFlange(true, 44100, 0.1, 0.001)
	if err != nil {
		t.Fatalf("NewFlange: %v", err)
	}
	buf := make([]int16, 2000)
	f.Apply(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %d, want 0 for silent input", i, v)
		}
	}
}
