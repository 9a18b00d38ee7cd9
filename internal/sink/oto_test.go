package sink

import (
	"testing"

	"github.com/loopwave/mixcore/internal/mixchan"
)

func TestMixerReaderProducesSilenceWithNoChannelsPlaying(t *testing.T) {
	m := mixchan.NewMixer(4)
	r := &mixerReader{mixer: m}

	buf := make([]byte, 4*10) // 10 stereo frames
	n, err := r.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("n = %d, want %d", n, len(buf))
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d, want 0 (silence)", i, b)
		}
	}
}

func TestMixerReaderZeroLengthBufferIsNoop(t *testing.T) {
	m := mixchan.NewMixer(1)
	r := &mixerReader{mixer: m}
	n, err := r.Read(nil)
	if err != nil || n != 0 {
		t.Fatalf("Read(nil) = (%d, %v), want (0, nil)", n, err)
	}
}
