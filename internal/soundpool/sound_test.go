package soundpool

import (
	"encoding/binary"
	"testing"

	"github.com/loopwave/mixcore/internal/decoder"
	_ "github.com/loopwave/mixcore/internal/decoder/backend"
)

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

func monoWAV(sampleRate int, samples []int16) []byte {
	var fmtBody []byte
	fmtBody = append(fmtBody, u16le(1)...)
	fmtBody = append(fmtBody, u16le(1)...)
	fmtBody = append(fmtBody, u32le(uint32(sampleRate))...)
	fmtBody = append(fmtBody, u32le(uint32(sampleRate*2))...)
	fmtBody = append(fmtBody, u16le(2)...)
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

func TestOpenInstancePopulatesLazyParams(t *testing.T) {
	s := NewFromBuffer(monoWAV(8000, []int16{1, 2, 3, 4}), decoder.FormatWAV, "test.wav")
	if s.Stereo() {
		t.Fatal("expected params unknown (zero value) before first open")
	}

	inst, err := s.OpenInstance()
	if err != nil {
		t.Fatalf("OpenInstance: %v", err)
	}
	defer inst.Close()

	if s.Stereo() {
		t.Fatal("mono WAV should report Stereo() == false")
	}
	if s.NativeFreq() != 8000 {
		t.Fatalf("NativeFreq() = %d, want 8000", s.NativeFreq())
	}
}

func TestOpenInstanceAppliesLoopPoints(t *testing.T) {
	s := NewFromBuffer(monoWAV(8000, []int16{0, 1, 2, 3, 4, 5}), decoder.FormatWAV, "loop.wav")
	s.SetLoopPoints(1, 3)

	inst, err := s.OpenInstance()
	if err != nil {
		t.Fatalf("OpenInstance: %v", err)
	}
	defer inst.Close()

	start, length, enabled := inst.LoopPoints()
	if start != 1 || length != 3 {
		t.Fatalf("LoopPoints() = (%d,%d,%v), want (1,3,_)", start, length, enabled)
	}
	if enabled {
		t.Fatal("loop should stay disabled until the caller enables it")
	}
}

func TestDestroyFreesImmediatelyWhenUnused(t *testing.T) {
	s := NewFromBuffer(monoWAV(8000, []int16{1, 2}), decoder.FormatWAV, "x.wav")
	s.Destroy()

	if _, err := s.OpenInstance(); err != ErrSoundClosed {
		t.Fatalf("err = %v, want ErrSoundClosed", err)
	}
}

func TestDestroyDefersFreeUntilUsageReachesZero(t *testing.T) {
	s := NewFromBuffer(monoWAV(8000, []int16{1, 2}), decoder.FormatWAV, "x.wav")
	s.Acquire()
	s.Acquire()

	s.Destroy()
	if _, err := s.OpenInstance(); err != nil {
		t.Fatalf("expected sound still usable while in use, got %v", err)
	}

	s.Release()
	if _, err := s.OpenInstance(); err != nil {
		t.Fatalf("expected sound still usable with usage=1, got %v", err)
	}

	s.Release()
	if _, err := s.OpenInstance(); err != ErrSoundClosed {
		t.Fatalf("err = %v, want ErrSoundClosed once usage reaches zero after destroy", err)
	}
}

func TestReleaseWithoutDestroyDoesNotFree(t *testing.T) {
	s := NewFromBuffer(monoWAV(8000, []int16{1, 2}), decoder.FormatWAV, "x.wav")
	s.Acquire()
	s.Release()

	if _, err := s.OpenInstance(); err != nil {
		t.Fatalf("sound should remain usable without destroy, got %v", err)
	}
}
