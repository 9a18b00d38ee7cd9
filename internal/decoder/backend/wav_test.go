package backend

import (
	"encoding/binary"
	"testing"

	"github.com/loopwave/mixcore/internal/decoder"
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

func wavChunk(id string, content []byte) []byte {
	out := append([]byte(id), u32le(uint32(len(content)))...)
	out = append(out, content...)
	if len(content)%2 == 1 {
		out = append(out, 0)
	}
	return out
}

func wavFmtChunk(sampleRate int) []byte {
	var b []byte
	b = append(b, u16le(1)...)               // PCM
	b = append(b, u16le(1)...)                // mono
	b = append(b, u32le(uint32(sampleRate))...)
	b = append(b, u32le(uint32(sampleRate*2))...)
	b = append(b, u16le(2)...)  // block align
	b = append(b, u16le(16)...) // bits per sample
	return b
}

func wavDataChunk(samples []int16) []byte {
	body := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(body[i*2:], uint16(s))
	}
	return body
}

func wavSmplChunk(loopStart, loopEnd uint32) []byte {
	var b []byte
	for i := 0; i < 7; i++ {
		b = append(b, u32le(0)...) // manufacturer..SMPTEOffset
	}
	b = append(b, u32le(1)...) // numSampleLoops
	b = append(b, u32le(0)...) // samplerDataSize
	b = append(b, u32le(0)...) // cuePointID
	b = append(b, u32le(0)...) // type
	b = append(b, u32le(loopStart)...)
	b = append(b, u32le(loopEnd)...)
	b = append(b, u32le(0)...) // fraction
	b = append(b, u32le(0)...) // playCount
	return b
}

func buildWAV(chunks ...[]byte) []byte {
	var body []byte
	for _, c := range chunks {
		body = append(body, c...)
	}
	out := append([]byte("RIFF"), u32le(uint32(4+len(body)))...)
	out = append(out, []byte("WAVE")...)
	return append(out, body...)
}

func TestWAVLoopDetectionAndRewind(t *testing.T) {
	samples := []int16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	data := buildWAV(
		wavChunk("fmt ", wavFmtChunk(8000)),
		wavChunk("smpl", wavSmplChunk(2, 5)),
		wavChunk("data", wavDataChunk(samples)),
	)

	inst, err := decoder.OpenMemory(data, decoder.FormatWAV, "test.wav")
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer inst.Close()

	start, length, _ := inst.LoopPoints()
	if start != 2 || length != 4 {
		t.Fatalf("detected loop = (%d,%d), want (2,4)", start, length)
	}

	inst.EnableLoop(true)

	out := make([]int16, 12)
	n, err := inst.GetPCM(out, 12)
	if err != nil {
		t.Fatalf("GetPCM: %v", err)
	}
	if n != 12 {
		t.Fatalf("n = %d, want 12", n)
	}
	want := []int16{0, 1, 2, 3, 4, 5, 2, 3, 4, 5, 2, 3}
	for i, w := range want {
		if out[i] != w {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], w)
		}
	}

	// Two loop wraps (4 samples each) happened inside this one call, so
	// the position counter undercounts the raw frames produced by exactly that
	// much.
	if got, want := inst.Position(), 4.0/8000.0; got != want {
		t.Fatalf("Position() = %v, want %v", got, want)
	}
}

func TestWAVNoLoopChunkReportsNoLoop(t *testing.T) {
	data := buildWAV(
		wavChunk("fmt ", wavFmtChunk(8000)),
		wavChunk("data", wavDataChunk([]int16{1, 2, 3, 4})),
	)

	inst, err := decoder.OpenMemory(data, decoder.FormatWAV, "plain.wav")
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer inst.Close()

	_, length, _ := inst.LoopPoints()
	if length > 0 {
		t.Fatalf("length = %d, want no loop", length)
	}
}
