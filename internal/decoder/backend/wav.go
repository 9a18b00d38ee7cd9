package backend

import (
	"encoding/binary"
	"errors"
	"io"

	waveprobe "github.com/go-audio/wav"

	"github.com/loopwave/mixcore/internal/decoder"
)

func init() {
	decoder.Register(decoder.FormatWAV, openWAV)
}

// wavBackend scans RIFF chunks directly instead of wrapping go-audio/wav's
// own PCM reader: the engine needs the smpl loop chunk, which that library
// does not expose, and the window-based Source it reads through does not
// fit that library's own decode loop. go-audio/wav is still used for its
// IsValidFile header check before the custom scan takes over.
type wavBackend struct {
	src decoder.Source

	sampleRate int
	channels   int
	bitDepth   int
	frameSize  int64

	dataStart int64
	dataLen   int64
	pos       int64 // bytes consumed from dataStart

	loopStart  int64
	loopLength int64

	curLoopStart   int64
	curLoopLength  int64
	curLoopEnabled bool
}

func openWAV(src decoder.Source, _ string) (decoder.Backend, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	probe := waveprobe.NewDecoder(src)
	if !probe.IsValidFile() {
		return nil, errors.New("backend: invalid WAV file")
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	b := &wavBackend{src: src, loopStart: -1, loopLength: -1}
	if err := b.scanChunks(); err != nil {
		return nil, err
	}
	if b.dataLen == 0 || b.channels == 0 {
		return nil, errors.New("backend: WAV missing fmt or data chunk")
	}
	return b, nil
}

func (b *wavBackend) scanChunks() error {
	var hdr [12]byte
	if _, err := io.ReadFull(b.src, hdr[:]); err != nil {
		return err
	}
	if string(hdr[0:4]) != "RIFF" || string(hdr[8:12]) != "WAVE" {
		return errors.New("backend: not a RIFF/WAVE stream")
	}

	total := b.src.Size()
	pos := int64(12)

	for pos+8 <= total {
		var chdr [8]byte
		if _, err := io.ReadFull(b.src, chdr[:]); err != nil {
			return err
		}
		id := string(chdr[0:4])
		size := int64(binary.LittleEndian.Uint32(chdr[4:8]))
		bodyStart := pos + 8
		if bodyStart+size > total {
			size = total - bodyStart
		}
		if size < 0 {
			size = 0
		}

		switch id {
		case "fmt ":
			body := make([]byte, size)
			if _, err := io.ReadFull(b.src, body); err != nil {
				return err
			}
			if len(body) < 16 {
				return errors.New("backend: truncated fmt chunk")
			}
			b.channels = int(binary.LittleEndian.Uint16(body[2:4]))
			b.sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			b.bitDepth = int(binary.LittleEndian.Uint16(body[14:16]))
			b.frameSize = int64(b.channels) * int64(b.bitDepth) / 8
		case "smpl":
			body := make([]byte, size)
			if _, err := io.ReadFull(b.src, body); err != nil {
				return err
			}
			b.parseSmpl(body)
		case "data":
			b.dataStart = bodyStart
			b.dataLen = size
			// Chunks after data are ignored entirely.
			return nil
		default:
			if _, err := b.src.Seek(size, io.SeekCurrent); err != nil {
				return err
			}
		}

		pos = bodyStart + size
		if size%2 == 1 {
			pos++
			if _, err := b.src.Seek(1, io.SeekCurrent); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseSmpl reads the first loop record of a WAV smpl chunk. loop_end is
// the index of the last looped sample (inclusive), so the loop's sample
// count is end + 1 - start; an out-of-range loop is discarded
// silently rather than rejecting the whole file.
func (b *wavBackend) parseSmpl(body []byte) {
	if len(body) < 36+24 {
		return
	}
	numLoops := binary.LittleEndian.Uint32(body[28:32])
	if numLoops == 0 {
		return
	}
	rec := body[36 : 36+24]
	start := int64(binary.LittleEndian.Uint32(rec[8:12]))
	end := int64(binary.LittleEndian.Uint32(rec[12:16]))
	length := end + 1 - start
	if start < 0 || length <= 0 {
		return
	}
	b.loopStart = start
	b.loopLength = length
}

func (b *wavBackend) samplePos() int64 {
	if b.frameSize == 0 {
		return 0
	}
	return b.pos / b.frameSize
}

func (b *wavBackend) seekToSample(n int64) error {
	target := b.dataStart + n*b.frameSize
	if _, err := b.src.Seek(target, io.SeekStart); err != nil {
		return err
	}
	b.pos = n * b.frameSize
	return nil
}

func (b *wavBackend) readFrame(out []int16) bool {
	if b.pos >= b.dataLen {
		return false
	}
	srcBytesPerSample := b.bitDepth / 8
	raw := make([]byte, srcBytesPerSample*b.channels)
	n, _ := io.ReadFull(b.src, raw)
	if n < len(raw) {
		return false
	}
	b.pos += int64(n)
	for ch := 0; ch < b.channels; ch++ {
		off := ch * srcBytesPerSample
		out[ch] = convertPCMSample(raw[off:off+srcBytesPerSample], b.bitDepth)
	}
	return true
}

func (b *wavBackend) GetPCM(buf []int16, loopOffset *int64) (int, error) {
	channels := b.channels
	frames := len(buf) / channels
	frame := make([]int16, channels)

	produced := 0
	for produced < frames {
		if b.curLoopEnabled && b.curLoopLength > 0 && b.samplePos() >= b.curLoopStart+b.curLoopLength {
			if err := b.seekToSample(b.curLoopStart); err != nil {
				return produced, err
			}
			*loopOffset += b.curLoopLength
		}
		if !b.readFrame(frame) {
			// A zero-length loop places the loop boundary at end of
			// stream: rewind the whole tail back to the loop start.
			if b.curLoopEnabled && b.curLoopLength == 0 {
				rewound := b.samplePos() - b.curLoopStart
				if rewound > 0 {
					if err := b.seekToSample(b.curLoopStart); err != nil {
						return produced, err
					}
					*loopOffset += rewound
					continue
				}
			}
			break
		}
		copy(buf[produced*channels:], frame)
		produced++
	}
	return produced, nil
}

func (b *wavBackend) Close() error      { return nil }
func (b *wavBackend) Stereo() bool      { return b.channels == 2 }
func (b *wavBackend) NativeFreq() int   { return b.sampleRate }
func (b *wavBackend) Bitrate() int      { return b.sampleRate * b.channels * 16 }
func (b *wavBackend) LoopStart() int64  { return b.loopStart }
func (b *wavBackend) LoopLength() int64 { return b.loopLength }

func (b *wavBackend) SetLoop(start, length int64, enabled bool) {
	b.curLoopStart, b.curLoopLength, b.curLoopEnabled = start, length, enabled
}
