// Package decoder implements the audio decoder framework:
// format dispatch, the memory/file window layer, loop-point plumbing, and
// linear-interpolating resampling, on top of format back-ends registered
// from internal/decoder/backend.
package decoder

import (
	"io"
	"time"

	"github.com/loopwave/mixcore/internal/iosrc"
)

const (
	windowBufSize     = 16384
	readAheadHeadroom = 10 * time.Millisecond
)

// window presents a uniform "give me bytes at offset" view over a memory
// buffer or an asynchronous file.
type window struct {
	mem []byte // non-nil for memory sources

	file    iosrc.File // non-nil for file sources
	total   int64
	bitrate int // bits/sec of the raw stream, for the read-ahead deadline

	buf      []byte
	bufStart int64
	bufValid int

	havePending  bool
	pending      iosrc.AsyncToken
	pendingStart int64
	pendingLen   int
}

func newMemoryWindow(data []byte) *window {
	return &window{mem: data, total: int64(len(data))}
}

func newFileWindow(f iosrc.File, total int64, bitrate int) *window {
	return &window{
		file:    f,
		total:   total,
		bitrate: bitrate,
		buf:     make([]byte, windowBufSize),
	}
}

func (w *window) isFile() bool { return w.file != nil }

// getData returns a slice into the window's internal storage holding up to
// length bytes starting at pos, and the number of bytes actually available
// (which may be less than length at end-of-stream; a back-end must treat
// a short read here the way it treats a short read anywhere else).
func (w *window) getData(pos int64, length int) ([]byte, int, error) {
	if length < 0 {
		length = 0
	}
	if !w.isFile() {
		if pos < 0 || pos >= int64(len(w.mem)) {
			return nil, 0, nil
		}
		end := pos + int64(length)
		if end > int64(len(w.mem)) {
			end = int64(len(w.mem))
		}
		return w.mem[pos:end], int(end - pos), nil
	}
	return w.getFileData(pos, length)
}

func (w *window) getFileData(pos int64, length int) ([]byte, int, error) {
	avail := w.total - pos
	if avail <= 0 {
		return nil, 0, nil
	}
	if int64(length) > avail {
		length = int(avail)
	}

	if !w.withinBuffer(pos, length) {
		if w.havePending && w.pendingOverlaps(pos, length) {
			n, err := w.file.Wait(w.pending)
			w.havePending = false
			if err != nil && err != io.EOF {
				return nil, 0, err
			}
			w.bufValid = int(w.pendingStart-w.bufStart) + n
		}
	}

	if !w.withinBuffer(pos, length) {
		if w.havePending {
			w.file.Abort(w.pending)
			w.havePending = false
		}
		if err := w.syncFill(pos); err != nil {
			return nil, 0, err
		}
	}

	w.maintain(pos)

	off := int(pos - w.bufStart)
	end := off + length
	if end > w.bufValid {
		end = w.bufValid
	}
	if end < off {
		end = off
	}
	return w.buf[off:end], end - off, nil
}

func (w *window) withinBuffer(pos int64, length int) bool {
	if w.bufValid == 0 || pos < w.bufStart {
		return false
	}
	return pos+int64(length) <= w.bufStart+int64(w.bufValid)
}

func (w *window) pendingOverlaps(pos int64, length int) bool {
	reqEnd := pos + int64(length)
	pendEnd := w.pendingStart + int64(w.pendingLen)
	return pos < pendEnd && reqEnd > w.pendingStart
}

func (w *window) syncFill(pos int64) error {
	n, err := w.file.ReadAt(w.buf, pos)
	if err != nil && err != io.EOF {
		return err
	}
	w.bufStart = pos
	w.bufValid = n
	return nil
}

// maintain compacts the buffer towards pos when pos sits in the upper half
// (freeing tail space) and, if no read is outstanding and there is tail
// space, issues a new read-ahead request with a bitrate-derived deadline.
func (w *window) maintain(pos int64) {
	fromStart := pos - w.bufStart
	if w.bufValid > 0 && fromStart > int64(len(w.buf))/2 {
		if fromStart >= int64(w.bufValid) {
			w.bufStart = pos
			w.bufValid = 0
		} else {
			n := copy(w.buf, w.buf[fromStart:w.bufValid])
			w.bufStart += fromStart
			w.bufValid = n
		}
	}

	if !w.havePending && w.bufValid < len(w.buf) {
		w.prefetch()
	}
}

func (w *window) prefetch() {
	readPos := w.bufStart + int64(w.bufValid)
	if readPos >= w.total {
		return
	}
	space := len(w.buf) - w.bufValid
	if remain := w.total - readPos; int64(space) > remain {
		space = int(remain)
	}
	if space <= 0 {
		return
	}

	deadline := w.readAheadDeadline()
	tok, err := w.file.ReadAsync(w.buf[w.bufValid:w.bufValid+space], readPos, deadline)
	if err != nil {
		// Transient (queue full): try again on the next getData call.
		return
	}
	w.havePending = true
	w.pending = tok
	w.pendingStart = readPos
	w.pendingLen = space
}

func (w *window) readAheadDeadline() time.Duration {
	if w.bitrate <= 0 {
		return 0
	}
	bufferedSeconds := float64(w.bufValid) * 8 / float64(w.bitrate)
	d := time.Duration(bufferedSeconds*float64(time.Second)) - readAheadHeadroom
	if d < 0 {
		return 0
	}
	return d
}

// source adapts a window to an io.ReadSeeker (plus Size), the shape the
// decode libraries this engine wires (go-mp3, oggvorbis, mewkiz/flac, the
// AAC reader) expect, while all the actual byte fetching still goes
// through the window's memory/async-file policy above.
type source struct {
	w   *window
	pos int64
}

func newSource(w *window) *source { return &source{w: w} }

func (s *source) Read(p []byte) (int, error) {
	data, n, err := s.w.getData(s.pos, len(p))
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	copy(p, data[:n])
	s.pos += int64(n)
	return n, nil
}

func (s *source) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = s.pos + offset
	case io.SeekEnd:
		next = s.w.total + offset
	default:
		return s.pos, io.ErrUnexpectedEOF
	}
	if next < 0 {
		next = 0
	}
	s.pos = next
	return next, nil
}

func (s *source) Size() int64 { return s.w.total }
