package soundpool

import (
	"time"

	"github.com/loopwave/mixcore/internal/iosrc"
)

// offsetFile presents the [offset, offset+length) sub-range of an
// underlying file as an independent zero-based iosrc.File, backing
// Sound's File{handle, offset, len} source variant.
type offsetFile struct {
	inner  iosrc.File
	offset int64
	length int64
}

func newOffsetFile(inner iosrc.File, offset, length int64) *offsetFile {
	return &offsetFile{inner: inner, offset: offset, length: length}
}

func (f *offsetFile) clamp(pos int64, n int) int {
	if pos < 0 || pos >= f.length {
		return 0
	}
	if pos+int64(n) > f.length {
		n = int(f.length - pos)
	}
	return n
}

func (f *offsetFile) ReadAt(buf []byte, pos int64) (int, error) {
	n := f.clamp(pos, len(buf))
	if n <= 0 {
		return 0, nil
	}
	return f.inner.ReadAt(buf[:n], f.offset+pos)
}

func (f *offsetFile) ReadAsync(buf []byte, pos int64, deadline time.Duration) (iosrc.AsyncToken, error) {
	n := f.clamp(pos, len(buf))
	return f.inner.ReadAsync(buf[:n], f.offset+pos, deadline)
}

func (f *offsetFile) Wait(token iosrc.AsyncToken) (int, error) {
	return f.inner.Wait(token)
}

func (f *offsetFile) Poll(token iosrc.AsyncToken) (bool, int, error) {
	return f.inner.Poll(token)
}

func (f *offsetFile) Abort(token iosrc.AsyncToken) { f.inner.Abort(token) }

func (f *offsetFile) Size() int64 { return f.length }

func (f *offsetFile) Dup() (iosrc.File, error) {
	dup, err := f.inner.Dup()
	if err != nil {
		return nil, err
	}
	return &offsetFile{inner: dup, offset: f.offset, length: f.length}, nil
}

func (f *offsetFile) Close() error { return f.inner.Close() }
