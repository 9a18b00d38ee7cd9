package decoder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/loopwave/mixcore/internal/iosrc"
)

func TestWindowMemoryGetData(t *testing.T) {
	w := newMemoryWindow([]byte("0123456789"))
	data, n, err := w.getData(3, 4)
	if err != nil {
		t.Fatalf("getData: %v", err)
	}
	if string(data[:n]) != "3456" {
		t.Fatalf("getData = %q, want %q", data[:n], "3456")
	}
}

func TestWindowMemoryShortReadAtEnd(t *testing.T) {
	w := newMemoryWindow([]byte("abc"))
	data, n, err := w.getData(1, 10)
	if err != nil {
		t.Fatalf("getData: %v", err)
	}
	if string(data[:n]) != "bc" {
		t.Fatalf("getData = %q, want %q", data[:n], "bc")
	}
}

func TestWindowSourceReadSeek(t *testing.T) {
	w := newMemoryWindow([]byte("hello world"))
	s := newSource(w)

	buf := make([]byte, 5)
	n, err := s.Read(buf)
	if err != nil || n != 5 || string(buf) != "hello" {
		t.Fatalf("Read = %q, %d, %v", buf, n, err)
	}

	if _, err := s.Seek(6, 0); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	n, err = s.Read(buf)
	if err != nil || string(buf[:n]) != "world" {
		t.Fatalf("Read after seek = %q, %v", buf[:n], err)
	}

	if s.Size() != int64(len("hello world")) {
		t.Fatalf("Size = %d", s.Size())
	}
}

func TestWindowFileGetDataAcrossCompaction(t *testing.T) {
	data := make([]byte, windowBufSize*2)
	for i := range data {
		data[i] = byte(i)
	}
	path := filepath.Join(t.TempDir(), "stream.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := iosrc.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	w := newFileWindow(f, int64(len(data)), 0)

	got, n, err := w.getData(0, 100)
	if err != nil {
		t.Fatalf("getData: %v", err)
	}
	if n != 100 {
		t.Fatalf("n = %d, want 100", n)
	}
	for i := 0; i < n; i++ {
		if got[i] != data[i] {
			t.Fatalf("byte %d = %d, want %d", i, got[i], data[i])
		}
	}

	// A request past the first internal buffer forces a refill/compaction;
	// the bytes returned must still match the source file exactly.
	farPos := int64(windowBufSize + 500)
	got, n, err = w.getData(farPos, 50)
	if err != nil {
		t.Fatalf("getData far: %v", err)
	}
	if n != 50 {
		t.Fatalf("n = %d, want 50", n)
	}
	for i := 0; i < n; i++ {
		if got[i] != data[farPos+int64(i)] {
			t.Fatalf("byte %d = %d, want %d", i, got[i], data[farPos+int64(i)])
		}
	}
}

func TestWindowFileShortReadAtEnd(t *testing.T) {
	data := []byte("tail of the stream")
	path := filepath.Join(t.TempDir(), "small.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := iosrc.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	w := newFileWindow(f, int64(len(data)), 0)
	got, n, err := w.getData(10, 100)
	if err != nil {
		t.Fatalf("getData: %v", err)
	}
	if string(got[:n]) != "e stream" {
		t.Fatalf("getData = %q, want %q", got[:n], "e stream")
	}
}
