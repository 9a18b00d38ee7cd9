package tags

import "testing"

func TestReadMissingFileReturnsError(t *testing.T) {
	if _, err := Read("/nonexistent/path/does-not-exist.mp3"); err == nil {
		t.Fatal("expected error reading a nonexistent file")
	}
}

func TestWriteMissingFileReturnsError(t *testing.T) {
	err := Write("/nonexistent/path/does-not-exist.mp3", Metadata{Title: "x"})
	if err == nil {
		t.Fatal("expected error writing a nonexistent file")
	}
}
