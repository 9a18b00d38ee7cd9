// Package tags reads and writes ID3v2 metadata: best-effort, never gates
// playback.
package tags

import (
	"strings"

	"github.com/bogem/id3v2/v2"
)

// Metadata holds the subset of ID3v2 fields the engine surfaces.
type Metadata struct {
	Title  string
	Artist string
	Album  string
}

// Read parses ID3v2 tags from path. It returns an error (rather than a
// filename-derived fallback) when the file cannot be opened or parsed;
// mixcore's Sound.Metadata maps such an error to the zero Metadata.
func Read(path string) (Metadata, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return Metadata{}, err
	}
	defer tag.Close()

	return Metadata{
		Title:  strings.TrimSpace(tag.Title()),
		Artist: strings.TrimSpace(tag.Artist()),
		Album:  strings.TrimSpace(tag.Album()),
	}, nil
}

// Write rewrites path's ID3v2 title/artist/album frames in place, for
// cmd/climptag.
func Write(path string, m Metadata) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	tag.SetTitle(m.Title)
	tag.SetArtist(m.Artist)
	tag.SetAlbum(m.Album)
	return tag.Save()
}
