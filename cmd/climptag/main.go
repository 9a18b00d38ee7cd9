// climptag prints or rewrites the ID3v2 tags of an MP3 file.
//
// Usage:
//
//	climptag <file.mp3>                    print title/artist/album
//	climptag <file.mp3> key=value [...]    set fields (title, artist, album)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/loopwave/mixcore/internal/tags"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: climptag <file.mp3> [title=... artist=... album=...]\n")
		os.Exit(1)
	}
	path := os.Args[1]

	meta, err := tags.Read(path)
	if err != nil && len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) == 2 {
		fmt.Printf("title:  %s\nartist: %s\nalbum:  %s\n", meta.Title, meta.Artist, meta.Album)
		return
	}

	for _, arg := range os.Args[2:] {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: expected key=value, got %q\n", arg)
			os.Exit(1)
		}
		switch strings.ToLower(key) {
		case "title":
			meta.Title = value
		case "artist":
			meta.Artist = value
		case "album":
			meta.Album = value
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown field %q (title, artist, album)\n", key)
			os.Exit(1)
		}
	}

	if err := tags.Write(path, meta); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("title:  %s\nartist: %s\nalbum:  %s\n", meta.Title, meta.Artist, meta.Album)
}
