// climpdemo plays one audio file (WAV, MP3, Ogg Vorbis, FLAC, or AAC)
// through the mixcore engine with interactive pause, volume, pan, speed,
// and flange controls, plus a live VU meter of the mixed output.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loopwave/mixcore"
	"github.com/loopwave/mixcore/internal/visualizer"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: climpdemo <file>\n")
		os.Exit(1)
	}
	path := os.Args[1]

	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: %s is a directory\n", path)
		os.Exit(1)
	}

	// The tap runs on the audio callback goroutine; the ring buffer
	// decouples it from the UI's own redraw cadence.
	rb := visualizer.NewRingBuffer(1 << 16)
	tap := func(samples []int16) {
		raw := make([]byte, len(samples)*2)
		for i, s := range samples {
			raw[i*2] = byte(s)
			raw[i*2+1] = byte(uint16(s) >> 8)
		}
		rb.Write(raw)
	}

	eng := mixcore.New()
	if err := eng.OpenDevice(mixcore.OpenOptions{
		Interpolate: true,
		OutputTap:   tap,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening audio device: %v\n", err)
		os.Exit(1)
	}
	defer eng.Cleanup()

	snd, err := eng.NewSoundStream(path, 0, 0, mixcore.FormatAutodetect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer snd.Destroy()

	ch := eng.ReserveChannel()
	if ch == 0 {
		fmt.Fprintf(os.Stderr, "Error: no playback channel available\n")
		os.Exit(1)
	}
	if eng.Play(snd, ch, 1.0, 0, false) == 0 {
		fmt.Fprintf(os.Stderr, "Error: could not start playback\n")
		os.Exit(1)
	}

	m := newModel(eng, snd, ch, path, rb)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
