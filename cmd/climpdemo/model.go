package main

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/loopwave/mixcore"
	"github.com/loopwave/mixcore/internal/visualizer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	artistStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#AAAAAA"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)

// speedMode cycles the playback-rate factor: 1x → 2x → 0.5x → 1x.
type speedMode int

const (
	speed1x speedMode = iota
	speed2x
	speedHalf
)

func (s speedMode) next() speedMode {
	switch s {
	case speed1x:
		return speed2x
	case speed2x:
		return speedHalf
	default:
		return speed1x
	}
}

func (s speedMode) factor() float64 {
	switch s {
	case speed2x:
		return 2.0
	case speedHalf:
		return 0.5
	default:
		return 1.0
	}
}

func (s speedMode) label() string {
	switch s {
	case speed2x:
		return "2x"
	case speedHalf:
		return "0.5x"
	default:
		return "1x"
	}
}

type tickMsg time.Time
type vizTickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func vizTick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return vizTickMsg(t) })
}

const vizHeight = 4

// model is the Bubbletea model for the climpdemo TUI.
type model struct {
	eng  *mixcore.Engine
	snd  *mixcore.Sound
	ch   int
	meta mixcore.Metadata
	name string

	rb  *visualizer.RingBuffer
	viz visualizer.Visualizer

	paused bool
	volume float64
	pan    float64
	speed  speedMode
	flange bool
	loop   bool
	done   bool

	// The displayed volume chases the real one on a spring, so a +/-
	// tap reads as a slide instead of a jump.
	shownVolume float64
	volVelocity float64
	spring      harmonica.Spring

	elapsed  float64
	width    int
	height   int
	keys     keyMap
	help     help.Model
	quitting bool
}

func newModel(eng *mixcore.Engine, snd *mixcore.Sound, ch int, path string, rb *visualizer.RingBuffer) *model {
	meta := snd.Metadata()
	name := meta.Title
	if name == "" {
		name = filepath.Base(path)
	}
	return &model{
		eng:         eng,
		snd:         snd,
		ch:          ch,
		meta:        meta,
		name:        name,
		rb:          rb,
		viz:         visualizer.NewVUMeter(),
		volume:      1.0,
		shownVolume: 1.0,
		spring:      harmonica.NewSpring(harmonica.FPS(10), 7.0, 0.8),
		keys:        newKeyMap(),
		help:        help.New(),
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(tick(), vizTick())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		m.eng.Update()
		if !m.eng.IsPlaying(m.ch) {
			m.done = true
		} else {
			m.elapsed = m.eng.PlaybackPos(m.ch)
		}
		m.shownVolume, m.volVelocity = m.spring.Update(m.shownVolume, m.volVelocity, m.volume)
		return m, tick()

	case vizTickMsg:
		width := m.width
		if width <= 0 {
			width = 80
		}
		m.viz.Update(m.latestSamples(), width, vizHeight)
		return m, vizTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	switch msg.String() {
	case " ":
		if m.paused {
			m.eng.Resume(m.ch)
		} else {
			m.eng.Pause(m.ch)
		}
		m.paused = !m.paused
	case "+", "=":
		m.volume = clamp(m.volume+0.1, 0, 2)
		m.eng.AdjustVolume(m.ch, m.volume, 0.1)
	case "-":
		m.volume = clamp(m.volume-0.1, 0, 2)
		m.eng.AdjustVolume(m.ch, m.volume, 0.1)
	case "left":
		m.pan = clamp(m.pan-0.25, -1, 1)
		m.eng.SetPan(m.ch, m.pan)
	case "right":
		m.pan = clamp(m.pan+0.25, -1, 1)
		m.eng.SetPan(m.ch, m.pan)
	case "x":
		m.speed = m.speed.next()
		m.eng.SetPlaybackRate(m.ch, m.speed.factor())
	case "f":
		m.flange = !m.flange
		m.eng.SetFlange(m.ch, m.flange, 0.2, 0.003)
	case "r":
		m.loop = !m.loop
		m.eng.EnableLoop(m.ch, m.loop)
	case "?":
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// latestSamples drains the freshest PCM from the tap's ring buffer for
// the visualizer.
func (m *model) latestSamples() []int16 {
	raw := m.rb.Read(4096)
	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}
	return samples
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render(m.name))
	if m.meta.Artist != "" {
		b.WriteString("\n  ")
		b.WriteString(artistStyle.Render(m.meta.Artist))
	}
	b.WriteString("\n\n")

	b.WriteString(m.viz.View())
	b.WriteString("\n\n  ")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("  " + m.help.View(m.keys)))
	return b.String()
}

func (m *model) statusLine() string {
	state := "playing"
	switch {
	case m.done:
		state = "finished"
	case m.paused:
		state = "paused"
	}

	var flags []string
	if m.flange {
		flags = append(flags, "flange")
	}
	if m.loop {
		flags = append(flags, "loop")
	}
	suffix := ""
	if len(flags) > 0 {
		suffix = "  [" + strings.Join(flags, " ") + "]"
	}

	return fmt.Sprintf("%s  %s  vol %d%%  pan %+.2f  %s%s",
		formatTime(m.elapsed), state, int(m.shownVolume*100), m.pan, m.speed.label(), suffix)
}

func formatTime(seconds float64) string {
	t := int(seconds)
	return fmt.Sprintf("%d:%02d", t/60, t%60)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
