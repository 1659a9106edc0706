package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/viz"
)

const (
	defaultWidth  = 60
	defaultHeight = 16
	minWidth      = 20
	minHeight     = 6
	maxSpeed      = 64
)

type tickMsg time.Time

// Model replays a computed trajectory against the exact one, advancing
// Speed samples per tick.
type Model struct {
	name      string
	numeric   dynamo.Trajectory
	reference dynamo.Trajectory
	times     []float64
	interval  time.Duration

	Index   int
	Speed   int
	Playing bool

	width, height int
	plot          *viz.Plot
}

// NewModel replays result. reference must hold the exact position at each
// of result.Times.
func NewModel(name string, result *dynamo.Result, reference dynamo.Trajectory, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	m := Model{
		name:      name,
		numeric:   result.Positions,
		reference: reference,
		times:     result.Times,
		interval:  time.Second / time.Duration(fps),
		Speed:     1,
		Playing:   true,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.plot = viz.NewPlot(m.width, m.height, m.numeric, m.reference)
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) last() int {
	return max(len(m.numeric)-1, 0)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.Index >= m.last() {
				m.Index = 0
			}
			m.Playing = !m.Playing
		case "+", "=":
			m.Speed = min(m.Speed*2, maxSpeed)
		case "-", "_":
			m.Speed = max(m.Speed/2, 1)
		case "r":
			m.Index = 0
			m.Playing = true
		case "right", "l":
			m.Playing = false
			m.Index = min(m.Index+1, m.last())
		case "left", "h":
			m.Playing = false
			m.Index = max(m.Index-1, 0)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = max(msg.Width-12, minWidth)
		m.height = max(msg.Height-10, minHeight)
		m.plot = viz.NewPlot(m.width, m.height, m.numeric, m.reference)
		return m, nil

	case tickMsg:
		if m.Playing {
			m.Index += m.Speed
			if m.Index >= m.last() {
				m.Index = m.last()
				m.Playing = false
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	if len(m.numeric) == 0 {
		return "no samples\n"
	}

	var b strings.Builder

	b.WriteString(viz.HeaderStyle.Render(fmt.Sprintf("trajsim replay: %s", m.name)))
	b.WriteString("\n\n")

	cur := m.numeric[m.Index]
	b.WriteString(m.plot.Render(m.numeric[:m.Index+1], m.reference, &cur))
	b.WriteString("\n")

	status := viz.StatusPaused.Render("paused")
	if m.Playing {
		status = viz.StatusRunning.Render("playing")
	}

	t := 0.0
	if m.Index < len(m.times) {
		t = m.times[m.Index]
	}
	errStr := "-"
	if m.Index < len(m.reference) {
		ref := m.reference[m.Index]
		errStr = fmt.Sprintf("%.6f m", cur.Vec().Sub(ref.Vec()).Norm())
	}

	progress := 1.0
	if m.last() > 0 {
		progress = float64(m.Index) / float64(m.last())
	}

	fmt.Fprintf(&b, "%s  %s  %s  %s\n",
		status,
		viz.Metric("t", fmt.Sprintf("%.3f s", t)),
		viz.Metric("step", fmt.Sprintf("%d/%d", m.Index, m.last())),
		viz.Metric("speed", fmt.Sprintf("%dx", m.Speed)),
	)
	fmt.Fprintf(&b, "%s  %s\n",
		viz.Metric("pos", cur.String()),
		viz.Metric("error", errStr),
	)
	b.WriteString(viz.ProgressBar(progress, m.width) + "\n\n")
	b.WriteString(viz.KeyHint.Render("space pause  +/- speed  ←/→ step  r restart  q quit"))
	b.WriteString("\n")

	return b.String()
}

// Run starts the replay in the terminal and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
