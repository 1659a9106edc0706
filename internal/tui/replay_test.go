package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/trajsim/internal/analysis"
	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/sim"
)

func newTestModel(t *testing.T, steps int) Model {
	t.Helper()

	x0 := dynamo.State{
		Pos: dynamo.Position{X: 0, Y: 10},
		Vel: dynamo.Velocity{X: 0.5, Y: 4},
	}
	result, err := sim.New().Run(x0, dynamo.Config{Dt: 0.01, Steps: steps})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	ref := analysis.ReferenceAt(x0.Pos, x0.Vel, result.Times)
	return NewModel("test", result, ref, 30)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestReplayTickAdvances(t *testing.T) {
	m := newTestModel(t, 20)

	m, cmd := update(t, m, tickMsg(time.Now()))
	if m.Index != 1 {
		t.Errorf("expected index 1, got %d", m.Index)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	m, _ = update(t, m, key("+"))
	m, _ = update(t, m, key("+"))
	if m.Speed != 4 {
		t.Errorf("expected speed 4, got %d", m.Speed)
	}

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, tickMsg(time.Now()))
	}
	if m.Index != 19 {
		t.Errorf("expected to stop at last sample, got %d", m.Index)
	}
	if m.Playing {
		t.Error("replay should pause at the end")
	}
}

func TestReplayPauseAndStep(t *testing.T) {
	m := newTestModel(t, 10)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Playing {
		t.Fatal("space should pause")
	}

	m, _ = update(t, m, tickMsg(time.Now()))
	if m.Index != 0 {
		t.Errorf("paused replay should not advance, got %d", m.Index)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Index != 1 {
		t.Errorf("expected index 1 after stepping, got %d", m.Index)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Index != 0 {
		t.Errorf("index should clamp at 0, got %d", m.Index)
	}

	m, _ = update(t, m, key("r"))
	if !m.Playing || m.Index != 0 {
		t.Errorf("restart should rewind and play: index=%d playing=%v", m.Index, m.Playing)
	}
}

func TestReplaySpeedBounds(t *testing.T) {
	m := newTestModel(t, 5)

	m, _ = update(t, m, key("-"))
	if m.Speed != 1 {
		t.Errorf("speed should not drop below 1, got %d", m.Speed)
	}
	for i := 0; i < 20; i++ {
		m, _ = update(t, m, key("+"))
	}
	if m.Speed != maxSpeed {
		t.Errorf("speed should cap at %d, got %d", maxSpeed, m.Speed)
	}
}

func TestReplayQuit(t *testing.T) {
	m := newTestModel(t, 5)

	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestReplayResize(t *testing.T) {
	m := newTestModel(t, 5)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 88 || m.height != 30 {
		t.Errorf("unexpected size %dx%d", m.width, m.height)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 5, Height: 5})
	if m.width != minWidth || m.height != minHeight {
		t.Errorf("size should clamp to minimum, got %dx%d", m.width, m.height)
	}
}

func TestReplayView(t *testing.T) {
	m := newTestModel(t, 30)
	m, _ = update(t, m, tickMsg(time.Now()))

	view := m.View()
	for _, want := range []string{"trajsim replay: test", "step", "1/29", "euler", "exact", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestReplayViewEmpty(t *testing.T) {
	m := NewModel("empty", &dynamo.Result{}, nil, 0)
	if m.View() != "no samples\n" {
		t.Errorf("unexpected view for empty run: %q", m.View())
	}
}
