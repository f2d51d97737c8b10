package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/flowlab/internal/integrators"
	"github.com/san-kum/flowlab/internal/vortex"
)

func pairModel() Model {
	motion, x0 := vortex.NewMotion([]vortex.PointVortex{
		{X: 0, Y: 0.25, Gamma: 1},
		{X: 0, Y: -0.25, Gamma: -1},
	})
	return NewModel(motion, integrators.NewRK4(), x0, 0.01, 1.0, 30)
}

func TestTickAdvancesTime(t *testing.T) {
	m := pairModel()

	next, _ := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.t == 0 {
		t.Error("tick should advance time")
	}
	if len(m.trails[0]) != 1 {
		t.Errorf("expected one trail point, got %d", len(m.trails[0]))
	}
}

func TestPauseAndStepKeys(t *testing.T) {
	m := pairModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if m.running {
		t.Error("space should pause")
	}

	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.t != 0 {
		t.Error("paused tick should not advance time")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = next.(Model)
	if m.t == 0 {
		t.Error("s should single-step while paused")
	}
}

func TestResetKey(t *testing.T) {
	m := pairModel()
	for i := 0; i < 10; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(Model)
	if m.t != 0 {
		t.Error("r should reset time")
	}
	if len(m.trails[0]) != 0 {
		t.Error("r should clear trails")
	}
}

func TestViewRendersReadouts(t *testing.T) {
	m := pairModel()
	next, _ := m.Update(TickMsg(time.Now()))
	m = next.(Model)

	view := m.View()
	for _, want := range []string{"POINT VORTICES", "Circulation", "Impulse"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
