package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/flowlab/internal/dynamo"
	"github.com/san-kum/flowlab/internal/viz"
	"github.com/san-kum/flowlab/internal/vortex"
)

const (
	canvasWidth     = 64
	canvasHeight    = 24
	trailCapacity   = 400
	historyCapacity = 300
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives a live point-vortex run: tick-stepped integration, trails on
// a braille canvas, and conservation readouts.
type Model struct {
	motion     *vortex.Motion
	integrator dynamo.Integrator
	state      dynamo.State
	initial    dynamo.State
	t, dt      float64
	extent     float64
	fps        int
	running    bool

	canvas    *viz.Canvas
	trails    [][]point
	driftHist []float64
	h0        float64
}

type point struct{ x, y float64 }

func NewModel(motion *vortex.Motion, integ dynamo.Integrator, x0 dynamo.State, dt, extent float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	n := len(x0) / 2
	return Model{
		motion:     motion,
		integrator: integ,
		state:      x0.Clone(),
		initial:    x0.Clone(),
		dt:         dt,
		extent:     extent,
		fps:        fps,
		running:    true,
		canvas:     viz.NewCanvas(canvasWidth, canvasHeight),
		trails:     make([][]point, n),
		driftHist:  make([]float64, 0, historyCapacity),
		h0:         motion.Invariant(x0),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "s":
			if !m.running {
				m.step()
			}
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances one timestep and records trails and invariant drift.
func (m *Model) step() {
	m.state = m.integrator.Step(m.motion, m.state, m.t, m.dt)
	m.t += m.dt

	for i := range m.trails {
		m.trails[i] = append(m.trails[i], point{m.state[2*i], m.state[2*i+1]})
		if len(m.trails[i]) > trailCapacity {
			m.trails[i] = m.trails[i][1:]
		}
	}

	drift := 0.0
	if m.h0 != 0 {
		drift = math.Abs(m.motion.Invariant(m.state)-m.h0) / math.Abs(m.h0)
	}
	m.driftHist = append(m.driftHist, drift)
	if len(m.driftHist) > historyCapacity {
		m.driftHist = m.driftHist[1:]
	}
}

func (m *Model) reset() {
	m.t = 0
	m.state = m.initial.Clone()
	for i := range m.trails {
		m.trails[i] = m.trails[i][:0]
	}
	m.driftHist = m.driftHist[:0]
	m.h0 = m.motion.Invariant(m.state)
}

func (m *Model) draw() {
	m.canvas.Clear()
	proj := viz.NewProjection(m.canvas, -m.extent, -m.extent, m.extent, m.extent)
	for i, trail := range m.trails {
		for _, p := range trail {
			px, py := proj.ToCanvas(p.x, p.y)
			m.canvas.Set(px, py)
		}
		viz.DrawMarker(m.canvas, proj, m.state[2*i], m.state[2*i+1])
	}
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("POINT VORTICES") + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if len(m.driftHist) > 1 {
		chart := asciigraph.Plot(m.driftHist,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("invariant drift"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	px, py := m.motion.Impulse(m.state)
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Vortices") + valueStyle.Render(fmt.Sprintf("%d", len(m.trails))) + "\n")
	s.WriteString(labelStyle.Render("Circulation") + valueStyle.Render(fmt.Sprintf("%.4f", m.motion.Circulation())) + "\n")
	s.WriteString(labelStyle.Render("Impulse") + valueStyle.Render(fmt.Sprintf("(%.4f, %.4f)", px, py)) + "\n")
	s.WriteString(labelStyle.Render("H") + valueStyle.Render(fmt.Sprintf("%.6f", m.motion.Invariant(m.state))) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause S:Step R:Reset Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
