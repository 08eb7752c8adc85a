// Package tui is the bubbletea live view: the simulation advances in
// real time with an energy chart, a phase portrait, and a stats panel.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/hamlab/internal/hamilton"
	"github.com/san-kum/hamlab/internal/viz"
)

const (
	portraitWidth  = 44
	portraitHeight = 14
	graphHeight    = 8
	historyCap     = 1200
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

type tickMsg time.Time

// Model drives one system in real time.
type Model struct {
	title      string
	sys        hamilton.System
	integrator hamilton.Integrator
	state      hamilton.State
	initial    hamilton.State
	t, dt      float64
	stepsPerTick int
	fps        int

	history  []hamilton.State
	energies []float64
	paused   bool
}

func NewModel(title string, sys hamilton.System, integ hamilton.Integrator, x0 hamilton.State, dt float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	// Real-time pacing: advance sim time at roughly wall speed.
	steps := int(1.0 / (dt * float64(fps)))
	if steps < 1 {
		steps = 1
	}
	return Model{
		title:        title,
		sys:          sys,
		integrator:   integ,
		state:        x0.Clone(),
		initial:      x0.Clone(),
		dt:           dt,
		stepsPerTick: steps,
		fps:          fps,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.state = m.initial.Clone()
			m.t = 0
			m.history = nil
			m.energies = nil
		}
		return m, nil

	case tickMsg:
		if !m.paused {
			for i := 0; i < m.stepsPerTick; i++ {
				m.state = m.integrator.Step(m.sys, m.state, m.t, m.dt)
				m.t += m.dt
				if !m.state.IsValid() {
					m.paused = true
					break
				}
			}
			m.history = append(m.history, m.state.Clone())
			if len(m.history) > historyCap {
				m.history = m.history[1:]
			}
			if h, ok := m.sys.(hamilton.Hamiltonian); ok {
				m.energies = append(m.energies, h.Energy(m.state))
				if len(m.energies) > historyCap {
					m.energies = m.energies[1:]
				}
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("hamlab live — %s", m.title))

	states := make([][]float64, len(m.history))
	for i, s := range m.history {
		states[i] = s
	}
	portrait := viz.PhasePortrait(states, 0, len(m.state)/2, portraitWidth, portraitHeight)

	stats := m.statsPanel()
	body := lipgloss.JoinHorizontal(lipgloss.Top, portrait, statsStyle.Render(stats))

	var graph string
	if len(m.energies) > 1 {
		graph = graphStyle.Render(viz.EnergyPlot(m.energies, 2*portraitWidth, graphHeight))
	}

	help := helpStyle.Render("space pause · r reset · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, graph, help)
}

func (m Model) statsPanel() string {
	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	lines := []string{
		row("t", fmt.Sprintf("%.2f s", m.t)),
	}
	if h, ok := m.sys.(hamilton.Hamiltonian); ok {
		lines = append(lines, row("energy", fmt.Sprintf("%.6f", h.Energy(m.state))))
	}
	for i := 0; i < len(m.state) && i < 6; i++ {
		lines = append(lines, row(fmt.Sprintf("x[%d]", i), fmt.Sprintf("%+.4f", m.state[i])))
	}
	if m.paused {
		lines = append(lines, pausedStyle.Render("PAUSED"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Run starts the live view and blocks until the user quits.
func Run(title string, sys hamilton.System, integ hamilton.Integrator, x0 hamilton.State, dt float64, fps int) error {
	p := tea.NewProgram(NewModel(title, sys, integ, x0, dt, fps))
	_, err := p.Run()
	return err
}
