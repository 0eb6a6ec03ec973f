// Package tui renders the market dashboard as a Bubble Tea program for SSH sessions.
package tui

import (
	"context"
	"time"

	"market-pulse/internal/domain"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fetchTimeout           = 30 * time.Second
	defaultRefreshInterval = time.Minute
)

// DashboardSource is satisfied by *service.Market.
type DashboardSource interface {
	Dashboard(ctx context.Context) domain.Dashboard
}

type Model struct {
	source   DashboardSource
	username string
	refresh  time.Duration

	dashboard *domain.Dashboard
	updatedAt time.Time
	loading   bool
	// generation discards refresh ticks scheduled before the latest fetch.
	generation int

	width   int
	height  int
	spinner spinner.Model
}

type dashboardMsg struct {
	dashboard domain.Dashboard
	at        time.Time
}

type refreshMsg struct{ generation int }

func NewModel(source DashboardSource, username string, refresh time.Duration) Model {
	if refresh <= 0 {
		refresh = defaultRefreshInterval
	}
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = dimStyle

	return Model{
		source:   source,
		username: username,
		refresh:  refresh,
		loading:  true,
		width:    100,
		height:   40,
		spinner:  sp,
	}
}

// SetSize seeds the terminal dimensions before the first WindowSizeMsg arrives.
func (m *Model) SetSize(width, height int) {
	if width > 0 {
		m.width = width
	}
	if height > 0 {
		m.height = height
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchDashboard(m.source))
}

func fetchDashboard(source DashboardSource) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return dashboardMsg{dashboard: source.Dashboard(ctx), at: time.Now()}
	}
}

func scheduleRefresh(every time.Duration, generation int) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return refreshMsg{generation: generation}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Refresh):
			if !m.loading {
				m.loading = true
				return m, tea.Batch(m.spinner.Tick, fetchDashboard(m.source))
			}
		}

	case refreshMsg:
		if m.loading || msg.generation != m.generation {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, fetchDashboard(m.source))

	case dashboardMsg:
		d := msg.dashboard
		m.dashboard = &d
		m.updatedAt = msg.at
		m.loading = false
		m.generation++
		return m, scheduleRefresh(m.refresh, m.generation)

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}
