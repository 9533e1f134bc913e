package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"aqualog/internal/modules/tracker/dto"
	"aqualog/internal/ui/theme"
	"aqualog/internal/ui/views/dashboard"
)

const chartDays = 7

// trackerPort is the minimal surface this model needs. The CLI handler
// satisfies it.
type trackerPort interface {
	Drink(ctx context.Context, amount float64) (dto.StatusOutput, error)
	Undo(ctx context.Context) (dto.UndoOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	Chart(ctx context.Context, days int) ([]dto.ChartPointOutput, error)
	Streak(ctx context.Context) (dto.StreakOutput, error)
}

// ─── async messages ───────────────────────────────────────────────────────────

type dashboardLoadedMsg struct {
	status dto.StatusOutput
	chart  []dto.ChartPointOutput
	streak dto.StreakOutput
	err    error
}

type intakeAddedMsg struct {
	amount float64
	err    error
}

type undoneMsg struct {
	out dto.UndoOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	QuickAdd key.Binding
	Undo     key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		QuickAdd: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "quick add")),
		Undo:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo last")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.QuickAdd, k.Undo, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.QuickAdd, k.Undo},
		{k.Refresh, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It routes keys, loads dashboard
// data through the tracker port, and delegates rendering to the
// dashboard view.
type Model struct {
	tracker trackerPort
	th      theme.Theme

	dash      dashboard.Model
	quickAdds []float64

	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	width    int
	height   int
}

func NewModel(tracker trackerPort, darkMode bool) Model {
	th := theme.Dark()
	if !darkMode {
		th = theme.Light()
	}
	return Model{
		tracker: tracker,
		th:      th,
		dash:    dashboard.New(th),
		keys:    defaultKeys(),
		help:    help.New(),
		status:  "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.dash.SetSize(msg.Width)

	case dashboardLoadedMsg:
		if msg.err != nil {
			m.status = "load failed: " + msg.err.Error()
			return m, nil
		}
		m.quickAdds = msg.status.QuickAdds
		m.dash.SetData(msg.status, msg.chart, msg.streak)
		if msg.status.GoalReached {
			m.status = "goal reached"
		}

	case intakeAddedMsg:
		if msg.err != nil {
			m.status = "add failed: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("added %g", msg.amount)
		return m, m.loadCmd()

	case undoneMsg:
		if msg.err != nil {
			m.status = "undo failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.out.Undone {
			m.status = "nothing to undo"
			return m, nil
		}
		m.status = fmt.Sprintf("undid %g", msg.out.Amount)
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
		case key.Matches(msg, m.keys.Refresh):
			m.status = "refreshing"
			return m, m.loadCmd()
		case key.Matches(msg, m.keys.Undo):
			return m, m.undoCmd()
		case key.Matches(msg, m.keys.QuickAdd):
			idx := int(msg.String()[0] - '1')
			if idx >= 0 && idx < len(m.quickAdds) {
				return m, m.drinkCmd(m.quickAdds[idx])
			}
		}
	}

	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	} else {
		content = m.dash.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := m.th.Muted.Render("1-4:add  u:undo  r:refresh  ?:help  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + lipgloss.NewStyle().Width(gap).Render("") + right
	return "\n" + lipgloss.NewStyle().Background(m.th.Mantle).Width(m.width).Render(bar)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		status, err := m.tracker.Status(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		chart, err := m.tracker.Chart(ctx, chartDays)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		streak, err := m.tracker.Streak(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{status: status, chart: chart, streak: streak}
	}
}

func (m Model) drinkCmd(amount float64) tea.Cmd {
	return func() tea.Msg {
		_, err := m.tracker.Drink(context.Background(), amount)
		return intakeAddedMsg{amount: amount, err: err}
	}
}

func (m Model) undoCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.tracker.Undo(context.Background())
		return undoneMsg{out: out, err: err}
	}
}
