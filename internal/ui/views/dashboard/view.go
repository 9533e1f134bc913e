package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"aqualog/internal/modules/tracker/dto"
	"aqualog/internal/ui/components"
	"aqualog/internal/ui/theme"
)

// Model renders the single dashboard screen: today's progress, the
// streak, the recent-days sparkline, and the morning/afternoon/evening
// split. It holds no business logic; the app model feeds it data.
type Model struct {
	th      theme.Theme
	bar     progress.Model
	status  dto.StatusOutput
	chart   []dto.ChartPointOutput
	streak  dto.StreakOutput
	width   int
	hasData bool
}

func New(th theme.Theme) Model {
	bar := progress.New(
		progress.WithSolidFill(string(th.Water)),
		progress.WithoutPercentage(),
	)
	return Model{th: th, bar: bar}
}

func (m *Model) SetSize(width int) {
	m.width = width
	barWidth := width - 12
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 60 {
		barWidth = 60
	}
	m.bar.Width = barWidth
}

func (m *Model) SetData(status dto.StatusOutput, chart []dto.ChartPointOutput, streak dto.StreakOutput) {
	m.status = status
	m.chart = chart
	m.streak = streak
	m.hasData = true
}

func (m Model) View() string {
	if !m.hasData {
		return m.th.Muted.Render("loading…")
	}

	sections := []string{
		m.todayPane(),
		m.trendPane(),
		m.periodsPane(),
		m.quickAddHint(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) todayPane() string {
	s := m.status
	amount := fmt.Sprintf("%s / %s %s",
		formatAmount(s.TodayIntake), formatAmount(s.Goal), s.DisplayUnit)

	header := m.th.Title.Render("Today "+s.DateKey) + "  " + amount
	if s.GoalReached {
		header += "  " + m.th.OK.Render("goal reached")
	}

	bar := m.bar.ViewAs(s.Progress)
	percent := m.th.Muted.Render(fmt.Sprintf(" %3.0f%%", s.Progress*100))

	detail := m.th.Muted.Render(fmt.Sprintf(
		"remaining %s %s · %d entries", formatAmount(s.Remaining), s.DisplayUnit, s.EntryCount))

	return m.th.Pane.Width(m.paneWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, bar+percent, detail))
}

func (m Model) trendPane() string {
	values := make([]float64, 0, len(m.chart))
	for _, p := range m.chart {
		values = append(values, p.Intake)
	}
	spark := components.Sparkline(values, m.status.Goal)

	streakLine := fmt.Sprintf("streak %d", m.streak.Current)
	if m.streak.Longest > m.streak.Current {
		streakLine += m.th.Muted.Render(fmt.Sprintf("  (best %d)", m.streak.Longest))
	}

	return m.th.Pane.Width(m.paneWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.th.Title.Render(fmt.Sprintf("Last %d days", len(m.chart))),
			spark,
			m.th.Hot.Render(streakLine)))
}

func (m Model) periodsPane() string {
	s := m.status
	row := strings.Join([]string{
		"morning " + formatAmount(s.Morning),
		"afternoon " + formatAmount(s.Afternoon),
		"evening " + formatAmount(s.Evening),
	}, m.th.Muted.Render("  │  "))
	return m.th.Pane.Width(m.paneWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, m.th.Title.Render("Periods"), row))
}

func (m Model) quickAddHint() string {
	parts := make([]string, 0, len(m.status.QuickAdds))
	for i, amount := range m.status.QuickAdds {
		parts = append(parts, fmt.Sprintf("%d:%s", i+1, formatAmount(amount)))
	}
	return m.th.Muted.Render("add " + strings.Join(parts, " ") + " " + m.status.DisplayUnit)
}

func (m Model) paneWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// formatAmount drops the decimals integers do not need; fractional
// amounts (bottle counts) keep two.
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
