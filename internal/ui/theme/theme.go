package theme

import "github.com/charmbracelet/lipgloss"

// Theme bundles the styles the TUI renders with. Two palettes exist,
// catppuccin mocha for dark terminals and latte for light ones; the
// user's preference picks one at startup.
type Theme struct {
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface  lipgloss.Color
	Text     lipgloss.Color
	Subtext  lipgloss.Color
	Accent   lipgloss.Color
	Good     lipgloss.Color
	Warm     lipgloss.Color
	Water    lipgloss.Color

	App   lipgloss.Style
	Pane  lipgloss.Style
	Title lipgloss.Style
	Muted lipgloss.Style
	Hot   lipgloss.Style
	OK    lipgloss.Style
}

func Dark() Theme {
	return build(Theme{
		Base:    lipgloss.Color("#1e1e2e"),
		Mantle:  lipgloss.Color("#181825"),
		Surface: lipgloss.Color("#45475a"),
		Text:    lipgloss.Color("#cdd6f4"),
		Subtext: lipgloss.Color("#a6adc8"),
		Accent:  lipgloss.Color("#b4befe"),
		Good:    lipgloss.Color("#a6e3a1"),
		Warm:    lipgloss.Color("#fab387"),
		Water:   lipgloss.Color("#74c7ec"),
	})
}

func Light() Theme {
	return build(Theme{
		Base:    lipgloss.Color("#eff1f5"),
		Mantle:  lipgloss.Color("#e6e9ef"),
		Surface: lipgloss.Color("#bcc0cc"),
		Text:    lipgloss.Color("#4c4f69"),
		Subtext: lipgloss.Color("#6c6f85"),
		Accent:  lipgloss.Color("#7287fd"),
		Good:    lipgloss.Color("#40a02b"),
		Warm:    lipgloss.Color("#fe640b"),
		Water:   lipgloss.Color("#209fb5"),
	})
}

func build(t Theme) Theme {
	t.App = lipgloss.NewStyle().
		Background(t.Base).
		Foreground(t.Text).
		Padding(1, 2)
	t.Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Surface).
		Foreground(t.Text).
		Padding(0, 1)
	t.Title = lipgloss.NewStyle().Foreground(t.Water).Bold(true)
	t.Muted = lipgloss.NewStyle().Foreground(t.Subtext)
	t.Hot = lipgloss.NewStyle().Foreground(t.Warm).Bold(true)
	t.OK = lipgloss.NewStyle().Foreground(t.Good).Bold(true)
	return t
}
