package terminal

import "github.com/charmbracelet/lipgloss"

var (
	base     = lipgloss.Color("#1e1e2e")
	surface1 = lipgloss.Color("#45475a")
	text     = lipgloss.Color("#cdd6f4")
	subtext0 = lipgloss.Color("#a6adc8")
	lavender = lipgloss.Color("#b4befe")
	sapphire = lipgloss.Color("#74c7ec")
	peach    = lipgloss.Color("#fab387")

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lavender).
			Background(base).
			Foreground(text).
			Padding(1, 4)

	// Countdown digit styles by fade level.
	digitFaint  = lipgloss.NewStyle().Foreground(surface1).Bold(true)
	digitFading = lipgloss.NewStyle().Foreground(subtext0).Bold(true)
	digitSolid  = lipgloss.NewStyle().Foreground(peach).Bold(true)

	clockStyle  = lipgloss.NewStyle().Foreground(sapphire).Bold(true)
	centisStyle = lipgloss.NewStyle().Foreground(subtext0)
	mutedStyle  = lipgloss.NewStyle().Foreground(subtext0)
	pausedStyle = lipgloss.NewStyle().Foreground(peach)
)
