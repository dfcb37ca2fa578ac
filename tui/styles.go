package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPink     = lipgloss.Color("#ff6b9d")
	ColorRose     = lipgloss.Color("#c44569")
	ColorLavender = lipgloss.Color("#a29bfe")
	ColorMuted    = lipgloss.Color("#888888")
	ColorText     = lipgloss.Color("#eeeeee")
)

var (
	BorderHero = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPink).
			Padding(0, 1)

	HeroTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPink)
	HeroNumberStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	HeroLabelStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	HeroTaglineStyle = lipgloss.NewStyle().Italic(true).Foreground(ColorLavender)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1)

	NoteItemStyle     = lipgloss.NewStyle().Foreground(ColorText)
	NoteSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPink)
	NoteDateStyle     = lipgloss.NewStyle().Foreground(ColorMuted)

	ChartBarStyle   = lipgloss.NewStyle().Foreground(ColorPink)
	ChartLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ChartCountStyle = lipgloss.NewStyle().Foreground(ColorText)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPink).
			Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPink)

	FooterStyle  = lipgloss.NewStyle().Foreground(ColorMuted).Align(lipgloss.Center)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#55efc4"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff7675"))
)

// GetProgressStyle colors a progress bar by how close the next anniversary is.
func GetProgressStyle(fraction float64) lipgloss.Style {
	switch {
	case fraction >= 0.9:
		return lipgloss.NewStyle().Foreground(ColorRose)
	case fraction >= 0.5:
		return lipgloss.NewStyle().Foreground(ColorPink)
	}
	return lipgloss.NewStyle().Foreground(ColorLavender)
}
