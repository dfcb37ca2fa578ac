package components

import (
	"github.com/charmbracelet/lipgloss"

	"ourlove/lovetime"
)

// RenderHero renders the counter: one cell per unit, a title above and a
// subtitle below.
func RenderHero(units []lovetime.Unit, title, subtitle string, width int, borderStyle, titleStyle, numberStyle, labelStyle, subtitleStyle lipgloss.Style, formatUnit func(int) string) string {
	// Account for border padding (2 chars on each side = 4 total)
	availableWidth := width - 4
	cellWidth := 8
	if len(units) > 0 && availableWidth/len(units) > cellWidth {
		cellWidth = availableWidth / len(units)
	}

	cells := make([]string, 0, len(units))
	for _, u := range units {
		cell := lipgloss.JoinVertical(lipgloss.Center,
			numberStyle.Render(formatUnit(u.Value)),
			labelStyle.Render(u.Label),
		)
		cells = append(cells, lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Render(cell))
	}
	counter := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	var lines []string
	if title != "" {
		lines = append(lines, lipgloss.Place(availableWidth, 1, lipgloss.Center, lipgloss.Center, titleStyle.Render(title)))
	}
	lines = append(lines, lipgloss.Place(availableWidth, lipgloss.Height(counter), lipgloss.Center, lipgloss.Top, counter))
	if subtitle != "" {
		lines = append(lines, lipgloss.Place(availableWidth, 1, lipgloss.Center, lipgloss.Center, subtitleStyle.Render(subtitle)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return borderStyle.Width(width).Render(content)
}
