package components

import (
	"github.com/charmbracelet/lipgloss"
)

// RenderModal renders a centered dialog with the given fields stacked
// vertically.
func RenderModal(title string, fields []string, help string, width, height int, modalStyle, titleStyle, helpStyle lipgloss.Style) string {
	modalWidth := width - 10
	if modalWidth > 72 {
		modalWidth = 72
	}

	lines := []string{titleStyle.Render(title), ""}
	for _, field := range fields {
		lines = append(lines, field, "")
	}
	lines = append(lines, helpStyle.Render(help))

	modal := modalStyle.Width(modalWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
