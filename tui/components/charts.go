package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarItem is one labelled bar of a chart.
type BarItem struct {
	Label string
	Value int
}

// RenderBarChart renders a horizontal bar chart in the given order, keeping
// the last items when there are more than fit.
func RenderBarChart(title string, items []BarItem, width, height int, chartBarStyle, chartLabelStyle, chartCountStyle, boxStyle lipgloss.Style) string {
	maxValue := 0
	for _, item := range items {
		if item.Value > maxValue {
			maxValue = item.Value
		}
	}

	header := lipgloss.NewStyle().Bold(true).Render(title)
	if maxValue == 0 {
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("Nothing written yet.")
		return boxStyle.Width(width).Height(height).Render(lipgloss.JoinVertical(lipgloss.Left, header, "", empty))
	}

	// Limit to available height
	maxLines := height - 4
	if maxLines < 1 {
		maxLines = 1
	}
	if len(items) > maxLines {
		items = items[len(items)-maxLines:]
	}

	const labelWidth = 10
	barWidth := width - labelWidth - 10 // Leave space for label and count
	if barWidth < 5 {
		barWidth = 5
	}

	lines := []string{header, ""}
	for _, item := range items {
		filled := 0
		if maxValue > 0 {
			filled = item.Value * barWidth / maxValue
		}
		if item.Value > 0 && filled == 0 {
			filled = 1
		}

		line := lipgloss.JoinHorizontal(lipgloss.Left,
			chartLabelStyle.Width(labelWidth).Render(item.Label),
			chartBarStyle.Render(strings.Repeat("█", filled)),
			chartCountStyle.Render(fmt.Sprintf(" %d", item.Value)),
		)
		lines = append(lines, line)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return boxStyle.Width(width).Height(height).Render(content)
}
