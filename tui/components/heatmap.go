package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// heatColor maps an intensity in [0,1] onto the heatmap palette.
func heatColor(intensity float64) lipgloss.Color {
	switch {
	case intensity == 0:
		return lipgloss.Color("#333333")
	case intensity < 0.25:
		return lipgloss.Color("#5c2a3d")
	case intensity < 0.5:
		return lipgloss.Color("#a8336a")
	case intensity < 0.75:
		return lipgloss.Color("#e0508a")
	}
	return lipgloss.Color("#ff9ec4")
}

// RenderDayHeatmap renders one square per day, oldest first, in rows of
// six, shaded by how many notes were written that day.
func RenderDayHeatmap(counts []int, title string, width, height int, boxStyle lipgloss.Style) string {
	maxCount, total := 0, 0
	for _, c := range counts {
		total += c
		if c > maxCount {
			maxCount = c
		}
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(title))
	lines = append(lines, "")

	const perRow = 6
	for row := 0; row*perRow < len(counts); row++ {
		var squares []string
		for col := 0; col < perRow; col++ {
			idx := row*perRow + col
			if idx >= len(counts) {
				break
			}

			intensity := 0.0
			if maxCount > 0 {
				intensity = float64(counts[idx]) / float64(maxCount)
			}
			color := heatColor(intensity)

			square := lipgloss.NewStyle().
				Background(color).
				Foreground(color).
				Width(2).
				Height(1).
				Render("██")

			squares = append(squares, square, " ")
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left, squares...))
	}

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).
		Render(fmt.Sprintf("%d note(s) in %d days", total, len(counts))))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return boxStyle.Width(width).Height(height).Render(content)
}
