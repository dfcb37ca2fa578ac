package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"ourlove/lovetime"
)

// RenderProgressBar renders a labelled bar for a fraction in [0,1].
func RenderProgressBar(fraction float64, label, detail string, width int, progressStyle lipgloss.Style) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1.0 {
		fraction = 1.0
	}

	barWidth := width - 20 // Leave space for text
	if barWidth < 10 {
		barWidth = 10
	}

	filled := int(float64(barWidth) * fraction)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	percentNum := int(fraction * 100)

	line := lipgloss.JoinHorizontal(lipgloss.Left,
		fmt.Sprintf("%-6s", label),
		progressStyle.Render(bar),
		fmt.Sprintf(" %3d%%", percentNum),
	)
	if detail == "" {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, "      "+detail)
}

// RenderAnniversaryProgress renders how far the current monthly and yearly
// cycles have run.
func RenderAnniversaryProgress(reference, now time.Time, width int, getProgressStyle func(float64) lipgloss.Style) string {
	_, nextMonthly := lovetime.NextAnniversary(reference, now)
	month := lovetime.MonthProgress(reference, now)

	_, nextYearly := lovetime.NextYearly(reference, now)
	year := lovetime.YearProgress(reference, now)

	monthBar := RenderProgressBar(month, "Month", "next "+nextMonthly.Format("Mon Jan 2 15:04"), width, getProgressStyle(month))
	yearBar := RenderProgressBar(year, "Year", "next "+nextYearly.Format("Mon Jan 2 2006"), width, getProgressStyle(year))

	header := lipgloss.NewStyle().Bold(true).Render("Anniversaries")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", monthBar, yearBar)
}
