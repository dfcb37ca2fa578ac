package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"ourlove/storage"
)

// RenderNoteList renders diary notes newest first, one per line, keeping the
// selected note in view.
func RenderNoteList(notes []storage.Note, selected, width, height int, loc *time.Location, itemStyle, selectedStyle, dateStyle, boxStyle lipgloss.Style) string {
	if len(notes) == 0 {
		return boxStyle.Width(width).Height(height).Render(
			lipgloss.Place(width-4, height-2, lipgloss.Center, lipgloss.Center,
				lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("No notes yet. Press n to write one.")))
	}

	maxLines := height - 2
	if maxLines < 1 {
		maxLines = 1
	}
	start := 0
	if selected >= maxLines {
		start = selected - maxLines + 1
	}

	// Account for box padding (2 chars on each side = 4 total)
	availableWidth := width - 4

	var lines []string
	for i := start; i < len(notes) && len(lines) < maxLines; i++ {
		note := notes[i]

		date := ""
		if !note.Date.IsZero() {
			date = note.Date.In(loc).Format("Jan 02")
		}

		marker := "  "
		style := itemStyle
		if i == selected {
			marker = "> "
			style = selectedStyle
		}

		titleWidth := availableWidth - len(marker) - len(date) - 2
		title := Truncate(note.Title(), titleWidth)
		dots := strings.Repeat(".", max(0, availableWidth-len(marker)-lipgloss.Width(title)-len(date)-2))

		line := marker + style.Render(title) + " " + dots + " " + dateStyle.Render(date)
		lines = append(lines, line)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return boxStyle.Width(width).Height(height).Render(content)
}

// Truncate shortens s to at most n display cells, ending with an ellipsis
// when cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > n {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
