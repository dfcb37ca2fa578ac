package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ourlove/lovetime"
	"ourlove/tui/components"
)

const heatmapDays = 30

// renderMainView renders the main application view.
func renderMainView(m Model) string {
	width := m.width
	height := m.height
	if width < 80 {
		width = 80
	}
	if height < 24 {
		height = 24
	}

	footerHeight := 2
	contentHeight := height - footerHeight

	// Hero section (full width at top)
	ref := m.calc.Reference()
	title := m.opts.Title
	if m.opts.PartnerName != "" {
		title = strings.TrimSpace(title + "  " + m.opts.PartnerName)
	}
	subtitle := "since " + ref.Format("January 2, 2006 15:04")
	if m.opts.Tagline != "" {
		subtitle = m.opts.Tagline + "  ·  " + subtitle
	}
	heroSection := components.RenderHero(m.breakdown.Units(), title, subtitle, width,
		BorderHero, HeroTitleStyle, HeroNumberStyle, HeroLabelStyle, HeroTaglineStyle,
		lovetime.FormatUnit)

	mainHeight := contentHeight - lipgloss.Height(heroSection)
	if mainHeight < 10 {
		mainHeight = 10
	}

	// Notes list and heatmap (left), anniversaries and chart (right)
	leftWidth := int(float64(width) * 0.55)
	rightWidth := width - leftWidth - 1

	listHeight := mainHeight - 11
	if listHeight < 4 {
		listHeight = 4
	}
	heatmapHeight := mainHeight - listHeight

	notesView := components.RenderNoteList(m.notes, m.selected, leftWidth, listHeight, m.now.Location(),
		NoteItemStyle, NoteSelectedStyle, NoteDateStyle, BoxStyle)
	heatmapView := components.RenderDayHeatmap(DayCounts(m.notes, m.now, heatmapDays),
		fmt.Sprintf("Last %d Days", heatmapDays), leftWidth, heatmapHeight, BoxStyle)
	left := lipgloss.JoinVertical(lipgloss.Left, notesView, heatmapView)

	progressHeight := 8
	progress := components.RenderAnniversaryProgress(ref, m.now, rightWidth-4, GetProgressStyle)
	if streak := Streak(m.notes, m.now); streak > 0 {
		progress = lipgloss.JoinVertical(lipgloss.Left, progress, fmt.Sprintf("Diary streak: %d day(s)", streak))
	}
	progressBox := BoxStyle.Width(rightWidth).Height(progressHeight).Render(progress)

	chartHeight := mainHeight - progressHeight - 2
	if chartHeight < 4 {
		chartHeight = 4
	}
	chart := components.RenderBarChart("Notes per Month", MonthCounts(m.notes, m.now, 6), rightWidth, chartHeight,
		ChartBarStyle, ChartLabelStyle, ChartCountStyle, BoxStyle)
	sidebar := lipgloss.JoinVertical(lipgloss.Left, progressBox, chart)

	contentRow := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", sidebar)

	// Message (if any)
	var messageLine string
	if m.message != "" {
		msgStyle := SuccessStyle
		if m.messageError {
			msgStyle = ErrorStyle
		}
		messageLine = lipgloss.Place(width, 1, lipgloss.Center, lipgloss.Top,
			msgStyle.Render(components.Truncate(m.message, width)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		heroSection,
		contentRow,
		messageLine,
		renderFooter(width),
	)
}

// renderModalView renders the new-note dialog over the screen.
func renderModalView(m Model) string {
	width := m.width
	height := m.height
	if width < 80 {
		width = 80
	}
	if height < 24 {
		height = 24
	}

	return components.RenderModal("New diary note",
		[]string{m.subject.View(), m.content.View()},
		"[tab] Switch field  [ctrl+s] Save  [esc] Cancel",
		width, height, ModalStyle, ModalTitleStyle, FooterStyle)
}

// renderFooter renders the footer with help text.
func renderFooter(width int) string {
	helpLine := "[↑/↓] Select  [n] New note  [d] Delete  [r] Reload  [q] Quit"
	return FooterStyle.Width(width).Render(helpLine)
}
