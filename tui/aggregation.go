package tui

import (
	"time"

	"ourlove/storage"
	"ourlove/tui/components"
)

// DayCounts returns how many notes were written on each of the last days
// calendar days ending today, oldest first, in now's location.
func DayCounts(notes []storage.Note, now time.Time, days int) []int {
	if days <= 0 {
		return nil
	}
	loc := now.Location()

	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, i-(days-1))
		index[storage.DayKey(day, loc)] = i
	}

	counts := make([]int, days)
	for _, note := range notes {
		if note.Date.IsZero() {
			continue
		}
		if i, ok := index[storage.DayKey(note.Date, loc)]; ok {
			counts[i]++
		}
	}
	return counts
}

// MonthCounts returns notes per calendar month for the last months months
// ending with now's month, oldest first.
func MonthCounts(notes []storage.Note, now time.Time, months int) []components.BarItem {
	if months <= 0 {
		return nil
	}
	loc := now.Location()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	items := make([]components.BarItem, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		month := first.AddDate(0, i-(months-1), 0)
		items[i].Label = month.Format("Jan 06")
		index[month.Format("2006-01")] = i
	}

	for _, note := range notes {
		if note.Date.IsZero() {
			continue
		}
		if i, ok := index[note.Date.In(loc).Format("2006-01")]; ok {
			items[i].Value++
		}
	}
	return items
}

// Streak returns how many consecutive days, ending today, have at least one
// note. A day without notes yet today does not break a streak that ran
// through yesterday.
func Streak(notes []storage.Note, now time.Time) int {
	loc := now.Location()
	days := make(map[string]bool, len(notes))
	for _, note := range notes {
		if !note.Date.IsZero() {
			days[storage.DayKey(note.Date, loc)] = true
		}
	}

	day := now
	if !days[storage.DayKey(day, loc)] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for days[storage.DayKey(day, loc)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
