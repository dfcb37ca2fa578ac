package lovetime

import "time"

// monthlyAt returns the reference's day and time of day in the given month,
// with the day clamped to the month's length.
func monthlyAt(reference time.Time, year int, month time.Month) time.Time {
	loc := reference.Location()
	day := reference.Day()
	if last := daysIn(year, month, loc); day > last {
		day = last
	}
	return localDate(year, month, day, reference.Hour(), reference.Minute(), reference.Second(), loc)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// NextAnniversary returns the first monthly anniversary strictly after
// current, and the one before it. Before the reference, both are the
// reference itself.
func NextAnniversary(reference, current time.Time) (prev, next time.Time) {
	if current.Before(reference) {
		return reference, reference
	}
	current = current.In(reference.Location())

	// Start one month back so prev is always found.
	year, month := current.Year(), current.Month()-1
	prev = monthlyAt(reference, year, month)
	if prev.Before(reference) {
		prev = reference
	}
	for {
		month++
		candidate := monthlyAt(reference, year, month)
		if candidate.After(current) {
			return prev, candidate
		}
		if !candidate.Before(reference) {
			prev = candidate
		}
	}
}

// NextYearly returns the first yearly anniversary strictly after current,
// and the one before it. A 29 February reference falls on 28 February in
// common years.
func NextYearly(reference, current time.Time) (prev, next time.Time) {
	if current.Before(reference) {
		return reference, reference
	}
	current = current.In(reference.Location())

	prev = reference
	for year := reference.Year() + 1; ; year++ {
		candidate := monthlyAt(reference, year, reference.Month())
		if candidate.After(current) {
			return prev, candidate
		}
		prev = candidate
	}
}

// MonthProgress returns the fraction of the current monthly cycle that has
// elapsed, in [0,1).
func MonthProgress(reference, current time.Time) float64 {
	prev, next := NextAnniversary(reference, current)
	return fraction(prev, next, current)
}

// YearProgress returns the fraction of the current yearly cycle that has
// elapsed, in [0,1).
func YearProgress(reference, current time.Time) float64 {
	prev, next := NextYearly(reference, current)
	return fraction(prev, next, current)
}

func fraction(prev, next, current time.Time) float64 {
	span := next.Sub(prev)
	if span <= 0 {
		return 0
	}
	f := float64(current.Sub(prev)) / float64(span)
	if f < 0 {
		return 0
	}
	return f
}
