package storage

import "time"

// UTCNow returns current UTC time with seconds precision (no microseconds).
func UTCNow() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), 0, time.UTC)
}

// FormatNoteDate renders a note date in loc for display.
// A nil loc means time.Local.
func FormatNoteDate(date time.Time, loc *time.Location) string {
	if date.IsZero() {
		return "-"
	}
	if loc == nil {
		loc = time.Local
	}
	return date.In(loc).Format("2006-01-02 15:04")
}

// DayKey returns the local calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("2006-01-02")
}
