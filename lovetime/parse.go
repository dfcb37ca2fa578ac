package lovetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var timeOfDayRe = regexp.MustCompile(`^(?P<hour>\d{1,2}):(?P<minute>\d{2})$`)

// Layouts accepted for a reference without an explicit offset.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseReference parses an ISO 8601 reference instant.
// Values with an offset (RFC 3339) keep it; values without one are read in loc,
// or time.Local when loc is nil.
func ParseReference(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidReference)
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			local := localDate(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), loc)
			return local.Add(time.Duration(t.Nanosecond())), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidReference, value)
}

// MustParseReference is like ParseReference but panics on error.
func MustParseReference(value string) time.Time {
	t, err := ParseReference(value, nil)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseWhen parses value as a reference-style instant, returning fallback
// when value is empty. An HH:MM value means that time today in fallback's
// location.
func ParseWhen(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}

	if t, err := ParseReference(value, fallback.Location()); err == nil {
		return t, nil
	}

	hour, minute, err := ParseTimeOfDay(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse time: %s", value)
	}

	return time.Date(fallback.Year(), fallback.Month(), fallback.Day(), hour, minute, 0, 0, fallback.Location()), nil
}

// ParseTimeOfDay parses a time string in HH:MM format.
func ParseTimeOfDay(value string) (hour, minute int, err error) {
	matches := timeOfDayRe.FindStringSubmatch(value)
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid time format: %s", value)
	}

	hour, _ = strconv.Atoi(matches[1])
	minute, _ = strconv.Atoi(matches[2])
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time value: %s", value)
	}

	return hour, minute, nil
}
