// Package lovetime computes how long it has been since a fixed reference
// instant, broken into calendar years, months, days and time of day.
//
// Calendar fields are read in the location of the reference instant, which
// is time.Local when the reference was parsed without an offset.
package lovetime

import (
	"errors"
	"fmt"
	"time"
)

// DefaultReference is the instant the counter starts from.
const DefaultReference = "2022-11-29T22:06:00"

// ErrInvalidReference is returned when a reference instant cannot be used.
var ErrInvalidReference = errors.New("invalid reference instant")

// Breakdown is an elapsed duration split into calendar units.
type Breakdown struct {
	Years   int `json:"years"`
	Months  int `json:"months"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// IsZero reports whether every unit is zero.
func (b Breakdown) IsZero() bool {
	return b == Breakdown{}
}

// Compute returns the time elapsed from reference to current.
// A current instant before the reference yields a zero Breakdown.
func Compute(reference, current time.Time) Breakdown {
	totalDiff := current.Sub(reference)
	if totalDiff < 0 {
		return Breakdown{}
	}

	loc := reference.Location()
	current = current.In(loc)

	years := current.Year() - reference.Year()
	months := int(current.Month()) - int(reference.Month())

	if months < 0 {
		years--
		months += 12
	}

	// Anniversary day not reached yet this month
	if current.Day() < reference.Day() {
		months--
		if months < 0 {
			years--
			months += 12
		}
	}

	// Day overflow normalises, so day 31 in a 30-day month lands on the 1st
	// of the next month.
	anniversary := localDate(current.Year(), current.Month(), reference.Day(),
		reference.Hour(), reference.Minute(), reference.Second(), loc)

	if current.Before(anniversary) {
		anniversary = localDate(anniversary.Year(), anniversary.Month()-1, anniversary.Day(),
			anniversary.Hour(), anniversary.Minute(), anniversary.Second(), loc)
	}

	remaining := current.Sub(anniversary)
	day := 24 * time.Hour

	return Breakdown{
		Years:   clamp(years),
		Months:  clamp(months),
		Days:    clamp(int(remaining / day)),
		Hours:   clamp(int((remaining % day) / time.Hour)),
		Minutes: clamp(int((remaining % time.Hour) / time.Minute)),
		Seconds: clamp(int((remaining % time.Minute) / time.Second)),
	}
}

// localDate resolves a wall-clock time in loc. A time skipped by a DST gap
// is read with the offset in effect before the gap, which moves it forward
// by the gap's length. A time repeated by a DST overlap resolves to its
// first occurrence.
func localDate(year int, month time.Month, day, hour, minute, second int, loc *time.Location) time.Time {
	wall := time.Date(year, month, day, hour, minute, second, 0, time.UTC)

	// Zone offsets stay within 14h, so a day either side is clear of the
	// wall time's own transition.
	_, before := wall.Add(-24 * time.Hour).In(loc).Zone()
	_, after := wall.Add(24 * time.Hour).In(loc).Zone()

	early := wall.Add(-time.Duration(before) * time.Second).In(loc)
	if before == after {
		return early
	}
	late := wall.Add(-time.Duration(after) * time.Second).In(loc)

	earlyOK, lateOK := sameWall(early, wall), sameWall(late, wall)
	switch {
	case earlyOK && lateOK:
		if late.Before(early) {
			return late
		}
		return early
	case lateOK:
		return late
	}
	return early
}

func sameWall(t, wall time.Time) bool {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC).Equal(wall)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Calculator computes breakdowns against a fixed reference instant.
type Calculator struct {
	reference time.Time
	clock     Clock
}

// NewCalculator returns a calculator for reference using the system clock.
func NewCalculator(reference time.Time) (*Calculator, error) {
	return NewCalculatorWithClock(reference, SystemClock)
}

// NewCalculatorWithClock returns a calculator reading "now" from clock.
func NewCalculatorWithClock(reference time.Time, clock Clock) (*Calculator, error) {
	if reference.IsZero() {
		return nil, fmt.Errorf("%w: zero time", ErrInvalidReference)
	}
	if clock == nil {
		clock = SystemClock
	}
	return &Calculator{reference: reference, clock: clock}, nil
}

// Reference returns the reference instant.
func (c *Calculator) Reference() time.Time {
	return c.reference
}

// Current returns the clock's current time in the reference location.
func (c *Calculator) Current() time.Time {
	return c.clock.Now().In(c.reference.Location())
}

// Now computes the breakdown at the clock's current time.
func (c *Calculator) Now() Breakdown {
	return Compute(c.reference, c.clock.Now())
}

// At computes the breakdown at t.
func (c *Calculator) At(t time.Time) Breakdown {
	return Compute(c.reference, t)
}
