package lovetime

import (
	"fmt"
	"strings"
)

// Unit is a labelled breakdown component, in display order.
type Unit struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// FormatUnit pads v to two digits.
func FormatUnit(v int) string {
	return fmt.Sprintf("%02d", v)
}

// String formats the breakdown as "1y 2m 3d 04:05:06".
func (b Breakdown) String() string {
	return fmt.Sprintf("%dy %dm %dd %s:%s:%s",
		b.Years, b.Months, b.Days,
		FormatUnit(b.Hours), FormatUnit(b.Minutes), FormatUnit(b.Seconds))
}

// Units returns the components from largest to smallest.
func (b Breakdown) Units() []Unit {
	return []Unit{
		{Label: "Years", Value: b.Years},
		{Label: "Months", Value: b.Months},
		{Label: "Days", Value: b.Days},
		{Label: "Hours", Value: b.Hours},
		{Label: "Minutes", Value: b.Minutes},
		{Label: "Seconds", Value: b.Seconds},
	}
}

// Compare orders breakdowns lexicographically from years down to seconds.
// It returns -1, 0 or +1.
func (b Breakdown) Compare(other Breakdown) int {
	left := b.Units()
	right := other.Units()
	for i := range left {
		switch {
		case left[i].Value < right[i].Value:
			return -1
		case left[i].Value > right[i].Value:
			return 1
		}
	}
	return 0
}

// Less reports whether b sorts before other.
func (b Breakdown) Less(other Breakdown) bool {
	return b.Compare(other) < 0
}

// Since renders a sentence-style summary, omitting leading zero units.
func (b Breakdown) Since() string {
	units := b.Units()
	start := 0
	for start < len(units)-1 && units[start].Value == 0 {
		start++
	}

	parts := make([]string, 0, len(units)-start)
	for _, u := range units[start:] {
		label := strings.ToLower(u.Label)
		if u.Value == 1 {
			label = strings.TrimSuffix(label, "s")
		}
		parts = append(parts, fmt.Sprintf("%d %s", u.Value, label))
	}
	return strings.Join(parts, ", ")
}
