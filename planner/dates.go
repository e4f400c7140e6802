// Package planner is the trip-plan reconciliation core. It turns the
// planning backend's schema-variable documents into the stable view
// model the presentation layer consumes, and tracks replan staleness.
// Every projection in this package is a pure transform: no I/O, no
// ambient state, and malformed input degrades to an empty result
// instead of an error.
package planner

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalendarDate is a timezone-free calendar day. Date strings from the
// planning backend are calendar dates, not instants; parsing them
// through a UTC timestamp parser shifts them a day backwards for users
// west of UTC, so this type keeps the components and does all
// arithmetic on a fixed UTC anchor.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

type DateStyle int

const (
	DateStyleLong  DateStyle = iota // "Monday, July 1, 2024"
	DateStyleShort                  // "Jul 1, 2024"
)

// lastResortLayouts are tried for inputs that are neither bare dates
// nor RFC3339 timestamps. Older planner payloads used a few of these.
var lastResortLayouts = []string{
	"2006-01-02 15:04:05",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseCalendarDate parses a date string into a CalendarDate. Bare
// YYYY-MM-DD strings are split numerically and never round-tripped
// through a timestamp parser. Strings with a time component go through
// RFC3339 parsing. Anything else is tried against a small layout list.
// Returns nil on any failure; it never panics.
func ParseCalendarDate(input string) *CalendarDate {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil
	}

	if isBareDate(s) {
		year, _ := strconv.Atoi(s[0:4])
		month, _ := strconv.Atoi(s[5:7])
		day, _ := strconv.Atoi(s[8:10])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return nil
		}
		// Reject non-existent days (e.g. Feb 30) by normalizing through
		// time.Date and comparing components.
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
			return nil
		}
		return &CalendarDate{Year: year, Month: time.Month(month), Day: day}
	}

	if strings.Contains(s, "T") {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return &CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
		}
		// RFC3339 without zone offset, seen in some planner responses.
		if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
			return &CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
		}
		return nil
	}

	for _, layout := range lastResortLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
		}
	}
	return nil
}

// isBareDate reports whether s is exactly YYYY-MM-DD.
func isBareDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// anchor returns the date pinned to noon UTC. Noon keeps component
// arithmetic clear of DST and day boundaries in either direction.
func (d CalendarDate) anchor() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

// AddDays returns the date n calendar days later (earlier for negative n).
func (d CalendarDate) AddDays(n int) CalendarDate {
	t := d.anchor().AddDate(0, 0, n)
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ISO renders the date as YYYY-MM-DD.
func (d CalendarDate) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Format renders the date in the requested display style.
func (d CalendarDate) Format(style DateStyle) string {
	switch style {
	case DateStyleShort:
		return d.anchor().Format("Jan 2, 2006")
	default:
		return d.anchor().Format("Monday, January 2, 2006")
	}
}

// FormatCalendarDate is the nil-tolerant display formatter. Callers
// render unparseable dates as a literal marker instead of crashing.
func FormatCalendarDate(d *CalendarDate, style DateStyle) string {
	if d == nil {
		return "Invalid date"
	}
	return d.Format(style)
}

// DaysBetween returns the signed number of calendar days from a to b.
// ok is false when either input is nil; zero with ok true is a
// legitimate same-day result and must not be conflated with failure.
func DaysBetween(a, b *CalendarDate) (int, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	diff := b.anchor().Sub(a.anchor())
	return int(diff.Hours() / 24), true
}

// FormatTripDuration renders an inclusive night count for display,
// falling back to "TBD" when either endpoint is unknown.
func FormatTripDuration(start, end *CalendarDate) string {
	n, ok := DaysBetween(start, end)
	if !ok || n < 0 {
		return "TBD"
	}
	if n == 1 {
		return "1 night"
	}
	return fmt.Sprintf("%d nights", n)
}

// DatesInRange returns every calendar day in [start, end). An inverted
// or nil range yields an empty slice.
func DatesInRange(start, end *CalendarDate) []CalendarDate {
	n, ok := DaysBetween(start, end)
	if !ok || n <= 0 {
		return nil
	}
	out := make([]CalendarDate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start.AddDays(i))
	}
	return out
}
