package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runInZone runs fn with time.Local pinned to the named zone, restoring
// it afterwards. The date utility must be insensitive to the host zone.
func runInZone(t *testing.T, zone string, fn func(t *testing.T)) {
	t.Helper()
	loc, err := time.LoadLocation(zone)
	require.NoError(t, err)

	original := time.Local
	time.Local = loc
	defer func() { time.Local = original }()

	fn(t)
}

func TestParseCalendarDate_BareDate(t *testing.T) {
	d := ParseCalendarDate("2024-07-01")
	require.NotNil(t, d)
	assert.Equal(t, 2024, d.Year)
	assert.Equal(t, time.July, d.Month)
	assert.Equal(t, 1, d.Day)
}

func TestParseCalendarDate_RoundTripAcrossTimezones(t *testing.T) {
	// Etc/GMT+12 is UTC-12 and Etc/GMT-14 is UTC+14 (POSIX sign
	// convention). A naive UTC round-trip would shift the day in the
	// former; splitting components must not.
	for _, zone := range []string{"Etc/GMT+12", "Etc/GMT-14"} {
		runInZone(t, zone, func(t *testing.T) {
			for _, input := range []string{"2024-07-01", "2024-01-01", "2023-12-31", "2024-02-29"} {
				d := ParseCalendarDate(input)
				require.NotNil(t, d, "zone %s input %s", zone, input)
				assert.Equal(t, input, d.ISO(), "zone %s", zone)
			}
		})
	}
}

func TestParseCalendarDate_Timestamp(t *testing.T) {
	d := ParseCalendarDate("2024-07-01T15:30:00Z")
	require.NotNil(t, d)
	assert.Equal(t, "2024-07-01", d.ISO())

	d = ParseCalendarDate("2024-07-01T15:30:00")
	require.NotNil(t, d)
	assert.Equal(t, "2024-07-01", d.ISO())

	assert.Nil(t, ParseCalendarDate("2024-07-01Tnot-a-time"))
}

func TestParseCalendarDate_LastResortLayouts(t *testing.T) {
	d := ParseCalendarDate("July 1, 2024")
	require.NotNil(t, d)
	assert.Equal(t, "2024-07-01", d.ISO())

	d = ParseCalendarDate("07/01/2024")
	require.NotNil(t, d)
	assert.Equal(t, "2024-07-01", d.ISO())
}

func TestParseCalendarDate_Invalid(t *testing.T) {
	assert.Nil(t, ParseCalendarDate(""))
	assert.Nil(t, ParseCalendarDate("   "))
	assert.Nil(t, ParseCalendarDate("not a date"))
	assert.Nil(t, ParseCalendarDate("2024-13-01"))
	assert.Nil(t, ParseCalendarDate("2024-02-30"))
	assert.Nil(t, ParseCalendarDate("2024-00-10"))
}

func TestFormatCalendarDate(t *testing.T) {
	d := ParseCalendarDate("2024-07-01")
	require.NotNil(t, d)
	assert.Equal(t, "Monday, July 1, 2024", FormatCalendarDate(d, DateStyleLong))
	assert.Equal(t, "Jul 1, 2024", FormatCalendarDate(d, DateStyleShort))
	assert.Equal(t, "Invalid date", FormatCalendarDate(nil, DateStyleLong))
}

func TestAddDays(t *testing.T) {
	d := ParseCalendarDate("2024-02-28")
	require.NotNil(t, d)
	assert.Equal(t, "2024-02-29", d.AddDays(1).ISO()) // leap year
	assert.Equal(t, "2024-03-01", d.AddDays(2).ISO())
	assert.Equal(t, "2024-02-27", d.AddDays(-1).ISO())
}

func TestDaysBetween(t *testing.T) {
	a := ParseCalendarDate("2024-07-01")
	b := ParseCalendarDate("2024-07-04")

	n, ok := DaysBetween(a, b)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	// Same day is a legitimate zero, distinct from failure.
	n, ok = DaysBetween(a, a)
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	_, ok = DaysBetween(nil, b)
	assert.False(t, ok)
	_, ok = DaysBetween(a, nil)
	assert.False(t, ok)
}

func TestFormatTripDuration(t *testing.T) {
	a := ParseCalendarDate("2024-07-01")
	b := ParseCalendarDate("2024-07-04")

	assert.Equal(t, "3 nights", FormatTripDuration(a, b))
	assert.Equal(t, "1 night", FormatTripDuration(a, ParseCalendarDate("2024-07-02")))
	assert.Equal(t, "TBD", FormatTripDuration(nil, b))
	assert.Equal(t, "TBD", FormatTripDuration(b, a)) // inverted range
}

func TestDatesInRange(t *testing.T) {
	start := ParseCalendarDate("2024-07-01")
	end := ParseCalendarDate("2024-07-04")

	dates := DatesInRange(start, end)
	require.Len(t, dates, 3)
	assert.Equal(t, "2024-07-01", dates[0].ISO())
	assert.Equal(t, "2024-07-02", dates[1].ISO())
	assert.Equal(t, "2024-07-03", dates[2].ISO())

	assert.Empty(t, DatesInRange(end, start))
	assert.Empty(t, DatesInRange(nil, end))
	assert.Empty(t, DatesInRange(start, start))
}
