package dates

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offsets spanning every real timezone, in hours.
var testOffsets = []int{-12, -11, -8, -5, -3, 0, 1, 3, 5, 8, 12, 13, 14}

func converterAt(offsetHours int) *Converter {
	name := fmt.Sprintf("UTC%+d", offsetHours)

	return NewConverter(time.FixedZone(name, offsetHours*3600))
}

func TestToUTC_DateOnlyRoundTrip(t *testing.T) {
	dates := []string{
		"2025-08-13",
		"2025-01-01",
		"2025-12-31",
		"2024-02-29",
	}

	for _, offset := range testOffsets {
		c := converterAt(offset)

		for _, d := range dates {
			utc := c.ToUTC(d, true)
			require.NotEmpty(t, utc, "offset %+d date %s", offset, d)
			assert.Equal(t, d, c.ToLocalDateString(utc), "offset %+d", offset)
		}
	}
}

func TestToUTC_DateOnlyProducesNoonUTC(t *testing.T) {
	c := converterAt(-7)

	assert.Equal(t, "2025-08-13T12:00:00.000Z", c.ToUTC("2025-08-13", true))
}

func TestToUTC_WithoutPreserveUsesLocalMidnight(t *testing.T) {
	c := converterAt(-5)

	// Local midnight at UTC-5 is 05:00 UTC.
	assert.Equal(t, "2025-08-13T05:00:00.000Z", c.ToUTC("2025-08-13", false))
}

func TestToUTC_GeneralDateTime(t *testing.T) {
	c := converterAt(2)

	assert.Equal(t, "2025-08-13T15:30:00.000Z", c.ToUTC("2025-08-13T15:30:00Z", true))
}

func TestToUTC_InvalidInput(t *testing.T) {
	c := converterAt(0)

	assert.Empty(t, c.ToUTC("not-a-date", true))
	assert.Empty(t, c.ToUTC(nil, true))
	assert.Empty(t, c.ToUTC("", true))
}

func TestToLocalDate_NoonUTCKeepsCalendarDayEverywhere(t *testing.T) {
	for _, offset := range testOffsets {
		c := converterAt(offset)

		got := c.ToLocalDate("2025-08-13T12:00:00.000Z", true)
		require.NotNil(t, got, "offset %+d", offset)

		assert.Equal(t, 2025, got.Year(), "offset %+d", offset)
		assert.Equal(t, time.August, got.Month(), "offset %+d", offset)
		assert.Equal(t, 13, got.Day(), "offset %+d", offset)
		assert.Equal(t, 0, got.Hour(), "offset %+d", offset)
	}
}

func TestToLocalDate_DateTimeConvertsToLocal(t *testing.T) {
	c := converterAt(-5)

	got := c.ToLocalDate("2025-08-13T15:30:00.000Z", true)
	require.NotNil(t, got)

	assert.Equal(t, 13, got.Day())
	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestToLocalDate_WithoutPreserveConvertsNoonToo(t *testing.T) {
	c := converterAt(-5)

	got := c.ToLocalDate("2025-08-13T12:00:00.000Z", false)
	require.NotNil(t, got)

	// Plain instant conversion: 12:00Z is 07:00 at UTC-5.
	assert.Equal(t, 7, got.Hour())
}

func TestToLocalDate_InvalidInput(t *testing.T) {
	c := converterAt(0)

	assert.Nil(t, c.ToLocalDate("not-a-date", true))
	assert.Nil(t, c.ToLocalDate(nil, true))
	assert.Nil(t, c.ToLocalDate("", true))

	var empty *time.Time

	assert.Nil(t, c.ToLocalDate(empty, true))
	assert.Nil(t, c.ToLocalDate(time.Time{}, true))
}

func TestToLocalDateString_MidnightUTCReadsUTCComponents(t *testing.T) {
	c := converterAt(-8)

	assert.Equal(t, "2025-08-13", c.ToLocalDateString("2025-08-13T00:00:00.000Z"))
}

func TestToLocalDateString_TrueDateTimeUsesLocalCalendar(t *testing.T) {
	c := converterAt(-5)

	// 02:30Z on the 14th is still the 13th at UTC-5.
	assert.Equal(t, "2025-08-13", c.ToLocalDateString("2025-08-14T02:30:00.000Z"))
}

func TestToLocalDateString_InvalidInput(t *testing.T) {
	c := converterAt(0)

	assert.Empty(t, c.ToLocalDateString("garbage"))
	assert.Empty(t, c.ToLocalDateString(nil))
}

func TestFormatForDisplay_RelativeWindows(t *testing.T) {
	c := converterAt(-5)
	now := time.Date(2025, time.August, 13, 9, 0, 0, 0, c.loc)
	c.now = func() time.Time { return now }

	day := func(offset int) string {
		return c.ToUTC(now.AddDate(0, 0, offset).Format("2006-01-02"), true)
	}

	tests := []struct {
		offset int
		want   string
	}{
		{0, "Today"},
		{1, "Tomorrow"},
		{-1, "Yesterday"},
		{2, "In 2 days"},
		{7, "In 7 days"},
		{-2, "2 days ago"},
		{-7, "7 days ago"},
		{8, "Next week"},
		{14, "Next week"},
		{-8, "Last week"},
		{-14, "Last week"},
		{15, "Aug 28"},
		{-15, "Jul 29"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, c.FormatForDisplay(day(tc.offset), false), "offset %d", tc.offset)
		})
	}
}

func TestFormatForDisplay_YearAppendedWhenDifferent(t *testing.T) {
	c := converterAt(0)
	c.now = func() time.Time { return time.Date(2025, time.August, 13, 9, 0, 0, 0, c.loc) }

	assert.Equal(t, "Jan 15, 2026", c.FormatForDisplay("2026-01-15T12:00:00.000Z", false))
	assert.Equal(t, "Sep 20", c.FormatForDisplay("2025-09-20T12:00:00.000Z", false))
}

func TestFormatForDisplay_IncludeTime(t *testing.T) {
	c := converterAt(-5)
	c.now = func() time.Time { return time.Date(2025, time.August, 13, 9, 0, 0, 0, c.loc) }

	// 19:30Z is 2:30 PM at UTC-5, same local day.
	assert.Equal(t, "Today at 2:30 PM", c.FormatForDisplay("2025-08-13T19:30:00.000Z", true))
}

func TestFormatForDisplay_InvalidInput(t *testing.T) {
	c := converterAt(0)

	assert.Empty(t, c.FormatForDisplay("nope", false))
	assert.Empty(t, c.FormatForDisplay(nil, true))
}

func TestAddDays(t *testing.T) {
	c := converterAt(3)

	got := c.AddDays("2025-08-13T12:00:00.000Z", 5)
	assert.Equal(t, "2025-08-18T12:00:00.000Z", got)

	assert.Empty(t, c.AddDays("broken", 5))

	// nil base falls back to now and still yields a parseable instant.
	fromNow := c.AddDays(nil, 1)
	_, err := time.Parse(ISOMillis, fromNow)
	assert.NoError(t, err)
}

func TestStartAndEndOfDayUTC(t *testing.T) {
	c := converterAt(-5)

	start := c.StartOfDayUTC("2025-08-13T19:30:00.000Z")
	end := c.EndOfDayUTC("2025-08-13T19:30:00.000Z")

	// 19:30Z is 14:30 local at UTC-5, so the local day runs 05:00Z to
	// 04:59:59.999Z the next UTC day.
	assert.Equal(t, "2025-08-13T05:00:00.000Z", start)
	assert.Equal(t, "2025-08-14T04:59:59.999Z", end)

	assert.Empty(t, c.StartOfDayUTC("broken"))
	assert.Empty(t, c.EndOfDayUTC("broken"))
}

func TestNewLocalDateTimeValue_RoundTrip(t *testing.T) {
	for _, offset := range testOffsets {
		c := converterAt(offset)
		instant := time.Date(2025, time.August, 13, 18, 45, 0, 0, time.UTC)

		v := c.NewLocalDateTimeValue(instant)

		assert.Equal(t, offset*60, v.TimezoneOffsetMinutes, "offset %+d", offset)
		assert.Equal(t, "2025-08-13T18:45:00.000Z", v.UTCTime, "offset %+d", offset)

		// Reconstructing the instant from UTCTime and rendering it at the
		// recorded offset must reproduce LocalTime exactly.
		parsed, err := time.Parse(ISOMillis, v.UTCTime)
		require.NoError(t, err, "offset %+d", offset)

		rezoned := parsed.In(time.FixedZone("", v.TimezoneOffsetMinutes*60))
		assert.Equal(t, v.LocalTime, rezoned.Format("2006-01-02T15:04"), "offset %+d", offset)
	}
}

func TestLocalDateTimeFromWallClock(t *testing.T) {
	c := converterAt(-5)

	v, ok := c.LocalDateTimeFromWallClock("2025-08-13T18:45")
	require.True(t, ok)

	assert.Equal(t, "2025-08-13T18:45", v.LocalTime)
	assert.Equal(t, -300, v.TimezoneOffsetMinutes)
	assert.Equal(t, "2025-08-13T23:45:00.000Z", v.UTCTime)

	_, ok = c.LocalDateTimeFromWallClock("not-a-time")
	assert.False(t, ok)
}
