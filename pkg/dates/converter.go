// Package dates converts between UTC wire-format timestamps and local
// display values.
//
// Calendar dates travel to the backend as a UTC instant at exactly noon
// (the "date-only convention"): noon UTC lands on the same calendar day
// in every timezone from UTC-12 to UTC+14, so the producer's intended
// date is always recoverable from the UTC date components. A UTC hour of
// 12 is therefore treated as the marker for "this value is a date, not a
// moment". The marker is a convention, not a type tag: a genuine
// date-time that happens to fall at exactly 12:00 UTC is misclassified.
// That ambiguity is part of the wire contract with the backend and must
// not be fixed here without a protocol version change.
//
// No function in this package returns an error. These run inside display
// paths where a failure must degrade, not propagate: invalid input
// yields nil or "" and a logged diagnostic.
package dates

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"time"

	"github.com/flockhq/flock/pkg/log"
	"github.com/flockhq/flock/pkg/models"
)

// ISOMillis is the wire layout for UTC instants: ISO-8601 with
// millisecond precision, e.g. "2025-08-13T12:00:00.000Z".
const ISOMillis = "2006-01-02T15:04:05.000Z07:00"

const (
	dateOnlyLayout  = "2006-01-02"
	localTimeLayout = "2006-01-02T15:04"
	displayHour     = 12 // noon-UTC marker for date-only values
)

var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parse layouts tried in order for string input.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	localTimeLayout,
	dateOnlyLayout,
}

// Converter performs timezone-safe conversions against a fixed local
// location. The zero-argument package-level functions in dates.go use a
// converter bound to time.Local.
type Converter struct {
	loc    *time.Location
	now    func() time.Time
	logger *slog.Logger
}

// NewConverter returns a converter whose "local" side is loc.
func NewConverter(loc *time.Location) *Converter {
	if loc == nil {
		loc = time.Local
	}

	return &Converter{
		loc:    loc,
		now:    time.Now,
		logger: log.WithModule("dates"),
	}
}

// parse normalizes the accepted input kinds to a time.Time. It returns
// false, after logging, for empty or unparseable input.
func (c *Converter) parse(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}

		return v, true
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}

		return *v, true
	case string:
		if v == "" {
			return time.Time{}, false
		}

		for _, layout := range parseLayouts {
			// Offset-less layouts are wall-clock values in the
			// converter's location.
			if t, err := time.ParseInLocation(layout, v, c.loc); err == nil {
				return t, true
			}
		}

		c.logger.Warn("failed to parse date value", "value", v)

		return time.Time{}, false
	default:
		c.logger.Warn("unsupported date value type", "value", fmt.Sprintf("%T", value))

		return time.Time{}, false
	}
}

// ToLocalDate converts a UTC wire value to a local date/time.
//
// When preserveDateOnly is set and the UTC hour component is 12 (the
// date-only convention), the result is local midnight on the UTC
// calendar date. Converting the instant instead would shift the
// calendar day for viewers west of UTC-0 or east of UTC+12; reading the
// UTC components is the correctness property the whole package exists
// for. Returns nil for empty or invalid input.
func (c *Converter) ToLocalDate(value any, preserveDateOnly bool) *time.Time {
	t, ok := c.parse(value)
	if !ok {
		return nil
	}

	u := t.UTC()
	if preserveDateOnly && u.Hour() == displayHour {
		local := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, c.loc)

		return &local
	}

	local := t.In(c.loc)

	return &local
}

// ToLocalDateString renders the calendar date a wire value represents,
// as YYYY-MM-DD. Date-only values (UTC hour 12 or 0) are read from UTC
// components so the producer's date survives any viewer offset; true
// date-times use the local calendar. Returns "" for invalid input.
func (c *Converter) ToLocalDateString(value any) string {
	t, ok := c.parse(value)
	if !ok {
		return ""
	}

	u := t.UTC()
	if u.Hour() == displayHour || u.Hour() == 0 {
		return u.Format(dateOnlyLayout)
	}

	return t.In(c.loc).Format(dateOnlyLayout)
}

// ToUTC converts a local value to the UTC wire format.
//
// A bare YYYY-MM-DD string with preserveDateOnly set becomes noon UTC on
// that date, guaranteeing ToLocalDateString round-trips to the same
// calendar date in every timezone. With preserveDateOnly unset it
// becomes local midnight converted to UTC. Anything else is parsed as a
// general date/time. Returns "" for invalid input.
func (c *Converter) ToUTC(value any, preserveDateOnly bool) string {
	if s, ok := value.(string); ok && dateOnlyPattern.MatchString(s) {
		day, err := time.Parse(dateOnlyLayout, s)
		if err != nil {
			c.logger.Warn("failed to parse date value", "value", s)

			return ""
		}

		if preserveDateOnly {
			return time.Date(day.Year(), day.Month(), day.Day(), displayHour, 0, 0, 0, time.UTC).Format(ISOMillis)
		}

		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, c.loc).UTC().Format(ISOMillis)
	}

	t, ok := c.parse(value)
	if !ok {
		return ""
	}

	return t.UTC().Format(ISOMillis)
}

// FormatForDisplay renders a wire value as a human-friendly relative
// date: Today, Tomorrow, Yesterday, "In N days" / "N days ago" out to a
// week, "Next week" / "Last week" out to two, then "Jan 2" with the year
// appended only when it differs from the current one. With includeTime
// the resolved local clock time is appended as " at h:mm AM/PM".
// Returns "" for invalid input.
func (c *Converter) FormatForDisplay(value any, includeTime bool) string {
	dateStr := c.ToLocalDateString(value)
	if dateStr == "" {
		return ""
	}

	day, err := time.ParseInLocation(dateOnlyLayout, dateStr, c.loc)
	if err != nil {
		return ""
	}

	now := c.now().In(c.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)

	// Round, not truncate: DST makes some local days 23 or 25 hours.
	diff := int(math.Round(day.Sub(today).Hours() / 24))

	var out string

	switch {
	case diff == 0:
		out = "Today"
	case diff == 1:
		out = "Tomorrow"
	case diff == -1:
		out = "Yesterday"
	case diff >= 2 && diff <= 7:
		out = fmt.Sprintf("In %d days", diff)
	case diff <= -2 && diff >= -7:
		out = fmt.Sprintf("%d days ago", -diff)
	case diff >= 8 && diff <= 14:
		out = "Next week"
	case diff <= -8 && diff >= -14:
		out = "Last week"
	default:
		out = day.Format("Jan 2")
		if day.Year() != now.Year() {
			out = day.Format("Jan 2, 2006")
		}
	}

	if includeTime {
		if local := c.ToLocalDate(value, true); local != nil {
			out += local.Format(" at 3:04 PM")
		}
	}

	return out
}

// AddDays returns the wire value days away from the given base, or from
// now when base is nil. The result round-trips through the UTC
// conversion, so it is always a valid ISO-8601 string or "".
func (c *Converter) AddDays(base any, days int) string {
	t, ok := c.baseOrNow(base)
	if !ok {
		return ""
	}

	return t.AddDate(0, 0, days).UTC().Format(ISOMillis)
}

// StartOfDayUTC returns the UTC instant at which the base value's local
// calendar day begins. Base defaults to now.
func (c *Converter) StartOfDayUTC(base any) string {
	t, ok := c.baseOrNow(base)
	if !ok {
		return ""
	}

	local := t.In(c.loc)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc).UTC().Format(ISOMillis)
}

// EndOfDayUTC returns the UTC instant at which the base value's local
// calendar day ends (23:59:59.999 local). Base defaults to now.
func (c *Converter) EndOfDayUTC(base any) string {
	t, ok := c.baseOrNow(base)
	if !ok {
		return ""
	}

	local := t.In(c.loc)

	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999*int(time.Millisecond), c.loc).UTC().Format(ISOMillis)
}

func (c *Converter) baseOrNow(base any) (time.Time, bool) {
	if base == nil {
		return c.now(), true
	}

	return c.parse(base)
}

// NewLocalDateTimeValue captures an instant as the backend's
// LocalDateTimeValue: the wall clock in the converter's location, the
// offset (minutes east of UTC) that produced it, and the UTC instant.
func (c *Converter) NewLocalDateTimeValue(t time.Time) models.LocalDateTimeValue {
	local := t.In(c.loc)
	_, offsetSeconds := local.Zone()

	return models.LocalDateTimeValue{
		LocalTime:             local.Format(localTimeLayout),
		TimezoneOffsetMinutes: offsetSeconds / 60,
		UTCTime:               t.UTC().Format(ISOMillis),
	}
}

// LocalDateTimeFromWallClock builds a LocalDateTimeValue from a
// YYYY-MM-DDTHH:mm wall-clock string in the converter's location.
// Returns a zero value and false when the string does not parse.
func (c *Converter) LocalDateTimeFromWallClock(localTime string) (models.LocalDateTimeValue, bool) {
	t, err := time.ParseInLocation(localTimeLayout, localTime, c.loc)
	if err != nil {
		c.logger.Warn("failed to parse local time value", "value", localTime)

		return models.LocalDateTimeValue{}, false
	}

	return c.NewLocalDateTimeValue(t), true
}
