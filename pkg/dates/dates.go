package dates

import (
	"time"

	"github.com/flockhq/flock/pkg/models"
)

// Local is the default converter, bound to the process timezone.
var Local = NewConverter(time.Local)

// ToLocalDate converts a UTC wire value using the process timezone.
func ToLocalDate(value any, preserveDateOnly bool) *time.Time {
	return Local.ToLocalDate(value, preserveDateOnly)
}

// ToLocalDateString renders the calendar date using the process timezone.
func ToLocalDateString(value any) string {
	return Local.ToLocalDateString(value)
}

// ToUTC converts a local value to the UTC wire format using the process
// timezone.
func ToUTC(value any, preserveDateOnly bool) string {
	return Local.ToUTC(value, preserveDateOnly)
}

// FormatForDisplay renders a relative date using the process timezone.
func FormatForDisplay(value any, includeTime bool) string {
	return Local.FormatForDisplay(value, includeTime)
}

// AddDays offsets a wire value by whole days using the process timezone.
func AddDays(base any, days int) string {
	return Local.AddDays(base, days)
}

// StartOfDayUTC returns the UTC start of the local calendar day.
func StartOfDayUTC(base any) string {
	return Local.StartOfDayUTC(base)
}

// EndOfDayUTC returns the UTC end of the local calendar day.
func EndOfDayUTC(base any) string {
	return Local.EndOfDayUTC(base)
}

// NewLocalDateTimeValue captures an instant in the process timezone.
func NewLocalDateTimeValue(t time.Time) models.LocalDateTimeValue {
	return Local.NewLocalDateTimeValue(t)
}
