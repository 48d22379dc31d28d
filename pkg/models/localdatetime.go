package models

// LocalDateTimeValue carries a wall-clock local time together with the
// offset that produced it, so the backend can reconstruct both the
// instant and the scheduler's local view. Field names are part of the
// backend contract and stay camelCase on the wire.
//
// Invariant: UTCTime equals LocalTime interpreted at an offset of
// TimezoneOffsetMinutes minutes east of UTC.
type LocalDateTimeValue struct {
	LocalTime             string `json:"localTime"             validate:"required"` // YYYY-MM-DDTHH:mm
	TimezoneOffsetMinutes int    `json:"timezoneOffsetMinutes"`
	UTCTime               string `json:"utcTime"               validate:"required"` // ISO-8601
}
