package models

// TriggerType identifies the condition under which a workflow begins
// execution. Evaluation happens entirely on the backend.
type TriggerType string

const (
	TriggerManual           TriggerType = "manual"
	TriggerSchedule         TriggerType = "schedule"
	TriggerAttendanceRule   TriggerType = "attendance_rule"
	TriggerFirstTimeVisitor TriggerType = "first_time_visitor"
	TriggerMemberCreated    TriggerType = "member_created"
	TriggerMemberUpdated    TriggerType = "member_updated"
)

// WorkflowTrigger is a tagged variant over the trigger types. Only the
// fields relevant to Type are populated; the rest stay at their zero
// value and are omitted from the wire payload.
type WorkflowTrigger struct {
	Type TriggerType `json:"type" validate:"required,oneof=manual schedule attendance_rule first_time_visitor member_created member_updated"`

	// Schedule triggers carry a standard 5-field cron expression.
	CronExpression string `json:"cron_expression,omitempty"`

	// Attendance-rule triggers describe who matches and over what window.
	AttendanceType string                `json:"attendance_type,omitempty"` // "missed" or "attended"
	Frequency      int                   `json:"frequency,omitempty"`
	TimeWindowDays int                   `json:"time_window_days,omitempty"`
	Conditions     *AttendanceConditions `json:"conditions,omitempty"`
}

// ConditionType identifies the attendance-rule condition shape.
type ConditionType string

const (
	ConditionAbsencesInPeriod     ConditionType = "absences_in_period"
	ConditionConsecutiveAbsences  ConditionType = "consecutive_absences"
	ConditionNoAttendanceDays     ConditionType = "no_attendance_days"
	ConditionAttendancePercentage ConditionType = "attendance_percentage"
)

// AttendanceConditions is a tagged variant over the condition shapes.
// Exactly one of the pointers must be populated.
type AttendanceConditions struct {
	AbsencesInPeriod     *AbsencesInPeriod     `json:"absences_in_period,omitempty"`
	ConsecutiveAbsences  *ConsecutiveAbsences  `json:"consecutive_absences,omitempty"`
	NoAttendanceDays     *NoAttendanceDays     `json:"no_attendance_days,omitempty"`
	AttendancePercentage *AttendancePercentage `json:"attendance_percentage,omitempty"`
}

// AbsencesInPeriod matches members absent Count times within PeriodDays.
type AbsencesInPeriod struct {
	Count      int `json:"count"       validate:"gt=0"`
	PeriodDays int `json:"period_days" validate:"gt=0"`
}

// ConsecutiveAbsences matches members absent from Count sessions in a row.
type ConsecutiveAbsences struct {
	Count int `json:"count" validate:"gt=0"`
}

// NoAttendanceDays matches members with no attendance for Days days.
type NoAttendanceDays struct {
	Days int `json:"days" validate:"gt=0"`
}

// AttendancePercentage matches members whose attendance rate over
// PeriodDays falls below Percentage.
type AttendancePercentage struct {
	Percentage int `json:"percentage"  validate:"gt=0,lte=100"`
	PeriodDays int `json:"period_days" validate:"gt=0"`
}

// Kind returns the populated condition type. The second return is false
// when zero or more than one sub-variant is set.
func (c *AttendanceConditions) Kind() (ConditionType, bool) {
	var (
		kind  ConditionType
		count int
	)

	if c.AbsencesInPeriod != nil {
		kind = ConditionAbsencesInPeriod
		count++
	}

	if c.ConsecutiveAbsences != nil {
		kind = ConditionConsecutiveAbsences
		count++
	}

	if c.NoAttendanceDays != nil {
		kind = ConditionNoAttendanceDays
		count++
	}

	if c.AttendancePercentage != nil {
		kind = ConditionAttendancePercentage
		count++
	}

	if count != 1 {
		return "", false
	}

	return kind, true
}
