package models

import "time"

// AttendanceStatus is the recorded outcome for one member at one session.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// AttendanceRecord marks one member's attendance at one session.
type AttendanceRecord struct {
	ID         string           `json:"id"`
	SessionID  string           `json:"session_id" validate:"required"`
	MemberID   string           `json:"member_id"  validate:"required"`
	Status     AttendanceStatus `json:"status"     validate:"required,oneof=present absent late excused"`
	RecordedAt time.Time        `json:"recorded_at"`
}

// FollowUpStatus tracks a follow-up task through its life.
type FollowUpStatus string

const (
	FollowUpOpen      FollowUpStatus = "open"
	FollowUpInProcess FollowUpStatus = "in_process"
	FollowUpDone      FollowUpStatus = "done"
)

// FollowUp is a pastoral-care task raised for a member, usually by a
// workflow (missed services, first-time visit) or by hand.
type FollowUp struct {
	ID         string         `json:"id"`
	MemberID   string         `json:"member_id" validate:"required"`
	AssigneeID string         `json:"assignee_id,omitempty"`
	Reason     string         `json:"reason"    validate:"required"`
	Status     FollowUpStatus `json:"status"    validate:"required,oneof=open in_process done"`
	DueDate    string         `json:"due_date,omitempty"` // date-only, transported as noon UTC
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// ReferenceData is the static lookup set the backend serves for form
// population.
type ReferenceData struct {
	AttendanceStatuses []AttendanceStatus `json:"attendance_statuses"`
	FollowUpReasons    []string           `json:"follow_up_reasons"`
	GroupTypes         []string           `json:"group_types"`
}
