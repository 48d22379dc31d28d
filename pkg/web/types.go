package web

import "github.com/flockhq/flock/pkg/models"

// Envelope is the response wrapper the hosted backend uses, mirrored
// here so the client round-trips against the dev server unchanged.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func envelope(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// CreateWorkflowRequest is the payload for creating or replacing a
// workflow definition.
type CreateWorkflowRequest struct {
	Name        string                  `json:"name"        validate:"required"`
	Description string                  `json:"description"`
	Trigger     *models.WorkflowTrigger `json:"trigger,omitempty"`
	Steps       []*models.WorkflowStep  `json:"steps"`
}

func (r CreateWorkflowRequest) workflow() *models.Workflow {
	return &models.Workflow{
		Name:        r.Name,
		Description: r.Description,
		Trigger:     r.Trigger,
		Steps:       r.Steps,
	}
}

// TransitionRequest asks for a workflow status change.
type TransitionRequest struct {
	Status models.WorkflowStatus `json:"status" validate:"required"`
}

// CreateSessionRequest is the payload for scheduling a session.
type CreateSessionRequest struct {
	Title           string                    `json:"title"     validate:"required"`
	GroupID         string                    `json:"group_id,omitempty"`
	StartsAt        models.LocalDateTimeValue `json:"starts_at" validate:"required"`
	DurationMinutes int                       `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
}

// MarkAttendanceRequest records one member's status for a session.
type MarkAttendanceRequest struct {
	MemberID string                  `json:"member_id" validate:"required"`
	Status   models.AttendanceStatus `json:"status"    validate:"required"`
}

// CreateMemberRequest is the payload for adding a member to the roster.
type CreateMemberRequest struct {
	FirstName string              `json:"first_name" validate:"required"`
	LastName  string              `json:"last_name"`
	Email     string              `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string              `json:"phone,omitempty"`
	Status    models.MemberStatus `json:"status,omitempty"`
}

// CreateFollowUpRequest raises a pastoral follow-up task.
type CreateFollowUpRequest struct {
	MemberID   string `json:"member_id" validate:"required"`
	AssigneeID string `json:"assignee_id,omitempty"`
	Reason     string `json:"reason"    validate:"required"`
	DueDate    string `json:"due_date,omitempty"`
}

// AssignFollowUpRequest hands a follow-up to an assignee.
type AssignFollowUpRequest struct {
	AssigneeID string `json:"assignee_id" validate:"required"`
}
