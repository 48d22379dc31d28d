// Package events defines the domain events the client publishes when
// server state changes are confirmed.
package events

import (
	"time"

	"github.com/flockhq/flock/pkg/models"
	"github.com/google/uuid"
)

type EventType string

// Topic carries every domain event.
const Topic = "flock.events"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	SessionCreatedEvent        EventType = "session.created"
	AttendanceMarkedEvent      EventType = "attendance.marked"
	WorkflowStatusChangedEvent EventType = "workflow.status_changed"
	FollowUpAssignedEvent      EventType = "followup.assigned"
)

type BaseEvent struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NewBaseEvent creates the shared envelope for a domain event.
func NewBaseEvent(eventType EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
	}
}

type SessionCreated struct {
	BaseEvent

	SessionID string                    `json:"session_id"`
	Title     string                    `json:"title"`
	StartsAt  models.LocalDateTimeValue `json:"starts_at"`
}

func (e SessionCreated) GetType() EventType {
	return SessionCreatedEvent
}

type AttendanceMarked struct {
	BaseEvent

	SessionID      string                  `json:"session_id"`
	MemberID       string                  `json:"member_id"`
	Status         models.AttendanceStatus `json:"status"`
	PreviousStatus models.AttendanceStatus `json:"previous_status,omitempty"`
}

func (e AttendanceMarked) GetType() EventType {
	return AttendanceMarkedEvent
}

type WorkflowStatusChanged struct {
	BaseEvent

	WorkflowID string                `json:"workflow_id"`
	From       models.WorkflowStatus `json:"from"`
	To         models.WorkflowStatus `json:"to"`
}

func (e WorkflowStatusChanged) GetType() EventType {
	return WorkflowStatusChangedEvent
}

type FollowUpAssigned struct {
	BaseEvent

	FollowUpID string `json:"followup_id"`
	MemberID   string `json:"member_id"`
	AssigneeID string `json:"assignee_id"`
}

func (e FollowUpAssigned) GetType() EventType {
	return FollowUpAssignedEvent
}
