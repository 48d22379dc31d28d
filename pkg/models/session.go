package models

import "time"

// Session is one gathering members can attend: a service, group meeting
// or class. StartsAt keeps both the scheduler's wall-clock time and the
// derived UTC instant.
type Session struct {
	ID              string             `json:"id"`
	Title           string             `json:"title" validate:"required"`
	GroupID         string             `json:"group_id,omitempty"`
	StartsAt        LocalDateTimeValue `json:"starts_at" validate:"required"`
	DurationMinutes int                `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// SessionCreateResult is the typed outcome of a session-creation flow:
// either a created session or an explicit cancellation. It replaces the
// loosely-typed result payloads the old client passed around.
type SessionCreateResult struct {
	session   *Session
	cancelled bool
}

// SessionCreated wraps a successfully created session.
func SessionCreated(s *Session) SessionCreateResult {
	return SessionCreateResult{session: s}
}

// SessionCancelled reports that the flow was abandoned before creation.
func SessionCancelled() SessionCreateResult {
	return SessionCreateResult{cancelled: true}
}

// Created returns the session when the flow completed.
func (r SessionCreateResult) Created() (*Session, bool) {
	return r.session, r.session != nil
}

// Cancelled reports whether the flow was abandoned.
func (r SessionCreateResult) Cancelled() bool {
	return r.cancelled
}
