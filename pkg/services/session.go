package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/flockhq/flock/pkg/eventbus"
	"github.com/flockhq/flock/pkg/events"
	"github.com/flockhq/flock/pkg/models"
	"github.com/flockhq/flock/pkg/persistence"
)

// ErrSessionNotFound is returned when a session is not found.
var ErrSessionNotFound = persistence.ErrSessionNotFound

// Session owns sessions and their attendance records.
type Session struct {
	persistence persistence.Persistence
	eventBus    eventbus.EventPublisher
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewSession creates a new session service.
func NewSession(persistence persistence.Persistence, eventBus eventbus.EventPublisher, logger *slog.Logger) *Session {
	return &Session{
		persistence: persistence,
		eventBus:    eventBus,
		validator:   validator.New(),
		logger:      logger,
	}
}

// List returns all sessions ordered by start time.
func (s *Session) List(ctx context.Context) ([]*models.Session, error) {
	sessions, err := s.persistence.SessionRepository().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, nil
}

// FetchByID returns one session.
func (s *Session) FetchByID(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.persistence.SessionRepository().GetByID(ctx, id)
	if err != nil {
		if persistence.IsSessionNotFound(err) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}

	return session, nil
}

// Create stores a new session and publishes its creation.
func (s *Session) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	if session.StartsAt.UTCTime == "" {
		return nil, NewValidationError("Create", "SESSION_TIME_REQUIRED",
			"session start time is required", ErrSessionTimeRequired)
	}

	session.ID = uuid.New().String()

	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	if err := s.validator.Struct(session); err != nil {
		return nil, NewValidationError("Create", "INVALID_SESSION", err.Error(), ErrInvalidRequest)
	}

	if err := s.persistence.SessionRepository().Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.publish(ctx, session.ID, events.SessionCreated{
		BaseEvent: events.NewBaseEvent(events.SessionCreatedEvent),
		SessionID: session.ID,
		Title:     session.Title,
		StartsAt:  session.StartsAt,
	})

	return session, nil
}

// Attendance returns all records for a session, failing when the
// session itself does not exist.
func (s *Session) Attendance(ctx context.Context, sessionID string) ([]*models.AttendanceRecord, error) {
	if _, err := s.FetchByID(ctx, sessionID); err != nil {
		return nil, err
	}

	records, err := s.persistence.AttendanceRepository().BySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	return records, nil
}

// MarkAttendance records one member's status for a session. Marking the
// same member again replaces the previous status; the event carries the
// replaced value.
func (s *Session) MarkAttendance(ctx context.Context, sessionID, memberID string, status models.AttendanceStatus) (*models.AttendanceRecord, error) {
	switch status {
	case models.AttendancePresent, models.AttendanceAbsent,
		models.AttendanceLate, models.AttendanceExcused:
	default:
		return nil, NewValidationError("MarkAttendance", "UNKNOWN_ATTENDANCE_STATUS",
			fmt.Sprintf("unknown attendance status %q", status), ErrUnknownAttendance)
	}

	if _, err := s.FetchByID(ctx, sessionID); err != nil {
		return nil, err
	}

	var previous models.AttendanceStatus

	existing, err := s.persistence.AttendanceRepository().BySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	for _, record := range existing {
		if record.MemberID == memberID {
			previous = record.Status

			break
		}
	}

	record := &models.AttendanceRecord{
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		MemberID:   memberID,
		Status:     status,
		RecordedAt: time.Now().UTC(),
	}

	if err := s.persistence.AttendanceRepository().Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save attendance record: %w", err)
	}

	s.publish(ctx, sessionID, events.AttendanceMarked{
		BaseEvent:      events.NewBaseEvent(events.AttendanceMarkedEvent),
		SessionID:      sessionID,
		MemberID:       memberID,
		Status:         status,
		PreviousStatus: previous,
	})

	return record, nil
}

func (s *Session) publish(ctx context.Context, key string, event eventbus.Event) {
	if s.eventBus == nil {
		return
	}

	if err := s.eventBus.Publish(ctx, key, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to publish event",
			"event_type", event.GetType(), "error", err)
	}
}
