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

// Roster owns the member roster and pastoral follow-up tasks.
type Roster struct {
	persistence persistence.Persistence
	eventBus    eventbus.EventPublisher
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewRoster creates a new roster service.
func NewRoster(persistence persistence.Persistence, eventBus eventbus.EventPublisher, logger *slog.Logger) *Roster {
	return &Roster{
		persistence: persistence,
		eventBus:    eventBus,
		validator:   validator.New(),
		logger:      logger,
	}
}

// Members returns the full roster.
func (r *Roster) Members(ctx context.Context) ([]*models.Member, error) {
	members, err := r.persistence.MemberRepository().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return members, nil
}

// MemberByID returns one member.
func (r *Roster) MemberByID(ctx context.Context, id string) (*models.Member, error) {
	member, err := r.persistence.MemberRepository().GetByID(ctx, id)
	if err != nil {
		if persistence.IsMemberNotFound(err) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}

	return member, nil
}

// SaveMember creates or updates a member.
func (r *Roster) SaveMember(ctx context.Context, member *models.Member) (*models.Member, error) {
	now := time.Now().UTC()

	if member.ID == "" {
		member.ID = uuid.New().String()
		member.JoinedAt = now
	}

	member.UpdatedAt = now

	if member.Status == "" {
		member.Status = models.MemberStatusVisitor
	}

	if err := r.validator.Struct(member); err != nil {
		return nil, NewValidationError("SaveMember", "INVALID_MEMBER", err.Error(), ErrInvalidRequest)
	}

	if err := r.persistence.MemberRepository().Save(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to save member: %w", err)
	}

	return member, nil
}

// FollowUps returns all follow-up tasks.
func (r *Roster) FollowUps(ctx context.Context) ([]*models.FollowUp, error) {
	followUps, err := r.persistence.FollowUpRepository().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow-ups: %w", err)
	}

	return followUps, nil
}

// CreateFollowUp raises a follow-up task for a member. DueDate is
// date-only and travels as written.
func (r *Roster) CreateFollowUp(ctx context.Context, followUp *models.FollowUp) (*models.FollowUp, error) {
	followUp.ID = uuid.New().String()

	now := time.Now().UTC()
	followUp.CreatedAt = now
	followUp.UpdatedAt = now

	if followUp.Status == "" {
		followUp.Status = models.FollowUpOpen
	}

	if err := r.validator.Struct(followUp); err != nil {
		return nil, NewValidationError("CreateFollowUp", "INVALID_FOLLOWUP", err.Error(), ErrInvalidRequest)
	}

	if _, err := r.MemberByID(ctx, followUp.MemberID); err != nil {
		return nil, err
	}

	if err := r.persistence.FollowUpRepository().Save(ctx, followUp); err != nil {
		return nil, fmt.Errorf("failed to save follow-up: %w", err)
	}

	if followUp.AssigneeID != "" {
		r.publishAssigned(ctx, followUp)
	}

	return followUp, nil
}

// AssignFollowUp hands a follow-up to an assignee and publishes the
// assignment.
func (r *Roster) AssignFollowUp(ctx context.Context, followUpID, assigneeID string) (*models.FollowUp, error) {
	followUp, err := r.persistence.FollowUpRepository().GetByID(ctx, followUpID)
	if err != nil {
		if persistence.IsFollowUpNotFound(err) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to fetch follow-up: %w", err)
	}

	followUp.AssigneeID = assigneeID
	followUp.Status = models.FollowUpInProcess
	followUp.UpdatedAt = time.Now().UTC()

	if err := r.persistence.FollowUpRepository().Save(ctx, followUp); err != nil {
		return nil, fmt.Errorf("failed to save follow-up: %w", err)
	}

	r.publishAssigned(ctx, followUp)

	return followUp, nil
}

// Assignees returns who can own follow-up tasks. The dev server has no
// separate leader roster, so active members double as assignees.
func (r *Roster) Assignees(ctx context.Context) ([]*models.Assignee, error) {
	members, err := r.Members(ctx)
	if err != nil {
		return nil, err
	}

	assignees := make([]*models.Assignee, 0, len(members))

	for _, member := range members {
		if member.Status != models.MemberStatusActive {
			continue
		}

		name := member.FirstName
		if member.LastName != "" {
			name += " " + member.LastName
		}

		assignees = append(assignees, &models.Assignee{
			ID:    member.ID,
			Name:  name,
			Email: member.Email,
		})
	}

	return assignees, nil
}

// Reference returns the static lookup set served to form builders.
func (r *Roster) Reference() *models.ReferenceData {
	return &models.ReferenceData{
		AttendanceStatuses: []models.AttendanceStatus{
			models.AttendancePresent,
			models.AttendanceAbsent,
			models.AttendanceLate,
			models.AttendanceExcused,
		},
		FollowUpReasons: []string{
			"first_time_visitor",
			"missed_services",
			"pastoral_care",
			"prayer_request",
		},
		GroupTypes: []string{
			"service",
			"small_group",
			"class",
			"youth",
		},
	}
}

func (r *Roster) publishAssigned(ctx context.Context, followUp *models.FollowUp) {
	if r.eventBus == nil {
		return
	}

	event := events.FollowUpAssigned{
		BaseEvent:  events.NewBaseEvent(events.FollowUpAssignedEvent),
		FollowUpID: followUp.ID,
		MemberID:   followUp.MemberID,
		AssigneeID: followUp.AssigneeID,
	}

	if err := r.eventBus.Publish(ctx, followUp.ID, event); err != nil && r.logger != nil {
		r.logger.WarnContext(ctx, "failed to publish follow-up assignment",
			"followup_id", followUp.ID, "error", err)
	}
}
