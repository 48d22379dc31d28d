// Package persistence abstracts storage for the dev API server, which
// implements the same REST contract as the hosted backend.
package persistence

import (
	"context"

	"github.com/flockhq/flock/pkg/models"
)

type Persistence interface {
	WorkflowRepository() WorkflowRepository
	SessionRepository() SessionRepository
	AttendanceRepository() AttendanceRepository
	MemberRepository() MemberRepository
	FollowUpRepository() FollowUpRepository

	HealthCheck(ctx context.Context) error
	Close(ctx context.Context) error
}

type WorkflowRepository interface {
	All(ctx context.Context) ([]*models.Workflow, error)
	GetByID(ctx context.Context, id string) (*models.Workflow, error)
	Save(ctx context.Context, workflow *models.Workflow) error
	Delete(ctx context.Context, id string) error
}

type SessionRepository interface {
	All(ctx context.Context) ([]*models.Session, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error
}

type AttendanceRepository interface {
	BySession(ctx context.Context, sessionID string) ([]*models.AttendanceRecord, error)
	Save(ctx context.Context, record *models.AttendanceRecord) error
}

type MemberRepository interface {
	All(ctx context.Context) ([]*models.Member, error)
	GetByID(ctx context.Context, id string) (*models.Member, error)
	Save(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id string) error
}

type FollowUpRepository interface {
	All(ctx context.Context) ([]*models.FollowUp, error)
	GetByID(ctx context.Context, id string) (*models.FollowUp, error)
	Save(ctx context.Context, followUp *models.FollowUp) error
	Delete(ctx context.Context, id string) error
}
