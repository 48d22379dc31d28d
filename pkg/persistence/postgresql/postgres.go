// Package postgresql provides PostgreSQL persistence for the dev API
// server's entities.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/flockhq/flock/pkg/persistence"
	"github.com/flockhq/flock/pkg/persistence/sqlbase"
	_ "github.com/lib/pq" // postgres driver
)

// Persistence implements the persistence layer for PostgreSQL.
type Persistence struct {
	db         *sql.DB
	logger     *slog.Logger
	workflows  *WorkflowRepository
	sessions   *SessionRepository
	attendance *AttendanceRepository
	members    *MemberRepository
	followUps  *FollowUpRepository
}

// NewPersistence connects to PostgreSQL and runs pending migrations.
func NewPersistence(ctx context.Context, logger *slog.Logger, databaseURL string) (*Persistence, error) {
	database, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	err = database.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	migrationManager := sqlbase.NewMigrationManager(logger, database, migrations())

	err = migrationManager.RunMigrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Persistence{
		db:         database,
		logger:     logger,
		workflows:  &WorkflowRepository{db: database, logger: logger},
		sessions:   &SessionRepository{db: database},
		attendance: &AttendanceRepository{db: database},
		members:    &MemberRepository{db: database},
		followUps:  &FollowUpRepository{db: database},
	}, nil
}

// Close closes the database connection.
func (p *Persistence) Close(_ context.Context) error {
	if p.db != nil {
		err := p.db.Close()
		if err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	return nil
}

// HealthCheck verifies the database connection is healthy.
func (p *Persistence) HealthCheck(ctx context.Context) error {
	err := p.db.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

func (p *Persistence) WorkflowRepository() persistence.WorkflowRepository {
	return p.workflows
}

func (p *Persistence) SessionRepository() persistence.SessionRepository {
	return p.sessions
}

func (p *Persistence) AttendanceRepository() persistence.AttendanceRepository {
	return p.attendance
}

func (p *Persistence) MemberRepository() persistence.MemberRepository {
	return p.members
}

func (p *Persistence) FollowUpRepository() persistence.FollowUpRepository {
	return p.followUps
}
