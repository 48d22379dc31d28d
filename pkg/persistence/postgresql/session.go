package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flockhq/flock/pkg/models"
	"github.com/flockhq/flock/pkg/persistence"
)

// SessionRepository handles session-related database operations.
type SessionRepository struct {
	db *sql.DB
}

const sessionColumns = `
	id
  , title
  , group_id
  , local_time
  , timezone_offset_minutes
  , utc_time
  , duration_minutes
  , created_at
  , updated_at
`

func (r *SessionRepository) All(ctx context.Context) ([]*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY utc_time ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}

	defer func() { _ = rows.Close() }()

	sessions := make([]*models.Session, 0)

	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		sessions = append(sessions, session)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}

	return sessions, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	session, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.ErrSessionNotFound
		}

		return nil, fmt.Errorf("failed to scan session: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (id, title, group_id, local_time, timezone_offset_minutes, utc_time, duration_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			group_id = EXCLUDED.group_id,
			local_time = EXCLUDED.local_time,
			timezone_offset_minutes = EXCLUDED.timezone_offset_minutes,
			utc_time = EXCLUDED.utc_time,
			duration_minutes = EXCLUDED.duration_minutes,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.Title,
		nullString(session.GroupID),
		session.StartsAt.LocalTime,
		session.StartsAt.TimezoneOffsetMinutes,
		session.StartsAt.UTCTime,
		session.DurationMinutes,
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}

	if affected == 0 {
		return persistence.ErrSessionNotFound
	}

	return nil
}

func scanSession(row rowScanner) (*models.Session, error) {
	var (
		session models.Session
		groupID sql.NullString
	)

	err := row.Scan(
		&session.ID,
		&session.Title,
		&groupID,
		&session.StartsAt.LocalTime,
		&session.StartsAt.TimezoneOffsetMinutes,
		&session.StartsAt.UTCTime,
		&session.DurationMinutes,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	session.GroupID = groupID.String

	return &session, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
