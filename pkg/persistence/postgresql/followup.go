package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flockhq/flock/pkg/models"
	"github.com/flockhq/flock/pkg/persistence"
)

// FollowUpRepository handles follow-up-related database operations.
type FollowUpRepository struct {
	db *sql.DB
}

const followUpColumns = `
	id
  , member_id
  , assignee_id
  , reason
  , status
  , due_date
  , created_at
  , updated_at
`

func (r *FollowUpRepository) All(ctx context.Context) ([]*models.FollowUp, error) {
	query := `SELECT ` + followUpColumns + ` FROM follow_ups ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query follow-ups: %w", err)
	}

	defer func() { _ = rows.Close() }()

	followUps := make([]*models.FollowUp, 0)

	for rows.Next() {
		followUp, err := scanFollowUp(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan follow-up: %w", err)
		}

		followUps = append(followUps, followUp)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("error iterating follow-ups: %w", err)
	}

	return followUps, nil
}

func (r *FollowUpRepository) GetByID(ctx context.Context, id string) (*models.FollowUp, error) {
	query := `SELECT ` + followUpColumns + ` FROM follow_ups WHERE id = $1`

	followUp, err := scanFollowUp(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.ErrFollowUpNotFound
		}

		return nil, fmt.Errorf("failed to scan follow-up: %w", err)
	}

	return followUp, nil
}

func (r *FollowUpRepository) Save(ctx context.Context, followUp *models.FollowUp) error {
	query := `
		INSERT INTO follow_ups (id, member_id, assignee_id, reason, status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			assignee_id = EXCLUDED.assignee_id,
			reason = EXCLUDED.reason,
			status = EXCLUDED.status,
			due_date = EXCLUDED.due_date,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		followUp.ID,
		followUp.MemberID,
		nullString(followUp.AssigneeID),
		followUp.Reason,
		followUp.Status,
		nullString(followUp.DueDate),
		followUp.CreatedAt,
		followUp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save follow-up: %w", err)
	}

	return nil
}

func (r *FollowUpRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM follow_ups WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete follow-up: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}

	if affected == 0 {
		return persistence.ErrFollowUpNotFound
	}

	return nil
}

func scanFollowUp(row rowScanner) (*models.FollowUp, error) {
	var (
		followUp   models.FollowUp
		assigneeID sql.NullString
		dueDate    sql.NullString
	)

	err := row.Scan(
		&followUp.ID,
		&followUp.MemberID,
		&assigneeID,
		&followUp.Reason,
		&followUp.Status,
		&dueDate,
		&followUp.CreatedAt,
		&followUp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	followUp.AssigneeID = assigneeID.String
	followUp.DueDate = dueDate.String

	return &followUp, nil
}
