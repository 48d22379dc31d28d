package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flockhq/flock/pkg/models"
	"github.com/flockhq/flock/pkg/persistence"
)

// MemberRepository handles roster-related database operations.
type MemberRepository struct {
	db *sql.DB
}

const memberColumns = `
	id
  , first_name
  , last_name
  , email
  , phone
  , status
  , joined_at
  , updated_at
`

func (r *MemberRepository) All(ctx context.Context) ([]*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY last_name ASC, first_name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}

	defer func() { _ = rows.Close() }()

	members := make([]*models.Member, 0)

	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}

		members = append(members, member)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}

	return members, nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

	member, err := scanMember(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.ErrMemberNotFound
		}

		return nil, fmt.Errorf("failed to scan member: %w", err)
	}

	return member, nil
}

func (r *MemberRepository) Save(ctx context.Context, member *models.Member) error {
	query := `
		INSERT INTO members (id, first_name, last_name, email, phone, status, joined_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		member.ID,
		member.FirstName,
		member.LastName,
		nullString(member.Email),
		nullString(member.Phone),
		member.Status,
		member.JoinedAt,
		member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}

	return nil
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM members WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}

	if affected == 0 {
		return persistence.ErrMemberNotFound
	}

	return nil
}

func scanMember(row rowScanner) (*models.Member, error) {
	var (
		member models.Member
		email  sql.NullString
		phone  sql.NullString
	)

	err := row.Scan(
		&member.ID,
		&member.FirstName,
		&member.LastName,
		&email,
		&phone,
		&member.Status,
		&member.JoinedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	member.Email = email.String
	member.Phone = phone.String

	return &member, nil
}
