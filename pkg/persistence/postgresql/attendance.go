package postgresql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/flockhq/flock/pkg/models"
)

// AttendanceRepository handles attendance-related database operations.
// One row per (session, member); marking again replaces the status.
type AttendanceRepository struct {
	db *sql.DB
}

func (r *AttendanceRepository) BySession(ctx context.Context, sessionID string) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT id, session_id, member_id, status, recorded_at
		FROM attendance_records
		WHERE session_id = $1
		ORDER BY recorded_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}

	defer func() { _ = rows.Close() }()

	records := make([]*models.AttendanceRecord, 0)

	for rows.Next() {
		var record models.AttendanceRecord

		err := rows.Scan(&record.ID, &record.SessionID, &record.MemberID, &record.Status, &record.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}

		records = append(records, &record)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("error iterating attendance records: %w", err)
	}

	return records, nil
}

func (r *AttendanceRepository) Save(ctx context.Context, record *models.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (id, session_id, member_id, status, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, member_id) DO UPDATE SET
			status = EXCLUDED.status,
			recorded_at = EXCLUDED.recorded_at
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.SessionID,
		record.MemberID,
		record.Status,
		record.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save attendance record: %w", err)
	}

	return nil
}
