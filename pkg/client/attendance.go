package client

import (
	"context"
	"net/http"
	"time"

	"github.com/flockhq/flock/pkg/models"
)

// Attendance returns the records for one session, cached per session.
func (c *Client) Attendance(ctx context.Context, sessionID string) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord

	collection := "attendance." + sessionID

	if err := c.getCollection(ctx, "/sessions/"+sessionID+"/attendance", collection, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// MarkAttendance records one member's status for a session.
func (c *Client) MarkAttendance(ctx context.Context, sessionID, memberID string, status models.AttendanceStatus) (*models.AttendanceRecord, error) {
	payload := map[string]any{
		"member_id": memberID,
		"status":    status,
	}

	var record models.AttendanceRecord

	if err := c.do(ctx, http.MethodPost, "/sessions/"+sessionID+"/attendance", payload, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// MarkAttendanceOptimistic applies the mark to the local records
// immediately, then confirms it with the backend. On failure the local
// change is reverted and the error returned, so check-in screens stay
// responsive without drifting from server state.
func (c *Client) MarkAttendanceOptimistic(ctx context.Context, records []*models.AttendanceRecord, sessionID, memberID string, status models.AttendanceStatus) ([]*models.AttendanceRecord, error) {
	updated, revert := applyMark(records, sessionID, memberID, status)

	confirmed, err := c.MarkAttendance(ctx, sessionID, memberID, status)
	if err != nil {
		return revert(), err
	}

	// Replace the provisional record with the server's copy.
	for i, record := range updated {
		if record.MemberID == memberID {
			updated[i] = confirmed

			break
		}
	}

	return updated, nil
}

// applyMark returns the records with the mark applied plus a revert
// function restoring the prior state.
func applyMark(records []*models.AttendanceRecord, sessionID, memberID string, status models.AttendanceStatus) ([]*models.AttendanceRecord, func() []*models.AttendanceRecord) {
	updated := make([]*models.AttendanceRecord, len(records))
	copy(updated, records)

	for i, record := range updated {
		if record.MemberID == memberID {
			previous := *record
			replaced := *record
			replaced.Status = status
			replaced.RecordedAt = time.Now().UTC()
			updated[i] = &replaced

			return updated, func() []*models.AttendanceRecord {
				restored := make([]*models.AttendanceRecord, len(records))
				copy(restored, records)
				restored[i] = &previous

				return restored
			}
		}
	}

	updated = append(updated, &models.AttendanceRecord{
		SessionID:  sessionID,
		MemberID:   memberID,
		Status:     status,
		RecordedAt: time.Now().UTC(),
	})

	return updated, func() []*models.AttendanceRecord {
		restored := make([]*models.AttendanceRecord, len(records))
		copy(restored, records)

		return restored
	}
}
