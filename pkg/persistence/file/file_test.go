package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flockhq/flock/pkg/models"
	"github.com/flockhq/flock/pkg/persistence"
	"github.com/flockhq/flock/pkg/persistence/file"
)

func TestNewPersistence_StripsFileScheme(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	p := file.NewPersistence("file://" + root)

	workflow := &models.Workflow{
		ID:     uuid.New().String(),
		Name:   "Scheme test",
		Status: models.WorkflowStatusDraft,
	}

	require.NoError(t, p.WorkflowRepository().Save(ctx, workflow))

	_, err := os.Stat(filepath.Join(root, "workflows", workflow.ID+".json"))
	require.NoError(t, err)
}

func TestWorkflowRepository_RoundTrip(t *testing.T) {
	p := file.NewPersistence(t.TempDir())
	ctx := context.Background()

	workflow := &models.Workflow{
		ID:   uuid.New().String(),
		Name: "Absence follow-up",
		Trigger: &models.WorkflowTrigger{
			Type: models.TriggerAttendanceRule,
			Conditions: &models.AttendanceConditions{
				ConsecutiveAbsences: &models.ConsecutiveAbsences{Count: 3},
			},
		},
		Steps: []*models.WorkflowStep{
			{ID: uuid.New().String(), Type: models.StepCreateNote, Name: "Log absence", Order: 1},
		},
		Status:    models.WorkflowStatusDraft,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	require.NoError(t, p.WorkflowRepository().Save(ctx, workflow))

	got, err := p.WorkflowRepository().GetByID(ctx, workflow.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.Name, got.Name)
	require.NotNil(t, got.Trigger)
	require.NotNil(t, got.Trigger.Conditions)

	kind, ok := got.Trigger.Conditions.Kind()
	require.True(t, ok)
	assert.Equal(t, models.ConditionConsecutiveAbsences, kind)

	all, err := p.WorkflowRepository().All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, p.WorkflowRepository().Delete(ctx, workflow.ID))

	_, err = p.WorkflowRepository().GetByID(ctx, workflow.ID)
	assert.ErrorIs(t, err, persistence.ErrWorkflowNotFound)
}

func TestWorkflowRepository_NotFound(t *testing.T) {
	p := file.NewPersistence(t.TempDir())
	ctx := context.Background()

	_, err := p.WorkflowRepository().GetByID(ctx, "missing")
	assert.ErrorIs(t, err, persistence.ErrWorkflowNotFound)

	err = p.WorkflowRepository().Delete(ctx, "missing")
	assert.ErrorIs(t, err, persistence.ErrWorkflowNotFound)
}

func TestAttendanceRepository_ReplacesByMember(t *testing.T) {
	p := file.NewPersistence(t.TempDir())
	ctx := context.Background()

	sessionID := uuid.New().String()
	memberID := uuid.New().String()

	record := &models.AttendanceRecord{
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		MemberID:   memberID,
		Status:     models.AttendancePresent,
		RecordedAt: time.Now().UTC(),
	}

	require.NoError(t, p.AttendanceRepository().Save(ctx, record))

	record.Status = models.AttendanceExcused
	require.NoError(t, p.AttendanceRepository().Save(ctx, record))

	other := &models.AttendanceRecord{
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		MemberID:   uuid.New().String(),
		Status:     models.AttendanceAbsent,
		RecordedAt: time.Now().UTC(),
	}
	require.NoError(t, p.AttendanceRepository().Save(ctx, other))

	records, err := p.AttendanceRepository().BySession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.AttendanceExcused, records[0].Status)
}

func TestAttendanceRepository_EmptySession(t *testing.T) {
	p := file.NewPersistence(t.TempDir())

	records, err := p.AttendanceRepository().BySession(context.Background(), "never-marked")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSessionRepository_OrderedByStart(t *testing.T) {
	p := file.NewPersistence(t.TempDir())
	ctx := context.Background()

	later := &models.Session{
		ID:    uuid.New().String(),
		Title: "Evening Service",
		StartsAt: models.LocalDateTimeValue{
			LocalTime:             "2026-03-01T18:00:00.000",
			TimezoneOffsetMinutes: 0,
			UTCTime:               "2026-03-01T18:00:00.000Z",
		},
	}
	earlier := &models.Session{
		ID:    uuid.New().String(),
		Title: "Morning Service",
		StartsAt: models.LocalDateTimeValue{
			LocalTime:             "2026-03-01T10:00:00.000",
			TimezoneOffsetMinutes: 0,
			UTCTime:               "2026-03-01T10:00:00.000Z",
		},
	}

	require.NoError(t, p.SessionRepository().Save(ctx, later))
	require.NoError(t, p.SessionRepository().Save(ctx, earlier))

	sessions, err := p.SessionRepository().All(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "Morning Service", sessions[0].Title)
}

func TestHealthCheck(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	p := file.NewPersistence(root)
	assert.NoError(t, p.HealthCheck(ctx))

	missing := file.NewPersistence(filepath.Join(root, "does-not-exist"))
	assert.Error(t, missing.HealthCheck(ctx))
}
