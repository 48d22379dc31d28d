package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flockhq/flock/pkg/models"
	"github.com/flockhq/flock/pkg/persistence"
	"github.com/flockhq/flock/pkg/persistence/file"
	"github.com/flockhq/flock/pkg/services"
)

func newSessionService(t *testing.T) *services.Session {
	t.Helper()

	return services.NewSession(file.NewPersistence(t.TempDir()), nil, nil)
}

func sundayService() *models.Session {
	return &models.Session{
		Title: "Sunday Service",
		StartsAt: models.LocalDateTimeValue{
			LocalTime:             "2026-03-01T10:00:00.000",
			TimezoneOffsetMinutes: -300,
			UTCTime:               "2026-03-01T15:00:00.000Z",
		},
		DurationMinutes: 90,
	}
}

func TestSessionService_CreateAndFetch(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sundayService())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := svc.FetchByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunday Service", got.Title)
	assert.Equal(t, -300, got.StartsAt.TimezoneOffsetMinutes)
}

func TestSessionService_CreateRequiresStartTime(t *testing.T) {
	svc := newSessionService(t)

	_, err := svc.Create(context.Background(), &models.Session{Title: "No time"})
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrSessionTimeRequired)
	assert.True(t, services.IsValidationError(err))
}

func TestSessionService_MarkAttendance(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sundayService())
	require.NoError(t, err)

	record, err := svc.MarkAttendance(ctx, created.ID, "member-1", models.AttendancePresent)
	require.NoError(t, err)
	assert.Equal(t, models.AttendancePresent, record.Status)

	// Re-marking replaces, not duplicates.
	_, err = svc.MarkAttendance(ctx, created.ID, "member-1", models.AttendanceLate)
	require.NoError(t, err)

	records, err := svc.Attendance(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendanceLate, records[0].Status)
}

func TestSessionService_MarkAttendanceUnknownStatus(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sundayService())
	require.NoError(t, err)

	_, err = svc.MarkAttendance(ctx, created.ID, "member-1", "attending")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrUnknownAttendance)
}

func TestSessionService_MarkAttendanceMissingSession(t *testing.T) {
	svc := newSessionService(t)

	_, err := svc.MarkAttendance(context.Background(), "missing", "member-1", models.AttendancePresent)
	assert.ErrorIs(t, err, persistence.ErrSessionNotFound)
}

func TestRosterService_MembersAndFollowUps(t *testing.T) {
	p := file.NewPersistence(t.TempDir())
	svc := services.NewRoster(p, nil, nil)
	ctx := context.Background()

	member, err := svc.SaveMember(ctx, &models.Member{FirstName: "Ana", LastName: "Silva"})
	require.NoError(t, err)
	assert.Equal(t, models.MemberStatusVisitor, member.Status)

	followUp, err := svc.CreateFollowUp(ctx, &models.FollowUp{
		MemberID: member.ID,
		Reason:   "first_time_visitor",
		DueDate:  "2026-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, models.FollowUpOpen, followUp.Status)

	assigned, err := svc.AssignFollowUp(ctx, followUp.ID, "leader-1")
	require.NoError(t, err)
	assert.Equal(t, "leader-1", assigned.AssigneeID)
	assert.Equal(t, models.FollowUpInProcess, assigned.Status)
}

func TestRosterService_FollowUpForUnknownMember(t *testing.T) {
	svc := services.NewRoster(file.NewPersistence(t.TempDir()), nil, nil)

	_, err := svc.CreateFollowUp(context.Background(), &models.FollowUp{
		MemberID: "ghost",
		Reason:   "pastoral_care",
	})
	assert.ErrorIs(t, err, persistence.ErrMemberNotFound)
}

func TestRosterService_Reference(t *testing.T) {
	svc := services.NewRoster(file.NewPersistence(t.TempDir()), nil, nil)

	ref := svc.Reference()
	assert.Len(t, ref.AttendanceStatuses, 4)
	assert.NotEmpty(t, ref.FollowUpReasons)
	assert.NotEmpty(t, ref.GroupTypes)
}
