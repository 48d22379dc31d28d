package workflow

import (
	"testing"

	"github.com/flockhq/flock/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrigger_Manual(t *testing.T) {
	trigger, err := BuildTrigger(models.TriggerManual, TriggerParams{})
	require.NoError(t, err)

	assert.Equal(t, models.TriggerManual, trigger.Type)
	assert.Nil(t, trigger.Conditions)
}

func TestBuildTrigger_Schedule(t *testing.T) {
	trigger, err := BuildTrigger(models.TriggerSchedule, TriggerParams{CronExpression: "0 9 * * 1"})
	require.NoError(t, err)

	assert.Equal(t, "0 9 * * 1", trigger.CronExpression)
}

func TestBuildTrigger_ScheduleRejectsBadCron(t *testing.T) {
	_, err := BuildTrigger(models.TriggerSchedule, TriggerParams{CronExpression: "every monday"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCron)
}

func TestBuildTrigger_AttendanceRule(t *testing.T) {
	trigger, err := BuildTrigger(models.TriggerAttendanceRule, TriggerParams{
		AttendanceType: "missed",
		Frequency:      3,
		TimeWindowDays: 21,
		Conditions: &models.AttendanceConditions{
			AbsencesInPeriod: &models.AbsencesInPeriod{Count: 3, PeriodDays: 21},
		},
	})
	require.NoError(t, err)

	kind, ok := trigger.Conditions.Kind()
	require.True(t, ok)
	assert.Equal(t, models.ConditionAbsencesInPeriod, kind)
}

func TestBuildTrigger_AttendanceRuleRequiresExactlyOneCondition(t *testing.T) {
	_, err := BuildTrigger(models.TriggerAttendanceRule, TriggerParams{})
	assert.ErrorIs(t, err, ErrConditionRequired)

	_, err = BuildTrigger(models.TriggerAttendanceRule, TriggerParams{
		Conditions: &models.AttendanceConditions{},
	})
	assert.ErrorIs(t, err, ErrConditionRequired)

	_, err = BuildTrigger(models.TriggerAttendanceRule, TriggerParams{
		Conditions: &models.AttendanceConditions{
			AbsencesInPeriod:    &models.AbsencesInPeriod{Count: 3, PeriodDays: 21},
			ConsecutiveAbsences: &models.ConsecutiveAbsences{Count: 2},
		},
	})
	assert.ErrorIs(t, err, ErrConditionRequired)
}

func TestBuildTrigger_UnknownKind(t *testing.T) {
	_, err := BuildTrigger("push_notification", TriggerParams{})
	assert.ErrorIs(t, err, ErrUnknownTriggerType)
}

func TestDescribeTrigger(t *testing.T) {
	tests := []struct {
		name    string
		trigger *models.WorkflowTrigger
		want    string
	}{
		{
			name:    "attendance rule",
			trigger: &models.WorkflowTrigger{Type: models.TriggerAttendanceRule, AttendanceType: "missed", Frequency: 3, TimeWindowDays: 21},
			want:    "Trigger when someone has missed 3 times in the past 21 days",
		},
		{
			name:    "attendance rule singular",
			trigger: &models.WorkflowTrigger{Type: models.TriggerAttendanceRule, AttendanceType: "missed", Frequency: 1, TimeWindowDays: 7},
			want:    "Trigger when someone has missed 1 time in the past 7 days",
		},
		{
			name:    "manual",
			trigger: &models.WorkflowTrigger{Type: models.TriggerManual},
			want:    "Manual trigger",
		},
		{
			name:    "schedule",
			trigger: &models.WorkflowTrigger{Type: models.TriggerSchedule, CronExpression: "0 9 * * 1"},
			want:    "Trigger on schedule 0 9 * * 1",
		},
		{
			name:    "first time visitor",
			trigger: &models.WorkflowTrigger{Type: models.TriggerFirstTimeVisitor},
			want:    "Trigger when someone visits for the first time",
		},
		{
			name:    "member created",
			trigger: &models.WorkflowTrigger{Type: models.TriggerMemberCreated},
			want:    "Trigger when a new member is added",
		},
		{
			name:    "member updated",
			trigger: &models.WorkflowTrigger{Type: models.TriggerMemberUpdated},
			want:    "Trigger when a member profile is updated",
		},
		{
			name:    "nil",
			trigger: nil,
			want:    "No trigger configured",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DescribeTrigger(tc.trigger))
		})
	}
}

func makeSteps(names ...string) []*models.WorkflowStep {
	var steps []*models.WorkflowStep
	for _, name := range names {
		steps = AddStep(steps, NewStep(models.StepManualTask, name, nil))
	}

	return steps
}

func assertContiguous(t *testing.T, steps []*models.WorkflowStep) {
	t.Helper()

	for i, step := range steps {
		assert.Equal(t, i+1, step.Order, "position %d", i)
	}
}

func TestAddStep_AssignsNextOrder(t *testing.T) {
	steps := makeSteps("a", "b", "c")

	require.Len(t, steps, 3)
	assertContiguous(t, steps)
}

func TestReorderSteps_AllMoves(t *testing.T) {
	// Every (from, to) pair over a five-element list keeps the order
	// fields a contiguous 1..N run.
	for from := range 5 {
		for to := range 5 {
			steps := makeSteps("a", "b", "c", "d", "e")
			steps = ReorderSteps(steps, from, to)

			require.Len(t, steps, 5, "from=%d to=%d", from, to)
			assertContiguous(t, steps)
		}
	}
}

func TestReorderSteps_MovesElement(t *testing.T) {
	steps := makeSteps("a", "b", "c")
	steps = ReorderSteps(steps, 0, 2)

	assert.Equal(t, "b", steps[0].Name)
	assert.Equal(t, "c", steps[1].Name)
	assert.Equal(t, "a", steps[2].Name)
	assertContiguous(t, steps)
}

func TestReorderSteps_OutOfRangeRenumbersOnly(t *testing.T) {
	steps := makeSteps("a", "b")
	steps[0].Order = 7 // deliberately broken

	steps = ReorderSteps(steps, 5, 0)

	assert.Equal(t, "a", steps[0].Name)
	assertContiguous(t, steps)
}

func TestDescribeSteps(t *testing.T) {
	var steps []*models.WorkflowStep
	steps = AddStep(steps, NewStep(models.StepManualTask, "Call them", nil))
	steps = AddStep(steps, NewStep(models.StepManualTask, "Visit them", nil))
	steps = AddStep(steps, NewStep(models.StepSendEmail, "Check-in email", nil))
	steps = AddStep(steps, NewStep(models.StepWait, "Give it a week", nil))

	assert.Equal(t, "2 tasks, 1 email, 1 wait", DescribeSteps(steps))
	assert.Equal(t, "No steps", DescribeSteps(nil))
}

func TestValidate_ActiveRequiresSteps(t *testing.T) {
	definition := &models.Workflow{
		Name:    "Missed you",
		Status:  models.WorkflowStatusActive,
		Trigger: &models.WorkflowTrigger{Type: models.TriggerManual},
		Steps:   []*models.WorkflowStep{},
	}

	result := Validate(definition)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "step")

	definition.Status = models.WorkflowStatusDraft
	result = Validate(definition)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidate_ActiveRequiresNameAndTrigger(t *testing.T) {
	definition := &models.Workflow{
		Status: models.WorkflowStatusActive,
		Steps:  makeSteps("a"),
	}

	result := Validate(definition)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "name is required")
	assert.Contains(t, result.Errors, "trigger is required")
}

func TestValidate_DraftStillChecksWellFormedness(t *testing.T) {
	definition := &models.Workflow{
		Name:    "Weekly nudge",
		Status:  models.WorkflowStatusDraft,
		Trigger: &models.WorkflowTrigger{Type: models.TriggerSchedule, CronExpression: "whenever"},
	}

	result := Validate(definition)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "cron")
}

func TestValidate_ActiveChecksStepMetadata(t *testing.T) {
	definition := &models.Workflow{
		Name:    "Text blast",
		Status:  models.WorkflowStatusActive,
		Trigger: &models.WorkflowTrigger{Type: models.TriggerManual},
		Steps: []*models.WorkflowStep{
			{ID: "s1", Type: models.StepSendSMS, Name: "Nudge", Order: 1},
		},
	}

	result := Validate(definition)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "metadata")

	// The same half-filled step is acceptable in a draft.
	definition.Status = models.WorkflowStatusDraft
	result = Validate(definition)
	assert.True(t, result.Valid)

	definition.Status = models.WorkflowStatusActive
	definition.Steps[0].Metadata = map[string]any{"message": "See you Sunday?"}
	result = Validate(definition)
	assert.True(t, result.Valid)
}

func TestValidate_UnknownStepType(t *testing.T) {
	definition := &models.Workflow{
		Name:   "Bad step",
		Status: models.WorkflowStatusDraft,
		Steps: []*models.WorkflowStep{
			{ID: "s1", Type: models.StepType("carrier_pigeon"), Name: "Coo", Order: 1},
		},
	}

	result := Validate(definition)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "unknown type")
}

func TestValidate_NonContiguousOrders(t *testing.T) {
	steps := makeSteps("a", "b")
	steps[1].Order = 5

	definition := &models.Workflow{
		Name:    "Broken",
		Status:  models.WorkflowStatusActive,
		Trigger: &models.WorkflowTrigger{Type: models.TriggerManual},
		Steps:   steps,
	}

	result := Validate(definition)
	assert.False(t, result.Valid)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.WorkflowStatus
		want     bool
	}{
		{models.WorkflowStatusDraft, models.WorkflowStatusActive, true},
		{models.WorkflowStatusActive, models.WorkflowStatusPaused, true},
		{models.WorkflowStatusPaused, models.WorkflowStatusActive, true},
		{models.WorkflowStatusActive, models.WorkflowStatusDeleted, true},
		{models.WorkflowStatusPaused, models.WorkflowStatusDeleted, true},
		{models.WorkflowStatusDraft, models.WorkflowStatusPaused, false},
		{models.WorkflowStatusDraft, models.WorkflowStatusDeleted, false},
		{models.WorkflowStatusDeleted, models.WorkflowStatusActive, false},
		{models.WorkflowStatusActive, models.WorkflowStatusDraft, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
