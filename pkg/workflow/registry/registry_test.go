package registry

import (
	"testing"

	"github.com/flockhq/flock/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CoversAllStepTypes(t *testing.T) {
	for _, stepType := range models.StepTypes {
		_, ok := Default.Get(stepType)
		assert.True(t, ok, "missing definition for %s", stepType)
	}
}

func TestValidateStep_ValidMetadata(t *testing.T) {
	step := &models.WorkflowStep{
		Type: models.StepSendEmail,
		Name: "Check-in email",
		Metadata: map[string]any{
			"subject": "We missed you",
			"body":    "Hope to see you Sunday.",
		},
	}

	assert.NoError(t, Default.ValidateStep(step))
}

func TestValidateStep_MissingRequiredField(t *testing.T) {
	step := &models.WorkflowStep{
		Type:     models.StepSendEmail,
		Name:     "Check-in email",
		Metadata: map[string]any{"subject": "We missed you"},
	}

	err := Default.ValidateStep(step)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body")
}

func TestValidateStep_WaitRequiresPositiveDays(t *testing.T) {
	step := &models.WorkflowStep{
		Type:     models.StepWait,
		Name:     "Hold",
		Metadata: map[string]any{"days": 0},
	}

	assert.Error(t, Default.ValidateStep(step))

	step.Metadata["days"] = 3
	assert.NoError(t, Default.ValidateStep(step))
}

func TestValidateStep_UnknownType(t *testing.T) {
	step := &models.WorkflowStep{Type: "carrier_pigeon", Name: "??"}

	err := Default.ValidateStep(step)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestValidateStep_NilMetadataCheckedAgainstSchema(t *testing.T) {
	// Required fields fail on an empty object rather than panicking.
	step := &models.WorkflowStep{Type: models.StepCreateNote, Name: "Note"}

	assert.Error(t, Default.ValidateStep(step))
}
