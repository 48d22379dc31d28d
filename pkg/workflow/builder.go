// Package workflow assembles, validates and describes workflow
// definitions. Nothing here executes: the backend owns trigger
// evaluation and step execution, this package only shapes the payload.
package workflow

import (
	"errors"
	"fmt"

	"github.com/flockhq/flock/pkg/models"
	"github.com/google/uuid"
)

var (
	// ErrUnknownTriggerType is returned for a trigger kind outside the
	// closed set.
	ErrUnknownTriggerType = errors.New("unknown trigger type")

	// ErrConditionRequired is returned when an attendance-rule trigger
	// does not populate exactly one condition.
	ErrConditionRequired = errors.New("attendance rule requires exactly one condition")

	// ErrInvalidCron is returned when a schedule trigger carries an
	// unparseable cron expression.
	ErrInvalidCron = errors.New("invalid cron expression")
)

// TriggerParams carries the form input a trigger is built from. Only the
// fields relevant to the requested kind are read.
type TriggerParams struct {
	// schedule
	CronExpression string

	// attendance_rule
	AttendanceType string
	Frequency      int
	TimeWindowDays int
	Conditions     *models.AttendanceConditions
}

// BuildTrigger constructs the tagged trigger variant for kind,
// validating the kind-specific parameters.
func BuildTrigger(kind models.TriggerType, params TriggerParams) (*models.WorkflowTrigger, error) {
	switch kind {
	case models.TriggerManual, models.TriggerFirstTimeVisitor,
		models.TriggerMemberCreated, models.TriggerMemberUpdated:
		return &models.WorkflowTrigger{Type: kind}, nil

	case models.TriggerSchedule:
		if err := ValidateCron(params.CronExpression); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCron, params.CronExpression)
		}

		return &models.WorkflowTrigger{
			Type:           kind,
			CronExpression: params.CronExpression,
		}, nil

	case models.TriggerAttendanceRule:
		if params.Conditions == nil {
			return nil, ErrConditionRequired
		}

		if _, ok := params.Conditions.Kind(); !ok {
			return nil, ErrConditionRequired
		}

		return &models.WorkflowTrigger{
			Type:           kind,
			AttendanceType: params.AttendanceType,
			Frequency:      params.Frequency,
			TimeWindowDays: params.TimeWindowDays,
			Conditions:     params.Conditions,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTriggerType, kind)
	}
}

// NewStep creates a step with a fresh ID. Order is assigned by AddStep.
func NewStep(stepType models.StepType, name string, metadata map[string]any) *models.WorkflowStep {
	return &models.WorkflowStep{
		ID:       uuid.New().String(),
		Type:     stepType,
		Name:     name,
		Metadata: metadata,
	}
}

// AddStep appends a step and assigns the next order value.
func AddStep(steps []*models.WorkflowStep, step *models.WorkflowStep) []*models.WorkflowStep {
	step.Order = len(steps) + 1

	return append(steps, step)
}

// ReorderSteps moves the step at fromIndex to toIndex and renumbers all
// order fields to the contiguous 1..N sequence of the new positions.
// Out-of-range indices leave positions untouched; renumbering still runs
// so a caller always gets the invariant back.
func ReorderSteps(steps []*models.WorkflowStep, fromIndex, toIndex int) []*models.WorkflowStep {
	n := len(steps)

	if fromIndex >= 0 && fromIndex < n && toIndex >= 0 && toIndex < n && fromIndex != toIndex {
		moved := steps[fromIndex]
		steps = append(steps[:fromIndex], steps[fromIndex+1:]...)

		rest := append([]*models.WorkflowStep{moved}, steps[toIndex:]...)
		steps = append(steps[:toIndex], rest...)
	}

	for i, step := range steps {
		step.Order = i + 1
	}

	return steps
}
