package workflow

import (
	"fmt"

	"github.com/flockhq/flock/pkg/models"
	"github.com/flockhq/flock/pkg/workflow/registry"
)

// ValidationResult reports structural completeness of a definition.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks whether a definition is complete enough for its
// status. Drafts may be partial: only what is present has to be
// well-formed. Activation requires a name, a fully-parameterized
// trigger and at least one step, and every step's metadata must
// satisfy its type's registered schema.
func Validate(w *models.Workflow) ValidationResult {
	var errs []string

	if w == nil {
		return ValidationResult{Errors: []string{"workflow is required"}}
	}

	activating := w.Status == models.WorkflowStatusActive

	if activating && w.Name == "" {
		errs = append(errs, "name is required")
	}

	if activating && w.Trigger == nil {
		errs = append(errs, "trigger is required")
	}

	if w.Trigger != nil {
		errs = append(errs, validateTrigger(w.Trigger)...)
	}

	if activating && len(w.Steps) == 0 {
		errs = append(errs, "at least one step is required before a workflow can be activated")
	}

	errs = append(errs, validateSteps(w.Steps, activating)...)

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func validateTrigger(trigger *models.WorkflowTrigger) []string {
	var errs []string

	switch trigger.Type {
	case models.TriggerManual, models.TriggerFirstTimeVisitor,
		models.TriggerMemberCreated, models.TriggerMemberUpdated:
		// No parameters.

	case models.TriggerSchedule:
		if trigger.CronExpression == "" {
			errs = append(errs, "schedule trigger requires a cron expression")
		} else if err := ValidateCron(trigger.CronExpression); err != nil {
			errs = append(errs, "schedule trigger cron expression is invalid: "+err.Error())
		}

	case models.TriggerAttendanceRule:
		if trigger.Conditions == nil {
			errs = append(errs, "attendance rule trigger requires a condition")

			break
		}

		if _, ok := trigger.Conditions.Kind(); !ok {
			errs = append(errs, "attendance rule trigger must populate exactly one condition")
		}

	default:
		errs = append(errs, fmt.Sprintf("unknown trigger type: %s", trigger.Type))
	}

	return errs
}

// validateSteps checks each step against the type registry. Schema
// validation of metadata only applies when activating: a draft step may
// still have an empty or half-filled form behind it.
func validateSteps(steps []*models.WorkflowStep, activating bool) []string {
	var errs []string

	for i, step := range steps {
		if step.Name == "" {
			errs = append(errs, fmt.Sprintf("step %d requires a name", i+1))
		}

		if _, known := registry.Default.Get(step.Type); !known {
			errs = append(errs, fmt.Sprintf("step %d has unknown type: %s", i+1, step.Type))
		} else if activating {
			if err := registry.Default.ValidateStep(step); err != nil {
				errs = append(errs, fmt.Sprintf("step %d: %s", i+1, err.Error()))
			}
		}

		if step.Order != i+1 {
			errs = append(errs, fmt.Sprintf("step order must be contiguous from 1, got %d at position %d", step.Order, i+1))
		}
	}

	return errs
}
