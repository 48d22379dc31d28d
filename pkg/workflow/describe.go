package workflow

import (
	"fmt"
	"strings"

	"github.com/flockhq/flock/pkg/models"
)

// stepLabels maps step types to the singular/plural nouns used in
// summaries. SMS keeps the same form in both.
var stepLabels = map[models.StepType][2]string{
	models.StepManualTask:   {"task", "tasks"},
	models.StepSendEmail:    {"email", "emails"},
	models.StepSendSMS:      {"SMS", "SMS"},
	models.StepWait:         {"wait", "waits"},
	models.StepConditional:  {"condition", "conditions"},
	models.StepUpdateMember: {"member update", "member updates"},
	models.StepCreateNote:   {"note", "notes"},
	models.StepWebhook:      {"webhook", "webhooks"},
}

// DescribeTrigger renders a trigger as a deterministic human-readable
// sentence. It is a pure function of the trigger's fields.
func DescribeTrigger(trigger *models.WorkflowTrigger) string {
	if trigger == nil {
		return "No trigger configured"
	}

	switch trigger.Type {
	case models.TriggerManual:
		return "Manual trigger"
	case models.TriggerSchedule:
		return "Trigger on schedule " + trigger.CronExpression
	case models.TriggerFirstTimeVisitor:
		return "Trigger when someone visits for the first time"
	case models.TriggerMemberCreated:
		return "Trigger when a new member is added"
	case models.TriggerMemberUpdated:
		return "Trigger when a member profile is updated"
	case models.TriggerAttendanceRule:
		times := "times"
		if trigger.Frequency == 1 {
			times = "time"
		}

		return fmt.Sprintf("Trigger when someone has %s %d %s in the past %d days",
			trigger.AttendanceType, trigger.Frequency, times, trigger.TimeWindowDays)
	default:
		return "Unknown trigger"
	}
}

// DescribeSteps summarizes step counts by type, in the canonical step
// type order, e.g. "2 tasks, 1 email, 1 wait".
func DescribeSteps(steps []*models.WorkflowStep) string {
	if len(steps) == 0 {
		return "No steps"
	}

	counts := make(map[models.StepType]int, len(steps))
	for _, step := range steps {
		counts[step.Type]++
	}

	parts := make([]string, 0, len(counts))

	for _, stepType := range models.StepTypes {
		count := counts[stepType]
		if count == 0 {
			continue
		}

		labels := stepLabels[stepType]

		label := labels[1]
		if count == 1 {
			label = labels[0]
		}

		parts = append(parts, fmt.Sprintf("%d %s", count, label))
	}

	return strings.Join(parts, ", ")
}
