package workflow

import (
	"errors"
	"time"

	"github.com/flockhq/flock/pkg/models"
	"github.com/robfig/cron/v3"
)

// ErrNotScheduled is returned when asking for the next run of a trigger
// that has no schedule.
var ErrNotScheduled = errors.New("trigger is not schedule-based")

// cronParser accepts the standard 5-field format the backend expects
// (minute hour day month weekday).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCron checks a 5-field cron expression.
func ValidateCron(expression string) error {
	_, err := cronParser.Parse(expression)

	return err
}

// NextRun previews when a schedule trigger would next fire after the
// given time. This is display-only: the backend computes the
// authoritative schedule.
func NextRun(trigger *models.WorkflowTrigger, after time.Time) (time.Time, error) {
	if trigger == nil || trigger.Type != models.TriggerSchedule {
		return time.Time{}, ErrNotScheduled
	}

	schedule, err := cronParser.Parse(trigger.CronExpression)
	if err != nil {
		return time.Time{}, err
	}

	return schedule.Next(after), nil
}
