package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flockhq/flock/pkg/eventbus"
	"github.com/flockhq/flock/pkg/events"
	"github.com/flockhq/flock/pkg/models"
	"github.com/flockhq/flock/pkg/persistence"
	"github.com/flockhq/flock/pkg/workflow"
)

// ErrWorkflowNotFound is returned when a workflow is not found.
var ErrWorkflowNotFound = persistence.ErrWorkflowNotFound

// Workflow owns workflow definitions: creation, editing, validation and
// the status machine. Confirmed status changes are published on the
// event bus.
type Workflow struct {
	persistence persistence.Persistence
	eventBus    eventbus.EventPublisher
	logger      *slog.Logger
}

// NewWorkflow creates a new workflow service. The event bus may be nil
// when no downstream consumers exist.
func NewWorkflow(persistence persistence.Persistence, eventBus eventbus.EventPublisher, logger *slog.Logger) *Workflow {
	return &Workflow{
		persistence: persistence,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// HealthCheck checks the health of the persistence layer.
func (w *Workflow) HealthCheck(ctx context.Context) (string, bool) {
	if w.persistence == nil {
		return "Persistence layer not initialized", false
	}

	err := w.persistence.HealthCheck(ctx)
	if err != nil {
		return "Persistence layer is unhealthy: " + err.Error(), false
	}

	return "Persistence layer is healthy", true
}

// List returns all workflows that are not soft deleted.
func (w *Workflow) List(ctx context.Context) ([]*models.Workflow, error) {
	workflows, err := w.persistence.WorkflowRepository().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}

	visible := make([]*models.Workflow, 0, len(workflows))

	for _, wf := range workflows {
		if wf.Status != models.WorkflowStatusDeleted {
			visible = append(visible, wf)
		}
	}

	return visible, nil
}

// FetchByID returns one workflow.
func (w *Workflow) FetchByID(ctx context.Context, id string) (*models.Workflow, error) {
	wf, err := w.persistence.WorkflowRepository().GetByID(ctx, id)
	if err != nil {
		if persistence.IsWorkflowNotFound(err) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to fetch workflow: %w", err)
	}

	if wf.Status == models.WorkflowStatusDeleted {
		return nil, persistence.ErrWorkflowNotFound
	}

	return wf, nil
}

// Create stores a new workflow. New workflows always start as drafts so
// incomplete definitions are allowed.
func (w *Workflow) Create(ctx context.Context, wf *models.Workflow) (*models.Workflow, error) {
	if wf == nil {
		return nil, ErrWorkflowNil
	}

	wf.ID = uuid.New().String()
	wf.Status = models.WorkflowStatusDraft
	wf.Enabled = false

	now := time.Now().UTC()
	wf.CreatedAt = now
	wf.UpdatedAt = now

	if result := workflow.Validate(wf); !result.Valid {
		return nil, validationFailed("Create", result)
	}

	if err := w.persistence.WorkflowRepository().Save(ctx, wf); err != nil {
		return nil, fmt.Errorf("failed to save workflow: %w", err)
	}

	return wf, nil
}

// Update replaces the definition of an existing workflow. Status is not
// updatable here; it only moves through Transition.
func (w *Workflow) Update(ctx context.Context, id string, wf *models.Workflow) (*models.Workflow, error) {
	if wf == nil {
		return nil, ErrWorkflowNil
	}

	existing, err := w.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wf.ID = existing.ID
	wf.Status = existing.Status
	wf.Enabled = existing.Enabled
	wf.CreatedAt = existing.CreatedAt
	wf.UpdatedAt = time.Now().UTC()

	if result := workflow.Validate(wf); !result.Valid {
		return nil, validationFailed("Update", result)
	}

	if err := w.persistence.WorkflowRepository().Save(ctx, wf); err != nil {
		return nil, fmt.Errorf("failed to save workflow: %w", err)
	}

	return wf, nil
}

// Delete removes a workflow. Drafts are removed outright; active and
// paused workflows are soft deleted through the status machine.
func (w *Workflow) Delete(ctx context.Context, id string) error {
	existing, err := w.FetchByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.Status == models.WorkflowStatusDraft {
		if err := w.persistence.WorkflowRepository().Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete workflow: %w", err)
		}

		return nil
	}

	_, err = w.Transition(ctx, id, models.WorkflowStatusDeleted)

	return err
}

// Transition requests a status change, enforcing the status machine and
// validating the definition before activation. The confirmed change is
// published as a domain event.
func (w *Workflow) Transition(ctx context.Context, id string, to models.WorkflowStatus) (*models.Workflow, error) {
	switch to {
	case models.WorkflowStatusDraft, models.WorkflowStatusActive,
		models.WorkflowStatusPaused, models.WorkflowStatusDeleted:
	default:
		return nil, NewValidationError("Transition", "INVALID_STATUS",
			fmt.Sprintf("unknown workflow status %q", to), ErrInvalidStatus)
	}

	wf, err := w.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := wf.Status

	if !workflow.CanTransition(from, to) {
		return nil, &ServiceError{
			Op:      "Transition",
			Code:    "INVALID_TRANSITION",
			Message: fmt.Sprintf("cannot transition workflow from %s to %s", from, to),
			Err:     ErrInvalidTransition,
		}
	}

	if to == models.WorkflowStatusActive {
		wf.Status = models.WorkflowStatusActive
		if result := workflow.Validate(wf); !result.Valid {
			wf.Status = from

			return nil, validationFailed("Transition", result)
		}
	}

	wf.Status = to
	wf.Enabled = to == models.WorkflowStatusActive
	wf.UpdatedAt = time.Now().UTC()

	if to == models.WorkflowStatusDeleted {
		deletedAt := wf.UpdatedAt
		wf.DeletedAt = &deletedAt
	}

	if err := w.persistence.WorkflowRepository().Save(ctx, wf); err != nil {
		return nil, fmt.Errorf("failed to save workflow: %w", err)
	}

	w.publishStatusChanged(ctx, wf, from, to)

	return wf, nil
}

func (w *Workflow) publishStatusChanged(ctx context.Context, wf *models.Workflow, from, to models.WorkflowStatus) {
	if w.eventBus == nil {
		return
	}

	event := events.WorkflowStatusChanged{
		BaseEvent:  events.NewBaseEvent(events.WorkflowStatusChangedEvent),
		WorkflowID: wf.ID,
		From:       from,
		To:         to,
	}

	if err := w.eventBus.Publish(ctx, wf.ID, event); err != nil && w.logger != nil {
		w.logger.WarnContext(ctx, "failed to publish workflow status change",
			"workflow_id", wf.ID, "error", err)
	}
}

func validationFailed(op string, result workflow.ValidationResult) *ServiceError {
	return NewValidationError(op, "WORKFLOW_INVALID",
		strings.Join(result.Errors, "; "), ErrWorkflowInvalid)
}
