// Package models defines the core domain models exchanged with the
// congregation-management backend.
package models

import "time"

// WorkflowStatus represents the lifecycle state of a workflow as the
// backend reports it. The backend owns execution; clients only request
// transitions and mirror the confirmed state.
type WorkflowStatus string

const (
	WorkflowStatusDraft   WorkflowStatus = "draft"   // Editable, incomplete definitions allowed
	WorkflowStatusActive  WorkflowStatus = "active"  // Evaluated and executed by the backend
	WorkflowStatusPaused  WorkflowStatus = "paused"  // Retained but not evaluated
	WorkflowStatusDeleted WorkflowStatus = "deleted" // Soft-deleted, terminal
)

// Workflow is a rule-based automation definition: a trigger plus an
// ordered sequence of steps. The definition is assembled client-side and
// sent verbatim to the backend, which interprets and executes it.
type Workflow struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"        validate:"required"`
	Description string           `json:"description"`
	Trigger     *WorkflowTrigger `json:"trigger,omitempty"`
	Steps       []*WorkflowStep  `json:"steps"`
	Status      WorkflowStatus   `json:"status"      validate:"required,oneof=draft active paused deleted"`
	Enabled     bool             `json:"enabled"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   *time.Time       `json:"deleted_at,omitempty"`
}
