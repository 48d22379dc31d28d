package workflow

import "github.com/flockhq/flock/pkg/models"

// transitions is the allowed status graph. Drafts activate, active
// workflows pause or delete, paused ones resume or delete. Deleted is
// terminal. The backend confirms every transition; clients never apply
// one speculatively.
var transitions = map[models.WorkflowStatus][]models.WorkflowStatus{
	models.WorkflowStatusDraft:  {models.WorkflowStatusActive},
	models.WorkflowStatusActive: {models.WorkflowStatusPaused, models.WorkflowStatusDeleted},
	models.WorkflowStatusPaused: {models.WorkflowStatusActive, models.WorkflowStatusDeleted},
}

// CanTransition reports whether the status graph allows from -> to.
func CanTransition(from, to models.WorkflowStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}
