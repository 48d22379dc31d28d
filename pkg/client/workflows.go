package client

import (
	"context"
	"net/http"

	"github.com/flockhq/flock/pkg/models"
)

const workflowsCollection = "workflows"

// Workflows returns all workflow definitions, served from cache when
// the backend is unreachable.
func (c *Client) Workflows(ctx context.Context) ([]*models.Workflow, error) {
	var workflows []*models.Workflow

	if err := c.getCollection(ctx, "/workflows", workflowsCollection, &workflows); err != nil {
		return nil, err
	}

	return workflows, nil
}

// Workflow returns one workflow by ID.
func (c *Client) Workflow(ctx context.Context, id string) (*models.Workflow, error) {
	var workflow models.Workflow

	if err := c.do(ctx, http.MethodGet, "/workflows/"+id, nil, &workflow); err != nil {
		return nil, err
	}

	return &workflow, nil
}

// CreateWorkflow sends a new definition. The returned workflow carries
// the server-assigned ID and status.
func (c *Client) CreateWorkflow(ctx context.Context, workflow *models.Workflow) (*models.Workflow, error) {
	var created models.Workflow

	if err := c.do(ctx, http.MethodPost, "/workflows", workflow, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateWorkflow replaces a definition.
func (c *Client) UpdateWorkflow(ctx context.Context, id string, workflow *models.Workflow) (*models.Workflow, error) {
	var updated models.Workflow

	if err := c.do(ctx, http.MethodPut, "/workflows/"+id, workflow, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteWorkflow removes a workflow.
func (c *Client) DeleteWorkflow(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/workflows/"+id, nil, nil)
}

// RequestStatusTransition asks the backend to move a workflow to the
// given status. Local state must only change to what the server
// confirms; the caller applies the returned workflow, never the
// requested status.
func (c *Client) RequestStatusTransition(ctx context.Context, id string, to models.WorkflowStatus) (*models.Workflow, error) {
	payload := map[string]models.WorkflowStatus{"status": to}

	var confirmed models.Workflow

	if err := c.do(ctx, http.MethodPatch, "/workflows/"+id+"/status", payload, &confirmed); err != nil {
		return nil, err
	}

	return &confirmed, nil
}
