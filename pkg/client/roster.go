package client

import (
	"context"
	"net/http"

	"github.com/flockhq/flock/pkg/models"
)

const (
	membersCollection   = "members"
	followUpsCollection = "followups"
	assigneesCollection = "assignees"
	referenceCollection = "reference"
)

// Members returns the roster, served from cache when the backend is
// unreachable.
func (c *Client) Members(ctx context.Context) ([]*models.Member, error) {
	var members []*models.Member

	if err := c.getCollection(ctx, "/members", membersCollection, &members); err != nil {
		return nil, err
	}

	return members, nil
}

// Member returns one member by ID.
func (c *Client) Member(ctx context.Context, id string) (*models.Member, error) {
	var member models.Member

	if err := c.do(ctx, http.MethodGet, "/members/"+id, nil, &member); err != nil {
		return nil, err
	}

	return &member, nil
}

// CreateMember adds a person to the roster.
func (c *Client) CreateMember(ctx context.Context, member *models.Member) (*models.Member, error) {
	var created models.Member

	if err := c.do(ctx, http.MethodPost, "/members", member, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// FollowUps returns all follow-up tasks, served from cache when the
// backend is unreachable.
func (c *Client) FollowUps(ctx context.Context) ([]*models.FollowUp, error) {
	var followUps []*models.FollowUp

	if err := c.getCollection(ctx, "/followups", followUpsCollection, &followUps); err != nil {
		return nil, err
	}

	return followUps, nil
}

// CreateFollowUp raises a pastoral follow-up task.
func (c *Client) CreateFollowUp(ctx context.Context, followUp *models.FollowUp) (*models.FollowUp, error) {
	var created models.FollowUp

	if err := c.do(ctx, http.MethodPost, "/followups", followUp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// AssignFollowUp hands a follow-up to an assignee.
func (c *Client) AssignFollowUp(ctx context.Context, followUpID, assigneeID string) (*models.FollowUp, error) {
	payload := map[string]string{"assignee_id": assigneeID}

	var assigned models.FollowUp

	if err := c.do(ctx, http.MethodPatch, "/followups/"+followUpID+"/assignee", payload, &assigned); err != nil {
		return nil, err
	}

	return &assigned, nil
}

// Assignees returns the leaders and volunteers follow-ups can be
// assigned to.
func (c *Client) Assignees(ctx context.Context) ([]*models.Assignee, error) {
	var assignees []*models.Assignee

	if err := c.getCollection(ctx, "/assignees", assigneesCollection, &assignees); err != nil {
		return nil, err
	}

	return assignees, nil
}

// Reference returns the static lookup data for form population.
func (c *Client) Reference(ctx context.Context) (*models.ReferenceData, error) {
	var reference models.ReferenceData

	if err := c.getCollection(ctx, "/reference", referenceCollection, &reference); err != nil {
		return nil, err
	}

	return &reference, nil
}
