package client

import (
	"context"
	"net/http"

	"github.com/flockhq/flock/pkg/models"
)

const sessionsCollection = "sessions"

// Sessions returns all sessions, served from cache when the backend is
// unreachable.
func (c *Client) Sessions(ctx context.Context) ([]*models.Session, error) {
	var sessions []*models.Session

	if err := c.getCollection(ctx, "/sessions", sessionsCollection, &sessions); err != nil {
		return nil, err
	}

	return sessions, nil
}

// Session returns one session by ID.
func (c *Client) Session(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session

	if err := c.do(ctx, http.MethodGet, "/sessions/"+id, nil, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// CreateSession schedules a session and returns the typed outcome. A
// nil session input reports a cancelled flow instead of an error, so
// callers can abandon a creation dialog without error handling.
func (c *Client) CreateSession(ctx context.Context, session *models.Session) (models.SessionCreateResult, error) {
	if session == nil {
		return models.SessionCancelled(), nil
	}

	var created models.Session

	if err := c.do(ctx, http.MethodPost, "/sessions", session, &created); err != nil {
		return models.SessionCancelled(), err
	}

	return models.SessionCreated(&created), nil
}
