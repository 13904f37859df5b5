package session

import (
	"context"
	"fmt"

	"github.com/412299-Rodriguez/club-appointments/internal/backend"
)

type client struct {
	rest *backend.Rest
}

func NewClient(rest *backend.Rest) Client {
	return &client{rest: rest}
}

func (c *client) ListUpcoming(ctx context.Context, token string) ([]Session, error) {
	var sessions []Session
	if err := c.rest.Get(ctx, token, "/training-sessions/upcoming", &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *client) Get(ctx context.Context, token string, id int64) (*Session, error) {
	var s Session
	if err := c.rest.Get(ctx, token, fmt.Sprintf("/training-sessions/%d", id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *client) Create(ctx context.Context, token string, req CreateSessionRequest) (*Session, error) {
	var s Session
	if err := c.rest.Post(ctx, token, "/training-sessions", req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *client) CancelSession(ctx context.Context, token string, id int64) (*Session, error) {
	var s Session
	if err := c.rest.Put(ctx, token, fmt.Sprintf("/training-sessions/%d/cancel", id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
