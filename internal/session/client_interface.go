package session

import "context"

// Client is the slice of the remote backend API the session catalog
// consumes. The token is the caller's bearer token, forwarded per call.
type Client interface {
	ListUpcoming(ctx context.Context, token string) ([]Session, error)
	Get(ctx context.Context, token string, id int64) (*Session, error)
	Create(ctx context.Context, token string, req CreateSessionRequest) (*Session, error)
	CancelSession(ctx context.Context, token string, id int64) (*Session, error)
}
