package booking

import "context"

// Client is the slice of the remote backend API booking orchestration
// consumes. The token is the caller's bearer token, forwarded per call.
type Client interface {
	ListMy(ctx context.Context, token string) ([]Booking, error)
	ListMyUpcoming(ctx context.Context, token string) ([]Booking, error)
	Create(ctx context.Context, token string, sessionID int64) (*Booking, error)
	Cancel(ctx context.Context, token string, bookingID int64) (*Booking, error)
}
