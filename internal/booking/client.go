package booking

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

func (c *client) ListMy(ctx context.Context, token string) ([]Booking, error) {
	var bookings []Booking
	if err := c.rest.Get(ctx, token, "/bookings/my-bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *client) ListMyUpcoming(ctx context.Context, token string) ([]Booking, error) {
	var bookings []Booking
	if err := c.rest.Get(ctx, token, "/bookings/my-upcoming", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *client) Create(ctx context.Context, token string, sessionID int64) (*Booking, error) {
	var b Booking
	req := CreateBookingRequest{TrainingSessionID: sessionID}
	if err := c.rest.Post(ctx, token, "/bookings", req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *client) Cancel(ctx context.Context, token string, bookingID int64) (*Booking, error) {
	var b Booking
	if err := c.rest.Put(ctx, token, fmt.Sprintf("/bookings/%d/cancel", bookingID), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
