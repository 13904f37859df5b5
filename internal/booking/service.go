package booking

import (
	"context"
	"errors"
	"time"

	"github.com/412299-Rodriguez/club-appointments/internal/cache"
	"github.com/412299-Rodriguez/club-appointments/internal/logger"
	"github.com/412299-Rodriguez/club-appointments/internal/metrics"
	"github.com/412299-Rodriguez/club-appointments/internal/schedule"
	"github.com/412299-Rodriguez/club-appointments/internal/session"
)

// Gate refusals, produced locally before any backend round trip. The
// backend enforces the same rules authoritatively; these only avoid
// round trips for actions known to be doomed.
var (
	ErrSessionNotActive   = errors.New("cannot book a session that is not active")
	ErrSessionStarted     = errors.New("cannot book a session that already started")
	ErrSessionFull        = errors.New("training session is full")
	ErrAlreadyBooked      = errors.New("you have already booked this training session")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotCancellable     = errors.New("only confirmed bookings can be cancelled")
	ErrCancellationWindow = errors.New("cancellations must be made at least 2 hours before the session starts")
)

type Service interface {
	// Book creates a booking after re-checking the gates against a
	// fresh snapshot at now. Backend rejections pass through unchanged.
	Book(ctx context.Context, token string, sessionID int64, now time.Time) (*Booking, error)
	// Cancel cancels the member's booking, refusing locally when the
	// cancellation window has closed.
	Cancel(ctx context.Context, token string, bookingID int64, now time.Time) (*Booking, error)
	MyBookings(ctx context.Context, token string, now time.Time) (Categorized, error)
	MyStats(ctx context.Context, token string, now time.Time) (Stats, error)
	BookedSessionIDs(ctx context.Context, token string) (map[int64]bool, error)
}

type service struct {
	client   Client
	sessions session.Client
	cache    *cache.Store
}

func NewService(client Client, sessions session.Client, store *cache.Store) Service {
	return &service{
		client:   client,
		sessions: sessions,
		cache:    store,
	}
}

func (s *service) Book(ctx context.Context, token string, sessionID int64, now time.Time) (*Booking, error) {
	target, err := s.sessions.Get(ctx, token, sessionID)
	if err != nil {
		return nil, err
	}

	if target.Status != session.StatusActive {
		metrics.RecordBookingSubmitted(metrics.OutcomeGateBlocked)
		return nil, ErrSessionNotActive
	}
	if !schedule.IsFuture(target.StartsAt(), now) {
		metrics.RecordBookingSubmitted(metrics.OutcomeGateBlocked)
		return nil, ErrSessionStarted
	}
	if session.IsFull(*target) {
		metrics.RecordBookingSubmitted(metrics.OutcomeGateBlocked)
		return nil, ErrSessionFull
	}

	// Duplicate check is advisory; when the snapshot cannot be fetched
	// the backend still enforces uniqueness.
	if mine, err := s.client.ListMyUpcoming(ctx, token); err != nil {
		logger.Error("Skipping duplicate-booking gate", "error", err)
	} else if IsAlreadyBooked(sessionID, mine) {
		metrics.RecordBookingSubmitted(metrics.OutcomeGateBlocked)
		return nil, ErrAlreadyBooked
	}

	created, err := s.client.Create(ctx, token, sessionID)
	if err != nil {
		metrics.RecordBookingSubmitted(metrics.OutcomeBackendRejected)
		return nil, err
	}

	metrics.RecordBookingSubmitted(metrics.OutcomeForwarded)
	s.cache.Invalidate(ctx, cache.CatalogKey)
	return created, nil
}

func (s *service) Cancel(ctx context.Context, token string, bookingID int64, now time.Time) (*Booking, error) {
	mine, err := s.client.ListMy(ctx, token)
	if err != nil {
		return nil, err
	}

	var target *Booking
	for i := range mine {
		if mine[i].ID == bookingID {
			target = &mine[i]
			break
		}
	}
	if target == nil {
		return nil, ErrBookingNotFound
	}

	if target.Status != StatusConfirmed {
		metrics.RecordCancellation(metrics.OutcomeGateBlocked)
		return nil, ErrNotCancellable
	}
	if !CanCancel(*target, now) {
		metrics.RecordCancellation(metrics.OutcomeGateBlocked)
		return nil, ErrCancellationWindow
	}

	cancelled, err := s.client.Cancel(ctx, token, bookingID)
	if err != nil {
		metrics.RecordCancellation(metrics.OutcomeBackendRejected)
		return nil, err
	}

	metrics.RecordCancellation(metrics.OutcomeForwarded)
	s.cache.Invalidate(ctx, cache.CatalogKey)
	return cancelled, nil
}

func (s *service) MyBookings(ctx context.Context, token string, now time.Time) (Categorized, error) {
	mine, err := s.client.ListMy(ctx, token)
	if err != nil {
		return Categorized{}, err
	}
	return Categorize(mine, now), nil
}

func (s *service) MyStats(ctx context.Context, token string, now time.Time) (Stats, error) {
	mine, err := s.client.ListMy(ctx, token)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(mine, now), nil
}

func (s *service) BookedSessionIDs(ctx context.Context, token string) (map[int64]bool, error) {
	mine, err := s.client.ListMyUpcoming(ctx, token)
	if err != nil {
		return nil, err
	}

	ids := make(map[int64]bool, len(mine))
	for _, b := range mine {
		if b.Status == StatusConfirmed && b.TrainingSession != nil {
			ids[b.TrainingSession.ID] = true
		}
	}
	return ids, nil
}
