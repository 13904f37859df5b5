package session

import (
	"context"
	"encoding/json"

	"github.com/412299-Rodriguez/club-appointments/internal/cache"
	"github.com/412299-Rodriguez/club-appointments/internal/logger"
	"github.com/412299-Rodriguez/club-appointments/internal/metrics"
)

type Service interface {
	// ListUpcoming returns the open catalog filtered by the free-text
	// query and decorated for display. booked holds the session IDs the
	// caller already has confirmed bookings for; nil means anonymous.
	ListUpcoming(ctx context.Context, token, query string, booked map[int64]bool) ([]View, error)
	Create(ctx context.Context, token string, req CreateSessionRequest) (*Session, error)
	CancelSession(ctx context.Context, token string, id int64) (*Session, error)
}

type service struct {
	client Client
	cache  *cache.Store
}

func NewService(client Client, store *cache.Store) Service {
	return &service{
		client: client,
		cache:  store,
	}
}

func (s *service) ListUpcoming(ctx context.Context, token, query string, booked map[int64]bool) ([]View, error) {
	sessions, err := s.loadCatalog(ctx, token)
	if err != nil {
		return nil, err
	}

	matched := Filter(sessions, query)

	views := make([]View, 0, len(matched))
	for _, sess := range matched {
		views = append(views, NewView(sess, booked[sess.ID]))
	}
	return views, nil
}

// loadCatalog serves the undecorated upcoming catalog from the snapshot
// cache when possible. The catalog is identical for every caller, so
// the cache key is shared; derived and per-user state is never cached.
func (s *service) loadCatalog(ctx context.Context, token string) ([]Session, error) {
	if data, ok := s.cache.Get(ctx, cache.CatalogKey); ok {
		var sessions []Session
		if err := json.Unmarshal(data, &sessions); err != nil {
			logger.Error("Discarding undecodable catalog snapshot", "error", err)
		} else {
			metrics.RecordCatalogCache(true)
			return sessions, nil
		}
	}
	metrics.RecordCatalogCache(false)

	sessions, err := s.client.ListUpcoming(ctx, token)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(sessions); err == nil {
		s.cache.Set(ctx, cache.CatalogKey, data)
	}
	return sessions, nil
}

func (s *service) Create(ctx context.Context, token string, req CreateSessionRequest) (*Session, error) {
	created, err := s.client.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.CatalogKey)
	return created, nil
}

func (s *service) CancelSession(ctx context.Context, token string, id int64) (*Session, error) {
	cancelled, err := s.client.CancelSession(ctx, token, id)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.CatalogKey)
	return cancelled, nil
}
