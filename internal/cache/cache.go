// Package cache is a short-TTL Redis store for backend response
// snapshots. It is advisory only: misses and Redis errors both fall
// through to the backend, and nothing in it is a source of truth.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/412299-Rodriguez/club-appointments/internal/logger"
)

const CatalogKey = "catalog:upcoming"

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Get returns the cached payload for key. Any Redis error counts as a
// miss.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Error("Cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return data, true
}

// Set stores the payload under key for the configured TTL. Failures are
// logged and swallowed; the cache never blocks a response.
func (s *Store) Set(ctx context.Context, key string, data []byte) {
	if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
		logger.Error("Cache write failed", "key", key, "error", err)
	}
}

// Invalidate drops key, typically after a write went through to the
// backend and the cached snapshot is known stale.
func (s *Store) Invalidate(ctx context.Context, key string) {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		logger.Error("Cache invalidation failed", "key", key, "error", err)
	}
}
