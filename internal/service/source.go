package service

import (
	"context"
	"time"

	"market-pulse/internal/cache"

	"github.com/rs/zerolog/log"
)

// maxConcurrentFetches bounds every fan-out against a single upstream.
const maxConcurrentFetches = 6

// cachedSource fronts one upstream with a TTL cache and the last-known-good store.
// Only successful fetches are cached, so a failure is retried on the next call.
type cachedSource[T any] struct {
	name      string
	cache     *cache.TTL[T]
	snapshots *cache.SnapshotStore
}

func newCachedSource[T any](name string, ttl time.Duration, snapshots *cache.SnapshotStore) *cachedSource[T] {
	return &cachedSource[T]{
		name:      name,
		cache:     cache.NewTTL[T](ttl),
		snapshots: snapshots,
	}
}

// get serves key from the cache or calls fetch. When fetch fails the last good
// snapshot is returned if there is one; otherwise the classified error is.
func (s *cachedSource[T]) get(ctx context.Context, key string, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := s.cache.Get(key); ok {
		return v, nil
	}

	v, err := fetch(ctx)
	if err == nil {
		s.cache.Set(key, v)
		if err := s.snapshots.Save(ctx, s.snapshotKey(key), v); err != nil {
			log.Warn().Err(err).Str("source", s.name).Str("key", key).Msg("Failed to store last good payload")
		}
		return v, nil
	}

	fetchErr := Classify(s.name, err)
	if fetchErr.Kind == KindConfig {
		var zero T
		return zero, fetchErr
	}

	var last T
	found, loadErr := s.snapshots.Load(ctx, s.snapshotKey(key), &last)
	if loadErr != nil {
		log.Warn().Err(loadErr).Str("source", s.name).Str("key", key).Msg("Failed to read last good payload")
	}
	if found {
		log.Warn().Err(fetchErr).Str("source", s.name).Str("key", key).Msg("Upstream failed, serving last good payload")
		return last, nil
	}

	log.Warn().Err(fetchErr).Str("source", s.name).Str("key", key).Str("kind", fetchErr.Kind.String()).Msg("Upstream failed")
	var zero T
	return zero, fetchErr
}

func (s *cachedSource[T]) snapshotKey(key string) string {
	return s.name + ":" + key
}
