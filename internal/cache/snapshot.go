package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	snapshotPrefix = "lastgood:"
	snapshotTTL    = 7 * 24 * time.Hour
)

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// SnapshotStore keeps the last successfully fetched payload per key in Redis so a
// restarted process can serve it instead of a hardcoded default. A nil store, or one
// built without a client, does nothing.
type SnapshotStore struct {
	redis RedisClient
}

func NewSnapshotStore(client RedisClient) *SnapshotStore {
	return &SnapshotStore{redis: client}
}

func (s *SnapshotStore) enabled() bool {
	return s != nil && s.redis != nil
}

// Save JSON-encodes v under key.
func (s *SnapshotStore) Save(ctx context.Context, key string, v any) error {
	if !s.enabled() {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, snapshotPrefix+key, data, snapshotTTL).Err()
}

// Load decodes the snapshot for key into dest. It reports false when there is none.
func (s *SnapshotStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	if !s.enabled() {
		return false, nil
	}
	data, err := s.redis.Get(ctx, snapshotPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}
