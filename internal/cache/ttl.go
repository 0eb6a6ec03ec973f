package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	data      T
	timestamp time.Time
}

// TTL is an in-process key/value cache with a fixed freshness window.
// Expired entries are evicted lazily when read; nothing sweeps in the background.
type TTL[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry[T]
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now, mainly so tests can move time forward.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func NewTTL[T any](ttl time.Duration, opts ...Option) *TTL[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &TTL[T]{
		ttl:     ttl,
		now:     o.now,
		entries: make(map[string]entry[T]),
	}
}

// Get returns the value for key if it was set no longer than the TTL ago.
// A stale entry is removed and reported as absent.
func (c *TTL[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.now().Sub(e.timestamp) > c.ttl {
		delete(c.entries, key)
		return zero, false
	}
	return e.data, true
}

// Set stores value under key, replacing any previous entry and restarting its TTL.
func (c *TTL[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[T]{data: value, timestamp: c.now()}
}
