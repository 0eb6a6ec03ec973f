package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTTLMissingKey(t *testing.T) {
	c := NewTTL[int](time.Second)
	_, ok := c.Get("x")
	assert.False(t, ok)
}

func TestTTLReturnsValueWithinWindow(t *testing.T) {
	type payload struct{ V int }
	c := NewTTL[payload](time.Minute)
	c.Set("k", payload{V: 1})

	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, payload{V: 1}, got)
}

func TestTTLExpires(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewTTL[string](time.Second, WithClock(clock.Now))
	c.Set("k", "v")

	clock.Advance(time.Second)
	got, ok := c.Get("k")
	assert.True(t, ok, "entry exactly TTL old is still fresh")
	assert.Equal(t, "v", got)

	clock.Advance(time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Empty(t, c.entries, "stale entry is evicted on read")
}

func TestTTLSetRestartsWindow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewTTL[string](10*time.Second, WithClock(clock.Now))
	c.Set("k", "old")

	clock.Advance(8 * time.Second)
	c.Set("k", "new")
	clock.Advance(8 * time.Second)

	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "new", got)
}

func TestTTLConcurrentAccess(t *testing.T) {
	c := NewTTL[int](time.Minute)
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(i int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				c.Set("k", i)
				c.Get("k")
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	_, ok := c.Get("k")
	assert.True(t, ok)
}
