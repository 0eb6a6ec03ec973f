// Package di builds the provider, cache and service graph shared by every binary.
package di

import (
	"context"
	"time"

	"market-pulse/internal/cache"
	"market-pulse/internal/config"
	"market-pulse/internal/provider"
	"market-pulse/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// Container holds the wired graph. Close releases the Redis connection, if any.
type Container struct {
	Market    *service.Market
	Providers service.Providers
	Redis     *redis.Client
}

var initRedisFunc = cache.InitRedis

// Wire connects to Redis when configured and builds the market services.
// A Redis failure is logged and the last-good store is disabled; it is never fatal.
func Wire(ctx context.Context, cfg *config.Config, tracer trace.Tracer) *Container {
	c := &Container{Providers: NewProviders(cfg, tracer)}

	client, err := initRedisFunc(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, last good payloads disabled")
	}
	c.Redis = client

	var snapshots *cache.SnapshotStore
	if client != nil {
		snapshots = cache.NewSnapshotStore(client)
	}

	c.Market = service.NewMarket(tracer, c.Providers, TTLs(cfg), snapshots)
	return c
}

func (c *Container) Close() {
	if c == nil || c.Redis == nil {
		return
	}
	if err := c.Redis.Close(); err != nil {
		log.Warn().Err(err).Msg("Error closing Redis client")
	}
}

// NewProviders builds the upstream clients with the configured timeout.
func NewProviders(cfg *config.Config, tracer trace.Tracer) service.Providers {
	timeout := cfg.UpstreamTimeout()
	return service.Providers{
		Quotes:    provider.NewYahooProvider(tracer, timeout),
		Series:    provider.NewFREDProvider(tracer, cfg.FREDAPIKey, timeout),
		Sentiment: provider.NewAAIIProvider(tracer, timeout),
		Fed:       provider.NewCMEProvider(tracer, timeout),
		FearGreed: provider.NewFearGreedProvider(tracer, timeout),
	}
}

// TTLs converts the configured cache lifetimes.
func TTLs(cfg *config.Config) service.TTLs {
	return service.TTLs{
		Watchlist: seconds(cfg.WatchlistTTLSecs),
		Macro:     seconds(cfg.MacroTTLSecs),
		Sentiment: seconds(cfg.SentimentTTLSecs),
		Fed:       seconds(cfg.FedWatchTTLSecs),
		FearGreed: seconds(cfg.FearGreedTTLSecs),
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
