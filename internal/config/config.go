package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port   int
	APIKey string

	FREDAPIKey string
	RedisURL   string

	LogLevel  string
	LogPretty bool

	UpstreamTimeoutSecs int
	WatchlistTTLSecs    int
	MacroTTLSecs        int
	SentimentTTLSecs    int
	FedWatchTTLSecs     int
	FearGreedTTLSecs    int
	WarmIntervalSecs    int

	TelegramBotToken string

	SSHPort           int
	SSHHostKeyPath    string
	SSHAuthorizedKeys string

	TracingEnabled bool
	OTLPEndpoint   string
}

func Load() *Config {
	cfg := &Config{
		APIKey:            strings.TrimSpace(os.Getenv("API_KEY")),
		FREDAPIKey:        strings.TrimSpace(os.Getenv("FRED_API_KEY")),
		RedisURL:          strings.TrimSpace(os.Getenv("REDIS_URL")),
		LogLevel:          strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		LogPretty:         strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_PRETTY")), "true"),
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		SSHHostKeyPath:    strings.TrimSpace(os.Getenv("SSH_HOST_KEY_PATH")),
		SSHAuthorizedKeys: strings.TrimSpace(os.Getenv("SSH_AUTHORIZED_KEYS")),
		TracingEnabled:    !strings.EqualFold(strings.TrimSpace(os.Getenv("TRACING_ENABLED")), "false"),
		OTLPEndpoint:      strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.FREDAPIKey == "" || cfg.FREDAPIKey == "your_key_here" {
		log.Warn().Msg("FRED_API_KEY not set, /api/fred will answer 503")
	}
	if cfg.RedisURL == "" {
		log.Info().Msg("REDIS_URL not set, last good payloads will not be persisted")
	}
	if cfg.SSHHostKeyPath == "" {
		cfg.SSHHostKeyPath = ".ssh/market_pulse_ed25519"
	}

	cfg.Port = positiveInt("PORT", 8080)
	cfg.UpstreamTimeoutSecs = positiveInt("UPSTREAM_TIMEOUT_SECS", 10)
	cfg.WatchlistTTLSecs = positiveInt("WATCHLIST_TTL_SECS", 300)
	cfg.MacroTTLSecs = positiveInt("MACRO_TTL_SECS", 86400)
	cfg.SentimentTTLSecs = positiveInt("SENTIMENT_TTL_SECS", 86400)
	cfg.FedWatchTTLSecs = positiveInt("FEDWATCH_TTL_SECS", 3600)
	cfg.FearGreedTTLSecs = positiveInt("FEAR_GREED_TTL_SECS", 3600)
	cfg.SSHPort = positiveInt("SSH_PORT", 2222)

	cfg.WarmIntervalSecs = 0
	if v := strings.TrimSpace(os.Getenv("WARM_INTERVAL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.WarmIntervalSecs = n
		} else {
			log.Warn().Str("value", v).Msg("Invalid WARM_INTERVAL_SECS, cache warmer disabled")
		}
	}

	return cfg
}

// UpstreamTimeout bounds each provider call.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutSecs) * time.Second
}

// WarmInterval is zero when the cache warmer is disabled.
func (c *Config) WarmInterval() time.Duration {
	return time.Duration(c.WarmIntervalSecs) * time.Second
}

func positiveInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("key", key).Str("value", v).Int("default", def).Msg("Invalid value, using default")
		return def
	}
	return n
}
