package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"market-pulse/internal/cache"
	"market-pulse/internal/domain"
	"market-pulse/internal/provider"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("test")

var errUpstreamDown = errors.New("dial tcp: connection refused")

type fakeQuotes struct {
	mu     sync.Mutex
	quotes map[string]domain.Quote
	errs   map[string]error
	calls  map[string]int
}

func newFakeQuotes() *fakeQuotes {
	return &fakeQuotes{
		quotes: make(map[string]domain.Quote),
		errs:   make(map[string]error),
		calls:  make(map[string]int),
	}
}

func (f *fakeQuotes) FetchQuote(ctx context.Context, symbol string) (domain.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[symbol]++
	if err, ok := f.errs[symbol]; ok {
		return domain.Quote{}, err
	}
	if q, ok := f.quotes[symbol]; ok {
		return q, nil
	}
	return domain.Quote{}, errUpstreamDown
}

func (f *fakeQuotes) callCount(symbol string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[symbol]
}

type fakeSeries struct {
	mu         sync.Mutex
	configured bool
	data       map[string][]domain.Observation
	calls      int
}

func (f *fakeSeries) Configured() bool { return f.configured }

func (f *fakeSeries) FetchSeries(ctx context.Context, seriesID string) ([]domain.Observation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if obs, ok := f.data[seriesID]; ok {
		return obs, nil
	}
	return nil, &provider.StatusError{Source: "FRED", Code: 400, Body: "Bad Request"}
}

type fakeIndicators struct {
	mu        sync.Mutex
	sentiment domain.Sentiment
	outlook   domain.FedOutlook
	fearGreed domain.FearGreed
	err       error
	calls     int
}

func (f *fakeIndicators) record() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakeIndicators) FetchSentiment(ctx context.Context) (domain.Sentiment, error) {
	if err := f.record(); err != nil {
		return domain.Sentiment{}, err
	}
	return f.sentiment, nil
}

func (f *fakeIndicators) FetchOutlook(ctx context.Context) (domain.FedOutlook, error) {
	if err := f.record(); err != nil {
		return domain.FedOutlook{}, err
	}
	return f.outlook, nil
}

func (f *fakeIndicators) FetchLatest(ctx context.Context) (domain.FearGreed, error) {
	if err := f.record(); err != nil {
		return domain.FearGreed{}, err
	}
	return f.fearGreed, nil
}

type fakeRedis struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string][]byte)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		f.data[key] = append([]byte(nil), v...)
	default:
		bytes, _ := json.Marshal(v)
		f.data[key] = bytes
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.data[key]; ok {
		return redis.NewStringResult(string(v), nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeRedis) seed(key string, v any) {
	bytes, _ := json.Marshal(v)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data["lastgood:"+key] = bytes
}

func (f *fakeRedis) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data["lastgood:"+key]
	return ok
}

func snapshotsFor(rdb *fakeRedis) *cache.SnapshotStore {
	if rdb == nil {
		return nil
	}
	return cache.NewSnapshotStore(rdb)
}
