package service

import (
	"context"
	"testing"
	"time"

	"market-pulse/internal/domain"
)

func TestWatchlistService_QuotesKeepOrderAndIsolateFailures(t *testing.T) {
	t.Parallel()

	quotes := newFakeQuotes()
	quotes.quotes["SPY"] = domain.Quote{Symbol: "SPY", Name: "SPDR S&P 500 ETF", Price: 612.5, Sparkline: []float64{1, 2}}
	quotes.quotes["BTC-USD"] = domain.Quote{Symbol: "BTC-USD", Name: "Bitcoin USD", Price: 97000, Sparkline: []float64{3}}
	quotes.quotes["XYZ"] = domain.Quote{Symbol: "XYZ", Name: "Xyz Corp", Price: 9}

	svc := NewWatchlistService(testTracer, quotes, time.Minute, nil)
	svc.symbols = []string{"SPY", "^VIX", "BTC-USD", "XYZ"}

	got := svc.Quotes(context.Background())
	if len(got) != 4 {
		t.Fatalf("expected 4 quotes, got %d", len(got))
	}
	for i, symbol := range svc.symbols {
		if got[i].Symbol != symbol {
			t.Fatalf("quote %d is %s, want %s", i, got[i].Symbol, symbol)
		}
	}
	if got[0].Name != "S&P 500" || got[2].Name != "Bitcoin" {
		t.Fatalf("display names not applied: %q %q", got[0].Name, got[2].Name)
	}
	if got[3].Name != "Xyz Corp" {
		t.Fatalf("unknown symbols keep upstream name, got %q", got[3].Name)
	}

	vix := got[1]
	if vix.Price != 0 || vix.ChangePercent1D != 0 || vix.Sparkline == nil || len(vix.Sparkline) != 0 {
		t.Fatalf("failed symbol should be a zeroed placeholder: %+v", vix)
	}
	if vix.Name != "VIX" {
		t.Fatalf("placeholder should still get its display name, got %q", vix.Name)
	}
}

func TestWatchlistService_CachesOnlySuccess(t *testing.T) {
	t.Parallel()

	quotes := newFakeQuotes()
	quotes.quotes["SPY"] = domain.Quote{Symbol: "SPY", Price: 1}

	svc := NewWatchlistService(testTracer, quotes, time.Minute, nil)
	svc.symbols = []string{"SPY", "QQQ"}

	svc.Quotes(context.Background())
	svc.Quotes(context.Background())

	if n := quotes.callCount("SPY"); n != 1 {
		t.Fatalf("successful quote should be cached, fetched %d times", n)
	}
	if n := quotes.callCount("QQQ"); n != 2 {
		t.Fatalf("failed quote should be retried, fetched %d times", n)
	}
}

func TestWatchlistService_PrefersLastGoodSnapshot(t *testing.T) {
	t.Parallel()

	rdb := newFakeRedis()
	rdb.seed("quote:QQQ", domain.Quote{Symbol: "QQQ", Name: "Invesco QQQ", Price: 480, Sparkline: []float64{470, 480}})

	quotes := newFakeQuotes()
	quotes.quotes["SPY"] = domain.Quote{Symbol: "SPY", Price: 600}

	svc := NewWatchlistService(testTracer, quotes, time.Minute, snapshotsFor(rdb))
	svc.symbols = []string{"SPY", "QQQ"}

	got := svc.Quotes(context.Background())
	if got[1].Price != 480 || got[1].Name != "Nasdaq 100" {
		t.Fatalf("expected last good QQQ quote, got %+v", got[1])
	}
	if !rdb.has("quote:SPY") {
		t.Fatal("successful quote should be stored as last good")
	}
}
