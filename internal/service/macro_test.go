package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"market-pulse/internal/domain"
)

func TestMacroService_SeriesLabelsAndCaches(t *testing.T) {
	t.Parallel()

	fred := &fakeSeries{
		configured: true,
		data: map[string][]domain.Observation{
			"BAMLH0A0HYM2": {{Date: "2026-03-02", Value: 3.02}, {Date: "2026-03-03", Value: 3.1}},
		},
	}
	svc := NewMacroService(testTracer, fred, time.Hour, nil)

	got, err := svc.Series(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SeriesID != "BAMLH0A0HYM2" || got.Label != "HY Credit Spread" || got.Unit != "%" {
		t.Fatalf("unexpected series metadata: %+v", got)
	}
	if len(got.Data) != 2 {
		t.Fatalf("unexpected data: %+v", got.Data)
	}

	if _, err := svc.Series(context.Background(), "BAMLH0A0HYM2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fred.calls != 1 {
		t.Fatalf("second read should hit the cache, got %d fetches", fred.calls)
	}
}

func TestMacroService_UnknownSeriesUsesID(t *testing.T) {
	t.Parallel()

	fred := &fakeSeries{configured: true, data: map[string][]domain.Observation{"UNRATE": {}}}
	svc := NewMacroService(testTracer, fred, time.Hour, nil)

	got, err := svc.Series(context.Background(), "UNRATE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Label != "UNRATE" || got.Unit != "" {
		t.Fatalf("unknown series should be labelled by id: %+v", got)
	}
}

func TestMacroService_MissingKey(t *testing.T) {
	t.Parallel()

	fred := &fakeSeries{configured: false}
	svc := NewMacroService(testTracer, fred, time.Hour, nil)

	_, err := svc.Series(context.Background(), "DGS10")
	if !IsConfigError(err) {
		t.Fatalf("expected config error, got %v", err)
	}
	if fred.calls != 0 {
		t.Fatalf("no fetch should be attempted without a key")
	}
}

func TestMacroService_UpstreamFailure(t *testing.T) {
	t.Parallel()

	fred := &fakeSeries{configured: true}
	svc := NewMacroService(testTracer, fred, time.Hour, nil)

	_, err := svc.Series(context.Background(), "NOPE")
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != KindTransport || fe.Source != "fred" {
		t.Fatalf("expected transport FetchError, got %v", err)
	}

	_, _ = svc.Series(context.Background(), "NOPE")
	if fred.calls != 2 {
		t.Fatalf("failures must not be cached, got %d fetches", fred.calls)
	}
}

func TestMacroService_FailureServesLastGood(t *testing.T) {
	t.Parallel()

	rdb := newFakeRedis()
	rdb.seed("fred:PERMIT", domain.MacroSeries{SeriesID: "PERMIT", Label: "Housing Permits", Unit: "K",
		Data: []domain.Observation{{Date: "2026-01-01", Value: 1400}}})

	svc := NewMacroService(testTracer, &fakeSeries{configured: true}, time.Hour, snapshotsFor(rdb))

	got, err := svc.Series(context.Background(), "PERMIT")
	if err != nil {
		t.Fatalf("expected last good series, got %v", err)
	}
	if len(got.Data) != 1 || got.Data[0].Value != 1400 {
		t.Fatalf("unexpected series: %+v", got)
	}
}

func TestMacroService_SeriesSetReportsFailuresInOrder(t *testing.T) {
	t.Parallel()

	fred := &fakeSeries{
		configured: true,
		data: map[string][]domain.Observation{
			"BAMLH0A0HYM2": {{Date: "2026-03-03", Value: 3.1}},
			"T10Y2Y":       {{Date: "2026-03-03", Value: 0.55}},
		},
	}
	svc := NewMacroService(testTracer, fred, time.Hour, nil)

	series, errs := svc.SeriesSet(context.Background(), []string{"BAMLH0A0HYM2", "PERMIT", "T10Y2Y", "CAPE"})
	if len(series) != 2 || series[0].SeriesID != "BAMLH0A0HYM2" || series[1].SeriesID != "T10Y2Y" {
		t.Fatalf("unexpected series: %+v", series)
	}
	if len(errs) != 2 {
		t.Fatalf("expected two failures, got %v", errs)
	}
}
