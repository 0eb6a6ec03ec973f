package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"market-pulse/internal/provider"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"transport", errUpstreamDown, KindTransport},
		{"timeout", fmt.Errorf("fetch: %w", context.DeadlineExceeded), KindTransport},
		{"status", &provider.StatusError{Source: "CME", Code: 403}, KindTransport},
		{"shape", fmt.Errorf("%w: no meetings", provider.ErrUnexpectedPayload), KindShape},
		{"config", fmt.Errorf("FRED: %w", provider.ErrMissingAPIKey), KindConfig},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify("src", tc.err)
			if got.Kind != tc.want {
				t.Fatalf("Classify(%v) kind = %s, want %s", tc.err, got.Kind, tc.want)
			}
			if !errors.Is(got, tc.err) {
				t.Fatalf("classified error should unwrap to the original")
			}
		})
	}
}

func TestClassifyNilAndPassthrough(t *testing.T) {
	if Classify("src", nil) != nil {
		t.Fatal("nil error should classify to nil")
	}

	orig := &FetchError{Kind: KindShape, Source: "aaii", Err: errUpstreamDown}
	wrapped := fmt.Errorf("outer: %w", orig)
	if got := Classify("other", wrapped); got != orig {
		t.Fatalf("existing FetchError should be returned as is, got %+v", got)
	}
}

func TestIsConfigError(t *testing.T) {
	if !IsConfigError(&FetchError{Kind: KindConfig}) {
		t.Fatal("expected config error")
	}
	if IsConfigError(&FetchError{Kind: KindTransport}) || IsConfigError(errUpstreamDown) || IsConfigError(nil) {
		t.Fatal("only config FetchErrors are config errors")
	}
}
