package domain

import "testing"

func TestDisplayName(t *testing.T) {
	if got := DisplayName("^VIX", "CBOE Volatility"); got != "VIX" {
		t.Fatalf("expected override, got %q", got)
	}
	if got := DisplayName("AAPL", "Apple Inc."); got != "Apple Inc." {
		t.Fatalf("expected fallback name, got %q", got)
	}
}

func TestWatchlistHasDisplayNames(t *testing.T) {
	for _, s := range WatchlistSymbols {
		if _, ok := DisplayNames[s]; !ok {
			t.Errorf("missing display name for %s", s)
		}
	}
}

func TestLookupSeries(t *testing.T) {
	if meta := LookupSeries("T10Y2Y"); meta.Label != "10Y-2Y Treasury Spread" || meta.Unit != "%" {
		t.Fatalf("unexpected meta: %+v", meta)
	}
	if meta := LookupSeries("UNRATE"); meta.Label != "UNRATE" || meta.Unit != "" {
		t.Fatalf("unknown series should echo its id: %+v", meta)
	}
	if _, ok := MacroSeriesMeta[DefaultMacroSeries]; !ok {
		t.Fatal("default series must be labelled")
	}
}

func TestRatingColor(t *testing.T) {
	tests := map[string]string{
		"extreme fear":   "#ef4444",
		" Greed ":        "#84cc16",
		"EXTREME GREED":  "#22c55e",
		"something else": "#f59e0b",
	}
	for rating, want := range tests {
		if got := RatingColor(rating); got != want {
			t.Errorf("RatingColor(%q) = %s, want %s", rating, got, want)
		}
	}
}

func TestGaugeBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Panic"}, {19, "Panic"}, {20, "Caution"}, {50, "Neutral"}, {79, "Optimism"}, {80, "Euphoria"}, {100, "Euphoria"},
	}
	for _, tt := range tests {
		if got := GaugeBand(tt.score); got != tt.want {
			t.Errorf("GaugeBand(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
