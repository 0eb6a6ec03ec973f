package domain

import "strings"

// WatchlistSymbols is the fixed set of Yahoo symbols shown on the dashboard, in display order.
var WatchlistSymbols = []string{
	"SPY",
	"QQQ",
	"^DJI",
	"IWM",
	"^VIX",
	"^MOVE",
	"TLT",
	"GLD",
	"DX-Y.NYB",
	"BTC-USD",
}

// DisplayNames overrides the upstream short name for watchlist symbols.
var DisplayNames = map[string]string{
	"SPY":      "S&P 500",
	"QQQ":      "Nasdaq 100",
	"^DJI":     "Dow Jones",
	"IWM":      "Russell 2000",
	"^VIX":     "VIX",
	"^MOVE":    "MOVE Index",
	"TLT":      "20Y Treasury",
	"GLD":      "Gold",
	"DX-Y.NYB": "US Dollar",
	"BTC-USD":  "Bitcoin",
}

// SeriesMeta describes how a FRED series is labelled on the dashboard.
type SeriesMeta struct {
	Label string
	Unit  string
}

var MacroSeriesMeta = map[string]SeriesMeta{
	"BAMLH0A0HYM2":         {Label: "HY Credit Spread", Unit: "%"},
	"BAMLC0A0CM":           {Label: "IG Credit Spread", Unit: "%"},
	"PERMIT":               {Label: "Housing Permits", Unit: "K"},
	"CORESTICKM159SFRBATL": {Label: "Sticky CPI", Unit: "%"},
	"CAPE":                 {Label: "Shiller CAPE", Unit: "x"},
	"T10Y2Y":               {Label: "10Y-2Y Treasury Spread", Unit: "%"},
}

// DefaultMacroSeries is served when no series is requested.
const DefaultMacroSeries = "BAMLH0A0HYM2"

// DashboardMacroSeries are the charts rendered in the macro section.
var DashboardMacroSeries = []string{
	"BAMLH0A0HYM2",
	"CORESTICKM159SFRBATL",
	"PERMIT",
	"T10Y2Y",
}

// LookupSeries returns display metadata for id, falling back to the raw id.
func LookupSeries(id string) SeriesMeta {
	if meta, ok := MacroSeriesMeta[id]; ok {
		return meta
	}
	return SeriesMeta{Label: id}
}

// DisplayName returns the dashboard name for a symbol, or fallback if none is configured.
func DisplayName(symbol, fallback string) string {
	if name, ok := DisplayNames[symbol]; ok {
		return name
	}
	return fallback
}

var fearGreedColors = map[string]string{
	"extreme fear":  "#ef4444",
	"fear":          "#f97316",
	"neutral":       "#f59e0b",
	"greed":         "#84cc16",
	"extreme greed": "#22c55e",
}

// RatingColor maps a fear & greed rating to its gauge color. Unknown ratings render as neutral.
func RatingColor(rating string) string {
	if c, ok := fearGreedColors[strings.ToLower(strings.TrimSpace(rating))]; ok {
		return c
	}
	return fearGreedColors["neutral"]
}

// GaugeBand names the fifth of the 0-100 fear & greed scale a score falls in.
func GaugeBand(score int) string {
	switch {
	case score < 20:
		return "Panic"
	case score < 40:
		return "Caution"
	case score < 60:
		return "Neutral"
	case score < 80:
		return "Optimism"
	default:
		return "Euphoria"
	}
}
