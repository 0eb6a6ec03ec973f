// Package normalize turns raw upstream payloads into the dashboard's fixed shapes.
// Every function here is pure.
package normalize

import (
	"math"

	"market-pulse/internal/domain"
)

const sparklineLen = 7

// RawQuote is the subset of upstream quote metadata the dashboard reads.
// Nil numeric fields are treated as 0.
type RawQuote struct {
	Symbol        string
	ShortName     string
	LongName      string
	Price         *float64
	ChangePercent *float64
}

// FormatQuote builds a Quote from upstream metadata and daily closes ordered oldest first.
func FormatQuote(raw RawQuote, closes []float64) domain.Quote {
	name := raw.ShortName
	if name == "" {
		name = raw.LongName
	}
	if name == "" {
		name = raw.Symbol
	}

	return domain.Quote{
		Symbol:           raw.Symbol,
		Name:             name,
		Price:            deref(raw.Price),
		ChangePercent1D:  deref(raw.ChangePercent),
		ChangePercent5D:  windowChange(closes, 5),
		ChangePercent20D: windowChange(closes, 20),
		Sparkline:        Sparkline(closes),
	}
}

// windowChange is the percent move of the last close over the close `days` sessions earlier.
// It is 0 when fewer than days+1 closes are available or the base close is 0.
func windowChange(closes []float64, days int) float64 {
	n := len(closes)
	if n < days+1 {
		return 0
	}
	base := closes[n-days-1]
	if base == 0 {
		return 0
	}
	change := (closes[n-1] - base) / base * 100
	if math.IsNaN(change) || math.IsInf(change, 0) {
		return 0
	}
	return change
}

// Sparkline returns the last seven closes, oldest first. The result never aliases closes.
func Sparkline(closes []float64) []float64 {
	start := len(closes) - sparklineLen
	if start < 0 {
		start = 0
	}
	out := make([]float64, len(closes)-start)
	copy(out, closes[start:])
	return out
}

// CompactCloses drops missing (nil) closes, keeping order.
func CompactCloses(raw []*float64) []float64 {
	out := make([]float64, 0, len(raw))
	for _, v := range raw {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
