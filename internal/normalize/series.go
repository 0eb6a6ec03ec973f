package normalize

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"market-pulse/internal/domain"
)

// MissingMarker is FRED's placeholder for a date with no observation.
const MissingMarker = "."

// RawObservation is an observation as FRED sends it, value still text.
type RawObservation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// ParseObservations drops missing-marker entries, parses the rest and orders them by date.
// Text that does not parse becomes NaN and is kept.
func ParseObservations(raw []RawObservation) []domain.Observation {
	out := make([]domain.Observation, 0, len(raw))
	for _, o := range raw {
		if o.Value == MissingMarker {
			continue
		}
		out = append(out, domain.Observation{Date: o.Date, Value: parseValue(o.Value)})
	}
	// Dates are zero-padded YYYY-MM-DD, so string order is calendar order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func parseValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
