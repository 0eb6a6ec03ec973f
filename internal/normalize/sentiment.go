package normalize

import (
	"math"
	"strconv"
	"strings"

	"market-pulse/internal/domain"
)

// SurveyColumnOrder is the assumed layout of the survey results table: the first three
// numeric cells in (0, 100] hold the bullish, neutral and bearish percentages in this
// order. The page does not label them in a machine-readable way, so SurveyPercentages
// relies on position alone.
var SurveyColumnOrder = [...]string{"bullish", "neutral", "bearish"}

// Long-run survey averages, used for any column the page did not yield.
const (
	defaultBullish = 37
	defaultNeutral = 31
	defaultBearish = 32
)

// sentimentTolerance is how far the raw total may drift from 100 before rescaling.
const sentimentTolerance = 5

// SurveyPercentages reads table cell texts in document order and returns the
// bullish, neutral and bearish values per SurveyColumnOrder, plus how many were found.
func SurveyPercentages(cells []string) (bullish, neutral, bearish float64, found int) {
	values := make([]float64, 0, len(SurveyColumnOrder))
	for _, cell := range cells {
		v, ok := parsePercentCell(cell)
		if !ok {
			continue
		}
		values = append(values, v)
		if len(values) == len(SurveyColumnOrder) {
			break
		}
	}

	out := [...]float64{defaultBullish, defaultNeutral, defaultBearish}
	copy(out[:], values)
	return out[0], out[1], out[2], len(values)
}

func parsePercentCell(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "%", "")
	text = strings.ReplaceAll(text, ",", "")
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	if v <= 0 || v > 100 {
		return 0, false
	}
	return v, true
}

// NormalizeSentiment rounds a raw bullish/neutral/bearish triple. When the raw total is
// more than 5 points away from 100 the values are rescaled and bearish takes the
// remainder, so the result sums to exactly 100.
func NormalizeSentiment(bullish, neutral, bearish float64) domain.SentimentSplit {
	total := bullish + neutral + bearish
	if total > 0 && math.Abs(total-100) > sentimentTolerance {
		bullish = roundHalfUp(bullish / total * 100)
		neutral = roundHalfUp(neutral / total * 100)
		bearish = 100 - bullish - neutral
	}

	return domain.SentimentSplit{
		Bullish: int(roundHalfUp(bullish)),
		Neutral: int(roundHalfUp(neutral)),
		Bearish: int(roundHalfUp(bearish)),
		Spread:  int(roundHalfUp(bullish - bearish)),
	}
}

// roundHalfUp rounds .5 toward +Inf, so -2.5 becomes -2.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
