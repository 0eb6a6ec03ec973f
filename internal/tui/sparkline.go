package tui

import (
	"math"
	"strings"
)

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders data as a single row of block characters at most width
// wide. NaN points are dropped.
func Sparkline(data []float64, width int) string {
	points := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			points = append(points, v)
		}
	}
	if len(points) == 0 || width <= 0 {
		return ""
	}
	cols := downsample(points, width)

	lo, hi := cols[0], cols[0]
	for _, v := range cols {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo

	var sb strings.Builder
	for _, v := range cols {
		idx := len(sparkChars) / 2
		if span > 0 {
			idx = int(math.Round((v - lo) / span * float64(len(sparkChars)-1)))
		}
		sb.WriteRune(sparkChars[idx])
	}
	return sb.String()
}

// downsample reduces data to n points by averaging buckets.
func downsample(data []float64, n int) []float64 {
	if len(data) <= n {
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}

	out := make([]float64, n)
	bucket := float64(len(data)) / float64(n)
	for i := range n {
		start := int(float64(i) * bucket)
		end := min(int(float64(i+1)*bucket), len(data))
		sum := 0.0
		for j := start; j < end; j++ {
			sum += data[j]
		}
		out[i] = sum / float64(end-start)
	}
	return out
}
