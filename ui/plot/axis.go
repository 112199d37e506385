package plot

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
)

// dataBounds returns the min and max of vals. vals must be non-empty.
func dataBounds(vals []float64) (float64, float64) {
	return floats.Min(vals), floats.Max(vals)
}

// niceAxisBounds pads [min, max] by 5% on both sides and rounds outward to
// the span's order of magnitude, so autoscaled axes land on round numbers.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		// Degenerate span (single sample or a constant trajectory):
		// open up a unit window around the value.
		return min - 0.5, min + 0.5
	}
	span := max - min
	pad := span * 0.05
	a := min - pad
	b := max + pad

	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if mag > 0 && !math.IsInf(mag, 0) {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates roughly n tick marks between min and max using steps
// of 1, 2, 2.5, or 5 times a power of ten.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) || max <= min {
		return nil
	}
	mag := math.Pow(10, math.Floor(math.Log10((max-min)/float64(n-1))))
	step := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		candidate := c * mag
		count := math.Ceil((max - min) / candidate)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			step = candidate
		}
	}

	var ticks []chart.Tick
	start := math.Floor(min/step) * step
	for v := start; v <= max+step/2; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	switch av := math.Abs(v); {
	case av >= 1000:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.3g", v)
	}
}
