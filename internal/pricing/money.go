package pricing

import "math"

// roundCents rounds to two decimals on the cent boundary, half away from
// zero. Every monetary output is rounded here at the point of computation,
// never deferred to display.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
