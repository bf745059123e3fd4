package engine

import (
	"math"

	"option-strategist/internal/models"
)

// Grid constants are contract values shared with chart consumers, not
// configuration: the curve always spans the current price +/-30% in
// exactly 101 equally spaced samples.
const (
	curvePoints = 101
	gridSpan    = 0.30
)

// SampleCurve evaluates the leg set across the price grid around
// currentPrice and returns the sampled profit/loss curve, ascending by
// price with both fields rounded to cents for display stability.
//
// Each call allocates a fresh slice, so a snapshot held by a renderer
// stays valid after the next recalculation.
func SampleCurve(legs []models.Leg, currentPrice float64) []models.PayoffPoint {
	minPrice := currentPrice * (1 - gridSpan)
	maxPrice := currentPrice * (1 + gridSpan)
	step := (maxPrice - minPrice) / float64(curvePoints-1)

	curve := make([]models.PayoffPoint, 0, curvePoints)
	for i := 0; i < curvePoints; i++ {
		price := minPrice + float64(i)*step
		curve = append(curve, models.PayoffPoint{
			Price:  round2(price),
			Payoff: round2(PayoffAt(legs, price)),
		})
	}
	return curve
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
