package engine

import (
	"math"
	"sort"

	"option-strategist/internal/models"
)

// PayoffAt returns the total dollar profit or loss of the leg set when
// the underlying settles at price on expiry.
func PayoffAt(legs []models.Leg, price float64) float64 {
	total := 0.0
	for _, leg := range legs {
		total += leg.PayoffAt(price) * models.ContractSize * float64(leg.Quantity)
	}
	return total
}

// breakevens returns every underlying price at which the leg-sum
// payoff crosses zero, ascending.
//
// Expiry payoff is piecewise linear with kinks only at leg strikes, so
// evaluating at the strikes plus the interval bounds and interpolating
// each segment finds the roots exactly.
func breakevens(legs []models.Leg, lo, hi float64) []float64 {
	if len(legs) == 0 || hi <= lo {
		return nil
	}

	knots := []float64{lo, hi}
	for _, leg := range legs {
		if leg.Strike > lo && leg.Strike < hi {
			knots = append(knots, leg.Strike)
		}
	}
	sort.Float64s(knots)

	var roots []float64
	for i := 0; i < len(knots)-1; i++ {
		a, b := knots[i], knots[i+1]
		if b-a < 1e-12 {
			continue
		}
		fa, fb := PayoffAt(legs, a), PayoffAt(legs, b)
		switch {
		case fa == 0:
			roots = append(roots, a)
		case fa*fb < 0:
			roots = append(roots, a-fa*(b-a)/(fb-fa))
		}
	}
	if PayoffAt(legs, hi) == 0 {
		roots = append(roots, hi)
	}

	// Segments can share a root at a knot; drop duplicates.
	out := roots[:0]
	for _, r := range roots {
		if len(out) == 0 || math.Abs(r-out[len(out)-1]) > 1e-9 {
			out = append(out, r)
		}
	}
	return out
}

// nearestBreakeven returns the zero crossing closest to ref, searching
// a range wide enough to contain every crossing the strategies here
// can produce. Falls back to ref when the payoff never crosses zero.
func nearestBreakeven(legs []models.Leg, ref float64) float64 {
	hi := 2 * ref
	for _, leg := range legs {
		if 2*leg.Strike+ref > hi {
			hi = 2*leg.Strike + ref
		}
	}

	roots := breakevens(legs, 0, hi)
	if len(roots) == 0 {
		return ref
	}

	best := roots[0]
	for _, r := range roots[1:] {
		if math.Abs(r-ref) < math.Abs(best-ref) {
			best = r
		}
	}
	return best
}
