package cli

import (
	"fmt"
	"math"
	"strings"

	"option-strategist/internal/models"
)

// BuildPayoffChart renders a payoff curve as ASCII rows. The chart maps
// the sampled price range onto width columns and the payoff range onto
// height rows, with the zero axis drawn when it falls inside the range.
func BuildPayoffChart(curve []models.PayoffPoint, height, width int) []string {
	if len(curve) < 2 || height < 3 || width < 10 {
		return nil
	}

	lo, hi := curve[0].Payoff, curve[0].Payoff
	for _, pt := range curve {
		if pt.Payoff < lo {
			lo = pt.Payoff
		}
		if pt.Payoff > hi {
			hi = pt.Payoff
		}
	}
	// Keep the zero axis inside the plot so gains and losses read
	// against the same baseline.
	if lo > 0 {
		lo = 0
	}
	if hi < 0 {
		hi = 0
	}
	if hi == lo {
		hi = lo + 1
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	rowFor := func(payoff float64) int {
		frac := (payoff - lo) / (hi - lo)
		r := int(math.Round(float64(height-1) * (1 - frac)))
		if r < 0 {
			r = 0
		}
		if r >= height {
			r = height - 1
		}
		return r
	}

	zeroRow := rowFor(0)
	for c := 0; c < width; c++ {
		grid[zeroRow][c] = '·'
	}

	for c := 0; c < width; c++ {
		idx := c * (len(curve) - 1) / (width - 1)
		r := rowFor(curve[idx].Payoff)
		if curve[idx].Payoff >= 0 {
			grid[r][c] = '█'
		} else {
			grid[r][c] = '▒'
		}
	}

	lines := make([]string, 0, height+2)
	for r := 0; r < height; r++ {
		var label string
		switch r {
		case 0:
			label = fmt.Sprintf("%10s", FormatMoney(hi))
		case zeroRow:
			label = fmt.Sprintf("%10s", "$0")
		case height - 1:
			label = fmt.Sprintf("%10s", FormatMoney(lo))
		default:
			label = strings.Repeat(" ", 10)
		}
		lines = append(lines, fmt.Sprintf("%s │%s", label, string(grid[r])))
	}

	lines = append(lines, fmt.Sprintf("%s └%s", strings.Repeat(" ", 10), strings.Repeat("─", width)))

	left := FormatPrice(curve[0].Price)
	right := FormatPrice(curve[len(curve)-1].Price)
	mid := FormatPrice(curve[len(curve)/2].Price)
	gap := width - len(left) - len(mid) - len(right)
	if gap < 2 {
		lines = append(lines, fmt.Sprintf("%s  %s", strings.Repeat(" ", 10), left))
	} else {
		half := gap / 2
		lines = append(lines, fmt.Sprintf("%s  %s%s%s%s%s",
			strings.Repeat(" ", 10),
			left, strings.Repeat(" ", half), mid, strings.Repeat(" ", gap-half), right))
	}
	return lines
}
