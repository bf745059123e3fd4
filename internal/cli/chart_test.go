package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"option-strategist/internal/engine"
	"option-strategist/internal/models"
)

func sampleCurve(t *testing.T) []models.PayoffPoint {
	t.Helper()
	legs := []models.Leg{{Type: models.Call, Side: models.Long, Strike: 100, Premium: 5, Quantity: 1}}
	return engine.SampleCurve(legs, 100)
}

func TestBuildPayoffChartShape(t *testing.T) {
	lines := BuildPayoffChart(sampleCurve(t), 15, 64)

	// height rows plus the bottom axis and the price scale.
	require.Len(t, lines, 17)
	for _, line := range lines[:15] {
		assert.Contains(t, line, "│")
	}
	assert.Contains(t, lines[15], "└")

	// Price scale spans the sampled range.
	assert.Contains(t, lines[16], "$70.00")
	assert.Contains(t, lines[16], "$130.00")
}

func TestBuildPayoffChartMarksGainAndLoss(t *testing.T) {
	joined := strings.Join(BuildPayoffChart(sampleCurve(t), 15, 64), "\n")

	// A long call has both a loss plateau and a gain slope.
	assert.Contains(t, joined, "█")
	assert.Contains(t, joined, "▒")
	assert.Contains(t, joined, "$0")
}

func TestBuildPayoffChartDegenerateInput(t *testing.T) {
	assert.Nil(t, BuildPayoffChart(nil, 15, 64))
	assert.Nil(t, BuildPayoffChart(sampleCurve(t), 2, 64))
	assert.Nil(t, BuildPayoffChart(sampleCurve(t), 15, 5))

	// A flat curve still renders without dividing by zero.
	flat := []models.PayoffPoint{{Price: 70, Payoff: 0}, {Price: 130, Payoff: 0}}
	lines := BuildPayoffChart(flat, 15, 64)
	assert.NotEmpty(t, lines)
}
