package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "option-strategist/internal/errors"
	"option-strategist/internal/models"
)

func computeFor(t *testing.T, kind models.StrategyKind, p models.StrategyParameters) models.Metrics {
	t.Helper()
	legs, err := BuildLegs(kind, p)
	require.NoError(t, err)
	m, err := ComputeMetrics(kind, p, legs)
	require.NoError(t, err)
	return m
}

func TestComputeMetricsClosedForms(t *testing.T) {
	spread := models.StrategyParameters{
		CurrentPrice:    100,
		BuyStrike:       models.Float64Ptr(100),
		SellStrike:      models.Float64Ptr(110),
		PremiumPaid:     models.Float64Ptr(5),
		PremiumReceived: models.Float64Ptr(2),
	}

	t.Run("long_put", func(t *testing.T) {
		m := computeFor(t, models.LongPut, models.StrategyParameters{
			CurrentPrice: 100,
			BuyStrike:    models.Float64Ptr(100),
			PremiumPaid:  models.Float64Ptr(4),
		})
		assert.InDelta(t, 9600, m.MaxGain.Value(), 1e-9)
		assert.InDelta(t, -400, m.MaxLoss.Value(), 1e-9)
		assert.InDelta(t, 96, m.Breakeven, 1e-9)
		assert.Equal(t, "35%", m.Probability)
	})

	t.Run("bull_call_spread_wide", func(t *testing.T) {
		m := computeFor(t, models.BullCallSpreadWide, spread)
		assert.InDelta(t, 700, m.MaxGain.Value(), 1e-9)
		assert.InDelta(t, -300, m.MaxLoss.Value(), 1e-9)
		assert.InDelta(t, 103, m.Breakeven, 1e-9)
		assert.Equal(t, "45%", m.Probability)
	})

	t.Run("bear_put_spread", func(t *testing.T) {
		m := computeFor(t, models.BearPutSpread, models.StrategyParameters{
			CurrentPrice:    100,
			BuyStrike:       models.Float64Ptr(100),
			SellStrike:      models.Float64Ptr(90),
			PremiumPaid:     models.Float64Ptr(5),
			PremiumReceived: models.Float64Ptr(2),
		})
		assert.InDelta(t, 700, m.MaxGain.Value(), 1e-9)
		assert.InDelta(t, -300, m.MaxLoss.Value(), 1e-9)
		assert.InDelta(t, 97, m.Breakeven, 1e-9)
	})

	t.Run("sell_deep_otm_put", func(t *testing.T) {
		m := computeFor(t, models.SellDeepOTMPut, models.StrategyParameters{
			CurrentPrice:    100,
			SellStrike:      models.Float64Ptr(85),
			PremiumReceived: models.Float64Ptr(2),
		})
		assert.InDelta(t, 200, m.MaxGain.Value(), 1e-9)
		assert.InDelta(t, -8300, m.MaxLoss.Value(), 1e-9)
		assert.InDelta(t, 83, m.Breakeven, 1e-9)
		assert.Equal(t, "70%", m.Probability)
	})

	t.Run("sell_otm_call", func(t *testing.T) {
		m := computeFor(t, models.SellOTMCall, models.StrategyParameters{
			CurrentPrice:    100,
			SellStrike:      models.Float64Ptr(110),
			PremiumReceived: models.Float64Ptr(3),
		})
		assert.InDelta(t, 300, m.MaxGain.Value(), 1e-9)
		assert.True(t, m.MaxLoss.IsUnbounded())
		assert.InDelta(t, 113, m.Breakeven, 1e-9)
	})

	t.Run("iron_butterfly", func(t *testing.T) {
		m := computeFor(t, models.IronButterfly, models.StrategyParameters{
			CurrentPrice:    100,
			BuyStrike:       models.Float64Ptr(95),
			SellStrike:      models.Float64Ptr(105),
			PremiumPaid:     models.Float64Ptr(1),
			PremiumReceived: models.Float64Ptr(4),
		})
		assert.InDelta(t, 300, m.MaxGain.Value(), 1e-9)
		assert.InDelta(t, -350, m.MaxLoss.Value(), 1e-9)
		assert.Equal(t, "60%", m.Probability)
	})
}

func TestComputeMetricsScalesWithContracts(t *testing.T) {
	p := models.StrategyParameters{
		CurrentPrice:    100,
		SellStrike:      models.Float64Ptr(90),
		PremiumReceived: models.Float64Ptr(3),
		Contracts:       5,
	}
	m := computeFor(t, models.SellOTMPut, p)

	assert.InDelta(t, 1500, m.MaxGain.Value(), 1e-9)
	assert.InDelta(t, -43500, m.MaxLoss.Value(), 1e-9)
	// Breakeven is a price; it never scales with position size.
	assert.InDelta(t, 87, m.Breakeven, 1e-9)
}

func TestComputeMetricsUnknownKind(t *testing.T) {
	_, err := ComputeMetrics(models.StrategyKind("butterfly_xyz"), models.StrategyParameters{CurrentPrice: 100}, nil)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrUnsupportedStrategyKind))
}
