package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "option-strategist/internal/errors"
	"option-strategist/internal/models"
)

func TestBuildLegsShortStraddleSplitsCredit(t *testing.T) {
	legs, err := BuildLegs(models.ShortStraddle, models.StrategyParameters{
		CurrentPrice:    100,
		SellStrike:      models.Float64Ptr(100),
		PremiumReceived: models.Float64Ptr(8),
	})
	require.NoError(t, err)
	require.Len(t, legs, 2)

	assert.Equal(t, models.Short, legs[0].Side)
	assert.Equal(t, models.Short, legs[1].Side)
	assert.InDelta(t, 4, legs[0].Premium, 1e-9)
	assert.InDelta(t, 4, legs[1].Premium, 1e-9)

	// At the strike the whole credit is kept.
	assert.InDelta(t, 800, PayoffAt(legs, 100), 1e-9)
}

func TestBuildLegsIronCondor(t *testing.T) {
	params := models.StrategyParameters{
		CurrentPrice:    100,
		BuyStrike:       models.Float64Ptr(90),
		SellStrike:      models.Float64Ptr(110),
		PremiumPaid:     models.Float64Ptr(1),
		PremiumReceived: models.Float64Ptr(5),
	}

	legs, err := BuildLegs(models.IronCondor, params)
	require.NoError(t, err)
	require.Len(t, legs, 2)

	assert.Equal(t, models.Put, legs[0].Type)
	assert.InDelta(t, 90, legs[0].Strike, 1e-9)
	assert.Equal(t, models.Call, legs[1].Type)
	assert.InDelta(t, 110, legs[1].Strike, 1e-9)

	// Flat at the net credit between the strikes, sloping to loss
	// outside them.
	assert.InDelta(t, 400, PayoffAt(legs, 95), 1e-9)
	assert.InDelta(t, 400, PayoffAt(legs, 105), 1e-9)
	assert.InDelta(t, -100, PayoffAt(legs, 85), 1e-9)
	assert.InDelta(t, -100, PayoffAt(legs, 115), 1e-9)
}

func TestBuildLegsIronCondorRejectsNetDebit(t *testing.T) {
	_, err := BuildLegs(models.IronCondor, models.StrategyParameters{
		CurrentPrice:    100,
		BuyStrike:       models.Float64Ptr(90),
		SellStrike:      models.Float64Ptr(110),
		PremiumPaid:     models.Float64Ptr(6),
		PremiumReceived: models.Float64Ptr(5),
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidParameter))
}

func TestBuildLegsMissingFields(t *testing.T) {
	tests := []struct {
		name      string
		kind      models.StrategyKind
		params    models.StrategyParameters
		wantField string
	}{
		{
			name:      "long call without strike",
			kind:      models.LongCall,
			params:    models.StrategyParameters{CurrentPrice: 100, PremiumPaid: models.Float64Ptr(5)},
			wantField: "buyStrike",
		},
		{
			name:      "long call without premium",
			kind:      models.LongCall,
			params:    models.StrategyParameters{CurrentPrice: 100, BuyStrike: models.Float64Ptr(100)},
			wantField: "premiumPaid",
		},
		{
			name: "spread without received premium",
			kind: models.BullCallSpread,
			params: models.StrategyParameters{
				CurrentPrice: 100,
				BuyStrike:    models.Float64Ptr(100),
				SellStrike:   models.Float64Ptr(110),
				PremiumPaid:  models.Float64Ptr(5),
			},
			wantField: "premiumReceived",
		},
		{
			name:      "written put without strike",
			kind:      models.SellOTMPut,
			params:    models.StrategyParameters{CurrentPrice: 100, PremiumReceived: models.Float64Ptr(3)},
			wantField: "sellStrike",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildLegs(tt.kind, tt.params)
			require.Error(t, err)

			var missing *apperrors.MissingParameterError
			require.True(t, apperrors.As(err, &missing))
			assert.Equal(t, tt.wantField, missing.Field)
		})
	}
}

func TestBuildLegsQuantityDefaults(t *testing.T) {
	params := models.StrategyParameters{
		CurrentPrice: 100,
		BuyStrike:    models.Float64Ptr(100),
		PremiumPaid:  models.Float64Ptr(5),
	}

	legs, err := BuildLegs(models.LongCall, params)
	require.NoError(t, err)
	assert.Equal(t, 1, legs[0].Quantity)

	params.Contracts = 4
	legs, err = BuildLegs(models.LongCall, params)
	require.NoError(t, err)
	assert.Equal(t, 4, legs[0].Quantity)
}

func TestBuildLegsEveryKindHasALegSet(t *testing.T) {
	params := models.StrategyParameters{
		CurrentPrice:    100,
		BuyStrike:       models.Float64Ptr(95),
		SellStrike:      models.Float64Ptr(105),
		PremiumPaid:     models.Float64Ptr(2),
		PremiumReceived: models.Float64Ptr(4),
	}

	for _, kind := range models.StrategyKinds {
		p := params
		if kind == models.BearPutSpread {
			// Put spreads buy the higher strike.
			p.BuyStrike = models.Float64Ptr(105)
			p.SellStrike = models.Float64Ptr(95)
		}
		legs, err := BuildLegs(kind, p)
		require.NoError(t, err, "kind %s", kind)
		assert.NotEmpty(t, legs, "kind %s", kind)
		for _, leg := range legs {
			assert.NoError(t, leg.Validate(), "kind %s", kind)
		}
	}
}
