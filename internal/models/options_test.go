package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegPayoffAt(t *testing.T) {
	tests := []struct {
		name  string
		leg   Leg
		price float64
		want  float64
	}{
		{
			name:  "long call in the money",
			leg:   Leg{Type: Call, Side: Long, Strike: 100, Premium: 5, Quantity: 1},
			price: 120,
			want:  15,
		},
		{
			name:  "long call out of the money loses premium",
			leg:   Leg{Type: Call, Side: Long, Strike: 100, Premium: 5, Quantity: 1},
			price: 90,
			want:  -5,
		},
		{
			name:  "long call at breakeven",
			leg:   Leg{Type: Call, Side: Long, Strike: 100, Premium: 5, Quantity: 1},
			price: 105,
			want:  0,
		},
		{
			name:  "long put in the money",
			leg:   Leg{Type: Put, Side: Long, Strike: 100, Premium: 4, Quantity: 1},
			price: 80,
			want:  16,
		},
		{
			name:  "short call keeps premium out of the money",
			leg:   Leg{Type: Call, Side: Short, Strike: 110, Premium: 2, Quantity: 1},
			price: 100,
			want:  2,
		},
		{
			name:  "short call loses intrinsic in the money",
			leg:   Leg{Type: Call, Side: Short, Strike: 110, Premium: 2, Quantity: 1},
			price: 130,
			want:  -18,
		},
		{
			name:  "short put keeps premium above strike",
			leg:   Leg{Type: Put, Side: Short, Strike: 90, Premium: 3, Quantity: 1},
			price: 100,
			want:  3,
		},
		{
			name:  "short put assigned below strike",
			leg:   Leg{Type: Put, Side: Short, Strike: 90, Premium: 3, Quantity: 1},
			price: 0,
			want:  -87,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.leg.PayoffAt(tt.price), 1e-9)
		})
	}
}

func TestLegValidate(t *testing.T) {
	valid := Leg{Type: Call, Side: Long, Strike: 100, Premium: 5, Quantity: 1}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Leg)
	}{
		{"unknown option type", func(l *Leg) { l.Type = "SWAP" }},
		{"unknown side", func(l *Leg) { l.Side = "HEDGE" }},
		{"zero strike", func(l *Leg) { l.Strike = 0 }},
		{"negative strike", func(l *Leg) { l.Strike = -10 }},
		{"negative premium", func(l *Leg) { l.Premium = -1 }},
		{"zero quantity", func(l *Leg) { l.Quantity = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leg := valid
			tt.mutate(&leg)
			assert.Error(t, leg.Validate())
		})
	}
}

func TestStrategyKindValid(t *testing.T) {
	for _, kind := range StrategyKinds {
		assert.True(t, kind.Valid(), "kind %s should be valid", kind)
	}
	assert.False(t, StrategyKind("butterfly_xyz").Valid())
	assert.False(t, StrategyKind("").Valid())
}

func TestStrategyParametersClone(t *testing.T) {
	params := StrategyParameters{
		CurrentPrice: 100,
		BuyStrike:    Float64Ptr(105),
		PremiumPaid:  Float64Ptr(5),
		Expiry:       "30d",
		Contracts:    2,
	}

	clone := params.Clone()
	require.NotNil(t, clone.BuyStrike)
	*clone.BuyStrike = 999

	assert.Equal(t, 105.0, *params.BuyStrike, "mutating the clone must not touch the original")
	assert.Nil(t, clone.SellStrike)
	assert.Equal(t, params.Contracts, clone.Contracts)
}
