// Package engine computes option strategy payoff curves and risk metrics.
//
// The package is a pure computation library: every entry point is
// synchronous, holds no state between calls, and returns identical
// output for identical input. Strategy creation and interactive
// parameter edits both go through Engine.Recalculate, so the two paths
// cannot drift.
package engine

import (
	"option-strategist/internal/models"

	apperrors "option-strategist/internal/errors"
)

// BuildLegs translates a strategy kind and its parameters into the
// concrete leg set the payoff evaluator consumes. Every call path that
// needs legs goes through this single dispatch.
//
// Unknown kinds fail with ErrUnsupportedStrategyKind; a parameter the
// selected kind requires but the input does not carry fails with
// ErrMissingParameter. No kind ever falls back to another leg set.
func BuildLegs(kind models.StrategyKind, p models.StrategyParameters) ([]models.Leg, error) {
	qty := p.Contracts
	if qty == 0 {
		qty = 1
	}

	switch kind {
	case models.LongCall:
		buy, err := requireStrike("buyStrike", p.BuyStrike)
		if err != nil {
			return nil, err
		}
		paid, err := requirePremium("premiumPaid", p.PremiumPaid)
		if err != nil {
			return nil, err
		}
		return []models.Leg{
			{Type: models.Call, Side: models.Long, Strike: buy, Premium: paid, Quantity: qty},
		}, nil

	case models.LongPut:
		buy, err := requireStrike("buyStrike", p.BuyStrike)
		if err != nil {
			return nil, err
		}
		paid, err := requirePremium("premiumPaid", p.PremiumPaid)
		if err != nil {
			return nil, err
		}
		return []models.Leg{
			{Type: models.Put, Side: models.Long, Strike: buy, Premium: paid, Quantity: qty},
		}, nil

	case models.BullCallSpread, models.BullCallSpreadWide:
		buy, sell, paid, recv, err := requireSpread(p)
		if err != nil {
			return nil, err
		}
		if sell <= buy {
			return nil, apperrors.NewInvalidParameterError("sellStrike", sell,
				"must be above buyStrike for a bull call spread")
		}
		return []models.Leg{
			{Type: models.Call, Side: models.Long, Strike: buy, Premium: paid, Quantity: qty},
			{Type: models.Call, Side: models.Short, Strike: sell, Premium: recv, Quantity: qty},
		}, nil

	case models.BearPutSpread:
		buy, sell, paid, recv, err := requireSpread(p)
		if err != nil {
			return nil, err
		}
		if sell >= buy {
			return nil, apperrors.NewInvalidParameterError("sellStrike", sell,
				"must be below buyStrike for a bear put spread")
		}
		return []models.Leg{
			{Type: models.Put, Side: models.Long, Strike: buy, Premium: paid, Quantity: qty},
			{Type: models.Put, Side: models.Short, Strike: sell, Premium: recv, Quantity: qty},
		}, nil

	case models.SellOTMPut, models.SellDeepOTMPut:
		sell, err := requireStrike("sellStrike", p.SellStrike)
		if err != nil {
			return nil, err
		}
		recv, err := requirePremium("premiumReceived", p.PremiumReceived)
		if err != nil {
			return nil, err
		}
		return []models.Leg{
			{Type: models.Put, Side: models.Short, Strike: sell, Premium: recv, Quantity: qty},
		}, nil

	case models.SellOTMCall:
		sell, err := requireStrike("sellStrike", p.SellStrike)
		if err != nil {
			return nil, err
		}
		recv, err := requirePremium("premiumReceived", p.PremiumReceived)
		if err != nil {
			return nil, err
		}
		return []models.Leg{
			{Type: models.Call, Side: models.Short, Strike: sell, Premium: recv, Quantity: qty},
		}, nil

	case models.ShortStraddle:
		sell, err := requireStrike("sellStrike", p.SellStrike)
		if err != nil {
			return nil, err
		}
		recv, err := requirePremium("premiumReceived", p.PremiumReceived)
		if err != nil {
			return nil, err
		}
		// The credit is quoted for the pair; splitting it evenly keeps
		// the leg-sum payoff equal to credit minus both intrinsics.
		return []models.Leg{
			{Type: models.Call, Side: models.Short, Strike: sell, Premium: recv / 2, Quantity: qty},
			{Type: models.Put, Side: models.Short, Strike: sell, Premium: recv / 2, Quantity: qty},
		}, nil

	case models.IronCondor, models.IronButterfly:
		buy, err := requireStrike("buyStrike", p.BuyStrike)
		if err != nil {
			return nil, err
		}
		sell, err := requireStrike("sellStrike", p.SellStrike)
		if err != nil {
			return nil, err
		}
		recv, err := requirePremium("premiumReceived", p.PremiumReceived)
		if err != nil {
			return nil, err
		}
		paid, err := requirePremium("premiumPaid", p.PremiumPaid)
		if err != nil {
			return nil, err
		}
		if sell <= buy {
			return nil, apperrors.NewInvalidParameterError("sellStrike", sell,
				"upper call strike must be above the lower put strike")
		}
		net := recv - paid
		if net < 0 {
			return nil, apperrors.NewInvalidParameterError("premiumReceived", recv,
				"must cover premiumPaid for a net-credit structure")
		}
		// Two-strike model: short put at the lower strike, short call at
		// the upper strike, net credit split across the legs. The leg
		// sum reproduces the flat credit inside the range and the
		// distance-to-nearer-strike loss outside it.
		return []models.Leg{
			{Type: models.Put, Side: models.Short, Strike: buy, Premium: net / 2, Quantity: qty},
			{Type: models.Call, Side: models.Short, Strike: sell, Premium: net / 2, Quantity: qty},
		}, nil
	}

	return nil, apperrors.NewUnsupportedStrategyError(string(kind))
}

func requireStrike(field string, v *float64) (float64, error) {
	if v == nil {
		return 0, apperrors.NewMissingParameterError(field)
	}
	if *v <= 0 {
		return 0, apperrors.NewInvalidParameterError(field, *v, "strike must be positive")
	}
	return *v, nil
}

func requirePremium(field string, v *float64) (float64, error) {
	if v == nil {
		return 0, apperrors.NewMissingParameterError(field)
	}
	if *v < 0 {
		return 0, apperrors.NewInvalidParameterError(field, *v, "premium must be non-negative")
	}
	return *v, nil
}

// requireSpread gathers the four fields every two-leg vertical needs.
func requireSpread(p models.StrategyParameters) (buy, sell, paid, recv float64, err error) {
	if buy, err = requireStrike("buyStrike", p.BuyStrike); err != nil {
		return
	}
	if sell, err = requireStrike("sellStrike", p.SellStrike); err != nil {
		return
	}
	if paid, err = requirePremium("premiumPaid", p.PremiumPaid); err != nil {
		return
	}
	recv, err = requirePremium("premiumReceived", p.PremiumReceived)
	return
}
