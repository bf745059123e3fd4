package engine

import (
	"option-strategist/internal/models"

	apperrors "option-strategist/internal/errors"
)

// Coarse qualitative success labels carried over from the strategy
// recommendation data. These are heuristic tags, not derived
// probabilities; deriving a real probability of profit would need a
// volatility model this engine deliberately does not have.
const (
	probLongDirectional = "35%"
	probVerticalSpread  = "45%"
	probShortStraddle   = "50%"
	probRangeCredit     = "60%"
	probShortPremium    = "70%"
)

// ComputeMetrics derives max gain, max loss, breakeven, and the
// qualitative success label for the strategy. Bounds and breakevens
// come from closed forms per kind; kinds with more than one breakeven
// use the leg-sum zero crossing nearest the current price.
//
// The legs must be the set BuildLegs produced for the same parameters;
// the controller guarantees this.
func ComputeMetrics(kind models.StrategyKind, p models.StrategyParameters, legs []models.Leg) (models.Metrics, error) {
	contracts := float64(p.Contracts)
	if contracts == 0 {
		contracts = 1
	}
	scale := models.ContractSize * contracts

	var m models.Metrics

	switch kind {
	case models.LongCall:
		buy, err := requireStrike("buyStrike", p.BuyStrike)
		if err != nil {
			return m, err
		}
		paid, err := requirePremium("premiumPaid", p.PremiumPaid)
		if err != nil {
			return m, err
		}
		m = models.Metrics{
			MaxGain:     models.Unbounded(),
			MaxLoss:     models.Bounded(round2(-paid * scale)),
			Breakeven:   round2(buy + paid),
			Probability: probLongDirectional,
		}

	case models.LongPut:
		buy, err := requireStrike("buyStrike", p.BuyStrike)
		if err != nil {
			return m, err
		}
		paid, err := requirePremium("premiumPaid", p.PremiumPaid)
		if err != nil {
			return m, err
		}
		// Gain is bounded because the underlying cannot fall below zero.
		m = models.Metrics{
			MaxGain:     models.Bounded(round2((buy - paid) * scale)),
			MaxLoss:     models.Bounded(round2(-paid * scale)),
			Breakeven:   round2(buy - paid),
			Probability: probLongDirectional,
		}

	case models.BullCallSpread, models.BullCallSpreadWide:
		buy, sell, paid, recv, err := requireSpread(p)
		if err != nil {
			return m, err
		}
		net := (paid - recv) * scale
		m = models.Metrics{
			MaxGain:     models.Bounded(round2((sell-buy)*scale - net)),
			MaxLoss:     models.Bounded(round2(-net)),
			Breakeven:   round2(buy + (paid - recv)),
			Probability: probVerticalSpread,
		}

	case models.BearPutSpread:
		buy, sell, paid, recv, err := requireSpread(p)
		if err != nil {
			return m, err
		}
		net := (paid - recv) * scale
		m = models.Metrics{
			MaxGain:     models.Bounded(round2((buy-sell)*scale - net)),
			MaxLoss:     models.Bounded(round2(-net)),
			Breakeven:   round2(buy - (paid - recv)),
			Probability: probVerticalSpread,
		}

	case models.SellOTMPut, models.SellDeepOTMPut:
		sell, err := requireStrike("sellStrike", p.SellStrike)
		if err != nil {
			return m, err
		}
		recv, err := requirePremium("premiumReceived", p.PremiumReceived)
		if err != nil {
			return m, err
		}
		// Worst case assigns the stock at the strike with the underlying
		// at zero, offset by the credit kept.
		m = models.Metrics{
			MaxGain:     models.Bounded(round2(recv * scale)),
			MaxLoss:     models.Bounded(round2(-(sell - recv) * scale)),
			Breakeven:   round2(sell - recv),
			Probability: probShortPremium,
		}

	case models.SellOTMCall:
		sell, err := requireStrike("sellStrike", p.SellStrike)
		if err != nil {
			return m, err
		}
		recv, err := requirePremium("premiumReceived", p.PremiumReceived)
		if err != nil {
			return m, err
		}
		m = models.Metrics{
			MaxGain:     models.Bounded(round2(recv * scale)),
			MaxLoss:     models.Unbounded(),
			Breakeven:   round2(sell + recv),
			Probability: probShortPremium,
		}

	case models.ShortStraddle:
		_, err := requireStrike("sellStrike", p.SellStrike)
		if err != nil {
			return m, err
		}
		recv, err := requirePremium("premiumReceived", p.PremiumReceived)
		if err != nil {
			return m, err
		}
		m = models.Metrics{
			MaxGain:     models.Bounded(round2(recv * scale)),
			MaxLoss:     models.Unbounded(),
			Breakeven:   round2(nearestBreakeven(legs, p.CurrentPrice)),
			Probability: probShortStraddle,
		}

	case models.IronCondor, models.IronButterfly:
		buy, err := requireStrike("buyStrike", p.BuyStrike)
		if err != nil {
			return m, err
		}
		sell, err := requireStrike("sellStrike", p.SellStrike)
		if err != nil {
			return m, err
		}
		recv, err := requirePremium("premiumReceived", p.PremiumReceived)
		if err != nil {
			return m, err
		}
		paid, err := requirePremium("premiumPaid", p.PremiumPaid)
		if err != nil {
			return m, err
		}
		net := (recv - paid) * scale
		// The halved-width loss assumes wings wider than the credit, as
		// every preset produces; hand-entered parameters outside that
		// shape can lose more than this figure at the grid edges.
		m = models.Metrics{
			MaxGain:     models.Bounded(round2(net)),
			MaxLoss:     models.Bounded(round2(-((sell-buy)*scale - net) / 2)),
			Breakeven:   round2(nearestBreakeven(legs, p.CurrentPrice)),
			Probability: probRangeCredit,
		}

	default:
		if !kind.Valid() {
			return m, apperrors.NewUnsupportedStrategyError(string(kind))
		}
		return m, apperrors.NewMetricsNotImplementedError(string(kind))
	}

	return m, nil
}
