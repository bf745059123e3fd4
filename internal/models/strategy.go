package models

// StrategyKind identifies a supported option strategy.
type StrategyKind string

const (
	// LongCall buys an ATM call. Unlimited upside, premium at risk.
	LongCall StrategyKind = "long_call"
	// LongPut buys an ATM put. Gains as the underlying falls.
	LongPut StrategyKind = "long_put"
	// BullCallSpread buys a lower-strike call and writes a higher-strike call.
	BullCallSpread StrategyKind = "bull_call_spread"
	// BullCallSpreadWide is a bull call spread with a wider strike gap.
	BullCallSpreadWide StrategyKind = "bull_call_spread_wide"
	// BearPutSpread buys a higher-strike put and writes a lower-strike put.
	BearPutSpread StrategyKind = "bear_put_spread"
	// SellOTMPut writes a put below the current price for credit.
	SellOTMPut StrategyKind = "sell_otm_put"
	// SellDeepOTMPut writes a put far below the current price.
	SellDeepOTMPut StrategyKind = "sell_deep_otm_put"
	// SellOTMCall writes a call above the current price for credit.
	SellOTMCall StrategyKind = "sell_otm_call"
	// ShortStraddle writes an ATM call and put for combined credit.
	ShortStraddle StrategyKind = "short_straddle"
	// IronCondor collects credit inside a range bounded by a put and a call.
	IronCondor StrategyKind = "iron_condor"
	// IronButterfly is an iron condor with strikes closer to the money.
	IronButterfly StrategyKind = "iron_butterfly"
)

// StrategyKinds lists every supported strategy in display order.
var StrategyKinds = []StrategyKind{
	LongCall,
	LongPut,
	BullCallSpread,
	BullCallSpreadWide,
	BearPutSpread,
	SellOTMPut,
	SellDeepOTMPut,
	SellOTMCall,
	ShortStraddle,
	IronCondor,
	IronButterfly,
}

// Valid returns true if the kind is one of the supported strategies.
func (k StrategyKind) Valid() bool {
	for _, known := range StrategyKinds {
		if k == known {
			return true
		}
	}
	return false
}

// StrategyParameters holds the user-editable inputs of a strategy.
// Optional fields are nil when the strategy does not use them.
// The evaluation engine treats parameters as read-only; the caller
// owns all mutation.
type StrategyParameters struct {
	CurrentPrice    float64  `json:"current_price"`
	BuyStrike       *float64 `json:"buy_strike,omitempty"`
	SellStrike      *float64 `json:"sell_strike,omitempty"`
	PremiumPaid     *float64 `json:"premium_paid,omitempty"`
	PremiumReceived *float64 `json:"premium_received,omitempty"`
	Expiry          string   `json:"expiry,omitempty"`
	Contracts       int      `json:"contracts,omitempty"`
}

// Clone returns a deep copy of the parameters. Optional fields get
// fresh pointers so edits to the copy never alias the original.
func (p StrategyParameters) Clone() StrategyParameters {
	out := p
	out.BuyStrike = cloneFloat(p.BuyStrike)
	out.SellStrike = cloneFloat(p.SellStrike)
	out.PremiumPaid = cloneFloat(p.PremiumPaid)
	out.PremiumReceived = cloneFloat(p.PremiumReceived)
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Float64Ptr returns a pointer to v, for filling optional parameters.
func Float64Ptr(v float64) *float64 {
	return &v
}

// Strategy combines a strategy kind with its parameters and the leg
// set derived from them. Legs are never authored directly; they are
// rebuilt from the parameters on every recalculation.
type Strategy struct {
	Kind       StrategyKind       `json:"type"`
	Parameters StrategyParameters `json:"parameters"`
	Legs       []Leg              `json:"legs"`
}

// PayoffPoint is a single sample of the profit/loss curve.
type PayoffPoint struct {
	Price  float64 `json:"price"`
	Payoff float64 `json:"payoff"`
}
