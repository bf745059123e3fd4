package engine

import (
	"option-strategist/internal/models"

	apperrors "option-strategist/internal/errors"
)

// Outlook is the deterministic tail of a strategy recommendation: the
// market view an upstream analysis component produced. Parsing free
// text into an Outlook is that component's job, not this package's.
type Outlook struct {
	Direction   string // bullish, bearish, neutral
	Strength    string // strong, moderate
	RiskProfile string // aggressive, balanced, conservative
	Timeframe   string // short, medium, long
}

// Recommendation pairs a strategy kind with seed parameters for the
// first Recalculate call, plus display strings for the summary card.
type Recommendation struct {
	Kind        models.StrategyKind
	Name        string
	Description string
	RiskLevel   string
	Parameters  models.StrategyParameters
}

// PresetConfig holds the parameter heuristics used to seed a strategy
// from the current price alone, expressed as fractions of that price.
// Values are placeholders for real quotes, tunable via configuration.
type PresetConfig struct {
	ATMPremiumPct       float64 `mapstructure:"atm_premium_pct"`
	SpreadWidthPct      float64 `mapstructure:"spread_width_pct"`
	WideSpreadWidthPct  float64 `mapstructure:"wide_spread_width_pct"`
	SpreadCreditPct     float64 `mapstructure:"spread_credit_pct"`
	WideSpreadCreditPct float64 `mapstructure:"wide_spread_credit_pct"`
	OTMOffsetPct        float64 `mapstructure:"otm_offset_pct"`
	DeepOTMOffsetPct    float64 `mapstructure:"deep_otm_offset_pct"`
	OTMCreditPct        float64 `mapstructure:"otm_credit_pct"`
	DeepOTMCreditPct    float64 `mapstructure:"deep_otm_credit_pct"`
	CondorWingPct       float64 `mapstructure:"condor_wing_pct"`
	CondorCreditPct     float64 `mapstructure:"condor_credit_pct"`
	CondorDebitPct      float64 `mapstructure:"condor_debit_pct"`
	ButterflyWingPct    float64 `mapstructure:"butterfly_wing_pct"`
	ButterflyCreditPct  float64 `mapstructure:"butterfly_credit_pct"`
	ButterflyDebitPct   float64 `mapstructure:"butterfly_debit_pct"`
	StraddleCreditPct   float64 `mapstructure:"straddle_credit_pct"`
}

// DefaultPresetConfig returns the stock heuristics: roughly 4% of spot
// for an ATM premium, 10% for an OTM strike offset, and so on.
func DefaultPresetConfig() PresetConfig {
	return PresetConfig{
		ATMPremiumPct:       0.04,
		SpreadWidthPct:      0.10,
		WideSpreadWidthPct:  0.15,
		SpreadCreditPct:     0.02,
		WideSpreadCreditPct: 0.015,
		OTMOffsetPct:        0.10,
		DeepOTMOffsetPct:    0.15,
		OTMCreditPct:        0.03,
		DeepOTMCreditPct:    0.02,
		CondorWingPct:       0.15,
		CondorCreditPct:     0.06,
		CondorDebitPct:      0.03,
		ButterflyWingPct:    0.10,
		ButterflyCreditPct:  0.05,
		ButterflyDebitPct:   0.025,
		StraddleCreditPct:   0.08,
	}
}

// KindInfo carries the display strings for one strategy kind.
type KindInfo struct {
	Name        string
	Description string
	RiskLevel   string
}

var kindInfo = map[models.StrategyKind]KindInfo{
	models.LongCall: {
		Name:        "Long ATM Call",
		Description: "Buy an at-the-money call. Unlimited upside; the premium is the most at risk.",
		RiskLevel:   "high",
	},
	models.LongPut: {
		Name:        "Long ATM Put",
		Description: "Buy an at-the-money put. Profits as the underlying falls; the premium is the most at risk.",
		RiskLevel:   "high",
	},
	models.BullCallSpread: {
		Name:        "Bull Call Spread",
		Description: "Buy a lower-strike call and write a higher-strike call. Both risk and reward are capped.",
		RiskLevel:   "medium",
	},
	models.BullCallSpreadWide: {
		Name:        "Bull Call Spread (wide)",
		Description: "A bull call spread with a wider strike gap, leaving more room for the rally.",
		RiskLevel:   "medium",
	},
	models.BearPutSpread: {
		Name:        "Bear Put Spread",
		Description: "Buy a higher-strike put and write a lower-strike put. Both risk and reward are capped.",
		RiskLevel:   "medium",
	},
	models.SellOTMPut: {
		Name:        "Cash-Secured OTM Put",
		Description: "Write a put below the current price for credit; suits a buyer happy to own stock lower.",
		RiskLevel:   "medium-low",
	},
	models.SellDeepOTMPut: {
		Name:        "Deep OTM Put Write",
		Description: "Write a put far below the current price. Lower risk, limited reward.",
		RiskLevel:   "low",
	},
	models.SellOTMCall: {
		Name:        "Covered OTM Call Write",
		Description: "Write a call above the current price for credit; needs stock or margin behind it.",
		RiskLevel:   "medium",
	},
	models.ShortStraddle: {
		Name:        "Short Straddle",
		Description: "Write an ATM call and put together. Profits when the price stays near the strike.",
		RiskLevel:   "very high",
	},
	models.IronCondor: {
		Name:        "Iron Condor",
		Description: "Collect credit while the price holds inside a range. Risk and reward are both capped.",
		RiskLevel:   "medium",
	},
	models.IronButterfly: {
		Name:        "Iron Butterfly",
		Description: "A condor with strikes closer to the money, for a narrow trading range.",
		RiskLevel:   "medium-low",
	},
}

// Describe returns the display strings for a strategy kind.
func Describe(kind models.StrategyKind) (KindInfo, bool) {
	info, ok := kindInfo[kind]
	return info, ok
}

// outlookRule is one row of the recommendation table. Rows are ordered
// so relaxed matching stays deterministic.
type outlookRule struct {
	direction, strength, risk string
	kind                      models.StrategyKind
}

var outlookRules = []outlookRule{
	{"bullish", "strong", "aggressive", models.LongCall},
	{"bullish", "strong", "balanced", models.BullCallSpread},
	{"bullish", "strong", "conservative", models.SellOTMPut},
	{"bullish", "moderate", "aggressive", models.LongCall},
	{"bullish", "moderate", "balanced", models.BullCallSpreadWide},
	{"bullish", "moderate", "conservative", models.SellDeepOTMPut},
	{"bearish", "strong", "aggressive", models.LongPut},
	{"bearish", "strong", "balanced", models.BearPutSpread},
	{"bearish", "strong", "conservative", models.SellOTMCall},
	{"neutral", "moderate", "aggressive", models.ShortStraddle},
	{"neutral", "moderate", "balanced", models.IronCondor},
	{"neutral", "moderate", "conservative", models.IronButterfly},
}

var expiryByTimeframe = map[string]string{
	"short":  "30d",
	"medium": "90d",
	"long":   "180d",
}

// Recommend maps a market outlook to a strategy kind and seeds its
// parameters from the current price using the preset heuristics. The
// result feeds the first Recalculate call unchanged.
func Recommend(outlook Outlook, currentPrice float64, cfg PresetConfig) (Recommendation, error) {
	if currentPrice <= 0 {
		return Recommendation{}, apperrors.NewInvalidParameterError("currentPrice", currentPrice, "must be a positive price")
	}

	kind := matchKind(outlook)

	params, err := SuggestParameters(kind, currentPrice, outlook.Timeframe, cfg)
	if err != nil {
		return Recommendation{}, err
	}

	info := kindInfo[kind]
	return Recommendation{
		Kind:        kind,
		Name:        info.Name,
		Description: info.Description,
		RiskLevel:   info.RiskLevel,
		Parameters:  params,
	}, nil
}

// matchKind picks the table row for an outlook, relaxing the match
// when no row fits exactly: direction plus risk profile first, then
// direction alone, then a balanced bullish default.
func matchKind(outlook Outlook) models.StrategyKind {
	for _, rule := range outlookRules {
		if rule.direction == outlook.Direction && rule.strength == outlook.Strength && rule.risk == outlook.RiskProfile {
			return rule.kind
		}
	}
	for _, rule := range outlookRules {
		if rule.direction == outlook.Direction && rule.risk == outlook.RiskProfile {
			return rule.kind
		}
	}
	for _, rule := range outlookRules {
		if rule.direction == outlook.Direction {
			return rule.kind
		}
	}
	return models.BullCallSpread
}

// SuggestParameters fills StrategyParameters for a kind from the
// current price alone, using the heuristic percentages in cfg. The
// timeframe only sets the opaque expiry label; it never enters the
// payoff math.
func SuggestParameters(kind models.StrategyKind, currentPrice float64, timeframe string, cfg PresetConfig) (models.StrategyParameters, error) {
	if currentPrice <= 0 {
		return models.StrategyParameters{}, apperrors.NewInvalidParameterError("currentPrice", currentPrice, "must be a positive price")
	}

	expiry, ok := expiryByTimeframe[timeframe]
	if !ok {
		expiry = expiryByTimeframe["short"]
	}

	p := models.StrategyParameters{
		CurrentPrice: currentPrice,
		Expiry:       expiry,
		Contracts:    1,
	}
	cp := currentPrice

	switch kind {
	case models.LongCall:
		p.BuyStrike = models.Float64Ptr(cp)
		p.PremiumPaid = models.Float64Ptr(cp * cfg.ATMPremiumPct)

	case models.LongPut:
		p.BuyStrike = models.Float64Ptr(cp)
		p.PremiumPaid = models.Float64Ptr(cp * cfg.ATMPremiumPct)

	case models.BullCallSpread:
		p.BuyStrike = models.Float64Ptr(cp)
		p.SellStrike = models.Float64Ptr(cp * (1 + cfg.SpreadWidthPct))
		p.PremiumPaid = models.Float64Ptr(cp * cfg.ATMPremiumPct)
		p.PremiumReceived = models.Float64Ptr(cp * cfg.SpreadCreditPct)

	case models.BullCallSpreadWide:
		p.BuyStrike = models.Float64Ptr(cp)
		p.SellStrike = models.Float64Ptr(cp * (1 + cfg.WideSpreadWidthPct))
		p.PremiumPaid = models.Float64Ptr(cp * cfg.ATMPremiumPct)
		p.PremiumReceived = models.Float64Ptr(cp * cfg.WideSpreadCreditPct)

	case models.BearPutSpread:
		p.BuyStrike = models.Float64Ptr(cp)
		p.SellStrike = models.Float64Ptr(cp * (1 - cfg.SpreadWidthPct))
		p.PremiumPaid = models.Float64Ptr(cp * cfg.ATMPremiumPct)
		p.PremiumReceived = models.Float64Ptr(cp * cfg.SpreadCreditPct)

	case models.SellOTMPut:
		p.SellStrike = models.Float64Ptr(cp * (1 - cfg.OTMOffsetPct))
		p.PremiumReceived = models.Float64Ptr(cp * cfg.OTMCreditPct)

	case models.SellDeepOTMPut:
		p.SellStrike = models.Float64Ptr(cp * (1 - cfg.DeepOTMOffsetPct))
		p.PremiumReceived = models.Float64Ptr(cp * cfg.DeepOTMCreditPct)

	case models.SellOTMCall:
		p.SellStrike = models.Float64Ptr(cp * (1 + cfg.OTMOffsetPct))
		p.PremiumReceived = models.Float64Ptr(cp * cfg.OTMCreditPct)

	case models.ShortStraddle:
		p.SellStrike = models.Float64Ptr(cp)
		p.PremiumReceived = models.Float64Ptr(cp * cfg.StraddleCreditPct)

	case models.IronCondor:
		p.BuyStrike = models.Float64Ptr(cp * (1 - cfg.CondorWingPct))
		p.SellStrike = models.Float64Ptr(cp * (1 + cfg.CondorWingPct))
		p.PremiumReceived = models.Float64Ptr(cp * cfg.CondorCreditPct)
		p.PremiumPaid = models.Float64Ptr(cp * cfg.CondorDebitPct)

	case models.IronButterfly:
		p.BuyStrike = models.Float64Ptr(cp * (1 - cfg.ButterflyWingPct))
		p.SellStrike = models.Float64Ptr(cp * (1 + cfg.ButterflyWingPct))
		p.PremiumReceived = models.Float64Ptr(cp * cfg.ButterflyCreditPct)
		p.PremiumPaid = models.Float64Ptr(cp * cfg.ButterflyDebitPct)

	default:
		return models.StrategyParameters{}, apperrors.NewUnsupportedStrategyError(string(kind))
	}

	return p, nil
}
