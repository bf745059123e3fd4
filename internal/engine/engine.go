package engine

import (
	"math"

	"github.com/rs/zerolog"

	apperrors "option-strategist/internal/errors"
	"option-strategist/internal/logging"
	"option-strategist/internal/models"
)

// Engine is the single entry point for strategy evaluation. Both the
// initial recommendation and every interactive parameter edit call
// Recalculate, so curve and metrics always come from the same leg set.
//
// An Engine holds no mutable state; concurrent calls are safe and a
// caller that fires a newer Recalculate may simply drop the older
// result (last write wins).
type Engine struct {
	logger zerolog.Logger
}

// New creates an Engine that does not log.
func New() *Engine {
	return &Engine{logger: zerolog.Nop()}
}

// NewWithLogger creates an Engine that logs recalculation events.
func NewWithLogger(logger zerolog.Logger) *Engine {
	return &Engine{logger: logger}
}

// Result is the output triple of one recalculation. The three parts
// are always derived from the same parameter snapshot; replacing a
// displayed Result atomically is the caller's job.
type Result struct {
	Legs    []models.Leg         `json:"legs"`
	Curve   []models.PayoffPoint `json:"payoff_data"`
	Metrics models.Metrics       `json:"metrics"`
}

// Recalculate validates the parameters, derives the leg set, and
// computes the payoff curve and risk metrics from that same set.
//
// It is idempotent: identical input yields identical output, with no
// hidden state, randomness, or clock dependence. All failures are
// recoverable validation errors; the caller should keep its last valid
// result and surface the message next to the offending field.
func (e *Engine) Recalculate(kind models.StrategyKind, params models.StrategyParameters) (*Result, error) {
	if err := validateParameters(params); err != nil {
		return nil, err
	}

	p := params.Clone()
	if p.Contracts == 0 {
		p.Contracts = 1
	}

	legs, err := BuildLegs(kind, p)
	if err != nil {
		return nil, err
	}

	curve := SampleCurve(legs, p.CurrentPrice)

	metrics, err := ComputeMetrics(kind, p, legs)
	if err != nil {
		return nil, err
	}

	kindLogger := logging.WithStrategy(e.logger, string(kind))
	kindLogger.Debug().
		Float64("current_price", p.CurrentPrice).
		Int("legs", len(legs)).
		Str("max_gain", metrics.MaxGain.String()).
		Str("max_loss", metrics.MaxLoss.String()).
		Float64("breakeven", metrics.Breakeven).
		Msg("strategy recalculated")

	return &Result{Legs: legs, Curve: curve, Metrics: metrics}, nil
}

// validateParameters checks the fields common to every strategy.
// Kind-specific presence checks live in BuildLegs.
func validateParameters(p models.StrategyParameters) error {
	if p.CurrentPrice <= 0 || math.IsNaN(p.CurrentPrice) || math.IsInf(p.CurrentPrice, 0) {
		return apperrors.NewInvalidParameterError("currentPrice", p.CurrentPrice, "must be a positive price")
	}
	if err := checkStrike("buyStrike", p.BuyStrike); err != nil {
		return err
	}
	if err := checkStrike("sellStrike", p.SellStrike); err != nil {
		return err
	}
	if err := checkPremium("premiumPaid", p.PremiumPaid); err != nil {
		return err
	}
	if err := checkPremium("premiumReceived", p.PremiumReceived); err != nil {
		return err
	}
	if p.Contracts < 0 {
		return apperrors.NewInvalidParameterError("contracts", p.Contracts, "must be at least 1")
	}
	return nil
}

func checkStrike(field string, v *float64) error {
	if v != nil && (*v <= 0 || math.IsNaN(*v) || math.IsInf(*v, 0)) {
		return apperrors.NewInvalidParameterError(field, *v, "strike must be positive")
	}
	return nil
}

func checkPremium(field string, v *float64) error {
	if v != nil && (*v < 0 || math.IsNaN(*v) || math.IsInf(*v, 0)) {
		return apperrors.NewInvalidParameterError(field, *v, "premium must be non-negative")
	}
	return nil
}

// ApplyEdit returns a copy of params with one numeric field replaced,
// for feeding a parameter-edit event back into Recalculate. The input
// is never mutated. Unknown fields fail with ErrInvalidParameter.
func ApplyEdit(params models.StrategyParameters, field string, value float64) (models.StrategyParameters, error) {
	p := params.Clone()
	switch field {
	case "currentPrice":
		p.CurrentPrice = value
	case "buyStrike":
		p.BuyStrike = models.Float64Ptr(value)
	case "sellStrike":
		p.SellStrike = models.Float64Ptr(value)
	case "premiumPaid":
		p.PremiumPaid = models.Float64Ptr(value)
	case "premiumReceived":
		p.PremiumReceived = models.Float64Ptr(value)
	case "contracts":
		if value != math.Trunc(value) {
			return params, apperrors.NewInvalidParameterError("contracts", value, "must be a whole number")
		}
		p.Contracts = int(value)
	default:
		return params, apperrors.NewInvalidParameterError(field, value, "unknown parameter")
	}
	return p, nil
}
