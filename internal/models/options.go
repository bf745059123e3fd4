// Package models defines the core data types for option strategy evaluation.
package models

import "fmt"

// ContractSize is the number of shares covered by one option contract.
const ContractSize = 100.0

// OptionType identifies a call or put option.
type OptionType string

const (
	// Call is the right to buy the underlying at the strike.
	Call OptionType = "CALL"
	// Put is the right to sell the underlying at the strike.
	Put OptionType = "PUT"
)

// Valid returns true if the OptionType is one of the defined constants.
func (t OptionType) Valid() bool {
	return t == Call || t == Put
}

// Side identifies whether a leg is bought or written.
type Side string

const (
	// Long means the leg was bought and the premium was paid.
	Long Side = "LONG"
	// Short means the leg was written and the premium was received.
	Short Side = "SHORT"
)

// Valid returns true if the Side is one of the defined constants.
func (s Side) Valid() bool {
	return s == Long || s == Short
}

// Leg represents a single option position within a strategy.
// A leg is immutable once constructed; editing strategy parameters
// produces a fresh leg set rather than mutating an existing one.
type Leg struct {
	Type     OptionType `json:"option_type"`
	Side     Side       `json:"side"`
	Strike   float64    `json:"strike"`
	Premium  float64    `json:"premium"`
	Quantity int        `json:"quantity"`
}

// Validate checks the leg invariants: positive strike, non-negative
// premium, and at least one contract.
func (l Leg) Validate() error {
	if !l.Type.Valid() {
		return fmt.Errorf("invalid option type: %q", l.Type)
	}
	if !l.Side.Valid() {
		return fmt.Errorf("invalid side: %q", l.Side)
	}
	if l.Strike <= 0 {
		return fmt.Errorf("strike must be positive (got %.2f)", l.Strike)
	}
	if l.Premium < 0 {
		return fmt.Errorf("premium must be non-negative (got %.2f)", l.Premium)
	}
	if l.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1 (got %d)", l.Quantity)
	}
	return nil
}

// PayoffAt returns the per-share profit or loss of the leg when the
// underlying settles at price on expiry.
func (l Leg) PayoffAt(price float64) float64 {
	var intrinsic float64
	switch l.Type {
	case Call:
		intrinsic = maxf(0, price-l.Strike)
	case Put:
		intrinsic = maxf(0, l.Strike-price)
	}
	if l.Side == Short {
		return l.Premium - intrinsic
	}
	return intrinsic - l.Premium
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
