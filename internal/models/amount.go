package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// legacyUnboundedSentinel is the magic number older payloads used to
// signal an unlimited gain (or, negated, an unlimited loss). It is
// accepted on input for compatibility but never emitted.
const legacyUnboundedSentinel = 999999.0

// Amount is a dollar figure that may be unbounded, such as the maximum
// gain of a long call or the maximum loss of a naked short call. The
// zero value is a bounded zero.
type Amount struct {
	value     float64
	unbounded bool
}

// Bounded returns a finite Amount.
func Bounded(v float64) Amount {
	return Amount{value: v}
}

// Unbounded returns an Amount with no finite limit.
func Unbounded() Amount {
	return Amount{unbounded: true}
}

// IsUnbounded reports whether the amount has no finite limit.
func (a Amount) IsUnbounded() bool {
	return a.unbounded
}

// Value returns the finite dollar value. It is only meaningful when
// IsUnbounded reports false.
func (a Amount) Value() float64 {
	return a.value
}

// String renders the amount for display.
func (a Amount) String() string {
	if a.unbounded {
		return "unbounded"
	}
	return fmt.Sprintf("%.2f", a.value)
}

// MarshalJSON emits the finite value as a JSON number, or the string
// "unbounded" when there is no finite limit.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.unbounded {
		return []byte(`"unbounded"`), nil
	}
	return json.Marshal(a.value)
}

// UnmarshalJSON accepts a JSON number, the string "unbounded", or the
// legacy +/-999999 sentinel.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == `"unbounded"` {
		*a = Unbounded()
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("amount must be a number or \"unbounded\": %w", err)
	}
	if v >= legacyUnboundedSentinel || v <= -legacyUnboundedSentinel {
		*a = Unbounded()
		return nil
	}
	*a = Bounded(v)
	return nil
}

// Metrics summarizes the risk profile of a strategy. It is derived
// from the leg set on every recalculation and never hand-edited.
type Metrics struct {
	MaxGain     Amount  `json:"max_gain"`
	MaxLoss     Amount  `json:"max_loss"`
	Breakeven   float64 `json:"breakeven"`
	Probability string  `json:"probability"`
}
