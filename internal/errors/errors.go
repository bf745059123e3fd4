// Package errors provides the error taxonomy for strategy evaluation.
//
// All errors here are deterministic input-validation failures: callers
// should surface them next to the offending input and keep their last
// valid state. None are transient, so there is no retry policy.
package errors

import (
	"errors"
	"fmt"
)

// Category sentinels. Typed errors below unwrap to one of these, so
// callers can classify with errors.Is and still read field detail with
// errors.As.
var (
	// ErrUnsupportedStrategyKind means the strategy id is not in the catalog.
	ErrUnsupportedStrategyKind = errors.New("unsupported strategy kind")
	// ErrMissingParameter means a field required by the selected strategy is absent.
	ErrMissingParameter = errors.New("missing parameter")
	// ErrInvalidParameter means a field is present but out of range.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrMetricsNotImplemented means the strategy has no registered metrics formula.
	ErrMetricsNotImplemented = errors.New("metrics not implemented")
)

// MissingParameterError reports a field the selected strategy requires
// but the parameters do not carry.
type MissingParameterError struct {
	Field string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter: %s", e.Field)
}

func (e *MissingParameterError) Unwrap() error {
	return ErrMissingParameter
}

// NewMissingParameterError creates a new MissingParameterError.
func NewMissingParameterError(field string) *MissingParameterError {
	return &MissingParameterError{Field: field}
}

// InvalidParameterError reports a field whose value is unusable.
type InvalidParameterError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s (%v): %s", e.Field, e.Value, e.Message)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// NewInvalidParameterError creates a new InvalidParameterError.
func NewInvalidParameterError(field string, value interface{}, message string) *InvalidParameterError {
	return &InvalidParameterError{Field: field, Value: value, Message: message}
}

// UnsupportedStrategyError reports an unknown strategy id.
type UnsupportedStrategyError struct {
	Kind string
}

func (e *UnsupportedStrategyError) Error() string {
	return fmt.Sprintf("unsupported strategy kind: %q", e.Kind)
}

func (e *UnsupportedStrategyError) Unwrap() error {
	return ErrUnsupportedStrategyKind
}

// NewUnsupportedStrategyError creates a new UnsupportedStrategyError.
func NewUnsupportedStrategyError(kind string) *UnsupportedStrategyError {
	return &UnsupportedStrategyError{Kind: kind}
}

// MetricsNotImplementedError reports a strategy id that has legs but no
// metrics formula registered.
type MetricsNotImplementedError struct {
	Kind string
}

func (e *MetricsNotImplementedError) Error() string {
	return fmt.Sprintf("metrics not implemented for strategy %q", e.Kind)
}

func (e *MetricsNotImplementedError) Unwrap() error {
	return ErrMetricsNotImplemented
}

// NewMetricsNotImplementedError creates a new MetricsNotImplementedError.
func NewMetricsNotImplementedError(kind string) *MetricsNotImplementedError {
	return &MetricsNotImplementedError{Kind: kind}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
