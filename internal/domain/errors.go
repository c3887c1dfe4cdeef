package domain

import "fmt"

// InvalidForecastError reports a forecast series that cannot be analyzed:
// empty, out-of-order or duplicated dates, gaps in the daily cadence, or
// negative demand values. It is deterministic for a given input, so there
// is no point retrying.
type InvalidForecastError struct {
	Reason string
}

func (e *InvalidForecastError) Error() string {
	return "invalid forecast: " + e.Reason
}

func invalidForecastf(format string, args ...any) error {
	return &InvalidForecastError{Reason: fmt.Sprintf(format, args...)}
}

// InvalidInputError reports out-of-range analysis inputs such as negative
// stock, negative price or holding rate, or a safety factor below 1.0.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

func invalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}
