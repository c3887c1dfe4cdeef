package insight

import "github.com/retailpulse/inventory-insight/internal/domain"

// StatusThresholds are the coverage-day boundaries for the risk tiers.
// They are configuration so deployments can tune them per business.
type StatusThresholds struct {
	CriticalDays int // coverage at or below this is critical
	LowDays      int // coverage at or below this (but above critical) is low
}

// DefaultStatusThresholds returns the standard 7/14 day boundaries.
func DefaultStatusThresholds() StatusThresholds {
	return StatusThresholds{
		CriticalDays: 7,
		LowDays:      14,
	}
}

// StatusClassifier maps a coverage result to a risk tier.
type StatusClassifier struct {
	thresholds StatusThresholds
}

// NewStatusClassifier creates a classifier with the given thresholds.
// Non-positive thresholds fall back to the defaults.
func NewStatusClassifier(thresholds StatusThresholds) *StatusClassifier {
	defaults := DefaultStatusThresholds()
	if thresholds.CriticalDays <= 0 {
		thresholds.CriticalDays = defaults.CriticalDays
	}
	if thresholds.LowDays <= thresholds.CriticalDays {
		thresholds.LowDays = thresholds.CriticalDays + (defaults.LowDays - defaults.CriticalDays)
	}
	return &StatusClassifier{thresholds: thresholds}
}

// Classify returns the risk tier for a coverage result. Stock that
// outlives the forecast horizon is always adequate.
func (c *StatusClassifier) Classify(coverage domain.CoverageResult) domain.StockStatus {
	if coverage.BeyondHorizon {
		return domain.StatusAdequate
	}

	switch {
	case coverage.Days <= c.thresholds.CriticalDays:
		return domain.StatusCritical
	case coverage.Days <= c.thresholds.LowDays:
		return domain.StatusLow
	default:
		return domain.StatusAdequate
	}
}
