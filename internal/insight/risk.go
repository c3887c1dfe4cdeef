package insight

import "github.com/retailpulse/inventory-insight/internal/domain"

// Margin thresholds are fractions of revenue.
const (
	financialRiskHighMargin   = 0.10
	financialRiskMediumMargin = 0.20
)

// stockoutRisk grades how soon the item runs out. Stock that outlives
// the forecast carries the lowest grade regardless of the day count.
func stockoutRisk(coverage domain.CoverageResult) domain.RiskLevel {
	switch {
	case coverage.BeyondHorizon:
		return domain.RiskLow
	case coverage.Days <= 3:
		return domain.RiskCritical
	case coverage.Days <= 7:
		return domain.RiskHigh
	case coverage.Days <= 14:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// financialRisk grades the profit margin. A nil margin means zero
// revenue, which is the worst financial position an item can be in.
func financialRisk(margin *float64) domain.RiskLevel {
	switch {
	case margin == nil, *margin < financialRiskHighMargin:
		return domain.RiskHigh
	case *margin < financialRiskMediumMargin:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// overallRisk folds the stockout and financial grades into one level.
func overallRisk(stockout, financial domain.RiskLevel) domain.RiskLevel {
	switch {
	case stockout == domain.RiskCritical || financial == domain.RiskHigh:
		return domain.RiskHigh
	case stockout == domain.RiskHigh || stockout == domain.RiskMedium || financial == domain.RiskMedium:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}
