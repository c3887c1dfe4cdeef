package insight

import "github.com/retailpulse/inventory-insight/internal/domain"

// CoverageCalculator finds how many forecast days current stock lasts.
type CoverageCalculator struct{}

// NewCoverageCalculator creates a new coverage calculator.
func NewCoverageCalculator() *CoverageCalculator {
	return &CoverageCalculator{}
}

// Compute walks the cumulative demand curve and reports the first day on
// which it meets or exceeds current stock. Stock that outlives the series
// is reported as beyond-horizon; no stockout date is fabricated for it.
func (c *CoverageCalculator) Compute(forecast domain.ForecastSeries, currentStock float64) domain.CoverageResult {
	cum := forecast.CumulativeDemand()
	horizon := forecast.Len()

	result := domain.CoverageResult{
		HorizonDays:      horizon,
		TotalDemand:      cum[horizon-1],
		CumulativeDemand: cum,
	}

	// Zero stock is exhausted before the first forecast day.
	if currentStock == 0 {
		start := forecast.StartDate()
		result.Days = 0
		result.StockoutDate = &start
		return result
	}

	for i, total := range cum {
		if total >= currentStock {
			date := forecast.Point(i).Date
			result.Days = i + 1
			result.StockoutDate = &date
			return result
		}
	}

	result.BeyondHorizon = true
	return result
}
