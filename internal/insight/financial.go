package insight

import "github.com/retailpulse/inventory-insight/internal/domain"

// FinancialMetricsCalculator computes the horizon-bounded revenue,
// holding cost and margin of the current stock position.
type FinancialMetricsCalculator struct{}

// NewFinancialMetricsCalculator creates a new financial metrics calculator.
func NewFinancialMetricsCalculator() *FinancialMetricsCalculator {
	return &FinancialMetricsCalculator{}
}

// Compute values the stock position against the forecast.
// Revenue is capped by both available stock and total horizon demand.
// ProfitMargin stays nil when revenue is zero; callers must treat that
// as undefined, never as 0.
func (c *FinancialMetricsCalculator) Compute(
	forecast domain.ForecastSeries,
	currentStock float64,
	params domain.ItemParameters,
	projected []float64,
) domain.FinancialResult {
	totalDemand := forecast.TotalDemand()

	sellable := currentStock
	if totalDemand < sellable {
		sellable = totalDemand
	}
	revenue := sellable * params.UnitPrice

	var avgInventory float64
	if len(projected) > 0 {
		var sum float64
		for _, level := range projected {
			sum += level
		}
		avgInventory = sum / float64(len(projected))
	}
	holdingCost := avgInventory * params.HoldingCostRate * float64(forecast.Len())

	result := domain.FinancialResult{
		SellableUnits:    sellable,
		ExpectedRevenue:  revenue,
		AverageInventory: avgInventory,
		HoldingCost:      holdingCost,
		GrossProfit:      revenue - holdingCost,
	}

	if revenue > 0 {
		margin := (revenue - holdingCost) / revenue
		result.ProfitMargin = &margin
	}

	return result
}
