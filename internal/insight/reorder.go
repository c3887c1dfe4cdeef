package insight

import "github.com/retailpulse/inventory-insight/internal/domain"

// ReorderPointCalculator derives the replenishment trigger level from
// lead-time demand and the safety factor.
type ReorderPointCalculator struct{}

// NewReorderPointCalculator creates a new reorder point calculator.
func NewReorderPointCalculator() *ReorderPointCalculator {
	return &ReorderPointCalculator{}
}

// Compute sums forecast demand over the lead time and applies the safety
// factor. A series shorter than the lead time under-counts demand; the
// result is flagged low-confidence rather than treated as complete.
// All arithmetic stays in float units; rounding is a display concern.
func (c *ReorderPointCalculator) Compute(forecast domain.ForecastSeries, params domain.ItemParameters) domain.ReorderPointResult {
	days := params.LeadTimeDays
	lowConfidence := false
	if days > forecast.Len() {
		days = forecast.Len()
		lowConfidence = true
	}

	var leadTimeDemand float64
	for i := 0; i < days; i++ {
		leadTimeDemand += forecast.Point(i).Demand
	}

	return domain.ReorderPointResult{
		LeadTimeDemand: leadTimeDemand,
		SafetyStock:    leadTimeDemand * (params.SafetyFactor - 1),
		ReorderPoint:   leadTimeDemand * params.SafetyFactor,
		LowConfidence:  lowConfidence,
	}
}
