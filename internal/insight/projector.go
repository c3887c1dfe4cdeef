package insight

import "github.com/retailpulse/inventory-insight/internal/domain"

// InventoryProjector builds the day-by-day projected on-hand curve.
type InventoryProjector struct{}

// NewInventoryProjector creates a new inventory projector.
func NewInventoryProjector() *InventoryProjector {
	return &InventoryProjector{}
}

// Project returns projected[i] = max(0, stock - cum[i]), aligned with the
// forecast dates. Demand past the stockout point is not back-ordered, so
// the curve stays at zero once it gets there.
func (p *InventoryProjector) Project(forecast domain.ForecastSeries, currentStock float64) []float64 {
	cum := forecast.CumulativeDemand()
	projected := make([]float64, len(cum))
	for i, total := range cum {
		remaining := currentStock - total
		if remaining < 0 {
			remaining = 0
		}
		projected[i] = remaining
	}
	return projected
}
