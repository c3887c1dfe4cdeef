package domain

// ItemParameters are the per-item pricing and replenishment inputs from
// the catalog store. Supplied per call and never mutated.
type ItemParameters struct {
	UnitPrice       float64 `json:"unit_price" db:"unit_price"`
	HoldingCostRate float64 `json:"holding_cost_rate" db:"holding_cost_rate"`
	LeadTimeDays    int     `json:"lead_time_days" db:"lead_time_days"`
	SafetyFactor    float64 `json:"safety_factor" db:"safety_factor"`
}

// Validate range-checks every parameter before any computation runs.
func (p ItemParameters) Validate() error {
	if p.UnitPrice < 0 {
		return invalidInput("unit_price", "must not be negative")
	}
	if p.HoldingCostRate < 0 {
		return invalidInput("holding_cost_rate", "must not be negative")
	}
	if p.LeadTimeDays < 0 {
		return invalidInput("lead_time_days", "must not be negative")
	}
	if p.SafetyFactor < 1.0 {
		return invalidInput("safety_factor", "must be at least 1.0")
	}
	return nil
}

// AnalyzeRequest is the self-contained input record for one analysis.
type AnalyzeRequest struct {
	ItemID          string          `json:"item_id"`
	Forecast        []ForecastPoint `json:"forecast"`
	CurrentStock    float64         `json:"current_stock"`
	UnitPrice       float64         `json:"unit_price"`
	HoldingCostRate float64         `json:"holding_cost_rate"`
	LeadTimeDays    int             `json:"lead_time_days"`
	SafetyFactor    float64         `json:"safety_factor"`
}

// Params collects the item parameters embedded in the request.
func (r AnalyzeRequest) Params() ItemParameters {
	return ItemParameters{
		UnitPrice:       r.UnitPrice,
		HoldingCostRate: r.HoldingCostRate,
		LeadTimeDays:    r.LeadTimeDays,
		SafetyFactor:    r.SafetyFactor,
	}
}

// CatalogItem is an item row from the catalog/pricing store.
type CatalogItem struct {
	ItemID          string  `json:"item_id" db:"item_id"`
	Description     string  `json:"description" db:"description"`
	UnitPrice       float64 `json:"unit_price" db:"price"`
	HoldingCostRate float64 `json:"holding_cost_rate" db:"holding_cost"`
	LeadTimeDays    int     `json:"lead_time_days" db:"lead_time"`
	CurrentStock    float64 `json:"current_stock" db:"unit"`
}

// CoverageResult describes how long current stock lasts against the
// forecast. When BeyondHorizon is set the stock outlives the series:
// Days is meaningless, StockoutDate is nil, and HorizonDays plus
// TotalDemand carry what is actually known.
type CoverageResult struct {
	Days             int
	BeyondHorizon    bool
	HorizonDays      int
	StockoutDate     *Date
	TotalDemand      float64
	CumulativeDemand []float64
}

// ReorderPointResult holds the replenishment trigger levels.
// LowConfidence is set when the forecast is shorter than the lead time,
// so the lead-time demand under-counts.
type ReorderPointResult struct {
	LeadTimeDemand float64
	SafetyStock    float64
	ReorderPoint   float64
	LowConfidence  bool
}

// FinancialResult holds the horizon-bounded financial outcome of the
// current stock position. ProfitMargin is nil when revenue is zero.
type FinancialResult struct {
	SellableUnits    float64
	ExpectedRevenue  float64
	AverageInventory float64
	HoldingCost      float64
	GrossProfit      float64
	ProfitMargin     *float64
}
