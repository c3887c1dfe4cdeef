package domain

import (
	"encoding/json"
	"strconv"
)

// CoverageDays marshals as a plain day count, or as the string
// "beyond_horizon" when stock outlives the forecast.
type CoverageDays struct {
	Days          int
	BeyondHorizon bool
}

func (c CoverageDays) MarshalJSON() ([]byte, error) {
	if c.BeyondHorizon {
		return []byte(`"beyond_horizon"`), nil
	}
	return []byte(strconv.Itoa(c.Days)), nil
}

func (c *CoverageDays) UnmarshalJSON(data []byte) error {
	if string(data) == `"beyond_horizon"` {
		*c = CoverageDays{BeyondHorizon: true}
		return nil
	}
	var days int
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	*c = CoverageDays{Days: days}
	return nil
}

// InventoryInsightReport is the immutable aggregate returned by one
// analysis call. It is a pure value owned by the caller; nothing in the
// engine holds a reference to it after construction.
type InventoryInsightReport struct {
	ItemID             string        `json:"item_id"`
	HorizonDays        int           `json:"horizon_days"`
	CurrentStock       float64       `json:"current_stock"`
	CoverageDays       CoverageDays  `json:"coverage_days"`
	StockoutDate       *Date         `json:"stockout_date"`
	LeadTimeDemand     float64       `json:"lead_time_demand"`
	ReorderPoint       float64       `json:"reorder_point"`
	SafetyStock        float64       `json:"safety_stock"`
	LowConfidenceROP   bool          `json:"low_confidence_reorder_point"`
	ExpectedRevenue    float64       `json:"expected_revenue"`
	HoldingCost        float64       `json:"holding_cost"`
	GrossProfit        float64       `json:"gross_profit"`
	ProfitMargin       *float64      `json:"profit_margin"`
	AvgDailyDemand     float64       `json:"avg_daily_demand"`
	TotalDemand        float64       `json:"total_demand"`
	Status             StockStatus   `json:"status"`
	Trend              DemandTrend   `json:"trend"`
	Priority           PriorityLevel `json:"priority"`
	StockoutRisk       RiskLevel     `json:"stockout_risk"`
	FinancialRisk      RiskLevel     `json:"financial_risk"`
	OverallRisk        RiskLevel     `json:"overall_risk"`
	ReorderNeeded      bool          `json:"reorder_needed"`
	Recommendation     string        `json:"recommendation"`
	ProjectedInventory []float64     `json:"projected_inventory"`
}
