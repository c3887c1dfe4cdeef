package domain

import "strings"

// StockStatus is the risk tier derived from coverage days.
type StockStatus string

const (
	StatusCritical StockStatus = "critical"
	StatusLow      StockStatus = "low"
	StatusAdequate StockStatus = "adequate"
)

// DemandTrend is the direction of demand across the forecast horizon.
type DemandTrend string

const (
	TrendIncreasing DemandTrend = "increasing"
	TrendDecreasing DemandTrend = "decreasing"
	TrendFlat       DemandTrend = "flat"
)

// PriorityLevel ranks how urgently an item needs attention.
type PriorityLevel string

const (
	PriorityHigh   PriorityLevel = "high"
	PriorityMedium PriorityLevel = "medium"
	PriorityLow    PriorityLevel = "low"
)

// RiskLevel grades the stockout, financial and overall risk of an item.
type RiskLevel string

const (
	RiskCritical RiskLevel = "critical"
	RiskHigh     RiskLevel = "high"
	RiskMedium   RiskLevel = "medium"
	RiskLow      RiskLevel = "low"
)

var stockStatuses = map[string]StockStatus{
	"critical": StatusCritical,
	"low":      StatusLow,
	"adequate": StatusAdequate,
}

// ParseStockStatus returns the status for a given label (case-insensitive).
func ParseStockStatus(label string) (StockStatus, bool) {
	status, ok := stockStatuses[strings.ToLower(strings.TrimSpace(label))]

	return status, ok
}
