package insight

import (
	"fmt"
	"math"
	"strings"

	"github.com/retailpulse/inventory-insight/internal/domain"
)

// flatTolerance is how close the first-week and last-week demand means
// must be before the trend counts as flat.
const flatTolerance = 1e-9

// Aggregator composes the calculators into one analysis call. It is pure
// and deterministic: identical inputs yield identical reports, and any
// failure is a validation error, never a transient fault.
type Aggregator struct {
	coverage   *CoverageCalculator
	reorder    *ReorderPointCalculator
	projector  *InventoryProjector
	financial  *FinancialMetricsCalculator
	classifier *StatusClassifier
}

// NewAggregator creates an aggregator with the given status thresholds.
func NewAggregator(thresholds StatusThresholds) *Aggregator {
	return &Aggregator{
		coverage:   NewCoverageCalculator(),
		reorder:    NewReorderPointCalculator(),
		projector:  NewInventoryProjector(),
		financial:  NewFinancialMetricsCalculator(),
		classifier: NewStatusClassifier(thresholds),
	}
}

// Analyze validates the request, runs every calculator in dependency
// order and returns the assembled report.
func (a *Aggregator) Analyze(req domain.AnalyzeRequest) (*domain.InventoryInsightReport, error) {
	if strings.TrimSpace(req.ItemID) == "" {
		return nil, &domain.InvalidInputError{Field: "item_id", Reason: "must not be empty"}
	}
	if req.CurrentStock < 0 {
		return nil, &domain.InvalidInputError{Field: "current_stock", Reason: "must not be negative"}
	}

	params := req.Params()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	forecast, err := domain.NewForecastSeries(req.Forecast)
	if err != nil {
		return nil, err
	}

	coverage := a.coverage.Compute(forecast, req.CurrentStock)
	reorder := a.reorder.Compute(forecast, params)
	projected := a.projector.Project(forecast, req.CurrentStock)
	financial := a.financial.Compute(forecast, req.CurrentStock, params, projected)
	status := a.classifier.Classify(coverage)

	trend := demandTrend(forecast)
	reorderNeeded := req.CurrentStock <= reorder.ReorderPoint
	priority := priorityLevel(status, reorderNeeded)

	stockout := stockoutRisk(coverage)
	finRisk := financialRisk(financial.ProfitMargin)

	report := &domain.InventoryInsightReport{
		ItemID:       req.ItemID,
		HorizonDays:  forecast.Len(),
		CurrentStock: req.CurrentStock,
		CoverageDays: domain.CoverageDays{
			Days:          coverage.Days,
			BeyondHorizon: coverage.BeyondHorizon,
		},
		StockoutDate:       coverage.StockoutDate,
		LeadTimeDemand:     reorder.LeadTimeDemand,
		ReorderPoint:       reorder.ReorderPoint,
		SafetyStock:        reorder.SafetyStock,
		LowConfidenceROP:   reorder.LowConfidence,
		ExpectedRevenue:    financial.ExpectedRevenue,
		HoldingCost:        financial.HoldingCost,
		GrossProfit:        financial.GrossProfit,
		ProfitMargin:       financial.ProfitMargin,
		AvgDailyDemand:     forecast.MeanDemand(),
		TotalDemand:        forecast.TotalDemand(),
		Status:             status,
		Trend:              trend,
		Priority:           priority,
		StockoutRisk:       stockout,
		FinancialRisk:      finRisk,
		OverallRisk:        overallRisk(stockout, finRisk),
		ReorderNeeded:      reorderNeeded,
		Recommendation:     buildRecommendation(status, trend, coverage, reorder, financial, req.CurrentStock),
		ProjectedInventory: projected,
	}

	return report, nil
}

// demandTrend compares the mean demand of the first and last forecast
// weeks. Short series compare whatever days exist.
func demandTrend(forecast domain.ForecastSeries) domain.DemandTrend {
	demands := forecast.Demands()
	week := 7
	if len(demands) < week {
		week = len(demands)
	}

	var firstSum, lastSum float64
	for i := 0; i < week; i++ {
		firstSum += demands[i]
		lastSum += demands[len(demands)-week+i]
	}
	first := firstSum / float64(week)
	last := lastSum / float64(week)

	switch {
	case math.Abs(last-first) <= flatTolerance:
		return domain.TrendFlat
	case last > first:
		return domain.TrendIncreasing
	default:
		return domain.TrendDecreasing
	}
}

func priorityLevel(status domain.StockStatus, reorderNeeded bool) domain.PriorityLevel {
	switch {
	case status == domain.StatusCritical || reorderNeeded:
		return domain.PriorityHigh
	case status == domain.StatusLow:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

func buildRecommendation(
	status domain.StockStatus,
	trend domain.DemandTrend,
	coverage domain.CoverageResult,
	reorder domain.ReorderPointResult,
	financial domain.FinancialResult,
	currentStock float64,
) string {
	var parts []string

	switch {
	case coverage.BeyondHorizon:
		parts = append(parts, fmt.Sprintf(
			"Stock outlasts the %d-day forecast horizon; no reorder is required within it.",
			coverage.HorizonDays))
	case status == domain.StatusCritical:
		parts = append(parts, fmt.Sprintf(
			"Reorder immediately: stock covers only %d days and runs out on %s.",
			coverage.Days, coverage.StockoutDate))
	case status == domain.StatusLow:
		parts = append(parts, fmt.Sprintf(
			"Plan a reorder soon: stock covers %d days, running out on %s.",
			coverage.Days, coverage.StockoutDate))
	default:
		parts = append(parts, fmt.Sprintf(
			"Stock is adequate, covering %d of %d forecast days.",
			coverage.Days, coverage.HorizonDays))
	}

	if !coverage.BeyondHorizon && currentStock <= reorder.ReorderPoint {
		parts = append(parts, fmt.Sprintf(
			"Current stock (%.0f) is at or below the reorder point (%.0f).",
			currentStock, reorder.ReorderPoint))
	}

	switch trend {
	case domain.TrendIncreasing:
		parts = append(parts, "Demand is increasing across the horizon; size the next order above lead-time demand.")
	case domain.TrendDecreasing:
		parts = append(parts, "Demand is decreasing across the horizon; avoid over-ordering.")
	}

	if financial.ExpectedRevenue > 0 && financial.ProfitMargin != nil && *financial.ProfitMargin < financialRiskHighMargin {
		parts = append(parts, "Profit margin is below 10%; rebalance stock levels to reduce holding costs.")
	}

	if reorder.LowConfidence {
		parts = append(parts, "Lead time exceeds the forecast length, so the reorder point under-counts demand.")
	}

	return strings.Join(parts, " ")
}
