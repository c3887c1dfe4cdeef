package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailpulse/inventory-insight/internal/cache"
	"github.com/retailpulse/inventory-insight/internal/config"
	"github.com/retailpulse/inventory-insight/internal/domain"
	"github.com/retailpulse/inventory-insight/internal/repository"
)

type fakeItemRepo struct {
	items map[string]*domain.CatalogItem
}

func (r *fakeItemRepo) GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	item, ok := r.items[itemID]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", itemID, repository.ErrNotFound)
	}
	return item, nil
}

func (r *fakeItemRepo) ListItemIDs(ctx context.Context, limit int) ([]string, error) {
	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeForecastRepo struct {
	demand float64
}

func (r *fakeForecastRepo) GetForecast(ctx context.Context, itemID string, horizonDays int) (domain.ForecastSeries, error) {
	start := domain.NewDate(2025, time.July, 1)
	points := make([]domain.ForecastPoint, horizonDays)
	for i := range points {
		points[i] = domain.ForecastPoint{Date: start.AddDays(i), Demand: r.demand}
	}
	return domain.NewForecastSeries(points)
}

type fakeReportCache struct {
	report   *domain.InventoryInsightReport
	setCalls int
}

func (c *fakeReportCache) GetReport(ctx context.Context, itemID string, horizonDays int) (*domain.InventoryInsightReport, bool, error) {
	if c.report == nil {
		return nil, false, nil
	}
	return c.report, true, nil
}

func (c *fakeReportCache) SetReport(ctx context.Context, itemID string, horizonDays int, report *domain.InventoryInsightReport) error {
	c.setCalls++
	return nil
}

func (c *fakeReportCache) InvalidateItem(ctx context.Context, itemID string) error { return nil }

func (c *fakeReportCache) InvalidateAll(ctx context.Context) error { return nil }

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		CriticalDays:        7,
		LowDays:             14,
		DefaultSafetyFactor: 1.25,
		DefaultHorizonDays:  30,
		BatchWorkers:        4,
	}
}

func newTestService(items map[string]*domain.CatalogItem, demand float64) *InsightService {
	return NewInsightService(
		&fakeItemRepo{items: items},
		&fakeForecastRepo{demand: demand},
		cache.NewNoopReportCache(),
		nil,
		testEngineConfig(),
	)
}

func TestAnalyzeItem(t *testing.T) {
	svc := newTestService(map[string]*domain.CatalogItem{
		"SKU-1": {
			ItemID:          "SKU-1",
			UnitPrice:       2.0,
			HoldingCostRate: 0.05,
			LeadTimeDays:    7,
			CurrentStock:    250,
		},
	}, 100)

	report, err := svc.AnalyzeItem(context.Background(), "SKU-1", 0)
	require.NoError(t, err)

	assert.Equal(t, "SKU-1", report.ItemID)
	assert.Equal(t, 30, report.HorizonDays, "zero horizon uses the configured default")
	assert.Equal(t, 3, report.CoverageDays.Days)
	assert.Equal(t, domain.StatusCritical, report.Status)
	assert.InDelta(t, 875, report.ReorderPoint, 1e-9, "default safety factor 1.25 applies")
}

func TestAnalyzeItemNotFound(t *testing.T) {
	svc := newTestService(map[string]*domain.CatalogItem{}, 10)

	_, err := svc.AnalyzeItem(context.Background(), "MISSING", 30)

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAnalyzeBatchCollectsFailures(t *testing.T) {
	svc := newTestService(map[string]*domain.CatalogItem{
		"SKU-1": {ItemID: "SKU-1", UnitPrice: 1, LeadTimeDays: 2, CurrentStock: 50},
		"SKU-2": {ItemID: "SKU-2", UnitPrice: 1, LeadTimeDays: 2, CurrentStock: 10},
	}, 5)

	results, err := svc.AnalyzeBatch(context.Background(), []string{"SKU-1", "MISSING", "SKU-2"}, 14)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NotNil(t, results[0].Report)
	assert.Empty(t, results[0].Error)

	assert.Nil(t, results[1].Report)
	assert.Contains(t, results[1].Error, "not found")

	assert.NotNil(t, results[2].Report)
	assert.Equal(t, "SKU-2", results[2].ItemID)
}

func TestAnalyzeItemServesValidCachedReport(t *testing.T) {
	cached := &domain.InventoryInsightReport{
		ItemID:         "SKU-1",
		Status:         domain.StatusAdequate,
		Recommendation: "from cache",
	}
	svc := NewInsightService(
		&fakeItemRepo{items: map[string]*domain.CatalogItem{}},
		&fakeForecastRepo{demand: 100},
		&fakeReportCache{report: cached},
		nil,
		testEngineConfig(),
	)

	report, err := svc.AnalyzeItem(context.Background(), "SKU-1", 30)
	require.NoError(t, err)
	assert.Equal(t, "from cache", report.Recommendation)
}

func TestAnalyzeItemRecomputesOnUnknownCachedStatus(t *testing.T) {
	stale := &fakeReportCache{report: &domain.InventoryInsightReport{
		ItemID: "SKU-1",
		Status: domain.StockStatus("obsolete-tier"),
	}}
	svc := NewInsightService(
		&fakeItemRepo{items: map[string]*domain.CatalogItem{
			"SKU-1": {
				ItemID:          "SKU-1",
				UnitPrice:       2.0,
				HoldingCostRate: 0.05,
				LeadTimeDays:    7,
				CurrentStock:    250,
			},
		}},
		&fakeForecastRepo{demand: 100},
		stale,
		nil,
		testEngineConfig(),
	)

	report, err := svc.AnalyzeItem(context.Background(), "SKU-1", 30)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCritical, report.Status, "stale entry is recomputed, not served")
	assert.Equal(t, 1, stale.setCalls, "recomputed report is written back")
}

func TestAnalyzeBatchEmptyListCoversCatalog(t *testing.T) {
	svc := newTestService(map[string]*domain.CatalogItem{
		"SKU-1": {ItemID: "SKU-1", UnitPrice: 1, LeadTimeDays: 2, CurrentStock: 50},
		"SKU-2": {ItemID: "SKU-2", UnitPrice: 1, LeadTimeDays: 2, CurrentStock: 10},
	}, 5)

	results, err := svc.AnalyzeBatch(context.Background(), nil, 14)
	require.NoError(t, err)
	require.Len(t, results, 2)

	var ids []string
	for _, r := range results {
		require.NotNil(t, r.Report)
		ids = append(ids, r.ItemID)
	}
	assert.ElementsMatch(t, []string{"SKU-1", "SKU-2"}, ids)
}

func TestAnalyzeBatchEmptyListWithoutCatalog(t *testing.T) {
	svc := NewInsightService(nil, nil, nil, nil, testEngineConfig())

	_, err := svc.AnalyzeBatch(context.Background(), nil, 14)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalog store")
}

func TestAnalyzePureRequestPath(t *testing.T) {
	svc := NewInsightService(nil, nil, nil, nil, testEngineConfig())

	start := domain.NewDate(2025, time.July, 1)
	forecast := make([]domain.ForecastPoint, 10)
	for i := range forecast {
		forecast[i] = domain.ForecastPoint{Date: start.AddDays(i), Demand: 10}
	}

	report, err := svc.Analyze(domain.AnalyzeRequest{
		ItemID:       "SKU-9",
		Forecast:     forecast,
		CurrentStock: 45,
		UnitPrice:    1.5,
		LeadTimeDays: 2,
		SafetyFactor: 1.0,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, report.CoverageDays.Days)
	assert.InDelta(t, 20, report.ReorderPoint, 1e-9)
	assert.Zero(t, report.SafetyStock)
}
