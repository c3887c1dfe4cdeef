package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/retailpulse/inventory-insight/internal/cache"
	"github.com/retailpulse/inventory-insight/internal/config"
	"github.com/retailpulse/inventory-insight/internal/domain"
	"github.com/retailpulse/inventory-insight/internal/insight"
	"github.com/retailpulse/inventory-insight/internal/repository"
	"github.com/retailpulse/inventory-insight/internal/storage"
)

// InsightService wires the pure engine to the catalog store, forecast
// store, report cache and archive. Each analysis call only touches its
// own inputs, so calls are safe to run in parallel.
type InsightService struct {
	items     repository.ItemRepository
	forecasts repository.ForecastRepository
	cache     cache.ReportCache
	archive   storage.ReportArchive
	engine    *insight.Aggregator
	cfg       config.EngineConfig
}

func NewInsightService(
	items repository.ItemRepository,
	forecasts repository.ForecastRepository,
	reportCache cache.ReportCache,
	archive storage.ReportArchive,
	cfg config.EngineConfig,
) *InsightService {
	if reportCache == nil {
		reportCache = cache.NewNoopReportCache()
	}
	if archive == nil {
		archive = storage.NewNoopArchive()
	}
	return &InsightService{
		items:     items,
		forecasts: forecasts,
		cache:     reportCache,
		archive:   archive,
		engine: insight.NewAggregator(insight.StatusThresholds{
			CriticalDays: cfg.CriticalDays,
			LowDays:      cfg.LowDays,
		}),
		cfg: cfg,
	}
}

// Analyze runs the engine on a fully self-contained request. No storage
// is touched; this is the pure path used by the analyze endpoint.
func (s *InsightService) Analyze(req domain.AnalyzeRequest) (*domain.InventoryInsightReport, error) {
	return s.engine.Analyze(req)
}

// AnalyzeItem loads the item's catalog row and stored forecast, runs the
// engine and returns the report. Reports are served from the cache when
// a fresh one exists for the same item and horizon.
func (s *InsightService) AnalyzeItem(ctx context.Context, itemID string, horizonDays int) (*domain.InventoryInsightReport, error) {
	if horizonDays <= 0 {
		horizonDays = s.cfg.DefaultHorizonDays
	}

	if report, ok, err := s.cache.GetReport(ctx, itemID, horizonDays); err == nil && ok {
		// A cached entry written by an older build may carry a status
		// label we no longer produce; recompute instead of serving it.
		if _, valid := domain.ParseStockStatus(string(report.Status)); valid {
			return report, nil
		}
		log.Warn().Str("item_id", itemID).Str("status", string(report.Status)).
			Msg("insight: cached report has an unknown status, recomputing")
	} else if err != nil {
		log.Warn().Err(err).Str("item_id", itemID).Msg("insight: cache get failed")
	}

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	forecast, err := s.forecasts.GetForecast(ctx, itemID, horizonDays)
	if err != nil {
		return nil, err
	}

	points := make([]domain.ForecastPoint, forecast.Len())
	for i := range points {
		points[i] = forecast.Point(i)
	}

	report, err := s.engine.Analyze(domain.AnalyzeRequest{
		ItemID:          itemID,
		Forecast:        points,
		CurrentStock:    item.CurrentStock,
		UnitPrice:       item.UnitPrice,
		HoldingCostRate: item.HoldingCostRate,
		LeadTimeDays:    item.LeadTimeDays,
		SafetyFactor:    s.cfg.DefaultSafetyFactor,
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetReport(ctx, itemID, horizonDays, report); err != nil {
		log.Warn().Err(err).Str("item_id", itemID).Msg("insight: cache set failed")
	}

	s.archiveReport(ctx, report)

	return report, nil
}

// BatchItemResult pairs one item of a batch with its report or failure.
type BatchItemResult struct {
	ItemID string                         `json:"item_id"`
	Report *domain.InventoryInsightReport `json:"report,omitempty"`
	Error  string                         `json:"error,omitempty"`
}

// AnalyzeBatch fans the analysis out across the given items with a
// bounded worker count. An empty item list analyzes the whole catalog.
// A failed item does not abort the batch; its error is carried in the
// result slot.
func (s *InsightService) AnalyzeBatch(ctx context.Context, itemIDs []string, horizonDays int) ([]BatchItemResult, error) {
	if len(itemIDs) == 0 {
		if s.items == nil {
			return nil, fmt.Errorf("no catalog store configured for a full-catalog batch")
		}
		ids, err := s.items.ListItemIDs(ctx, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to list catalog items: %w", err)
		}
		itemIDs = ids
	}

	results := make([]BatchItemResult, len(itemIDs))

	g, ctx := errgroup.WithContext(ctx)
	workers := s.cfg.BatchWorkers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i, itemID := range itemIDs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			report, err := s.AnalyzeItem(ctx, itemID, horizonDays)
			if err != nil {
				results[i] = BatchItemResult{ItemID: itemID, Error: err.Error()}
				return nil
			}
			results[i] = BatchItemResult{ItemID: itemID, Report: report}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// archiveReport pushes the rendered report to the archive bucket. Archive
// failures are logged, never surfaced: the report is already computed.
func (s *InsightService) archiveReport(ctx context.Context, report *domain.InventoryInsightReport) {
	payload, err := json.Marshal(report)
	if err != nil {
		log.Warn().Err(err).Str("item_id", report.ItemID).Msg("insight: encode report for archive failed")
		return
	}

	key := fmt.Sprintf("reports/%s/%s_h%d.json",
		report.ItemID, time.Now().UTC().Format("20060102"), report.HorizonDays)

	if err := s.archive.StoreReport(ctx, key, payload); err != nil {
		log.Warn().Err(err).Str("item_id", report.ItemID).Msg("insight: archive failed")
	}
}
