package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/retailpulse/inventory-insight/internal/domain"
	"github.com/retailpulse/inventory-insight/internal/repository"
)

type forecastRepository struct {
	db *DB
}

func NewForecastRepository(db *DB) repository.ForecastRepository {
	return &forecastRepository{db: db}
}

type forecastRow struct {
	ForecastDate time.Time `db:"forecast_date"`
	Demand       float64   `db:"demand"`
}

// GetForecast loads the stored daily forecast for an item, oldest date
// first. The rows pass through domain.NewForecastSeries, so a corrupted
// series (gaps, duplicates, negative demand) surfaces as an
// InvalidForecastError instead of reaching the engine.
func (r *forecastRepository) GetForecast(ctx context.Context, itemID string, horizonDays int) (domain.ForecastSeries, error) {
	if horizonDays <= 0 {
		horizonDays = 30
	}

	query := `
		SELECT forecast_date, demand
		FROM item_forecasts
		WHERE item_id = $1
		ORDER BY forecast_date
		LIMIT $2
	`

	var rows []forecastRow
	err := r.db.withSem(ctx, func() error {
		return r.db.SelectContext(ctx, &rows, query, itemID, horizonDays)
	})
	if err != nil {
		return domain.ForecastSeries{}, fmt.Errorf("error loading forecast for %s: %w", itemID, err)
	}
	if len(rows) == 0 {
		return domain.ForecastSeries{}, fmt.Errorf("forecast for %s: %w", itemID, repository.ErrNotFound)
	}

	points := make([]domain.ForecastPoint, len(rows))
	for i, row := range rows {
		points[i] = domain.ForecastPoint{
			Date:   domain.Date{Time: row.ForecastDate.UTC().Truncate(24 * time.Hour)},
			Demand: row.Demand,
		}
	}

	series, err := domain.NewForecastSeries(points)
	if err != nil {
		return domain.ForecastSeries{}, fmt.Errorf("stored forecast for %s is unusable: %w", itemID, err)
	}

	return series, nil
}
