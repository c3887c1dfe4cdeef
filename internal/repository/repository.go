package repository

import (
	"context"
	"errors"

	"github.com/retailpulse/inventory-insight/internal/domain"
)

// ErrNotFound is returned when an item or forecast does not exist.
var ErrNotFound = errors.New("not found")

// ItemRepository is the catalog/pricing store: unit price, holding-cost
// rate, lead time and current on-hand stock per item.
type ItemRepository interface {
	GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error)
	ListItemIDs(ctx context.Context, limit int) ([]string, error)
}

// ForecastRepository supplies the stored demand forecast for an item:
// an ordered daily series covering the requested horizon.
type ForecastRepository interface {
	GetForecast(ctx context.Context, itemID string, horizonDays int) (domain.ForecastSeries, error)
}
