package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/retailpulse/inventory-insight/internal/domain"
	"github.com/retailpulse/inventory-insight/internal/repository"
)

type itemRepository struct {
	db *DB
}

func NewItemRepository(db *DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	query := `
		SELECT
			d.item_id,
			d.description,
			d.price,
			d.holding_cost,
			d.lead_time,
			COALESCE(i.unit, 0) AS unit
		FROM item_dim d
		LEFT JOIN inv i ON i.item_id = d.item_id
		WHERE d.item_id = $1
	`

	var item domain.CatalogItem
	err := r.db.withSem(ctx, func() error {
		return r.db.GetContext(ctx, &item, query, itemID)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("item %s: %w", itemID, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("error getting item %s: %w", itemID, err)
	}

	return &item, nil
}

func (r *itemRepository) ListItemIDs(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT item_id
		FROM item_dim
		ORDER BY item_id
		LIMIT $1
	`

	var ids []string
	err := r.db.withSem(ctx, func() error {
		return r.db.SelectContext(ctx, &ids, query, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("error listing item ids: %w", err)
	}

	return ids, nil
}
