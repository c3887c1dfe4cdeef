package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/retailpulse/inventory-insight/internal/config"
	"github.com/retailpulse/inventory-insight/internal/domain"
)

const (
	reportKeyPrefix     = "insight:report"
	reportScanBatchSize = 100
)

// ReportCache is an explicit keyed store for finished insight reports.
// The engine itself stays pure; this sits entirely outside it.
type ReportCache interface {
	GetReport(ctx context.Context, itemID string, horizonDays int) (*domain.InventoryInsightReport, bool, error)
	SetReport(ctx context.Context, itemID string, horizonDays int, report *domain.InventoryInsightReport) error
	InvalidateItem(ctx context.Context, itemID string) error
	InvalidateAll(ctx context.Context) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

func NewReportCache(cfg config.CacheConfig) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisReportCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

func (c *redisReportCache) GetReport(ctx context.Context, itemID string, horizonDays int) (*domain.InventoryInsightReport, bool, error) {
	key := buildReportKey(itemID, horizonDays)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var report domain.InventoryInsightReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, false, fmt.Errorf("decode report cache: %w", err)
	}

	return &report, true, nil
}

func (c *redisReportCache) SetReport(ctx context.Context, itemID string, horizonDays int, report *domain.InventoryInsightReport) error {
	key := buildReportKey(itemID, horizonDays)
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisReportCache) InvalidateItem(ctx context.Context, itemID string) error {
	return deleteKeysWithPrefix(ctx, c.client, reportKeyPrefix+":"+itemHash(itemID), reportScanBatchSize)
}

func (c *redisReportCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, reportKeyPrefix, reportScanBatchSize)
}

func (n *noopReportCache) GetReport(ctx context.Context, itemID string, horizonDays int) (*domain.InventoryInsightReport, bool, error) {
	return nil, false, nil
}

func (n *noopReportCache) SetReport(ctx context.Context, itemID string, horizonDays int, report *domain.InventoryInsightReport) error {
	return nil
}

func (n *noopReportCache) InvalidateItem(ctx context.Context, itemID string) error {
	return nil
}

func (n *noopReportCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildReportKey(itemID string, horizonDays int) string {
	return fmt.Sprintf("%s:%s:%d", reportKeyPrefix, itemHash(itemID), horizonDays)
}

func itemHash(itemID string) string {
	sum := sha1.Sum([]byte(itemID))
	return hex.EncodeToString(sum[:])
}
