package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/retailpulse/inventory-insight/internal/config"
)

// MinioArchive implements ReportArchive on any S3-compatible endpoint.
type MinioArchive struct {
	client *minio.Client
	bucket string
}

// NewMinioArchive builds an archive client from config and verifies the
// bucket exists, creating it when missing.
func NewMinioArchive(ctx context.Context, cfg config.ArchiveConfig) (*MinioArchive, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("archive endpoint must be provided")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("archive credentials must be provided")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("archive bucket must be provided")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed creating archive client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed checking archive bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed creating archive bucket: %w", err)
		}
	}

	return &MinioArchive{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// StoreReport uploads one report payload as a JSON object.
func (a *MinioArchive) StoreReport(ctx context.Context, key string, payload []byte) error {
	_, err := a.client.PutObject(
		ctx,
		a.bucket,
		key,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed archiving report %s: %w", key, err)
	}
	return nil
}

var _ ReportArchive = (*MinioArchive)(nil)
