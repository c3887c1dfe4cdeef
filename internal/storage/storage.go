package storage

import "context"

// ReportArchive persists rendered insight reports outside the process,
// keyed by item and analysis date, for audit and dashboard backfill.
type ReportArchive interface {
	StoreReport(ctx context.Context, key string, payload []byte) error
}

type noopArchive struct{}

// NewNoopArchive returns an archive that drops everything.
func NewNoopArchive() ReportArchive {
	return &noopArchive{}
}

func (n *noopArchive) StoreReport(ctx context.Context, key string, payload []byte) error {
	return nil
}
