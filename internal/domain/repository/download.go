// Package repository declares persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/bnema/webshim/internal/domain/download"
)

// DownloadRepository persists download history records.
type DownloadRepository interface {
	// Save inserts a record and assigns its ID and CreatedAt.
	Save(ctx context.Context, record *download.Record) error

	// GetRecent returns at most limit records, newest first. A non-positive
	// limit returns none.
	GetRecent(ctx context.Context, limit int) ([]*download.Record, error)

	// DeleteAll removes every record.
	DeleteAll(ctx context.Context) error
}
