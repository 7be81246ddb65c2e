package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/webshim/internal/domain/download"
	"github.com/bnema/webshim/internal/domain/repository"
	"github.com/bnema/webshim/internal/logging"
)

const logURLMaxLen = 60

const (
	insertDownload = `INSERT INTO downloads (url, destination, status, error, created_at)
VALUES (?, ?, ?, ?, ?)`
	selectRecentDownloads = `SELECT id, url, destination, status, error, created_at
FROM downloads
ORDER BY created_at DESC, id DESC
LIMIT ?`
	deleteAllDownloads = `DELETE FROM downloads`
)

// maxPreallocRecords caps the result slice capacity reserved up front.
const maxPreallocRecords = 256

type downloadRepo struct {
	db *sql.DB
}

// NewDownloadRepository creates a new SQLite-backed download history repository.
func NewDownloadRepository(db *sql.DB) repository.DownloadRepository {
	return &downloadRepo{db: db}
}

func (r *downloadRepo) Save(ctx context.Context, record *download.Record) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	logging.FromContext(ctx).Debug().
		Str("url", logging.TruncateURL(record.URL, logURLMaxLen)).
		Str("status", string(record.Status)).
		Msg("saving download record")

	res, err := r.db.ExecContext(ctx, insertDownload,
		record.URL,
		record.Destination,
		string(record.Status),
		record.Error,
		record.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert download: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read download id: %w", err)
	}
	record.ID = id
	return nil
}

// GetRecent returns at most limit records; a non-positive limit returns none.
func (r *downloadRepo) GetRecent(ctx context.Context, limit int) ([]*download.Record, error) {
	if limit <= 0 {
		return []*download.Record{}, nil
	}

	rows, err := r.db.QueryContext(ctx, selectRecentDownloads, limit)
	if err != nil {
		return nil, fmt.Errorf("query downloads: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]*download.Record, 0, min(limit, maxPreallocRecords))
	for rows.Next() {
		var (
			rec       download.Record
			status    string
			createdAt int64
		)
		if err := rows.Scan(&rec.ID, &rec.URL, &rec.Destination, &status, &rec.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("scan download: %w", err)
		}
		rec.Status = download.Status(status)
		rec.CreatedAt = time.UnixMilli(createdAt).UTC()
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate downloads: %w", err)
	}
	return records, nil
}

func (r *downloadRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteAllDownloads); err != nil {
		return fmt.Errorf("delete downloads: %w", err)
	}
	return nil
}
