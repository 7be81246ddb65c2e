package usecase

import (
	"context"
	"time"

	"github.com/bnema/webshim/internal/application/port"
	"github.com/bnema/webshim/internal/domain/download"
	"github.com/bnema/webshim/internal/domain/repository"
	"github.com/bnema/webshim/internal/logging"
)

// RecordDownloadUseCase persists download lifecycle events as history records.
// It implements port.DownloadEventHandler so it can observe a download bridge.
type RecordDownloadUseCase struct {
	repo repository.DownloadRepository
	now  func() time.Time
}

// NewRecordDownloadUseCase creates a new RecordDownloadUseCase.
func NewRecordDownloadUseCase(repo repository.DownloadRepository) *RecordDownloadUseCase {
	return &RecordDownloadUseCase{repo: repo, now: time.Now}
}

// OnDownloadEvent implements port.DownloadEventHandler.
// Storage failures are logged; the download itself is never affected.
func (u *RecordDownloadUseCase) OnDownloadEvent(ctx context.Context, event port.DownloadEvent) {
	log := logging.FromContext(ctx)

	record := &download.Record{
		URL:         event.URL,
		Destination: event.Destination,
		Status:      statusFor(event.Type),
		CreatedAt:   u.now().UTC(),
	}
	if event.Error != nil {
		record.Error = event.Error.Error()
	}

	if err := u.repo.Save(ctx, record); err != nil {
		log.Error().Err(err).
			Str("url", logging.TruncateURL(event.URL, logURLMaxLen)).
			Str("status", string(record.Status)).
			Msg("failed to record download event")
		return
	}

	log.Debug().Int64("id", record.ID).Str("status", string(record.Status)).Msg("download event recorded")
}

// ListRecent returns the newest history records.
func (u *RecordDownloadUseCase) ListRecent(ctx context.Context, limit int) ([]*download.Record, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return u.repo.GetRecent(ctx, limit)
}

// Clear removes all download history.
func (u *RecordDownloadUseCase) Clear(ctx context.Context) error {
	return u.repo.DeleteAll(ctx)
}

const (
	logURLMaxLen        = 60
	defaultHistoryLimit = 50
)

func statusFor(t port.DownloadEventType) download.Status {
	switch t {
	case port.DownloadEventStarted:
		return download.StatusStarted
	case port.DownloadEventFinished:
		return download.StatusFinished
	case port.DownloadEventCancelled:
		return download.StatusCancelled
	default:
		return download.StatusFailed
	}
}

var _ port.DownloadEventHandler = (*RecordDownloadUseCase)(nil)
