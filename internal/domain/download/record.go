package download

import "time"

// Status is the persisted outcome of a download.
type Status string

const (
	StatusStarted   Status = "started"
	StatusFinished  Status = "finished"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Record is a download history entry as recorded by the host.
type Record struct {
	ID          int64
	URL         string
	Destination string
	Status      Status
	Error       string
	CreatedAt   time.Time
}
