package headless

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/webshim/internal/application/port"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrNoDelegate is returned when a download is run before a delegate is attached.
var ErrNoDelegate = errors.New("download has no delegate")

// Response is static response metadata for a Download.
type Response struct {
	MimeType          string
	SuggestedFilename string
	URI               string
}

func (r *Response) GetMimeType() string          { return r.MimeType }
func (r *Response) GetSuggestedFilename() string { return r.SuggestedFilename }
func (r *Response) GetUri() string               { return r.URI }

// DownloadObserver is notified when a navigation is promoted to a download.
type DownloadObserver interface {
	OnNavigationBecameDownload(ctx context.Context, d port.Download)
}

// Download is a fake engine download handle.
type Download struct {
	url      string
	response *Response

	mu       sync.Mutex
	delegate port.DownloadDelegate
}

// NewDownload creates a download for url. An empty url models a request
// without a URL.
func NewDownload(url string, response *Response) *Download {
	return &Download{url: url, response: response}
}

// OriginalRequestURL implements port.Download.
func (d *Download) OriginalRequestURL() (string, bool) {
	return d.url, d.url != ""
}

// SetDelegate implements port.Download.
func (d *Download) SetDelegate(delegate port.DownloadDelegate) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.delegate = delegate
}

// Delegate returns the attached delegate.
func (d *Download) Delegate() port.DownloadDelegate {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.delegate
}

// Response implements port.DownloadResponder.
func (d *Download) Response() port.DownloadResponse {
	if d.response == nil {
		return nil
	}
	return d.response
}

// RunInput scripts one download.
type RunInput struct {
	SuggestedFilename string
	// Body is written to the accepted destination. A nil body skips the write.
	Body []byte
	// Fail makes the engine report this error instead of finishing.
	Fail error
}

// RunResult reports what the engine observed.
type RunResult struct {
	Destination port.Destination
	// Resolved is false when the delegate never answered the decision.
	Resolved bool
	Written  bool
}

// Promote announces the download to observer, which is expected to attach a delegate.
func (d *Download) Promote(ctx context.Context, observer DownloadObserver) {
	observer.OnNavigationBecameDownload(ctx, d)
}

// Run plays the engine side of a download: destination decision, transfer,
// then finished or failed. A cancelled decision ends the download silently.
func (d *Download) Run(ctx context.Context, in RunInput) (RunResult, error) {
	delegate := d.Delegate()
	if delegate == nil {
		return RunResult{}, ErrNoDelegate
	}

	var result RunResult
	token := port.NewDecisionToken(func(dest port.Destination) {
		result.Resolved = true
		result.Destination = dest
	})
	delegate.DecideDestination(ctx, d, in.SuggestedFilename, token)

	if !result.Resolved || !result.Destination.Accepted() {
		return result, nil
	}

	if in.Fail != nil {
		delegate.DidFail(ctx, d, in.Fail)
		return result, nil
	}

	if in.Body != nil {
		if err := writeBody(result.Destination.Path, in.Body); err != nil {
			delegate.DidFail(ctx, d, err)
			return result, nil
		}
		result.Written = true
	}

	delegate.DidFinish(ctx, d)
	return result, nil
}

func writeBody(path string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create download directory: %w", err)
	}
	if err := os.WriteFile(path, body, filePerm); err != nil {
		return fmt.Errorf("write download: %w", err)
	}
	return nil
}

var (
	_ port.Download          = (*Download)(nil)
	_ port.DownloadResponder = (*Download)(nil)
)
