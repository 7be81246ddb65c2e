package port

import (
	"context"
	"net/url"
	"sync"
)

// DownloadEventType represents the type of download event.
type DownloadEventType int

const (
	// DownloadEventStarted indicates a destination was accepted and the download has begun.
	DownloadEventStarted DownloadEventType = iota
	// DownloadEventFinished indicates a download completed successfully.
	DownloadEventFinished
	// DownloadEventFailed indicates a download failed.
	DownloadEventFailed
	// DownloadEventCancelled indicates no destination was granted.
	DownloadEventCancelled
)

// String returns a human-readable representation of the event type.
func (t DownloadEventType) String() string {
	switch t {
	case DownloadEventStarted:
		return "started"
	case DownloadEventFinished:
		return "finished"
	case DownloadEventFailed:
		return "failed"
	case DownloadEventCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// DownloadEvent contains information about a download event.
type DownloadEvent struct {
	Type        DownloadEventType
	URL         string
	Destination string
	Error       error // Set when Type is DownloadEventFailed
}

// DownloadEventHandler receives download event notifications.
type DownloadEventHandler interface {
	OnDownloadEvent(ctx context.Context, event DownloadEvent)
}

// DecidePathFunc lets the host choose or veto the destination of a download.
// path holds the proposed destination and may be rewritten in place.
// Returning false aborts the download.
type DecidePathFunc func(url string, path *string) bool

// CompletedFunc is invoked exactly once per download. finalPath is optional.
type CompletedFunc func(url string, finalPath *string, success bool)

// DownloadCallbacks is the typed callback registry owned by a view.
// Either slot may be nil.
type DownloadCallbacks struct {
	DecidePath DecidePathFunc
	Completed  CompletedFunc
}

// DownloadCallbackSource resolves the callbacks of the view that owns a download.
// A nil result means the owning view is gone.
type DownloadCallbackSource interface {
	DownloadCallbacks() *DownloadCallbacks
}

// Destination is the outcome of a destination decision.
// The zero value is NoDestination.
type Destination struct {
	Path     string
	accepted bool
}

// NoDestination cancels the download.
var NoDestination = Destination{}

// DestinationAt returns a destination writing to path.
func DestinationAt(path string) Destination {
	return Destination{Path: path, accepted: true}
}

// Accepted reports whether the decision grants a destination.
func (d Destination) Accepted() bool {
	return d.accepted
}

// FileURL returns the destination as a file URL, or "" for NoDestination.
func (d Destination) FileURL() string {
	if !d.Accepted() {
		return ""
	}
	u := url.URL{Scheme: "file", Path: d.Path}
	return u.String()
}

// DecisionToken delivers a destination decision back to the engine.
// The engine stalls the download until Resolve is called.
type DecisionToken interface {
	Resolve(dest Destination) bool
}

// NewDecisionToken adapts the engine's completion handler into a DecisionToken.
// The returned token forwards only the first Resolve call; later calls report false.
func NewDecisionToken(complete func(Destination)) DecisionToken {
	return &onceToken{complete: complete}
}

type onceToken struct {
	once     sync.Once
	complete func(Destination)
}

func (t *onceToken) Resolve(dest Destination) bool {
	resolved := false
	t.once.Do(func() {
		resolved = true
		if t.complete != nil {
			t.complete(dest)
		}
	})
	return resolved
}

// DownloadDelegate receives the lifecycle callbacks of a download.
type DownloadDelegate interface {
	DecideDestination(ctx context.Context, download Download, suggestedFilename string, token DecisionToken)
	DidFinish(ctx context.Context, download Download)
	DidFail(ctx context.Context, download Download, err error)
}

// Download is the engine's handle for an in-flight download.
type Download interface {
	// OriginalRequestURL returns the absolute URL of the request that became a download.
	// ok is false when the engine has no request or URL for it.
	OriginalRequestURL() (url string, ok bool)
	// SetDelegate routes subsequent lifecycle callbacks to d.
	SetDelegate(d DownloadDelegate)
}

// DownloadResponse provides response metadata used to name a download.
type DownloadResponse interface {
	GetMimeType() string
	GetSuggestedFilename() string
	GetUri() string
}

// DownloadResponder is implemented by downloads that expose their HTTP response.
type DownloadResponder interface {
	Response() DownloadResponse
}
