package webkit

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/webshim/internal/application/port"
	"github.com/bnema/webshim/internal/application/usecase"
	"github.com/bnema/webshim/internal/domain/download"
	"github.com/bnema/webshim/internal/logging"
)

const logURLMaxLen = 80

// DownloadBridgeConfig configures a DownloadBridge.
type DownloadBridgeConfig struct {
	// DownloadDir, when set, turns the engine's suggested filename into a
	// sanitized path inside this directory before the host sees it.
	DownloadDir string
	// ReportFinalPath passes the decided path to the completion callback on
	// success instead of nil.
	ReportFinalPath bool
	// Prepare resolves proposed paths. Defaults to a use case without deduplication.
	Prepare *usecase.PrepareDownloadUseCase
	// Events optionally observes the download lifecycle.
	Events port.DownloadEventHandler
}

// DownloadBridge is the shared delegate attached to every download of a view.
// It forwards the engine's lifecycle callbacks to the view's DownloadCallbacks.
//
// Download handles are used as map keys and must be comparable.
type DownloadBridge struct {
	views port.DownloadCallbackSource

	mu              sync.RWMutex
	downloadDir     string
	reportFinalPath bool
	prepare         *usecase.PrepareDownloadUseCase
	events          port.DownloadEventHandler

	sessionsMu sync.Mutex
	sessions   map[port.Download]*download.Session
	// completed remembers recently finished handles so a late second
	// completion signal is dropped instead of starting a new session.
	completed     map[port.Download]*download.Session
	completedRing []port.Download
	// deciding is closed once the host has answered for that session.
	deciding map[*download.Session]chan struct{}
}

// completedMemory bounds how many finished handles are remembered.
const completedMemory = 64

// NewDownloadBridge creates a bridge reading callbacks from views.
func NewDownloadBridge(views port.DownloadCallbackSource, cfg DownloadBridgeConfig) *DownloadBridge {
	prepare := cfg.Prepare
	if prepare == nil {
		prepare = usecase.NewPrepareDownloadUseCase(nil)
	}
	return &DownloadBridge{
		views:           views,
		downloadDir:     cfg.DownloadDir,
		reportFinalPath: cfg.ReportFinalPath,
		prepare:         prepare,
		events:          cfg.Events,
		sessions:        make(map[port.Download]*download.Session),
		completed:       make(map[port.Download]*download.Session),
		deciding:        make(map[*download.Session]chan struct{}),
	}
}

// SetDownloadPath updates the download directory.
func (b *DownloadBridge) SetDownloadPath(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.downloadDir = path
}

// SetReportFinalPath toggles passing the decided path on successful completion.
func (b *DownloadBridge) SetReportFinalPath(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reportFinalPath = enabled
}

// OnNavigationBecameDownload attaches the bridge as the download's delegate.
// It handles both navigation-action and navigation-response promotions and is
// idempotent per handle.
func (b *DownloadBridge) OnNavigationBecameDownload(ctx context.Context, d port.Download) {
	log := logging.FromContext(ctx)

	d.SetDelegate(b)

	b.sessionsMu.Lock()
	_, known := b.sessions[d]
	if _, done := b.completed[d]; done {
		known = true
	}
	if !known {
		b.sessions[d] = download.NewSession(b.requestURL(ctx, d))
	}
	b.sessionsMu.Unlock()

	if !known {
		log.Debug().Msg("download delegate attached")
	}
}

// DecideDestination implements port.DownloadDelegate.
// token is resolved exactly once before returning, on every branch.
func (b *DownloadBridge) DecideDestination(
	ctx context.Context,
	d port.Download,
	suggestedFilename string,
	token port.DecisionToken,
) {
	sess := b.session(ctx, d)
	ctx = logging.WithURL(ctx, logging.TruncateURL(sess.URL, logURLMaxLen))
	log := logging.FromContext(ctx)

	b.sessionsMu.Lock()
	err := sess.BeginDecision()
	wait := b.deciding[sess]
	if err == nil {
		b.deciding[sess] = make(chan struct{})
	}
	b.sessionsMu.Unlock()

	switch {
	case errors.Is(err, download.ErrDecisionInFlight):
		log.Warn().Msg("destination requested while the host is deciding")
		b.awaitDecision(ctx, sess, wait, token)
		return
	case errors.Is(err, download.ErrAlreadyDecided):
		// The host already chose; repeat its answer without asking again.
		log.Warn().Msg("duplicate destination request")
		b.resolve(ctx, token, b.decidedDestination(sess))
		return
	case errors.Is(err, download.ErrAlreadyCompleted):
		log.Warn().Msg("destination requested after completion")
		b.resolve(ctx, token, port.NoDestination)
		return
	}
	defer b.releaseDecision(sess)

	callbacks := b.views.DownloadCallbacks()
	if callbacks == nil || callbacks.DecidePath == nil {
		log.Warn().Msg("web view is gone, this download handler should not be called")
		b.decide(ctx, sess, token, port.NoDestination)
		return
	}

	path := b.proposePath(ctx, d, suggestedFilename)
	if !callbacks.DecidePath(sess.URL, &path) {
		log.Debug().Str("proposed", path).Msg("host rejected download")
		b.decide(ctx, sess, token, port.NoDestination)
		return
	}

	b.decide(ctx, sess, token, port.DestinationAt(path))
}

// DidFinish implements port.DownloadDelegate.
func (b *DownloadBridge) DidFinish(ctx context.Context, d port.Download) {
	sess, ok := b.complete(ctx, d, true)
	if !ok {
		return
	}

	b.mu.RLock()
	reportFinalPath := b.reportFinalPath
	b.mu.RUnlock()

	var finalPath *string
	if reportFinalPath && sess.Accepted {
		p := sess.DecidedPath
		finalPath = &p
	}

	b.notify(ctx, port.DownloadEvent{
		Type:        port.DownloadEventFinished,
		URL:         sess.URL,
		Destination: sess.DecidedPath,
	})

	if callbacks := b.views.DownloadCallbacks(); callbacks != nil && callbacks.Completed != nil {
		callbacks.Completed(sess.URL, finalPath, true)
	}
}

// DidFail implements port.DownloadDelegate.
// The error text is only logged; the host sees success=false.
func (b *DownloadBridge) DidFail(ctx context.Context, d port.Download, err error) {
	log := logging.FromContext(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("download failed")
	}

	sess, ok := b.complete(ctx, d, false)
	if !ok {
		return
	}

	b.notify(ctx, port.DownloadEvent{
		Type:        port.DownloadEventFailed,
		URL:         sess.URL,
		Destination: sess.DecidedPath,
		Error:       err,
	})

	if callbacks := b.views.DownloadCallbacks(); callbacks != nil && callbacks.Completed != nil {
		callbacks.Completed(sess.URL, nil, false)
	}
}

// ActiveDownloads returns the number of downloads not yet completed.
func (b *DownloadBridge) ActiveDownloads() int {
	b.sessionsMu.Lock()
	defer b.sessionsMu.Unlock()
	return len(b.sessions)
}

func (b *DownloadBridge) decide(ctx context.Context, sess *download.Session, token port.DecisionToken, dest port.Destination) {
	b.sessionsMu.Lock()
	err := sess.Decide(dest.Path, dest.Accepted())
	b.sessionsMu.Unlock()
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("destination decision ignored")
	}
	b.resolve(ctx, token, dest)

	event := port.DownloadEvent{Type: port.DownloadEventCancelled, URL: sess.URL}
	if dest.Accepted() {
		event = port.DownloadEvent{Type: port.DownloadEventStarted, URL: sess.URL, Destination: dest.Path}
	}
	b.notify(ctx, event)
}

func (*DownloadBridge) resolve(ctx context.Context, token port.DecisionToken, dest port.Destination) {
	log := logging.FromContext(ctx)
	if token == nil {
		log.Error().Msg("destination decision has no completion token")
		return
	}
	if !token.Resolve(dest) {
		log.Warn().Msg("destination decision token already resolved")
		return
	}
	log.Debug().Bool("accepted", dest.Accepted()).Str("destination", dest.Path).Msg("destination decided")
}

// complete moves the session to its final state and forgets it.
// ok is false when the download was already completed.
func (b *DownloadBridge) complete(ctx context.Context, d port.Download, success bool) (*download.Session, bool) {
	sess := b.session(ctx, d)

	b.sessionsMu.Lock()
	err := sess.Complete(success)
	if err == nil {
		delete(b.sessions, d)
		b.rememberCompletedLocked(d, sess)
	}
	b.sessionsMu.Unlock()

	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Bool("success", success).Msg("ignoring repeated completion")
		return nil, false
	}
	return sess, true
}

// session returns the tracked session for d, starting one if the engine
// skipped the promotion signal.
func (b *DownloadBridge) session(ctx context.Context, d port.Download) *download.Session {
	b.sessionsMu.Lock()
	defer b.sessionsMu.Unlock()

	if sess, ok := b.sessions[d]; ok {
		return sess
	}
	if sess, ok := b.completed[d]; ok {
		return sess
	}
	sess := download.NewSession(b.requestURL(ctx, d))
	b.sessions[d] = sess
	return sess
}

func (b *DownloadBridge) rememberCompletedLocked(d port.Download, sess *download.Session) {
	if len(b.completedRing) >= completedMemory {
		oldest := b.completedRing[0]
		b.completedRing = b.completedRing[1:]
		delete(b.completed, oldest)
	}
	b.completedRing = append(b.completedRing, d)
	b.completed[d] = sess
}

// requestURL returns the original request URL, or "" when the engine has none.
func (*DownloadBridge) requestURL(ctx context.Context, d port.Download) string {
	url, ok := d.OriginalRequestURL()
	if !ok {
		logging.FromContext(ctx).Warn().Msg("download has no original request URL")
		return ""
	}
	return url
}

func (b *DownloadBridge) proposePath(ctx context.Context, d port.Download, suggestedFilename string) string {
	b.mu.RLock()
	dir := b.downloadDir
	b.mu.RUnlock()

	if dir == "" {
		return suggestedFilename
	}

	input := usecase.PrepareDownloadInput{
		SuggestedFilename: suggestedFilename,
		DownloadDir:       dir,
	}
	if responder, ok := d.(port.DownloadResponder); ok {
		input.Response = responder.Response()
	}
	return b.prepare.Execute(ctx, input).DestinationPath
}

func (b *DownloadBridge) notify(ctx context.Context, event port.DownloadEvent) {
	b.mu.RLock()
	events := b.events
	b.mu.RUnlock()

	if events != nil {
		events.OnDownloadEvent(ctx, event)
	}
}

// releaseDecision wakes callers waiting on the host's answer for sess.
func (b *DownloadBridge) releaseDecision(sess *download.Session) {
	b.sessionsMu.Lock()
	defer b.sessionsMu.Unlock()
	if done, ok := b.deciding[sess]; ok {
		close(done)
		delete(b.deciding, sess)
	}
}

// awaitDecision resolves token with the answer of the in-flight decision.
func (b *DownloadBridge) awaitDecision(ctx context.Context, sess *download.Session, wait <-chan struct{}, token port.DecisionToken) {
	if wait != nil {
		select {
		case <-wait:
		case <-ctx.Done():
			logging.FromContext(ctx).Warn().Err(ctx.Err()).Msg("stopped waiting for destination decision")
			b.resolve(ctx, token, port.NoDestination)
			return
		}
	}
	b.resolve(ctx, token, b.decidedDestination(sess))
}

// decidedDestination replays the recorded decision, or NoDestination when
// there is none.
func (b *DownloadBridge) decidedDestination(sess *download.Session) port.Destination {
	b.sessionsMu.Lock()
	defer b.sessionsMu.Unlock()
	if !sess.Accepted {
		return port.NoDestination
	}
	return port.DestinationAt(sess.DecidedPath)
}

var _ port.DownloadDelegate = (*DownloadBridge)(nil)
