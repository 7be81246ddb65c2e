package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/bnema/webshim/internal/application/port"
	"github.com/bnema/webshim/internal/domain/mouse"
	"github.com/bnema/webshim/internal/infrastructure/headless"
	"github.com/bnema/webshim/internal/infrastructure/webkit"
	"github.com/bnema/webshim/internal/logging"
)

// DownloadScenario scripts one download through the bridge.
type DownloadScenario struct {
	URL       string
	Suggested string
	MimeType  string
	Body      []byte
	// Reject makes the host refuse the download.
	Reject bool
	// Rename replaces the base name of the proposed path before accepting.
	Rename string
	// Fail makes the engine report this error instead of finishing.
	Fail string
	// CloseView closes the view while the host is deciding, so the
	// completion finds no owner.
	CloseView bool
}

// Completion is one call of the host completion callback.
type Completion struct {
	URL       string
	FinalPath *string
	Success   bool
}

// DownloadReport is what the host and the engine observed.
type DownloadReport struct {
	Proposed     string
	DecideCalled bool
	Result       headless.RunResult
	Completions  []Completion
	Events       []port.DownloadEvent
}

// RunDownloadScenario promotes a headless download, lets the bridge route it to
// host callbacks and returns the observed lifecycle.
func RunDownloadScenario(ctx context.Context, s DownloadScenario, cfg webkit.DownloadBridgeConfig) (*DownloadReport, error) {
	report := &DownloadReport{}
	var view *webkit.View

	callbacks := port.DownloadCallbacks{
		DecidePath: func(_ string, path *string) bool {
			report.DecideCalled = true
			report.Proposed = *path
			if s.CloseView {
				view.Close()
			}
			if s.Reject {
				return false
			}
			if s.Rename != "" {
				*path = filepath.Join(filepath.Dir(*path), s.Rename)
			}
			return true
		},
		Completed: func(url string, finalPath *string, success bool) {
			report.Completions = append(report.Completions, Completion{URL: url, FinalPath: finalPath, Success: success})
		},
	}
	view = webkit.NewView(callbacks)

	events := &eventLog{next: cfg.Events}
	cfg.Events = events
	bridge := webkit.NewDownloadBridge(view, cfg)

	var resp *headless.Response
	if s.MimeType != "" {
		resp = &headless.Response{MimeType: s.MimeType, SuggestedFilename: s.Suggested, URI: s.URL}
	}
	dl := headless.NewDownload(s.URL, resp)
	dl.Promote(ctx, bridge)

	in := headless.RunInput{SuggestedFilename: s.Suggested, Body: s.Body}
	if s.Fail != "" {
		in.Fail = errors.New(s.Fail)
	}
	result, err := dl.Run(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("run download: %w", err)
	}
	report.Result = result
	report.Events = events.Events()
	return report, nil
}

// eventLog records bridge events and forwards them to next.
type eventLog struct {
	next port.DownloadEventHandler

	mu     sync.Mutex
	events []port.DownloadEvent
}

func (l *eventLog) OnDownloadEvent(ctx context.Context, event port.DownloadEvent) {
	l.mu.Lock()
	l.events = append(l.events, event)
	l.mu.Unlock()

	if l.next != nil {
		l.next.OnDownloadEvent(ctx, event)
	}
}

func (l *eventLog) Events() []port.DownloadEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]port.DownloadEvent(nil), l.events...)
}

// MouseScenario scripts one native extra-button event against a headless page.
type MouseScenario struct {
	Button     int
	Phase      mouse.Phase
	X          float64
	Y          float64
	Modifiers  port.ModifierFlags
	ClickCount int
	// PreventDefault installs a page listener cancelling the event.
	PreventDefault bool
	// Elements defaults to one full-page element.
	Elements []headless.Element
	Back     []string
	Forward  []string
}

// MouseReport is what the page observed.
type MouseReport struct {
	// Script is empty when the event went to the default handler.
	Script        string
	ScriptErr     error
	Dispatched    []headless.DispatchedEvent
	Navigations   []string
	CurrentURL    string
	PassedThrough []port.NativeMouseEvent
}

// DefaultElements is the page layout used when a scenario has none.
func DefaultElements() []headless.Element {
	return []headless.Element{{ID: "document", Width: 1280, Height: 800}}
}

// RunMouseScenario feeds one native event through the mouse bridge.
func RunMouseScenario(ctx context.Context, s MouseScenario, opts webkit.ScriptOptions) (*MouseReport, error) {
	page, err := headless.NewPage(headless.PageOptions{History: s.Back, Forward: s.Forward})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	elements := s.Elements
	if len(elements) == 0 {
		elements = DefaultElements()
	}
	for _, el := range elements {
		if err := page.AddElement(el); err != nil {
			return nil, err
		}
	}
	if s.PreventDefault {
		if err := cancelEvents(ctx, page, elements); err != nil {
			return nil, err
		}
	}

	scripts := &scriptLog{next: page}
	fallback := &headless.DefaultHandler{}
	bridge := webkit.NewMouseBridge(webkit.MouseBridgeDeps{
		Scripts:  scripts,
		Default:  fallback,
		Geometry: headless.Geometry{},
		Buttons:  headless.Buttons(pressedMask(s.Button, s.Phase)),
	}, opts)

	ev := port.NativeMouseEvent{
		ButtonNumber:     s.Button,
		LocationInWindow: port.Point{X: s.X, Y: s.Y},
		ModifierFlags:    s.Modifiers,
		ClickCount:       s.ClickCount,
	}
	if s.Phase == mouse.PhaseDown {
		ev.Type = port.MouseEventOtherDown
		bridge.OtherMouseDown(ctx, ev)
	} else {
		ev.Type = port.MouseEventOtherUp
		bridge.OtherMouseUp(ctx, ev)
	}

	dispatched, err := page.DispatchedEvents()
	if err != nil {
		return nil, err
	}
	return &MouseReport{
		Script:        scripts.script,
		ScriptErr:     scripts.err,
		Dispatched:    dispatched,
		Navigations:   page.Navigations(),
		CurrentURL:    page.CurrentURL(),
		PassedThrough: fallback.Events(),
	}, nil
}

func cancelEvents(ctx context.Context, page *headless.Page, elements []headless.Element) error {
	for _, el := range elements {
		script := fmt.Sprintf(`(() => {
  const el = document.getElementById(%q);
  el.addEventListener("mousedown", (e) => e.preventDefault());
  el.addEventListener("mouseup", (e) => e.preventDefault());
})()`, el.ID)
		if err := page.EvaluateScript(ctx, script); err != nil {
			return fmt.Errorf("install preventDefault listener: %w", err)
		}
	}
	return nil
}

// pressedMask is the DOM buttons bitmask while button is held.
// Back is bit 3 and forward bit 4, as in MouseEvent.buttons.
func pressedMask(button int, phase mouse.Phase) uint {
	if phase != mouse.PhaseDown || button < 0 || button > 31 {
		return 0
	}
	return 1 << uint(button)
}

// scriptLog keeps the last script and its error.
type scriptLog struct {
	next   port.ScriptEvaluator
	script string
	err    error
}

func (l *scriptLog) EvaluateScript(ctx context.Context, script string) error {
	l.script = script
	l.err = l.next.EvaluateScript(ctx, script)
	if l.err != nil {
		logging.FromContext(ctx).Debug().Err(l.err).Msg("page rejected synthetic event")
	}
	return l.err
}
