// Package headless provides a script-only stand-in for the embedded web
// engine: a sobek VM with just enough DOM for synthetic mouse events, plus
// fake download handles that replay engine callbacks in order.
package headless

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/grafana/sobek"

	"github.com/bnema/webshim/internal/application/port"
	"github.com/bnema/webshim/internal/logging"
)

//go:embed prelude.js
var prelude string

// Element is a rectangle hit-testable by document.elementFromPoint.
// Elements added later sit on top.
type Element struct {
	ID     string
	X      int
	Y      int
	Width  int
	Height int
}

// DispatchedEvent is a mouse event as observed by its target element.
type DispatchedEvent struct {
	Target           string `json:"target"`
	Type             string `json:"type"`
	Button           int    `json:"button"`
	Buttons          uint   `json:"buttons"`
	X                int    `json:"x"`
	Y                int    `json:"y"`
	ClientX          int    `json:"clientX"`
	ClientY          int    `json:"clientY"`
	LayerX           int    `json:"layerX"`
	LayerY           int    `json:"layerY"`
	PageX            int    `json:"pageX"`
	PageY            int    `json:"pageY"`
	ScreenX          int    `json:"screenX"`
	ScreenY          int    `json:"screenY"`
	Detail           int    `json:"detail"`
	CtrlKey          bool   `json:"ctrlKey"`
	AltKey           bool   `json:"altKey"`
	ShiftKey         bool   `json:"shiftKey"`
	MetaKey          bool   `json:"metaKey"`
	Bubbles          bool   `json:"bubbles"`
	Cancelable       bool   `json:"cancelable"`
	Composed         bool   `json:"composed"`
	DefaultPrevented bool   `json:"defaultPrevented"`
}

// PageOptions configures a Page.
type PageOptions struct {
	// History is the back list; the last entry is the current page.
	History []string
	// Forward lists the pages ahead of the current one, nearest first.
	Forward []string
	// ScreenX and ScreenY are the window origin on screen.
	ScreenX int
	ScreenY int
}

// Page is a headless document. It implements port.ScriptEvaluator.
// A Page is safe for concurrent use; scripts run one at a time.
type Page struct {
	mu          sync.Mutex
	vm          *sobek.Runtime
	history     []string
	index       int
	navigations []string
	closed      bool
}

// NewPage creates a page and loads the DOM prelude.
func NewPage(opts PageOptions) (*Page, error) {
	back := opts.History
	if len(back) == 0 {
		back = []string{"about:blank"}
	}
	p := &Page{
		vm:      sobek.New(),
		history: append(append([]string(nil), back...), opts.Forward...),
		index:   len(back) - 1,
	}

	if err := p.vm.Set("__hostHistory", p.navigate); err != nil {
		return nil, fmt.Errorf("bind history host: %w", err)
	}
	if _, err := p.vm.RunString(prelude); err != nil {
		return nil, fmt.Errorf("load page prelude: %w", err)
	}
	if _, err := p.vm.RunString(fmt.Sprintf("window.screenX = %d; window.screenY = %d;", opts.ScreenX, opts.ScreenY)); err != nil {
		return nil, fmt.Errorf("set window origin: %w", err)
	}
	return p, nil
}

// AddElement registers a hit-testable element.
func (p *Page) AddElement(el Element) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return port.ErrViewClosed
	}
	add, ok := sobek.AssertFunction(p.vm.Get("__addElement"))
	if !ok {
		return errors.New("page prelude missing __addElement")
	}
	_, err := add(sobek.Undefined(),
		p.vm.ToValue(el.ID),
		p.vm.ToValue(el.X),
		p.vm.ToValue(el.Y),
		p.vm.ToValue(el.Width),
		p.vm.ToValue(el.Height),
	)
	if err != nil {
		return fmt.Errorf("add element %q: %w", el.ID, err)
	}
	return nil
}

// EvaluateScript implements port.ScriptEvaluator. The script's value is discarded.
func (p *Page) EvaluateScript(ctx context.Context, script string) error {
	_, err := p.Eval(ctx, script)
	return err
}

// Eval runs script and returns its exported value.
// Cancelling ctx interrupts a running script.
func (p *Page) Eval(ctx context.Context, script string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, port.ErrNoScriptContext
	}

	stop := context.AfterFunc(ctx, func() {
		p.vm.Interrupt(ctx.Err())
	})
	defer func() {
		stop()
		p.vm.ClearInterrupt()
	}()

	v, err := p.vm.RunString(script)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("page script threw")
		return nil, fmt.Errorf("evaluate script: %w", err)
	}
	return v.Export(), nil
}

// DispatchedEvents returns every mouse event dispatched so far, oldest first.
func (p *Page) DispatchedEvents() ([]DispatchedEvent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	dump, ok := sobek.AssertFunction(p.vm.Get("__dispatchedJSON"))
	if !ok {
		return nil, errors.New("page prelude missing __dispatchedJSON")
	}
	v, err := dump(sobek.Undefined())
	if err != nil {
		return nil, fmt.Errorf("read dispatched events: %w", err)
	}

	var events []DispatchedEvent
	if err := json.Unmarshal([]byte(v.String()), &events); err != nil {
		return nil, fmt.Errorf("decode dispatched events: %w", err)
	}
	return events, nil
}

// Navigations returns the history calls made by page script ("back"/"forward").
func (p *Page) Navigations() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.navigations...)
}

// CurrentURL returns the URL of the current history entry.
func (p *Page) CurrentURL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.history[p.index]
}

// Close drops the script context. Later evaluations fail with port.ErrNoScriptContext.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

// navigate is called from script with the lock held by Eval.
func (p *Page) navigate(direction string) {
	p.navigations = append(p.navigations, direction)
	switch direction {
	case "back":
		if p.index > 0 {
			p.index--
		}
	case "forward":
		if p.index < len(p.history)-1 {
			p.index++
		}
	}
}

var _ port.ScriptEvaluator = (*Page)(nil)
