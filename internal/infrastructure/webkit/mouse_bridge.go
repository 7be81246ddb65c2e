package webkit

import (
	"context"
	"sync"

	"github.com/bnema/webshim/internal/application/port"
	"github.com/bnema/webshim/internal/domain/mouse"
	"github.com/bnema/webshim/internal/logging"
)

// MouseBridgeDeps are the engine and toolkit collaborators of a MouseBridge.
type MouseBridgeDeps struct {
	Scripts port.ScriptEvaluator
	// Default receives every event the bridge does not synthesize.
	Default  port.DefaultMouseHandler
	Geometry port.ViewGeometry
	Buttons  port.ButtonState
}

// MouseBridge turns native extra-button presses into DOM mouse events.
// Buttons 3 and 4 are synthesized; everything else goes to the default handler
// untouched.
type MouseBridge struct {
	deps MouseBridgeDeps

	mu   sync.RWMutex
	opts ScriptOptions
}

// NewMouseBridge creates a mouse bridge.
func NewMouseBridge(deps MouseBridgeDeps, opts ScriptOptions) *MouseBridge {
	return &MouseBridge{deps: deps, opts: opts}
}

// SetScriptOptions replaces the script options, e.g. after a config reload.
func (b *MouseBridge) SetScriptOptions(opts ScriptOptions) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.opts = opts
}

// OtherMouseDown handles a native press of a non-primary button.
func (b *MouseBridge) OtherMouseDown(ctx context.Context, ev port.NativeMouseEvent) {
	if b.synthesize(ctx, ev, port.MouseEventOtherDown, mouse.PhaseDown) {
		return
	}
	if b.deps.Default != nil {
		b.deps.Default.MouseDown(ev)
	}
}

// OtherMouseUp handles a native release of a non-primary button.
func (b *MouseBridge) OtherMouseUp(ctx context.Context, ev port.NativeMouseEvent) {
	if b.synthesize(ctx, ev, port.MouseEventOtherUp, mouse.PhaseUp) {
		return
	}
	if b.deps.Default != nil {
		b.deps.Default.MouseUp(ev)
	}
}

// synthesize reports whether ev was consumed.
func (b *MouseBridge) synthesize(ctx context.Context, ev port.NativeMouseEvent, want port.MouseEventType, phase mouse.Phase) bool {
	if ev.Type != want {
		return false
	}
	desc, ok := DescribeEvent(ev, phase, b.deps.Geometry, b.deps.Buttons)
	if !ok {
		return false
	}

	b.mu.RLock()
	opts := b.opts
	b.mu.RUnlock()

	log := logging.FromContext(ctx)
	log.Trace().
		Str("event", desc.EventName()).
		Str("button", desc.Button.String()).
		Int("x", desc.X).
		Int("y", desc.Y).
		Msg("synthesizing mouse event")

	if b.deps.Scripts == nil {
		log.Warn().Msg("no script evaluator, dropping synthetic mouse event")
		return true
	}
	if err := b.deps.Scripts.EvaluateScript(ctx, BuildEventScript(desc, opts)); err != nil {
		log.Debug().Err(err).Str("event", desc.EventName()).Msg("synthetic mouse event script failed")
	}
	return true
}

// DescribeEvent builds the synthetic event descriptor for a native event.
// ok is false when the button is not back or forward.
// geometry and buttons may be nil: window coordinates are then used as-is and
// no buttons are reported held.
func DescribeEvent(
	ev port.NativeMouseEvent,
	phase mouse.Phase,
	geometry port.ViewGeometry,
	buttons port.ButtonState,
) (mouse.Descriptor, bool) {
	button, ok := mouse.ButtonFromNative(ev.ButtonNumber)
	if !ok {
		return mouse.Descriptor{}, false
	}

	point := ev.LocationInWindow
	if geometry != nil {
		point = geometry.ConvertFromWindow(point)
	}

	var pressed uint
	if buttons != nil {
		pressed = buttons.PressedMouseButtons()
	}

	return mouse.Descriptor{
		Button: button,
		Phase:  phase,
		X:      mouse.PixelCoordinate(point.X),
		Y:      mouse.PixelCoordinate(point.Y),
		Modifiers: mouse.Modifiers{
			Ctrl:  ev.ModifierFlags.Has(port.ModifierControl),
			Alt:   ev.ModifierFlags.Has(port.ModifierOption),
			Shift: ev.ModifierFlags.Has(port.ModifierShift),
			Meta:  ev.ModifierFlags.Has(port.ModifierCommand),
		},
		ClickCount: ev.ClickCount,
		Buttons:    pressed,
	}, true
}
