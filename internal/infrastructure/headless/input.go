package headless

import (
	"sync"

	"github.com/bnema/webshim/internal/application/port"
)

// Geometry maps window coordinates to a view placed at (OffsetX, OffsetY).
type Geometry struct {
	OffsetX float64
	OffsetY float64
}

// ConvertFromWindow implements port.ViewGeometry.
func (g Geometry) ConvertFromWindow(p port.Point) port.Point {
	return port.Point{X: p.X - g.OffsetX, Y: p.Y - g.OffsetY}
}

// Buttons is a fixed pressed-buttons bitmask.
type Buttons uint

// PressedMouseButtons implements port.ButtonState.
func (b Buttons) PressedMouseButtons() uint {
	return uint(b)
}

// DefaultHandler records the events the toolkit would have handled itself.
type DefaultHandler struct {
	mu     sync.Mutex
	events []port.NativeMouseEvent
}

// MouseDown implements port.DefaultMouseHandler.
func (h *DefaultHandler) MouseDown(ev port.NativeMouseEvent) {
	h.record(ev)
}

// MouseUp implements port.DefaultMouseHandler.
func (h *DefaultHandler) MouseUp(ev port.NativeMouseEvent) {
	h.record(ev)
}

// Events returns the forwarded events, oldest first.
func (h *DefaultHandler) Events() []port.NativeMouseEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]port.NativeMouseEvent(nil), h.events...)
}

func (h *DefaultHandler) record(ev port.NativeMouseEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
}

var (
	_ port.ViewGeometry        = Geometry{}
	_ port.ButtonState         = Buttons(0)
	_ port.DefaultMouseHandler = (*DefaultHandler)(nil)
)
