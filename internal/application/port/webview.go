// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the embedded web engine and the host GUI toolkit, which are
// supplied by the host and treated as opaque collaborators.
package port

import (
	"context"
	"errors"
)

var (
	// ErrNoScriptContext is returned when a page has no active script context.
	ErrNoScriptContext = errors.New("no active script context")
	// ErrViewClosed is returned when an operation targets a closed view.
	ErrViewClosed = errors.New("view closed")
)

// Point is a location in window or view space.
type Point struct {
	X float64
	Y float64
}

// MouseEventType is the native event type of a mouse event.
type MouseEventType int

const (
	// MouseEventOther is any native event the bridges do not special-case.
	MouseEventOther MouseEventType = iota
	// MouseEventOtherDown is a press of a button that is neither left nor right.
	MouseEventOtherDown
	// MouseEventOtherUp is a release of a button that is neither left nor right.
	MouseEventOtherUp
)

// String returns a human-readable representation of the event type.
func (t MouseEventType) String() string {
	switch t {
	case MouseEventOtherDown:
		return "other-mouse-down"
	case MouseEventOtherUp:
		return "other-mouse-up"
	default:
		return "other"
	}
}

// ModifierFlags is the platform modifier bitmask carried by native events.
type ModifierFlags uint64

// Device-independent modifier bits, matching AppKit's NSEventModifierFlags.
const (
	ModifierCapsLock ModifierFlags = 1 << 16
	ModifierShift    ModifierFlags = 1 << 17
	ModifierControl  ModifierFlags = 1 << 18
	ModifierOption   ModifierFlags = 1 << 19
	ModifierCommand  ModifierFlags = 1 << 20
)

// Has reports whether every bit of m is set in f.
func (f ModifierFlags) Has(m ModifierFlags) bool {
	return f&m == m
}

// NativeMouseEvent is a raw mouse event as delivered by the toolkit.
type NativeMouseEvent struct {
	Type             MouseEventType
	ButtonNumber     int
	LocationInWindow Point
	ModifierFlags    ModifierFlags
	ClickCount       int
}

// ViewGeometry converts between window and view coordinate spaces.
type ViewGeometry interface {
	ConvertFromWindow(p Point) Point
}

// ButtonState reports the bitmask of currently pressed mouse buttons.
type ButtonState interface {
	PressedMouseButtons() uint
}

// DefaultMouseHandler is the toolkit's default handling for mouse events.
type DefaultMouseHandler interface {
	MouseDown(ev NativeMouseEvent)
	MouseUp(ev NativeMouseEvent)
}

// ScriptEvaluator runs a script against the page's active script context.
// Evaluation is fire-and-forget: no result is consumed.
type ScriptEvaluator interface {
	EvaluateScript(ctx context.Context, script string) error
}
