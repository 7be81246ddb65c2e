// Package mouse models the synthetic pointer events produced for the extra
// (back/forward) mouse buttons.
package mouse

import "math"

// Button is a web MouseEvent.button code.
type Button int

const (
	// ButtonBack is the browser "back" button (fourth button).
	ButtonBack Button = 3
	// ButtonForward is the browser "forward" button (fifth button).
	ButtonForward Button = 4
)

// ButtonFromNative maps a native button number to its web button.
// ok is false for every button other than back and forward.
func ButtonFromNative(number int) (b Button, ok bool) {
	switch number {
	case 3:
		return ButtonBack, true
	case 4:
		return ButtonForward, true
	default:
		return 0, false
	}
}

// String returns the navigation direction of the button.
func (b Button) String() string {
	switch b {
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return "unknown"
	}
}

// Phase is press or release.
type Phase int

const (
	PhaseDown Phase = iota
	PhaseUp
)

// EventName returns the DOM event type for the phase.
func (p Phase) EventName() string {
	if p == PhaseUp {
		return "mouseup"
	}
	return "mousedown"
}

// Modifiers are the keyboard modifier states of a mouse event.
type Modifiers struct {
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
}

// Descriptor is everything needed to synthesize one DOM mouse event.
type Descriptor struct {
	Button     Button
	Phase      Phase
	X          int
	Y          int
	Modifiers  Modifiers
	ClickCount int
	// Buttons is the bitmask of buttons held while the event fires.
	Buttons uint
}

// EventName returns the DOM event type of the descriptor.
func (d Descriptor) EventName() string {
	return d.Phase.EventName()
}

// PixelCoordinate truncates a view-space coordinate to an integer pixel.
// Negative and NaN values become 0, as with an unsigned cast.
func PixelCoordinate(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
