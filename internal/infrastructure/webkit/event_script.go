package webkit

import (
	"fmt"
	"strings"

	"github.com/bnema/webshim/internal/domain/mouse"
)

// ScriptOptions tunes the synthetic event script.
type ScriptOptions struct {
	// GuardMissingElement makes the script a no-op when no element sits under
	// the cursor. Without it, the dispatch throws inside the page.
	GuardMissingElement bool
}

// BuildEventScript returns a script that dispatches d as a DOM MouseEvent on
// the topmost element under the cursor. Release events that the page does not
// cancel also navigate history back or forward, as a native browser would.
//
// screenX/screenY are window-relative approximations: window.screenX plus the
// view coordinate.
func BuildEventScript(d mouse.Descriptor, opts ScriptOptions) string {
	var b strings.Builder

	b.WriteString("(() => {\n")
	fmt.Fprintf(&b, "  const el = document.elementFromPoint(%d, %d);\n", d.X, d.Y)
	if opts.GuardMissingElement {
		b.WriteString("  if (!el) {\n    return;\n  }\n")
	}
	fmt.Fprintf(&b, "  const ev = new MouseEvent(%q, {\n", d.EventName())
	b.WriteString("    view: window,\n")
	fmt.Fprintf(&b, "    button: %d,\n", int(d.Button))
	fmt.Fprintf(&b, "    buttons: %d,\n", d.Buttons)
	fmt.Fprintf(&b, "    x: %d,\n    y: %d,\n", d.X, d.Y)
	fmt.Fprintf(&b, "    clientX: %d,\n    clientY: %d,\n", d.X, d.Y)
	fmt.Fprintf(&b, "    layerX: %d,\n    layerY: %d,\n", d.X, d.Y)
	fmt.Fprintf(&b, "    pageX: %d,\n    pageY: %d,\n", d.X, d.Y)
	fmt.Fprintf(&b, "    screenX: window.screenX + %d,\n    screenY: window.screenY + %d,\n", d.X, d.Y)
	fmt.Fprintf(&b, "    detail: %d,\n", d.ClickCount)
	b.WriteString("    bubbles: true,\n    cancelable: true,\n    composed: true,\n    cancelBubble: false,\n")
	fmt.Fprintf(&b, "    ctrlKey: %t,\n", d.Modifiers.Ctrl)
	fmt.Fprintf(&b, "    altKey: %t,\n", d.Modifiers.Alt)
	fmt.Fprintf(&b, "    shiftKey: %t,\n", d.Modifiers.Shift)
	fmt.Fprintf(&b, "    metaKey: %t,\n", d.Modifiers.Meta)
	b.WriteString("  });\n")
	b.WriteString("  el.dispatchEvent(ev);\n")

	if d.Phase == mouse.PhaseUp {
		if nav := historyCall(d.Button); nav != "" {
			fmt.Fprintf(&b, "  if (!ev.defaultPrevented) {\n    %s;\n  }\n", nav)
		}
	}

	b.WriteString("})()")
	return b.String()
}

func historyCall(button mouse.Button) string {
	switch button {
	case mouse.ButtonBack:
		return "window.history.back()"
	case mouse.ButtonForward:
		return "window.history.forward()"
	default:
		return ""
	}
}
