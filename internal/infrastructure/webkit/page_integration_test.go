package webkit

import (
	"testing"

	"github.com/bnema/webshim/internal/application/port"
	"github.com/bnema/webshim/internal/domain/mouse"
	"github.com/bnema/webshim/internal/infrastructure/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageBridge(t *testing.T, opts ScriptOptions) (*MouseBridge, *headless.Page, *headless.DefaultHandler) {
	t.Helper()
	page, err := headless.NewPage(headless.PageOptions{
		History: []string{"https://a.test/", "https://b.test/", "https://c.test/"},
		ScreenX: 100,
		ScreenY: 50,
	})
	require.NoError(t, err)
	require.NoError(t, page.AddElement(headless.Element{ID: "body", Width: 800, Height: 600}))
	require.NoError(t, page.AddElement(headless.Element{ID: "link", X: 10, Y: 10, Width: 40, Height: 20}))

	fallback := &headless.DefaultHandler{}
	bridge := NewMouseBridge(MouseBridgeDeps{
		Scripts:  page,
		Default:  fallback,
		Geometry: headless.Geometry{},
		Buttons:  headless.Buttons(0),
	}, opts)
	return bridge, page, fallback
}

func TestMouseBridge_Page_BackClickNavigates(t *testing.T) {
	bridge, page, fallback := newPageBridge(t, ScriptOptions{})
	at := port.Point{X: 12.9, Y: 15.4}

	bridge.OtherMouseDown(testCtx(), port.NativeMouseEvent{Type: port.MouseEventOtherDown, ButtonNumber: 3, LocationInWindow: at, ClickCount: 1})
	assert.Empty(t, page.Navigations())

	bridge.OtherMouseUp(testCtx(), port.NativeMouseEvent{Type: port.MouseEventOtherUp, ButtonNumber: 3, LocationInWindow: at, ClickCount: 1})

	events, err := page.DispatchedEvents()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "mousedown", events[0].Type)
	assert.Equal(t, "mouseup", events[1].Type)
	for _, ev := range events {
		assert.Equal(t, "link", ev.Target)
		assert.Equal(t, 3, ev.Button)
		assert.Equal(t, 12, ev.ClientX)
		assert.Equal(t, 15, ev.ClientY)
		assert.Equal(t, 112, ev.ScreenX)
		assert.Equal(t, 65, ev.ScreenY)
		assert.Equal(t, 1, ev.Detail)
		assert.True(t, ev.Bubbles)
		assert.True(t, ev.Cancelable)
		assert.True(t, ev.Composed)
	}
	assert.Equal(t, []string{"back"}, page.Navigations())
	assert.Equal(t, "https://b.test/", page.CurrentURL())
	assert.Empty(t, fallback.Events())
}

func TestMouseBridge_Page_ForwardClickNavigates(t *testing.T) {
	bridge, page, _ := newPageBridge(t, ScriptOptions{})
	_, err := page.Eval(testCtx(), "window.history.back(); window.history.back();")
	require.NoError(t, err)
	require.Equal(t, "https://a.test/", page.CurrentURL())

	bridge.OtherMouseUp(testCtx(), port.NativeMouseEvent{Type: port.MouseEventOtherUp, ButtonNumber: 4, LocationInWindow: port.Point{X: 300, Y: 300}})

	assert.Equal(t, []string{"back", "back", "forward"}, page.Navigations())
	assert.Equal(t, "https://b.test/", page.CurrentURL())
}

func TestMouseBridge_Page_PreventDefaultSuppressesNavigation(t *testing.T) {
	bridge, page, _ := newPageBridge(t, ScriptOptions{})
	_, err := page.Eval(testCtx(), `document.getElementById("link").addEventListener("mouseup", (e) => e.preventDefault());`)
	require.NoError(t, err)

	bridge.OtherMouseUp(testCtx(), port.NativeMouseEvent{Type: port.MouseEventOtherUp, ButtonNumber: 3, LocationInWindow: port.Point{X: 20, Y: 20}})

	events, err := page.DispatchedEvents()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].DefaultPrevented)
	assert.Empty(t, page.Navigations())
	assert.Equal(t, "https://c.test/", page.CurrentURL())
}

func TestMouseBridge_Page_ModifiersReachListener(t *testing.T) {
	bridge, page, _ := newPageBridge(t, ScriptOptions{})

	bridge.OtherMouseDown(testCtx(), port.NativeMouseEvent{
		Type:          port.MouseEventOtherDown,
		ButtonNumber:  4,
		ModifierFlags: port.ModifierShift | port.ModifierCommand,
	})

	events, err := page.DispatchedEvents()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].CtrlKey)
	assert.False(t, events[0].AltKey)
	assert.True(t, events[0].ShiftKey)
	assert.True(t, events[0].MetaKey)
	assert.Equal(t, "body", events[0].Target)
}

func TestMouseBridge_Page_MissingElement(t *testing.T) {
	ev := port.NativeMouseEvent{Type: port.MouseEventOtherUp, ButtonNumber: 3, LocationInWindow: port.Point{X: 5000, Y: 5000}}

	t.Run("unguarded script throws and nothing navigates", func(t *testing.T) {
		_, page, _ := newPageBridge(t, ScriptOptions{})
		desc, ok := DescribeEvent(ev, mouse.PhaseUp, nil, nil)
		require.True(t, ok)
		err := page.EvaluateScript(testCtx(), BuildEventScript(desc, ScriptOptions{}))
		assert.Error(t, err)
		assert.Empty(t, page.Navigations())
	})

	t.Run("guarded script is a no-op", func(t *testing.T) {
		bridge, page, _ := newPageBridge(t, ScriptOptions{GuardMissingElement: true})
		bridge.OtherMouseUp(testCtx(), ev)

		events, err := page.DispatchedEvents()
		require.NoError(t, err)
		assert.Empty(t, events)
		assert.Empty(t, page.Navigations())
	})
}

func TestMouseBridge_Page_ClosedPageDoesNotForward(t *testing.T) {
	bridge, page, fallback := newPageBridge(t, ScriptOptions{})
	page.Close()

	bridge.OtherMouseUp(testCtx(), port.NativeMouseEvent{Type: port.MouseEventOtherUp, ButtonNumber: 4})

	assert.Empty(t, fallback.Events())
}

func TestMouseBridge_Page_MiddleButtonPassesThrough(t *testing.T) {
	bridge, page, fallback := newPageBridge(t, ScriptOptions{})
	ev := port.NativeMouseEvent{Type: port.MouseEventOtherDown, ButtonNumber: 2}

	bridge.OtherMouseDown(testCtx(), ev)

	events, err := page.DispatchedEvents()
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, []port.NativeMouseEvent{ev}, fallback.Events())
}
