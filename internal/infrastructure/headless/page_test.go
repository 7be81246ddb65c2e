package headless

import (
	"context"
	"testing"

	"github.com/bnema/webshim/internal/application/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPage(t *testing.T) *Page {
	t.Helper()
	page, err := NewPage(PageOptions{History: []string{"https://a.test/", "https://b.test/"}})
	require.NoError(t, err)
	require.NoError(t, page.AddElement(Element{ID: "body", X: 0, Y: 0, Width: 800, Height: 600}))
	require.NoError(t, page.AddElement(Element{ID: "button", X: 10, Y: 10, Width: 50, Height: 20}))
	return page
}

func TestPage_ElementFromPoint(t *testing.T) {
	ctx := context.Background()
	page := newTestPage(t)

	v, err := page.Eval(ctx, `document.elementFromPoint(15, 15).id`)
	require.NoError(t, err)
	assert.Equal(t, "button", v)

	v, err = page.Eval(ctx, `document.elementFromPoint(100, 100).id`)
	require.NoError(t, err)
	assert.Equal(t, "body", v)

	v, err = page.Eval(ctx, `document.elementFromPoint(900, 900) === null`)
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestPage_DispatchRecordsEvent(t *testing.T) {
	ctx := context.Background()
	page := newTestPage(t)

	err := page.EvaluateScript(ctx, `
		const el = document.getElementById('button');
		el.addEventListener('mouseup', (e) => e.preventDefault());
		el.dispatchEvent(new MouseEvent('mouseup', { button: 3, cancelable: true, ctrlKey: true }));
	`)
	require.NoError(t, err)

	events, err := page.DispatchedEvents()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "button", events[0].Target)
	assert.Equal(t, "mouseup", events[0].Type)
	assert.Equal(t, 3, events[0].Button)
	assert.True(t, events[0].CtrlKey)
	assert.True(t, events[0].DefaultPrevented)
}

func TestPage_PreventDefaultRequiresCancelable(t *testing.T) {
	ctx := context.Background()
	page := newTestPage(t)

	v, err := page.Eval(ctx, `(() => { const e = new MouseEvent('mouseup', {}); e.preventDefault(); return e.defaultPrevented; })()`)
	require.NoError(t, err)
	assert.Equal(t, false, v)
}

func TestPage_History(t *testing.T) {
	ctx := context.Background()
	page := newTestPage(t)
	assert.Equal(t, "https://b.test/", page.CurrentURL())

	require.NoError(t, page.EvaluateScript(ctx, `window.history.back()`))
	assert.Equal(t, "https://a.test/", page.CurrentURL())

	require.NoError(t, page.EvaluateScript(ctx, `window.history.back()`))
	assert.Equal(t, "https://a.test/", page.CurrentURL())

	require.NoError(t, page.EvaluateScript(ctx, `window.history.forward()`))
	assert.Equal(t, "https://b.test/", page.CurrentURL())

	assert.Equal(t, []string{"back", "back", "forward"}, page.Navigations())
}

func TestPage_ScriptErrorIsReturned(t *testing.T) {
	page := newTestPage(t)

	err := page.EvaluateScript(context.Background(), `document.elementFromPoint(900, 900).dispatchEvent({})`)
	assert.Error(t, err)
}

func TestPage_Closed(t *testing.T) {
	page := newTestPage(t)
	page.Close()

	err := page.EvaluateScript(context.Background(), `1`)
	assert.ErrorIs(t, err, port.ErrNoScriptContext)
	assert.ErrorIs(t, page.AddElement(Element{ID: "x"}), port.ErrViewClosed)
}

func TestPage_CancelledContext(t *testing.T) {
	page := newTestPage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := page.EvaluateScript(ctx, `1`)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPage_WindowOrigin(t *testing.T) {
	page, err := NewPage(PageOptions{ScreenX: 100, ScreenY: 50})
	require.NoError(t, err)

	v, err := page.Eval(context.Background(), `window.screenX + ',' + window.screenY`)
	require.NoError(t, err)
	assert.Equal(t, "100,50", v)
	assert.Equal(t, "about:blank", page.CurrentURL())
}

func TestPage_ForwardList(t *testing.T) {
	page, err := NewPage(PageOptions{
		History: []string{"https://a.test/"},
		Forward: []string{"https://b.test/", "https://c.test/"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://a.test/", page.CurrentURL())

	require.NoError(t, page.EvaluateScript(context.Background(), `window.history.forward()`))
	assert.Equal(t, "https://b.test/", page.CurrentURL())
}
