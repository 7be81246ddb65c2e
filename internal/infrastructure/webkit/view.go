// Package webkit adapts native web engine callbacks to the application
// callback contracts: download lifecycle routing and synthetic mouse events
// for the back and forward buttons.
package webkit

import (
	"sync/atomic"

	"github.com/bnema/webshim/internal/application/port"
)

// View is the host-side wrapper around a native web view. It owns the
// download callback registry read by DownloadBridge.
//
// Native callbacks may still arrive after the host tears the view down;
// once Close has run every registry read returns nil.
type View struct {
	callbacks atomic.Pointer[port.DownloadCallbacks]
	closed    atomic.Bool
}

// NewView creates a view with the given download callbacks.
func NewView(callbacks port.DownloadCallbacks) *View {
	v := &View{}
	v.callbacks.Store(&callbacks)
	return v
}

// SetDownloadCallbacks replaces the callback registry.
func (v *View) SetDownloadCallbacks(callbacks port.DownloadCallbacks) error {
	if v.closed.Load() {
		return port.ErrViewClosed
	}
	v.callbacks.Store(&callbacks)
	return nil
}

// DownloadCallbacks implements port.DownloadCallbackSource.
func (v *View) DownloadCallbacks() *port.DownloadCallbacks {
	if v == nil || v.closed.Load() {
		return nil
	}
	return v.callbacks.Load()
}

// Close releases the callbacks. It is safe to call more than once.
func (v *View) Close() {
	v.closed.Store(true)
	v.callbacks.Store(nil)
}

// Closed reports whether Close has been called.
func (v *View) Closed() bool {
	return v.closed.Load()
}

var _ port.DownloadCallbackSource = (*View)(nil)
