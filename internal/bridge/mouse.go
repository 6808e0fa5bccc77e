package bridge

import (
	"context"

	"github.com/textshop/inlay/internal/application/port"
	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/logging"
)

// MouseForwarder gives the host frame first claim on pointer events over an
// embedded view. The host sees every event before the page does, so editor
// bindings like window selection work even over active page content; the
// adapter then lets the event continue to the page for its default
// handling.
type MouseForwarder struct {
	reg  *Registry
	host port.HostFrame
}

// NewMouseForwarder creates a mouse forwarder.
func NewMouseForwarder(reg *Registry, host port.HostFrame) *MouseForwarder {
	return &MouseForwarder{reg: reg, host: host}
}

// ForwardButton sends a button event for the widget to the host frame. It
// reports whether the widget was still live; dead widgets drop the event.
// The return value never stops page delivery, the adapter propagates the
// event to the engine regardless.
func (f *MouseForwarder) ForwardButton(ctx context.Context, widget entity.WidgetID, ev port.MouseEvent) bool {
	if !f.reg.Alive(widget) {
		logging.FromContext(ctx).Debug().
			Uint64("widget_id", uint64(widget)).
			Msg("pointer event for destroyed widget, dropping")
		return false
	}
	f.host.ForwardMouse(ctx, widget, ev)
	return true
}
