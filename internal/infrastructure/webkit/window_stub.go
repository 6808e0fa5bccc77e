//go:build !webkit_cgo

package webkit

import (
	"context"

	"github.com/textshop/inlay/internal/application/port"
	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/logging"
)

// Window is the headless host frame stand-in.
type Window struct{}

// NewWindow returns a window that only logs.
func NewWindow(string, int, int) *Window { return &Window{} }

func (w *Window) Embed(*Surface)  {}
func (w *Window) Remove(*Surface) {}
func (w *Window) Close()          {}

func (w *Window) GrabFocus(ctx context.Context, widget entity.WidgetID) {
	logging.FromContext(ctx).Debug().Uint64("widget_id", uint64(widget)).Msg("focus returned to host window")
}

func (w *Window) ForwardKey(ctx context.Context, widget entity.WidgetID, key port.KeyEvent) {
	logging.FromContext(ctx).Debug().
		Uint64("widget_id", uint64(widget)).
		Uint("keyval", key.Keyval).
		Msg("key redirected to host")
}

func (w *Window) ForwardMouse(ctx context.Context, widget entity.WidgetID, mouse port.MouseEvent) {
	logging.FromContext(ctx).Debug().
		Uint64("widget_id", uint64(widget)).
		Uint("button", mouse.Button).
		Msg("mouse mirrored to host")
}
