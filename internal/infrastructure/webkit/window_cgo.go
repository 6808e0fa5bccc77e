//go:build webkit_cgo

package webkit

/*
#cgo pkg-config: gtk4
#include <stdlib.h>
#include <gtk/gtk.h>
*/
import "C"

import (
	"context"
	"unsafe"

	"github.com/textshop/inlay/internal/application/port"
	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/logging"
)

// Window is a GTK window hosting embedded surfaces. It implements
// port.HostFrame for the standalone host command; inside an editor the
// editor's own frame plays this role.
type Window struct {
	win *C.GtkWindow
	box *C.GtkWidget
}

// NewWindow creates and shows the host window. Must run on the UI thread.
func NewWindow(title string, width, height int) *Window {
	win := (*C.GtkWindow)(unsafe.Pointer(C.gtk_window_new()))

	ctitle := C.CString(title)
	defer C.free(unsafe.Pointer(ctitle))
	C.gtk_window_set_title(win, (*C.gchar)(ctitle))
	C.gtk_window_set_default_size(win, C.int(width), C.int(height))

	box := C.gtk_box_new(C.GTK_ORIENTATION_VERTICAL, 0)
	C.gtk_window_set_child(win, box)
	C.gtk_window_present(win)

	return &Window{win: win, box: box}
}

// Embed adds a surface's view widget to the window.
func (w *Window) Embed(s *Surface) {
	view := (*C.GtkWidget)(s.Widget())
	if view == nil {
		return
	}
	C.gtk_widget_set_vexpand(view, C.TRUE)
	C.gtk_widget_set_hexpand(view, C.TRUE)
	C.gtk_box_append((*C.GtkBox)(unsafe.Pointer(w.box)), view)
}

// Remove detaches a surface's view widget from the window.
func (w *Window) Remove(s *Surface) {
	view := (*C.GtkWidget)(s.Widget())
	if view == nil {
		return
	}
	C.gtk_box_remove((*C.GtkBox)(unsafe.Pointer(w.box)), view)
}

// Close destroys the window.
func (w *Window) Close() {
	C.gtk_window_destroy(w.win)
}

// GrabFocus moves keyboard focus from the embedded view to the window.
func (w *Window) GrabFocus(ctx context.Context, widget entity.WidgetID) {
	C.gtk_widget_grab_focus((*C.GtkWidget)(unsafe.Pointer(w.win)))
	logging.FromContext(ctx).Debug().Uint64("widget_id", uint64(widget)).Msg("focus returned to host window")
}

// ForwardKey logs a redirected key event. The standalone host has no
// editor command map to dispatch into.
func (w *Window) ForwardKey(ctx context.Context, widget entity.WidgetID, key port.KeyEvent) {
	logging.FromContext(ctx).Debug().
		Uint64("widget_id", uint64(widget)).
		Uint("keyval", key.Keyval).
		Uint("modifiers", key.Modifiers).
		Msg("key redirected to host")
}

// ForwardMouse logs a mirrored mouse event.
func (w *Window) ForwardMouse(ctx context.Context, widget entity.WidgetID, mouse port.MouseEvent) {
	logging.FromContext(ctx).Debug().
		Uint64("widget_id", uint64(widget)).
		Uint("button", mouse.Button).
		Bool("pressed", mouse.Pressed).
		Msg("mouse mirrored to host")
}
