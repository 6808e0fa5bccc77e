package port

import (
	"context"

	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/domain/value"
)

// ScriptCallback is the editor-registered completion routine for a script
// evaluation. It runs in the editor's own execution context, never on the
// UI thread.
type ScriptCallback func(value.Value)

// EditorEvent is the closed set of notifications delivered to the editor.
// Deliveries are queued for the editor's main execution context; the bridge
// never writes editor state in place.
type EditorEvent interface{ isEditorEvent() }

// LoadChanged signals navigation completion on a widget. Empty payload by
// contract; the editor re-queries URI/title through the command surface.
type LoadChanged struct {
	Widget entity.WidgetID
}

// DownloadRequested signals that a response could not be displayed inline.
type DownloadRequested struct {
	URL               string
	MIMEType          string
	SuggestedFilename string
}

// ScriptResult carries a marshaled evaluation result to its completion
// routine.
type ScriptResult struct {
	Callback ScriptCallback
	Value    value.Value
}

func (LoadChanged) isEditorEvent()       {}
func (DownloadRequested) isEditorEvent() {}
func (ScriptResult) isEditorEvent()      {}

// EditorBus queues events for the editor's main execution context.
// Publish must be safe to call from the UI thread and must not block on the
// editor.
type EditorBus interface {
	Publish(ctx context.Context, ev EditorEvent)
}

// HostFrame represents the editor frame hosting a widget's view. The bridge
// uses it to hand keyboard focus and input events back to the editor.
type HostFrame interface {
	// GrabFocus transfers keyboard focus from the embedded view to the host
	// frame displaying the widget.
	GrabFocus(ctx context.Context, widget entity.WidgetID)

	// ForwardKey redirects a key event to the host frame's input handling.
	ForwardKey(ctx context.Context, widget entity.WidgetID, key KeyEvent)

	// ForwardMouse mirrors a mouse press/release to the host frame so
	// window-selection semantics stay consistent with where the user
	// clicked.
	ForwardMouse(ctx context.Context, widget entity.WidgetID, mouse MouseEvent)
}

// KeyEvent is a toolkit-independent key press description.
type KeyEvent struct {
	Keyval    uint
	Keycode   uint
	Modifiers uint
}

// MouseEvent is a toolkit-independent button press/release description.
type MouseEvent struct {
	Button  uint
	Pressed bool
	X, Y    float64
}
