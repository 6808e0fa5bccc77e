// Package entity contains domain entities representing core bridge concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "time"

// WidgetID uniquely identifies a widget model for the lifetime of the process.
// The editor's extension language holds this as its opaque handle.
type WidgetID uint64

// ViewID uniquely identifies an on-screen view instance.
type ViewID uint64

// SurfaceID identifies the rendering surface backing a widget model.
// The surface is created with the model and destroyed with it; views come
// and go independently.
type SurfaceID uint64

// WidgetModel represents one embedded web view's identity and backing
// resources, as seen from the editor side.
//
// A model has at most one associated view at a time. The association is kept
// as an ID, never a pointer, so a stale reference resolves to "gone" instead
// of dangling (looked up through the bridge registry).
type WidgetModel struct {
	ID      WidgetID
	Surface SurfaceID

	Width  int // pixels
	Height int // pixels

	// TargetURI is the URI the editor last asked this widget to display.
	TargetURI string

	// AssociatedView is the currently attached view, or 0 if the widget is
	// not displayed anywhere.
	AssociatedView ViewID

	CreatedAt time.Time
}

// NewWidgetModel creates a widget model with the given dimensions.
func NewWidgetModel(id WidgetID, surface SurfaceID, width, height int) *WidgetModel {
	return &WidgetModel{
		ID:        id,
		Surface:   surface,
		Width:     width,
		Height:    height,
		CreatedAt: time.Now(),
	}
}

// Displayed reports whether the model currently has a view on screen.
func (m *WidgetModel) Displayed() bool {
	return m.AssociatedView != 0
}

// Resize updates the model's requested dimensions.
func (m *WidgetModel) Resize(width, height int) {
	if width > 0 {
		m.Width = width
	}
	if height > 0 {
		m.Height = height
	}
}
