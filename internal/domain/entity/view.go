package entity

// View is a positioned, sized instance displaying a widget model within one
// host window region. The model outlives the view: killing the buffer or
// closing the window destroys the view, and the model's association is
// cleared.
type View struct {
	ID    ViewID
	Model WidgetID

	// Position in host-frame coordinates.
	X, Y int

	// Clip offsets relative to the view rectangle.
	Clip ClipRect

	Visible bool

	// HostFrame is an opaque handle to the host frame's native surface,
	// owned by the windowing layer.
	HostFrame uintptr
}

// ClipRect holds per-edge clip offsets for a view.
type ClipRect struct {
	Left, Right, Top, Bottom int
}

// NewView creates a view attached to the given widget model.
func NewView(id ViewID, model WidgetID) *View {
	return &View{
		ID:      id,
		Model:   model,
		Visible: true,
	}
}

// Detach severs the back-reference to the widget model. Called during view
// teardown once the model's side has been cleared.
func (v *View) Detach() {
	v.Model = 0
}

// Attached reports whether the view still references a widget model.
func (v *View) Attached() bool {
	return v.Model != 0
}
