// Package bridge implements the core mediation between the host editor and
// embedded rendering surfaces: navigation policy, focus arbitration, input
// forwarding, and marshaling of script results into editor values.
//
// The package is engine-agnostic; it talks to the rendering engine and the
// host toolkit only through the ports in internal/application/port, so it is
// testable without a live engine.
package bridge

import (
	"errors"
	"sync"

	"github.com/textshop/inlay/internal/domain/entity"
)

// Predefined registry errors.
var (
	ErrWidgetNotFound  = errors.New("widget not found")
	ErrViewNotFound    = errors.New("view not found")
	ErrWidgetDisplayed = errors.New("widget already has an associated view")
)

// Registry owns all live widget models and views, keyed by stable IDs.
// Cross-references between models and views are IDs resolved through the
// registry with an existence check, never raw pointers, so asynchronous
// teardown cannot leave either side dangling.
//
// Mutations happen only on the UI-owning thread; the mutex covers lookups
// from late-arriving completions and tests.
type Registry struct {
	mu      sync.RWMutex
	widgets map[entity.WidgetID]*entity.WidgetModel
	views   map[entity.ViewID]*entity.View

	widgetCounter entity.WidgetID
	viewCounter   entity.ViewID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		widgets: make(map[entity.WidgetID]*entity.WidgetModel),
		views:   make(map[entity.ViewID]*entity.View),
	}
}

// CreateWidget registers a new widget model backed by the given surface.
func (r *Registry) CreateWidget(surface entity.SurfaceID, width, height int) *entity.WidgetModel {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.widgetCounter++
	model := entity.NewWidgetModel(r.widgetCounter, surface, width, height)
	r.widgets[model.ID] = model
	return model
}

// Widget resolves a widget ID, reporting whether it is still live.
func (r *Registry) Widget(id entity.WidgetID) (*entity.WidgetModel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.widgets[id]
	return m, ok
}

// WidgetBySurface resolves the widget owning the given surface.
func (r *Registry) WidgetBySurface(id entity.SurfaceID) (*entity.WidgetModel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.widgets {
		if m.Surface == id {
			return m, true
		}
	}
	return nil, false
}

// Alive reports whether the widget ID still resolves. Async completions
// check this before touching editor-visible state.
func (r *Registry) Alive(id entity.WidgetID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.widgets[id]
	return ok
}

// CreateView attaches a new view to a widget model. At most one view may
// reference a widget at a time; displaying an already-displayed widget is an
// error, unlike other embeddable-widget kinds.
func (r *Registry) CreateView(widget entity.WidgetID) (*entity.View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	model, ok := r.widgets[widget]
	if !ok {
		return nil, ErrWidgetNotFound
	}
	if model.AssociatedView != 0 {
		return nil, ErrWidgetDisplayed
	}

	r.viewCounter++
	view := entity.NewView(r.viewCounter, widget)
	r.views[view.ID] = view
	model.AssociatedView = view.ID
	return view, nil
}

// View resolves a view ID.
func (r *Registry) View(id entity.ViewID) (*entity.View, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.views[id]
	return v, ok
}

// ViewForWidget resolves the view currently displaying a widget, if any.
func (r *Registry) ViewForWidget(widget entity.WidgetID) (*entity.View, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	model, ok := r.widgets[widget]
	if !ok || model.AssociatedView == 0 {
		return nil, false
	}
	v, ok := r.views[model.AssociatedView]
	return v, ok
}

// DestroyView removes a view. If it still references a live widget model,
// the model's association is cleared first; the model outlives the view.
func (r *Registry) DestroyView(id entity.ViewID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	view, ok := r.views[id]
	if !ok {
		return ErrViewNotFound
	}

	if model, ok := r.widgets[view.Model]; ok && model.AssociatedView == id {
		model.AssociatedView = 0
	}
	view.Detach()
	delete(r.views, id)
	return nil
}

// RemoveWidget removes a widget model. Any attached view is detached so
// neither side keeps a reference to the other.
func (r *Registry) RemoveWidget(id entity.WidgetID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	model, ok := r.widgets[id]
	if !ok {
		return ErrWidgetNotFound
	}

	if view, ok := r.views[model.AssociatedView]; ok {
		view.Detach()
		delete(r.views, view.ID)
	}
	model.AssociatedView = 0
	delete(r.widgets, id)
	return nil
}

// Widgets returns a snapshot of all live widget models.
func (r *Registry) Widgets() []*entity.WidgetModel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.WidgetModel, 0, len(r.widgets))
	for _, m := range r.widgets {
		out = append(out, m)
	}
	return out
}
