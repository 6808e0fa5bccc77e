// Package webkit implements the rendering-engine ports over WebKitGTK 6.
//
// Files guarded by the webkit_cgo build tag talk to the native library;
// without the tag a headless stand-in is compiled so the rest of the module
// builds and tests on machines without WebKitGTK.
package webkit

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/textshop/inlay/internal/application/port"
	"github.com/textshop/inlay/internal/bridge"
	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/logging"
)

// ErrSurfaceDestroyed is returned for operations on a released surface.
var ErrSurfaceDestroyed = errors.New("surface has been destroyed")

// EventHandler receives engine events; in practice this is
// Bridge.HandleEvent. Called on the UI thread.
type EventHandler func(ctx context.Context, ev bridge.Event) bridge.Decision

// KeyFunc receives native key presses over a surface, before the page's
// default handling.
type KeyFunc func(ctx context.Context, surface entity.SurfaceID, key port.KeyEvent)

// MouseFunc receives native button presses and releases over a surface.
type MouseFunc func(ctx context.Context, surface entity.SurfaceID, mouse port.MouseEvent)

// Pool creates and tracks surfaces. It implements port.SurfaceFactory and
// port.SurfaceResolver.
type Pool struct {
	ctx context.Context

	mu       sync.RWMutex
	surfaces map[entity.SurfaceID]*Surface
	counter  uint64

	handler EventHandler
	onKey   KeyFunc
	onMouse MouseFunc
}

// NewPool creates a surface pool. ctx carries the logger used by engine
// callbacks, which have no caller-provided context.
func NewPool(ctx context.Context) *Pool {
	return &Pool{
		ctx:      ctx,
		surfaces: make(map[entity.SurfaceID]*Surface),
	}
}

// SetEventHandler installs the bridge dispatch entry point. Must be set
// before the first Create.
func (p *Pool) SetEventHandler(h EventHandler) { p.handler = h }

// SetInputHandlers installs the key and mouse hooks.
func (p *Pool) SetInputHandlers(key KeyFunc, mouse MouseFunc) {
	p.onKey = key
	p.onMouse = mouse
}

// Create builds a new surface with the page script installed and its
// message channel registered. Must run on the UI thread.
func (p *Pool) Create(ctx context.Context, width, height int) (port.Surface, error) {
	p.mu.Lock()
	p.counter++
	id := entity.SurfaceID(p.counter)
	p.mu.Unlock()

	s := &Surface{id: id, pool: p, zoom: entity.ZoomDefault}
	if err := s.nativeInit(width, height); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.surfaces[id] = s
	p.mu.Unlock()

	logging.FromContext(ctx).Debug().Uint64("surface", uint64(id)).Msg("surface created")
	return s, nil
}

// Surface resolves a live surface.
func (p *Pool) Surface(id entity.SurfaceID) (port.Surface, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, ok := p.surfaces[id]
	return s, ok
}

func (p *Pool) remove(id entity.SurfaceID) {
	p.mu.Lock()
	delete(p.surfaces, id)
	p.mu.Unlock()
}

// dispatch feeds an engine event to the bridge. Engine callbacks land here
// on the UI thread.
func (p *Pool) dispatch(ev bridge.Event) bridge.Decision {
	if p.handler == nil {
		return bridge.DecisionNone
	}
	return p.handler(p.ctx, ev)
}

func (p *Pool) dispatchKey(id entity.SurfaceID, key port.KeyEvent) {
	if p.onKey != nil {
		p.onKey(p.ctx, id, key)
	}
}

func (p *Pool) dispatchMouse(id entity.SurfaceID, mouse port.MouseEvent) {
	if p.onMouse != nil {
		p.onMouse(p.ctx, id, mouse)
	}
}

// Surface is one WebKit web view. The native half lives in the build-tagged
// files; this half keeps identity and destruction state.
type Surface struct {
	id        entity.SurfaceID
	pool      *Pool
	destroyed atomic.Bool
	zoom      float64

	native nativeSurface
}

// ID returns the surface identifier.
func (s *Surface) ID() entity.SurfaceID { return s.id }

// IsDestroyed reports whether Release has run.
func (s *Surface) IsDestroyed() bool { return s.destroyed.Load() }

// LoadURI starts a navigation.
func (s *Surface) LoadURI(ctx context.Context, uri string) error {
	if s.destroyed.Load() {
		return ErrSurfaceDestroyed
	}
	return s.nativeLoadURI(uri)
}

// LoadBlank navigates to about:blank, stopping any media playback.
func (s *Surface) LoadBlank(ctx context.Context) error {
	return s.LoadURI(ctx, "about:blank")
}

// Reload reloads the current page.
func (s *Surface) Reload(ctx context.Context) error {
	if s.destroyed.Load() {
		return ErrSurfaceDestroyed
	}
	return s.nativeReload()
}

// GoBack moves back in session history.
func (s *Surface) GoBack(ctx context.Context) error {
	if s.destroyed.Load() {
		return ErrSurfaceDestroyed
	}
	return s.nativeGoBack()
}

// GoForward moves forward in session history.
func (s *Surface) GoForward(ctx context.Context) error {
	if s.destroyed.Load() {
		return ErrSurfaceDestroyed
	}
	return s.nativeGoForward()
}

// URI returns the current page URI.
func (s *Surface) URI() string {
	if s.destroyed.Load() {
		return ""
	}
	return s.nativeURI()
}

// Title returns the current page title.
func (s *Surface) Title() string {
	if s.destroyed.Load() {
		return ""
	}
	return s.nativeTitle()
}

// ContentSize returns the view's allocated size.
func (s *Surface) ContentSize() (int, int) {
	if s.destroyed.Load() {
		return 0, 0
	}
	return s.nativeContentSize()
}

// Resize requests a new size for the view widget.
func (s *Surface) Resize(ctx context.Context, width, height int) error {
	if s.destroyed.Load() {
		return ErrSurfaceDestroyed
	}
	return s.nativeResize(width, height)
}

// SetZoomLevel applies a zoom factor.
func (s *Surface) SetZoomLevel(ctx context.Context, level float64) error {
	if s.destroyed.Load() {
		return ErrSurfaceDestroyed
	}
	s.zoom = level
	return s.nativeSetZoom(level)
}

// ZoomLevel returns the applied zoom factor.
func (s *Surface) ZoomLevel() float64 { return s.zoom }

// EvaluateScript runs script in the page; fn fires on the UI thread with
// the JSON-serialized result.
func (s *Surface) EvaluateScript(ctx context.Context, script string, fn port.ScriptResultFunc) {
	if s.destroyed.Load() {
		fn(nil, ErrSurfaceDestroyed)
		return
	}
	s.nativeEvaluate(script, fn)
}

// DetachMessageHandlers unregisters the script message channel. First step
// of teardown; after it no page message reaches the bridge.
func (s *Surface) DetachMessageHandlers(ctx context.Context) error {
	if s.destroyed.Load() {
		return ErrSurfaceDestroyed
	}
	return s.nativeDetachHandlers()
}

// Release frees the native view. The surface drops out of the pool and all
// later calls fail with ErrSurfaceDestroyed.
func (s *Surface) Release(ctx context.Context) {
	if s.destroyed.Swap(true) {
		return
	}
	s.nativeRelease()
	s.pool.remove(s.id)
	logging.FromContext(ctx).Debug().Uint64("surface", uint64(s.id)).Msg("surface released")
}
