package usecase

import (
	"context"
	"sync"

	"github.com/textshop/inlay/internal/application/port"
	"github.com/textshop/inlay/internal/domain/entity"
)

// immediateLoop runs scheduled work inline; the tests stand in for the UI
// thread.
type immediateLoop struct{}

func (immediateLoop) Invoke(fn func())     { fn() }
func (immediateLoop) InvokeSync(fn func()) { fn() }

// stubSurface records every call by name so teardown ordering is
// observable.
type stubSurface struct {
	id     entity.SurfaceID
	uri    string
	title  string
	zoom   float64
	width  int
	height int

	calls     []string
	destroyed bool

	evalFn port.ScriptResultFunc

	loadErr error
}

func newStubSurface(id entity.SurfaceID, width, height int) *stubSurface {
	return &stubSurface{id: id, zoom: entity.ZoomDefault, width: width, height: height}
}

func (s *stubSurface) record(name string) { s.calls = append(s.calls, name) }

func (s *stubSurface) ID() entity.SurfaceID { return s.id }

func (s *stubSurface) LoadURI(_ context.Context, uri string) error {
	s.record("LoadURI")
	if s.loadErr != nil {
		return s.loadErr
	}
	s.uri = uri
	return nil
}

func (s *stubSurface) LoadBlank(context.Context) error {
	s.record("LoadBlank")
	s.uri = "about:blank"
	return nil
}

func (s *stubSurface) Reload(context.Context) error    { s.record("Reload"); return nil }
func (s *stubSurface) GoBack(context.Context) error    { s.record("GoBack"); return nil }
func (s *stubSurface) GoForward(context.Context) error { s.record("GoForward"); return nil }

func (s *stubSurface) URI() string             { return s.uri }
func (s *stubSurface) Title() string           { return s.title }
func (s *stubSurface) ContentSize() (int, int) { return s.width, s.height }

func (s *stubSurface) Resize(_ context.Context, width, height int) error {
	s.record("Resize")
	s.width = width
	s.height = height
	return nil
}

func (s *stubSurface) SetZoomLevel(_ context.Context, level float64) error {
	s.record("SetZoomLevel")
	s.zoom = level
	return nil
}

func (s *stubSurface) ZoomLevel() float64 { return s.zoom }

func (s *stubSurface) EvaluateScript(_ context.Context, _ string, fn port.ScriptResultFunc) {
	s.record("EvaluateScript")
	s.evalFn = fn
}

func (s *stubSurface) DetachMessageHandlers(context.Context) error {
	s.record("DetachMessageHandlers")
	return nil
}

func (s *stubSurface) Release(context.Context) {
	s.record("Release")
	s.destroyed = true
}

func (s *stubSurface) IsDestroyed() bool { return s.destroyed }

// stubSurfacePool is both factory and resolver.
type stubSurfacePool struct {
	next     entity.SurfaceID
	surfaces map[entity.SurfaceID]*stubSurface
}

func newStubSurfacePool() *stubSurfacePool {
	return &stubSurfacePool{surfaces: make(map[entity.SurfaceID]*stubSurface)}
}

func (p *stubSurfacePool) Create(_ context.Context, width, height int) (port.Surface, error) {
	p.next++
	s := newStubSurface(p.next, width, height)
	p.surfaces[s.id] = s
	return s, nil
}

func (p *stubSurfacePool) Surface(id entity.SurfaceID) (port.Surface, bool) {
	s, ok := p.surfaces[id]
	return s, ok
}

// memZoomRepo is an in-memory zoom repository.
type memZoomRepo struct {
	mu     sync.Mutex
	levels map[string]*entity.ZoomLevel
}

func newMemZoomRepo() *memZoomRepo {
	return &memZoomRepo{levels: make(map[string]*entity.ZoomLevel)}
}

func (r *memZoomRepo) Get(_ context.Context, domain string) (*entity.ZoomLevel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.levels[domain]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (r *memZoomRepo) Set(_ context.Context, level *entity.ZoomLevel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *level
	r.levels[level.Domain] = &cp
	return nil
}

func (r *memZoomRepo) Delete(_ context.Context, domain string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.levels, domain)
	return nil
}

func (r *memZoomRepo) GetAll(context.Context) ([]*entity.ZoomLevel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.ZoomLevel, 0, len(r.levels))
	for _, l := range r.levels {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memZoomRepo) DeleteAll(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.levels = make(map[string]*entity.ZoomLevel)
	return nil
}
