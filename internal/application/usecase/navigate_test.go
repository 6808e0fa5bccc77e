package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textshop/inlay/internal/bridge"
	"github.com/textshop/inlay/internal/domain/entity"
)

func newNavHarness(t *testing.T, repo *memZoomRepo) (*NavigateUseCase, *stubSurface, *entity.WidgetModel) {
	t.Helper()

	reg := bridge.NewRegistry()
	pool := newStubSurfacePool()

	surface, err := pool.Create(context.Background(), 800, 600)
	require.NoError(t, err)
	stub := surface.(*stubSurface)

	model := reg.CreateWidget(stub.id, 800, 600)
	uc := NewNavigateUseCase(reg, pool, immediateLoop{}, repo, entity.ZoomDefault)
	return uc, stub, model
}

func TestNavigateGoto(t *testing.T) {
	uc, surface, model := newNavHarness(t, nil)

	require.NoError(t, uc.Goto(context.Background(), model.ID, "https://example.org/page"))

	assert.Equal(t, "https://example.org/page", surface.uri)
	assert.Equal(t, "https://example.org/page", model.TargetURI)
}

func TestNavigateGotoLoadFailure(t *testing.T) {
	uc, surface, model := newNavHarness(t, nil)
	surface.loadErr = assert.AnError

	err := uc.Goto(context.Background(), model.ID, "https://example.org/")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNavigateUnknownWidget(t *testing.T) {
	uc, _, _ := newNavHarness(t, nil)

	assert.ErrorIs(t, uc.Goto(context.Background(), entity.WidgetID(42), "https://example.org/"), bridge.ErrWidgetNotFound)
	assert.ErrorIs(t, uc.Reload(context.Background(), entity.WidgetID(42)), bridge.ErrWidgetNotFound)
}

func TestNavigateHistoryMoves(t *testing.T) {
	uc, surface, model := newNavHarness(t, nil)

	require.NoError(t, uc.Back(context.Background(), model.ID))
	require.NoError(t, uc.Forward(context.Background(), model.ID))
	require.NoError(t, uc.Reload(context.Background(), model.ID))

	assert.Equal(t, []string{"GoBack", "GoForward", "Reload"}, surface.calls)
}

func TestOnNavigationFinishedAppliesPersistedZoom(t *testing.T) {
	repo := newMemZoomRepo()
	require.NoError(t, repo.Set(context.Background(), entity.NewZoomLevel("example.org", 1.5)))
	uc, surface, model := newNavHarness(t, repo)

	uc.OnNavigationFinished(context.Background(), model.ID, "https://example.org/docs")

	assert.InDelta(t, 1.5, surface.zoom, 1e-9)
}

func TestOnNavigationFinishedDefaultSkipsSurfaceCall(t *testing.T) {
	uc, surface, model := newNavHarness(t, newMemZoomRepo())

	uc.OnNavigationFinished(context.Background(), model.ID, "https://example.org/")

	assert.Empty(t, surface.calls, "matching zoom must not touch the surface")
}

func TestDomainOf(t *testing.T) {
	assert.Equal(t, "example.org", domainOf("https://Example.ORG/path?q=1"))
	assert.Equal(t, "example.org", domainOf("https://example.org:8443/"))
	assert.Equal(t, "", domainOf("about:blank"))
}
