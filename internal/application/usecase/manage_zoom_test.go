package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textshop/inlay/internal/bridge"
	"github.com/textshop/inlay/internal/domain/entity"
)

func newZoomHarness(t *testing.T) (*ZoomUseCase, *memZoomRepo, *stubSurface, *entity.WidgetModel) {
	t.Helper()

	reg := bridge.NewRegistry()
	pool := newStubSurfacePool()
	repo := newMemZoomRepo()

	surface, err := pool.Create(context.Background(), 800, 600)
	require.NoError(t, err)
	stub := surface.(*stubSurface)
	stub.uri = "https://docs.example.org/manual"

	model := reg.CreateWidget(stub.id, 800, 600)
	uc := NewZoomUseCase(reg, pool, immediateLoop{}, repo)
	return uc, repo, stub, model
}

func TestZoomAdjustPersistsPerDomain(t *testing.T) {
	uc, repo, surface, model := newZoomHarness(t)

	factor, err := uc.Adjust(context.Background(), model.ID, 0.25)

	require.NoError(t, err)
	assert.InDelta(t, 1.25, factor, 1e-9)
	assert.InDelta(t, 1.25, surface.zoom, 1e-9)

	saved, err := repo.Get(context.Background(), "docs.example.org")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.InDelta(t, 1.25, saved.ZoomFactor, 1e-9)
}

func TestZoomSetClampsToRange(t *testing.T) {
	uc, _, surface, model := newZoomHarness(t)

	factor, err := uc.Set(context.Background(), model.ID, 50.0)

	require.NoError(t, err)
	assert.Equal(t, entity.ZoomMax, factor)
	assert.Equal(t, entity.ZoomMax, surface.zoom)
}

func TestZoomResetDeletesPersistedEntry(t *testing.T) {
	uc, repo, surface, model := newZoomHarness(t)

	_, err := uc.Adjust(context.Background(), model.ID, 0.5)
	require.NoError(t, err)

	factor, err := uc.Reset(context.Background(), model.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ZoomDefault, factor)
	assert.Equal(t, entity.ZoomDefault, surface.zoom)

	saved, err := repo.Get(context.Background(), "docs.example.org")
	require.NoError(t, err)
	assert.Nil(t, saved, "default zoom must not keep a persisted row")
}

func TestZoomUnknownWidget(t *testing.T) {
	uc, _, _, _ := newZoomHarness(t)

	_, err := uc.Adjust(context.Background(), entity.WidgetID(99), 0.1)
	assert.ErrorIs(t, err, bridge.ErrWidgetNotFound)
}
