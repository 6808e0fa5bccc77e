package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textshop/inlay/internal/bridge"
	"github.com/textshop/inlay/internal/domain/entity"
)

func newWidgetHarness(t *testing.T) (*WidgetUseCase, *bridge.Registry, *stubSurfacePool) {
	t.Helper()
	reg := bridge.NewRegistry()
	pool := newStubSurfacePool()
	uc := NewWidgetUseCase(reg, pool, pool, immediateLoop{})
	return uc, reg, pool
}

func TestWidgetCreateNavigatesImmediately(t *testing.T) {
	uc, reg, pool := newWidgetHarness(t)

	model, err := uc.Create(context.Background(), CreateInput{
		URI:    "https://example.org/",
		Width:  640,
		Height: 480,
	})

	require.NoError(t, err)
	assert.True(t, reg.Alive(model.ID))
	assert.Equal(t, "https://example.org/", model.TargetURI)

	surface := pool.surfaces[model.Surface]
	require.NotNil(t, surface)
	assert.Equal(t, []string{"LoadURI"}, surface.calls)
}

func TestWidgetCreateWithoutURI(t *testing.T) {
	uc, _, pool := newWidgetHarness(t)

	model, err := uc.Create(context.Background(), CreateInput{Width: 100, Height: 100})

	require.NoError(t, err)
	assert.Empty(t, model.TargetURI)
	assert.Empty(t, pool.surfaces[model.Surface].calls)
}

func TestWidgetDisplayOncePerWidget(t *testing.T) {
	uc, _, _ := newWidgetHarness(t)
	model, err := uc.Create(context.Background(), CreateInput{Width: 100, Height: 100})
	require.NoError(t, err)

	view, err := uc.Display(context.Background(), model.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ID, view.Model)

	_, err = uc.Display(context.Background(), model.ID)
	assert.ErrorIs(t, err, bridge.ErrWidgetDisplayed)

	require.NoError(t, uc.Undisplay(context.Background(), model.ID))
	_, err = uc.Display(context.Background(), model.ID)
	assert.NoError(t, err, "widget must be displayable again after undisplay")
}

func TestWidgetUndisplayWithoutView(t *testing.T) {
	uc, _, _ := newWidgetHarness(t)
	model, err := uc.Create(context.Background(), CreateInput{Width: 100, Height: 100})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Undisplay(context.Background(), model.ID), bridge.ErrViewNotFound)
}

func TestWidgetResize(t *testing.T) {
	uc, _, pool := newWidgetHarness(t)
	model, err := uc.Create(context.Background(), CreateInput{Width: 100, Height: 100})
	require.NoError(t, err)

	require.NoError(t, uc.Resize(context.Background(), model.ID, 1024, 768))
	assert.Equal(t, 1024, model.Width)
	assert.Equal(t, 768, model.Height)

	surface := pool.surfaces[model.Surface]
	assert.Equal(t, []string{"Resize"}, surface.calls, "resize must forward to the toolkit")
	width, height := surface.ContentSize()
	assert.Equal(t, 1024, width)
	assert.Equal(t, 768, height)

	assert.ErrorIs(t, uc.Resize(context.Background(), entity.WidgetID(99), 1, 1), bridge.ErrWidgetNotFound)
}

func TestWidgetSize(t *testing.T) {
	uc, _, pool := newWidgetHarness(t)
	model, err := uc.Create(context.Background(), CreateInput{Width: 640, Height: 480})
	require.NoError(t, err)

	width, height, err := uc.Size(context.Background(), model.ID)
	require.NoError(t, err)
	assert.Equal(t, 640, width)
	assert.Equal(t, 480, height)

	// The rendered size follows the toolkit, not the model.
	pool.surfaces[model.Surface].width = 800
	pool.surfaces[model.Surface].height = 600
	width, height, err = uc.Size(context.Background(), model.ID)
	require.NoError(t, err)
	assert.Equal(t, 800, width)
	assert.Equal(t, 600, height)

	_, _, err = uc.Size(context.Background(), entity.WidgetID(99))
	assert.ErrorIs(t, err, bridge.ErrWidgetNotFound)
}

func TestWidgetDestroyTeardownOrder(t *testing.T) {
	uc, reg, pool := newWidgetHarness(t)
	model, err := uc.Create(context.Background(), CreateInput{URI: "https://example.org/", Width: 100, Height: 100})
	require.NoError(t, err)
	_, err = uc.Display(context.Background(), model.ID)
	require.NoError(t, err)

	surface := pool.surfaces[model.Surface]
	surface.calls = nil

	require.NoError(t, uc.Destroy(context.Background(), model.ID))

	assert.Equal(t, []string{"DetachMessageHandlers", "LoadBlank", "Release"}, surface.calls,
		"teardown must detach handlers, blank the page, then release")
	assert.False(t, reg.Alive(model.ID))
	assert.True(t, surface.IsDestroyed())
}

func TestWidgetDestroyUnknown(t *testing.T) {
	uc, _, _ := newWidgetHarness(t)
	assert.ErrorIs(t, uc.Destroy(context.Background(), entity.WidgetID(7)), bridge.ErrWidgetNotFound)
}
