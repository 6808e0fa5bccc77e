package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textshop/inlay/internal/domain/entity"
)

func TestRegistryCreateWidget(t *testing.T) {
	r := NewRegistry()

	m := r.CreateWidget(entity.SurfaceID(1), 640, 480)

	require.NotNil(t, m)
	assert.Equal(t, entity.WidgetID(1), m.ID)
	assert.Equal(t, 640, m.Width)
	assert.Equal(t, 480, m.Height)
	assert.False(t, m.Displayed())
	assert.True(t, r.Alive(m.ID))

	got, ok := r.WidgetBySurface(entity.SurfaceID(1))
	require.True(t, ok)
	assert.Same(t, m, got)
}

func TestRegistrySingleViewPerWidget(t *testing.T) {
	r := NewRegistry()
	m := r.CreateWidget(entity.SurfaceID(1), 640, 480)

	v, err := r.CreateView(m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, v.Model)
	assert.Equal(t, v.ID, m.AssociatedView)
	assert.True(t, m.Displayed())

	_, err = r.CreateView(m.ID)
	assert.ErrorIs(t, err, ErrWidgetDisplayed)
}

func TestRegistryCreateViewUnknownWidget(t *testing.T) {
	r := NewRegistry()

	_, err := r.CreateView(entity.WidgetID(5))
	assert.ErrorIs(t, err, ErrWidgetNotFound)
}

func TestRegistryDestroyViewClearsAssociation(t *testing.T) {
	r := NewRegistry()
	m := r.CreateWidget(entity.SurfaceID(1), 640, 480)
	v, err := r.CreateView(m.ID)
	require.NoError(t, err)

	require.NoError(t, r.DestroyView(v.ID))

	assert.False(t, m.Displayed(), "model must drop the view reference")
	_, ok := r.View(v.ID)
	assert.False(t, ok)

	// The widget can be displayed again after its view is gone.
	_, err = r.CreateView(m.ID)
	assert.NoError(t, err)
}

func TestRegistryDestroyViewUnknown(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.DestroyView(entity.ViewID(3)), ErrViewNotFound)
}

func TestRegistryRemoveWidgetDetachesView(t *testing.T) {
	r := NewRegistry()
	m := r.CreateWidget(entity.SurfaceID(1), 640, 480)
	v, err := r.CreateView(m.ID)
	require.NoError(t, err)

	require.NoError(t, r.RemoveWidget(m.ID))

	assert.False(t, r.Alive(m.ID))
	_, ok := r.View(v.ID)
	assert.False(t, ok, "view must not outlive its widget")
	assert.False(t, v.Attached())
}

func TestRegistryViewForWidget(t *testing.T) {
	r := NewRegistry()
	m := r.CreateWidget(entity.SurfaceID(1), 640, 480)

	_, ok := r.ViewForWidget(m.ID)
	assert.False(t, ok)

	v, err := r.CreateView(m.ID)
	require.NoError(t, err)

	got, ok := r.ViewForWidget(m.ID)
	require.True(t, ok)
	assert.Same(t, v, got)
}

func TestRegistryWidgetsSnapshot(t *testing.T) {
	r := NewRegistry()
	r.CreateWidget(entity.SurfaceID(1), 100, 100)
	r.CreateWidget(entity.SurfaceID(2), 200, 200)

	assert.Len(t, r.Widgets(), 2)
}
