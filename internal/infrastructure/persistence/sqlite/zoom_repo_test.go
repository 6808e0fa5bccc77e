package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textshop/inlay/internal/domain/entity"
)

func newTestRepo(t *testing.T) *zoomRepo {
	t.Helper()

	db, err := NewConnection(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	return NewZoomRepository(db).(*zoomRepo)
}

func TestZoomRepoGetMissing(t *testing.T) {
	repo := newTestRepo(t)

	level, err := repo.Get(context.Background(), "example.org")
	require.NoError(t, err)
	assert.Nil(t, level)
}

func TestZoomRepoSetAndGet(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(context.Background(), entity.NewZoomLevel("example.org", 1.5)))

	level, err := repo.Get(context.Background(), "example.org")
	require.NoError(t, err)
	require.NotNil(t, level)
	assert.Equal(t, "example.org", level.Domain)
	assert.InDelta(t, 1.5, level.ZoomFactor, 1e-9)
	assert.False(t, level.UpdatedAt.IsZero())
}

func TestZoomRepoUpsert(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(context.Background(), entity.NewZoomLevel("example.org", 1.5)))
	require.NoError(t, repo.Set(context.Background(), entity.NewZoomLevel("example.org", 0.75)))

	level, err := repo.Get(context.Background(), "example.org")
	require.NoError(t, err)
	require.NotNil(t, level)
	assert.InDelta(t, 0.75, level.ZoomFactor, 1e-9)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestZoomRepoDelete(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(context.Background(), entity.NewZoomLevel("example.org", 2.0)))
	require.NoError(t, repo.Delete(context.Background(), "example.org"))

	level, err := repo.Get(context.Background(), "example.org")
	require.NoError(t, err)
	assert.Nil(t, level)

	// Deleting a missing row is a no-op.
	assert.NoError(t, repo.Delete(context.Background(), "example.org"))
}

func TestZoomRepoGetAllSorted(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(context.Background(), entity.NewZoomLevel("b.org", 1.25)))
	require.NoError(t, repo.Set(context.Background(), entity.NewZoomLevel("a.org", 1.5)))

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a.org", all[0].Domain)
	assert.Equal(t, "b.org", all[1].Domain)
}

func TestZoomRepoDeleteAll(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(context.Background(), entity.NewZoomLevel("a.org", 1.5)))
	require.NoError(t, repo.Set(context.Background(), entity.NewZoomLevel("b.org", 2.0)))
	require.NoError(t, repo.DeleteAll(context.Background()))

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
