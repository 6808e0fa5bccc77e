package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textshop/inlay/internal/domain/entity"
)

func newDownloadRepo(t *testing.T) *downloadRepo {
	t.Helper()

	db, err := NewConnection(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	return NewDownloadRepository(db).(*downloadRepo)
}

func TestDownloadRepoSaveAssignsID(t *testing.T) {
	repo := newDownloadRepo(t)

	dl := entity.NewDownload("https://example.org/a.pdf", "a.pdf", "/tmp/a.pdf", "application/pdf")
	require.NoError(t, repo.Save(context.Background(), dl))

	assert.NotZero(t, dl.ID)
}

func TestDownloadRepoMarkCompleted(t *testing.T) {
	repo := newDownloadRepo(t)

	dl := entity.NewDownload("https://example.org/a.pdf", "a.pdf", "/tmp/a.pdf", "application/pdf")
	require.NoError(t, repo.Save(context.Background(), dl))
	require.NoError(t, repo.MarkCompleted(context.Background(), dl.ID))

	recent, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.True(t, recent[0].Completed)
}

func TestDownloadRepoRecentOrderAndLimit(t *testing.T) {
	repo := newDownloadRepo(t)

	for _, name := range []string{"a.bin", "b.bin", "c.bin"} {
		require.NoError(t, repo.Save(context.Background(),
			entity.NewDownload("https://example.org/"+name, name, "/tmp/"+name, "")))
	}

	recent, err := repo.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c.bin", recent[0].Filename)
	assert.Equal(t, "b.bin", recent[1].Filename)
}

func TestDownloadRepoPurge(t *testing.T) {
	repo := newDownloadRepo(t)

	require.NoError(t, repo.Save(context.Background(),
		entity.NewDownload("https://example.org/a.bin", "a.bin", "/tmp/a.bin", "")))
	require.NoError(t, repo.Purge(context.Background()))

	recent, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
