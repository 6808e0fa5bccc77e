package repository

import (
	"context"

	"github.com/textshop/inlay/internal/domain/entity"
)

// DownloadRepository defines operations for the download log.
type DownloadRepository interface {
	// Save inserts a download record and fills in its ID.
	Save(ctx context.Context, dl *entity.Download) error

	// MarkCompleted flags a download as finished.
	MarkCompleted(ctx context.Context, id int64) error

	// Recent returns the newest records, most recent first.
	Recent(ctx context.Context, limit int) ([]*entity.Download, error)

	// Purge removes every download record.
	Purge(ctx context.Context) error
}
