package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/domain/repository"
)

type downloadRepo struct {
	db *sql.DB
}

// NewDownloadRepository creates a SQLite-backed download log.
func NewDownloadRepository(db *sql.DB) repository.DownloadRepository {
	return &downloadRepo{db: db}
}

func (r *downloadRepo) Save(ctx context.Context, dl *entity.Download) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO downloads (url, filename, destination, mime_type, completed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		dl.URL, dl.Filename, dl.Destination, dl.MIMEType, dl.Completed, dl.CreatedAt.UTC())
	if err != nil {
		return err
	}
	dl.ID, err = res.LastInsertId()
	return err
}

func (r *downloadRepo) MarkCompleted(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE downloads SET completed = 1 WHERE id = ?`, id)
	return err
}

func (r *downloadRepo) Recent(ctx context.Context, limit int) ([]*entity.Download, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, url, filename, destination, mime_type, completed, created_at
		 FROM downloads ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*entity.Download
	for rows.Next() {
		var dl entity.Download
		var createdAt time.Time
		if err := rows.Scan(&dl.ID, &dl.URL, &dl.Filename, &dl.Destination, &dl.MIMEType, &dl.Completed, &createdAt); err != nil {
			return nil, err
		}
		dl.CreatedAt = createdAt
		out = append(out, &dl)
	}
	return out, rows.Err()
}

func (r *downloadRepo) Purge(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM downloads`)
	return err
}
