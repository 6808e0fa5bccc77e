package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/domain/repository"
	"github.com/textshop/inlay/internal/logging"
)

type zoomRepo struct {
	db *sql.DB
}

// NewZoomRepository creates a SQLite-backed zoom repository.
func NewZoomRepository(db *sql.DB) repository.ZoomRepository {
	return &zoomRepo{db: db}
}

func (r *zoomRepo) Get(ctx context.Context, domain string) (*entity.ZoomLevel, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT domain, zoom_factor, updated_at FROM zoom_levels WHERE domain = ?`, domain)

	level, err := scanZoom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return level, err
}

func (r *zoomRepo) Set(ctx context.Context, level *entity.ZoomLevel) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("domain", level.Domain).Float64("factor", level.ZoomFactor).Msg("persisting zoom level")

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO zoom_levels (domain, zoom_factor, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(domain) DO UPDATE SET
		   zoom_factor = excluded.zoom_factor,
		   updated_at  = excluded.updated_at`,
		level.Domain, level.ZoomFactor, level.UpdatedAt.UTC())
	return err
}

func (r *zoomRepo) Delete(ctx context.Context, domain string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM zoom_levels WHERE domain = ?`, domain)
	return err
}

func (r *zoomRepo) GetAll(ctx context.Context) ([]*entity.ZoomLevel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT domain, zoom_factor, updated_at FROM zoom_levels ORDER BY domain`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var levels []*entity.ZoomLevel
	for rows.Next() {
		level, err := scanZoom(rows)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, rows.Err()
}

func (r *zoomRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM zoom_levels`)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanZoom(row rowScanner) (*entity.ZoomLevel, error) {
	var level entity.ZoomLevel
	var updatedAt time.Time
	if err := row.Scan(&level.Domain, &level.ZoomFactor, &updatedAt); err != nil {
		return nil, err
	}
	level.UpdatedAt = updatedAt
	return &level, nil
}
