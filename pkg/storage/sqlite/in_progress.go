package sqlite

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/tvsort/pkg/storage"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite/schema/gen/table"
)

// AddInProgress records a download that has been handed to the downloader. Adding a title twice
// replaces its category and quality.
func (s *SQLite) AddInProgress(ctx context.Context, entry model.InProgress) error {
	stmt := table.InProgress.
		INSERT(table.InProgress.AllColumns).
		MODEL(entry).
		ON_CONFLICT(table.InProgress.Title).
		DO_UPDATE(sqlite.SET(
			table.InProgress.Category.SET(table.InProgress.EXCLUDED.Category),
			table.InProgress.Quality.SET(table.InProgress.EXCLUDED.Quality),
		))

	_, err := s.handleStatement(ctx, stmt)
	return err
}

func (s *SQLite) GetInProgress(ctx context.Context, title string) (*model.InProgress, error) {
	stmt := table.InProgress.
		SELECT(table.InProgress.AllColumns).
		FROM(table.InProgress).
		WHERE(table.InProgress.Title.EQ(sqlite.String(title)))

	var entry model.InProgress
	err := stmt.QueryContext(ctx, s.db, &entry)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return &entry, nil
}

// DeleteInProgress removes the given titles and returns how many were present
func (s *SQLite) DeleteInProgress(ctx context.Context, titles ...string) (int64, error) {
	if len(titles) == 0 {
		return 0, nil
	}

	in := make([]sqlite.Expression, len(titles))
	for i, t := range titles {
		in[i] = sqlite.String(t)
	}

	stmt := table.InProgress.
		DELETE().
		WHERE(table.InProgress.Title.IN(in...))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (s *SQLite) ListInProgress(ctx context.Context) ([]*model.InProgress, error) {
	stmt := table.InProgress.
		SELECT(table.InProgress.AllColumns).
		FROM(table.InProgress).
		ORDER_BY(table.InProgress.Title.ASC())

	entries := make([]*model.InProgress, 0)
	err := stmt.QueryContext(ctx, s.db, &entries)
	return entries, err
}
