package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/tvsort/pkg/logger"
	"github.com/kasuboski/tvsort/pkg/storage"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite/schema/gen/table"
)

// RegisterSeries returns the id of the series with the given sanitized name, creating it when absent.
// Registering an existing series as daily marks it daily.
func (s *SQLite) RegisterSeries(ctx context.Context, name, sanitizedName string, daily bool) (int64, error) {
	var id int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = registerSeries(ctx, tx, name, sanitizedName, daily)
		return err
	})
	return id, err
}

func registerSeries(ctx context.Context, q dbtx, name, sanitizedName string, daily bool) (int64, error) {
	log := logger.FromCtx(ctx)

	insert := table.Series.
		INSERT(table.Series.Name, table.Series.SanitizedName, table.Series.Daily).
		VALUES(name, sanitizedName, daily).
		ON_CONFLICT(table.Series.SanitizedName).
		DO_NOTHING()

	if _, err := insert.ExecContext(ctx, q); err != nil {
		log.Debugw("failed to register series", "query", insert.DebugSql(), "error", err)
		return 0, err
	}

	series, err := getSeries(ctx, q, sanitizedName)
	if err != nil {
		return 0, err
	}

	if daily && !series.Daily {
		update := table.Series.
			UPDATE(table.Series.Daily).
			SET(true).
			WHERE(table.Series.ID.EQ(sqlite.Int32(series.ID)))
		if _, err := update.ExecContext(ctx, q); err != nil {
			return 0, err
		}
	}

	return int64(series.ID), nil
}

// GetSeries looks up a series by its sanitized name
func (s *SQLite) GetSeries(ctx context.Context, sanitizedName string) (*model.Series, error) {
	return getSeries(ctx, s.db, sanitizedName)
}

func getSeries(ctx context.Context, q dbtx, sanitizedName string) (*model.Series, error) {
	stmt := table.Series.
		SELECT(table.Series.AllColumns).
		FROM(table.Series).
		WHERE(table.Series.SanitizedName.EQ(sqlite.String(sanitizedName)))

	var series model.Series
	err := stmt.QueryContext(ctx, q, &series)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return &series, nil
}

// ListSeries lists every registered series ordered by name
func (s *SQLite) ListSeries(ctx context.Context) ([]*model.Series, error) {
	stmt := table.Series.
		SELECT(table.Series.AllColumns).
		FROM(table.Series).
		ORDER_BY(table.Series.SanitizedName.ASC())

	series := make([]*model.Series, 0)
	err := stmt.QueryContext(ctx, s.db, &series)
	return series, err
}
