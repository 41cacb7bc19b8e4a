package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/tvsort/pkg/episode"
	"github.com/kasuboski/tvsort/pkg/logger"
	"github.com/kasuboski/tvsort/pkg/quality"
	"github.com/kasuboski/tvsort/pkg/storage"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite/schema/gen/table"
)

// UpsertEpisode stores the tier of a single or daily episode, replacing any tier already recorded
func (s *SQLite) UpsertEpisode(ctx context.Context, seriesID int64, member episode.Member, tier quality.Tier) error {
	stmt, err := upsertStatement(seriesID, member, tier)
	if err != nil {
		return err
	}

	_, err = s.handleStatement(ctx, stmt)
	return err
}

func upsertStatement(seriesID int64, member episode.Member, tier quality.Tier) (sqlite.Statement, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: %q", quality.ErrUnknownTier, tier)
	}

	switch m := member.(type) {
	case episode.SeasonEpisode:
		return table.SingleEpisode.
			INSERT(table.SingleEpisode.SeriesID, table.SingleEpisode.Season, table.SingleEpisode.Episode, table.SingleEpisode.Quality).
			VALUES(seriesID, m.Season, m.Episode, string(tier)).
			ON_CONFLICT(table.SingleEpisode.SeriesID, table.SingleEpisode.Season, table.SingleEpisode.Episode).
			DO_UPDATE(sqlite.SET(
				table.SingleEpisode.Quality.SET(table.SingleEpisode.EXCLUDED.Quality),
			)), nil
	case episode.DailyEpisode:
		return table.DailyEpisode.
			INSERT(table.DailyEpisode.SeriesID, table.DailyEpisode.Year, table.DailyEpisode.Month, table.DailyEpisode.Day, table.DailyEpisode.Quality).
			VALUES(seriesID, m.Year, m.Month, m.Day, string(tier)).
			ON_CONFLICT(table.DailyEpisode.SeriesID, table.DailyEpisode.Year, table.DailyEpisode.Month, table.DailyEpisode.Day).
			DO_UPDATE(sqlite.SET(
				table.DailyEpisode.Quality.SET(table.DailyEpisode.EXCLUDED.Quality),
			)), nil
	default:
		return nil, fmt.Errorf("unsupported episode type %T", member)
	}
}

// LookupEpisode returns the stored record for a single or daily episode
func (s *SQLite) LookupEpisode(ctx context.Context, seriesID int64, member episode.Member) (*storage.EpisodeRecord, error) {
	return lookupEpisode(ctx, s.db, seriesID, member)
}

func lookupEpisode(ctx context.Context, q dbtx, seriesID int64, member episode.Member) (*storage.EpisodeRecord, error) {
	var (
		record *storage.EpisodeRecord
		err    error
	)

	switch m := member.(type) {
	case episode.SeasonEpisode:
		stmt := table.SingleEpisode.
			SELECT(table.SingleEpisode.AllColumns).
			FROM(table.SingleEpisode).
			WHERE(
				table.SingleEpisode.SeriesID.EQ(sqlite.Int64(seriesID)).
					AND(table.SingleEpisode.Season.EQ(sqlite.Int32(int32(m.Season)))).
					AND(table.SingleEpisode.Episode.EQ(sqlite.Int32(int32(m.Episode)))),
			)

		var row model.SingleEpisode
		err = stmt.QueryContext(ctx, q, &row)
		if err == nil {
			record = &storage.EpisodeRecord{
				ID:       int64(row.ID),
				SeriesID: int64(row.SeriesID),
				Member:   m,
				Quality:  quality.Tier(row.Quality),
			}
		}
	case episode.DailyEpisode:
		stmt := table.DailyEpisode.
			SELECT(table.DailyEpisode.AllColumns).
			FROM(table.DailyEpisode).
			WHERE(
				table.DailyEpisode.SeriesID.EQ(sqlite.Int64(seriesID)).
					AND(table.DailyEpisode.Year.EQ(sqlite.Int32(int32(m.Year)))).
					AND(table.DailyEpisode.Month.EQ(sqlite.Int32(int32(m.Month)))).
					AND(table.DailyEpisode.Day.EQ(sqlite.Int32(int32(m.Day)))),
			)

		var row model.DailyEpisode
		err = stmt.QueryContext(ctx, q, &row)
		if err == nil {
			record = &storage.EpisodeRecord{
				ID:       int64(row.ID),
				SeriesID: int64(row.SeriesID),
				Member:   m,
				Quality:  quality.Tier(row.Quality),
			}
		}
	default:
		return nil, fmt.Errorf("unsupported episode type %T", member)
	}

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

// RecordPlacement registers the series and records every member of the placed identity
func (s *SQLite) RecordPlacement(ctx context.Context, placement storage.Placement) error {
	log := logger.FromCtx(ctx)

	if !placement.Quality.Valid() {
		return fmt.Errorf("%w: %q", quality.ErrUnknownTier, placement.Quality)
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		seriesID, err := registerSeries(ctx, tx, placement.SeriesName, placement.SanitizedName, episode.IsDaily(placement.Identity))
		if err != nil {
			return fmt.Errorf("failed to register series %q: %w", placement.SeriesName, err)
		}

		for _, member := range episode.Members(placement.Identity) {
			existing, err := lookupEpisode(ctx, tx, seriesID, member)
			switch {
			case errors.Is(err, storage.ErrNotFound):
			case err != nil:
				return err
			case quality.Compare(existing.Quality, placement.Quality) > 0:
				log.Debugw("keeping higher recorded quality", "episode", member.String(), "recorded", existing.Quality, "placed", placement.Quality)
				continue
			}

			stmt, err := upsertStatement(seriesID, member, placement.Quality)
			if err != nil {
				return err
			}
			if _, err := stmt.ExecContext(ctx, tx); err != nil {
				log.Debugw("failed to record episode", "query", stmt.DebugSql(), "error", err)
				return err
			}
		}

		return nil
	})
}
