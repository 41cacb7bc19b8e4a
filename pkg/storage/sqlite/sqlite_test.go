package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kasuboski/tvsort/pkg/episode"
	"github.com/kasuboski/tvsort/pkg/quality"
	"github.com/kasuboski/tvsort/pkg/storage"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initSqlite(t *testing.T, ctx context.Context) storage.Storage {
	t.Helper()

	store, err := New(ctx, filepath.Join(t.TempDir(), "episodes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestNew_CreatesLatestSchema(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	latest, err := store.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(3), latest)

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, latest, version)
}

func TestNew_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "episodes.db")

	store, err := New(ctx, path)
	require.NoError(t, err)
	_, err = store.RegisterSeries(ctx, "The Office", "office", false)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = New(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	series, err := store.GetSeries(ctx, "office")
	require.NoError(t, err)
	assert.Equal(t, "The Office", series.Name)
}

func TestClose_Idempotent(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "episodes.db"))
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}

func TestSeriesStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	_, err := store.GetSeries(ctx, "office")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	id, err := store.RegisterSeries(ctx, "The Office", "office", false)
	require.NoError(t, err)
	assert.NotZero(t, id)

	again, err := store.RegisterSeries(ctx, "The Office (US)", "office", false)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	series, err := store.GetSeries(ctx, "office")
	require.NoError(t, err)
	assert.Equal(t, &model.Series{
		ID:            int32(id),
		Name:          "The Office",
		SanitizedName: "office",
		Daily:         false,
	}, series)

	_, err = store.RegisterSeries(ctx, "The Office", "office", true)
	require.NoError(t, err)
	series, err = store.GetSeries(ctx, "office")
	require.NoError(t, err)
	assert.True(t, series.Daily)

	_, err = store.RegisterSeries(ctx, "Archer", "archer", false)
	require.NoError(t, err)

	all, err := store.ListSeries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "archer", all[0].SanitizedName)
	assert.Equal(t, "office", all[1].SanitizedName)
}

func TestEpisodeStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	seriesID, err := store.RegisterSeries(ctx, "Show", "show", false)
	require.NoError(t, err)

	single := episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 2}
	daily := episode.DailyEpisode{Series: "Show", Year: 2024, Month: 3, Day: 9}

	t.Run("absent", func(t *testing.T) {
		record, err := store.LookupEpisode(ctx, seriesID, single)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, record)

		record, err = store.LookupEpisode(ctx, seriesID, daily)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, record)
	})

	t.Run("upsert then lookup", func(t *testing.T) {
		for _, member := range []episode.Member{single, daily} {
			require.NoError(t, store.UpsertEpisode(ctx, seriesID, member, quality.Medium))

			record, err := store.LookupEpisode(ctx, seriesID, member)
			require.NoError(t, err)
			assert.Equal(t, quality.Medium, record.Quality)
			assert.Equal(t, seriesID, record.SeriesID)
			assert.Equal(t, member, record.Member)
		}
	})

	t.Run("upsert is idempotent", func(t *testing.T) {
		require.NoError(t, store.UpsertEpisode(ctx, seriesID, single, quality.High))
		first, err := store.LookupEpisode(ctx, seriesID, single)
		require.NoError(t, err)

		require.NoError(t, store.UpsertEpisode(ctx, seriesID, single, quality.High))
		second, err := store.LookupEpisode(ctx, seriesID, single)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("upsert replaces tier", func(t *testing.T) {
		require.NoError(t, store.UpsertEpisode(ctx, seriesID, single, quality.Low))
		record, err := store.LookupEpisode(ctx, seriesID, single)
		require.NoError(t, err)
		assert.Equal(t, quality.Low, record.Quality)
	})

	t.Run("unknown tier", func(t *testing.T) {
		err := store.UpsertEpisode(ctx, seriesID, single, quality.Tier("ultra"))
		assert.ErrorIs(t, err, quality.ErrUnknownTier)
	})
}

func TestRecordPlacement(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	e1 := episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 1}
	e2 := episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 2}
	multi, err := episode.NewMultiEpisode("Show", "", e1, e2)
	require.NoError(t, err)

	err = store.RecordPlacement(ctx, storage.Placement{
		SeriesName:    "Show",
		SanitizedName: "show",
		Identity:      e1,
		Quality:       quality.High,
	})
	require.NoError(t, err)

	err = store.RecordPlacement(ctx, storage.Placement{
		SeriesName:    "Show",
		SanitizedName: "show",
		Identity:      multi,
		Quality:       quality.Low,
	})
	require.NoError(t, err)

	series, err := store.GetSeries(ctx, "show")
	require.NoError(t, err)
	assert.False(t, series.Daily)

	record, err := store.LookupEpisode(ctx, int64(series.ID), e1)
	require.NoError(t, err)
	assert.Equal(t, quality.High, record.Quality, "recorded tier is never lowered")

	record, err = store.LookupEpisode(ctx, int64(series.ID), e2)
	require.NoError(t, err)
	assert.Equal(t, quality.Low, record.Quality)

	err = store.RecordPlacement(ctx, storage.Placement{
		SeriesName:    "News",
		SanitizedName: "news",
		Identity:      episode.DailyEpisode{Series: "News", Year: 2024, Month: 1, Day: 5},
		Quality:       quality.Medium,
	})
	require.NoError(t, err)

	series, err = store.GetSeries(ctx, "news")
	require.NoError(t, err)
	assert.True(t, series.Daily)
}

func TestInProgressStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	entries, err := store.ListInProgress(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = store.GetInProgress(ctx, "Show.S01E01.720p")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	first := model.InProgress{Title: "Show.S01E01.720p", Category: "tv", Quality: string(quality.Medium)}
	second := model.InProgress{Title: "Another.S02E03.1080p", Category: "tv", Quality: string(quality.High)}
	require.NoError(t, store.AddInProgress(ctx, first))
	require.NoError(t, store.AddInProgress(ctx, second))

	got, err := store.GetInProgress(ctx, first.Title)
	require.NoError(t, err)
	assert.Equal(t, &first, got)

	first.Quality = string(quality.Low)
	require.NoError(t, store.AddInProgress(ctx, first))
	got, err = store.GetInProgress(ctx, first.Title)
	require.NoError(t, err)
	assert.Equal(t, string(quality.Low), got.Quality)

	entries, err = store.ListInProgress(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.Title, entries[0].Title)

	deleted, err := store.DeleteInProgress(ctx, first.Title, "missing")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = store.DeleteInProgress(ctx)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	entries, err = store.ListInProgress(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOpen_DoesNotMigrate(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "episodes.db"))
	require.NoError(t, err)
	defer store.Close()

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)
}
