package manager

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/kasuboski/tvsort/pkg/episode"
	"github.com/kasuboski/tvsort/pkg/format"
	mio "github.com/kasuboski/tvsort/pkg/io"
	ioMocks "github.com/kasuboski/tvsort/pkg/io/mocks"
	"github.com/kasuboski/tvsort/pkg/quality"
	"github.com/kasuboski/tvsort/pkg/storage"
	"github.com/kasuboski/tvsort/pkg/storage/mocks"
	tvSqlite "github.com/kasuboski/tvsort/pkg/storage/sqlite"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestManager(root string, store storage.Storage, fileIO mio.FileIO, cfg Config) *MediaManager {
	if fileIO == nil {
		fileIO = &mio.MediaFileSystem{}
	}
	return New(newTestLibrary(root), store, format.New(format.DefaultTemplates()), fileIO, cfg,
		WithClock(func() time.Time { return fixedTime }),
		WithIDGenerator(func() string { return "0123456789abcdef" }),
	)
}

// download creates a download directory holding an episode file and the given extras
func download(t *testing.T, name, episodeFile string, extras ...string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, episodeFile), []byte("video data that is larger than any extra"), 0o644))
	tree(t, dir, extras...)
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestMediaManager_Place_NewSeries(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	store, err := tvSqlite.New(ctx, filepath.Join(t.TempDir(), "episodes.db"))
	require.NoError(t, err)
	defer store.Close()

	dir := download(t, "Show.S01E03.1080p", "show.s01e03.mkv", "show.nfo")
	m := newTestManager(root, store, nil, Config{})

	id := episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 3}
	result, err := m.Place(ctx, dir, id, quality.High)
	require.NoError(t, err)

	want := filepath.Join(root, "Show", "Season 1", "Show - s01e03.mkv")
	assert.Equal(t, want, result.Path)
	assert.FileExists(t, want)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Trashed)
	assert.Equal(t, StageCleaned, result.Stage)
	assert.NoDirExists(t, dir)

	series, err := store.GetSeries(ctx, "show")
	require.NoError(t, err)
	record, err := store.LookupEpisode(ctx, int64(series.ID), id)
	require.NoError(t, err)
	assert.Equal(t, quality.High, record.Quality)
}

func TestMediaManager_Place_DuplicateNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	tree(t, root, "Show/Season 1/Show - s01e01.mkv")
	existing := filepath.Join(root, "Show", "Season 1", "Show - s01e01.mkv")
	original := readFile(t, existing)

	m := newTestManager(root, nil, nil, Config{})

	var paths []string
	for _, name := range []string{"first", "second"} {
		dir := download(t, name, "show.s01e01.mkv")
		result, err := m.Place(ctx, dir, ep(1), quality.Medium)
		require.NoError(t, err)

		assert.NotEqual(t, existing, result.Path)
		assert.FileExists(t, result.Path)
		require.NotEmpty(t, result.Warnings)
		assert.Equal(t, WarningDuplicate, result.Warnings[0].Kind)
		paths = append(paths, result.Path)
	}

	assert.Equal(t, original, readFile(t, existing))
	assert.Equal(t, []string{
		filepath.Join(root, "Show", "Season 1", "Show - s01e01.202403092105.mkv"),
		filepath.Join(root, "Show", "Season 1", "Show - s01e01.202403092105-2.mkv"),
	}, paths)
}

func TestMediaManager_Place_RedundantArchive(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	tree(t, root, "Show/Season 1/Show - s01e01e02.mkv")
	archive := filepath.Join(root, "Show", "Season 1", "Show - s01e01e02.mkv")

	m := newTestManager(root, nil, nil, Config{Aggressive: true})

	result, err := m.Place(ctx, download(t, "ep1", "show.s01e01.mkv"), ep(1), quality.High)
	require.NoError(t, err)
	assert.Empty(t, result.Deleted)
	assert.FileExists(t, archive, "episode 2 only exists inside the archive")

	result, err = m.Place(ctx, download(t, "ep2", "show.s01e02.mkv"), ep(2), quality.High)
	require.NoError(t, err)
	assert.Equal(t, []string{archive}, result.Deleted)
	assert.NoFileExists(t, archive)
	assert.FileExists(t, filepath.Join(root, "Show", "Season 1", "Show - s01e01.mkv"))
	assert.FileExists(t, filepath.Join(root, "Show", "Season 1", "Show - s01e02.mkv"))

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarningRedundant, result.Warnings[0].Kind)
}

func TestMediaManager_Place_PreferMulti(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	tree(t, root, "Show/Season 1/Show - s01e01.mkv", "Show/Season 1/Show - s01e02.mkv", "Show/Season 1/Show - s01e03.mkv")

	m := newTestManager(root, nil, nil, Config{Aggressive: true, PreferMulti: true})

	result, err := m.Place(ctx, download(t, "multi", "show.s01e01e02.mkv"), multi(t, 1, 2), quality.High)
	require.NoError(t, err)

	season := filepath.Join(root, "Show", "Season 1")
	assert.Equal(t, filepath.Join(season, "Show - s01e01e02.mkv"), result.Path)
	assert.ElementsMatch(t, []string{
		filepath.Join(season, "Show - s01e01.mkv"),
		filepath.Join(season, "Show - s01e02.mkv"),
	}, result.Deleted)
	assert.FileExists(t, filepath.Join(season, "Show - s01e03.mkv"))
}

func TestMediaManager_Place_TrashFallback(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	tree(t, root, ".trash/Show.S01E04/")

	dir := download(t, "Show.S01E04", "show.s01e04.mkv", "show.nfo", "extras/sample.txt")
	require.NoError(t, os.Chmod(filepath.Join(dir, "extras"), 0o500))
	t.Cleanup(func() { os.Chmod(filepath.Join(root, ".trash", "Show.S01E04.01234567", "extras"), 0o755) })

	m := newTestManager(root, nil, nil, Config{})

	result, err := m.Place(ctx, dir, episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 4}, quality.Low)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "Show", "Season 1", "Show - s01e04.mkv"))
	assert.NoDirExists(t, dir)

	trashed := filepath.Join(root, ".trash", "Show.S01E04.01234567")
	assert.Equal(t, trashed, result.Trashed)
	assert.FileExists(t, filepath.Join(trashed, "extras", "sample.txt"))
	assert.NoFileExists(t, filepath.Join(trashed, "show.nfo"))

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarningTrash, result.Warnings[0].Kind)
}

func TestMediaManager_Place_FailedDownload(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	dir := download(t, "_FAILED_Show.S01E01", "show.s01e01.mkv")

	m := newTestManager(root, nil, nil, Config{})

	_, err := m.Place(ctx, dir, ep(1), quality.Low)
	assert.ErrorIs(t, err, ErrFailedDownload)
	assert.NoDirExists(t, dir)
	assert.DirExists(t, filepath.Join(root, ".trash", "_FAILED_Show.S01E01"))
	assert.NoDirExists(t, filepath.Join(root, "Show"))
}

func TestMediaManager_Place_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing root", func(t *testing.T) {
		m := newTestManager(filepath.Join(t.TempDir(), "missing"), nil, nil, Config{})
		_, err := m.Place(ctx, download(t, "dl", "show.s01e01.mkv"), ep(1), quality.Low)
		assert.ErrorIs(t, err, ErrMissingRoot)
	})

	t.Run("root is a file", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(root, nil, 0o644))
		m := newTestManager(root, nil, nil, Config{})
		_, err := m.Place(ctx, download(t, "dl", "show.s01e01.mkv"), ep(1), quality.Low)
		assert.ErrorIs(t, err, ErrMissingRoot)
	})

	t.Run("no episode file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "dl")
		tree(t, dir, "show.nfo", "show.sfv")
		m := newTestManager(t.TempDir(), nil, nil, Config{})
		_, err := m.Place(ctx, dir, ep(1), quality.Low)
		assert.ErrorIs(t, err, ErrNoEpisodeFile)
		assert.DirExists(t, dir)
	})

	t.Run("unknown tier", func(t *testing.T) {
		m := newTestManager(t.TempDir(), nil, nil, Config{})
		_, err := m.Place(ctx, download(t, "dl", "show.s01e01.mkv"), ep(1), quality.Tier("ultra"))
		assert.ErrorIs(t, err, quality.ErrUnknownTier)
	})

	t.Run("locked", func(t *testing.T) {
		root := t.TempDir()
		held := flock.New(filepath.Join(root, LockFileName))
		locked, err := held.TryLock()
		require.NoError(t, err)
		require.True(t, locked)
		defer held.Unlock()

		dir := download(t, "dl", "show.s01e01.mkv")
		m := newTestManager(root, nil, nil, Config{LockTimeout: 50 * time.Millisecond})
		_, err = m.Place(ctx, dir, ep(1), quality.Low)
		assert.ErrorIs(t, err, ErrLocked)
		assert.FileExists(t, filepath.Join(dir, "show.s01e01.mkv"))
	})
}

func TestMediaManager_Place_DryRun(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	dir := download(t, "dl", "show.s01e01.mkv", "show.nfo")

	m := newTestManager(root, nil, nil, Config{DryRun: true})
	result, err := m.Place(ctx, dir, ep(1), quality.Low)
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, StagePlanned, result.Stage)
	assert.Len(t, result.Plan.CreateDirs, 2)
	assert.NoDirExists(t, filepath.Join(root, "Show"))
	assert.FileExists(t, filepath.Join(dir, "show.s01e01.mkv"))
	assert.FileExists(t, filepath.Join(dir, "show.nfo"))
}

// passthrough delegates the read-only and directory calls of a mock to the real file system
func passthrough(fileIO *ioMocks.MockFileIO) {
	osFS := &mio.MediaFileSystem{}
	fileIO.EXPECT().Stat(gomock.Any()).DoAndReturn(osFS.Stat).AnyTimes()
	fileIO.EXPECT().WalkDir(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(osFS.WalkDir).AnyTimes()
	fileIO.EXPECT().FileExists(gomock.Any()).DoAndReturn(osFS.FileExists).AnyTimes()
	fileIO.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).DoAndReturn(osFS.MkdirAll).AnyTimes()
}

func TestMediaManager_Place_MoveFailureDeletesNothing(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	tree(t, root, "Show/Season 1/Show - s01e01e02.mkv", "Show/Season 1/Show - s01e02.mkv")
	archive := filepath.Join(root, "Show", "Season 1", "Show - s01e01e02.mkv")
	dir := download(t, "dl", "show.s01e01.mkv")

	fileIO := ioMocks.NewMockFileIO(ctrl)
	passthrough(fileIO)
	fileIO.EXPECT().Move(filepath.Join(dir, "show.s01e01.mkv"), filepath.Join(root, "Show", "Season 1", "Show - s01e01.mkv")).Return(fs.ErrPermission)
	fileIO.EXPECT().Remove(gomock.Any()).Times(0)
	fileIO.EXPECT().MoveDir(gomock.Any(), gomock.Any()).Times(0)

	m := newTestManager(root, nil, fileIO, Config{Aggressive: true})
	_, err := m.Place(ctx, dir, ep(1), quality.High)
	assert.ErrorIs(t, err, ErrPermission)

	assert.FileExists(t, archive)
	assert.FileExists(t, filepath.Join(dir, "show.s01e01.mkv"))
}

func TestMediaManager_Place_RecordFailureKeepsPlacedFile(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	tree(t, root, "Show/Season 1/Show - s01e01e02.mkv", "Show/Season 1/Show - s01e02.mkv")
	archive := filepath.Join(root, "Show", "Season 1", "Show - s01e01e02.mkv")
	dir := download(t, "dl", "show.s01e01.mkv")

	recordErr := errors.New("disk I/O error")
	store := mocks.NewMockStorage(ctrl)
	store.EXPECT().GetSeries(gomock.Any(), "show").Return(nil, storage.ErrNotFound)
	store.EXPECT().RecordPlacement(gomock.Any(), gomock.Any()).Return(recordErr)

	m := newTestManager(root, store, nil, Config{Aggressive: true})
	result, err := m.Place(ctx, dir, ep(1), quality.High)
	assert.ErrorIs(t, err, recordErr)

	placed := filepath.Join(root, "Show", "Season 1", "Show - s01e01.mkv")
	require.NotNil(t, result)
	assert.Equal(t, placed, result.Path)
	assert.Equal(t, StageMoved, result.Stage)
	assert.FileExists(t, placed)
	assert.FileExists(t, archive, "nothing is deleted after a failed record")
	assert.DirExists(t, dir)
}

func TestMediaManager_Place_LowerQualityThanRecorded(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	tree(t, root, "Show/")

	store := mocks.NewMockStorage(ctrl)
	store.EXPECT().GetSeries(gomock.Any(), "show").Return(&model.Series{ID: 7, Name: "Show", SanitizedName: "show"}, nil)
	store.EXPECT().LookupEpisode(gomock.Any(), int64(7), ep(1)).Return(&storage.EpisodeRecord{ID: 1, SeriesID: 7, Member: ep(1), Quality: quality.High}, nil)
	store.EXPECT().RecordPlacement(gomock.Any(), storage.Placement{
		SeriesName:    "Show",
		SanitizedName: "show",
		Identity:      ep(1),
		Quality:       quality.Low,
	}).Return(nil)

	m := newTestManager(root, store, nil, Config{})
	result, err := m.Place(ctx, download(t, "dl", "show.s01e01.mkv"), ep(1), quality.Low)
	require.NoError(t, err)

	assert.FileExists(t, result.Path)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarningLowerQuality, result.Warnings[0].Kind)
}

func TestMediaManager_Place_StoreLookupError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	dir := download(t, "dl", "show.s01e01.mkv")

	lookupErr := errors.New("database is locked")
	store := mocks.NewMockStorage(ctrl)
	store.EXPECT().GetSeries(gomock.Any(), "show").Return(nil, lookupErr)

	m := newTestManager(root, store, nil, Config{})
	_, err := m.Place(ctx, dir, ep(1), quality.Low)
	assert.ErrorIs(t, err, lookupErr)
	assert.NoDirExists(t, filepath.Join(root, "Show"))
	assert.FileExists(t, filepath.Join(dir, "show.s01e01.mkv"))
}
