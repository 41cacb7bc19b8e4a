package library

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kasuboski/tvsort/pkg/episode"
	"github.com/kasuboski/tvsort/pkg/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tree creates files (and their directories) under root. Paths ending in "/" are directories.
func tree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(p), 0o644))
	}
}

func newTestLibrary(roots ...string) *FileSystemLibrary {
	aliases, _ := NewAliases(map[string][]string{"Law & Order: SVU": {"SVU"}})
	return New(roots, NewExtensions([]string{"nfo", ".srr"}), aliases, nil, &io.MediaFileSystem{})
}

func TestFileSystemLibrary_ListSeries(t *testing.T) {
	ctx := context.Background()
	first, second := t.TempDir(), t.TempDir()
	tree(t, first, "The Office (US)/", "Archer/", ".trash/", "notes.txt")
	tree(t, second, "Office/", "Law & Order - SVU/")

	lib := newTestLibrary(first, second)
	series, err := lib.ListSeries(ctx)
	require.NoError(t, err)

	assert.Len(t, series, 3)
	assert.Equal(t, filepath.Join(first, "The Office (US)"), series["office"].Path, "first root wins")
	assert.Equal(t, "Archer", series["archer"].Name)
	assert.Equal(t, second, series["lawandordersvu"].Root)
	assert.NotContains(t, series, "trash")
}

func TestFileSystemLibrary_ListSeries_MissingRoot(t *testing.T) {
	lib := newTestLibrary(filepath.Join(t.TempDir(), "missing"))
	_, err := lib.ListSeries(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSystemLibrary_ResolveSeries(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	tree(t, root, "Law & Order - SVU/")
	lib := newTestLibrary(root)

	for _, name := range []string{"Law and Order SVU", "law.&.order.svu", "SVU"} {
		s, ok, err := lib.ResolveSeries(ctx, name)
		require.NoError(t, err)
		assert.True(t, ok, name)
		assert.Equal(t, "Law & Order - SVU", s.Name)
	}

	_, ok, err := lib.ResolveSeries(ctx, "Archer")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileSystemLibrary_LocateSeasonDirectory(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	tree(t, root, "Show/Season 01/", "Show/S2/", "Show/series.3/", "Show/Extras/", "News/2024/")
	lib := newTestLibrary(root)

	show := Series{Name: "Show", Path: filepath.Join(root, "Show")}
	tests := []struct {
		season int
		want   string
	}{
		{1, "Season 01"},
		{2, "S2"},
		{3, "series.3"},
	}
	for _, tt := range tests {
		dir, ok, err := lib.LocateSeasonDirectory(ctx, show, episode.SeasonEpisode{Series: "Show", Season: tt.season, Episode: 1})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(root, "Show", tt.want), dir)
	}

	_, ok, err := lib.LocateSeasonDirectory(ctx, show, episode.SeasonEpisode{Series: "Show", Season: 4, Episode: 1})
	require.NoError(t, err)
	assert.False(t, ok)

	news := Series{Name: "News", Path: filepath.Join(root, "News")}
	dir, ok, err := lib.LocateSeasonDirectory(ctx, news, episode.DailyEpisode{Series: "News", Year: 2024, Month: 1, Day: 5})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, "News", "2024"), dir)

	missing := Series{Name: "Missing", Path: filepath.Join(root, "Missing")}
	_, ok, err = lib.LocateSeasonDirectory(ctx, missing, episode.SeasonEpisode{Series: "Missing", Season: 1, Episode: 1})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileSystemLibrary_Scan(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	tree(t, root,
		"Show/Season 1/Show - s01e01 - Pilot.mkv",
		"Show/Season 1/Show - s01e01 - Pilot.nfo",
		"Show/Season 1/Show - s01e02e03.mkv",
		"Show/Season 1/Show - s01e04.mkv",
		"Show/Season 1/readme.txt",
		"Show/Season 1/.hidden s01e05.mkv",
	)
	lib := newTestLibrary(root)
	show := Series{Name: "Show", Path: filepath.Join(root, "Show")}

	e1 := episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 1}
	e2 := episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 2}
	e5 := episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 5}

	inventory, err := lib.ScanSeason(ctx, filepath.Join(root, "Show", "Season 1"))
	require.NoError(t, err)
	assert.Len(t, inventory.Files, 3)

	t.Run("exists", func(t *testing.T) {
		ok, err := lib.EpisodeExists(ctx, show, e1)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = lib.EpisodeExists(ctx, show, e2)
		require.NoError(t, err)
		assert.False(t, ok, "membership in a multi-episode archive is not existence")

		ok, err = lib.EpisodeExists(ctx, show, e5)
		require.NoError(t, err)
		assert.False(t, ok, "hidden files are not scanned")
	})

	t.Run("locate", func(t *testing.T) {
		path, ok, err := lib.LocateEpisodePath(ctx, show, e1)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(root, "Show", "Season 1", "Show - s01e01 - Pilot.mkv"), path)
	})

	t.Run("multi-episode archives", func(t *testing.T) {
		multis, err := lib.FindMultiEpisodeArchivesContaining(ctx, show, e2)
		require.NoError(t, err)
		require.Len(t, multis, 1)
		assert.Equal(t, "Show - s01e02e03.mkv", multis[0].Name)
		assert.True(t, multis[0].IsMulti())

		multis, err = lib.FindMultiEpisodeArchivesContaining(ctx, show, e1)
		require.NoError(t, err)
		assert.Empty(t, multis)
	})

	t.Run("missing season", func(t *testing.T) {
		ok, err := lib.EpisodeExists(ctx, show, episode.SeasonEpisode{Series: "Show", Season: 9, Episode: 1})
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestFileSystemLibrary_FindEpisodes(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	tree(t, root,
		"Show/Season 1/Show - s01e01.mkv",
		"Show/Season 1/Show - s01e01.nfo",
		"Show/Season 2/Show - s02e01.mkv",
		"Show/Season 2/Extras/Show - s02e99.mkv",
		"Show/.trash/Show - s03e01.mkv",
	)
	lib := newTestLibrary(root)

	episodes, err := lib.FindEpisodes(ctx, Series{Name: "Show", Path: filepath.Join(root, "Show")})
	require.NoError(t, err)

	var paths []string
	for _, e := range episodes {
		paths = append(paths, e.RelativePath)
	}
	assert.Equal(t, []string{"Season 1/Show - s01e01.mkv", "Season 2/Show - s02e01.mkv"}, paths)
}
