package library

import (
	"testing"

	"github.com/kasuboski/tvsort/pkg/episode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventory(t *testing.T) {
	e1 := episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 1}
	e2 := episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 2}
	e3 := episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 3}
	multi, err := episode.NewMultiEpisode("Show", "", e1, e2)
	require.NoError(t, err)

	inventory := &Inventory{
		Dir: "/tv/Show/Season 1",
		Files: []EpisodeFile{
			{Name: "Show - s01e01e02.mkv", AbsolutePath: "/tv/Show/Season 1/Show - s01e01e02.mkv", Identity: multi},
			{Name: "Show - s01e03.mkv", AbsolutePath: "/tv/Show/Season 1/Show - s01e03.mkv", Identity: e3},
		},
	}

	assert.True(t, inventory.Exists(e3))
	assert.True(t, inventory.Exists(multi))
	assert.False(t, inventory.Exists(e1))

	path, ok := inventory.Locate(multi)
	assert.True(t, ok)
	assert.Equal(t, "/tv/Show/Season 1/Show - s01e01e02.mkv", path)

	assert.Len(t, inventory.MultisContaining(e2), 1)
	assert.Empty(t, inventory.MultisContaining(e3))

	var empty *Inventory
	assert.False(t, empty.Exists(e1))
	assert.Empty(t, empty.MultisContaining(e1))
}

func TestExtensions(t *testing.T) {
	ext := NewExtensions([]string{"nfo", ".SRR", " .txt ", ""})

	assert.True(t, ext.Match("/downloads/show/show.nfo"))
	assert.True(t, ext.Match("show.srr"))
	assert.True(t, ext.Match("README.TXT"))
	assert.False(t, ext.Match("show.mkv"))
	assert.False(t, ext.Match("nfo"))
	assert.Len(t, ext, 3)
}

func TestNewAliases(t *testing.T) {
	aliases, duplicates := NewAliases(map[string][]string{
		"The Office (US)":  {"The Office US", "Office"},
		"Law & Order: SVU": {"SVU", "Office"},
	})

	assert.Equal(t, "office", aliases["officeus"])
	assert.Equal(t, "lawandordersvu", aliases["svu"])
	assert.Equal(t, "lawandordersvu", aliases["office"], "first claim in name order wins")
	assert.Equal(t, []string{"Office"}, duplicates)
}
