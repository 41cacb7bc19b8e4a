package release

import (
	"testing"

	"github.com/kasuboski/tvsort/pkg/episode"
	"github.com/kasuboski/tvsort/pkg/quality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	multi := func(series string, members ...episode.Member) episode.MultiEpisode {
		m, err := episode.NewMultiEpisode(series, "", members...)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		title string
		want  episode.Identity
	}{
		{
			title: "Show.Name.S01E03.720p.HDTV.x264-GRP",
			want:  episode.SeasonEpisode{Series: "Show Name", Season: 1, Episode: 3},
		},
		{
			title: "Show.Name.S01E03.Episode.Title.720p",
			want:  episode.SeasonEpisode{Series: "Show Name", Season: 1, Episode: 3, Title: "Episode Title"},
		},
		{
			title: "Show Name 2x05 The Title",
			want:  episode.SeasonEpisode{Series: "Show Name", Season: 2, Episode: 5, Title: "The Title"},
		},
		{
			title: "Show Name - s01e03 - Pilot",
			want:  episode.SeasonEpisode{Series: "Show Name", Season: 1, Episode: 3, Title: "Pilot"},
		},
		{
			title: "Daily.Show.2024.01.05.Guest.Name.WEB",
			want:  episode.DailyEpisode{Series: "Daily Show", Year: 2024, Month: 1, Day: 5, Title: "Guest Name"},
		},
		{
			title: "Show.S01E01E02.720p",
			want: multi("Show",
				episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 1},
				episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 2},
			),
		},
		{
			title: "Show.S02E01-E03.HDTV",
			want: multi("Show",
				episode.SeasonEpisode{Series: "Show", Season: 2, Episode: 1},
				episode.SeasonEpisode{Series: "Show", Season: 2, Episode: 2},
				episode.SeasonEpisode{Series: "Show", Season: 2, Episode: 3},
			),
		},
		{
			title: "Show 1x01-1x02",
			want: multi("Show",
				episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 1},
				episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 2},
			),
		},
		{
			title: "Show.1x10-1x12.720p",
			want: multi("Show",
				episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 10},
				episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 11},
				episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 12},
			),
		},
		{
			title: "Show.S01E02E02.The.Title.720p",
			want:  episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 2, Title: "The Title"},
		},
		{
			title: "Show.S01E01E02E01",
			want: multi("Show",
				episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 1},
				episode.SeasonEpisode{Series: "Show", Season: 1, Episode: 2},
			),
		},
		{
			title: "Show.2024.01.05&2024.01.06",
			want: multi("Show",
				episode.DailyEpisode{Series: "Show", Year: 2024, Month: 1, Day: 5},
				episode.DailyEpisode{Series: "Show", Year: 2024, Month: 1, Day: 6},
			),
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			require.True(t, p.Handle(tt.title))
			got, err := p.Parse(tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_MultiBeforeSingle(t *testing.T) {
	title := "Show.S01E01-E02.720p"
	assert.True(t, SeasonEpisodeScheme{}.Handle(title))
	assert.True(t, MultiEpisodeScheme{}.Handle(title))

	got, err := NewParser().Parse(title)
	require.NoError(t, err)
	assert.IsType(t, episode.MultiEpisode{}, got)
}

func TestParser_Errors(t *testing.T) {
	p := NewParser()

	_, err := p.Parse("Some.Movie.2010.1080p.BluRay")
	assert.ErrorIs(t, err, ErrUnsupportedTitle)
	assert.False(t, p.Handle("Some.Movie.2010.1080p.BluRay"))

	_, err = p.Parse("S01E03.720p")
	assert.ErrorIs(t, err, ErrIncompleteTitle)

	_, err = p.Parse("Show.2023.02.30")
	assert.ErrorIs(t, err, ErrIncompleteTitle)

	for _, title := range []string{"Show.1x10-2x01.720p", "Show.2023.12.31&2024.01.01"} {
		_, err = p.Parse(title)
		assert.ErrorIs(t, err, ErrIncompleteTitle, title)
		assert.ErrorIs(t, err, episode.ErrSpansSeasons, title)
	}
}

func TestDetectQuality(t *testing.T) {
	assert.Equal(t, quality.High, DetectQuality("Show.S01E03.1080p.WEB-DL.x264-GRP", quality.Low))
	assert.Equal(t, quality.Medium, DetectQuality("Show.S01E03.720p.HDTV.x264-GRP", quality.Low))
	assert.Equal(t, quality.Medium, DetectQuality("Show.S01E03.HDTV.x264-GRP", quality.Medium))
}
