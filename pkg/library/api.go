package library

import (
	"context"

	"github.com/kasuboski/tvsort/pkg/episode"
)

//go:generate mockgen -source=api.go -destination=mocks/api.go -package=mocks

// Library answers questions about episodes already on disk. Results always come from the
// filesystem, never from stored records.
type Library interface {
	ListSeries(ctx context.Context) (map[string]Series, error)
	ResolveSeries(ctx context.Context, name string) (Series, bool, error)
	LocateSeasonDirectory(ctx context.Context, series Series, id episode.Identity) (string, bool, error)
	ScanSeason(ctx context.Context, dir string) (*Inventory, error)

	EpisodeExists(ctx context.Context, series Series, id episode.Identity) (bool, error)
	LocateEpisodePath(ctx context.Context, series Series, id episode.Identity) (string, bool, error)
	FindMultiEpisodeArchivesContaining(ctx context.Context, series Series, member episode.Member) ([]EpisodeFile, error)
	FindEpisodes(ctx context.Context, series Series) ([]EpisodeFile, error)

	Key(name string) string
	Roots() []string
	Ignored(path string) bool
}
