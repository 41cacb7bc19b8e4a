package storage

import (
	"context"
	"errors"

	"github.com/kasuboski/tvsort/pkg/episode"
	"github.com/kasuboski/tvsort/pkg/quality"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite/schema/gen/model"
)

//go:generate mockgen -source=storage.go -destination=mocks/storage.go -package=mocks

var ErrNotFound = errors.New("not found in storage")

type Storage interface {
	SchemaStorage
	SeriesStorage
	EpisodeStorage
	InProgressStorage

	// RecordPlacement registers the series of the placed identity and records every member
	// episode in a single transaction. A stored tier is never lowered.
	RecordPlacement(ctx context.Context, placement Placement) error
	Close() error
}

type SchemaStorage interface {
	Migrate(ctx context.Context, target uint, rollback bool) error
	SchemaVersion(ctx context.Context) (uint, error)
	LatestVersion() (uint, error)
}

type SeriesStorage interface {
	RegisterSeries(ctx context.Context, name, sanitizedName string, daily bool) (int64, error)
	GetSeries(ctx context.Context, sanitizedName string) (*model.Series, error)
	ListSeries(ctx context.Context) ([]*model.Series, error)
}

type EpisodeStorage interface {
	UpsertEpisode(ctx context.Context, seriesID int64, member episode.Member, tier quality.Tier) error
	LookupEpisode(ctx context.Context, seriesID int64, member episode.Member) (*EpisodeRecord, error)
}

type InProgressStorage interface {
	AddInProgress(ctx context.Context, entry model.InProgress) error
	GetInProgress(ctx context.Context, title string) (*model.InProgress, error)
	DeleteInProgress(ctx context.Context, titles ...string) (int64, error)
	ListInProgress(ctx context.Context) ([]*model.InProgress, error)
}

// EpisodeRecord is a stored single or daily episode.
type EpisodeRecord struct {
	ID       int64
	SeriesID int64
	Member   episode.Member
	Quality  quality.Tier
}

// Placement describes a file that was moved into the library.
type Placement struct {
	SeriesName    string
	SanitizedName string
	Identity      episode.Identity
	Quality       quality.Tier
}
