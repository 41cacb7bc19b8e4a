package manager

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/kasuboski/tvsort/pkg/episode"
	"github.com/kasuboski/tvsort/pkg/format"
	"github.com/kasuboski/tvsort/pkg/io"
	"github.com/kasuboski/tvsort/pkg/library"
	"github.com/kasuboski/tvsort/pkg/logger"
	"github.com/kasuboski/tvsort/pkg/quality"
	"github.com/kasuboski/tvsort/pkg/storage"
)

// Plan is the outcome of a placement decision. Nothing has been changed on disk when a plan is returned.
type Plan struct {
	Source           string
	Destination      string
	CreateDirs       []string
	DeleteCandidates []string
	Conflicts        []Warning

	Series   library.Series
	Identity episode.Identity
	Quality  quality.Tier
}

// ConflictNote joins the conflict messages, empty when the placement does not conflict with anything
func (p *Plan) ConflictNote() string {
	messages := make([]string, len(p.Conflicts))
	for i, c := range p.Conflicts {
		messages[i] = c.Message
	}
	return strings.Join(messages, "; ")
}

// Render prints the plan with paths relative to base
func (p *Plan) Render(base string) string {
	rel := func(path string) string {
		if base == "" {
			return path
		}
		r, err := filepath.Rel(base, path)
		if err != nil {
			return path
		}
		return filepath.ToSlash(r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "identity: %s\n", p.Identity)
	fmt.Fprintf(&b, "quality: %s\n", p.Quality)
	fmt.Fprintf(&b, "source: %s\n", rel(p.Source))
	fmt.Fprintf(&b, "destination: %s\n", rel(p.Destination))
	for _, d := range p.CreateDirs {
		fmt.Fprintf(&b, "create: %s\n", rel(d))
	}
	for _, d := range p.DeleteCandidates {
		fmt.Fprintf(&b, "delete: %s\n", rel(d))
	}
	for _, c := range p.Conflicts {
		fmt.Fprintf(&b, "conflict: %s\n", c.Kind)
	}
	return b.String()
}

// Planner decides where a file goes and which existing files it makes redundant
type Planner struct {
	library   library.Library
	store     storage.Storage
	formatter *format.Formatter
	fileIO    io.FileIO
	now       func() time.Time

	aggressive  bool
	preferMulti bool
}

// NewPlanner creates a planner. store may be nil, in which case recorded qualities are not consulted.
func NewPlanner(lib library.Library, store storage.Storage, formatter *format.Formatter, fileIO io.FileIO, aggressive, preferMulti bool) *Planner {
	return &Planner{
		library:     lib,
		store:       store,
		formatter:   formatter,
		fileIO:      fileIO,
		now:         time.Now,
		aggressive:  aggressive,
		preferMulti: preferMulti,
	}
}

// Plan decides the placement of source, a file holding the episode(s) named by id
func (p *Planner) Plan(ctx context.Context, source string, id episode.Identity, tier quality.Tier) (*Plan, error) {
	log := logger.FromCtx(ctx)

	if err := episode.Validate(id); err != nil {
		return nil, err
	}

	roots := p.library.Roots()
	if len(roots) == 0 {
		return nil, fmt.Errorf("%w: no tv roots configured", ErrMissingRoot)
	}

	plan := &Plan{
		Source:   source,
		Identity: id,
		Quality:  tier,
	}

	series, known, err := p.library.ResolveSeries(ctx, id.SeriesName())
	if err != nil {
		return nil, err
	}
	if !known {
		dir, err := p.formatter.SeriesPath(id.SeriesName(), id)
		if err != nil {
			return nil, err
		}
		series = library.Series{
			Name:          dir,
			SanitizedName: p.library.Key(id.SeriesName()),
			Path:          filepath.Join(roots[0], dir),
			Root:          roots[0],
		}
		plan.CreateDirs = append(plan.CreateDirs, series.Path)
		log.Debugw("series is new", "series", series.Name, "path", series.Path)
	}
	plan.Series = series

	seasonDir, found := "", false
	if known {
		seasonDir, found, err = p.library.LocateSeasonDirectory(ctx, series, id)
		if err != nil {
			return nil, err
		}
	}
	if !found {
		name, err := p.formatter.SeasonPath(series.Name, id)
		if err != nil {
			return nil, err
		}
		seasonDir = filepath.Join(series.Path, name)
		plan.CreateDirs = append(plan.CreateDirs, seasonDir)
	}

	inventory, err := p.library.ScanSeason(ctx, seasonDir)
	if err != nil {
		return nil, err
	}

	if err := p.destination(plan, inventory, seasonDir); err != nil {
		return nil, err
	}

	if err := p.checkRecordedQuality(ctx, plan); err != nil {
		return nil, err
	}

	if p.aggressive {
		p.scheduleRedundant(plan, inventory)
	}

	log.Debugw("placement planned", "destination", plan.Destination, "create", plan.CreateDirs, "delete", plan.DeleteCandidates, "conflict", plan.ConflictNote())
	return plan, nil
}

// destination picks the target path. An existing copy of the identity, or any file at the formatted
// path, makes the new file take a timestamp suffix instead of replacing it.
func (p *Planner) destination(plan *Plan, inventory *library.Inventory, seasonDir string) error {
	ext := filepath.Ext(plan.Source)
	filename, err := p.formatter.EpisodeFilename(plan.Series.Name, plan.Identity, ext, "")
	if err != nil {
		return err
	}
	plan.Destination = filepath.Join(seasonDir, filename)

	existing, duplicate := inventory.Locate(plan.Identity)
	if !duplicate && !p.fileIO.FileExists(plan.Destination) {
		return nil
	}
	if !duplicate {
		existing = plan.Destination
	}

	suffix := format.DuplicateSuffix(p.now())
	for i := 1; ; i++ {
		s := suffix
		if i > 1 {
			s = fmt.Sprintf("%s-%d", suffix, i)
		}
		filename, err = p.formatter.EpisodeFilename(plan.Series.Name, plan.Identity, ext, s)
		if err != nil {
			return err
		}
		plan.Destination = filepath.Join(seasonDir, filename)
		if !p.fileIO.FileExists(plan.Destination) {
			break
		}
	}

	plan.Conflicts = append(plan.Conflicts, warnf(WarningDuplicate, "%s already exists at %s, placing as %s", plan.Identity, existing, filename))
	return nil
}

func (p *Planner) checkRecordedQuality(ctx context.Context, plan *Plan) error {
	if p.store == nil {
		return nil
	}

	series, err := p.store.GetSeries(ctx, plan.Series.SanitizedName)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up series %q: %w", plan.Series.SanitizedName, err)
	}

	for _, member := range episode.Members(plan.Identity) {
		record, err := p.store.LookupEpisode(ctx, int64(series.ID), member)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to look up %s: %w", member, err)
		}
		if quality.Compare(record.Quality, plan.Quality) > 0 {
			plan.Conflicts = append(plan.Conflicts, warnf(WarningLowerQuality, "%s was recorded at %s quality, placing a %s copy", member, record.Quality, plan.Quality))
		}
	}

	return nil
}

func (p *Planner) scheduleRedundant(plan *Plan, inventory *library.Inventory) {
	switch id := plan.Identity.(type) {
	case episode.SeasonEpisode:
		p.redundantArchives(plan, inventory, id)
	case episode.DailyEpisode:
		p.redundantArchives(plan, inventory, id)
	case episode.MultiEpisode:
		p.redundantSingles(plan, inventory, id)
	}
}

// redundantArchives schedules multi-episode archives containing member whose every other member
// already exists on disk as a single file
func (p *Planner) redundantArchives(plan *Plan, inventory *library.Inventory, member episode.Member) {
	if p.preferMulti {
		return
	}

	for _, archive := range inventory.MultisContaining(member) {
		multi := archive.Identity.(episode.MultiEpisode)
		if coveredBySingles(inventory, multi, member) {
			p.schedule(plan, archive.AbsolutePath)
		}
	}
}

func coveredBySingles(inventory *library.Inventory, multi episode.MultiEpisode, placed episode.Member) bool {
	for _, m := range multi.Episodes {
		if episode.Same(m, placed) {
			continue
		}
		if !inventory.Exists(m) {
			return false
		}
	}
	return true
}

// redundantSingles schedules the single-episode files the new archive supersedes
func (p *Planner) redundantSingles(plan *Plan, inventory *library.Inventory, multi episode.MultiEpisode) {
	if !p.preferMulti {
		return
	}

	for _, m := range multi.Episodes {
		for _, f := range inventory.Files {
			if episode.Same(f.Identity, m) {
				p.schedule(plan, f.AbsolutePath)
			}
		}
	}
}

func (p *Planner) schedule(plan *Plan, path string) {
	if path == plan.Destination || path == plan.Source || slices.Contains(plan.DeleteCandidates, path) {
		return
	}
	plan.DeleteCandidates = append(plan.DeleteCandidates, path)
}
