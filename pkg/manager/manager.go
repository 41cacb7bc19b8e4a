package manager

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"github.com/kasuboski/tvsort/pkg/episode"
	"github.com/kasuboski/tvsort/pkg/format"
	"github.com/kasuboski/tvsort/pkg/io"
	"github.com/kasuboski/tvsort/pkg/library"
	"github.com/kasuboski/tvsort/pkg/logger"
	"github.com/kasuboski/tvsort/pkg/quality"
	"github.com/kasuboski/tvsort/pkg/storage"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

const (
	// FailedPrefix marks download directories the downloader gave up on
	FailedPrefix = "_FAILED_"
	// LockFileName is created under the first tv root while a placement runs
	LockFileName = ".tvsort.lock"

	lockRetryDelay = 100 * time.Millisecond
)

type Config struct {
	Aggressive  bool
	PreferMulti bool
	DirMode     os.FileMode
	LockTimeout time.Duration
	DryRun      bool
}

// PlacementResult describes a successful placement
type PlacementResult struct {
	Path     string    `json:"path"`
	Warnings []Warning `json:"warnings,omitempty"`
	Deleted  []string  `json:"deleted,omitempty"`
	Trashed  string    `json:"trashed,omitempty"`
	DryRun   bool      `json:"dryRun"`
	Stage    Stage     `json:"stage"`
	Plan     *Plan     `json:"-"`
}

// MediaManager places downloaded episodes into the tv library
type MediaManager struct {
	library library.Library
	storage storage.Storage
	fileIO  io.FileIO
	planner *Planner
	mutator *Mutator
	config  Config
}

type Option func(*MediaManager)

// WithClock overrides the time used for duplicate suffixes
func WithClock(now func() time.Time) Option {
	return func(m *MediaManager) {
		m.planner.now = now
	}
}

// WithIDGenerator overrides how colliding trash names are disambiguated
func WithIDGenerator(newID func() string) Option {
	return func(m *MediaManager) {
		m.mutator.newID = newID
	}
}

// New creates a MediaManager. store may be nil to place files without recording them.
func New(lib library.Library, store storage.Storage, formatter *format.Formatter, fileIO io.FileIO, cfg Config, opts ...Option) *MediaManager {
	if cfg.DirMode == 0 {
		cfg.DirMode = 0o755
	}

	var trashDir string
	if roots := lib.Roots(); len(roots) > 0 {
		trashDir = filepath.Join(roots[0], TrashDirName)
	}

	m := &MediaManager{
		library: lib,
		storage: store,
		fileIO:  fileIO,
		planner: NewPlanner(lib, store, formatter, fileIO, cfg.Aggressive, cfg.PreferMulti),
		mutator: NewMutator(fileIO, cfg.DirMode, trashDir, lib.Ignored),
		config:  cfg,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Place sorts the episode found in downloadDir into the library
func (m *MediaManager) Place(ctx context.Context, downloadDir string, id episode.Identity, tier quality.Tier) (*PlacementResult, error) {
	log := logger.FromCtx(ctx, "download", downloadDir, "episode", id.String())
	ctx = logger.WithCtx(ctx, log)

	if err := m.validateRoots(); err != nil {
		return nil, err
	}

	if strings.HasPrefix(filepath.Base(downloadDir), FailedPrefix) {
		return nil, m.Reject(ctx, downloadDir, "download is marked failed")
	}

	if err := episode.Validate(id); err != nil {
		return nil, err
	}
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: %q", quality.ErrUnknownTier, tier)
	}

	source, err := m.findEpisodeFile(ctx, downloadDir)
	if err != nil {
		return nil, err
	}

	unlock, err := m.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	plan, err := m.planner.Plan(ctx, source, id, tier)
	if err != nil {
		return nil, err
	}

	stage := newPlacementMachine()
	result := &PlacementResult{
		Path:     plan.Destination,
		Warnings: append([]Warning(nil), plan.Conflicts...),
		Plan:     plan,
		DryRun:   m.config.DryRun,
		Stage:    stage.Current(),
	}
	if m.config.DryRun {
		log.Infow("dry run, nothing changed", "plan", plan.Render(""))
		return result, nil
	}

	advance := func(s Stage) error {
		if err := stage.ToState(s); err != nil {
			return err
		}
		result.Stage = s
		return nil
	}

	if err := m.mutator.EnsureDirectories(ctx, plan.CreateDirs); err != nil {
		return nil, err
	}
	if err := advance(StagePrepared); err != nil {
		return nil, err
	}

	if err := m.mutator.MoveFile(ctx, plan.Source, plan.Destination); err != nil {
		return nil, err
	}
	if err := advance(StageMoved); err != nil {
		return result, err
	}

	if m.storage != nil {
		err := m.storage.RecordPlacement(ctx, storage.Placement{
			SeriesName:    plan.Series.Name,
			SanitizedName: plan.Series.SanitizedName,
			Identity:      plan.Identity,
			Quality:       plan.Quality,
		})
		if err != nil {
			return result, fmt.Errorf("episode placed at %s but could not be recorded: %w", plan.Destination, err)
		}
		if err := advance(StageRecorded); err != nil {
			return result, err
		}
	}

	deleted, warnings := m.mutator.DeleteRedundant(ctx, plan.DeleteCandidates, plan.Destination)
	result.Deleted = deleted
	result.Warnings = append(result.Warnings, warnings...)
	if err := advance(StagePruned); err != nil {
		return result, err
	}

	trashed, warnings, err := m.mutator.CleanupSourceDirectory(ctx, downloadDir)
	result.Warnings = append(result.Warnings, warnings...)
	if err != nil {
		return result, err
	}
	result.Trashed = trashed
	if err := advance(StageCleaned); err != nil {
		return result, err
	}

	log.Infow("placement complete", "path", result.Path, "warnings", len(result.Warnings), "deleted", len(result.Deleted))
	return result, nil
}

// Reject moves a failed download to the trash and reports it as failed
func (m *MediaManager) Reject(ctx context.Context, downloadDir, reason string) error {
	log := logger.FromCtx(ctx)

	if m.config.DryRun {
		log.Infow("dry run, failed download left in place", "download", downloadDir, "reason", reason)
		return fmt.Errorf("%w: %s", ErrFailedDownload, reason)
	}

	trashed, err := m.mutator.Trash(ctx, downloadDir)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFailedDownload, reason, err)
	}

	log.Warnw("failed download moved to trash", "download", downloadDir, "trash", trashed, "reason", reason)
	return fmt.Errorf("%w: %s", ErrFailedDownload, reason)
}

// validateRoots requires every tv root to be an accessible directory
func (m *MediaManager) validateRoots() error {
	roots := m.library.Roots()
	if len(roots) == 0 {
		return fmt.Errorf("%w: no tv roots configured", ErrMissingRoot)
	}

	for _, root := range roots {
		info, err := m.fileIO.Stat(root)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrMissingRoot, root, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: %s is not a directory", ErrMissingRoot, root)
		}
		if err := unix.Access(root, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrMissingRoot, root, err)
		}
	}

	return nil
}

// findEpisodeFile returns the largest file in dir that does not have an ignored extension
func (m *MediaManager) findEpisodeFile(ctx context.Context, dir string) (string, error) {
	log := logger.FromCtx(ctx)

	var (
		largest string
		size    int64 = -1
	)
	err := m.fileIO.WalkDir(os.DirFS(dir), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".") || m.library.Ignored(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Size() > size {
			largest = path
			size = info.Size()
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s does not exist", ErrNoEpisodeFile, dir)
		}
		return "", fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	if largest == "" {
		return "", fmt.Errorf("%w in %s", ErrNoEpisodeFile, dir)
	}

	source := filepath.Join(dir, filepath.FromSlash(largest))
	log.Debugw("episode file selected", "path", source, "size", humanize.IBytes(uint64(size)))
	return source, nil
}

// lock serializes placements into the same library
func (m *MediaManager) lock(ctx context.Context) (func(), error) {
	log := logger.FromCtx(ctx)

	path := filepath.Join(m.library.Roots()[0], LockFileName)
	fl := flock.New(path)

	lockCtx := ctx
	if m.config.LockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, m.config.LockTimeout)
		defer cancel()
	}

	locked, err := fl.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil || !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			log.Warnw("failed to release library lock", "path", path, zap.Error(err))
		}
	}, nil
}
