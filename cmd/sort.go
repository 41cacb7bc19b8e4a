package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kasuboski/tvsort/config"
	"github.com/kasuboski/tvsort/pkg/format"
	mio "github.com/kasuboski/tvsort/pkg/io"
	"github.com/kasuboski/tvsort/pkg/logger"
	"github.com/kasuboski/tvsort/pkg/manager"
	"github.com/kasuboski/tvsort/pkg/quality"
	"github.com/kasuboski/tvsort/pkg/release"
	"github.com/kasuboski/tvsort/pkg/storage"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sortQuality string
	sortDryRun  bool
)

// sortCmd is invoked by the downloader once a job has finished post-processing
var sortCmd = &cobra.Command{
	Use:   "sort <download dir> <job name> [post-processing status]",
	Short: "sort a finished download into the tv library",
	Long: `Sort the episode in a finished download directory into the tv library.

The job name is parsed for the series and episode. A non-zero post-processing
status (1 verification failed, 2 unpack failed, 3 both) moves the download to
the trash instead.`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		log := logger.Get()
		cfg := loadConfig(log)

		var capture *logger.Capture
		if cfg.Logging.SortLog {
			capture = &logger.Capture{}
		}
		log = logger.Configure(logger.Options{
			File:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			Capture:    capture,
		})
		ctx = logger.WithCtx(ctx, log)

		downloadDir, job := args[0], args[1]
		status := 0
		if len(args) == 3 {
			var err error
			status, err = strconv.Atoi(args[2])
			if err != nil {
				log.Fatal("post-processing status must be a number", zap.Error(err))
			}
		}

		result, err := runSort(ctx, cfg, downloadDir, job, status)
		if err != nil {
			log.Errorw("failed to sort download", "download", downloadDir, "job", job, zap.Error(err))
			if capture != nil {
				writeSortLog(ctx, capture, downloadDir)
			}
			os.Exit(1)
		}

		for _, w := range result.Warnings {
			log.Warnw("sorted with warning", "kind", w.Kind, "message", w.Message)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Path)
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
	sortCmd.Flags().StringVarP(&sortQuality, "quality", "q", "", "quality tier of the download, detected from the job name when empty")
	sortCmd.Flags().BoolVar(&sortDryRun, "dry-run", false, "log the placement without changing anything")
}

func runSort(ctx context.Context, cfg config.Config, downloadDir, job string, status int) (*manager.PlacementResult, error) {
	log := logger.FromCtx(ctx)

	store, err := sqlite.New(ctx, cfg.Storage.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open episode database: %w", err)
	}
	defer store.Close()

	tier, err := sortTier(ctx, cfg, store, job)
	if err != nil {
		return nil, err
	}

	mode, err := cfg.TV.Mode()
	if err != nil {
		return nil, err
	}

	m := manager.New(
		newLibrary(ctx, cfg),
		store,
		format.New(cfg.TV.Templates),
		&mio.MediaFileSystem{},
		manager.Config{
			Aggressive:  cfg.TV.MultiEpisode.Aggressive,
			PreferMulti: cfg.TV.MultiEpisode.Prefer,
			DirMode:     mode,
			LockTimeout: cfg.LockTimeout,
			DryRun:      sortDryRun,
		},
	)

	if status != 0 {
		return nil, m.Reject(ctx, downloadDir, statusReason(status))
	}

	id, err := release.NewParser().Parse(job)
	if err != nil {
		return nil, err
	}
	log.Infow("sorting download", "download", downloadDir, "episode", id.String(), "quality", tier)

	result, err := m.Place(ctx, downloadDir, id, tier)
	if err != nil {
		return nil, err
	}

	if !sortDryRun {
		if _, err := store.DeleteInProgress(ctx, job); err != nil {
			log.Warnw("failed to clear in-progress entry", "job", job, zap.Error(err))
		}
	}

	return result, nil
}

// sortTier prefers the --quality flag, then the quality recorded when the job was queued,
// then the resolution in the job name
func sortTier(ctx context.Context, cfg config.Config, store storage.InProgressStorage, job string) (quality.Tier, error) {
	if sortQuality != "" {
		return quality.Parse(sortQuality)
	}

	entry, err := store.GetInProgress(ctx, job)
	switch {
	case err == nil:
		if tier, err := quality.Parse(entry.Quality); err == nil {
			return tier, nil
		}
	case !errors.Is(err, storage.ErrNotFound):
		return "", err
	}

	fallback, err := cfg.TV.DefaultTier()
	if err != nil {
		return "", err
	}

	return release.DetectQuality(job, fallback), nil
}

func statusReason(status int) string {
	switch status {
	case 1:
		return "verification failed"
	case 2:
		return "unpack failed"
	case 3:
		return "verification and unpack failed"
	default:
		return fmt.Sprintf("post-processing status %d", status)
	}
}

func writeSortLog(ctx context.Context, capture *logger.Capture, downloadDir string) {
	log := logger.FromCtx(ctx)

	info, err := os.Stat(downloadDir)
	if err != nil || !info.IsDir() {
		return
	}

	path := filepath.Join(downloadDir, "sort.log")
	if err := capture.WriteFile(path); err != nil && !errors.Is(err, os.ErrPermission) {
		log.Warnw("failed to write sort log", "path", path, zap.Error(err))
	}
}
