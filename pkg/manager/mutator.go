package manager

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/kasuboski/tvsort/pkg/io"
	"github.com/kasuboski/tvsort/pkg/logger"
	"go.uber.org/zap"
)

// TrashDirName is the directory under the first tv root that receives leftover download directories
const TrashDirName = ".trash"

// Mutator applies a Plan to the filesystem. The episode is always moved before anything is deleted.
type Mutator struct {
	fileIO   io.FileIO
	dirMode  os.FileMode
	trashDir string
	ignored  func(path string) bool
	newID    func() string
}

func NewMutator(fileIO io.FileIO, dirMode os.FileMode, trashDir string, ignored func(path string) bool) *Mutator {
	if ignored == nil {
		ignored = func(string) bool { return false }
	}
	return &Mutator{
		fileIO:   fileIO,
		dirMode:  dirMode,
		trashDir: trashDir,
		ignored:  ignored,
		newID:    uuid.NewString,
	}
}

// EnsureDirectories creates every missing directory in dirs
func (m *Mutator) EnsureDirectories(ctx context.Context, dirs []string) error {
	log := logger.FromCtx(ctx)

	for _, dir := range dirs {
		if err := m.fileIO.MkdirAll(dir, m.dirMode); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return fmt.Errorf("%w: failed to create %s: %w", ErrPermission, dir, err)
			}
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
		log.Debugw("directory ready", "path", dir)
	}

	return nil
}

// MoveFile moves the episode to its destination and confirms it is there
func (m *Mutator) MoveFile(ctx context.Context, source, destination string) error {
	log := logger.FromCtx(ctx)

	if err := m.fileIO.Move(source, destination); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: failed to move %s: %w", ErrPermission, source, err)
		}
		return fmt.Errorf("failed to move %s to %s: %w", source, destination, err)
	}

	if _, err := m.fileIO.Stat(destination); err != nil {
		return fmt.Errorf("moved file is missing at %s: %w", destination, err)
	}

	log.Infow("episode placed", "source", source, "destination", destination)
	return nil
}

// DeleteRedundant removes the given files, never touching keep. Failures become warnings.
func (m *Mutator) DeleteRedundant(ctx context.Context, paths []string, keep string) ([]string, []Warning) {
	log := logger.FromCtx(ctx)

	var (
		deleted  []string
		warnings []Warning
	)
	for _, path := range paths {
		if path == keep {
			continue
		}

		if !m.fileIO.FileExists(path) {
			log.Warnw("redundant file disappeared before deletion", "path", path)
			warnings = append(warnings, warnf(WarningMissing, "%s was already gone", path))
			continue
		}

		if err := m.fileIO.Remove(path); err != nil {
			log.Warnw("failed to delete redundant file", "path", path, zap.Error(err))
			warnings = append(warnings, warnf(WarningDeleteFailed, "failed to delete %s: %s", path, err))
			continue
		}

		log.Infow("deleted redundant file", "path", path)
		deleted = append(deleted, path)
		warnings = append(warnings, warnf(WarningRedundant, "removed %s", path))
	}

	return deleted, warnings
}

// CleanupSourceDirectory removes leftover ignored files and the download directory itself. A directory
// that cannot be removed is moved to the trash. The returned path is the trash location, if any.
func (m *Mutator) CleanupSourceDirectory(ctx context.Context, dir string) (string, []Warning, error) {
	log := logger.FromCtx(ctx)

	var (
		warnings []Warning
		files    []string
		dirs     []string
	)
	err := m.fileIO.WalkDir(os.DirFS(dir), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == "." {
				return err
			}
			log.Debugw("skipping unreadable path in download directory", "path", path, zap.Error(err))
			return nil
		}
		full := filepath.Join(dir, filepath.FromSlash(path))
		switch {
		case d.IsDir():
			if path != "." {
				dirs = append(dirs, full)
			}
		case m.ignored(d.Name()):
			files = append(files, full)
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnw("failed to read download directory", "path", dir, zap.Error(err))
	}

	for _, path := range files {
		if err := m.fileIO.Remove(path); err != nil {
			log.Warnw("failed to remove leftover file", "path", path, zap.Error(err))
			warnings = append(warnings, warnf(WarningCleanupFailed, "failed to remove %s: %s", path, err))
		}
	}

	// deepest first, a directory that still has content simply stays
	for i := len(dirs) - 1; i >= 0; i-- {
		if err := m.fileIO.Remove(dirs[i]); err != nil {
			log.Debugw("leftover directory not empty", "path", dirs[i], zap.Error(err))
		}
	}

	err = m.fileIO.Remove(dir)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		log.Debugw("download directory removed", "path", dir)
		return "", warnings, nil
	}
	log.Debugw("download directory could not be removed", "path", dir, zap.Error(err))

	trashed, err := m.Trash(ctx, dir)
	if err != nil {
		return "", warnings, err
	}

	warnings = append(warnings, warnf(WarningTrash, "%s could not be removed and was moved to %s", dir, trashed))
	return trashed, warnings, nil
}

// Trash moves dir under the trash directory without replacing anything already there
func (m *Mutator) Trash(ctx context.Context, dir string) (string, error) {
	log := logger.FromCtx(ctx)

	if err := m.fileIO.MkdirAll(m.trashDir, m.dirMode); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTrashFallback, err)
	}

	base := filepath.Base(filepath.Clean(dir))
	target := filepath.Join(m.trashDir, base)
	for attempt := 0; m.fileIO.FileExists(target); attempt++ {
		if attempt == 10 {
			return "", fmt.Errorf("%w: no free name for %s in %s", ErrTrashFallback, base, m.trashDir)
		}
		target = filepath.Join(m.trashDir, fmt.Sprintf("%s.%s", base, m.newID()[:8]))
	}

	if err := m.fileIO.MoveDir(dir, target); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrTrashFallback, dir, err)
	}

	log.Warnw("moved directory to trash", "path", dir, "trash", target)
	return target, nil
}
